package database

import (
	"context"
	"crypto/tls"
	"crypto/x509"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/formdrop/formdrop/internal/config"
	"github.com/formdrop/formdrop/pkg/logger"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrNotConnected is reported by every operation on an unavailable Handle.
var ErrNotConnected = errors.New("database not connected")

// Handle is the process-wide MongoDB connection established at startup.
// A Handle is either available (client set) or unavailable (cause set);
// callers check Available or use Collection, which reports ErrNotConnected.
type Handle struct {
	client *mongo.Client
	cause  error
}

// Available builds a Handle around an already connected client.
func Available(client *mongo.Client) Handle {
	return Handle{client: client}
}

// Unavailable builds a degraded Handle recording why the connection failed.
func Unavailable(cause error) Handle {
	if cause == nil {
		cause = errors.New("no connection attempted")
	}
	return Handle{cause: cause}
}

// Connect attempts a single connection using cfg. Failures are logged and
// returned as an unavailable Handle; Connect never aborts startup.
func Connect(ctx context.Context, cfg config.MongoDBConfig) Handle {
	if cfg.URI == "" {
		err := errors.New("MONGODB_URI not set")
		logger.Warnf("error connecting to MongoDB: %v", err)
		return Unavailable(err)
	}
	opts := options.Client().ApplyURI(cfg.URI)
	if cfg.TLS {
		tlsCfg, err := TLSConfig(cfg.CAFile)
		if err != nil {
			logger.Warnf("error connecting to MongoDB: %v", err)
			return Unavailable(err)
		}
		opts.SetTLSConfig(tlsCfg)
	}
	client, err := ConnectMongo(ctx, opts, cfg.Timeout)
	if err != nil {
		logger.Warnf("error connecting to MongoDB: %v", err)
		return Unavailable(err)
	}
	logger.Infof("connected to MongoDB (database=%s collection=%s)", cfg.Database, cfg.Collection)
	return Available(client)
}

// ConnectMongo opens a connection and pings it within timeout. Caller should call client.Disconnect(ctx).
func ConnectMongo(ctx context.Context, opts *options.ClientOptions, timeout time.Duration) (*mongo.Client, error) {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("mongo connect: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("mongo ping: %w", err)
	}
	return client, nil
}

// TLSConfig returns a client TLS config trusting the PEM bundle at caFile,
// or the system roots when caFile is empty.
func TLSConfig(caFile string) (*tls.Config, error) {
	if caFile == "" {
		pool, err := x509.SystemCertPool()
		if err != nil {
			return nil, fmt.Errorf("load system cert pool: %w", err)
		}
		return &tls.Config{RootCAs: pool, MinVersion: tls.VersionTLS12}, nil
	}
	pem, err := os.ReadFile(caFile)
	if err != nil {
		return nil, fmt.Errorf("read CA bundle: %w", err)
	}
	pool := x509.NewCertPool()
	if !pool.AppendCertsFromPEM(pem) {
		return nil, fmt.Errorf("CA bundle %s contains no certificates", caFile)
	}
	return &tls.Config{RootCAs: pool, MinVersion: tls.VersionTLS12}, nil
}

func (h Handle) Available() bool { return h.client != nil }

// Cause returns the startup failure for an unavailable Handle, nil otherwise.
func (h Handle) Cause() error { return h.cause }

// Collection returns the named collection or ErrNotConnected.
func (h Handle) Collection(db, name string) (*mongo.Collection, error) {
	if h.client == nil {
		return nil, fmt.Errorf("%w: %v", ErrNotConnected, h.cause)
	}
	return h.client.Database(db).Collection(name), nil
}

// Disconnect closes the client; no-op when unavailable.
func (h Handle) Disconnect(ctx context.Context) error {
	if h.client == nil {
		return nil
	}
	return h.client.Disconnect(ctx)
}
