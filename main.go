package main

import (
	"context"
	"net/http"
	"time"

	"github.com/formdrop/formdrop/handlers"
	"github.com/formdrop/formdrop/internal/config"
	"github.com/formdrop/formdrop/internal/database"
	"github.com/formdrop/formdrop/internal/record/repository"
	"github.com/formdrop/formdrop/internal/record/service"
	"github.com/formdrop/formdrop/internal/seed"
	"github.com/formdrop/formdrop/pkg/logger"
	"github.com/formdrop/formdrop/pkg/metrics"
	"github.com/formdrop/formdrop/pkg/middleware"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
)

var startTime = time.Now()

// deps are the runtime objects built once at startup and shared by handlers.
type deps struct {
	repo  repository.Repository
	seeds seed.Store
	redis *redis.Client
}

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Fatalf("failed to load config: %v", err)
	}
	logger.Init(cfg.LogLevel)
	logger.Debugf("startup: LOG_LEVEL=%s", logger.LevelString())
	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx := context.Background()

	seeds, err := seed.Open(ctx, cfg.Seed, cfg.MinIO)
	if err != nil {
		logger.Fatalf("failed to open seed store: %v", err)
	}
	if created, err := seeds.Ensure(ctx); err != nil {
		logger.Warnf("could not initialize seed data (%s): %v", cfg.Seed.Path, err)
	} else if created {
		logger.Infof("created seed data at %s", cfg.Seed.Path)
	}

	handle := database.Connect(ctx, cfg.MongoDB)
	defer func() { _ = handle.Disconnect(context.Background()) }()
	metrics.SetDBAvailable(handle.Available())

	var repo repository.Repository = repository.NewMongoRepo(handle, cfg.MongoDB.Database, cfg.MongoDB.Collection)
	if !handle.Available() && cfg.MongoDB.URI == "" && cfg.MongoDB.Fallback == "memory" {
		logger.Warnf("using in-memory records; submissions are lost on restart")
		repo = repository.NewMemoryRepo()
	}

	var rdb *redis.Client
	if cfg.Redis.Host != "" {
		rdb = redis.NewClient(&redis.Options{Addr: cfg.Redis.Host + ":" + cfg.Redis.Port, Password: cfg.Redis.Password, DB: cfg.Redis.DB})
		if err := rdb.Ping(ctx).Err(); err != nil {
			logger.Warnf("failed to connect to Redis (%s:%s): %v", cfg.Redis.Host, cfg.Redis.Port, err)
		} else {
			logger.Infof("connected to Redis at %s:%s", cfg.Redis.Host, cfg.Redis.Port)
		}
	}

	metrics.RegisterCollectors(prometheus.DefaultRegisterer)
	r := newRouter(cfg, deps{repo: repo, seeds: seeds, redis: rdb})

	srv := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}
	logger.Infof("config summary: mongo=%v seed=%s redis=%v rate_limit=%v", handle.Available(), cfg.Seed.Backend, rdb != nil, cfg.RateLimit.Enabled)
	logger.Infof("starting formdrop on %s", srv.Addr)
	if err := srv.ListenAndServe(); err != nil {
		logger.Fatalf("server failed: %v", err)
	}
}

// newRouter wires middleware and routes. It registers no metrics collectors;
// main does that once against the default registry.
func newRouter(cfg *config.Config, d deps) *gin.Engine {
	r := gin.New()
	r.Use(
		middleware.RequestID(),
		gin.LoggerWithWriter(logger.Writer(logger.LevelInfo)),
		gin.Recovery(),
		middleware.SecureHeaders(cfg.Server.SSL),
	)

	var submitMW []gin.HandlerFunc
	if cfg.RateLimit.Enabled {
		if cfg.RateLimit.UseRedis && d.redis != nil {
			win := time.Duration(cfg.RateLimit.WindowSeconds) * time.Second
			submitMW = append(submitMW, middleware.RedisRateLimitMiddleware(d.redis, cfg.RateLimit.RPS, cfg.RateLimit.Burst, win))
		} else {
			submitMW = append(submitMW, middleware.RateLimitMiddleware(cfg.RateLimit.RPS, cfg.RateLimit.Burst))
		}
	}

	h := handlers.NewHandler(service.New(d.repo), d.seeds)
	h.Register(r, submitMW...)

	checks := map[string]handlers.ReadyCheck{
		"database": func(context.Context) bool {
			if m, ok := d.repo.(*repository.MongoRepo); ok {
				return m.Available()
			}
			return true
		},
	}
	if cfg.RateLimit.Enabled && cfg.RateLimit.UseRedis && d.redis != nil {
		checks["redis"] = func(ctx context.Context) bool { return d.redis.Ping(ctx).Err() == nil }
	}
	handlers.RegisterHealth(r, startTime, checks)
	handlers.RegisterSwagger(r)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return r
}
