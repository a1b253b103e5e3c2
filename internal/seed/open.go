package seed

import (
	"context"
	"fmt"

	"github.com/formdrop/formdrop/internal/config"
	"github.com/formdrop/formdrop/internal/storage"
)

// Open builds the Store selected by SEED_BACKEND.
func Open(ctx context.Context, cfg config.SeedConfig, minioCfg config.MinIOConfig) (Store, error) {
	switch cfg.Backend {
	case "", "file":
		return NewOSFileStore(cfg.Path), nil
	case "minio":
		client, err := storage.NewMinIOStorage(ctx, minioCfg)
		if err != nil {
			return nil, err
		}
		return NewObjectStore(client, cfg.Path), nil
	}
	return nil, fmt.Errorf("unknown seed backend %q", cfg.Backend)
}
