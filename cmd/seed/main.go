// Command seed creates the static seed document used by GET /api when it
// does not exist yet, then prints the entries it holds.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/formdrop/formdrop/internal/config"
	"github.com/formdrop/formdrop/internal/seed"
	"github.com/formdrop/formdrop/pkg/logger"
)

func main() {
	path := flag.String("file", "", "seed document path or object key (overrides SEED_FILE)")
	quiet := flag.Bool("q", false, "only print the entry count")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Fatalf("failed to load config: %v", err)
	}
	logger.Init(cfg.LogLevel)
	if *path != "" {
		cfg.Seed.Path = *path
	}

	if err := run(context.Background(), cfg, *quiet); err != nil {
		logger.Fatalf("seed: %v", err)
	}
}

func run(ctx context.Context, cfg *config.Config, quiet bool) error {
	st, err := seed.Open(ctx, cfg.Seed, cfg.MinIO)
	if err != nil {
		return err
	}
	created, err := st.Ensure(ctx)
	if err != nil {
		return err
	}
	if created {
		logger.Infof("created seed data at %s", cfg.Seed.Path)
	} else {
		logger.Infof("seed data already present at %s", cfg.Seed.Path)
	}
	entries, err := st.Load(ctx)
	if err != nil {
		return err
	}
	if quiet {
		fmt.Fprintln(os.Stdout, len(entries))
		return nil
	}
	for _, e := range entries {
		fmt.Fprintln(os.Stdout, string(e))
	}
	return nil
}
