package seed

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/formdrop/formdrop/internal/config"
	"github.com/stretchr/testify/require"
)

func TestOpen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "data.json")

	st, err := Open(ctx, config.SeedConfig{Backend: "file", Path: path}, config.MinIOConfig{})
	require.NoError(t, err)
	require.IsType(t, &FileStore{}, st)

	created, err := st.Ensure(ctx)
	require.NoError(t, err)
	require.True(t, created)

	_, err = Open(ctx, config.SeedConfig{Backend: "minio", Path: "data.json"}, config.MinIOConfig{})
	require.Error(t, err)

	_, err = Open(ctx, config.SeedConfig{Backend: "s4"}, config.MinIOConfig{})
	require.ErrorContains(t, err, "unknown seed backend")
}
