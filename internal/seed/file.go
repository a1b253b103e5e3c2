package seed

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/spf13/afero"
)

// FileStore keeps the seed list as an indented JSON file.
type FileStore struct {
	fs   afero.Fs
	path string
}

func NewFileStore(fs afero.Fs, path string) *FileStore {
	return &FileStore{fs: fs, path: path}
}

// NewOSFileStore is a FileStore on the local disk.
func NewOSFileStore(path string) *FileStore {
	return NewFileStore(afero.NewOsFs(), path)
}

func (f *FileStore) Load(_ context.Context) ([]json.RawMessage, error) {
	b, err := afero.ReadFile(f.fs, f.path)
	if err != nil {
		return nil, fmt.Errorf("read seed file: %w", err)
	}
	return decode(b)
}

func (f *FileStore) Ensure(_ context.Context) (bool, error) {
	exists, err := afero.Exists(f.fs, f.path)
	if err != nil {
		return false, fmt.Errorf("stat seed file: %w", err)
	}
	if exists {
		return false, nil
	}
	b, err := encode(Defaults())
	if err != nil {
		return false, err
	}
	if err := afero.WriteFile(f.fs, f.path, b, 0o644); err != nil {
		return false, fmt.Errorf("write seed file: %w", err)
	}
	return true, nil
}
