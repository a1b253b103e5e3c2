package seed

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
)

// ObjectClient is the subset of the object storage client used for seeds.
type ObjectClient interface {
	UploadFile(ctx context.Context, key string, reader io.Reader, size int64, contentType string) error
	DownloadFile(ctx context.Context, key string) (io.ReadCloser, error)
	Exists(ctx context.Context, key string) (bool, error)
}

// ObjectStore keeps the seed document under one key of a bucket.
type ObjectStore struct {
	client ObjectClient
	key    string
}

func NewObjectStore(client ObjectClient, key string) *ObjectStore {
	return &ObjectStore{client: client, key: key}
}

func (o *ObjectStore) Load(ctx context.Context) ([]json.RawMessage, error) {
	rc, err := o.client.DownloadFile(ctx, o.key)
	if err != nil {
		return nil, fmt.Errorf("download seed object: %w", err)
	}
	defer rc.Close()
	b, err := io.ReadAll(rc)
	if err != nil {
		return nil, fmt.Errorf("read seed object: %w", err)
	}
	return decode(b)
}

func (o *ObjectStore) Ensure(ctx context.Context) (bool, error) {
	ok, err := o.client.Exists(ctx, o.key)
	if err != nil {
		return false, fmt.Errorf("stat seed object: %w", err)
	}
	if ok {
		return false, nil
	}
	b, err := encode(Defaults())
	if err != nil {
		return false, err
	}
	if err := o.client.UploadFile(ctx, o.key, bytes.NewReader(b), int64(len(b)), "application/json"); err != nil {
		return false, fmt.Errorf("upload seed object: %w", err)
	}
	return true, nil
}
