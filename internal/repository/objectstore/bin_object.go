package objectstore

import (
	"context"
	"fmt"

	"bindash/internal/model"
	"bindash/internal/repository"
	"bindash/internal/storage"
)

// BinObject reads the collection from a JSON or YAML object in S3-compatible storage.
type BinObject struct {
	store  storage.Storage
	key    string
	format repository.Format
}

var _ repository.BinRepository = (*BinObject)(nil)

// NewBinObject resolves the format from the object key's extension.
func NewBinObject(store storage.Storage, key string) (*BinObject, error) {
	if key == "" {
		return nil, fmt.Errorf("seed object key is required")
	}
	f, err := repository.FormatFromName(key)
	if err != nil {
		return nil, err
	}
	return &BinObject{store: store, key: key, format: f}, nil
}

// List streams and decodes the seed object.
func (r *BinObject) List(ctx context.Context) ([]model.TrashBin, error) {
	rc, _, err := r.store.Get(ctx, r.key)
	if err != nil {
		return nil, fmt.Errorf("get seed object %s: %w", r.key, err)
	}
	defer rc.Close()

	return repository.DecodeBins(rc, r.format)
}
