package file

import (
	"context"
	"fmt"
	"os"

	"bindash/internal/model"
	"bindash/internal/repository"
)

// BinFile reads the collection from a local JSON or YAML seed file.
// The file is read on every List call; the service only calls it once.
type BinFile struct {
	path   string
	format repository.Format
}

var _ repository.BinRepository = (*BinFile)(nil)

// NewBinFile resolves the format from the file extension.
func NewBinFile(path string) (*BinFile, error) {
	if path == "" {
		return nil, fmt.Errorf("seed file path is required")
	}
	f, err := repository.FormatFromName(path)
	if err != nil {
		return nil, err
	}
	return &BinFile{path: path, format: f}, nil
}

// List opens and decodes the seed file.
func (r *BinFile) List(ctx context.Context) ([]model.TrashBin, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	f, err := os.Open(r.path)
	if err != nil {
		return nil, fmt.Errorf("open seed file: %w", err)
	}
	defer f.Close()

	return repository.DecodeBins(f, r.format)
}
