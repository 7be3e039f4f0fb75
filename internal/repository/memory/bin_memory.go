package memory

import (
	"context"
	"slices"

	"bindash/internal/model"
	"bindash/internal/repository"
)

// SeedBins is the built-in collection served when no other source is configured.
func SeedBins() []model.TrashBin {
	return []model.TrashBin{
		{ID: "1", Location: "Park", FillLevel: 45},
		{ID: "2", Location: "Street A", FillLevel: 100},
		{ID: "3", Location: "Mall Entrance", FillLevel: 75},
		{ID: "4", Location: "School", FillLevel: 60},
		{ID: "5", Location: "Hospital", FillLevel: 25},
	}
}

// BinMemory serves a fixed collection from memory.
type BinMemory struct {
	bins []model.TrashBin
}

var _ repository.BinRepository = (*BinMemory)(nil)

// NewBinMemory copies bins so later changes by the caller are not observed.
func NewBinMemory(bins []model.TrashBin) *BinMemory {
	return &BinMemory{bins: slices.Clone(bins)}
}

// NewSeededBinMemory serves SeedBins.
func NewSeededBinMemory() *BinMemory {
	return NewBinMemory(SeedBins())
}

// List returns a copy of the collection.
func (r *BinMemory) List(ctx context.Context) ([]model.TrashBin, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	out := slices.Clone(r.bins)
	if out == nil {
		out = []model.TrashBin{}
	}
	return out, nil
}
