package postgres

import (
	"context"
	"database/sql"

	"bindash/internal/model"
	"bindash/internal/repository"
)

// BinPostgres is a PostgreSQL implementation of repository.BinRepository.
// It uses database/sql with a single read-only query and contains no business logic.
type BinPostgres struct {
	db *sql.DB
}

// NewBinPostgres creates a new BinPostgres repository.
func NewBinPostgres(db *sql.DB) *BinPostgres {
	return &BinPostgres{db: db}
}

var _ repository.BinRepository = (*BinPostgres)(nil)

// List returns every bin ordered by its insertion position.
func (r *BinPostgres) List(ctx context.Context) ([]model.TrashBin, error) {
	const q = `
		SELECT id, location, fill_level
		FROM trash_bins
		ORDER BY position ASC, id ASC
	`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.TrashBin, 0)
	for rows.Next() {
		var b model.TrashBin
		if err := rows.Scan(&b.ID, &b.Location, &b.FillLevel); err != nil {
			return nil, err
		}
		items = append(items, b)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if err := model.ValidateBins(items); err != nil {
		return nil, err
	}
	return items, nil
}
