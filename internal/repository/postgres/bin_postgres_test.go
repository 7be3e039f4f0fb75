package postgres

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bindash/internal/model"
)

func TestBinPostgres_List(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewBinPostgres(db)
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		rows := sqlmock.NewRows([]string{"id", "location", "fill_level"}).
			AddRow("1", "Park", 45).
			AddRow("2", "Street A", 100)

		mock.ExpectQuery("SELECT (.+) FROM trash_bins ORDER BY").WillReturnRows(rows)

		got, err := repo.List(ctx)

		require.NoError(t, err)
		assert.Equal(t, []model.TrashBin{
			{ID: "1", Location: "Park", FillLevel: 45},
			{ID: "2", Location: "Street A", FillLevel: 100},
		}, got)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("empty table", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM trash_bins").
			WillReturnRows(sqlmock.NewRows([]string{"id", "location", "fill_level"}))

		got, err := repo.List(ctx)

		require.NoError(t, err)
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})

	t.Run("query error", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM trash_bins").WillReturnError(errors.New("connection refused"))

		_, err := repo.List(ctx)

		assert.EqualError(t, err, "connection refused")
	})

	t.Run("out of range row", func(t *testing.T) {
		rows := sqlmock.NewRows([]string{"id", "location", "fill_level"}).AddRow("9", "Dock", 130)
		mock.ExpectQuery("SELECT (.+) FROM trash_bins").WillReturnRows(rows)

		_, err := repo.List(ctx)

		assert.ErrorIs(t, err, model.ErrInvalidBin)
	})

	t.Run("row error", func(t *testing.T) {
		rows := sqlmock.NewRows([]string{"id", "location", "fill_level"}).
			AddRow("1", "Park", 45).
			RowError(0, errors.New("broken row"))
		mock.ExpectQuery("SELECT (.+) FROM trash_bins").WillReturnRows(rows)

		_, err := repo.List(ctx)

		assert.EqualError(t, err, "broken row")
	})
}
