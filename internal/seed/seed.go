// Package seed opens the bin repository selected by SEED_SOURCE together with
// the connections it depends on.
package seed

import (
	"context"
	"database/sql"
	"fmt"

	"bindash/internal/config"
	"bindash/internal/database"
	"bindash/internal/database/migration"
	"bindash/internal/logging"
	"bindash/internal/model"
	"bindash/internal/repository"
	"bindash/internal/repository/file"
	"bindash/internal/repository/memory"
	"bindash/internal/repository/objectstore"
	"bindash/internal/repository/postgres"
	"bindash/internal/storage"
)

// Source is an opened seed repository. DB is non-nil only for the postgres source.
type Source struct {
	Repo repository.BinRepository
	DB   *sql.DB

	store     storage.Storage
	objectKey string
}

// Ping checks that the dependency behind Repo is reachable: the database for
// the postgres source, the seed object for the object source. Other sources
// have nothing to reach.
func (s *Source) Ping(ctx context.Context) error {
	switch {
	case s.DB != nil:
		return s.DB.PingContext(ctx)
	case s.store != nil:
		if _, err := s.store.Stat(ctx, s.objectKey); err != nil {
			return fmt.Errorf("seed object %q: %w", s.objectKey, err)
		}
	}
	return nil
}

// Close releases the database pool, if any.
func (s *Source) Close() error {
	if s.DB != nil {
		return s.DB.Close()
	}
	return nil
}

// Dependency constructors, replaced in tests.
var (
	openPostgres = database.Open
	openMinIO    = storage.NewMinIO
	migrate      = migration.EnsureMigrated
)

// Open builds the repository for cfg.Seed.Source.
func Open(ctx context.Context, cfg *config.AppConfig, log *logging.Logger) (*Source, error) {
	switch cfg.Seed.Source {
	case config.SeedMemory:
		return &Source{Repo: memory.NewSeededBinMemory()}, nil

	case config.SeedFile:
		repo, err := file.NewBinFile(cfg.Seed.File)
		if err != nil {
			return nil, err
		}
		return &Source{Repo: repo}, nil

	case config.SeedObject:
		store, err := openMinIO(cfg.MinIO)
		if err != nil {
			return nil, fmt.Errorf("initialize object storage: %w", err)
		}
		repo, err := objectstore.NewBinObject(store, cfg.Seed.ObjectKey)
		if err != nil {
			return nil, err
		}
		return &Source{Repo: repo, store: store, objectKey: cfg.Seed.ObjectKey}, nil

	case config.SeedPostgres:
		db, err := openPostgres(ctx, cfg.Database)
		if err != nil {
			return nil, fmt.Errorf("connect to database: %w", err)
		}
		if cfg.Database.AutoMigrate {
			if err := migrate(ctx, db, log, cfg.Database.Host, memory.SeedBins()); err != nil {
				_ = db.Close()
				return nil, err
			}
		}
		return &Source{Repo: postgres.NewBinPostgres(db), DB: db}, nil

	default:
		return nil, fmt.Errorf("unknown seed source %q", cfg.Seed.Source)
	}
}

// Failed is a repository whose List always returns err. It lets the service
// start and report an unusable seed source as a load failure.
func Failed(err error) repository.BinRepository {
	return failedRepository{err: err}
}

type failedRepository struct {
	err error
}

func (r failedRepository) List(context.Context) ([]model.TrashBin, error) {
	return nil, r.err
}
