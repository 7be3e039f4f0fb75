package service

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"bindash/internal/dashboard"
	"bindash/internal/model"
	"bindash/internal/repository"
)

var (
	ErrIDRequired = errors.New("id is required")
	ErrNotFound   = errors.New("trash bin not found")
	ErrNotLoaded  = errors.New("trash bins are still loading")
	ErrLoadFailed = errors.New("trash bins failed to load")
)

// LoadStatus reports the outcome of the one-time collection load.
type LoadStatus struct {
	Loading  bool      `json:"loading"`
	Error    string    `json:"error,omitempty"`
	Count    int       `json:"count"`
	LoadedAt time.Time `json:"loaded_at,omitzero"`
}

// DashboardService defines the use cases behind the dashboard.
type DashboardService interface {
	// Load fetches the collection from the repository once. Later calls return
	// the first outcome without touching the repository again.
	Load(ctx context.Context) error

	// Status returns the current load status.
	Status() LoadStatus

	// View derives the filtered, sorted and classified rows for state.
	View(ctx context.Context, state dashboard.State) (*dashboard.View, error)

	// Bin returns a single classified bin by ID.
	Bin(ctx context.Context, id string) (*dashboard.Row, error)
}

// dashboardService is a concrete implementation of DashboardService.
// The bin snapshot is written once by Load and read concurrently afterwards.
type dashboardService struct {
	repo    repository.BinRepository
	metrics *seedMetrics
	tracer  trace.Tracer
	now     func() time.Time

	loadMu   sync.Mutex
	mu       sync.RWMutex
	loaded   bool
	bins     []model.TrashBin
	loadErr  error
	loadedAt time.Time
}

// NewDashboardService constructs a DashboardService. Seed gauges are registered on reg.
func NewDashboardService(repo repository.BinRepository, reg prometheus.Registerer) (DashboardService, error) {
	m, err := newSeedMetrics(reg)
	if err != nil {
		return nil, err
	}
	return &dashboardService{
		repo:    repo,
		metrics: m,
		tracer:  otel.Tracer("bindash/internal/service"),
		now:     time.Now,
	}, nil
}

func (s *dashboardService) Load(ctx context.Context) error {
	ctx, span := s.tracer.Start(ctx, "DashboardService.Load")
	defer span.End()

	// loadMu serializes loaders; mu stays free so readers see Loading meanwhile.
	s.loadMu.Lock()
	defer s.loadMu.Unlock()

	s.mu.RLock()
	loaded, loadErr := s.loaded, s.loadErr
	s.mu.RUnlock()
	if loaded {
		return loadErr
	}

	bins, err := s.repo.List(ctx)
	if err == nil {
		err = model.ValidateBins(bins)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.loaded = true
	s.loadedAt = s.now().UTC()
	if err != nil {
		s.loadErr = fmt.Errorf("%w: %w", ErrLoadFailed, err)
		s.metrics.observeFailure()
		span.RecordError(err)
		span.SetStatus(codes.Error, "load failed")
		return s.loadErr
	}

	s.bins = slices.Clone(bins)
	s.metrics.observe(s.bins)
	span.SetAttributes(attribute.Int("bins.count", len(s.bins)))
	return nil
}

func (s *dashboardService) Status() LoadStatus {
	s.mu.RLock()
	defer s.mu.RUnlock()

	st := LoadStatus{Loading: !s.loaded, Count: len(s.bins), LoadedAt: s.loadedAt}
	if s.loadErr != nil {
		st.Error = s.loadErr.Error()
	}
	return st
}

// snapshot returns the loaded bins or the reason they are unavailable.
// The returned slice must not be modified.
func (s *dashboardService) snapshot() ([]model.TrashBin, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.loaded {
		return nil, ErrNotLoaded
	}
	if s.loadErr != nil {
		return nil, s.loadErr
	}
	return s.bins, nil
}

func (s *dashboardService) View(ctx context.Context, state dashboard.State) (*dashboard.View, error) {
	_, span := s.tracer.Start(ctx, "DashboardService.View", trace.WithAttributes(
		attribute.String("view.search", state.Search),
		attribute.String("view.sort", string(state.SortField)),
		attribute.String("view.order", string(state.Direction)),
	))
	defer span.End()

	bins, err := s.snapshot()
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	v := dashboard.Derive(bins, state)
	span.SetAttributes(attribute.Int("view.total", v.Total))
	return &v, nil
}

func (s *dashboardService) Bin(ctx context.Context, id string) (*dashboard.Row, error) {
	_, span := s.tracer.Start(ctx, "DashboardService.Bin", trace.WithAttributes(attribute.String("bin.id", id)))
	defer span.End()

	if id == "" {
		return nil, ErrIDRequired
	}
	bins, err := s.snapshot()
	if err != nil {
		return nil, err
	}
	for _, b := range bins {
		if b.ID == id {
			row := dashboard.NewRow(b)
			return &row, nil
		}
	}
	return nil, ErrNotFound
}
