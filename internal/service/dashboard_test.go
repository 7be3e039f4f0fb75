package service

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"bindash/internal/dashboard"
	"bindash/internal/model"
	repoMocks "bindash/internal/repository/mocks"
)

func seedBins() []model.TrashBin {
	return []model.TrashBin{
		{ID: "1", Location: "Park", FillLevel: 45},
		{ID: "2", Location: "Street A", FillLevel: 100},
		{ID: "3", Location: "Mall Entrance", FillLevel: 75},
		{ID: "4", Location: "School", FillLevel: 60},
		{ID: "5", Location: "Hospital", FillLevel: 25},
	}
}

func newService(t *testing.T, repo *repoMocks.MockBinRepository) (*dashboardService, *prometheus.Registry) {
	t.Helper()
	reg := prometheus.NewRegistry()
	svc, err := NewDashboardService(repo, reg)
	require.NoError(t, err)
	return svc.(*dashboardService), reg
}

func TestDashboardService_Load(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name       string
		setupMocks func(mRepo *repoMocks.MockBinRepository)
		wantErr    error
		wantErrMsg string
		wantCount  int
	}{
		{
			name: "happy path",
			setupMocks: func(mRepo *repoMocks.MockBinRepository) {
				mRepo.On("List", mock.Anything).Return(seedBins(), nil).Once()
			},
			wantCount: 5,
		},
		{
			name: "repository error",
			setupMocks: func(mRepo *repoMocks.MockBinRepository) {
				mRepo.On("List", mock.Anything).Return(nil, errors.New("connection refused")).Once()
			},
			wantErr:    ErrLoadFailed,
			wantErrMsg: "trash bins failed to load: connection refused",
		},
		{
			name: "invalid collection",
			setupMocks: func(mRepo *repoMocks.MockBinRepository) {
				mRepo.On("List", mock.Anything).Return([]model.TrashBin{{ID: "1"}, {ID: "1"}}, nil).Once()
			},
			wantErr: model.ErrInvalidBin,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mRepo := new(repoMocks.MockBinRepository)
			tt.setupMocks(mRepo)
			svc, _ := newService(t, mRepo)

			err := svc.Load(ctx)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				if tt.wantErrMsg != "" {
					assert.EqualError(t, err, tt.wantErrMsg)
				}
				assert.Equal(t, 0.0, testutil.ToFloat64(svc.metrics.loadSuccess))
			} else {
				assert.NoError(t, err)
				assert.Equal(t, 1.0, testutil.ToFloat64(svc.metrics.loadSuccess))
			}

			st := svc.Status()
			assert.False(t, st.Loading)
			assert.Equal(t, tt.wantCount, st.Count)
			assert.Equal(t, tt.wantErr != nil, st.Error != "")
			mRepo.AssertExpectations(t)
		})
	}
}

func TestDashboardService_ReadersDuringLoad(t *testing.T) {
	entered := make(chan struct{})
	release := make(chan struct{})

	mRepo := new(repoMocks.MockBinRepository)
	mRepo.On("List", mock.Anything).Run(func(mock.Arguments) {
		close(entered)
		<-release
	}).Return(seedBins(), nil).Once()
	svc, _ := newService(t, mRepo)

	done := make(chan error, 1)
	go func() { done <- svc.Load(context.Background()) }()
	<-entered

	_, err := svc.View(context.Background(), dashboard.DefaultState())
	assert.ErrorIs(t, err, ErrNotLoaded)
	_, err = svc.Bin(context.Background(), "1")
	assert.ErrorIs(t, err, ErrNotLoaded)
	st := svc.Status()
	assert.True(t, st.Loading)
	assert.True(t, st.LoadedAt.IsZero())

	close(release)
	require.NoError(t, <-done)
	assert.False(t, svc.Status().Loading)
	assert.Equal(t, 5, svc.Status().Count)
	mRepo.AssertExpectations(t)
}

func TestLoadStatus_JSON(t *testing.T) {
	mRepo := new(repoMocks.MockBinRepository)
	mRepo.On("List", mock.Anything).Return(seedBins(), nil).Once()
	svc, _ := newService(t, mRepo)

	raw, err := json.Marshal(svc.Status())
	require.NoError(t, err)
	assert.JSONEq(t, `{"loading":true,"count":0}`, string(raw))

	svc.now = func() time.Time { return time.Date(2026, 10, 17, 9, 30, 0, 0, time.UTC) }
	require.NoError(t, svc.Load(context.Background()))

	raw, err = json.Marshal(svc.Status())
	require.NoError(t, err)
	assert.JSONEq(t, `{"loading":false,"count":5,"loaded_at":"2026-10-17T09:30:00Z"}`, string(raw))
}

func TestDashboardService_LoadOnce(t *testing.T) {
	mRepo := new(repoMocks.MockBinRepository)
	mRepo.On("List", mock.Anything).Return(nil, errors.New("boom")).Once()
	svc, _ := newService(t, mRepo)

	first := svc.Load(context.Background())
	second := svc.Load(context.Background())

	assert.Error(t, first)
	assert.Equal(t, first, second)
	mRepo.AssertNumberOfCalls(t, "List", 1)
}

func TestDashboardService_Metrics(t *testing.T) {
	mRepo := new(repoMocks.MockBinRepository)
	mRepo.On("List", mock.Anything).Return(seedBins(), nil).Once()
	svc, _ := newService(t, mRepo)

	require.NoError(t, svc.Load(context.Background()))

	assert.Equal(t, 2.0, testutil.ToFloat64(svc.metrics.byClass.WithLabelValues("high")))
	assert.Equal(t, 1.0, testutil.ToFloat64(svc.metrics.byClass.WithLabelValues("medium")))
	assert.Equal(t, 2.0, testutil.ToFloat64(svc.metrics.byClass.WithLabelValues("low")))
	assert.Equal(t, 75.0, testutil.ToFloat64(svc.metrics.fillLevel.WithLabelValues("3", "Mall Entrance")))
}

func TestNewDashboardService_DuplicateRegistration(t *testing.T) {
	reg := prometheus.NewRegistry()
	_, err := NewDashboardService(new(repoMocks.MockBinRepository), reg)
	require.NoError(t, err)

	_, err = NewDashboardService(new(repoMocks.MockBinRepository), reg)
	assert.Error(t, err)
}

func TestDashboardService_View(t *testing.T) {
	ctx := context.Background()

	t.Run("before load", func(t *testing.T) {
		svc, _ := newService(t, new(repoMocks.MockBinRepository))

		_, err := svc.View(ctx, dashboard.DefaultState())

		assert.ErrorIs(t, err, ErrNotLoaded)
		assert.True(t, svc.Status().Loading)
	})

	t.Run("after failed load", func(t *testing.T) {
		mRepo := new(repoMocks.MockBinRepository)
		mRepo.On("List", mock.Anything).Return(nil, errors.New("seed unreachable")).Once()
		svc, _ := newService(t, mRepo)
		_ = svc.Load(ctx)

		_, err := svc.View(ctx, dashboard.DefaultState())

		assert.ErrorIs(t, err, ErrLoadFailed)
		assert.ErrorContains(t, err, "seed unreachable")
	})

	t.Run("filter and sort", func(t *testing.T) {
		mRepo := new(repoMocks.MockBinRepository)
		mRepo.On("List", mock.Anything).Return(seedBins(), nil).Once()
		svc, _ := newService(t, mRepo)
		require.NoError(t, svc.Load(ctx))

		v, err := svc.View(ctx, dashboard.State{Search: "A", SortField: dashboard.SortByFillLevel, Direction: dashboard.Ascending})

		require.NoError(t, err)
		require.Equal(t, 4, v.Total)
		assert.Equal(t, []string{"5", "1", "3", "2"}, []string{v.Rows[0].ID, v.Rows[1].ID, v.Rows[2].ID, v.Rows[3].ID})
	})

	t.Run("snapshot is isolated from repository slice", func(t *testing.T) {
		bins := seedBins()
		mRepo := new(repoMocks.MockBinRepository)
		mRepo.On("List", mock.Anything).Return(bins, nil).Once()
		svc, _ := newService(t, mRepo)
		require.NoError(t, svc.Load(ctx))

		bins[0].Location = "Tampered"

		v, err := svc.View(ctx, dashboard.DefaultState())
		require.NoError(t, err)
		assert.Equal(t, "Park", v.Rows[0].Location)
	})
}

func TestDashboardService_ConcurrentViews(t *testing.T) {
	mRepo := new(repoMocks.MockBinRepository)
	mRepo.On("List", mock.Anything).Return(seedBins(), nil).Once()
	svc, _ := newService(t, mRepo)
	require.NoError(t, svc.Load(context.Background()))

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(desc bool) {
			defer wg.Done()
			st := dashboard.DefaultState()
			if desc {
				st = st.ToggleSort(dashboard.SortByID)
			}
			v, err := svc.View(context.Background(), st)
			assert.NoError(t, err)
			assert.Equal(t, 5, v.Total)
		}(i%2 == 0)
	}
	wg.Wait()
}

func TestDashboardService_Bin(t *testing.T) {
	ctx := context.Background()
	mRepo := new(repoMocks.MockBinRepository)
	mRepo.On("List", mock.Anything).Return(seedBins(), nil).Once()
	svc, _ := newService(t, mRepo)
	require.NoError(t, svc.Load(ctx))

	t.Run("found", func(t *testing.T) {
		row, err := svc.Bin(ctx, "4")
		require.NoError(t, err)
		assert.Equal(t, "School", row.Location)
		assert.Equal(t, dashboard.FillMedium, row.Class)
		assert.Equal(t, "orange", row.Color)
	})

	t.Run("not found", func(t *testing.T) {
		_, err := svc.Bin(ctx, "42")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("empty id", func(t *testing.T) {
		_, err := svc.Bin(ctx, "")
		assert.ErrorIs(t, err, ErrIDRequired)
	})
}
