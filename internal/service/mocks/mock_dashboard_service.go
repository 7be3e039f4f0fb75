package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"bindash/internal/dashboard"
	"bindash/internal/service"
)

type MockDashboardService struct {
	mock.Mock
}

func (m *MockDashboardService) Load(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockDashboardService) Status() service.LoadStatus {
	args := m.Called()
	return args.Get(0).(service.LoadStatus)
}

func (m *MockDashboardService) View(ctx context.Context, state dashboard.State) (*dashboard.View, error) {
	args := m.Called(ctx, state)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dashboard.View), args.Error(1)
}

func (m *MockDashboardService) Bin(ctx context.Context, id string) (*dashboard.Row, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dashboard.Row), args.Error(1)
}
