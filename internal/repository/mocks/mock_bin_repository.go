package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"bindash/internal/model"
)

type MockBinRepository struct {
	mock.Mock
}

func (m *MockBinRepository) List(ctx context.Context) ([]model.TrashBin, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.TrashBin), args.Error(1)
}
