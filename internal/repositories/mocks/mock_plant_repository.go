package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	dbm "leafcart/internal/models/db_models"
	"leafcart/internal/repositories"
)

type MockPlantRepository struct {
	mock.Mock
}

func (m *MockPlantRepository) Create(ctx context.Context, plant *dbm.Plant) (uuid.UUID, error) {
	args := m.Called(ctx, plant)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

func (m *MockPlantRepository) GetByID(ctx context.Context, id uuid.UUID) (*dbm.Plant, error) {
	args := m.Called(ctx, id)
	if res := args.Get(0); res != nil {
		return res.(*dbm.Plant), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockPlantRepository) Update(ctx context.Context, plant *dbm.Plant) error {
	args := m.Called(ctx, plant)
	return args.Error(0)
}

func (m *MockPlantRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockPlantRepository) List(ctx context.Context, filter repositories.PlantFilter, sortColumn string, descending bool, offset, limit int) ([]dbm.Plant, int64, error) {
	args := m.Called(ctx, filter, sortColumn, descending, offset, limit)
	if res := args.Get(0); res != nil {
		return res.([]dbm.Plant), args.Get(1).(int64), args.Error(2)
	}
	return nil, args.Get(1).(int64), args.Error(2)
}

func (m *MockPlantRepository) ListCategories(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if res := args.Get(0); res != nil {
		return res.([]string), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockPlantRepository) Stats(ctx context.Context) (*repositories.PlantStatsRow, error) {
	args := m.Called(ctx)
	if res := args.Get(0); res != nil {
		return res.(*repositories.PlantStatsRow), args.Error(1)
	}
	return nil, args.Error(1)
}
