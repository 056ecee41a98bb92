package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"leafcart/internal/models/request_models"
	"leafcart/internal/models/response_models"
)

type MockPlantService struct {
	mock.Mock
}

func (m *MockPlantService) ListPlants(ctx context.Context, query request_models.ListPlantsQuery) (*response_models.PlantPage, error) {
	args := m.Called(ctx, query)
	if res := args.Get(0); res != nil {
		return res.(*response_models.PlantPage), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockPlantService) GetPlantByID(ctx context.Context, id string) (*response_models.Plant, error) {
	args := m.Called(ctx, id)
	if res := args.Get(0); res != nil {
		return res.(*response_models.Plant), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockPlantService) CreatePlant(ctx context.Context, req request_models.CreatePlantRequest) (*response_models.Plant, error) {
	args := m.Called(ctx, req)
	if res := args.Get(0); res != nil {
		return res.(*response_models.Plant), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockPlantService) UpdatePlant(ctx context.Context, id string, req request_models.UpdatePlantRequest) (*response_models.Plant, error) {
	args := m.Called(ctx, id, req)
	if res := args.Get(0); res != nil {
		return res.(*response_models.Plant), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockPlantService) DeletePlant(ctx context.Context, id string) (*response_models.Plant, error) {
	args := m.Called(ctx, id)
	if res := args.Get(0); res != nil {
		return res.(*response_models.Plant), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockPlantService) ListCategories(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if res := args.Get(0); res != nil {
		return res.([]string), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockPlantService) GetStatsOverview(ctx context.Context) (*response_models.PlantStats, error) {
	args := m.Called(ctx)
	if res := args.Get(0); res != nil {
		return res.(*response_models.PlantStats), args.Error(1)
	}
	return nil, args.Error(1)
}
