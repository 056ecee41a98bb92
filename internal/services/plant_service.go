package services

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/google/uuid"

	dbm "leafcart/internal/models/db_models"
	"leafcart/internal/models/request_models"
	"leafcart/internal/models/response_models"
	"leafcart/internal/repositories"
	"leafcart/pkg/utils"
)

// sortColumns maps the public sortBy parameter to real columns. Keeping
// client input out of the ORDER BY clause also doubles as the allow-list.
var sortColumns = map[string]string{
	"id":                "id",
	"name":              "name",
	"price":             "price",
	"stockAvailable":    "stock_available",
	"careLevel":         "care_level",
	"size":              "size",
	"lightRequirement":  "light_requirement",
	"wateringFrequency": "watering_frequency",
	"createdAt":         "created_at",
	"updatedAt":         "updated_at",
}

type PlantServiceInterface interface {
	ListPlants(ctx context.Context, query request_models.ListPlantsQuery) (*response_models.PlantPage, error)
	GetPlantByID(ctx context.Context, id string) (*response_models.Plant, error)
	CreatePlant(ctx context.Context, req request_models.CreatePlantRequest) (*response_models.Plant, error)
	UpdatePlant(ctx context.Context, id string, req request_models.UpdatePlantRequest) (*response_models.Plant, error)
	DeletePlant(ctx context.Context, id string) (*response_models.Plant, error)
	ListCategories(ctx context.Context) ([]string, error)
	GetStatsOverview(ctx context.Context) (*response_models.PlantStats, error)
}

type PlantService struct {
	plantRepository repositories.PlantRepository
}

func NewPlantService(plantRepository repositories.PlantRepository) PlantServiceInterface {
	return &PlantService{
		plantRepository: plantRepository,
	}
}

func (s *PlantService) ListPlants(ctx context.Context, query request_models.ListPlantsQuery) (*response_models.PlantPage, error) {
	filter, err := buildFilter(query)
	if err != nil {
		return nil, err
	}

	sortColumn, ok := sortColumns[query.SortBy]
	if !ok {
		return nil, fmt.Errorf("%w: %s", utils.ErrInvalidSortBy, query.SortBy)
	}
	descending := query.SortOrder == "desc"

	// Offset pagination. page < 1 is not clamped: the offset goes
	// negative, the store ignores it, and the flags below still hold.
	offset := (query.Page - 1) * query.Limit

	plants, total, err := s.plantRepository.List(ctx, filter, sortColumn, descending, offset, query.Limit)
	if err != nil {
		log.Printf("Error listing plants: %v", err)
		return nil, utils.ErrDatabaseError
	}

	page := &response_models.PlantPage{
		Plants:     make([]response_models.Plant, 0, len(plants)),
		Pagination: response_models.NewPagination(query.Page, query.Limit, total),
	}
	for i := range plants {
		page.Plants = append(page.Plants, toPlantResponse(&plants[i]))
	}

	return page, nil
}

func (s *PlantService) GetPlantByID(ctx context.Context, id string) (*response_models.Plant, error) {
	plant, err := s.findPlant(ctx, id)
	if err != nil {
		return nil, err
	}

	resp := toPlantResponse(plant)
	return &resp, nil
}

func (s *PlantService) CreatePlant(ctx context.Context, req request_models.CreatePlantRequest) (*response_models.Plant, error) {
	plant := &dbm.Plant{
		Name:           strings.TrimSpace(req.Name),
		Categories:     trimAll(req.Categories),
		StockAvailable: true,
		Description:    strings.TrimSpace(req.Description),
		ImageURL:       req.ImageURL,
		CareLevel:      dbm.CareLevelEasy,
		Size:           dbm.SizeMedium,
		LightReq:       dbm.LightIndirect,
		WateringFreq:   dbm.WateringModerate,
	}
	if req.Price != nil {
		plant.Price = *req.Price
	}
	if req.StockAvailable != nil {
		plant.StockAvailable = *req.StockAvailable
	}
	if req.ImageURL == "" {
		plant.ImageURL = dbm.DefaultImageURL
	}
	if req.CareLevel != "" {
		plant.CareLevel = dbm.CareLevel(req.CareLevel)
	}
	if req.Size != "" {
		plant.Size = dbm.PlantSize(req.Size)
	}
	if req.LightRequirement != "" {
		plant.LightReq = dbm.LightRequirement(req.LightRequirement)
	}
	if req.WateringFrequency != "" {
		plant.WateringFreq = dbm.WateringFrequency(req.WateringFrequency)
	}

	if err := validatePlant(plant, req.Price == nil); err != nil {
		return nil, err
	}

	if _, err := s.plantRepository.Create(ctx, plant); err != nil {
		log.Printf("Error creating plant: %v", err)
		return nil, utils.ErrDatabaseError
	}

	resp := toPlantResponse(plant)
	return &resp, nil
}

func (s *PlantService) UpdatePlant(ctx context.Context, id string, req request_models.UpdatePlantRequest) (*response_models.Plant, error) {
	plant, err := s.findPlant(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		plant.Name = strings.TrimSpace(*req.Name)
	}
	if req.Price != nil {
		plant.Price = *req.Price
	}
	if req.Categories != nil {
		plant.Categories = trimAll(req.Categories)
	}
	if req.StockAvailable != nil {
		plant.StockAvailable = *req.StockAvailable
	}
	if req.Description != nil {
		plant.Description = strings.TrimSpace(*req.Description)
	}
	if req.ImageURL != nil {
		plant.ImageURL = *req.ImageURL
	}
	if req.CareLevel != nil {
		plant.CareLevel = dbm.CareLevel(*req.CareLevel)
	}
	if req.Size != nil {
		plant.Size = dbm.PlantSize(*req.Size)
	}
	if req.LightRequirement != nil {
		plant.LightReq = dbm.LightRequirement(*req.LightRequirement)
	}
	if req.WateringFrequency != nil {
		plant.WateringFreq = dbm.WateringFrequency(*req.WateringFrequency)
	}

	if err := validatePlant(plant, false); err != nil {
		return nil, err
	}

	if err := s.plantRepository.Update(ctx, plant); err != nil {
		log.Printf("Error updating plant: %v", err)
		return nil, utils.ErrDatabaseError
	}

	resp := toPlantResponse(plant)
	return &resp, nil
}

func (s *PlantService) DeletePlant(ctx context.Context, id string) (*response_models.Plant, error) {
	plant, err := s.findPlant(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.plantRepository.Delete(ctx, plant.ID); err != nil {
		log.Printf("Error deleting plant: %v", err)
		return nil, utils.ErrDatabaseError
	}

	resp := toPlantResponse(plant)
	return &resp, nil
}

func (s *PlantService) ListCategories(ctx context.Context) ([]string, error) {
	categories, err := s.plantRepository.ListCategories(ctx)
	if err != nil {
		log.Printf("Error listing categories: %v", err)
		return nil, utils.ErrDatabaseError
	}

	if categories == nil {
		categories = []string{}
	}
	return categories, nil
}

func (s *PlantService) GetStatsOverview(ctx context.Context) (*response_models.PlantStats, error) {
	row, err := s.plantRepository.Stats(ctx)
	if err != nil {
		log.Printf("Error fetching plant stats: %v", err)
		return nil, utils.ErrDatabaseError
	}

	stats := &response_models.PlantStats{
		TotalPlants:      row.TotalPlants,
		InStockPlants:    row.InStockPlants,
		OutOfStockPlants: row.OutOfStockPlants,
		AveragePrice:     row.AveragePrice,
		TopCategories:    make([]response_models.CategoryCount, 0, len(row.TopCategories)),
	}
	for _, c := range row.TopCategories {
		stats.TopCategories = append(stats.TopCategories, response_models.CategoryCount{
			Category: c.Category,
			Count:    c.Count,
		})
	}

	return stats, nil
}

// ---------- helpers ----------

func (s *PlantService) findPlant(ctx context.Context, id string) (*dbm.Plant, error) {
	plantID, err := uuid.Parse(id)
	if err != nil {
		return nil, utils.ErrPlantNotFound
	}

	plant, err := s.plantRepository.GetByID(ctx, plantID)
	if err != nil {
		log.Printf("Error fetching plant: %v", err)
		return nil, utils.ErrDatabaseError
	}
	if plant == nil {
		return nil, utils.ErrPlantNotFound
	}
	return plant, nil
}

func buildFilter(query request_models.ListPlantsQuery) (repositories.PlantFilter, error) {
	filter := repositories.PlantFilter{
		Search:         query.Search,
		Category:       query.Category,
		MinPrice:       query.MinPrice,
		MaxPrice:       query.MaxPrice,
		StockAvailable: query.StockAvailable,
	}

	// Enum filters are exact match; unknown values are rejected here at
	// the edge instead of silently matching nothing.
	if query.CareLevel != "" {
		if !dbm.CareLevel(query.CareLevel).Valid() {
			return filter, fmt.Errorf("%w: careLevel %q", utils.ErrInvalidFilter, query.CareLevel)
		}
		filter.CareLevel = query.CareLevel
	}
	if query.Size != "" {
		if !dbm.PlantSize(query.Size).Valid() {
			return filter, fmt.Errorf("%w: size %q", utils.ErrInvalidFilter, query.Size)
		}
		filter.Size = query.Size
	}
	if query.LightRequirement != "" {
		if !dbm.LightRequirement(query.LightRequirement).Valid() {
			return filter, fmt.Errorf("%w: lightRequirement %q", utils.ErrInvalidFilter, query.LightRequirement)
		}
		filter.LightRequirement = query.LightRequirement
	}
	if query.WateringFrequency != "" {
		if !dbm.WateringFrequency(query.WateringFrequency).Valid() {
			return filter, fmt.Errorf("%w: wateringFrequency %q", utils.ErrInvalidFilter, query.WateringFrequency)
		}
		filter.WateringFrequency = query.WateringFrequency
	}

	return filter, nil
}

func validatePlant(plant *dbm.Plant, missingPrice bool) error {
	var messages []string

	if len(plant.Name) < 2 || len(plant.Name) > 100 {
		messages = append(messages, "Plant name must be between 2 and 100 characters")
	}
	if missingPrice {
		messages = append(messages, "Price is required")
	} else if plant.Price < 0 || plant.Price > 10000 {
		messages = append(messages, "Price must be between 0 and 10000")
	}
	if len(plant.Categories) < 1 || len(plant.Categories) > 10 {
		messages = append(messages, "Plant must have at least 1 category and maximum 10 categories")
	}
	if len(plant.Description) > 500 {
		messages = append(messages, "Description cannot exceed 500 characters")
	}
	if !plant.CareLevel.Valid() {
		messages = append(messages, "careLevel must be one of Easy, Medium, Hard")
	}
	if !plant.Size.Valid() {
		messages = append(messages, "size must be one of Small, Medium, Large")
	}
	if !plant.LightReq.Valid() {
		messages = append(messages, "lightRequirement must be one of Low Light, Indirect Light, Bright Light, Direct Sunlight")
	}
	if !plant.WateringFreq.Valid() {
		messages = append(messages, "wateringFrequency must be one of Low, Moderate, High")
	}

	if len(messages) > 0 {
		return utils.NewValidationError(messages...)
	}
	return nil
}

func trimAll(values []string) []string {
	trimmed := make([]string, 0, len(values))
	for _, v := range values {
		trimmed = append(trimmed, strings.TrimSpace(v))
	}
	return trimmed
}

func toPlantResponse(plant *dbm.Plant) response_models.Plant {
	return response_models.Plant{
		ID:                plant.ID.String(),
		Name:              plant.Name,
		Price:             plant.Price,
		Categories:        plant.Categories,
		StockAvailable:    plant.StockAvailable,
		Description:       plant.Description,
		ImageURL:          plant.ImageURL,
		CareLevel:         string(plant.CareLevel),
		Size:              string(plant.Size),
		LightRequirement:  string(plant.LightReq),
		WateringFrequency: string(plant.WateringFreq),
		CreatedAt:         plant.CreatedAt,
		UpdatedAt:         plant.UpdatedAt,
	}
}
