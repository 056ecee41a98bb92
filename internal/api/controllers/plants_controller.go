package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"leafcart/internal/models/request_models"
	"leafcart/internal/services"
	"leafcart/pkg/utils"
)

const (
	defaultPage  = 1
	defaultLimit = 12
)

type PlantsController struct {
	plantService services.PlantServiceInterface
}

func NewPlantsController(plantService services.PlantServiceInterface) *PlantsController {
	return &PlantsController{
		plantService: plantService,
	}
}

func (p *PlantsController) ListPlants(c *gin.Context) {
	query := parseListQuery(c)

	page, err := p.plantService.ListPlants(c.Request.Context(), query)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, page, "Plants fetched successfully")
}

func (p *PlantsController) GetPlantByID(c *gin.Context) {
	plantID := c.Param("id")
	if plantID == "" {
		utils.RespondError(c, http.StatusBadRequest, "Plant ID is required")
		return
	}

	plant, err := p.plantService.GetPlantByID(c.Request.Context(), plantID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, plant, "Plant fetched successfully")
}

func (p *PlantsController) CreatePlant(c *gin.Context) {
	var req request_models.CreatePlantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	plant, err := p.plantService.CreatePlant(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, plant, "Plant added successfully")
}

func (p *PlantsController) UpdatePlant(c *gin.Context) {
	plantID := c.Param("id")
	if plantID == "" {
		utils.RespondError(c, http.StatusBadRequest, "Plant ID is required")
		return
	}

	var req request_models.UpdatePlantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	plant, err := p.plantService.UpdatePlant(c.Request.Context(), plantID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, plant, "Plant updated successfully")
}

func (p *PlantsController) DeletePlant(c *gin.Context) {
	plantID := c.Param("id")
	if plantID == "" {
		utils.RespondError(c, http.StatusBadRequest, "Plant ID is required")
		return
	}

	plant, err := p.plantService.DeletePlant(c.Request.Context(), plantID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, plant, "Plant deleted successfully")
}

func (p *PlantsController) ListCategories(c *gin.Context) {
	categories, err := p.plantService.ListCategories(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, categories, "Categories fetched successfully")
}

func (p *PlantsController) GetStatsOverview(c *gin.Context) {
	stats, err := p.plantService.GetStatsOverview(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, stats, "Statistics fetched successfully")
}

// parseListQuery coerces the string-typed listing parameters. The policy
// for malformed numerics is "treat as absent": an unparsable price bound
// adds no filter and an unparsable page/limit falls back to the default.
// page < 1 is deliberately passed through; the pagination math downstream
// stays well-defined for it.
func parseListQuery(c *gin.Context) request_models.ListPlantsQuery {
	query := request_models.ListPlantsQuery{
		Search:            c.Query("search"),
		Category:          c.Query("category"),
		CareLevel:         c.Query("careLevel"),
		Size:              c.Query("size"),
		LightRequirement:  c.Query("lightRequirement"),
		WateringFrequency: c.Query("wateringFrequency"),
		Page:              defaultPage,
		Limit:             defaultLimit,
		SortBy:            c.DefaultQuery("sortBy", "createdAt"),
		SortOrder:         c.DefaultQuery("sortOrder", "desc"),
	}

	if v, err := strconv.ParseFloat(c.Query("minPrice"), 64); err == nil {
		query.MinPrice = &v
	}
	if v, err := strconv.ParseFloat(c.Query("maxPrice"), 64); err == nil {
		query.MaxPrice = &v
	}

	// Only the literal strings "true" and "false" filter on stock;
	// anything else means no filter.
	switch c.Query("stockAvailable") {
	case "true":
		v := true
		query.StockAvailable = &v
	case "false":
		v := false
		query.StockAvailable = &v
	}

	if v, err := strconv.Atoi(c.Query("page")); err == nil {
		query.Page = v
	}
	if v, err := strconv.Atoi(c.Query("limit")); err == nil && v >= 1 {
		query.Limit = v
	}

	return query
}
