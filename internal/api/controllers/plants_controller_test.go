package controllers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"leafcart/internal/api/controllers"
	"leafcart/internal/models/request_models"
	"leafcart/internal/models/response_models"
	"leafcart/internal/services/mocks"
	"leafcart/pkg/utils"
)

func setupRouter(svc *mocks.MockPlantService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	controller := controllers.NewPlantsController(svc)

	r := gin.New()
	plants := r.Group("/plants")
	plants.GET("", controller.ListPlants)
	plants.GET("/categories", controller.ListCategories)
	plants.GET("/stats/overview", controller.GetStatsOverview)
	plants.GET("/:id", controller.GetPlantByID)
	plants.POST("", controller.CreatePlant)
	plants.PUT("/:id", controller.UpdatePlant)
	plants.DELETE("/:id", controller.DeletePlant)
	return r
}

func doRequest(t *testing.T, r *gin.Engine, method, target, body string) (*httptest.ResponseRecorder, utils.APIResponse) {
	t.Helper()

	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var resp utils.APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return w, resp
}

func emptyPage() *response_models.PlantPage {
	return &response_models.PlantPage{
		Plants:     []response_models.Plant{},
		Pagination: response_models.NewPagination(1, 12, 0),
	}
}

func TestListPlants_DefaultParameters(t *testing.T) {
	svc := new(mocks.MockPlantService)
	r := setupRouter(svc)

	expected := request_models.ListPlantsQuery{
		Page:      1,
		Limit:     12,
		SortBy:    "createdAt",
		SortOrder: "desc",
	}
	svc.On("ListPlants", mock.Anything, expected).Return(emptyPage(), nil).Once()

	w, resp := doRequest(t, r, http.MethodGet, "/plants", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "success", resp.Status)
	svc.AssertExpectations(t)
}

func TestListPlants_CoercesAllParameters(t *testing.T) {
	svc := new(mocks.MockPlantService)
	r := setupRouter(svc)

	minPrice, maxPrice, inStock := 500.0, 1000.0, true
	expected := request_models.ListPlantsQuery{
		Search:            "aloe",
		Category:          "Succ",
		MinPrice:          &minPrice,
		MaxPrice:          &maxPrice,
		StockAvailable:    &inStock,
		CareLevel:         "Easy",
		Size:              "Small",
		LightRequirement:  "Bright Light",
		WateringFrequency: "Low",
		Page:              2,
		Limit:             5,
		SortBy:            "price",
		SortOrder:         "asc",
	}
	svc.On("ListPlants", mock.Anything, expected).Return(emptyPage(), nil).Once()

	target := "/plants?search=aloe&category=Succ&minPrice=500&maxPrice=1000" +
		"&stockAvailable=true&careLevel=Easy&size=Small&lightRequirement=Bright+Light" +
		"&wateringFrequency=Low&page=2&limit=5&sortBy=price&sortOrder=asc"
	w, _ := doRequest(t, r, http.MethodGet, target, "")

	assert.Equal(t, http.StatusOK, w.Code)
	svc.AssertExpectations(t)
}

func TestListPlants_MalformedNumericsAreIgnored(t *testing.T) {
	svc := new(mocks.MockPlantService)
	r := setupRouter(svc)

	// Unparsable price bounds add no filter; unparsable page and a
	// non-positive limit fall back to the defaults.
	expected := request_models.ListPlantsQuery{
		Page:      1,
		Limit:     12,
		SortBy:    "createdAt",
		SortOrder: "desc",
	}
	svc.On("ListPlants", mock.Anything, expected).Return(emptyPage(), nil).Once()

	target := "/plants?minPrice=cheap&maxPrice=&page=first&limit=0"
	w, _ := doRequest(t, r, http.MethodGet, target, "")

	assert.Equal(t, http.StatusOK, w.Code)
	svc.AssertExpectations(t)
}

func TestListPlants_StockAvailableLiteralMatchingOnly(t *testing.T) {
	svc := new(mocks.MockPlantService)
	r := setupRouter(svc)

	// "yes" is neither literal, so no stock filter is applied.
	expected := request_models.ListPlantsQuery{
		Page:      1,
		Limit:     12,
		SortBy:    "createdAt",
		SortOrder: "desc",
	}
	svc.On("ListPlants", mock.Anything, expected).Return(emptyPage(), nil).Once()

	w, _ := doRequest(t, r, http.MethodGet, "/plants?stockAvailable=yes", "")
	assert.Equal(t, http.StatusOK, w.Code)

	outOfStock := false
	expected.StockAvailable = &outOfStock
	svc.On("ListPlants", mock.Anything, expected).Return(emptyPage(), nil).Once()

	w, _ = doRequest(t, r, http.MethodGet, "/plants?stockAvailable=false", "")
	assert.Equal(t, http.StatusOK, w.Code)

	svc.AssertExpectations(t)
}

func TestListPlants_PageBelowOnePassedThrough(t *testing.T) {
	svc := new(mocks.MockPlantService)
	r := setupRouter(svc)

	expected := request_models.ListPlantsQuery{
		Page:      -3,
		Limit:     12,
		SortBy:    "createdAt",
		SortOrder: "desc",
	}
	svc.On("ListPlants", mock.Anything, expected).Return(emptyPage(), nil).Once()

	w, _ := doRequest(t, r, http.MethodGet, "/plants?page=-3", "")
	assert.Equal(t, http.StatusOK, w.Code)
	svc.AssertExpectations(t)
}

func TestListPlants_InvalidSortByRejected(t *testing.T) {
	svc := new(mocks.MockPlantService)
	r := setupRouter(svc)

	svc.On("ListPlants", mock.Anything, mock.Anything).
		Return(nil, utils.ErrInvalidSortBy).Once()

	w, resp := doRequest(t, r, http.MethodGet, "/plants?sortBy=secret_column", "")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "error", resp.Status)
}

func TestListPlants_EnvelopeCarriesPageData(t *testing.T) {
	svc := new(mocks.MockPlantService)
	r := setupRouter(svc)

	page := &response_models.PlantPage{
		Plants: []response_models.Plant{
			{ID: "a", Name: "Aloe Vera", Price: 199, Categories: []string{"Succulent"}},
		},
		Pagination: response_models.NewPagination(1, 12, 1),
	}
	svc.On("ListPlants", mock.Anything, mock.Anything).Return(page, nil).Once()

	w, resp := doRequest(t, r, http.MethodGet, "/plants", "")
	require.Equal(t, http.StatusOK, w.Code)

	data, ok := resp.Data.(map[string]interface{})
	require.True(t, ok)

	plants, ok := data["plants"].([]interface{})
	require.True(t, ok)
	assert.Len(t, plants, 1)

	pagination, ok := data["pagination"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, float64(1), pagination["currentPage"])
	assert.Equal(t, float64(1), pagination["totalPages"])
	assert.Equal(t, false, pagination["hasNextPage"])
}

func TestGetPlantByID_NotFound(t *testing.T) {
	svc := new(mocks.MockPlantService)
	r := setupRouter(svc)

	svc.On("GetPlantByID", mock.Anything, "missing-id").
		Return(nil, utils.ErrPlantNotFound).Once()

	w, resp := doRequest(t, r, http.MethodGet, "/plants/missing-id", "")

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "error", resp.Status)
	assert.Equal(t, "Plant not found", resp.Message)
}

func TestCreatePlant_Success(t *testing.T) {
	svc := new(mocks.MockPlantService)
	r := setupRouter(svc)

	created := &response_models.Plant{ID: "a", Name: "Aloe Vera", Price: 199}
	svc.On("CreatePlant", mock.Anything, mock.Anything).Return(created, nil).Once()

	body := `{"name":"Aloe Vera","price":199,"categories":["Succulent"]}`
	w, resp := doRequest(t, r, http.MethodPost, "/plants", body)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "success", resp.Status)
	assert.Equal(t, "Plant added successfully", resp.Message)
}

func TestCreatePlant_ValidationErrorsReported(t *testing.T) {
	svc := new(mocks.MockPlantService)
	r := setupRouter(svc)

	svc.On("CreatePlant", mock.Anything, mock.Anything).
		Return(nil, utils.NewValidationError(
			"Plant must have at least 1 category and maximum 10 categories",
		)).Once()

	body := `{"name":"Aloe Vera","price":199,"categories":[]}`
	w, resp := doRequest(t, r, http.MethodPost, "/plants", body)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "error", resp.Status)
	assert.Equal(t, "Validation failed", resp.Message)
	require.Len(t, resp.Errors, 1)
	assert.Contains(t, resp.Errors[0], "at least 1 category")
}

func TestCreatePlant_MalformedBody(t *testing.T) {
	svc := new(mocks.MockPlantService)
	r := setupRouter(svc)

	w, resp := doRequest(t, r, http.MethodPost, "/plants", `{"name":`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "error", resp.Status)
	svc.AssertNotCalled(t, "CreatePlant")
}

func TestUpdatePlant_Success(t *testing.T) {
	svc := new(mocks.MockPlantService)
	r := setupRouter(svc)

	updated := &response_models.Plant{ID: "a", Name: "Aloe Vera", Price: 249}
	svc.On("UpdatePlant", mock.Anything, "a", mock.Anything).Return(updated, nil).Once()

	w, resp := doRequest(t, r, http.MethodPut, "/plants/a", `{"price":249}`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Plant updated successfully", resp.Message)
}

func TestDeletePlant_Success(t *testing.T) {
	svc := new(mocks.MockPlantService)
	r := setupRouter(svc)

	deleted := &response_models.Plant{ID: "a", Name: "Aloe Vera"}
	svc.On("DeletePlant", mock.Anything, "a").Return(deleted, nil).Once()

	w, resp := doRequest(t, r, http.MethodDelete, "/plants/a", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Plant deleted successfully", resp.Message)
}

func TestListCategories(t *testing.T) {
	svc := new(mocks.MockPlantService)
	r := setupRouter(svc)

	svc.On("ListCategories", mock.Anything).
		Return([]string{"Air Purifying", "Indoor", "Succulent"}, nil).Once()

	w, resp := doRequest(t, r, http.MethodGet, "/plants/categories", "")
	require.Equal(t, http.StatusOK, w.Code)

	data, ok := resp.Data.([]interface{})
	require.True(t, ok)
	assert.Equal(t, []interface{}{"Air Purifying", "Indoor", "Succulent"}, data)
}

func TestGetStatsOverview(t *testing.T) {
	svc := new(mocks.MockPlantService)
	r := setupRouter(svc)

	svc.On("GetStatsOverview", mock.Anything).Return(&response_models.PlantStats{
		TotalPlants:      12,
		InStockPlants:    10,
		OutOfStockPlants: 2,
		AveragePrice:     536.5,
		TopCategories: []response_models.CategoryCount{
			{Category: "Indoor", Count: 10},
		},
	}, nil).Once()

	w, resp := doRequest(t, r, http.MethodGet, "/plants/stats/overview", "")
	require.Equal(t, http.StatusOK, w.Code)

	data, ok := resp.Data.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, float64(12), data["totalPlants"])
	assert.Equal(t, float64(536.5), data["averagePrice"])
}

func TestStoreFailureIsGeneric500(t *testing.T) {
	svc := new(mocks.MockPlantService)
	r := setupRouter(svc)

	svc.On("GetStatsOverview", mock.Anything).
		Return(nil, utils.ErrDatabaseError).Once()

	w, resp := doRequest(t, r, http.MethodGet, "/plants/stats/overview", "")

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "error", resp.Status)
	assert.Equal(t, "Internal server error", resp.Message)
}
