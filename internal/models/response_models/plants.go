package response_models

import "math"

type Plant struct {
	ID                string   `json:"id"`
	Name              string   `json:"name"`
	Price             float64  `json:"price"`
	Categories        []string `json:"categories"`
	StockAvailable    bool     `json:"stockAvailable"`
	Description       string   `json:"description,omitempty"`
	ImageURL          string   `json:"imageUrl"`
	CareLevel         string   `json:"careLevel"`
	Size              string   `json:"size"`
	LightRequirement  string   `json:"lightRequirement"`
	WateringFrequency string   `json:"wateringFrequency"`
	CreatedAt         int64    `json:"createdAt"`
	UpdatedAt         int64    `json:"updatedAt"`
}

type Pagination struct {
	CurrentPage  int   `json:"currentPage"`
	TotalPages   int   `json:"totalPages"`
	TotalItems   int64 `json:"totalItems"`
	ItemsPerPage int   `json:"itemsPerPage"`
	HasNextPage  bool  `json:"hasNextPage"`
	HasPrevPage  bool  `json:"hasPrevPage"`
}

// NewPagination computes the pagination block from the pre-pagination
// match count. Callers guarantee limit >= 1; page may be anything the
// client sent, so the flags must stay well-defined for page < 1 too.
func NewPagination(page, limit int, totalItems int64) Pagination {
	totalPages := int(math.Ceil(float64(totalItems) / float64(limit)))
	return Pagination{
		CurrentPage:  page,
		TotalPages:   totalPages,
		TotalItems:   totalItems,
		ItemsPerPage: limit,
		HasNextPage:  page < totalPages,
		HasPrevPage:  page > 1,
	}
}

type PlantPage struct {
	Plants     []Plant    `json:"plants"`
	Pagination Pagination `json:"pagination"`
}

type CategoryCount struct {
	Category string `json:"category"`
	Count    int64  `json:"count"`
}

type PlantStats struct {
	TotalPlants      int64           `json:"totalPlants"`
	InStockPlants    int64           `json:"inStockPlants"`
	OutOfStockPlants int64           `json:"outOfStockPlants"`
	AveragePrice     float64         `json:"averagePrice"`
	TopCategories    []CategoryCount `json:"topCategories"`
}
