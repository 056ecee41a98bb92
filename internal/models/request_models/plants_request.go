package request_models

// ListPlantsQuery carries the coerced listing parameters. String-typed
// query values are parsed at the controller; anything unparsable is left
// at its zero value (no filter) so a bad bookmark never breaks the page.
type ListPlantsQuery struct {
	Search            string
	Category          string
	MinPrice          *float64
	MaxPrice          *float64
	StockAvailable    *bool
	CareLevel         string
	Size              string
	LightRequirement  string
	WateringFrequency string

	Page      int
	Limit     int
	SortBy    string
	SortOrder string
}

type CreatePlantRequest struct {
	Name              string   `json:"name"`
	Price             *float64 `json:"price"`
	Categories        []string `json:"categories"`
	StockAvailable    *bool    `json:"stockAvailable"`
	Description       string   `json:"description"`
	ImageURL          string   `json:"imageUrl"`
	CareLevel         string   `json:"careLevel"`
	Size              string   `json:"size"`
	LightRequirement  string   `json:"lightRequirement"`
	WateringFrequency string   `json:"wateringFrequency"`
}

// UpdatePlantRequest is a partial update: only non-nil fields change.
type UpdatePlantRequest struct {
	Name              *string  `json:"name"`
	Price             *float64 `json:"price"`
	Categories        []string `json:"categories"`
	StockAvailable    *bool    `json:"stockAvailable"`
	Description       *string  `json:"description"`
	ImageURL          *string  `json:"imageUrl"`
	CareLevel         *string  `json:"careLevel"`
	Size              *string  `json:"size"`
	LightRequirement  *string  `json:"lightRequirement"`
	WateringFrequency *string  `json:"wateringFrequency"`
}
