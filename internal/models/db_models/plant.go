package db_models

import (
	"github.com/lib/pq"
)

const DefaultImageURL = "https://images.unsplash.com/photo-1466781783364-36c955e42a7f?w=400&h=400&fit=crop"

type CareLevel string

const (
	CareLevelEasy   CareLevel = "Easy"
	CareLevelMedium CareLevel = "Medium"
	CareLevelHard   CareLevel = "Hard"
)

type PlantSize string

const (
	SizeSmall  PlantSize = "Small"
	SizeMedium PlantSize = "Medium"
	SizeLarge  PlantSize = "Large"
)

type LightRequirement string

const (
	LightLow      LightRequirement = "Low Light"
	LightIndirect LightRequirement = "Indirect Light"
	LightBright   LightRequirement = "Bright Light"
	LightDirect   LightRequirement = "Direct Sunlight"
)

type WateringFrequency string

const (
	WateringLow      WateringFrequency = "Low"
	WateringModerate WateringFrequency = "Moderate"
	WateringHigh     WateringFrequency = "High"
)

func (c CareLevel) Valid() bool {
	switch c {
	case CareLevelEasy, CareLevelMedium, CareLevelHard:
		return true
	}
	return false
}

func (s PlantSize) Valid() bool {
	switch s {
	case SizeSmall, SizeMedium, SizeLarge:
		return true
	}
	return false
}

func (l LightRequirement) Valid() bool {
	switch l {
	case LightLow, LightIndirect, LightBright, LightDirect:
		return true
	}
	return false
}

func (w WateringFrequency) Valid() bool {
	switch w {
	case WateringLow, WateringModerate, WateringHigh:
		return true
	}
	return false
}

type Plant struct {
	BaseModel
	Name           string         `gorm:"size:100;not null"`
	Price          float64        `gorm:"not null"`
	Categories     pq.StringArray `gorm:"type:text[];not null"`
	StockAvailable bool           `gorm:"default:true"`
	Description    string         `gorm:"size:500"`
	ImageURL       string
	CareLevel      CareLevel         `gorm:"size:20;default:'Easy'"`
	Size           PlantSize         `gorm:"size:20;default:'Medium'"`
	LightReq       LightRequirement  `gorm:"column:light_requirement;size:30;default:'Indirect Light'"`
	WateringFreq   WateringFrequency `gorm:"column:watering_frequency;size:20;default:'Moderate'"`
}
