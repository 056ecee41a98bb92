package main

import (
	"log"

	"github.com/joho/godotenv"

	"leafcart/internal/infra"
	dbm "leafcart/internal/models/db_models"
)

var seedPlants = []dbm.Plant{
	{
		Name:           "Money Plant (Golden Pothos)",
		Price:          299,
		Categories:     []string{"Indoor", "Air Purifying", "Home Decor", "Low Maintenance"},
		StockAvailable: true,
		Description:    "Popular trailing plant with heart-shaped leaves, perfect for hanging baskets and shelves.",
		ImageURL:       "https://images.unsplash.com/photo-1593691509543-c55fb32e5cee?w=400&h=400&fit=crop",
		CareLevel:      dbm.CareLevelEasy,
		Size:           dbm.SizeMedium,
		LightReq:       dbm.LightIndirect,
		WateringFreq:   dbm.WateringModerate,
	},
	{
		Name:           "Snake Plant (Sansevieria)",
		Price:          399,
		Categories:     []string{"Indoor", "Air Purifying", "Low Maintenance", "Bedroom"},
		StockAvailable: true,
		Description:    "Hardy plant with tall, sword-like leaves that purify air and require minimal care.",
		ImageURL:       "https://images.unsplash.com/photo-1593691509543-c55fb32e5cee?w=400&h=400&fit=crop",
		CareLevel:      dbm.CareLevelEasy,
		Size:           dbm.SizeLarge,
		LightReq:       dbm.LightLow,
		WateringFreq:   dbm.WateringLow,
	},
	{
		Name:           "Peace Lily",
		Price:          599,
		Categories:     []string{"Indoor", "Air Purifying", "Flowering", "Home Decor"},
		StockAvailable: true,
		Description:    "Elegant plant with white flowers and glossy leaves, excellent for air purification.",
		ImageURL:       "https://images.unsplash.com/photo-1593691509543-c55fb32e5cee?w=400&h=400&fit=crop",
		CareLevel:      dbm.CareLevelMedium,
		Size:           dbm.SizeMedium,
		LightReq:       dbm.LightIndirect,
		WateringFreq:   dbm.WateringHigh,
	},
	{
		Name:           "Aloe Vera",
		Price:          199,
		Categories:     []string{"Indoor", "Medicinal", "Succulent", "Kitchen"},
		StockAvailable: true,
		Description:    "Medicinal succulent with gel-filled leaves, perfect for kitchen windowsills.",
		ImageURL:       "https://images.unsplash.com/photo-1593691509543-c55fb32e5cee?w=400&h=400&fit=crop",
		CareLevel:      dbm.CareLevelEasy,
		Size:           dbm.SizeSmall,
		LightReq:       dbm.LightBright,
		WateringFreq:   dbm.WateringLow,
	},
	{
		Name:           "Spider Plant",
		Price:          249,
		Categories:     []string{"Indoor", "Air Purifying", "Hanging", "Pet Friendly"},
		StockAvailable: true,
		Description:    "Easy-care plant that produces baby plants, safe for pets and children.",
		ImageURL:       "https://images.unsplash.com/photo-1593691509543-c55fb32e5cee?w=400&h=400&fit=crop",
		CareLevel:      dbm.CareLevelEasy,
		Size:           dbm.SizeMedium,
		LightReq:       dbm.LightIndirect,
		WateringFreq:   dbm.WateringModerate,
	},
	{
		Name:           "Fiddle Leaf Fig",
		Price:          1299,
		Categories:     []string{"Indoor", "Home Decor", "Statement Plant"},
		StockAvailable: false,
		Description:    "Trendy plant with large, violin-shaped leaves, a striking focal point for any room.",
		ImageURL:       "https://images.unsplash.com/photo-1593691509543-c55fb32e5cee?w=400&h=400&fit=crop",
		CareLevel:      dbm.CareLevelHard,
		Size:           dbm.SizeLarge,
		LightReq:       dbm.LightBright,
		WateringFreq:   dbm.WateringModerate,
	},
	{
		Name:           "Monstera Deliciosa",
		Price:          899,
		Categories:     []string{"Indoor", "Tropical", "Home Decor", "Statement Plant"},
		StockAvailable: true,
		Description:    "Iconic tropical plant with split leaves, loves bright indirect light.",
		ImageURL:       "https://images.unsplash.com/photo-1593691509543-c55fb32e5cee?w=400&h=400&fit=crop",
		CareLevel:      dbm.CareLevelMedium,
		Size:           dbm.SizeLarge,
		LightReq:       dbm.LightIndirect,
		WateringFreq:   dbm.WateringModerate,
	},
	{
		Name:           "Jade Plant",
		Price:          349,
		Categories:     []string{"Indoor", "Succulent", "Lucky Plant", "Low Maintenance"},
		StockAvailable: true,
		Description:    "Symbol of prosperity with thick, coin-shaped leaves, thrives on neglect.",
		ImageURL:       "https://images.unsplash.com/photo-1593691509543-c55fb32e5cee?w=400&h=400&fit=crop",
		CareLevel:      dbm.CareLevelEasy,
		Size:           dbm.SizeSmall,
		LightReq:       dbm.LightBright,
		WateringFreq:   dbm.WateringLow,
	},
	{
		Name:           "Areca Palm",
		Price:          1499,
		Categories:     []string{"Indoor", "Tropical", "Air Purifying", "Statement Plant"},
		StockAvailable: true,
		Description:    "Graceful palm with feathery fronds, brings a tropical feel indoors.",
		ImageURL:       "https://images.unsplash.com/photo-1593691509543-c55fb32e5cee?w=400&h=400&fit=crop",
		CareLevel:      dbm.CareLevelMedium,
		Size:           dbm.SizeLarge,
		LightReq:       dbm.LightIndirect,
		WateringFreq:   dbm.WateringHigh,
	},
	{
		Name:           "Desert Rose",
		Price:          799,
		Categories:     []string{"Outdoor", "Succulent", "Flowering"},
		StockAvailable: false,
		Description:    "Striking succulent with trumpet-shaped flowers, needs plenty of direct sun.",
		ImageURL:       "https://images.unsplash.com/photo-1593691509543-c55fb32e5cee?w=400&h=400&fit=crop",
		CareLevel:      dbm.CareLevelHard,
		Size:           dbm.SizeMedium,
		LightReq:       dbm.LightDirect,
		WateringFreq:   dbm.WateringLow,
	},
	{
		Name:           "Boston Fern",
		Price:          449,
		Categories:     []string{"Indoor", "Hanging", "Air Purifying", "Pet Friendly"},
		StockAvailable: true,
		Description:    "Lush fern with arching fronds, loves humidity and regular watering.",
		ImageURL:       "https://images.unsplash.com/photo-1593691509543-c55fb32e5cee?w=400&h=400&fit=crop",
		CareLevel:      dbm.CareLevelMedium,
		Size:           dbm.SizeMedium,
		LightReq:       dbm.LightIndirect,
		WateringFreq:   dbm.WateringHigh,
	},
	{
		Name:           "Lavender",
		Price:          299,
		Categories:     []string{"Outdoor", "Flowering", "Fragrant", "Medicinal"},
		StockAvailable: true,
		Description:    "Fragrant herb with purple blooms, perfect for sunny balconies and gardens.",
		ImageURL:       "https://images.unsplash.com/photo-1593691509543-c55fb32e5cee?w=400&h=400&fit=crop",
		CareLevel:      dbm.CareLevelMedium,
		Size:           dbm.SizeSmall,
		LightReq:       dbm.LightDirect,
		WateringFreq:   dbm.WateringLow,
	},
}

func main() {
	_ = godotenv.Load()

	db, err := infra.InitPostgresql()
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer infra.ClosePostgresql(db)

	if err := db.AutoMigrate(&dbm.Plant{}); err != nil {
		log.Fatalf("Failed to migrate plants table: %v", err)
	}

	// Reseed from scratch so repeated runs stay deterministic.
	if err := db.Exec("DELETE FROM plants").Error; err != nil {
		log.Fatalf("Failed to clear plants table: %v", err)
	}

	if err := db.Create(&seedPlants).Error; err != nil {
		log.Fatalf("Failed to seed plants: %v", err)
	}

	log.Printf("Seeded %d plants", len(seedPlants))

	counts := map[string]int{}
	for _, p := range seedPlants {
		for _, c := range p.Categories {
			counts[c]++
		}
	}
	for category, n := range counts {
		log.Printf("  %s: %d", category, n)
	}
}
