package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	dbm "leafcart/internal/models/db_models"
)

// PlantFilter is the typed predicate set for a listing query. Every
// non-zero field contributes exactly one clause; all clauses are ANDed.
// Search is the only clause that fans out internally (name OR any
// category entry OR description, substring, case-insensitive).
type PlantFilter struct {
	Search            string
	Category          string
	MinPrice          *float64
	MaxPrice          *float64
	StockAvailable    *bool
	CareLevel         string
	Size              string
	LightRequirement  string
	WateringFrequency string
}

func (f PlantFilter) scope() func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if f.Search != "" {
			pattern := "%" + f.Search + "%"
			db = db.Where(
				"name ILIKE ? OR description ILIKE ? OR EXISTS (SELECT 1 FROM unnest(categories) AS c WHERE c ILIKE ?)",
				pattern, pattern, pattern,
			)
		}
		if f.Category != "" {
			db = db.Where(
				"EXISTS (SELECT 1 FROM unnest(categories) AS c WHERE c ILIKE ?)",
				"%"+f.Category+"%",
			)
		}
		if f.MinPrice != nil {
			db = db.Where("price >= ?", *f.MinPrice)
		}
		if f.MaxPrice != nil {
			db = db.Where("price <= ?", *f.MaxPrice)
		}
		if f.StockAvailable != nil {
			db = db.Where("stock_available = ?", *f.StockAvailable)
		}
		if f.CareLevel != "" {
			db = db.Where("care_level = ?", f.CareLevel)
		}
		if f.Size != "" {
			db = db.Where("size = ?", f.Size)
		}
		if f.LightRequirement != "" {
			db = db.Where("light_requirement = ?", f.LightRequirement)
		}
		if f.WateringFrequency != "" {
			db = db.Where("watering_frequency = ?", f.WateringFrequency)
		}
		return db
	}
}

// ---------- Row helpers ----------

type CategoryCountRow struct {
	Category string `gorm:"column:category"`
	Count    int64  `gorm:"column:count"`
}

type PlantStatsRow struct {
	TotalPlants      int64
	InStockPlants    int64
	OutOfStockPlants int64
	AveragePrice     float64
	TopCategories    []CategoryCountRow
}

type PlantRepository interface {
	Create(ctx context.Context, plant *dbm.Plant) (uuid.UUID, error)
	GetByID(ctx context.Context, id uuid.UUID) (*dbm.Plant, error)
	Update(ctx context.Context, plant *dbm.Plant) error
	Delete(ctx context.Context, id uuid.UUID) error

	// List counts the records matching filter, then returns the page at
	// offset/limit sorted by sortColumn. sortColumn must come from the
	// service's column allow-list, never from raw client input.
	List(ctx context.Context, filter PlantFilter, sortColumn string, descending bool, offset, limit int) ([]dbm.Plant, int64, error)
	ListCategories(ctx context.Context) ([]string, error)
	Stats(ctx context.Context) (*PlantStatsRow, error)
}

type plantRepository struct {
	db *gorm.DB
}

func NewPlantRepository(db *gorm.DB) PlantRepository {
	return &plantRepository{db: db}
}

func (r *plantRepository) Create(ctx context.Context, plant *dbm.Plant) (uuid.UUID, error) {
	if err := r.db.WithContext(ctx).Create(plant).Error; err != nil {
		return uuid.Nil, err
	}
	return plant.ID, nil
}

func (r *plantRepository) GetByID(ctx context.Context, id uuid.UUID) (*dbm.Plant, error) {
	var plant dbm.Plant
	err := r.db.WithContext(ctx).First(&plant, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &plant, nil
}

func (r *plantRepository) Update(ctx context.Context, plant *dbm.Plant) error {
	result := r.db.WithContext(ctx).Save(plant)
	if result.Error != nil {
		return fmt.Errorf("failed to update plant: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *plantRepository) Delete(ctx context.Context, id uuid.UUID) error {
	err := r.db.WithContext(ctx).Delete(&dbm.Plant{}, "id = ?", id).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	return nil
}

func (r *plantRepository) List(ctx context.Context, filter PlantFilter, sortColumn string, descending bool, offset, limit int) ([]dbm.Plant, int64, error) {
	var total int64
	err := r.db.WithContext(ctx).
		Model(&dbm.Plant{}).
		Scopes(filter.scope()).
		Count(&total).Error
	if err != nil {
		return nil, 0, err
	}

	direction := "ASC"
	if descending {
		direction = "DESC"
	}

	var plants []dbm.Plant
	// Secondary id sort keeps equal sort keys in a stable order so
	// paging through ties is reproducible.
	err = r.db.WithContext(ctx).
		Scopes(filter.scope()).
		Order(fmt.Sprintf("%s %s", sortColumn, direction)).
		Order("id ASC").
		Offset(offset).
		Limit(limit).
		Find(&plants).Error
	if err != nil {
		return nil, 0, err
	}

	return plants, total, nil
}

func (r *plantRepository) ListCategories(ctx context.Context) ([]string, error) {
	var rows []CategoryCountRow
	err := r.db.WithContext(ctx).
		Table("plants, unnest(categories) AS category").
		Select("DISTINCT category").
		Order("category ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	categories := make([]string, 0, len(rows))
	for _, row := range rows {
		categories = append(categories, row.Category)
	}
	return categories, nil
}

func (r *plantRepository) Stats(ctx context.Context) (*PlantStatsRow, error) {
	stats := &PlantStatsRow{}

	err := r.db.WithContext(ctx).Model(&dbm.Plant{}).Count(&stats.TotalPlants).Error
	if err != nil {
		return nil, err
	}

	err = r.db.WithContext(ctx).
		Model(&dbm.Plant{}).
		Where("stock_available = ?", true).
		Count(&stats.InStockPlants).Error
	if err != nil {
		return nil, err
	}

	err = r.db.WithContext(ctx).
		Model(&dbm.Plant{}).
		Where("stock_available = ?", false).
		Count(&stats.OutOfStockPlants).Error
	if err != nil {
		return nil, err
	}

	err = r.db.WithContext(ctx).
		Model(&dbm.Plant{}).
		Select("COALESCE(AVG(price), 0)").
		Scan(&stats.AveragePrice).Error
	if err != nil {
		return nil, err
	}

	// Ties on count come out in category order so repeated calls agree.
	err = r.db.WithContext(ctx).
		Table("plants, unnest(categories) AS category").
		Select("category, COUNT(*) AS count").
		Group("category").
		Order("count DESC").
		Order("category ASC").
		Limit(10).
		Find(&stats.TopCategories).Error
	if err != nil {
		return nil, err
	}

	return stats, nil
}
