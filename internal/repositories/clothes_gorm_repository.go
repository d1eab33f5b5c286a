package repositories

import (
	"errors"
	"fmt"

	"wardrobe/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMClothesRepository is a GORM implementation of ClothesRepository.
type GORMClothesRepository struct {
	db *gorm.DB
}

// NewGORMClothesRepository creates a new instance of GORMClothesRepository.
func NewGORMClothesRepository(db *gorm.DB) *GORMClothesRepository {
	return &GORMClothesRepository{db: db}
}

// GetAll retrieves a page of clothes with their references attached.
func (r *GORMClothesRepository) GetAll(offset, limit int) ([]models.Clothes, error) {
	var items []models.Clothes
	q := r.db.Preload("Color").Preload("Type").Order("id")
	if limit > 0 {
		q = q.Offset(offset).Limit(limit)
	}
	if err := q.Find(&items).Error; err != nil {
		return nil, fmt.Errorf("failed to get clothes: %w", err)
	}
	return items, nil
}

// GetByID retrieves a single clothes item by its ID, or (nil, nil) if
// absent.
func (r *GORMClothesRepository) GetByID(id string) (*models.Clothes, error) {
	var item models.Clothes
	err := r.db.Preload("Color").Preload("Type").First(&item, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get clothes by ID %s: %w", id, err)
	}
	return &item, nil
}

// GetByColorName retrieves every clothes item whose color has the
// given name.
func (r *GORMClothesRepository) GetByColorName(colorName string) ([]models.Clothes, error) {
	var items []models.Clothes
	err := r.db.
		Joins("JOIN colors ON colors.id = clothes.color_id").
		Where("colors.name = ?", colorName).
		Preload("Color").Preload("Type").
		Find(&items).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get clothes by color %s: %w", colorName, err)
	}
	return items, nil
}

// GetByTypeName retrieves every clothes item whose type has the given
// name.
func (r *GORMClothesRepository) GetByTypeName(typeName string) ([]models.Clothes, error) {
	var items []models.Clothes
	err := r.db.
		Joins("JOIN clothes_types ON clothes_types.id = clothes.type_id").
		Where("clothes_types.name = ?", typeName).
		Preload("Color").Preload("Type").
		Find(&items).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get clothes by type %s: %w", typeName, err)
	}
	return items, nil
}

// Create inserts a new clothes item, assigning an ID when none is set.
func (r *GORMClothesRepository) Create(item *models.Clothes) error {
	if item.ID == "" {
		item.ID = uuid.New().String()
	}
	if err := r.db.Create(item).Error; err != nil {
		return fmt.Errorf("failed to create clothes: %w", err)
	}
	return nil
}

// Update saves an existing clothes item. Only the reference columns
// are written; the attached records are read-side decoration.
func (r *GORMClothesRepository) Update(item *models.Clothes) error {
	res := r.db.Model(&models.Clothes{ID: item.ID}).
		Updates(map[string]interface{}{"color_id": item.ColorID, "type_id": item.TypeID})
	if res.Error != nil {
		return fmt.Errorf("failed to update clothes: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("clothes %s: %w", item.ID, models.ErrNotFound)
	}
	return nil
}

// Delete removes a clothes item by its ID.
func (r *GORMClothesRepository) Delete(id string) error {
	res := r.db.Delete(&models.Clothes{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete clothes: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("clothes %s: %w", id, models.ErrNotFound)
	}
	return nil
}
