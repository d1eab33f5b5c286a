package repositories

import (
	"errors"
	"fmt"

	"wardrobe/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMClothesTypeRepository is a GORM implementation of ClothesTypeRepository.
type GORMClothesTypeRepository struct {
	db *gorm.DB
}

// NewGORMClothesTypeRepository creates a new instance of GORMClothesTypeRepository.
func NewGORMClothesTypeRepository(db *gorm.DB) *GORMClothesTypeRepository {
	return &GORMClothesTypeRepository{db: db}
}

// GetAll retrieves a page of clothes types ordered by name.
func (r *GORMClothesTypeRepository) GetAll(offset, limit int) ([]models.ClothesType, error) {
	var types []models.ClothesType
	q := r.db.Order("name")
	if limit > 0 {
		q = q.Offset(offset).Limit(limit)
	}
	if err := q.Find(&types).Error; err != nil {
		return nil, fmt.Errorf("failed to get clothes types: %w", err)
	}
	return types, nil
}

// GetByID retrieves a single clothes type by its ID, or (nil, nil) if absent.
func (r *GORMClothesTypeRepository) GetByID(id string) (*models.ClothesType, error) {
	var ct models.ClothesType
	if err := r.db.First(&ct, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get clothes type by ID %s: %w", id, err)
	}
	return &ct, nil
}

// GetByName retrieves a single clothes type by its unique name, or
// (nil, nil) if absent.
func (r *GORMClothesTypeRepository) GetByName(name string) (*models.ClothesType, error) {
	var ct models.ClothesType
	if err := r.db.First(&ct, "name = ?", name).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get clothes type by name %s: %w", name, err)
	}
	return &ct, nil
}

// Create inserts a new clothes type, assigning an ID when none is set.
func (r *GORMClothesTypeRepository) Create(ct *models.ClothesType) error {
	if ct.ID == "" {
		ct.ID = uuid.New().String()
	}
	if err := r.db.Create(ct).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return &models.ConflictError{Field: "name", Value: ct.Name}
		}
		return fmt.Errorf("failed to create clothes type: %w", err)
	}
	return nil
}

// Update saves an existing clothes type.
func (r *GORMClothesTypeRepository) Update(ct *models.ClothesType) error {
	res := r.db.Save(ct)
	if res.Error != nil {
		if errors.Is(res.Error, gorm.ErrDuplicatedKey) {
			return &models.ConflictError{Field: "name", Value: ct.Name}
		}
		return fmt.Errorf("failed to update clothes type: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("clothes type %s: %w", ct.ID, models.ErrNotFound)
	}
	return nil
}

// Delete removes a clothes type by its ID.
func (r *GORMClothesTypeRepository) Delete(id string) error {
	res := r.db.Delete(&models.ClothesType{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete clothes type: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("clothes type %s: %w", id, models.ErrNotFound)
	}
	return nil
}
