package repositories

import (
	"errors"
	"fmt"

	"wardrobe/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMColorRepository is a GORM implementation of ColorRepository.
type GORMColorRepository struct {
	db *gorm.DB
}

// NewGORMColorRepository creates a new instance of GORMColorRepository.
func NewGORMColorRepository(db *gorm.DB) *GORMColorRepository {
	return &GORMColorRepository{db: db}
}

// GetAll retrieves a page of colors ordered by name.
func (r *GORMColorRepository) GetAll(offset, limit int) ([]models.Color, error) {
	var colors []models.Color
	q := r.db.Order("name")
	if limit > 0 {
		q = q.Offset(offset).Limit(limit)
	}
	if err := q.Find(&colors).Error; err != nil {
		return nil, fmt.Errorf("failed to get colors: %w", err)
	}
	return colors, nil
}

// GetByID retrieves a single color by its ID, or (nil, nil) if absent.
func (r *GORMColorRepository) GetByID(id string) (*models.Color, error) {
	var color models.Color
	if err := r.db.First(&color, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get color by ID %s: %w", id, err)
	}
	return &color, nil
}

// GetByName retrieves a single color by its unique name, or (nil, nil)
// if absent.
func (r *GORMColorRepository) GetByName(name string) (*models.Color, error) {
	var color models.Color
	if err := r.db.First(&color, "name = ?", name).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get color by name %s: %w", name, err)
	}
	return &color, nil
}

// Create inserts a new color, assigning an ID when none is set.
func (r *GORMColorRepository) Create(color *models.Color) error {
	if color.ID == "" {
		color.ID = uuid.New().String()
	}
	if err := r.db.Create(color).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return &models.ConflictError{Field: "name", Value: color.Name}
		}
		return fmt.Errorf("failed to create color: %w", err)
	}
	return nil
}

// Update saves an existing color.
func (r *GORMColorRepository) Update(color *models.Color) error {
	res := r.db.Save(color)
	if res.Error != nil {
		if errors.Is(res.Error, gorm.ErrDuplicatedKey) {
			return &models.ConflictError{Field: "name", Value: color.Name}
		}
		return fmt.Errorf("failed to update color: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("color %s: %w", color.ID, models.ErrNotFound)
	}
	return nil
}

// Delete removes a color by its ID.
func (r *GORMColorRepository) Delete(id string) error {
	res := r.db.Delete(&models.Color{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete color: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("color %s: %w", id, models.ErrNotFound)
	}
	return nil
}
