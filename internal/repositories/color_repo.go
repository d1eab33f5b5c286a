package repositories

import "wardrobe/internal/models"

// ColorRepository defines the interface for color data access.
// Lookups return (nil, nil) when no record matches — absence is a
// result, not an error. Create and Update surface a unique-constraint
// hit as *models.ConflictError.
type ColorRepository interface {
	GetAll(offset, limit int) ([]models.Color, error)
	GetByID(id string) (*models.Color, error)
	GetByName(name string) (*models.Color, error)
	Create(color *models.Color) error
	Update(color *models.Color) error
	Delete(id string) error
}
