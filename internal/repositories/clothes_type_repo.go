package repositories

import "wardrobe/internal/models"

// ClothesTypeRepository defines the interface for clothes-type data
// access. Lookups return (nil, nil) when no record matches; Create and
// Update surface a unique-constraint hit as *models.ConflictError.
type ClothesTypeRepository interface {
	GetAll(offset, limit int) ([]models.ClothesType, error)
	GetByID(id string) (*models.ClothesType, error)
	GetByName(name string) (*models.ClothesType, error)
	Create(clothesType *models.ClothesType) error
	Update(clothesType *models.ClothesType) error
	Delete(id string) error
}
