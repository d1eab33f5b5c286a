package repositories

import "wardrobe/internal/models"

// ClothesRepository defines the interface for clothes data access.
// Reads attach the referenced Color and ClothesType when those rows
// still exist; a dangling reference is returned with a nil attachment.
type ClothesRepository interface {
	GetAll(offset, limit int) ([]models.Clothes, error)
	GetByID(id string) (*models.Clothes, error)
	GetByColorName(colorName string) ([]models.Clothes, error)
	GetByTypeName(typeName string) ([]models.Clothes, error)
	Create(clothes *models.Clothes) error
	Update(clothes *models.Clothes) error
	Delete(id string) error
}
