package repositories

import "wardrobe/internal/models"

// UserRepository defines the interface for user data access. Lookups
// return (nil, nil) when no record matches; Create and Update surface
// a unique-constraint hit as *models.ConflictError.
type UserRepository interface {
	Create(user *models.User) error
	GetByID(id string) (*models.User, error)
	GetByUsername(username string) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	Update(user *models.User) error
	Delete(id string) error
}
