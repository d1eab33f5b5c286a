package services

import (
	"fmt"

	"wardrobe/internal/models"
	"wardrobe/internal/repositories"
)

// ClothesTypeService handles business logic related to clothes types.
type ClothesTypeService struct {
	repo   repositories.ClothesTypeRepository
	events EventPublisher
}

// NewClothesTypeService creates a new ClothesTypeService. events may
// be nil.
func NewClothesTypeService(repo repositories.ClothesTypeRepository, events EventPublisher) *ClothesTypeService {
	return &ClothesTypeService{repo: repo, events: events}
}

// GetAll retrieves a page of clothes types.
func (s *ClothesTypeService) GetAll(page, size int) ([]models.ClothesType, error) {
	offset, limit := pageWindow(page, size)
	return s.repo.GetAll(offset, limit)
}

// Get retrieves a single clothes type by its ID.
func (s *ClothesTypeService) Get(id string) (*models.ClothesType, error) {
	if id == "" {
		return nil, fmt.Errorf("clothes type id: %w", models.ErrInvalidArgument)
	}
	ct, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if ct == nil {
		return nil, fmt.Errorf("clothes type %s: %w", id, models.ErrNotFound)
	}
	return ct, nil
}

// GetByName retrieves a single clothes type by its unique name.
func (s *ClothesTypeService) GetByName(name string) (*models.ClothesType, error) {
	if name == "" {
		return nil, fmt.Errorf("clothes type name: %w", models.ErrInvalidArgument)
	}
	ct, err := s.repo.GetByName(name)
	if err != nil {
		return nil, err
	}
	if ct == nil {
		return nil, fmt.Errorf("clothes type %q: %w", name, models.ErrNotFound)
	}
	return ct, nil
}

// Create validates and persists a new clothes type, returning it with
// its assigned ID. The layer has no default and must be supplied.
func (s *ClothesTypeService) Create(ct *models.ClothesType) (*models.ClothesType, error) {
	if ct == nil {
		return nil, fmt.Errorf("clothes type: %w", models.ErrInvalidArgument)
	}
	ct.ID = ""
	if err := checkStruct(ct); err != nil {
		return nil, err
	}
	if err := ensureUnique(typeNameLookup(s.repo.GetByName), "name", ct.Name, ""); err != nil {
		return nil, err
	}
	if err := s.repo.Create(ct); err != nil {
		return nil, err
	}
	publishEvent(s.events, "clothestype.created", ct)
	return ct, nil
}

// Update merges a partial update into the stored clothes type and
// persists the result.
func (s *ClothesTypeService) Update(id string, patch models.ClothesTypePatch) (*models.ClothesType, error) {
	ct, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	if patch.Name.Set {
		if err := ensureUnique(typeNameLookup(s.repo.GetByName), "name", patch.Name.Value, ct.ID); err != nil {
			return nil, err
		}
	}
	merged := patch.Apply(*ct)
	if err := checkStruct(&merged); err != nil {
		return nil, err
	}
	if err := s.repo.Update(&merged); err != nil {
		return nil, err
	}
	return &merged, nil
}

// Delete removes a clothes type by its ID. Clothes still referencing
// it keep a dangling reference and resolve to no type from then on.
func (s *ClothesTypeService) Delete(id string) error {
	if id == "" {
		return fmt.Errorf("clothes type id: %w", models.ErrInvalidArgument)
	}
	return s.repo.Delete(id)
}
