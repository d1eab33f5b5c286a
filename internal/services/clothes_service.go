package services

import (
	"fmt"

	"wardrobe/internal/models"
	"wardrobe/internal/repositories"
)

// ClothesService handles business logic related to clothes items.
type ClothesService struct {
	repo     repositories.ClothesRepository
	resolver ReferenceResolver
	events   EventPublisher
}

// NewClothesService creates a new ClothesService. events may be nil.
func NewClothesService(repo repositories.ClothesRepository, resolver ReferenceResolver, events EventPublisher) *ClothesService {
	return &ClothesService{repo: repo, resolver: resolver, events: events}
}

// GetAll retrieves a page of clothes.
func (s *ClothesService) GetAll(page, size int) ([]models.Clothes, error) {
	offset, limit := pageWindow(page, size)
	return s.repo.GetAll(offset, limit)
}

// Get retrieves a single clothes item by its ID. A deleted color or
// type leaves the corresponding attachment nil.
func (s *ClothesService) Get(id string) (*models.Clothes, error) {
	if id == "" {
		return nil, fmt.Errorf("clothes id: %w", models.ErrInvalidArgument)
	}
	item, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, fmt.Errorf("clothes %s: %w", id, models.ErrNotFound)
	}
	return item, nil
}

// GetByColorName retrieves every clothes item of the named color.
func (s *ClothesService) GetByColorName(colorName string) ([]models.Clothes, error) {
	if colorName == "" {
		return nil, fmt.Errorf("color name: %w", models.ErrInvalidArgument)
	}
	return s.repo.GetByColorName(colorName)
}

// GetByTypeName retrieves every clothes item of the named type.
func (s *ClothesService) GetByTypeName(typeName string) ([]models.Clothes, error) {
	if typeName == "" {
		return nil, fmt.Errorf("type name: %w", models.ErrInvalidArgument)
	}
	return s.repo.GetByTypeName(typeName)
}

// Create persists a new clothes item. Both references must resolve to
// live records at the moment of create.
func (s *ClothesService) Create(colorID, typeID string) (*models.Clothes, error) {
	if colorID == "" || typeID == "" {
		return nil, fmt.Errorf("colorId and typeId are required: %w", models.ErrInvalidArgument)
	}
	color, err := s.resolver.ResolveColor(colorID)
	if err != nil {
		return nil, err
	}
	ct, err := s.resolver.ResolveClothesType(typeID)
	if err != nil {
		return nil, err
	}
	item := &models.Clothes{ColorID: colorID, TypeID: typeID}
	if err := checkStruct(item); err != nil {
		return nil, err
	}
	if err := s.repo.Create(item); err != nil {
		return nil, err
	}
	item.Color = color
	item.Type = ct
	publishEvent(s.events, "clothes.created", item)
	return item, nil
}

// Update merges a partial update into the stored item. Only references
// the patch explicitly sets are resolved; an unset reference retains
// the current value and is not re-validated.
func (s *ClothesService) Update(id string, patch models.ClothesPatch) (*models.Clothes, error) {
	item, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	if patch.ColorID.Set {
		if _, err := s.resolver.ResolveColor(patch.ColorID.Value); err != nil {
			return nil, err
		}
	}
	if patch.TypeID.Set {
		if _, err := s.resolver.ResolveClothesType(patch.TypeID.Value); err != nil {
			return nil, err
		}
	}
	merged := patch.Apply(*item)
	if err := checkStruct(&merged); err != nil {
		return nil, err
	}
	if err := s.repo.Update(&merged); err != nil {
		return nil, err
	}
	return s.Get(id)
}

// Delete removes a clothes item by its ID.
func (s *ClothesService) Delete(id string) error {
	if id == "" {
		return fmt.Errorf("clothes id: %w", models.ErrInvalidArgument)
	}
	return s.repo.Delete(id)
}
