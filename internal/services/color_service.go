package services

import (
	"fmt"

	"wardrobe/internal/models"
	"wardrobe/internal/repositories"
)

// ColorService handles business logic related to colors.
type ColorService struct {
	repo   repositories.ColorRepository
	events EventPublisher
}

// NewColorService creates a new ColorService. events may be nil.
func NewColorService(repo repositories.ColorRepository, events EventPublisher) *ColorService {
	return &ColorService{repo: repo, events: events}
}

// GetAll retrieves a page of colors.
func (s *ColorService) GetAll(page, size int) ([]models.Color, error) {
	offset, limit := pageWindow(page, size)
	return s.repo.GetAll(offset, limit)
}

// Get retrieves a single color by its ID.
func (s *ColorService) Get(id string) (*models.Color, error) {
	if id == "" {
		return nil, fmt.Errorf("color id: %w", models.ErrInvalidArgument)
	}
	color, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if color == nil {
		return nil, fmt.Errorf("color %s: %w", id, models.ErrNotFound)
	}
	return color, nil
}

// GetByName retrieves a single color by its unique name.
func (s *ColorService) GetByName(name string) (*models.Color, error) {
	if name == "" {
		return nil, fmt.Errorf("color name: %w", models.ErrInvalidArgument)
	}
	color, err := s.repo.GetByName(name)
	if err != nil {
		return nil, err
	}
	if color == nil {
		return nil, fmt.Errorf("color %q: %w", name, models.ErrNotFound)
	}
	return color, nil
}

// Create validates and persists a new color, returning it with its
// assigned ID.
func (s *ColorService) Create(color *models.Color) (*models.Color, error) {
	if color == nil {
		return nil, fmt.Errorf("color: %w", models.ErrInvalidArgument)
	}
	color.ID = ""
	if err := checkStruct(color); err != nil {
		return nil, err
	}
	if err := ensureUnique(colorNameLookup(s.repo.GetByName), "name", color.Name, ""); err != nil {
		return nil, err
	}
	if err := s.repo.Create(color); err != nil {
		return nil, err
	}
	publishEvent(s.events, "color.created", color)
	return color, nil
}

// Update merges a partial update into the stored color and persists
// the result.
func (s *ColorService) Update(id string, patch models.ColorPatch) (*models.Color, error) {
	color, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	if patch.Name.Set {
		if err := ensureUnique(colorNameLookup(s.repo.GetByName), "name", patch.Name.Value, color.ID); err != nil {
			return nil, err
		}
	}
	merged := patch.Apply(*color)
	if err := checkStruct(&merged); err != nil {
		return nil, err
	}
	if err := s.repo.Update(&merged); err != nil {
		return nil, err
	}
	return &merged, nil
}

// Delete removes a color by its ID. Clothes still referencing it keep
// a dangling reference and resolve to no color from then on.
func (s *ColorService) Delete(id string) error {
	if id == "" {
		return fmt.Errorf("color id: %w", models.ErrInvalidArgument)
	}
	return s.repo.Delete(id)
}

// pageWindow converts page/size query values into an offset/limit
// window with sane defaults.
func pageWindow(page, size int) (offset, limit int) {
	if page < 0 {
		page = 0
	}
	if size <= 0 {
		size = 20
	}
	if size > 100 {
		size = 100
	}
	return page * size, size
}
