package repositories

import (
	"fmt"
	"sort"
	"sync"

	"wardrobe/internal/models"

	"github.com/google/uuid"
)

// MockColorRepository is an in-memory implementation of ColorRepository.
type MockColorRepository struct {
	colors map[string]models.Color
	mu     sync.RWMutex
}

// NewMockColorRepository creates a new instance of MockColorRepository.
func NewMockColorRepository() *MockColorRepository {
	return &MockColorRepository{colors: make(map[string]models.Color)}
}

// GetAll returns a page of colors ordered by name.
func (r *MockColorRepository) GetAll(offset, limit int) ([]models.Color, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	list := make([]models.Color, 0, len(r.colors))
	for _, c := range r.colors {
		list = append(list, c)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Name < list[j].Name })
	return paginate(list, offset, limit), nil
}

// GetByID returns a color by its ID, or (nil, nil) if absent.
func (r *MockColorRepository) GetByID(id string) (*models.Color, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	color, ok := r.colors[id]
	if !ok {
		return nil, nil
	}
	return &color, nil
}

// GetByName returns a color by its unique name, or (nil, nil) if absent.
func (r *MockColorRepository) GetByName(name string) (*models.Color, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, c := range r.colors {
		if c.Name == name {
			color := c
			return &color, nil
		}
	}
	return nil, nil
}

// Create adds a new color, enforcing the unique name index.
func (r *MockColorRepository) Create(color *models.Color) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, c := range r.colors {
		if c.Name == color.Name {
			return &models.ConflictError{Field: "name", Value: color.Name}
		}
	}
	if color.ID == "" {
		color.ID = uuid.New().String()
	}
	r.colors[color.ID] = *color
	return nil
}

// Update modifies an existing color, enforcing the unique name index.
func (r *MockColorRepository) Update(color *models.Color) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.colors[color.ID]; !ok {
		return fmt.Errorf("color %s: %w", color.ID, models.ErrNotFound)
	}
	for id, c := range r.colors {
		if id != color.ID && c.Name == color.Name {
			return &models.ConflictError{Field: "name", Value: color.Name}
		}
	}
	r.colors[color.ID] = *color
	return nil
}

// Delete removes a color by its ID.
func (r *MockColorRepository) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.colors[id]; !ok {
		return fmt.Errorf("color %s: %w", id, models.ErrNotFound)
	}
	delete(r.colors, id)
	return nil
}

// paginate slices a full result set down to the requested window.
func paginate[T any](list []T, offset, limit int) []T {
	if limit <= 0 {
		return list
	}
	if offset >= len(list) {
		return []T{}
	}
	end := offset + limit
	if end > len(list) {
		end = len(list)
	}
	return list[offset:end]
}
