package repositories

import (
	"fmt"
	"sort"
	"sync"

	"wardrobe/internal/models"

	"github.com/google/uuid"
)

// MockClothesTypeRepository is an in-memory implementation of
// ClothesTypeRepository.
type MockClothesTypeRepository struct {
	types map[string]models.ClothesType
	mu    sync.RWMutex
}

// NewMockClothesTypeRepository creates a new instance of MockClothesTypeRepository.
func NewMockClothesTypeRepository() *MockClothesTypeRepository {
	return &MockClothesTypeRepository{types: make(map[string]models.ClothesType)}
}

// GetAll returns a page of clothes types ordered by name.
func (r *MockClothesTypeRepository) GetAll(offset, limit int) ([]models.ClothesType, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	list := make([]models.ClothesType, 0, len(r.types))
	for _, ct := range r.types {
		list = append(list, ct)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Name < list[j].Name })
	return paginate(list, offset, limit), nil
}

// GetByID returns a clothes type by its ID, or (nil, nil) if absent.
func (r *MockClothesTypeRepository) GetByID(id string) (*models.ClothesType, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ct, ok := r.types[id]
	if !ok {
		return nil, nil
	}
	return &ct, nil
}

// GetByName returns a clothes type by its unique name, or (nil, nil)
// if absent.
func (r *MockClothesTypeRepository) GetByName(name string) (*models.ClothesType, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, ct := range r.types {
		if ct.Name == name {
			found := ct
			return &found, nil
		}
	}
	return nil, nil
}

// Create adds a new clothes type, enforcing the unique name index.
func (r *MockClothesTypeRepository) Create(ct *models.ClothesType) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.types {
		if existing.Name == ct.Name {
			return &models.ConflictError{Field: "name", Value: ct.Name}
		}
	}
	if ct.ID == "" {
		ct.ID = uuid.New().String()
	}
	r.types[ct.ID] = *ct
	return nil
}

// Update modifies an existing clothes type, enforcing the unique name index.
func (r *MockClothesTypeRepository) Update(ct *models.ClothesType) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.types[ct.ID]; !ok {
		return fmt.Errorf("clothes type %s: %w", ct.ID, models.ErrNotFound)
	}
	for id, existing := range r.types {
		if id != ct.ID && existing.Name == ct.Name {
			return &models.ConflictError{Field: "name", Value: ct.Name}
		}
	}
	r.types[ct.ID] = *ct
	return nil
}

// Delete removes a clothes type by its ID.
func (r *MockClothesTypeRepository) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.types[id]; !ok {
		return fmt.Errorf("clothes type %s: %w", id, models.ErrNotFound)
	}
	delete(r.types, id)
	return nil
}
