package repositories

import (
	"fmt"
	"sort"
	"sync"

	"wardrobe/internal/models"

	"github.com/google/uuid"
)

// MockClothesRepository is an in-memory implementation of
// ClothesRepository. Reference attachment requires the color and type
// repositories it was built with.
type MockClothesRepository struct {
	items  map[string]models.Clothes
	colors ColorRepository
	types  ClothesTypeRepository
	mu     sync.RWMutex
}

// NewMockClothesRepository creates a new instance of MockClothesRepository.
func NewMockClothesRepository(colors ColorRepository, types ClothesTypeRepository) *MockClothesRepository {
	return &MockClothesRepository{
		items:  make(map[string]models.Clothes),
		colors: colors,
		types:  types,
	}
}

func (r *MockClothesRepository) attach(item models.Clothes) models.Clothes {
	// Lookup misses leave the attachment nil, mirroring a dangling
	// reference after the referenced row was deleted.
	item.Color, _ = r.colors.GetByID(item.ColorID)
	item.Type, _ = r.types.GetByID(item.TypeID)
	return item
}

// GetAll returns a page of clothes with their references attached.
func (r *MockClothesRepository) GetAll(offset, limit int) ([]models.Clothes, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	list := make([]models.Clothes, 0, len(r.items))
	for _, item := range r.items {
		list = append(list, r.attach(item))
	}
	sort.Slice(list, func(i, j int) bool { return list[i].ID < list[j].ID })
	return paginate(list, offset, limit), nil
}

// GetByID returns a clothes item by its ID, or (nil, nil) if absent.
func (r *MockClothesRepository) GetByID(id string) (*models.Clothes, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	attached := r.attach(item)
	return &attached, nil
}

// GetByColorName returns every clothes item whose color has the given
// name.
func (r *MockClothesRepository) GetByColorName(colorName string) ([]models.Clothes, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var list []models.Clothes
	for _, item := range r.items {
		attached := r.attach(item)
		if attached.Color != nil && attached.Color.Name == colorName {
			list = append(list, attached)
		}
	}
	sort.Slice(list, func(i, j int) bool { return list[i].ID < list[j].ID })
	return list, nil
}

// GetByTypeName returns every clothes item whose type has the given
// name.
func (r *MockClothesRepository) GetByTypeName(typeName string) ([]models.Clothes, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var list []models.Clothes
	for _, item := range r.items {
		attached := r.attach(item)
		if attached.Type != nil && attached.Type.Name == typeName {
			list = append(list, attached)
		}
	}
	sort.Slice(list, func(i, j int) bool { return list[i].ID < list[j].ID })
	return list, nil
}

// Create adds a new clothes item.
func (r *MockClothesRepository) Create(item *models.Clothes) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if item.ID == "" {
		item.ID = uuid.New().String()
	}
	r.items[item.ID] = models.Clothes{ID: item.ID, ColorID: item.ColorID, TypeID: item.TypeID}
	return nil
}

// Update modifies an existing clothes item.
func (r *MockClothesRepository) Update(item *models.Clothes) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[item.ID]; !ok {
		return fmt.Errorf("clothes %s: %w", item.ID, models.ErrNotFound)
	}
	r.items[item.ID] = models.Clothes{ID: item.ID, ColorID: item.ColorID, TypeID: item.TypeID}
	return nil
}

// Delete removes a clothes item by its ID.
func (r *MockClothesRepository) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[id]; !ok {
		return fmt.Errorf("clothes %s: %w", id, models.ErrNotFound)
	}
	delete(r.items, id)
	return nil
}
