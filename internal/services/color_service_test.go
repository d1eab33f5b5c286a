package services_test

import (
	"testing"

	"wardrobe/internal/models"
	"wardrobe/internal/services"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockColorRepository is a mock implementation of repositories.ColorRepository
type MockColorRepository struct {
	mock.Mock
}

func (m *MockColorRepository) GetAll(offset, limit int) ([]models.Color, error) {
	args := m.Called(offset, limit)
	return args.Get(0).([]models.Color), args.Error(1)
}

func (m *MockColorRepository) GetByID(id string) (*models.Color, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Color), args.Error(1)
}

func (m *MockColorRepository) GetByName(name string) (*models.Color, error) {
	args := m.Called(name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Color), args.Error(1)
}

func (m *MockColorRepository) Create(color *models.Color) error {
	args := m.Called(color)
	return args.Error(0)
}

func (m *MockColorRepository) Update(color *models.Color) error {
	args := m.Called(color)
	return args.Error(0)
}

func (m *MockColorRepository) Delete(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

func TestColorService_Create(t *testing.T) {
	mockRepo := new(MockColorRepository)
	service := services.NewColorService(mockRepo, nil)

	mockRepo.On("GetByName", "red").Return(nil, nil).Once()
	mockRepo.On("Create", mock.AnythingOfType("*models.Color")).Return(nil).Once()

	created, err := service.Create(&models.Color{Name: "red"})
	require.NoError(t, err)
	assert.Equal(t, "red", created.Name)
	mockRepo.AssertExpectations(t)
}

func TestColorService_CreateBlankName(t *testing.T) {
	service := services.NewColorService(new(MockColorRepository), nil)

	for _, name := range []string{"", "   "} {
		_, err := service.Create(&models.Color{Name: name})
		var ve *models.ValidationError
		require.ErrorAs(t, err, &ve, "name %q", name)
		assert.Len(t, ve.Violations, 1)
		assert.Equal(t, "name", ve.Violations[0].Field)
	}
}

func TestColorService_CreateDuplicate(t *testing.T) {
	mockRepo := new(MockColorRepository)
	service := services.NewColorService(mockRepo, nil)

	mockRepo.On("GetByName", "red").Return(&models.Color{ID: "color-1", Name: "red"}, nil).Once()

	_, err := service.Create(&models.Color{Name: "red"})
	assert.ErrorIs(t, err, models.ErrConflict)
	var conflict *models.ConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, "name", conflict.Field)
	assert.Equal(t, "red", conflict.Value)
	mockRepo.AssertExpectations(t)
}

func TestColorService_CreateStoreConflict(t *testing.T) {
	// The guard passed, but a concurrent writer won the race and the
	// store's unique index fired. The caller still sees a Conflict.
	mockRepo := new(MockColorRepository)
	service := services.NewColorService(mockRepo, nil)

	mockRepo.On("GetByName", "red").Return(nil, nil).Once()
	mockRepo.On("Create", mock.AnythingOfType("*models.Color")).
		Return(&models.ConflictError{Field: "name", Value: "red"}).Once()

	_, err := service.Create(&models.Color{Name: "red"})
	assert.ErrorIs(t, err, models.ErrConflict)
	mockRepo.AssertExpectations(t)
}

func TestColorService_Get(t *testing.T) {
	mockRepo := new(MockColorRepository)
	service := services.NewColorService(mockRepo, nil)

	expected := &models.Color{ID: uuid.NewString(), Name: "red"}
	mockRepo.On("GetByID", expected.ID).Return(expected, nil).Once()
	color, err := service.Get(expected.ID)
	require.NoError(t, err)
	assert.Equal(t, expected, color)

	mockRepo.On("GetByID", "missing").Return(nil, nil).Once()
	_, err = service.Get("missing")
	assert.ErrorIs(t, err, models.ErrNotFound)

	_, err = service.Get("")
	assert.ErrorIs(t, err, models.ErrInvalidArgument)
	mockRepo.AssertExpectations(t)
}

func TestColorService_UpdateSelfExclusion(t *testing.T) {
	mockRepo := new(MockColorRepository)
	service := services.NewColorService(mockRepo, nil)

	// Store-assigned identifiers are uuids; the merged record is
	// re-validated on update, so the fixture must carry one too.
	stored := &models.Color{ID: uuid.NewString(), Name: "red"}

	// Updating a color to its own current name passes the guard.
	mockRepo.On("GetByID", stored.ID).Return(stored, nil).Once()
	mockRepo.On("GetByName", "red").Return(stored, nil).Once()
	mockRepo.On("Update", mock.AnythingOfType("*models.Color")).Return(nil).Once()

	updated, err := service.Update(stored.ID, models.ColorPatch{Name: models.NewField("red")})
	require.NoError(t, err)
	assert.Equal(t, "red", updated.Name)
	mockRepo.AssertExpectations(t)
}

func TestColorService_UpdateNameTaken(t *testing.T) {
	mockRepo := new(MockColorRepository)
	service := services.NewColorService(mockRepo, nil)

	stored := &models.Color{ID: uuid.NewString(), Name: "red"}
	mockRepo.On("GetByID", stored.ID).Return(stored, nil).Once()
	mockRepo.On("GetByName", "blue").Return(&models.Color{ID: uuid.NewString(), Name: "blue"}, nil).Once()

	_, err := service.Update(stored.ID, models.ColorPatch{Name: models.NewField("blue")})
	assert.ErrorIs(t, err, models.ErrConflict)
	mockRepo.AssertExpectations(t)
}

func TestColorService_UpdateEmptyPatch(t *testing.T) {
	mockRepo := new(MockColorRepository)
	service := services.NewColorService(mockRepo, nil)

	stored := &models.Color{ID: uuid.NewString(), Name: "red"}
	mockRepo.On("GetByID", stored.ID).Return(stored, nil).Once()
	mockRepo.On("Update", mock.AnythingOfType("*models.Color")).Return(nil).Once()

	// An all-unset patch saves an unchanged record; the name lookup
	// is never consulted.
	updated, err := service.Update(stored.ID, models.ColorPatch{})
	require.NoError(t, err)
	assert.Equal(t, *stored, *updated)
	mockRepo.AssertNotCalled(t, "GetByName", mock.Anything)
	mockRepo.AssertExpectations(t)
}

func TestColorService_UpdateMalformedStoredID(t *testing.T) {
	// The merged record is re-validated as a whole, and violations
	// name fields by their wire name: a malformed identifier reports
	// as "id", not the Go field name.
	mockRepo := new(MockColorRepository)
	service := services.NewColorService(mockRepo, nil)

	mockRepo.On("GetByID", "legacy-1").Return(&models.Color{ID: "legacy-1", Name: "red"}, nil).Once()
	mockRepo.On("GetByName", "blue").Return(nil, nil).Once()

	_, err := service.Update("legacy-1", models.ColorPatch{Name: models.NewField("blue")})
	var ve *models.ValidationError
	require.ErrorAs(t, err, &ve)
	require.Len(t, ve.Violations, 1)
	assert.Equal(t, "id", ve.Violations[0].Field)
	mockRepo.AssertNotCalled(t, "Update", mock.Anything)
	mockRepo.AssertExpectations(t)
}

func TestColorService_Delete(t *testing.T) {
	mockRepo := new(MockColorRepository)
	service := services.NewColorService(mockRepo, nil)

	mockRepo.On("Delete", "color-1").Return(nil).Once()
	assert.NoError(t, service.Delete("color-1"))

	assert.ErrorIs(t, service.Delete(""), models.ErrInvalidArgument)
	mockRepo.AssertExpectations(t)
}
