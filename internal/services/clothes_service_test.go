package services_test

import (
	"testing"

	"wardrobe/internal/models"
	"wardrobe/internal/repositories"
	"wardrobe/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clothesFixture wires the clothes service against in-memory
// repositories with one color and one type pre-seeded.
type clothesFixture struct {
	service   *services.ClothesService
	colorRepo *repositories.MockColorRepository
	typeRepo  *repositories.MockClothesTypeRepository
	color     *models.Color
	clothType *models.ClothesType
}

func newClothesFixture(t *testing.T) *clothesFixture {
	t.Helper()

	colorRepo := repositories.NewMockColorRepository()
	typeRepo := repositories.NewMockClothesTypeRepository()
	clothesRepo := repositories.NewMockClothesRepository(colorRepo, typeRepo)

	color := &models.Color{Name: "blue"}
	require.NoError(t, colorRepo.Create(color))
	ct := &models.ClothesType{Name: "jacket", Layer: models.LayerOuter}
	require.NoError(t, typeRepo.Create(ct))

	resolver := services.NewReferenceResolver(colorRepo, typeRepo)
	return &clothesFixture{
		service:   services.NewClothesService(clothesRepo, resolver, nil),
		colorRepo: colorRepo,
		typeRepo:  typeRepo,
		color:     color,
		clothType: ct,
	}
}

func TestClothesService_Create(t *testing.T) {
	f := newClothesFixture(t)

	item, err := f.service.Create(f.color.ID, f.clothType.ID)
	require.NoError(t, err)
	assert.NotEmpty(t, item.ID)

	// The stored item resolves to the referenced records.
	fetched, err := f.service.Get(item.ID)
	require.NoError(t, err)
	require.NotNil(t, fetched.Color)
	require.NotNil(t, fetched.Type)
	assert.Equal(t, "blue", fetched.Color.Name)
	assert.Equal(t, "jacket", fetched.Type.Name)
	assert.Equal(t, models.LayerOuter, fetched.Type.Layer)
}

func TestClothesService_CreateUnresolvedReference(t *testing.T) {
	f := newClothesFixture(t)

	_, err := f.service.Create(f.color.ID, "999")
	assert.ErrorIs(t, err, models.ErrReferenceUnresolved)

	_, err = f.service.Create("999", f.clothType.ID)
	assert.ErrorIs(t, err, models.ErrReferenceUnresolved)

	_, err = f.service.Create("", "")
	assert.ErrorIs(t, err, models.ErrInvalidArgument)
}

func TestClothesService_UpdateRetainsUnsetReference(t *testing.T) {
	f := newClothesFixture(t)

	item, err := f.service.Create(f.color.ID, f.clothType.ID)
	require.NoError(t, err)

	// An all-unset patch changes nothing.
	updated, err := f.service.Update(item.ID, models.ClothesPatch{})
	require.NoError(t, err)
	assert.Equal(t, f.color.ID, updated.ColorID)
	assert.Equal(t, f.clothType.ID, updated.TypeID)
}

func TestClothesService_UpdateReplacesReference(t *testing.T) {
	f := newClothesFixture(t)

	red := &models.Color{Name: "red"}
	require.NoError(t, f.colorRepo.Create(red))

	item, err := f.service.Create(f.color.ID, f.clothType.ID)
	require.NoError(t, err)

	updated, err := f.service.Update(item.ID, models.ClothesPatch{ColorID: models.NewField(red.ID)})
	require.NoError(t, err)
	assert.Equal(t, red.ID, updated.ColorID)
	// The untouched reference is retained.
	assert.Equal(t, f.clothType.ID, updated.TypeID)
	require.NotNil(t, updated.Color)
	assert.Equal(t, "red", updated.Color.Name)
}

func TestClothesService_UpdateDeadReferenceLeavesStoredUnchanged(t *testing.T) {
	f := newClothesFixture(t)

	item, err := f.service.Create(f.color.ID, f.clothType.ID)
	require.NoError(t, err)

	// Patching to a color that does not exist fails and the stored
	// item keeps its previous references.
	_, err = f.service.Update(item.ID, models.ClothesPatch{ColorID: models.NewField("999")})
	assert.ErrorIs(t, err, models.ErrReferenceUnresolved)

	stored, err := f.service.Get(item.ID)
	require.NoError(t, err)
	assert.Equal(t, f.color.ID, stored.ColorID)
	assert.Equal(t, f.clothType.ID, stored.TypeID)
}

func TestClothesService_DanglingReferenceAfterColorDelete(t *testing.T) {
	f := newClothesFixture(t)

	item, err := f.service.Create(f.color.ID, f.clothType.ID)
	require.NoError(t, err)

	// Colors delete freely; the item survives with an unresolvable
	// color reference.
	require.NoError(t, f.colorRepo.Delete(f.color.ID))

	stored, err := f.service.Get(item.ID)
	require.NoError(t, err)
	assert.Nil(t, stored.Color)
	require.NotNil(t, stored.Type)
	assert.Equal(t, "jacket", stored.Type.Name)
}

func TestClothesService_GetByColorName(t *testing.T) {
	f := newClothesFixture(t)

	item, err := f.service.Create(f.color.ID, f.clothType.ID)
	require.NoError(t, err)

	byColor, err := f.service.GetByColorName("blue")
	require.NoError(t, err)
	require.Len(t, byColor, 1)
	assert.Equal(t, item.ID, byColor[0].ID)

	byType, err := f.service.GetByTypeName("jacket")
	require.NoError(t, err)
	require.Len(t, byType, 1)

	none, err := f.service.GetByColorName("chartreuse")
	require.NoError(t, err)
	assert.Empty(t, none)

	_, err = f.service.GetByColorName("")
	assert.ErrorIs(t, err, models.ErrInvalidArgument)
}

func TestClothesService_Delete(t *testing.T) {
	f := newClothesFixture(t)

	item, err := f.service.Create(f.color.ID, f.clothType.ID)
	require.NoError(t, err)

	require.NoError(t, f.service.Delete(item.ID))
	_, err = f.service.Get(item.ID)
	assert.ErrorIs(t, err, models.ErrNotFound)

	assert.ErrorIs(t, f.service.Delete(item.ID), models.ErrNotFound)
}
