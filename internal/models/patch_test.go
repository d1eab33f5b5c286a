package models_test

import (
	"encoding/json"
	"testing"

	"wardrobe/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFieldUnmarshal(t *testing.T) {
	var patch models.ColorPatch

	// Absent key leaves the field unset.
	require.NoError(t, json.Unmarshal([]byte(`{}`), &patch))
	assert.False(t, patch.Name.Set)

	// Present key sets it, including an explicit empty string.
	require.NoError(t, json.Unmarshal([]byte(`{"name":""}`), &patch))
	assert.True(t, patch.Name.Set)
	assert.Equal(t, "", patch.Name.Value)

	patch = models.ColorPatch{}
	require.NoError(t, json.Unmarshal([]byte(`{"name":"red"}`), &patch))
	assert.True(t, patch.Name.Set)
	assert.Equal(t, "red", patch.Name.Value)
}

func TestColorPatchApply(t *testing.T) {
	base := models.Color{ID: "color-1", Name: "red"}

	// All-unset patch returns a value equal to base.
	assert.Equal(t, base, models.ColorPatch{}.Apply(base))

	// A set field replaces; explicit empty string is a real value,
	// not "leave unchanged".
	updated := models.ColorPatch{Name: models.NewField("blue")}.Apply(base)
	assert.Equal(t, "blue", updated.Name)
	assert.Equal(t, "color-1", updated.ID)

	blanked := models.ColorPatch{Name: models.NewField("")}.Apply(base)
	assert.Equal(t, "", blanked.Name)
}

func TestClothesTypePatchApply(t *testing.T) {
	base := models.ClothesType{ID: "type-1", Name: "jacket", Layer: models.LayerOuter}

	assert.Equal(t, base, models.ClothesTypePatch{}.Apply(base))

	updated := models.ClothesTypePatch{Layer: models.NewField(models.LayerMid)}.Apply(base)
	assert.Equal(t, models.LayerMid, updated.Layer)
	assert.Equal(t, "jacket", updated.Name)
}

func TestClothesPatchApply(t *testing.T) {
	base := models.Clothes{
		ID:      "clothes-1",
		ColorID: "color-1",
		TypeID:  "type-1",
		Color:   &models.Color{ID: "color-1", Name: "red"},
	}

	// Unset references are retained.
	unchanged := models.ClothesPatch{}.Apply(base)
	assert.Equal(t, "color-1", unchanged.ColorID)
	assert.Equal(t, "type-1", unchanged.TypeID)

	updated := models.ClothesPatch{ColorID: models.NewField("color-2")}.Apply(base)
	assert.Equal(t, "color-2", updated.ColorID)
	assert.Equal(t, "type-1", updated.TypeID)
	// Stale attachments are dropped after a merge.
	assert.Nil(t, updated.Color)
}

func TestUserPatchApply(t *testing.T) {
	base := models.User{
		ID:        "user-1",
		Username:  "wardrobefan",
		Password:  "hashed",
		FirstName: "Ada",
		LastName:  "Lovelace",
		Email:     "ada@example.com",
		Role:      models.RoleAdmin,
	}

	assert.Equal(t, base, models.UserPatch{}.Apply(base))

	patch := models.UserPatch{
		FirstName: models.NewField("Grace"),
		Email:     models.NewField("grace@example.com"),
	}
	updated := patch.Apply(base)
	assert.Equal(t, "Grace", updated.FirstName)
	assert.Equal(t, "grace@example.com", updated.Email)
	assert.Equal(t, "Lovelace", updated.LastName)

	// Identifier and role are never taken from a patch.
	assert.Equal(t, "user-1", updated.ID)
	assert.Equal(t, models.RoleAdmin, updated.Role)
}

func TestLayerValid(t *testing.T) {
	for _, layer := range models.Layers {
		assert.True(t, layer.Valid(), "layer %s should be valid", layer)
	}
	assert.False(t, models.Layer("BASE_LAYER").Valid())
	assert.False(t, models.Layer("spacesuit").Valid())
}
