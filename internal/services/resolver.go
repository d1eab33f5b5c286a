package services

import (
	"wardrobe/internal/models"
	"wardrobe/internal/repositories"
)

// ReferenceResolver confirms that foreign identifiers name live
// records. ClothesService depends on this interface rather than on the
// color/type services, so entity services never call each other.
type ReferenceResolver interface {
	ResolveColor(id string) (*models.Color, error)
	ResolveClothesType(id string) (*models.ClothesType, error)
}

type repoResolver struct {
	colors repositories.ColorRepository
	types  repositories.ClothesTypeRepository
}

// NewReferenceResolver builds a ReferenceResolver backed by the color
// and clothes-type repositories.
func NewReferenceResolver(colors repositories.ColorRepository, types repositories.ClothesTypeRepository) ReferenceResolver {
	return &repoResolver{colors: colors, types: types}
}

// ResolveColor returns the referenced color or a ReferenceError when
// the identifier does not name a live record.
func (r *repoResolver) ResolveColor(id string) (*models.Color, error) {
	color, err := r.colors.GetByID(id)
	if err != nil {
		return nil, err
	}
	if color == nil {
		return nil, &models.ReferenceError{Kind: "color", ID: id}
	}
	return color, nil
}

// ResolveClothesType returns the referenced clothes type or a
// ReferenceError when the identifier does not name a live record.
func (r *repoResolver) ResolveClothesType(id string) (*models.ClothesType, error) {
	ct, err := r.types.GetByID(id)
	if err != nil {
		return nil, err
	}
	if ct == nil {
		return nil, &models.ReferenceError{Kind: "clothes type", ID: id}
	}
	return ct, nil
}
