package models

// Patch types describe partial updates. Apply folds a patch into a
// stored record: set fields replace, unset fields fall back to the
// base value. Apply is pure and never touches the identifier — the
// target of an update is named by the caller, not by the payload.

// ColorPatch is a partial update for a Color.
type ColorPatch struct {
	Name Field[string] `json:"name"`
}

// Apply returns base with the patch's set fields folded in.
func (p ColorPatch) Apply(base Color) Color {
	base.Name = p.Name.Or(base.Name)
	return base
}

// ClothesTypePatch is a partial update for a ClothesType.
type ClothesTypePatch struct {
	Name  Field[string] `json:"name"`
	Layer Field[Layer]  `json:"layer"`
}

// Apply returns base with the patch's set fields folded in.
func (p ClothesTypePatch) Apply(base ClothesType) ClothesType {
	base.Name = p.Name.Or(base.Name)
	base.Layer = p.Layer.Or(base.Layer)
	return base
}

// ClothesPatch is a partial update for a Clothes item. An unset
// reference retains the current one; only an explicit replacement
// changes it.
type ClothesPatch struct {
	ColorID Field[string] `json:"colorId"`
	TypeID  Field[string] `json:"typeId"`
}

// Apply returns base with the patch's set fields folded in. The
// resolved Color/Type attachments are cleared because they may no
// longer match the merged ids.
func (p ClothesPatch) Apply(base Clothes) Clothes {
	base.ColorID = p.ColorID.Or(base.ColorID)
	base.TypeID = p.TypeID.Or(base.TypeID)
	base.Color = nil
	base.Type = nil
	return base
}

// UserPatch is a partial update for a User. Password, when set, must
// hold the already-hashed value by the time Apply runs; Role is never
// changed through a patch.
type UserPatch struct {
	Username  Field[string] `json:"username"`
	Password  Field[string] `json:"password"`
	FirstName Field[string] `json:"firstName"`
	LastName  Field[string] `json:"lastName"`
	Email     Field[string] `json:"email"`
}

// Apply returns base with the patch's set fields folded in.
func (p UserPatch) Apply(base User) User {
	base.Username = p.Username.Or(base.Username)
	base.Password = p.Password.Or(base.Password)
	base.FirstName = p.FirstName.Or(base.FirstName)
	base.LastName = p.LastName.Or(base.LastName)
	base.Email = p.Email.Or(base.Email)
	return base
}
