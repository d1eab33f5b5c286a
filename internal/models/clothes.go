package models

// Clothes represents a single wardrobe item: a color plus a type.
// Color and Type carry the resolved records when the referenced rows
// still exist; a dangling reference leaves them nil.
type Clothes struct {
	ID      string       `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	ColorID string       `json:"colorId" gorm:"type:varchar(36);index;not null" validate:"required"`
	TypeID  string       `json:"typeId" gorm:"type:varchar(36);index;not null" validate:"required"`
	Color   *Color       `json:"color,omitempty" gorm:"foreignKey:ColorID"`
	Type    *ClothesType `json:"type,omitempty" gorm:"foreignKey:TypeID"`
}

func (Clothes) TableName() string { return "clothes" }
