package models

// Color represents a named color in the wardrobe catalog.
type Color struct {
	ID   string `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Name string `json:"name" gorm:"uniqueIndex;type:varchar(100);not null" validate:"required,notblank"`
}

// TableName pins the table name so the schema does not depend on
// pluralization rules.
func (Color) TableName() string { return "colors" }
