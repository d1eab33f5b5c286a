package models

// ClothesType represents a category of clothes (e.g. "jacket") together
// with the layer it belongs to.
type ClothesType struct {
	ID    string `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Name  string `json:"name" gorm:"uniqueIndex;type:varchar(100);not null" validate:"required,notblank"`
	Layer Layer  `json:"layer" gorm:"type:varchar(20);not null" validate:"required,oneof=baselayer midlayer outerlayer accessory footwear headwear bottomwear"`
}

func (ClothesType) TableName() string { return "clothes_types" }
