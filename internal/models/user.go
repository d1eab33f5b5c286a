package models

import "gorm.io/gorm"

// Role is the access level attached to a user account.
type Role string

const (
	RoleUser  Role = "USER"
	RoleAdmin Role = "ADMIN"
)

// User represents a registered account. Password always holds the
// bcrypt hash, never the raw password; the raw password's minimum
// length is checked before hashing.
type User struct {
	ID         string `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Username   string `json:"username" gorm:"uniqueIndex;type:varchar(100);not null" validate:"required,min=5"`
	Password   string `json:"-" gorm:"type:varchar(255);not null" validate:"required"`
	FirstName  string `json:"firstName" gorm:"type:varchar(100);not null" validate:"required,notblank"`
	LastName   string `json:"lastName" gorm:"type:varchar(100);not null" validate:"required,notblank"`
	Email      string `json:"email" gorm:"uniqueIndex;type:varchar(255);not null" validate:"required,email"`
	Role       Role   `json:"role" gorm:"type:varchar(10);not null" validate:"required,oneof=USER ADMIN"`
	gorm.Model `json:"-"` // CreatedAt, UpdatedAt, DeletedAt
}

func (User) TableName() string { return "users" }
