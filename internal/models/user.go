package models

import "gorm.io/gorm"

// User represents an account that can authenticate against the API.
type User struct {
	ID         string `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Username   string `json:"username" gorm:"uniqueIndex;type:varchar(150)" validate:"required,min=3,max=150"`
	Password   string `json:"-" gorm:"type:varchar(255)" validate:"required"` // Digest only, never serialized
	gorm.Model        // Embed gorm.Model for CreatedAt, UpdatedAt, DeletedAt
}

// HasIdentity reports whether the user is bound to the given identifier.
func (u *User) HasIdentity(id string) bool {
	return u.ID != "" && u.ID == id
}

// Identifier returns the user's unique identifier.
func (u *User) Identifier() string {
	return u.ID
}
