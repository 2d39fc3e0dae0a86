package models

import "gorm.io/gorm"

// Symptom represents a named symptom that can be associated with patients.
type Symptom struct {
	ID          string `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Name        string `json:"name" gorm:"type:varchar(150)" validate:"required,max=150"`
	Description string `json:"description" gorm:"type:text" validate:"omitempty"`
	gorm.Model         // Embed gorm.Model for CreatedAt, UpdatedAt, DeletedAt
}
