package models

import "gorm.io/gorm"

// Doctor represents a care provider. Patients and appointments reference a
// doctor by ID; deleting a doctor that is still referenced is rejected.
type Doctor struct {
	ID         string `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Name       string `json:"name" gorm:"type:varchar(150)" validate:"required,max=150"`
	Specialty  string `json:"specialty" gorm:"type:varchar(150)" validate:"required,max=150"`
	gorm.Model        // Embed gorm.Model for CreatedAt, UpdatedAt, DeletedAt
}
