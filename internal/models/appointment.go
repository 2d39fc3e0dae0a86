package models

import "gorm.io/gorm"

// Appointment represents a booked visit between a patient and a doctor.
// Date and time are opaque strings on the wire; the API does not interpret
// or order them.
type Appointment struct {
	ID         string `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	PatientID  string `json:"patient_id" gorm:"type:varchar(36);index" validate:"required"`
	DoctorID   string `json:"doctor_id" gorm:"type:varchar(36);index" validate:"required"`
	Date       string `json:"date" gorm:"type:varchar(100)" validate:"required"`
	Time       string `json:"time" gorm:"type:varchar(100)" validate:"required"`
	Reason     string `json:"reason" gorm:"type:varchar(200)" validate:"required,max=200"`
	gorm.Model        // Embed gorm.Model for CreatedAt, UpdatedAt, DeletedAt
}
