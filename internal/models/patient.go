package models

import "gorm.io/gorm"

// Patient represents a person under the care of exactly one doctor.
type Patient struct {
	ID         string `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Name       string `json:"name" gorm:"type:varchar(150)" validate:"required,max=150"`
	Age        int    `json:"age" validate:"required,gt=0"`
	DoctorID   string `json:"doctor_id" gorm:"type:varchar(36);index" validate:"required"`
	gorm.Model        // Embed gorm.Model for CreatedAt, UpdatedAt, DeletedAt
}

// PatientSymptom links a patient to a symptom. The pair is the primary key
// and the link carries the diagnosis made for this patient.
type PatientSymptom struct {
	PatientID string `json:"patient_id" gorm:"primaryKey;type:varchar(36)"`
	SymptomID string `json:"symptom_id" gorm:"primaryKey;type:varchar(36)"`
	Diagnosis string `json:"diagnosis" gorm:"type:varchar(100)"`
}

// PatientSymptomDetail is the read shape for a patient's symptom list: the
// symptom joined with the diagnosis recorded on the association.
type PatientSymptomDetail struct {
	Symptom   Symptom `json:"symptom"`
	Diagnosis string  `json:"diagnosis"`
}
