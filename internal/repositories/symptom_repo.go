package repositories

import "hospital/internal/models"

// SymptomRepository defines the interface for symptom data access.
type SymptomRepository interface {
	GetAll() ([]models.Symptom, error)
	GetByID(id string) (*models.Symptom, error)
	Create(symptom *models.Symptom) error
	Update(symptom *models.Symptom) error
	Delete(id string) error
}
