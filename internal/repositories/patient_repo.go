package repositories

import "hospital/internal/models"

// PatientRepository defines the interface for patient data access,
// including the patient-symptom association carrying a diagnosis.
type PatientRepository interface {
	GetAll() ([]models.Patient, error)
	GetByID(id string) (*models.Patient, error)
	Create(patient *models.Patient) error
	Update(patient *models.Patient) error
	Delete(id string) error

	AddSymptom(patientID, symptomID, diagnosis string) error
	GetSymptoms(patientID string) ([]models.PatientSymptomDetail, error)
	RemoveSymptom(patientID, symptomID string) error
}
