package services

import (
	"fmt"

	"hospital/internal/models"
	"hospital/internal/repositories"
)

// PatientService handles business logic related to patients, including the
// patient-symptom association carrying a diagnosis.
type PatientService struct {
	patientRepo repositories.PatientRepository
	doctorRepo  repositories.DoctorRepository
	symptomRepo repositories.SymptomRepository
}

// NewPatientService creates a new PatientService.
func NewPatientService(patientRepo repositories.PatientRepository, doctorRepo repositories.DoctorRepository, symptomRepo repositories.SymptomRepository) *PatientService {
	return &PatientService{
		patientRepo: patientRepo,
		doctorRepo:  doctorRepo,
		symptomRepo: symptomRepo,
	}
}

// GetAllPatients retrieves all patients.
func (s *PatientService) GetAllPatients() ([]models.Patient, error) {
	return s.patientRepo.GetAll()
}

// GetPatientByID retrieves a single patient by its ID.
func (s *PatientService) GetPatientByID(id string) (*models.Patient, error) {
	return s.patientRepo.GetByID(id)
}

// CreatePatient creates a new patient. The referenced doctor must exist;
// nothing is persisted when the reference does not resolve.
func (s *PatientService) CreatePatient(patient *models.Patient) error {
	if _, err := s.doctorRepo.GetByID(patient.DoctorID); err != nil {
		return fmt.Errorf("doctor reference %s does not resolve: %w", patient.DoctorID, err)
	}
	return s.patientRepo.Create(patient)
}

// UpdatePatient applies a partial update: only the fields present in the
// payload change. A changed doctor reference is re-checked.
func (s *PatientService) UpdatePatient(id string, name *string, age *int, doctorID *string) (*models.Patient, error) {
	patient, err := s.patientRepo.GetByID(id)
	if err != nil {
		return nil, err
	}

	if name != nil {
		patient.Name = *name
	}
	if age != nil {
		if *age <= 0 {
			return nil, fmt.Errorf("age must be a positive integer: %w", ErrValidation)
		}
		patient.Age = *age
	}
	if doctorID != nil && *doctorID != patient.DoctorID {
		if _, err := s.doctorRepo.GetByID(*doctorID); err != nil {
			return nil, fmt.Errorf("doctor reference %s does not resolve: %w", *doctorID, err)
		}
		patient.DoctorID = *doctorID
	}

	if err := s.patientRepo.Update(patient); err != nil {
		return nil, err
	}
	return patient, nil
}

// DeletePatient deletes a patient by its ID. The repository rejects the
// delete while appointments still reference the patient.
func (s *PatientService) DeletePatient(id string) error {
	return s.patientRepo.Delete(id)
}

// AddSymptom records a symptom for a patient with a diagnosis. Both
// references must resolve. Re-adding an existing pair updates the diagnosis.
func (s *PatientService) AddSymptom(patientID, symptomID, diagnosis string) error {
	if _, err := s.patientRepo.GetByID(patientID); err != nil {
		return err
	}
	if _, err := s.symptomRepo.GetByID(symptomID); err != nil {
		return err
	}
	return s.patientRepo.AddSymptom(patientID, symptomID, diagnosis)
}

// GetSymptoms lists a patient's symptoms with the diagnosis recorded on
// each association.
func (s *PatientService) GetSymptoms(patientID string) ([]models.PatientSymptomDetail, error) {
	if _, err := s.patientRepo.GetByID(patientID); err != nil {
		return nil, err
	}
	return s.patientRepo.GetSymptoms(patientID)
}

// RemoveSymptom removes the association between a patient and a symptom.
func (s *PatientService) RemoveSymptom(patientID, symptomID string) error {
	if _, err := s.patientRepo.GetByID(patientID); err != nil {
		return err
	}
	return s.patientRepo.RemoveSymptom(patientID, symptomID)
}
