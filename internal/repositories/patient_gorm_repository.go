package repositories

import (
	"errors"
	"fmt"

	"hospital/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GORMPatientRepository is a GORM implementation of PatientRepository.
type GORMPatientRepository struct {
	db *gorm.DB
}

// NewGORMPatientRepository creates a new instance of GORMPatientRepository.
func NewGORMPatientRepository(db *gorm.DB) *GORMPatientRepository {
	return &GORMPatientRepository{
		db: db,
	}
}

// GetAll retrieves all patients from the database.
func (r *GORMPatientRepository) GetAll() ([]models.Patient, error) {
	var patients []models.Patient
	if err := r.db.Find(&patients).Error; err != nil {
		return nil, fmt.Errorf("failed to get all patients: %w", err)
	}
	return patients, nil
}

// GetByID retrieves a single patient by its ID from the database.
func (r *GORMPatientRepository) GetByID(id string) (*models.Patient, error) {
	var patient models.Patient
	if err := r.db.First(&patient, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("patient with ID %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get patient by ID %s: %w", id, err)
	}
	return &patient, nil
}

// Create creates a new patient in the database.
func (r *GORMPatientRepository) Create(patient *models.Patient) error {
	if patient.ID == "" {
		patient.ID = uuid.New().String()
	}
	if err := r.db.Create(patient).Error; err != nil {
		return fmt.Errorf("failed to create patient: %w", err)
	}
	return nil
}

// Update persists all fields of the given patient.
func (r *GORMPatientRepository) Update(patient *models.Patient) error {
	res := r.db.Save(patient)
	if res.Error != nil {
		return fmt.Errorf("failed to update patient: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("patient with ID %s: %w", patient.ID, ErrNotFound)
	}
	return nil
}

// Delete removes a patient by its ID. A patient with appointments cannot be
// removed; the patient's symptom associations are removed along with it.
// The checks and both deletes run in one transaction.
func (r *GORMPatientRepository) Delete(id string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var appointmentCount int64
		if err := tx.Model(&models.Appointment{}).Where("patient_id = ?", id).Count(&appointmentCount).Error; err != nil {
			return fmt.Errorf("failed to count appointments for patient %s: %w", id, err)
		}
		if appointmentCount > 0 {
			return fmt.Errorf("patient with ID %s still has %d appointment(s): %w", id, appointmentCount, ErrConflict)
		}

		res := tx.Delete(&models.Patient{}, "id = ?", id)
		if res.Error != nil {
			return fmt.Errorf("failed to delete patient: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			return fmt.Errorf("patient with ID %s: %w", id, ErrNotFound)
		}

		if err := tx.Delete(&models.PatientSymptom{}, "patient_id = ?", id).Error; err != nil {
			return fmt.Errorf("failed to delete symptom links for patient %s: %w", id, err)
		}
		return nil
	})
}

// AddSymptom records a symptom for a patient with the given diagnosis.
// Re-adding the same (patient, symptom) pair updates the diagnosis in place.
func (r *GORMPatientRepository) AddSymptom(patientID, symptomID, diagnosis string) error {
	link := models.PatientSymptom{
		PatientID: patientID,
		SymptomID: symptomID,
		Diagnosis: diagnosis,
	}
	err := r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "patient_id"}, {Name: "symptom_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"diagnosis"}),
	}).Create(&link).Error
	if err != nil {
		return fmt.Errorf("failed to add symptom %s to patient %s: %w", symptomID, patientID, err)
	}
	return nil
}

// GetSymptoms returns the patient's symptoms joined with the diagnosis
// recorded on each association.
func (r *GORMPatientRepository) GetSymptoms(patientID string) ([]models.PatientSymptomDetail, error) {
	var links []models.PatientSymptom
	if err := r.db.Find(&links, "patient_id = ?", patientID).Error; err != nil {
		return nil, fmt.Errorf("failed to get symptom links for patient %s: %w", patientID, err)
	}

	details := make([]models.PatientSymptomDetail, 0, len(links))
	for _, link := range links {
		var symptom models.Symptom
		if err := r.db.First(&symptom, "id = ?", link.SymptomID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				// Link to a removed symptom; skip rather than fail the listing.
				continue
			}
			return nil, fmt.Errorf("failed to get symptom %s: %w", link.SymptomID, err)
		}
		details = append(details, models.PatientSymptomDetail{
			Symptom:   symptom,
			Diagnosis: link.Diagnosis,
		})
	}
	return details, nil
}

// RemoveSymptom deletes the association between a patient and a symptom.
func (r *GORMPatientRepository) RemoveSymptom(patientID, symptomID string) error {
	res := r.db.Delete(&models.PatientSymptom{}, "patient_id = ? AND symptom_id = ?", patientID, symptomID)
	if res.Error != nil {
		return fmt.Errorf("failed to remove symptom %s from patient %s: %w", symptomID, patientID, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("symptom %s is not recorded for patient %s: %w", symptomID, patientID, ErrNotFound)
	}
	return nil
}
