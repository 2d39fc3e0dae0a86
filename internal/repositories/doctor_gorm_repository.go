package repositories

import (
	"errors"
	"fmt"

	"hospital/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMDoctorRepository is a GORM implementation of DoctorRepository.
type GORMDoctorRepository struct {
	db *gorm.DB
}

// NewGORMDoctorRepository creates a new instance of GORMDoctorRepository.
func NewGORMDoctorRepository(db *gorm.DB) *GORMDoctorRepository {
	return &GORMDoctorRepository{
		db: db,
	}
}

// GetAll retrieves all doctors from the database.
func (r *GORMDoctorRepository) GetAll() ([]models.Doctor, error) {
	var doctors []models.Doctor
	if err := r.db.Find(&doctors).Error; err != nil {
		return nil, fmt.Errorf("failed to get all doctors: %w", err)
	}
	return doctors, nil
}

// GetByID retrieves a single doctor by its ID from the database.
func (r *GORMDoctorRepository) GetByID(id string) (*models.Doctor, error) {
	var doctor models.Doctor
	if err := r.db.First(&doctor, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("doctor with ID %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get doctor by ID %s: %w", id, err)
	}
	return &doctor, nil
}

// Create creates a new doctor in the database.
func (r *GORMDoctorRepository) Create(doctor *models.Doctor) error {
	if doctor.ID == "" {
		doctor.ID = uuid.New().String()
	}
	if err := r.db.Create(doctor).Error; err != nil {
		return fmt.Errorf("failed to create doctor: %w", err)
	}
	return nil
}

// Update persists all fields of the given doctor.
func (r *GORMDoctorRepository) Update(doctor *models.Doctor) error {
	res := r.db.Save(doctor)
	if res.Error != nil {
		return fmt.Errorf("failed to update doctor: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("doctor with ID %s: %w", doctor.ID, ErrNotFound)
	}
	return nil
}

// Delete removes a doctor by its ID. The delete is restricted: a doctor
// still referenced by patients or appointments cannot be removed. The
// dependent checks and the delete run in one transaction.
func (r *GORMDoctorRepository) Delete(id string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var patientCount int64
		if err := tx.Model(&models.Patient{}).Where("doctor_id = ?", id).Count(&patientCount).Error; err != nil {
			return fmt.Errorf("failed to count patients for doctor %s: %w", id, err)
		}
		if patientCount > 0 {
			return fmt.Errorf("doctor with ID %s still has %d patient(s): %w", id, patientCount, ErrConflict)
		}

		var appointmentCount int64
		if err := tx.Model(&models.Appointment{}).Where("doctor_id = ?", id).Count(&appointmentCount).Error; err != nil {
			return fmt.Errorf("failed to count appointments for doctor %s: %w", id, err)
		}
		if appointmentCount > 0 {
			return fmt.Errorf("doctor with ID %s still has %d appointment(s): %w", id, appointmentCount, ErrConflict)
		}

		res := tx.Delete(&models.Doctor{}, "id = ?", id)
		if res.Error != nil {
			return fmt.Errorf("failed to delete doctor: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			return fmt.Errorf("doctor with ID %s: %w", id, ErrNotFound)
		}
		return nil
	})
}
