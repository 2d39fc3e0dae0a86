package repositories

import (
	"errors"
	"fmt"

	"hospital/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMSymptomRepository is a GORM implementation of SymptomRepository.
type GORMSymptomRepository struct {
	db *gorm.DB
}

// NewGORMSymptomRepository creates a new instance of GORMSymptomRepository.
func NewGORMSymptomRepository(db *gorm.DB) *GORMSymptomRepository {
	return &GORMSymptomRepository{
		db: db,
	}
}

// GetAll retrieves all symptoms from the database.
func (r *GORMSymptomRepository) GetAll() ([]models.Symptom, error) {
	var symptoms []models.Symptom
	if err := r.db.Find(&symptoms).Error; err != nil {
		return nil, fmt.Errorf("failed to get all symptoms: %w", err)
	}
	return symptoms, nil
}

// GetByID retrieves a single symptom by its ID from the database.
func (r *GORMSymptomRepository) GetByID(id string) (*models.Symptom, error) {
	var symptom models.Symptom
	if err := r.db.First(&symptom, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("symptom with ID %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get symptom by ID %s: %w", id, err)
	}
	return &symptom, nil
}

// Create creates a new symptom in the database.
func (r *GORMSymptomRepository) Create(symptom *models.Symptom) error {
	if symptom.ID == "" {
		symptom.ID = uuid.New().String()
	}
	if err := r.db.Create(symptom).Error; err != nil {
		return fmt.Errorf("failed to create symptom: %w", err)
	}
	return nil
}

// Update persists all fields of the given symptom.
func (r *GORMSymptomRepository) Update(symptom *models.Symptom) error {
	res := r.db.Save(symptom)
	if res.Error != nil {
		return fmt.Errorf("failed to update symptom: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("symptom with ID %s: %w", symptom.ID, ErrNotFound)
	}
	return nil
}

// Delete removes a symptom by its ID. Patient associations referencing the
// symptom are removed in the same transaction so patient symptom lists stay
// consistent.
func (r *GORMSymptomRepository) Delete(id string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Delete(&models.Symptom{}, "id = ?", id)
		if res.Error != nil {
			return fmt.Errorf("failed to delete symptom: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			return fmt.Errorf("symptom with ID %s: %w", id, ErrNotFound)
		}

		if err := tx.Delete(&models.PatientSymptom{}, "symptom_id = ?", id).Error; err != nil {
			return fmt.Errorf("failed to delete patient links for symptom %s: %w", id, err)
		}
		return nil
	})
}
