package repositories

import (
	"errors"
	"fmt"

	"hospital/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMAppointmentRepository is a GORM implementation of AppointmentRepository.
type GORMAppointmentRepository struct {
	db *gorm.DB
}

// NewGORMAppointmentRepository creates a new instance of GORMAppointmentRepository.
func NewGORMAppointmentRepository(db *gorm.DB) *GORMAppointmentRepository {
	return &GORMAppointmentRepository{
		db: db,
	}
}

// GetAll retrieves all appointments from the database.
func (r *GORMAppointmentRepository) GetAll() ([]models.Appointment, error) {
	var appointments []models.Appointment
	if err := r.db.Find(&appointments).Error; err != nil {
		return nil, fmt.Errorf("failed to get all appointments: %w", err)
	}
	return appointments, nil
}

// GetByID retrieves a single appointment by its ID from the database.
func (r *GORMAppointmentRepository) GetByID(id string) (*models.Appointment, error) {
	var appointment models.Appointment
	if err := r.db.First(&appointment, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("appointment with ID %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get appointment by ID %s: %w", id, err)
	}
	return &appointment, nil
}

// Create creates a new appointment in the database.
func (r *GORMAppointmentRepository) Create(appointment *models.Appointment) error {
	if appointment.ID == "" {
		appointment.ID = uuid.New().String()
	}
	if err := r.db.Create(appointment).Error; err != nil {
		return fmt.Errorf("failed to create appointment: %w", err)
	}
	return nil
}

// Update persists all fields of the given appointment.
func (r *GORMAppointmentRepository) Update(appointment *models.Appointment) error {
	res := r.db.Save(appointment)
	if res.Error != nil {
		return fmt.Errorf("failed to update appointment: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("appointment with ID %s: %w", appointment.ID, ErrNotFound)
	}
	return nil
}

// Delete removes an appointment by its ID from the database.
func (r *GORMAppointmentRepository) Delete(id string) error {
	res := r.db.Delete(&models.Appointment{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete appointment: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("appointment with ID %s: %w", id, ErrNotFound)
	}
	return nil
}
