package repositories

import "hospital/internal/models"

// AppointmentRepository defines the interface for appointment data access.
type AppointmentRepository interface {
	GetAll() ([]models.Appointment, error)
	GetByID(id string) (*models.Appointment, error)
	Create(appointment *models.Appointment) error
	Update(appointment *models.Appointment) error
	Delete(id string) error
}
