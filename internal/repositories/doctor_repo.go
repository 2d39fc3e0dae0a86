package repositories

import "hospital/internal/models"

// DoctorRepository defines the interface for doctor data access.
type DoctorRepository interface {
	GetAll() ([]models.Doctor, error)
	GetByID(id string) (*models.Doctor, error)
	Create(doctor *models.Doctor) error
	Update(doctor *models.Doctor) error
	Delete(id string) error
}
