package services

import (
	"hospital/internal/models"
	"hospital/internal/repositories"
)

// DoctorService handles business logic related to doctors.
type DoctorService struct {
	repo repositories.DoctorRepository
}

// NewDoctorService creates a new DoctorService.
func NewDoctorService(repo repositories.DoctorRepository) *DoctorService {
	return &DoctorService{
		repo: repo,
	}
}

// GetAllDoctors retrieves all doctors.
func (s *DoctorService) GetAllDoctors() ([]models.Doctor, error) {
	return s.repo.GetAll()
}

// GetDoctorByID retrieves a single doctor by its ID.
func (s *DoctorService) GetDoctorByID(id string) (*models.Doctor, error) {
	return s.repo.GetByID(id)
}

// CreateDoctor creates a new doctor.
func (s *DoctorService) CreateDoctor(doctor *models.Doctor) error {
	return s.repo.Create(doctor)
}

// UpdateDoctor applies a partial update: only the fields present in the
// payload change, atomically.
func (s *DoctorService) UpdateDoctor(id string, name, specialty *string) (*models.Doctor, error) {
	doctor, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}

	if name != nil {
		doctor.Name = *name
	}
	if specialty != nil {
		doctor.Specialty = *specialty
	}

	if err := s.repo.Update(doctor); err != nil {
		return nil, err
	}
	return doctor, nil
}

// DeleteDoctor deletes a doctor by its ID. The repository rejects the delete
// while patients or appointments still reference the doctor.
func (s *DoctorService) DeleteDoctor(id string) error {
	return s.repo.Delete(id)
}
