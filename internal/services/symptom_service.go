package services

import (
	"hospital/internal/models"
	"hospital/internal/repositories"
)

// SymptomService handles business logic related to symptoms.
type SymptomService struct {
	repo repositories.SymptomRepository
}

// NewSymptomService creates a new SymptomService.
func NewSymptomService(repo repositories.SymptomRepository) *SymptomService {
	return &SymptomService{
		repo: repo,
	}
}

// GetAllSymptoms retrieves all symptoms.
func (s *SymptomService) GetAllSymptoms() ([]models.Symptom, error) {
	return s.repo.GetAll()
}

// GetSymptomByID retrieves a single symptom by its ID.
func (s *SymptomService) GetSymptomByID(id string) (*models.Symptom, error) {
	return s.repo.GetByID(id)
}

// CreateSymptom creates a new symptom.
func (s *SymptomService) CreateSymptom(symptom *models.Symptom) error {
	return s.repo.Create(symptom)
}

// UpdateSymptom applies a partial update: only the fields present in the
// payload change.
func (s *SymptomService) UpdateSymptom(id string, name, description *string) (*models.Symptom, error) {
	symptom, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}

	if name != nil {
		symptom.Name = *name
	}
	if description != nil {
		symptom.Description = *description
	}

	if err := s.repo.Update(symptom); err != nil {
		return nil, err
	}
	return symptom, nil
}

// DeleteSymptom deletes a symptom by its ID. Patient associations are
// removed with it so patient symptom lists reflect the removal.
func (s *SymptomService) DeleteSymptom(id string) error {
	return s.repo.Delete(id)
}
