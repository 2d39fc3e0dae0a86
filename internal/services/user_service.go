package services

import (
	"fmt"

	"hospital/internal/models"
	"hospital/internal/repositories"
	"hospital/internal/utils"
)

// minUsernameLen applies to every write of the username field, not only
// account creation.
const minUsernameLen = 3

func validateUsername(username string) error {
	if len(username) < minUsernameLen {
		return fmt.Errorf("username must be at least %d characters long: %w", minUsernameLen, ErrValidation)
	}
	return nil
}

// UserService handles business logic related to user accounts.
type UserService struct {
	repo repositories.UserRepository
}

// NewUserService creates a new UserService.
func NewUserService(repo repositories.UserRepository) *UserService {
	return &UserService{
		repo: repo,
	}
}

// GetAllUsers retrieves all users.
func (s *UserService) GetAllUsers() ([]models.User, error) {
	return s.repo.GetAll()
}

// GetUserByID retrieves a single user by their ID.
func (s *UserService) GetUserByID(id string) (*models.User, error) {
	return s.repo.GetByID(id)
}

// UpdateUser applies a partial update: only the fields present in the
// payload change. A new username is re-validated and re-checked for
// uniqueness; a new password is stored hashed.
func (s *UserService) UpdateUser(id string, username, password *string) (*models.User, error) {
	user, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}

	if username != nil && *username != user.Username {
		if err := validateUsername(*username); err != nil {
			return nil, err
		}
		if existing, err := s.repo.GetByUsername(*username); err == nil && existing != nil {
			return nil, fmt.Errorf("username '%s' already taken: %w", *username, repositories.ErrConflict)
		}
		user.Username = *username
	}
	if password != nil {
		if *password == "" {
			return nil, fmt.Errorf("password must not be empty: %w", ErrValidation)
		}
		hashed, err := utils.HashPassword(*password)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
		user.Password = hashed
	}

	if err := s.repo.Update(user); err != nil {
		return nil, err
	}
	return user, nil
}

// DeleteUser deletes a user by their ID.
func (s *UserService) DeleteUser(id string) error {
	return s.repo.Delete(id)
}
