package services

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"shoeshop/internal/models"
	"shoeshop/internal/repositories"
)

// UserService handles admin-side user management.
type UserService struct {
	repo repositories.UserRepository
}

// NewUserService creates a new UserService.
func NewUserService(repo repositories.UserRepository) *UserService {
	return &UserService{
		repo: repo,
	}
}

// GetAllUsers retrieves all user accounts.
func (s *UserService) GetAllUsers() ([]models.User, error) {
	return s.repo.GetAll()
}

// CreateUser creates a user with an explicit role and a hashed password.
func (s *UserService) CreateUser(user *models.User) error {
	if !user.Role.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidRole, user.Role)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	user.Password = string(hashedPassword)

	if err := s.repo.Create(user); err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

// UpdateRole changes a user's role. Demoting the last remaining Admin is
// refused so the system cannot lock itself out.
func (s *UserService) UpdateRole(id string, role models.Role) error {
	if !role.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidRole, role)
	}

	user, err := s.repo.GetByID(id)
	if err != nil {
		return err
	}
	if user.Role == role {
		return nil
	}

	if user.Role == models.RoleAdmin {
		if err := s.ensureNotLastAdmin(); err != nil {
			return err
		}
	}

	user.Role = role
	return s.repo.Update(user)
}

// DeleteUser removes a user account. Deleting the last remaining Admin is
// refused.
func (s *UserService) DeleteUser(id string) error {
	user, err := s.repo.GetByID(id)
	if err != nil {
		return err
	}

	if user.Role == models.RoleAdmin {
		if err := s.ensureNotLastAdmin(); err != nil {
			return err
		}
	}

	return s.repo.Delete(id)
}

func (s *UserService) ensureNotLastAdmin() error {
	admins, err := s.repo.CountByRole(models.RoleAdmin)
	if err != nil {
		return fmt.Errorf("failed to count admins: %w", err)
	}
	if admins <= 1 {
		return ErrLastAdmin
	}
	return nil
}
