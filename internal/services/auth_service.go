package services

import (
	"fmt"
	"log"

	"golang.org/x/crypto/bcrypt"

	"shoeshop/internal/models"
	"shoeshop/internal/repositories"
)

// AuthService handles registration and the credential-to-token exchange.
type AuthService struct {
	userRepo repositories.UserRepository
	tokens   *TokenService
}

// NewAuthService creates a new AuthService.
func NewAuthService(userRepo repositories.UserRepository, tokens *TokenService) *AuthService {
	return &AuthService{
		userRepo: userRepo,
		tokens:   tokens,
	}
}

// Register creates a new Guest-role user with a hashed password.
func (s *AuthService) Register(user *models.User) error {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	user.Password = string(hashedPassword)
	user.Role = models.RoleGuest

	if err := s.userRepo.Create(user); err != nil {
		return fmt.Errorf("failed to register user: %w", err)
	}
	return nil
}

// Login authenticates a user and returns a signed session token. Unknown
// usernames and wrong passwords both surface as ErrInvalidCredentials so the
// response cannot be used to enumerate accounts.
func (s *AuthService) Login(username, password string) (string, error) {
	user, err := s.userRepo.GetByUsername(username)
	if err != nil {
		return "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.Username, user.Role)
	if err != nil {
		log.Printf("Failed to issue token for user %s: %v", username, err)
		return "", fmt.Errorf("failed to issue token: %w", err)
	}
	return token, nil
}
