package services_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"shoeshop/internal/models"
	"shoeshop/internal/repositories"
	"shoeshop/internal/services"
)

// MockUserRepository is a mock implementation of repositories.UserRepository.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(user *models.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserRepository) GetAll() ([]models.User, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.User), args.Error(1)
}

func (m *MockUserRepository) GetByUsername(username string) (*models.User, error) {
	args := m.Called(username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetByID(id string) (*models.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) Update(user *models.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserRepository) Delete(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockUserRepository) Count() (int64, error) {
	args := m.Called()
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockUserRepository) CountByRole(role models.Role) (int64, error) {
	args := m.Called(role)
	return args.Get(0).(int64), args.Error(1)
}

func TestAuthService_Login(t *testing.T) {
	mockRepo := new(MockUserRepository)
	tokens := services.NewTokenService("test_jwt_secret", 0)
	authService := services.NewAuthService(mockRepo, tokens)

	hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	user := &models.User{
		ID:       "user-123",
		Username: "testadmin",
		Password: string(hashedPassword),
		Role:     models.RoleAdmin,
	}

	// Successful login returns a token whose decoded role equals the stored role.
	mockRepo.On("GetByUsername", user.Username).Return(user, nil).Once()
	token, err := authService.Login("testadmin", "password123")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := tokens.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, user.Username, claims.Subject)
	assert.Equal(t, user.Role, claims.Role)
	mockRepo.AssertExpectations(t)
}

func TestAuthService_LoginFailuresAreIndistinguishable(t *testing.T) {
	mockRepo := new(MockUserRepository)
	tokens := services.NewTokenService("test_jwt_secret", 0)
	authService := services.NewAuthService(mockRepo, tokens)

	hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	user := &models.User{
		ID:       "user-123",
		Username: "testuser",
		Password: string(hashedPassword),
		Role:     models.RoleGuest,
	}

	// Wrong password.
	mockRepo.On("GetByUsername", user.Username).Return(user, nil).Once()
	_, wrongPassErr := authService.Login("testuser", "wrongpassword")
	require.Error(t, wrongPassErr)

	// Unknown username.
	mockRepo.On("GetByUsername", "nosuchuser").
		Return(nil, fmt.Errorf("user with username nosuchuser: %w", repositories.ErrNotFound)).Once()
	_, unknownUserErr := authService.Login("nosuchuser", "password123")
	require.Error(t, unknownUserErr)

	// Both cases collapse into the same sentinel so the response cannot be
	// used to probe which usernames exist.
	assert.ErrorIs(t, wrongPassErr, services.ErrInvalidCredentials)
	assert.ErrorIs(t, unknownUserErr, services.ErrInvalidCredentials)
	assert.Equal(t, wrongPassErr.Error(), unknownUserErr.Error())
	mockRepo.AssertExpectations(t)
}

func TestAuthService_Register(t *testing.T) {
	mockRepo := new(MockUserRepository)
	tokens := services.NewTokenService("test_jwt_secret", 0)
	authService := services.NewAuthService(mockRepo, tokens)

	var created *models.User
	mockRepo.On("Create", mock.AnythingOfType("*models.User")).
		Run(func(args mock.Arguments) {
			created = args.Get(0).(*models.User)
		}).
		Return(nil).Once()

	user := &models.User{Username: "newguest", Password: "password123"}
	err := authService.Register(user)
	require.NoError(t, err)
	require.NotNil(t, created)

	// Password is stored hashed and the role is forced to Guest.
	assert.Equal(t, models.RoleGuest, created.Role)
	assert.NotEqual(t, "password123", created.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(created.Password), []byte("password123")))
	mockRepo.AssertExpectations(t)

	// Duplicate usernames propagate the repository error.
	mockRepo.On("Create", mock.AnythingOfType("*models.User")).
		Return(fmt.Errorf("username newguest: %w", repositories.ErrDuplicate)).Once()
	err = authService.Register(&models.User{Username: "newguest", Password: "password123"})
	assert.ErrorIs(t, err, repositories.ErrDuplicate)
	mockRepo.AssertExpectations(t)
}
