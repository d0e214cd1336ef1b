package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"shoeshop/internal/models"
	"shoeshop/internal/repositories"
	"shoeshop/internal/services"
)

func seedUser(t *testing.T, repo repositories.UserRepository, username string, role models.Role) *models.User {
	t.Helper()
	user := &models.User{Username: username, Password: "irrelevant-hash", Role: role}
	require.NoError(t, repo.Create(user))
	return user
}

func TestUserService_CreateUser(t *testing.T) {
	repo := repositories.NewMockUserRepository()
	service := services.NewUserService(repo)

	user := &models.User{Username: "clerk", Password: "password123", Role: models.RoleAdmin}
	require.NoError(t, service.CreateUser(user))

	stored, err := repo.GetByUsername("clerk")
	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, stored.Role)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.Password), []byte("password123")))

	// Unknown roles are rejected.
	err = service.CreateUser(&models.User{Username: "other", Password: "password123", Role: "Superuser"})
	assert.ErrorIs(t, err, services.ErrInvalidRole)
}

func TestUserService_DeleteLastAdminRefused(t *testing.T) {
	repo := repositories.NewMockUserRepository()
	service := services.NewUserService(repo)

	admin := seedUser(t, repo, "admin", models.RoleAdmin)
	guest := seedUser(t, repo, "guest", models.RoleGuest)

	// Removing the only admin would lock everyone out.
	err := service.DeleteUser(admin.ID)
	assert.ErrorIs(t, err, services.ErrLastAdmin)

	// Guests can always be removed.
	assert.NoError(t, service.DeleteUser(guest.ID))

	// With a second admin present the first becomes deletable.
	seedUser(t, repo, "admin2", models.RoleAdmin)
	assert.NoError(t, service.DeleteUser(admin.ID))
}

func TestUserService_DemoteLastAdminRefused(t *testing.T) {
	repo := repositories.NewMockUserRepository()
	service := services.NewUserService(repo)

	admin := seedUser(t, repo, "admin", models.RoleAdmin)

	err := service.UpdateRole(admin.ID, models.RoleGuest)
	assert.ErrorIs(t, err, services.ErrLastAdmin)

	// A no-op role change on the last admin is fine.
	assert.NoError(t, service.UpdateRole(admin.ID, models.RoleAdmin))

	// With another admin the demotion goes through.
	seedUser(t, repo, "admin2", models.RoleAdmin)
	require.NoError(t, service.UpdateRole(admin.ID, models.RoleGuest))

	updated, err := repo.GetByID(admin.ID)
	require.NoError(t, err)
	assert.Equal(t, models.RoleGuest, updated.Role)
}

func TestUserService_UpdateRoleValidation(t *testing.T) {
	repo := repositories.NewMockUserRepository()
	service := services.NewUserService(repo)

	guest := seedUser(t, repo, "guest", models.RoleGuest)

	err := service.UpdateRole(guest.ID, "Superuser")
	assert.ErrorIs(t, err, services.ErrInvalidRole)

	err = service.UpdateRole("no-such-id", models.RoleAdmin)
	assert.ErrorIs(t, err, repositories.ErrNotFound)
}
