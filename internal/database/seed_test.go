package database_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"shoeshop/internal/config"
	"shoeshop/internal/database"
	"shoeshop/internal/models"
	"shoeshop/internal/repositories"
)

func TestSeedFirstBoot(t *testing.T) {
	userRepo := repositories.NewMockUserRepository()
	shoeRepo := repositories.NewMockShoeRepository()

	require.NoError(t, database.Seed(userRepo, shoeRepo))

	users, err := userRepo.GetAll()
	require.NoError(t, err)
	require.Len(t, users, 1)
	admin := users[0]
	assert.Equal(t, "admin", admin.Username)
	assert.Equal(t, models.RoleAdmin, admin.Role)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte("admin123")))

	shoes, err := shoeRepo.GetAll()
	require.NoError(t, err)
	assert.Len(t, shoes, 15)
}

func TestSeedIsIdempotent(t *testing.T) {
	userRepo := repositories.NewMockUserRepository()
	shoeRepo := repositories.NewMockShoeRepository()

	require.NoError(t, database.Seed(userRepo, shoeRepo))
	require.NoError(t, database.Seed(userRepo, shoeRepo))

	userCount, err := userRepo.Count()
	require.NoError(t, err)
	assert.Equal(t, int64(1), userCount)

	shoeCount, err := shoeRepo.Count()
	require.NoError(t, err)
	assert.Equal(t, int64(15), shoeCount)
}

func TestSeedSkipsNonEmptyStore(t *testing.T) {
	userRepo := repositories.NewMockUserRepository()
	shoeRepo := repositories.NewMockShoeRepository()

	existing := models.User{Username: "operator", Password: "hash", Role: models.RoleAdmin}
	require.NoError(t, userRepo.Create(&existing))
	require.NoError(t, shoeRepo.Create(&models.Shoe{Name: "Custom", Brand: "Local", Price: 10, Size: 9}))

	require.NoError(t, database.Seed(userRepo, shoeRepo))

	users, err := userRepo.GetAll()
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, "operator", users[0].Username)

	shoeCount, err := shoeRepo.Count()
	require.NoError(t, err)
	assert.Equal(t, int64(1), shoeCount)
}

func TestOpenSelectsDriver(t *testing.T) {
	db, err := database.Open(&config.Config{
		DBDriver:    "sqlite",
		DatabaseDSN: "file:opentest?mode=memory&cache=shared",
	})
	require.NoError(t, err)
	assert.True(t, db.Migrator().HasTable(&models.User{}))
	assert.True(t, db.Migrator().HasTable(&models.Shoe{}))

	_, err = database.Open(&config.Config{DBDriver: "oracle"})
	assert.Error(t, err)
}
