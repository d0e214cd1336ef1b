package repositories_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"shoeshop/internal/models"
	"shoeshop/internal/repositories"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Shoe{}))
	return db
}

func TestGORMShoeRepository_Update(t *testing.T) {
	repo := repositories.NewGORMShoeRepository(openTestDB(t))

	shoe := &models.Shoe{Name: "Air Max 270", Brand: "Nike", Price: 150, Size: 10.5, Description: "Legendary comfort."}
	require.NoError(t, repo.Create(shoe))

	// Zero values must be written too, not skipped.
	shoe.Price = 99.99
	shoe.Description = ""
	require.NoError(t, repo.Update(shoe))

	stored, err := repo.GetByID(shoe.ID)
	require.NoError(t, err)
	assert.Equal(t, 99.99, stored.Price)
	assert.Empty(t, stored.Description)
}

func TestGORMShoeRepository_UpdateAfterDelete(t *testing.T) {
	repo := repositories.NewGORMShoeRepository(openTestDB(t))

	shoe := &models.Shoe{Name: "Dunk Low", Brand: "Nike", Price: 120, Size: 9.5}
	require.NoError(t, repo.Create(shoe))
	require.NoError(t, repo.Delete(shoe.ID))

	// A record deleted under the writer surfaces as not-found and must not be
	// re-inserted by the update.
	shoe.Price = 130
	err := repo.Update(shoe)
	assert.ErrorIs(t, err, repositories.ErrNotFound)

	_, err = repo.GetByID(shoe.ID)
	assert.ErrorIs(t, err, repositories.ErrNotFound)

	count, err := repo.Count()
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)
}

func TestGORMUserRepository_UpdateAfterDelete(t *testing.T) {
	repo := repositories.NewGORMUserRepository(openTestDB(t))

	user := &models.User{Username: "clerk", Password: "hash", Role: models.RoleGuest}
	require.NoError(t, repo.Create(user))
	require.NoError(t, repo.Delete(user.ID))

	user.Role = models.RoleAdmin
	err := repo.Update(user)
	assert.ErrorIs(t, err, repositories.ErrNotFound)

	_, err = repo.GetByID(user.ID)
	assert.ErrorIs(t, err, repositories.ErrNotFound)

	count, err := repo.Count()
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)
}

func TestGORMUserRepository_DuplicateUsername(t *testing.T) {
	repo := repositories.NewGORMUserRepository(openTestDB(t))

	require.NoError(t, repo.Create(&models.User{Username: "admin", Password: "hash", Role: models.RoleAdmin}))

	err := repo.Create(&models.User{Username: "admin", Password: "other", Role: models.RoleGuest})
	assert.ErrorIs(t, err, repositories.ErrDuplicate)
}
