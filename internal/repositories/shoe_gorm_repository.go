package repositories

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"shoeshop/internal/models"
)

// GORMShoeRepository is a GORM implementation of ShoeRepository.
type GORMShoeRepository struct {
	db *gorm.DB
}

// NewGORMShoeRepository creates a new instance of GORMShoeRepository.
func NewGORMShoeRepository(db *gorm.DB) *GORMShoeRepository {
	return &GORMShoeRepository{
		db: db,
	}
}

// GetAll retrieves all shoes from the database.
func (r *GORMShoeRepository) GetAll() ([]models.Shoe, error) {
	var shoes []models.Shoe
	if err := r.db.Find(&shoes).Error; err != nil {
		return nil, fmt.Errorf("failed to get all shoes: %w", err)
	}
	return shoes, nil
}

// GetByID retrieves a single shoe by its ID from the database.
func (r *GORMShoeRepository) GetByID(id uint) (*models.Shoe, error) {
	var shoe models.Shoe
	if err := r.db.First(&shoe, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("shoe with ID %d: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get shoe by ID %d: %w", id, err)
	}
	return &shoe, nil
}

// Create creates a new shoe in the database. The assigned ID is written back
// into the passed struct.
func (r *GORMShoeRepository) Create(shoe *models.Shoe) error {
	if err := r.db.Create(shoe).Error; err != nil {
		return fmt.Errorf("failed to create shoe: %w", err)
	}
	return nil
}

// Update updates an existing shoe in the database. The write is a pure
// UPDATE: Save would fall back to inserting when the row is gone, silently
// resurrecting a concurrently deleted record. A write that touches zero rows
// means the record vanished under us; re-check existence and report
// ErrNotFound rather than surfacing the lost race.
func (r *GORMShoeRepository) Update(shoe *models.Shoe) error {
	// Select("*") keeps zero values in the update set.
	res := r.db.Model(&models.Shoe{}).Where("id = ?", shoe.ID).Select("*").Updates(shoe)
	if res.Error != nil {
		return fmt.Errorf("failed to update shoe: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		var count int64
		if err := r.db.Model(&models.Shoe{}).Where("id = ?", shoe.ID).Count(&count).Error; err != nil {
			return fmt.Errorf("failed to re-check shoe %d after empty update: %w", shoe.ID, err)
		}
		if count == 0 {
			return fmt.Errorf("shoe with ID %d: %w", shoe.ID, ErrNotFound)
		}
	}
	return nil
}

// Delete deletes a shoe by its ID from the database.
func (r *GORMShoeRepository) Delete(id uint) error {
	res := r.db.Delete(&models.Shoe{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete shoe: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("shoe with ID %d: %w", id, ErrNotFound)
	}
	return nil
}

// Count returns the number of shoes in the database.
func (r *GORMShoeRepository) Count() (int64, error) {
	var count int64
	if err := r.db.Model(&models.Shoe{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count shoes: %w", err)
	}
	return count, nil
}
