package repositories

import (
	"shoeshop/internal/models"
)

// ShoeRepository defines the interface for catalog data access.
type ShoeRepository interface {
	GetAll() ([]models.Shoe, error)
	GetByID(id uint) (*models.Shoe, error)
	Create(shoe *models.Shoe) error
	Update(shoe *models.Shoe) error
	Delete(id uint) error
	Count() (int64, error)
}
