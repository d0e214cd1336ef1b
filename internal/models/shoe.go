package models

// Shoe represents a catalog product.
type Shoe struct {
	ID          uint    `json:"id" gorm:"primaryKey"`
	Name        string  `json:"name" validate:"required,min=2,max=100"`
	Brand       string  `json:"brand" validate:"required,max=100"`
	Price       float64 `json:"price" validate:"required,gt=0"`
	Size        float64 `json:"size" validate:"required,gt=0"`
	Description string  `json:"description" validate:"omitempty,max=500"`
	ImageURL    string  `json:"imageUrl" validate:"omitempty,url"`
}
