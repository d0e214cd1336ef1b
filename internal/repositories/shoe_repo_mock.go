package repositories

import (
	"fmt"
	"sync"

	"shoeshop/internal/models"
)

// MockShoeRepository is an in-memory implementation of ShoeRepository.
type MockShoeRepository struct {
	shoes  map[uint]models.Shoe
	nextID uint
	mu     sync.RWMutex
}

// NewMockShoeRepository creates a new instance of MockShoeRepository.
func NewMockShoeRepository() *MockShoeRepository {
	return &MockShoeRepository{
		shoes:  make(map[uint]models.Shoe),
		nextID: 1,
	}
}

// GetAll returns all shoes.
func (r *MockShoeRepository) GetAll() ([]models.Shoe, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	shoeList := make([]models.Shoe, 0, len(r.shoes))
	for _, s := range r.shoes {
		shoeList = append(shoeList, s)
	}
	return shoeList, nil
}

// GetByID returns a shoe by its ID.
func (r *MockShoeRepository) GetByID(id uint) (*models.Shoe, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	shoe, ok := r.shoes[id]
	if !ok {
		return nil, fmt.Errorf("shoe with ID %d: %w", id, ErrNotFound)
	}
	return &shoe, nil
}

// Create adds a new shoe, assigning the next free ID when none is set.
func (r *MockShoeRepository) Create(shoe *models.Shoe) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if shoe.ID == 0 {
		shoe.ID = r.nextID
	}
	if shoe.ID >= r.nextID {
		r.nextID = shoe.ID + 1
	}
	r.shoes[shoe.ID] = *shoe
	return nil
}

// Update modifies an existing shoe.
func (r *MockShoeRepository) Update(shoe *models.Shoe) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, ok := r.shoes[shoe.ID]
	if !ok {
		return fmt.Errorf("shoe with ID %d: %w", shoe.ID, ErrNotFound)
	}
	r.shoes[shoe.ID] = *shoe
	return nil
}

// Delete removes a shoe by its ID.
func (r *MockShoeRepository) Delete(id uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, ok := r.shoes[id]
	if !ok {
		return fmt.Errorf("shoe with ID %d: %w", id, ErrNotFound)
	}
	delete(r.shoes, id)
	return nil
}

// Count returns the number of stored shoes.
func (r *MockShoeRepository) Count() (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return int64(len(r.shoes)), nil
}
