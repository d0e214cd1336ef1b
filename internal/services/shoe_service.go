package services

import (
	"log"

	"shoeshop/internal/models"
	"shoeshop/internal/repositories"
	"shoeshop/pkg/events"
)

// CatalogEventPublisher publishes catalog change events. Implementations must
// be safe for concurrent use.
type CatalogEventPublisher interface {
	PublishCatalogEvent(event events.CatalogEvent) error
}

// ShoeService handles business logic for the shoe catalog.
type ShoeService struct {
	repo      repositories.ShoeRepository
	publisher CatalogEventPublisher // nil disables event publishing
}

// NewShoeService creates a new ShoeService. publisher may be nil.
func NewShoeService(repo repositories.ShoeRepository, publisher CatalogEventPublisher) *ShoeService {
	return &ShoeService{
		repo:      repo,
		publisher: publisher,
	}
}

// GetAllShoes retrieves the full catalog.
func (s *ShoeService) GetAllShoes() ([]models.Shoe, error) {
	return s.repo.GetAll()
}

// GetShoeByID retrieves a single shoe by its ID.
func (s *ShoeService) GetShoeByID(id uint) (*models.Shoe, error) {
	return s.repo.GetByID(id)
}

// CreateShoe stores a new shoe. The assigned ID is written back into the
// passed struct.
func (s *ShoeService) CreateShoe(shoe *models.Shoe) error {
	if err := s.repo.Create(shoe); err != nil {
		return err
	}
	s.publish(events.ActionCreated, shoe)
	return nil
}

// UpdateShoe replaces the stored record whose ID matches pathID. The body ID
// must equal the path ID; a mismatch fails without touching the store. A
// record deleted concurrently surfaces as not-found.
func (s *ShoeService) UpdateShoe(pathID uint, shoe *models.Shoe) error {
	if shoe.ID != pathID {
		return ErrIDMismatch
	}
	if err := s.repo.Update(shoe); err != nil {
		return err
	}
	s.publish(events.ActionUpdated, shoe)
	return nil
}

// DeleteShoe removes a shoe by its ID.
func (s *ShoeService) DeleteShoe(id uint) error {
	if err := s.repo.Delete(id); err != nil {
		return err
	}
	s.publish(events.ActionDeleted, &models.Shoe{ID: id})
	return nil
}

// publish sends a catalog event when a publisher is configured. Publish
// failures are logged and never surfaced to the caller; the write has
// already committed.
func (s *ShoeService) publish(action string, shoe *models.Shoe) {
	if s.publisher == nil {
		return
	}
	event := events.CatalogEvent{
		Action: action,
		ShoeID: shoe.ID,
		Name:   shoe.Name,
	}
	if err := s.publisher.PublishCatalogEvent(event); err != nil {
		log.Printf("Failed to publish catalog event %s for shoe %d: %v", action, shoe.ID, err)
	}
}
