package database

import (
	"fmt"
	"log"

	"golang.org/x/crypto/bcrypt"

	"shoeshop/internal/models"
	"shoeshop/internal/repositories"
)

// Bootstrap admin credentials inserted into an empty store on first boot.
const (
	seedAdminUsername = "admin"
	seedAdminPassword = "admin123"
)

// Seed populates an empty store with the bootstrap admin account and the
// sample catalog. A store that already holds users or shoes is left alone, so
// running it on every boot is safe.
func Seed(userRepo repositories.UserRepository, shoeRepo repositories.ShoeRepository) error {
	if err := seedUsers(userRepo); err != nil {
		return err
	}
	return seedShoes(shoeRepo)
}

func seedUsers(repo repositories.UserRepository) error {
	count, err := repo.Count()
	if err != nil {
		return fmt.Errorf("failed to check user table: %w", err)
	}
	if count > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(seedAdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash bootstrap password: %w", err)
	}
	admin := models.User{
		Username: seedAdminUsername,
		Password: string(hash),
		Role:     models.RoleAdmin,
	}
	if err := repo.Create(&admin); err != nil {
		return fmt.Errorf("failed to seed bootstrap admin: %w", err)
	}
	log.Printf("Seeded bootstrap admin user %q", seedAdminUsername)
	return nil
}

func seedShoes(repo repositories.ShoeRepository) error {
	count, err := repo.Count()
	if err != nil {
		return fmt.Errorf("failed to check shoe table: %w", err)
	}
	if count > 0 {
		return nil
	}

	for i := range sampleShoes {
		shoe := sampleShoes[i]
		if err := repo.Create(&shoe); err != nil {
			return fmt.Errorf("failed to seed shoe %q: %w", shoe.Name, err)
		}
	}
	log.Printf("Seeded %d sample shoes", len(sampleShoes))
	return nil
}

// sampleShoes is the fixed development catalog.
var sampleShoes = []models.Shoe{
	{Name: "Air Max 270", Brand: "Nike", Price: 150.00, Size: 10.5, Description: "Legendary comfort.", ImageURL: "https://images.unsplash.com/photo-1542291026-7eec264c27ff"},
	{Name: "Ultra Boost", Brand: "Adidas", Price: 180.00, Size: 9.5, Description: "Energy return.", ImageURL: "https://images.unsplash.com/photo-1587563871167-1ee9c731aefb"},
	{Name: "Classic Leather", Brand: "Reebok", Price: 80.00, Size: 11.0, Description: "Timeless style.", ImageURL: "https://images.unsplash.com/photo-1539185441755-769473a23570"},
	{Name: "Chuck Taylor", Brand: "Converse", Price: 60.00, Size: 10.0, Description: "All star icon.", ImageURL: "https://images.unsplash.com/photo-1491553895911-0055eca6402d"},
	{Name: "Old Skool", Brand: "Vans", Price: 65.00, Size: 9.0, Description: "Skate classic.", ImageURL: "https://images.unsplash.com/photo-1525966222134-fcfa99b8ae77"},
	{Name: "990v5", Brand: "New Balance", Price: 175.00, Size: 10.5, Description: "Dad shoe king.", ImageURL: "https://images.unsplash.com/photo-1551107696-a4b0c5a0d9a2"},
	{Name: "Forum Low", Brand: "Adidas", Price: 100.00, Size: 12.0, Description: "Retro hoop vibes.", ImageURL: "https://images.unsplash.com/photo-1595950653106-6c9ebd614d3a"},
	{Name: "Blazer Mid", Brand: "Nike", Price: 110.00, Size: 10.0, Description: "Vintage hoops.", ImageURL: "https://images.unsplash.com/photo-1560769629-975ec94e6a86"},
	{Name: "Clyde All-Pro", Brand: "Puma", Price: 130.00, Size: 11.5, Description: "Pro performance.", ImageURL: "https://images.unsplash.com/photo-1608231387042-66d1773070a5"},
	{Name: "Gel-Lyte III", Brand: "ASICS", Price: 120.00, Size: 10.0, Description: "Split tongue.", ImageURL: "https://images.unsplash.com/photo-1605348532760-6753d2c43329"},
	{Name: "Superstar", Brand: "Adidas", Price: 90.00, Size: 10.5, Description: "Shell toe.", ImageURL: "https://images.unsplash.com/photo-1512374382149-4332c6c02151"},
	{Name: "Dunk Low", Brand: "Nike", Price: 120.00, Size: 9.5, Description: "Hype beast favorite.", ImageURL: "https://images.unsplash.com/photo-1597044768535-09894e527aa4"},
	{Name: "Sk8-Hi", Brand: "Vans", Price: 75.00, Size: 11.0, Description: "High top skate.", ImageURL: "https://images.unsplash.com/photo-1560769629-975ec94e6a86"},
	{Name: "Gazelle", Brand: "Adidas", Price: 100.00, Size: 10.0, Description: "Suede classic.", ImageURL: "https://images.unsplash.com/photo-1542291026-7eec264c27ff"},
	{Name: "React Vision", Brand: "Nike", Price: 140.00, Size: 10.5, Description: "Surreal comfort.", ImageURL: "https://images.unsplash.com/photo-1587563871167-1ee9c731aefb"},
}
