package handlers

import (
	"errors"
	"fmt"
	"log"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"shoeshop/internal/models"
	"shoeshop/internal/repositories"
	"shoeshop/internal/services"
)

// ShoeHandler handles HTTP requests for the shoe catalog.
type ShoeHandler struct {
	service  *services.ShoeService
	validate *validator.Validate
}

// NewShoeHandler creates a new ShoeHandler.
func NewShoeHandler(service *services.ShoeService) *ShoeHandler {
	return &ShoeHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the catalog routes. Reads are public; the adminOnly
// chain guards every mutation.
func (h *ShoeHandler) RegisterRoutes(router fiber.Router, adminOnly ...fiber.Handler) {
	shoeRoutes := router.Group("/shoes")
	shoeRoutes.Get("/", h.HandleGetShoes)
	shoeRoutes.Get("/:id", h.HandleGetShoeByID)
	shoeRoutes.Post("/", chain(adminOnly, h.HandleCreateShoe)...)
	shoeRoutes.Put("/:id", chain(adminOnly, h.HandleUpdateShoe)...)
	shoeRoutes.Delete("/:id", chain(adminOnly, h.HandleDeleteShoe)...)
}

// chain appends the final handler to a copy of the middleware chain.
func chain(mw []fiber.Handler, final fiber.Handler) []fiber.Handler {
	handlers := make([]fiber.Handler, 0, len(mw)+1)
	handlers = append(handlers, mw...)
	return append(handlers, final)
}

// HandleGetShoes retrieves the full catalog.
func (h *ShoeHandler) HandleGetShoes(c *fiber.Ctx) error {
	shoes, err := h.service.GetAllShoes()
	if err != nil {
		log.Printf("Error getting all shoes: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve shoes",
		})
	}
	return c.JSON(shoes)
}

// HandleGetShoeByID retrieves a single shoe by its ID.
func (h *ShoeHandler) HandleGetShoeByID(c *fiber.Ctx) error {
	id, err := parseShoeID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid shoe ID",
		})
	}

	shoe, err := h.service.GetShoeByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": fmt.Sprintf("Shoe with ID %d not found", id),
			})
		}
		log.Printf("Error getting shoe by ID %d: %v", id, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve shoe",
		})
	}
	return c.JSON(shoe)
}

// HandleCreateShoe creates a new shoe and returns the stored record.
func (h *ShoeHandler) HandleCreateShoe(c *fiber.Ctx) error {
	var shoe models.Shoe
	if err := c.BodyParser(&shoe); err != nil {
		log.Printf("Error parsing create shoe request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	shoe.ID = 0 // identity is always server-assigned

	if err := h.validate.Struct(shoe); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Validation failed",
			"errors":  validationErrorMessages(err),
		})
	}

	if err := h.service.CreateShoe(&shoe); err != nil {
		log.Printf("Error creating shoe: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not create shoe",
		})
	}

	c.Set("Location", fmt.Sprintf("/shoes/%d", shoe.ID))
	return c.Status(fiber.StatusCreated).JSON(shoe)
}

// HandleUpdateShoe replaces an existing shoe. The body ID must match the path
// ID; a mismatch is rejected before the store is touched.
func (h *ShoeHandler) HandleUpdateShoe(c *fiber.Ctx) error {
	id, err := parseShoeID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid shoe ID",
		})
	}

	var shoe models.Shoe
	if err := c.BodyParser(&shoe); err != nil {
		log.Printf("Error parsing update shoe request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if err := h.validate.Struct(shoe); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Validation failed",
			"errors":  validationErrorMessages(err),
		})
	}

	if err := h.service.UpdateShoe(id, &shoe); err != nil {
		switch {
		case errors.Is(err, services.ErrIDMismatch):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "Path and body IDs do not match",
			})
		case errors.Is(err, repositories.ErrNotFound):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": fmt.Sprintf("Shoe with ID %d not found", id),
			})
		}
		log.Printf("Error updating shoe %d: %v", id, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not update shoe",
		})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// HandleDeleteShoe removes a shoe by its ID.
func (h *ShoeHandler) HandleDeleteShoe(c *fiber.Ctx) error {
	id, err := parseShoeID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid shoe ID",
		})
	}

	if err := h.service.DeleteShoe(id); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": fmt.Sprintf("Shoe with ID %d not found", id),
			})
		}
		log.Printf("Error deleting shoe %d: %v", id, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not delete shoe",
		})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func parseShoeID(c *fiber.Ctx) (uint, error) {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}
