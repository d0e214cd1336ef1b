package handlers

import (
	"errors"
	"fmt"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"shoeshop/internal/models"
	"shoeshop/internal/repositories"
	"shoeshop/internal/services"
)

// UserHandler handles admin-side user management requests.
type UserHandler struct {
	service  *services.UserService
	validate *validator.Validate
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(service *services.UserService) *UserHandler {
	return &UserHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the user management routes. Every route is
// admin-only.
func (h *UserHandler) RegisterRoutes(router fiber.Router, adminOnly ...fiber.Handler) {
	userRoutes := router.Group("/users")
	userRoutes.Get("/", chain(adminOnly, h.HandleGetUsers)...)
	userRoutes.Post("/", chain(adminOnly, h.HandleCreateUser)...)
	userRoutes.Put("/:id/role", chain(adminOnly, h.HandleUpdateRole)...)
	userRoutes.Delete("/:id", chain(adminOnly, h.HandleDeleteUser)...)
}

// HandleGetUsers lists all user accounts.
func (h *UserHandler) HandleGetUsers(c *fiber.Ctx) error {
	users, err := h.service.GetAllUsers()
	if err != nil {
		log.Printf("Error getting all users: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve users",
		})
	}
	return c.JSON(users)
}

// CreateUserRequest represents the request body for creating a user.
type CreateUserRequest struct {
	Username string      `json:"username" validate:"required,min=3,max=100"`
	Password string      `json:"password" validate:"required,min=6"`
	Role     models.Role `json:"role" validate:"required"`
}

// HandleCreateUser creates a user with an explicit role.
func (h *UserHandler) HandleCreateUser(c *fiber.Ctx) error {
	var req CreateUserRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing create user request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if err := h.validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Validation failed",
			"errors":  validationErrorMessages(err),
		})
	}

	user := models.User{
		Username: req.Username,
		Password: req.Password,
		Role:     req.Role,
	}
	if err := h.service.CreateUser(&user); err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidRole):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": fmt.Sprintf("Unknown role %q", req.Role),
			})
		case errors.Is(err, repositories.ErrDuplicate):
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{
				"message": "Username already taken",
			})
		}
		log.Printf("Error creating user: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not create user",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(user)
}

// UpdateRoleRequest represents the request body for a role change.
type UpdateRoleRequest struct {
	Role models.Role `json:"role" validate:"required"`
}

// HandleUpdateRole changes a user's role.
func (h *UserHandler) HandleUpdateRole(c *fiber.Ctx) error {
	id := c.Params("id")

	var req UpdateRoleRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing update role request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if err := h.service.UpdateRole(id, req.Role); err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidRole):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": fmt.Sprintf("Unknown role %q", req.Role),
			})
		case errors.Is(err, repositories.ErrNotFound):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": fmt.Sprintf("User with ID %s not found", id),
			})
		case errors.Is(err, services.ErrLastAdmin):
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{
				"message": "Cannot demote the last admin account",
			})
		}
		log.Printf("Error updating role for user %s: %v", id, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not update user role",
		})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// HandleDeleteUser removes a user account.
func (h *UserHandler) HandleDeleteUser(c *fiber.Ctx) error {
	id := c.Params("id")

	if err := h.service.DeleteUser(id); err != nil {
		switch {
		case errors.Is(err, repositories.ErrNotFound):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": fmt.Sprintf("User with ID %s not found", id),
			})
		case errors.Is(err, services.ErrLastAdmin):
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{
				"message": "Cannot delete the last admin account",
			})
		}
		log.Printf("Error deleting user %s: %v", id, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not delete user",
		})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
