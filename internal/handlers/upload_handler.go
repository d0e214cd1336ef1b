package handlers

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"shoeshop/pkg/storage"
)

// UploadHandler handles image uploads for the catalog.
type UploadHandler struct {
	store *storage.LocalStore
}

// NewUploadHandler creates a new UploadHandler.
func NewUploadHandler(store *storage.LocalStore) *UploadHandler {
	return &UploadHandler{
		store: store,
	}
}

// RegisterRoutes registers the upload routes. Uploading is admin-only.
func (h *UploadHandler) RegisterRoutes(router fiber.Router, adminOnly ...fiber.Handler) {
	uploadRoutes := router.Group("/upload")
	uploadRoutes.Post("/image", chain(adminOnly, h.HandleUploadImage)...)
}

// HandleUploadImage stores an uploaded file under a generated unique name,
// preserving its original extension, and returns its public URL.
func (h *UploadHandler) HandleUploadImage(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil || fileHeader.Size == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "No file uploaded",
		})
	}

	file, err := fileHeader.Open()
	if err != nil {
		log.Printf("Error opening uploaded file %s: %v", fileHeader.Filename, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not read uploaded file",
		})
	}
	defer file.Close()

	name, err := h.store.Save(file, fileHeader.Filename)
	if err != nil {
		log.Printf("Error storing uploaded file %s: %v", fileHeader.Filename, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not store uploaded file",
		})
	}

	return c.JSON(fiber.Map{
		"imageUrl": c.BaseURL() + "/uploads/" + name,
	})
}
