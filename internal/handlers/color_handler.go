package handlers

import (
	"log"

	"wardrobe/internal/models"
	"wardrobe/internal/services"

	"github.com/gofiber/fiber/v2"
)

// ColorHandler handles HTTP requests for colors.
type ColorHandler struct {
	service *services.ColorService
}

// NewColorHandler creates a new ColorHandler.
func NewColorHandler(service *services.ColorService) *ColorHandler {
	return &ColorHandler{service: service}
}

// RegisterRoutes registers the color routes with the Fiber app.
func (h *ColorHandler) RegisterRoutes(router fiber.Router) {
	routes := router.Group("/colors")
	routes.Get("/", h.HandleGetColors)
	routes.Get("/:id", h.HandleGetColor)
	routes.Post("/", h.HandleCreateColor)
	routes.Patch("/:id", h.HandleUpdateColor)
	routes.Delete("/:id", h.HandleDeleteColor)
}

// HandleGetColors retrieves a page of colors. A name query filters to
// the single color of that name.
func (h *ColorHandler) HandleGetColors(c *fiber.Ctx) error {
	if name := c.Query("name"); name != "" {
		color, err := h.service.GetByName(name)
		if err != nil {
			return writeError(c, err)
		}
		return c.JSON([]models.Color{*color})
	}

	colors, err := h.service.GetAll(c.QueryInt("page", 0), c.QueryInt("size", 20))
	if err != nil {
		log.Printf("Error getting colors: %v", err)
		return writeError(c, err)
	}
	return c.JSON(colors)
}

// HandleGetColor retrieves a single color by its ID.
func (h *ColorHandler) HandleGetColor(c *fiber.Ctx) error {
	color, err := h.service.Get(c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(color)
}

// HandleCreateColor creates a new color.
func (h *ColorHandler) HandleCreateColor(c *fiber.Ctx) error {
	var color models.Color
	if err := c.BodyParser(&color); err != nil {
		log.Printf("Error parsing color request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	created, err := h.service.Create(&color)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}

// HandleUpdateColor applies a partial update to an existing color.
func (h *ColorHandler) HandleUpdateColor(c *fiber.Ctx) error {
	var patch models.ColorPatch
	if err := c.BodyParser(&patch); err != nil {
		log.Printf("Error parsing color patch body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	updated, err := h.service.Update(c.Params("id"), patch)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(updated)
}

// HandleDeleteColor deletes a color by its ID.
func (h *ColorHandler) HandleDeleteColor(c *fiber.Ctx) error {
	if err := h.service.Delete(c.Params("id")); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
