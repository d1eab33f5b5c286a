package handlers

import (
	"log"

	"wardrobe/internal/models"
	"wardrobe/internal/services"

	"github.com/gofiber/fiber/v2"
)

// ClothesHandler handles HTTP requests for clothes items.
type ClothesHandler struct {
	service *services.ClothesService
}

// NewClothesHandler creates a new ClothesHandler.
func NewClothesHandler(service *services.ClothesService) *ClothesHandler {
	return &ClothesHandler{service: service}
}

// RegisterRoutes registers the clothes routes with the Fiber app.
func (h *ClothesHandler) RegisterRoutes(router fiber.Router) {
	routes := router.Group("/clothes")
	routes.Get("/", h.HandleGetClothes)
	routes.Get("/:id", h.HandleGetClothesByID)
	routes.Post("/", h.HandleCreateClothes)
	routes.Patch("/:id", h.HandleUpdateClothes)
	routes.Delete("/:id", h.HandleDeleteClothes)
}

// CreateClothesRequest represents the request body for creating a
// clothes item.
type CreateClothesRequest struct {
	ColorID string `json:"colorId"`
	TypeID  string `json:"typeId"`
}

// HandleGetClothes retrieves a page of clothes. Color/type name
// queries filter the listing.
func (h *ClothesHandler) HandleGetClothes(c *fiber.Ctx) error {
	if colorName := c.Query("color"); colorName != "" {
		items, err := h.service.GetByColorName(colorName)
		if err != nil {
			return writeError(c, err)
		}
		return c.JSON(items)
	}
	if typeName := c.Query("type"); typeName != "" {
		items, err := h.service.GetByTypeName(typeName)
		if err != nil {
			return writeError(c, err)
		}
		return c.JSON(items)
	}

	items, err := h.service.GetAll(c.QueryInt("page", 0), c.QueryInt("size", 20))
	if err != nil {
		log.Printf("Error getting clothes: %v", err)
		return writeError(c, err)
	}
	return c.JSON(items)
}

// HandleGetClothesByID retrieves a single clothes item by its ID.
func (h *ClothesHandler) HandleGetClothesByID(c *fiber.Ctx) error {
	item, err := h.service.Get(c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(item)
}

// HandleCreateClothes creates a new clothes item from a color and a
// type reference.
func (h *ClothesHandler) HandleCreateClothes(c *fiber.Ctx) error {
	var req CreateClothesRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing clothes request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	created, err := h.service.Create(req.ColorID, req.TypeID)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}

// HandleUpdateClothes applies a partial update to an existing clothes
// item. An omitted reference keeps its current value.
func (h *ClothesHandler) HandleUpdateClothes(c *fiber.Ctx) error {
	var patch models.ClothesPatch
	if err := c.BodyParser(&patch); err != nil {
		log.Printf("Error parsing clothes patch body: %v", err)
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

// HandleDeleteClothes deletes a clothes item by its ID.
func (h *ClothesHandler) HandleDeleteClothes(c *fiber.Ctx) error {
	if err := h.service.Delete(c.Params("id")); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
