package handlers

import (
	"log"

	"wardrobe/internal/models"
	"wardrobe/internal/services"

	"github.com/gofiber/fiber/v2"
)

// ClothesTypeHandler handles HTTP requests for clothes types.
type ClothesTypeHandler struct {
	service *services.ClothesTypeService
}

// NewClothesTypeHandler creates a new ClothesTypeHandler.
func NewClothesTypeHandler(service *services.ClothesTypeService) *ClothesTypeHandler {
	return &ClothesTypeHandler{service: service}
}

// RegisterRoutes registers the clothes-type routes with the Fiber app.
func (h *ClothesTypeHandler) RegisterRoutes(router fiber.Router) {
	routes := router.Group("/types")
	routes.Get("/", h.HandleGetClothesTypes)
	routes.Get("/:id", h.HandleGetClothesType)
	routes.Post("/", h.HandleCreateClothesType)
	routes.Patch("/:id", h.HandleUpdateClothesType)
	routes.Delete("/:id", h.HandleDeleteClothesType)
}

// HandleGetClothesTypes retrieves a page of clothes types. A name
// query filters to the single type of that name.
func (h *ClothesTypeHandler) HandleGetClothesTypes(c *fiber.Ctx) error {
	if name := c.Query("name"); name != "" {
		ct, err := h.service.GetByName(name)
		if err != nil {
			return writeError(c, err)
		}
		return c.JSON([]models.ClothesType{*ct})
	}

	types, err := h.service.GetAll(c.QueryInt("page", 0), c.QueryInt("size", 20))
	if err != nil {
		log.Printf("Error getting clothes types: %v", err)
		return writeError(c, err)
	}
	return c.JSON(types)
}

// HandleGetClothesType retrieves a single clothes type by its ID.
func (h *ClothesTypeHandler) HandleGetClothesType(c *fiber.Ctx) error {
	ct, err := h.service.Get(c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(ct)
}

// HandleCreateClothesType creates a new clothes type.
func (h *ClothesTypeHandler) HandleCreateClothesType(c *fiber.Ctx) error {
	var ct models.ClothesType
	if err := c.BodyParser(&ct); err != nil {
		log.Printf("Error parsing clothes type request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	created, err := h.service.Create(&ct)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}

// HandleUpdateClothesType applies a partial update to an existing
// clothes type.
func (h *ClothesTypeHandler) HandleUpdateClothesType(c *fiber.Ctx) error {
	var patch models.ClothesTypePatch
	if err := c.BodyParser(&patch); err != nil {
		log.Printf("Error parsing clothes type patch body: %v", err)
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

// HandleDeleteClothesType deletes a clothes type by its ID.
func (h *ClothesTypeHandler) HandleDeleteClothesType(c *fiber.Ctx) error {
	if err := h.service.Delete(c.Params("id")); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
