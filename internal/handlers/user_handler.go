package handlers

import (
	"log"

	"wardrobe/internal/models"
	"wardrobe/internal/services"

	"github.com/gofiber/fiber/v2"
)

// UserHandler handles registration, login and the account's own
// profile endpoints. The profile endpoints identify the account by the
// verified token subject, never by a path parameter.
type UserHandler struct {
	authService *services.AuthService
	userService *services.UserService
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(authService *services.AuthService, userService *services.UserService) *UserHandler {
	return &UserHandler{authService: authService, userService: userService}
}

// RegisterPublicRoutes registers the routes reachable without a token.
func (h *UserHandler) RegisterPublicRoutes(router fiber.Router) {
	routes := router.Group("/user")
	routes.Post("/register", h.HandleRegister)
	routes.Post("/login", h.HandleLogin)
}

// RegisterProtectedRoutes registers the routes that require a verified
// token.
func (h *UserHandler) RegisterProtectedRoutes(router fiber.Router) {
	routes := router.Group("/user")
	routes.Get("/", h.HandleGetSelf)
	routes.Patch("/", h.HandleUpdateSelf)
	routes.Delete("/", h.HandleDeleteSelf)
}

// RegisterRequest represents the request body for registration.
type RegisterRequest struct {
	Username  string `json:"username"`
	Password  string `json:"password"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
}

// LoginRequest represents the request body for login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// UserResponse is the profile shape returned to clients; it never
// carries the password hash.
type UserResponse struct {
	Username  string      `json:"username"`
	FirstName string      `json:"firstName"`
	LastName  string      `json:"lastName"`
	Email     string      `json:"email"`
	Role      models.Role `json:"role"`
}

func toUserResponse(u *models.User) UserResponse {
	return UserResponse{
		Username:  u.Username,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Email:     u.Email,
		Role:      u.Role,
	}
}

// HandleRegister handles new account registration.
func (h *UserHandler) HandleRegister(c *fiber.Ctx) error {
	var req RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing register request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	user, err := h.authService.Register(services.RegisterInput{
		Username:  req.Username,
		Password:  req.Password,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
	})
	if err != nil {
		log.Printf("Error registering user: %v", err)
		return writeError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "User registered successfully",
		"id":      user.ID,
	})
}

// HandleLogin handles login and issues a signed token.
func (h *UserHandler) HandleLogin(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing login request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	token, err := h.authService.Login(req.Username, req.Password)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(fiber.Map{"token": token})
}

// HandleGetSelf returns the profile of the authenticated account.
func (h *UserHandler) HandleGetSelf(c *fiber.Ctx) error {
	username, _ := c.Locals("username").(string)
	user, err := h.userService.Get(username)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(toUserResponse(user))
}

// HandleUpdateSelf applies a partial update to the authenticated
// account.
func (h *UserHandler) HandleUpdateSelf(c *fiber.Ctx) error {
	username, _ := c.Locals("username").(string)

	var patch models.UserPatch
	if err := c.BodyParser(&patch); err != nil {
		log.Printf("Error parsing user patch body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	updated, err := h.userService.Update(username, patch)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(toUserResponse(updated))
}

// HandleDeleteSelf deletes the authenticated account.
func (h *UserHandler) HandleDeleteSelf(c *fiber.Ctx) error {
	username, _ := c.Locals("username").(string)
	if err := h.userService.Delete(username); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
