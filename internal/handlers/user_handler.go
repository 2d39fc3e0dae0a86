package handlers

import (
	"log"

	"hospital/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// UserHandler handles HTTP requests for user accounts. Account creation goes
// through /signup; this handler covers listing, partial updates and deletes.
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

// RegisterRoutes registers the user routes with the Fiber app.
func (h *UserHandler) RegisterRoutes(router fiber.Router, authGate fiber.Handler) {
	users := router.Group("/users")
	users.Get("/", h.HandleGetUsers)
	users.Get("/:id", h.HandleGetUserByID)
	users.Put("/:id", authGate, h.HandleUpdateUser)
	users.Delete("/:id", authGate, h.HandleDeleteUser)
}

// HandleGetUsers retrieves all users. Password digests are never serialized.
func (h *UserHandler) HandleGetUsers(c *fiber.Ctx) error {
	users, err := h.service.GetAllUsers()
	if err != nil {
		log.Printf("Error getting all users: %v", err)
		return respondError(c, err, "Could not retrieve users")
	}
	return c.JSON(users)
}

// HandleGetUserByID retrieves a single user by their ID.
func (h *UserHandler) HandleGetUserByID(c *fiber.Ctx) error {
	id := c.Params("id")
	user, err := h.service.GetUserByID(id)
	if err != nil {
		log.Printf("Error getting user by ID %s: %v", id, err)
		return respondError(c, err, "User not found")
	}
	return c.JSON(user)
}

// UpdateUserRequest represents the partial-update body for a user. Absent
// fields are left unchanged.
type UpdateUserRequest struct {
	Username *string `json:"username" validate:"omitempty,min=3"`
	Password *string `json:"password" validate:"omitempty,min=1"`
}

// HandleUpdateUser applies a partial update to a user.
func (h *UserHandler) HandleUpdateUser(c *fiber.Ctx) error {
	id := c.Params("id")
	var req UpdateUserRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing user update body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if err := h.validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Validation failed",
			"error":   err.Error(),
		})
	}

	if _, err := h.service.UpdateUser(id, req.Username, req.Password); err != nil {
		log.Printf("Error updating user %s: %v", id, err)
		return respondError(c, err, "Could not update user")
	}

	return c.JSON(fiber.Map{
		"message": "User updated successfully",
	})
}

// HandleDeleteUser deletes a user by their ID.
func (h *UserHandler) HandleDeleteUser(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := h.service.DeleteUser(id); err != nil {
		log.Printf("Error deleting user %s: %v", id, err)
		return respondError(c, err, "Could not delete user")
	}
	return c.JSON(fiber.Map{
		"message": "User deleted successfully",
	})
}
