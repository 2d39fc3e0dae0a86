package handlers

import (
	"log"

	"hospital/internal/models"
	"hospital/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// SymptomHandler handles HTTP requests for symptoms.
type SymptomHandler struct {
	service  *services.SymptomService
	validate *validator.Validate
}

// NewSymptomHandler creates a new SymptomHandler.
func NewSymptomHandler(service *services.SymptomService) *SymptomHandler {
	return &SymptomHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the symptom routes with the Fiber app.
func (h *SymptomHandler) RegisterRoutes(router fiber.Router, authGate fiber.Handler) {
	symptoms := router.Group("/symptoms")
	symptoms.Get("/", h.HandleGetSymptoms)
	symptoms.Get("/:id", h.HandleGetSymptomByID)
	symptoms.Post("/", authGate, h.HandleCreateSymptom)
	symptoms.Put("/:id", authGate, h.HandleUpdateSymptom)
	symptoms.Delete("/:id", authGate, h.HandleDeleteSymptom)
}

// HandleGetSymptoms retrieves all symptoms.
func (h *SymptomHandler) HandleGetSymptoms(c *fiber.Ctx) error {
	symptoms, err := h.service.GetAllSymptoms()
	if err != nil {
		log.Printf("Error getting all symptoms: %v", err)
		return respondError(c, err, "Could not retrieve symptoms")
	}
	return c.JSON(symptoms)
}

// HandleGetSymptomByID retrieves a single symptom by its ID.
func (h *SymptomHandler) HandleGetSymptomByID(c *fiber.Ctx) error {
	id := c.Params("id")
	symptom, err := h.service.GetSymptomByID(id)
	if err != nil {
		log.Printf("Error getting symptom by ID %s: %v", id, err)
		return respondError(c, err, "Symptom not found")
	}
	return c.JSON(symptom)
}

// HandleCreateSymptom creates a new symptom.
func (h *SymptomHandler) HandleCreateSymptom(c *fiber.Ctx) error {
	var symptom models.Symptom
	if err := c.BodyParser(&symptom); err != nil {
		log.Printf("Error parsing symptom create body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if err := h.validate.Struct(symptom); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Validation failed",
			"error":   err.Error(),
		})
	}

	if err := h.service.CreateSymptom(&symptom); err != nil {
		log.Printf("Error creating symptom: %v", err)
		return respondError(c, err, "Could not create symptom")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Symptom added successfully",
		"symptom": symptom,
	})
}

// UpdateSymptomRequest represents the partial-update body for a symptom.
type UpdateSymptomRequest struct {
	Name        *string `json:"name" validate:"omitempty,min=1,max=150"`
	Description *string `json:"description"`
}

// HandleUpdateSymptom applies a partial update to a symptom.
func (h *SymptomHandler) HandleUpdateSymptom(c *fiber.Ctx) error {
	id := c.Params("id")
	var req UpdateSymptomRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing symptom update body: %v", err)
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

	if _, err := h.service.UpdateSymptom(id, req.Name, req.Description); err != nil {
		log.Printf("Error updating symptom %s: %v", id, err)
		return respondError(c, err, "Could not update symptom")
	}

	return c.JSON(fiber.Map{
		"message": "Symptom updated successfully",
	})
}

// HandleDeleteSymptom deletes a symptom by its ID, along with any patient
// associations referencing it.
func (h *SymptomHandler) HandleDeleteSymptom(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := h.service.DeleteSymptom(id); err != nil {
		log.Printf("Error deleting symptom %s: %v", id, err)
		return respondError(c, err, "Could not delete symptom")
	}
	return c.JSON(fiber.Map{
		"message": "Symptom deleted successfully",
	})
}
