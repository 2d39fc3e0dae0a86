package handlers

import (
	"log"

	"hospital/internal/models"
	"hospital/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// DoctorHandler handles HTTP requests for doctors.
type DoctorHandler struct {
	service  *services.DoctorService
	validate *validator.Validate
}

// NewDoctorHandler creates a new DoctorHandler.
func NewDoctorHandler(service *services.DoctorService) *DoctorHandler {
	return &DoctorHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the doctor routes with the Fiber app.
func (h *DoctorHandler) RegisterRoutes(router fiber.Router, authGate fiber.Handler) {
	doctors := router.Group("/doctors")
	doctors.Get("/", h.HandleGetDoctors)
	doctors.Get("/:id", h.HandleGetDoctorByID)
	doctors.Post("/", authGate, h.HandleCreateDoctor)
	doctors.Put("/:id", authGate, h.HandleUpdateDoctor)
	doctors.Delete("/:id", authGate, h.HandleDeleteDoctor)
}

// HandleGetDoctors retrieves all doctors.
func (h *DoctorHandler) HandleGetDoctors(c *fiber.Ctx) error {
	doctors, err := h.service.GetAllDoctors()
	if err != nil {
		log.Printf("Error getting all doctors: %v", err)
		return respondError(c, err, "Could not retrieve doctors")
	}
	return c.JSON(doctors)
}

// HandleGetDoctorByID retrieves a single doctor by its ID.
func (h *DoctorHandler) HandleGetDoctorByID(c *fiber.Ctx) error {
	id := c.Params("id")
	doctor, err := h.service.GetDoctorByID(id)
	if err != nil {
		log.Printf("Error getting doctor by ID %s: %v", id, err)
		return respondError(c, err, "Doctor not found")
	}
	return c.JSON(doctor)
}

// HandleCreateDoctor creates a new doctor.
func (h *DoctorHandler) HandleCreateDoctor(c *fiber.Ctx) error {
	var doctor models.Doctor
	if err := c.BodyParser(&doctor); err != nil {
		log.Printf("Error parsing doctor create body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if err := h.validate.Struct(doctor); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Validation failed",
			"error":   err.Error(),
		})
	}

	if err := h.service.CreateDoctor(&doctor); err != nil {
		log.Printf("Error creating doctor: %v", err)
		return respondError(c, err, "Could not create doctor")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Doctor added successfully",
		"doctor":  doctor,
	})
}

// UpdateDoctorRequest represents the partial-update body for a doctor.
type UpdateDoctorRequest struct {
	Name      *string `json:"name" validate:"omitempty,min=1,max=150"`
	Specialty *string `json:"specialty" validate:"omitempty,min=1,max=150"`
}

// HandleUpdateDoctor applies a partial update to a doctor.
func (h *DoctorHandler) HandleUpdateDoctor(c *fiber.Ctx) error {
	id := c.Params("id")
	var req UpdateDoctorRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing doctor update body: %v", err)
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

	if _, err := h.service.UpdateDoctor(id, req.Name, req.Specialty); err != nil {
		log.Printf("Error updating doctor %s: %v", id, err)
		return respondError(c, err, "Could not update doctor")
	}

	return c.JSON(fiber.Map{
		"message": "Doctor updated successfully",
	})
}

// HandleDeleteDoctor deletes a doctor by its ID. Doctors still referenced by
// patients or appointments cannot be deleted.
func (h *DoctorHandler) HandleDeleteDoctor(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := h.service.DeleteDoctor(id); err != nil {
		log.Printf("Error deleting doctor %s: %v", id, err)
		return respondError(c, err, "Could not delete doctor")
	}
	return c.JSON(fiber.Map{
		"message": "Doctor deleted successfully",
	})
}
