package handlers

import (
	"log"

	"hospital/internal/models"
	"hospital/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// AppointmentHandler handles HTTP requests for appointments.
type AppointmentHandler struct {
	service  *services.AppointmentService
	validate *validator.Validate
}

// NewAppointmentHandler creates a new AppointmentHandler.
func NewAppointmentHandler(service *services.AppointmentService) *AppointmentHandler {
	return &AppointmentHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the appointment routes with the Fiber app.
func (h *AppointmentHandler) RegisterRoutes(router fiber.Router, authGate fiber.Handler) {
	appointments := router.Group("/appointments")
	appointments.Get("/", h.HandleGetAppointments)
	appointments.Get("/:id", h.HandleGetAppointmentByID)
	appointments.Post("/", authGate, h.HandleCreateAppointment)
	appointments.Put("/:id", authGate, h.HandleUpdateAppointment)
	appointments.Delete("/:id", authGate, h.HandleDeleteAppointment)
}

// HandleGetAppointments retrieves all appointments.
func (h *AppointmentHandler) HandleGetAppointments(c *fiber.Ctx) error {
	appointments, err := h.service.GetAllAppointments()
	if err != nil {
		log.Printf("Error getting all appointments: %v", err)
		return respondError(c, err, "Could not retrieve appointments")
	}
	return c.JSON(appointments)
}

// HandleGetAppointmentByID retrieves a single appointment by its ID.
func (h *AppointmentHandler) HandleGetAppointmentByID(c *fiber.Ctx) error {
	id := c.Params("id")
	appointment, err := h.service.GetAppointmentByID(id)
	if err != nil {
		log.Printf("Error getting appointment by ID %s: %v", id, err)
		return respondError(c, err, "Appointment not found")
	}
	return c.JSON(appointment)
}

// HandleCreateAppointment books a new appointment. Both the patient and the
// doctor reference must resolve.
func (h *AppointmentHandler) HandleCreateAppointment(c *fiber.Ctx) error {
	var appointment models.Appointment
	if err := c.BodyParser(&appointment); err != nil {
		log.Printf("Error parsing appointment create body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if err := h.validate.Struct(appointment); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Validation failed",
			"error":   err.Error(),
		})
	}

	if err := h.service.CreateAppointment(&appointment); err != nil {
		log.Printf("Error creating appointment: %v", err)
		return respondError(c, err, "Could not book appointment")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message":     "Appointment booked successfully",
		"appointment": appointment,
	})
}

// UpdateAppointmentRequest represents the partial-update body for an
// appointment.
type UpdateAppointmentRequest struct {
	PatientID *string `json:"patient_id" validate:"omitempty,min=1"`
	DoctorID  *string `json:"doctor_id" validate:"omitempty,min=1"`
	Date      *string `json:"date" validate:"omitempty,min=1"`
	Time      *string `json:"time" validate:"omitempty,min=1"`
	Reason    *string `json:"reason" validate:"omitempty,min=1,max=200"`
}

// HandleUpdateAppointment applies a partial update to an appointment.
func (h *AppointmentHandler) HandleUpdateAppointment(c *fiber.Ctx) error {
	id := c.Params("id")
	var req UpdateAppointmentRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing appointment update body: %v", err)
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

	if _, err := h.service.UpdateAppointment(id, req.PatientID, req.DoctorID, req.Date, req.Time, req.Reason); err != nil {
		log.Printf("Error updating appointment %s: %v", id, err)
		return respondError(c, err, "Could not update appointment")
	}

	return c.JSON(fiber.Map{
		"message": "Appointment updated successfully",
	})
}

// HandleDeleteAppointment deletes an appointment by its ID.
func (h *AppointmentHandler) HandleDeleteAppointment(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := h.service.DeleteAppointment(id); err != nil {
		log.Printf("Error deleting appointment %s: %v", id, err)
		return respondError(c, err, "Could not delete appointment")
	}
	return c.JSON(fiber.Map{
		"message": "Appointment deleted successfully",
	})
}
