package handlers

import (
	"log"

	"hospital/internal/models"
	"hospital/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// PatientHandler handles HTTP requests for patients and their symptom
// associations.
type PatientHandler struct {
	service  *services.PatientService
	validate *validator.Validate
}

// NewPatientHandler creates a new PatientHandler.
func NewPatientHandler(service *services.PatientService) *PatientHandler {
	return &PatientHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the patient routes with the Fiber app.
func (h *PatientHandler) RegisterRoutes(router fiber.Router, authGate fiber.Handler) {
	patients := router.Group("/patients")
	patients.Get("/", h.HandleGetPatients)
	patients.Get("/:id", h.HandleGetPatientByID)
	patients.Post("/", authGate, h.HandleCreatePatient)
	patients.Put("/:id", authGate, h.HandleUpdatePatient)
	patients.Delete("/:id", authGate, h.HandleDeletePatient)

	patients.Get("/:id/symptoms", h.HandleGetPatientSymptoms)
	patients.Post("/:id/symptoms", authGate, h.HandleAddPatientSymptom)
	patients.Delete("/:id/symptoms/:symptomID", authGate, h.HandleRemovePatientSymptom)
}

// HandleGetPatients retrieves all patients.
func (h *PatientHandler) HandleGetPatients(c *fiber.Ctx) error {
	patients, err := h.service.GetAllPatients()
	if err != nil {
		log.Printf("Error getting all patients: %v", err)
		return respondError(c, err, "Could not retrieve patients")
	}
	return c.JSON(patients)
}

// HandleGetPatientByID retrieves a single patient by its ID.
func (h *PatientHandler) HandleGetPatientByID(c *fiber.Ctx) error {
	id := c.Params("id")
	patient, err := h.service.GetPatientByID(id)
	if err != nil {
		log.Printf("Error getting patient by ID %s: %v", id, err)
		return respondError(c, err, "Patient not found")
	}
	return c.JSON(patient)
}

// HandleCreatePatient creates a new patient. The doctor reference must
// resolve; nothing is persisted otherwise.
func (h *PatientHandler) HandleCreatePatient(c *fiber.Ctx) error {
	var patient models.Patient
	if err := c.BodyParser(&patient); err != nil {
		log.Printf("Error parsing patient create body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if err := h.validate.Struct(patient); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Validation failed",
			"error":   err.Error(),
		})
	}

	if err := h.service.CreatePatient(&patient); err != nil {
		log.Printf("Error creating patient: %v", err)
		return respondError(c, err, "Could not create patient")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Patient added successfully",
		"patient": patient,
	})
}

// UpdatePatientRequest represents the partial-update body for a patient.
type UpdatePatientRequest struct {
	Name     *string `json:"name" validate:"omitempty,min=1,max=150"`
	Age      *int    `json:"age" validate:"omitempty,gt=0"`
	DoctorID *string `json:"doctor_id" validate:"omitempty,min=1"`
}

// HandleUpdatePatient applies a partial update to a patient.
func (h *PatientHandler) HandleUpdatePatient(c *fiber.Ctx) error {
	id := c.Params("id")
	var req UpdatePatientRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing patient update body: %v", err)
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

	if _, err := h.service.UpdatePatient(id, req.Name, req.Age, req.DoctorID); err != nil {
		log.Printf("Error updating patient %s: %v", id, err)
		return respondError(c, err, "Could not update patient")
	}

	return c.JSON(fiber.Map{
		"message": "Patient updated successfully",
	})
}

// HandleDeletePatient deletes a patient by its ID.
func (h *PatientHandler) HandleDeletePatient(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := h.service.DeletePatient(id); err != nil {
		log.Printf("Error deleting patient %s: %v", id, err)
		return respondError(c, err, "Could not delete patient")
	}
	return c.JSON(fiber.Map{
		"message": "Patient deleted successfully",
	})
}

// AddSymptomRequest represents the body for associating a symptom with a
// patient. Re-posting an existing pair updates the diagnosis.
type AddSymptomRequest struct {
	SymptomID string `json:"symptom_id" validate:"required"`
	Diagnosis string `json:"diagnosis" validate:"omitempty,max=100"`
}

// HandleAddPatientSymptom records a symptom for a patient with a diagnosis.
func (h *PatientHandler) HandleAddPatientSymptom(c *fiber.Ctx) error {
	id := c.Params("id")
	var req AddSymptomRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing symptom association body: %v", err)
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

	if err := h.service.AddSymptom(id, req.SymptomID, req.Diagnosis); err != nil {
		log.Printf("Error adding symptom %s to patient %s: %v", req.SymptomID, id, err)
		return respondError(c, err, "Could not record symptom")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Symptom recorded successfully",
	})
}

// HandleGetPatientSymptoms lists a patient's symptoms with diagnoses.
func (h *PatientHandler) HandleGetPatientSymptoms(c *fiber.Ctx) error {
	id := c.Params("id")
	symptoms, err := h.service.GetSymptoms(id)
	if err != nil {
		log.Printf("Error getting symptoms for patient %s: %v", id, err)
		return respondError(c, err, "Could not retrieve symptoms")
	}
	return c.JSON(symptoms)
}

// HandleRemovePatientSymptom removes a symptom association from a patient.
func (h *PatientHandler) HandleRemovePatientSymptom(c *fiber.Ctx) error {
	id := c.Params("id")
	symptomID := c.Params("symptomID")
	if err := h.service.RemoveSymptom(id, symptomID); err != nil {
		log.Printf("Error removing symptom %s from patient %s: %v", symptomID, id, err)
		return respondError(c, err, "Could not remove symptom")
	}
	return c.JSON(fiber.Map{
		"message": "Symptom removed successfully",
	})
}
