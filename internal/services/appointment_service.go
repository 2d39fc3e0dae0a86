package services

import (
	"encoding/json"
	"fmt"
	"log"

	"hospital/internal/models"
	"hospital/internal/repositories"
)

// EventPublisher publishes domain events to a message broker. Implemented by
// pkg/rabbitmq.Client; a nil publisher disables event publication.
type EventPublisher interface {
	Publish(exchange, routingKey string, body []byte) error
}

// AppointmentService handles business logic related to appointments.
type AppointmentService struct {
	appointmentRepo repositories.AppointmentRepository
	patientRepo     repositories.PatientRepository
	doctorRepo      repositories.DoctorRepository
	publisher       EventPublisher
}

// NewAppointmentService creates a new AppointmentService.
func NewAppointmentService(appointmentRepo repositories.AppointmentRepository, patientRepo repositories.PatientRepository, doctorRepo repositories.DoctorRepository, publisher EventPublisher) *AppointmentService {
	return &AppointmentService{
		appointmentRepo: appointmentRepo,
		patientRepo:     patientRepo,
		doctorRepo:      doctorRepo,
		publisher:       publisher,
	}
}

// GetAllAppointments retrieves all appointments.
func (s *AppointmentService) GetAllAppointments() ([]models.Appointment, error) {
	return s.appointmentRepo.GetAll()
}

// GetAppointmentByID retrieves a single appointment by its ID.
func (s *AppointmentService) GetAppointmentByID(id string) (*models.Appointment, error) {
	return s.appointmentRepo.GetByID(id)
}

// CreateAppointment books a new appointment. Both the patient and the doctor
// reference must resolve before anything is persisted. On success an
// appointment.booked event is published best-effort.
func (s *AppointmentService) CreateAppointment(appointment *models.Appointment) error {
	if _, err := s.patientRepo.GetByID(appointment.PatientID); err != nil {
		return fmt.Errorf("patient reference %s does not resolve: %w", appointment.PatientID, err)
	}
	if _, err := s.doctorRepo.GetByID(appointment.DoctorID); err != nil {
		return fmt.Errorf("doctor reference %s does not resolve: %w", appointment.DoctorID, err)
	}

	if err := s.appointmentRepo.Create(appointment); err != nil {
		return err
	}

	s.publishBooked(appointment)
	return nil
}

// publishBooked emits an appointment.booked event. Failures are logged, not
// surfaced: a broker outage must not fail the booking.
func (s *AppointmentService) publishBooked(appointment *models.Appointment) {
	if s.publisher == nil {
		log.Println("Event publisher is not initialized. Skipping message publication.")
		return
	}

	event := map[string]interface{}{
		"appointmentID": appointment.ID,
		"patientID":     appointment.PatientID,
		"doctorID":      appointment.DoctorID,
		"date":          appointment.Date,
		"time":          appointment.Time,
	}
	body, err := json.Marshal(event)
	if err != nil {
		log.Printf("Failed to marshal appointment event to JSON: %v", err)
		return
	}
	if err := s.publisher.Publish("appointment", "appointment.booked", body); err != nil {
		log.Printf("Warning: Failed to publish booked event for appointment %s: %v", appointment.ID, err)
	}
}

// UpdateAppointment applies a partial update: only the fields present in the
// payload change. Changed patient or doctor references are re-checked.
func (s *AppointmentService) UpdateAppointment(id string, patientID, doctorID, date, timeOfDay, reason *string) (*models.Appointment, error) {
	appointment, err := s.appointmentRepo.GetByID(id)
	if err != nil {
		return nil, err
	}

	if patientID != nil && *patientID != appointment.PatientID {
		if _, err := s.patientRepo.GetByID(*patientID); err != nil {
			return nil, fmt.Errorf("patient reference %s does not resolve: %w", *patientID, err)
		}
		appointment.PatientID = *patientID
	}
	if doctorID != nil && *doctorID != appointment.DoctorID {
		if _, err := s.doctorRepo.GetByID(*doctorID); err != nil {
			return nil, fmt.Errorf("doctor reference %s does not resolve: %w", *doctorID, err)
		}
		appointment.DoctorID = *doctorID
	}
	if date != nil {
		appointment.Date = *date
	}
	if timeOfDay != nil {
		appointment.Time = *timeOfDay
	}
	if reason != nil {
		appointment.Reason = *reason
	}

	if err := s.appointmentRepo.Update(appointment); err != nil {
		return nil, err
	}
	return appointment, nil
}

// DeleteAppointment deletes an appointment by its ID.
func (s *AppointmentService) DeleteAppointment(id string) error {
	return s.appointmentRepo.Delete(id)
}
