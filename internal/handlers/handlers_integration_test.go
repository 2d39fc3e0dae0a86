package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"hospital/internal/database"
	"hospital/internal/handlers"
	"hospital/internal/middleware"
	"hospital/internal/models"
	"hospital/internal/repositories"
	"hospital/internal/services"

	"github.com/gofiber/fiber/v2"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
)

// setupApp builds a Fiber app for testing against a fresh in-memory SQLite
// database. Each test gets its own database, named after the test.
func setupApp(t *testing.T) *fiber.App {
	t.Helper()

	viper.SetDefault("JWT_SECRET", "test_jwt_secret")
	viper.AutomaticEnv()
	jwtSecret := viper.GetString("JWT_SECRET")

	db, err := database.Open(database.Config{
		Driver: "sqlite",
		DSN:    fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name()),
	})
	if err != nil {
		t.Fatalf("failed to open in-memory database: %v", err)
	}

	userRepo := repositories.NewGORMUserRepository(db)
	doctorRepo := repositories.NewGORMDoctorRepository(db)
	patientRepo := repositories.NewGORMPatientRepository(db)
	symptomRepo := repositories.NewGORMSymptomRepository(db)
	appointmentRepo := repositories.NewGORMAppointmentRepository(db)

	authService := services.NewAuthService(userRepo, jwtSecret)
	userService := services.NewUserService(userRepo)
	doctorService := services.NewDoctorService(doctorRepo)
	patientService := services.NewPatientService(patientRepo, doctorRepo, symptomRepo)
	symptomService := services.NewSymptomService(symptomRepo)
	appointmentService := services.NewAppointmentService(appointmentRepo, patientRepo, doctorRepo, nil) // nil publisher: no broker in tests

	app := fiber.New()
	authGate := middleware.AuthRequired(authService)

	handlers.NewAuthHandler(authService).RegisterRoutes(app, authGate)
	handlers.NewUserHandler(userService).RegisterRoutes(app, authGate)
	handlers.NewDoctorHandler(doctorService).RegisterRoutes(app, authGate)
	handlers.NewPatientHandler(patientService).RegisterRoutes(app, authGate)
	handlers.NewSymptomHandler(symptomService).RegisterRoutes(app, authGate)
	handlers.NewAppointmentHandler(appointmentService).RegisterRoutes(app, authGate)

	return app
}

// TestMain suppresses logging during tests for cleaner output.
func TestMain(m *testing.M) {
	log.SetOutput(io.Discard)
	os.Exit(m.Run())
}

// doJSON performs a JSON request against the app, optionally authenticated.
func doJSON(t *testing.T, app *fiber.App, method, path string, body interface{}, token string) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		assert.NoError(t, err)
		reader = bytes.NewReader(jsonBody)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req, -1) // -1 for no timeout
	assert.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response, out interface{}) {
	t.Helper()
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	resp.Body.Close()
}

// signupAndLogin registers a user and returns a session token.
func signupAndLogin(t *testing.T, app *fiber.App, username, password string) string {
	t.Helper()

	creds := map[string]string{"username": username, "password": password}
	resp := doJSON(t, app, http.MethodPost, "/signup", creds, "")
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, app, http.MethodPost, "/login", creds, "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var loginResp map[string]string
	decodeBody(t, resp, &loginResp)
	assert.NotEmpty(t, loginResp["token"])
	return loginResp["token"]
}

func TestSessionLifecycle(t *testing.T) {
	app := setupApp(t)

	// Signup
	creds := map[string]string{"username": "alice", "password": "password123"}
	resp := doJSON(t, app, http.MethodPost, "/signup", creds, "")
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	var signupResp map[string]interface{}
	decodeBody(t, resp, &signupResp)
	assert.Equal(t, "User created successfully", signupResp["message"])

	// Duplicate signup leaves the original record untouched
	resp = doJSON(t, app, http.MethodPost, "/signup", creds, "")
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	resp.Body.Close()

	// Usernames shorter than 3 characters are rejected
	resp = doJSON(t, app, http.MethodPost, "/signup", map[string]string{"username": "ab", "password": "x"}, "")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()

	// Wrong password
	resp = doJSON(t, app, http.MethodPost, "/login", map[string]string{"username": "alice", "password": "wrong"}, "")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	resp.Body.Close()

	// Protected probe requires a session
	resp = doJSON(t, app, http.MethodGet, "/protected", nil, "")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	resp.Body.Close()

	// Login and use the session
	resp = doJSON(t, app, http.MethodPost, "/login", creds, "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var loginResp map[string]string
	decodeBody(t, resp, &loginResp)
	token := loginResp["token"]
	assert.NotEmpty(t, token)

	resp = doJSON(t, app, http.MethodGet, "/protected", nil, token)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	// Listing users never exposes the password digest
	resp = doJSON(t, app, http.MethodGet, "/users", nil, "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var rawUsers []map[string]interface{}
	decodeBody(t, resp, &rawUsers)
	assert.Len(t, rawUsers, 1)
	assert.NotContains(t, rawUsers[0], "password")
	assert.NotContains(t, rawUsers[0], "Password")

	// Logout revokes the session
	resp = doJSON(t, app, http.MethodGet, "/logout", nil, token)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, app, http.MethodGet, "/protected", nil, token)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	resp.Body.Close()

	// Logging out an already-revoked session fails
	resp = doJSON(t, app, http.MethodGet, "/logout", nil, token)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	resp.Body.Close()
}

func TestDoctorRoundTrip(t *testing.T) {
	app := setupApp(t)
	token := signupAndLogin(t, app, "doctoradmin", "password123")

	// Mutations require a session
	resp := doJSON(t, app, http.MethodPost, "/doctors", map[string]string{"name": "Dr. X", "specialty": "ENT"}, "")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	resp.Body.Close()

	// Create
	resp = doJSON(t, app, http.MethodPost, "/doctors", map[string]string{"name": "Dr. X", "specialty": "ENT"}, token)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	var createResp struct {
		Message string        `json:"message"`
		Doctor  models.Doctor `json:"doctor"`
	}
	decodeBody(t, resp, &createResp)
	assert.NotEmpty(t, createResp.Doctor.ID)

	// The created doctor appears in the listing with identical fields
	resp = doJSON(t, app, http.MethodGet, "/doctors", nil, "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var doctors []models.Doctor
	decodeBody(t, resp, &doctors)
	assert.Len(t, doctors, 1)
	assert.Equal(t, "Dr. X", doctors[0].Name)
	assert.Equal(t, "ENT", doctors[0].Specialty)

	// Partial update: only specialty changes
	resp = doJSON(t, app, http.MethodPut, "/doctors/"+createResp.Doctor.ID, map[string]string{"specialty": "Dermatology"}, token)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, app, http.MethodGet, "/doctors/"+createResp.Doctor.ID, nil, "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var fetched models.Doctor
	decodeBody(t, resp, &fetched)
	assert.Equal(t, "Dr. X", fetched.Name)
	assert.Equal(t, "Dermatology", fetched.Specialty)

	// Missing required fields are rejected
	resp = doJSON(t, app, http.MethodPost, "/doctors", map[string]string{"name": "Dr. Nameless"}, token)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()

	// Delete, then the id no longer resolves
	resp = doJSON(t, app, http.MethodDelete, "/doctors/"+createResp.Doctor.ID, nil, token)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, app, http.MethodGet, "/doctors/"+createResp.Doctor.ID, nil, "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, app, http.MethodDelete, "/doctors/"+createResp.Doctor.ID, nil, token)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()
}

func TestPatientRequiresResolvableDoctor(t *testing.T) {
	app := setupApp(t)
	token := signupAndLogin(t, app, "patientadmin", "password123")

	// Creating a patient with a doctor reference that does not resolve
	// fails and persists nothing.
	resp := doJSON(t, app, http.MethodPost, "/patients", map[string]interface{}{
		"name":      "Alice Johnson",
		"age":       30,
		"doctor_id": "no-such-doctor",
	}, token)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, app, http.MethodGet, "/patients", nil, "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var patients []models.Patient
	decodeBody(t, resp, &patients)
	assert.Empty(t, patients)

	// Missing doctor_id entirely is a validation failure
	resp = doJSON(t, app, http.MethodPost, "/patients", map[string]interface{}{
		"name": "Alice Johnson",
		"age":  30,
	}, token)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()
}

func TestDoctorDeleteRestrictedWhileReferenced(t *testing.T) {
	app := setupApp(t)
	token := signupAndLogin(t, app, "restrictadmin", "password123")

	resp := doJSON(t, app, http.MethodPost, "/doctors", map[string]string{"name": "Dr. Busy", "specialty": "Cardiology"}, token)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	var doctorResp struct {
		Doctor models.Doctor `json:"doctor"`
	}
	decodeBody(t, resp, &doctorResp)

	resp = doJSON(t, app, http.MethodPost, "/patients", map[string]interface{}{
		"name":      "Alice Johnson",
		"age":       30,
		"doctor_id": doctorResp.Doctor.ID,
	}, token)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	var patientResp struct {
		Patient models.Patient `json:"patient"`
	}
	decodeBody(t, resp, &patientResp)

	// The doctor cannot be deleted while a patient references it
	resp = doJSON(t, app, http.MethodDelete, "/doctors/"+doctorResp.Doctor.ID, nil, token)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	resp.Body.Close()

	// After the patient is gone the delete goes through
	resp = doJSON(t, app, http.MethodDelete, "/patients/"+patientResp.Patient.ID, nil, token)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, app, http.MethodDelete, "/doctors/"+doctorResp.Doctor.ID, nil, token)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()
}

func TestPatientSymptomAssociation(t *testing.T) {
	app := setupApp(t)
	token := signupAndLogin(t, app, "symptomadmin", "password123")

	resp := doJSON(t, app, http.MethodPost, "/doctors", map[string]string{"name": "Dr. John Doe", "specialty": "Cardiology"}, token)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	var doctorResp struct {
		Doctor models.Doctor `json:"doctor"`
	}
	decodeBody(t, resp, &doctorResp)

	resp = doJSON(t, app, http.MethodPost, "/patients", map[string]interface{}{
		"name":      "Alice Johnson",
		"age":       30,
		"doctor_id": doctorResp.Doctor.ID,
	}, token)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	var patientResp struct {
		Patient models.Patient `json:"patient"`
	}
	decodeBody(t, resp, &patientResp)
	patientID := patientResp.Patient.ID

	resp = doJSON(t, app, http.MethodPost, "/symptoms", map[string]string{"name": "Headache", "description": "Pain in head"}, token)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	var symptomResp struct {
		Symptom models.Symptom `json:"symptom"`
	}
	decodeBody(t, resp, &symptomResp)
	symptomID := symptomResp.Symptom.ID

	// Associate with a diagnosis
	resp = doJSON(t, app, http.MethodPost, "/patients/"+patientID+"/symptoms", map[string]string{
		"symptom_id": symptomID,
		"diagnosis":  "Tension headache",
	}, token)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, app, http.MethodGet, "/patients/"+patientID+"/symptoms", nil, "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var details []models.PatientSymptomDetail
	decodeBody(t, resp, &details)
	assert.Len(t, details, 1)
	assert.Equal(t, "Headache", details[0].Symptom.Name)
	assert.Equal(t, "Tension headache", details[0].Diagnosis)

	// Re-associating the same pair updates the diagnosis in place
	resp = doJSON(t, app, http.MethodPost, "/patients/"+patientID+"/symptoms", map[string]string{
		"symptom_id": symptomID,
		"diagnosis":  "Migraine",
	}, token)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, app, http.MethodGet, "/patients/"+patientID+"/symptoms", nil, "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	decodeBody(t, resp, &details)
	assert.Len(t, details, 1)
	assert.Equal(t, "Migraine", details[0].Diagnosis)

	// Associating an unknown symptom fails
	resp = doJSON(t, app, http.MethodPost, "/patients/"+patientID+"/symptoms", map[string]string{
		"symptom_id": "no-such-symptom",
		"diagnosis":  "n/a",
	}, token)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()

	// Deleting the symptom removes it from the patient's list
	resp = doJSON(t, app, http.MethodDelete, "/symptoms/"+symptomID, nil, token)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, app, http.MethodGet, "/patients/"+patientID+"/symptoms", nil, "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	decodeBody(t, resp, &details)
	assert.Empty(t, details)
}

func TestAppointmentFlow(t *testing.T) {
	app := setupApp(t)
	token := signupAndLogin(t, app, "appointmentadmin", "password123")

	resp := doJSON(t, app, http.MethodPost, "/doctors", map[string]string{"name": "Dr. John Doe", "specialty": "Cardiology"}, token)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	var doctorResp struct {
		Doctor models.Doctor `json:"doctor"`
	}
	decodeBody(t, resp, &doctorResp)

	resp = doJSON(t, app, http.MethodPost, "/patients", map[string]interface{}{
		"name":      "Alice Johnson",
		"age":       30,
		"doctor_id": doctorResp.Doctor.ID,
	}, token)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	var patientResp struct {
		Patient models.Patient `json:"patient"`
	}
	decodeBody(t, resp, &patientResp)

	// Booking against a missing patient fails before anything persists
	resp = doJSON(t, app, http.MethodPost, "/appointments", map[string]string{
		"patient_id": "no-such-patient",
		"doctor_id":  doctorResp.Doctor.ID,
		"date":       "2026-09-01",
		"time":       "10:30",
		"reason":     "Checkup",
	}, token)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()

	// Book
	resp = doJSON(t, app, http.MethodPost, "/appointments", map[string]string{
		"patient_id": patientResp.Patient.ID,
		"doctor_id":  doctorResp.Doctor.ID,
		"date":       "2026-09-01",
		"time":       "10:30",
		"reason":     "Chest pain follow-up",
	}, token)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	var bookResp struct {
		Appointment models.Appointment `json:"appointment"`
	}
	decodeBody(t, resp, &bookResp)
	assert.NotEmpty(t, bookResp.Appointment.ID)

	// The patient cannot be deleted while the appointment references it
	resp = doJSON(t, app, http.MethodDelete, "/patients/"+patientResp.Patient.ID, nil, token)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	resp.Body.Close()

	// Partial update: only the time changes
	resp = doJSON(t, app, http.MethodPut, "/appointments/"+bookResp.Appointment.ID, map[string]string{"time": "14:00"}, token)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, app, http.MethodGet, "/appointments/"+bookResp.Appointment.ID, nil, "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var fetched models.Appointment
	decodeBody(t, resp, &fetched)
	assert.Equal(t, "14:00", fetched.Time)
	assert.Equal(t, "2026-09-01", fetched.Date)
	assert.Equal(t, "Chest pain follow-up", fetched.Reason)

	// Cancel
	resp = doJSON(t, app, http.MethodDelete, "/appointments/"+bookResp.Appointment.ID, nil, token)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, app, http.MethodGet, "/appointments", nil, "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var appointments []models.Appointment
	decodeBody(t, resp, &appointments)
	assert.Empty(t, appointments)
}

func TestUserUpdateEnforcesUsernameLength(t *testing.T) {
	app := setupApp(t)
	token := signupAndLogin(t, app, "useradmin", "password123")

	resp := doJSON(t, app, http.MethodGet, "/users", nil, "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var users []models.User
	decodeBody(t, resp, &users)
	assert.Len(t, users, 1)

	// The minimum-length rule applies on update too, not only at signup
	resp = doJSON(t, app, http.MethodPut, "/users/"+users[0].ID, map[string]string{"username": "ab"}, token)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, app, http.MethodPut, "/users/"+users[0].ID, map[string]string{"username": "useradmin2"}, token)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, app, http.MethodGet, "/users/"+users[0].ID, nil, "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var fetched models.User
	decodeBody(t, resp, &fetched)
	assert.Equal(t, "useradmin2", fetched.Username)
}
