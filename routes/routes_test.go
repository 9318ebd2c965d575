package routes_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"CareSync/cache"
	"CareSync/config"
	"CareSync/database"
	"CareSync/routes"
	"CareSync/utils"
)

// These tests exercise the full router against real Postgres and Redis
// instances. They skip when the environment is not configured.
func setup(t *testing.T) http.Handler {
	t.Helper()
	_ = godotenv.Load("../.env")

	dbURL := os.Getenv("DB_URL")
	redisURL := os.Getenv("REDIS_URL")
	secret := os.Getenv("TOKEN_SECRET")
	if dbURL == "" || redisURL == "" || secret == "" {
		t.Skip("DB_URL, REDIS_URL or TOKEN_SECRET not set")
	}

	tokenMaker, err := utils.NewTokenMaker(secret)
	if err != nil {
		t.Fatalf("token maker: %v", err)
	}
	db, err := database.InitDB(context.Background(), dbURL, utils.HashPassword)
	if err != nil {
		t.Fatalf("db: %v", err)
	}
	if err := database.InitializeRedis(); err != nil {
		t.Fatalf("redis: %v", err)
	}
	c, err := cache.NewCache()
	if err != nil {
		t.Fatalf("cache: %v", err)
	}

	cfg := &config.AppConfig{DBURL: dbURL, RedisAddress: redisURL, TokenSecret: secret}
	return routes.SetupRoutes(c, cfg, db, tokenMaker)
}

func do(t *testing.T, h http.Handler, method, path, token string, body interface{}) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	parsed := map[string]interface{}{}
	if rec.Body.Len() > 0 {
		_ = json.Unmarshal(rec.Body.Bytes(), &parsed)
	}
	return rec, parsed
}

func registerPatient(t *testing.T, h http.Handler) (email, token, userID string) {
	t.Helper()
	email = fmt.Sprintf("test-%s@test.com", uuid.New().String()[:8])

	rec, _ := do(t, h, "POST", "/auth/register", "", map[string]interface{}{
		"email": email, "password": "testpass123", "consent_given": true,
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("register: expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	rec, body := do(t, h, "POST", "/auth/login", "", map[string]string{
		"email": email, "password": "testpass123",
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("login: expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	token, _ = body["token"].(string)
	if token == "" {
		t.Fatal("login: empty token")
	}
	if body["role"] != "patient" {
		t.Fatalf("login: expected patient role, got %v", body["role"])
	}

	rec, profile := do(t, h, "GET", "/auth/profile", token, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("profile: expected 200, got %d", rec.Code)
	}
	userID, _ = profile["id"].(string)
	return email, token, userID
}

func loginDoctor(t *testing.T, h http.Handler) (token, userID string) {
	t.Helper()
	rec, body := do(t, h, "POST", "/auth/login", "", map[string]string{
		"email": "dr.smith@hospital.com", "password": "SecurePass123!",
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("doctor login: expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	token, _ = body["token"].(string)
	if body["role"] != "provider" {
		t.Fatalf("doctor login: expected provider role, got %v", body["role"])
	}

	rec, profile := do(t, h, "GET", "/auth/profile", token, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("doctor profile: expected 200, got %d", rec.Code)
	}
	userID, _ = profile["id"].(string)
	return token, userID
}

// uniqueSlot returns a far-future timestamp unlikely to collide across runs.
func uniqueSlot() string {
	offset := time.Duration(time.Now().UnixNano()%100000) * time.Minute
	return time.Now().Add(24*time.Hour + offset).UTC().Format(time.RFC3339)
}

func TestRegisterRejectsProviderRole(t *testing.T) {
	h := setup(t)
	rec, _ := do(t, h, "POST", "/auth/register", "", map[string]string{
		"email": "dr.new@test.com", "password": "testpass123", "role": "provider",
	})
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rec.Code)
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	h := setup(t)
	email, _, _ := registerPatient(t, h)

	rec, _ := do(t, h, "POST", "/auth/register", "", map[string]string{
		"email": email, "password": "testpass123",
	})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for duplicate email, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestLoginWrongPassword(t *testing.T) {
	h := setup(t)
	email, _, _ := registerPatient(t, h)

	rec, _ := do(t, h, "POST", "/auth/login", "", map[string]string{
		"email": email, "password": "wrongpassword",
	})
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}

	rec, _ = do(t, h, "POST", "/auth/login", "", map[string]string{
		"email": "nobody@nowhere.com", "password": "testpass123",
	})
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for unknown email, got %d", rec.Code)
	}
}

func TestPatientsRequireAuth(t *testing.T) {
	h := setup(t)

	rec, _ := do(t, h, "GET", "/patients", "", nil)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without token, got %d", rec.Code)
	}

	// Patients cannot list patients either.
	_, patientToken, _ := registerPatient(t, h)
	rec, _ = do(t, h, "GET", "/patients", patientToken, nil)
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for patient, got %d", rec.Code)
	}

	// Providers can.
	doctorToken, _ := loginDoctor(t, h)
	rec, _ = do(t, h, "GET", "/patients", doctorToken, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 for provider, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestPatientProfilePartialUpdate(t *testing.T) {
	h := setup(t)
	_, token, userID := registerPatient(t, h)

	rec, _ := do(t, h, "PUT", "/patients/"+userID, token, map[string]interface{}{
		"wellness_goals": map[string]interface{}{"target": "lose weight"},
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("first update: expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	// A second partial update must leave the untouched fields intact.
	rec, _ = do(t, h, "PUT", "/patients/"+userID, token, map[string]interface{}{
		"allergies": []string{"penicillin"},
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("second update: expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	rec, body := do(t, h, "GET", "/patients/"+userID, token, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("get: expected 200, got %d", rec.Code)
	}
	goals, _ := body["wellness_goals"].(map[string]interface{})
	if goals["target"] != "lose weight" {
		t.Errorf("wellness_goals lost on partial update: %v", body["wellness_goals"])
	}
	allergies, _ := body["allergies"].([]interface{})
	if len(allergies) != 1 || allergies[0] != "penicillin" {
		t.Errorf("allergies not stored: %v", body["allergies"])
	}
}

func TestPatientCannotReadOtherPatient(t *testing.T) {
	h := setup(t)
	_, token1, _ := registerPatient(t, h)
	_, _, userID2 := registerPatient(t, h)

	rec, _ := do(t, h, "GET", "/patients/"+userID2, token1, nil)
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rec.Code)
	}
}

func TestBookingLifecycle(t *testing.T) {
	h := setup(t)
	_, patientToken, _ := registerPatient(t, h)
	doctorToken, doctorID := loginDoctor(t, h)

	slot := uniqueSlot()

	// Book.
	rec, body := do(t, h, "POST", "/appointments", patientToken, map[string]string{
		"provider_id": doctorID, "appointment_date": slot, "reason": "checkup",
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("book: expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	appt, _ := body["appointment"].(map[string]interface{})
	apptID, _ := appt["id"].(string)
	if apptID == "" {
		t.Fatal("book: empty appointment id")
	}
	if appt["status"] != "pending" {
		t.Fatalf("book: expected pending, got %v", appt["status"])
	}

	// Same patient, same doctor, same slot: conflict.
	rec, _ = do(t, h, "POST", "/appointments", patientToken, map[string]string{
		"provider_id": doctorID, "appointment_date": slot, "reason": "again",
	})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("duplicate book: expected 400, got %d: %s", rec.Code, rec.Body.String())
	}

	// Patient may not confirm their own appointment.
	rec, _ = do(t, h, "PUT", "/appointments/"+apptID, patientToken, map[string]string{
		"status": "confirmed",
	})
	if rec.Code != http.StatusForbidden {
		t.Fatalf("patient confirm: expected 403, got %d", rec.Code)
	}

	// Provider confirms.
	rec, body = do(t, h, "PUT", "/appointments/"+apptID, doctorToken, map[string]string{
		"status": "confirmed",
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("confirm: expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	appt, _ = body["appointment"].(map[string]interface{})
	if appt["status"] != "confirmed" {
		t.Fatalf("confirm: expected confirmed, got %v", appt["status"])
	}

	// Patient cancels.
	rec, _ = do(t, h, "DELETE", "/appointments/"+apptID, patientToken, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("cancel: expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	// Cancelling again is a no-op, not an error.
	rec, _ = do(t, h, "DELETE", "/appointments/"+apptID, patientToken, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("repeat cancel: expected 200, got %d", rec.Code)
	}

	// The cancelled record survives as cancelled.
	rec, body = do(t, h, "GET", "/appointments/"+apptID, patientToken, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("get after cancel: expected 200, got %d", rec.Code)
	}
	appt, _ = body["appointment"].(map[string]interface{})
	if appt["status"] != "cancelled" {
		t.Fatalf("expected cancelled, got %v", appt["status"])
	}

	// The slot is free again after cancellation.
	rec, _ = do(t, h, "POST", "/appointments", patientToken, map[string]string{
		"provider_id": doctorID, "appointment_date": slot, "reason": "rebook",
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("rebook: expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestTerminalAppointmentImmutable(t *testing.T) {
	h := setup(t)
	_, patientToken, _ := registerPatient(t, h)
	doctorToken, doctorID := loginDoctor(t, h)

	rec, body := do(t, h, "POST", "/appointments", patientToken, map[string]string{
		"provider_id": doctorID, "appointment_date": uniqueSlot(), "reason": "checkup",
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("book: expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	appt, _ := body["appointment"].(map[string]interface{})
	apptID, _ := appt["id"].(string)

	rec, _ = do(t, h, "PUT", "/appointments/"+apptID, doctorToken, map[string]string{
		"status": "completed",
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("complete: expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	// A completed appointment cannot be cancelled.
	rec, _ = do(t, h, "DELETE", "/appointments/"+apptID, patientToken, nil)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("cancel completed: expected 400, got %d: %s", rec.Code, rec.Body.String())
	}

	// Nor can its status be changed again.
	rec, _ = do(t, h, "PUT", "/appointments/"+apptID, doctorToken, map[string]string{
		"status": "confirmed",
	})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("update completed: expected 400, got %d: %s", rec.Code, rec.Body.String())
	}

	// The same holds for a cancelled appointment's status.
	rec, body = do(t, h, "POST", "/appointments", patientToken, map[string]string{
		"provider_id": doctorID, "appointment_date": uniqueSlot(), "reason": "second",
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("book second: expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	appt, _ = body["appointment"].(map[string]interface{})
	apptID, _ = appt["id"].(string)

	rec, _ = do(t, h, "DELETE", "/appointments/"+apptID, patientToken, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("cancel: expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	rec, _ = do(t, h, "PUT", "/appointments/"+apptID, doctorToken, map[string]string{
		"status": "confirmed",
	})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("update cancelled: expected 400, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestBookingPastDateRejected(t *testing.T) {
	h := setup(t)
	_, patientToken, _ := registerPatient(t, h)
	_, doctorID := loginDoctor(t, h)

	rec, _ := do(t, h, "POST", "/appointments", patientToken, map[string]string{
		"provider_id":      doctorID,
		"appointment_date": time.Now().Add(-time.Hour).UTC().Format(time.RFC3339),
		"reason":           "too late",
	})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for past date, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestProviderCannotBook(t *testing.T) {
	h := setup(t)
	doctorToken, doctorID := loginDoctor(t, h)

	rec, _ := do(t, h, "POST", "/appointments", doctorToken, map[string]string{
		"provider_id": doctorID, "appointment_date": uniqueSlot(), "reason": "self",
	})
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestDoctorSchedule(t *testing.T) {
	h := setup(t)
	_, patientToken, _ := registerPatient(t, h)
	_, doctorID := loginDoctor(t, h)

	rec, _ := do(t, h, "POST", "/appointments", patientToken, map[string]string{
		"provider_id": doctorID, "appointment_date": uniqueSlot(), "reason": "checkup",
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("book: expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	rec, body := do(t, h, "GET", "/appointments/doctor/"+doctorID, patientToken, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("schedule: expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	doctor, _ := body["doctor"].(map[string]interface{})
	if doctor["id"] != doctorID {
		t.Errorf("schedule: wrong doctor id %v", doctor["id"])
	}
	count, _ := body["booked_count"].(float64)
	if count < 1 {
		t.Errorf("schedule: expected at least 1 booked, got %v", body["booked_count"])
	}
}

func TestListProviders(t *testing.T) {
	h := setup(t)
	_, patientToken, _ := registerPatient(t, h)

	rec, body := do(t, h, "GET", "/providers", patientToken, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	providers, _ := body["providers"].([]interface{})
	if len(providers) < 5 {
		t.Errorf("expected at least 5 seeded providers, got %d", len(providers))
	}
}
