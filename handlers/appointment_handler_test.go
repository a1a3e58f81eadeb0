package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/randexapp/randex/models"
	"github.com/randexapp/randex/repository"
	"github.com/randexapp/randex/services"
	"github.com/randexapp/randex/websocket"
)

type stubAppointments struct {
	appointments map[uuid.UUID]*models.Appointment
	details      map[uuid.UUID]*models.AppointmentDetail
	bookedTimes  []string
	bookErr      error
	updated      map[uuid.UUID]string
}

func newStubAppointments() *stubAppointments {
	return &stubAppointments{
		appointments: make(map[uuid.UUID]*models.Appointment),
		details:      make(map[uuid.UUID]*models.AppointmentDetail),
		updated:      make(map[uuid.UUID]string),
	}
}

func (s *stubAppointments) ListForCustomer(context.Context, uuid.UUID) ([]models.AppointmentDetail, error) {
	return nil, nil
}
func (s *stubAppointments) ListForOwner(context.Context, uuid.UUID) ([]models.AppointmentDetail, error) {
	return nil, nil
}
func (s *stubAppointments) ListConfirmedByDate(context.Context, string) ([]models.AppointmentDetail, error) {
	return nil, nil
}
func (s *stubAppointments) BookedTimes(context.Context, uuid.UUID, string) ([]string, error) {
	return s.bookedTimes, nil
}
func (s *stubAppointments) Book(_ context.Context, a *models.Appointment) error {
	if s.bookErr != nil {
		return s.bookErr
	}
	a.ID = uuid.New()
	s.appointments[a.ID] = a
	s.details[a.ID] = &models.AppointmentDetail{
		ID:              a.ID,
		BusinessID:      a.BusinessID,
		ServiceID:       a.ServiceID,
		CustomerID:      a.CustomerID,
		AppointmentDate: a.AppointmentDate,
		AppointmentTime: a.AppointmentTime,
		Status:          a.Status,
		BusinessName:    "Inkwell Studio",
		ServiceName:     "Small Tattoo",
		Duration:        60,
		Price:           80,
	}
	return nil
}
func (s *stubAppointments) GetWithBusiness(_ context.Context, id uuid.UUID) (*models.Appointment, error) {
	a, ok := s.appointments[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return a, nil
}
func (s *stubAppointments) UpdateStatus(_ context.Context, id uuid.UUID, status string) error {
	s.updated[id] = status
	return nil
}
func (s *stubAppointments) DetailByID(_ context.Context, id uuid.UUID) (*models.AppointmentDetail, error) {
	d, ok := s.details[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return d, nil
}

type stubBusinesses struct {
	businesses map[uuid.UUID]*models.Business
}

func newStubBusinesses() *stubBusinesses {
	return &stubBusinesses{businesses: make(map[uuid.UUID]*models.Business)}
}

func (s *stubBusinesses) List(context.Context, repository.BusinessFilter) ([]models.BusinessSummary, error) {
	return nil, nil
}
func (s *stubBusinesses) GetDetail(context.Context, uuid.UUID) (*models.BusinessDetail, error) {
	return nil, repository.ErrNotFound
}
func (s *stubBusinesses) ListByOwner(context.Context, uuid.UUID) ([]models.BusinessSummary, error) {
	return nil, nil
}
func (s *stubBusinesses) GetByID(_ context.Context, id uuid.UUID) (*models.Business, error) {
	b, ok := s.businesses[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return b, nil
}
func (s *stubBusinesses) GetOwned(_ context.Context, id, ownerID uuid.UUID) (*models.Business, error) {
	b, ok := s.businesses[id]
	if !ok || b.OwnerID != ownerID {
		return nil, repository.ErrNotFound
	}
	return b, nil
}
func (s *stubBusinesses) Create(context.Context, *models.Business) error { return nil }
func (s *stubBusinesses) Update(context.Context, *models.Business) error { return nil }
func (s *stubBusinesses) Delete(context.Context, uuid.UUID) error        { return nil }

type stubUsers struct {
	users map[uuid.UUID]*models.User
}

func (s *stubUsers) Create(context.Context, *models.User) error { return nil }
func (s *stubUsers) GetByEmail(context.Context, string) (*models.User, error) {
	return nil, repository.ErrNotFound
}
func (s *stubUsers) GetByID(_ context.Context, id uuid.UUID) (*models.User, error) {
	if s.users == nil {
		return nil, repository.ErrNotFound
	}
	u, ok := s.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return u, nil
}

func testApp(h *AppointmentHandler, userID uuid.UUID, role string) *fiber.App {
	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
			"user_id": userID.String(),
			"role":    role,
		})
		c.Locals("user", token)
		return c.Next()
	})
	app.Get("/appointments/available-slots/:businessId/:date", h.AvailableSlots)
	app.Post("/appointments", h.Create)
	app.Put("/appointments/:id/status", h.UpdateStatus)
	return app
}

func newHandler(appts *stubAppointments, businesses *stubBusinesses, users *stubUsers) *AppointmentHandler {
	if users == nil {
		users = &stubUsers{}
	}
	hub := websocket.NewHub()
	return NewAppointmentHandler(appts, businesses, users, services.NewBookingService(appts), hub)
}

func TestCreateAppointment_MissingFields(t *testing.T) {
	appts := newStubAppointments()
	h := newHandler(appts, newStubBusinesses(), nil)
	app := testApp(h, uuid.New(), models.RoleCustomer)

	payload := map[string]string{
		"business_id": uuid.NewString(),
		"service_id":  uuid.NewString(),
		// appointment_date and appointment_time missing
	}
	body, _ := json.Marshal(payload)
	req := httptest.NewRequest("POST", "/appointments", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}
	if len(appts.appointments) != 0 {
		t.Fatal("validation failure must not write")
	}
}

func TestCreateAppointment_SlotConflict(t *testing.T) {
	appts := newStubAppointments()
	appts.bookErr = repository.ErrSlotTaken
	h := newHandler(appts, newStubBusinesses(), nil)
	app := testApp(h, uuid.New(), models.RoleCustomer)

	payload := map[string]string{
		"business_id":      uuid.NewString(),
		"service_id":       uuid.NewString(),
		"appointment_date": "2026-09-15",
		"appointment_time": "10:00",
	}
	body, _ := json.Marshal(payload)
	req := httptest.NewRequest("POST", "/appointments", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("expected 400 conflict, got %d", resp.StatusCode)
	}
}

func TestCreateAppointment_Success(t *testing.T) {
	appts := newStubAppointments()
	businesses := newStubBusinesses()
	businessID := uuid.New()
	businesses.businesses[businessID] = &models.Business{ID: businessID, OwnerID: uuid.New()}

	h := newHandler(appts, businesses, nil)
	app := testApp(h, uuid.New(), models.RoleCustomer)

	payload := map[string]string{
		"business_id":      businessID.String(),
		"service_id":       uuid.NewString(),
		"appointment_date": "2026-09-15",
		"appointment_time": "10:00",
	}
	body, _ := json.Marshal(payload)
	req := httptest.NewRequest("POST", "/appointments", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusCreated {
		t.Fatalf("expected 201, got %d", resp.StatusCode)
	}

	var detail models.AppointmentDetail
	if err := json.NewDecoder(resp.Body).Decode(&detail); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if detail.Status != models.StatusPending {
		t.Fatalf("expected pending, got %s", detail.Status)
	}
	if detail.BusinessName == "" || detail.ServiceName == "" {
		t.Fatal("expected joined projection fields")
	}
}

func TestUpdateStatus_InvalidLiteral(t *testing.T) {
	appts := newStubAppointments()
	h := newHandler(appts, newStubBusinesses(), nil)
	app := testApp(h, uuid.New(), models.RoleCustomer)

	body, _ := json.Marshal(map[string]string{"status": "done"})
	req := httptest.NewRequest("PUT", "/appointments/"+uuid.NewString()+"/status", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}
	if len(appts.updated) != 0 {
		t.Fatal("invalid literal must not touch storage")
	}
}

func seedAppointment(appts *stubAppointments, customerID, ownerID uuid.UUID, status string) uuid.UUID {
	id := uuid.New()
	appts.appointments[id] = &models.Appointment{
		ID:              id,
		BusinessID:      uuid.New(),
		ServiceID:       uuid.New(),
		CustomerID:      customerID,
		AppointmentDate: "2026-09-15",
		AppointmentTime: "10:00",
		Status:          status,
		Business:        models.Business{OwnerID: ownerID, Name: "Inkwell Studio"},
	}
	return id
}

func TestUpdateStatus_OtherCustomersAppointment(t *testing.T) {
	appts := newStubAppointments()
	id := seedAppointment(appts, uuid.New(), uuid.New(), models.StatusPending)

	h := newHandler(appts, newStubBusinesses(), nil)
	app := testApp(h, uuid.New(), models.RoleCustomer)

	body, _ := json.Marshal(map[string]string{"status": "cancelled"})
	req := httptest.NewRequest("PUT", "/appointments/"+id.String()+"/status", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.StatusCode)
	}
}

func TestUpdateStatus_OwnerConfirms(t *testing.T) {
	appts := newStubAppointments()
	ownerID := uuid.New()
	customerID := uuid.New()
	id := seedAppointment(appts, customerID, ownerID, models.StatusPending)

	users := &stubUsers{users: map[uuid.UUID]*models.User{
		customerID: {ID: customerID, Name: "Dana", Email: "dana@example.com"},
	}}
	h := newHandler(appts, newStubBusinesses(), users)
	app := testApp(h, ownerID, models.RoleBusinessOwner)

	body, _ := json.Marshal(map[string]string{"status": "confirmed"})
	req := httptest.NewRequest("PUT", "/appointments/"+id.String()+"/status", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	if appts.updated[id] != models.StatusConfirmed {
		t.Fatalf("expected stored status confirmed, got %q", appts.updated[id])
	}
}

func TestUpdateStatus_ForeignOwner(t *testing.T) {
	appts := newStubAppointments()
	id := seedAppointment(appts, uuid.New(), uuid.New(), models.StatusPending)

	h := newHandler(appts, newStubBusinesses(), nil)
	app := testApp(h, uuid.New(), models.RoleBusinessOwner)

	body, _ := json.Marshal(map[string]string{"status": "confirmed"})
	req := httptest.NewRequest("PUT", "/appointments/"+id.String()+"/status", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.StatusCode)
	}
}

func TestUpdateStatus_TerminalState(t *testing.T) {
	appts := newStubAppointments()
	customerID := uuid.New()
	id := seedAppointment(appts, customerID, uuid.New(), models.StatusCompleted)

	h := newHandler(appts, newStubBusinesses(), nil)
	app := testApp(h, customerID, models.RoleCustomer)

	body, _ := json.Marshal(map[string]string{"status": "cancelled"})
	req := httptest.NewRequest("PUT", "/appointments/"+id.String()+"/status", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}
	if len(appts.updated) != 0 {
		t.Fatal("terminal state must not change")
	}
}

func TestAvailableSlots_UnknownBusiness(t *testing.T) {
	h := newHandler(newStubAppointments(), newStubBusinesses(), nil)
	app := testApp(h, uuid.New(), models.RoleCustomer)

	req := httptest.NewRequest("GET", "/appointments/available-slots/"+uuid.NewString()+"/2026-09-15", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.StatusCode)
	}
}

func TestAvailableSlots_FiltersBooked(t *testing.T) {
	appts := newStubAppointments()
	appts.bookedTimes = []string{"09:00", "10:00"}

	businesses := newStubBusinesses()
	businessID := uuid.New()
	businesses.businesses[businessID] = &models.Business{
		ID:          businessID,
		OwnerID:     uuid.New(),
		OpeningTime: "09:00",
		ClosingTime: "18:00",
	}

	h := newHandler(appts, businesses, nil)
	app := testApp(h, uuid.New(), models.RoleCustomer)

	req := httptest.NewRequest("GET", "/appointments/available-slots/"+businessID.String()+"/2026-09-15", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	var out struct {
		Slots []string `json:"slots"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(out.Slots) != 7 {
		t.Fatalf("expected 7 slots, got %v", out.Slots)
	}
	for _, s := range out.Slots {
		if s == "09:00" || s == "10:00" {
			t.Fatalf("booked slot %s should not be offered", s)
		}
	}
}
