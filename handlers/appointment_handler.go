package handlers

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/randexapp/randex/models"
	"github.com/randexapp/randex/notifications"
	"github.com/randexapp/randex/repository"
	"github.com/randexapp/randex/services"
	"github.com/randexapp/randex/websocket"
)

type AppointmentHandler struct {
	Appointments repository.AppointmentRepository
	Businesses   repository.BusinessRepository
	Users        repository.UserRepository
	Booking      *services.BookingService
	Hub          *websocket.Hub
}

func NewAppointmentHandler(
	appointments repository.AppointmentRepository,
	businesses repository.BusinessRepository,
	users repository.UserRepository,
	booking *services.BookingService,
	hub *websocket.Hub,
) *AppointmentHandler {
	return &AppointmentHandler{
		Appointments: appointments,
		Businesses:   businesses,
		Users:        users,
		Booking:      booking,
		Hub:          hub,
	}
}

type CreateAppointmentRequest struct {
	BusinessID      string  `json:"business_id" validate:"required,uuid"`
	ServiceID       string  `json:"service_id" validate:"required,uuid"`
	AppointmentDate string  `json:"appointment_date" validate:"required,datetime=2006-01-02"`
	AppointmentTime string  `json:"appointment_time" validate:"required,datetime=15:04"`
	Notes           *string `json:"notes,omitempty"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

func (h *AppointmentHandler) MyAppointments(c *fiber.Ctx) error {
	actor := currentActor(c)

	var (
		details []models.AppointmentDetail
		err     error
	)
	switch actor.Role {
	case models.RoleCustomer:
		details, err = h.Appointments.ListForCustomer(c.UserContext(), actor.ID)
	case models.RoleBusinessOwner:
		details, err = h.Appointments.ListForOwner(c.UserContext(), actor.ID)
	default:
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Unknown role"})
	}
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(details)
}

func (h *AppointmentHandler) AvailableSlots(c *fiber.Ctx) error {
	businessID, err := uuid.Parse(c.Params("businessId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid business ID"})
	}
	date := c.Params("date")

	business, err := h.Businesses.GetByID(c.UserContext(), businessID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Business not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	bookedTimes, err := h.Appointments.BookedTimes(c.UserContext(), businessID, date)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	booked := make(map[string]bool, len(bookedTimes))
	for _, t := range bookedTimes {
		booked[t] = true
	}

	slots, err := services.AvailableSlots(business.OpeningTime, business.ClosingTime, booked)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"slots": slots})
}

func (h *AppointmentHandler) Create(c *fiber.Ctx) error {
	actor := currentActor(c)

	var req CreateAppointmentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	businessID, _ := uuid.Parse(req.BusinessID)
	serviceID, _ := uuid.Parse(req.ServiceID)

	detail, err := h.Booking.CreateAppointment(c.UserContext(), services.BookingInput{
		BusinessID: businessID,
		ServiceID:  serviceID,
		CustomerID: actor.ID,
		Date:       req.AppointmentDate,
		Time:       req.AppointmentTime,
		Notes:      req.Notes,
	})
	if err != nil {
		if errors.Is(err, repository.ErrSlotTaken) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Time slot is already booked"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	if business, err := h.Businesses.GetByID(c.UserContext(), businessID); err == nil {
		h.Hub.Push(websocket.Notification{
			UserID:        business.OwnerID,
			Event:         websocket.EventAppointmentCreated,
			AppointmentID: detail.ID,
			Status:        detail.Status,
			Message:       fmt.Sprintf("New appointment for %s on %s at %s", detail.ServiceName, detail.AppointmentDate, detail.AppointmentTime),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(detail)
}

func (h *AppointmentHandler) UpdateStatus(c *fiber.Ctx) error {
	actor := currentActor(c)

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid appointment ID"})
	}

	var req UpdateStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if !services.ValidStatus(req.Status) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid status"})
	}

	appointment, err := h.Appointments.GetWithBusiness(c.UserContext(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Appointment not found or access denied"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	if !services.CanAccess(actor, appointment) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Appointment not found or access denied"})
	}

	if !services.CanTransition(appointment.Status, req.Status) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": fmt.Sprintf("Cannot change status from %s to %s", appointment.Status, req.Status),
		})
	}

	if err := h.Appointments.UpdateStatus(c.UserContext(), id, req.Status); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	appointment.Status = req.Status

	h.notifyStatusChange(c, actor, appointment)

	return c.JSON(appointment)
}

// notifyStatusChange pushes the change to the other party and emails the
// customer when their appointment is confirmed.
func (h *AppointmentHandler) notifyStatusChange(c *fiber.Ctx, actor services.Actor, appointment *models.Appointment) {
	counterparty := appointment.CustomerID
	if actor.Role == models.RoleCustomer {
		counterparty = appointment.Business.OwnerID
	}
	h.Hub.Push(websocket.Notification{
		UserID:        counterparty,
		Event:         websocket.EventStatusChanged,
		AppointmentID: appointment.ID,
		Status:        appointment.Status,
		Message:       fmt.Sprintf("Appointment on %s at %s is now %s", appointment.AppointmentDate, appointment.AppointmentTime, appointment.Status),
	})

	if appointment.Status != models.StatusConfirmed {
		return
	}
	customer, err := h.Users.GetByID(c.UserContext(), appointment.CustomerID)
	if err != nil {
		return
	}
	body := fmt.Sprintf(
		"<h1>Appointment Confirmed</h1><p>Your appointment at %s on %s at %s has been confirmed.</p>",
		appointment.Business.Name, appointment.AppointmentDate, appointment.AppointmentTime,
	)
	go notifications.SendEmail(customer.Name, customer.Email, "Your Appointment is Confirmed!", body)
}
