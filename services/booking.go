package services

import (
	"context"

	"github.com/google/uuid"
	"github.com/randexapp/randex/models"
	"github.com/randexapp/randex/repository"
)

type BookingInput struct {
	BusinessID uuid.UUID
	ServiceID  uuid.UUID
	CustomerID uuid.UUID
	Date       string
	Time       string
	Notes      *string
}

// BookingService runs the booking workflow: conflict check, insert with
// status pending, then the joined read-back the client renders.
type BookingService struct {
	Appointments repository.AppointmentRepository
}

func NewBookingService(appointments repository.AppointmentRepository) *BookingService {
	return &BookingService{Appointments: appointments}
}

func (s *BookingService) CreateAppointment(ctx context.Context, in BookingInput) (*models.AppointmentDetail, error) {
	appointment := &models.Appointment{
		BusinessID:      in.BusinessID,
		ServiceID:       in.ServiceID,
		CustomerID:      in.CustomerID,
		AppointmentDate: in.Date,
		AppointmentTime: in.Time,
		Status:          models.StatusPending,
		Notes:           in.Notes,
	}

	if err := s.Appointments.Book(ctx, appointment); err != nil {
		return nil, err
	}

	return s.Appointments.DetailByID(ctx, appointment.ID)
}
