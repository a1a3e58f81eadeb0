package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/randexapp/randex/models"
)

// BusinessFilter narrows the public directory listing. Type is an exact
// match, Search a case-insensitive substring over name and description;
// both apply as AND when given.
type BusinessFilter struct {
	Type   string
	Search string
}

type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.User, error)
}

type BusinessRepository interface {
	List(ctx context.Context, filter BusinessFilter) ([]models.BusinessSummary, error)
	GetDetail(ctx context.Context, id uuid.UUID) (*models.BusinessDetail, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]models.BusinessSummary, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.Business, error)
	GetOwned(ctx context.Context, id, ownerID uuid.UUID) (*models.Business, error)
	Create(ctx context.Context, business *models.Business) error
	Update(ctx context.Context, business *models.Business) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type ServiceRepository interface {
	ListByBusiness(ctx context.Context, businessID uuid.UUID) ([]models.Service, error)
	GetOwned(ctx context.Context, id, ownerID uuid.UUID) (*models.Service, error)
	Create(ctx context.Context, service *models.Service) error
	Update(ctx context.Context, service *models.Service) error
	Delete(ctx context.Context, service *models.Service) error
}

type AppointmentRepository interface {
	ListForCustomer(ctx context.Context, customerID uuid.UUID) ([]models.AppointmentDetail, error)
	ListForOwner(ctx context.Context, ownerID uuid.UUID) ([]models.AppointmentDetail, error)
	ListConfirmedByDate(ctx context.Context, date string) ([]models.AppointmentDetail, error)
	// BookedTimes returns the appointment_time labels of non-cancelled
	// appointments for a business on a date.
	BookedTimes(ctx context.Context, businessID uuid.UUID, date string) ([]string, error)
	// Book performs the conflict check and insert in one transaction and
	// returns ErrSlotTaken when the slot is occupied.
	Book(ctx context.Context, appointment *models.Appointment) error
	GetWithBusiness(ctx context.Context, id uuid.UUID) (*models.Appointment, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status string) error
	DetailByID(ctx context.Context, id uuid.UUID) (*models.AppointmentDetail, error)
}

type ReviewRepository interface {
	ListByBusiness(ctx context.Context, businessID uuid.UUID) ([]models.ReviewWithCustomer, error)
	Create(ctx context.Context, review *models.Review) error
	GetOwned(ctx context.Context, id, customerID uuid.UUID) (*models.Review, error)
	Update(ctx context.Context, review *models.Review) error
	Delete(ctx context.Context, review *models.Review) error
}
