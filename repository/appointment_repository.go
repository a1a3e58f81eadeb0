package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/randexapp/randex/models"
	"gorm.io/gorm"
)

type GormAppointmentRepository struct {
	db *gorm.DB
}

func NewAppointmentRepository(db *gorm.DB) *GormAppointmentRepository {
	return &GormAppointmentRepository{db: db}
}

const appointmentDetailSelect = `appointments.id, appointments.business_id, appointments.service_id,
	appointments.customer_id, appointments.appointment_date, appointments.appointment_time,
	appointments.status, appointments.notes, appointments.created_at,
	businesses.name AS business_name, services.name AS service_name,
	services.duration, services.price`

const appointmentCustomerSelect = appointmentDetailSelect + `,
	users.name AS customer_name, users.email AS customer_email, users.phone AS customer_phone`

func (r *GormAppointmentRepository) detailQuery(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Table("appointments").
		Joins("JOIN businesses ON businesses.id = appointments.business_id").
		Joins("JOIN services ON services.id = appointments.service_id")
}

func (r *GormAppointmentRepository) ListForCustomer(ctx context.Context, customerID uuid.UUID) ([]models.AppointmentDetail, error) {
	var details []models.AppointmentDetail
	err := r.detailQuery(ctx).
		Select(appointmentDetailSelect).
		Where("appointments.customer_id = ?", customerID).
		Order("appointments.appointment_date DESC, appointments.appointment_time DESC").
		Scan(&details).Error
	return details, err
}

func (r *GormAppointmentRepository) ListForOwner(ctx context.Context, ownerID uuid.UUID) ([]models.AppointmentDetail, error) {
	var details []models.AppointmentDetail
	err := r.detailQuery(ctx).
		Select(appointmentCustomerSelect).
		Joins("JOIN users ON users.id = appointments.customer_id").
		Where("businesses.owner_id = ?", ownerID).
		Order("appointments.appointment_date DESC, appointments.appointment_time DESC").
		Scan(&details).Error
	return details, err
}

func (r *GormAppointmentRepository) ListConfirmedByDate(ctx context.Context, date string) ([]models.AppointmentDetail, error) {
	var details []models.AppointmentDetail
	err := r.detailQuery(ctx).
		Select(appointmentCustomerSelect).
		Joins("JOIN users ON users.id = appointments.customer_id").
		Where("appointments.appointment_date = ? AND appointments.status = ?", date, models.StatusConfirmed).
		Order("appointments.appointment_time ASC").
		Scan(&details).Error
	return details, err
}

func (r *GormAppointmentRepository) BookedTimes(ctx context.Context, businessID uuid.UUID, date string) ([]string, error) {
	var times []string
	err := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Where("business_id = ? AND appointment_date = ? AND status <> ?", businessID, date, models.StatusCancelled).
		Pluck("appointment_time", &times).Error
	return times, err
}

func (r *GormAppointmentRepository) Book(ctx context.Context, appointment *models.Appointment) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		err := tx.Model(&models.Appointment{}).
			Where("business_id = ? AND appointment_date = ? AND appointment_time = ? AND status <> ?",
				appointment.BusinessID, appointment.AppointmentDate, appointment.AppointmentTime, models.StatusCancelled).
			Count(&count).Error
		if err != nil {
			return err
		}
		if count > 0 {
			return ErrSlotTaken
		}
		return tx.Create(appointment).Error
	})
	// The partial unique index catches the race the check above can miss.
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrSlotTaken
	}
	return err
}

func (r *GormAppointmentRepository) GetWithBusiness(ctx context.Context, id uuid.UUID) (*models.Appointment, error) {
	var appointment models.Appointment
	err := r.db.WithContext(ctx).
		Preload("Business").
		First(&appointment, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &appointment, nil
}

func (r *GormAppointmentRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status string) error {
	return r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Where("id = ?", id).
		Update("status", status).Error
}

func (r *GormAppointmentRepository) DetailByID(ctx context.Context, id uuid.UUID) (*models.AppointmentDetail, error) {
	var detail models.AppointmentDetail
	err := r.detailQuery(ctx).
		Select(appointmentDetailSelect).
		Where("appointments.id = ?", id).
		Scan(&detail).Error
	if err != nil {
		return nil, err
	}
	if detail.ID == uuid.Nil {
		return nil, ErrNotFound
	}
	return &detail, nil
}
