package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusCancelled = "cancelled"
	StatusCompleted = "completed"
)

// Appointment dates are "YYYY-MM-DD" and times are "HH:MM" labels produced by
// the slot calculator. A partial unique index on (business_id,
// appointment_date, appointment_time) where status <> 'cancelled' backs the
// booking conflict check (see database.Migrate).
type Appointment struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	BusinessID      uuid.UUID `gorm:"type:uuid;not null;index" json:"business_id"`
	ServiceID       uuid.UUID `gorm:"type:uuid;not null" json:"service_id"`
	CustomerID      uuid.UUID `gorm:"type:uuid;not null;index" json:"customer_id"`
	AppointmentDate string    `gorm:"size:10;not null" json:"appointment_date"`
	AppointmentTime string    `gorm:"size:5;not null" json:"appointment_time"`
	Status          string    `gorm:"size:20;not null;default:'pending'" json:"status"`
	Notes           *string   `gorm:"type:text" json:"notes"`

	Business Business `gorm:"foreignkey:BusinessID" json:"-"`
	Service  Service  `gorm:"foreignkey:ServiceID" json:"-"`
	Customer User     `gorm:"foreignkey:CustomerID" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// AppointmentDetail joins an appointment with its business and service for
// client convenience. Customer contact fields are only populated on the
// owner-facing read path.
type AppointmentDetail struct {
	ID              uuid.UUID `json:"id"`
	BusinessID      uuid.UUID `json:"business_id"`
	ServiceID       uuid.UUID `json:"service_id"`
	CustomerID      uuid.UUID `json:"customer_id"`
	AppointmentDate string    `json:"appointment_date"`
	AppointmentTime string    `json:"appointment_time"`
	Status          string    `json:"status"`
	Notes           *string   `json:"notes"`
	CreatedAt       time.Time `json:"created_at"`

	BusinessName string  `json:"business_name"`
	ServiceName  string  `json:"service_name"`
	Duration     int     `json:"duration"`
	Price        float64 `json:"price"`

	CustomerName  *string `json:"customer_name,omitempty"`
	CustomerEmail *string `json:"customer_email,omitempty"`
	CustomerPhone *string `json:"customer_phone,omitempty"`
}
