package models

import (
	"time"

	"github.com/google/uuid"
)

// Business hours are stored as "HH:MM" strings; the slot calculator only
// looks at the hour component.
type Business struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	OwnerID     uuid.UUID `gorm:"type:uuid;not null;index" json:"owner_id"`
	Name        string    `gorm:"size:255;not null" json:"name"`
	Type        string    `gorm:"size:50;not null" json:"type"`
	Description *string   `gorm:"type:text" json:"description"`
	Address     *string   `gorm:"size:255" json:"address"`
	Phone       *string   `gorm:"size:30" json:"phone"`
	ImageURL    *string   `gorm:"size:255" json:"image_url"`
	OpeningTime string    `gorm:"size:5;not null;default:'09:00'" json:"opening_time"`
	ClosingTime string    `gorm:"size:5;not null;default:'18:00'" json:"closing_time"`

	Owner User `gorm:"foreignkey:OwnerID" json:"-"`

	// Deleting a business removes its services, reviews and appointments.
	Services     []Service     `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Reviews      []Review      `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Appointments []Appointment `gorm:"constraint:OnDelete:CASCADE" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// BusinessSummary is the directory read projection: one business row plus
// its aggregated review stats.
type BusinessSummary struct {
	ID            uuid.UUID `json:"id"`
	OwnerID       uuid.UUID `json:"owner_id"`
	Name          string    `json:"name"`
	Type          string    `json:"type"`
	Description   *string   `json:"description"`
	Address       *string   `json:"address"`
	Phone         *string   `json:"phone"`
	ImageURL      *string   `json:"image_url"`
	OpeningTime   string    `json:"opening_time"`
	ClosingTime   string    `json:"closing_time"`
	CreatedAt     time.Time `json:"created_at"`
	AverageRating float64   `json:"average_rating"`
	ReviewCount   int64     `json:"review_count"`
}

type BusinessDetail struct {
	BusinessSummary
	Services []Service            `json:"services"`
	Reviews  []ReviewWithCustomer `json:"reviews"`
}
