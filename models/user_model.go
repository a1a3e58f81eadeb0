package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	RoleCustomer      = "customer"
	RoleBusinessOwner = "business_owner"
)

type User struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Email    string    `gorm:"size:255;not null;unique" json:"email"`
	Password string    `gorm:"not null" json:"-"`
	Name     string    `gorm:"size:255;not null" json:"name"`
	Phone    *string   `gorm:"size:30" json:"phone"`
	Role     string    `gorm:"size:20;not null" json:"role"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
