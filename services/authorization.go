package services

import (
	"github.com/google/uuid"
	"github.com/randexapp/randex/models"
)

// Actor is the authenticated caller extracted from the JWT claims.
type Actor struct {
	ID   uuid.UUID
	Role string
}

// CanAccess reports whether the actor may read or mutate the appointment:
// customers only their own appointments, business owners only appointments of
// businesses they own. The appointment must carry its Business association.
func CanAccess(actor Actor, appointment *models.Appointment) bool {
	switch actor.Role {
	case models.RoleCustomer:
		return appointment.CustomerID == actor.ID
	case models.RoleBusinessOwner:
		return appointment.Business.OwnerID == actor.ID
	}
	return false
}
