package services

import (
	"testing"

	"github.com/google/uuid"
	"github.com/randexapp/randex/models"
)

func TestCanAccess(t *testing.T) {
	customerID := uuid.New()
	otherCustomerID := uuid.New()
	ownerID := uuid.New()
	otherOwnerID := uuid.New()

	appointment := &models.Appointment{
		CustomerID: customerID,
		Business:   models.Business{OwnerID: ownerID},
	}

	cases := []struct {
		name  string
		actor Actor
		want  bool
	}{
		{"own customer", Actor{ID: customerID, Role: models.RoleCustomer}, true},
		{"other customer", Actor{ID: otherCustomerID, Role: models.RoleCustomer}, false},
		{"owning business owner", Actor{ID: ownerID, Role: models.RoleBusinessOwner}, true},
		{"other business owner", Actor{ID: otherOwnerID, Role: models.RoleBusinessOwner}, false},
		{"customer id with owner role", Actor{ID: customerID, Role: models.RoleBusinessOwner}, false},
		{"unknown role", Actor{ID: customerID, Role: "admin"}, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := CanAccess(tc.actor, appointment); got != tc.want {
				t.Fatalf("CanAccess = %v, want %v", got, tc.want)
			}
		})
	}
}
