package services

import (
	"testing"

	"github.com/randexapp/randex/models"
)

func TestValidStatus(t *testing.T) {
	for _, s := range []string{"pending", "confirmed", "cancelled", "completed"} {
		if !ValidStatus(s) {
			t.Fatalf("%s should be a valid status", s)
		}
	}
	for _, s := range []string{"", "done", "Pending", "reschedule_requested"} {
		if ValidStatus(s) {
			t.Fatalf("%s should not be a valid status", s)
		}
	}
}

func TestCanTransition(t *testing.T) {
	allowed := map[[2]string]bool{
		{models.StatusPending, models.StatusConfirmed}:   true,
		{models.StatusPending, models.StatusCancelled}:   true,
		{models.StatusConfirmed, models.StatusCompleted}: true,
		{models.StatusConfirmed, models.StatusCancelled}: true,
	}

	statuses := []string{models.StatusPending, models.StatusConfirmed, models.StatusCancelled, models.StatusCompleted}
	for _, from := range statuses {
		for _, to := range statuses {
			want := allowed[[2]string{from, to}]
			if got := CanTransition(from, to); got != want {
				t.Fatalf("CanTransition(%s, %s) = %v, want %v", from, to, got, want)
			}
		}
	}
}
