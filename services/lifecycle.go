package services

import "github.com/randexapp/randex/models"

// Appointment lifecycle: pending may become confirmed or cancelled,
// confirmed may become completed or cancelled. Cancelled and completed are
// terminal.
var statusTransitions = map[string]map[string]bool{
	models.StatusPending: {
		models.StatusConfirmed: true,
		models.StatusCancelled: true,
	},
	models.StatusConfirmed: {
		models.StatusCompleted: true,
		models.StatusCancelled: true,
	},
	models.StatusCancelled: {},
	models.StatusCompleted: {},
}

func ValidStatus(status string) bool {
	_, ok := statusTransitions[status]
	return ok
}

func CanTransition(from, to string) bool {
	return statusTransitions[from][to]
}
