package repository

import "errors"

// ErrNotFound covers both a missing row and an authorization-join miss so
// callers cannot tell a forbidden record from an absent one.
var ErrNotFound = errors.New("record not found or access denied")

// ErrSlotTaken is returned by AppointmentRepository.Book when a non-cancelled
// appointment already occupies the requested slot.
var ErrSlotTaken = errors.New("time slot is already booked")
