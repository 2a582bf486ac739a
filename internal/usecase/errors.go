package usecase

import (
	"errors"
)

// Admission failures are sentinel errors so handlers can map each kind to
// its own HTTP status instead of guessing from message text. Anything not
// in this list is an infrastructure failure and surfaces as a generic
// internal error at the boundary.
var (
	ErrUnauthenticated              = errors.New("authentication required")
	ErrForbidden                    = errors.New("forbidden")
	ErrNotFound                     = errors.New("not found")
	ErrSlotTaken                    = errors.New("time slot already booked")
	ErrCourtNotBookable             = errors.New("court is not open for reservations")
	ErrDailyLimitExceeded           = errors.New("daily booking limit reached")
	ErrDailySubmissionLimitExceeded = errors.New("daily court submission limit reached")
	ErrInvalidStatus                = errors.New("invalid court status")
	ErrInvalidCredentials           = errors.New("invalid credentials")
)
