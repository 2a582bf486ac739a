package entity

import (
	"time"

	"github.com/google/uuid"
)

type LimitKind string

const (
	LimitKindBooking    LimitKind = "booking"
	LimitKindSubmission LimitKind = "submission"
)

// Daily quota caps for non-admin users.
const (
	MaxBookingsPerDay    = 3
	MaxSubmissionsPerDay = 6
)

// DailyLimit counts how many bookings or court submissions a user has made
// on a calendar day. Rows are created lazily on first use, incremented and
// decremented together with their paired booking/court mutation, and never
// drop below zero. A row stuck at zero is harmless and allowed to linger.
type DailyLimit struct {
	BaseSimple
	UserID uuid.UUID `db:"user_id"`
	Day    time.Time `db:"day"`
	Kind   LimitKind `db:"kind"`
	Count  int       `db:"count"`
}

// QuotaDay truncates an instant to the calendar day used for quota
// accounting. Days are computed in UTC so that the cap does not depend on
// the server's local zone.
func QuotaDay(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}

// Cap returns the per-day cap for a limit kind.
func (k LimitKind) Cap() int {
	if k == LimitKindSubmission {
		return MaxSubmissionsPerDay
	}
	return MaxBookingsPerDay
}
