package entity

import (
	"time"

	"github.com/google/uuid"
)

// Booking is a reserved slot on a court. Slots are half-open intervals
// [StartTime, EndTime); product rules keep them exactly one hour long,
// but the entity only requires StartTime < EndTime.
//
// UserID is nullable: bookings imported from the legacy flat-file store
// carry no owner.
type Booking struct {
	Base
	CourtID   uuid.UUID  `db:"court_id"`
	UserID    *uuid.UUID `db:"user_id"`
	StartTime time.Time  `db:"start_time"`
	EndTime   time.Time  `db:"end_time"`
}

// Overlaps reports whether the half-open intervals [b.StartTime, b.EndTime)
// and [start, end) intersect. Boundary equality is not an overlap, so
// back-to-back slots are compatible.
func (b *Booking) Overlaps(start, end time.Time) bool {
	return start.Before(b.EndTime) && end.After(b.StartTime)
}

// OwnedBy reports whether the booking belongs to the given user.
// Legacy ownerless bookings belong to nobody.
func (b *Booking) OwnedBy(userID uuid.UUID) bool {
	return b.UserID != nil && *b.UserID == userID
}
