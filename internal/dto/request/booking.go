package request

import (
	"time"
)

// ReserveRequest asks for a slot on a court. The client sends the exact
// interval; the booking form always builds end = start + 1h, but the
// admission check only requires start < end.
type ReserveRequest struct {
	CourtID   string    `json:"court_id" validate:"required,uuid4"`
	StartTime time.Time `json:"start_time" validate:"required"`
	EndTime   time.Time `json:"end_time" validate:"required,gtfield=StartTime"`
}
