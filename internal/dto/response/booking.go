package response

import (
	"time"

	"court-booking/internal/data/entity"
)

type BookingResponse struct {
	ID        string    `json:"id"`
	CourtID   string    `json:"court_id"`
	UserID    *string   `json:"user_id,omitempty"`
	StartTime time.Time `json:"start_time"`
	EndTime   time.Time `json:"end_time"`
	CreatedAt time.Time `json:"created_at"`
}

// SlotResponse is the public availability view of a booking: interval
// only, no owner attribution.
type SlotResponse struct {
	StartTime time.Time `json:"start_time"`
	EndTime   time.Time `json:"end_time"`
}

func BookingToResponse(booking *entity.Booking) BookingResponse {
	resp := BookingResponse{
		ID:        booking.ID.String(),
		CourtID:   booking.CourtID.String(),
		StartTime: booking.StartTime,
		EndTime:   booking.EndTime,
		CreatedAt: booking.CreatedAt,
	}

	if booking.UserID != nil {
		id := booking.UserID.String()
		resp.UserID = &id
	}

	return resp
}

func BookingToSlot(booking *entity.Booking) SlotResponse {
	return SlotResponse{
		StartTime: booking.StartTime,
		EndTime:   booking.EndTime,
	}
}
