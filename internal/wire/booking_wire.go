package wire

import (
	"court-booking/internal/adaptor"
	"court-booking/internal/data/repository"
	"court-booking/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireBooking(
	r chi.Router,
	bookingHandler *adaptor.BookingHandler,
	repo *repository.Repository,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	// GET /api/courts/{id}/bookings - Availability view for a court
	r.Get("/api/courts/{id}/bookings", bookingHandler.ListCourtSlots)

	// ==================== PROTECTED ROUTES ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, repo.User, log))

		// POST /api/bookings - Reserve a slot
		r.Post("/api/bookings", bookingHandler.Reserve)

		// DELETE /api/bookings/{id} - Cancel a reservation (idempotent)
		r.Delete("/api/bookings/{id}", bookingHandler.Cancel)

		// GET /api/user/bookings - Caller's booking history
		r.Get("/api/user/bookings", bookingHandler.GetUserBookings)
	})
}
