package wire

import (
	"court-booking/internal/adaptor"
	"court-booking/internal/data/repository"
	"court-booking/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireCourt(
	r chi.Router,
	courtHandler *adaptor.CourtHandler,
	repo *repository.Repository,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	// GET /api/courts - Browse approved courts
	r.Get("/api/courts", courtHandler.ListCourts)

	// GET /api/courts/{id} - Court detail
	r.Get("/api/courts/{id}", courtHandler.GetCourt)

	// ==================== PROTECTED ROUTES ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, repo.User, log))

		// POST /api/courts - Submit a new listing (enters pending review)
		r.Post("/api/courts", courtHandler.Submit)
	})

	// ==================== ADMIN ROUTES ====================
	r.Route("/api/admin/courts", func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, repo.User, log))
		r.Use(middleware.Admin(log))

		// GET /api/admin/courts - List courts in any status
		r.Get("/", courtHandler.ListAllCourts)

		// PUT /api/admin/courts/{id}/status - Approve/reject/reset a listing
		r.Put("/{id}/status", courtHandler.SetStatus)

		// PUT /api/admin/courts/{id} - Edit court metadata
		r.Put("/{id}", courtHandler.Update)

		// DELETE /api/admin/courts/{id} - Remove a court
		r.Delete("/{id}", courtHandler.Delete)
	})
}
