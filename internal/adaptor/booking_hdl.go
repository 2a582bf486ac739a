package adaptor

import (
	"encoding/json"
	"net/http"

	"court-booking/internal/dto/request"
	"court-booking/internal/usecase"
	"court-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type BookingHandler struct {
	service usecase.BookingService
	log     *zap.Logger
}

func NewBookingHandler(service usecase.BookingService, log *zap.Logger) *BookingHandler {
	return &BookingHandler{
		service: service,
		log:     log.With(zap.String("handler", "booking")),
	}
}

// Reserve handles POST /api/bookings (protected)
func (h *BookingHandler) Reserve(w http.ResponseWriter, r *http.Request) {
	caller := callerFromContext(r.Context())

	var req request.ReserveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	booking, err := h.service.Reserve(r.Context(), caller, &req)
	if err != nil {
		respondServiceError(h.log, w, err, "reserve slot")
		return
	}

	utils.ResponseCreated(w, "Booking confirmed", booking)
}

// Cancel handles DELETE /api/bookings/{id} (protected)
func (h *BookingHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	caller := callerFromContext(r.Context())

	bookingID := chi.URLParam(r, "id")
	if bookingID == "" {
		utils.ResponseBadRequest(w, "Booking ID is required", nil)
		return
	}

	if err := h.service.Cancel(r.Context(), caller, bookingID); err != nil {
		respondServiceError(h.log, w, err, "cancel booking")
		return
	}

	utils.ResponseSuccess(w, "Booking cancelled", nil)
}

// ListCourtSlots handles GET /api/courts/{id}/bookings (public)
func (h *BookingHandler) ListCourtSlots(w http.ResponseWriter, r *http.Request) {
	courtID := chi.URLParam(r, "id")
	if courtID == "" {
		utils.ResponseBadRequest(w, "Court ID is required", nil)
		return
	}

	slots, err := h.service.ListCourtSlots(r.Context(), courtID)
	if err != nil {
		respondServiceError(h.log, w, err, "list court slots")
		return
	}

	utils.ResponseSuccess(w, "success", slots)
}

// GetUserBookings handles GET /api/user/bookings (protected)
func (h *BookingHandler) GetUserBookings(w http.ResponseWriter, r *http.Request) {
	caller := callerFromContext(r.Context())

	query := r.URL.Query()
	req := &request.PaginatedRequest{
		Page:    utils.ParseInt(query.Get("page"), 1),
		PerPage: utils.ParseInt(query.Get("per_page"), 10),
	}

	bookings, err := h.service.GetUserBookings(r.Context(), caller, req)
	if err != nil {
		respondServiceError(h.log, w, err, "get user bookings")
		return
	}

	utils.ResponseSuccess(w, "success", bookings)
}
