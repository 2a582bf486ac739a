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

type CourtHandler struct {
	service usecase.CourtService
	log     *zap.Logger
}

func NewCourtHandler(service usecase.CourtService, log *zap.Logger) *CourtHandler {
	return &CourtHandler{
		service: service,
		log:     log.With(zap.String("handler", "court")),
	}
}

// ListCourts handles GET /api/courts (public, approved courts only)
func (h *CourtHandler) ListCourts(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	req := &request.PaginatedRequest{
		Page:    utils.ParseInt(query.Get("page"), 1),
		PerPage: utils.ParseInt(query.Get("per_page"), 20),
	}

	courts, err := h.service.ListCourts(r.Context(), req)
	if err != nil {
		respondServiceError(h.log, w, err, "list courts")
		return
	}

	utils.ResponseSuccess(w, "success", courts)
}

// GetCourt handles GET /api/courts/{id} (public)
func (h *CourtHandler) GetCourt(w http.ResponseWriter, r *http.Request) {
	courtID := chi.URLParam(r, "id")
	if courtID == "" {
		utils.ResponseBadRequest(w, "Court ID is required", nil)
		return
	}

	court, err := h.service.GetCourt(r.Context(), courtID)
	if err != nil {
		respondServiceError(h.log, w, err, "get court")
		return
	}

	utils.ResponseSuccess(w, "success", court)
}

// Submit handles POST /api/courts (protected)
func (h *CourtHandler) Submit(w http.ResponseWriter, r *http.Request) {
	caller := callerFromContext(r.Context())

	var req request.SubmitCourtRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	court, err := h.service.Submit(r.Context(), caller, &req)
	if err != nil {
		respondServiceError(h.log, w, err, "submit court")
		return
	}

	utils.ResponseCreated(w, "Court submitted for review", court)
}

// ==================== ADMIN METHODS ====================

// ListAllCourts handles GET /api/admin/courts (admin only)
func (h *CourtHandler) ListAllCourts(w http.ResponseWriter, r *http.Request) {
	caller := callerFromContext(r.Context())

	query := r.URL.Query()
	req := &request.PaginatedRequest{
		Page:    utils.ParseInt(query.Get("page"), 1),
		PerPage: utils.ParseInt(query.Get("per_page"), 20),
	}

	courts, err := h.service.ListAllCourts(r.Context(), caller, query.Get("status"), req)
	if err != nil {
		respondServiceError(h.log, w, err, "list all courts")
		return
	}

	utils.ResponseSuccess(w, "success", courts)
}

// SetStatus handles PUT /api/admin/courts/{id}/status (admin only)
func (h *CourtHandler) SetStatus(w http.ResponseWriter, r *http.Request) {
	caller := callerFromContext(r.Context())

	courtID := chi.URLParam(r, "id")
	if courtID == "" {
		utils.ResponseBadRequest(w, "Court ID is required", nil)
		return
	}

	var req request.SetCourtStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	court, err := h.service.SetStatus(r.Context(), caller, courtID, req.Status)
	if err != nil {
		respondServiceError(h.log, w, err, "set court status")
		return
	}

	utils.ResponseSuccess(w, "Court status updated", court)
}

// Update handles PUT /api/admin/courts/{id} (admin only)
func (h *CourtHandler) Update(w http.ResponseWriter, r *http.Request) {
	caller := callerFromContext(r.Context())

	courtID := chi.URLParam(r, "id")
	if courtID == "" {
		utils.ResponseBadRequest(w, "Court ID is required", nil)
		return
	}

	var req request.UpdateCourtRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	court, err := h.service.Update(r.Context(), caller, courtID, &req)
	if err != nil {
		respondServiceError(h.log, w, err, "update court")
		return
	}

	utils.ResponseSuccess(w, "Court updated", court)
}

// Delete handles DELETE /api/admin/courts/{id} (admin only)
func (h *CourtHandler) Delete(w http.ResponseWriter, r *http.Request) {
	caller := callerFromContext(r.Context())

	courtID := chi.URLParam(r, "id")
	if courtID == "" {
		utils.ResponseBadRequest(w, "Court ID is required", nil)
		return
	}

	if err := h.service.Delete(r.Context(), caller, courtID); err != nil {
		respondServiceError(h.log, w, err, "delete court")
		return
	}

	utils.ResponseSuccess(w, "Court deleted", nil)
}
