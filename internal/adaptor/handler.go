package adaptor

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"court-booking/internal/data/entity"
	"court-booking/internal/usecase"
	"court-booking/pkg/utils"

	"go.uber.org/zap"
)

type Handler struct {
	Auth    *AuthHandler
	Court   *CourtHandler
	Booking *BookingHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Auth:    NewAuthHandler(service.Auth, log),
		Court:   NewCourtHandler(service.Court, log),
		Booking: NewBookingHandler(service.Booking, log),
	}
}

// callerFromContext rebuilds the explicit caller identity that every
// service call takes. Missing context values mean an anonymous caller.
func callerFromContext(ctx context.Context) usecase.Identity {
	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		return usecase.Anonymous
	}

	role, _ := utils.GetRoleFromContext(ctx)
	return usecase.Identity{
		UserID: userID,
		Role:   entity.UserRole(role),
	}
}

// respondServiceError maps each admission failure kind to its HTTP
// status. Infrastructure errors are logged and reported generically so
// internals never leak to clients.
func respondServiceError(log *zap.Logger, w http.ResponseWriter, err error, operation string) {
	switch {
	case errors.Is(err, usecase.ErrUnauthenticated):
		utils.ResponseUnauthorized(w, "Authentication required")

	case errors.Is(err, usecase.ErrInvalidCredentials):
		utils.ResponseUnauthorized(w, "Invalid credentials")

	case errors.Is(err, usecase.ErrForbidden):
		log.Warn(operation+" forbidden", zap.Error(err))
		utils.ResponseForbidden(w, "You are not allowed to do that")

	case errors.Is(err, usecase.ErrNotFound):
		utils.ResponseNotFound(w, "Resource not found")

	case errors.Is(err, usecase.ErrSlotTaken):
		utils.ResponseConflict(w, "Time slot already booked")

	case errors.Is(err, usecase.ErrCourtNotBookable):
		utils.ResponseConflict(w, "Court is not open for reservations")

	case errors.Is(err, usecase.ErrDailyLimitExceeded):
		utils.ResponseUnprocessable(w, "Daily booking limit reached")

	case errors.Is(err, usecase.ErrDailySubmissionLimitExceeded):
		utils.ResponseUnprocessable(w, "Daily court submission limit reached")

	case errors.Is(err, usecase.ErrInvalidStatus):
		utils.ResponseBadRequest(w, "Status must be one of: pending, approved, rejected", nil)

	case strings.Contains(err.Error(), "validation failed"),
		strings.Contains(err.Error(), "invalid"),
		strings.Contains(err.Error(), "already"):
		log.Warn(operation+" rejected", zap.Error(err))
		utils.ResponseBadRequest(w, err.Error(), nil)

	default:
		log.Error("Failed to "+operation, zap.Error(err))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
