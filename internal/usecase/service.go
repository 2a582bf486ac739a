package usecase

import (
	"court-booking/internal/data/repository"
	"court-booking/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Auth    AuthService
	Court   CourtService
	Booking BookingService
}

func NewService(repo *repository.Repository, config *utils.Config, log *zap.Logger) *Service {
	return &Service{
		Auth:    NewAuthService(repo, config, log),
		Court:   NewCourtService(repo, log),
		Booking: NewBookingService(repo, log),
	}
}
