package repository

import (
	"court-booking/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	// DB is exposed so services can open transactions spanning
	// multiple repositories (booking + daily limit).
	DB database.PgxIface

	User    UserRepository
	Session SessionRepository
	Court   CourtRepository
	Booking BookingRepository
	Limit   LimitRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		DB:      db,
		User:    NewUserRepository(db, log),
		Session: NewSessionRepository(db, log),
		Court:   NewCourtRepository(db, log),
		Booking: NewBookingRepository(db, log),
		Limit:   NewLimitRepository(db, log),
	}
}
