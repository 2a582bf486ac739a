package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"court-booking/internal/data/entity"
	"court-booking/internal/data/repository"
	"court-booking/internal/dto/request"
	"court-booking/internal/dto/response"
	"court-booking/pkg/database"
	"court-booking/pkg/utils"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
)

type BookingService interface {
	// Reserve admits or rejects a slot request and creates the booking.
	Reserve(ctx context.Context, caller Identity, req *request.ReserveRequest) (*response.BookingResponse, error)

	// Cancel removes a booking. Cancelling an already-gone booking
	// succeeds, so retries and double-clicks are harmless.
	Cancel(ctx context.Context, caller Identity, bookingID string) error

	// ListCourtSlots is the public availability view for one court.
	ListCourtSlots(ctx context.Context, courtID string) ([]response.SlotResponse, error)

	GetUserBookings(ctx context.Context, caller Identity, req *request.PaginatedRequest) (*response.PaginatedResponse[response.BookingResponse], error)
}

type bookingService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewBookingService(repo *repository.Repository, log *zap.Logger) BookingService {
	return &bookingService{
		repo: repo,
		log:  log.With(zap.String("service", "booking")),
	}
}

func (s *bookingService) Reserve(ctx context.Context, caller Identity, req *request.ReserveRequest) (*response.BookingResponse, error) {
	if !caller.Authenticated() {
		return nil, ErrUnauthenticated
	}

	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Reserve validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	courtID, err := uuid.Parse(req.CourtID)
	if err != nil {
		return nil, fmt.Errorf("invalid court ID format %s: %w", req.CourtID, err)
	}

	// The court must exist and be open for public reservations.
	court, err := s.repo.Court.FindByID(ctx, courtID)
	if err != nil {
		return nil, fmt.Errorf("load court: %w", err)
	}
	if court == nil {
		return nil, ErrNotFound
	}
	if !court.Bookable() {
		return nil, ErrCourtNotBookable
	}

	// Best-effort overlap pre-check against every booking on this court.
	// Two half-open intervals conflict iff start < b.end && end > b.start;
	// boundary equality means back-to-back, which is fine.
	existing, err := s.repo.Booking.FindByCourtID(ctx, courtID)
	if err != nil {
		return nil, fmt.Errorf("list court bookings: %w", err)
	}

	for _, b := range existing {
		if b.Overlaps(req.StartTime, req.EndTime) {
			return nil, ErrSlotTaken
		}
	}

	// Daily quota for non-admins: hours booked on the UTC day of the
	// slot's start. Checked before any mutation.
	day := entity.QuotaDay(req.StartTime)
	if !caller.IsAdmin() {
		count, err := s.repo.Limit.CountFor(ctx, caller.UserID, day, entity.LimitKindBooking)
		if err != nil {
			return nil, fmt.Errorf("read booking quota: %w", err)
		}
		if count >= entity.MaxBookingsPerDay {
			return nil, ErrDailyLimitExceeded
		}
	}

	now := time.Now()
	userID := caller.UserID
	booking := &entity.Booking{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		CourtID:   courtID,
		UserID:    &userID,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
	}

	// Quota increment and booking insert commit or fail together. The
	// exclusion constraint on bookings settles races the pre-check above
	// cannot see.
	tx, err := s.repo.DB.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin reserve transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if !caller.IsAdmin() {
		if err := s.repo.Limit.IncrementTx(ctx, tx, caller.UserID, day, entity.LimitKindBooking); err != nil {
			return nil, err
		}
	}

	if err := s.repo.Booking.CreateTx(ctx, tx, booking); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == database.ExclusionViolationCode {
			s.log.Warn("Concurrent reservation lost the race",
				zap.String("court_id", courtID.String()),
				zap.Time("start_time", req.StartTime),
			)
			return nil, ErrSlotTaken
		}
		s.log.Error("Failed to create booking",
			zap.Error(err),
			zap.String("court_id", courtID.String()),
			zap.String("user_id", caller.UserID.String()),
		)
		return nil, fmt.Errorf("create booking: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit reserve transaction: %w", err)
	}

	s.log.Info("Booking created",
		zap.String("booking_id", booking.ID.String()),
		zap.String("court_id", courtID.String()),
		zap.String("user_id", caller.UserID.String()),
		zap.Time("start_time", req.StartTime),
		zap.Time("end_time", req.EndTime),
	)

	resp := response.BookingToResponse(booking)
	return &resp, nil
}

func (s *bookingService) Cancel(ctx context.Context, caller Identity, bookingID string) error {
	if !caller.Authenticated() {
		return ErrUnauthenticated
	}

	id, err := uuid.Parse(bookingID)
	if err != nil {
		return fmt.Errorf("invalid booking ID format %s: %w", bookingID, err)
	}

	booking, err := s.repo.Booking.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("load booking: %w", err)
	}

	// Already gone: idempotent success, and no quota touch, so a retried
	// cancel can never double-decrement.
	if booking == nil {
		return nil
	}

	if !caller.IsAdmin() && !booking.OwnedBy(caller.UserID) {
		return ErrForbidden
	}

	// The quota decrement applies to the booking's owner, not the caller:
	// an admin cancelling a user's booking gives that user the hour back.
	var owner *entity.User
	if booking.UserID != nil {
		owner, err = s.repo.User.FindByID(ctx, *booking.UserID)
		if err != nil {
			return fmt.Errorf("load booking owner: %w", err)
		}
	}

	tx, err := s.repo.DB.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin cancel transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if err := s.repo.Booking.DeleteTx(ctx, tx, id); err != nil {
		s.log.Error("Failed to delete booking",
			zap.Error(err),
			zap.String("booking_id", id.String()),
		)
		return fmt.Errorf("delete booking: %w", err)
	}

	if owner != nil && !owner.IsAdmin() {
		day := entity.QuotaDay(booking.StartTime)
		if err := s.repo.Limit.DecrementTx(ctx, tx, owner.ID, day, entity.LimitKindBooking); err != nil {
			return err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit cancel transaction: %w", err)
	}

	s.log.Info("Booking cancelled",
		zap.String("booking_id", id.String()),
		zap.String("cancelled_by", caller.UserID.String()),
	)

	return nil
}

func (s *bookingService) ListCourtSlots(ctx context.Context, courtID string) ([]response.SlotResponse, error) {
	id, err := uuid.Parse(courtID)
	if err != nil {
		return nil, fmt.Errorf("invalid court ID format %s: %w", courtID, err)
	}

	court, err := s.repo.Court.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("load court: %w", err)
	}
	if court == nil {
		return nil, ErrNotFound
	}

	bookings, err := s.repo.Booking.FindByCourtID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("list court bookings: %w", err)
	}

	slots := make([]response.SlotResponse, 0, len(bookings))
	for _, b := range bookings {
		slots = append(slots, response.BookingToSlot(b))
	}

	return slots, nil
}

func (s *bookingService) GetUserBookings(ctx context.Context, caller Identity, req *request.PaginatedRequest) (*response.PaginatedResponse[response.BookingResponse], error) {
	if !caller.Authenticated() {
		return nil, ErrUnauthenticated
	}

	limit := req.Limit()
	offset := req.Offset()

	bookings, err := s.repo.Booking.FindByUserID(ctx, caller.UserID, limit, offset)
	if err != nil {
		s.log.Error("Failed to get user bookings",
			zap.Error(err),
			zap.String("user_id", caller.UserID.String()),
		)
		return nil, fmt.Errorf("get user bookings: %w", err)
	}

	total, err := s.repo.Booking.CountByUserID(ctx, caller.UserID)
	if err != nil {
		return nil, fmt.Errorf("count user bookings: %w", err)
	}

	bookingResponses := make([]response.BookingResponse, len(bookings))
	for i, b := range bookings {
		bookingResponses[i] = response.BookingToResponse(b)
	}

	return response.NewPaginatedResponse(bookingResponses, req.Page, req.PerPage, total), nil
}
