package usecase

import (
	"context"
	"fmt"
	"time"

	"court-booking/internal/data/entity"
	"court-booking/internal/data/repository"
	"court-booking/internal/dto/request"
	"court-booking/internal/dto/response"
	"court-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type CourtService interface {
	// Public browsing: approved courts only.
	ListCourts(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.CourtResponse], error)
	GetCourt(ctx context.Context, courtID string) (*response.CourtResponse, error)

	// Submit creates a pending listing, subject to the daily
	// submission quota for non-admins.
	Submit(ctx context.Context, caller Identity, req *request.SubmitCourtRequest) (*response.CourtResponse, error)

	// Admin management.
	ListAllCourts(ctx context.Context, caller Identity, statusFilter string, req *request.PaginatedRequest) (*response.PaginatedResponse[response.CourtResponse], error)
	SetStatus(ctx context.Context, caller Identity, courtID, status string) (*response.CourtResponse, error)
	Update(ctx context.Context, caller Identity, courtID string, req *request.UpdateCourtRequest) (*response.CourtResponse, error)
	Delete(ctx context.Context, caller Identity, courtID string) error
}

type courtService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewCourtService(repo *repository.Repository, log *zap.Logger) CourtService {
	return &courtService{
		repo: repo,
		log:  log.With(zap.String("service", "court")),
	}
}

func (s *courtService) ListCourts(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.CourtResponse], error) {
	approved := entity.CourtStatusApproved
	return s.listCourts(ctx, &approved, req)
}

func (s *courtService) GetCourt(ctx context.Context, courtID string) (*response.CourtResponse, error) {
	id, err := uuid.Parse(courtID)
	if err != nil {
		return nil, fmt.Errorf("invalid court ID format %s: %w", courtID, err)
	}

	court, err := s.repo.Court.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("load court: %w", err)
	}

	// Pending and rejected listings are invisible to the public flow.
	if court == nil || court.Status != entity.CourtStatusApproved {
		return nil, ErrNotFound
	}

	resp := response.CourtToResponse(court)
	return &resp, nil
}

func (s *courtService) Submit(ctx context.Context, caller Identity, req *request.SubmitCourtRequest) (*response.CourtResponse, error) {
	if !caller.Authenticated() {
		return nil, ErrUnauthenticated
	}

	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Submit court validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	// Submission quota mirrors the booking quota, with a higher cap and
	// counted on the day the submission is made.
	day := entity.QuotaDay(time.Now())
	if !caller.IsAdmin() {
		count, err := s.repo.Limit.CountFor(ctx, caller.UserID, day, entity.LimitKindSubmission)
		if err != nil {
			return nil, fmt.Errorf("read submission quota: %w", err)
		}
		if count >= entity.MaxSubmissionsPerDay {
			return nil, ErrDailySubmissionLimitExceeded
		}
	}

	now := time.Now()
	submitter := caller.UserID
	court := &entity.Court{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Name:                req.Name,
		Address:             req.Address,
		Description:         req.Description,
		ImageURL:            req.ImageURL,
		Latitude:            req.Latitude,
		Longitude:           req.Longitude,
		Features:            req.Features,
		OpeningHours:        convertOpeningHours(req.OpeningHours),
		Status:              entity.CourtStatusPending,
		ReservationsEnabled: true,
		SubmittedBy:         &submitter,
	}

	tx, err := s.repo.DB.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin submit transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if !caller.IsAdmin() {
		if err := s.repo.Limit.IncrementTx(ctx, tx, caller.UserID, day, entity.LimitKindSubmission); err != nil {
			return nil, err
		}
	}

	if err := s.repo.Court.CreateTx(ctx, tx, court); err != nil {
		s.log.Error("Failed to create court submission",
			zap.Error(err),
			zap.String("user_id", caller.UserID.String()),
			zap.String("name", req.Name),
		)
		return nil, fmt.Errorf("create court submission: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit submit transaction: %w", err)
	}

	s.log.Info("Court submitted for review",
		zap.String("court_id", court.ID.String()),
		zap.String("user_id", caller.UserID.String()),
		zap.String("name", court.Name),
	)

	resp := response.CourtToResponse(court)
	return &resp, nil
}

func (s *courtService) ListAllCourts(ctx context.Context, caller Identity, statusFilter string, req *request.PaginatedRequest) (*response.PaginatedResponse[response.CourtResponse], error) {
	if !caller.Authenticated() {
		return nil, ErrUnauthenticated
	}
	if !caller.IsAdmin() {
		return nil, ErrForbidden
	}

	var filter *entity.CourtStatus
	if statusFilter != "" {
		status, ok := entity.ParseCourtStatus(statusFilter)
		if !ok {
			return nil, ErrInvalidStatus
		}
		filter = &status
	}

	return s.listCourts(ctx, filter, req)
}

// SetStatus relabels a court. Any status may move to any other status:
// approval is reversible and a rejected listing can be resurrected.
func (s *courtService) SetStatus(ctx context.Context, caller Identity, courtID, status string) (*response.CourtResponse, error) {
	if !caller.Authenticated() {
		return nil, ErrUnauthenticated
	}
	if !caller.IsAdmin() {
		return nil, ErrForbidden
	}

	newStatus, ok := entity.ParseCourtStatus(status)
	if !ok {
		return nil, ErrInvalidStatus
	}

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

	if err := s.repo.Court.UpdateStatus(ctx, id, newStatus); err != nil {
		return nil, fmt.Errorf("update court status: %w", err)
	}

	s.log.Info("Court status changed",
		zap.String("court_id", id.String()),
		zap.String("from", string(court.Status)),
		zap.String("to", string(newStatus)),
		zap.String("changed_by", caller.UserID.String()),
	)

	court.Status = newStatus
	resp := response.CourtToResponse(court)
	return &resp, nil
}

func (s *courtService) Update(ctx context.Context, caller Identity, courtID string, req *request.UpdateCourtRequest) (*response.CourtResponse, error) {
	if !caller.Authenticated() {
		return nil, ErrUnauthenticated
	}
	if !caller.IsAdmin() {
		return nil, ErrForbidden
	}

	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update court validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

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

	if req.Name != nil {
		court.Name = *req.Name
	}
	if req.Address != nil {
		court.Address = *req.Address
	}
	if req.Description != nil {
		court.Description = req.Description
	}
	if req.ImageURL != nil {
		court.ImageURL = req.ImageURL
	}
	if req.Latitude != nil {
		court.Latitude = *req.Latitude
	}
	if req.Longitude != nil {
		court.Longitude = *req.Longitude
	}
	if req.Features != nil {
		court.Features = req.Features
	}
	if req.OpeningHours != nil {
		court.OpeningHours = convertOpeningHours(req.OpeningHours)
	}
	if req.ReservationsEnabled != nil {
		court.ReservationsEnabled = *req.ReservationsEnabled
	}

	if err := s.repo.Court.Update(ctx, court); err != nil {
		return nil, fmt.Errorf("update court: %w", err)
	}

	s.log.Info("Court updated",
		zap.String("court_id", id.String()),
		zap.String("updated_by", caller.UserID.String()),
	)

	resp := response.CourtToResponse(court)
	return &resp, nil
}

func (s *courtService) Delete(ctx context.Context, caller Identity, courtID string) error {
	if !caller.Authenticated() {
		return ErrUnauthenticated
	}
	if !caller.IsAdmin() {
		return ErrForbidden
	}

	id, err := uuid.Parse(courtID)
	if err != nil {
		return fmt.Errorf("invalid court ID format %s: %w", courtID, err)
	}

	court, err := s.repo.Court.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("load court: %w", err)
	}
	if court == nil {
		return ErrNotFound
	}

	if err := s.repo.Court.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete court: %w", err)
	}

	return nil
}

func (s *courtService) listCourts(ctx context.Context, filter *entity.CourtStatus, req *request.PaginatedRequest) (*response.PaginatedResponse[response.CourtResponse], error) {
	limit := req.Limit()
	offset := req.Offset()

	courts, err := s.repo.Court.FindAll(ctx, filter, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list courts: %w", err)
	}

	total, err := s.repo.Court.CountAll(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("count courts: %w", err)
	}

	courtResponses := make([]response.CourtResponse, len(courts))
	for i, c := range courts {
		courtResponses[i] = response.CourtToResponse(c)
	}

	return response.NewPaginatedResponse(courtResponses, req.Page, req.PerPage, total), nil
}

func convertOpeningHours(in map[string]request.HoursRangeRequest) entity.OpeningHours {
	if in == nil {
		return nil
	}

	hours := make(entity.OpeningHours, len(in))
	for day, r := range in {
		hours[day] = entity.HoursRange{Open: r.Open, Close: r.Close}
	}
	return hours
}
