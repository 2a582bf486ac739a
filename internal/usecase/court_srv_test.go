package usecase

import (
	"context"
	"testing"
	"time"

	"court-booking/internal/data/entity"
	"court-booking/internal/data/repository"
	"court-booking/internal/dto/request"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type courtFixture struct {
	db      *stubDB
	courts  *MockCourtRepo
	limits  *MockLimitRepo
	service CourtService
}

func newCourtFixture() *courtFixture {
	f := &courtFixture{
		db:     newStubDB(),
		courts: new(MockCourtRepo),
		limits: new(MockLimitRepo),
	}

	repo := &repository.Repository{
		DB:    f.db,
		Court: f.courts,
		Limit: f.limits,
	}
	f.service = NewCourtService(repo, zap.NewNop())

	return f
}

func validSubmission() *request.SubmitCourtRequest {
	return &request.SubmitCourtRequest{
		Name:      "Riverside Tennis Club",
		Address:   "42 River Road",
		Latitude:  52.52,
		Longitude: 13.405,
		Features:  []string{"lights", "clay"},
		OpeningHours: map[string]request.HoursRangeRequest{
			"monday": {Open: "08:00", Close: "22:00"},
		},
	}
}

func TestSubmit_CreatesPendingCourt(t *testing.T) {
	f := newCourtFixture()
	caller := userCaller()
	day := entity.QuotaDay(time.Now())

	f.limits.On("CountFor", mock.Anything, caller.UserID, day, entity.LimitKindSubmission).Return(0, nil)
	f.limits.On("IncrementTx", mock.Anything, mock.Anything, caller.UserID, day, entity.LimitKindSubmission).Return(nil)

	var created *entity.Court
	f.courts.On("CreateTx", mock.Anything, mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			created = args.Get(2).(*entity.Court)
		}).
		Return(nil)

	resp, err := f.service.Submit(context.Background(), caller, validSubmission())

	require.NoError(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, entity.CourtStatusPending, resp.Status)
	assert.True(t, f.db.tx.committed)

	require.NotNil(t, created)
	require.NotNil(t, created.SubmittedBy)
	assert.Equal(t, caller.UserID, *created.SubmittedBy)
	assert.True(t, created.ReservationsEnabled)
}

func TestSubmit_DailySubmissionLimitExceeded(t *testing.T) {
	f := newCourtFixture()
	caller := userCaller()
	day := entity.QuotaDay(time.Now())

	f.limits.On("CountFor", mock.Anything, caller.UserID, day, entity.LimitKindSubmission).
		Return(entity.MaxSubmissionsPerDay, nil)

	resp, err := f.service.Submit(context.Background(), caller, validSubmission())

	assert.ErrorIs(t, err, ErrDailySubmissionLimitExceeded)
	assert.Nil(t, resp)
	assert.Zero(t, f.db.begun)
	f.courts.AssertNotCalled(t, "CreateTx", mock.Anything, mock.Anything, mock.Anything)
}

func TestSubmit_AdminBypassesSubmissionLimit(t *testing.T) {
	f := newCourtFixture()
	caller := adminCaller()

	f.courts.On("CreateTx", mock.Anything, mock.Anything, mock.Anything).Return(nil)

	resp, err := f.service.Submit(context.Background(), caller, validSubmission())

	require.NoError(t, err)
	require.NotNil(t, resp)
	f.limits.AssertNotCalled(t, "CountFor", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestSubmit_Unauthenticated(t *testing.T) {
	f := newCourtFixture()

	resp, err := f.service.Submit(context.Background(), Anonymous, validSubmission())

	assert.ErrorIs(t, err, ErrUnauthenticated)
	assert.Nil(t, resp)
}

func TestGetCourt_HidesNonApproved(t *testing.T) {
	for _, status := range []entity.CourtStatus{entity.CourtStatusPending, entity.CourtStatusRejected} {
		t.Run(string(status), func(t *testing.T) {
			f := newCourtFixture()
			courtID := uuid.New()
			court := approvedCourt(courtID)
			court.Status = status

			f.courts.On("FindByID", mock.Anything, courtID).Return(court, nil)

			resp, err := f.service.GetCourt(context.Background(), courtID.String())

			assert.ErrorIs(t, err, ErrNotFound)
			assert.Nil(t, resp)
		})
	}
}

func TestGetCourt_ReturnsApproved(t *testing.T) {
	f := newCourtFixture()
	courtID := uuid.New()

	f.courts.On("FindByID", mock.Anything, courtID).Return(approvedCourt(courtID), nil)

	resp, err := f.service.GetCourt(context.Background(), courtID.String())

	require.NoError(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, courtID.String(), resp.ID)
}

func TestSetStatus_NonAdminForbidden(t *testing.T) {
	f := newCourtFixture()

	resp, err := f.service.SetStatus(context.Background(), userCaller(), uuid.New().String(), "approved")

	assert.ErrorIs(t, err, ErrForbidden)
	assert.Nil(t, resp)
	f.courts.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
}

func TestSetStatus_InvalidStatus(t *testing.T) {
	f := newCourtFixture()

	for _, status := range []string{"open", "APPROVED ", "", "deleted"} {
		resp, err := f.service.SetStatus(context.Background(), adminCaller(), uuid.New().String(), status)

		assert.ErrorIs(t, err, ErrInvalidStatus, "status %q should be rejected", status)
		assert.Nil(t, resp)
	}
}

func TestSetStatus_Relabels(t *testing.T) {
	tests := []struct {
		name string
		from entity.CourtStatus
		to   string
		want entity.CourtStatus
	}{
		{name: "approve pending", from: entity.CourtStatusPending, to: "approved", want: entity.CourtStatusApproved},
		{name: "reject pending", from: entity.CourtStatusPending, to: "rejected", want: entity.CourtStatusRejected},
		{name: "resurrect rejected", from: entity.CourtStatusRejected, to: "approved", want: entity.CourtStatusApproved},
		{name: "unapprove", from: entity.CourtStatusApproved, to: "pending", want: entity.CourtStatusPending},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newCourtFixture()
			courtID := uuid.New()
			court := approvedCourt(courtID)
			court.Status = tt.from

			f.courts.On("FindByID", mock.Anything, courtID).Return(court, nil)
			f.courts.On("UpdateStatus", mock.Anything, courtID, tt.want).Return(nil)

			resp, err := f.service.SetStatus(context.Background(), adminCaller(), courtID.String(), tt.to)

			require.NoError(t, err)
			require.NotNil(t, resp)
			assert.Equal(t, tt.want, resp.Status)
			f.courts.AssertExpectations(t)
		})
	}
}

func TestSetStatus_CourtNotFound(t *testing.T) {
	f := newCourtFixture()
	courtID := uuid.New()

	f.courts.On("FindByID", mock.Anything, courtID).Return(nil, nil)

	resp, err := f.service.SetStatus(context.Background(), adminCaller(), courtID.String(), "approved")

	assert.ErrorIs(t, err, ErrNotFound)
	assert.Nil(t, resp)
}

func TestListCourts_OnlyApproved(t *testing.T) {
	f := newCourtFixture()
	approved := entity.CourtStatusApproved

	f.courts.On("FindAll", mock.Anything, &approved, 10, 0).Return([]*entity.Court{approvedCourt(uuid.New())}, nil)
	f.courts.On("CountAll", mock.Anything, &approved).Return(int64(1), nil)

	resp, err := f.service.ListCourts(context.Background(), &request.PaginatedRequest{Page: 1, PerPage: 10})

	require.NoError(t, err)
	require.Len(t, resp.Data, 1)
	f.courts.AssertExpectations(t)
}

func TestListAllCourts_FilterValidation(t *testing.T) {
	f := newCourtFixture()

	resp, err := f.service.ListAllCourts(context.Background(), adminCaller(), "bogus", &request.PaginatedRequest{Page: 1, PerPage: 10})

	assert.ErrorIs(t, err, ErrInvalidStatus)
	assert.Nil(t, resp)
}

func TestListAllCourts_NonAdminForbidden(t *testing.T) {
	f := newCourtFixture()

	resp, err := f.service.ListAllCourts(context.Background(), userCaller(), "", &request.PaginatedRequest{Page: 1, PerPage: 10})

	assert.ErrorIs(t, err, ErrForbidden)
	assert.Nil(t, resp)
}

func TestUpdate_PatchesOnlyProvidedFields(t *testing.T) {
	f := newCourtFixture()
	courtID := uuid.New()
	court := approvedCourt(courtID)
	court.Name = "Old Name"
	court.Address = "Old Address"

	newName := "New Name"
	disabled := false

	f.courts.On("FindByID", mock.Anything, courtID).Return(court, nil)

	var updated *entity.Court
	f.courts.On("Update", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			updated = args.Get(1).(*entity.Court)
		}).
		Return(nil)

	resp, err := f.service.Update(context.Background(), adminCaller(), courtID.String(), &request.UpdateCourtRequest{
		Name:                &newName,
		ReservationsEnabled: &disabled,
	})

	require.NoError(t, err)
	require.NotNil(t, resp)
	require.NotNil(t, updated)
	assert.Equal(t, "New Name", updated.Name)
	assert.Equal(t, "Old Address", updated.Address)
	assert.False(t, updated.ReservationsEnabled)
}

func TestDelete_AdminOnly(t *testing.T) {
	f := newCourtFixture()

	err := f.service.Delete(context.Background(), userCaller(), uuid.New().String())

	assert.ErrorIs(t, err, ErrForbidden)
	f.courts.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestDelete_RemovesCourt(t *testing.T) {
	f := newCourtFixture()
	courtID := uuid.New()

	f.courts.On("FindByID", mock.Anything, courtID).Return(approvedCourt(courtID), nil)
	f.courts.On("Delete", mock.Anything, courtID).Return(nil)

	err := f.service.Delete(context.Background(), adminCaller(), courtID.String())

	require.NoError(t, err)
	f.courts.AssertExpectations(t)
}
