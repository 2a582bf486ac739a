package usecase

import (
	"context"
	"time"

	"court-booking/internal/data/entity"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/mock"
)

// stubTx satisfies pgx.Tx for service tests. Only Commit and Rollback
// are real; repository calls inside the transaction hit the mocks.
type stubTx struct {
	pgx.Tx
	committed  bool
	rolledBack bool
}

func (t *stubTx) Commit(ctx context.Context) error {
	t.committed = true
	return nil
}

func (t *stubTx) Rollback(ctx context.Context) error {
	if !t.committed {
		t.rolledBack = true
	}
	return nil
}

// stubDB hands out a stubTx from Begin. The query methods are never
// reached in service tests because every repository is mocked.
type stubDB struct {
	tx       *stubTx
	beginErr error
	begun    int
}

func newStubDB() *stubDB {
	return &stubDB{tx: &stubTx{}}
}

func (d *stubDB) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return nil, nil
}

func (d *stubDB) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	return nil
}

func (d *stubDB) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, nil
}

func (d *stubDB) Begin(ctx context.Context) (pgx.Tx, error) {
	if d.beginErr != nil {
		return nil, d.beginErr
	}
	d.begun++
	return d.tx, nil
}

func (d *stubDB) Ping(ctx context.Context) error { return nil }

func (d *stubDB) Close() {}

type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) Create(ctx context.Context, user *entity.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserRepo) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserRepo) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

type MockSessionRepo struct {
	mock.Mock
}

func (m *MockSessionRepo) Create(ctx context.Context, session *entity.Session) error {
	args := m.Called(ctx, session)
	return args.Error(0)
}

func (m *MockSessionRepo) FindValidSession(ctx context.Context, token string) (*entity.Session, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Session), args.Error(1)
}

func (m *MockSessionRepo) Revoke(ctx context.Context, token string) error {
	args := m.Called(ctx, token)
	return args.Error(0)
}

func (m *MockSessionRepo) CleanExpiredSessions(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

type MockCourtRepo struct {
	mock.Mock
}

func (m *MockCourtRepo) Create(ctx context.Context, court *entity.Court) error {
	args := m.Called(ctx, court)
	return args.Error(0)
}

func (m *MockCourtRepo) CreateTx(ctx context.Context, tx pgx.Tx, court *entity.Court) error {
	args := m.Called(ctx, tx, court)
	return args.Error(0)
}

func (m *MockCourtRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Court, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Court), args.Error(1)
}

func (m *MockCourtRepo) FindAll(ctx context.Context, statusFilter *entity.CourtStatus, limit, offset int) ([]*entity.Court, error) {
	args := m.Called(ctx, statusFilter, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Court), args.Error(1)
}

func (m *MockCourtRepo) CountAll(ctx context.Context, statusFilter *entity.CourtStatus) (int64, error) {
	args := m.Called(ctx, statusFilter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCourtRepo) Update(ctx context.Context, court *entity.Court) error {
	args := m.Called(ctx, court)
	return args.Error(0)
}

func (m *MockCourtRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.CourtStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

func (m *MockCourtRepo) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockBookingRepo struct {
	mock.Mock
}

func (m *MockBookingRepo) Create(ctx context.Context, booking *entity.Booking) error {
	args := m.Called(ctx, booking)
	return args.Error(0)
}

func (m *MockBookingRepo) CreateTx(ctx context.Context, tx pgx.Tx, booking *entity.Booking) error {
	args := m.Called(ctx, tx, booking)
	return args.Error(0)
}

func (m *MockBookingRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Booking), args.Error(1)
}

func (m *MockBookingRepo) FindByCourtID(ctx context.Context, courtID uuid.UUID) ([]*entity.Booking, error) {
	args := m.Called(ctx, courtID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Booking), args.Error(1)
}

func (m *MockBookingRepo) FindByUserID(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.Booking, error) {
	args := m.Called(ctx, userID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Booking), args.Error(1)
}

func (m *MockBookingRepo) CountByUserID(ctx context.Context, userID uuid.UUID) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockBookingRepo) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockBookingRepo) DeleteTx(ctx context.Context, tx pgx.Tx, id uuid.UUID) error {
	args := m.Called(ctx, tx, id)
	return args.Error(0)
}

type MockLimitRepo struct {
	mock.Mock
}

func (m *MockLimitRepo) CountFor(ctx context.Context, userID uuid.UUID, day time.Time, kind entity.LimitKind) (int, error) {
	args := m.Called(ctx, userID, day, kind)
	return args.Int(0), args.Error(1)
}

func (m *MockLimitRepo) IncrementTx(ctx context.Context, tx pgx.Tx, userID uuid.UUID, day time.Time, kind entity.LimitKind) error {
	args := m.Called(ctx, tx, userID, day, kind)
	return args.Error(0)
}

func (m *MockLimitRepo) DecrementTx(ctx context.Context, tx pgx.Tx, userID uuid.UUID, day time.Time, kind entity.LimitKind) error {
	args := m.Called(ctx, tx, userID, day, kind)
	return args.Error(0)
}
