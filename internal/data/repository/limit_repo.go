package repository

import (
	"context"
	"fmt"
	"time"

	"court-booking/internal/data/entity"
	"court-booking/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type LimitRepository interface {
	CountFor(ctx context.Context, userID uuid.UUID, day time.Time, kind entity.LimitKind) (int, error)
	IncrementTx(ctx context.Context, tx pgx.Tx, userID uuid.UUID, day time.Time, kind entity.LimitKind) error
	DecrementTx(ctx context.Context, tx pgx.Tx, userID uuid.UUID, day time.Time, kind entity.LimitKind) error
}

type limitRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewLimitRepository(db database.PgxIface, log *zap.Logger) LimitRepository {
	return &limitRepository{
		db:  db,
		log: log.With(zap.String("repository", "limit")),
	}
}

// CountFor returns the current counter for (user, day, kind). A missing
// row counts as zero; it is only created once the user actually books or
// submits something that day.
func (r *limitRepository) CountFor(ctx context.Context, userID uuid.UUID, day time.Time, kind entity.LimitKind) (int, error) {
	query := `
		SELECT count FROM daily_limits
		WHERE user_id = $1 AND day = $2 AND kind = $3
	`

	var count int
	err := r.db.QueryRow(ctx, query, userID, day, kind).Scan(&count)
	if err == pgx.ErrNoRows {
		return 0, nil
	}
	if err != nil {
		r.log.Error("Failed to read daily limit",
			zap.Error(err),
			zap.String("user_id", userID.String()),
			zap.String("kind", string(kind)),
		)
		return 0, fmt.Errorf("read daily limit for %s: %w", userID.String(), err)
	}

	return count, nil
}

const limitUpsert = `
	INSERT INTO daily_limits (id, user_id, day, kind, count, created_at)
	VALUES ($1, $2, $3, $4, 1, $5)
	ON CONFLICT (user_id, day, kind)
	DO UPDATE SET count = daily_limits.count + 1
`

// IncrementTx creates the counter row with count 1 or bumps an existing
// one, inside the caller's transaction.
func (r *limitRepository) IncrementTx(ctx context.Context, tx pgx.Tx, userID uuid.UUID, day time.Time, kind entity.LimitKind) error {
	_, err := tx.Exec(ctx, limitUpsert, uuid.New(), userID, day, kind, time.Now())
	if err != nil {
		return fmt.Errorf("increment %s limit for %s: %w", string(kind), userID.String(), err)
	}
	return nil
}

// DecrementTx lowers the counter, flooring at zero. Decrementing a
// missing row is a no-op so repeated cancellations stay idempotent.
func (r *limitRepository) DecrementTx(ctx context.Context, tx pgx.Tx, userID uuid.UUID, day time.Time, kind entity.LimitKind) error {
	query := `
		UPDATE daily_limits
		SET count = GREATEST(count - 1, 0)
		WHERE user_id = $1 AND day = $2 AND kind = $3
	`

	_, err := tx.Exec(ctx, query, userID, day, kind)
	if err != nil {
		return fmt.Errorf("decrement %s limit for %s: %w", string(kind), userID.String(), err)
	}
	return nil
}
