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

type CourtRepository interface {
	Create(ctx context.Context, court *entity.Court) error
	CreateTx(ctx context.Context, tx pgx.Tx, court *entity.Court) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Court, error)
	FindAll(ctx context.Context, statusFilter *entity.CourtStatus, limit, offset int) ([]*entity.Court, error)
	CountAll(ctx context.Context, statusFilter *entity.CourtStatus) (int64, error)
	Update(ctx context.Context, court *entity.Court) error
	UpdateStatus(ctx context.Context, id uuid.UUID, status entity.CourtStatus) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type courtRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewCourtRepository(db database.PgxIface, log *zap.Logger) CourtRepository {
	return &courtRepository{
		db:  db,
		log: log.With(zap.String("repository", "court")),
	}
}

const courtColumns = `id, name, address, description, image_url, latitude, longitude,
	       features, opening_hours, status, reservations_enabled, submitted_by,
	       created_at, updated_at`

const courtInsert = `
	INSERT INTO courts (id, name, address, description, image_url, latitude, longitude,
	                    features, opening_hours, status, reservations_enabled, submitted_by,
	                    created_at, updated_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
`

func (r *courtRepository) Create(ctx context.Context, court *entity.Court) error {
	_, err := r.db.Exec(ctx, courtInsert,
		court.ID,
		court.Name,
		court.Address,
		court.Description,
		court.ImageURL,
		court.Latitude,
		court.Longitude,
		court.Features,
		court.OpeningHours,
		court.Status,
		court.ReservationsEnabled,
		court.SubmittedBy,
		court.CreatedAt,
		court.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create court",
			zap.Error(err),
			zap.String("name", court.Name),
		)
		return fmt.Errorf("create court %s: %w", court.Name, err)
	}

	return nil
}

// CreateTx inserts inside an open transaction, paired with the
// submission-quota increment.
func (r *courtRepository) CreateTx(ctx context.Context, tx pgx.Tx, court *entity.Court) error {
	_, err := tx.Exec(ctx, courtInsert,
		court.ID,
		court.Name,
		court.Address,
		court.Description,
		court.ImageURL,
		court.Latitude,
		court.Longitude,
		court.Features,
		court.OpeningHours,
		court.Status,
		court.ReservationsEnabled,
		court.SubmittedBy,
		court.CreatedAt,
		court.UpdatedAt,
	)
	return err
}

func (r *courtRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Court, error) {
	query := `SELECT ` + courtColumns + ` FROM courts WHERE id = $1`

	court, err := r.scanCourt(r.db.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find court by ID",
			zap.Error(err),
			zap.String("court_id", id.String()),
		)
		return nil, fmt.Errorf("find court by ID %s: %w", id.String(), err)
	}

	return court, nil
}

func (r *courtRepository) FindAll(ctx context.Context, statusFilter *entity.CourtStatus, limit, offset int) ([]*entity.Court, error) {
	query := `SELECT ` + courtColumns + ` FROM courts`
	args := []any{}

	if statusFilter != nil {
		query += ` WHERE status = $1`
		args = append(args, *statusFilter)
	}

	query += fmt.Sprintf(` ORDER BY created_at DESC LIMIT $%d OFFSET $%d`, len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		r.log.Error("Failed to find courts", zap.Error(err))
		return nil, fmt.Errorf("find courts: %w", err)
	}
	defer rows.Close()

	var courts []*entity.Court
	for rows.Next() {
		court, err := r.scanCourt(rows)
		if err != nil {
			r.log.Error("Failed to scan court row", zap.Error(err))
			return nil, fmt.Errorf("scan court row: %w", err)
		}
		courts = append(courts, court)
	}

	return courts, nil
}

func (r *courtRepository) CountAll(ctx context.Context, statusFilter *entity.CourtStatus) (int64, error) {
	query := `SELECT COUNT(*) FROM courts`
	args := []any{}

	if statusFilter != nil {
		query += ` WHERE status = $1`
		args = append(args, *statusFilter)
	}

	var count int64
	err := r.db.QueryRow(ctx, query, args...).Scan(&count)
	if err != nil {
		r.log.Error("Failed to count courts", zap.Error(err))
		return 0, fmt.Errorf("count courts: %w", err)
	}

	return count, nil
}

func (r *courtRepository) Update(ctx context.Context, court *entity.Court) error {
	query := `
		UPDATE courts
		SET name = $2, address = $3, description = $4, image_url = $5,
		    latitude = $6, longitude = $7, features = $8, opening_hours = $9,
		    reservations_enabled = $10, updated_at = $11
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		court.ID,
		court.Name,
		court.Address,
		court.Description,
		court.ImageURL,
		court.Latitude,
		court.Longitude,
		court.Features,
		court.OpeningHours,
		court.ReservationsEnabled,
		time.Now(),
	)

	if err != nil {
		r.log.Error("Failed to update court",
			zap.Error(err),
			zap.String("court_id", court.ID.String()),
		)
		return fmt.Errorf("update court %s: %w", court.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("court %s not found", court.ID.String())
	}

	return nil
}

func (r *courtRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.CourtStatus) error {
	query := `UPDATE courts SET status = $2, updated_at = NOW() WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id, status)
	if err != nil {
		r.log.Error("Failed to update court status",
			zap.Error(err),
			zap.String("court_id", id.String()),
			zap.String("status", string(status)),
		)
		return fmt.Errorf("update court %s status to %s: %w", id.String(), string(status), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("court %s not found", id.String())
	}

	return nil
}

func (r *courtRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM courts WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete court",
			zap.Error(err),
			zap.String("court_id", id.String()),
		)
		return fmt.Errorf("delete court %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("court %s not found", id.String())
	}

	r.log.Info("Court deleted", zap.String("court_id", id.String()))
	return nil
}

// scanCourt reads one court row; features and opening_hours are JSONB and
// decoded by the pgx JSON codec directly into the Go types.
func (r *courtRepository) scanCourt(row pgx.Row) (*entity.Court, error) {
	var court entity.Court
	err := row.Scan(
		&court.ID,
		&court.Name,
		&court.Address,
		&court.Description,
		&court.ImageURL,
		&court.Latitude,
		&court.Longitude,
		&court.Features,
		&court.OpeningHours,
		&court.Status,
		&court.ReservationsEnabled,
		&court.SubmittedBy,
		&court.CreatedAt,
		&court.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &court, nil
}
