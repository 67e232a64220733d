package postgres

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/stayhub-app/rating-service/internal/domain"
	"github.com/stayhub-app/rating-service/internal/repository/ports"
)

type HostRatingRepository struct {
	db *sqlx.DB
}

func NewHostRatingRepo(db *sqlx.DB) *HostRatingRepository {
	return &HostRatingRepository{db: db}
}

func (r *HostRatingRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.HostRating, error) {
	const query = `
		SELECT id, host_id, guest_id, rating, comment,
		       guest_first_name, guest_last_name, guest_username,
		       created_at, last_changed_at
		FROM host_rating
		WHERE id = $1
	`
	var rating domain.HostRating
	if err := sqlx.GetContext(ctx, ext(ctx, r.db), &rating, query, id); err != nil {
		return nil, err
	}
	return &rating, nil
}

func (r *HostRatingRepository) Insert(ctx context.Context, rating *domain.HostRating) error {
	const query = `
		INSERT INTO host_rating (id, host_id, guest_id, rating, comment,
			guest_first_name, guest_last_name, guest_username,
			created_at, last_changed_at)
		VALUES (:id, :host_id, :guest_id, :rating, :comment,
			:guest_first_name, :guest_last_name, :guest_username,
			:created_at, :last_changed_at)
	`
	_, err := sqlx.NamedExecContext(ctx, ext(ctx, r.db), query, rating)
	return err
}

func (r *HostRatingRepository) Update(ctx context.Context, rating *domain.HostRating) error {
	const query = `
		UPDATE host_rating
		SET rating = :rating,
		    comment = :comment,
		    guest_first_name = :guest_first_name,
		    guest_last_name = :guest_last_name,
		    guest_username = :guest_username,
		    last_changed_at = :last_changed_at
		WHERE id = :id
	`
	result, err := sqlx.NamedExecContext(ctx, ext(ctx, r.db), query, rating)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func (r *HostRatingRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := ext(ctx, r.db).ExecContext(ctx, `DELETE FROM host_rating WHERE id = $1`, id)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func (r *HostRatingRepository) ListByHost(ctx context.Context, hostID uuid.UUID, page domain.PageRequest) ([]domain.HostRating, error) {
	// Tie-break on id so pagination stays stable across pages.
	const query = `
		SELECT id, host_id, guest_id, rating, comment,
		       guest_first_name, guest_last_name, guest_username,
		       created_at, last_changed_at
		FROM host_rating
		WHERE host_id = $1
		ORDER BY created_at DESC, id DESC
		LIMIT $2 OFFSET $3
	`
	rows, err := ext(ctx, r.db).QueryxContext(ctx, query, hostID, page.PageSize, page.Offset())
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ratings []domain.HostRating
	for rows.Next() {
		var rating domain.HostRating
		if err := rows.StructScan(&rating); err != nil {
			return nil, err
		}
		ratings = append(ratings, rating)
	}
	return ratings, rows.Err()
}

func (r *HostRatingRepository) AggregateByHost(ctx context.Context, hostID uuid.UUID) (ports.RatingAggregate, error) {
	const query = `
		SELECT COUNT(*)::int AS total, AVG(rating)::float8 AS average
		FROM host_rating
		WHERE host_id = $1
	`
	var row struct {
		Total   int             `db:"total"`
		Average sql.NullFloat64 `db:"average"`
	}
	if err := sqlx.GetContext(ctx, ext(ctx, r.db), &row, query, hostID); err != nil {
		return ports.RatingAggregate{}, err
	}

	agg := ports.RatingAggregate{Total: row.Total}
	if row.Average.Valid {
		avg := row.Average.Float64
		agg.Average = &avg
	}
	return agg, nil
}

var _ ports.HostRatingRepository = (*HostRatingRepository)(nil)
