package postgres

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/stayhub-app/rating-service/internal/domain"
	"github.com/stayhub-app/rating-service/internal/repository/ports"
)

type AccommodationRatingRepository struct {
	db *sqlx.DB
}

func NewAccommodationRatingRepo(db *sqlx.DB) *AccommodationRatingRepository {
	return &AccommodationRatingRepository{db: db}
}

func (r *AccommodationRatingRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.AccommodationRating, error) {
	const query = `
		SELECT id, accommodation_id, guest_id, rating, comment,
		       guest_first_name, guest_last_name, guest_username,
		       created_at, last_changed_at
		FROM accommodation_rating
		WHERE id = $1
	`
	var rating domain.AccommodationRating
	if err := sqlx.GetContext(ctx, ext(ctx, r.db), &rating, query, id); err != nil {
		return nil, err
	}
	return &rating, nil
}

func (r *AccommodationRatingRepository) Insert(ctx context.Context, rating *domain.AccommodationRating) error {
	const query = `
		INSERT INTO accommodation_rating (id, accommodation_id, guest_id, rating, comment,
			guest_first_name, guest_last_name, guest_username,
			created_at, last_changed_at)
		VALUES (:id, :accommodation_id, :guest_id, :rating, :comment,
			:guest_first_name, :guest_last_name, :guest_username,
			:created_at, :last_changed_at)
	`
	_, err := sqlx.NamedExecContext(ctx, ext(ctx, r.db), query, rating)
	return err
}

func (r *AccommodationRatingRepository) Update(ctx context.Context, rating *domain.AccommodationRating) error {
	const query = `
		UPDATE accommodation_rating
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

func (r *AccommodationRatingRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := ext(ctx, r.db).ExecContext(ctx, `DELETE FROM accommodation_rating WHERE id = $1`, id)
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

func (r *AccommodationRatingRepository) ListByAccommodation(ctx context.Context, accommodationID uuid.UUID, page domain.PageRequest) ([]domain.AccommodationRating, error) {
	const query = `
		SELECT id, accommodation_id, guest_id, rating, comment,
		       guest_first_name, guest_last_name, guest_username,
		       created_at, last_changed_at
		FROM accommodation_rating
		WHERE accommodation_id = $1
		ORDER BY created_at DESC, id DESC
		LIMIT $2 OFFSET $3
	`
	rows, err := ext(ctx, r.db).QueryxContext(ctx, query, accommodationID, page.PageSize, page.Offset())
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ratings []domain.AccommodationRating
	for rows.Next() {
		var rating domain.AccommodationRating
		if err := rows.StructScan(&rating); err != nil {
			return nil, err
		}
		ratings = append(ratings, rating)
	}
	return ratings, rows.Err()
}

func (r *AccommodationRatingRepository) AggregateByAccommodation(ctx context.Context, accommodationID uuid.UUID) (ports.RatingAggregate, error) {
	const query = `
		SELECT COUNT(*)::int AS total, AVG(rating)::float8 AS average
		FROM accommodation_rating
		WHERE accommodation_id = $1
	`
	var row struct {
		Total   int             `db:"total"`
		Average sql.NullFloat64 `db:"average"`
	}
	if err := sqlx.GetContext(ctx, ext(ctx, r.db), &row, query, accommodationID); err != nil {
		return ports.RatingAggregate{}, err
	}

	agg := ports.RatingAggregate{Total: row.Total}
	if row.Average.Valid {
		avg := row.Average.Float64
		agg.Average = &avg
	}
	return agg, nil
}

var _ ports.AccommodationRatingRepository = (*AccommodationRatingRepository)(nil)
