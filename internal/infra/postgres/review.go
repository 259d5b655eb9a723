package postgres

import (
	"context"
	"time"

	"stayfinder/internal/domain/review"
	"stayfinder/internal/infra"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ReviewRepository struct {
	pool    *pgxpool.Pool
	timeout time.Duration
}

func NewReviewRepository(pool *pgxpool.Pool, timeout time.Duration) *ReviewRepository {
	return &ReviewRepository{pool: pool, timeout: timeout}
}

// Create inserts the review and refreshes the hotel's review count and
// average rating in the same transaction, so readers never observe the
// review without the updated aggregate.
func (r *ReviewRepository) Create(ctx context.Context, rv *review.Review) error {
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return mapPgErr("failed to begin transaction", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	_, err = tx.Exec(ctx, insertReviewSQL,
		rv.ID(), rv.UserID(), rv.HotelID(), rv.Rating().Value(), rv.Comment(), rv.CreatedAt())
	if err != nil {
		return mapPgErr("failed to create review", err)
	}

	if _, err := tx.Exec(ctx, refreshHotelReviewStatsSQL, rv.HotelID()); err != nil {
		return mapPgErr("failed to refresh hotel review stats", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return mapPgErr("failed to commit review", err)
	}
	return nil
}

func (r *ReviewRepository) ListByHotel(ctx context.Context, hotelID uuid.UUID) ([]*review.Review, error) {
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	rows, err := r.pool.Query(ctx, listReviewsByHotelSQL, hotelID)
	if err != nil {
		return nil, mapPgErr("failed to list reviews", err)
	}
	defer rows.Close()

	var out []*review.Review
	for rows.Next() {
		var (
			id        uuid.UUID
			userID    uuid.UUID
			hID       uuid.UUID
			rating    int
			comment   *string
			createdAt time.Time
		)
		if err := rows.Scan(&id, &userID, &hID, &rating, &comment, &createdAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan review", err)
		}
		rt, err := review.NewRating(rating)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan review", err)
		}
		out = append(out, review.Reconstruct(id, userID, hID, rt, comment, createdAt))
	}
	if err := rows.Err(); err != nil {
		return nil, mapPgErr("failed to list reviews", err)
	}
	return out, nil
}
