package queries

import (
	"context"

	"stayfinder/internal/domain/review"
	"stayfinder/internal/usecase/shared"

	"github.com/google/uuid"
)

type ReviewQueries interface {
	// ListByHotel fails with hotel-not-found for an unknown hotel id and
	// returns an empty slice for a known hotel with no reviews.
	ListByHotel(ctx context.Context, hotelID uuid.UUID) ([]*review.Review, error)
}

type reviewQueriesImpl struct {
	reviews   shared.ReviewRepository
	inventory shared.InventoryRepository
}

func NewReviewQueries(reviews shared.ReviewRepository, inventory shared.InventoryRepository) ReviewQueries {
	return &reviewQueriesImpl{
		reviews:   reviews,
		inventory: inventory,
	}
}

func (q *reviewQueriesImpl) ListByHotel(ctx context.Context, hotelID uuid.UUID) ([]*review.Review, error) {
	if _, err := q.inventory.FindHotelByID(ctx, hotelID); err != nil {
		return nil, shared.MapRepoErr(err, shared.ErrHotelNotFound)
	}

	list, err := q.reviews.ListByHotel(ctx, hotelID)
	if err != nil {
		return nil, shared.MapRepoErr(err, shared.ErrStorageUnavailable)
	}
	return list, nil
}
