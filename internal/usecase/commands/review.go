package commands

import (
	"context"
	"log/slog"

	"stayfinder/internal/domain/review"
	"stayfinder/internal/pkg/clock"
	"stayfinder/internal/pkg/errs"
	"stayfinder/internal/usecase/queries"
	"stayfinder/internal/usecase/shared"

	"github.com/google/uuid"
)

type ReviewCommands interface {
	AddReview(ctx context.Context, userID, hotelID uuid.UUID, rating int, comment *string) (*review.Review, error)
}

type reviewCommandsImpl struct {
	reviews   shared.ReviewRepository
	inventory shared.InventoryRepository
	cache     shared.Cache
	clock     clock.Clock
}

func NewReviewCommands(reviews shared.ReviewRepository, inventory shared.InventoryRepository, cache shared.Cache, clk clock.Clock) ReviewCommands {
	return &reviewCommandsImpl{
		reviews:   reviews,
		inventory: inventory,
		cache:     cache,
		clock:     clk,
	}
}

// AddReview persists the review together with the hotel's refreshed review
// aggregate; the repository guarantees the pair lands atomically.
func (c *reviewCommandsImpl) AddReview(ctx context.Context, userID, hotelID uuid.UUID, rating int, comment *string) (*review.Review, error) {
	if _, err := c.inventory.FindHotelByID(ctx, hotelID); err != nil {
		return nil, shared.MapRepoErr(err, shared.ErrHotelNotFound)
	}

	r, err := review.New(userID, hotelID, rating, comment, c.clock.Now())
	if err != nil {
		return nil, errs.Mark(err, shared.ErrValidation)
	}

	if err := c.reviews.Create(ctx, r); err != nil {
		return nil, shared.MapRepoErr(err, shared.ErrHotelNotFound)
	}

	if err := c.cache.Del(ctx, queries.HotelCacheKey(hotelID)); err != nil {
		slog.Warn("failed to invalidate hotel cache", "hotel_id", hotelID, "error", err.Error())
	}

	return r, nil
}
