package memory

import (
	"context"

	"stayfinder/internal/domain/review"
	"stayfinder/internal/infra"

	"github.com/google/uuid"
)

type ReviewRepository struct {
	store *Store
}

// Create appends the review and refreshes the hotel's review aggregate in
// the same critical section; a concurrent reader never observes one without
// the other.
func (r *ReviewRepository) Create(_ context.Context, rev *review.Review) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	var target int = -1
	for i, h := range s.hotels {
		if h.ID() == rev.HotelID() {
			target = i
			break
		}
	}
	if target == -1 {
		return infra.WrapRepoErr("hotel not found", nil, infra.KindNotFound)
	}

	s.reviews = append(s.reviews, rev)

	count := 0
	sum := 0
	for _, existing := range s.reviews {
		if existing.HotelID() == rev.HotelID() {
			count++
			sum += existing.Rating().Value()
		}
	}
	avg := float64(sum) / float64(count)
	updated := cloneHotel(s.hotels[target])
	updated.ApplyReviewStats(count, &avg)
	s.hotels[target] = updated

	return nil
}

func (r *ReviewRepository) ListByHotel(_ context.Context, hotelID uuid.UUID) ([]*review.Review, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := []*review.Review{}
	for _, rev := range s.reviews {
		if rev.HotelID() == hotelID {
			result = append(result, rev)
		}
	}
	return result, nil
}
