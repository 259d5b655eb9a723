package response

import (
	"time"

	"stayfinder/internal/domain/review"

	"github.com/google/uuid"
)

type ReviewResponse struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"userId"`
	HotelID   uuid.UUID `json:"hotelId"`
	Rating    int       `json:"rating"`
	Comment   *string   `json:"comment,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

func FromReview(r *review.Review) *ReviewResponse {
	return &ReviewResponse{
		ID:        r.ID(),
		UserID:    r.UserID(),
		HotelID:   r.HotelID(),
		Rating:    r.Rating().Value(),
		Comment:   r.Comment(),
		CreatedAt: r.CreatedAt(),
	}
}

func FromReviews(rs []*review.Review) []*ReviewResponse {
	out := make([]*ReviewResponse, len(rs))
	for i, r := range rs {
		out[i] = FromReview(r)
	}
	return out
}
