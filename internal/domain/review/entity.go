package review

import (
	"strings"
	"time"

	"stayfinder/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrInvalidRating  = errs.New("rating must be between 1 and 5")
	ErrCommentTooLong = errs.New("comment exceeds maximum length")
)

const MaxCommentLength = 1000

type Review struct {
	id        uuid.UUID
	userID    uuid.UUID
	hotelID   uuid.UUID
	rating    Rating
	comment   *string
	createdAt time.Time
}

// New creates a review; the comment is optional and trimmed, an all-blank
// comment is stored as absent.
func New(userID, hotelID uuid.UUID, ratingValue int, comment *string, now time.Time) (*Review, error) {
	rating, err := NewRating(ratingValue)
	if err != nil {
		return nil, err
	}

	var normalized *string
	if comment != nil {
		t := strings.TrimSpace(*comment)
		if len(t) > MaxCommentLength {
			return nil, ErrCommentTooLong
		}
		if t != "" {
			normalized = &t
		}
	}

	return &Review{
		id:        uuid.New(),
		userID:    userID,
		hotelID:   hotelID,
		rating:    rating,
		comment:   normalized,
		createdAt: now,
	}, nil
}

func Reconstruct(id, userID, hotelID uuid.UUID, rating Rating, comment *string, createdAt time.Time) *Review {
	return &Review{
		id:        id,
		userID:    userID,
		hotelID:   hotelID,
		rating:    rating,
		comment:   comment,
		createdAt: createdAt,
	}
}

func (r *Review) ID() uuid.UUID        { return r.id }
func (r *Review) UserID() uuid.UUID    { return r.userID }
func (r *Review) HotelID() uuid.UUID   { return r.hotelID }
func (r *Review) Rating() Rating       { return r.rating }
func (r *Review) Comment() *string     { return r.comment }
func (r *Review) CreatedAt() time.Time { return r.createdAt }

type Rating struct {
	value int
}

func NewRating(v int) (Rating, error) {
	if v < 1 || v > 5 {
		return Rating{}, ErrInvalidRating
	}
	return Rating{value: v}, nil
}

func (r Rating) Value() int { return r.value }
