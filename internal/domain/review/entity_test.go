//go:build unit

package review_test

import (
	"strings"
	"testing"
	"time"

	"stayfinder/internal/domain/review"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewReview(t *testing.T) {
	userID := uuid.New()
	hotelID := uuid.New()
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	t.Run("rating bounds", func(t *testing.T) {
		cases := []struct {
			name   string
			rating int
			errIs  error
		}{
			{"below minimum", 0, review.ErrInvalidRating},
			{"negative", -1, review.ErrInvalidRating},
			{"minimum", 1, nil},
			{"maximum", 5, nil},
			{"above maximum", 6, review.ErrInvalidRating},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := review.New(userID, hotelID, tc.rating, nil, now)
				if tc.errIs != nil {
					assert.ErrorIs(t, err, tc.errIs)
				} else {
					assert.NoError(t, err)
				}
			})
		}
	})

	t.Run("comment is optional", func(t *testing.T) {
		r, err := review.New(userID, hotelID, 4, nil, now)
		require.NoError(t, err)
		assert.Nil(t, r.Comment())
	})

	t.Run("blank comment is stored as absent", func(t *testing.T) {
		blank := "   "
		r, err := review.New(userID, hotelID, 4, &blank, now)
		require.NoError(t, err)
		assert.Nil(t, r.Comment())
	})

	t.Run("comment is trimmed", func(t *testing.T) {
		c := "  lovely stay  "
		r, err := review.New(userID, hotelID, 4, &c, now)
		require.NoError(t, err)
		require.NotNil(t, r.Comment())
		assert.Equal(t, "lovely stay", *r.Comment())
	})

	t.Run("over-length comment is rejected", func(t *testing.T) {
		c := strings.Repeat("a", review.MaxCommentLength+1)
		_, err := review.New(userID, hotelID, 4, &c, now)
		assert.ErrorIs(t, err, review.ErrCommentTooLong)
	})
}
