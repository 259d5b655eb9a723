//go:build unit

package hotel_test

import (
	"testing"

	"stayfinder/internal/domain/hotel"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHotel(t *testing.T) {
	stars := 4

	t.Run("registration starts unapproved with zero reviews", func(t *testing.T) {
		h, err := hotel.New("Dar El Medina", "Courtyard hotel", "Tunis", "Tunis", "12 Rue Sidi Ben Arous", &stars, nil, []string{"WiFi"})
		require.NoError(t, err)

		assert.False(t, h.Approved())
		assert.Equal(t, 0, h.ReviewCount())
		assert.Nil(t, h.Rating())
		assert.NotEqual(t, uuid.Nil, h.ID())
	})

	t.Run("validation", func(t *testing.T) {
		badStars := 6
		cases := []struct {
			name  string
			build func() (*hotel.Hotel, error)
			errIs error
		}{
			{
				name: "empty name",
				build: func() (*hotel.Hotel, error) {
					return hotel.New("", "d", "l", "Tunis", "a", &stars, nil, nil)
				},
				errIs: hotel.ErrEmptyName,
			},
			{
				name: "empty city",
				build: func() (*hotel.Hotel, error) {
					return hotel.New("Dar", "d", "l", "", "a", &stars, nil, nil)
				},
				errIs: hotel.ErrEmptyCity,
			},
			{
				name: "stars out of range",
				build: func() (*hotel.Hotel, error) {
					return hotel.New("Dar", "d", "l", "Tunis", "a", &badStars, nil, nil)
				},
				errIs: hotel.ErrInvalidStars,
			},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := tc.build()
				assert.ErrorIs(t, err, tc.errIs)
			})
		}
	})
}

func TestHotelApprove(t *testing.T) {
	stars := 3
	h, err := hotel.New("Dar", "d", "l", "Tunis", "a", &stars, nil, nil)
	require.NoError(t, err)

	h.Approve()
	assert.True(t, h.Approved())

	// approving again is a no-op
	h.Approve()
	assert.True(t, h.Approved())
}

func TestApplyReviewStats(t *testing.T) {
	stars := 3
	h, err := hotel.New("Dar", "d", "l", "Tunis", "a", &stars, nil, nil)
	require.NoError(t, err)

	avg := 4.5
	h.ApplyReviewStats(2, &avg)
	assert.Equal(t, 2, h.ReviewCount())
	require.NotNil(t, h.Rating())
	assert.Equal(t, 4.5, *h.Rating())
}

func TestNewRoom(t *testing.T) {
	hotelID := uuid.New()

	t.Run("valid room", func(t *testing.T) {
		r, err := hotel.NewRoom(hotelID, "Standard", "Comfortable", 90, 2, nil, []string{"WiFi"})
		require.NoError(t, err)
		assert.True(t, r.Available())
		assert.Equal(t, hotelID, r.HotelID())
	})

	t.Run("validation", func(t *testing.T) {
		_, err := hotel.NewRoom(hotelID, "", "d", 90, 2, nil, nil)
		assert.ErrorIs(t, err, hotel.ErrEmptyRoomType)

		_, err = hotel.NewRoom(hotelID, "Standard", "d", 0, 2, nil, nil)
		assert.ErrorIs(t, err, hotel.ErrInvalidPrice)

		_, err = hotel.NewRoom(hotelID, "Standard", "d", 90, 0, nil, nil)
		assert.ErrorIs(t, err, hotel.ErrInvalidCapacity)
	})
}
