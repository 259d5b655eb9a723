//go:build unit

package booking_test

import (
	"testing"
	"time"

	"stayfinder/internal/domain/booking"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestNewStay(t *testing.T) {
	t.Run("valid range", func(t *testing.T) {
		stay, err := booking.NewStay(day(2025, 7, 10), day(2025, 7, 13))
		require.NoError(t, err)
		assert.Equal(t, 3, stay.Nights())
	})

	t.Run("time of day is truncated", func(t *testing.T) {
		stay, err := booking.NewStay(
			time.Date(2025, 7, 10, 15, 30, 0, 0, time.UTC),
			time.Date(2025, 7, 11, 9, 0, 0, 0, time.UTC),
		)
		require.NoError(t, err)
		assert.Equal(t, day(2025, 7, 10), stay.CheckIn())
		assert.Equal(t, 1, stay.Nights())
	})

	t.Run("check-out equal to check-in is rejected", func(t *testing.T) {
		_, err := booking.NewStay(day(2025, 7, 10), day(2025, 7, 10))
		assert.ErrorIs(t, err, booking.ErrInvalidStay)
	})

	t.Run("inverted range is rejected", func(t *testing.T) {
		_, err := booking.NewStay(day(2025, 7, 13), day(2025, 7, 10))
		assert.ErrorIs(t, err, booking.ErrInvalidStay)
	})
}

func TestStayOverlaps(t *testing.T) {
	base, err := booking.NewStay(day(2025, 7, 10), day(2025, 7, 13))
	require.NoError(t, err)

	cases := []struct {
		name     string
		in, out  time.Time
		overlaps bool
	}{
		{"identical", day(2025, 7, 10), day(2025, 7, 13), true},
		{"contained", day(2025, 7, 11), day(2025, 7, 12), true},
		{"partial front", day(2025, 7, 8), day(2025, 7, 11), true},
		{"partial back", day(2025, 7, 12), day(2025, 7, 15), true},
		{"back to back before", day(2025, 7, 7), day(2025, 7, 10), false},
		{"back to back after", day(2025, 7, 13), day(2025, 7, 16), false},
		{"disjoint", day(2025, 8, 1), day(2025, 8, 5), false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			other, err := booking.NewStay(tc.in, tc.out)
			require.NoError(t, err)
			assert.Equal(t, tc.overlaps, base.Overlaps(other))
			assert.Equal(t, tc.overlaps, other.Overlaps(base))
		})
	}
}

func TestStatusTransitions(t *testing.T) {
	cases := []struct {
		name    string
		from    booking.Status
		to      booking.Status
		allowed bool
	}{
		{"pending to confirmed", booking.StatusPending, booking.StatusConfirmed, true},
		{"pending to cancelled", booking.StatusPending, booking.StatusCancelled, true},
		{"confirmed to cancelled", booking.StatusConfirmed, booking.StatusCancelled, true},
		{"confirmed to pending", booking.StatusConfirmed, booking.StatusPending, false},
		{"cancelled to pending", booking.StatusCancelled, booking.StatusPending, false},
		{"cancelled to confirmed", booking.StatusCancelled, booking.StatusConfirmed, false},
		{"same state no-op", booking.StatusConfirmed, booking.StatusConfirmed, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.allowed, tc.from.CanTransition(tc.to))
		})
	}
}

func TestParseStatus(t *testing.T) {
	st, err := booking.ParseStatus("pending")
	require.NoError(t, err)
	assert.Equal(t, booking.StatusPending, st)

	_, err = booking.ParseStatus("unknown")
	assert.Error(t, err)

	ps, err := booking.ParsePaymentStatus("paid")
	require.NoError(t, err)
	assert.Equal(t, booking.PaymentPaid, ps)

	_, err = booking.ParsePaymentStatus("refunded")
	assert.Error(t, err)
}
