//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"stayfinder/internal/domain/booking"
	"stayfinder/internal/infra/memory"
	"stayfinder/internal/infra/observability"
	"stayfinder/internal/pkg/clock"
	"stayfinder/internal/usecase/commands"
	"stayfinder/internal/usecase/shared"
	"stayfinder/tests/common/builder"

	"github.com/google/uuid"
	promtestutil "github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type BookingCommandsTestSuite struct {
	suite.Suite
	ctx      context.Context
	store    *memory.Store
	clock    *clock.MockClock
	commands commands.BookingCommands

	hotelID uuid.UUID
	roomID  uuid.UUID
	userID  uuid.UUID
}

func (s *BookingCommandsTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.store = memory.NewStore()
	s.clock = clock.NewMockClock(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))
	s.commands = commands.NewBookingCommands(s.store.Bookings(), s.store.Inventory(), s.clock)

	h := builder.NewHotelBuilder().Build()
	s.Require().NoError(s.store.Inventory().CreateHotel(s.ctx, h))
	s.hotelID = h.ID()

	room := builder.NewRoomBuilder().WithHotelID(s.hotelID).WithPrice(90).WithCapacity(2).Build()
	s.Require().NoError(s.store.Inventory().CreateRoom(s.ctx, room))
	s.roomID = room.ID()

	s.userID = uuid.New()
}

func (s *BookingCommandsTestSuite) place(checkIn, checkOut time.Time, guests int) (*booking.Booking, error) {
	return s.commands.PlaceBooking(s.ctx, commands.PlaceBookingInput{
		UserID:   s.userID,
		RoomID:   s.roomID,
		CheckIn:  checkIn,
		CheckOut: checkOut,
		Guests:   guests,
	})
}

func (s *BookingCommandsTestSuite) TestPlaceBooking() {
	s.Run("three nights at 90 totals 270", func() {
		b, err := s.place(date(2025, 7, 10), date(2025, 7, 13), 2)
		s.Require().NoError(err)

		s.Equal(270.0, b.TotalPrice())
		s.Equal(s.hotelID, b.HotelID())
		s.Equal(booking.StatusPending, b.Status())
	})

	s.Run("unknown room", func() {
		_, err := s.commands.PlaceBooking(s.ctx, commands.PlaceBookingInput{
			UserID:   s.userID,
			RoomID:   uuid.New(),
			CheckIn:  date(2025, 7, 10),
			CheckOut: date(2025, 7, 13),
			Guests:   2,
		})
		s.ErrorIs(err, shared.ErrRoomNotFound)
	})

	s.Run("inverted dates", func() {
		_, err := s.place(date(2025, 7, 13), date(2025, 7, 10), 2)
		s.ErrorIs(err, shared.ErrValidation)
	})

	s.Run("guests over capacity", func() {
		_, err := s.place(date(2025, 7, 10), date(2025, 7, 13), 3)
		s.ErrorIs(err, shared.ErrValidation)
	})

	s.Run("overlapping booking for the same room is rejected", func() {
		_, err := s.place(date(2025, 9, 10), date(2025, 9, 13), 2)
		s.Require().NoError(err)

		_, err = s.place(date(2025, 9, 12), date(2025, 9, 15), 2)
		s.ErrorIs(err, shared.ErrBookingOverlap)
	})

	s.Run("back-to-back stays do not overlap", func() {
		_, err := s.place(date(2025, 10, 10), date(2025, 10, 13), 2)
		s.Require().NoError(err)

		_, err = s.place(date(2025, 10, 13), date(2025, 10, 16), 2)
		s.NoError(err)
	})

	s.Run("cancelled booking frees the dates", func() {
		b, err := s.place(date(2025, 11, 10), date(2025, 11, 13), 2)
		s.Require().NoError(err)

		_, err = s.commands.CancelBooking(s.ctx, b.ID(), s.userID, false)
		s.Require().NoError(err)

		_, err = s.place(date(2025, 11, 10), date(2025, 11, 13), 2)
		s.NoError(err)
	})
}

func (s *BookingCommandsTestSuite) TestConfirmBooking() {
	ref := "pay-1"

	s.Run("confirm marks paid", func() {
		b, err := s.place(date(2025, 7, 10), date(2025, 7, 13), 2)
		s.Require().NoError(err)

		confirmed, err := s.commands.ConfirmBooking(s.ctx, b.ID(), &ref)
		s.Require().NoError(err)
		s.Equal(booking.StatusConfirmed, confirmed.Status())
		s.Equal(booking.PaymentPaid, confirmed.PaymentStatus())
	})

	s.Run("confirm is idempotent", func() {
		b, err := s.place(date(2025, 8, 10), date(2025, 8, 13), 2)
		s.Require().NoError(err)

		_, err = s.commands.ConfirmBooking(s.ctx, b.ID(), &ref)
		s.Require().NoError(err)

		again, err := s.commands.ConfirmBooking(s.ctx, b.ID(), &ref)
		s.Require().NoError(err)
		s.Equal(booking.StatusConfirmed, again.Status())
	})

	s.Run("unknown booking", func() {
		_, err := s.commands.ConfirmBooking(s.ctx, uuid.New(), &ref)
		s.ErrorIs(err, shared.ErrBookingNotFound)
	})

	s.Run("confirm after cancel conflicts", func() {
		b, err := s.place(date(2025, 12, 10), date(2025, 12, 13), 2)
		s.Require().NoError(err)

		_, err = s.commands.CancelBooking(s.ctx, b.ID(), s.userID, false)
		s.Require().NoError(err)

		_, err = s.commands.ConfirmBooking(s.ctx, b.ID(), &ref)
		s.ErrorIs(err, shared.ErrInvalidTransition)
	})
}

func (s *BookingCommandsTestSuite) TestCancelBooking() {
	s.Run("owner cancels", func() {
		b, err := s.place(date(2025, 7, 10), date(2025, 7, 13), 2)
		s.Require().NoError(err)

		cancelled, err := s.commands.CancelBooking(s.ctx, b.ID(), s.userID, false)
		s.Require().NoError(err)
		s.Equal(booking.StatusCancelled, cancelled.Status())
	})

	s.Run("stranger is forbidden", func() {
		b, err := s.place(date(2025, 8, 10), date(2025, 8, 13), 2)
		s.Require().NoError(err)

		_, err = s.commands.CancelBooking(s.ctx, b.ID(), uuid.New(), false)
		s.ErrorIs(err, shared.ErrForbidden)

		// the booking is untouched
		kept, err := s.store.Bookings().FindByID(s.ctx, b.ID())
		s.Require().NoError(err)
		s.Equal(booking.StatusPending, kept.Status())
	})

	s.Run("admin cancels any booking", func() {
		b, err := s.place(date(2025, 9, 10), date(2025, 9, 13), 2)
		s.Require().NoError(err)

		_, err = s.commands.CancelBooking(s.ctx, b.ID(), uuid.New(), true)
		s.NoError(err)
	})

	s.Run("confirmed booking past check-out cannot cancel", func() {
		b, err := s.place(date(2025, 10, 10), date(2025, 10, 13), 2)
		s.Require().NoError(err)

		ref := "pay-2"
		_, err = s.commands.ConfirmBooking(s.ctx, b.ID(), &ref)
		s.Require().NoError(err)

		s.clock.Set(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))
		_, err = s.commands.CancelBooking(s.ctx, b.ID(), s.userID, false)
		s.ErrorIs(err, shared.ErrInvalidTransition)
	})
}

func (s *BookingCommandsTestSuite) TestProcessPayment() {
	s.Run("records payment and confirms", func() {
		b, err := s.place(date(2025, 7, 10), date(2025, 7, 13), 2)
		s.Require().NoError(err)

		result, err := s.commands.ProcessPayment(s.ctx, b.ID(), s.userID, "card")
		s.Require().NoError(err)

		s.Equal(b.TotalPrice(), result.Payment.Amount())
		s.Equal("card", result.Payment.Method())
		s.Equal(booking.StatusConfirmed, result.Booking.Status())
		s.Equal(booking.PaymentPaid, result.Booking.PaymentStatus())
	})

	s.Run("unknown booking", func() {
		_, err := s.commands.ProcessPayment(s.ctx, uuid.New(), s.userID, "card")
		s.ErrorIs(err, shared.ErrBookingNotFound)
	})
}

func (s *BookingCommandsTestSuite) TestTransitionMetrics() {
	pending := observability.BookingTransitions.WithLabelValues(string(booking.StatusPending))
	confirmed := observability.BookingTransitions.WithLabelValues(string(booking.StatusConfirmed))
	cancelled := observability.BookingTransitions.WithLabelValues(string(booking.StatusCancelled))

	basePending := promtestutil.ToFloat64(pending)
	baseConfirmed := promtestutil.ToFloat64(confirmed)
	baseCancelled := promtestutil.ToFloat64(cancelled)

	b, err := s.place(date(2025, 7, 10), date(2025, 7, 13), 2)
	s.Require().NoError(err)
	s.InDelta(basePending+1, promtestutil.ToFloat64(pending), 0.001)

	_, err = s.commands.ConfirmBooking(s.ctx, b.ID(), nil)
	s.Require().NoError(err)
	s.InDelta(baseConfirmed+1, promtestutil.ToFloat64(confirmed), 0.001)

	_, err = s.commands.CancelBooking(s.ctx, b.ID(), s.userID, false)
	s.Require().NoError(err)
	s.InDelta(baseCancelled+1, promtestutil.ToFloat64(cancelled), 0.001)
}

func TestBookingCommandsTestSuite(t *testing.T) {
	suite.Run(t, new(BookingCommandsTestSuite))
}

func TestConcurrentConfirmations(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	clk := clock.NewMockClock(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))
	cmds := commands.NewBookingCommands(store.Bookings(), store.Inventory(), clk)

	h := builder.NewHotelBuilder().Build()
	require.NoError(t, store.Inventory().CreateHotel(ctx, h))
	room := builder.NewRoomBuilder().WithHotelID(h.ID()).Build()
	require.NoError(t, store.Inventory().CreateRoom(ctx, room))

	b, err := cmds.PlaceBooking(ctx, commands.PlaceBookingInput{
		UserID:   uuid.New(),
		RoomID:   room.ID(),
		CheckIn:  date(2025, 7, 10),
		CheckOut: date(2025, 7, 13),
		Guests:   2,
	})
	require.NoError(t, err)

	ref := "pay-race"
	done := make(chan error, 2)
	for i := 0; i < 2; i++ {
		go func() {
			_, err := cmds.ConfirmBooking(ctx, b.ID(), &ref)
			done <- err
		}()
	}
	for i := 0; i < 2; i++ {
		assert.NoError(t, <-done)
	}

	final, err := store.Bookings().FindByID(ctx, b.ID())
	require.NoError(t, err)
	assert.Equal(t, booking.StatusConfirmed, final.Status())
	assert.Equal(t, booking.PaymentPaid, final.PaymentStatus())
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
