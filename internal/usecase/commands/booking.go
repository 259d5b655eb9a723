package commands

import (
	"context"
	"log/slog"
	"time"

	"stayfinder/internal/domain/booking"
	"stayfinder/internal/infra"
	"stayfinder/internal/infra/observability"
	"stayfinder/internal/pkg/clock"
	"stayfinder/internal/pkg/errs"
	"stayfinder/internal/usecase/shared"

	"github.com/google/uuid"
)

type PlaceBookingInput struct {
	UserID   uuid.UUID
	RoomID   uuid.UUID
	CheckIn  time.Time
	CheckOut time.Time
	Guests   int
}

type ProcessPaymentResult struct {
	Payment *booking.Payment
	Booking *booking.Booking
}

// BookingCommands is the orchestrator in front of the booking ledger. It is
// the only construction path for bookings, which is what guarantees the
// denormalized hotel id always matches the room's hotel.
type BookingCommands interface {
	PlaceBooking(ctx context.Context, in PlaceBookingInput) (*booking.Booking, error)
	ConfirmBooking(ctx context.Context, bookingID uuid.UUID, paymentRef *string) (*booking.Booking, error)
	CancelBooking(ctx context.Context, bookingID, requesterID uuid.UUID, isAdmin bool) (*booking.Booking, error)
	ProcessPayment(ctx context.Context, bookingID, userID uuid.UUID, method string) (*ProcessPaymentResult, error)
}

type bookingCommandsImpl struct {
	bookings  shared.BookingRepository
	inventory shared.InventoryRepository
	clock     clock.Clock
}

func NewBookingCommands(bookings shared.BookingRepository, inventory shared.InventoryRepository, clk clock.Clock) BookingCommands {
	return &bookingCommandsImpl{
		bookings:  bookings,
		inventory: inventory,
		clock:     clk,
	}
}

func (c *bookingCommandsImpl) PlaceBooking(ctx context.Context, in PlaceBookingInput) (*booking.Booking, error) {
	room, err := c.inventory.FindRoomByID(ctx, in.RoomID)
	if err != nil {
		return nil, shared.MapRepoErr(err, shared.ErrRoomNotFound)
	}

	stay, err := booking.NewStay(in.CheckIn, in.CheckOut)
	if err != nil {
		return nil, errs.Mark(err, shared.ErrValidation)
	}

	overlap, err := c.bookings.ActiveOverlapExists(ctx, room.ID(), stay.CheckIn(), stay.CheckOut())
	if err != nil {
		return nil, shared.MapRepoErr(err, shared.ErrStorageUnavailable)
	}
	if overlap {
		return nil, shared.ErrBookingOverlap
	}

	spec := booking.RoomSpec{
		ID:            room.ID(),
		HotelID:       room.HotelID(),
		PricePerNight: room.Price(),
		Capacity:      room.Capacity(),
	}
	b, err := booking.New(in.UserID, spec, stay, in.Guests, c.clock.Now())
	if err != nil {
		return nil, errs.Mark(err, shared.ErrValidation)
	}

	if err := c.bookings.Create(ctx, b); err != nil {
		if infra.IsKind(err, infra.KindConflict) {
			return nil, errs.Mark(err, shared.ErrBookingOverlap)
		}
		return nil, shared.MapRepoErr(err, shared.ErrStorageUnavailable)
	}

	observability.ObserveBookingTransition(string(b.Status()))
	slog.Info("booking placed",
		"booking_id", b.ID(),
		"room_id", b.RoomID(),
		"nights", stay.Nights(),
		"total_price", b.TotalPrice())

	return b, nil
}

func (c *bookingCommandsImpl) ConfirmBooking(ctx context.Context, bookingID uuid.UUID, paymentRef *string) (*booking.Booking, error) {
	b, err := c.bookings.Mutate(ctx, bookingID, func(b *booking.Booking) error {
		return b.Confirm(paymentRef)
	})
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, shared.ErrBookingNotFound)
		}
		if errs.Is(err, booking.ErrInvalidTransition) {
			return nil, errs.Mark(err, shared.ErrInvalidTransition)
		}
		return nil, shared.MapRepoErr(err, shared.ErrBookingNotFound)
	}
	observability.ObserveBookingTransition(string(booking.StatusConfirmed))
	return b, nil
}

func (c *bookingCommandsImpl) CancelBooking(ctx context.Context, bookingID, requesterID uuid.UUID, isAdmin bool) (*booking.Booking, error) {
	now := c.clock.Now()
	b, err := c.bookings.Mutate(ctx, bookingID, func(b *booking.Booking) error {
		if b.UserID() != requesterID && !isAdmin {
			return shared.ErrForbidden
		}
		return b.Cancel(now)
	})
	if err != nil {
		switch {
		case infra.IsKind(err, infra.KindNotFound):
			return nil, errs.Mark(err, shared.ErrBookingNotFound)
		case errs.Is(err, shared.ErrForbidden):
			return nil, err
		case errs.Is(err, booking.ErrInvalidTransition), errs.Is(err, booking.ErrStayAlreadyEnded):
			return nil, errs.Mark(err, shared.ErrInvalidTransition)
		default:
			return nil, shared.MapRepoErr(err, shared.ErrBookingNotFound)
		}
	}
	observability.ObserveBookingTransition(string(booking.StatusCancelled))
	return b, nil
}

func (c *bookingCommandsImpl) ProcessPayment(ctx context.Context, bookingID, userID uuid.UUID, method string) (*ProcessPaymentResult, error) {
	b, err := c.bookings.FindByID(ctx, bookingID)
	if err != nil {
		return nil, shared.MapRepoErr(err, shared.ErrBookingNotFound)
	}

	payment := booking.NewPayment(b.ID(), userID, b.TotalPrice(), method, c.clock.Now())
	if err := c.bookings.CreatePayment(ctx, payment); err != nil {
		return nil, shared.MapRepoErr(err, shared.ErrStorageUnavailable)
	}

	confirmed, err := c.ConfirmBooking(ctx, bookingID, nil)
	if err != nil {
		return nil, err
	}

	return &ProcessPaymentResult{Payment: payment, Booking: confirmed}, nil
}
