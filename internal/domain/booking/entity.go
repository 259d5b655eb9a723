package booking

import (
	"time"

	"stayfinder/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrInvalidGuests      = errs.New("number of guests must be at least 1")
	ErrGuestsOverCapacity = errs.New("number of guests exceeds room capacity")
	ErrInvalidTransition  = errs.New("invalid booking state transition")
	ErrStayAlreadyEnded   = errs.New("booking stay already ended")
)

// RoomSpec carries the room facts a booking needs at creation time. The
// hotel id is copied onto the booking from here and nowhere else, which is
// what keeps the denormalized pair consistent.
type RoomSpec struct {
	ID            uuid.UUID
	HotelID       uuid.UUID
	PricePerNight float64
	Capacity      int
}

type Booking struct {
	id            uuid.UUID
	userID        uuid.UUID
	roomID        uuid.UUID
	hotelID       uuid.UUID
	stay          Stay
	guests        int
	totalPrice    float64
	status        Status
	paymentStatus PaymentStatus
	paymentRef    *string
	createdAt     time.Time
}

// New creates a pending, unpaid booking. The total price is computed once
// here and frozen for the life of the booking.
func New(userID uuid.UUID, room RoomSpec, stay Stay, guests int, now time.Time) (*Booking, error) {
	if guests < 1 {
		return nil, ErrInvalidGuests
	}
	if guests > room.Capacity {
		return nil, ErrGuestsOverCapacity
	}

	return &Booking{
		id:            uuid.New(),
		userID:        userID,
		roomID:        room.ID,
		hotelID:       room.HotelID,
		stay:          stay,
		guests:        guests,
		totalPrice:    room.PricePerNight * float64(stay.Nights()),
		status:        StatusPending,
		paymentStatus: PaymentPending,
		createdAt:     now,
	}, nil
}

func Reconstruct(
	id, userID, roomID, hotelID uuid.UUID,
	stay Stay,
	guests int,
	totalPrice float64,
	status Status,
	paymentStatus PaymentStatus,
	paymentRef *string,
	createdAt time.Time,
) *Booking {
	return &Booking{
		id:            id,
		userID:        userID,
		roomID:        roomID,
		hotelID:       hotelID,
		stay:          stay,
		guests:        guests,
		totalPrice:    totalPrice,
		status:        status,
		paymentStatus: paymentStatus,
		paymentRef:    paymentRef,
		createdAt:     createdAt,
	}
}

// SetStatus applies a status transition, rejecting moves out of terminal
// states. Setting the current status again is a no-op.
func (b *Booking) SetStatus(to Status) error {
	if !b.status.CanTransition(to) {
		return ErrInvalidTransition
	}
	b.status = to
	return nil
}

// SetPaymentStatus applies a payment transition; paid is terminal. The
// payment reference is stored verbatim when provided.
func (b *Booking) SetPaymentStatus(to PaymentStatus, paymentRef *string) error {
	if !b.paymentStatus.CanTransition(to) {
		return ErrInvalidTransition
	}
	b.paymentStatus = to
	if paymentRef != nil {
		b.paymentRef = paymentRef
	}
	return nil
}

// Confirm moves the booking to confirmed+paid as one step. Confirming an
// already confirmed and paid booking succeeds without change, so a retried
// payment callback cannot fail.
func (b *Booking) Confirm(paymentRef *string) error {
	if b.status == StatusConfirmed && b.paymentStatus == PaymentPaid {
		return nil
	}
	if err := b.SetStatus(StatusConfirmed); err != nil {
		return err
	}
	return b.SetPaymentStatus(PaymentPaid, paymentRef)
}

// Cancel rejects cancelling an already cancelled booking and a confirmed
// booking whose stay has ended. Payment status is deliberately untouched:
// refunds are outside this ledger.
func (b *Booking) Cancel(now time.Time) error {
	if b.status == StatusCancelled {
		return ErrInvalidTransition
	}
	if b.status == StatusConfirmed && b.stay.Ended(now) {
		return ErrStayAlreadyEnded
	}
	b.status = StatusCancelled
	return nil
}

// Active reports whether the booking still holds its room (not cancelled).
func (b *Booking) Active() bool {
	return b.status != StatusCancelled
}

func (b *Booking) ID() uuid.UUID                 { return b.id }
func (b *Booking) UserID() uuid.UUID             { return b.userID }
func (b *Booking) RoomID() uuid.UUID             { return b.roomID }
func (b *Booking) HotelID() uuid.UUID            { return b.hotelID }
func (b *Booking) Stay() Stay                    { return b.stay }
func (b *Booking) Guests() int                   { return b.guests }
func (b *Booking) TotalPrice() float64           { return b.totalPrice }
func (b *Booking) Status() Status                { return b.status }
func (b *Booking) PaymentStatus() PaymentStatus  { return b.paymentStatus }
func (b *Booking) PaymentRef() *string           { return b.paymentRef }
func (b *Booking) CreatedAt() time.Time          { return b.createdAt }
