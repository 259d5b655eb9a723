package builder

import (
	"time"

	"stayfinder/internal/domain/booking"

	"github.com/google/uuid"
)

type BookingBuilder struct {
	userID   uuid.UUID
	roomSpec booking.RoomSpec
	checkIn  time.Time
	checkOut time.Time
	guests   int
	now      time.Time
}

func NewBookingBuilder() *BookingBuilder {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	return &BookingBuilder{
		userID: uuid.New(),
		roomSpec: booking.RoomSpec{
			ID:            uuid.New(),
			HotelID:       uuid.New(),
			PricePerNight: 90,
			Capacity:      2,
		},
		checkIn:  time.Date(2025, 7, 10, 0, 0, 0, 0, time.UTC),
		checkOut: time.Date(2025, 7, 13, 0, 0, 0, 0, time.UTC),
		guests:   2,
		now:      now,
	}
}

func (b *BookingBuilder) WithUserID(id uuid.UUID) *BookingBuilder { b.userID = id; return b }
func (b *BookingBuilder) WithRoomSpec(spec booking.RoomSpec) *BookingBuilder {
	b.roomSpec = spec
	return b
}
func (b *BookingBuilder) WithPricePerNight(price float64) *BookingBuilder {
	b.roomSpec.PricePerNight = price
	return b
}
func (b *BookingBuilder) WithCapacity(capacity int) *BookingBuilder {
	b.roomSpec.Capacity = capacity
	return b
}
func (b *BookingBuilder) WithGuests(guests int) *BookingBuilder { b.guests = guests; return b }
func (b *BookingBuilder) WithStay(checkIn, checkOut time.Time) *BookingBuilder {
	b.checkIn = checkIn
	b.checkOut = checkOut
	return b
}
func (b *BookingBuilder) WithNow(now time.Time) *BookingBuilder { b.now = now; return b }

func (b *BookingBuilder) BuildDomain() (*booking.Booking, error) {
	stay, err := booking.NewStay(b.checkIn, b.checkOut)
	if err != nil {
		return nil, err
	}
	return booking.New(b.userID, b.roomSpec, stay, b.guests, b.now)
}
