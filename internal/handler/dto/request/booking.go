package request

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Date accepts both plain "2006-01-02" dates and full RFC 3339 timestamps;
// booking precision is whole days either way.
type Date struct {
	time.Time
}

func (d *Date) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	s = strings.TrimSpace(s)

	if t, err := time.Parse("2006-01-02", s); err == nil {
		d.Time = t
		return nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return err
	}
	d.Time = t
	return nil
}

type CreateBookingRequest struct {
	RoomID         uuid.UUID `json:"roomId" binding:"required"`
	HotelID        uuid.UUID `json:"hotelId" binding:"required"`
	CheckInDate    Date      `json:"checkInDate" binding:"required"`
	CheckOutDate   Date      `json:"checkOutDate" binding:"required"`
	NumberOfGuests int       `json:"numberOfGuests" binding:"required,min=1"`
}

type ConfirmBookingRequest struct {
	BookingID  uuid.UUID `json:"bookingId" binding:"required"`
	PaymentRef *string   `json:"paymentRef,omitempty"`
}

type ProcessPaymentRequest struct {
	BookingID uuid.UUID `json:"bookingId" binding:"required"`
	Method    string    `json:"method" binding:"required"`
}
