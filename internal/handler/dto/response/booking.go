package response

import (
	"time"

	"stayfinder/internal/domain/booking"

	"github.com/google/uuid"
)

type BookingResponse struct {
	ID            uuid.UUID `json:"id"`
	UserID        uuid.UUID `json:"userId"`
	RoomID        uuid.UUID `json:"roomId"`
	HotelID       uuid.UUID `json:"hotelId"`
	CheckInDate   string    `json:"checkInDate"`
	CheckOutDate  string    `json:"checkOutDate"`
	Guests        int       `json:"numberOfGuests"`
	TotalPrice    float64   `json:"totalPrice"`
	Status        string    `json:"status"`
	PaymentStatus string    `json:"paymentStatus"`
	PaymentRef    *string   `json:"paymentRef,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
}

type ConfirmBookingResponse struct {
	Success bool             `json:"success"`
	Booking *BookingResponse `json:"booking"`
}

type PaymentResponse struct {
	ID        uuid.UUID `json:"id"`
	BookingID uuid.UUID `json:"bookingId"`
	Amount    float64   `json:"amount"`
	Method    string    `json:"method"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
}

type ProcessPaymentResponse struct {
	Payment *PaymentResponse `json:"payment"`
	Booking *BookingResponse `json:"booking"`
}

const dateLayout = "2006-01-02"

func FromBooking(b *booking.Booking) *BookingResponse {
	return &BookingResponse{
		ID:            b.ID(),
		UserID:        b.UserID(),
		RoomID:        b.RoomID(),
		HotelID:       b.HotelID(),
		CheckInDate:   b.Stay().CheckIn().Format(dateLayout),
		CheckOutDate:  b.Stay().CheckOut().Format(dateLayout),
		Guests:        b.Guests(),
		TotalPrice:    b.TotalPrice(),
		Status:        string(b.Status()),
		PaymentStatus: string(b.PaymentStatus()),
		PaymentRef:    b.PaymentRef(),
		CreatedAt:     b.CreatedAt(),
	}
}

func FromBookings(bs []*booking.Booking) []*BookingResponse {
	out := make([]*BookingResponse, len(bs))
	for i, b := range bs {
		out[i] = FromBooking(b)
	}
	return out
}

func FromPayment(p *booking.Payment) *PaymentResponse {
	return &PaymentResponse{
		ID:        p.ID(),
		BookingID: p.BookingID(),
		Amount:    p.Amount(),
		Method:    p.Method(),
		Status:    p.Status(),
		CreatedAt: p.CreatedAt(),
	}
}
