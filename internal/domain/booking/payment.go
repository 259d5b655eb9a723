package booking

import (
	"time"

	"github.com/google/uuid"
)

// Payment records a simulated payment against a booking. There is no
// gateway behind it; the amount is copied from the booking's frozen total.
type Payment struct {
	id        uuid.UUID
	bookingID uuid.UUID
	userID    uuid.UUID
	amount    float64
	method    string
	status    string
	createdAt time.Time
}

const PaymentCompleted = "completed"

func NewPayment(bookingID, userID uuid.UUID, amount float64, method string, now time.Time) *Payment {
	return &Payment{
		id:        uuid.New(),
		bookingID: bookingID,
		userID:    userID,
		amount:    amount,
		method:    method,
		status:    PaymentCompleted,
		createdAt: now,
	}
}

func ReconstructPayment(id, bookingID, userID uuid.UUID, amount float64, method, status string, createdAt time.Time) *Payment {
	return &Payment{
		id:        id,
		bookingID: bookingID,
		userID:    userID,
		amount:    amount,
		method:    method,
		status:    status,
		createdAt: createdAt,
	}
}

func (p *Payment) ID() uuid.UUID        { return p.id }
func (p *Payment) BookingID() uuid.UUID { return p.bookingID }
func (p *Payment) UserID() uuid.UUID    { return p.userID }
func (p *Payment) Amount() float64      { return p.amount }
func (p *Payment) Method() string       { return p.method }
func (p *Payment) Status() string       { return p.status }
func (p *Payment) CreatedAt() time.Time { return p.createdAt }
