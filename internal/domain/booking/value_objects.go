package booking

import (
	"time"

	"stayfinder/internal/pkg/errs"
)

var (
	ErrInvalidStay = errs.New("check-out date must be after check-in date")
)

const nightHours = 24

// Stay is the half-open date range [checkIn, checkOut) of a booking.
// A zero-length or inverted range is rejected; the legacy behavior of
// clamping those to a single night was dropped deliberately.
type Stay struct {
	checkIn  time.Time
	checkOut time.Time
}

func NewStay(checkIn, checkOut time.Time) (Stay, error) {
	in := truncateToDay(checkIn)
	out := truncateToDay(checkOut)
	if !out.After(in) {
		return Stay{}, ErrInvalidStay
	}
	return Stay{checkIn: in, checkOut: out}, nil
}

func (s Stay) CheckIn() time.Time  { return s.checkIn }
func (s Stay) CheckOut() time.Time { return s.checkOut }

// Nights counts whole days between check-in and check-out, rounding any
// partial day up, never below one.
func (s Stay) Nights() int {
	hours := s.checkOut.Sub(s.checkIn).Hours()
	nights := int(hours) / nightHours
	if int(hours)%nightHours != 0 {
		nights++
	}
	if nights < 1 {
		nights = 1
	}
	return nights
}

// Overlaps reports whether two stays share at least one night.
func (s Stay) Overlaps(other Stay) bool {
	return s.checkIn.Before(other.checkOut) && other.checkIn.Before(s.checkOut)
}

// Ended reports whether the stay is entirely in the past.
func (s Stay) Ended(now time.Time) bool {
	return now.After(s.checkOut)
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
)

func ParseStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusPending, StatusConfirmed, StatusCancelled:
		return Status(s), nil
	}
	return "", errs.New("unknown booking status: " + s)
}

// CanTransition encodes the forward-only status machine: pending may move to
// confirmed or cancelled, confirmed may still be cancelled, cancelled is
// terminal.
func (s Status) CanTransition(to Status) bool {
	if s == to {
		return true
	}
	switch s {
	case StatusPending:
		return to == StatusConfirmed || to == StatusCancelled
	case StatusConfirmed:
		return to == StatusCancelled
	default:
		return false
	}
}

type PaymentStatus string

const (
	PaymentPending PaymentStatus = "pending"
	PaymentPaid    PaymentStatus = "paid"
)

func ParsePaymentStatus(s string) (PaymentStatus, error) {
	switch PaymentStatus(s) {
	case PaymentPending, PaymentPaid:
		return PaymentStatus(s), nil
	}
	return "", errs.New("unknown payment status: " + s)
}

func (p PaymentStatus) CanTransition(to PaymentStatus) bool {
	if p == to {
		return true
	}
	return p == PaymentPending && to == PaymentPaid
}
