package memory

import (
	"context"
	"time"

	"stayfinder/internal/domain/booking"
	"stayfinder/internal/infra"

	"github.com/google/uuid"
)

type BookingRepository struct {
	store *Store
}

func (r *BookingRepository) Create(_ context.Context, b *booking.Booking) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	s.bookings = append(s.bookings, b)
	return nil
}

func (r *BookingRepository) FindByID(_ context.Context, id uuid.UUID) (*booking.Booking, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, b := range s.bookings {
		if b.ID() == id {
			return b, nil
		}
	}
	return nil, infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
}

func (r *BookingRepository) ListByUser(_ context.Context, userID uuid.UUID) ([]*booking.Booking, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := []*booking.Booking{}
	for _, b := range s.bookings {
		if b.UserID() == userID {
			result = append(result, b)
		}
	}
	return result, nil
}

// Mutate applies fn to a copy under the write lock and swaps it in only when
// fn succeeds, so a failed transition leaves the stored booking untouched.
func (r *BookingRepository) Mutate(_ context.Context, id uuid.UUID, fn func(b *booking.Booking) error) (*booking.Booking, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, b := range s.bookings {
		if b.ID() != id {
			continue
		}
		candidate := cloneBooking(b)
		if err := fn(candidate); err != nil {
			return nil, err
		}
		s.bookings[i] = candidate
		return candidate, nil
	}
	return nil, infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
}

func (r *BookingRepository) ActiveOverlapExists(_ context.Context, roomID uuid.UUID, checkIn, checkOut time.Time) (bool, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	requested, err := booking.NewStay(checkIn, checkOut)
	if err != nil {
		return false, nil
	}

	for _, b := range s.bookings {
		if b.RoomID() == roomID && b.Active() && b.Stay().Overlaps(requested) {
			return true, nil
		}
	}
	return false, nil
}

func (r *BookingRepository) CreatePayment(_ context.Context, p *booking.Payment) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	s.payments = append(s.payments, p)
	return nil
}

func cloneBooking(b *booking.Booking) *booking.Booking {
	return booking.Reconstruct(
		b.ID(), b.UserID(), b.RoomID(), b.HotelID(),
		b.Stay(), b.Guests(), b.TotalPrice(),
		b.Status(), b.PaymentStatus(), b.PaymentRef(), b.CreatedAt(),
	)
}
