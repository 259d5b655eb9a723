package queries

import (
	"context"

	"stayfinder/internal/domain/booking"
	"stayfinder/internal/usecase/shared"

	"github.com/google/uuid"
)

type BookingQueries interface {
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*booking.Booking, error)
	GetByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error)
}

type bookingQueriesImpl struct {
	bookings shared.BookingRepository
}

func NewBookingQueries(bookings shared.BookingRepository) BookingQueries {
	return &bookingQueriesImpl{bookings: bookings}
}

func (q *bookingQueriesImpl) ListByUser(ctx context.Context, userID uuid.UUID) ([]*booking.Booking, error) {
	list, err := q.bookings.ListByUser(ctx, userID)
	if err != nil {
		return nil, shared.MapRepoErr(err, shared.ErrStorageUnavailable)
	}
	return list, nil
}

func (q *bookingQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error) {
	b, err := q.bookings.FindByID(ctx, id)
	if err != nil {
		return nil, shared.MapRepoErr(err, shared.ErrBookingNotFound)
	}
	return b, nil
}
