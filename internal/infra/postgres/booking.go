package postgres

import (
	"context"
	"time"

	"stayfinder/internal/domain/booking"
	"stayfinder/internal/infra"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type BookingRepository struct {
	pool    *pgxpool.Pool
	timeout time.Duration
}

func NewBookingRepository(pool *pgxpool.Pool, timeout time.Duration) *BookingRepository {
	return &BookingRepository{pool: pool, timeout: timeout}
}

func (r *BookingRepository) Create(ctx context.Context, b *booking.Booking) error {
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	_, err := r.pool.Exec(ctx, insertBookingSQL,
		b.ID(), b.UserID(), b.RoomID(), b.HotelID(),
		b.Stay().CheckIn(), b.Stay().CheckOut(),
		b.Guests(), b.TotalPrice(),
		string(b.Status()), string(b.PaymentStatus()), b.PaymentRef(), b.CreatedAt(),
	)
	if err != nil {
		return mapPgErr("failed to create booking", err)
	}
	return nil
}

func (r *BookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error) {
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	b, err := scanBooking(r.pool.QueryRow(ctx, getBookingSQL, id))
	if err != nil {
		return nil, mapPgErr("failed to find booking", err)
	}
	return b, nil
}

func (r *BookingRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*booking.Booking, error) {
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	rows, err := r.pool.Query(ctx, listBookingsByUserSQL, userID)
	if err != nil {
		return nil, mapPgErr("failed to list bookings", err)
	}
	defer rows.Close()

	var out []*booking.Booking
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan booking", err)
		}
		out = append(out, b)
	}
	if err := rows.Err(); err != nil {
		return nil, mapPgErr("failed to list bookings", err)
	}
	return out, nil
}

// Mutate serializes state changes per booking through a row lock: the
// booking is loaded FOR UPDATE, fn is applied to the domain entity, and the
// mutable columns are written back before the transaction commits. A failing
// fn rolls everything back.
func (r *BookingRepository) Mutate(ctx context.Context, id uuid.UUID, fn func(b *booking.Booking) error) (*booking.Booking, error) {
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, mapPgErr("failed to begin transaction", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	b, err := scanBooking(tx.QueryRow(ctx, getBookingForUpdateSQL, id))
	if err != nil {
		return nil, mapPgErr("failed to lock booking", err)
	}

	if err := fn(b); err != nil {
		return nil, err
	}

	_, err = tx.Exec(ctx, updateBookingStateSQL,
		b.ID(), string(b.Status()), string(b.PaymentStatus()), b.PaymentRef())
	if err != nil {
		return nil, mapPgErr("failed to update booking", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, mapPgErr("failed to commit booking update", err)
	}
	return b, nil
}

func (r *BookingRepository) ActiveOverlapExists(ctx context.Context, roomID uuid.UUID, checkIn, checkOut time.Time) (bool, error) {
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	var exists bool
	err := r.pool.QueryRow(ctx, activeOverlapExistsSQL, roomID, checkIn, checkOut).Scan(&exists)
	if err != nil {
		return false, mapPgErr("failed to check booking overlap", err)
	}
	return exists, nil
}

func (r *BookingRepository) CreatePayment(ctx context.Context, p *booking.Payment) error {
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	_, err := r.pool.Exec(ctx, insertPaymentSQL,
		p.ID(), p.BookingID(), p.UserID(), p.Amount(), p.Method(), p.Status(), p.CreatedAt())
	if err != nil {
		return mapPgErr("failed to create payment", err)
	}
	return nil
}

func scanBooking(row pgx.Row) (*booking.Booking, error) {
	var (
		id            uuid.UUID
		userID        uuid.UUID
		roomID        uuid.UUID
		hotelID       uuid.UUID
		checkIn       time.Time
		checkOut      time.Time
		guests        int
		totalPrice    float64
		status        string
		paymentStatus string
		paymentRef    *string
		createdAt     time.Time
	)
	if err := row.Scan(&id, &userID, &roomID, &hotelID, &checkIn, &checkOut,
		&guests, &totalPrice, &status, &paymentStatus, &paymentRef, &createdAt); err != nil {
		return nil, err
	}

	stay, err := booking.NewStay(checkIn, checkOut)
	if err != nil {
		return nil, err
	}
	st, err := booking.ParseStatus(status)
	if err != nil {
		return nil, err
	}
	ps, err := booking.ParsePaymentStatus(paymentStatus)
	if err != nil {
		return nil, err
	}

	return booking.Reconstruct(id, userID, roomID, hotelID, stay,
		guests, totalPrice, st, ps, paymentRef, createdAt), nil
}
