package shared

import (
	"context"
	"time"

	"stayfinder/internal/domain/booking"
	"stayfinder/internal/domain/hotel"
	"stayfinder/internal/domain/review"
	"stayfinder/internal/domain/user"

	"github.com/google/uuid"
)

// HotelFilter mirrors the public search form: every field is optional and
// the price bounds apply to the hotel's rooms, not the hotel itself.
type HotelFilter struct {
	City     *string
	Stars    *int
	Query    *string
	MinPrice *float64
	MaxPrice *float64
}

func (f HotelFilter) Empty() bool {
	return f.City == nil && f.Stars == nil && f.Query == nil && f.MinPrice == nil && f.MaxPrice == nil
}

// InventoryRepository owns the hotel and room collections. List ordering is
// stable within a process lifetime (insertion order or primary key order).
type InventoryRepository interface {
	ListHotels(ctx context.Context, filter HotelFilter) ([]*hotel.Hotel, error)
	ListAllHotels(ctx context.Context) ([]*hotel.Hotel, error)
	FindHotelByID(ctx context.Context, id uuid.UUID) (*hotel.Hotel, error)
	CreateHotel(ctx context.Context, h *hotel.Hotel) error
	ApproveHotel(ctx context.Context, id uuid.UUID) (*hotel.Hotel, error)

	RoomsForHotel(ctx context.Context, hotelID uuid.UUID) ([]*hotel.Room, error)
	FindRoomByID(ctx context.Context, id uuid.UUID) (*hotel.Room, error)
	CreateRoom(ctx context.Context, r *hotel.Room) error
}

// BookingRepository is the booking ledger. Mutate loads the booking, applies
// fn, and persists the result as one serialized unit per booking id; two
// racing mutations of the same booking never interleave.
type BookingRepository interface {
	Create(ctx context.Context, b *booking.Booking) error
	FindByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*booking.Booking, error)
	Mutate(ctx context.Context, id uuid.UUID, fn func(b *booking.Booking) error) (*booking.Booking, error)
	// ActiveOverlapExists reports whether any non-cancelled booking for the
	// room shares a night with [checkIn, checkOut).
	ActiveOverlapExists(ctx context.Context, roomID uuid.UUID, checkIn, checkOut time.Time) (bool, error)
	CreatePayment(ctx context.Context, p *booking.Payment) error
}

// ReviewRepository owns the review collection and holds the single
// cross-aggregate write of the core: Create persists the review and refreshes
// the hotel's review count and average rating as one atomic unit.
type ReviewRepository interface {
	Create(ctx context.Context, r *review.Review) error
	ListByHotel(ctx context.Context, hotelID uuid.UUID) ([]*review.Review, error)
}

type UserRepository interface {
	Create(ctx context.Context, u *user.User) error
	FindByID(ctx context.Context, id uuid.UUID) (*user.User, error)
	FindByEmail(ctx context.Context, email string) (*user.User, error)
	FindByUsername(ctx context.Context, username string) (*user.User, error)
}

// Cache is a read-through byte cache in front of hot inventory lookups.
type Cache interface {
	Get(ctx context.Context, key string, dst any) (bool, error)
	Set(ctx context.Context, key string, v any, ttl time.Duration) error
	Del(ctx context.Context, key string) error
}
