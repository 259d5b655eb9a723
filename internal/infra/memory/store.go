// Package memory holds the in-process storage backend. It conforms to the
// same repository contracts as the Postgres backend and is what the tests
// run against; a single store-wide mutex provides the per-entity
// serialization the contracts require.
package memory

import (
	"sync"

	"stayfinder/internal/domain/booking"
	"stayfinder/internal/domain/hotel"
	"stayfinder/internal/domain/review"
	"stayfinder/internal/domain/user"
)

type Store struct {
	mu       sync.RWMutex
	hotels   []*hotel.Hotel
	rooms    []*hotel.Room
	bookings []*booking.Booking
	reviews  []*review.Review
	users    []*user.User
	payments []*booking.Payment
}

func NewStore() *Store {
	return &Store{}
}

func (s *Store) Inventory() *InventoryRepository {
	return &InventoryRepository{store: s}
}

func (s *Store) Bookings() *BookingRepository {
	return &BookingRepository{store: s}
}

func (s *Store) Reviews() *ReviewRepository {
	return &ReviewRepository{store: s}
}

func (s *Store) Users() *UserRepository {
	return &UserRepository{store: s}
}
