package memory

import (
	"context"
	"strings"

	"stayfinder/internal/domain/hotel"
	"stayfinder/internal/infra"
	"stayfinder/internal/usecase/shared"

	"github.com/google/uuid"
)

type InventoryRepository struct {
	store *Store
}

func (r *InventoryRepository) ListHotels(_ context.Context, filter shared.HotelFilter) ([]*hotel.Hotel, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	var result []*hotel.Hotel
	for _, h := range s.hotels {
		if !h.Approved() {
			continue
		}
		if matchesFilter(h, s.rooms, filter) {
			result = append(result, cloneHotel(h))
		}
	}
	return result, nil
}

func (r *InventoryRepository) ListAllHotels(_ context.Context) ([]*hotel.Hotel, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]*hotel.Hotel, len(s.hotels))
	for i, h := range s.hotels {
		result[i] = cloneHotel(h)
	}
	return result, nil
}

func (r *InventoryRepository) FindHotelByID(_ context.Context, id uuid.UUID) (*hotel.Hotel, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, h := range s.hotels {
		if h.ID() == id {
			return cloneHotel(h), nil
		}
	}
	return nil, infra.WrapRepoErr("hotel not found", nil, infra.KindNotFound)
}

func (r *InventoryRepository) CreateHotel(_ context.Context, h *hotel.Hotel) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	s.hotels = append(s.hotels, h)
	return nil
}

func (r *InventoryRepository) ApproveHotel(_ context.Context, id uuid.UUID) (*hotel.Hotel, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, h := range s.hotels {
		if h.ID() == id {
			// Swap in a mutated copy; fetched hotels stay immutable snapshots.
			candidate := cloneHotel(h)
			candidate.Approve()
			s.hotels[i] = candidate
			return cloneHotel(candidate), nil
		}
	}
	return nil, infra.WrapRepoErr("hotel not found", nil, infra.KindNotFound)
}

func (r *InventoryRepository) RoomsForHotel(_ context.Context, hotelID uuid.UUID) ([]*hotel.Room, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := []*hotel.Room{}
	for _, room := range s.rooms {
		if room.HotelID() == hotelID {
			result = append(result, room)
		}
	}
	return result, nil
}

func (r *InventoryRepository) FindRoomByID(_ context.Context, id uuid.UUID) (*hotel.Room, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, room := range s.rooms {
		if room.ID() == id {
			return room, nil
		}
	}
	return nil, infra.WrapRepoErr("room not found", nil, infra.KindNotFound)
}

func (r *InventoryRepository) CreateRoom(_ context.Context, room *hotel.Room) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	s.rooms = append(s.rooms, room)
	return nil
}

// cloneHotel keeps fetched hotels detached from later Approve and review
// stat writes, which replace the stored entry wholesale.
func cloneHotel(h *hotel.Hotel) *hotel.Hotel {
	amenities := append([]string(nil), h.Amenities()...)
	return hotel.Reconstruct(
		h.ID(), h.Name(), h.Description(), h.Location(), h.City(), h.Address(),
		h.Rating(), h.Stars(), h.ImageURL(), amenities,
		h.ReviewCount(), h.Approved(),
	)
}

func matchesFilter(h *hotel.Hotel, rooms []*hotel.Room, f shared.HotelFilter) bool {
	if f.City != nil && !strings.Contains(strings.ToLower(h.City()), strings.ToLower(*f.City)) {
		return false
	}
	if f.Stars != nil && (h.Stars() == nil || *h.Stars() != *f.Stars) {
		return false
	}
	if f.Query != nil {
		q := strings.ToLower(*f.Query)
		if !strings.Contains(strings.ToLower(h.Name()), q) &&
			!strings.Contains(strings.ToLower(h.Description()), q) &&
			!strings.Contains(strings.ToLower(h.Location()), q) &&
			!strings.Contains(strings.ToLower(h.City()), q) {
			return false
		}
	}
	if f.MinPrice != nil && !hasRoomPricedAtLeast(h.ID(), rooms, *f.MinPrice) {
		return false
	}
	if f.MaxPrice != nil && !hasRoomPricedAtMost(h.ID(), rooms, *f.MaxPrice) {
		return false
	}
	return true
}

func hasRoomPricedAtLeast(hotelID uuid.UUID, rooms []*hotel.Room, min float64) bool {
	for _, r := range rooms {
		if r.HotelID() == hotelID && r.Price() >= min {
			return true
		}
	}
	return false
}

func hasRoomPricedAtMost(hotelID uuid.UUID, rooms []*hotel.Room, max float64) bool {
	for _, r := range rooms {
		if r.HotelID() == hotelID && r.Price() <= max {
			return true
		}
	}
	return false
}
