package queries

import (
	"context"
	"log/slog"
	"time"

	"stayfinder/internal/domain/hotel"
	"stayfinder/internal/usecase/shared"

	"github.com/google/uuid"
)

// HotelQueries answers the read side of the inventory: filtered public
// search, admin listing, and cached single-hotel lookups.
type HotelQueries interface {
	List(ctx context.Context, filter shared.HotelFilter) ([]*hotel.Hotel, error)
	ListAll(ctx context.Context) ([]*hotel.Hotel, error)
	GetByID(ctx context.Context, id uuid.UUID) (*hotel.Hotel, error)
	RoomsForHotel(ctx context.Context, hotelID uuid.UUID) ([]*hotel.Room, error)
	GetRoom(ctx context.Context, id uuid.UUID) (*hotel.Room, error)
}

type hotelQueriesImpl struct {
	inventory shared.InventoryRepository
	cache     shared.Cache
	cacheTTL  time.Duration
}

func NewHotelQueries(inventory shared.InventoryRepository, cache shared.Cache, cacheTTL time.Duration) HotelQueries {
	return &hotelQueriesImpl{
		inventory: inventory,
		cache:     cache,
		cacheTTL:  cacheTTL,
	}
}

func HotelCacheKey(id uuid.UUID) string {
	return "hotel:" + id.String()
}

func (q *hotelQueriesImpl) List(ctx context.Context, filter shared.HotelFilter) ([]*hotel.Hotel, error) {
	hotels, err := q.inventory.ListHotels(ctx, filter)
	if err != nil {
		return nil, shared.MapRepoErr(err, shared.ErrStorageUnavailable)
	}
	return hotels, nil
}

func (q *hotelQueriesImpl) ListAll(ctx context.Context) ([]*hotel.Hotel, error) {
	hotels, err := q.inventory.ListAllHotels(ctx)
	if err != nil {
		return nil, shared.MapRepoErr(err, shared.ErrStorageUnavailable)
	}
	return hotels, nil
}

func (q *hotelQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*hotel.Hotel, error) {
	key := HotelCacheKey(id)

	var cached hotelCacheEntry
	if hit, err := q.cache.Get(ctx, key, &cached); err == nil && hit {
		return cached.toDomain(), nil
	} else if err != nil {
		slog.Warn("hotel cache read failed", "hotel_id", id, "error", err.Error())
	}

	h, err := q.inventory.FindHotelByID(ctx, id)
	if err != nil {
		return nil, shared.MapRepoErr(err, shared.ErrHotelNotFound)
	}

	if err := q.cache.Set(ctx, key, newHotelCacheEntry(h), q.cacheTTL); err != nil {
		slog.Warn("hotel cache write failed", "hotel_id", id, "error", err.Error())
	}

	return h, nil
}

func (q *hotelQueriesImpl) RoomsForHotel(ctx context.Context, hotelID uuid.UUID) ([]*hotel.Room, error) {
	rooms, err := q.inventory.RoomsForHotel(ctx, hotelID)
	if err != nil {
		return nil, shared.MapRepoErr(err, shared.ErrStorageUnavailable)
	}
	return rooms, nil
}

func (q *hotelQueriesImpl) GetRoom(ctx context.Context, id uuid.UUID) (*hotel.Room, error) {
	room, err := q.inventory.FindRoomByID(ctx, id)
	if err != nil {
		return nil, shared.MapRepoErr(err, shared.ErrRoomNotFound)
	}
	return room, nil
}

// hotelCacheEntry is the serialized shape of a hotel in the cache; entities
// keep their fields private, so the cache round-trips through this struct.
type hotelCacheEntry struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Location    string    `json:"location"`
	City        string    `json:"city"`
	Address     string    `json:"address"`
	Rating      *float64  `json:"rating,omitempty"`
	Stars       *int      `json:"stars,omitempty"`
	ImageURL    *string   `json:"image_url,omitempty"`
	Amenities   []string  `json:"amenities"`
	ReviewCount int       `json:"review_count"`
	Approved    bool      `json:"approved"`
}

func newHotelCacheEntry(h *hotel.Hotel) hotelCacheEntry {
	return hotelCacheEntry{
		ID:          h.ID(),
		Name:        h.Name(),
		Description: h.Description(),
		Location:    h.Location(),
		City:        h.City(),
		Address:     h.Address(),
		Rating:      h.Rating(),
		Stars:       h.Stars(),
		ImageURL:    h.ImageURL(),
		Amenities:   h.Amenities(),
		ReviewCount: h.ReviewCount(),
		Approved:    h.Approved(),
	}
}

func (e hotelCacheEntry) toDomain() *hotel.Hotel {
	return hotel.Reconstruct(
		e.ID, e.Name, e.Description, e.Location, e.City, e.Address,
		e.Rating, e.Stars, e.ImageURL, e.Amenities, e.ReviewCount, e.Approved,
	)
}
