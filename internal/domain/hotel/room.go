package hotel

import (
	"strings"

	"stayfinder/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrEmptyRoomType   = errs.New("room type must not be empty")
	ErrInvalidPrice    = errs.New("room price must be positive")
	ErrInvalidCapacity = errs.New("room capacity must be positive")
)

// Room belongs to exactly one hotel; price is per night.
type Room struct {
	id          uuid.UUID
	hotelID     uuid.UUID
	roomType    string
	description string
	price       float64
	capacity    int
	available   bool
	imageURL    *string
	amenities   []string
}

func NewRoom(hotelID uuid.UUID, roomType, description string, price float64, capacity int, imageURL *string, amenities []string) (*Room, error) {
	if strings.TrimSpace(roomType) == "" {
		return nil, ErrEmptyRoomType
	}
	if price <= 0 {
		return nil, ErrInvalidPrice
	}
	if capacity < 1 {
		return nil, ErrInvalidCapacity
	}

	return &Room{
		id:          uuid.New(),
		hotelID:     hotelID,
		roomType:    strings.TrimSpace(roomType),
		description: description,
		price:       price,
		capacity:    capacity,
		available:   true,
		imageURL:    imageURL,
		amenities:   amenities,
	}, nil
}

func ReconstructRoom(
	id, hotelID uuid.UUID,
	roomType, description string,
	price float64,
	capacity int,
	available bool,
	imageURL *string,
	amenities []string,
) *Room {
	return &Room{
		id:          id,
		hotelID:     hotelID,
		roomType:    roomType,
		description: description,
		price:       price,
		capacity:    capacity,
		available:   available,
		imageURL:    imageURL,
		amenities:   amenities,
	}
}

func (r *Room) ID() uuid.UUID       { return r.id }
func (r *Room) HotelID() uuid.UUID  { return r.hotelID }
func (r *Room) RoomType() string    { return r.roomType }
func (r *Room) Description() string { return r.description }
func (r *Room) Price() float64      { return r.price }
func (r *Room) Capacity() int       { return r.capacity }
func (r *Room) Available() bool     { return r.available }
func (r *Room) ImageURL() *string   { return r.imageURL }
func (r *Room) Amenities() []string { return r.amenities }
