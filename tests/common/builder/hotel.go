package builder

import (
	"stayfinder/internal/domain/hotel"

	"github.com/google/uuid"
)

type HotelBuilder struct {
	id          uuid.UUID
	name        string
	description string
	location    string
	city        string
	address     string
	rating      *float64
	stars       *int
	imageURL    *string
	amenities   []string
	reviewCount int
	approved    bool
}

func NewHotelBuilder() *HotelBuilder {
	stars := 4
	return &HotelBuilder{
		id:          uuid.New(),
		name:        "Dar El Medina",
		description: "Courtyard hotel in the old town",
		location:    "Tunis",
		city:        "Tunis",
		address:     "12 Rue Sidi Ben Arous, Tunis",
		stars:       &stars,
		amenities:   []string{"WiFi", "Restaurant"},
		approved:    true,
	}
}

func (b *HotelBuilder) WithID(id uuid.UUID) *HotelBuilder        { b.id = id; return b }
func (b *HotelBuilder) WithName(name string) *HotelBuilder       { b.name = name; return b }
func (b *HotelBuilder) WithCity(city string) *HotelBuilder       { b.city = city; return b }
func (b *HotelBuilder) WithStars(stars int) *HotelBuilder        { b.stars = &stars; return b }
func (b *HotelBuilder) WithApproved(approved bool) *HotelBuilder { b.approved = approved; return b }
func (b *HotelBuilder) WithRating(rating float64, count int) *HotelBuilder {
	b.rating = &rating
	b.reviewCount = count
	return b
}

func (b *HotelBuilder) Build() *hotel.Hotel {
	return hotel.Reconstruct(
		b.id, b.name, b.description, b.location, b.city, b.address,
		b.rating, b.stars, b.imageURL, b.amenities, b.reviewCount, b.approved,
	)
}

type RoomBuilder struct {
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

func NewRoomBuilder() *RoomBuilder {
	return &RoomBuilder{
		id:          uuid.New(),
		hotelID:     uuid.New(),
		roomType:    "Standard",
		description: "Comfortable room with basic amenities",
		price:       90,
		capacity:    2,
		available:   true,
		amenities:   []string{"WiFi", "TV"},
	}
}

func (b *RoomBuilder) WithID(id uuid.UUID) *RoomBuilder           { b.id = id; return b }
func (b *RoomBuilder) WithHotelID(hotelID uuid.UUID) *RoomBuilder { b.hotelID = hotelID; return b }
func (b *RoomBuilder) WithRoomType(roomType string) *RoomBuilder  { b.roomType = roomType; return b }
func (b *RoomBuilder) WithPrice(price float64) *RoomBuilder       { b.price = price; return b }
func (b *RoomBuilder) WithCapacity(capacity int) *RoomBuilder     { b.capacity = capacity; return b }

func (b *RoomBuilder) Build() *hotel.Room {
	return hotel.ReconstructRoom(
		b.id, b.hotelID, b.roomType, b.description,
		b.price, b.capacity, b.available, b.imageURL, b.amenities,
	)
}
