package response

import (
	"stayfinder/internal/domain/hotel"

	"github.com/google/uuid"
)

type HotelResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Location    string    `json:"location"`
	City        string    `json:"city"`
	Address     string    `json:"address"`
	Rating      *float64  `json:"rating,omitempty"`
	Stars       *int      `json:"stars,omitempty"`
	ImageURL    *string   `json:"imageUrl,omitempty"`
	Amenities   []string  `json:"amenities"`
	ReviewCount int       `json:"reviewCount"`
	Approved    bool      `json:"approved"`
}

type RoomResponse struct {
	ID          uuid.UUID `json:"id"`
	HotelID     uuid.UUID `json:"hotelId"`
	RoomType    string    `json:"roomType"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	Capacity    int       `json:"capacity"`
	Available   bool      `json:"available"`
	ImageURL    *string   `json:"imageUrl,omitempty"`
	Amenities   []string  `json:"amenities"`
}

func FromHotel(h *hotel.Hotel) *HotelResponse {
	amenities := h.Amenities()
	if amenities == nil {
		amenities = []string{}
	}
	return &HotelResponse{
		ID:          h.ID(),
		Name:        h.Name(),
		Description: h.Description(),
		Location:    h.Location(),
		City:        h.City(),
		Address:     h.Address(),
		Rating:      h.Rating(),
		Stars:       h.Stars(),
		ImageURL:    h.ImageURL(),
		Amenities:   amenities,
		ReviewCount: h.ReviewCount(),
		Approved:    h.Approved(),
	}
}

func FromHotels(hs []*hotel.Hotel) []*HotelResponse {
	out := make([]*HotelResponse, len(hs))
	for i, h := range hs {
		out[i] = FromHotel(h)
	}
	return out
}

func FromRoom(r *hotel.Room) *RoomResponse {
	amenities := r.Amenities()
	if amenities == nil {
		amenities = []string{}
	}
	return &RoomResponse{
		ID:          r.ID(),
		HotelID:     r.HotelID(),
		RoomType:    r.RoomType(),
		Description: r.Description(),
		Price:       r.Price(),
		Capacity:    r.Capacity(),
		Available:   r.Available(),
		ImageURL:    r.ImageURL(),
		Amenities:   amenities,
	}
}

func FromRooms(rs []*hotel.Room) []*RoomResponse {
	out := make([]*RoomResponse, len(rs))
	for i, r := range rs {
		out[i] = FromRoom(r)
	}
	return out
}
