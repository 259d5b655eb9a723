package seed

import (
	"context"
	"log/slog"

	"stayfinder/internal/domain/hotel"
	"stayfinder/internal/usecase/shared"

	"github.com/google/uuid"
)

type hotelSeed struct {
	name        string
	description string
	location    string
	city        string
	address     string
	stars       int
	rating      float64
	imageURL    string
	amenities   []string
}

type roomSeed struct {
	roomType    string
	description string
	price       float64
	capacity    int
	imageURL    string
	amenities   []string
}

var sampleHotels = []hotelSeed{
	{
		name:        "Royal Azur Thalasso",
		description: "Luxurious beachfront resort with a spa and multiple pools",
		location:    "Hammamet",
		city:        "Hammamet",
		address:     "123 Beach Road, Hammamet",
		stars:       5,
		rating:      4.8,
		imageURL:    "https://images.unsplash.com/photo-1566073771259-6a8506099945?ixlib=rb-1.2.1&auto=format&fit=crop&w=800&h=500&q=80",
		amenities:   []string{"Spa", "Pool", "Restaurant", "WiFi", "Beach Access"},
	},
	{
		name:        "Movenpick Resort & Marine Spa",
		description: "Elegant hotel with excellent service and Mediterranean views",
		location:    "Sousse",
		city:        "Sousse",
		address:     "45 Marina Avenue, Sousse",
		stars:       5,
		rating:      4.5,
		imageURL:    "https://images.unsplash.com/photo-1551882547-ff40c63fe5fa?ixlib=rb-1.2.1&auto=format&fit=crop&w=800&h=500&q=80",
		amenities:   []string{"Spa", "Pool", "Restaurant", "WiFi", "Gym"},
	},
	{
		name:        "Diar Lemdina Hotel",
		description: "Family-friendly resort with entertainment and water parks",
		location:    "Yasmine Hammamet",
		city:        "Yasmine Hammamet",
		address:     "789 Resort Drive, Yasmine Hammamet",
		stars:       4,
		rating:      4.2,
		imageURL:    "https://images.unsplash.com/photo-1520250497591-112f2f40a3f4?ixlib=rb-1.2.1&auto=format&fit=crop&w=800&h=500&q=80",
		amenities:   []string{"Water Park", "Kid's Club", "Restaurant", "WiFi", "Entertainment"},
	},
}

// Every hotel gets the same three room tiers.
var sampleRooms = []roomSeed{
	{
		roomType:    "Standard",
		description: "Comfortable room with basic amenities",
		price:       90,
		capacity:    2,
		imageURL:    "https://images.unsplash.com/photo-1522771739844-6a9f6d5f14af?ixlib=rb-1.2.1&auto=format&fit=crop&w=800&h=500&q=80",
		amenities:   []string{"WiFi", "TV", "Air Conditioning"},
	},
	{
		roomType:    "Deluxe",
		description: "Spacious room with premium amenities and views",
		price:       150,
		capacity:    3,
		imageURL:    "https://images.unsplash.com/photo-1590490360182-c33d57733427?ixlib=rb-1.2.1&auto=format&fit=crop&w=800&h=500&q=80",
		amenities:   []string{"WiFi", "TV", "Mini Bar", "Air Conditioning", "Sea View"},
	},
	{
		roomType:    "Suite",
		description: "Luxury suite with separate living area and premium services",
		price:       250,
		capacity:    4,
		imageURL:    "https://images.unsplash.com/photo-1591088398332-8a7791972843?ixlib=rb-1.2.1&auto=format&fit=crop&w=800&h=500&q=80",
		amenities:   []string{"WiFi", "TV", "Mini Bar", "Air Conditioning", "Sea View", "Living Room", "Butler Service"},
	},
}

// Run loads the sample catalog: three approved hotels, each with the three
// room tiers. It is not idempotent; run it against an empty store.
func Run(ctx context.Context, inventory shared.InventoryRepository) error {
	for _, hs := range sampleHotels {
		stars := hs.stars
		rating := hs.rating
		imageURL := hs.imageURL

		h := hotel.Reconstruct(
			uuid.New(),
			hs.name, hs.description, hs.location, hs.city, hs.address,
			&rating, &stars, &imageURL, hs.amenities,
			0,    // reviewCount
			true, // approved
		)
		if err := inventory.CreateHotel(ctx, h); err != nil {
			return err
		}

		for _, rs := range sampleRooms {
			roomImageURL := rs.imageURL
			room, err := hotel.NewRoom(h.ID(), rs.roomType, rs.description, rs.price, rs.capacity, &roomImageURL, rs.amenities)
			if err != nil {
				return err
			}
			if err := inventory.CreateRoom(ctx, room); err != nil {
				return err
			}
		}

		slog.Info("seeded hotel", "name", hs.name, "id", h.ID())
	}

	return nil
}
