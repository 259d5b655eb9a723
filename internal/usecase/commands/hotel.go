package commands

import (
	"context"
	"log/slog"

	"stayfinder/internal/domain/hotel"
	"stayfinder/internal/pkg/errs"
	"stayfinder/internal/usecase/queries"
	"stayfinder/internal/usecase/shared"

	"github.com/google/uuid"
)

type RegisterHotelInput struct {
	Name        string
	Description string
	Location    string
	City        string
	Address     string
	Stars       *int
	ImageURL    *string
	Amenities   []string
}

type HotelCommands interface {
	RegisterHotel(ctx context.Context, in RegisterHotelInput) (*hotel.Hotel, error)
	ApproveHotel(ctx context.Context, id uuid.UUID) (*hotel.Hotel, error)
}

type hotelCommandsImpl struct {
	inventory shared.InventoryRepository
	cache     shared.Cache
}

func NewHotelCommands(inventory shared.InventoryRepository, cache shared.Cache) HotelCommands {
	return &hotelCommandsImpl{
		inventory: inventory,
		cache:     cache,
	}
}

func (c *hotelCommandsImpl) RegisterHotel(ctx context.Context, in RegisterHotelInput) (*hotel.Hotel, error) {
	h, err := hotel.New(in.Name, in.Description, in.Location, in.City, in.Address, in.Stars, in.ImageURL, in.Amenities)
	if err != nil {
		return nil, errs.Mark(err, shared.ErrValidation)
	}

	if err := c.inventory.CreateHotel(ctx, h); err != nil {
		return nil, shared.MapRepoErr(err, shared.ErrStorageUnavailable)
	}

	slog.Info("hotel registered, pending approval", "hotel_id", h.ID(), "name", h.Name())
	return h, nil
}

func (c *hotelCommandsImpl) ApproveHotel(ctx context.Context, id uuid.UUID) (*hotel.Hotel, error) {
	h, err := c.inventory.ApproveHotel(ctx, id)
	if err != nil {
		return nil, shared.MapRepoErr(err, shared.ErrHotelNotFound)
	}

	if err := c.cache.Del(ctx, queries.HotelCacheKey(id)); err != nil {
		slog.Warn("failed to invalidate hotel cache", "hotel_id", id, "error", err.Error())
	}

	slog.Info("hotel approved", "hotel_id", id)
	return h, nil
}
