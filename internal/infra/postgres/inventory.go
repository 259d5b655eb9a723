package postgres

import (
	"context"
	"fmt"
	"strings"
	"time"

	"stayfinder/internal/domain/hotel"
	"stayfinder/internal/infra"
	"stayfinder/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type InventoryRepository struct {
	pool    *pgxpool.Pool
	timeout time.Duration
}

func NewInventoryRepository(pool *pgxpool.Pool, timeout time.Duration) *InventoryRepository {
	return &InventoryRepository{pool: pool, timeout: timeout}
}

func (r *InventoryRepository) ListHotels(ctx context.Context, filter shared.HotelFilter) ([]*hotel.Hotel, error) {
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	query, args := buildListHotelsQuery(filter)
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, mapPgErr("failed to list hotels", err)
	}
	defer rows.Close()

	return collectHotels(rows)
}

// buildListHotelsQuery assembles the public search query. Only approved
// hotels are visible; the price bounds match hotels through their rooms.
func buildListHotelsQuery(filter shared.HotelFilter) (string, []any) {
	var sb strings.Builder
	sb.WriteString(`SELECT` + hotelColumns + ` FROM hotels WHERE approved = TRUE`)

	var args []any
	arg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if filter.City != nil {
		sb.WriteString(` AND city ILIKE '%' || ` + arg(*filter.City) + ` || '%'`)
	}
	if filter.Stars != nil {
		sb.WriteString(` AND stars = ` + arg(*filter.Stars))
	}
	if filter.Query != nil {
		p := arg(*filter.Query)
		sb.WriteString(` AND (name ILIKE '%' || ` + p + ` || '%'` +
			` OR description ILIKE '%' || ` + p + ` || '%'` +
			` OR location ILIKE '%' || ` + p + ` || '%'` +
			` OR city ILIKE '%' || ` + p + ` || '%')`)
	}
	if filter.MinPrice != nil {
		sb.WriteString(` AND EXISTS (SELECT 1 FROM rooms WHERE rooms.hotel_id = hotels.id AND rooms.price >= ` + arg(*filter.MinPrice) + `)`)
	}
	if filter.MaxPrice != nil {
		sb.WriteString(` AND EXISTS (SELECT 1 FROM rooms WHERE rooms.hotel_id = hotels.id AND rooms.price <= ` + arg(*filter.MaxPrice) + `)`)
	}

	sb.WriteString(` ORDER BY seq`)
	return sb.String(), args
}

func (r *InventoryRepository) ListAllHotels(ctx context.Context) ([]*hotel.Hotel, error) {
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	rows, err := r.pool.Query(ctx, listAllHotelsSQL)
	if err != nil {
		return nil, mapPgErr("failed to list all hotels", err)
	}
	defer rows.Close()

	return collectHotels(rows)
}

func (r *InventoryRepository) FindHotelByID(ctx context.Context, id uuid.UUID) (*hotel.Hotel, error) {
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	h, err := scanHotel(r.pool.QueryRow(ctx, getHotelSQL, id))
	if err != nil {
		return nil, mapPgErr("failed to find hotel", err)
	}
	return h, nil
}

func (r *InventoryRepository) CreateHotel(ctx context.Context, h *hotel.Hotel) error {
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	_, err := r.pool.Exec(ctx, insertHotelSQL,
		h.ID(), h.Name(), h.Description(), h.Location(), h.City(), h.Address(),
		h.Rating(), h.Stars(), h.ImageURL(), h.Amenities(), h.ReviewCount(), h.Approved(),
	)
	if err != nil {
		return mapPgErr("failed to create hotel", err)
	}
	return nil
}

func (r *InventoryRepository) ApproveHotel(ctx context.Context, id uuid.UUID) (*hotel.Hotel, error) {
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	h, err := scanHotel(r.pool.QueryRow(ctx, approveHotelSQL, id))
	if err != nil {
		return nil, mapPgErr("failed to approve hotel", err)
	}
	return h, nil
}

func (r *InventoryRepository) RoomsForHotel(ctx context.Context, hotelID uuid.UUID) ([]*hotel.Room, error) {
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	rows, err := r.pool.Query(ctx, roomsForHotelSQL, hotelID)
	if err != nil {
		return nil, mapPgErr("failed to list rooms", err)
	}
	defer rows.Close()

	var out []*hotel.Room
	for rows.Next() {
		rm, err := scanRoom(rows)
		if err != nil {
			return nil, mapPgErr("failed to scan room", err)
		}
		out = append(out, rm)
	}
	if err := rows.Err(); err != nil {
		return nil, mapPgErr("failed to list rooms", err)
	}
	return out, nil
}

func (r *InventoryRepository) FindRoomByID(ctx context.Context, id uuid.UUID) (*hotel.Room, error) {
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	rm, err := scanRoom(r.pool.QueryRow(ctx, getRoomSQL, id))
	if err != nil {
		return nil, mapPgErr("failed to find room", err)
	}
	return rm, nil
}

func (r *InventoryRepository) CreateRoom(ctx context.Context, rm *hotel.Room) error {
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	_, err := r.pool.Exec(ctx, insertRoomSQL,
		rm.ID(), rm.HotelID(), rm.RoomType(), rm.Description(),
		rm.Price(), rm.Capacity(), rm.Available(), rm.ImageURL(), rm.Amenities(),
	)
	if err != nil {
		return mapPgErr("failed to create room", err)
	}
	return nil
}

func scanHotel(row pgx.Row) (*hotel.Hotel, error) {
	var (
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
	)
	if err := row.Scan(&id, &name, &description, &location, &city, &address,
		&rating, &stars, &imageURL, &amenities, &reviewCount, &approved); err != nil {
		return nil, err
	}
	return hotel.Reconstruct(id, name, description, location, city, address,
		rating, stars, imageURL, amenities, reviewCount, approved), nil
}

func collectHotels(rows pgx.Rows) ([]*hotel.Hotel, error) {
	var out []*hotel.Hotel
	for rows.Next() {
		h, err := scanHotel(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan hotel", err)
		}
		out = append(out, h)
	}
	if err := rows.Err(); err != nil {
		return nil, mapPgErr("failed to read hotels", err)
	}
	return out, nil
}

func scanRoom(row pgx.Row) (*hotel.Room, error) {
	var (
		id          uuid.UUID
		hotelID     uuid.UUID
		roomType    string
		description string
		price       float64
		capacity    int
		available   bool
		imageURL    *string
		amenities   []string
	)
	if err := row.Scan(&id, &hotelID, &roomType, &description,
		&price, &capacity, &available, &imageURL, &amenities); err != nil {
		return nil, err
	}
	return hotel.ReconstructRoom(id, hotelID, roomType, description,
		price, capacity, available, imageURL, amenities), nil
}
