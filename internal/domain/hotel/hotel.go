package hotel

import (
	"strings"

	"stayfinder/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrEmptyName     = errs.New("hotel name must not be empty")
	ErrEmptyCity     = errs.New("hotel city must not be empty")
	ErrInvalidStars  = errs.New("stars must be between 1 and 5")
	ErrInvalidRating = errs.New("rating must be between 0 and 5")
)

// Hotel is the aggregate root of the inventory catalog. reviewCount is
// derived state: it must always equal the number of persisted reviews
// referencing this hotel.
type Hotel struct {
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

// New creates an owner-submitted hotel: not approved, no reviews yet.
func New(name, description, location, city, address string, stars *int, imageURL *string, amenities []string) (*Hotel, error) {
	if strings.TrimSpace(name) == "" {
		return nil, ErrEmptyName
	}
	if strings.TrimSpace(city) == "" {
		return nil, ErrEmptyCity
	}
	if stars != nil && (*stars < 1 || *stars > 5) {
		return nil, ErrInvalidStars
	}

	return &Hotel{
		id:          uuid.New(),
		name:        strings.TrimSpace(name),
		description: description,
		location:    location,
		city:        city,
		address:     address,
		stars:       stars,
		imageURL:    imageURL,
		amenities:   amenities,
		reviewCount: 0,
		approved:    false,
	}, nil
}

func Reconstruct(
	id uuid.UUID,
	name, description, location, city, address string,
	rating *float64,
	stars *int,
	imageURL *string,
	amenities []string,
	reviewCount int,
	approved bool,
) *Hotel {
	return &Hotel{
		id:          id,
		name:        name,
		description: description,
		location:    location,
		city:        city,
		address:     address,
		rating:      rating,
		stars:       stars,
		imageURL:    imageURL,
		amenities:   amenities,
		reviewCount: reviewCount,
		approved:    approved,
	}
}

// Approve marks the hotel visible to public search. Approving an already
// approved hotel is a no-op.
func (h *Hotel) Approve() {
	h.approved = true
}

// ApplyReviewStats replaces the derived review aggregate. Callers must
// compute it from the persisted reviews within the same unit of work that
// stored the triggering review.
func (h *Hotel) ApplyReviewStats(count int, average *float64) {
	h.reviewCount = count
	h.rating = average
}

func (h *Hotel) ID() uuid.UUID       { return h.id }
func (h *Hotel) Name() string        { return h.name }
func (h *Hotel) Description() string { return h.description }
func (h *Hotel) Location() string    { return h.location }
func (h *Hotel) City() string        { return h.city }
func (h *Hotel) Address() string     { return h.address }
func (h *Hotel) Rating() *float64    { return h.rating }
func (h *Hotel) Stars() *int         { return h.stars }
func (h *Hotel) ImageURL() *string   { return h.imageURL }
func (h *Hotel) Amenities() []string { return h.amenities }
func (h *Hotel) ReviewCount() int    { return h.reviewCount }
func (h *Hotel) Approved() bool      { return h.approved }
