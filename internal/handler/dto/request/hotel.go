package request

import (
	"strconv"

	"stayfinder/internal/usecase/shared"

	"github.com/gin-gonic/gin"
)

type RegisterHotelRequest struct {
	Name        string   `json:"name" binding:"required"`
	Description string   `json:"description"`
	Location    string   `json:"location"`
	City        string   `json:"city" binding:"required"`
	Address     string   `json:"address"`
	Stars       *int     `json:"stars,omitempty" binding:"omitempty,min=1,max=5"`
	ImageURL    *string  `json:"imageUrl,omitempty"`
	Amenities   []string `json:"amenities,omitempty"`
}

// ParseHotelFilter reads the public search query parameters; malformed
// numeric values are reported, absent ones leave the filter open.
func ParseHotelFilter(c *gin.Context) (shared.HotelFilter, error) {
	var f shared.HotelFilter

	if city := c.Query("city"); city != "" {
		f.City = &city
	}
	if q := c.Query("q"); q != "" {
		f.Query = &q
	}
	if s := c.Query("stars"); s != "" {
		stars, err := strconv.Atoi(s)
		if err != nil {
			return f, err
		}
		f.Stars = &stars
	}
	if s := c.Query("minPrice"); s != "" {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return f, err
		}
		f.MinPrice = &v
	}
	if s := c.Query("maxPrice"); s != "" {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return f, err
		}
		f.MaxPrice = &v
	}

	return f, nil
}
