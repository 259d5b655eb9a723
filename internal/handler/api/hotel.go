package api

import (
	"net/http"

	reqdto "stayfinder/internal/handler/dto/request"
	resdto "stayfinder/internal/handler/dto/response"
	"stayfinder/internal/handler/httperr"
	"stayfinder/internal/usecase/commands"
	"stayfinder/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type HotelHandler struct {
	hotelQueries  queries.HotelQueries
	hotelCommands commands.HotelCommands
}

func NewHotelHandler(hotelQueries queries.HotelQueries, hotelCommands commands.HotelCommands) *HotelHandler {
	return &HotelHandler{
		hotelQueries:  hotelQueries,
		hotelCommands: hotelCommands,
	}
}

// ListHotels serves the public search; only approved hotels appear.
func (h *HotelHandler) ListHotels(c *gin.Context) {
	filter, err := reqdto.ParseHotelFilter(c)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, httperr.KindValidation, "Invalid query parameter")
		return
	}

	hotels, err := h.hotelQueries.List(c.Request.Context(), filter)
	if err != nil {
		respondUsecaseError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromHotels(hotels))
}

func (h *HotelHandler) GetHotel(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	hotel, err := h.hotelQueries.GetByID(c.Request.Context(), id)
	if err != nil {
		respondUsecaseError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromHotel(hotel))
}

func (h *HotelHandler) GetHotelRooms(c *gin.Context) {
	hotelID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	rooms, err := h.hotelQueries.RoomsForHotel(c.Request.Context(), hotelID)
	if err != nil {
		respondUsecaseError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromRooms(rooms))
}

func (h *HotelHandler) GetRoom(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	room, err := h.hotelQueries.GetRoom(c.Request.Context(), id)
	if err != nil {
		respondUsecaseError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromRoom(room))
}

// RegisterHotel submits a hotel for listing; it stays invisible to the
// public search until an admin approves it.
func (h *HotelHandler) RegisterHotel(c *gin.Context) {
	var req reqdto.RegisterHotelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, httperr.KindValidation, "Invalid request format")
		return
	}

	hotel, err := h.hotelCommands.RegisterHotel(c.Request.Context(), commands.RegisterHotelInput{
		Name:        req.Name,
		Description: req.Description,
		Location:    req.Location,
		City:        req.City,
		Address:     req.Address,
		Stars:       req.Stars,
		ImageURL:    req.ImageURL,
		Amenities:   req.Amenities,
	})
	if err != nil {
		respondUsecaseError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.FromHotel(hotel))
}

// AdminListHotels includes hotels still waiting for approval.
func (h *HotelHandler) AdminListHotels(c *gin.Context) {
	hotels, err := h.hotelQueries.ListAll(c.Request.Context())
	if err != nil {
		respondUsecaseError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromHotels(hotels))
}

func (h *HotelHandler) ApproveHotel(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	hotel, err := h.hotelCommands.ApproveHotel(c.Request.Context(), id)
	if err != nil {
		respondUsecaseError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromHotel(hotel))
}

func parseIDParam(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, httperr.KindValidation, "Invalid id format")
		return uuid.Nil, false
	}
	return id, true
}
