package api

import (
	"net/http"

	reqdto "stayfinder/internal/handler/dto/request"
	resdto "stayfinder/internal/handler/dto/response"
	"stayfinder/internal/handler/httperr"
	"stayfinder/internal/handler/middleware"
	"stayfinder/internal/pkg/errs"
	"stayfinder/internal/usecase/commands"
	"stayfinder/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type BookingHandler struct {
	bookingCommands commands.BookingCommands
	bookingQueries  queries.BookingQueries
}

func NewBookingHandler(bookingCommands commands.BookingCommands, bookingQueries queries.BookingQueries) *BookingHandler {
	return &BookingHandler{
		bookingCommands: bookingCommands,
		bookingQueries:  bookingQueries,
	}
}

func (h *BookingHandler) CreateBooking(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errs.New("user id missing from context"), httperr.KindInternal, "Internal server error")
		return
	}

	var req reqdto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, httperr.KindValidation, "Invalid request format")
		return
	}

	booking, err := h.bookingCommands.PlaceBooking(c.Request.Context(), commands.PlaceBookingInput{
		UserID:   userID,
		RoomID:   req.RoomID,
		CheckIn:  req.CheckInDate.Time,
		CheckOut: req.CheckOutDate.Time,
		Guests:   req.NumberOfGuests,
	})
	if err != nil {
		respondUsecaseError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.FromBooking(booking))
}

// GetUserBookings returns only the caller's own bookings.
func (h *BookingHandler) GetUserBookings(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errs.New("user id missing from context"), httperr.KindInternal, "Internal server error")
		return
	}

	bookings, err := h.bookingQueries.ListByUser(c.Request.Context(), userID)
	if err != nil {
		respondUsecaseError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromBookings(bookings))
}

func (h *BookingHandler) CancelBooking(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errs.New("user id missing from context"), httperr.KindInternal, "Internal server error")
		return
	}
	isAdmin, _ := middleware.GetIsAdmin(c)

	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	booking, err := h.bookingCommands.CancelBooking(c.Request.Context(), id, userID, isAdmin)
	if err != nil {
		respondUsecaseError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromBooking(booking))
}

func (h *BookingHandler) ConfirmBooking(c *gin.Context) {
	var req reqdto.ConfirmBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, httperr.KindValidation, "Invalid request format")
		return
	}

	booking, err := h.bookingCommands.ConfirmBooking(c.Request.Context(), req.BookingID, req.PaymentRef)
	if err != nil {
		respondUsecaseError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.ConfirmBookingResponse{
		Success: true,
		Booking: resdto.FromBooking(booking),
	})
}

// ProcessPayment records a simulated payment and confirms the booking.
func (h *BookingHandler) ProcessPayment(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errs.New("user id missing from context"), httperr.KindInternal, "Internal server error")
		return
	}

	var req reqdto.ProcessPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, httperr.KindValidation, "Invalid request format")
		return
	}

	result, err := h.bookingCommands.ProcessPayment(c.Request.Context(), req.BookingID, userID, req.Method)
	if err != nil {
		respondUsecaseError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.ProcessPaymentResponse{
		Payment: resdto.FromPayment(result.Payment),
		Booking: resdto.FromBooking(result.Booking),
	})
}
