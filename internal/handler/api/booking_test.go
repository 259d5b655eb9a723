//go:build unit

package api_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"stayfinder/internal/handler/api"
	"stayfinder/internal/handler/dto/request"
	resdto "stayfinder/internal/handler/dto/response"
	"stayfinder/internal/handler/middleware"
	"stayfinder/internal/infra/memory"
	"stayfinder/internal/pkg/clock"
	"stayfinder/internal/pkg/jwt"
	"stayfinder/internal/usecase/commands"
	"stayfinder/internal/usecase/queries"
	"stayfinder/tests/common/builder"
	commonhttp "stayfinder/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

type BookingHandlerTestSuite struct {
	suite.Suite
	router *gin.Engine
	store  *memory.Store
	tokens *jwt.Service
	clock  *clock.MockClock
	roomID uuid.UUID
	userID uuid.UUID
	token  string
}

func TestBookingHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(BookingHandlerTestSuite))
}

func (s *BookingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()
	s.router.Use(middleware.ErrorHandler())

	s.store = memory.NewStore()
	s.tokens = jwt.NewService("test-secret", 15*time.Minute, time.Hour)
	s.clock = clock.NewMockClock(time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC))

	ctx := context.Background()
	h := builder.NewHotelBuilder().Build()
	s.Require().NoError(s.store.Inventory().CreateHotel(ctx, h))
	room := builder.NewRoomBuilder().WithHotelID(h.ID()).WithPrice(90).WithCapacity(2).Build()
	s.Require().NoError(s.store.Inventory().CreateRoom(ctx, room))
	s.roomID = room.ID()

	s.userID = uuid.New()
	token, err := s.tokens.GenerateAccessToken(s.userID, false)
	s.Require().NoError(err)
	s.token = token

	bookingCommands := commands.NewBookingCommands(s.store.Bookings(), s.store.Inventory(), s.clock)
	bookingQueries := queries.NewBookingQueries(s.store.Bookings())
	handler := api.NewBookingHandler(bookingCommands, bookingQueries)

	authMiddleware := middleware.NewAuthMiddleware(s.tokens)
	authed := s.router.Group("/api", authMiddleware.RequireAuth())
	authed.POST("/bookings", handler.CreateBooking)
	authed.GET("/bookings", handler.GetUserBookings)
	authed.PATCH("/bookings/:id/cancel", handler.CancelBooking)
	authed.POST("/confirm-booking", handler.ConfirmBooking)
}

func (s *BookingHandlerTestSuite) createBookingBody() map[string]any {
	return map[string]any{
		"roomId":         s.roomID,
		"hotelId":        uuid.New(),
		"checkInDate":    "2025-07-10",
		"checkOutDate":   "2025-07-13",
		"numberOfGuests": 2,
	}
}

func (s *BookingHandlerTestSuite) TestCreateBooking() {
	w := commonhttp.PerformRequest(s.T(), s.router, http.MethodPost, "/api/bookings", s.createBookingBody(), s.token)

	var got resdto.BookingResponse
	commonhttp.AssertSuccessResponse(s.T(), w, http.StatusCreated, &got)
	s.Equal(s.userID, got.UserID)
	s.Equal(s.roomID, got.RoomID)
	s.Equal("2025-07-10", got.CheckInDate)
	s.InDelta(270.0, got.TotalPrice, 0.001)
	s.Equal("pending", got.Status)
	s.Equal("pending", got.PaymentStatus)
}

func (s *BookingHandlerTestSuite) TestCreateBookingRequiresAuth() {
	w := commonhttp.PerformRequest(s.T(), s.router, http.MethodPost, "/api/bookings", s.createBookingBody(), "")
	commonhttp.AssertErrorResponse(s.T(), w, http.StatusUnauthorized, "UNAUTHORIZED")
}

func (s *BookingHandlerTestSuite) TestCreateBookingUnknownRoom() {
	body := s.createBookingBody()
	body["roomId"] = uuid.New()

	w := commonhttp.PerformRequest(s.T(), s.router, http.MethodPost, "/api/bookings", body, s.token)
	commonhttp.AssertErrorResponse(s.T(), w, http.StatusNotFound, "NOT_FOUND")
}

func (s *BookingHandlerTestSuite) TestCreateBookingInvertedDates() {
	body := s.createBookingBody()
	body["checkInDate"] = "2025-07-13"
	body["checkOutDate"] = "2025-07-10"

	w := commonhttp.PerformRequest(s.T(), s.router, http.MethodPost, "/api/bookings", body, s.token)
	commonhttp.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "VALIDATION")
}

func (s *BookingHandlerTestSuite) TestCreateBookingMissingFields() {
	w := commonhttp.PerformRequest(s.T(), s.router, http.MethodPost, "/api/bookings",
		map[string]any{"roomId": s.roomID}, s.token)
	commonhttp.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "VALIDATION")
}

func (s *BookingHandlerTestSuite) TestCreateBookingOverlap() {
	first := commonhttp.PerformRequest(s.T(), s.router, http.MethodPost, "/api/bookings", s.createBookingBody(), s.token)
	s.Require().Equal(http.StatusCreated, first.Code)

	second := commonhttp.PerformRequest(s.T(), s.router, http.MethodPost, "/api/bookings", s.createBookingBody(), s.token)
	commonhttp.AssertErrorResponse(s.T(), second, http.StatusConflict, "CONFLICT")
}

func (s *BookingHandlerTestSuite) TestListOwnBookingsOnly() {
	w := commonhttp.PerformRequest(s.T(), s.router, http.MethodPost, "/api/bookings", s.createBookingBody(), s.token)
	s.Require().Equal(http.StatusCreated, w.Code)

	otherToken, err := s.tokens.GenerateAccessToken(uuid.New(), false)
	s.Require().NoError(err)

	var mine []resdto.BookingResponse
	commonhttp.AssertSuccessResponse(s.T(),
		commonhttp.PerformRequest(s.T(), s.router, http.MethodGet, "/api/bookings", nil, s.token),
		http.StatusOK, &mine)
	s.Len(mine, 1)

	var theirs []resdto.BookingResponse
	commonhttp.AssertSuccessResponse(s.T(),
		commonhttp.PerformRequest(s.T(), s.router, http.MethodGet, "/api/bookings", nil, otherToken),
		http.StatusOK, &theirs)
	s.Empty(theirs)
}

func (s *BookingHandlerTestSuite) TestConfirmBooking() {
	var created resdto.BookingResponse
	commonhttp.AssertSuccessResponse(s.T(),
		commonhttp.PerformRequest(s.T(), s.router, http.MethodPost, "/api/bookings", s.createBookingBody(), s.token),
		http.StatusCreated, &created)

	w := commonhttp.PerformRequest(s.T(), s.router, http.MethodPost, "/api/confirm-booking",
		request.ConfirmBookingRequest{BookingID: created.ID}, s.token)

	var got resdto.ConfirmBookingResponse
	commonhttp.AssertSuccessResponse(s.T(), w, http.StatusOK, &got)
	s.True(got.Success)
	s.Equal("confirmed", got.Booking.Status)
	s.Equal("paid", got.Booking.PaymentStatus)
}

func (s *BookingHandlerTestSuite) TestConfirmUnknownBooking() {
	w := commonhttp.PerformRequest(s.T(), s.router, http.MethodPost, "/api/confirm-booking",
		request.ConfirmBookingRequest{BookingID: uuid.New()}, s.token)
	commonhttp.AssertErrorResponse(s.T(), w, http.StatusNotFound, "NOT_FOUND")
}

func (s *BookingHandlerTestSuite) TestCancelBooking() {
	var created resdto.BookingResponse
	commonhttp.AssertSuccessResponse(s.T(),
		commonhttp.PerformRequest(s.T(), s.router, http.MethodPost, "/api/bookings", s.createBookingBody(), s.token),
		http.StatusCreated, &created)

	w := commonhttp.PerformRequest(s.T(), s.router, http.MethodPatch,
		"/api/bookings/"+created.ID.String()+"/cancel", nil, s.token)

	var got resdto.BookingResponse
	commonhttp.AssertSuccessResponse(s.T(), w, http.StatusOK, &got)
	s.Equal("cancelled", got.Status)
}

func (s *BookingHandlerTestSuite) TestCancelSomeoneElsesBooking() {
	var created resdto.BookingResponse
	commonhttp.AssertSuccessResponse(s.T(),
		commonhttp.PerformRequest(s.T(), s.router, http.MethodPost, "/api/bookings", s.createBookingBody(), s.token),
		http.StatusCreated, &created)

	strangerToken, err := s.tokens.GenerateAccessToken(uuid.New(), false)
	s.Require().NoError(err)

	w := commonhttp.PerformRequest(s.T(), s.router, http.MethodPatch,
		"/api/bookings/"+created.ID.String()+"/cancel", nil, strangerToken)
	commonhttp.AssertErrorResponse(s.T(), w, http.StatusForbidden, "FORBIDDEN")
}

func (s *BookingHandlerTestSuite) TestCancelBadID() {
	w := commonhttp.PerformRequest(s.T(), s.router, http.MethodPatch,
		"/api/bookings/not-a-uuid/cancel", nil, s.token)
	commonhttp.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "VALIDATION")
}
