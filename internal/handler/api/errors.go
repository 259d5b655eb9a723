package api

import (
	"net/http"

	"stayfinder/internal/handler/httperr"
	"stayfinder/internal/pkg/errs"
	"stayfinder/internal/usecase/commands"
	"stayfinder/internal/usecase/shared"

	"github.com/gin-gonic/gin"
)

// respondUsecaseError is the single translation point from the usecase error
// taxonomy to HTTP. Storage internals never reach the client.
func respondUsecaseError(c *gin.Context, err error) {
	switch {
	case errs.Is(err, shared.ErrHotelNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, httperr.KindNotFound, "Hotel not found")
	case errs.Is(err, shared.ErrRoomNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, httperr.KindNotFound, "Room not found")
	case errs.Is(err, shared.ErrBookingNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, httperr.KindNotFound, "Booking not found")
	case errs.Is(err, shared.ErrUserNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, httperr.KindNotFound, "User not found")
	case errs.Is(err, shared.ErrValidation):
		httperr.AbortWithError(c, http.StatusBadRequest, err, httperr.KindValidation, err.Error())
	case errs.Is(err, shared.ErrForbidden):
		httperr.AbortWithError(c, http.StatusForbidden, err, httperr.KindForbidden, "Operation not permitted")
	case errs.Is(err, shared.ErrInvalidTransition):
		httperr.AbortWithError(c, http.StatusConflict, err, httperr.KindConflict, "Invalid booking state transition")
	case errs.Is(err, shared.ErrBookingOverlap):
		httperr.AbortWithError(c, http.StatusConflict, err, httperr.KindConflict, "Room already booked for the requested dates")
	case errs.Is(err, commands.ErrTokenValidation):
		httperr.AbortWithError(c, http.StatusUnauthorized, err, httperr.KindUnauthorized, "Invalid or expired token")
	case errs.Is(err, shared.ErrInvalidCredentials):
		httperr.AbortWithError(c, http.StatusUnauthorized, err, httperr.KindUnauthorized, "Invalid email or password")
	case errs.Is(err, shared.ErrEmailTaken):
		httperr.AbortWithError(c, http.StatusConflict, err, httperr.KindConflict, "Email already registered")
	case errs.Is(err, shared.ErrUsernameTaken):
		httperr.AbortWithError(c, http.StatusConflict, err, httperr.KindConflict, "Username already taken")
	case errs.Is(err, shared.ErrStorageTimeout):
		httperr.AbortWithError(c, http.StatusGatewayTimeout, err, httperr.KindTimeout, "Storage timed out")
	case errs.Is(err, shared.ErrStorageUnavailable):
		httperr.AbortWithError(c, http.StatusBadGateway, err, httperr.KindStorage, "Storage unavailable")
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, httperr.KindInternal, "Internal server error")
	}
}
