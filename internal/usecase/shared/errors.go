package shared

import (
	"stayfinder/internal/infra"
	"stayfinder/internal/pkg/errs"
)

// Usecase-level error taxonomy. Handlers map these onto HTTP status codes;
// nothing below this layer leaks to clients.
var (
	ErrHotelNotFound   = errs.New("hotel not found")
	ErrRoomNotFound    = errs.New("room not found")
	ErrBookingNotFound = errs.New("booking not found")
	ErrUserNotFound    = errs.New("user not found")

	ErrValidation        = errs.New("validation failed")
	ErrForbidden         = errs.New("operation not permitted")
	ErrInvalidTransition = errs.New("invalid booking state transition")
	ErrBookingOverlap    = errs.New("room already booked for the requested dates")

	ErrInvalidCredentials = errs.New("invalid credentials")
	ErrEmailTaken         = errs.New("email already registered")
	ErrUsernameTaken      = errs.New("username already taken")

	ErrStorageUnavailable = errs.New("storage unavailable")
	ErrStorageTimeout     = errs.New("storage timed out")
)

// MapRepoErr lifts a repository error into the taxonomy: absence becomes the
// supplied not-found sentinel, a deadline becomes a timeout, anything else a
// storage failure.
func MapRepoErr(err error, notFound error) error {
	if err == nil {
		return nil
	}
	switch {
	case infra.IsKind(err, infra.KindNotFound):
		return errs.Mark(err, notFound)
	case infra.IsKind(err, infra.KindTimeout):
		return errs.Mark(err, ErrStorageTimeout)
	default:
		return errs.Mark(err, ErrStorageUnavailable)
	}
}
