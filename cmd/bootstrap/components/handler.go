package components

import (
	"stayfinder/internal/handler"
	"stayfinder/internal/handler/api"
	"stayfinder/internal/handler/middleware"
	"stayfinder/internal/pkg/config"
	"stayfinder/internal/pkg/jwt"
	"stayfinder/internal/usecase/commands"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		NewAuthHandler,
		api.NewHotelHandler,
		api.NewBookingHandler,
		api.NewReviewHandler,
		middleware.NewAuthMiddleware,
		NewHandlers,
	),
	fx.Invoke(handler.NewRouter),
)

func NewAuthHandler(authCommands commands.AuthCommands, tokens *jwt.Service, cfg config.Config) *api.AuthHandler {
	return api.NewAuthHandler(authCommands, tokens, cfg.Cookie)
}

func NewHandlers(auth *api.AuthHandler, hotel *api.HotelHandler, booking *api.BookingHandler, review *api.ReviewHandler) handler.Handlers {
	return handler.Handlers{
		Auth:    auth,
		Hotel:   hotel,
		Booking: booking,
		Review:  review,
	}
}
