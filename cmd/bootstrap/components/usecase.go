package components

import (
	"stayfinder/internal/pkg/clock"
	"stayfinder/internal/pkg/config"
	"stayfinder/internal/usecase/commands"
	"stayfinder/internal/usecase/queries"
	"stayfinder/internal/usecase/shared"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseCommandsModule,
	usecaseQueriesModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAuthCommands,
		commands.NewBookingCommands,
		commands.NewHotelCommands,
		commands.NewReviewCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		NewHotelQueries,
		queries.NewBookingQueries,
		queries.NewReviewQueries,
	),
)

func NewHotelQueries(cfg config.Config, inventory shared.InventoryRepository, cache shared.Cache) queries.HotelQueries {
	return queries.NewHotelQueries(inventory, cache, cfg.Redis.HotelTTL)
}
