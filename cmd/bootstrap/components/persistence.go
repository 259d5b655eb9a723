package components

import (
	"stayfinder/internal/infra/postgres"
	"stayfinder/internal/pkg/config"
	"stayfinder/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	fx.Provide(
		fx.Annotate(
			NewInventoryRepository,
			fx.As(new(shared.InventoryRepository)),
		),
		fx.Annotate(
			NewBookingRepository,
			fx.As(new(shared.BookingRepository)),
		),
		fx.Annotate(
			NewReviewRepository,
			fx.As(new(shared.ReviewRepository)),
		),
		fx.Annotate(
			NewUserRepository,
			fx.As(new(shared.UserRepository)),
		),
	),
)

func NewInventoryRepository(cfg config.Config, pool *pgxpool.Pool) *postgres.InventoryRepository {
	return postgres.NewInventoryRepository(pool, cfg.Storage.Timeout)
}

func NewBookingRepository(cfg config.Config, pool *pgxpool.Pool) *postgres.BookingRepository {
	return postgres.NewBookingRepository(pool, cfg.Storage.Timeout)
}

func NewReviewRepository(cfg config.Config, pool *pgxpool.Pool) *postgres.ReviewRepository {
	return postgres.NewReviewRepository(pool, cfg.Storage.Timeout)
}

func NewUserRepository(cfg config.Config, pool *pgxpool.Pool) *postgres.UserRepository {
	return postgres.NewUserRepository(pool, cfg.Storage.Timeout)
}
