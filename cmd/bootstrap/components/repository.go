package components

import (
	"recarma/internal/infra/cache"
	"recarma/internal/infra/readstore"
	repo_impl "recarma/internal/infra/repository"
	"recarma/internal/pkg/config"
	"recarma/internal/usecase"
	"recarma/internal/usecase/commands"
	"recarma/internal/usecase/queries"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		fx.Annotate(
			repo_impl.NewUserRepository,
			fx.As(new(usecase.UserRepository)),
		),
		fx.Annotate(
			repo_impl.NewVehicleRepository,
			fx.As(new(commands.VehicleRepository)),
		),
		fx.Annotate(
			repo_impl.NewPickupRepository,
			fx.As(new(commands.PickupRepository)),
		),
		fx.Annotate(
			repo_impl.NewDocumentRepository,
			fx.As(new(commands.DocumentRepository)),
		),
		fx.Annotate(
			NewStatusCache,
			fx.As(new(commands.StatusCache)),
			fx.As(new(queries.StatusReader)),
		),
		// Read-side repositories for queries
		fx.Annotate(
			readstore.NewVehicleReadStore,
			fx.As(new(queries.VehicleReadStore)),
		),
		fx.Annotate(
			readstore.NewPickupReadStore,
			fx.As(new(queries.PickupReadStore)),
		),
	),
)

func NewStatusCache(client *redis.Client, cfg config.Config) *cache.StatusCache {
	return cache.NewStatusCache(client, cfg.Redis)
}
