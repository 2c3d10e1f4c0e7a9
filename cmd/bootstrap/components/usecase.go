package components

import (
	"recarma/internal/pkg/clock"
	"recarma/internal/pkg/config"
	"recarma/internal/usecase"
	"recarma/internal/usecase/commands"
	"recarma/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	usecase.NewAuthUseCase,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		NewVehicleCommands,
		NewPickupCommands,
		commands.NewDocumentCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewVehicleQueries,
		queries.NewPickupQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)

func NewVehicleCommands(
	vehicleRepo commands.VehicleRepository,
	statusCache commands.StatusCache,
	clk clock.Clock,
	cfg config.Config,
) commands.VehicleCommands {
	return commands.NewVehicleCommands(vehicleRepo, statusCache, clk, cfg.Lifecycle.StrictTransitions)
}

func NewPickupCommands(
	pickupRepo commands.PickupRepository,
	vehicleRepo commands.VehicleRepository,
	statusCache commands.StatusCache,
	pool *pgxpool.Pool,
	clk clock.Clock,
) commands.PickupCommands {
	return commands.NewPickupCommands(pickupRepo, vehicleRepo, statusCache, pool, clk)
}
