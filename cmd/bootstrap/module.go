package bootstrap

import (
	"recarma/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	DBModule,
	RedisModule,
	JWTModule,
	AssistantModule,
	components.RepositoryModule,
	components.UseCaseModule,
	components.HandlerModule,
)
