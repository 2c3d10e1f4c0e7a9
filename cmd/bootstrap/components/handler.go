package components

import (
	"recarma/internal/handler"
	"recarma/internal/handler/api"
	"recarma/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewVehicleHandler,
		api.NewPickupHandler,
		api.NewDocumentHandler,
		api.NewAssistantHandler,
		middleware.NewAuthMiddleware,
		NewHandlers,
	),
	fx.Invoke(handler.NewRouter),
)

func NewHandlers(
	auth *api.AuthHandler,
	vehicle *api.VehicleHandler,
	pickup *api.PickupHandler,
	document *api.DocumentHandler,
	assistant *api.AssistantHandler,
) handler.Handlers {
	return handler.Handlers{
		Auth:      auth,
		Vehicle:   vehicle,
		Pickup:    pickup,
		Document:  document,
		Assistant: assistant,
	}
}
