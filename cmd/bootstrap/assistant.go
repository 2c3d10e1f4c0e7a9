package bootstrap

import (
	"recarma/internal/assistant"
	"recarma/internal/pkg/config"

	"go.uber.org/fx"
)

var AssistantModule = fx.Module("assistant",
	fx.Provide(
		fx.Annotate(
			NewGeminiClient,
			fx.As(new(assistant.Client)),
		),
		assistant.NewService,
	),
)

func NewGeminiClient(cfg config.Config) *assistant.GeminiClient {
	return assistant.NewGeminiClient(cfg.Assistant)
}
