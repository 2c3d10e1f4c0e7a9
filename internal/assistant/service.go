package assistant

import (
	"context"
	"log/slog"
	"strings"
)

// Service wraps a Client with the degradation contract: a failing
// collaborator never fails the caller, it produces the apology reply.
type Service struct {
	client Client
}

func NewService(client Client) *Service {
	return &Service{client: client}
}

func (s *Service) Chat(ctx context.Context, message string) string {
	message = strings.TrimSpace(message)
	if message == "" {
		return "I didn't get that. Could you rephrase?"
	}

	reply, err := s.client.Generate(ctx, message)
	if err != nil {
		slog.Warn("assistant generation failed", "error", err)
		return FallbackReply
	}
	if strings.TrimSpace(reply) == "" {
		return "I didn't get that. Could you rephrase?"
	}
	return reply
}
