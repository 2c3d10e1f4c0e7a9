//go:build unit

package assistant_test

import (
	"context"
	"errors"
	"testing"

	"recarma/internal/assistant"

	"github.com/stretchr/testify/assert"
)

type fakeClient struct {
	reply string
	err   error
}

func (f *fakeClient) Generate(context.Context, string) (string, error) {
	return f.reply, f.err
}

func TestChat(t *testing.T) {
	t.Run("passes the reply through", func(t *testing.T) {
		svc := assistant.NewService(&fakeClient{reply: "A Certificate of Deposit confirms your vehicle was scrapped."})
		got := svc.Chat(context.Background(), "What is a CoD?")
		assert.Equal(t, "A Certificate of Deposit confirms your vehicle was scrapped.", got)
	})

	t.Run("collaborator failure degrades to the apology", func(t *testing.T) {
		svc := assistant.NewService(&fakeClient{err: errors.New("boom")})
		got := svc.Chat(context.Background(), "What is a CoD?")
		assert.Equal(t, assistant.FallbackReply, got)
	})

	t.Run("blank message asks for a rephrase without calling out", func(t *testing.T) {
		svc := assistant.NewService(&fakeClient{err: errors.New("should not be reached")})
		got := svc.Chat(context.Background(), "   ")
		assert.Equal(t, "I didn't get that. Could you rephrase?", got)
	})

	t.Run("blank reply asks for a rephrase", func(t *testing.T) {
		svc := assistant.NewService(&fakeClient{reply: "  "})
		got := svc.Chat(context.Background(), "hello")
		assert.Equal(t, "I didn't get that. Could you rephrase?", got)
	})
}
