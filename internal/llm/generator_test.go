package llm

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubClient struct {
	prompt      string
	hadDeadline bool
	out         string
	err         error
}

func (s *stubClient) Complete(ctx context.Context, prompt string) (string, error) {
	s.prompt = prompt
	_, s.hadDeadline = ctx.Deadline()
	return s.out, s.err
}

func TestBuildPlanPrompt(t *testing.T) {
	got := BuildPlanPrompt("hire two devs", json.RawMessage(`{ "startDate": "2026-01",
		"roles": [] }`))
	want := "Generate a headcount hiring plan for this user prompt and context. " +
		"Output should be in JSON in the given format. " +
		"Prompt: hire two devs. " +
		`Context: {"startDate":"2026-01","roles":[]}. ` +
		"Format: { monthYear: { roleCity: count } }"
	assert.Equal(t, want, got)
}

func TestPlanGenerator_ReturnsRawOutput(t *testing.T) {
	stub := &stubClient{out: "not even json"}
	g := NewPlanGenerator(stub, ProviderOpenAI, time.Minute, nil)

	out, err := g.Generate(context.Background(), "p", json.RawMessage(`{}`))
	require.NoError(t, err)
	assert.Equal(t, "not even json", out)
	assert.True(t, stub.hadDeadline)
	assert.Contains(t, stub.prompt, "Prompt: p.")
	assert.True(t, g.Configured())
}

func TestPlanGenerator_WrapsClientError(t *testing.T) {
	boom := errors.New("boom")
	g := NewPlanGenerator(&stubClient{err: boom}, ProviderGemini, 0, nil)

	_, err := g.Generate(context.Background(), "p", json.RawMessage(`{}`))
	assert.ErrorIs(t, err, boom)
}

func TestPlanGenerator_NotConfigured(t *testing.T) {
	g := NewPlanGenerator(nil, ProviderOpenAI, 0, nil)
	assert.False(t, g.Configured())

	_, err := g.Generate(context.Background(), "p", json.RawMessage(`{}`))
	assert.ErrorIs(t, err, ErrNotConfigured)
}

func TestNewClient(t *testing.T) {
	_, err := NewClient(context.Background(), Config{Provider: ProviderOpenAI})
	assert.ErrorIs(t, err, ErrNotConfigured)

	_, err = NewClient(context.Background(), Config{Provider: "mystery", APIKey: "k"})
	assert.Error(t, err)

	c, err := NewClient(context.Background(), Config{Provider: "OpenAI", APIKey: "k"})
	require.NoError(t, err)
	assert.IsType(t, &OpenAIClient{}, c)
}
