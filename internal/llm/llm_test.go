package llm

import (
	"context"
	"errors"
	"testing"

	"github.com/lshigami/devprep/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testSchema = &Schema{
	Name: "test-feedback",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"score":   map[string]any{"type": "integer", "minimum": 1, "maximum": 10},
			"summary": map[string]any{"type": "string"},
		},
		"required": []any{"score", "summary"},
	},
}

func TestDecodeJSON(t *testing.T) {
	var out struct {
		Score   int    `json:"score"`
		Summary string `json:"summary"`
	}
	require.NoError(t, DecodeJSON(testSchema, `{"score": 7, "summary": "solid"}`, &out))
	assert.Equal(t, 7, out.Score)
	assert.Equal(t, "solid", out.Summary)

	for name, text := range map[string]string{
		"not json":       "Score: 7",
		"missing field":  `{"score": 7}`,
		"out of range":   `{"score": 11, "summary": "x"}`,
		"wrong type":     `{"score": "seven", "summary": "x"}`,
		"fractional int": `{"score": 7.5, "summary": "x"}`,
	} {
		var invalid *ErrInvalidResponse
		assert.ErrorAs(t, DecodeJSON(testSchema, text, &out), &invalid, name)
	}
}

func TestDecodeJSONWithoutSchema(t *testing.T) {
	var out map[string]any
	require.NoError(t, DecodeJSON(nil, `{"anything": true}`, &out))
	assert.Equal(t, true, out["anything"])
}

func TestNewProviderDisabledWithoutKey(t *testing.T) {
	for _, provider := range []string{config.ProviderGroq, config.ProviderOpenAI, config.ProviderGemini} {
		p, err := NewProvider(&config.Config{LLM: config.LLM{Provider: provider, Model: "m"}})
		require.NoError(t, err)
		assert.False(t, Available(p), provider)

		_, err = p.Complete(context.Background(), Request{User: "x"})
		assert.ErrorIs(t, err, ErrNotConfigured)
	}

	_, err := NewProvider(&config.Config{LLM: config.LLM{Provider: "nope"}})
	assert.Error(t, err)
}

func TestNewProviderWrapsWithLogging(t *testing.T) {
	p, err := NewProvider(&config.Config{LLM: config.LLM{Provider: config.ProviderGroq, APIKey: "k", BaseURL: "http://localhost:1/v1", Model: "llama-3.1-8b-instant"}})
	require.NoError(t, err)
	assert.True(t, Available(p))
	logged, ok := p.(*LoggingProvider)
	require.True(t, ok)
	assert.IsType(t, &OpenAIProvider{}, logged.Unwrap())
	assert.Equal(t, "llama-3.1-8b-instant", p.ModelID())
}

func TestMockProvider(t *testing.T) {
	m := NewMockProvider(MockResponse{Text: "a"}, MockResponse{Err: errors.New("boom")})
	ctx := context.Background()

	text, err := WithLogging(m).Complete(ctx, Request{User: "1"})
	require.NoError(t, err)
	assert.Equal(t, "a", text)

	_, err = m.Complete(ctx, Request{User: "2"})
	assert.EqualError(t, err, "boom")

	_, err = m.Complete(ctx, Request{User: "3"})
	var unavailable *ErrProviderUnavailable
	assert.ErrorAs(t, err, &unavailable)
	assert.Equal(t, 3, m.CallCount())
	assert.False(t, Available(nil))
	assert.True(t, Available(m))
}
