package agent

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeGeneratorRef(t *testing.T) {
	cfg, err := DecodeGeneratorRef(map[string]any{
		"vendor":      "openai",
		"model":       "gpt-4o-mini",
		"temperature": 0.2,
		"api_key_env": "TEAM_OPENAI_KEY",
	})
	require.NoError(t, err)
	assert.Equal(t, VendorOpenAI, cfg.Vendor)
	assert.Equal(t, "gpt-4o-mini", cfg.Model)
	assert.InDelta(t, 0.2, cfg.Temperature, 1e-9)
	assert.Equal(t, "TEAM_OPENAI_KEY", cfg.APIKeyEnv)

	_, err = DecodeGeneratorRef(map[string]any{"model": "x"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing vendor")
}

func TestNewGenerator(t *testing.T) {
	gen, err := NewGenerator(GeneratorConfig{Vendor: VendorMock})
	require.NoError(t, err)
	assert.IsType(t, &MockGenerator{}, gen)

	_, err = NewGenerator(GeneratorConfig{Vendor: VendorGRPC})
	assert.Error(t, err, "grpc vendor requires an address")

	_, err = NewGenerator(GeneratorConfig{Vendor: "anthropic-maybe"})
	assert.Error(t, err)
}

func TestMockGenerator_ScriptedReplies(t *testing.T) {
	gen := NewMockGenerator("first", "second")

	collect := func() string {
		ch, err := gen.Generate(context.Background(), &GenerateInput{
			Messages: []ConversationMessage{{Role: "user", Content: "hello"}},
		})
		require.NoError(t, err)
		var out string
		for chunk := range ch {
			if text, ok := chunk.(*TextChunk); ok {
				out += text.Content
			}
		}
		return out
	}

	assert.Equal(t, "first", collect())
	assert.Equal(t, "second", collect())
	// Script exhausted: the last reply repeats.
	assert.Equal(t, "second", collect())
	assert.Equal(t, 3, gen.Calls())
}

func TestMockGenerator_FailWith(t *testing.T) {
	gen := NewMockGenerator()
	gen.FailWith(errors.New("generator exploded"))

	ch, err := gen.Generate(context.Background(), &GenerateInput{})
	require.NoError(t, err)

	var failure *ErrorChunk
	for chunk := range ch {
		if e, ok := chunk.(*ErrorChunk); ok {
			failure = e
		}
	}
	require.NotNil(t, failure)
	assert.Equal(t, "generator exploded", failure.Message)
}
