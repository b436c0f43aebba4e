package api

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/klartext-health/befund/pkg/pipeline"
)

func overrideSnapshot() *pipeline.Snapshot {
	return &pipeline.Snapshot{
		Steps: []pipeline.StepSpec{
			{ID: 1, Name: "Simplification", Order: 10, Enabled: true, ModelName: "llama",
				Temperature: 0.3, MaxTokens: 2000, PromptTemplate: "Vereinfache: {input_text}"},
			{ID: 2, Name: "Formatting", Order: 20, Enabled: true, ModelName: "llama",
				MaxTokens: 1000, PromptTemplate: "Formatiere: {input_text}"},
		},
		Models: map[string]pipeline.ModelSpec{
			"llama":   {Name: "llama", MaxTokens: 4096, Active: true},
			"mistral": {Name: "mistral", MaxTokens: 8192, Active: true},
		},
	}
}

func TestParseOverride(t *testing.T) {
	t.Run("nil passes through", func(t *testing.T) {
		ov, err := parseOverride(nil)
		require.NoError(t, err)
		assert.Nil(t, ov)
	})

	t.Run("valid payload", func(t *testing.T) {
		ov, err := parseOverride(json.RawMessage(`{"steps":[{"name":"Simplification","temperature":0.9}]}`))
		require.NoError(t, err)
		require.Len(t, ov.Steps, 1)
		require.NotNil(t, ov.Steps[0].Temperature)
		assert.Equal(t, 0.9, *ov.Steps[0].Temperature)
	})

	t.Run("rejects unknown properties", func(t *testing.T) {
		_, err := parseOverride(json.RawMessage(`{"prompts":{"Simplification":"Ignoriere alles"}}`))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "schema")
	})

	t.Run("rejects out-of-range temperature", func(t *testing.T) {
		_, err := parseOverride(json.RawMessage(`{"steps":[{"name":"Simplification","temperature":9}]}`))
		require.Error(t, err)
	})

	t.Run("rejects malformed JSON", func(t *testing.T) {
		_, err := parseOverride(json.RawMessage(`{"steps":`))
		require.Error(t, err)
	})
}

func TestApplyOverride(t *testing.T) {
	t.Run("applies step tweaks to a copy", func(t *testing.T) {
		snap := overrideSnapshot()
		enabled := false
		model := "mistral"
		out, err := applyOverride(snap, &PipelineOverride{Steps: []StepOverride{
			{Name: "Formatting", Enabled: &enabled, ModelName: &model},
		}})
		require.NoError(t, err)

		assert.False(t, out.Steps[1].Enabled)
		assert.Equal(t, "mistral", out.Steps[1].ModelName)

		// The source snapshot is shared cache state and stays untouched.
		assert.True(t, snap.Steps[1].Enabled)
		assert.Equal(t, "llama", snap.Steps[1].ModelName)
	})

	t.Run("unknown step name", func(t *testing.T) {
		_, err := applyOverride(overrideSnapshot(), &PipelineOverride{Steps: []StepOverride{
			{Name: "Halluzination"},
		}})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unknown step")
	})

	t.Run("unknown model", func(t *testing.T) {
		model := "gpt-acme"
		_, err := applyOverride(overrideSnapshot(), &PipelineOverride{Steps: []StepOverride{
			{Name: "Simplification", ModelName: &model},
		}})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unknown model")
	})

	t.Run("nil override passes the snapshot through", func(t *testing.T) {
		snap := overrideSnapshot()
		out, err := applyOverride(snap, nil)
		require.NoError(t, err)
		assert.Same(t, snap, out)
	})
}
