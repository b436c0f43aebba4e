package api

import (
	_ "embed"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/klartext-health/befund/pkg/pipeline"
)

//go:embed pipeline_override_schema.json
var overrideSchemaJSON string

var overrideSchema = jsonschema.MustCompileString("pipeline_override_schema.json", overrideSchemaJSON)

// PipelineOverride is the caller-supplied pipeline_config payload: per-step
// tweaks applied to the live configuration before it is frozen onto the
// job. Only tuning knobs are overridable; prompts and step structure are
// admin territory.
type PipelineOverride struct {
	Steps []StepOverride `json:"steps"`
}

// StepOverride adjusts one step, addressed by name.
type StepOverride struct {
	Name        string   `json:"name"`
	Enabled     *bool    `json:"enabled,omitempty"`
	ModelName   *string  `json:"model_name,omitempty"`
	Temperature *float64 `json:"temperature,omitempty"`
	MaxTokens   *int     `json:"max_tokens,omitempty"`
}

// parseOverride validates raw against the embedded JSON schema and decodes
// it. A nil raw yields a nil override.
func parseOverride(raw json.RawMessage) (*PipelineOverride, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	var doc interface{}
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("pipeline_config is not valid JSON: %w", err)
	}
	if err := overrideSchema.Validate(doc); err != nil {
		return nil, fmt.Errorf("pipeline_config rejected by schema: %w", err)
	}
	var ov PipelineOverride
	if err := json.Unmarshal(raw, &ov); err != nil {
		return nil, fmt.Errorf("pipeline_config did not decode: %w", err)
	}
	return &ov, nil
}

// applyOverride returns a copy of snap with the override applied. The
// cached snapshot is shared across requests and is never mutated. Unknown
// step names and models missing from the registry are rejected.
func applyOverride(snap *pipeline.Snapshot, ov *PipelineOverride) (*pipeline.Snapshot, error) {
	if ov == nil || len(ov.Steps) == 0 {
		return snap, nil
	}

	out := *snap
	out.Steps = make([]pipeline.StepSpec, len(snap.Steps))
	copy(out.Steps, snap.Steps)

	byName := make(map[string]*pipeline.StepSpec, len(out.Steps))
	for i := range out.Steps {
		byName[out.Steps[i].Name] = &out.Steps[i]
	}

	for _, so := range ov.Steps {
		step, ok := byName[so.Name]
		if !ok {
			return nil, fmt.Errorf("pipeline_config references unknown step %q", so.Name)
		}
		if so.ModelName != nil {
			if _, ok := out.Models[*so.ModelName]; !ok {
				return nil, fmt.Errorf("pipeline_config references unknown model %q", *so.ModelName)
			}
			step.ModelName = *so.ModelName
		}
		if so.Enabled != nil {
			step.Enabled = *so.Enabled
		}
		if so.Temperature != nil {
			step.Temperature = *so.Temperature
		}
		if so.MaxTokens != nil {
			step.MaxTokens = *so.MaxTokens
		}
	}
	return &out, nil
}
