// Package pipeline implements the dynamic pipeline execution engine: it
// resolves the ordered step sequence for a job across the three phases
// (pre-branch, class-specific, post-branch), substitutes context variables
// into prompt templates, invokes the LLM with the prompt guard around every
// call, and enforces retries, output validation, stop conditions, and
// conditional skipping.
package pipeline

import (
	"fmt"
	"sort"
	"strings"
)

// Phase ranks. The global execution order is (phase, order, id).
const (
	PhasePreBranch     = 1
	PhaseClassSpecific = 2
	PhasePostBranch    = 3
)

// StepSpec is one step definition inside a job's immutable pipeline
// snapshot. Field semantics follow the pipeline_steps table.
type StepSpec struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`

	Order           int  `json:"order"`
	PostBranching   bool `json:"post_branching"`
	DocumentClassID *int `json:"document_class_id,omitempty"`
	Enabled         bool `json:"enabled"`
	IsBranchingStep bool `json:"is_branching_step"`

	ModelName   string  `json:"model_name"`
	Temperature float64 `json:"temperature"`
	MaxTokens   int     `json:"max_tokens"`

	PromptTemplate string `json:"prompt_template"`
	SystemPrompt   string `json:"system_prompt,omitempty"`

	RequiredContextVariables []string `json:"required_context_variables,omitempty"`

	StopOnValues          []string `json:"stop_on_values,omitempty"`
	AllowedContinueValues []string `json:"allowed_continue_values,omitempty"`
	TerminationReason     string   `json:"termination_reason,omitempty"`
	TerminationMessage    string   `json:"termination_message,omitempty"`

	RetryOnFailure bool `json:"retry_on_failure"`
	MaxRetries     int  `json:"max_retries"`

	UseOriginalText bool   `json:"use_original_text"`
	OutputFormat    string `json:"output_format,omitempty"`
	Version         int    `json:"version"`
}

// Phase derives the step's phase bucket from its class scope and the
// post-branching marker.
func (s *StepSpec) Phase() int {
	switch {
	case s.DocumentClassID != nil:
		return PhaseClassSpecific
	case s.PostBranching:
		return PhasePostBranch
	default:
		return PhasePreBranch
	}
}

// ClassSpec is one document class inside a snapshot.
type ClassSpec struct {
	ID          int    `json:"id"`
	ClassKey    string `json:"class_key"`
	DisplayName string `json:"display_name"`
	Enabled     bool   `json:"enabled"`
}

// ModelSpec is one model registry row inside a snapshot.
type ModelSpec struct {
	Name            string  `json:"name"`
	Provider        string  `json:"provider"`
	InputPricePerM  float64 `json:"input_price_per_m"`
	OutputPricePerM float64 `json:"output_price_per_m"`
	MaxTokens       int     `json:"max_tokens"`
	TimeoutSecs     int     `json:"timeout_secs,omitempty"`
	Active          bool    `json:"active"`
}

// Snapshot is the step graph frozen at enqueue time. It is stored on the
// job row and is authoritative for that job; later config edits never
// affect it.
type Snapshot struct {
	Steps   []StepSpec           `json:"steps"`
	Classes []ClassSpec          `json:"classes"`
	Models  map[string]ModelSpec `json:"models"`
}

// ClassByKey finds an enabled class by key, case-insensitively.
func (s *Snapshot) ClassByKey(key string) (ClassSpec, bool) {
	for _, c := range s.Classes {
		if c.Enabled && strings.EqualFold(c.ClassKey, key) {
			return c, true
		}
	}
	return ClassSpec{}, false
}

// ClassKeys returns the keys of all enabled classes.
func (s *Snapshot) ClassKeys() []string {
	keys := make([]string, 0, len(s.Classes))
	for _, c := range s.Classes {
		if c.Enabled {
			keys = append(keys, c.ClassKey)
		}
	}
	return keys
}

// Validate checks the structural invariants of the enabled step set: at
// most one enabled branching step, the branching step in the pre-branch
// phase, and no duplicate (phase, class, order) slots.
func (s *Snapshot) Validate() error {
	branching := 0
	type slot struct {
		phase, class, order int
	}
	seen := make(map[slot]string)

	for _, step := range s.Steps {
		if !step.Enabled {
			continue
		}
		if step.IsBranchingStep {
			branching++
			if step.Phase() != PhasePreBranch {
				return fmt.Errorf("branching step %q must be pre-branch", step.Name)
			}
		}
		classID := 0
		if step.DocumentClassID != nil {
			classID = *step.DocumentClassID
		}
		key := slot{step.Phase(), classID, step.Order}
		if other, dup := seen[key]; dup {
			return fmt.Errorf("steps %q and %q share order %d in the same phase bucket",
				other, step.Name, step.Order)
		}
		seen[key] = step.Name

		if _, ok := s.Models[step.ModelName]; !ok {
			return fmt.Errorf("step %q references unknown model %q", step.Name, step.ModelName)
		}
	}
	if branching > 1 {
		return fmt.Errorf("%d enabled branching steps, want at most one", branching)
	}
	return nil
}

// Plan is the resolved execution order for one job: phase 1 and phase 3 are
// fixed up front; phase 2 is selected after the branching step fires (or
// from an externally supplied document type).
type Plan struct {
	PreBranch  []StepSpec
	ByClass    map[int][]StepSpec
	PostBranch []StepSpec
}

// BuildPlan filters enabled steps into their phases and sorts each bucket
// by (order, id).
func BuildPlan(snap *Snapshot) *Plan {
	plan := &Plan{ByClass: make(map[int][]StepSpec)}
	for _, step := range snap.Steps {
		if !step.Enabled {
			continue
		}
		switch step.Phase() {
		case PhasePreBranch:
			plan.PreBranch = append(plan.PreBranch, step)
		case PhaseClassSpecific:
			id := *step.DocumentClassID
			plan.ByClass[id] = append(plan.ByClass[id], step)
		case PhasePostBranch:
			plan.PostBranch = append(plan.PostBranch, step)
		}
	}
	sortSteps(plan.PreBranch)
	for _, steps := range plan.ByClass {
		sortSteps(steps)
	}
	sortSteps(plan.PostBranch)
	return plan
}

// ClassSteps returns the phase-2 sequence for a class key, or nil when the
// key is unknown, disabled, or has no steps.
func (p *Plan) ClassSteps(snap *Snapshot, classKey string) []StepSpec {
	if classKey == "" {
		return nil
	}
	class, ok := snap.ClassByKey(classKey)
	if !ok {
		return nil
	}
	return p.ByClass[class.ID]
}

func sortSteps(steps []StepSpec) {
	sort.SliceStable(steps, func(i, j int) bool {
		if steps[i].Order != steps[j].Order {
			return steps[i].Order < steps[j].Order
		}
		return steps[i].ID < steps[j].ID
	})
}
