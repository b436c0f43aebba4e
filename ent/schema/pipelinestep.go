package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// PipelineStep holds the schema definition for the PipelineStep entity: one
// node in the three-phase execution graph. Phase membership is derived, not
// stored: pre-branch (post_branching=false, no class), class-specific
// (class set), post-branch (post_branching=true, no class).
type PipelineStep struct {
	ent.Schema
}

// Fields of the PipelineStep. The default auto-increment id doubles as the
// tie-breaker for equal sort_order values.
func (PipelineStep) Fields() []ent.Field {
	return []ent.Field{
		field.String("name").
			Unique().
			Comment("e.g. 'Medical Content Validation'"),
		field.String("description").
			Optional(),
		field.Int("sort_order").
			NonNegative().
			Comment("Position within the step's phase bucket"),
		field.Bool("post_branching").
			Default(false),
		field.Int("document_class_id").
			Optional().
			Nillable().
			Comment("Scopes the step to one document class; null = universal"),
		field.Bool("enabled").
			Default(true),
		field.Bool("is_branching_step").
			Default(false).
			Comment("The classifier; its first output token selects the class"),
		field.String("model_name").
			Comment("Registry lookup by name at snapshot time, no FK snapshot"),
		field.Float("temperature").
			Min(0).
			Max(1).
			Default(0),
		field.Int("max_tokens").
			Positive(),
		field.Text("prompt_template").
			Comment("Untrusted template with {placeholder} substitution; the user message"),
		field.Text("system_prompt").
			Optional().
			Nillable().
			Comment("Trusted, passed through verbatim as the system message"),
		field.JSON("required_context_variables", []string{}).
			Optional().
			Comment("All must be present and non-empty or the step is skipped"),
		field.JSON("stop_on_values", []string{}).
			Optional().
			Comment("First-token matches trigger graceful termination"),
		field.JSON("allowed_continue_values", []string{}).
			Optional().
			Comment("Classification steps: first tokens accepted as a pass; branching steps add class keys implicitly"),
		field.String("termination_reason").
			Optional().
			Nillable(),
		field.Text("termination_message").
			Optional().
			Nillable(),
		field.Bool("retry_on_failure").
			Default(false),
		field.Int("max_retries").
			NonNegative().
			Default(0),
		field.Bool("use_original_text").
			Default(false).
			Comment("Input is the original cleaned OCR text instead of the previous output"),
		field.Enum("output_format").
			Values("text", "markdown", "json").
			Default("text"),
		field.Int("version").
			Default(1).
			Comment("Bumped on every update; snapshots record it"),
		field.Time("created_at").
			Default(time.Now),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the PipelineStep.
func (PipelineStep) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("document_class", DocumentClass.Type).
			Ref("steps").
			Field("document_class_id").
			Unique(),
	}
}

// Indexes of the PipelineStep. Per-phase-bucket uniqueness of sort_order
// needs partial indexes Ent cannot express (two indexes over the same
// column with different predicates); those live in
// pkg/database/migrations.go and the SQL migrations.
func (PipelineStep) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("enabled"),
		index.Fields("document_class_id", "sort_order"),
	}
}
