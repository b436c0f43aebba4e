package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AIInteractionLog holds the schema definition for the AIInteractionLog
// entity: per-LLM-call accounting. Deliberately carries no text bodies so
// the table stays cheap to retain and safe to export.
type AIInteractionLog struct {
	ent.Schema
}

// Fields of the AIInteractionLog. The default auto-increment id is kept.
func (AIInteractionLog) Fields() []ent.Field {
	return []ent.Field{
		field.String("job_id").
			Immutable(),
		field.String("step_execution_id").
			Optional().
			Nillable().
			Comment("Null for calls outside a step (none today, kept for forward compat)"),
		field.String("model_name"),
		field.Int("input_tokens").
			Default(0),
		field.Int("output_tokens").
			Default(0),
		field.Int("total_tokens").
			Default(0),
		field.Float("cost").
			Default(0),
		field.Int64("latency_ms").
			Default(0),
		field.Bool("success"),
		field.String("error_code").
			Optional().
			Nillable().
			Comment("Taxonomy code; null = success"),
		field.Bool("estimated_tokens").
			Default(false).
			Comment("True when usage was derived from the word-count heuristic"),
		field.Time("created_at").
			Default(time.Now),
	}
}

// Edges of the AIInteractionLog.
func (AIInteractionLog) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("job", Job.Type).
			Ref("ai_interactions").
			Field("job_id").
			Unique().
			Required().
			Immutable(),
		edge.From("step_execution", StepExecution.Type).
			Ref("ai_interactions").
			Field("step_execution_id").
			Unique(),
	}
}

// Indexes of the AIInteractionLog.
func (AIInteractionLog) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("job_id", "created_at"),
		index.Fields("step_execution_id"),
	}
}
