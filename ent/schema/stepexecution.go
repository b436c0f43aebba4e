package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// StepExecution holds the schema definition for the StepExecution entity:
// one attempted pipeline step for a job.
type StepExecution struct {
	ent.Schema
}

// Fields of the StepExecution.
func (StepExecution) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("step_execution_id").
			Unique().
			Immutable(),
		field.String("job_id").
			Immutable(),
		field.String("step_name"),
		field.Int("step_order").
			Comment("Global execution position across all three phases"),
		field.Int("phase_rank").
			Comment("1 pre-branch, 2 class-specific, 3 post-branch"),
		field.Enum("status").
			Values("pending", "running", "succeeded", "failed", "skipped", "terminated").
			Default("pending"),
		field.Time("started_at").
			Optional().
			Nillable(),
		field.Time("completed_at").
			Optional().
			Nillable(),
		field.Int("duration_ms").
			Optional().
			Nillable(),
		field.Bytes("input_text").
			Optional().
			Sensitive().
			Comment("Sealed; prompt input before substitution"),
		field.Bytes("output_text").
			Optional().
			Sensitive().
			Comment("Sealed; raw model output"),
		field.String("error_message").
			Optional().
			Nillable(),
		field.String("model_used").
			Optional().
			Nillable().
			Comment("Model of the last attempt; retries may switch nothing but the log rows tell"),
		field.Int("input_tokens").
			Optional().
			Nillable(),
		field.Int("output_tokens").
			Optional().
			Nillable(),
		field.Float("cost").
			Optional().
			Nillable(),
		field.Int("attempts").
			Default(0).
			Comment("LLM attempts consumed, including the first"),
		field.Time("created_at").
			Default(time.Now),
	}
}

// Edges of the StepExecution.
func (StepExecution) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("job", Job.Type).
			Ref("step_executions").
			Field("job_id").
			Unique().
			Required().
			Immutable(),
		edge.To("ai_interactions", AIInteractionLog.Type),
	}
}

// Indexes of the StepExecution.
func (StepExecution) Indexes() []ent.Index {
	return []ent.Index{
		// One row per position in a job's computed sequence.
		index.Fields("job_id", "step_order").
			Unique(),
		index.Fields("job_id", "created_at"),
	}
}
