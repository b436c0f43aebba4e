package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Job holds the schema definition for the Job entity: one uploaded document
// moving through the processing pipeline.
type Job struct {
	ent.Schema
}

// Fields of the Job.
func (Job) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("job_id").
			Unique().
			Immutable(),
		field.String("processing_id").
			Unique().
			Immutable().
			Comment("Public-facing token (ULID, sortable)"),
		field.String("filename"),
		field.String("file_type"),
		field.Int64("file_size"),
		field.Bytes("file_content").
			Optional().
			Sensitive().
			Comment("AES-GCM sealed upload payload, nonce-prefixed"),
		field.String("file_hash").
			Optional().
			Comment("BLAKE3 hex digest of the plaintext payload"),
		field.JSON("pipeline_config", map[string]interface{}{}).
			Optional().
			Comment("Step-graph snapshot taken at enqueue time; authoritative for this job"),
		field.JSON("ocr_config", map[string]interface{}{}).
			Optional(),
		field.String("target_language").
			Optional().
			Nillable(),
		field.String("document_class").
			Optional().
			Nillable().
			Comment("Set by the branching step (e.g. 'ARZTBRIEF')"),
		field.Enum("status").
			Values("pending", "queued", "running", "completed", "failed", "cancelled", "timeout", "terminated").
			Default("pending"),
		field.String("queue_lane").
			Default("default"),
		field.Int("job_attempts").
			Default(0).
			Comment("Job-level requeue counter, distinct from per-step retries"),
		field.Int("progress_percent").
			Default(0),
		field.String("current_step").
			Optional().
			Nillable(),
		field.Bytes("original_text").
			Optional().
			Sensitive().
			Comment("PII-cleaned OCR text, sealed; immutable once set"),
		field.Bytes("simplified_text").
			Optional().
			Sensitive(),
		field.Bytes("translated_text").
			Optional().
			Sensitive(),
		field.JSON("result_data", map[string]interface{}{}).
			Optional().
			Comment("Structured outcome: processing_steps, termination info, totals"),
		field.String("error_message").
			Optional().
			Nillable(),
		field.Int("total_tokens").
			Default(0),
		field.Float("total_cost").
			Default(0).
			Comment("EUR; monotonic nondecreasing while running"),
		field.Bool("pii_degraded").
			Default(false).
			Comment("True when the local fallback filter produced original_text"),
		field.String("tenant").
			Optional().
			Nillable(),
		field.String("submitted_by").
			Optional().
			Nillable().
			Comment("Opaque subject from the auth surrogate"),
		field.String("worker_id").
			Optional().
			Nillable().
			Comment("For multi-replica coordination"),
		field.Time("last_heartbeat_at").
			Optional().
			Nillable().
			Comment("For orphan detection"),
		field.Time("created_at").
			Default(time.Now),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
		field.Time("started_at").
			Optional().
			Nillable().
			Comment("When a worker reserved the job (queued to running)"),
		field.Time("completed_at").
			Optional().
			Nillable(),
	}
}

// Edges of the Job.
func (Job) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("step_executions", StepExecution.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("ai_interactions", AIInteractionLog.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the Job.
func (Job) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status"),
		index.Fields("queue_lane"),

		index.Fields("status", "created_at"),
		index.Fields("status", "last_heartbeat_at"),

		// Retention sweeps scan by age alone.
		index.Fields("created_at"),
	}
}
