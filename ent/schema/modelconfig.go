package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// ModelConfig holds the schema definition for the ModelConfig entity: the
// model registry mapping names to pricing, limits, and capabilities.
type ModelConfig struct {
	ent.Schema
}

// Fields of the ModelConfig.
func (ModelConfig) Fields() []ent.Field {
	return []ent.Field{
		field.String("name").
			Unique().
			Comment("Provider-side model identifier"),
		field.String("provider").
			Default("ovh"),
		field.Float("input_price_per_m").
			Min(0).
			Comment("EUR per million input tokens"),
		field.Float("output_price_per_m").
			Min(0).
			Comment("EUR per million output tokens"),
		field.Int("max_tokens").
			Positive().
			Comment("Hard output cap; steps requesting more fail at resolution"),
		field.Bool("supports_vision").
			Default(false),
		field.Bool("supports_streaming").
			Default(false),
		field.Bool("active").
			Default(true),
		field.Int("request_timeout_secs").
			Optional().
			Nillable().
			Comment("Overrides the default 120s request timeout"),
		field.Time("created_at").
			Default(time.Now),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}
