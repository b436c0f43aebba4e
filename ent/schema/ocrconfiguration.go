package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// OCRConfiguration holds the schema definition for the OCRConfiguration
// entity. The engine itself is an external collaborator; jobs snapshot the
// active row at enqueue time.
type OCRConfiguration struct {
	ent.Schema
}

// Fields of the OCRConfiguration.
func (OCRConfiguration) Fields() []ent.Field {
	return []ent.Field{
		field.String("engine").
			Default("remote"),
		field.String("endpoint").
			Optional().
			Comment("Extraction service URL; empty for plain-text passthrough"),
		field.JSON("language_hints", []string{}).
			Optional(),
		field.Bool("enabled").
			Default(true),
		field.Time("created_at").
			Default(time.Now),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}
