package schema

import (
	"regexp"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
)

// DocumentClass holds the schema definition for the DocumentClass entity:
// a routable business category such as ARZTBRIEF or LABORBERICHT.
type DocumentClass struct {
	ent.Schema
}

// Fields of the DocumentClass.
func (DocumentClass) Fields() []ent.Field {
	return []ent.Field{
		field.String("class_key").
			Unique().
			Match(regexp.MustCompile(`^[A-Z][A-Z0-9_]*$`)).
			Comment("Uppercase key matched against the branching step's first output token"),
		field.String("display_name"),
		field.Bool("enabled").
			Default(true),
		field.Time("created_at").
			Default(time.Now),
	}
}

// Edges of the DocumentClass.
func (DocumentClass) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("steps", PipelineStep.Type),
	}
}
