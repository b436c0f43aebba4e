package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// SystemSetting holds the schema definition for the SystemSetting entity:
// a small key/value table for operational state, including the sealed data
// encryption key.
type SystemSetting struct {
	ent.Schema
}

// Fields of the SystemSetting.
func (SystemSetting) Fields() []ent.Field {
	return []ent.Field{
		field.String("key").
			Unique(),
		field.Text("value").
			Sensitive(),
		field.Bool("is_encrypted").
			Default(false).
			Comment("True when value is sealed with the master key"),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}
