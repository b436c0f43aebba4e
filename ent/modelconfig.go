// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/klartext-health/befund/ent/modelconfig"
)

// ModelConfig is the model entity for the ModelConfig schema.
type ModelConfig struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Provider-side model identifier
	Name string `json:"name,omitempty"`
	// Provider holds the value of the "provider" field.
	Provider string `json:"provider,omitempty"`
	// EUR per million input tokens
	InputPricePerM float64 `json:"input_price_per_m,omitempty"`
	// EUR per million output tokens
	OutputPricePerM float64 `json:"output_price_per_m,omitempty"`
	// Hard output cap; steps requesting more fail at resolution
	MaxTokens int `json:"max_tokens,omitempty"`
	// SupportsVision holds the value of the "supports_vision" field.
	SupportsVision bool `json:"supports_vision,omitempty"`
	// SupportsStreaming holds the value of the "supports_streaming" field.
	SupportsStreaming bool `json:"supports_streaming,omitempty"`
	// Active holds the value of the "active" field.
	Active bool `json:"active,omitempty"`
	// Overrides the default 120s request timeout
	RequestTimeoutSecs *int `json:"request_timeout_secs,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt    time.Time `json:"updated_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ModelConfig) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case modelconfig.FieldSupportsVision, modelconfig.FieldSupportsStreaming, modelconfig.FieldActive:
			values[i] = new(sql.NullBool)
		case modelconfig.FieldInputPricePerM, modelconfig.FieldOutputPricePerM:
			values[i] = new(sql.NullFloat64)
		case modelconfig.FieldID, modelconfig.FieldMaxTokens, modelconfig.FieldRequestTimeoutSecs:
			values[i] = new(sql.NullInt64)
		case modelconfig.FieldName, modelconfig.FieldProvider:
			values[i] = new(sql.NullString)
		case modelconfig.FieldCreatedAt, modelconfig.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ModelConfig fields.
func (_m *ModelConfig) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case modelconfig.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case modelconfig.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case modelconfig.FieldProvider:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field provider", values[i])
			} else if value.Valid {
				_m.Provider = value.String
			}
		case modelconfig.FieldInputPricePerM:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field input_price_per_m", values[i])
			} else if value.Valid {
				_m.InputPricePerM = value.Float64
			}
		case modelconfig.FieldOutputPricePerM:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field output_price_per_m", values[i])
			} else if value.Valid {
				_m.OutputPricePerM = value.Float64
			}
		case modelconfig.FieldMaxTokens:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field max_tokens", values[i])
			} else if value.Valid {
				_m.MaxTokens = int(value.Int64)
			}
		case modelconfig.FieldSupportsVision:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field supports_vision", values[i])
			} else if value.Valid {
				_m.SupportsVision = value.Bool
			}
		case modelconfig.FieldSupportsStreaming:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field supports_streaming", values[i])
			} else if value.Valid {
				_m.SupportsStreaming = value.Bool
			}
		case modelconfig.FieldActive:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field active", values[i])
			} else if value.Valid {
				_m.Active = value.Bool
			}
		case modelconfig.FieldRequestTimeoutSecs:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field request_timeout_secs", values[i])
			} else if value.Valid {
				_m.RequestTimeoutSecs = new(int)
				*_m.RequestTimeoutSecs = int(value.Int64)
			}
		case modelconfig.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case modelconfig.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ModelConfig.
// This includes values selected through modifiers, order, etc.
func (_m *ModelConfig) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this ModelConfig.
// Note that you need to call ModelConfig.Unwrap() before calling this method if this ModelConfig
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ModelConfig) Update() *ModelConfigUpdateOne {
	return NewModelConfigClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ModelConfig entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ModelConfig) Unwrap() *ModelConfig {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ModelConfig is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ModelConfig) String() string {
	var builder strings.Builder
	builder.WriteString("ModelConfig(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	builder.WriteString("provider=")
	builder.WriteString(_m.Provider)
	builder.WriteString(", ")
	builder.WriteString("input_price_per_m=")
	builder.WriteString(fmt.Sprintf("%v", _m.InputPricePerM))
	builder.WriteString(", ")
	builder.WriteString("output_price_per_m=")
	builder.WriteString(fmt.Sprintf("%v", _m.OutputPricePerM))
	builder.WriteString(", ")
	builder.WriteString("max_tokens=")
	builder.WriteString(fmt.Sprintf("%v", _m.MaxTokens))
	builder.WriteString(", ")
	builder.WriteString("supports_vision=")
	builder.WriteString(fmt.Sprintf("%v", _m.SupportsVision))
	builder.WriteString(", ")
	builder.WriteString("supports_streaming=")
	builder.WriteString(fmt.Sprintf("%v", _m.SupportsStreaming))
	builder.WriteString(", ")
	builder.WriteString("active=")
	builder.WriteString(fmt.Sprintf("%v", _m.Active))
	builder.WriteString(", ")
	if v := _m.RequestTimeoutSecs; v != nil {
		builder.WriteString("request_timeout_secs=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// ModelConfigs is a parsable slice of ModelConfig.
type ModelConfigs []*ModelConfig
