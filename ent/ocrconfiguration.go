// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/klartext-health/befund/ent/ocrconfiguration"
)

// OCRConfiguration is the model entity for the OCRConfiguration schema.
type OCRConfiguration struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Engine holds the value of the "engine" field.
	Engine string `json:"engine,omitempty"`
	// Extraction service URL; empty for plain-text passthrough
	Endpoint string `json:"endpoint,omitempty"`
	// LanguageHints holds the value of the "language_hints" field.
	LanguageHints []string `json:"language_hints,omitempty"`
	// Enabled holds the value of the "enabled" field.
	Enabled bool `json:"enabled,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt    time.Time `json:"updated_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*OCRConfiguration) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case ocrconfiguration.FieldLanguageHints:
			values[i] = new([]byte)
		case ocrconfiguration.FieldEnabled:
			values[i] = new(sql.NullBool)
		case ocrconfiguration.FieldID:
			values[i] = new(sql.NullInt64)
		case ocrconfiguration.FieldEngine, ocrconfiguration.FieldEndpoint:
			values[i] = new(sql.NullString)
		case ocrconfiguration.FieldCreatedAt, ocrconfiguration.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the OCRConfiguration fields.
func (_m *OCRConfiguration) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case ocrconfiguration.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case ocrconfiguration.FieldEngine:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field engine", values[i])
			} else if value.Valid {
				_m.Engine = value.String
			}
		case ocrconfiguration.FieldEndpoint:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field endpoint", values[i])
			} else if value.Valid {
				_m.Endpoint = value.String
			}
		case ocrconfiguration.FieldLanguageHints:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field language_hints", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.LanguageHints); err != nil {
					return fmt.Errorf("unmarshal field language_hints: %w", err)
				}
			}
		case ocrconfiguration.FieldEnabled:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field enabled", values[i])
			} else if value.Valid {
				_m.Enabled = value.Bool
			}
		case ocrconfiguration.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case ocrconfiguration.FieldUpdatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the OCRConfiguration.
// This includes values selected through modifiers, order, etc.
func (_m *OCRConfiguration) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this OCRConfiguration.
// Note that you need to call OCRConfiguration.Unwrap() before calling this method if this OCRConfiguration
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *OCRConfiguration) Update() *OCRConfigurationUpdateOne {
	return NewOCRConfigurationClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the OCRConfiguration entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *OCRConfiguration) Unwrap() *OCRConfiguration {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: OCRConfiguration is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *OCRConfiguration) String() string {
	var builder strings.Builder
	builder.WriteString("OCRConfiguration(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("engine=")
	builder.WriteString(_m.Engine)
	builder.WriteString(", ")
	builder.WriteString("endpoint=")
	builder.WriteString(_m.Endpoint)
	builder.WriteString(", ")
	builder.WriteString("language_hints=")
	builder.WriteString(fmt.Sprintf("%v", _m.LanguageHints))
	builder.WriteString(", ")
	builder.WriteString("enabled=")
	builder.WriteString(fmt.Sprintf("%v", _m.Enabled))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// OCRConfigurations is a parsable slice of OCRConfiguration.
type OCRConfigurations []*OCRConfiguration
