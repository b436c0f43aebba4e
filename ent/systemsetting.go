// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/klartext-health/befund/ent/systemsetting"
)

// SystemSetting is the model entity for the SystemSetting schema.
type SystemSetting struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Key holds the value of the "key" field.
	Key string `json:"key,omitempty"`
	// Value holds the value of the "value" field.
	Value string `json:"-"`
	// True when value is sealed with the master key
	IsEncrypted bool `json:"is_encrypted,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt    time.Time `json:"updated_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*SystemSetting) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case systemsetting.FieldIsEncrypted:
			values[i] = new(sql.NullBool)
		case systemsetting.FieldID:
			values[i] = new(sql.NullInt64)
		case systemsetting.FieldKey, systemsetting.FieldValue:
			values[i] = new(sql.NullString)
		case systemsetting.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the SystemSetting fields.
func (_m *SystemSetting) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case systemsetting.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case systemsetting.FieldKey:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field key", values[i])
			} else if value.Valid {
				_m.Key = value.String
			}
		case systemsetting.FieldValue:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field value", values[i])
			} else if value.Valid {
				_m.Value = value.String
			}
		case systemsetting.FieldIsEncrypted:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_encrypted", values[i])
			} else if value.Valid {
				_m.IsEncrypted = value.Bool
			}
		case systemsetting.FieldUpdatedAt:
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

// GetValue returns the ent.Value that was dynamically selected and assigned to the SystemSetting.
// This includes values selected through modifiers, order, etc.
func (_m *SystemSetting) GetValue(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this SystemSetting.
// Note that you need to call SystemSetting.Unwrap() before calling this method if this SystemSetting
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *SystemSetting) Update() *SystemSettingUpdateOne {
	return NewSystemSettingClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the SystemSetting entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *SystemSetting) Unwrap() *SystemSetting {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: SystemSetting is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *SystemSetting) String() string {
	var builder strings.Builder
	builder.WriteString("SystemSetting(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("key=")
	builder.WriteString(_m.Key)
	builder.WriteString(", ")
	builder.WriteString("value=<sensitive>")
	builder.WriteString(", ")
	builder.WriteString("is_encrypted=")
	builder.WriteString(fmt.Sprintf("%v", _m.IsEncrypted))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// SystemSettings is a parsable slice of SystemSetting.
type SystemSettings []*SystemSetting
