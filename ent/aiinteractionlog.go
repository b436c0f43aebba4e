// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/klartext-health/befund/ent/aiinteractionlog"
	"github.com/klartext-health/befund/ent/job"
	"github.com/klartext-health/befund/ent/stepexecution"
)

// AIInteractionLog is the model entity for the AIInteractionLog schema.
type AIInteractionLog struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// JobID holds the value of the "job_id" field.
	JobID string `json:"job_id,omitempty"`
	// Null for calls outside a step (none today, kept for forward compat)
	StepExecutionID *string `json:"step_execution_id,omitempty"`
	// ModelName holds the value of the "model_name" field.
	ModelName string `json:"model_name,omitempty"`
	// InputTokens holds the value of the "input_tokens" field.
	InputTokens int `json:"input_tokens,omitempty"`
	// OutputTokens holds the value of the "output_tokens" field.
	OutputTokens int `json:"output_tokens,omitempty"`
	// TotalTokens holds the value of the "total_tokens" field.
	TotalTokens int `json:"total_tokens,omitempty"`
	// Cost holds the value of the "cost" field.
	Cost float64 `json:"cost,omitempty"`
	// LatencyMs holds the value of the "latency_ms" field.
	LatencyMs int64 `json:"latency_ms,omitempty"`
	// Success holds the value of the "success" field.
	Success bool `json:"success,omitempty"`
	// Taxonomy code; null = success
	ErrorCode *string `json:"error_code,omitempty"`
	// True when usage was derived from the word-count heuristic
	EstimatedTokens bool `json:"estimated_tokens,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the AIInteractionLogQuery when eager-loading is set.
	Edges        AIInteractionLogEdges `json:"edges"`
	selectValues sql.SelectValues
}

// AIInteractionLogEdges holds the relations/edges for other nodes in the graph.
type AIInteractionLogEdges struct {
	// Job holds the value of the job edge.
	Job *Job `json:"job,omitempty"`
	// StepExecution holds the value of the step_execution edge.
	StepExecution *StepExecution `json:"step_execution,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// JobOrErr returns the Job value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e AIInteractionLogEdges) JobOrErr() (*Job, error) {
	if e.Job != nil {
		return e.Job, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: job.Label}
	}
	return nil, &NotLoadedError{edge: "job"}
}

// StepExecutionOrErr returns the StepExecution value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e AIInteractionLogEdges) StepExecutionOrErr() (*StepExecution, error) {
	if e.StepExecution != nil {
		return e.StepExecution, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: stepexecution.Label}
	}
	return nil, &NotLoadedError{edge: "step_execution"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*AIInteractionLog) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case aiinteractionlog.FieldSuccess, aiinteractionlog.FieldEstimatedTokens:
			values[i] = new(sql.NullBool)
		case aiinteractionlog.FieldCost:
			values[i] = new(sql.NullFloat64)
		case aiinteractionlog.FieldID, aiinteractionlog.FieldInputTokens, aiinteractionlog.FieldOutputTokens, aiinteractionlog.FieldTotalTokens, aiinteractionlog.FieldLatencyMs:
			values[i] = new(sql.NullInt64)
		case aiinteractionlog.FieldJobID, aiinteractionlog.FieldStepExecutionID, aiinteractionlog.FieldModelName, aiinteractionlog.FieldErrorCode:
			values[i] = new(sql.NullString)
		case aiinteractionlog.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the AIInteractionLog fields.
func (_m *AIInteractionLog) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case aiinteractionlog.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case aiinteractionlog.FieldJobID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field job_id", values[i])
			} else if value.Valid {
				_m.JobID = value.String
			}
		case aiinteractionlog.FieldStepExecutionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field step_execution_id", values[i])
			} else if value.Valid {
				_m.StepExecutionID = new(string)
				*_m.StepExecutionID = value.String
			}
		case aiinteractionlog.FieldModelName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field model_name", values[i])
			} else if value.Valid {
				_m.ModelName = value.String
			}
		case aiinteractionlog.FieldInputTokens:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field input_tokens", values[i])
			} else if value.Valid {
				_m.InputTokens = int(value.Int64)
			}
		case aiinteractionlog.FieldOutputTokens:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field output_tokens", values[i])
			} else if value.Valid {
				_m.OutputTokens = int(value.Int64)
			}
		case aiinteractionlog.FieldTotalTokens:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field total_tokens", values[i])
			} else if value.Valid {
				_m.TotalTokens = int(value.Int64)
			}
		case aiinteractionlog.FieldCost:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field cost", values[i])
			} else if value.Valid {
				_m.Cost = value.Float64
			}
		case aiinteractionlog.FieldLatencyMs:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field latency_ms", values[i])
			} else if value.Valid {
				_m.LatencyMs = value.Int64
			}
		case aiinteractionlog.FieldSuccess:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field success", values[i])
			} else if value.Valid {
				_m.Success = value.Bool
			}
		case aiinteractionlog.FieldErrorCode:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error_code", values[i])
			} else if value.Valid {
				_m.ErrorCode = new(string)
				*_m.ErrorCode = value.String
			}
		case aiinteractionlog.FieldEstimatedTokens:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field estimated_tokens", values[i])
			} else if value.Valid {
				_m.EstimatedTokens = value.Bool
			}
		case aiinteractionlog.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the AIInteractionLog.
// This includes values selected through modifiers, order, etc.
func (_m *AIInteractionLog) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryJob queries the "job" edge of the AIInteractionLog entity.
func (_m *AIInteractionLog) QueryJob() *JobQuery {
	return NewAIInteractionLogClient(_m.config).QueryJob(_m)
}

// QueryStepExecution queries the "step_execution" edge of the AIInteractionLog entity.
func (_m *AIInteractionLog) QueryStepExecution() *StepExecutionQuery {
	return NewAIInteractionLogClient(_m.config).QueryStepExecution(_m)
}

// Update returns a builder for updating this AIInteractionLog.
// Note that you need to call AIInteractionLog.Unwrap() before calling this method if this AIInteractionLog
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *AIInteractionLog) Update() *AIInteractionLogUpdateOne {
	return NewAIInteractionLogClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the AIInteractionLog entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *AIInteractionLog) Unwrap() *AIInteractionLog {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: AIInteractionLog is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *AIInteractionLog) String() string {
	var builder strings.Builder
	builder.WriteString("AIInteractionLog(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("job_id=")
	builder.WriteString(_m.JobID)
	builder.WriteString(", ")
	if v := _m.StepExecutionID; v != nil {
		builder.WriteString("step_execution_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("model_name=")
	builder.WriteString(_m.ModelName)
	builder.WriteString(", ")
	builder.WriteString("input_tokens=")
	builder.WriteString(fmt.Sprintf("%v", _m.InputTokens))
	builder.WriteString(", ")
	builder.WriteString("output_tokens=")
	builder.WriteString(fmt.Sprintf("%v", _m.OutputTokens))
	builder.WriteString(", ")
	builder.WriteString("total_tokens=")
	builder.WriteString(fmt.Sprintf("%v", _m.TotalTokens))
	builder.WriteString(", ")
	builder.WriteString("cost=")
	builder.WriteString(fmt.Sprintf("%v", _m.Cost))
	builder.WriteString(", ")
	builder.WriteString("latency_ms=")
	builder.WriteString(fmt.Sprintf("%v", _m.LatencyMs))
	builder.WriteString(", ")
	builder.WriteString("success=")
	builder.WriteString(fmt.Sprintf("%v", _m.Success))
	builder.WriteString(", ")
	if v := _m.ErrorCode; v != nil {
		builder.WriteString("error_code=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("estimated_tokens=")
	builder.WriteString(fmt.Sprintf("%v", _m.EstimatedTokens))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// AIInteractionLogs is a parsable slice of AIInteractionLog.
type AIInteractionLogs []*AIInteractionLog
