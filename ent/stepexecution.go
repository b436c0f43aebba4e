// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/klartext-health/befund/ent/job"
	"github.com/klartext-health/befund/ent/stepexecution"
)

// StepExecution is the model entity for the StepExecution schema.
type StepExecution struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// JobID holds the value of the "job_id" field.
	JobID string `json:"job_id,omitempty"`
	// StepName holds the value of the "step_name" field.
	StepName string `json:"step_name,omitempty"`
	// Global execution position across all three phases
	StepOrder int `json:"step_order,omitempty"`
	// 1 pre-branch, 2 class-specific, 3 post-branch
	PhaseRank int `json:"phase_rank,omitempty"`
	// Status holds the value of the "status" field.
	Status stepexecution.Status `json:"status,omitempty"`
	// StartedAt holds the value of the "started_at" field.
	StartedAt *time.Time `json:"started_at,omitempty"`
	// CompletedAt holds the value of the "completed_at" field.
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	// DurationMs holds the value of the "duration_ms" field.
	DurationMs *int `json:"duration_ms,omitempty"`
	// Sealed; prompt input before substitution
	InputText []byte `json:"-"`
	// Sealed; raw model output
	OutputText []byte `json:"-"`
	// ErrorMessage holds the value of the "error_message" field.
	ErrorMessage *string `json:"error_message,omitempty"`
	// Model of the last attempt; retries may switch nothing but the log rows tell
	ModelUsed *string `json:"model_used,omitempty"`
	// InputTokens holds the value of the "input_tokens" field.
	InputTokens *int `json:"input_tokens,omitempty"`
	// OutputTokens holds the value of the "output_tokens" field.
	OutputTokens *int `json:"output_tokens,omitempty"`
	// Cost holds the value of the "cost" field.
	Cost *float64 `json:"cost,omitempty"`
	// LLM attempts consumed, including the first
	Attempts int `json:"attempts,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the StepExecutionQuery when eager-loading is set.
	Edges        StepExecutionEdges `json:"edges"`
	selectValues sql.SelectValues
}

// StepExecutionEdges holds the relations/edges for other nodes in the graph.
type StepExecutionEdges struct {
	// Job holds the value of the job edge.
	Job *Job `json:"job,omitempty"`
	// AiInteractions holds the value of the ai_interactions edge.
	AiInteractions []*AIInteractionLog `json:"ai_interactions,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// JobOrErr returns the Job value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e StepExecutionEdges) JobOrErr() (*Job, error) {
	if e.Job != nil {
		return e.Job, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: job.Label}
	}
	return nil, &NotLoadedError{edge: "job"}
}

// AiInteractionsOrErr returns the AiInteractions value or an error if the edge
// was not loaded in eager-loading.
func (e StepExecutionEdges) AiInteractionsOrErr() ([]*AIInteractionLog, error) {
	if e.loadedTypes[1] {
		return e.AiInteractions, nil
	}
	return nil, &NotLoadedError{edge: "ai_interactions"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*StepExecution) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case stepexecution.FieldInputText, stepexecution.FieldOutputText:
			values[i] = new([]byte)
		case stepexecution.FieldCost:
			values[i] = new(sql.NullFloat64)
		case stepexecution.FieldStepOrder, stepexecution.FieldPhaseRank, stepexecution.FieldDurationMs, stepexecution.FieldInputTokens, stepexecution.FieldOutputTokens, stepexecution.FieldAttempts:
			values[i] = new(sql.NullInt64)
		case stepexecution.FieldID, stepexecution.FieldJobID, stepexecution.FieldStepName, stepexecution.FieldStatus, stepexecution.FieldErrorMessage, stepexecution.FieldModelUsed:
			values[i] = new(sql.NullString)
		case stepexecution.FieldStartedAt, stepexecution.FieldCompletedAt, stepexecution.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the StepExecution fields.
func (_m *StepExecution) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case stepexecution.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case stepexecution.FieldJobID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field job_id", values[i])
			} else if value.Valid {
				_m.JobID = value.String
			}
		case stepexecution.FieldStepName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field step_name", values[i])
			} else if value.Valid {
				_m.StepName = value.String
			}
		case stepexecution.FieldStepOrder:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field step_order", values[i])
			} else if value.Valid {
				_m.StepOrder = int(value.Int64)
			}
		case stepexecution.FieldPhaseRank:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field phase_rank", values[i])
			} else if value.Valid {
				_m.PhaseRank = int(value.Int64)
			}
		case stepexecution.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = stepexecution.Status(value.String)
			}
		case stepexecution.FieldStartedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field started_at", values[i])
			} else if value.Valid {
				_m.StartedAt = new(time.Time)
				*_m.StartedAt = value.Time
			}
		case stepexecution.FieldCompletedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field completed_at", values[i])
			} else if value.Valid {
				_m.CompletedAt = new(time.Time)
				*_m.CompletedAt = value.Time
			}
		case stepexecution.FieldDurationMs:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field duration_ms", values[i])
			} else if value.Valid {
				_m.DurationMs = new(int)
				*_m.DurationMs = int(value.Int64)
			}
		case stepexecution.FieldInputText:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field input_text", values[i])
			} else if value != nil {
				_m.InputText = *value
			}
		case stepexecution.FieldOutputText:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field output_text", values[i])
			} else if value != nil {
				_m.OutputText = *value
			}
		case stepexecution.FieldErrorMessage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error_message", values[i])
			} else if value.Valid {
				_m.ErrorMessage = new(string)
				*_m.ErrorMessage = value.String
			}
		case stepexecution.FieldModelUsed:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field model_used", values[i])
			} else if value.Valid {
				_m.ModelUsed = new(string)
				*_m.ModelUsed = value.String
			}
		case stepexecution.FieldInputTokens:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field input_tokens", values[i])
			} else if value.Valid {
				_m.InputTokens = new(int)
				*_m.InputTokens = int(value.Int64)
			}
		case stepexecution.FieldOutputTokens:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field output_tokens", values[i])
			} else if value.Valid {
				_m.OutputTokens = new(int)
				*_m.OutputTokens = int(value.Int64)
			}
		case stepexecution.FieldCost:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field cost", values[i])
			} else if value.Valid {
				_m.Cost = new(float64)
				*_m.Cost = value.Float64
			}
		case stepexecution.FieldAttempts:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field attempts", values[i])
			} else if value.Valid {
				_m.Attempts = int(value.Int64)
			}
		case stepexecution.FieldCreatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the StepExecution.
// This includes values selected through modifiers, order, etc.
func (_m *StepExecution) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryJob queries the "job" edge of the StepExecution entity.
func (_m *StepExecution) QueryJob() *JobQuery {
	return NewStepExecutionClient(_m.config).QueryJob(_m)
}

// QueryAiInteractions queries the "ai_interactions" edge of the StepExecution entity.
func (_m *StepExecution) QueryAiInteractions() *AIInteractionLogQuery {
	return NewStepExecutionClient(_m.config).QueryAiInteractions(_m)
}

// Update returns a builder for updating this StepExecution.
// Note that you need to call StepExecution.Unwrap() before calling this method if this StepExecution
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *StepExecution) Update() *StepExecutionUpdateOne {
	return NewStepExecutionClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the StepExecution entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *StepExecution) Unwrap() *StepExecution {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: StepExecution is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *StepExecution) String() string {
	var builder strings.Builder
	builder.WriteString("StepExecution(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("job_id=")
	builder.WriteString(_m.JobID)
	builder.WriteString(", ")
	builder.WriteString("step_name=")
	builder.WriteString(_m.StepName)
	builder.WriteString(", ")
	builder.WriteString("step_order=")
	builder.WriteString(fmt.Sprintf("%v", _m.StepOrder))
	builder.WriteString(", ")
	builder.WriteString("phase_rank=")
	builder.WriteString(fmt.Sprintf("%v", _m.PhaseRank))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	if v := _m.StartedAt; v != nil {
		builder.WriteString("started_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.CompletedAt; v != nil {
		builder.WriteString("completed_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.DurationMs; v != nil {
		builder.WriteString("duration_ms=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("input_text=<sensitive>")
	builder.WriteString(", ")
	builder.WriteString("output_text=<sensitive>")
	builder.WriteString(", ")
	if v := _m.ErrorMessage; v != nil {
		builder.WriteString("error_message=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.ModelUsed; v != nil {
		builder.WriteString("model_used=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.InputTokens; v != nil {
		builder.WriteString("input_tokens=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.OutputTokens; v != nil {
		builder.WriteString("output_tokens=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.Cost; v != nil {
		builder.WriteString("cost=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("attempts=")
	builder.WriteString(fmt.Sprintf("%v", _m.Attempts))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// StepExecutions is a parsable slice of StepExecution.
type StepExecutions []*StepExecution
