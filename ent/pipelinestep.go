// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/klartext-health/befund/ent/documentclass"
	"github.com/klartext-health/befund/ent/pipelinestep"
)

// PipelineStep is the model entity for the PipelineStep schema.
type PipelineStep struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// e.g. 'Medical Content Validation'
	Name string `json:"name,omitempty"`
	// Description holds the value of the "description" field.
	Description string `json:"description,omitempty"`
	// Position within the step's phase bucket
	SortOrder int `json:"sort_order,omitempty"`
	// PostBranching holds the value of the "post_branching" field.
	PostBranching bool `json:"post_branching,omitempty"`
	// Scopes the step to one document class; null = universal
	DocumentClassID *int `json:"document_class_id,omitempty"`
	// Enabled holds the value of the "enabled" field.
	Enabled bool `json:"enabled,omitempty"`
	// The classifier; its first output token selects the class
	IsBranchingStep bool `json:"is_branching_step,omitempty"`
	// Registry lookup by name at snapshot time, no FK snapshot
	ModelName string `json:"model_name,omitempty"`
	// Temperature holds the value of the "temperature" field.
	Temperature float64 `json:"temperature,omitempty"`
	// MaxTokens holds the value of the "max_tokens" field.
	MaxTokens int `json:"max_tokens,omitempty"`
	// Untrusted template with {placeholder} substitution; the user message
	PromptTemplate string `json:"prompt_template,omitempty"`
	// Trusted, passed through verbatim as the system message
	SystemPrompt *string `json:"system_prompt,omitempty"`
	// All must be present and non-empty or the step is skipped
	RequiredContextVariables []string `json:"required_context_variables,omitempty"`
	// First-token matches trigger graceful termination
	StopOnValues []string `json:"stop_on_values,omitempty"`
	// Classification steps: first tokens accepted as a pass; branching steps add class keys implicitly
	AllowedContinueValues []string `json:"allowed_continue_values,omitempty"`
	// TerminationReason holds the value of the "termination_reason" field.
	TerminationReason *string `json:"termination_reason,omitempty"`
	// TerminationMessage holds the value of the "termination_message" field.
	TerminationMessage *string `json:"termination_message,omitempty"`
	// RetryOnFailure holds the value of the "retry_on_failure" field.
	RetryOnFailure bool `json:"retry_on_failure,omitempty"`
	// MaxRetries holds the value of the "max_retries" field.
	MaxRetries int `json:"max_retries,omitempty"`
	// Input is the original cleaned OCR text instead of the previous output
	UseOriginalText bool `json:"use_original_text,omitempty"`
	// OutputFormat holds the value of the "output_format" field.
	OutputFormat pipelinestep.OutputFormat `json:"output_format,omitempty"`
	// Bumped on every update; snapshots record it
	Version int `json:"version,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the PipelineStepQuery when eager-loading is set.
	Edges        PipelineStepEdges `json:"edges"`
	selectValues sql.SelectValues
}

// PipelineStepEdges holds the relations/edges for other nodes in the graph.
type PipelineStepEdges struct {
	// DocumentClass holds the value of the document_class edge.
	DocumentClass *DocumentClass `json:"document_class,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// DocumentClassOrErr returns the DocumentClass value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e PipelineStepEdges) DocumentClassOrErr() (*DocumentClass, error) {
	if e.DocumentClass != nil {
		return e.DocumentClass, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: documentclass.Label}
	}
	return nil, &NotLoadedError{edge: "document_class"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*PipelineStep) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case pipelinestep.FieldRequiredContextVariables, pipelinestep.FieldStopOnValues, pipelinestep.FieldAllowedContinueValues:
			values[i] = new([]byte)
		case pipelinestep.FieldPostBranching, pipelinestep.FieldEnabled, pipelinestep.FieldIsBranchingStep, pipelinestep.FieldRetryOnFailure, pipelinestep.FieldUseOriginalText:
			values[i] = new(sql.NullBool)
		case pipelinestep.FieldTemperature:
			values[i] = new(sql.NullFloat64)
		case pipelinestep.FieldID, pipelinestep.FieldSortOrder, pipelinestep.FieldDocumentClassID, pipelinestep.FieldMaxTokens, pipelinestep.FieldMaxRetries, pipelinestep.FieldVersion:
			values[i] = new(sql.NullInt64)
		case pipelinestep.FieldName, pipelinestep.FieldDescription, pipelinestep.FieldModelName, pipelinestep.FieldPromptTemplate, pipelinestep.FieldSystemPrompt, pipelinestep.FieldTerminationReason, pipelinestep.FieldTerminationMessage, pipelinestep.FieldOutputFormat:
			values[i] = new(sql.NullString)
		case pipelinestep.FieldCreatedAt, pipelinestep.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the PipelineStep fields.
func (_m *PipelineStep) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case pipelinestep.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case pipelinestep.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case pipelinestep.FieldDescription:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field description", values[i])
			} else if value.Valid {
				_m.Description = value.String
			}
		case pipelinestep.FieldSortOrder:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sort_order", values[i])
			} else if value.Valid {
				_m.SortOrder = int(value.Int64)
			}
		case pipelinestep.FieldPostBranching:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field post_branching", values[i])
			} else if value.Valid {
				_m.PostBranching = value.Bool
			}
		case pipelinestep.FieldDocumentClassID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field document_class_id", values[i])
			} else if value.Valid {
				_m.DocumentClassID = new(int)
				*_m.DocumentClassID = int(value.Int64)
			}
		case pipelinestep.FieldEnabled:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field enabled", values[i])
			} else if value.Valid {
				_m.Enabled = value.Bool
			}
		case pipelinestep.FieldIsBranchingStep:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_branching_step", values[i])
			} else if value.Valid {
				_m.IsBranchingStep = value.Bool
			}
		case pipelinestep.FieldModelName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field model_name", values[i])
			} else if value.Valid {
				_m.ModelName = value.String
			}
		case pipelinestep.FieldTemperature:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field temperature", values[i])
			} else if value.Valid {
				_m.Temperature = value.Float64
			}
		case pipelinestep.FieldMaxTokens:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field max_tokens", values[i])
			} else if value.Valid {
				_m.MaxTokens = int(value.Int64)
			}
		case pipelinestep.FieldPromptTemplate:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field prompt_template", values[i])
			} else if value.Valid {
				_m.PromptTemplate = value.String
			}
		case pipelinestep.FieldSystemPrompt:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field system_prompt", values[i])
			} else if value.Valid {
				_m.SystemPrompt = new(string)
				*_m.SystemPrompt = value.String
			}
		case pipelinestep.FieldRequiredContextVariables:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field required_context_variables", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.RequiredContextVariables); err != nil {
					return fmt.Errorf("unmarshal field required_context_variables: %w", err)
				}
			}
		case pipelinestep.FieldStopOnValues:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field stop_on_values", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.StopOnValues); err != nil {
					return fmt.Errorf("unmarshal field stop_on_values: %w", err)
				}
			}
		case pipelinestep.FieldAllowedContinueValues:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field allowed_continue_values", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.AllowedContinueValues); err != nil {
					return fmt.Errorf("unmarshal field allowed_continue_values: %w", err)
				}
			}
		case pipelinestep.FieldTerminationReason:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field termination_reason", values[i])
			} else if value.Valid {
				_m.TerminationReason = new(string)
				*_m.TerminationReason = value.String
			}
		case pipelinestep.FieldTerminationMessage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field termination_message", values[i])
			} else if value.Valid {
				_m.TerminationMessage = new(string)
				*_m.TerminationMessage = value.String
			}
		case pipelinestep.FieldRetryOnFailure:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field retry_on_failure", values[i])
			} else if value.Valid {
				_m.RetryOnFailure = value.Bool
			}
		case pipelinestep.FieldMaxRetries:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field max_retries", values[i])
			} else if value.Valid {
				_m.MaxRetries = int(value.Int64)
			}
		case pipelinestep.FieldUseOriginalText:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field use_original_text", values[i])
			} else if value.Valid {
				_m.UseOriginalText = value.Bool
			}
		case pipelinestep.FieldOutputFormat:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field output_format", values[i])
			} else if value.Valid {
				_m.OutputFormat = pipelinestep.OutputFormat(value.String)
			}
		case pipelinestep.FieldVersion:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field version", values[i])
			} else if value.Valid {
				_m.Version = int(value.Int64)
			}
		case pipelinestep.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case pipelinestep.FieldUpdatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the PipelineStep.
// This includes values selected through modifiers, order, etc.
func (_m *PipelineStep) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryDocumentClass queries the "document_class" edge of the PipelineStep entity.
func (_m *PipelineStep) QueryDocumentClass() *DocumentClassQuery {
	return NewPipelineStepClient(_m.config).QueryDocumentClass(_m)
}

// Update returns a builder for updating this PipelineStep.
// Note that you need to call PipelineStep.Unwrap() before calling this method if this PipelineStep
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *PipelineStep) Update() *PipelineStepUpdateOne {
	return NewPipelineStepClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the PipelineStep entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *PipelineStep) Unwrap() *PipelineStep {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: PipelineStep is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *PipelineStep) String() string {
	var builder strings.Builder
	builder.WriteString("PipelineStep(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	builder.WriteString("description=")
	builder.WriteString(_m.Description)
	builder.WriteString(", ")
	builder.WriteString("sort_order=")
	builder.WriteString(fmt.Sprintf("%v", _m.SortOrder))
	builder.WriteString(", ")
	builder.WriteString("post_branching=")
	builder.WriteString(fmt.Sprintf("%v", _m.PostBranching))
	builder.WriteString(", ")
	if v := _m.DocumentClassID; v != nil {
		builder.WriteString("document_class_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("enabled=")
	builder.WriteString(fmt.Sprintf("%v", _m.Enabled))
	builder.WriteString(", ")
	builder.WriteString("is_branching_step=")
	builder.WriteString(fmt.Sprintf("%v", _m.IsBranchingStep))
	builder.WriteString(", ")
	builder.WriteString("model_name=")
	builder.WriteString(_m.ModelName)
	builder.WriteString(", ")
	builder.WriteString("temperature=")
	builder.WriteString(fmt.Sprintf("%v", _m.Temperature))
	builder.WriteString(", ")
	builder.WriteString("max_tokens=")
	builder.WriteString(fmt.Sprintf("%v", _m.MaxTokens))
	builder.WriteString(", ")
	builder.WriteString("prompt_template=")
	builder.WriteString(_m.PromptTemplate)
	builder.WriteString(", ")
	if v := _m.SystemPrompt; v != nil {
		builder.WriteString("system_prompt=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("required_context_variables=")
	builder.WriteString(fmt.Sprintf("%v", _m.RequiredContextVariables))
	builder.WriteString(", ")
	builder.WriteString("stop_on_values=")
	builder.WriteString(fmt.Sprintf("%v", _m.StopOnValues))
	builder.WriteString(", ")
	builder.WriteString("allowed_continue_values=")
	builder.WriteString(fmt.Sprintf("%v", _m.AllowedContinueValues))
	builder.WriteString(", ")
	if v := _m.TerminationReason; v != nil {
		builder.WriteString("termination_reason=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.TerminationMessage; v != nil {
		builder.WriteString("termination_message=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("retry_on_failure=")
	builder.WriteString(fmt.Sprintf("%v", _m.RetryOnFailure))
	builder.WriteString(", ")
	builder.WriteString("max_retries=")
	builder.WriteString(fmt.Sprintf("%v", _m.MaxRetries))
	builder.WriteString(", ")
	builder.WriteString("use_original_text=")
	builder.WriteString(fmt.Sprintf("%v", _m.UseOriginalText))
	builder.WriteString(", ")
	builder.WriteString("output_format=")
	builder.WriteString(fmt.Sprintf("%v", _m.OutputFormat))
	builder.WriteString(", ")
	builder.WriteString("version=")
	builder.WriteString(fmt.Sprintf("%v", _m.Version))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// PipelineSteps is a parsable slice of PipelineStep.
type PipelineSteps []*PipelineStep
