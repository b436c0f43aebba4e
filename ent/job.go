// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/klartext-health/befund/ent/job"
)

// Job is the model entity for the Job schema.
type Job struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// Public-facing token (ULID, sortable)
	ProcessingID string `json:"processing_id,omitempty"`
	// Filename holds the value of the "filename" field.
	Filename string `json:"filename,omitempty"`
	// FileType holds the value of the "file_type" field.
	FileType string `json:"file_type,omitempty"`
	// FileSize holds the value of the "file_size" field.
	FileSize int64 `json:"file_size,omitempty"`
	// AES-GCM sealed upload payload, nonce-prefixed
	FileContent []byte `json:"-"`
	// BLAKE3 hex digest of the plaintext payload
	FileHash string `json:"file_hash,omitempty"`
	// Step-graph snapshot taken at enqueue time; authoritative for this job
	PipelineConfig map[string]interface{} `json:"pipeline_config,omitempty"`
	// OcrConfig holds the value of the "ocr_config" field.
	OcrConfig map[string]interface{} `json:"ocr_config,omitempty"`
	// TargetLanguage holds the value of the "target_language" field.
	TargetLanguage *string `json:"target_language,omitempty"`
	// Set by the branching step (e.g. 'ARZTBRIEF')
	DocumentClass *string `json:"document_class,omitempty"`
	// Status holds the value of the "status" field.
	Status job.Status `json:"status,omitempty"`
	// QueueLane holds the value of the "queue_lane" field.
	QueueLane string `json:"queue_lane,omitempty"`
	// Job-level requeue counter, distinct from per-step retries
	JobAttempts int `json:"job_attempts,omitempty"`
	// ProgressPercent holds the value of the "progress_percent" field.
	ProgressPercent int `json:"progress_percent,omitempty"`
	// CurrentStep holds the value of the "current_step" field.
	CurrentStep *string `json:"current_step,omitempty"`
	// PII-cleaned OCR text, sealed; immutable once set
	OriginalText []byte `json:"-"`
	// SimplifiedText holds the value of the "simplified_text" field.
	SimplifiedText []byte `json:"-"`
	// TranslatedText holds the value of the "translated_text" field.
	TranslatedText []byte `json:"-"`
	// Structured outcome: processing_steps, termination info, totals
	ResultData map[string]interface{} `json:"result_data,omitempty"`
	// ErrorMessage holds the value of the "error_message" field.
	ErrorMessage *string `json:"error_message,omitempty"`
	// TotalTokens holds the value of the "total_tokens" field.
	TotalTokens int `json:"total_tokens,omitempty"`
	// EUR; monotonic nondecreasing while running
	TotalCost float64 `json:"total_cost,omitempty"`
	// True when the local fallback filter produced original_text
	PiiDegraded bool `json:"pii_degraded,omitempty"`
	// Tenant holds the value of the "tenant" field.
	Tenant *string `json:"tenant,omitempty"`
	// Opaque subject from the auth surrogate
	SubmittedBy *string `json:"submitted_by,omitempty"`
	// For multi-replica coordination
	WorkerID *string `json:"worker_id,omitempty"`
	// For orphan detection
	LastHeartbeatAt *time.Time `json:"last_heartbeat_at,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// When a worker reserved the job (queued to running)
	StartedAt *time.Time `json:"started_at,omitempty"`
	// CompletedAt holds the value of the "completed_at" field.
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the JobQuery when eager-loading is set.
	Edges        JobEdges `json:"edges"`
	selectValues sql.SelectValues
}

// JobEdges holds the relations/edges for other nodes in the graph.
type JobEdges struct {
	// StepExecutions holds the value of the step_executions edge.
	StepExecutions []*StepExecution `json:"step_executions,omitempty"`
	// AiInteractions holds the value of the ai_interactions edge.
	AiInteractions []*AIInteractionLog `json:"ai_interactions,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// StepExecutionsOrErr returns the StepExecutions value or an error if the edge
// was not loaded in eager-loading.
func (e JobEdges) StepExecutionsOrErr() ([]*StepExecution, error) {
	if e.loadedTypes[0] {
		return e.StepExecutions, nil
	}
	return nil, &NotLoadedError{edge: "step_executions"}
}

// AiInteractionsOrErr returns the AiInteractions value or an error if the edge
// was not loaded in eager-loading.
func (e JobEdges) AiInteractionsOrErr() ([]*AIInteractionLog, error) {
	if e.loadedTypes[1] {
		return e.AiInteractions, nil
	}
	return nil, &NotLoadedError{edge: "ai_interactions"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Job) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case job.FieldFileContent, job.FieldPipelineConfig, job.FieldOcrConfig, job.FieldOriginalText, job.FieldSimplifiedText, job.FieldTranslatedText, job.FieldResultData:
			values[i] = new([]byte)
		case job.FieldPiiDegraded:
			values[i] = new(sql.NullBool)
		case job.FieldTotalCost:
			values[i] = new(sql.NullFloat64)
		case job.FieldFileSize, job.FieldJobAttempts, job.FieldProgressPercent, job.FieldTotalTokens:
			values[i] = new(sql.NullInt64)
		case job.FieldID, job.FieldProcessingID, job.FieldFilename, job.FieldFileType, job.FieldFileHash, job.FieldTargetLanguage, job.FieldDocumentClass, job.FieldStatus, job.FieldQueueLane, job.FieldCurrentStep, job.FieldErrorMessage, job.FieldTenant, job.FieldSubmittedBy, job.FieldWorkerID:
			values[i] = new(sql.NullString)
		case job.FieldLastHeartbeatAt, job.FieldCreatedAt, job.FieldUpdatedAt, job.FieldStartedAt, job.FieldCompletedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Job fields.
func (_m *Job) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case job.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case job.FieldProcessingID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field processing_id", values[i])
			} else if value.Valid {
				_m.ProcessingID = value.String
			}
		case job.FieldFilename:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field filename", values[i])
			} else if value.Valid {
				_m.Filename = value.String
			}
		case job.FieldFileType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field file_type", values[i])
			} else if value.Valid {
				_m.FileType = value.String
			}
		case job.FieldFileSize:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field file_size", values[i])
			} else if value.Valid {
				_m.FileSize = value.Int64
			}
		case job.FieldFileContent:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field file_content", values[i])
			} else if value != nil {
				_m.FileContent = *value
			}
		case job.FieldFileHash:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field file_hash", values[i])
			} else if value.Valid {
				_m.FileHash = value.String
			}
		case job.FieldPipelineConfig:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field pipeline_config", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.PipelineConfig); err != nil {
					return fmt.Errorf("unmarshal field pipeline_config: %w", err)
				}
			}
		case job.FieldOcrConfig:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field ocr_config", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.OcrConfig); err != nil {
					return fmt.Errorf("unmarshal field ocr_config: %w", err)
				}
			}
		case job.FieldTargetLanguage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field target_language", values[i])
			} else if value.Valid {
				_m.TargetLanguage = new(string)
				*_m.TargetLanguage = value.String
			}
		case job.FieldDocumentClass:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field document_class", values[i])
			} else if value.Valid {
				_m.DocumentClass = new(string)
				*_m.DocumentClass = value.String
			}
		case job.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = job.Status(value.String)
			}
		case job.FieldQueueLane:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field queue_lane", values[i])
			} else if value.Valid {
				_m.QueueLane = value.String
			}
		case job.FieldJobAttempts:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field job_attempts", values[i])
			} else if value.Valid {
				_m.JobAttempts = int(value.Int64)
			}
		case job.FieldProgressPercent:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field progress_percent", values[i])
			} else if value.Valid {
				_m.ProgressPercent = int(value.Int64)
			}
		case job.FieldCurrentStep:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field current_step", values[i])
			} else if value.Valid {
				_m.CurrentStep = new(string)
				*_m.CurrentStep = value.String
			}
		case job.FieldOriginalText:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field original_text", values[i])
			} else if value != nil {
				_m.OriginalText = *value
			}
		case job.FieldSimplifiedText:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field simplified_text", values[i])
			} else if value != nil {
				_m.SimplifiedText = *value
			}
		case job.FieldTranslatedText:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field translated_text", values[i])
			} else if value != nil {
				_m.TranslatedText = *value
			}
		case job.FieldResultData:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field result_data", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.ResultData); err != nil {
					return fmt.Errorf("unmarshal field result_data: %w", err)
				}
			}
		case job.FieldErrorMessage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error_message", values[i])
			} else if value.Valid {
				_m.ErrorMessage = new(string)
				*_m.ErrorMessage = value.String
			}
		case job.FieldTotalTokens:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field total_tokens", values[i])
			} else if value.Valid {
				_m.TotalTokens = int(value.Int64)
			}
		case job.FieldTotalCost:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field total_cost", values[i])
			} else if value.Valid {
				_m.TotalCost = value.Float64
			}
		case job.FieldPiiDegraded:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field pii_degraded", values[i])
			} else if value.Valid {
				_m.PiiDegraded = value.Bool
			}
		case job.FieldTenant:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field tenant", values[i])
			} else if value.Valid {
				_m.Tenant = new(string)
				*_m.Tenant = value.String
			}
		case job.FieldSubmittedBy:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field submitted_by", values[i])
			} else if value.Valid {
				_m.SubmittedBy = new(string)
				*_m.SubmittedBy = value.String
			}
		case job.FieldWorkerID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field worker_id", values[i])
			} else if value.Valid {
				_m.WorkerID = new(string)
				*_m.WorkerID = value.String
			}
		case job.FieldLastHeartbeatAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_heartbeat_at", values[i])
			} else if value.Valid {
				_m.LastHeartbeatAt = new(time.Time)
				*_m.LastHeartbeatAt = value.Time
			}
		case job.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case job.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case job.FieldStartedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field started_at", values[i])
			} else if value.Valid {
				_m.StartedAt = new(time.Time)
				*_m.StartedAt = value.Time
			}
		case job.FieldCompletedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field completed_at", values[i])
			} else if value.Valid {
				_m.CompletedAt = new(time.Time)
				*_m.CompletedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Job.
// This includes values selected through modifiers, order, etc.
func (_m *Job) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryStepExecutions queries the "step_executions" edge of the Job entity.
func (_m *Job) QueryStepExecutions() *StepExecutionQuery {
	return NewJobClient(_m.config).QueryStepExecutions(_m)
}

// QueryAiInteractions queries the "ai_interactions" edge of the Job entity.
func (_m *Job) QueryAiInteractions() *AIInteractionLogQuery {
	return NewJobClient(_m.config).QueryAiInteractions(_m)
}

// Update returns a builder for updating this Job.
// Note that you need to call Job.Unwrap() before calling this method if this Job
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Job) Update() *JobUpdateOne {
	return NewJobClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Job entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Job) Unwrap() *Job {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Job is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Job) String() string {
	var builder strings.Builder
	builder.WriteString("Job(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("processing_id=")
	builder.WriteString(_m.ProcessingID)
	builder.WriteString(", ")
	builder.WriteString("filename=")
	builder.WriteString(_m.Filename)
	builder.WriteString(", ")
	builder.WriteString("file_type=")
	builder.WriteString(_m.FileType)
	builder.WriteString(", ")
	builder.WriteString("file_size=")
	builder.WriteString(fmt.Sprintf("%v", _m.FileSize))
	builder.WriteString(", ")
	builder.WriteString("file_content=<sensitive>")
	builder.WriteString(", ")
	builder.WriteString("file_hash=")
	builder.WriteString(_m.FileHash)
	builder.WriteString(", ")
	builder.WriteString("pipeline_config=")
	builder.WriteString(fmt.Sprintf("%v", _m.PipelineConfig))
	builder.WriteString(", ")
	builder.WriteString("ocr_config=")
	builder.WriteString(fmt.Sprintf("%v", _m.OcrConfig))
	builder.WriteString(", ")
	if v := _m.TargetLanguage; v != nil {
		builder.WriteString("target_language=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.DocumentClass; v != nil {
		builder.WriteString("document_class=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("queue_lane=")
	builder.WriteString(_m.QueueLane)
	builder.WriteString(", ")
	builder.WriteString("job_attempts=")
	builder.WriteString(fmt.Sprintf("%v", _m.JobAttempts))
	builder.WriteString(", ")
	builder.WriteString("progress_percent=")
	builder.WriteString(fmt.Sprintf("%v", _m.ProgressPercent))
	builder.WriteString(", ")
	if v := _m.CurrentStep; v != nil {
		builder.WriteString("current_step=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("original_text=<sensitive>")
	builder.WriteString(", ")
	builder.WriteString("simplified_text=<sensitive>")
	builder.WriteString(", ")
	builder.WriteString("translated_text=<sensitive>")
	builder.WriteString(", ")
	builder.WriteString("result_data=")
	builder.WriteString(fmt.Sprintf("%v", _m.ResultData))
	builder.WriteString(", ")
	if v := _m.ErrorMessage; v != nil {
		builder.WriteString("error_message=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("total_tokens=")
	builder.WriteString(fmt.Sprintf("%v", _m.TotalTokens))
	builder.WriteString(", ")
	builder.WriteString("total_cost=")
	builder.WriteString(fmt.Sprintf("%v", _m.TotalCost))
	builder.WriteString(", ")
	builder.WriteString("pii_degraded=")
	builder.WriteString(fmt.Sprintf("%v", _m.PiiDegraded))
	builder.WriteString(", ")
	if v := _m.Tenant; v != nil {
		builder.WriteString("tenant=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.SubmittedBy; v != nil {
		builder.WriteString("submitted_by=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.WorkerID; v != nil {
		builder.WriteString("worker_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.LastHeartbeatAt; v != nil {
		builder.WriteString("last_heartbeat_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
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
	builder.WriteByte(')')
	return builder.String()
}

// Jobs is a parsable slice of Job.
type Jobs []*Job
