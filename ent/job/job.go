// Code generated by ent, DO NOT EDIT.

package job

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the job type in the database.
	Label = "job"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "job_id"
	// FieldProcessingID holds the string denoting the processing_id field in the database.
	FieldProcessingID = "processing_id"
	// FieldFilename holds the string denoting the filename field in the database.
	FieldFilename = "filename"
	// FieldFileType holds the string denoting the file_type field in the database.
	FieldFileType = "file_type"
	// FieldFileSize holds the string denoting the file_size field in the database.
	FieldFileSize = "file_size"
	// FieldFileContent holds the string denoting the file_content field in the database.
	FieldFileContent = "file_content"
	// FieldFileHash holds the string denoting the file_hash field in the database.
	FieldFileHash = "file_hash"
	// FieldPipelineConfig holds the string denoting the pipeline_config field in the database.
	FieldPipelineConfig = "pipeline_config"
	// FieldOcrConfig holds the string denoting the ocr_config field in the database.
	FieldOcrConfig = "ocr_config"
	// FieldTargetLanguage holds the string denoting the target_language field in the database.
	FieldTargetLanguage = "target_language"
	// FieldDocumentClass holds the string denoting the document_class field in the database.
	FieldDocumentClass = "document_class"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldQueueLane holds the string denoting the queue_lane field in the database.
	FieldQueueLane = "queue_lane"
	// FieldJobAttempts holds the string denoting the job_attempts field in the database.
	FieldJobAttempts = "job_attempts"
	// FieldProgressPercent holds the string denoting the progress_percent field in the database.
	FieldProgressPercent = "progress_percent"
	// FieldCurrentStep holds the string denoting the current_step field in the database.
	FieldCurrentStep = "current_step"
	// FieldOriginalText holds the string denoting the original_text field in the database.
	FieldOriginalText = "original_text"
	// FieldSimplifiedText holds the string denoting the simplified_text field in the database.
	FieldSimplifiedText = "simplified_text"
	// FieldTranslatedText holds the string denoting the translated_text field in the database.
	FieldTranslatedText = "translated_text"
	// FieldResultData holds the string denoting the result_data field in the database.
	FieldResultData = "result_data"
	// FieldErrorMessage holds the string denoting the error_message field in the database.
	FieldErrorMessage = "error_message"
	// FieldTotalTokens holds the string denoting the total_tokens field in the database.
	FieldTotalTokens = "total_tokens"
	// FieldTotalCost holds the string denoting the total_cost field in the database.
	FieldTotalCost = "total_cost"
	// FieldPiiDegraded holds the string denoting the pii_degraded field in the database.
	FieldPiiDegraded = "pii_degraded"
	// FieldTenant holds the string denoting the tenant field in the database.
	FieldTenant = "tenant"
	// FieldSubmittedBy holds the string denoting the submitted_by field in the database.
	FieldSubmittedBy = "submitted_by"
	// FieldWorkerID holds the string denoting the worker_id field in the database.
	FieldWorkerID = "worker_id"
	// FieldLastHeartbeatAt holds the string denoting the last_heartbeat_at field in the database.
	FieldLastHeartbeatAt = "last_heartbeat_at"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// FieldStartedAt holds the string denoting the started_at field in the database.
	FieldStartedAt = "started_at"
	// FieldCompletedAt holds the string denoting the completed_at field in the database.
	FieldCompletedAt = "completed_at"
	// EdgeStepExecutions holds the string denoting the step_executions edge name in mutations.
	EdgeStepExecutions = "step_executions"
	// EdgeAiInteractions holds the string denoting the ai_interactions edge name in mutations.
	EdgeAiInteractions = "ai_interactions"
	// StepExecutionFieldID holds the string denoting the ID field of the StepExecution.
	StepExecutionFieldID = "step_execution_id"
	// AIInteractionLogFieldID holds the string denoting the ID field of the AIInteractionLog.
	AIInteractionLogFieldID = "id"
	// Table holds the table name of the job in the database.
	Table = "jobs"
	// StepExecutionsTable is the table that holds the step_executions relation/edge.
	StepExecutionsTable = "step_executions"
	// StepExecutionsInverseTable is the table name for the StepExecution entity.
	// It exists in this package in order to avoid circular dependency with the "stepexecution" package.
	StepExecutionsInverseTable = "step_executions"
	// StepExecutionsColumn is the table column denoting the step_executions relation/edge.
	StepExecutionsColumn = "job_id"
	// AiInteractionsTable is the table that holds the ai_interactions relation/edge.
	AiInteractionsTable = "ai_interaction_logs"
	// AiInteractionsInverseTable is the table name for the AIInteractionLog entity.
	// It exists in this package in order to avoid circular dependency with the "aiinteractionlog" package.
	AiInteractionsInverseTable = "ai_interaction_logs"
	// AiInteractionsColumn is the table column denoting the ai_interactions relation/edge.
	AiInteractionsColumn = "job_id"
)

// Columns holds all SQL columns for job fields.
var Columns = []string{
	FieldID,
	FieldProcessingID,
	FieldFilename,
	FieldFileType,
	FieldFileSize,
	FieldFileContent,
	FieldFileHash,
	FieldPipelineConfig,
	FieldOcrConfig,
	FieldTargetLanguage,
	FieldDocumentClass,
	FieldStatus,
	FieldQueueLane,
	FieldJobAttempts,
	FieldProgressPercent,
	FieldCurrentStep,
	FieldOriginalText,
	FieldSimplifiedText,
	FieldTranslatedText,
	FieldResultData,
	FieldErrorMessage,
	FieldTotalTokens,
	FieldTotalCost,
	FieldPiiDegraded,
	FieldTenant,
	FieldSubmittedBy,
	FieldWorkerID,
	FieldLastHeartbeatAt,
	FieldCreatedAt,
	FieldUpdatedAt,
	FieldStartedAt,
	FieldCompletedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultQueueLane holds the default value on creation for the "queue_lane" field.
	DefaultQueueLane string
	// DefaultJobAttempts holds the default value on creation for the "job_attempts" field.
	DefaultJobAttempts int
	// DefaultProgressPercent holds the default value on creation for the "progress_percent" field.
	DefaultProgressPercent int
	// DefaultTotalTokens holds the default value on creation for the "total_tokens" field.
	DefaultTotalTokens int
	// DefaultTotalCost holds the default value on creation for the "total_cost" field.
	DefaultTotalCost float64
	// DefaultPiiDegraded holds the default value on creation for the "pii_degraded" field.
	DefaultPiiDegraded bool
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// Status defines the type for the "status" enum field.
type Status string

// StatusPending is the default value of the Status enum.
const DefaultStatus = StatusPending

// Status values.
const (
	StatusPending    Status = "pending"
	StatusQueued     Status = "queued"
	StatusRunning    Status = "running"
	StatusCompleted  Status = "completed"
	StatusFailed     Status = "failed"
	StatusCancelled  Status = "cancelled"
	StatusTimeout    Status = "timeout"
	StatusTerminated Status = "terminated"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusPending, StatusQueued, StatusRunning, StatusCompleted, StatusFailed, StatusCancelled, StatusTimeout, StatusTerminated:
		return nil
	default:
		return fmt.Errorf("job: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the Job queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByProcessingID orders the results by the processing_id field.
func ByProcessingID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProcessingID, opts...).ToFunc()
}

// ByFilename orders the results by the filename field.
func ByFilename(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFilename, opts...).ToFunc()
}

// ByFileType orders the results by the file_type field.
func ByFileType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFileType, opts...).ToFunc()
}

// ByFileSize orders the results by the file_size field.
func ByFileSize(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFileSize, opts...).ToFunc()
}

// ByFileHash orders the results by the file_hash field.
func ByFileHash(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFileHash, opts...).ToFunc()
}

// ByTargetLanguage orders the results by the target_language field.
func ByTargetLanguage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTargetLanguage, opts...).ToFunc()
}

// ByDocumentClass orders the results by the document_class field.
func ByDocumentClass(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDocumentClass, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByQueueLane orders the results by the queue_lane field.
func ByQueueLane(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldQueueLane, opts...).ToFunc()
}

// ByJobAttempts orders the results by the job_attempts field.
func ByJobAttempts(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldJobAttempts, opts...).ToFunc()
}

// ByProgressPercent orders the results by the progress_percent field.
func ByProgressPercent(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProgressPercent, opts...).ToFunc()
}

// ByCurrentStep orders the results by the current_step field.
func ByCurrentStep(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCurrentStep, opts...).ToFunc()
}

// ByErrorMessage orders the results by the error_message field.
func ByErrorMessage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldErrorMessage, opts...).ToFunc()
}

// ByTotalTokens orders the results by the total_tokens field.
func ByTotalTokens(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTotalTokens, opts...).ToFunc()
}

// ByTotalCost orders the results by the total_cost field.
func ByTotalCost(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTotalCost, opts...).ToFunc()
}

// ByPiiDegraded orders the results by the pii_degraded field.
func ByPiiDegraded(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPiiDegraded, opts...).ToFunc()
}

// ByTenant orders the results by the tenant field.
func ByTenant(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTenant, opts...).ToFunc()
}

// BySubmittedBy orders the results by the submitted_by field.
func BySubmittedBy(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSubmittedBy, opts...).ToFunc()
}

// ByWorkerID orders the results by the worker_id field.
func ByWorkerID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWorkerID, opts...).ToFunc()
}

// ByLastHeartbeatAt orders the results by the last_heartbeat_at field.
func ByLastHeartbeatAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastHeartbeatAt, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByStartedAt orders the results by the started_at field.
func ByStartedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStartedAt, opts...).ToFunc()
}

// ByCompletedAt orders the results by the completed_at field.
func ByCompletedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompletedAt, opts...).ToFunc()
}

// ByStepExecutionsCount orders the results by step_executions count.
func ByStepExecutionsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newStepExecutionsStep(), opts...)
	}
}

// ByStepExecutions orders the results by step_executions terms.
func ByStepExecutions(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newStepExecutionsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByAiInteractionsCount orders the results by ai_interactions count.
func ByAiInteractionsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newAiInteractionsStep(), opts...)
	}
}

// ByAiInteractions orders the results by ai_interactions terms.
func ByAiInteractions(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newAiInteractionsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newStepExecutionsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(StepExecutionsInverseTable, StepExecutionFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, StepExecutionsTable, StepExecutionsColumn),
	)
}
func newAiInteractionsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(AiInteractionsInverseTable, AIInteractionLogFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, AiInteractionsTable, AiInteractionsColumn),
	)
}
