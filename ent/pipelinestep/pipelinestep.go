// Code generated by ent, DO NOT EDIT.

package pipelinestep

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the pipelinestep type in the database.
	Label = "pipeline_step"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldName holds the string denoting the name field in the database.
	FieldName = "name"
	// FieldDescription holds the string denoting the description field in the database.
	FieldDescription = "description"
	// FieldSortOrder holds the string denoting the sort_order field in the database.
	FieldSortOrder = "sort_order"
	// FieldPostBranching holds the string denoting the post_branching field in the database.
	FieldPostBranching = "post_branching"
	// FieldDocumentClassID holds the string denoting the document_class_id field in the database.
	FieldDocumentClassID = "document_class_id"
	// FieldEnabled holds the string denoting the enabled field in the database.
	FieldEnabled = "enabled"
	// FieldIsBranchingStep holds the string denoting the is_branching_step field in the database.
	FieldIsBranchingStep = "is_branching_step"
	// FieldModelName holds the string denoting the model_name field in the database.
	FieldModelName = "model_name"
	// FieldTemperature holds the string denoting the temperature field in the database.
	FieldTemperature = "temperature"
	// FieldMaxTokens holds the string denoting the max_tokens field in the database.
	FieldMaxTokens = "max_tokens"
	// FieldPromptTemplate holds the string denoting the prompt_template field in the database.
	FieldPromptTemplate = "prompt_template"
	// FieldSystemPrompt holds the string denoting the system_prompt field in the database.
	FieldSystemPrompt = "system_prompt"
	// FieldRequiredContextVariables holds the string denoting the required_context_variables field in the database.
	FieldRequiredContextVariables = "required_context_variables"
	// FieldStopOnValues holds the string denoting the stop_on_values field in the database.
	FieldStopOnValues = "stop_on_values"
	// FieldAllowedContinueValues holds the string denoting the allowed_continue_values field in the database.
	FieldAllowedContinueValues = "allowed_continue_values"
	// FieldTerminationReason holds the string denoting the termination_reason field in the database.
	FieldTerminationReason = "termination_reason"
	// FieldTerminationMessage holds the string denoting the termination_message field in the database.
	FieldTerminationMessage = "termination_message"
	// FieldRetryOnFailure holds the string denoting the retry_on_failure field in the database.
	FieldRetryOnFailure = "retry_on_failure"
	// FieldMaxRetries holds the string denoting the max_retries field in the database.
	FieldMaxRetries = "max_retries"
	// FieldUseOriginalText holds the string denoting the use_original_text field in the database.
	FieldUseOriginalText = "use_original_text"
	// FieldOutputFormat holds the string denoting the output_format field in the database.
	FieldOutputFormat = "output_format"
	// FieldVersion holds the string denoting the version field in the database.
	FieldVersion = "version"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeDocumentClass holds the string denoting the document_class edge name in mutations.
	EdgeDocumentClass = "document_class"
	// Table holds the table name of the pipelinestep in the database.
	Table = "pipeline_steps"
	// DocumentClassTable is the table that holds the document_class relation/edge.
	DocumentClassTable = "pipeline_steps"
	// DocumentClassInverseTable is the table name for the DocumentClass entity.
	// It exists in this package in order to avoid circular dependency with the "documentclass" package.
	DocumentClassInverseTable = "document_classes"
	// DocumentClassColumn is the table column denoting the document_class relation/edge.
	DocumentClassColumn = "document_class_id"
)

// Columns holds all SQL columns for pipelinestep fields.
var Columns = []string{
	FieldID,
	FieldName,
	FieldDescription,
	FieldSortOrder,
	FieldPostBranching,
	FieldDocumentClassID,
	FieldEnabled,
	FieldIsBranchingStep,
	FieldModelName,
	FieldTemperature,
	FieldMaxTokens,
	FieldPromptTemplate,
	FieldSystemPrompt,
	FieldRequiredContextVariables,
	FieldStopOnValues,
	FieldAllowedContinueValues,
	FieldTerminationReason,
	FieldTerminationMessage,
	FieldRetryOnFailure,
	FieldMaxRetries,
	FieldUseOriginalText,
	FieldOutputFormat,
	FieldVersion,
	FieldCreatedAt,
	FieldUpdatedAt,
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
	// SortOrderValidator is a validator for the "sort_order" field. It is called by the builders before save.
	SortOrderValidator func(int) error
	// DefaultPostBranching holds the default value on creation for the "post_branching" field.
	DefaultPostBranching bool
	// DefaultEnabled holds the default value on creation for the "enabled" field.
	DefaultEnabled bool
	// DefaultIsBranchingStep holds the default value on creation for the "is_branching_step" field.
	DefaultIsBranchingStep bool
	// DefaultTemperature holds the default value on creation for the "temperature" field.
	DefaultTemperature float64
	// TemperatureValidator is a validator for the "temperature" field. It is called by the builders before save.
	TemperatureValidator func(float64) error
	// MaxTokensValidator is a validator for the "max_tokens" field. It is called by the builders before save.
	MaxTokensValidator func(int) error
	// DefaultRetryOnFailure holds the default value on creation for the "retry_on_failure" field.
	DefaultRetryOnFailure bool
	// DefaultMaxRetries holds the default value on creation for the "max_retries" field.
	DefaultMaxRetries int
	// MaxRetriesValidator is a validator for the "max_retries" field. It is called by the builders before save.
	MaxRetriesValidator func(int) error
	// DefaultUseOriginalText holds the default value on creation for the "use_original_text" field.
	DefaultUseOriginalText bool
	// DefaultVersion holds the default value on creation for the "version" field.
	DefaultVersion int
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// OutputFormat defines the type for the "output_format" enum field.
type OutputFormat string

// OutputFormatText is the default value of the OutputFormat enum.
const DefaultOutputFormat = OutputFormatText

// OutputFormat values.
const (
	OutputFormatText     OutputFormat = "text"
	OutputFormatMarkdown OutputFormat = "markdown"
	OutputFormatJSON     OutputFormat = "json"
)

func (of OutputFormat) String() string {
	return string(of)
}

// OutputFormatValidator is a validator for the "output_format" field enum values. It is called by the builders before save.
func OutputFormatValidator(of OutputFormat) error {
	switch of {
	case OutputFormatText, OutputFormatMarkdown, OutputFormatJSON:
		return nil
	default:
		return fmt.Errorf("pipelinestep: invalid enum value for output_format field: %q", of)
	}
}

// OrderOption defines the ordering options for the PipelineStep queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByName orders the results by the name field.
func ByName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldName, opts...).ToFunc()
}

// ByDescription orders the results by the description field.
func ByDescription(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDescription, opts...).ToFunc()
}

// BySortOrder orders the results by the sort_order field.
func BySortOrder(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSortOrder, opts...).ToFunc()
}

// ByPostBranching orders the results by the post_branching field.
func ByPostBranching(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPostBranching, opts...).ToFunc()
}

// ByDocumentClassID orders the results by the document_class_id field.
func ByDocumentClassID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDocumentClassID, opts...).ToFunc()
}

// ByEnabled orders the results by the enabled field.
func ByEnabled(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEnabled, opts...).ToFunc()
}

// ByIsBranchingStep orders the results by the is_branching_step field.
func ByIsBranchingStep(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIsBranchingStep, opts...).ToFunc()
}

// ByModelName orders the results by the model_name field.
func ByModelName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldModelName, opts...).ToFunc()
}

// ByTemperature orders the results by the temperature field.
func ByTemperature(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTemperature, opts...).ToFunc()
}

// ByMaxTokens orders the results by the max_tokens field.
func ByMaxTokens(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMaxTokens, opts...).ToFunc()
}

// ByPromptTemplate orders the results by the prompt_template field.
func ByPromptTemplate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPromptTemplate, opts...).ToFunc()
}

// BySystemPrompt orders the results by the system_prompt field.
func BySystemPrompt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSystemPrompt, opts...).ToFunc()
}

// ByTerminationReason orders the results by the termination_reason field.
func ByTerminationReason(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTerminationReason, opts...).ToFunc()
}

// ByTerminationMessage orders the results by the termination_message field.
func ByTerminationMessage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTerminationMessage, opts...).ToFunc()
}

// ByRetryOnFailure orders the results by the retry_on_failure field.
func ByRetryOnFailure(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRetryOnFailure, opts...).ToFunc()
}

// ByMaxRetries orders the results by the max_retries field.
func ByMaxRetries(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMaxRetries, opts...).ToFunc()
}

// ByUseOriginalText orders the results by the use_original_text field.
func ByUseOriginalText(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUseOriginalText, opts...).ToFunc()
}

// ByOutputFormat orders the results by the output_format field.
func ByOutputFormat(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOutputFormat, opts...).ToFunc()
}

// ByVersion orders the results by the version field.
func ByVersion(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldVersion, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByDocumentClassField orders the results by document_class field.
func ByDocumentClassField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newDocumentClassStep(), sql.OrderByField(field, opts...))
	}
}
func newDocumentClassStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(DocumentClassInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, DocumentClassTable, DocumentClassColumn),
	)
}
