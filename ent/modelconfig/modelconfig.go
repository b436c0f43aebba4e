// Code generated by ent, DO NOT EDIT.

package modelconfig

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the modelconfig type in the database.
	Label = "model_config"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldName holds the string denoting the name field in the database.
	FieldName = "name"
	// FieldProvider holds the string denoting the provider field in the database.
	FieldProvider = "provider"
	// FieldInputPricePerM holds the string denoting the input_price_per_m field in the database.
	FieldInputPricePerM = "input_price_per_m"
	// FieldOutputPricePerM holds the string denoting the output_price_per_m field in the database.
	FieldOutputPricePerM = "output_price_per_m"
	// FieldMaxTokens holds the string denoting the max_tokens field in the database.
	FieldMaxTokens = "max_tokens"
	// FieldSupportsVision holds the string denoting the supports_vision field in the database.
	FieldSupportsVision = "supports_vision"
	// FieldSupportsStreaming holds the string denoting the supports_streaming field in the database.
	FieldSupportsStreaming = "supports_streaming"
	// FieldActive holds the string denoting the active field in the database.
	FieldActive = "active"
	// FieldRequestTimeoutSecs holds the string denoting the request_timeout_secs field in the database.
	FieldRequestTimeoutSecs = "request_timeout_secs"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// Table holds the table name of the modelconfig in the database.
	Table = "model_configs"
)

// Columns holds all SQL columns for modelconfig fields.
var Columns = []string{
	FieldID,
	FieldName,
	FieldProvider,
	FieldInputPricePerM,
	FieldOutputPricePerM,
	FieldMaxTokens,
	FieldSupportsVision,
	FieldSupportsStreaming,
	FieldActive,
	FieldRequestTimeoutSecs,
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
	// DefaultProvider holds the default value on creation for the "provider" field.
	DefaultProvider string
	// InputPricePerMValidator is a validator for the "input_price_per_m" field. It is called by the builders before save.
	InputPricePerMValidator func(float64) error
	// OutputPricePerMValidator is a validator for the "output_price_per_m" field. It is called by the builders before save.
	OutputPricePerMValidator func(float64) error
	// MaxTokensValidator is a validator for the "max_tokens" field. It is called by the builders before save.
	MaxTokensValidator func(int) error
	// DefaultSupportsVision holds the default value on creation for the "supports_vision" field.
	DefaultSupportsVision bool
	// DefaultSupportsStreaming holds the default value on creation for the "supports_streaming" field.
	DefaultSupportsStreaming bool
	// DefaultActive holds the default value on creation for the "active" field.
	DefaultActive bool
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// OrderOption defines the ordering options for the ModelConfig queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByName orders the results by the name field.
func ByName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldName, opts...).ToFunc()
}

// ByProvider orders the results by the provider field.
func ByProvider(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProvider, opts...).ToFunc()
}

// ByInputPricePerM orders the results by the input_price_per_m field.
func ByInputPricePerM(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldInputPricePerM, opts...).ToFunc()
}

// ByOutputPricePerM orders the results by the output_price_per_m field.
func ByOutputPricePerM(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOutputPricePerM, opts...).ToFunc()
}

// ByMaxTokens orders the results by the max_tokens field.
func ByMaxTokens(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMaxTokens, opts...).ToFunc()
}

// BySupportsVision orders the results by the supports_vision field.
func BySupportsVision(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSupportsVision, opts...).ToFunc()
}

// BySupportsStreaming orders the results by the supports_streaming field.
func BySupportsStreaming(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSupportsStreaming, opts...).ToFunc()
}

// ByActive orders the results by the active field.
func ByActive(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldActive, opts...).ToFunc()
}

// ByRequestTimeoutSecs orders the results by the request_timeout_secs field.
func ByRequestTimeoutSecs(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRequestTimeoutSecs, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}
