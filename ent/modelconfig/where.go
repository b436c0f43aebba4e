// Code generated by ent, DO NOT EDIT.

package modelconfig

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/klartext-health/befund/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.ModelConfig {
	return predicate.ModelConfig(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.ModelConfig {
	return predicate.ModelConfig(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.ModelConfig {
	return predicate.ModelConfig(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.ModelConfig {
	return predicate.ModelConfig(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.ModelConfig {
	return predicate.ModelConfig(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.ModelConfig {
	return predicate.ModelConfig(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.ModelConfig {
	return predicate.ModelConfig(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.ModelConfig {
	return predicate.ModelConfig(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.ModelConfig {
	return predicate.ModelConfig(sql.FieldLTE(FieldID, id))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.ModelConfig {
	return predicate.ModelConfig(sql.FieldEQ(FieldName, v))
}

// Provider applies equality check predicate on the "provider" field. It's identical to ProviderEQ.
func Provider(v string) predicate.ModelConfig {
	return predicate.ModelConfig(sql.FieldEQ(FieldProvider, v))
}

// InputPricePerM applies equality check predicate on the "input_price_per_m" field. It's identical to InputPricePerMEQ.
func InputPricePerM(v float64) predicate.ModelConfig {
	return predicate.ModelConfig(sql.FieldEQ(FieldInputPricePerM, v))
}

// OutputPricePerM applies equality check predicate on the "output_price_per_m" field. It's identical to OutputPricePerMEQ.
func OutputPricePerM(v float64) predicate.ModelConfig {
	return predicate.ModelConfig(sql.FieldEQ(FieldOutputPricePerM, v))
}

// MaxTokens applies equality check predicate on the "max_tokens" field. It's identical to MaxTokensEQ.
func MaxTokens(v int) predicate.ModelConfig {
	return predicate.ModelConfig(sql.FieldEQ(FieldMaxTokens, v))
}

// SupportsVision applies equality check predicate on the "supports_vision" field. It's identical to SupportsVisionEQ.
func SupportsVision(v bool) predicate.ModelConfig {
	return predicate.ModelConfig(sql.FieldEQ(FieldSupportsVision, v))
}

// SupportsStreaming applies equality check predicate on the "supports_streaming" field. It's identical to SupportsStreamingEQ.
func SupportsStreaming(v bool) predicate.ModelConfig {
	return predicate.ModelConfig(sql.FieldEQ(FieldSupportsStreaming, v))
}

// Active applies equality check predicate on the "active" field. It's identical to ActiveEQ.
func Active(v bool) predicate.ModelConfig {
	return predicate.ModelConfig(sql.FieldEQ(FieldActive, v))
}

// RequestTimeoutSecs applies equality check predicate on the "request_timeout_secs" field. It's identical to RequestTimeoutSecsEQ.
func RequestTimeoutSecs(v int) predicate.ModelConfig {
	return predicate.ModelConfig(sql.FieldEQ(FieldRequestTimeoutSecs, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.ModelConfig {
	return predicate.ModelConfig(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.ModelConfig {
	return predicate.ModelConfig(sql.FieldEQ(FieldUpdatedAt, v))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.ModelConfig {
	return predicate.ModelConfig(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.ModelConfig {
	return predicate.ModelConfig(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.ModelConfig {
	return predicate.ModelConfig(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.ModelConfig {
	return predicate.ModelConfig(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.ModelConfig {
	return predicate.ModelConfig(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.ModelConfig {
	return predicate.ModelConfig(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.ModelConfig {
	return predicate.ModelConfig(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.ModelConfig {
	return predicate.ModelConfig(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.ModelConfig {
	return predicate.ModelConfig(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.ModelConfig {
	return predicate.ModelConfig(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.ModelConfig {
	return predicate.ModelConfig(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.ModelConfig {
	return predicate.ModelConfig(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.ModelConfig {
	return predicate.ModelConfig(sql.FieldContainsFold(FieldName, v))
}

// ProviderEQ applies the EQ predicate on the "provider" field.
func ProviderEQ(v string) predicate.ModelConfig {
	return predicate.ModelConfig(sql.FieldEQ(FieldProvider, v))
}

// ProviderNEQ applies the NEQ predicate on the "provider" field.
func ProviderNEQ(v string) predicate.ModelConfig {
	return predicate.ModelConfig(sql.FieldNEQ(FieldProvider, v))
}

// ProviderIn applies the In predicate on the "provider" field.
func ProviderIn(vs ...string) predicate.ModelConfig {
	return predicate.ModelConfig(sql.FieldIn(FieldProvider, vs...))
}

// ProviderNotIn applies the NotIn predicate on the "provider" field.
func ProviderNotIn(vs ...string) predicate.ModelConfig {
	return predicate.ModelConfig(sql.FieldNotIn(FieldProvider, vs...))
}

// ProviderGT applies the GT predicate on the "provider" field.
func ProviderGT(v string) predicate.ModelConfig {
	return predicate.ModelConfig(sql.FieldGT(FieldProvider, v))
}

// ProviderGTE applies the GTE predicate on the "provider" field.
func ProviderGTE(v string) predicate.ModelConfig {
	return predicate.ModelConfig(sql.FieldGTE(FieldProvider, v))
}

// ProviderLT applies the LT predicate on the "provider" field.
func ProviderLT(v string) predicate.ModelConfig {
	return predicate.ModelConfig(sql.FieldLT(FieldProvider, v))
}

// ProviderLTE applies the LTE predicate on the "provider" field.
func ProviderLTE(v string) predicate.ModelConfig {
	return predicate.ModelConfig(sql.FieldLTE(FieldProvider, v))
}

// ProviderContains applies the Contains predicate on the "provider" field.
func ProviderContains(v string) predicate.ModelConfig {
	return predicate.ModelConfig(sql.FieldContains(FieldProvider, v))
}

// ProviderHasPrefix applies the HasPrefix predicate on the "provider" field.
func ProviderHasPrefix(v string) predicate.ModelConfig {
	return predicate.ModelConfig(sql.FieldHasPrefix(FieldProvider, v))
}

// ProviderHasSuffix applies the HasSuffix predicate on the "provider" field.
func ProviderHasSuffix(v string) predicate.ModelConfig {
	return predicate.ModelConfig(sql.FieldHasSuffix(FieldProvider, v))
}

// ProviderEqualFold applies the EqualFold predicate on the "provider" field.
func ProviderEqualFold(v string) predicate.ModelConfig {
	return predicate.ModelConfig(sql.FieldEqualFold(FieldProvider, v))
}

// ProviderContainsFold applies the ContainsFold predicate on the "provider" field.
func ProviderContainsFold(v string) predicate.ModelConfig {
	return predicate.ModelConfig(sql.FieldContainsFold(FieldProvider, v))
}

// InputPricePerMEQ applies the EQ predicate on the "input_price_per_m" field.
func InputPricePerMEQ(v float64) predicate.ModelConfig {
	return predicate.ModelConfig(sql.FieldEQ(FieldInputPricePerM, v))
}

// InputPricePerMNEQ applies the NEQ predicate on the "input_price_per_m" field.
func InputPricePerMNEQ(v float64) predicate.ModelConfig {
	return predicate.ModelConfig(sql.FieldNEQ(FieldInputPricePerM, v))
}

// InputPricePerMIn applies the In predicate on the "input_price_per_m" field.
func InputPricePerMIn(vs ...float64) predicate.ModelConfig {
	return predicate.ModelConfig(sql.FieldIn(FieldInputPricePerM, vs...))
}

// InputPricePerMNotIn applies the NotIn predicate on the "input_price_per_m" field.
func InputPricePerMNotIn(vs ...float64) predicate.ModelConfig {
	return predicate.ModelConfig(sql.FieldNotIn(FieldInputPricePerM, vs...))
}

// InputPricePerMGT applies the GT predicate on the "input_price_per_m" field.
func InputPricePerMGT(v float64) predicate.ModelConfig {
	return predicate.ModelConfig(sql.FieldGT(FieldInputPricePerM, v))
}

// InputPricePerMGTE applies the GTE predicate on the "input_price_per_m" field.
func InputPricePerMGTE(v float64) predicate.ModelConfig {
	return predicate.ModelConfig(sql.FieldGTE(FieldInputPricePerM, v))
}

// InputPricePerMLT applies the LT predicate on the "input_price_per_m" field.
func InputPricePerMLT(v float64) predicate.ModelConfig {
	return predicate.ModelConfig(sql.FieldLT(FieldInputPricePerM, v))
}

// InputPricePerMLTE applies the LTE predicate on the "input_price_per_m" field.
func InputPricePerMLTE(v float64) predicate.ModelConfig {
	return predicate.ModelConfig(sql.FieldLTE(FieldInputPricePerM, v))
}

// OutputPricePerMEQ applies the EQ predicate on the "output_price_per_m" field.
func OutputPricePerMEQ(v float64) predicate.ModelConfig {
	return predicate.ModelConfig(sql.FieldEQ(FieldOutputPricePerM, v))
}

// OutputPricePerMNEQ applies the NEQ predicate on the "output_price_per_m" field.
func OutputPricePerMNEQ(v float64) predicate.ModelConfig {
	return predicate.ModelConfig(sql.FieldNEQ(FieldOutputPricePerM, v))
}

// OutputPricePerMIn applies the In predicate on the "output_price_per_m" field.
func OutputPricePerMIn(vs ...float64) predicate.ModelConfig {
	return predicate.ModelConfig(sql.FieldIn(FieldOutputPricePerM, vs...))
}

// OutputPricePerMNotIn applies the NotIn predicate on the "output_price_per_m" field.
func OutputPricePerMNotIn(vs ...float64) predicate.ModelConfig {
	return predicate.ModelConfig(sql.FieldNotIn(FieldOutputPricePerM, vs...))
}

// OutputPricePerMGT applies the GT predicate on the "output_price_per_m" field.
func OutputPricePerMGT(v float64) predicate.ModelConfig {
	return predicate.ModelConfig(sql.FieldGT(FieldOutputPricePerM, v))
}

// OutputPricePerMGTE applies the GTE predicate on the "output_price_per_m" field.
func OutputPricePerMGTE(v float64) predicate.ModelConfig {
	return predicate.ModelConfig(sql.FieldGTE(FieldOutputPricePerM, v))
}

// OutputPricePerMLT applies the LT predicate on the "output_price_per_m" field.
func OutputPricePerMLT(v float64) predicate.ModelConfig {
	return predicate.ModelConfig(sql.FieldLT(FieldOutputPricePerM, v))
}

// OutputPricePerMLTE applies the LTE predicate on the "output_price_per_m" field.
func OutputPricePerMLTE(v float64) predicate.ModelConfig {
	return predicate.ModelConfig(sql.FieldLTE(FieldOutputPricePerM, v))
}

// MaxTokensEQ applies the EQ predicate on the "max_tokens" field.
func MaxTokensEQ(v int) predicate.ModelConfig {
	return predicate.ModelConfig(sql.FieldEQ(FieldMaxTokens, v))
}

// MaxTokensNEQ applies the NEQ predicate on the "max_tokens" field.
func MaxTokensNEQ(v int) predicate.ModelConfig {
	return predicate.ModelConfig(sql.FieldNEQ(FieldMaxTokens, v))
}

// MaxTokensIn applies the In predicate on the "max_tokens" field.
func MaxTokensIn(vs ...int) predicate.ModelConfig {
	return predicate.ModelConfig(sql.FieldIn(FieldMaxTokens, vs...))
}

// MaxTokensNotIn applies the NotIn predicate on the "max_tokens" field.
func MaxTokensNotIn(vs ...int) predicate.ModelConfig {
	return predicate.ModelConfig(sql.FieldNotIn(FieldMaxTokens, vs...))
}

// MaxTokensGT applies the GT predicate on the "max_tokens" field.
func MaxTokensGT(v int) predicate.ModelConfig {
	return predicate.ModelConfig(sql.FieldGT(FieldMaxTokens, v))
}

// MaxTokensGTE applies the GTE predicate on the "max_tokens" field.
func MaxTokensGTE(v int) predicate.ModelConfig {
	return predicate.ModelConfig(sql.FieldGTE(FieldMaxTokens, v))
}

// MaxTokensLT applies the LT predicate on the "max_tokens" field.
func MaxTokensLT(v int) predicate.ModelConfig {
	return predicate.ModelConfig(sql.FieldLT(FieldMaxTokens, v))
}

// MaxTokensLTE applies the LTE predicate on the "max_tokens" field.
func MaxTokensLTE(v int) predicate.ModelConfig {
	return predicate.ModelConfig(sql.FieldLTE(FieldMaxTokens, v))
}

// SupportsVisionEQ applies the EQ predicate on the "supports_vision" field.
func SupportsVisionEQ(v bool) predicate.ModelConfig {
	return predicate.ModelConfig(sql.FieldEQ(FieldSupportsVision, v))
}

// SupportsVisionNEQ applies the NEQ predicate on the "supports_vision" field.
func SupportsVisionNEQ(v bool) predicate.ModelConfig {
	return predicate.ModelConfig(sql.FieldNEQ(FieldSupportsVision, v))
}

// SupportsStreamingEQ applies the EQ predicate on the "supports_streaming" field.
func SupportsStreamingEQ(v bool) predicate.ModelConfig {
	return predicate.ModelConfig(sql.FieldEQ(FieldSupportsStreaming, v))
}

// SupportsStreamingNEQ applies the NEQ predicate on the "supports_streaming" field.
func SupportsStreamingNEQ(v bool) predicate.ModelConfig {
	return predicate.ModelConfig(sql.FieldNEQ(FieldSupportsStreaming, v))
}

// ActiveEQ applies the EQ predicate on the "active" field.
func ActiveEQ(v bool) predicate.ModelConfig {
	return predicate.ModelConfig(sql.FieldEQ(FieldActive, v))
}

// ActiveNEQ applies the NEQ predicate on the "active" field.
func ActiveNEQ(v bool) predicate.ModelConfig {
	return predicate.ModelConfig(sql.FieldNEQ(FieldActive, v))
}

// RequestTimeoutSecsEQ applies the EQ predicate on the "request_timeout_secs" field.
func RequestTimeoutSecsEQ(v int) predicate.ModelConfig {
	return predicate.ModelConfig(sql.FieldEQ(FieldRequestTimeoutSecs, v))
}

// RequestTimeoutSecsNEQ applies the NEQ predicate on the "request_timeout_secs" field.
func RequestTimeoutSecsNEQ(v int) predicate.ModelConfig {
	return predicate.ModelConfig(sql.FieldNEQ(FieldRequestTimeoutSecs, v))
}

// RequestTimeoutSecsIn applies the In predicate on the "request_timeout_secs" field.
func RequestTimeoutSecsIn(vs ...int) predicate.ModelConfig {
	return predicate.ModelConfig(sql.FieldIn(FieldRequestTimeoutSecs, vs...))
}

// RequestTimeoutSecsNotIn applies the NotIn predicate on the "request_timeout_secs" field.
func RequestTimeoutSecsNotIn(vs ...int) predicate.ModelConfig {
	return predicate.ModelConfig(sql.FieldNotIn(FieldRequestTimeoutSecs, vs...))
}

// RequestTimeoutSecsGT applies the GT predicate on the "request_timeout_secs" field.
func RequestTimeoutSecsGT(v int) predicate.ModelConfig {
	return predicate.ModelConfig(sql.FieldGT(FieldRequestTimeoutSecs, v))
}

// RequestTimeoutSecsGTE applies the GTE predicate on the "request_timeout_secs" field.
func RequestTimeoutSecsGTE(v int) predicate.ModelConfig {
	return predicate.ModelConfig(sql.FieldGTE(FieldRequestTimeoutSecs, v))
}

// RequestTimeoutSecsLT applies the LT predicate on the "request_timeout_secs" field.
func RequestTimeoutSecsLT(v int) predicate.ModelConfig {
	return predicate.ModelConfig(sql.FieldLT(FieldRequestTimeoutSecs, v))
}

// RequestTimeoutSecsLTE applies the LTE predicate on the "request_timeout_secs" field.
func RequestTimeoutSecsLTE(v int) predicate.ModelConfig {
	return predicate.ModelConfig(sql.FieldLTE(FieldRequestTimeoutSecs, v))
}

// RequestTimeoutSecsIsNil applies the IsNil predicate on the "request_timeout_secs" field.
func RequestTimeoutSecsIsNil() predicate.ModelConfig {
	return predicate.ModelConfig(sql.FieldIsNull(FieldRequestTimeoutSecs))
}

// RequestTimeoutSecsNotNil applies the NotNil predicate on the "request_timeout_secs" field.
func RequestTimeoutSecsNotNil() predicate.ModelConfig {
	return predicate.ModelConfig(sql.FieldNotNull(FieldRequestTimeoutSecs))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.ModelConfig {
	return predicate.ModelConfig(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.ModelConfig {
	return predicate.ModelConfig(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.ModelConfig {
	return predicate.ModelConfig(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.ModelConfig {
	return predicate.ModelConfig(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.ModelConfig {
	return predicate.ModelConfig(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.ModelConfig {
	return predicate.ModelConfig(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.ModelConfig {
	return predicate.ModelConfig(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.ModelConfig {
	return predicate.ModelConfig(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.ModelConfig {
	return predicate.ModelConfig(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.ModelConfig {
	return predicate.ModelConfig(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.ModelConfig {
	return predicate.ModelConfig(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.ModelConfig {
	return predicate.ModelConfig(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.ModelConfig {
	return predicate.ModelConfig(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.ModelConfig {
	return predicate.ModelConfig(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.ModelConfig {
	return predicate.ModelConfig(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.ModelConfig {
	return predicate.ModelConfig(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ModelConfig) predicate.ModelConfig {
	return predicate.ModelConfig(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ModelConfig) predicate.ModelConfig {
	return predicate.ModelConfig(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ModelConfig) predicate.ModelConfig {
	return predicate.ModelConfig(sql.NotPredicates(p))
}
