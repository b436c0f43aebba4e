// Code generated by ent, DO NOT EDIT.

package aiinteractionlog

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/klartext-health/befund/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.AIInteractionLog {
	return predicate.AIInteractionLog(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.AIInteractionLog {
	return predicate.AIInteractionLog(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.AIInteractionLog {
	return predicate.AIInteractionLog(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.AIInteractionLog {
	return predicate.AIInteractionLog(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.AIInteractionLog {
	return predicate.AIInteractionLog(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.AIInteractionLog {
	return predicate.AIInteractionLog(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.AIInteractionLog {
	return predicate.AIInteractionLog(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.AIInteractionLog {
	return predicate.AIInteractionLog(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.AIInteractionLog {
	return predicate.AIInteractionLog(sql.FieldLTE(FieldID, id))
}

// JobID applies equality check predicate on the "job_id" field. It's identical to JobIDEQ.
func JobID(v string) predicate.AIInteractionLog {
	return predicate.AIInteractionLog(sql.FieldEQ(FieldJobID, v))
}

// StepExecutionID applies equality check predicate on the "step_execution_id" field. It's identical to StepExecutionIDEQ.
func StepExecutionID(v string) predicate.AIInteractionLog {
	return predicate.AIInteractionLog(sql.FieldEQ(FieldStepExecutionID, v))
}

// ModelName applies equality check predicate on the "model_name" field. It's identical to ModelNameEQ.
func ModelName(v string) predicate.AIInteractionLog {
	return predicate.AIInteractionLog(sql.FieldEQ(FieldModelName, v))
}

// InputTokens applies equality check predicate on the "input_tokens" field. It's identical to InputTokensEQ.
func InputTokens(v int) predicate.AIInteractionLog {
	return predicate.AIInteractionLog(sql.FieldEQ(FieldInputTokens, v))
}

// OutputTokens applies equality check predicate on the "output_tokens" field. It's identical to OutputTokensEQ.
func OutputTokens(v int) predicate.AIInteractionLog {
	return predicate.AIInteractionLog(sql.FieldEQ(FieldOutputTokens, v))
}

// TotalTokens applies equality check predicate on the "total_tokens" field. It's identical to TotalTokensEQ.
func TotalTokens(v int) predicate.AIInteractionLog {
	return predicate.AIInteractionLog(sql.FieldEQ(FieldTotalTokens, v))
}

// Cost applies equality check predicate on the "cost" field. It's identical to CostEQ.
func Cost(v float64) predicate.AIInteractionLog {
	return predicate.AIInteractionLog(sql.FieldEQ(FieldCost, v))
}

// LatencyMs applies equality check predicate on the "latency_ms" field. It's identical to LatencyMsEQ.
func LatencyMs(v int64) predicate.AIInteractionLog {
	return predicate.AIInteractionLog(sql.FieldEQ(FieldLatencyMs, v))
}

// Success applies equality check predicate on the "success" field. It's identical to SuccessEQ.
func Success(v bool) predicate.AIInteractionLog {
	return predicate.AIInteractionLog(sql.FieldEQ(FieldSuccess, v))
}

// ErrorCode applies equality check predicate on the "error_code" field. It's identical to ErrorCodeEQ.
func ErrorCode(v string) predicate.AIInteractionLog {
	return predicate.AIInteractionLog(sql.FieldEQ(FieldErrorCode, v))
}

// EstimatedTokens applies equality check predicate on the "estimated_tokens" field. It's identical to EstimatedTokensEQ.
func EstimatedTokens(v bool) predicate.AIInteractionLog {
	return predicate.AIInteractionLog(sql.FieldEQ(FieldEstimatedTokens, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.AIInteractionLog {
	return predicate.AIInteractionLog(sql.FieldEQ(FieldCreatedAt, v))
}

// JobIDEQ applies the EQ predicate on the "job_id" field.
func JobIDEQ(v string) predicate.AIInteractionLog {
	return predicate.AIInteractionLog(sql.FieldEQ(FieldJobID, v))
}

// JobIDNEQ applies the NEQ predicate on the "job_id" field.
func JobIDNEQ(v string) predicate.AIInteractionLog {
	return predicate.AIInteractionLog(sql.FieldNEQ(FieldJobID, v))
}

// JobIDIn applies the In predicate on the "job_id" field.
func JobIDIn(vs ...string) predicate.AIInteractionLog {
	return predicate.AIInteractionLog(sql.FieldIn(FieldJobID, vs...))
}

// JobIDNotIn applies the NotIn predicate on the "job_id" field.
func JobIDNotIn(vs ...string) predicate.AIInteractionLog {
	return predicate.AIInteractionLog(sql.FieldNotIn(FieldJobID, vs...))
}

// JobIDGT applies the GT predicate on the "job_id" field.
func JobIDGT(v string) predicate.AIInteractionLog {
	return predicate.AIInteractionLog(sql.FieldGT(FieldJobID, v))
}

// JobIDGTE applies the GTE predicate on the "job_id" field.
func JobIDGTE(v string) predicate.AIInteractionLog {
	return predicate.AIInteractionLog(sql.FieldGTE(FieldJobID, v))
}

// JobIDLT applies the LT predicate on the "job_id" field.
func JobIDLT(v string) predicate.AIInteractionLog {
	return predicate.AIInteractionLog(sql.FieldLT(FieldJobID, v))
}

// JobIDLTE applies the LTE predicate on the "job_id" field.
func JobIDLTE(v string) predicate.AIInteractionLog {
	return predicate.AIInteractionLog(sql.FieldLTE(FieldJobID, v))
}

// JobIDContains applies the Contains predicate on the "job_id" field.
func JobIDContains(v string) predicate.AIInteractionLog {
	return predicate.AIInteractionLog(sql.FieldContains(FieldJobID, v))
}

// JobIDHasPrefix applies the HasPrefix predicate on the "job_id" field.
func JobIDHasPrefix(v string) predicate.AIInteractionLog {
	return predicate.AIInteractionLog(sql.FieldHasPrefix(FieldJobID, v))
}

// JobIDHasSuffix applies the HasSuffix predicate on the "job_id" field.
func JobIDHasSuffix(v string) predicate.AIInteractionLog {
	return predicate.AIInteractionLog(sql.FieldHasSuffix(FieldJobID, v))
}

// JobIDEqualFold applies the EqualFold predicate on the "job_id" field.
func JobIDEqualFold(v string) predicate.AIInteractionLog {
	return predicate.AIInteractionLog(sql.FieldEqualFold(FieldJobID, v))
}

// JobIDContainsFold applies the ContainsFold predicate on the "job_id" field.
func JobIDContainsFold(v string) predicate.AIInteractionLog {
	return predicate.AIInteractionLog(sql.FieldContainsFold(FieldJobID, v))
}

// StepExecutionIDEQ applies the EQ predicate on the "step_execution_id" field.
func StepExecutionIDEQ(v string) predicate.AIInteractionLog {
	return predicate.AIInteractionLog(sql.FieldEQ(FieldStepExecutionID, v))
}

// StepExecutionIDNEQ applies the NEQ predicate on the "step_execution_id" field.
func StepExecutionIDNEQ(v string) predicate.AIInteractionLog {
	return predicate.AIInteractionLog(sql.FieldNEQ(FieldStepExecutionID, v))
}

// StepExecutionIDIn applies the In predicate on the "step_execution_id" field.
func StepExecutionIDIn(vs ...string) predicate.AIInteractionLog {
	return predicate.AIInteractionLog(sql.FieldIn(FieldStepExecutionID, vs...))
}

// StepExecutionIDNotIn applies the NotIn predicate on the "step_execution_id" field.
func StepExecutionIDNotIn(vs ...string) predicate.AIInteractionLog {
	return predicate.AIInteractionLog(sql.FieldNotIn(FieldStepExecutionID, vs...))
}

// StepExecutionIDGT applies the GT predicate on the "step_execution_id" field.
func StepExecutionIDGT(v string) predicate.AIInteractionLog {
	return predicate.AIInteractionLog(sql.FieldGT(FieldStepExecutionID, v))
}

// StepExecutionIDGTE applies the GTE predicate on the "step_execution_id" field.
func StepExecutionIDGTE(v string) predicate.AIInteractionLog {
	return predicate.AIInteractionLog(sql.FieldGTE(FieldStepExecutionID, v))
}

// StepExecutionIDLT applies the LT predicate on the "step_execution_id" field.
func StepExecutionIDLT(v string) predicate.AIInteractionLog {
	return predicate.AIInteractionLog(sql.FieldLT(FieldStepExecutionID, v))
}

// StepExecutionIDLTE applies the LTE predicate on the "step_execution_id" field.
func StepExecutionIDLTE(v string) predicate.AIInteractionLog {
	return predicate.AIInteractionLog(sql.FieldLTE(FieldStepExecutionID, v))
}

// StepExecutionIDContains applies the Contains predicate on the "step_execution_id" field.
func StepExecutionIDContains(v string) predicate.AIInteractionLog {
	return predicate.AIInteractionLog(sql.FieldContains(FieldStepExecutionID, v))
}

// StepExecutionIDHasPrefix applies the HasPrefix predicate on the "step_execution_id" field.
func StepExecutionIDHasPrefix(v string) predicate.AIInteractionLog {
	return predicate.AIInteractionLog(sql.FieldHasPrefix(FieldStepExecutionID, v))
}

// StepExecutionIDHasSuffix applies the HasSuffix predicate on the "step_execution_id" field.
func StepExecutionIDHasSuffix(v string) predicate.AIInteractionLog {
	return predicate.AIInteractionLog(sql.FieldHasSuffix(FieldStepExecutionID, v))
}

// StepExecutionIDIsNil applies the IsNil predicate on the "step_execution_id" field.
func StepExecutionIDIsNil() predicate.AIInteractionLog {
	return predicate.AIInteractionLog(sql.FieldIsNull(FieldStepExecutionID))
}

// StepExecutionIDNotNil applies the NotNil predicate on the "step_execution_id" field.
func StepExecutionIDNotNil() predicate.AIInteractionLog {
	return predicate.AIInteractionLog(sql.FieldNotNull(FieldStepExecutionID))
}

// StepExecutionIDEqualFold applies the EqualFold predicate on the "step_execution_id" field.
func StepExecutionIDEqualFold(v string) predicate.AIInteractionLog {
	return predicate.AIInteractionLog(sql.FieldEqualFold(FieldStepExecutionID, v))
}

// StepExecutionIDContainsFold applies the ContainsFold predicate on the "step_execution_id" field.
func StepExecutionIDContainsFold(v string) predicate.AIInteractionLog {
	return predicate.AIInteractionLog(sql.FieldContainsFold(FieldStepExecutionID, v))
}

// ModelNameEQ applies the EQ predicate on the "model_name" field.
func ModelNameEQ(v string) predicate.AIInteractionLog {
	return predicate.AIInteractionLog(sql.FieldEQ(FieldModelName, v))
}

// ModelNameNEQ applies the NEQ predicate on the "model_name" field.
func ModelNameNEQ(v string) predicate.AIInteractionLog {
	return predicate.AIInteractionLog(sql.FieldNEQ(FieldModelName, v))
}

// ModelNameIn applies the In predicate on the "model_name" field.
func ModelNameIn(vs ...string) predicate.AIInteractionLog {
	return predicate.AIInteractionLog(sql.FieldIn(FieldModelName, vs...))
}

// ModelNameNotIn applies the NotIn predicate on the "model_name" field.
func ModelNameNotIn(vs ...string) predicate.AIInteractionLog {
	return predicate.AIInteractionLog(sql.FieldNotIn(FieldModelName, vs...))
}

// ModelNameGT applies the GT predicate on the "model_name" field.
func ModelNameGT(v string) predicate.AIInteractionLog {
	return predicate.AIInteractionLog(sql.FieldGT(FieldModelName, v))
}

// ModelNameGTE applies the GTE predicate on the "model_name" field.
func ModelNameGTE(v string) predicate.AIInteractionLog {
	return predicate.AIInteractionLog(sql.FieldGTE(FieldModelName, v))
}

// ModelNameLT applies the LT predicate on the "model_name" field.
func ModelNameLT(v string) predicate.AIInteractionLog {
	return predicate.AIInteractionLog(sql.FieldLT(FieldModelName, v))
}

// ModelNameLTE applies the LTE predicate on the "model_name" field.
func ModelNameLTE(v string) predicate.AIInteractionLog {
	return predicate.AIInteractionLog(sql.FieldLTE(FieldModelName, v))
}

// ModelNameContains applies the Contains predicate on the "model_name" field.
func ModelNameContains(v string) predicate.AIInteractionLog {
	return predicate.AIInteractionLog(sql.FieldContains(FieldModelName, v))
}

// ModelNameHasPrefix applies the HasPrefix predicate on the "model_name" field.
func ModelNameHasPrefix(v string) predicate.AIInteractionLog {
	return predicate.AIInteractionLog(sql.FieldHasPrefix(FieldModelName, v))
}

// ModelNameHasSuffix applies the HasSuffix predicate on the "model_name" field.
func ModelNameHasSuffix(v string) predicate.AIInteractionLog {
	return predicate.AIInteractionLog(sql.FieldHasSuffix(FieldModelName, v))
}

// ModelNameEqualFold applies the EqualFold predicate on the "model_name" field.
func ModelNameEqualFold(v string) predicate.AIInteractionLog {
	return predicate.AIInteractionLog(sql.FieldEqualFold(FieldModelName, v))
}

// ModelNameContainsFold applies the ContainsFold predicate on the "model_name" field.
func ModelNameContainsFold(v string) predicate.AIInteractionLog {
	return predicate.AIInteractionLog(sql.FieldContainsFold(FieldModelName, v))
}

// InputTokensEQ applies the EQ predicate on the "input_tokens" field.
func InputTokensEQ(v int) predicate.AIInteractionLog {
	return predicate.AIInteractionLog(sql.FieldEQ(FieldInputTokens, v))
}

// InputTokensNEQ applies the NEQ predicate on the "input_tokens" field.
func InputTokensNEQ(v int) predicate.AIInteractionLog {
	return predicate.AIInteractionLog(sql.FieldNEQ(FieldInputTokens, v))
}

// InputTokensIn applies the In predicate on the "input_tokens" field.
func InputTokensIn(vs ...int) predicate.AIInteractionLog {
	return predicate.AIInteractionLog(sql.FieldIn(FieldInputTokens, vs...))
}

// InputTokensNotIn applies the NotIn predicate on the "input_tokens" field.
func InputTokensNotIn(vs ...int) predicate.AIInteractionLog {
	return predicate.AIInteractionLog(sql.FieldNotIn(FieldInputTokens, vs...))
}

// InputTokensGT applies the GT predicate on the "input_tokens" field.
func InputTokensGT(v int) predicate.AIInteractionLog {
	return predicate.AIInteractionLog(sql.FieldGT(FieldInputTokens, v))
}

// InputTokensGTE applies the GTE predicate on the "input_tokens" field.
func InputTokensGTE(v int) predicate.AIInteractionLog {
	return predicate.AIInteractionLog(sql.FieldGTE(FieldInputTokens, v))
}

// InputTokensLT applies the LT predicate on the "input_tokens" field.
func InputTokensLT(v int) predicate.AIInteractionLog {
	return predicate.AIInteractionLog(sql.FieldLT(FieldInputTokens, v))
}

// InputTokensLTE applies the LTE predicate on the "input_tokens" field.
func InputTokensLTE(v int) predicate.AIInteractionLog {
	return predicate.AIInteractionLog(sql.FieldLTE(FieldInputTokens, v))
}

// OutputTokensEQ applies the EQ predicate on the "output_tokens" field.
func OutputTokensEQ(v int) predicate.AIInteractionLog {
	return predicate.AIInteractionLog(sql.FieldEQ(FieldOutputTokens, v))
}

// OutputTokensNEQ applies the NEQ predicate on the "output_tokens" field.
func OutputTokensNEQ(v int) predicate.AIInteractionLog {
	return predicate.AIInteractionLog(sql.FieldNEQ(FieldOutputTokens, v))
}

// OutputTokensIn applies the In predicate on the "output_tokens" field.
func OutputTokensIn(vs ...int) predicate.AIInteractionLog {
	return predicate.AIInteractionLog(sql.FieldIn(FieldOutputTokens, vs...))
}

// OutputTokensNotIn applies the NotIn predicate on the "output_tokens" field.
func OutputTokensNotIn(vs ...int) predicate.AIInteractionLog {
	return predicate.AIInteractionLog(sql.FieldNotIn(FieldOutputTokens, vs...))
}

// OutputTokensGT applies the GT predicate on the "output_tokens" field.
func OutputTokensGT(v int) predicate.AIInteractionLog {
	return predicate.AIInteractionLog(sql.FieldGT(FieldOutputTokens, v))
}

// OutputTokensGTE applies the GTE predicate on the "output_tokens" field.
func OutputTokensGTE(v int) predicate.AIInteractionLog {
	return predicate.AIInteractionLog(sql.FieldGTE(FieldOutputTokens, v))
}

// OutputTokensLT applies the LT predicate on the "output_tokens" field.
func OutputTokensLT(v int) predicate.AIInteractionLog {
	return predicate.AIInteractionLog(sql.FieldLT(FieldOutputTokens, v))
}

// OutputTokensLTE applies the LTE predicate on the "output_tokens" field.
func OutputTokensLTE(v int) predicate.AIInteractionLog {
	return predicate.AIInteractionLog(sql.FieldLTE(FieldOutputTokens, v))
}

// TotalTokensEQ applies the EQ predicate on the "total_tokens" field.
func TotalTokensEQ(v int) predicate.AIInteractionLog {
	return predicate.AIInteractionLog(sql.FieldEQ(FieldTotalTokens, v))
}

// TotalTokensNEQ applies the NEQ predicate on the "total_tokens" field.
func TotalTokensNEQ(v int) predicate.AIInteractionLog {
	return predicate.AIInteractionLog(sql.FieldNEQ(FieldTotalTokens, v))
}

// TotalTokensIn applies the In predicate on the "total_tokens" field.
func TotalTokensIn(vs ...int) predicate.AIInteractionLog {
	return predicate.AIInteractionLog(sql.FieldIn(FieldTotalTokens, vs...))
}

// TotalTokensNotIn applies the NotIn predicate on the "total_tokens" field.
func TotalTokensNotIn(vs ...int) predicate.AIInteractionLog {
	return predicate.AIInteractionLog(sql.FieldNotIn(FieldTotalTokens, vs...))
}

// TotalTokensGT applies the GT predicate on the "total_tokens" field.
func TotalTokensGT(v int) predicate.AIInteractionLog {
	return predicate.AIInteractionLog(sql.FieldGT(FieldTotalTokens, v))
}

// TotalTokensGTE applies the GTE predicate on the "total_tokens" field.
func TotalTokensGTE(v int) predicate.AIInteractionLog {
	return predicate.AIInteractionLog(sql.FieldGTE(FieldTotalTokens, v))
}

// TotalTokensLT applies the LT predicate on the "total_tokens" field.
func TotalTokensLT(v int) predicate.AIInteractionLog {
	return predicate.AIInteractionLog(sql.FieldLT(FieldTotalTokens, v))
}

// TotalTokensLTE applies the LTE predicate on the "total_tokens" field.
func TotalTokensLTE(v int) predicate.AIInteractionLog {
	return predicate.AIInteractionLog(sql.FieldLTE(FieldTotalTokens, v))
}

// CostEQ applies the EQ predicate on the "cost" field.
func CostEQ(v float64) predicate.AIInteractionLog {
	return predicate.AIInteractionLog(sql.FieldEQ(FieldCost, v))
}

// CostNEQ applies the NEQ predicate on the "cost" field.
func CostNEQ(v float64) predicate.AIInteractionLog {
	return predicate.AIInteractionLog(sql.FieldNEQ(FieldCost, v))
}

// CostIn applies the In predicate on the "cost" field.
func CostIn(vs ...float64) predicate.AIInteractionLog {
	return predicate.AIInteractionLog(sql.FieldIn(FieldCost, vs...))
}

// CostNotIn applies the NotIn predicate on the "cost" field.
func CostNotIn(vs ...float64) predicate.AIInteractionLog {
	return predicate.AIInteractionLog(sql.FieldNotIn(FieldCost, vs...))
}

// CostGT applies the GT predicate on the "cost" field.
func CostGT(v float64) predicate.AIInteractionLog {
	return predicate.AIInteractionLog(sql.FieldGT(FieldCost, v))
}

// CostGTE applies the GTE predicate on the "cost" field.
func CostGTE(v float64) predicate.AIInteractionLog {
	return predicate.AIInteractionLog(sql.FieldGTE(FieldCost, v))
}

// CostLT applies the LT predicate on the "cost" field.
func CostLT(v float64) predicate.AIInteractionLog {
	return predicate.AIInteractionLog(sql.FieldLT(FieldCost, v))
}

// CostLTE applies the LTE predicate on the "cost" field.
func CostLTE(v float64) predicate.AIInteractionLog {
	return predicate.AIInteractionLog(sql.FieldLTE(FieldCost, v))
}

// LatencyMsEQ applies the EQ predicate on the "latency_ms" field.
func LatencyMsEQ(v int64) predicate.AIInteractionLog {
	return predicate.AIInteractionLog(sql.FieldEQ(FieldLatencyMs, v))
}

// LatencyMsNEQ applies the NEQ predicate on the "latency_ms" field.
func LatencyMsNEQ(v int64) predicate.AIInteractionLog {
	return predicate.AIInteractionLog(sql.FieldNEQ(FieldLatencyMs, v))
}

// LatencyMsIn applies the In predicate on the "latency_ms" field.
func LatencyMsIn(vs ...int64) predicate.AIInteractionLog {
	return predicate.AIInteractionLog(sql.FieldIn(FieldLatencyMs, vs...))
}

// LatencyMsNotIn applies the NotIn predicate on the "latency_ms" field.
func LatencyMsNotIn(vs ...int64) predicate.AIInteractionLog {
	return predicate.AIInteractionLog(sql.FieldNotIn(FieldLatencyMs, vs...))
}

// LatencyMsGT applies the GT predicate on the "latency_ms" field.
func LatencyMsGT(v int64) predicate.AIInteractionLog {
	return predicate.AIInteractionLog(sql.FieldGT(FieldLatencyMs, v))
}

// LatencyMsGTE applies the GTE predicate on the "latency_ms" field.
func LatencyMsGTE(v int64) predicate.AIInteractionLog {
	return predicate.AIInteractionLog(sql.FieldGTE(FieldLatencyMs, v))
}

// LatencyMsLT applies the LT predicate on the "latency_ms" field.
func LatencyMsLT(v int64) predicate.AIInteractionLog {
	return predicate.AIInteractionLog(sql.FieldLT(FieldLatencyMs, v))
}

// LatencyMsLTE applies the LTE predicate on the "latency_ms" field.
func LatencyMsLTE(v int64) predicate.AIInteractionLog {
	return predicate.AIInteractionLog(sql.FieldLTE(FieldLatencyMs, v))
}

// SuccessEQ applies the EQ predicate on the "success" field.
func SuccessEQ(v bool) predicate.AIInteractionLog {
	return predicate.AIInteractionLog(sql.FieldEQ(FieldSuccess, v))
}

// SuccessNEQ applies the NEQ predicate on the "success" field.
func SuccessNEQ(v bool) predicate.AIInteractionLog {
	return predicate.AIInteractionLog(sql.FieldNEQ(FieldSuccess, v))
}

// ErrorCodeEQ applies the EQ predicate on the "error_code" field.
func ErrorCodeEQ(v string) predicate.AIInteractionLog {
	return predicate.AIInteractionLog(sql.FieldEQ(FieldErrorCode, v))
}

// ErrorCodeNEQ applies the NEQ predicate on the "error_code" field.
func ErrorCodeNEQ(v string) predicate.AIInteractionLog {
	return predicate.AIInteractionLog(sql.FieldNEQ(FieldErrorCode, v))
}

// ErrorCodeIn applies the In predicate on the "error_code" field.
func ErrorCodeIn(vs ...string) predicate.AIInteractionLog {
	return predicate.AIInteractionLog(sql.FieldIn(FieldErrorCode, vs...))
}

// ErrorCodeNotIn applies the NotIn predicate on the "error_code" field.
func ErrorCodeNotIn(vs ...string) predicate.AIInteractionLog {
	return predicate.AIInteractionLog(sql.FieldNotIn(FieldErrorCode, vs...))
}

// ErrorCodeGT applies the GT predicate on the "error_code" field.
func ErrorCodeGT(v string) predicate.AIInteractionLog {
	return predicate.AIInteractionLog(sql.FieldGT(FieldErrorCode, v))
}

// ErrorCodeGTE applies the GTE predicate on the "error_code" field.
func ErrorCodeGTE(v string) predicate.AIInteractionLog {
	return predicate.AIInteractionLog(sql.FieldGTE(FieldErrorCode, v))
}

// ErrorCodeLT applies the LT predicate on the "error_code" field.
func ErrorCodeLT(v string) predicate.AIInteractionLog {
	return predicate.AIInteractionLog(sql.FieldLT(FieldErrorCode, v))
}

// ErrorCodeLTE applies the LTE predicate on the "error_code" field.
func ErrorCodeLTE(v string) predicate.AIInteractionLog {
	return predicate.AIInteractionLog(sql.FieldLTE(FieldErrorCode, v))
}

// ErrorCodeContains applies the Contains predicate on the "error_code" field.
func ErrorCodeContains(v string) predicate.AIInteractionLog {
	return predicate.AIInteractionLog(sql.FieldContains(FieldErrorCode, v))
}

// ErrorCodeHasPrefix applies the HasPrefix predicate on the "error_code" field.
func ErrorCodeHasPrefix(v string) predicate.AIInteractionLog {
	return predicate.AIInteractionLog(sql.FieldHasPrefix(FieldErrorCode, v))
}

// ErrorCodeHasSuffix applies the HasSuffix predicate on the "error_code" field.
func ErrorCodeHasSuffix(v string) predicate.AIInteractionLog {
	return predicate.AIInteractionLog(sql.FieldHasSuffix(FieldErrorCode, v))
}

// ErrorCodeIsNil applies the IsNil predicate on the "error_code" field.
func ErrorCodeIsNil() predicate.AIInteractionLog {
	return predicate.AIInteractionLog(sql.FieldIsNull(FieldErrorCode))
}

// ErrorCodeNotNil applies the NotNil predicate on the "error_code" field.
func ErrorCodeNotNil() predicate.AIInteractionLog {
	return predicate.AIInteractionLog(sql.FieldNotNull(FieldErrorCode))
}

// ErrorCodeEqualFold applies the EqualFold predicate on the "error_code" field.
func ErrorCodeEqualFold(v string) predicate.AIInteractionLog {
	return predicate.AIInteractionLog(sql.FieldEqualFold(FieldErrorCode, v))
}

// ErrorCodeContainsFold applies the ContainsFold predicate on the "error_code" field.
func ErrorCodeContainsFold(v string) predicate.AIInteractionLog {
	return predicate.AIInteractionLog(sql.FieldContainsFold(FieldErrorCode, v))
}

// EstimatedTokensEQ applies the EQ predicate on the "estimated_tokens" field.
func EstimatedTokensEQ(v bool) predicate.AIInteractionLog {
	return predicate.AIInteractionLog(sql.FieldEQ(FieldEstimatedTokens, v))
}

// EstimatedTokensNEQ applies the NEQ predicate on the "estimated_tokens" field.
func EstimatedTokensNEQ(v bool) predicate.AIInteractionLog {
	return predicate.AIInteractionLog(sql.FieldNEQ(FieldEstimatedTokens, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.AIInteractionLog {
	return predicate.AIInteractionLog(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.AIInteractionLog {
	return predicate.AIInteractionLog(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.AIInteractionLog {
	return predicate.AIInteractionLog(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.AIInteractionLog {
	return predicate.AIInteractionLog(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.AIInteractionLog {
	return predicate.AIInteractionLog(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.AIInteractionLog {
	return predicate.AIInteractionLog(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.AIInteractionLog {
	return predicate.AIInteractionLog(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.AIInteractionLog {
	return predicate.AIInteractionLog(sql.FieldLTE(FieldCreatedAt, v))
}

// HasJob applies the HasEdge predicate on the "job" edge.
func HasJob() predicate.AIInteractionLog {
	return predicate.AIInteractionLog(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, JobTable, JobColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasJobWith applies the HasEdge predicate on the "job" edge with a given conditions (other predicates).
func HasJobWith(preds ...predicate.Job) predicate.AIInteractionLog {
	return predicate.AIInteractionLog(func(s *sql.Selector) {
		step := newJobStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasStepExecution applies the HasEdge predicate on the "step_execution" edge.
func HasStepExecution() predicate.AIInteractionLog {
	return predicate.AIInteractionLog(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, StepExecutionTable, StepExecutionColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasStepExecutionWith applies the HasEdge predicate on the "step_execution" edge with a given conditions (other predicates).
func HasStepExecutionWith(preds ...predicate.StepExecution) predicate.AIInteractionLog {
	return predicate.AIInteractionLog(func(s *sql.Selector) {
		step := newStepExecutionStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.AIInteractionLog) predicate.AIInteractionLog {
	return predicate.AIInteractionLog(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.AIInteractionLog) predicate.AIInteractionLog {
	return predicate.AIInteractionLog(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.AIInteractionLog) predicate.AIInteractionLog {
	return predicate.AIInteractionLog(sql.NotPredicates(p))
}
