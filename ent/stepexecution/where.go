// Code generated by ent, DO NOT EDIT.

package stepexecution

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/klartext-health/befund/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.StepExecution {
	return predicate.StepExecution(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.StepExecution {
	return predicate.StepExecution(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.StepExecution {
	return predicate.StepExecution(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.StepExecution {
	return predicate.StepExecution(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.StepExecution {
	return predicate.StepExecution(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.StepExecution {
	return predicate.StepExecution(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.StepExecution {
	return predicate.StepExecution(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.StepExecution {
	return predicate.StepExecution(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.StepExecution {
	return predicate.StepExecution(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.StepExecution {
	return predicate.StepExecution(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.StepExecution {
	return predicate.StepExecution(sql.FieldContainsFold(FieldID, id))
}

// JobID applies equality check predicate on the "job_id" field. It's identical to JobIDEQ.
func JobID(v string) predicate.StepExecution {
	return predicate.StepExecution(sql.FieldEQ(FieldJobID, v))
}

// StepName applies equality check predicate on the "step_name" field. It's identical to StepNameEQ.
func StepName(v string) predicate.StepExecution {
	return predicate.StepExecution(sql.FieldEQ(FieldStepName, v))
}

// StepOrder applies equality check predicate on the "step_order" field. It's identical to StepOrderEQ.
func StepOrder(v int) predicate.StepExecution {
	return predicate.StepExecution(sql.FieldEQ(FieldStepOrder, v))
}

// PhaseRank applies equality check predicate on the "phase_rank" field. It's identical to PhaseRankEQ.
func PhaseRank(v int) predicate.StepExecution {
	return predicate.StepExecution(sql.FieldEQ(FieldPhaseRank, v))
}

// StartedAt applies equality check predicate on the "started_at" field. It's identical to StartedAtEQ.
func StartedAt(v time.Time) predicate.StepExecution {
	return predicate.StepExecution(sql.FieldEQ(FieldStartedAt, v))
}

// CompletedAt applies equality check predicate on the "completed_at" field. It's identical to CompletedAtEQ.
func CompletedAt(v time.Time) predicate.StepExecution {
	return predicate.StepExecution(sql.FieldEQ(FieldCompletedAt, v))
}

// DurationMs applies equality check predicate on the "duration_ms" field. It's identical to DurationMsEQ.
func DurationMs(v int) predicate.StepExecution {
	return predicate.StepExecution(sql.FieldEQ(FieldDurationMs, v))
}

// InputText applies equality check predicate on the "input_text" field. It's identical to InputTextEQ.
func InputText(v []byte) predicate.StepExecution {
	return predicate.StepExecution(sql.FieldEQ(FieldInputText, v))
}

// OutputText applies equality check predicate on the "output_text" field. It's identical to OutputTextEQ.
func OutputText(v []byte) predicate.StepExecution {
	return predicate.StepExecution(sql.FieldEQ(FieldOutputText, v))
}

// ErrorMessage applies equality check predicate on the "error_message" field. It's identical to ErrorMessageEQ.
func ErrorMessage(v string) predicate.StepExecution {
	return predicate.StepExecution(sql.FieldEQ(FieldErrorMessage, v))
}

// ModelUsed applies equality check predicate on the "model_used" field. It's identical to ModelUsedEQ.
func ModelUsed(v string) predicate.StepExecution {
	return predicate.StepExecution(sql.FieldEQ(FieldModelUsed, v))
}

// InputTokens applies equality check predicate on the "input_tokens" field. It's identical to InputTokensEQ.
func InputTokens(v int) predicate.StepExecution {
	return predicate.StepExecution(sql.FieldEQ(FieldInputTokens, v))
}

// OutputTokens applies equality check predicate on the "output_tokens" field. It's identical to OutputTokensEQ.
func OutputTokens(v int) predicate.StepExecution {
	return predicate.StepExecution(sql.FieldEQ(FieldOutputTokens, v))
}

// Cost applies equality check predicate on the "cost" field. It's identical to CostEQ.
func Cost(v float64) predicate.StepExecution {
	return predicate.StepExecution(sql.FieldEQ(FieldCost, v))
}

// Attempts applies equality check predicate on the "attempts" field. It's identical to AttemptsEQ.
func Attempts(v int) predicate.StepExecution {
	return predicate.StepExecution(sql.FieldEQ(FieldAttempts, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.StepExecution {
	return predicate.StepExecution(sql.FieldEQ(FieldCreatedAt, v))
}

// JobIDEQ applies the EQ predicate on the "job_id" field.
func JobIDEQ(v string) predicate.StepExecution {
	return predicate.StepExecution(sql.FieldEQ(FieldJobID, v))
}

// JobIDNEQ applies the NEQ predicate on the "job_id" field.
func JobIDNEQ(v string) predicate.StepExecution {
	return predicate.StepExecution(sql.FieldNEQ(FieldJobID, v))
}

// JobIDIn applies the In predicate on the "job_id" field.
func JobIDIn(vs ...string) predicate.StepExecution {
	return predicate.StepExecution(sql.FieldIn(FieldJobID, vs...))
}

// JobIDNotIn applies the NotIn predicate on the "job_id" field.
func JobIDNotIn(vs ...string) predicate.StepExecution {
	return predicate.StepExecution(sql.FieldNotIn(FieldJobID, vs...))
}

// JobIDGT applies the GT predicate on the "job_id" field.
func JobIDGT(v string) predicate.StepExecution {
	return predicate.StepExecution(sql.FieldGT(FieldJobID, v))
}

// JobIDGTE applies the GTE predicate on the "job_id" field.
func JobIDGTE(v string) predicate.StepExecution {
	return predicate.StepExecution(sql.FieldGTE(FieldJobID, v))
}

// JobIDLT applies the LT predicate on the "job_id" field.
func JobIDLT(v string) predicate.StepExecution {
	return predicate.StepExecution(sql.FieldLT(FieldJobID, v))
}

// JobIDLTE applies the LTE predicate on the "job_id" field.
func JobIDLTE(v string) predicate.StepExecution {
	return predicate.StepExecution(sql.FieldLTE(FieldJobID, v))
}

// JobIDContains applies the Contains predicate on the "job_id" field.
func JobIDContains(v string) predicate.StepExecution {
	return predicate.StepExecution(sql.FieldContains(FieldJobID, v))
}

// JobIDHasPrefix applies the HasPrefix predicate on the "job_id" field.
func JobIDHasPrefix(v string) predicate.StepExecution {
	return predicate.StepExecution(sql.FieldHasPrefix(FieldJobID, v))
}

// JobIDHasSuffix applies the HasSuffix predicate on the "job_id" field.
func JobIDHasSuffix(v string) predicate.StepExecution {
	return predicate.StepExecution(sql.FieldHasSuffix(FieldJobID, v))
}

// JobIDEqualFold applies the EqualFold predicate on the "job_id" field.
func JobIDEqualFold(v string) predicate.StepExecution {
	return predicate.StepExecution(sql.FieldEqualFold(FieldJobID, v))
}

// JobIDContainsFold applies the ContainsFold predicate on the "job_id" field.
func JobIDContainsFold(v string) predicate.StepExecution {
	return predicate.StepExecution(sql.FieldContainsFold(FieldJobID, v))
}

// StepNameEQ applies the EQ predicate on the "step_name" field.
func StepNameEQ(v string) predicate.StepExecution {
	return predicate.StepExecution(sql.FieldEQ(FieldStepName, v))
}

// StepNameNEQ applies the NEQ predicate on the "step_name" field.
func StepNameNEQ(v string) predicate.StepExecution {
	return predicate.StepExecution(sql.FieldNEQ(FieldStepName, v))
}

// StepNameIn applies the In predicate on the "step_name" field.
func StepNameIn(vs ...string) predicate.StepExecution {
	return predicate.StepExecution(sql.FieldIn(FieldStepName, vs...))
}

// StepNameNotIn applies the NotIn predicate on the "step_name" field.
func StepNameNotIn(vs ...string) predicate.StepExecution {
	return predicate.StepExecution(sql.FieldNotIn(FieldStepName, vs...))
}

// StepNameGT applies the GT predicate on the "step_name" field.
func StepNameGT(v string) predicate.StepExecution {
	return predicate.StepExecution(sql.FieldGT(FieldStepName, v))
}

// StepNameGTE applies the GTE predicate on the "step_name" field.
func StepNameGTE(v string) predicate.StepExecution {
	return predicate.StepExecution(sql.FieldGTE(FieldStepName, v))
}

// StepNameLT applies the LT predicate on the "step_name" field.
func StepNameLT(v string) predicate.StepExecution {
	return predicate.StepExecution(sql.FieldLT(FieldStepName, v))
}

// StepNameLTE applies the LTE predicate on the "step_name" field.
func StepNameLTE(v string) predicate.StepExecution {
	return predicate.StepExecution(sql.FieldLTE(FieldStepName, v))
}

// StepNameContains applies the Contains predicate on the "step_name" field.
func StepNameContains(v string) predicate.StepExecution {
	return predicate.StepExecution(sql.FieldContains(FieldStepName, v))
}

// StepNameHasPrefix applies the HasPrefix predicate on the "step_name" field.
func StepNameHasPrefix(v string) predicate.StepExecution {
	return predicate.StepExecution(sql.FieldHasPrefix(FieldStepName, v))
}

// StepNameHasSuffix applies the HasSuffix predicate on the "step_name" field.
func StepNameHasSuffix(v string) predicate.StepExecution {
	return predicate.StepExecution(sql.FieldHasSuffix(FieldStepName, v))
}

// StepNameEqualFold applies the EqualFold predicate on the "step_name" field.
func StepNameEqualFold(v string) predicate.StepExecution {
	return predicate.StepExecution(sql.FieldEqualFold(FieldStepName, v))
}

// StepNameContainsFold applies the ContainsFold predicate on the "step_name" field.
func StepNameContainsFold(v string) predicate.StepExecution {
	return predicate.StepExecution(sql.FieldContainsFold(FieldStepName, v))
}

// StepOrderEQ applies the EQ predicate on the "step_order" field.
func StepOrderEQ(v int) predicate.StepExecution {
	return predicate.StepExecution(sql.FieldEQ(FieldStepOrder, v))
}

// StepOrderNEQ applies the NEQ predicate on the "step_order" field.
func StepOrderNEQ(v int) predicate.StepExecution {
	return predicate.StepExecution(sql.FieldNEQ(FieldStepOrder, v))
}

// StepOrderIn applies the In predicate on the "step_order" field.
func StepOrderIn(vs ...int) predicate.StepExecution {
	return predicate.StepExecution(sql.FieldIn(FieldStepOrder, vs...))
}

// StepOrderNotIn applies the NotIn predicate on the "step_order" field.
func StepOrderNotIn(vs ...int) predicate.StepExecution {
	return predicate.StepExecution(sql.FieldNotIn(FieldStepOrder, vs...))
}

// StepOrderGT applies the GT predicate on the "step_order" field.
func StepOrderGT(v int) predicate.StepExecution {
	return predicate.StepExecution(sql.FieldGT(FieldStepOrder, v))
}

// StepOrderGTE applies the GTE predicate on the "step_order" field.
func StepOrderGTE(v int) predicate.StepExecution {
	return predicate.StepExecution(sql.FieldGTE(FieldStepOrder, v))
}

// StepOrderLT applies the LT predicate on the "step_order" field.
func StepOrderLT(v int) predicate.StepExecution {
	return predicate.StepExecution(sql.FieldLT(FieldStepOrder, v))
}

// StepOrderLTE applies the LTE predicate on the "step_order" field.
func StepOrderLTE(v int) predicate.StepExecution {
	return predicate.StepExecution(sql.FieldLTE(FieldStepOrder, v))
}

// PhaseRankEQ applies the EQ predicate on the "phase_rank" field.
func PhaseRankEQ(v int) predicate.StepExecution {
	return predicate.StepExecution(sql.FieldEQ(FieldPhaseRank, v))
}

// PhaseRankNEQ applies the NEQ predicate on the "phase_rank" field.
func PhaseRankNEQ(v int) predicate.StepExecution {
	return predicate.StepExecution(sql.FieldNEQ(FieldPhaseRank, v))
}

// PhaseRankIn applies the In predicate on the "phase_rank" field.
func PhaseRankIn(vs ...int) predicate.StepExecution {
	return predicate.StepExecution(sql.FieldIn(FieldPhaseRank, vs...))
}

// PhaseRankNotIn applies the NotIn predicate on the "phase_rank" field.
func PhaseRankNotIn(vs ...int) predicate.StepExecution {
	return predicate.StepExecution(sql.FieldNotIn(FieldPhaseRank, vs...))
}

// PhaseRankGT applies the GT predicate on the "phase_rank" field.
func PhaseRankGT(v int) predicate.StepExecution {
	return predicate.StepExecution(sql.FieldGT(FieldPhaseRank, v))
}

// PhaseRankGTE applies the GTE predicate on the "phase_rank" field.
func PhaseRankGTE(v int) predicate.StepExecution {
	return predicate.StepExecution(sql.FieldGTE(FieldPhaseRank, v))
}

// PhaseRankLT applies the LT predicate on the "phase_rank" field.
func PhaseRankLT(v int) predicate.StepExecution {
	return predicate.StepExecution(sql.FieldLT(FieldPhaseRank, v))
}

// PhaseRankLTE applies the LTE predicate on the "phase_rank" field.
func PhaseRankLTE(v int) predicate.StepExecution {
	return predicate.StepExecution(sql.FieldLTE(FieldPhaseRank, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.StepExecution {
	return predicate.StepExecution(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.StepExecution {
	return predicate.StepExecution(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.StepExecution {
	return predicate.StepExecution(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.StepExecution {
	return predicate.StepExecution(sql.FieldNotIn(FieldStatus, vs...))
}

// StartedAtEQ applies the EQ predicate on the "started_at" field.
func StartedAtEQ(v time.Time) predicate.StepExecution {
	return predicate.StepExecution(sql.FieldEQ(FieldStartedAt, v))
}

// StartedAtNEQ applies the NEQ predicate on the "started_at" field.
func StartedAtNEQ(v time.Time) predicate.StepExecution {
	return predicate.StepExecution(sql.FieldNEQ(FieldStartedAt, v))
}

// StartedAtIn applies the In predicate on the "started_at" field.
func StartedAtIn(vs ...time.Time) predicate.StepExecution {
	return predicate.StepExecution(sql.FieldIn(FieldStartedAt, vs...))
}

// StartedAtNotIn applies the NotIn predicate on the "started_at" field.
func StartedAtNotIn(vs ...time.Time) predicate.StepExecution {
	return predicate.StepExecution(sql.FieldNotIn(FieldStartedAt, vs...))
}

// StartedAtGT applies the GT predicate on the "started_at" field.
func StartedAtGT(v time.Time) predicate.StepExecution {
	return predicate.StepExecution(sql.FieldGT(FieldStartedAt, v))
}

// StartedAtGTE applies the GTE predicate on the "started_at" field.
func StartedAtGTE(v time.Time) predicate.StepExecution {
	return predicate.StepExecution(sql.FieldGTE(FieldStartedAt, v))
}

// StartedAtLT applies the LT predicate on the "started_at" field.
func StartedAtLT(v time.Time) predicate.StepExecution {
	return predicate.StepExecution(sql.FieldLT(FieldStartedAt, v))
}

// StartedAtLTE applies the LTE predicate on the "started_at" field.
func StartedAtLTE(v time.Time) predicate.StepExecution {
	return predicate.StepExecution(sql.FieldLTE(FieldStartedAt, v))
}

// StartedAtIsNil applies the IsNil predicate on the "started_at" field.
func StartedAtIsNil() predicate.StepExecution {
	return predicate.StepExecution(sql.FieldIsNull(FieldStartedAt))
}

// StartedAtNotNil applies the NotNil predicate on the "started_at" field.
func StartedAtNotNil() predicate.StepExecution {
	return predicate.StepExecution(sql.FieldNotNull(FieldStartedAt))
}

// CompletedAtEQ applies the EQ predicate on the "completed_at" field.
func CompletedAtEQ(v time.Time) predicate.StepExecution {
	return predicate.StepExecution(sql.FieldEQ(FieldCompletedAt, v))
}

// CompletedAtNEQ applies the NEQ predicate on the "completed_at" field.
func CompletedAtNEQ(v time.Time) predicate.StepExecution {
	return predicate.StepExecution(sql.FieldNEQ(FieldCompletedAt, v))
}

// CompletedAtIn applies the In predicate on the "completed_at" field.
func CompletedAtIn(vs ...time.Time) predicate.StepExecution {
	return predicate.StepExecution(sql.FieldIn(FieldCompletedAt, vs...))
}

// CompletedAtNotIn applies the NotIn predicate on the "completed_at" field.
func CompletedAtNotIn(vs ...time.Time) predicate.StepExecution {
	return predicate.StepExecution(sql.FieldNotIn(FieldCompletedAt, vs...))
}

// CompletedAtGT applies the GT predicate on the "completed_at" field.
func CompletedAtGT(v time.Time) predicate.StepExecution {
	return predicate.StepExecution(sql.FieldGT(FieldCompletedAt, v))
}

// CompletedAtGTE applies the GTE predicate on the "completed_at" field.
func CompletedAtGTE(v time.Time) predicate.StepExecution {
	return predicate.StepExecution(sql.FieldGTE(FieldCompletedAt, v))
}

// CompletedAtLT applies the LT predicate on the "completed_at" field.
func CompletedAtLT(v time.Time) predicate.StepExecution {
	return predicate.StepExecution(sql.FieldLT(FieldCompletedAt, v))
}

// CompletedAtLTE applies the LTE predicate on the "completed_at" field.
func CompletedAtLTE(v time.Time) predicate.StepExecution {
	return predicate.StepExecution(sql.FieldLTE(FieldCompletedAt, v))
}

// CompletedAtIsNil applies the IsNil predicate on the "completed_at" field.
func CompletedAtIsNil() predicate.StepExecution {
	return predicate.StepExecution(sql.FieldIsNull(FieldCompletedAt))
}

// CompletedAtNotNil applies the NotNil predicate on the "completed_at" field.
func CompletedAtNotNil() predicate.StepExecution {
	return predicate.StepExecution(sql.FieldNotNull(FieldCompletedAt))
}

// DurationMsEQ applies the EQ predicate on the "duration_ms" field.
func DurationMsEQ(v int) predicate.StepExecution {
	return predicate.StepExecution(sql.FieldEQ(FieldDurationMs, v))
}

// DurationMsNEQ applies the NEQ predicate on the "duration_ms" field.
func DurationMsNEQ(v int) predicate.StepExecution {
	return predicate.StepExecution(sql.FieldNEQ(FieldDurationMs, v))
}

// DurationMsIn applies the In predicate on the "duration_ms" field.
func DurationMsIn(vs ...int) predicate.StepExecution {
	return predicate.StepExecution(sql.FieldIn(FieldDurationMs, vs...))
}

// DurationMsNotIn applies the NotIn predicate on the "duration_ms" field.
func DurationMsNotIn(vs ...int) predicate.StepExecution {
	return predicate.StepExecution(sql.FieldNotIn(FieldDurationMs, vs...))
}

// DurationMsGT applies the GT predicate on the "duration_ms" field.
func DurationMsGT(v int) predicate.StepExecution {
	return predicate.StepExecution(sql.FieldGT(FieldDurationMs, v))
}

// DurationMsGTE applies the GTE predicate on the "duration_ms" field.
func DurationMsGTE(v int) predicate.StepExecution {
	return predicate.StepExecution(sql.FieldGTE(FieldDurationMs, v))
}

// DurationMsLT applies the LT predicate on the "duration_ms" field.
func DurationMsLT(v int) predicate.StepExecution {
	return predicate.StepExecution(sql.FieldLT(FieldDurationMs, v))
}

// DurationMsLTE applies the LTE predicate on the "duration_ms" field.
func DurationMsLTE(v int) predicate.StepExecution {
	return predicate.StepExecution(sql.FieldLTE(FieldDurationMs, v))
}

// DurationMsIsNil applies the IsNil predicate on the "duration_ms" field.
func DurationMsIsNil() predicate.StepExecution {
	return predicate.StepExecution(sql.FieldIsNull(FieldDurationMs))
}

// DurationMsNotNil applies the NotNil predicate on the "duration_ms" field.
func DurationMsNotNil() predicate.StepExecution {
	return predicate.StepExecution(sql.FieldNotNull(FieldDurationMs))
}

// InputTextEQ applies the EQ predicate on the "input_text" field.
func InputTextEQ(v []byte) predicate.StepExecution {
	return predicate.StepExecution(sql.FieldEQ(FieldInputText, v))
}

// InputTextNEQ applies the NEQ predicate on the "input_text" field.
func InputTextNEQ(v []byte) predicate.StepExecution {
	return predicate.StepExecution(sql.FieldNEQ(FieldInputText, v))
}

// InputTextIn applies the In predicate on the "input_text" field.
func InputTextIn(vs ...[]byte) predicate.StepExecution {
	return predicate.StepExecution(sql.FieldIn(FieldInputText, vs...))
}

// InputTextNotIn applies the NotIn predicate on the "input_text" field.
func InputTextNotIn(vs ...[]byte) predicate.StepExecution {
	return predicate.StepExecution(sql.FieldNotIn(FieldInputText, vs...))
}

// InputTextGT applies the GT predicate on the "input_text" field.
func InputTextGT(v []byte) predicate.StepExecution {
	return predicate.StepExecution(sql.FieldGT(FieldInputText, v))
}

// InputTextGTE applies the GTE predicate on the "input_text" field.
func InputTextGTE(v []byte) predicate.StepExecution {
	return predicate.StepExecution(sql.FieldGTE(FieldInputText, v))
}

// InputTextLT applies the LT predicate on the "input_text" field.
func InputTextLT(v []byte) predicate.StepExecution {
	return predicate.StepExecution(sql.FieldLT(FieldInputText, v))
}

// InputTextLTE applies the LTE predicate on the "input_text" field.
func InputTextLTE(v []byte) predicate.StepExecution {
	return predicate.StepExecution(sql.FieldLTE(FieldInputText, v))
}

// InputTextIsNil applies the IsNil predicate on the "input_text" field.
func InputTextIsNil() predicate.StepExecution {
	return predicate.StepExecution(sql.FieldIsNull(FieldInputText))
}

// InputTextNotNil applies the NotNil predicate on the "input_text" field.
func InputTextNotNil() predicate.StepExecution {
	return predicate.StepExecution(sql.FieldNotNull(FieldInputText))
}

// OutputTextEQ applies the EQ predicate on the "output_text" field.
func OutputTextEQ(v []byte) predicate.StepExecution {
	return predicate.StepExecution(sql.FieldEQ(FieldOutputText, v))
}

// OutputTextNEQ applies the NEQ predicate on the "output_text" field.
func OutputTextNEQ(v []byte) predicate.StepExecution {
	return predicate.StepExecution(sql.FieldNEQ(FieldOutputText, v))
}

// OutputTextIn applies the In predicate on the "output_text" field.
func OutputTextIn(vs ...[]byte) predicate.StepExecution {
	return predicate.StepExecution(sql.FieldIn(FieldOutputText, vs...))
}

// OutputTextNotIn applies the NotIn predicate on the "output_text" field.
func OutputTextNotIn(vs ...[]byte) predicate.StepExecution {
	return predicate.StepExecution(sql.FieldNotIn(FieldOutputText, vs...))
}

// OutputTextGT applies the GT predicate on the "output_text" field.
func OutputTextGT(v []byte) predicate.StepExecution {
	return predicate.StepExecution(sql.FieldGT(FieldOutputText, v))
}

// OutputTextGTE applies the GTE predicate on the "output_text" field.
func OutputTextGTE(v []byte) predicate.StepExecution {
	return predicate.StepExecution(sql.FieldGTE(FieldOutputText, v))
}

// OutputTextLT applies the LT predicate on the "output_text" field.
func OutputTextLT(v []byte) predicate.StepExecution {
	return predicate.StepExecution(sql.FieldLT(FieldOutputText, v))
}

// OutputTextLTE applies the LTE predicate on the "output_text" field.
func OutputTextLTE(v []byte) predicate.StepExecution {
	return predicate.StepExecution(sql.FieldLTE(FieldOutputText, v))
}

// OutputTextIsNil applies the IsNil predicate on the "output_text" field.
func OutputTextIsNil() predicate.StepExecution {
	return predicate.StepExecution(sql.FieldIsNull(FieldOutputText))
}

// OutputTextNotNil applies the NotNil predicate on the "output_text" field.
func OutputTextNotNil() predicate.StepExecution {
	return predicate.StepExecution(sql.FieldNotNull(FieldOutputText))
}

// ErrorMessageEQ applies the EQ predicate on the "error_message" field.
func ErrorMessageEQ(v string) predicate.StepExecution {
	return predicate.StepExecution(sql.FieldEQ(FieldErrorMessage, v))
}

// ErrorMessageNEQ applies the NEQ predicate on the "error_message" field.
func ErrorMessageNEQ(v string) predicate.StepExecution {
	return predicate.StepExecution(sql.FieldNEQ(FieldErrorMessage, v))
}

// ErrorMessageIn applies the In predicate on the "error_message" field.
func ErrorMessageIn(vs ...string) predicate.StepExecution {
	return predicate.StepExecution(sql.FieldIn(FieldErrorMessage, vs...))
}

// ErrorMessageNotIn applies the NotIn predicate on the "error_message" field.
func ErrorMessageNotIn(vs ...string) predicate.StepExecution {
	return predicate.StepExecution(sql.FieldNotIn(FieldErrorMessage, vs...))
}

// ErrorMessageGT applies the GT predicate on the "error_message" field.
func ErrorMessageGT(v string) predicate.StepExecution {
	return predicate.StepExecution(sql.FieldGT(FieldErrorMessage, v))
}

// ErrorMessageGTE applies the GTE predicate on the "error_message" field.
func ErrorMessageGTE(v string) predicate.StepExecution {
	return predicate.StepExecution(sql.FieldGTE(FieldErrorMessage, v))
}

// ErrorMessageLT applies the LT predicate on the "error_message" field.
func ErrorMessageLT(v string) predicate.StepExecution {
	return predicate.StepExecution(sql.FieldLT(FieldErrorMessage, v))
}

// ErrorMessageLTE applies the LTE predicate on the "error_message" field.
func ErrorMessageLTE(v string) predicate.StepExecution {
	return predicate.StepExecution(sql.FieldLTE(FieldErrorMessage, v))
}

// ErrorMessageContains applies the Contains predicate on the "error_message" field.
func ErrorMessageContains(v string) predicate.StepExecution {
	return predicate.StepExecution(sql.FieldContains(FieldErrorMessage, v))
}

// ErrorMessageHasPrefix applies the HasPrefix predicate on the "error_message" field.
func ErrorMessageHasPrefix(v string) predicate.StepExecution {
	return predicate.StepExecution(sql.FieldHasPrefix(FieldErrorMessage, v))
}

// ErrorMessageHasSuffix applies the HasSuffix predicate on the "error_message" field.
func ErrorMessageHasSuffix(v string) predicate.StepExecution {
	return predicate.StepExecution(sql.FieldHasSuffix(FieldErrorMessage, v))
}

// ErrorMessageIsNil applies the IsNil predicate on the "error_message" field.
func ErrorMessageIsNil() predicate.StepExecution {
	return predicate.StepExecution(sql.FieldIsNull(FieldErrorMessage))
}

// ErrorMessageNotNil applies the NotNil predicate on the "error_message" field.
func ErrorMessageNotNil() predicate.StepExecution {
	return predicate.StepExecution(sql.FieldNotNull(FieldErrorMessage))
}

// ErrorMessageEqualFold applies the EqualFold predicate on the "error_message" field.
func ErrorMessageEqualFold(v string) predicate.StepExecution {
	return predicate.StepExecution(sql.FieldEqualFold(FieldErrorMessage, v))
}

// ErrorMessageContainsFold applies the ContainsFold predicate on the "error_message" field.
func ErrorMessageContainsFold(v string) predicate.StepExecution {
	return predicate.StepExecution(sql.FieldContainsFold(FieldErrorMessage, v))
}

// ModelUsedEQ applies the EQ predicate on the "model_used" field.
func ModelUsedEQ(v string) predicate.StepExecution {
	return predicate.StepExecution(sql.FieldEQ(FieldModelUsed, v))
}

// ModelUsedNEQ applies the NEQ predicate on the "model_used" field.
func ModelUsedNEQ(v string) predicate.StepExecution {
	return predicate.StepExecution(sql.FieldNEQ(FieldModelUsed, v))
}

// ModelUsedIn applies the In predicate on the "model_used" field.
func ModelUsedIn(vs ...string) predicate.StepExecution {
	return predicate.StepExecution(sql.FieldIn(FieldModelUsed, vs...))
}

// ModelUsedNotIn applies the NotIn predicate on the "model_used" field.
func ModelUsedNotIn(vs ...string) predicate.StepExecution {
	return predicate.StepExecution(sql.FieldNotIn(FieldModelUsed, vs...))
}

// ModelUsedGT applies the GT predicate on the "model_used" field.
func ModelUsedGT(v string) predicate.StepExecution {
	return predicate.StepExecution(sql.FieldGT(FieldModelUsed, v))
}

// ModelUsedGTE applies the GTE predicate on the "model_used" field.
func ModelUsedGTE(v string) predicate.StepExecution {
	return predicate.StepExecution(sql.FieldGTE(FieldModelUsed, v))
}

// ModelUsedLT applies the LT predicate on the "model_used" field.
func ModelUsedLT(v string) predicate.StepExecution {
	return predicate.StepExecution(sql.FieldLT(FieldModelUsed, v))
}

// ModelUsedLTE applies the LTE predicate on the "model_used" field.
func ModelUsedLTE(v string) predicate.StepExecution {
	return predicate.StepExecution(sql.FieldLTE(FieldModelUsed, v))
}

// ModelUsedContains applies the Contains predicate on the "model_used" field.
func ModelUsedContains(v string) predicate.StepExecution {
	return predicate.StepExecution(sql.FieldContains(FieldModelUsed, v))
}

// ModelUsedHasPrefix applies the HasPrefix predicate on the "model_used" field.
func ModelUsedHasPrefix(v string) predicate.StepExecution {
	return predicate.StepExecution(sql.FieldHasPrefix(FieldModelUsed, v))
}

// ModelUsedHasSuffix applies the HasSuffix predicate on the "model_used" field.
func ModelUsedHasSuffix(v string) predicate.StepExecution {
	return predicate.StepExecution(sql.FieldHasSuffix(FieldModelUsed, v))
}

// ModelUsedIsNil applies the IsNil predicate on the "model_used" field.
func ModelUsedIsNil() predicate.StepExecution {
	return predicate.StepExecution(sql.FieldIsNull(FieldModelUsed))
}

// ModelUsedNotNil applies the NotNil predicate on the "model_used" field.
func ModelUsedNotNil() predicate.StepExecution {
	return predicate.StepExecution(sql.FieldNotNull(FieldModelUsed))
}

// ModelUsedEqualFold applies the EqualFold predicate on the "model_used" field.
func ModelUsedEqualFold(v string) predicate.StepExecution {
	return predicate.StepExecution(sql.FieldEqualFold(FieldModelUsed, v))
}

// ModelUsedContainsFold applies the ContainsFold predicate on the "model_used" field.
func ModelUsedContainsFold(v string) predicate.StepExecution {
	return predicate.StepExecution(sql.FieldContainsFold(FieldModelUsed, v))
}

// InputTokensEQ applies the EQ predicate on the "input_tokens" field.
func InputTokensEQ(v int) predicate.StepExecution {
	return predicate.StepExecution(sql.FieldEQ(FieldInputTokens, v))
}

// InputTokensNEQ applies the NEQ predicate on the "input_tokens" field.
func InputTokensNEQ(v int) predicate.StepExecution {
	return predicate.StepExecution(sql.FieldNEQ(FieldInputTokens, v))
}

// InputTokensIn applies the In predicate on the "input_tokens" field.
func InputTokensIn(vs ...int) predicate.StepExecution {
	return predicate.StepExecution(sql.FieldIn(FieldInputTokens, vs...))
}

// InputTokensNotIn applies the NotIn predicate on the "input_tokens" field.
func InputTokensNotIn(vs ...int) predicate.StepExecution {
	return predicate.StepExecution(sql.FieldNotIn(FieldInputTokens, vs...))
}

// InputTokensGT applies the GT predicate on the "input_tokens" field.
func InputTokensGT(v int) predicate.StepExecution {
	return predicate.StepExecution(sql.FieldGT(FieldInputTokens, v))
}

// InputTokensGTE applies the GTE predicate on the "input_tokens" field.
func InputTokensGTE(v int) predicate.StepExecution {
	return predicate.StepExecution(sql.FieldGTE(FieldInputTokens, v))
}

// InputTokensLT applies the LT predicate on the "input_tokens" field.
func InputTokensLT(v int) predicate.StepExecution {
	return predicate.StepExecution(sql.FieldLT(FieldInputTokens, v))
}

// InputTokensLTE applies the LTE predicate on the "input_tokens" field.
func InputTokensLTE(v int) predicate.StepExecution {
	return predicate.StepExecution(sql.FieldLTE(FieldInputTokens, v))
}

// InputTokensIsNil applies the IsNil predicate on the "input_tokens" field.
func InputTokensIsNil() predicate.StepExecution {
	return predicate.StepExecution(sql.FieldIsNull(FieldInputTokens))
}

// InputTokensNotNil applies the NotNil predicate on the "input_tokens" field.
func InputTokensNotNil() predicate.StepExecution {
	return predicate.StepExecution(sql.FieldNotNull(FieldInputTokens))
}

// OutputTokensEQ applies the EQ predicate on the "output_tokens" field.
func OutputTokensEQ(v int) predicate.StepExecution {
	return predicate.StepExecution(sql.FieldEQ(FieldOutputTokens, v))
}

// OutputTokensNEQ applies the NEQ predicate on the "output_tokens" field.
func OutputTokensNEQ(v int) predicate.StepExecution {
	return predicate.StepExecution(sql.FieldNEQ(FieldOutputTokens, v))
}

// OutputTokensIn applies the In predicate on the "output_tokens" field.
func OutputTokensIn(vs ...int) predicate.StepExecution {
	return predicate.StepExecution(sql.FieldIn(FieldOutputTokens, vs...))
}

// OutputTokensNotIn applies the NotIn predicate on the "output_tokens" field.
func OutputTokensNotIn(vs ...int) predicate.StepExecution {
	return predicate.StepExecution(sql.FieldNotIn(FieldOutputTokens, vs...))
}

// OutputTokensGT applies the GT predicate on the "output_tokens" field.
func OutputTokensGT(v int) predicate.StepExecution {
	return predicate.StepExecution(sql.FieldGT(FieldOutputTokens, v))
}

// OutputTokensGTE applies the GTE predicate on the "output_tokens" field.
func OutputTokensGTE(v int) predicate.StepExecution {
	return predicate.StepExecution(sql.FieldGTE(FieldOutputTokens, v))
}

// OutputTokensLT applies the LT predicate on the "output_tokens" field.
func OutputTokensLT(v int) predicate.StepExecution {
	return predicate.StepExecution(sql.FieldLT(FieldOutputTokens, v))
}

// OutputTokensLTE applies the LTE predicate on the "output_tokens" field.
func OutputTokensLTE(v int) predicate.StepExecution {
	return predicate.StepExecution(sql.FieldLTE(FieldOutputTokens, v))
}

// OutputTokensIsNil applies the IsNil predicate on the "output_tokens" field.
func OutputTokensIsNil() predicate.StepExecution {
	return predicate.StepExecution(sql.FieldIsNull(FieldOutputTokens))
}

// OutputTokensNotNil applies the NotNil predicate on the "output_tokens" field.
func OutputTokensNotNil() predicate.StepExecution {
	return predicate.StepExecution(sql.FieldNotNull(FieldOutputTokens))
}

// CostEQ applies the EQ predicate on the "cost" field.
func CostEQ(v float64) predicate.StepExecution {
	return predicate.StepExecution(sql.FieldEQ(FieldCost, v))
}

// CostNEQ applies the NEQ predicate on the "cost" field.
func CostNEQ(v float64) predicate.StepExecution {
	return predicate.StepExecution(sql.FieldNEQ(FieldCost, v))
}

// CostIn applies the In predicate on the "cost" field.
func CostIn(vs ...float64) predicate.StepExecution {
	return predicate.StepExecution(sql.FieldIn(FieldCost, vs...))
}

// CostNotIn applies the NotIn predicate on the "cost" field.
func CostNotIn(vs ...float64) predicate.StepExecution {
	return predicate.StepExecution(sql.FieldNotIn(FieldCost, vs...))
}

// CostGT applies the GT predicate on the "cost" field.
func CostGT(v float64) predicate.StepExecution {
	return predicate.StepExecution(sql.FieldGT(FieldCost, v))
}

// CostGTE applies the GTE predicate on the "cost" field.
func CostGTE(v float64) predicate.StepExecution {
	return predicate.StepExecution(sql.FieldGTE(FieldCost, v))
}

// CostLT applies the LT predicate on the "cost" field.
func CostLT(v float64) predicate.StepExecution {
	return predicate.StepExecution(sql.FieldLT(FieldCost, v))
}

// CostLTE applies the LTE predicate on the "cost" field.
func CostLTE(v float64) predicate.StepExecution {
	return predicate.StepExecution(sql.FieldLTE(FieldCost, v))
}

// CostIsNil applies the IsNil predicate on the "cost" field.
func CostIsNil() predicate.StepExecution {
	return predicate.StepExecution(sql.FieldIsNull(FieldCost))
}

// CostNotNil applies the NotNil predicate on the "cost" field.
func CostNotNil() predicate.StepExecution {
	return predicate.StepExecution(sql.FieldNotNull(FieldCost))
}

// AttemptsEQ applies the EQ predicate on the "attempts" field.
func AttemptsEQ(v int) predicate.StepExecution {
	return predicate.StepExecution(sql.FieldEQ(FieldAttempts, v))
}

// AttemptsNEQ applies the NEQ predicate on the "attempts" field.
func AttemptsNEQ(v int) predicate.StepExecution {
	return predicate.StepExecution(sql.FieldNEQ(FieldAttempts, v))
}

// AttemptsIn applies the In predicate on the "attempts" field.
func AttemptsIn(vs ...int) predicate.StepExecution {
	return predicate.StepExecution(sql.FieldIn(FieldAttempts, vs...))
}

// AttemptsNotIn applies the NotIn predicate on the "attempts" field.
func AttemptsNotIn(vs ...int) predicate.StepExecution {
	return predicate.StepExecution(sql.FieldNotIn(FieldAttempts, vs...))
}

// AttemptsGT applies the GT predicate on the "attempts" field.
func AttemptsGT(v int) predicate.StepExecution {
	return predicate.StepExecution(sql.FieldGT(FieldAttempts, v))
}

// AttemptsGTE applies the GTE predicate on the "attempts" field.
func AttemptsGTE(v int) predicate.StepExecution {
	return predicate.StepExecution(sql.FieldGTE(FieldAttempts, v))
}

// AttemptsLT applies the LT predicate on the "attempts" field.
func AttemptsLT(v int) predicate.StepExecution {
	return predicate.StepExecution(sql.FieldLT(FieldAttempts, v))
}

// AttemptsLTE applies the LTE predicate on the "attempts" field.
func AttemptsLTE(v int) predicate.StepExecution {
	return predicate.StepExecution(sql.FieldLTE(FieldAttempts, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.StepExecution {
	return predicate.StepExecution(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.StepExecution {
	return predicate.StepExecution(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.StepExecution {
	return predicate.StepExecution(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.StepExecution {
	return predicate.StepExecution(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.StepExecution {
	return predicate.StepExecution(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.StepExecution {
	return predicate.StepExecution(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.StepExecution {
	return predicate.StepExecution(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.StepExecution {
	return predicate.StepExecution(sql.FieldLTE(FieldCreatedAt, v))
}

// HasJob applies the HasEdge predicate on the "job" edge.
func HasJob() predicate.StepExecution {
	return predicate.StepExecution(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, JobTable, JobColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasJobWith applies the HasEdge predicate on the "job" edge with a given conditions (other predicates).
func HasJobWith(preds ...predicate.Job) predicate.StepExecution {
	return predicate.StepExecution(func(s *sql.Selector) {
		step := newJobStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasAiInteractions applies the HasEdge predicate on the "ai_interactions" edge.
func HasAiInteractions() predicate.StepExecution {
	return predicate.StepExecution(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, AiInteractionsTable, AiInteractionsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasAiInteractionsWith applies the HasEdge predicate on the "ai_interactions" edge with a given conditions (other predicates).
func HasAiInteractionsWith(preds ...predicate.AIInteractionLog) predicate.StepExecution {
	return predicate.StepExecution(func(s *sql.Selector) {
		step := newAiInteractionsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.StepExecution) predicate.StepExecution {
	return predicate.StepExecution(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.StepExecution) predicate.StepExecution {
	return predicate.StepExecution(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.StepExecution) predicate.StepExecution {
	return predicate.StepExecution(sql.NotPredicates(p))
}
