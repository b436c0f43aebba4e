// Code generated by ent, DO NOT EDIT.

package pipelinestep

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/klartext-health/befund/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.PipelineStep {
	return predicate.PipelineStep(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.PipelineStep {
	return predicate.PipelineStep(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.PipelineStep {
	return predicate.PipelineStep(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.PipelineStep {
	return predicate.PipelineStep(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.PipelineStep {
	return predicate.PipelineStep(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.PipelineStep {
	return predicate.PipelineStep(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.PipelineStep {
	return predicate.PipelineStep(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.PipelineStep {
	return predicate.PipelineStep(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.PipelineStep {
	return predicate.PipelineStep(sql.FieldLTE(FieldID, id))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.PipelineStep {
	return predicate.PipelineStep(sql.FieldEQ(FieldName, v))
}

// Description applies equality check predicate on the "description" field. It's identical to DescriptionEQ.
func Description(v string) predicate.PipelineStep {
	return predicate.PipelineStep(sql.FieldEQ(FieldDescription, v))
}

// SortOrder applies equality check predicate on the "sort_order" field. It's identical to SortOrderEQ.
func SortOrder(v int) predicate.PipelineStep {
	return predicate.PipelineStep(sql.FieldEQ(FieldSortOrder, v))
}

// PostBranching applies equality check predicate on the "post_branching" field. It's identical to PostBranchingEQ.
func PostBranching(v bool) predicate.PipelineStep {
	return predicate.PipelineStep(sql.FieldEQ(FieldPostBranching, v))
}

// DocumentClassID applies equality check predicate on the "document_class_id" field. It's identical to DocumentClassIDEQ.
func DocumentClassID(v int) predicate.PipelineStep {
	return predicate.PipelineStep(sql.FieldEQ(FieldDocumentClassID, v))
}

// Enabled applies equality check predicate on the "enabled" field. It's identical to EnabledEQ.
func Enabled(v bool) predicate.PipelineStep {
	return predicate.PipelineStep(sql.FieldEQ(FieldEnabled, v))
}

// IsBranchingStep applies equality check predicate on the "is_branching_step" field. It's identical to IsBranchingStepEQ.
func IsBranchingStep(v bool) predicate.PipelineStep {
	return predicate.PipelineStep(sql.FieldEQ(FieldIsBranchingStep, v))
}

// ModelName applies equality check predicate on the "model_name" field. It's identical to ModelNameEQ.
func ModelName(v string) predicate.PipelineStep {
	return predicate.PipelineStep(sql.FieldEQ(FieldModelName, v))
}

// Temperature applies equality check predicate on the "temperature" field. It's identical to TemperatureEQ.
func Temperature(v float64) predicate.PipelineStep {
	return predicate.PipelineStep(sql.FieldEQ(FieldTemperature, v))
}

// MaxTokens applies equality check predicate on the "max_tokens" field. It's identical to MaxTokensEQ.
func MaxTokens(v int) predicate.PipelineStep {
	return predicate.PipelineStep(sql.FieldEQ(FieldMaxTokens, v))
}

// PromptTemplate applies equality check predicate on the "prompt_template" field. It's identical to PromptTemplateEQ.
func PromptTemplate(v string) predicate.PipelineStep {
	return predicate.PipelineStep(sql.FieldEQ(FieldPromptTemplate, v))
}

// SystemPrompt applies equality check predicate on the "system_prompt" field. It's identical to SystemPromptEQ.
func SystemPrompt(v string) predicate.PipelineStep {
	return predicate.PipelineStep(sql.FieldEQ(FieldSystemPrompt, v))
}

// TerminationReason applies equality check predicate on the "termination_reason" field. It's identical to TerminationReasonEQ.
func TerminationReason(v string) predicate.PipelineStep {
	return predicate.PipelineStep(sql.FieldEQ(FieldTerminationReason, v))
}

// TerminationMessage applies equality check predicate on the "termination_message" field. It's identical to TerminationMessageEQ.
func TerminationMessage(v string) predicate.PipelineStep {
	return predicate.PipelineStep(sql.FieldEQ(FieldTerminationMessage, v))
}

// RetryOnFailure applies equality check predicate on the "retry_on_failure" field. It's identical to RetryOnFailureEQ.
func RetryOnFailure(v bool) predicate.PipelineStep {
	return predicate.PipelineStep(sql.FieldEQ(FieldRetryOnFailure, v))
}

// MaxRetries applies equality check predicate on the "max_retries" field. It's identical to MaxRetriesEQ.
func MaxRetries(v int) predicate.PipelineStep {
	return predicate.PipelineStep(sql.FieldEQ(FieldMaxRetries, v))
}

// UseOriginalText applies equality check predicate on the "use_original_text" field. It's identical to UseOriginalTextEQ.
func UseOriginalText(v bool) predicate.PipelineStep {
	return predicate.PipelineStep(sql.FieldEQ(FieldUseOriginalText, v))
}

// Version applies equality check predicate on the "version" field. It's identical to VersionEQ.
func Version(v int) predicate.PipelineStep {
	return predicate.PipelineStep(sql.FieldEQ(FieldVersion, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.PipelineStep {
	return predicate.PipelineStep(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.PipelineStep {
	return predicate.PipelineStep(sql.FieldEQ(FieldUpdatedAt, v))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.PipelineStep {
	return predicate.PipelineStep(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.PipelineStep {
	return predicate.PipelineStep(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.PipelineStep {
	return predicate.PipelineStep(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.PipelineStep {
	return predicate.PipelineStep(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.PipelineStep {
	return predicate.PipelineStep(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.PipelineStep {
	return predicate.PipelineStep(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.PipelineStep {
	return predicate.PipelineStep(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.PipelineStep {
	return predicate.PipelineStep(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.PipelineStep {
	return predicate.PipelineStep(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.PipelineStep {
	return predicate.PipelineStep(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.PipelineStep {
	return predicate.PipelineStep(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.PipelineStep {
	return predicate.PipelineStep(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.PipelineStep {
	return predicate.PipelineStep(sql.FieldContainsFold(FieldName, v))
}

// DescriptionEQ applies the EQ predicate on the "description" field.
func DescriptionEQ(v string) predicate.PipelineStep {
	return predicate.PipelineStep(sql.FieldEQ(FieldDescription, v))
}

// DescriptionNEQ applies the NEQ predicate on the "description" field.
func DescriptionNEQ(v string) predicate.PipelineStep {
	return predicate.PipelineStep(sql.FieldNEQ(FieldDescription, v))
}

// DescriptionIn applies the In predicate on the "description" field.
func DescriptionIn(vs ...string) predicate.PipelineStep {
	return predicate.PipelineStep(sql.FieldIn(FieldDescription, vs...))
}

// DescriptionNotIn applies the NotIn predicate on the "description" field.
func DescriptionNotIn(vs ...string) predicate.PipelineStep {
	return predicate.PipelineStep(sql.FieldNotIn(FieldDescription, vs...))
}

// DescriptionGT applies the GT predicate on the "description" field.
func DescriptionGT(v string) predicate.PipelineStep {
	return predicate.PipelineStep(sql.FieldGT(FieldDescription, v))
}

// DescriptionGTE applies the GTE predicate on the "description" field.
func DescriptionGTE(v string) predicate.PipelineStep {
	return predicate.PipelineStep(sql.FieldGTE(FieldDescription, v))
}

// DescriptionLT applies the LT predicate on the "description" field.
func DescriptionLT(v string) predicate.PipelineStep {
	return predicate.PipelineStep(sql.FieldLT(FieldDescription, v))
}

// DescriptionLTE applies the LTE predicate on the "description" field.
func DescriptionLTE(v string) predicate.PipelineStep {
	return predicate.PipelineStep(sql.FieldLTE(FieldDescription, v))
}

// DescriptionContains applies the Contains predicate on the "description" field.
func DescriptionContains(v string) predicate.PipelineStep {
	return predicate.PipelineStep(sql.FieldContains(FieldDescription, v))
}

// DescriptionHasPrefix applies the HasPrefix predicate on the "description" field.
func DescriptionHasPrefix(v string) predicate.PipelineStep {
	return predicate.PipelineStep(sql.FieldHasPrefix(FieldDescription, v))
}

// DescriptionHasSuffix applies the HasSuffix predicate on the "description" field.
func DescriptionHasSuffix(v string) predicate.PipelineStep {
	return predicate.PipelineStep(sql.FieldHasSuffix(FieldDescription, v))
}

// DescriptionIsNil applies the IsNil predicate on the "description" field.
func DescriptionIsNil() predicate.PipelineStep {
	return predicate.PipelineStep(sql.FieldIsNull(FieldDescription))
}

// DescriptionNotNil applies the NotNil predicate on the "description" field.
func DescriptionNotNil() predicate.PipelineStep {
	return predicate.PipelineStep(sql.FieldNotNull(FieldDescription))
}

// DescriptionEqualFold applies the EqualFold predicate on the "description" field.
func DescriptionEqualFold(v string) predicate.PipelineStep {
	return predicate.PipelineStep(sql.FieldEqualFold(FieldDescription, v))
}

// DescriptionContainsFold applies the ContainsFold predicate on the "description" field.
func DescriptionContainsFold(v string) predicate.PipelineStep {
	return predicate.PipelineStep(sql.FieldContainsFold(FieldDescription, v))
}

// SortOrderEQ applies the EQ predicate on the "sort_order" field.
func SortOrderEQ(v int) predicate.PipelineStep {
	return predicate.PipelineStep(sql.FieldEQ(FieldSortOrder, v))
}

// SortOrderNEQ applies the NEQ predicate on the "sort_order" field.
func SortOrderNEQ(v int) predicate.PipelineStep {
	return predicate.PipelineStep(sql.FieldNEQ(FieldSortOrder, v))
}

// SortOrderIn applies the In predicate on the "sort_order" field.
func SortOrderIn(vs ...int) predicate.PipelineStep {
	return predicate.PipelineStep(sql.FieldIn(FieldSortOrder, vs...))
}

// SortOrderNotIn applies the NotIn predicate on the "sort_order" field.
func SortOrderNotIn(vs ...int) predicate.PipelineStep {
	return predicate.PipelineStep(sql.FieldNotIn(FieldSortOrder, vs...))
}

// SortOrderGT applies the GT predicate on the "sort_order" field.
func SortOrderGT(v int) predicate.PipelineStep {
	return predicate.PipelineStep(sql.FieldGT(FieldSortOrder, v))
}

// SortOrderGTE applies the GTE predicate on the "sort_order" field.
func SortOrderGTE(v int) predicate.PipelineStep {
	return predicate.PipelineStep(sql.FieldGTE(FieldSortOrder, v))
}

// SortOrderLT applies the LT predicate on the "sort_order" field.
func SortOrderLT(v int) predicate.PipelineStep {
	return predicate.PipelineStep(sql.FieldLT(FieldSortOrder, v))
}

// SortOrderLTE applies the LTE predicate on the "sort_order" field.
func SortOrderLTE(v int) predicate.PipelineStep {
	return predicate.PipelineStep(sql.FieldLTE(FieldSortOrder, v))
}

// PostBranchingEQ applies the EQ predicate on the "post_branching" field.
func PostBranchingEQ(v bool) predicate.PipelineStep {
	return predicate.PipelineStep(sql.FieldEQ(FieldPostBranching, v))
}

// PostBranchingNEQ applies the NEQ predicate on the "post_branching" field.
func PostBranchingNEQ(v bool) predicate.PipelineStep {
	return predicate.PipelineStep(sql.FieldNEQ(FieldPostBranching, v))
}

// DocumentClassIDEQ applies the EQ predicate on the "document_class_id" field.
func DocumentClassIDEQ(v int) predicate.PipelineStep {
	return predicate.PipelineStep(sql.FieldEQ(FieldDocumentClassID, v))
}

// DocumentClassIDNEQ applies the NEQ predicate on the "document_class_id" field.
func DocumentClassIDNEQ(v int) predicate.PipelineStep {
	return predicate.PipelineStep(sql.FieldNEQ(FieldDocumentClassID, v))
}

// DocumentClassIDIn applies the In predicate on the "document_class_id" field.
func DocumentClassIDIn(vs ...int) predicate.PipelineStep {
	return predicate.PipelineStep(sql.FieldIn(FieldDocumentClassID, vs...))
}

// DocumentClassIDNotIn applies the NotIn predicate on the "document_class_id" field.
func DocumentClassIDNotIn(vs ...int) predicate.PipelineStep {
	return predicate.PipelineStep(sql.FieldNotIn(FieldDocumentClassID, vs...))
}

// DocumentClassIDIsNil applies the IsNil predicate on the "document_class_id" field.
func DocumentClassIDIsNil() predicate.PipelineStep {
	return predicate.PipelineStep(sql.FieldIsNull(FieldDocumentClassID))
}

// DocumentClassIDNotNil applies the NotNil predicate on the "document_class_id" field.
func DocumentClassIDNotNil() predicate.PipelineStep {
	return predicate.PipelineStep(sql.FieldNotNull(FieldDocumentClassID))
}

// EnabledEQ applies the EQ predicate on the "enabled" field.
func EnabledEQ(v bool) predicate.PipelineStep {
	return predicate.PipelineStep(sql.FieldEQ(FieldEnabled, v))
}

// EnabledNEQ applies the NEQ predicate on the "enabled" field.
func EnabledNEQ(v bool) predicate.PipelineStep {
	return predicate.PipelineStep(sql.FieldNEQ(FieldEnabled, v))
}

// IsBranchingStepEQ applies the EQ predicate on the "is_branching_step" field.
func IsBranchingStepEQ(v bool) predicate.PipelineStep {
	return predicate.PipelineStep(sql.FieldEQ(FieldIsBranchingStep, v))
}

// IsBranchingStepNEQ applies the NEQ predicate on the "is_branching_step" field.
func IsBranchingStepNEQ(v bool) predicate.PipelineStep {
	return predicate.PipelineStep(sql.FieldNEQ(FieldIsBranchingStep, v))
}

// ModelNameEQ applies the EQ predicate on the "model_name" field.
func ModelNameEQ(v string) predicate.PipelineStep {
	return predicate.PipelineStep(sql.FieldEQ(FieldModelName, v))
}

// ModelNameNEQ applies the NEQ predicate on the "model_name" field.
func ModelNameNEQ(v string) predicate.PipelineStep {
	return predicate.PipelineStep(sql.FieldNEQ(FieldModelName, v))
}

// ModelNameIn applies the In predicate on the "model_name" field.
func ModelNameIn(vs ...string) predicate.PipelineStep {
	return predicate.PipelineStep(sql.FieldIn(FieldModelName, vs...))
}

// ModelNameNotIn applies the NotIn predicate on the "model_name" field.
func ModelNameNotIn(vs ...string) predicate.PipelineStep {
	return predicate.PipelineStep(sql.FieldNotIn(FieldModelName, vs...))
}

// ModelNameGT applies the GT predicate on the "model_name" field.
func ModelNameGT(v string) predicate.PipelineStep {
	return predicate.PipelineStep(sql.FieldGT(FieldModelName, v))
}

// ModelNameGTE applies the GTE predicate on the "model_name" field.
func ModelNameGTE(v string) predicate.PipelineStep {
	return predicate.PipelineStep(sql.FieldGTE(FieldModelName, v))
}

// ModelNameLT applies the LT predicate on the "model_name" field.
func ModelNameLT(v string) predicate.PipelineStep {
	return predicate.PipelineStep(sql.FieldLT(FieldModelName, v))
}

// ModelNameLTE applies the LTE predicate on the "model_name" field.
func ModelNameLTE(v string) predicate.PipelineStep {
	return predicate.PipelineStep(sql.FieldLTE(FieldModelName, v))
}

// ModelNameContains applies the Contains predicate on the "model_name" field.
func ModelNameContains(v string) predicate.PipelineStep {
	return predicate.PipelineStep(sql.FieldContains(FieldModelName, v))
}

// ModelNameHasPrefix applies the HasPrefix predicate on the "model_name" field.
func ModelNameHasPrefix(v string) predicate.PipelineStep {
	return predicate.PipelineStep(sql.FieldHasPrefix(FieldModelName, v))
}

// ModelNameHasSuffix applies the HasSuffix predicate on the "model_name" field.
func ModelNameHasSuffix(v string) predicate.PipelineStep {
	return predicate.PipelineStep(sql.FieldHasSuffix(FieldModelName, v))
}

// ModelNameEqualFold applies the EqualFold predicate on the "model_name" field.
func ModelNameEqualFold(v string) predicate.PipelineStep {
	return predicate.PipelineStep(sql.FieldEqualFold(FieldModelName, v))
}

// ModelNameContainsFold applies the ContainsFold predicate on the "model_name" field.
func ModelNameContainsFold(v string) predicate.PipelineStep {
	return predicate.PipelineStep(sql.FieldContainsFold(FieldModelName, v))
}

// TemperatureEQ applies the EQ predicate on the "temperature" field.
func TemperatureEQ(v float64) predicate.PipelineStep {
	return predicate.PipelineStep(sql.FieldEQ(FieldTemperature, v))
}

// TemperatureNEQ applies the NEQ predicate on the "temperature" field.
func TemperatureNEQ(v float64) predicate.PipelineStep {
	return predicate.PipelineStep(sql.FieldNEQ(FieldTemperature, v))
}

// TemperatureIn applies the In predicate on the "temperature" field.
func TemperatureIn(vs ...float64) predicate.PipelineStep {
	return predicate.PipelineStep(sql.FieldIn(FieldTemperature, vs...))
}

// TemperatureNotIn applies the NotIn predicate on the "temperature" field.
func TemperatureNotIn(vs ...float64) predicate.PipelineStep {
	return predicate.PipelineStep(sql.FieldNotIn(FieldTemperature, vs...))
}

// TemperatureGT applies the GT predicate on the "temperature" field.
func TemperatureGT(v float64) predicate.PipelineStep {
	return predicate.PipelineStep(sql.FieldGT(FieldTemperature, v))
}

// TemperatureGTE applies the GTE predicate on the "temperature" field.
func TemperatureGTE(v float64) predicate.PipelineStep {
	return predicate.PipelineStep(sql.FieldGTE(FieldTemperature, v))
}

// TemperatureLT applies the LT predicate on the "temperature" field.
func TemperatureLT(v float64) predicate.PipelineStep {
	return predicate.PipelineStep(sql.FieldLT(FieldTemperature, v))
}

// TemperatureLTE applies the LTE predicate on the "temperature" field.
func TemperatureLTE(v float64) predicate.PipelineStep {
	return predicate.PipelineStep(sql.FieldLTE(FieldTemperature, v))
}

// MaxTokensEQ applies the EQ predicate on the "max_tokens" field.
func MaxTokensEQ(v int) predicate.PipelineStep {
	return predicate.PipelineStep(sql.FieldEQ(FieldMaxTokens, v))
}

// MaxTokensNEQ applies the NEQ predicate on the "max_tokens" field.
func MaxTokensNEQ(v int) predicate.PipelineStep {
	return predicate.PipelineStep(sql.FieldNEQ(FieldMaxTokens, v))
}

// MaxTokensIn applies the In predicate on the "max_tokens" field.
func MaxTokensIn(vs ...int) predicate.PipelineStep {
	return predicate.PipelineStep(sql.FieldIn(FieldMaxTokens, vs...))
}

// MaxTokensNotIn applies the NotIn predicate on the "max_tokens" field.
func MaxTokensNotIn(vs ...int) predicate.PipelineStep {
	return predicate.PipelineStep(sql.FieldNotIn(FieldMaxTokens, vs...))
}

// MaxTokensGT applies the GT predicate on the "max_tokens" field.
func MaxTokensGT(v int) predicate.PipelineStep {
	return predicate.PipelineStep(sql.FieldGT(FieldMaxTokens, v))
}

// MaxTokensGTE applies the GTE predicate on the "max_tokens" field.
func MaxTokensGTE(v int) predicate.PipelineStep {
	return predicate.PipelineStep(sql.FieldGTE(FieldMaxTokens, v))
}

// MaxTokensLT applies the LT predicate on the "max_tokens" field.
func MaxTokensLT(v int) predicate.PipelineStep {
	return predicate.PipelineStep(sql.FieldLT(FieldMaxTokens, v))
}

// MaxTokensLTE applies the LTE predicate on the "max_tokens" field.
func MaxTokensLTE(v int) predicate.PipelineStep {
	return predicate.PipelineStep(sql.FieldLTE(FieldMaxTokens, v))
}

// PromptTemplateEQ applies the EQ predicate on the "prompt_template" field.
func PromptTemplateEQ(v string) predicate.PipelineStep {
	return predicate.PipelineStep(sql.FieldEQ(FieldPromptTemplate, v))
}

// PromptTemplateNEQ applies the NEQ predicate on the "prompt_template" field.
func PromptTemplateNEQ(v string) predicate.PipelineStep {
	return predicate.PipelineStep(sql.FieldNEQ(FieldPromptTemplate, v))
}

// PromptTemplateIn applies the In predicate on the "prompt_template" field.
func PromptTemplateIn(vs ...string) predicate.PipelineStep {
	return predicate.PipelineStep(sql.FieldIn(FieldPromptTemplate, vs...))
}

// PromptTemplateNotIn applies the NotIn predicate on the "prompt_template" field.
func PromptTemplateNotIn(vs ...string) predicate.PipelineStep {
	return predicate.PipelineStep(sql.FieldNotIn(FieldPromptTemplate, vs...))
}

// PromptTemplateGT applies the GT predicate on the "prompt_template" field.
func PromptTemplateGT(v string) predicate.PipelineStep {
	return predicate.PipelineStep(sql.FieldGT(FieldPromptTemplate, v))
}

// PromptTemplateGTE applies the GTE predicate on the "prompt_template" field.
func PromptTemplateGTE(v string) predicate.PipelineStep {
	return predicate.PipelineStep(sql.FieldGTE(FieldPromptTemplate, v))
}

// PromptTemplateLT applies the LT predicate on the "prompt_template" field.
func PromptTemplateLT(v string) predicate.PipelineStep {
	return predicate.PipelineStep(sql.FieldLT(FieldPromptTemplate, v))
}

// PromptTemplateLTE applies the LTE predicate on the "prompt_template" field.
func PromptTemplateLTE(v string) predicate.PipelineStep {
	return predicate.PipelineStep(sql.FieldLTE(FieldPromptTemplate, v))
}

// PromptTemplateContains applies the Contains predicate on the "prompt_template" field.
func PromptTemplateContains(v string) predicate.PipelineStep {
	return predicate.PipelineStep(sql.FieldContains(FieldPromptTemplate, v))
}

// PromptTemplateHasPrefix applies the HasPrefix predicate on the "prompt_template" field.
func PromptTemplateHasPrefix(v string) predicate.PipelineStep {
	return predicate.PipelineStep(sql.FieldHasPrefix(FieldPromptTemplate, v))
}

// PromptTemplateHasSuffix applies the HasSuffix predicate on the "prompt_template" field.
func PromptTemplateHasSuffix(v string) predicate.PipelineStep {
	return predicate.PipelineStep(sql.FieldHasSuffix(FieldPromptTemplate, v))
}

// PromptTemplateEqualFold applies the EqualFold predicate on the "prompt_template" field.
func PromptTemplateEqualFold(v string) predicate.PipelineStep {
	return predicate.PipelineStep(sql.FieldEqualFold(FieldPromptTemplate, v))
}

// PromptTemplateContainsFold applies the ContainsFold predicate on the "prompt_template" field.
func PromptTemplateContainsFold(v string) predicate.PipelineStep {
	return predicate.PipelineStep(sql.FieldContainsFold(FieldPromptTemplate, v))
}

// SystemPromptEQ applies the EQ predicate on the "system_prompt" field.
func SystemPromptEQ(v string) predicate.PipelineStep {
	return predicate.PipelineStep(sql.FieldEQ(FieldSystemPrompt, v))
}

// SystemPromptNEQ applies the NEQ predicate on the "system_prompt" field.
func SystemPromptNEQ(v string) predicate.PipelineStep {
	return predicate.PipelineStep(sql.FieldNEQ(FieldSystemPrompt, v))
}

// SystemPromptIn applies the In predicate on the "system_prompt" field.
func SystemPromptIn(vs ...string) predicate.PipelineStep {
	return predicate.PipelineStep(sql.FieldIn(FieldSystemPrompt, vs...))
}

// SystemPromptNotIn applies the NotIn predicate on the "system_prompt" field.
func SystemPromptNotIn(vs ...string) predicate.PipelineStep {
	return predicate.PipelineStep(sql.FieldNotIn(FieldSystemPrompt, vs...))
}

// SystemPromptGT applies the GT predicate on the "system_prompt" field.
func SystemPromptGT(v string) predicate.PipelineStep {
	return predicate.PipelineStep(sql.FieldGT(FieldSystemPrompt, v))
}

// SystemPromptGTE applies the GTE predicate on the "system_prompt" field.
func SystemPromptGTE(v string) predicate.PipelineStep {
	return predicate.PipelineStep(sql.FieldGTE(FieldSystemPrompt, v))
}

// SystemPromptLT applies the LT predicate on the "system_prompt" field.
func SystemPromptLT(v string) predicate.PipelineStep {
	return predicate.PipelineStep(sql.FieldLT(FieldSystemPrompt, v))
}

// SystemPromptLTE applies the LTE predicate on the "system_prompt" field.
func SystemPromptLTE(v string) predicate.PipelineStep {
	return predicate.PipelineStep(sql.FieldLTE(FieldSystemPrompt, v))
}

// SystemPromptContains applies the Contains predicate on the "system_prompt" field.
func SystemPromptContains(v string) predicate.PipelineStep {
	return predicate.PipelineStep(sql.FieldContains(FieldSystemPrompt, v))
}

// SystemPromptHasPrefix applies the HasPrefix predicate on the "system_prompt" field.
func SystemPromptHasPrefix(v string) predicate.PipelineStep {
	return predicate.PipelineStep(sql.FieldHasPrefix(FieldSystemPrompt, v))
}

// SystemPromptHasSuffix applies the HasSuffix predicate on the "system_prompt" field.
func SystemPromptHasSuffix(v string) predicate.PipelineStep {
	return predicate.PipelineStep(sql.FieldHasSuffix(FieldSystemPrompt, v))
}

// SystemPromptIsNil applies the IsNil predicate on the "system_prompt" field.
func SystemPromptIsNil() predicate.PipelineStep {
	return predicate.PipelineStep(sql.FieldIsNull(FieldSystemPrompt))
}

// SystemPromptNotNil applies the NotNil predicate on the "system_prompt" field.
func SystemPromptNotNil() predicate.PipelineStep {
	return predicate.PipelineStep(sql.FieldNotNull(FieldSystemPrompt))
}

// SystemPromptEqualFold applies the EqualFold predicate on the "system_prompt" field.
func SystemPromptEqualFold(v string) predicate.PipelineStep {
	return predicate.PipelineStep(sql.FieldEqualFold(FieldSystemPrompt, v))
}

// SystemPromptContainsFold applies the ContainsFold predicate on the "system_prompt" field.
func SystemPromptContainsFold(v string) predicate.PipelineStep {
	return predicate.PipelineStep(sql.FieldContainsFold(FieldSystemPrompt, v))
}

// RequiredContextVariablesIsNil applies the IsNil predicate on the "required_context_variables" field.
func RequiredContextVariablesIsNil() predicate.PipelineStep {
	return predicate.PipelineStep(sql.FieldIsNull(FieldRequiredContextVariables))
}

// RequiredContextVariablesNotNil applies the NotNil predicate on the "required_context_variables" field.
func RequiredContextVariablesNotNil() predicate.PipelineStep {
	return predicate.PipelineStep(sql.FieldNotNull(FieldRequiredContextVariables))
}

// StopOnValuesIsNil applies the IsNil predicate on the "stop_on_values" field.
func StopOnValuesIsNil() predicate.PipelineStep {
	return predicate.PipelineStep(sql.FieldIsNull(FieldStopOnValues))
}

// StopOnValuesNotNil applies the NotNil predicate on the "stop_on_values" field.
func StopOnValuesNotNil() predicate.PipelineStep {
	return predicate.PipelineStep(sql.FieldNotNull(FieldStopOnValues))
}

// AllowedContinueValuesIsNil applies the IsNil predicate on the "allowed_continue_values" field.
func AllowedContinueValuesIsNil() predicate.PipelineStep {
	return predicate.PipelineStep(sql.FieldIsNull(FieldAllowedContinueValues))
}

// AllowedContinueValuesNotNil applies the NotNil predicate on the "allowed_continue_values" field.
func AllowedContinueValuesNotNil() predicate.PipelineStep {
	return predicate.PipelineStep(sql.FieldNotNull(FieldAllowedContinueValues))
}

// TerminationReasonEQ applies the EQ predicate on the "termination_reason" field.
func TerminationReasonEQ(v string) predicate.PipelineStep {
	return predicate.PipelineStep(sql.FieldEQ(FieldTerminationReason, v))
}

// TerminationReasonNEQ applies the NEQ predicate on the "termination_reason" field.
func TerminationReasonNEQ(v string) predicate.PipelineStep {
	return predicate.PipelineStep(sql.FieldNEQ(FieldTerminationReason, v))
}

// TerminationReasonIn applies the In predicate on the "termination_reason" field.
func TerminationReasonIn(vs ...string) predicate.PipelineStep {
	return predicate.PipelineStep(sql.FieldIn(FieldTerminationReason, vs...))
}

// TerminationReasonNotIn applies the NotIn predicate on the "termination_reason" field.
func TerminationReasonNotIn(vs ...string) predicate.PipelineStep {
	return predicate.PipelineStep(sql.FieldNotIn(FieldTerminationReason, vs...))
}

// TerminationReasonGT applies the GT predicate on the "termination_reason" field.
func TerminationReasonGT(v string) predicate.PipelineStep {
	return predicate.PipelineStep(sql.FieldGT(FieldTerminationReason, v))
}

// TerminationReasonGTE applies the GTE predicate on the "termination_reason" field.
func TerminationReasonGTE(v string) predicate.PipelineStep {
	return predicate.PipelineStep(sql.FieldGTE(FieldTerminationReason, v))
}

// TerminationReasonLT applies the LT predicate on the "termination_reason" field.
func TerminationReasonLT(v string) predicate.PipelineStep {
	return predicate.PipelineStep(sql.FieldLT(FieldTerminationReason, v))
}

// TerminationReasonLTE applies the LTE predicate on the "termination_reason" field.
func TerminationReasonLTE(v string) predicate.PipelineStep {
	return predicate.PipelineStep(sql.FieldLTE(FieldTerminationReason, v))
}

// TerminationReasonContains applies the Contains predicate on the "termination_reason" field.
func TerminationReasonContains(v string) predicate.PipelineStep {
	return predicate.PipelineStep(sql.FieldContains(FieldTerminationReason, v))
}

// TerminationReasonHasPrefix applies the HasPrefix predicate on the "termination_reason" field.
func TerminationReasonHasPrefix(v string) predicate.PipelineStep {
	return predicate.PipelineStep(sql.FieldHasPrefix(FieldTerminationReason, v))
}

// TerminationReasonHasSuffix applies the HasSuffix predicate on the "termination_reason" field.
func TerminationReasonHasSuffix(v string) predicate.PipelineStep {
	return predicate.PipelineStep(sql.FieldHasSuffix(FieldTerminationReason, v))
}

// TerminationReasonIsNil applies the IsNil predicate on the "termination_reason" field.
func TerminationReasonIsNil() predicate.PipelineStep {
	return predicate.PipelineStep(sql.FieldIsNull(FieldTerminationReason))
}

// TerminationReasonNotNil applies the NotNil predicate on the "termination_reason" field.
func TerminationReasonNotNil() predicate.PipelineStep {
	return predicate.PipelineStep(sql.FieldNotNull(FieldTerminationReason))
}

// TerminationReasonEqualFold applies the EqualFold predicate on the "termination_reason" field.
func TerminationReasonEqualFold(v string) predicate.PipelineStep {
	return predicate.PipelineStep(sql.FieldEqualFold(FieldTerminationReason, v))
}

// TerminationReasonContainsFold applies the ContainsFold predicate on the "termination_reason" field.
func TerminationReasonContainsFold(v string) predicate.PipelineStep {
	return predicate.PipelineStep(sql.FieldContainsFold(FieldTerminationReason, v))
}

// TerminationMessageEQ applies the EQ predicate on the "termination_message" field.
func TerminationMessageEQ(v string) predicate.PipelineStep {
	return predicate.PipelineStep(sql.FieldEQ(FieldTerminationMessage, v))
}

// TerminationMessageNEQ applies the NEQ predicate on the "termination_message" field.
func TerminationMessageNEQ(v string) predicate.PipelineStep {
	return predicate.PipelineStep(sql.FieldNEQ(FieldTerminationMessage, v))
}

// TerminationMessageIn applies the In predicate on the "termination_message" field.
func TerminationMessageIn(vs ...string) predicate.PipelineStep {
	return predicate.PipelineStep(sql.FieldIn(FieldTerminationMessage, vs...))
}

// TerminationMessageNotIn applies the NotIn predicate on the "termination_message" field.
func TerminationMessageNotIn(vs ...string) predicate.PipelineStep {
	return predicate.PipelineStep(sql.FieldNotIn(FieldTerminationMessage, vs...))
}

// TerminationMessageGT applies the GT predicate on the "termination_message" field.
func TerminationMessageGT(v string) predicate.PipelineStep {
	return predicate.PipelineStep(sql.FieldGT(FieldTerminationMessage, v))
}

// TerminationMessageGTE applies the GTE predicate on the "termination_message" field.
func TerminationMessageGTE(v string) predicate.PipelineStep {
	return predicate.PipelineStep(sql.FieldGTE(FieldTerminationMessage, v))
}

// TerminationMessageLT applies the LT predicate on the "termination_message" field.
func TerminationMessageLT(v string) predicate.PipelineStep {
	return predicate.PipelineStep(sql.FieldLT(FieldTerminationMessage, v))
}

// TerminationMessageLTE applies the LTE predicate on the "termination_message" field.
func TerminationMessageLTE(v string) predicate.PipelineStep {
	return predicate.PipelineStep(sql.FieldLTE(FieldTerminationMessage, v))
}

// TerminationMessageContains applies the Contains predicate on the "termination_message" field.
func TerminationMessageContains(v string) predicate.PipelineStep {
	return predicate.PipelineStep(sql.FieldContains(FieldTerminationMessage, v))
}

// TerminationMessageHasPrefix applies the HasPrefix predicate on the "termination_message" field.
func TerminationMessageHasPrefix(v string) predicate.PipelineStep {
	return predicate.PipelineStep(sql.FieldHasPrefix(FieldTerminationMessage, v))
}

// TerminationMessageHasSuffix applies the HasSuffix predicate on the "termination_message" field.
func TerminationMessageHasSuffix(v string) predicate.PipelineStep {
	return predicate.PipelineStep(sql.FieldHasSuffix(FieldTerminationMessage, v))
}

// TerminationMessageIsNil applies the IsNil predicate on the "termination_message" field.
func TerminationMessageIsNil() predicate.PipelineStep {
	return predicate.PipelineStep(sql.FieldIsNull(FieldTerminationMessage))
}

// TerminationMessageNotNil applies the NotNil predicate on the "termination_message" field.
func TerminationMessageNotNil() predicate.PipelineStep {
	return predicate.PipelineStep(sql.FieldNotNull(FieldTerminationMessage))
}

// TerminationMessageEqualFold applies the EqualFold predicate on the "termination_message" field.
func TerminationMessageEqualFold(v string) predicate.PipelineStep {
	return predicate.PipelineStep(sql.FieldEqualFold(FieldTerminationMessage, v))
}

// TerminationMessageContainsFold applies the ContainsFold predicate on the "termination_message" field.
func TerminationMessageContainsFold(v string) predicate.PipelineStep {
	return predicate.PipelineStep(sql.FieldContainsFold(FieldTerminationMessage, v))
}

// RetryOnFailureEQ applies the EQ predicate on the "retry_on_failure" field.
func RetryOnFailureEQ(v bool) predicate.PipelineStep {
	return predicate.PipelineStep(sql.FieldEQ(FieldRetryOnFailure, v))
}

// RetryOnFailureNEQ applies the NEQ predicate on the "retry_on_failure" field.
func RetryOnFailureNEQ(v bool) predicate.PipelineStep {
	return predicate.PipelineStep(sql.FieldNEQ(FieldRetryOnFailure, v))
}

// MaxRetriesEQ applies the EQ predicate on the "max_retries" field.
func MaxRetriesEQ(v int) predicate.PipelineStep {
	return predicate.PipelineStep(sql.FieldEQ(FieldMaxRetries, v))
}

// MaxRetriesNEQ applies the NEQ predicate on the "max_retries" field.
func MaxRetriesNEQ(v int) predicate.PipelineStep {
	return predicate.PipelineStep(sql.FieldNEQ(FieldMaxRetries, v))
}

// MaxRetriesIn applies the In predicate on the "max_retries" field.
func MaxRetriesIn(vs ...int) predicate.PipelineStep {
	return predicate.PipelineStep(sql.FieldIn(FieldMaxRetries, vs...))
}

// MaxRetriesNotIn applies the NotIn predicate on the "max_retries" field.
func MaxRetriesNotIn(vs ...int) predicate.PipelineStep {
	return predicate.PipelineStep(sql.FieldNotIn(FieldMaxRetries, vs...))
}

// MaxRetriesGT applies the GT predicate on the "max_retries" field.
func MaxRetriesGT(v int) predicate.PipelineStep {
	return predicate.PipelineStep(sql.FieldGT(FieldMaxRetries, v))
}

// MaxRetriesGTE applies the GTE predicate on the "max_retries" field.
func MaxRetriesGTE(v int) predicate.PipelineStep {
	return predicate.PipelineStep(sql.FieldGTE(FieldMaxRetries, v))
}

// MaxRetriesLT applies the LT predicate on the "max_retries" field.
func MaxRetriesLT(v int) predicate.PipelineStep {
	return predicate.PipelineStep(sql.FieldLT(FieldMaxRetries, v))
}

// MaxRetriesLTE applies the LTE predicate on the "max_retries" field.
func MaxRetriesLTE(v int) predicate.PipelineStep {
	return predicate.PipelineStep(sql.FieldLTE(FieldMaxRetries, v))
}

// UseOriginalTextEQ applies the EQ predicate on the "use_original_text" field.
func UseOriginalTextEQ(v bool) predicate.PipelineStep {
	return predicate.PipelineStep(sql.FieldEQ(FieldUseOriginalText, v))
}

// UseOriginalTextNEQ applies the NEQ predicate on the "use_original_text" field.
func UseOriginalTextNEQ(v bool) predicate.PipelineStep {
	return predicate.PipelineStep(sql.FieldNEQ(FieldUseOriginalText, v))
}

// OutputFormatEQ applies the EQ predicate on the "output_format" field.
func OutputFormatEQ(v OutputFormat) predicate.PipelineStep {
	return predicate.PipelineStep(sql.FieldEQ(FieldOutputFormat, v))
}

// OutputFormatNEQ applies the NEQ predicate on the "output_format" field.
func OutputFormatNEQ(v OutputFormat) predicate.PipelineStep {
	return predicate.PipelineStep(sql.FieldNEQ(FieldOutputFormat, v))
}

// OutputFormatIn applies the In predicate on the "output_format" field.
func OutputFormatIn(vs ...OutputFormat) predicate.PipelineStep {
	return predicate.PipelineStep(sql.FieldIn(FieldOutputFormat, vs...))
}

// OutputFormatNotIn applies the NotIn predicate on the "output_format" field.
func OutputFormatNotIn(vs ...OutputFormat) predicate.PipelineStep {
	return predicate.PipelineStep(sql.FieldNotIn(FieldOutputFormat, vs...))
}

// VersionEQ applies the EQ predicate on the "version" field.
func VersionEQ(v int) predicate.PipelineStep {
	return predicate.PipelineStep(sql.FieldEQ(FieldVersion, v))
}

// VersionNEQ applies the NEQ predicate on the "version" field.
func VersionNEQ(v int) predicate.PipelineStep {
	return predicate.PipelineStep(sql.FieldNEQ(FieldVersion, v))
}

// VersionIn applies the In predicate on the "version" field.
func VersionIn(vs ...int) predicate.PipelineStep {
	return predicate.PipelineStep(sql.FieldIn(FieldVersion, vs...))
}

// VersionNotIn applies the NotIn predicate on the "version" field.
func VersionNotIn(vs ...int) predicate.PipelineStep {
	return predicate.PipelineStep(sql.FieldNotIn(FieldVersion, vs...))
}

// VersionGT applies the GT predicate on the "version" field.
func VersionGT(v int) predicate.PipelineStep {
	return predicate.PipelineStep(sql.FieldGT(FieldVersion, v))
}

// VersionGTE applies the GTE predicate on the "version" field.
func VersionGTE(v int) predicate.PipelineStep {
	return predicate.PipelineStep(sql.FieldGTE(FieldVersion, v))
}

// VersionLT applies the LT predicate on the "version" field.
func VersionLT(v int) predicate.PipelineStep {
	return predicate.PipelineStep(sql.FieldLT(FieldVersion, v))
}

// VersionLTE applies the LTE predicate on the "version" field.
func VersionLTE(v int) predicate.PipelineStep {
	return predicate.PipelineStep(sql.FieldLTE(FieldVersion, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.PipelineStep {
	return predicate.PipelineStep(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.PipelineStep {
	return predicate.PipelineStep(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.PipelineStep {
	return predicate.PipelineStep(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.PipelineStep {
	return predicate.PipelineStep(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.PipelineStep {
	return predicate.PipelineStep(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.PipelineStep {
	return predicate.PipelineStep(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.PipelineStep {
	return predicate.PipelineStep(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.PipelineStep {
	return predicate.PipelineStep(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.PipelineStep {
	return predicate.PipelineStep(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.PipelineStep {
	return predicate.PipelineStep(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.PipelineStep {
	return predicate.PipelineStep(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.PipelineStep {
	return predicate.PipelineStep(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.PipelineStep {
	return predicate.PipelineStep(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.PipelineStep {
	return predicate.PipelineStep(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.PipelineStep {
	return predicate.PipelineStep(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.PipelineStep {
	return predicate.PipelineStep(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasDocumentClass applies the HasEdge predicate on the "document_class" edge.
func HasDocumentClass() predicate.PipelineStep {
	return predicate.PipelineStep(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, DocumentClassTable, DocumentClassColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasDocumentClassWith applies the HasEdge predicate on the "document_class" edge with a given conditions (other predicates).
func HasDocumentClassWith(preds ...predicate.DocumentClass) predicate.PipelineStep {
	return predicate.PipelineStep(func(s *sql.Selector) {
		step := newDocumentClassStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.PipelineStep) predicate.PipelineStep {
	return predicate.PipelineStep(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.PipelineStep) predicate.PipelineStep {
	return predicate.PipelineStep(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.PipelineStep) predicate.PipelineStep {
	return predicate.PipelineStep(sql.NotPredicates(p))
}
