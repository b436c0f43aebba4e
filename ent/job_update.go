// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/klartext-health/befund/ent/aiinteractionlog"
	"github.com/klartext-health/befund/ent/job"
	"github.com/klartext-health/befund/ent/predicate"
	"github.com/klartext-health/befund/ent/stepexecution"
)

// JobUpdate is the builder for updating Job entities.
type JobUpdate struct {
	config
	hooks    []Hook
	mutation *JobMutation
}

// Where appends a list predicates to the JobUpdate builder.
func (_u *JobUpdate) Where(ps ...predicate.Job) *JobUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetFilename sets the "filename" field.
func (_u *JobUpdate) SetFilename(v string) *JobUpdate {
	_u.mutation.SetFilename(v)
	return _u
}

// SetNillableFilename sets the "filename" field if the given value is not nil.
func (_u *JobUpdate) SetNillableFilename(v *string) *JobUpdate {
	if v != nil {
		_u.SetFilename(*v)
	}
	return _u
}

// SetFileType sets the "file_type" field.
func (_u *JobUpdate) SetFileType(v string) *JobUpdate {
	_u.mutation.SetFileType(v)
	return _u
}

// SetNillableFileType sets the "file_type" field if the given value is not nil.
func (_u *JobUpdate) SetNillableFileType(v *string) *JobUpdate {
	if v != nil {
		_u.SetFileType(*v)
	}
	return _u
}

// SetFileSize sets the "file_size" field.
func (_u *JobUpdate) SetFileSize(v int64) *JobUpdate {
	_u.mutation.ResetFileSize()
	_u.mutation.SetFileSize(v)
	return _u
}

// SetNillableFileSize sets the "file_size" field if the given value is not nil.
func (_u *JobUpdate) SetNillableFileSize(v *int64) *JobUpdate {
	if v != nil {
		_u.SetFileSize(*v)
	}
	return _u
}

// AddFileSize adds value to the "file_size" field.
func (_u *JobUpdate) AddFileSize(v int64) *JobUpdate {
	_u.mutation.AddFileSize(v)
	return _u
}

// SetFileContent sets the "file_content" field.
func (_u *JobUpdate) SetFileContent(v []byte) *JobUpdate {
	_u.mutation.SetFileContent(v)
	return _u
}

// ClearFileContent clears the value of the "file_content" field.
func (_u *JobUpdate) ClearFileContent() *JobUpdate {
	_u.mutation.ClearFileContent()
	return _u
}

// SetFileHash sets the "file_hash" field.
func (_u *JobUpdate) SetFileHash(v string) *JobUpdate {
	_u.mutation.SetFileHash(v)
	return _u
}

// SetNillableFileHash sets the "file_hash" field if the given value is not nil.
func (_u *JobUpdate) SetNillableFileHash(v *string) *JobUpdate {
	if v != nil {
		_u.SetFileHash(*v)
	}
	return _u
}

// ClearFileHash clears the value of the "file_hash" field.
func (_u *JobUpdate) ClearFileHash() *JobUpdate {
	_u.mutation.ClearFileHash()
	return _u
}

// SetPipelineConfig sets the "pipeline_config" field.
func (_u *JobUpdate) SetPipelineConfig(v map[string]interface{}) *JobUpdate {
	_u.mutation.SetPipelineConfig(v)
	return _u
}

// ClearPipelineConfig clears the value of the "pipeline_config" field.
func (_u *JobUpdate) ClearPipelineConfig() *JobUpdate {
	_u.mutation.ClearPipelineConfig()
	return _u
}

// SetOcrConfig sets the "ocr_config" field.
func (_u *JobUpdate) SetOcrConfig(v map[string]interface{}) *JobUpdate {
	_u.mutation.SetOcrConfig(v)
	return _u
}

// ClearOcrConfig clears the value of the "ocr_config" field.
func (_u *JobUpdate) ClearOcrConfig() *JobUpdate {
	_u.mutation.ClearOcrConfig()
	return _u
}

// SetTargetLanguage sets the "target_language" field.
func (_u *JobUpdate) SetTargetLanguage(v string) *JobUpdate {
	_u.mutation.SetTargetLanguage(v)
	return _u
}

// SetNillableTargetLanguage sets the "target_language" field if the given value is not nil.
func (_u *JobUpdate) SetNillableTargetLanguage(v *string) *JobUpdate {
	if v != nil {
		_u.SetTargetLanguage(*v)
	}
	return _u
}

// ClearTargetLanguage clears the value of the "target_language" field.
func (_u *JobUpdate) ClearTargetLanguage() *JobUpdate {
	_u.mutation.ClearTargetLanguage()
	return _u
}

// SetDocumentClass sets the "document_class" field.
func (_u *JobUpdate) SetDocumentClass(v string) *JobUpdate {
	_u.mutation.SetDocumentClass(v)
	return _u
}

// SetNillableDocumentClass sets the "document_class" field if the given value is not nil.
func (_u *JobUpdate) SetNillableDocumentClass(v *string) *JobUpdate {
	if v != nil {
		_u.SetDocumentClass(*v)
	}
	return _u
}

// ClearDocumentClass clears the value of the "document_class" field.
func (_u *JobUpdate) ClearDocumentClass() *JobUpdate {
	_u.mutation.ClearDocumentClass()
	return _u
}

// SetStatus sets the "status" field.
func (_u *JobUpdate) SetStatus(v job.Status) *JobUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *JobUpdate) SetNillableStatus(v *job.Status) *JobUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetQueueLane sets the "queue_lane" field.
func (_u *JobUpdate) SetQueueLane(v string) *JobUpdate {
	_u.mutation.SetQueueLane(v)
	return _u
}

// SetNillableQueueLane sets the "queue_lane" field if the given value is not nil.
func (_u *JobUpdate) SetNillableQueueLane(v *string) *JobUpdate {
	if v != nil {
		_u.SetQueueLane(*v)
	}
	return _u
}

// SetJobAttempts sets the "job_attempts" field.
func (_u *JobUpdate) SetJobAttempts(v int) *JobUpdate {
	_u.mutation.ResetJobAttempts()
	_u.mutation.SetJobAttempts(v)
	return _u
}

// SetNillableJobAttempts sets the "job_attempts" field if the given value is not nil.
func (_u *JobUpdate) SetNillableJobAttempts(v *int) *JobUpdate {
	if v != nil {
		_u.SetJobAttempts(*v)
	}
	return _u
}

// AddJobAttempts adds value to the "job_attempts" field.
func (_u *JobUpdate) AddJobAttempts(v int) *JobUpdate {
	_u.mutation.AddJobAttempts(v)
	return _u
}

// SetProgressPercent sets the "progress_percent" field.
func (_u *JobUpdate) SetProgressPercent(v int) *JobUpdate {
	_u.mutation.ResetProgressPercent()
	_u.mutation.SetProgressPercent(v)
	return _u
}

// SetNillableProgressPercent sets the "progress_percent" field if the given value is not nil.
func (_u *JobUpdate) SetNillableProgressPercent(v *int) *JobUpdate {
	if v != nil {
		_u.SetProgressPercent(*v)
	}
	return _u
}

// AddProgressPercent adds value to the "progress_percent" field.
func (_u *JobUpdate) AddProgressPercent(v int) *JobUpdate {
	_u.mutation.AddProgressPercent(v)
	return _u
}

// SetCurrentStep sets the "current_step" field.
func (_u *JobUpdate) SetCurrentStep(v string) *JobUpdate {
	_u.mutation.SetCurrentStep(v)
	return _u
}

// SetNillableCurrentStep sets the "current_step" field if the given value is not nil.
func (_u *JobUpdate) SetNillableCurrentStep(v *string) *JobUpdate {
	if v != nil {
		_u.SetCurrentStep(*v)
	}
	return _u
}

// ClearCurrentStep clears the value of the "current_step" field.
func (_u *JobUpdate) ClearCurrentStep() *JobUpdate {
	_u.mutation.ClearCurrentStep()
	return _u
}

// SetOriginalText sets the "original_text" field.
func (_u *JobUpdate) SetOriginalText(v []byte) *JobUpdate {
	_u.mutation.SetOriginalText(v)
	return _u
}

// ClearOriginalText clears the value of the "original_text" field.
func (_u *JobUpdate) ClearOriginalText() *JobUpdate {
	_u.mutation.ClearOriginalText()
	return _u
}

// SetSimplifiedText sets the "simplified_text" field.
func (_u *JobUpdate) SetSimplifiedText(v []byte) *JobUpdate {
	_u.mutation.SetSimplifiedText(v)
	return _u
}

// ClearSimplifiedText clears the value of the "simplified_text" field.
func (_u *JobUpdate) ClearSimplifiedText() *JobUpdate {
	_u.mutation.ClearSimplifiedText()
	return _u
}

// SetTranslatedText sets the "translated_text" field.
func (_u *JobUpdate) SetTranslatedText(v []byte) *JobUpdate {
	_u.mutation.SetTranslatedText(v)
	return _u
}

// ClearTranslatedText clears the value of the "translated_text" field.
func (_u *JobUpdate) ClearTranslatedText() *JobUpdate {
	_u.mutation.ClearTranslatedText()
	return _u
}

// SetResultData sets the "result_data" field.
func (_u *JobUpdate) SetResultData(v map[string]interface{}) *JobUpdate {
	_u.mutation.SetResultData(v)
	return _u
}

// ClearResultData clears the value of the "result_data" field.
func (_u *JobUpdate) ClearResultData() *JobUpdate {
	_u.mutation.ClearResultData()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *JobUpdate) SetErrorMessage(v string) *JobUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *JobUpdate) SetNillableErrorMessage(v *string) *JobUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *JobUpdate) ClearErrorMessage() *JobUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetTotalTokens sets the "total_tokens" field.
func (_u *JobUpdate) SetTotalTokens(v int) *JobUpdate {
	_u.mutation.ResetTotalTokens()
	_u.mutation.SetTotalTokens(v)
	return _u
}

// SetNillableTotalTokens sets the "total_tokens" field if the given value is not nil.
func (_u *JobUpdate) SetNillableTotalTokens(v *int) *JobUpdate {
	if v != nil {
		_u.SetTotalTokens(*v)
	}
	return _u
}

// AddTotalTokens adds value to the "total_tokens" field.
func (_u *JobUpdate) AddTotalTokens(v int) *JobUpdate {
	_u.mutation.AddTotalTokens(v)
	return _u
}

// SetTotalCost sets the "total_cost" field.
func (_u *JobUpdate) SetTotalCost(v float64) *JobUpdate {
	_u.mutation.ResetTotalCost()
	_u.mutation.SetTotalCost(v)
	return _u
}

// SetNillableTotalCost sets the "total_cost" field if the given value is not nil.
func (_u *JobUpdate) SetNillableTotalCost(v *float64) *JobUpdate {
	if v != nil {
		_u.SetTotalCost(*v)
	}
	return _u
}

// AddTotalCost adds value to the "total_cost" field.
func (_u *JobUpdate) AddTotalCost(v float64) *JobUpdate {
	_u.mutation.AddTotalCost(v)
	return _u
}

// SetPiiDegraded sets the "pii_degraded" field.
func (_u *JobUpdate) SetPiiDegraded(v bool) *JobUpdate {
	_u.mutation.SetPiiDegraded(v)
	return _u
}

// SetNillablePiiDegraded sets the "pii_degraded" field if the given value is not nil.
func (_u *JobUpdate) SetNillablePiiDegraded(v *bool) *JobUpdate {
	if v != nil {
		_u.SetPiiDegraded(*v)
	}
	return _u
}

// SetTenant sets the "tenant" field.
func (_u *JobUpdate) SetTenant(v string) *JobUpdate {
	_u.mutation.SetTenant(v)
	return _u
}

// SetNillableTenant sets the "tenant" field if the given value is not nil.
func (_u *JobUpdate) SetNillableTenant(v *string) *JobUpdate {
	if v != nil {
		_u.SetTenant(*v)
	}
	return _u
}

// ClearTenant clears the value of the "tenant" field.
func (_u *JobUpdate) ClearTenant() *JobUpdate {
	_u.mutation.ClearTenant()
	return _u
}

// SetSubmittedBy sets the "submitted_by" field.
func (_u *JobUpdate) SetSubmittedBy(v string) *JobUpdate {
	_u.mutation.SetSubmittedBy(v)
	return _u
}

// SetNillableSubmittedBy sets the "submitted_by" field if the given value is not nil.
func (_u *JobUpdate) SetNillableSubmittedBy(v *string) *JobUpdate {
	if v != nil {
		_u.SetSubmittedBy(*v)
	}
	return _u
}

// ClearSubmittedBy clears the value of the "submitted_by" field.
func (_u *JobUpdate) ClearSubmittedBy() *JobUpdate {
	_u.mutation.ClearSubmittedBy()
	return _u
}

// SetWorkerID sets the "worker_id" field.
func (_u *JobUpdate) SetWorkerID(v string) *JobUpdate {
	_u.mutation.SetWorkerID(v)
	return _u
}

// SetNillableWorkerID sets the "worker_id" field if the given value is not nil.
func (_u *JobUpdate) SetNillableWorkerID(v *string) *JobUpdate {
	if v != nil {
		_u.SetWorkerID(*v)
	}
	return _u
}

// ClearWorkerID clears the value of the "worker_id" field.
func (_u *JobUpdate) ClearWorkerID() *JobUpdate {
	_u.mutation.ClearWorkerID()
	return _u
}

// SetLastHeartbeatAt sets the "last_heartbeat_at" field.
func (_u *JobUpdate) SetLastHeartbeatAt(v time.Time) *JobUpdate {
	_u.mutation.SetLastHeartbeatAt(v)
	return _u
}

// SetNillableLastHeartbeatAt sets the "last_heartbeat_at" field if the given value is not nil.
func (_u *JobUpdate) SetNillableLastHeartbeatAt(v *time.Time) *JobUpdate {
	if v != nil {
		_u.SetLastHeartbeatAt(*v)
	}
	return _u
}

// ClearLastHeartbeatAt clears the value of the "last_heartbeat_at" field.
func (_u *JobUpdate) ClearLastHeartbeatAt() *JobUpdate {
	_u.mutation.ClearLastHeartbeatAt()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *JobUpdate) SetCreatedAt(v time.Time) *JobUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *JobUpdate) SetNillableCreatedAt(v *time.Time) *JobUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *JobUpdate) SetUpdatedAt(v time.Time) *JobUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *JobUpdate) SetStartedAt(v time.Time) *JobUpdate {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *JobUpdate) SetNillableStartedAt(v *time.Time) *JobUpdate {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *JobUpdate) ClearStartedAt() *JobUpdate {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *JobUpdate) SetCompletedAt(v time.Time) *JobUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *JobUpdate) SetNillableCompletedAt(v *time.Time) *JobUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *JobUpdate) ClearCompletedAt() *JobUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// AddStepExecutionIDs adds the "step_executions" edge to the StepExecution entity by IDs.
func (_u *JobUpdate) AddStepExecutionIDs(ids ...string) *JobUpdate {
	_u.mutation.AddStepExecutionIDs(ids...)
	return _u
}

// AddStepExecutions adds the "step_executions" edges to the StepExecution entity.
func (_u *JobUpdate) AddStepExecutions(v ...*StepExecution) *JobUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddStepExecutionIDs(ids...)
}

// AddAiInteractionIDs adds the "ai_interactions" edge to the AIInteractionLog entity by IDs.
func (_u *JobUpdate) AddAiInteractionIDs(ids ...int) *JobUpdate {
	_u.mutation.AddAiInteractionIDs(ids...)
	return _u
}

// AddAiInteractions adds the "ai_interactions" edges to the AIInteractionLog entity.
func (_u *JobUpdate) AddAiInteractions(v ...*AIInteractionLog) *JobUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddAiInteractionIDs(ids...)
}

// Mutation returns the JobMutation object of the builder.
func (_u *JobUpdate) Mutation() *JobMutation {
	return _u.mutation
}

// ClearStepExecutions clears all "step_executions" edges to the StepExecution entity.
func (_u *JobUpdate) ClearStepExecutions() *JobUpdate {
	_u.mutation.ClearStepExecutions()
	return _u
}

// RemoveStepExecutionIDs removes the "step_executions" edge to StepExecution entities by IDs.
func (_u *JobUpdate) RemoveStepExecutionIDs(ids ...string) *JobUpdate {
	_u.mutation.RemoveStepExecutionIDs(ids...)
	return _u
}

// RemoveStepExecutions removes "step_executions" edges to StepExecution entities.
func (_u *JobUpdate) RemoveStepExecutions(v ...*StepExecution) *JobUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveStepExecutionIDs(ids...)
}

// ClearAiInteractions clears all "ai_interactions" edges to the AIInteractionLog entity.
func (_u *JobUpdate) ClearAiInteractions() *JobUpdate {
	_u.mutation.ClearAiInteractions()
	return _u
}

// RemoveAiInteractionIDs removes the "ai_interactions" edge to AIInteractionLog entities by IDs.
func (_u *JobUpdate) RemoveAiInteractionIDs(ids ...int) *JobUpdate {
	_u.mutation.RemoveAiInteractionIDs(ids...)
	return _u
}

// RemoveAiInteractions removes "ai_interactions" edges to AIInteractionLog entities.
func (_u *JobUpdate) RemoveAiInteractions(v ...*AIInteractionLog) *JobUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveAiInteractionIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *JobUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *JobUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *JobUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *JobUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *JobUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := job.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *JobUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := job.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Job.status": %w`, err)}
		}
	}
	return nil
}

func (_u *JobUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(job.Table, job.Columns, sqlgraph.NewFieldSpec(job.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Filename(); ok {
		_spec.SetField(job.FieldFilename, field.TypeString, value)
	}
	if value, ok := _u.mutation.FileType(); ok {
		_spec.SetField(job.FieldFileType, field.TypeString, value)
	}
	if value, ok := _u.mutation.FileSize(); ok {
		_spec.SetField(job.FieldFileSize, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedFileSize(); ok {
		_spec.AddField(job.FieldFileSize, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.FileContent(); ok {
		_spec.SetField(job.FieldFileContent, field.TypeBytes, value)
	}
	if _u.mutation.FileContentCleared() {
		_spec.ClearField(job.FieldFileContent, field.TypeBytes)
	}
	if value, ok := _u.mutation.FileHash(); ok {
		_spec.SetField(job.FieldFileHash, field.TypeString, value)
	}
	if _u.mutation.FileHashCleared() {
		_spec.ClearField(job.FieldFileHash, field.TypeString)
	}
	if value, ok := _u.mutation.PipelineConfig(); ok {
		_spec.SetField(job.FieldPipelineConfig, field.TypeJSON, value)
	}
	if _u.mutation.PipelineConfigCleared() {
		_spec.ClearField(job.FieldPipelineConfig, field.TypeJSON)
	}
	if value, ok := _u.mutation.OcrConfig(); ok {
		_spec.SetField(job.FieldOcrConfig, field.TypeJSON, value)
	}
	if _u.mutation.OcrConfigCleared() {
		_spec.ClearField(job.FieldOcrConfig, field.TypeJSON)
	}
	if value, ok := _u.mutation.TargetLanguage(); ok {
		_spec.SetField(job.FieldTargetLanguage, field.TypeString, value)
	}
	if _u.mutation.TargetLanguageCleared() {
		_spec.ClearField(job.FieldTargetLanguage, field.TypeString)
	}
	if value, ok := _u.mutation.DocumentClass(); ok {
		_spec.SetField(job.FieldDocumentClass, field.TypeString, value)
	}
	if _u.mutation.DocumentClassCleared() {
		_spec.ClearField(job.FieldDocumentClass, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(job.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.QueueLane(); ok {
		_spec.SetField(job.FieldQueueLane, field.TypeString, value)
	}
	if value, ok := _u.mutation.JobAttempts(); ok {
		_spec.SetField(job.FieldJobAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedJobAttempts(); ok {
		_spec.AddField(job.FieldJobAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ProgressPercent(); ok {
		_spec.SetField(job.FieldProgressPercent, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedProgressPercent(); ok {
		_spec.AddField(job.FieldProgressPercent, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CurrentStep(); ok {
		_spec.SetField(job.FieldCurrentStep, field.TypeString, value)
	}
	if _u.mutation.CurrentStepCleared() {
		_spec.ClearField(job.FieldCurrentStep, field.TypeString)
	}
	if value, ok := _u.mutation.OriginalText(); ok {
		_spec.SetField(job.FieldOriginalText, field.TypeBytes, value)
	}
	if _u.mutation.OriginalTextCleared() {
		_spec.ClearField(job.FieldOriginalText, field.TypeBytes)
	}
	if value, ok := _u.mutation.SimplifiedText(); ok {
		_spec.SetField(job.FieldSimplifiedText, field.TypeBytes, value)
	}
	if _u.mutation.SimplifiedTextCleared() {
		_spec.ClearField(job.FieldSimplifiedText, field.TypeBytes)
	}
	if value, ok := _u.mutation.TranslatedText(); ok {
		_spec.SetField(job.FieldTranslatedText, field.TypeBytes, value)
	}
	if _u.mutation.TranslatedTextCleared() {
		_spec.ClearField(job.FieldTranslatedText, field.TypeBytes)
	}
	if value, ok := _u.mutation.ResultData(); ok {
		_spec.SetField(job.FieldResultData, field.TypeJSON, value)
	}
	if _u.mutation.ResultDataCleared() {
		_spec.ClearField(job.FieldResultData, field.TypeJSON)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(job.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(job.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.TotalTokens(); ok {
		_spec.SetField(job.FieldTotalTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalTokens(); ok {
		_spec.AddField(job.FieldTotalTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TotalCost(); ok {
		_spec.SetField(job.FieldTotalCost, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTotalCost(); ok {
		_spec.AddField(job.FieldTotalCost, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.PiiDegraded(); ok {
		_spec.SetField(job.FieldPiiDegraded, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Tenant(); ok {
		_spec.SetField(job.FieldTenant, field.TypeString, value)
	}
	if _u.mutation.TenantCleared() {
		_spec.ClearField(job.FieldTenant, field.TypeString)
	}
	if value, ok := _u.mutation.SubmittedBy(); ok {
		_spec.SetField(job.FieldSubmittedBy, field.TypeString, value)
	}
	if _u.mutation.SubmittedByCleared() {
		_spec.ClearField(job.FieldSubmittedBy, field.TypeString)
	}
	if value, ok := _u.mutation.WorkerID(); ok {
		_spec.SetField(job.FieldWorkerID, field.TypeString, value)
	}
	if _u.mutation.WorkerIDCleared() {
		_spec.ClearField(job.FieldWorkerID, field.TypeString)
	}
	if value, ok := _u.mutation.LastHeartbeatAt(); ok {
		_spec.SetField(job.FieldLastHeartbeatAt, field.TypeTime, value)
	}
	if _u.mutation.LastHeartbeatAtCleared() {
		_spec.ClearField(job.FieldLastHeartbeatAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(job.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(job.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(job.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(job.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(job.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(job.FieldCompletedAt, field.TypeTime)
	}
	if _u.mutation.StepExecutionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   job.StepExecutionsTable,
			Columns: []string{job.StepExecutionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(stepexecution.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedStepExecutionsIDs(); len(nodes) > 0 && !_u.mutation.StepExecutionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   job.StepExecutionsTable,
			Columns: []string{job.StepExecutionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(stepexecution.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.StepExecutionsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   job.StepExecutionsTable,
			Columns: []string{job.StepExecutionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(stepexecution.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.AiInteractionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   job.AiInteractionsTable,
			Columns: []string{job.AiInteractionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(aiinteractionlog.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedAiInteractionsIDs(); len(nodes) > 0 && !_u.mutation.AiInteractionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   job.AiInteractionsTable,
			Columns: []string{job.AiInteractionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(aiinteractionlog.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AiInteractionsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   job.AiInteractionsTable,
			Columns: []string{job.AiInteractionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(aiinteractionlog.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{job.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// JobUpdateOne is the builder for updating a single Job entity.
type JobUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *JobMutation
}

// SetFilename sets the "filename" field.
func (_u *JobUpdateOne) SetFilename(v string) *JobUpdateOne {
	_u.mutation.SetFilename(v)
	return _u
}

// SetNillableFilename sets the "filename" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillableFilename(v *string) *JobUpdateOne {
	if v != nil {
		_u.SetFilename(*v)
	}
	return _u
}

// SetFileType sets the "file_type" field.
func (_u *JobUpdateOne) SetFileType(v string) *JobUpdateOne {
	_u.mutation.SetFileType(v)
	return _u
}

// SetNillableFileType sets the "file_type" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillableFileType(v *string) *JobUpdateOne {
	if v != nil {
		_u.SetFileType(*v)
	}
	return _u
}

// SetFileSize sets the "file_size" field.
func (_u *JobUpdateOne) SetFileSize(v int64) *JobUpdateOne {
	_u.mutation.ResetFileSize()
	_u.mutation.SetFileSize(v)
	return _u
}

// SetNillableFileSize sets the "file_size" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillableFileSize(v *int64) *JobUpdateOne {
	if v != nil {
		_u.SetFileSize(*v)
	}
	return _u
}

// AddFileSize adds value to the "file_size" field.
func (_u *JobUpdateOne) AddFileSize(v int64) *JobUpdateOne {
	_u.mutation.AddFileSize(v)
	return _u
}

// SetFileContent sets the "file_content" field.
func (_u *JobUpdateOne) SetFileContent(v []byte) *JobUpdateOne {
	_u.mutation.SetFileContent(v)
	return _u
}

// ClearFileContent clears the value of the "file_content" field.
func (_u *JobUpdateOne) ClearFileContent() *JobUpdateOne {
	_u.mutation.ClearFileContent()
	return _u
}

// SetFileHash sets the "file_hash" field.
func (_u *JobUpdateOne) SetFileHash(v string) *JobUpdateOne {
	_u.mutation.SetFileHash(v)
	return _u
}

// SetNillableFileHash sets the "file_hash" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillableFileHash(v *string) *JobUpdateOne {
	if v != nil {
		_u.SetFileHash(*v)
	}
	return _u
}

// ClearFileHash clears the value of the "file_hash" field.
func (_u *JobUpdateOne) ClearFileHash() *JobUpdateOne {
	_u.mutation.ClearFileHash()
	return _u
}

// SetPipelineConfig sets the "pipeline_config" field.
func (_u *JobUpdateOne) SetPipelineConfig(v map[string]interface{}) *JobUpdateOne {
	_u.mutation.SetPipelineConfig(v)
	return _u
}

// ClearPipelineConfig clears the value of the "pipeline_config" field.
func (_u *JobUpdateOne) ClearPipelineConfig() *JobUpdateOne {
	_u.mutation.ClearPipelineConfig()
	return _u
}

// SetOcrConfig sets the "ocr_config" field.
func (_u *JobUpdateOne) SetOcrConfig(v map[string]interface{}) *JobUpdateOne {
	_u.mutation.SetOcrConfig(v)
	return _u
}

// ClearOcrConfig clears the value of the "ocr_config" field.
func (_u *JobUpdateOne) ClearOcrConfig() *JobUpdateOne {
	_u.mutation.ClearOcrConfig()
	return _u
}

// SetTargetLanguage sets the "target_language" field.
func (_u *JobUpdateOne) SetTargetLanguage(v string) *JobUpdateOne {
	_u.mutation.SetTargetLanguage(v)
	return _u
}

// SetNillableTargetLanguage sets the "target_language" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillableTargetLanguage(v *string) *JobUpdateOne {
	if v != nil {
		_u.SetTargetLanguage(*v)
	}
	return _u
}

// ClearTargetLanguage clears the value of the "target_language" field.
func (_u *JobUpdateOne) ClearTargetLanguage() *JobUpdateOne {
	_u.mutation.ClearTargetLanguage()
	return _u
}

// SetDocumentClass sets the "document_class" field.
func (_u *JobUpdateOne) SetDocumentClass(v string) *JobUpdateOne {
	_u.mutation.SetDocumentClass(v)
	return _u
}

// SetNillableDocumentClass sets the "document_class" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillableDocumentClass(v *string) *JobUpdateOne {
	if v != nil {
		_u.SetDocumentClass(*v)
	}
	return _u
}

// ClearDocumentClass clears the value of the "document_class" field.
func (_u *JobUpdateOne) ClearDocumentClass() *JobUpdateOne {
	_u.mutation.ClearDocumentClass()
	return _u
}

// SetStatus sets the "status" field.
func (_u *JobUpdateOne) SetStatus(v job.Status) *JobUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillableStatus(v *job.Status) *JobUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetQueueLane sets the "queue_lane" field.
func (_u *JobUpdateOne) SetQueueLane(v string) *JobUpdateOne {
	_u.mutation.SetQueueLane(v)
	return _u
}

// SetNillableQueueLane sets the "queue_lane" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillableQueueLane(v *string) *JobUpdateOne {
	if v != nil {
		_u.SetQueueLane(*v)
	}
	return _u
}

// SetJobAttempts sets the "job_attempts" field.
func (_u *JobUpdateOne) SetJobAttempts(v int) *JobUpdateOne {
	_u.mutation.ResetJobAttempts()
	_u.mutation.SetJobAttempts(v)
	return _u
}

// SetNillableJobAttempts sets the "job_attempts" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillableJobAttempts(v *int) *JobUpdateOne {
	if v != nil {
		_u.SetJobAttempts(*v)
	}
	return _u
}

// AddJobAttempts adds value to the "job_attempts" field.
func (_u *JobUpdateOne) AddJobAttempts(v int) *JobUpdateOne {
	_u.mutation.AddJobAttempts(v)
	return _u
}

// SetProgressPercent sets the "progress_percent" field.
func (_u *JobUpdateOne) SetProgressPercent(v int) *JobUpdateOne {
	_u.mutation.ResetProgressPercent()
	_u.mutation.SetProgressPercent(v)
	return _u
}

// SetNillableProgressPercent sets the "progress_percent" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillableProgressPercent(v *int) *JobUpdateOne {
	if v != nil {
		_u.SetProgressPercent(*v)
	}
	return _u
}

// AddProgressPercent adds value to the "progress_percent" field.
func (_u *JobUpdateOne) AddProgressPercent(v int) *JobUpdateOne {
	_u.mutation.AddProgressPercent(v)
	return _u
}

// SetCurrentStep sets the "current_step" field.
func (_u *JobUpdateOne) SetCurrentStep(v string) *JobUpdateOne {
	_u.mutation.SetCurrentStep(v)
	return _u
}

// SetNillableCurrentStep sets the "current_step" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillableCurrentStep(v *string) *JobUpdateOne {
	if v != nil {
		_u.SetCurrentStep(*v)
	}
	return _u
}

// ClearCurrentStep clears the value of the "current_step" field.
func (_u *JobUpdateOne) ClearCurrentStep() *JobUpdateOne {
	_u.mutation.ClearCurrentStep()
	return _u
}

// SetOriginalText sets the "original_text" field.
func (_u *JobUpdateOne) SetOriginalText(v []byte) *JobUpdateOne {
	_u.mutation.SetOriginalText(v)
	return _u
}

// ClearOriginalText clears the value of the "original_text" field.
func (_u *JobUpdateOne) ClearOriginalText() *JobUpdateOne {
	_u.mutation.ClearOriginalText()
	return _u
}

// SetSimplifiedText sets the "simplified_text" field.
func (_u *JobUpdateOne) SetSimplifiedText(v []byte) *JobUpdateOne {
	_u.mutation.SetSimplifiedText(v)
	return _u
}

// ClearSimplifiedText clears the value of the "simplified_text" field.
func (_u *JobUpdateOne) ClearSimplifiedText() *JobUpdateOne {
	_u.mutation.ClearSimplifiedText()
	return _u
}

// SetTranslatedText sets the "translated_text" field.
func (_u *JobUpdateOne) SetTranslatedText(v []byte) *JobUpdateOne {
	_u.mutation.SetTranslatedText(v)
	return _u
}

// ClearTranslatedText clears the value of the "translated_text" field.
func (_u *JobUpdateOne) ClearTranslatedText() *JobUpdateOne {
	_u.mutation.ClearTranslatedText()
	return _u
}

// SetResultData sets the "result_data" field.
func (_u *JobUpdateOne) SetResultData(v map[string]interface{}) *JobUpdateOne {
	_u.mutation.SetResultData(v)
	return _u
}

// ClearResultData clears the value of the "result_data" field.
func (_u *JobUpdateOne) ClearResultData() *JobUpdateOne {
	_u.mutation.ClearResultData()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *JobUpdateOne) SetErrorMessage(v string) *JobUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillableErrorMessage(v *string) *JobUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *JobUpdateOne) ClearErrorMessage() *JobUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetTotalTokens sets the "total_tokens" field.
func (_u *JobUpdateOne) SetTotalTokens(v int) *JobUpdateOne {
	_u.mutation.ResetTotalTokens()
	_u.mutation.SetTotalTokens(v)
	return _u
}

// SetNillableTotalTokens sets the "total_tokens" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillableTotalTokens(v *int) *JobUpdateOne {
	if v != nil {
		_u.SetTotalTokens(*v)
	}
	return _u
}

// AddTotalTokens adds value to the "total_tokens" field.
func (_u *JobUpdateOne) AddTotalTokens(v int) *JobUpdateOne {
	_u.mutation.AddTotalTokens(v)
	return _u
}

// SetTotalCost sets the "total_cost" field.
func (_u *JobUpdateOne) SetTotalCost(v float64) *JobUpdateOne {
	_u.mutation.ResetTotalCost()
	_u.mutation.SetTotalCost(v)
	return _u
}

// SetNillableTotalCost sets the "total_cost" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillableTotalCost(v *float64) *JobUpdateOne {
	if v != nil {
		_u.SetTotalCost(*v)
	}
	return _u
}

// AddTotalCost adds value to the "total_cost" field.
func (_u *JobUpdateOne) AddTotalCost(v float64) *JobUpdateOne {
	_u.mutation.AddTotalCost(v)
	return _u
}

// SetPiiDegraded sets the "pii_degraded" field.
func (_u *JobUpdateOne) SetPiiDegraded(v bool) *JobUpdateOne {
	_u.mutation.SetPiiDegraded(v)
	return _u
}

// SetNillablePiiDegraded sets the "pii_degraded" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillablePiiDegraded(v *bool) *JobUpdateOne {
	if v != nil {
		_u.SetPiiDegraded(*v)
	}
	return _u
}

// SetTenant sets the "tenant" field.
func (_u *JobUpdateOne) SetTenant(v string) *JobUpdateOne {
	_u.mutation.SetTenant(v)
	return _u
}

// SetNillableTenant sets the "tenant" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillableTenant(v *string) *JobUpdateOne {
	if v != nil {
		_u.SetTenant(*v)
	}
	return _u
}

// ClearTenant clears the value of the "tenant" field.
func (_u *JobUpdateOne) ClearTenant() *JobUpdateOne {
	_u.mutation.ClearTenant()
	return _u
}

// SetSubmittedBy sets the "submitted_by" field.
func (_u *JobUpdateOne) SetSubmittedBy(v string) *JobUpdateOne {
	_u.mutation.SetSubmittedBy(v)
	return _u
}

// SetNillableSubmittedBy sets the "submitted_by" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillableSubmittedBy(v *string) *JobUpdateOne {
	if v != nil {
		_u.SetSubmittedBy(*v)
	}
	return _u
}

// ClearSubmittedBy clears the value of the "submitted_by" field.
func (_u *JobUpdateOne) ClearSubmittedBy() *JobUpdateOne {
	_u.mutation.ClearSubmittedBy()
	return _u
}

// SetWorkerID sets the "worker_id" field.
func (_u *JobUpdateOne) SetWorkerID(v string) *JobUpdateOne {
	_u.mutation.SetWorkerID(v)
	return _u
}

// SetNillableWorkerID sets the "worker_id" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillableWorkerID(v *string) *JobUpdateOne {
	if v != nil {
		_u.SetWorkerID(*v)
	}
	return _u
}

// ClearWorkerID clears the value of the "worker_id" field.
func (_u *JobUpdateOne) ClearWorkerID() *JobUpdateOne {
	_u.mutation.ClearWorkerID()
	return _u
}

// SetLastHeartbeatAt sets the "last_heartbeat_at" field.
func (_u *JobUpdateOne) SetLastHeartbeatAt(v time.Time) *JobUpdateOne {
	_u.mutation.SetLastHeartbeatAt(v)
	return _u
}

// SetNillableLastHeartbeatAt sets the "last_heartbeat_at" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillableLastHeartbeatAt(v *time.Time) *JobUpdateOne {
	if v != nil {
		_u.SetLastHeartbeatAt(*v)
	}
	return _u
}

// ClearLastHeartbeatAt clears the value of the "last_heartbeat_at" field.
func (_u *JobUpdateOne) ClearLastHeartbeatAt() *JobUpdateOne {
	_u.mutation.ClearLastHeartbeatAt()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *JobUpdateOne) SetCreatedAt(v time.Time) *JobUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillableCreatedAt(v *time.Time) *JobUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *JobUpdateOne) SetUpdatedAt(v time.Time) *JobUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *JobUpdateOne) SetStartedAt(v time.Time) *JobUpdateOne {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillableStartedAt(v *time.Time) *JobUpdateOne {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *JobUpdateOne) ClearStartedAt() *JobUpdateOne {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *JobUpdateOne) SetCompletedAt(v time.Time) *JobUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillableCompletedAt(v *time.Time) *JobUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *JobUpdateOne) ClearCompletedAt() *JobUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// AddStepExecutionIDs adds the "step_executions" edge to the StepExecution entity by IDs.
func (_u *JobUpdateOne) AddStepExecutionIDs(ids ...string) *JobUpdateOne {
	_u.mutation.AddStepExecutionIDs(ids...)
	return _u
}

// AddStepExecutions adds the "step_executions" edges to the StepExecution entity.
func (_u *JobUpdateOne) AddStepExecutions(v ...*StepExecution) *JobUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddStepExecutionIDs(ids...)
}

// AddAiInteractionIDs adds the "ai_interactions" edge to the AIInteractionLog entity by IDs.
func (_u *JobUpdateOne) AddAiInteractionIDs(ids ...int) *JobUpdateOne {
	_u.mutation.AddAiInteractionIDs(ids...)
	return _u
}

// AddAiInteractions adds the "ai_interactions" edges to the AIInteractionLog entity.
func (_u *JobUpdateOne) AddAiInteractions(v ...*AIInteractionLog) *JobUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddAiInteractionIDs(ids...)
}

// Mutation returns the JobMutation object of the builder.
func (_u *JobUpdateOne) Mutation() *JobMutation {
	return _u.mutation
}

// ClearStepExecutions clears all "step_executions" edges to the StepExecution entity.
func (_u *JobUpdateOne) ClearStepExecutions() *JobUpdateOne {
	_u.mutation.ClearStepExecutions()
	return _u
}

// RemoveStepExecutionIDs removes the "step_executions" edge to StepExecution entities by IDs.
func (_u *JobUpdateOne) RemoveStepExecutionIDs(ids ...string) *JobUpdateOne {
	_u.mutation.RemoveStepExecutionIDs(ids...)
	return _u
}

// RemoveStepExecutions removes "step_executions" edges to StepExecution entities.
func (_u *JobUpdateOne) RemoveStepExecutions(v ...*StepExecution) *JobUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveStepExecutionIDs(ids...)
}

// ClearAiInteractions clears all "ai_interactions" edges to the AIInteractionLog entity.
func (_u *JobUpdateOne) ClearAiInteractions() *JobUpdateOne {
	_u.mutation.ClearAiInteractions()
	return _u
}

// RemoveAiInteractionIDs removes the "ai_interactions" edge to AIInteractionLog entities by IDs.
func (_u *JobUpdateOne) RemoveAiInteractionIDs(ids ...int) *JobUpdateOne {
	_u.mutation.RemoveAiInteractionIDs(ids...)
	return _u
}

// RemoveAiInteractions removes "ai_interactions" edges to AIInteractionLog entities.
func (_u *JobUpdateOne) RemoveAiInteractions(v ...*AIInteractionLog) *JobUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveAiInteractionIDs(ids...)
}

// Where appends a list predicates to the JobUpdate builder.
func (_u *JobUpdateOne) Where(ps ...predicate.Job) *JobUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *JobUpdateOne) Select(field string, fields ...string) *JobUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Job entity.
func (_u *JobUpdateOne) Save(ctx context.Context) (*Job, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *JobUpdateOne) SaveX(ctx context.Context) *Job {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *JobUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *JobUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *JobUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := job.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *JobUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := job.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Job.status": %w`, err)}
		}
	}
	return nil
}

func (_u *JobUpdateOne) sqlSave(ctx context.Context) (_node *Job, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(job.Table, job.Columns, sqlgraph.NewFieldSpec(job.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Job.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, job.FieldID)
		for _, f := range fields {
			if !job.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != job.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Filename(); ok {
		_spec.SetField(job.FieldFilename, field.TypeString, value)
	}
	if value, ok := _u.mutation.FileType(); ok {
		_spec.SetField(job.FieldFileType, field.TypeString, value)
	}
	if value, ok := _u.mutation.FileSize(); ok {
		_spec.SetField(job.FieldFileSize, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedFileSize(); ok {
		_spec.AddField(job.FieldFileSize, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.FileContent(); ok {
		_spec.SetField(job.FieldFileContent, field.TypeBytes, value)
	}
	if _u.mutation.FileContentCleared() {
		_spec.ClearField(job.FieldFileContent, field.TypeBytes)
	}
	if value, ok := _u.mutation.FileHash(); ok {
		_spec.SetField(job.FieldFileHash, field.TypeString, value)
	}
	if _u.mutation.FileHashCleared() {
		_spec.ClearField(job.FieldFileHash, field.TypeString)
	}
	if value, ok := _u.mutation.PipelineConfig(); ok {
		_spec.SetField(job.FieldPipelineConfig, field.TypeJSON, value)
	}
	if _u.mutation.PipelineConfigCleared() {
		_spec.ClearField(job.FieldPipelineConfig, field.TypeJSON)
	}
	if value, ok := _u.mutation.OcrConfig(); ok {
		_spec.SetField(job.FieldOcrConfig, field.TypeJSON, value)
	}
	if _u.mutation.OcrConfigCleared() {
		_spec.ClearField(job.FieldOcrConfig, field.TypeJSON)
	}
	if value, ok := _u.mutation.TargetLanguage(); ok {
		_spec.SetField(job.FieldTargetLanguage, field.TypeString, value)
	}
	if _u.mutation.TargetLanguageCleared() {
		_spec.ClearField(job.FieldTargetLanguage, field.TypeString)
	}
	if value, ok := _u.mutation.DocumentClass(); ok {
		_spec.SetField(job.FieldDocumentClass, field.TypeString, value)
	}
	if _u.mutation.DocumentClassCleared() {
		_spec.ClearField(job.FieldDocumentClass, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(job.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.QueueLane(); ok {
		_spec.SetField(job.FieldQueueLane, field.TypeString, value)
	}
	if value, ok := _u.mutation.JobAttempts(); ok {
		_spec.SetField(job.FieldJobAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedJobAttempts(); ok {
		_spec.AddField(job.FieldJobAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ProgressPercent(); ok {
		_spec.SetField(job.FieldProgressPercent, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedProgressPercent(); ok {
		_spec.AddField(job.FieldProgressPercent, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CurrentStep(); ok {
		_spec.SetField(job.FieldCurrentStep, field.TypeString, value)
	}
	if _u.mutation.CurrentStepCleared() {
		_spec.ClearField(job.FieldCurrentStep, field.TypeString)
	}
	if value, ok := _u.mutation.OriginalText(); ok {
		_spec.SetField(job.FieldOriginalText, field.TypeBytes, value)
	}
	if _u.mutation.OriginalTextCleared() {
		_spec.ClearField(job.FieldOriginalText, field.TypeBytes)
	}
	if value, ok := _u.mutation.SimplifiedText(); ok {
		_spec.SetField(job.FieldSimplifiedText, field.TypeBytes, value)
	}
	if _u.mutation.SimplifiedTextCleared() {
		_spec.ClearField(job.FieldSimplifiedText, field.TypeBytes)
	}
	if value, ok := _u.mutation.TranslatedText(); ok {
		_spec.SetField(job.FieldTranslatedText, field.TypeBytes, value)
	}
	if _u.mutation.TranslatedTextCleared() {
		_spec.ClearField(job.FieldTranslatedText, field.TypeBytes)
	}
	if value, ok := _u.mutation.ResultData(); ok {
		_spec.SetField(job.FieldResultData, field.TypeJSON, value)
	}
	if _u.mutation.ResultDataCleared() {
		_spec.ClearField(job.FieldResultData, field.TypeJSON)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(job.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(job.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.TotalTokens(); ok {
		_spec.SetField(job.FieldTotalTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalTokens(); ok {
		_spec.AddField(job.FieldTotalTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TotalCost(); ok {
		_spec.SetField(job.FieldTotalCost, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTotalCost(); ok {
		_spec.AddField(job.FieldTotalCost, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.PiiDegraded(); ok {
		_spec.SetField(job.FieldPiiDegraded, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Tenant(); ok {
		_spec.SetField(job.FieldTenant, field.TypeString, value)
	}
	if _u.mutation.TenantCleared() {
		_spec.ClearField(job.FieldTenant, field.TypeString)
	}
	if value, ok := _u.mutation.SubmittedBy(); ok {
		_spec.SetField(job.FieldSubmittedBy, field.TypeString, value)
	}
	if _u.mutation.SubmittedByCleared() {
		_spec.ClearField(job.FieldSubmittedBy, field.TypeString)
	}
	if value, ok := _u.mutation.WorkerID(); ok {
		_spec.SetField(job.FieldWorkerID, field.TypeString, value)
	}
	if _u.mutation.WorkerIDCleared() {
		_spec.ClearField(job.FieldWorkerID, field.TypeString)
	}
	if value, ok := _u.mutation.LastHeartbeatAt(); ok {
		_spec.SetField(job.FieldLastHeartbeatAt, field.TypeTime, value)
	}
	if _u.mutation.LastHeartbeatAtCleared() {
		_spec.ClearField(job.FieldLastHeartbeatAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(job.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(job.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(job.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(job.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(job.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(job.FieldCompletedAt, field.TypeTime)
	}
	if _u.mutation.StepExecutionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   job.StepExecutionsTable,
			Columns: []string{job.StepExecutionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(stepexecution.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedStepExecutionsIDs(); len(nodes) > 0 && !_u.mutation.StepExecutionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   job.StepExecutionsTable,
			Columns: []string{job.StepExecutionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(stepexecution.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.StepExecutionsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   job.StepExecutionsTable,
			Columns: []string{job.StepExecutionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(stepexecution.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.AiInteractionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   job.AiInteractionsTable,
			Columns: []string{job.AiInteractionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(aiinteractionlog.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedAiInteractionsIDs(); len(nodes) > 0 && !_u.mutation.AiInteractionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   job.AiInteractionsTable,
			Columns: []string{job.AiInteractionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(aiinteractionlog.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AiInteractionsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   job.AiInteractionsTable,
			Columns: []string{job.AiInteractionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(aiinteractionlog.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Job{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{job.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
