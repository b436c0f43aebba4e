// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/klartext-health/befund/ent/aiinteractionlog"
	"github.com/klartext-health/befund/ent/job"
	"github.com/klartext-health/befund/ent/stepexecution"
)

// JobCreate is the builder for creating a Job entity.
type JobCreate struct {
	config
	mutation *JobMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetProcessingID sets the "processing_id" field.
func (_c *JobCreate) SetProcessingID(v string) *JobCreate {
	_c.mutation.SetProcessingID(v)
	return _c
}

// SetFilename sets the "filename" field.
func (_c *JobCreate) SetFilename(v string) *JobCreate {
	_c.mutation.SetFilename(v)
	return _c
}

// SetFileType sets the "file_type" field.
func (_c *JobCreate) SetFileType(v string) *JobCreate {
	_c.mutation.SetFileType(v)
	return _c
}

// SetFileSize sets the "file_size" field.
func (_c *JobCreate) SetFileSize(v int64) *JobCreate {
	_c.mutation.SetFileSize(v)
	return _c
}

// SetFileContent sets the "file_content" field.
func (_c *JobCreate) SetFileContent(v []byte) *JobCreate {
	_c.mutation.SetFileContent(v)
	return _c
}

// SetFileHash sets the "file_hash" field.
func (_c *JobCreate) SetFileHash(v string) *JobCreate {
	_c.mutation.SetFileHash(v)
	return _c
}

// SetNillableFileHash sets the "file_hash" field if the given value is not nil.
func (_c *JobCreate) SetNillableFileHash(v *string) *JobCreate {
	if v != nil {
		_c.SetFileHash(*v)
	}
	return _c
}

// SetPipelineConfig sets the "pipeline_config" field.
func (_c *JobCreate) SetPipelineConfig(v map[string]interface{}) *JobCreate {
	_c.mutation.SetPipelineConfig(v)
	return _c
}

// SetOcrConfig sets the "ocr_config" field.
func (_c *JobCreate) SetOcrConfig(v map[string]interface{}) *JobCreate {
	_c.mutation.SetOcrConfig(v)
	return _c
}

// SetTargetLanguage sets the "target_language" field.
func (_c *JobCreate) SetTargetLanguage(v string) *JobCreate {
	_c.mutation.SetTargetLanguage(v)
	return _c
}

// SetNillableTargetLanguage sets the "target_language" field if the given value is not nil.
func (_c *JobCreate) SetNillableTargetLanguage(v *string) *JobCreate {
	if v != nil {
		_c.SetTargetLanguage(*v)
	}
	return _c
}

// SetDocumentClass sets the "document_class" field.
func (_c *JobCreate) SetDocumentClass(v string) *JobCreate {
	_c.mutation.SetDocumentClass(v)
	return _c
}

// SetNillableDocumentClass sets the "document_class" field if the given value is not nil.
func (_c *JobCreate) SetNillableDocumentClass(v *string) *JobCreate {
	if v != nil {
		_c.SetDocumentClass(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *JobCreate) SetStatus(v job.Status) *JobCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *JobCreate) SetNillableStatus(v *job.Status) *JobCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetQueueLane sets the "queue_lane" field.
func (_c *JobCreate) SetQueueLane(v string) *JobCreate {
	_c.mutation.SetQueueLane(v)
	return _c
}

// SetNillableQueueLane sets the "queue_lane" field if the given value is not nil.
func (_c *JobCreate) SetNillableQueueLane(v *string) *JobCreate {
	if v != nil {
		_c.SetQueueLane(*v)
	}
	return _c
}

// SetJobAttempts sets the "job_attempts" field.
func (_c *JobCreate) SetJobAttempts(v int) *JobCreate {
	_c.mutation.SetJobAttempts(v)
	return _c
}

// SetNillableJobAttempts sets the "job_attempts" field if the given value is not nil.
func (_c *JobCreate) SetNillableJobAttempts(v *int) *JobCreate {
	if v != nil {
		_c.SetJobAttempts(*v)
	}
	return _c
}

// SetProgressPercent sets the "progress_percent" field.
func (_c *JobCreate) SetProgressPercent(v int) *JobCreate {
	_c.mutation.SetProgressPercent(v)
	return _c
}

// SetNillableProgressPercent sets the "progress_percent" field if the given value is not nil.
func (_c *JobCreate) SetNillableProgressPercent(v *int) *JobCreate {
	if v != nil {
		_c.SetProgressPercent(*v)
	}
	return _c
}

// SetCurrentStep sets the "current_step" field.
func (_c *JobCreate) SetCurrentStep(v string) *JobCreate {
	_c.mutation.SetCurrentStep(v)
	return _c
}

// SetNillableCurrentStep sets the "current_step" field if the given value is not nil.
func (_c *JobCreate) SetNillableCurrentStep(v *string) *JobCreate {
	if v != nil {
		_c.SetCurrentStep(*v)
	}
	return _c
}

// SetOriginalText sets the "original_text" field.
func (_c *JobCreate) SetOriginalText(v []byte) *JobCreate {
	_c.mutation.SetOriginalText(v)
	return _c
}

// SetSimplifiedText sets the "simplified_text" field.
func (_c *JobCreate) SetSimplifiedText(v []byte) *JobCreate {
	_c.mutation.SetSimplifiedText(v)
	return _c
}

// SetTranslatedText sets the "translated_text" field.
func (_c *JobCreate) SetTranslatedText(v []byte) *JobCreate {
	_c.mutation.SetTranslatedText(v)
	return _c
}

// SetResultData sets the "result_data" field.
func (_c *JobCreate) SetResultData(v map[string]interface{}) *JobCreate {
	_c.mutation.SetResultData(v)
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *JobCreate) SetErrorMessage(v string) *JobCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *JobCreate) SetNillableErrorMessage(v *string) *JobCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// SetTotalTokens sets the "total_tokens" field.
func (_c *JobCreate) SetTotalTokens(v int) *JobCreate {
	_c.mutation.SetTotalTokens(v)
	return _c
}

// SetNillableTotalTokens sets the "total_tokens" field if the given value is not nil.
func (_c *JobCreate) SetNillableTotalTokens(v *int) *JobCreate {
	if v != nil {
		_c.SetTotalTokens(*v)
	}
	return _c
}

// SetTotalCost sets the "total_cost" field.
func (_c *JobCreate) SetTotalCost(v float64) *JobCreate {
	_c.mutation.SetTotalCost(v)
	return _c
}

// SetNillableTotalCost sets the "total_cost" field if the given value is not nil.
func (_c *JobCreate) SetNillableTotalCost(v *float64) *JobCreate {
	if v != nil {
		_c.SetTotalCost(*v)
	}
	return _c
}

// SetPiiDegraded sets the "pii_degraded" field.
func (_c *JobCreate) SetPiiDegraded(v bool) *JobCreate {
	_c.mutation.SetPiiDegraded(v)
	return _c
}

// SetNillablePiiDegraded sets the "pii_degraded" field if the given value is not nil.
func (_c *JobCreate) SetNillablePiiDegraded(v *bool) *JobCreate {
	if v != nil {
		_c.SetPiiDegraded(*v)
	}
	return _c
}

// SetTenant sets the "tenant" field.
func (_c *JobCreate) SetTenant(v string) *JobCreate {
	_c.mutation.SetTenant(v)
	return _c
}

// SetNillableTenant sets the "tenant" field if the given value is not nil.
func (_c *JobCreate) SetNillableTenant(v *string) *JobCreate {
	if v != nil {
		_c.SetTenant(*v)
	}
	return _c
}

// SetSubmittedBy sets the "submitted_by" field.
func (_c *JobCreate) SetSubmittedBy(v string) *JobCreate {
	_c.mutation.SetSubmittedBy(v)
	return _c
}

// SetNillableSubmittedBy sets the "submitted_by" field if the given value is not nil.
func (_c *JobCreate) SetNillableSubmittedBy(v *string) *JobCreate {
	if v != nil {
		_c.SetSubmittedBy(*v)
	}
	return _c
}

// SetWorkerID sets the "worker_id" field.
func (_c *JobCreate) SetWorkerID(v string) *JobCreate {
	_c.mutation.SetWorkerID(v)
	return _c
}

// SetNillableWorkerID sets the "worker_id" field if the given value is not nil.
func (_c *JobCreate) SetNillableWorkerID(v *string) *JobCreate {
	if v != nil {
		_c.SetWorkerID(*v)
	}
	return _c
}

// SetLastHeartbeatAt sets the "last_heartbeat_at" field.
func (_c *JobCreate) SetLastHeartbeatAt(v time.Time) *JobCreate {
	_c.mutation.SetLastHeartbeatAt(v)
	return _c
}

// SetNillableLastHeartbeatAt sets the "last_heartbeat_at" field if the given value is not nil.
func (_c *JobCreate) SetNillableLastHeartbeatAt(v *time.Time) *JobCreate {
	if v != nil {
		_c.SetLastHeartbeatAt(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *JobCreate) SetCreatedAt(v time.Time) *JobCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *JobCreate) SetNillableCreatedAt(v *time.Time) *JobCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *JobCreate) SetUpdatedAt(v time.Time) *JobCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *JobCreate) SetNillableUpdatedAt(v *time.Time) *JobCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetStartedAt sets the "started_at" field.
func (_c *JobCreate) SetStartedAt(v time.Time) *JobCreate {
	_c.mutation.SetStartedAt(v)
	return _c
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_c *JobCreate) SetNillableStartedAt(v *time.Time) *JobCreate {
	if v != nil {
		_c.SetStartedAt(*v)
	}
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *JobCreate) SetCompletedAt(v time.Time) *JobCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_c *JobCreate) SetNillableCompletedAt(v *time.Time) *JobCreate {
	if v != nil {
		_c.SetCompletedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *JobCreate) SetID(v string) *JobCreate {
	_c.mutation.SetID(v)
	return _c
}

// AddStepExecutionIDs adds the "step_executions" edge to the StepExecution entity by IDs.
func (_c *JobCreate) AddStepExecutionIDs(ids ...string) *JobCreate {
	_c.mutation.AddStepExecutionIDs(ids...)
	return _c
}

// AddStepExecutions adds the "step_executions" edges to the StepExecution entity.
func (_c *JobCreate) AddStepExecutions(v ...*StepExecution) *JobCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddStepExecutionIDs(ids...)
}

// AddAiInteractionIDs adds the "ai_interactions" edge to the AIInteractionLog entity by IDs.
func (_c *JobCreate) AddAiInteractionIDs(ids ...int) *JobCreate {
	_c.mutation.AddAiInteractionIDs(ids...)
	return _c
}

// AddAiInteractions adds the "ai_interactions" edges to the AIInteractionLog entity.
func (_c *JobCreate) AddAiInteractions(v ...*AIInteractionLog) *JobCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddAiInteractionIDs(ids...)
}

// Mutation returns the JobMutation object of the builder.
func (_c *JobCreate) Mutation() *JobMutation {
	return _c.mutation
}

// Save creates the Job in the database.
func (_c *JobCreate) Save(ctx context.Context) (*Job, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *JobCreate) SaveX(ctx context.Context) *Job {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *JobCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *JobCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *JobCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := job.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.QueueLane(); !ok {
		v := job.DefaultQueueLane
		_c.mutation.SetQueueLane(v)
	}
	if _, ok := _c.mutation.JobAttempts(); !ok {
		v := job.DefaultJobAttempts
		_c.mutation.SetJobAttempts(v)
	}
	if _, ok := _c.mutation.ProgressPercent(); !ok {
		v := job.DefaultProgressPercent
		_c.mutation.SetProgressPercent(v)
	}
	if _, ok := _c.mutation.TotalTokens(); !ok {
		v := job.DefaultTotalTokens
		_c.mutation.SetTotalTokens(v)
	}
	if _, ok := _c.mutation.TotalCost(); !ok {
		v := job.DefaultTotalCost
		_c.mutation.SetTotalCost(v)
	}
	if _, ok := _c.mutation.PiiDegraded(); !ok {
		v := job.DefaultPiiDegraded
		_c.mutation.SetPiiDegraded(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := job.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := job.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *JobCreate) check() error {
	if _, ok := _c.mutation.ProcessingID(); !ok {
		return &ValidationError{Name: "processing_id", err: errors.New(`ent: missing required field "Job.processing_id"`)}
	}
	if _, ok := _c.mutation.Filename(); !ok {
		return &ValidationError{Name: "filename", err: errors.New(`ent: missing required field "Job.filename"`)}
	}
	if _, ok := _c.mutation.FileType(); !ok {
		return &ValidationError{Name: "file_type", err: errors.New(`ent: missing required field "Job.file_type"`)}
	}
	if _, ok := _c.mutation.FileSize(); !ok {
		return &ValidationError{Name: "file_size", err: errors.New(`ent: missing required field "Job.file_size"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Job.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := job.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Job.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.QueueLane(); !ok {
		return &ValidationError{Name: "queue_lane", err: errors.New(`ent: missing required field "Job.queue_lane"`)}
	}
	if _, ok := _c.mutation.JobAttempts(); !ok {
		return &ValidationError{Name: "job_attempts", err: errors.New(`ent: missing required field "Job.job_attempts"`)}
	}
	if _, ok := _c.mutation.ProgressPercent(); !ok {
		return &ValidationError{Name: "progress_percent", err: errors.New(`ent: missing required field "Job.progress_percent"`)}
	}
	if _, ok := _c.mutation.TotalTokens(); !ok {
		return &ValidationError{Name: "total_tokens", err: errors.New(`ent: missing required field "Job.total_tokens"`)}
	}
	if _, ok := _c.mutation.TotalCost(); !ok {
		return &ValidationError{Name: "total_cost", err: errors.New(`ent: missing required field "Job.total_cost"`)}
	}
	if _, ok := _c.mutation.PiiDegraded(); !ok {
		return &ValidationError{Name: "pii_degraded", err: errors.New(`ent: missing required field "Job.pii_degraded"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Job.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Job.updated_at"`)}
	}
	return nil
}

func (_c *JobCreate) sqlSave(ctx context.Context) (*Job, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected Job.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *JobCreate) createSpec() (*Job, *sqlgraph.CreateSpec) {
	var (
		_node = &Job{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(job.Table, sqlgraph.NewFieldSpec(job.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.ProcessingID(); ok {
		_spec.SetField(job.FieldProcessingID, field.TypeString, value)
		_node.ProcessingID = value
	}
	if value, ok := _c.mutation.Filename(); ok {
		_spec.SetField(job.FieldFilename, field.TypeString, value)
		_node.Filename = value
	}
	if value, ok := _c.mutation.FileType(); ok {
		_spec.SetField(job.FieldFileType, field.TypeString, value)
		_node.FileType = value
	}
	if value, ok := _c.mutation.FileSize(); ok {
		_spec.SetField(job.FieldFileSize, field.TypeInt64, value)
		_node.FileSize = value
	}
	if value, ok := _c.mutation.FileContent(); ok {
		_spec.SetField(job.FieldFileContent, field.TypeBytes, value)
		_node.FileContent = value
	}
	if value, ok := _c.mutation.FileHash(); ok {
		_spec.SetField(job.FieldFileHash, field.TypeString, value)
		_node.FileHash = value
	}
	if value, ok := _c.mutation.PipelineConfig(); ok {
		_spec.SetField(job.FieldPipelineConfig, field.TypeJSON, value)
		_node.PipelineConfig = value
	}
	if value, ok := _c.mutation.OcrConfig(); ok {
		_spec.SetField(job.FieldOcrConfig, field.TypeJSON, value)
		_node.OcrConfig = value
	}
	if value, ok := _c.mutation.TargetLanguage(); ok {
		_spec.SetField(job.FieldTargetLanguage, field.TypeString, value)
		_node.TargetLanguage = &value
	}
	if value, ok := _c.mutation.DocumentClass(); ok {
		_spec.SetField(job.FieldDocumentClass, field.TypeString, value)
		_node.DocumentClass = &value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(job.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.QueueLane(); ok {
		_spec.SetField(job.FieldQueueLane, field.TypeString, value)
		_node.QueueLane = value
	}
	if value, ok := _c.mutation.JobAttempts(); ok {
		_spec.SetField(job.FieldJobAttempts, field.TypeInt, value)
		_node.JobAttempts = value
	}
	if value, ok := _c.mutation.ProgressPercent(); ok {
		_spec.SetField(job.FieldProgressPercent, field.TypeInt, value)
		_node.ProgressPercent = value
	}
	if value, ok := _c.mutation.CurrentStep(); ok {
		_spec.SetField(job.FieldCurrentStep, field.TypeString, value)
		_node.CurrentStep = &value
	}
	if value, ok := _c.mutation.OriginalText(); ok {
		_spec.SetField(job.FieldOriginalText, field.TypeBytes, value)
		_node.OriginalText = value
	}
	if value, ok := _c.mutation.SimplifiedText(); ok {
		_spec.SetField(job.FieldSimplifiedText, field.TypeBytes, value)
		_node.SimplifiedText = value
	}
	if value, ok := _c.mutation.TranslatedText(); ok {
		_spec.SetField(job.FieldTranslatedText, field.TypeBytes, value)
		_node.TranslatedText = value
	}
	if value, ok := _c.mutation.ResultData(); ok {
		_spec.SetField(job.FieldResultData, field.TypeJSON, value)
		_node.ResultData = value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(job.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = &value
	}
	if value, ok := _c.mutation.TotalTokens(); ok {
		_spec.SetField(job.FieldTotalTokens, field.TypeInt, value)
		_node.TotalTokens = value
	}
	if value, ok := _c.mutation.TotalCost(); ok {
		_spec.SetField(job.FieldTotalCost, field.TypeFloat64, value)
		_node.TotalCost = value
	}
	if value, ok := _c.mutation.PiiDegraded(); ok {
		_spec.SetField(job.FieldPiiDegraded, field.TypeBool, value)
		_node.PiiDegraded = value
	}
	if value, ok := _c.mutation.Tenant(); ok {
		_spec.SetField(job.FieldTenant, field.TypeString, value)
		_node.Tenant = &value
	}
	if value, ok := _c.mutation.SubmittedBy(); ok {
		_spec.SetField(job.FieldSubmittedBy, field.TypeString, value)
		_node.SubmittedBy = &value
	}
	if value, ok := _c.mutation.WorkerID(); ok {
		_spec.SetField(job.FieldWorkerID, field.TypeString, value)
		_node.WorkerID = &value
	}
	if value, ok := _c.mutation.LastHeartbeatAt(); ok {
		_spec.SetField(job.FieldLastHeartbeatAt, field.TypeTime, value)
		_node.LastHeartbeatAt = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(job.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(job.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.StartedAt(); ok {
		_spec.SetField(job.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = &value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(job.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = &value
	}
	if nodes := _c.mutation.StepExecutionsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.AiInteractionsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Job.Create().
//		SetProcessingID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.JobUpsert) {
//			SetProcessingID(v+v).
//		}).
//		Exec(ctx)
func (_c *JobCreate) OnConflict(opts ...sql.ConflictOption) *JobUpsertOne {
	_c.conflict = opts
	return &JobUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Job.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *JobCreate) OnConflictColumns(columns ...string) *JobUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &JobUpsertOne{
		create: _c,
	}
}

type (
	// JobUpsertOne is the builder for "upsert"-ing
	//  one Job node.
	JobUpsertOne struct {
		create *JobCreate
	}

	// JobUpsert is the "OnConflict" setter.
	JobUpsert struct {
		*sql.UpdateSet
	}
)

// SetFilename sets the "filename" field.
func (u *JobUpsert) SetFilename(v string) *JobUpsert {
	u.Set(job.FieldFilename, v)
	return u
}

// UpdateFilename sets the "filename" field to the value that was provided on create.
func (u *JobUpsert) UpdateFilename() *JobUpsert {
	u.SetExcluded(job.FieldFilename)
	return u
}

// SetFileType sets the "file_type" field.
func (u *JobUpsert) SetFileType(v string) *JobUpsert {
	u.Set(job.FieldFileType, v)
	return u
}

// UpdateFileType sets the "file_type" field to the value that was provided on create.
func (u *JobUpsert) UpdateFileType() *JobUpsert {
	u.SetExcluded(job.FieldFileType)
	return u
}

// SetFileSize sets the "file_size" field.
func (u *JobUpsert) SetFileSize(v int64) *JobUpsert {
	u.Set(job.FieldFileSize, v)
	return u
}

// UpdateFileSize sets the "file_size" field to the value that was provided on create.
func (u *JobUpsert) UpdateFileSize() *JobUpsert {
	u.SetExcluded(job.FieldFileSize)
	return u
}

// AddFileSize adds v to the "file_size" field.
func (u *JobUpsert) AddFileSize(v int64) *JobUpsert {
	u.Add(job.FieldFileSize, v)
	return u
}

// SetFileContent sets the "file_content" field.
func (u *JobUpsert) SetFileContent(v []byte) *JobUpsert {
	u.Set(job.FieldFileContent, v)
	return u
}

// UpdateFileContent sets the "file_content" field to the value that was provided on create.
func (u *JobUpsert) UpdateFileContent() *JobUpsert {
	u.SetExcluded(job.FieldFileContent)
	return u
}

// ClearFileContent clears the value of the "file_content" field.
func (u *JobUpsert) ClearFileContent() *JobUpsert {
	u.SetNull(job.FieldFileContent)
	return u
}

// SetFileHash sets the "file_hash" field.
func (u *JobUpsert) SetFileHash(v string) *JobUpsert {
	u.Set(job.FieldFileHash, v)
	return u
}

// UpdateFileHash sets the "file_hash" field to the value that was provided on create.
func (u *JobUpsert) UpdateFileHash() *JobUpsert {
	u.SetExcluded(job.FieldFileHash)
	return u
}

// ClearFileHash clears the value of the "file_hash" field.
func (u *JobUpsert) ClearFileHash() *JobUpsert {
	u.SetNull(job.FieldFileHash)
	return u
}

// SetPipelineConfig sets the "pipeline_config" field.
func (u *JobUpsert) SetPipelineConfig(v map[string]interface{}) *JobUpsert {
	u.Set(job.FieldPipelineConfig, v)
	return u
}

// UpdatePipelineConfig sets the "pipeline_config" field to the value that was provided on create.
func (u *JobUpsert) UpdatePipelineConfig() *JobUpsert {
	u.SetExcluded(job.FieldPipelineConfig)
	return u
}

// ClearPipelineConfig clears the value of the "pipeline_config" field.
func (u *JobUpsert) ClearPipelineConfig() *JobUpsert {
	u.SetNull(job.FieldPipelineConfig)
	return u
}

// SetOcrConfig sets the "ocr_config" field.
func (u *JobUpsert) SetOcrConfig(v map[string]interface{}) *JobUpsert {
	u.Set(job.FieldOcrConfig, v)
	return u
}

// UpdateOcrConfig sets the "ocr_config" field to the value that was provided on create.
func (u *JobUpsert) UpdateOcrConfig() *JobUpsert {
	u.SetExcluded(job.FieldOcrConfig)
	return u
}

// ClearOcrConfig clears the value of the "ocr_config" field.
func (u *JobUpsert) ClearOcrConfig() *JobUpsert {
	u.SetNull(job.FieldOcrConfig)
	return u
}

// SetTargetLanguage sets the "target_language" field.
func (u *JobUpsert) SetTargetLanguage(v string) *JobUpsert {
	u.Set(job.FieldTargetLanguage, v)
	return u
}

// UpdateTargetLanguage sets the "target_language" field to the value that was provided on create.
func (u *JobUpsert) UpdateTargetLanguage() *JobUpsert {
	u.SetExcluded(job.FieldTargetLanguage)
	return u
}

// ClearTargetLanguage clears the value of the "target_language" field.
func (u *JobUpsert) ClearTargetLanguage() *JobUpsert {
	u.SetNull(job.FieldTargetLanguage)
	return u
}

// SetDocumentClass sets the "document_class" field.
func (u *JobUpsert) SetDocumentClass(v string) *JobUpsert {
	u.Set(job.FieldDocumentClass, v)
	return u
}

// UpdateDocumentClass sets the "document_class" field to the value that was provided on create.
func (u *JobUpsert) UpdateDocumentClass() *JobUpsert {
	u.SetExcluded(job.FieldDocumentClass)
	return u
}

// ClearDocumentClass clears the value of the "document_class" field.
func (u *JobUpsert) ClearDocumentClass() *JobUpsert {
	u.SetNull(job.FieldDocumentClass)
	return u
}

// SetStatus sets the "status" field.
func (u *JobUpsert) SetStatus(v job.Status) *JobUpsert {
	u.Set(job.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *JobUpsert) UpdateStatus() *JobUpsert {
	u.SetExcluded(job.FieldStatus)
	return u
}

// SetQueueLane sets the "queue_lane" field.
func (u *JobUpsert) SetQueueLane(v string) *JobUpsert {
	u.Set(job.FieldQueueLane, v)
	return u
}

// UpdateQueueLane sets the "queue_lane" field to the value that was provided on create.
func (u *JobUpsert) UpdateQueueLane() *JobUpsert {
	u.SetExcluded(job.FieldQueueLane)
	return u
}

// SetJobAttempts sets the "job_attempts" field.
func (u *JobUpsert) SetJobAttempts(v int) *JobUpsert {
	u.Set(job.FieldJobAttempts, v)
	return u
}

// UpdateJobAttempts sets the "job_attempts" field to the value that was provided on create.
func (u *JobUpsert) UpdateJobAttempts() *JobUpsert {
	u.SetExcluded(job.FieldJobAttempts)
	return u
}

// AddJobAttempts adds v to the "job_attempts" field.
func (u *JobUpsert) AddJobAttempts(v int) *JobUpsert {
	u.Add(job.FieldJobAttempts, v)
	return u
}

// SetProgressPercent sets the "progress_percent" field.
func (u *JobUpsert) SetProgressPercent(v int) *JobUpsert {
	u.Set(job.FieldProgressPercent, v)
	return u
}

// UpdateProgressPercent sets the "progress_percent" field to the value that was provided on create.
func (u *JobUpsert) UpdateProgressPercent() *JobUpsert {
	u.SetExcluded(job.FieldProgressPercent)
	return u
}

// AddProgressPercent adds v to the "progress_percent" field.
func (u *JobUpsert) AddProgressPercent(v int) *JobUpsert {
	u.Add(job.FieldProgressPercent, v)
	return u
}

// SetCurrentStep sets the "current_step" field.
func (u *JobUpsert) SetCurrentStep(v string) *JobUpsert {
	u.Set(job.FieldCurrentStep, v)
	return u
}

// UpdateCurrentStep sets the "current_step" field to the value that was provided on create.
func (u *JobUpsert) UpdateCurrentStep() *JobUpsert {
	u.SetExcluded(job.FieldCurrentStep)
	return u
}

// ClearCurrentStep clears the value of the "current_step" field.
func (u *JobUpsert) ClearCurrentStep() *JobUpsert {
	u.SetNull(job.FieldCurrentStep)
	return u
}

// SetOriginalText sets the "original_text" field.
func (u *JobUpsert) SetOriginalText(v []byte) *JobUpsert {
	u.Set(job.FieldOriginalText, v)
	return u
}

// UpdateOriginalText sets the "original_text" field to the value that was provided on create.
func (u *JobUpsert) UpdateOriginalText() *JobUpsert {
	u.SetExcluded(job.FieldOriginalText)
	return u
}

// ClearOriginalText clears the value of the "original_text" field.
func (u *JobUpsert) ClearOriginalText() *JobUpsert {
	u.SetNull(job.FieldOriginalText)
	return u
}

// SetSimplifiedText sets the "simplified_text" field.
func (u *JobUpsert) SetSimplifiedText(v []byte) *JobUpsert {
	u.Set(job.FieldSimplifiedText, v)
	return u
}

// UpdateSimplifiedText sets the "simplified_text" field to the value that was provided on create.
func (u *JobUpsert) UpdateSimplifiedText() *JobUpsert {
	u.SetExcluded(job.FieldSimplifiedText)
	return u
}

// ClearSimplifiedText clears the value of the "simplified_text" field.
func (u *JobUpsert) ClearSimplifiedText() *JobUpsert {
	u.SetNull(job.FieldSimplifiedText)
	return u
}

// SetTranslatedText sets the "translated_text" field.
func (u *JobUpsert) SetTranslatedText(v []byte) *JobUpsert {
	u.Set(job.FieldTranslatedText, v)
	return u
}

// UpdateTranslatedText sets the "translated_text" field to the value that was provided on create.
func (u *JobUpsert) UpdateTranslatedText() *JobUpsert {
	u.SetExcluded(job.FieldTranslatedText)
	return u
}

// ClearTranslatedText clears the value of the "translated_text" field.
func (u *JobUpsert) ClearTranslatedText() *JobUpsert {
	u.SetNull(job.FieldTranslatedText)
	return u
}

// SetResultData sets the "result_data" field.
func (u *JobUpsert) SetResultData(v map[string]interface{}) *JobUpsert {
	u.Set(job.FieldResultData, v)
	return u
}

// UpdateResultData sets the "result_data" field to the value that was provided on create.
func (u *JobUpsert) UpdateResultData() *JobUpsert {
	u.SetExcluded(job.FieldResultData)
	return u
}

// ClearResultData clears the value of the "result_data" field.
func (u *JobUpsert) ClearResultData() *JobUpsert {
	u.SetNull(job.FieldResultData)
	return u
}

// SetErrorMessage sets the "error_message" field.
func (u *JobUpsert) SetErrorMessage(v string) *JobUpsert {
	u.Set(job.FieldErrorMessage, v)
	return u
}

// UpdateErrorMessage sets the "error_message" field to the value that was provided on create.
func (u *JobUpsert) UpdateErrorMessage() *JobUpsert {
	u.SetExcluded(job.FieldErrorMessage)
	return u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (u *JobUpsert) ClearErrorMessage() *JobUpsert {
	u.SetNull(job.FieldErrorMessage)
	return u
}

// SetTotalTokens sets the "total_tokens" field.
func (u *JobUpsert) SetTotalTokens(v int) *JobUpsert {
	u.Set(job.FieldTotalTokens, v)
	return u
}

// UpdateTotalTokens sets the "total_tokens" field to the value that was provided on create.
func (u *JobUpsert) UpdateTotalTokens() *JobUpsert {
	u.SetExcluded(job.FieldTotalTokens)
	return u
}

// AddTotalTokens adds v to the "total_tokens" field.
func (u *JobUpsert) AddTotalTokens(v int) *JobUpsert {
	u.Add(job.FieldTotalTokens, v)
	return u
}

// SetTotalCost sets the "total_cost" field.
func (u *JobUpsert) SetTotalCost(v float64) *JobUpsert {
	u.Set(job.FieldTotalCost, v)
	return u
}

// UpdateTotalCost sets the "total_cost" field to the value that was provided on create.
func (u *JobUpsert) UpdateTotalCost() *JobUpsert {
	u.SetExcluded(job.FieldTotalCost)
	return u
}

// AddTotalCost adds v to the "total_cost" field.
func (u *JobUpsert) AddTotalCost(v float64) *JobUpsert {
	u.Add(job.FieldTotalCost, v)
	return u
}

// SetPiiDegraded sets the "pii_degraded" field.
func (u *JobUpsert) SetPiiDegraded(v bool) *JobUpsert {
	u.Set(job.FieldPiiDegraded, v)
	return u
}

// UpdatePiiDegraded sets the "pii_degraded" field to the value that was provided on create.
func (u *JobUpsert) UpdatePiiDegraded() *JobUpsert {
	u.SetExcluded(job.FieldPiiDegraded)
	return u
}

// SetTenant sets the "tenant" field.
func (u *JobUpsert) SetTenant(v string) *JobUpsert {
	u.Set(job.FieldTenant, v)
	return u
}

// UpdateTenant sets the "tenant" field to the value that was provided on create.
func (u *JobUpsert) UpdateTenant() *JobUpsert {
	u.SetExcluded(job.FieldTenant)
	return u
}

// ClearTenant clears the value of the "tenant" field.
func (u *JobUpsert) ClearTenant() *JobUpsert {
	u.SetNull(job.FieldTenant)
	return u
}

// SetSubmittedBy sets the "submitted_by" field.
func (u *JobUpsert) SetSubmittedBy(v string) *JobUpsert {
	u.Set(job.FieldSubmittedBy, v)
	return u
}

// UpdateSubmittedBy sets the "submitted_by" field to the value that was provided on create.
func (u *JobUpsert) UpdateSubmittedBy() *JobUpsert {
	u.SetExcluded(job.FieldSubmittedBy)
	return u
}

// ClearSubmittedBy clears the value of the "submitted_by" field.
func (u *JobUpsert) ClearSubmittedBy() *JobUpsert {
	u.SetNull(job.FieldSubmittedBy)
	return u
}

// SetWorkerID sets the "worker_id" field.
func (u *JobUpsert) SetWorkerID(v string) *JobUpsert {
	u.Set(job.FieldWorkerID, v)
	return u
}

// UpdateWorkerID sets the "worker_id" field to the value that was provided on create.
func (u *JobUpsert) UpdateWorkerID() *JobUpsert {
	u.SetExcluded(job.FieldWorkerID)
	return u
}

// ClearWorkerID clears the value of the "worker_id" field.
func (u *JobUpsert) ClearWorkerID() *JobUpsert {
	u.SetNull(job.FieldWorkerID)
	return u
}

// SetLastHeartbeatAt sets the "last_heartbeat_at" field.
func (u *JobUpsert) SetLastHeartbeatAt(v time.Time) *JobUpsert {
	u.Set(job.FieldLastHeartbeatAt, v)
	return u
}

// UpdateLastHeartbeatAt sets the "last_heartbeat_at" field to the value that was provided on create.
func (u *JobUpsert) UpdateLastHeartbeatAt() *JobUpsert {
	u.SetExcluded(job.FieldLastHeartbeatAt)
	return u
}

// ClearLastHeartbeatAt clears the value of the "last_heartbeat_at" field.
func (u *JobUpsert) ClearLastHeartbeatAt() *JobUpsert {
	u.SetNull(job.FieldLastHeartbeatAt)
	return u
}

// SetCreatedAt sets the "created_at" field.
func (u *JobUpsert) SetCreatedAt(v time.Time) *JobUpsert {
	u.Set(job.FieldCreatedAt, v)
	return u
}

// UpdateCreatedAt sets the "created_at" field to the value that was provided on create.
func (u *JobUpsert) UpdateCreatedAt() *JobUpsert {
	u.SetExcluded(job.FieldCreatedAt)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *JobUpsert) SetUpdatedAt(v time.Time) *JobUpsert {
	u.Set(job.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *JobUpsert) UpdateUpdatedAt() *JobUpsert {
	u.SetExcluded(job.FieldUpdatedAt)
	return u
}

// SetStartedAt sets the "started_at" field.
func (u *JobUpsert) SetStartedAt(v time.Time) *JobUpsert {
	u.Set(job.FieldStartedAt, v)
	return u
}

// UpdateStartedAt sets the "started_at" field to the value that was provided on create.
func (u *JobUpsert) UpdateStartedAt() *JobUpsert {
	u.SetExcluded(job.FieldStartedAt)
	return u
}

// ClearStartedAt clears the value of the "started_at" field.
func (u *JobUpsert) ClearStartedAt() *JobUpsert {
	u.SetNull(job.FieldStartedAt)
	return u
}

// SetCompletedAt sets the "completed_at" field.
func (u *JobUpsert) SetCompletedAt(v time.Time) *JobUpsert {
	u.Set(job.FieldCompletedAt, v)
	return u
}

// UpdateCompletedAt sets the "completed_at" field to the value that was provided on create.
func (u *JobUpsert) UpdateCompletedAt() *JobUpsert {
	u.SetExcluded(job.FieldCompletedAt)
	return u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (u *JobUpsert) ClearCompletedAt() *JobUpsert {
	u.SetNull(job.FieldCompletedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Job.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(job.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *JobUpsertOne) UpdateNewValues() *JobUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(job.FieldID)
		}
		if _, exists := u.create.mutation.ProcessingID(); exists {
			s.SetIgnore(job.FieldProcessingID)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Job.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *JobUpsertOne) Ignore() *JobUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *JobUpsertOne) DoNothing() *JobUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the JobCreate.OnConflict
// documentation for more info.
func (u *JobUpsertOne) Update(set func(*JobUpsert)) *JobUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&JobUpsert{UpdateSet: update})
	}))
	return u
}

// SetFilename sets the "filename" field.
func (u *JobUpsertOne) SetFilename(v string) *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.SetFilename(v)
	})
}

// UpdateFilename sets the "filename" field to the value that was provided on create.
func (u *JobUpsertOne) UpdateFilename() *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.UpdateFilename()
	})
}

// SetFileType sets the "file_type" field.
func (u *JobUpsertOne) SetFileType(v string) *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.SetFileType(v)
	})
}

// UpdateFileType sets the "file_type" field to the value that was provided on create.
func (u *JobUpsertOne) UpdateFileType() *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.UpdateFileType()
	})
}

// SetFileSize sets the "file_size" field.
func (u *JobUpsertOne) SetFileSize(v int64) *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.SetFileSize(v)
	})
}

// AddFileSize adds v to the "file_size" field.
func (u *JobUpsertOne) AddFileSize(v int64) *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.AddFileSize(v)
	})
}

// UpdateFileSize sets the "file_size" field to the value that was provided on create.
func (u *JobUpsertOne) UpdateFileSize() *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.UpdateFileSize()
	})
}

// SetFileContent sets the "file_content" field.
func (u *JobUpsertOne) SetFileContent(v []byte) *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.SetFileContent(v)
	})
}

// UpdateFileContent sets the "file_content" field to the value that was provided on create.
func (u *JobUpsertOne) UpdateFileContent() *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.UpdateFileContent()
	})
}

// ClearFileContent clears the value of the "file_content" field.
func (u *JobUpsertOne) ClearFileContent() *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.ClearFileContent()
	})
}

// SetFileHash sets the "file_hash" field.
func (u *JobUpsertOne) SetFileHash(v string) *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.SetFileHash(v)
	})
}

// UpdateFileHash sets the "file_hash" field to the value that was provided on create.
func (u *JobUpsertOne) UpdateFileHash() *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.UpdateFileHash()
	})
}

// ClearFileHash clears the value of the "file_hash" field.
func (u *JobUpsertOne) ClearFileHash() *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.ClearFileHash()
	})
}

// SetPipelineConfig sets the "pipeline_config" field.
func (u *JobUpsertOne) SetPipelineConfig(v map[string]interface{}) *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.SetPipelineConfig(v)
	})
}

// UpdatePipelineConfig sets the "pipeline_config" field to the value that was provided on create.
func (u *JobUpsertOne) UpdatePipelineConfig() *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.UpdatePipelineConfig()
	})
}

// ClearPipelineConfig clears the value of the "pipeline_config" field.
func (u *JobUpsertOne) ClearPipelineConfig() *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.ClearPipelineConfig()
	})
}

// SetOcrConfig sets the "ocr_config" field.
func (u *JobUpsertOne) SetOcrConfig(v map[string]interface{}) *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.SetOcrConfig(v)
	})
}

// UpdateOcrConfig sets the "ocr_config" field to the value that was provided on create.
func (u *JobUpsertOne) UpdateOcrConfig() *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.UpdateOcrConfig()
	})
}

// ClearOcrConfig clears the value of the "ocr_config" field.
func (u *JobUpsertOne) ClearOcrConfig() *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.ClearOcrConfig()
	})
}

// SetTargetLanguage sets the "target_language" field.
func (u *JobUpsertOne) SetTargetLanguage(v string) *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.SetTargetLanguage(v)
	})
}

// UpdateTargetLanguage sets the "target_language" field to the value that was provided on create.
func (u *JobUpsertOne) UpdateTargetLanguage() *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.UpdateTargetLanguage()
	})
}

// ClearTargetLanguage clears the value of the "target_language" field.
func (u *JobUpsertOne) ClearTargetLanguage() *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.ClearTargetLanguage()
	})
}

// SetDocumentClass sets the "document_class" field.
func (u *JobUpsertOne) SetDocumentClass(v string) *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.SetDocumentClass(v)
	})
}

// UpdateDocumentClass sets the "document_class" field to the value that was provided on create.
func (u *JobUpsertOne) UpdateDocumentClass() *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.UpdateDocumentClass()
	})
}

// ClearDocumentClass clears the value of the "document_class" field.
func (u *JobUpsertOne) ClearDocumentClass() *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.ClearDocumentClass()
	})
}

// SetStatus sets the "status" field.
func (u *JobUpsertOne) SetStatus(v job.Status) *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *JobUpsertOne) UpdateStatus() *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.UpdateStatus()
	})
}

// SetQueueLane sets the "queue_lane" field.
func (u *JobUpsertOne) SetQueueLane(v string) *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.SetQueueLane(v)
	})
}

// UpdateQueueLane sets the "queue_lane" field to the value that was provided on create.
func (u *JobUpsertOne) UpdateQueueLane() *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.UpdateQueueLane()
	})
}

// SetJobAttempts sets the "job_attempts" field.
func (u *JobUpsertOne) SetJobAttempts(v int) *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.SetJobAttempts(v)
	})
}

// AddJobAttempts adds v to the "job_attempts" field.
func (u *JobUpsertOne) AddJobAttempts(v int) *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.AddJobAttempts(v)
	})
}

// UpdateJobAttempts sets the "job_attempts" field to the value that was provided on create.
func (u *JobUpsertOne) UpdateJobAttempts() *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.UpdateJobAttempts()
	})
}

// SetProgressPercent sets the "progress_percent" field.
func (u *JobUpsertOne) SetProgressPercent(v int) *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.SetProgressPercent(v)
	})
}

// AddProgressPercent adds v to the "progress_percent" field.
func (u *JobUpsertOne) AddProgressPercent(v int) *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.AddProgressPercent(v)
	})
}

// UpdateProgressPercent sets the "progress_percent" field to the value that was provided on create.
func (u *JobUpsertOne) UpdateProgressPercent() *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.UpdateProgressPercent()
	})
}

// SetCurrentStep sets the "current_step" field.
func (u *JobUpsertOne) SetCurrentStep(v string) *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.SetCurrentStep(v)
	})
}

// UpdateCurrentStep sets the "current_step" field to the value that was provided on create.
func (u *JobUpsertOne) UpdateCurrentStep() *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.UpdateCurrentStep()
	})
}

// ClearCurrentStep clears the value of the "current_step" field.
func (u *JobUpsertOne) ClearCurrentStep() *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.ClearCurrentStep()
	})
}

// SetOriginalText sets the "original_text" field.
func (u *JobUpsertOne) SetOriginalText(v []byte) *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.SetOriginalText(v)
	})
}

// UpdateOriginalText sets the "original_text" field to the value that was provided on create.
func (u *JobUpsertOne) UpdateOriginalText() *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.UpdateOriginalText()
	})
}

// ClearOriginalText clears the value of the "original_text" field.
func (u *JobUpsertOne) ClearOriginalText() *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.ClearOriginalText()
	})
}

// SetSimplifiedText sets the "simplified_text" field.
func (u *JobUpsertOne) SetSimplifiedText(v []byte) *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.SetSimplifiedText(v)
	})
}

// UpdateSimplifiedText sets the "simplified_text" field to the value that was provided on create.
func (u *JobUpsertOne) UpdateSimplifiedText() *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.UpdateSimplifiedText()
	})
}

// ClearSimplifiedText clears the value of the "simplified_text" field.
func (u *JobUpsertOne) ClearSimplifiedText() *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.ClearSimplifiedText()
	})
}

// SetTranslatedText sets the "translated_text" field.
func (u *JobUpsertOne) SetTranslatedText(v []byte) *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.SetTranslatedText(v)
	})
}

// UpdateTranslatedText sets the "translated_text" field to the value that was provided on create.
func (u *JobUpsertOne) UpdateTranslatedText() *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.UpdateTranslatedText()
	})
}

// ClearTranslatedText clears the value of the "translated_text" field.
func (u *JobUpsertOne) ClearTranslatedText() *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.ClearTranslatedText()
	})
}

// SetResultData sets the "result_data" field.
func (u *JobUpsertOne) SetResultData(v map[string]interface{}) *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.SetResultData(v)
	})
}

// UpdateResultData sets the "result_data" field to the value that was provided on create.
func (u *JobUpsertOne) UpdateResultData() *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.UpdateResultData()
	})
}

// ClearResultData clears the value of the "result_data" field.
func (u *JobUpsertOne) ClearResultData() *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.ClearResultData()
	})
}

// SetErrorMessage sets the "error_message" field.
func (u *JobUpsertOne) SetErrorMessage(v string) *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.SetErrorMessage(v)
	})
}

// UpdateErrorMessage sets the "error_message" field to the value that was provided on create.
func (u *JobUpsertOne) UpdateErrorMessage() *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.UpdateErrorMessage()
	})
}

// ClearErrorMessage clears the value of the "error_message" field.
func (u *JobUpsertOne) ClearErrorMessage() *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.ClearErrorMessage()
	})
}

// SetTotalTokens sets the "total_tokens" field.
func (u *JobUpsertOne) SetTotalTokens(v int) *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.SetTotalTokens(v)
	})
}

// AddTotalTokens adds v to the "total_tokens" field.
func (u *JobUpsertOne) AddTotalTokens(v int) *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.AddTotalTokens(v)
	})
}

// UpdateTotalTokens sets the "total_tokens" field to the value that was provided on create.
func (u *JobUpsertOne) UpdateTotalTokens() *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.UpdateTotalTokens()
	})
}

// SetTotalCost sets the "total_cost" field.
func (u *JobUpsertOne) SetTotalCost(v float64) *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.SetTotalCost(v)
	})
}

// AddTotalCost adds v to the "total_cost" field.
func (u *JobUpsertOne) AddTotalCost(v float64) *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.AddTotalCost(v)
	})
}

// UpdateTotalCost sets the "total_cost" field to the value that was provided on create.
func (u *JobUpsertOne) UpdateTotalCost() *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.UpdateTotalCost()
	})
}

// SetPiiDegraded sets the "pii_degraded" field.
func (u *JobUpsertOne) SetPiiDegraded(v bool) *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.SetPiiDegraded(v)
	})
}

// UpdatePiiDegraded sets the "pii_degraded" field to the value that was provided on create.
func (u *JobUpsertOne) UpdatePiiDegraded() *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.UpdatePiiDegraded()
	})
}

// SetTenant sets the "tenant" field.
func (u *JobUpsertOne) SetTenant(v string) *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.SetTenant(v)
	})
}

// UpdateTenant sets the "tenant" field to the value that was provided on create.
func (u *JobUpsertOne) UpdateTenant() *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.UpdateTenant()
	})
}

// ClearTenant clears the value of the "tenant" field.
func (u *JobUpsertOne) ClearTenant() *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.ClearTenant()
	})
}

// SetSubmittedBy sets the "submitted_by" field.
func (u *JobUpsertOne) SetSubmittedBy(v string) *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.SetSubmittedBy(v)
	})
}

// UpdateSubmittedBy sets the "submitted_by" field to the value that was provided on create.
func (u *JobUpsertOne) UpdateSubmittedBy() *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.UpdateSubmittedBy()
	})
}

// ClearSubmittedBy clears the value of the "submitted_by" field.
func (u *JobUpsertOne) ClearSubmittedBy() *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.ClearSubmittedBy()
	})
}

// SetWorkerID sets the "worker_id" field.
func (u *JobUpsertOne) SetWorkerID(v string) *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.SetWorkerID(v)
	})
}

// UpdateWorkerID sets the "worker_id" field to the value that was provided on create.
func (u *JobUpsertOne) UpdateWorkerID() *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.UpdateWorkerID()
	})
}

// ClearWorkerID clears the value of the "worker_id" field.
func (u *JobUpsertOne) ClearWorkerID() *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.ClearWorkerID()
	})
}

// SetLastHeartbeatAt sets the "last_heartbeat_at" field.
func (u *JobUpsertOne) SetLastHeartbeatAt(v time.Time) *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.SetLastHeartbeatAt(v)
	})
}

// UpdateLastHeartbeatAt sets the "last_heartbeat_at" field to the value that was provided on create.
func (u *JobUpsertOne) UpdateLastHeartbeatAt() *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.UpdateLastHeartbeatAt()
	})
}

// ClearLastHeartbeatAt clears the value of the "last_heartbeat_at" field.
func (u *JobUpsertOne) ClearLastHeartbeatAt() *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.ClearLastHeartbeatAt()
	})
}

// SetCreatedAt sets the "created_at" field.
func (u *JobUpsertOne) SetCreatedAt(v time.Time) *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.SetCreatedAt(v)
	})
}

// UpdateCreatedAt sets the "created_at" field to the value that was provided on create.
func (u *JobUpsertOne) UpdateCreatedAt() *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.UpdateCreatedAt()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *JobUpsertOne) SetUpdatedAt(v time.Time) *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *JobUpsertOne) UpdateUpdatedAt() *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetStartedAt sets the "started_at" field.
func (u *JobUpsertOne) SetStartedAt(v time.Time) *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.SetStartedAt(v)
	})
}

// UpdateStartedAt sets the "started_at" field to the value that was provided on create.
func (u *JobUpsertOne) UpdateStartedAt() *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.UpdateStartedAt()
	})
}

// ClearStartedAt clears the value of the "started_at" field.
func (u *JobUpsertOne) ClearStartedAt() *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.ClearStartedAt()
	})
}

// SetCompletedAt sets the "completed_at" field.
func (u *JobUpsertOne) SetCompletedAt(v time.Time) *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.SetCompletedAt(v)
	})
}

// UpdateCompletedAt sets the "completed_at" field to the value that was provided on create.
func (u *JobUpsertOne) UpdateCompletedAt() *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.UpdateCompletedAt()
	})
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (u *JobUpsertOne) ClearCompletedAt() *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.ClearCompletedAt()
	})
}

// Exec executes the query.
func (u *JobUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for JobCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *JobUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *JobUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: JobUpsertOne.ID is not supported by MySQL driver. Use JobUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *JobUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// JobCreateBulk is the builder for creating many Job entities in bulk.
type JobCreateBulk struct {
	config
	err      error
	builders []*JobCreate
	conflict []sql.ConflictOption
}

// Save creates the Job entities in the database.
func (_c *JobCreateBulk) Save(ctx context.Context) ([]*Job, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Job, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*JobMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					spec.OnConflict = _c.conflict
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *JobCreateBulk) SaveX(ctx context.Context) []*Job {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *JobCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *JobCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Job.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.JobUpsert) {
//			SetProcessingID(v+v).
//		}).
//		Exec(ctx)
func (_c *JobCreateBulk) OnConflict(opts ...sql.ConflictOption) *JobUpsertBulk {
	_c.conflict = opts
	return &JobUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Job.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *JobCreateBulk) OnConflictColumns(columns ...string) *JobUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &JobUpsertBulk{
		create: _c,
	}
}

// JobUpsertBulk is the builder for "upsert"-ing
// a bulk of Job nodes.
type JobUpsertBulk struct {
	create *JobCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Job.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(job.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *JobUpsertBulk) UpdateNewValues() *JobUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(job.FieldID)
			}
			if _, exists := b.mutation.ProcessingID(); exists {
				s.SetIgnore(job.FieldProcessingID)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Job.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *JobUpsertBulk) Ignore() *JobUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *JobUpsertBulk) DoNothing() *JobUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the JobCreateBulk.OnConflict
// documentation for more info.
func (u *JobUpsertBulk) Update(set func(*JobUpsert)) *JobUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&JobUpsert{UpdateSet: update})
	}))
	return u
}

// SetFilename sets the "filename" field.
func (u *JobUpsertBulk) SetFilename(v string) *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.SetFilename(v)
	})
}

// UpdateFilename sets the "filename" field to the value that was provided on create.
func (u *JobUpsertBulk) UpdateFilename() *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.UpdateFilename()
	})
}

// SetFileType sets the "file_type" field.
func (u *JobUpsertBulk) SetFileType(v string) *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.SetFileType(v)
	})
}

// UpdateFileType sets the "file_type" field to the value that was provided on create.
func (u *JobUpsertBulk) UpdateFileType() *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.UpdateFileType()
	})
}

// SetFileSize sets the "file_size" field.
func (u *JobUpsertBulk) SetFileSize(v int64) *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.SetFileSize(v)
	})
}

// AddFileSize adds v to the "file_size" field.
func (u *JobUpsertBulk) AddFileSize(v int64) *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.AddFileSize(v)
	})
}

// UpdateFileSize sets the "file_size" field to the value that was provided on create.
func (u *JobUpsertBulk) UpdateFileSize() *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.UpdateFileSize()
	})
}

// SetFileContent sets the "file_content" field.
func (u *JobUpsertBulk) SetFileContent(v []byte) *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.SetFileContent(v)
	})
}

// UpdateFileContent sets the "file_content" field to the value that was provided on create.
func (u *JobUpsertBulk) UpdateFileContent() *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.UpdateFileContent()
	})
}

// ClearFileContent clears the value of the "file_content" field.
func (u *JobUpsertBulk) ClearFileContent() *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.ClearFileContent()
	})
}

// SetFileHash sets the "file_hash" field.
func (u *JobUpsertBulk) SetFileHash(v string) *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.SetFileHash(v)
	})
}

// UpdateFileHash sets the "file_hash" field to the value that was provided on create.
func (u *JobUpsertBulk) UpdateFileHash() *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.UpdateFileHash()
	})
}

// ClearFileHash clears the value of the "file_hash" field.
func (u *JobUpsertBulk) ClearFileHash() *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.ClearFileHash()
	})
}

// SetPipelineConfig sets the "pipeline_config" field.
func (u *JobUpsertBulk) SetPipelineConfig(v map[string]interface{}) *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.SetPipelineConfig(v)
	})
}

// UpdatePipelineConfig sets the "pipeline_config" field to the value that was provided on create.
func (u *JobUpsertBulk) UpdatePipelineConfig() *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.UpdatePipelineConfig()
	})
}

// ClearPipelineConfig clears the value of the "pipeline_config" field.
func (u *JobUpsertBulk) ClearPipelineConfig() *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.ClearPipelineConfig()
	})
}

// SetOcrConfig sets the "ocr_config" field.
func (u *JobUpsertBulk) SetOcrConfig(v map[string]interface{}) *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.SetOcrConfig(v)
	})
}

// UpdateOcrConfig sets the "ocr_config" field to the value that was provided on create.
func (u *JobUpsertBulk) UpdateOcrConfig() *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.UpdateOcrConfig()
	})
}

// ClearOcrConfig clears the value of the "ocr_config" field.
func (u *JobUpsertBulk) ClearOcrConfig() *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.ClearOcrConfig()
	})
}

// SetTargetLanguage sets the "target_language" field.
func (u *JobUpsertBulk) SetTargetLanguage(v string) *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.SetTargetLanguage(v)
	})
}

// UpdateTargetLanguage sets the "target_language" field to the value that was provided on create.
func (u *JobUpsertBulk) UpdateTargetLanguage() *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.UpdateTargetLanguage()
	})
}

// ClearTargetLanguage clears the value of the "target_language" field.
func (u *JobUpsertBulk) ClearTargetLanguage() *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.ClearTargetLanguage()
	})
}

// SetDocumentClass sets the "document_class" field.
func (u *JobUpsertBulk) SetDocumentClass(v string) *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.SetDocumentClass(v)
	})
}

// UpdateDocumentClass sets the "document_class" field to the value that was provided on create.
func (u *JobUpsertBulk) UpdateDocumentClass() *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.UpdateDocumentClass()
	})
}

// ClearDocumentClass clears the value of the "document_class" field.
func (u *JobUpsertBulk) ClearDocumentClass() *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.ClearDocumentClass()
	})
}

// SetStatus sets the "status" field.
func (u *JobUpsertBulk) SetStatus(v job.Status) *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *JobUpsertBulk) UpdateStatus() *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.UpdateStatus()
	})
}

// SetQueueLane sets the "queue_lane" field.
func (u *JobUpsertBulk) SetQueueLane(v string) *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.SetQueueLane(v)
	})
}

// UpdateQueueLane sets the "queue_lane" field to the value that was provided on create.
func (u *JobUpsertBulk) UpdateQueueLane() *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.UpdateQueueLane()
	})
}

// SetJobAttempts sets the "job_attempts" field.
func (u *JobUpsertBulk) SetJobAttempts(v int) *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.SetJobAttempts(v)
	})
}

// AddJobAttempts adds v to the "job_attempts" field.
func (u *JobUpsertBulk) AddJobAttempts(v int) *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.AddJobAttempts(v)
	})
}

// UpdateJobAttempts sets the "job_attempts" field to the value that was provided on create.
func (u *JobUpsertBulk) UpdateJobAttempts() *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.UpdateJobAttempts()
	})
}

// SetProgressPercent sets the "progress_percent" field.
func (u *JobUpsertBulk) SetProgressPercent(v int) *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.SetProgressPercent(v)
	})
}

// AddProgressPercent adds v to the "progress_percent" field.
func (u *JobUpsertBulk) AddProgressPercent(v int) *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.AddProgressPercent(v)
	})
}

// UpdateProgressPercent sets the "progress_percent" field to the value that was provided on create.
func (u *JobUpsertBulk) UpdateProgressPercent() *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.UpdateProgressPercent()
	})
}

// SetCurrentStep sets the "current_step" field.
func (u *JobUpsertBulk) SetCurrentStep(v string) *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.SetCurrentStep(v)
	})
}

// UpdateCurrentStep sets the "current_step" field to the value that was provided on create.
func (u *JobUpsertBulk) UpdateCurrentStep() *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.UpdateCurrentStep()
	})
}

// ClearCurrentStep clears the value of the "current_step" field.
func (u *JobUpsertBulk) ClearCurrentStep() *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.ClearCurrentStep()
	})
}

// SetOriginalText sets the "original_text" field.
func (u *JobUpsertBulk) SetOriginalText(v []byte) *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.SetOriginalText(v)
	})
}

// UpdateOriginalText sets the "original_text" field to the value that was provided on create.
func (u *JobUpsertBulk) UpdateOriginalText() *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.UpdateOriginalText()
	})
}

// ClearOriginalText clears the value of the "original_text" field.
func (u *JobUpsertBulk) ClearOriginalText() *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.ClearOriginalText()
	})
}

// SetSimplifiedText sets the "simplified_text" field.
func (u *JobUpsertBulk) SetSimplifiedText(v []byte) *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.SetSimplifiedText(v)
	})
}

// UpdateSimplifiedText sets the "simplified_text" field to the value that was provided on create.
func (u *JobUpsertBulk) UpdateSimplifiedText() *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.UpdateSimplifiedText()
	})
}

// ClearSimplifiedText clears the value of the "simplified_text" field.
func (u *JobUpsertBulk) ClearSimplifiedText() *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.ClearSimplifiedText()
	})
}

// SetTranslatedText sets the "translated_text" field.
func (u *JobUpsertBulk) SetTranslatedText(v []byte) *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.SetTranslatedText(v)
	})
}

// UpdateTranslatedText sets the "translated_text" field to the value that was provided on create.
func (u *JobUpsertBulk) UpdateTranslatedText() *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.UpdateTranslatedText()
	})
}

// ClearTranslatedText clears the value of the "translated_text" field.
func (u *JobUpsertBulk) ClearTranslatedText() *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.ClearTranslatedText()
	})
}

// SetResultData sets the "result_data" field.
func (u *JobUpsertBulk) SetResultData(v map[string]interface{}) *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.SetResultData(v)
	})
}

// UpdateResultData sets the "result_data" field to the value that was provided on create.
func (u *JobUpsertBulk) UpdateResultData() *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.UpdateResultData()
	})
}

// ClearResultData clears the value of the "result_data" field.
func (u *JobUpsertBulk) ClearResultData() *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.ClearResultData()
	})
}

// SetErrorMessage sets the "error_message" field.
func (u *JobUpsertBulk) SetErrorMessage(v string) *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.SetErrorMessage(v)
	})
}

// UpdateErrorMessage sets the "error_message" field to the value that was provided on create.
func (u *JobUpsertBulk) UpdateErrorMessage() *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.UpdateErrorMessage()
	})
}

// ClearErrorMessage clears the value of the "error_message" field.
func (u *JobUpsertBulk) ClearErrorMessage() *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.ClearErrorMessage()
	})
}

// SetTotalTokens sets the "total_tokens" field.
func (u *JobUpsertBulk) SetTotalTokens(v int) *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.SetTotalTokens(v)
	})
}

// AddTotalTokens adds v to the "total_tokens" field.
func (u *JobUpsertBulk) AddTotalTokens(v int) *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.AddTotalTokens(v)
	})
}

// UpdateTotalTokens sets the "total_tokens" field to the value that was provided on create.
func (u *JobUpsertBulk) UpdateTotalTokens() *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.UpdateTotalTokens()
	})
}

// SetTotalCost sets the "total_cost" field.
func (u *JobUpsertBulk) SetTotalCost(v float64) *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.SetTotalCost(v)
	})
}

// AddTotalCost adds v to the "total_cost" field.
func (u *JobUpsertBulk) AddTotalCost(v float64) *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.AddTotalCost(v)
	})
}

// UpdateTotalCost sets the "total_cost" field to the value that was provided on create.
func (u *JobUpsertBulk) UpdateTotalCost() *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.UpdateTotalCost()
	})
}

// SetPiiDegraded sets the "pii_degraded" field.
func (u *JobUpsertBulk) SetPiiDegraded(v bool) *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.SetPiiDegraded(v)
	})
}

// UpdatePiiDegraded sets the "pii_degraded" field to the value that was provided on create.
func (u *JobUpsertBulk) UpdatePiiDegraded() *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.UpdatePiiDegraded()
	})
}

// SetTenant sets the "tenant" field.
func (u *JobUpsertBulk) SetTenant(v string) *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.SetTenant(v)
	})
}

// UpdateTenant sets the "tenant" field to the value that was provided on create.
func (u *JobUpsertBulk) UpdateTenant() *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.UpdateTenant()
	})
}

// ClearTenant clears the value of the "tenant" field.
func (u *JobUpsertBulk) ClearTenant() *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.ClearTenant()
	})
}

// SetSubmittedBy sets the "submitted_by" field.
func (u *JobUpsertBulk) SetSubmittedBy(v string) *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.SetSubmittedBy(v)
	})
}

// UpdateSubmittedBy sets the "submitted_by" field to the value that was provided on create.
func (u *JobUpsertBulk) UpdateSubmittedBy() *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.UpdateSubmittedBy()
	})
}

// ClearSubmittedBy clears the value of the "submitted_by" field.
func (u *JobUpsertBulk) ClearSubmittedBy() *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.ClearSubmittedBy()
	})
}

// SetWorkerID sets the "worker_id" field.
func (u *JobUpsertBulk) SetWorkerID(v string) *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.SetWorkerID(v)
	})
}

// UpdateWorkerID sets the "worker_id" field to the value that was provided on create.
func (u *JobUpsertBulk) UpdateWorkerID() *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.UpdateWorkerID()
	})
}

// ClearWorkerID clears the value of the "worker_id" field.
func (u *JobUpsertBulk) ClearWorkerID() *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.ClearWorkerID()
	})
}

// SetLastHeartbeatAt sets the "last_heartbeat_at" field.
func (u *JobUpsertBulk) SetLastHeartbeatAt(v time.Time) *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.SetLastHeartbeatAt(v)
	})
}

// UpdateLastHeartbeatAt sets the "last_heartbeat_at" field to the value that was provided on create.
func (u *JobUpsertBulk) UpdateLastHeartbeatAt() *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.UpdateLastHeartbeatAt()
	})
}

// ClearLastHeartbeatAt clears the value of the "last_heartbeat_at" field.
func (u *JobUpsertBulk) ClearLastHeartbeatAt() *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.ClearLastHeartbeatAt()
	})
}

// SetCreatedAt sets the "created_at" field.
func (u *JobUpsertBulk) SetCreatedAt(v time.Time) *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.SetCreatedAt(v)
	})
}

// UpdateCreatedAt sets the "created_at" field to the value that was provided on create.
func (u *JobUpsertBulk) UpdateCreatedAt() *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.UpdateCreatedAt()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *JobUpsertBulk) SetUpdatedAt(v time.Time) *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *JobUpsertBulk) UpdateUpdatedAt() *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetStartedAt sets the "started_at" field.
func (u *JobUpsertBulk) SetStartedAt(v time.Time) *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.SetStartedAt(v)
	})
}

// UpdateStartedAt sets the "started_at" field to the value that was provided on create.
func (u *JobUpsertBulk) UpdateStartedAt() *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.UpdateStartedAt()
	})
}

// ClearStartedAt clears the value of the "started_at" field.
func (u *JobUpsertBulk) ClearStartedAt() *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.ClearStartedAt()
	})
}

// SetCompletedAt sets the "completed_at" field.
func (u *JobUpsertBulk) SetCompletedAt(v time.Time) *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.SetCompletedAt(v)
	})
}

// UpdateCompletedAt sets the "completed_at" field to the value that was provided on create.
func (u *JobUpsertBulk) UpdateCompletedAt() *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.UpdateCompletedAt()
	})
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (u *JobUpsertBulk) ClearCompletedAt() *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.ClearCompletedAt()
	})
}

// Exec executes the query.
func (u *JobUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the JobCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for JobCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *JobUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
