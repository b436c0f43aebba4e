// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AiInteractionLogsColumns holds the columns for the "ai_interaction_logs" table.
	AiInteractionLogsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "model_name", Type: field.TypeString},
		{Name: "input_tokens", Type: field.TypeInt, Default: 0},
		{Name: "output_tokens", Type: field.TypeInt, Default: 0},
		{Name: "total_tokens", Type: field.TypeInt, Default: 0},
		{Name: "cost", Type: field.TypeFloat64, Default: 0},
		{Name: "latency_ms", Type: field.TypeInt64, Default: 0},
		{Name: "success", Type: field.TypeBool},
		{Name: "error_code", Type: field.TypeString, Nullable: true},
		{Name: "estimated_tokens", Type: field.TypeBool, Default: false},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "job_id", Type: field.TypeString},
		{Name: "step_execution_id", Type: field.TypeString, Nullable: true},
	}
	// AiInteractionLogsTable holds the schema information for the "ai_interaction_logs" table.
	AiInteractionLogsTable = &schema.Table{
		Name:       "ai_interaction_logs",
		Columns:    AiInteractionLogsColumns,
		PrimaryKey: []*schema.Column{AiInteractionLogsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "ai_interaction_logs_jobs_ai_interactions",
				Columns:    []*schema.Column{AiInteractionLogsColumns[11]},
				RefColumns: []*schema.Column{JobsColumns[0]},
				OnDelete:   schema.Cascade,
			},
			{
				Symbol:     "ai_interaction_logs_step_executions_ai_interactions",
				Columns:    []*schema.Column{AiInteractionLogsColumns[12]},
				RefColumns: []*schema.Column{StepExecutionsColumns[0]},
				OnDelete:   schema.SetNull,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "aiinteractionlog_job_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{AiInteractionLogsColumns[11], AiInteractionLogsColumns[10]},
			},
			{
				Name:    "aiinteractionlog_step_execution_id",
				Unique:  false,
				Columns: []*schema.Column{AiInteractionLogsColumns[12]},
			},
		},
	}
	// DocumentClassesColumns holds the columns for the "document_classes" table.
	DocumentClassesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "class_key", Type: field.TypeString, Unique: true},
		{Name: "display_name", Type: field.TypeString},
		{Name: "enabled", Type: field.TypeBool, Default: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// DocumentClassesTable holds the schema information for the "document_classes" table.
	DocumentClassesTable = &schema.Table{
		Name:       "document_classes",
		Columns:    DocumentClassesColumns,
		PrimaryKey: []*schema.Column{DocumentClassesColumns[0]},
	}
	// FeatureFlagsColumns holds the columns for the "feature_flags" table.
	FeatureFlagsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "name", Type: field.TypeString, Unique: true},
		{Name: "enabled", Type: field.TypeBool, Default: false},
		{Name: "description", Type: field.TypeString, Nullable: true},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// FeatureFlagsTable holds the schema information for the "feature_flags" table.
	FeatureFlagsTable = &schema.Table{
		Name:       "feature_flags",
		Columns:    FeatureFlagsColumns,
		PrimaryKey: []*schema.Column{FeatureFlagsColumns[0]},
	}
	// JobsColumns holds the columns for the "jobs" table.
	JobsColumns = []*schema.Column{
		{Name: "job_id", Type: field.TypeString, Unique: true},
		{Name: "processing_id", Type: field.TypeString, Unique: true},
		{Name: "filename", Type: field.TypeString},
		{Name: "file_type", Type: field.TypeString},
		{Name: "file_size", Type: field.TypeInt64},
		{Name: "file_content", Type: field.TypeBytes, Nullable: true},
		{Name: "file_hash", Type: field.TypeString, Nullable: true},
		{Name: "pipeline_config", Type: field.TypeJSON, Nullable: true},
		{Name: "ocr_config", Type: field.TypeJSON, Nullable: true},
		{Name: "target_language", Type: field.TypeString, Nullable: true},
		{Name: "document_class", Type: field.TypeString, Nullable: true},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "queued", "running", "completed", "failed", "cancelled", "timeout", "terminated"}, Default: "pending"},
		{Name: "queue_lane", Type: field.TypeString, Default: "default"},
		{Name: "job_attempts", Type: field.TypeInt, Default: 0},
		{Name: "progress_percent", Type: field.TypeInt, Default: 0},
		{Name: "current_step", Type: field.TypeString, Nullable: true},
		{Name: "original_text", Type: field.TypeBytes, Nullable: true},
		{Name: "simplified_text", Type: field.TypeBytes, Nullable: true},
		{Name: "translated_text", Type: field.TypeBytes, Nullable: true},
		{Name: "result_data", Type: field.TypeJSON, Nullable: true},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "total_tokens", Type: field.TypeInt, Default: 0},
		{Name: "total_cost", Type: field.TypeFloat64, Default: 0},
		{Name: "pii_degraded", Type: field.TypeBool, Default: false},
		{Name: "tenant", Type: field.TypeString, Nullable: true},
		{Name: "submitted_by", Type: field.TypeString, Nullable: true},
		{Name: "worker_id", Type: field.TypeString, Nullable: true},
		{Name: "last_heartbeat_at", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "started_at", Type: field.TypeTime, Nullable: true},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
	}
	// JobsTable holds the schema information for the "jobs" table.
	JobsTable = &schema.Table{
		Name:       "jobs",
		Columns:    JobsColumns,
		PrimaryKey: []*schema.Column{JobsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "job_status",
				Unique:  false,
				Columns: []*schema.Column{JobsColumns[11]},
			},
			{
				Name:    "job_queue_lane",
				Unique:  false,
				Columns: []*schema.Column{JobsColumns[12]},
			},
			{
				Name:    "job_status_created_at",
				Unique:  false,
				Columns: []*schema.Column{JobsColumns[11], JobsColumns[28]},
			},
			{
				Name:    "job_status_last_heartbeat_at",
				Unique:  false,
				Columns: []*schema.Column{JobsColumns[11], JobsColumns[27]},
			},
			{
				Name:    "job_created_at",
				Unique:  false,
				Columns: []*schema.Column{JobsColumns[28]},
			},
		},
	}
	// ModelConfigsColumns holds the columns for the "model_configs" table.
	ModelConfigsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "name", Type: field.TypeString, Unique: true},
		{Name: "provider", Type: field.TypeString, Default: "ovh"},
		{Name: "input_price_per_m", Type: field.TypeFloat64},
		{Name: "output_price_per_m", Type: field.TypeFloat64},
		{Name: "max_tokens", Type: field.TypeInt},
		{Name: "supports_vision", Type: field.TypeBool, Default: false},
		{Name: "supports_streaming", Type: field.TypeBool, Default: false},
		{Name: "active", Type: field.TypeBool, Default: true},
		{Name: "request_timeout_secs", Type: field.TypeInt, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// ModelConfigsTable holds the schema information for the "model_configs" table.
	ModelConfigsTable = &schema.Table{
		Name:       "model_configs",
		Columns:    ModelConfigsColumns,
		PrimaryKey: []*schema.Column{ModelConfigsColumns[0]},
	}
	// OcrConfigurationsColumns holds the columns for the "ocr_configurations" table.
	OcrConfigurationsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "engine", Type: field.TypeString, Default: "remote"},
		{Name: "endpoint", Type: field.TypeString, Nullable: true},
		{Name: "language_hints", Type: field.TypeJSON, Nullable: true},
		{Name: "enabled", Type: field.TypeBool, Default: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// OcrConfigurationsTable holds the schema information for the "ocr_configurations" table.
	OcrConfigurationsTable = &schema.Table{
		Name:       "ocr_configurations",
		Columns:    OcrConfigurationsColumns,
		PrimaryKey: []*schema.Column{OcrConfigurationsColumns[0]},
	}
	// PipelineStepsColumns holds the columns for the "pipeline_steps" table.
	PipelineStepsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "name", Type: field.TypeString, Unique: true},
		{Name: "description", Type: field.TypeString, Nullable: true},
		{Name: "sort_order", Type: field.TypeInt},
		{Name: "post_branching", Type: field.TypeBool, Default: false},
		{Name: "enabled", Type: field.TypeBool, Default: true},
		{Name: "is_branching_step", Type: field.TypeBool, Default: false},
		{Name: "model_name", Type: field.TypeString},
		{Name: "temperature", Type: field.TypeFloat64, Default: 0},
		{Name: "max_tokens", Type: field.TypeInt},
		{Name: "prompt_template", Type: field.TypeString, Size: 2147483647},
		{Name: "system_prompt", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "required_context_variables", Type: field.TypeJSON, Nullable: true},
		{Name: "stop_on_values", Type: field.TypeJSON, Nullable: true},
		{Name: "allowed_continue_values", Type: field.TypeJSON, Nullable: true},
		{Name: "termination_reason", Type: field.TypeString, Nullable: true},
		{Name: "termination_message", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "retry_on_failure", Type: field.TypeBool, Default: false},
		{Name: "max_retries", Type: field.TypeInt, Default: 0},
		{Name: "use_original_text", Type: field.TypeBool, Default: false},
		{Name: "output_format", Type: field.TypeEnum, Enums: []string{"text", "markdown", "json"}, Default: "text"},
		{Name: "version", Type: field.TypeInt, Default: 1},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "document_class_id", Type: field.TypeInt, Nullable: true},
	}
	// PipelineStepsTable holds the schema information for the "pipeline_steps" table.
	PipelineStepsTable = &schema.Table{
		Name:       "pipeline_steps",
		Columns:    PipelineStepsColumns,
		PrimaryKey: []*schema.Column{PipelineStepsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "pipeline_steps_document_classes_steps",
				Columns:    []*schema.Column{PipelineStepsColumns[24]},
				RefColumns: []*schema.Column{DocumentClassesColumns[0]},
				OnDelete:   schema.SetNull,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "pipelinestep_enabled",
				Unique:  false,
				Columns: []*schema.Column{PipelineStepsColumns[5]},
			},
			{
				Name:    "pipelinestep_document_class_id_sort_order",
				Unique:  false,
				Columns: []*schema.Column{PipelineStepsColumns[24], PipelineStepsColumns[3]},
			},
		},
	}
	// StepExecutionsColumns holds the columns for the "step_executions" table.
	StepExecutionsColumns = []*schema.Column{
		{Name: "step_execution_id", Type: field.TypeString, Unique: true},
		{Name: "step_name", Type: field.TypeString},
		{Name: "step_order", Type: field.TypeInt},
		{Name: "phase_rank", Type: field.TypeInt},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "running", "succeeded", "failed", "skipped", "terminated"}, Default: "pending"},
		{Name: "started_at", Type: field.TypeTime, Nullable: true},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
		{Name: "duration_ms", Type: field.TypeInt, Nullable: true},
		{Name: "input_text", Type: field.TypeBytes, Nullable: true},
		{Name: "output_text", Type: field.TypeBytes, Nullable: true},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "model_used", Type: field.TypeString, Nullable: true},
		{Name: "input_tokens", Type: field.TypeInt, Nullable: true},
		{Name: "output_tokens", Type: field.TypeInt, Nullable: true},
		{Name: "cost", Type: field.TypeFloat64, Nullable: true},
		{Name: "attempts", Type: field.TypeInt, Default: 0},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "job_id", Type: field.TypeString},
	}
	// StepExecutionsTable holds the schema information for the "step_executions" table.
	StepExecutionsTable = &schema.Table{
		Name:       "step_executions",
		Columns:    StepExecutionsColumns,
		PrimaryKey: []*schema.Column{StepExecutionsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "step_executions_jobs_step_executions",
				Columns:    []*schema.Column{StepExecutionsColumns[17]},
				RefColumns: []*schema.Column{JobsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "stepexecution_job_id_step_order",
				Unique:  true,
				Columns: []*schema.Column{StepExecutionsColumns[17], StepExecutionsColumns[2]},
			},
			{
				Name:    "stepexecution_job_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{StepExecutionsColumns[17], StepExecutionsColumns[16]},
			},
		},
	}
	// SystemSettingsColumns holds the columns for the "system_settings" table.
	SystemSettingsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "key", Type: field.TypeString, Unique: true},
		{Name: "value", Type: field.TypeString, Size: 2147483647},
		{Name: "is_encrypted", Type: field.TypeBool, Default: false},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// SystemSettingsTable holds the schema information for the "system_settings" table.
	SystemSettingsTable = &schema.Table{
		Name:       "system_settings",
		Columns:    SystemSettingsColumns,
		PrimaryKey: []*schema.Column{SystemSettingsColumns[0]},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AiInteractionLogsTable,
		DocumentClassesTable,
		FeatureFlagsTable,
		JobsTable,
		ModelConfigsTable,
		OcrConfigurationsTable,
		PipelineStepsTable,
		StepExecutionsTable,
		SystemSettingsTable,
	}
)

func init() {
	AiInteractionLogsTable.ForeignKeys[0].RefTable = JobsTable
	AiInteractionLogsTable.ForeignKeys[1].RefTable = StepExecutionsTable
	PipelineStepsTable.ForeignKeys[0].RefTable = DocumentClassesTable
	StepExecutionsTable.ForeignKeys[0].RefTable = JobsTable
}
