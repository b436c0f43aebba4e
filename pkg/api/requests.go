package api

import "encoding/json"

// ProcessTranslateRequest is the HTTP request body for POST /api/process/translate.
type ProcessTranslateRequest struct {
	ProcessingID   string          `json:"processing_id"`
	DocumentType   string          `json:"document_type,omitempty"`
	TargetLanguage string          `json:"target_language,omitempty"`
	PipelineConfig json.RawMessage `json:"pipeline_config,omitempty"`
}

// UpdateStepRequest is the HTTP request body for PATCH /api/admin/pipeline/steps/:id.
// Version must match the version the editor read; a stale edit is rejected.
type UpdateStepRequest struct {
	Version        int      `json:"version" binding:"required"`
	Description    *string  `json:"description,omitempty"`
	SortOrder      *int     `json:"sort_order,omitempty"`
	Enabled        *bool    `json:"enabled,omitempty"`
	ModelName      *string  `json:"model_name,omitempty"`
	Temperature    *float64 `json:"temperature,omitempty"`
	MaxTokens      *int     `json:"max_tokens,omitempty"`
	PromptTemplate *string  `json:"prompt_template,omitempty"`
	SystemPrompt   *string  `json:"system_prompt,omitempty"`
	RetryOnFailure *bool    `json:"retry_on_failure,omitempty"`
	MaxRetries     *int     `json:"max_retries,omitempty"`
}

// SetFlagRequest is the HTTP request body for PUT /api/admin/flags/:name.
type SetFlagRequest struct {
	Enabled bool `json:"enabled"`
}
