package database

import (
	"context"
	_ "embed"
	"fmt"
	"log/slog"

	"github.com/klartext-health/befund/ent/pipelinestep"
	"gopkg.in/yaml.v3"
)

//go:embed seed/pipeline.yaml
var seedYAML []byte

type seedFile struct {
	Models []struct {
		Name              string  `yaml:"name"`
		Provider          string  `yaml:"provider"`
		InputPricePerM    float64 `yaml:"input_price_per_m"`
		OutputPricePerM   float64 `yaml:"output_price_per_m"`
		MaxTokens         int     `yaml:"max_tokens"`
		SupportsVision    bool    `yaml:"supports_vision"`
		SupportsStreaming bool    `yaml:"supports_streaming"`
	} `yaml:"models"`
	DocumentClasses []struct {
		ClassKey    string `yaml:"class_key"`
		DisplayName string `yaml:"display_name"`
	} `yaml:"document_classes"`
	Steps []struct {
		Name                  string   `yaml:"name"`
		Description           string   `yaml:"description"`
		SortOrder             int      `yaml:"sort_order"`
		PostBranching         bool     `yaml:"post_branching"`
		DocumentClass         string   `yaml:"document_class"`
		IsBranchingStep       bool     `yaml:"is_branching_step"`
		ModelName             string   `yaml:"model_name"`
		Temperature           float64  `yaml:"temperature"`
		MaxTokens             int      `yaml:"max_tokens"`
		SystemPrompt          string   `yaml:"system_prompt"`
		PromptTemplate        string   `yaml:"prompt_template"`
		RequiredContextVars   []string `yaml:"required_context_variables"`
		StopOnValues          []string `yaml:"stop_on_values"`
		AllowedContinueValues []string `yaml:"allowed_continue_values"`
		TerminationReason     string   `yaml:"termination_reason"`
		TerminationMessage    string   `yaml:"termination_message"`
		RetryOnFailure        bool     `yaml:"retry_on_failure"`
		MaxRetries            int      `yaml:"max_retries"`
		UseOriginalText       bool     `yaml:"use_original_text"`
		OutputFormat          string   `yaml:"output_format"`
	} `yaml:"steps"`
	FeatureFlags []struct {
		Name        string `yaml:"name"`
		Enabled     bool   `yaml:"enabled"`
		Description string `yaml:"description"`
	} `yaml:"feature_flags"`
	OCR *struct {
		Engine        string   `yaml:"engine"`
		Endpoint      string   `yaml:"endpoint"`
		LanguageHints []string `yaml:"language_hints"`
	} `yaml:"ocr"`
}

// seedLockID is the advisory lock key serializing first-boot seeding across
// replicas.
const seedLockID = 813001

// Seed populates the config tables with the embedded default pipeline. It is
// a no-op when pipeline steps already exist. An advisory lock serializes
// concurrent replicas so only one performs the insert.
func (c *Client) Seed(ctx context.Context) error {
	conn, err := c.db.Conn(ctx)
	if err != nil {
		return fmt.Errorf("failed to acquire connection for seeding: %w", err)
	}
	defer func() { _ = conn.Close() }()

	if _, err := conn.ExecContext(ctx, "SELECT pg_advisory_lock($1)", seedLockID); err != nil {
		return fmt.Errorf("failed to take seed lock: %w", err)
	}
	defer func() {
		_, _ = conn.ExecContext(context.Background(), "SELECT pg_advisory_unlock($1)", seedLockID)
	}()

	count, err := c.PipelineStep.Query().Count(ctx)
	if err != nil {
		return fmt.Errorf("failed to count pipeline steps: %w", err)
	}
	if count > 0 {
		return nil
	}

	var sf seedFile
	if err := yaml.Unmarshal(seedYAML, &sf); err != nil {
		return fmt.Errorf("failed to parse embedded seed: %w", err)
	}

	tx, err := c.Tx(ctx)
	if err != nil {
		return fmt.Errorf("failed to open seed transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	for _, m := range sf.Models {
		create := tx.ModelConfig.Create().
			SetName(m.Name).
			SetInputPricePerM(m.InputPricePerM).
			SetOutputPricePerM(m.OutputPricePerM).
			SetMaxTokens(m.MaxTokens).
			SetSupportsVision(m.SupportsVision).
			SetSupportsStreaming(m.SupportsStreaming)
		if m.Provider != "" {
			create.SetProvider(m.Provider)
		}
		if err := create.OnConflictColumns("name").Ignore().Exec(ctx); err != nil {
			return fmt.Errorf("failed to seed model %q: %w", m.Name, err)
		}
	}

	classIDs := make(map[string]int, len(sf.DocumentClasses))
	for _, dc := range sf.DocumentClasses {
		created, err := tx.DocumentClass.Create().
			SetClassKey(dc.ClassKey).
			SetDisplayName(dc.DisplayName).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("failed to seed document class %q: %w", dc.ClassKey, err)
		}
		classIDs[dc.ClassKey] = created.ID
	}

	for _, st := range sf.Steps {
		create := tx.PipelineStep.Create().
			SetName(st.Name).
			SetDescription(st.Description).
			SetSortOrder(st.SortOrder).
			SetPostBranching(st.PostBranching).
			SetIsBranchingStep(st.IsBranchingStep).
			SetModelName(st.ModelName).
			SetTemperature(st.Temperature).
			SetMaxTokens(st.MaxTokens).
			SetPromptTemplate(st.PromptTemplate).
			SetRetryOnFailure(st.RetryOnFailure).
			SetMaxRetries(st.MaxRetries).
			SetUseOriginalText(st.UseOriginalText)
		if st.DocumentClass != "" {
			id, ok := classIDs[st.DocumentClass]
			if !ok {
				return fmt.Errorf("seed step %q references unknown class %q", st.Name, st.DocumentClass)
			}
			create.SetDocumentClassID(id)
		}
		if st.SystemPrompt != "" {
			create.SetSystemPrompt(st.SystemPrompt)
		}
		if len(st.RequiredContextVars) > 0 {
			create.SetRequiredContextVariables(st.RequiredContextVars)
		}
		if len(st.StopOnValues) > 0 {
			create.SetStopOnValues(st.StopOnValues)
		}
		if len(st.AllowedContinueValues) > 0 {
			create.SetAllowedContinueValues(st.AllowedContinueValues)
		}
		if st.TerminationReason != "" {
			create.SetTerminationReason(st.TerminationReason)
		}
		if st.TerminationMessage != "" {
			create.SetTerminationMessage(st.TerminationMessage)
		}
		if st.OutputFormat != "" {
			create.SetOutputFormat(pipelinestep.OutputFormat(st.OutputFormat))
		}
		if err := create.Exec(ctx); err != nil {
			return fmt.Errorf("failed to seed step %q: %w", st.Name, err)
		}
	}

	for _, ff := range sf.FeatureFlags {
		if err := tx.FeatureFlag.Create().
			SetName(ff.Name).
			SetEnabled(ff.Enabled).
			SetDescription(ff.Description).
			OnConflictColumns("name").Ignore().
			Exec(ctx); err != nil {
			return fmt.Errorf("failed to seed feature flag %q: %w", ff.Name, err)
		}
	}

	if sf.OCR != nil {
		create := tx.OCRConfiguration.Create().
			SetEngine(sf.OCR.Engine)
		if sf.OCR.Endpoint != "" {
			create.SetEndpoint(sf.OCR.Endpoint)
		}
		if len(sf.OCR.LanguageHints) > 0 {
			create.SetLanguageHints(sf.OCR.LanguageHints)
		}
		if err := create.Exec(ctx); err != nil {
			return fmt.Errorf("failed to seed OCR configuration: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit seed: %w", err)
	}

	slog.Info("Seeded default pipeline configuration",
		"models", len(sf.Models),
		"classes", len(sf.DocumentClasses),
		"steps", len(sf.Steps))
	return nil
}
