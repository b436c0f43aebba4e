// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/klartext-health/befund/ent/aiinteractionlog"
	"github.com/klartext-health/befund/ent/documentclass"
	"github.com/klartext-health/befund/ent/featureflag"
	"github.com/klartext-health/befund/ent/job"
	"github.com/klartext-health/befund/ent/modelconfig"
	"github.com/klartext-health/befund/ent/ocrconfiguration"
	"github.com/klartext-health/befund/ent/pipelinestep"
	"github.com/klartext-health/befund/ent/schema"
	"github.com/klartext-health/befund/ent/stepexecution"
	"github.com/klartext-health/befund/ent/systemsetting"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	aiinteractionlogFields := schema.AIInteractionLog{}.Fields()
	_ = aiinteractionlogFields
	// aiinteractionlogDescInputTokens is the schema descriptor for input_tokens field.
	aiinteractionlogDescInputTokens := aiinteractionlogFields[3].Descriptor()
	// aiinteractionlog.DefaultInputTokens holds the default value on creation for the input_tokens field.
	aiinteractionlog.DefaultInputTokens = aiinteractionlogDescInputTokens.Default.(int)
	// aiinteractionlogDescOutputTokens is the schema descriptor for output_tokens field.
	aiinteractionlogDescOutputTokens := aiinteractionlogFields[4].Descriptor()
	// aiinteractionlog.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	aiinteractionlog.DefaultOutputTokens = aiinteractionlogDescOutputTokens.Default.(int)
	// aiinteractionlogDescTotalTokens is the schema descriptor for total_tokens field.
	aiinteractionlogDescTotalTokens := aiinteractionlogFields[5].Descriptor()
	// aiinteractionlog.DefaultTotalTokens holds the default value on creation for the total_tokens field.
	aiinteractionlog.DefaultTotalTokens = aiinteractionlogDescTotalTokens.Default.(int)
	// aiinteractionlogDescCost is the schema descriptor for cost field.
	aiinteractionlogDescCost := aiinteractionlogFields[6].Descriptor()
	// aiinteractionlog.DefaultCost holds the default value on creation for the cost field.
	aiinteractionlog.DefaultCost = aiinteractionlogDescCost.Default.(float64)
	// aiinteractionlogDescLatencyMs is the schema descriptor for latency_ms field.
	aiinteractionlogDescLatencyMs := aiinteractionlogFields[7].Descriptor()
	// aiinteractionlog.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	aiinteractionlog.DefaultLatencyMs = aiinteractionlogDescLatencyMs.Default.(int64)
	// aiinteractionlogDescEstimatedTokens is the schema descriptor for estimated_tokens field.
	aiinteractionlogDescEstimatedTokens := aiinteractionlogFields[10].Descriptor()
	// aiinteractionlog.DefaultEstimatedTokens holds the default value on creation for the estimated_tokens field.
	aiinteractionlog.DefaultEstimatedTokens = aiinteractionlogDescEstimatedTokens.Default.(bool)
	// aiinteractionlogDescCreatedAt is the schema descriptor for created_at field.
	aiinteractionlogDescCreatedAt := aiinteractionlogFields[11].Descriptor()
	// aiinteractionlog.DefaultCreatedAt holds the default value on creation for the created_at field.
	aiinteractionlog.DefaultCreatedAt = aiinteractionlogDescCreatedAt.Default.(func() time.Time)
	documentclassFields := schema.DocumentClass{}.Fields()
	_ = documentclassFields
	// documentclassDescClassKey is the schema descriptor for class_key field.
	documentclassDescClassKey := documentclassFields[0].Descriptor()
	// documentclass.ClassKeyValidator is a validator for the "class_key" field. It is called by the builders before save.
	documentclass.ClassKeyValidator = documentclassDescClassKey.Validators[0].(func(string) error)
	// documentclassDescEnabled is the schema descriptor for enabled field.
	documentclassDescEnabled := documentclassFields[2].Descriptor()
	// documentclass.DefaultEnabled holds the default value on creation for the enabled field.
	documentclass.DefaultEnabled = documentclassDescEnabled.Default.(bool)
	// documentclassDescCreatedAt is the schema descriptor for created_at field.
	documentclassDescCreatedAt := documentclassFields[3].Descriptor()
	// documentclass.DefaultCreatedAt holds the default value on creation for the created_at field.
	documentclass.DefaultCreatedAt = documentclassDescCreatedAt.Default.(func() time.Time)
	featureflagFields := schema.FeatureFlag{}.Fields()
	_ = featureflagFields
	// featureflagDescEnabled is the schema descriptor for enabled field.
	featureflagDescEnabled := featureflagFields[1].Descriptor()
	// featureflag.DefaultEnabled holds the default value on creation for the enabled field.
	featureflag.DefaultEnabled = featureflagDescEnabled.Default.(bool)
	// featureflagDescUpdatedAt is the schema descriptor for updated_at field.
	featureflagDescUpdatedAt := featureflagFields[3].Descriptor()
	// featureflag.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	featureflag.DefaultUpdatedAt = featureflagDescUpdatedAt.Default.(func() time.Time)
	// featureflag.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	featureflag.UpdateDefaultUpdatedAt = featureflagDescUpdatedAt.UpdateDefault.(func() time.Time)
	jobFields := schema.Job{}.Fields()
	_ = jobFields
	// jobDescQueueLane is the schema descriptor for queue_lane field.
	jobDescQueueLane := jobFields[12].Descriptor()
	// job.DefaultQueueLane holds the default value on creation for the queue_lane field.
	job.DefaultQueueLane = jobDescQueueLane.Default.(string)
	// jobDescJobAttempts is the schema descriptor for job_attempts field.
	jobDescJobAttempts := jobFields[13].Descriptor()
	// job.DefaultJobAttempts holds the default value on creation for the job_attempts field.
	job.DefaultJobAttempts = jobDescJobAttempts.Default.(int)
	// jobDescProgressPercent is the schema descriptor for progress_percent field.
	jobDescProgressPercent := jobFields[14].Descriptor()
	// job.DefaultProgressPercent holds the default value on creation for the progress_percent field.
	job.DefaultProgressPercent = jobDescProgressPercent.Default.(int)
	// jobDescTotalTokens is the schema descriptor for total_tokens field.
	jobDescTotalTokens := jobFields[21].Descriptor()
	// job.DefaultTotalTokens holds the default value on creation for the total_tokens field.
	job.DefaultTotalTokens = jobDescTotalTokens.Default.(int)
	// jobDescTotalCost is the schema descriptor for total_cost field.
	jobDescTotalCost := jobFields[22].Descriptor()
	// job.DefaultTotalCost holds the default value on creation for the total_cost field.
	job.DefaultTotalCost = jobDescTotalCost.Default.(float64)
	// jobDescPiiDegraded is the schema descriptor for pii_degraded field.
	jobDescPiiDegraded := jobFields[23].Descriptor()
	// job.DefaultPiiDegraded holds the default value on creation for the pii_degraded field.
	job.DefaultPiiDegraded = jobDescPiiDegraded.Default.(bool)
	// jobDescCreatedAt is the schema descriptor for created_at field.
	jobDescCreatedAt := jobFields[28].Descriptor()
	// job.DefaultCreatedAt holds the default value on creation for the created_at field.
	job.DefaultCreatedAt = jobDescCreatedAt.Default.(func() time.Time)
	// jobDescUpdatedAt is the schema descriptor for updated_at field.
	jobDescUpdatedAt := jobFields[29].Descriptor()
	// job.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	job.DefaultUpdatedAt = jobDescUpdatedAt.Default.(func() time.Time)
	// job.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	job.UpdateDefaultUpdatedAt = jobDescUpdatedAt.UpdateDefault.(func() time.Time)
	modelconfigFields := schema.ModelConfig{}.Fields()
	_ = modelconfigFields
	// modelconfigDescProvider is the schema descriptor for provider field.
	modelconfigDescProvider := modelconfigFields[1].Descriptor()
	// modelconfig.DefaultProvider holds the default value on creation for the provider field.
	modelconfig.DefaultProvider = modelconfigDescProvider.Default.(string)
	// modelconfigDescInputPricePerM is the schema descriptor for input_price_per_m field.
	modelconfigDescInputPricePerM := modelconfigFields[2].Descriptor()
	// modelconfig.InputPricePerMValidator is a validator for the "input_price_per_m" field. It is called by the builders before save.
	modelconfig.InputPricePerMValidator = modelconfigDescInputPricePerM.Validators[0].(func(float64) error)
	// modelconfigDescOutputPricePerM is the schema descriptor for output_price_per_m field.
	modelconfigDescOutputPricePerM := modelconfigFields[3].Descriptor()
	// modelconfig.OutputPricePerMValidator is a validator for the "output_price_per_m" field. It is called by the builders before save.
	modelconfig.OutputPricePerMValidator = modelconfigDescOutputPricePerM.Validators[0].(func(float64) error)
	// modelconfigDescMaxTokens is the schema descriptor for max_tokens field.
	modelconfigDescMaxTokens := modelconfigFields[4].Descriptor()
	// modelconfig.MaxTokensValidator is a validator for the "max_tokens" field. It is called by the builders before save.
	modelconfig.MaxTokensValidator = modelconfigDescMaxTokens.Validators[0].(func(int) error)
	// modelconfigDescSupportsVision is the schema descriptor for supports_vision field.
	modelconfigDescSupportsVision := modelconfigFields[5].Descriptor()
	// modelconfig.DefaultSupportsVision holds the default value on creation for the supports_vision field.
	modelconfig.DefaultSupportsVision = modelconfigDescSupportsVision.Default.(bool)
	// modelconfigDescSupportsStreaming is the schema descriptor for supports_streaming field.
	modelconfigDescSupportsStreaming := modelconfigFields[6].Descriptor()
	// modelconfig.DefaultSupportsStreaming holds the default value on creation for the supports_streaming field.
	modelconfig.DefaultSupportsStreaming = modelconfigDescSupportsStreaming.Default.(bool)
	// modelconfigDescActive is the schema descriptor for active field.
	modelconfigDescActive := modelconfigFields[7].Descriptor()
	// modelconfig.DefaultActive holds the default value on creation for the active field.
	modelconfig.DefaultActive = modelconfigDescActive.Default.(bool)
	// modelconfigDescCreatedAt is the schema descriptor for created_at field.
	modelconfigDescCreatedAt := modelconfigFields[9].Descriptor()
	// modelconfig.DefaultCreatedAt holds the default value on creation for the created_at field.
	modelconfig.DefaultCreatedAt = modelconfigDescCreatedAt.Default.(func() time.Time)
	// modelconfigDescUpdatedAt is the schema descriptor for updated_at field.
	modelconfigDescUpdatedAt := modelconfigFields[10].Descriptor()
	// modelconfig.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	modelconfig.DefaultUpdatedAt = modelconfigDescUpdatedAt.Default.(func() time.Time)
	// modelconfig.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	modelconfig.UpdateDefaultUpdatedAt = modelconfigDescUpdatedAt.UpdateDefault.(func() time.Time)
	ocrconfigurationFields := schema.OCRConfiguration{}.Fields()
	_ = ocrconfigurationFields
	// ocrconfigurationDescEngine is the schema descriptor for engine field.
	ocrconfigurationDescEngine := ocrconfigurationFields[0].Descriptor()
	// ocrconfiguration.DefaultEngine holds the default value on creation for the engine field.
	ocrconfiguration.DefaultEngine = ocrconfigurationDescEngine.Default.(string)
	// ocrconfigurationDescEnabled is the schema descriptor for enabled field.
	ocrconfigurationDescEnabled := ocrconfigurationFields[3].Descriptor()
	// ocrconfiguration.DefaultEnabled holds the default value on creation for the enabled field.
	ocrconfiguration.DefaultEnabled = ocrconfigurationDescEnabled.Default.(bool)
	// ocrconfigurationDescCreatedAt is the schema descriptor for created_at field.
	ocrconfigurationDescCreatedAt := ocrconfigurationFields[4].Descriptor()
	// ocrconfiguration.DefaultCreatedAt holds the default value on creation for the created_at field.
	ocrconfiguration.DefaultCreatedAt = ocrconfigurationDescCreatedAt.Default.(func() time.Time)
	// ocrconfigurationDescUpdatedAt is the schema descriptor for updated_at field.
	ocrconfigurationDescUpdatedAt := ocrconfigurationFields[5].Descriptor()
	// ocrconfiguration.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	ocrconfiguration.DefaultUpdatedAt = ocrconfigurationDescUpdatedAt.Default.(func() time.Time)
	// ocrconfiguration.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	ocrconfiguration.UpdateDefaultUpdatedAt = ocrconfigurationDescUpdatedAt.UpdateDefault.(func() time.Time)
	pipelinestepFields := schema.PipelineStep{}.Fields()
	_ = pipelinestepFields
	// pipelinestepDescSortOrder is the schema descriptor for sort_order field.
	pipelinestepDescSortOrder := pipelinestepFields[2].Descriptor()
	// pipelinestep.SortOrderValidator is a validator for the "sort_order" field. It is called by the builders before save.
	pipelinestep.SortOrderValidator = pipelinestepDescSortOrder.Validators[0].(func(int) error)
	// pipelinestepDescPostBranching is the schema descriptor for post_branching field.
	pipelinestepDescPostBranching := pipelinestepFields[3].Descriptor()
	// pipelinestep.DefaultPostBranching holds the default value on creation for the post_branching field.
	pipelinestep.DefaultPostBranching = pipelinestepDescPostBranching.Default.(bool)
	// pipelinestepDescEnabled is the schema descriptor for enabled field.
	pipelinestepDescEnabled := pipelinestepFields[5].Descriptor()
	// pipelinestep.DefaultEnabled holds the default value on creation for the enabled field.
	pipelinestep.DefaultEnabled = pipelinestepDescEnabled.Default.(bool)
	// pipelinestepDescIsBranchingStep is the schema descriptor for is_branching_step field.
	pipelinestepDescIsBranchingStep := pipelinestepFields[6].Descriptor()
	// pipelinestep.DefaultIsBranchingStep holds the default value on creation for the is_branching_step field.
	pipelinestep.DefaultIsBranchingStep = pipelinestepDescIsBranchingStep.Default.(bool)
	// pipelinestepDescTemperature is the schema descriptor for temperature field.
	pipelinestepDescTemperature := pipelinestepFields[8].Descriptor()
	// pipelinestep.DefaultTemperature holds the default value on creation for the temperature field.
	pipelinestep.DefaultTemperature = pipelinestepDescTemperature.Default.(float64)
	// pipelinestep.TemperatureValidator is a validator for the "temperature" field. It is called by the builders before save.
	pipelinestep.TemperatureValidator = func() func(float64) error {
		validators := pipelinestepDescTemperature.Validators
		fns := [...]func(float64) error{
			validators[0].(func(float64) error),
			validators[1].(func(float64) error),
		}
		return func(temperature float64) error {
			for _, fn := range fns {
				if err := fn(temperature); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// pipelinestepDescMaxTokens is the schema descriptor for max_tokens field.
	pipelinestepDescMaxTokens := pipelinestepFields[9].Descriptor()
	// pipelinestep.MaxTokensValidator is a validator for the "max_tokens" field. It is called by the builders before save.
	pipelinestep.MaxTokensValidator = pipelinestepDescMaxTokens.Validators[0].(func(int) error)
	// pipelinestepDescRetryOnFailure is the schema descriptor for retry_on_failure field.
	pipelinestepDescRetryOnFailure := pipelinestepFields[17].Descriptor()
	// pipelinestep.DefaultRetryOnFailure holds the default value on creation for the retry_on_failure field.
	pipelinestep.DefaultRetryOnFailure = pipelinestepDescRetryOnFailure.Default.(bool)
	// pipelinestepDescMaxRetries is the schema descriptor for max_retries field.
	pipelinestepDescMaxRetries := pipelinestepFields[18].Descriptor()
	// pipelinestep.DefaultMaxRetries holds the default value on creation for the max_retries field.
	pipelinestep.DefaultMaxRetries = pipelinestepDescMaxRetries.Default.(int)
	// pipelinestep.MaxRetriesValidator is a validator for the "max_retries" field. It is called by the builders before save.
	pipelinestep.MaxRetriesValidator = pipelinestepDescMaxRetries.Validators[0].(func(int) error)
	// pipelinestepDescUseOriginalText is the schema descriptor for use_original_text field.
	pipelinestepDescUseOriginalText := pipelinestepFields[19].Descriptor()
	// pipelinestep.DefaultUseOriginalText holds the default value on creation for the use_original_text field.
	pipelinestep.DefaultUseOriginalText = pipelinestepDescUseOriginalText.Default.(bool)
	// pipelinestepDescVersion is the schema descriptor for version field.
	pipelinestepDescVersion := pipelinestepFields[21].Descriptor()
	// pipelinestep.DefaultVersion holds the default value on creation for the version field.
	pipelinestep.DefaultVersion = pipelinestepDescVersion.Default.(int)
	// pipelinestepDescCreatedAt is the schema descriptor for created_at field.
	pipelinestepDescCreatedAt := pipelinestepFields[22].Descriptor()
	// pipelinestep.DefaultCreatedAt holds the default value on creation for the created_at field.
	pipelinestep.DefaultCreatedAt = pipelinestepDescCreatedAt.Default.(func() time.Time)
	// pipelinestepDescUpdatedAt is the schema descriptor for updated_at field.
	pipelinestepDescUpdatedAt := pipelinestepFields[23].Descriptor()
	// pipelinestep.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	pipelinestep.DefaultUpdatedAt = pipelinestepDescUpdatedAt.Default.(func() time.Time)
	// pipelinestep.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	pipelinestep.UpdateDefaultUpdatedAt = pipelinestepDescUpdatedAt.UpdateDefault.(func() time.Time)
	stepexecutionFields := schema.StepExecution{}.Fields()
	_ = stepexecutionFields
	// stepexecutionDescAttempts is the schema descriptor for attempts field.
	stepexecutionDescAttempts := stepexecutionFields[16].Descriptor()
	// stepexecution.DefaultAttempts holds the default value on creation for the attempts field.
	stepexecution.DefaultAttempts = stepexecutionDescAttempts.Default.(int)
	// stepexecutionDescCreatedAt is the schema descriptor for created_at field.
	stepexecutionDescCreatedAt := stepexecutionFields[17].Descriptor()
	// stepexecution.DefaultCreatedAt holds the default value on creation for the created_at field.
	stepexecution.DefaultCreatedAt = stepexecutionDescCreatedAt.Default.(func() time.Time)
	systemsettingFields := schema.SystemSetting{}.Fields()
	_ = systemsettingFields
	// systemsettingDescIsEncrypted is the schema descriptor for is_encrypted field.
	systemsettingDescIsEncrypted := systemsettingFields[2].Descriptor()
	// systemsetting.DefaultIsEncrypted holds the default value on creation for the is_encrypted field.
	systemsetting.DefaultIsEncrypted = systemsettingDescIsEncrypted.Default.(bool)
	// systemsettingDescUpdatedAt is the schema descriptor for updated_at field.
	systemsettingDescUpdatedAt := systemsettingFields[3].Descriptor()
	// systemsetting.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	systemsetting.DefaultUpdatedAt = systemsettingDescUpdatedAt.Default.(func() time.Time)
	// systemsetting.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	systemsetting.UpdateDefaultUpdatedAt = systemsettingDescUpdatedAt.UpdateDefault.(func() time.Time)
}
