// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// AIInteractionLog is the predicate function for aiinteractionlog builders.
type AIInteractionLog func(*sql.Selector)

// DocumentClass is the predicate function for documentclass builders.
type DocumentClass func(*sql.Selector)

// FeatureFlag is the predicate function for featureflag builders.
type FeatureFlag func(*sql.Selector)

// Job is the predicate function for job builders.
type Job func(*sql.Selector)

// ModelConfig is the predicate function for modelconfig builders.
type ModelConfig func(*sql.Selector)

// OCRConfiguration is the predicate function for ocrconfiguration builders.
type OCRConfiguration func(*sql.Selector)

// PipelineStep is the predicate function for pipelinestep builders.
type PipelineStep func(*sql.Selector)

// StepExecution is the predicate function for stepexecution builders.
type StepExecution func(*sql.Selector)

// SystemSetting is the predicate function for systemsetting builders.
type SystemSetting func(*sql.Selector)
