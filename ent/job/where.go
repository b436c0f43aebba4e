// Code generated by ent, DO NOT EDIT.

package job

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/klartext-health/befund/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Job {
	return predicate.Job(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Job {
	return predicate.Job(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Job {
	return predicate.Job(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Job {
	return predicate.Job(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Job {
	return predicate.Job(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Job {
	return predicate.Job(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Job {
	return predicate.Job(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Job {
	return predicate.Job(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Job {
	return predicate.Job(sql.FieldContainsFold(FieldID, id))
}

// ProcessingID applies equality check predicate on the "processing_id" field. It's identical to ProcessingIDEQ.
func ProcessingID(v string) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldProcessingID, v))
}

// Filename applies equality check predicate on the "filename" field. It's identical to FilenameEQ.
func Filename(v string) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldFilename, v))
}

// FileType applies equality check predicate on the "file_type" field. It's identical to FileTypeEQ.
func FileType(v string) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldFileType, v))
}

// FileSize applies equality check predicate on the "file_size" field. It's identical to FileSizeEQ.
func FileSize(v int64) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldFileSize, v))
}

// FileContent applies equality check predicate on the "file_content" field. It's identical to FileContentEQ.
func FileContent(v []byte) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldFileContent, v))
}

// FileHash applies equality check predicate on the "file_hash" field. It's identical to FileHashEQ.
func FileHash(v string) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldFileHash, v))
}

// TargetLanguage applies equality check predicate on the "target_language" field. It's identical to TargetLanguageEQ.
func TargetLanguage(v string) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldTargetLanguage, v))
}

// DocumentClass applies equality check predicate on the "document_class" field. It's identical to DocumentClassEQ.
func DocumentClass(v string) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldDocumentClass, v))
}

// QueueLane applies equality check predicate on the "queue_lane" field. It's identical to QueueLaneEQ.
func QueueLane(v string) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldQueueLane, v))
}

// JobAttempts applies equality check predicate on the "job_attempts" field. It's identical to JobAttemptsEQ.
func JobAttempts(v int) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldJobAttempts, v))
}

// ProgressPercent applies equality check predicate on the "progress_percent" field. It's identical to ProgressPercentEQ.
func ProgressPercent(v int) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldProgressPercent, v))
}

// CurrentStep applies equality check predicate on the "current_step" field. It's identical to CurrentStepEQ.
func CurrentStep(v string) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldCurrentStep, v))
}

// OriginalText applies equality check predicate on the "original_text" field. It's identical to OriginalTextEQ.
func OriginalText(v []byte) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldOriginalText, v))
}

// SimplifiedText applies equality check predicate on the "simplified_text" field. It's identical to SimplifiedTextEQ.
func SimplifiedText(v []byte) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldSimplifiedText, v))
}

// TranslatedText applies equality check predicate on the "translated_text" field. It's identical to TranslatedTextEQ.
func TranslatedText(v []byte) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldTranslatedText, v))
}

// ErrorMessage applies equality check predicate on the "error_message" field. It's identical to ErrorMessageEQ.
func ErrorMessage(v string) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldErrorMessage, v))
}

// TotalTokens applies equality check predicate on the "total_tokens" field. It's identical to TotalTokensEQ.
func TotalTokens(v int) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldTotalTokens, v))
}

// TotalCost applies equality check predicate on the "total_cost" field. It's identical to TotalCostEQ.
func TotalCost(v float64) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldTotalCost, v))
}

// PiiDegraded applies equality check predicate on the "pii_degraded" field. It's identical to PiiDegradedEQ.
func PiiDegraded(v bool) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldPiiDegraded, v))
}

// Tenant applies equality check predicate on the "tenant" field. It's identical to TenantEQ.
func Tenant(v string) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldTenant, v))
}

// SubmittedBy applies equality check predicate on the "submitted_by" field. It's identical to SubmittedByEQ.
func SubmittedBy(v string) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldSubmittedBy, v))
}

// WorkerID applies equality check predicate on the "worker_id" field. It's identical to WorkerIDEQ.
func WorkerID(v string) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldWorkerID, v))
}

// LastHeartbeatAt applies equality check predicate on the "last_heartbeat_at" field. It's identical to LastHeartbeatAtEQ.
func LastHeartbeatAt(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldLastHeartbeatAt, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldUpdatedAt, v))
}

// StartedAt applies equality check predicate on the "started_at" field. It's identical to StartedAtEQ.
func StartedAt(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldStartedAt, v))
}

// CompletedAt applies equality check predicate on the "completed_at" field. It's identical to CompletedAtEQ.
func CompletedAt(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldCompletedAt, v))
}

// ProcessingIDEQ applies the EQ predicate on the "processing_id" field.
func ProcessingIDEQ(v string) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldProcessingID, v))
}

// ProcessingIDNEQ applies the NEQ predicate on the "processing_id" field.
func ProcessingIDNEQ(v string) predicate.Job {
	return predicate.Job(sql.FieldNEQ(FieldProcessingID, v))
}

// ProcessingIDIn applies the In predicate on the "processing_id" field.
func ProcessingIDIn(vs ...string) predicate.Job {
	return predicate.Job(sql.FieldIn(FieldProcessingID, vs...))
}

// ProcessingIDNotIn applies the NotIn predicate on the "processing_id" field.
func ProcessingIDNotIn(vs ...string) predicate.Job {
	return predicate.Job(sql.FieldNotIn(FieldProcessingID, vs...))
}

// ProcessingIDGT applies the GT predicate on the "processing_id" field.
func ProcessingIDGT(v string) predicate.Job {
	return predicate.Job(sql.FieldGT(FieldProcessingID, v))
}

// ProcessingIDGTE applies the GTE predicate on the "processing_id" field.
func ProcessingIDGTE(v string) predicate.Job {
	return predicate.Job(sql.FieldGTE(FieldProcessingID, v))
}

// ProcessingIDLT applies the LT predicate on the "processing_id" field.
func ProcessingIDLT(v string) predicate.Job {
	return predicate.Job(sql.FieldLT(FieldProcessingID, v))
}

// ProcessingIDLTE applies the LTE predicate on the "processing_id" field.
func ProcessingIDLTE(v string) predicate.Job {
	return predicate.Job(sql.FieldLTE(FieldProcessingID, v))
}

// ProcessingIDContains applies the Contains predicate on the "processing_id" field.
func ProcessingIDContains(v string) predicate.Job {
	return predicate.Job(sql.FieldContains(FieldProcessingID, v))
}

// ProcessingIDHasPrefix applies the HasPrefix predicate on the "processing_id" field.
func ProcessingIDHasPrefix(v string) predicate.Job {
	return predicate.Job(sql.FieldHasPrefix(FieldProcessingID, v))
}

// ProcessingIDHasSuffix applies the HasSuffix predicate on the "processing_id" field.
func ProcessingIDHasSuffix(v string) predicate.Job {
	return predicate.Job(sql.FieldHasSuffix(FieldProcessingID, v))
}

// ProcessingIDEqualFold applies the EqualFold predicate on the "processing_id" field.
func ProcessingIDEqualFold(v string) predicate.Job {
	return predicate.Job(sql.FieldEqualFold(FieldProcessingID, v))
}

// ProcessingIDContainsFold applies the ContainsFold predicate on the "processing_id" field.
func ProcessingIDContainsFold(v string) predicate.Job {
	return predicate.Job(sql.FieldContainsFold(FieldProcessingID, v))
}

// FilenameEQ applies the EQ predicate on the "filename" field.
func FilenameEQ(v string) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldFilename, v))
}

// FilenameNEQ applies the NEQ predicate on the "filename" field.
func FilenameNEQ(v string) predicate.Job {
	return predicate.Job(sql.FieldNEQ(FieldFilename, v))
}

// FilenameIn applies the In predicate on the "filename" field.
func FilenameIn(vs ...string) predicate.Job {
	return predicate.Job(sql.FieldIn(FieldFilename, vs...))
}

// FilenameNotIn applies the NotIn predicate on the "filename" field.
func FilenameNotIn(vs ...string) predicate.Job {
	return predicate.Job(sql.FieldNotIn(FieldFilename, vs...))
}

// FilenameGT applies the GT predicate on the "filename" field.
func FilenameGT(v string) predicate.Job {
	return predicate.Job(sql.FieldGT(FieldFilename, v))
}

// FilenameGTE applies the GTE predicate on the "filename" field.
func FilenameGTE(v string) predicate.Job {
	return predicate.Job(sql.FieldGTE(FieldFilename, v))
}

// FilenameLT applies the LT predicate on the "filename" field.
func FilenameLT(v string) predicate.Job {
	return predicate.Job(sql.FieldLT(FieldFilename, v))
}

// FilenameLTE applies the LTE predicate on the "filename" field.
func FilenameLTE(v string) predicate.Job {
	return predicate.Job(sql.FieldLTE(FieldFilename, v))
}

// FilenameContains applies the Contains predicate on the "filename" field.
func FilenameContains(v string) predicate.Job {
	return predicate.Job(sql.FieldContains(FieldFilename, v))
}

// FilenameHasPrefix applies the HasPrefix predicate on the "filename" field.
func FilenameHasPrefix(v string) predicate.Job {
	return predicate.Job(sql.FieldHasPrefix(FieldFilename, v))
}

// FilenameHasSuffix applies the HasSuffix predicate on the "filename" field.
func FilenameHasSuffix(v string) predicate.Job {
	return predicate.Job(sql.FieldHasSuffix(FieldFilename, v))
}

// FilenameEqualFold applies the EqualFold predicate on the "filename" field.
func FilenameEqualFold(v string) predicate.Job {
	return predicate.Job(sql.FieldEqualFold(FieldFilename, v))
}

// FilenameContainsFold applies the ContainsFold predicate on the "filename" field.
func FilenameContainsFold(v string) predicate.Job {
	return predicate.Job(sql.FieldContainsFold(FieldFilename, v))
}

// FileTypeEQ applies the EQ predicate on the "file_type" field.
func FileTypeEQ(v string) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldFileType, v))
}

// FileTypeNEQ applies the NEQ predicate on the "file_type" field.
func FileTypeNEQ(v string) predicate.Job {
	return predicate.Job(sql.FieldNEQ(FieldFileType, v))
}

// FileTypeIn applies the In predicate on the "file_type" field.
func FileTypeIn(vs ...string) predicate.Job {
	return predicate.Job(sql.FieldIn(FieldFileType, vs...))
}

// FileTypeNotIn applies the NotIn predicate on the "file_type" field.
func FileTypeNotIn(vs ...string) predicate.Job {
	return predicate.Job(sql.FieldNotIn(FieldFileType, vs...))
}

// FileTypeGT applies the GT predicate on the "file_type" field.
func FileTypeGT(v string) predicate.Job {
	return predicate.Job(sql.FieldGT(FieldFileType, v))
}

// FileTypeGTE applies the GTE predicate on the "file_type" field.
func FileTypeGTE(v string) predicate.Job {
	return predicate.Job(sql.FieldGTE(FieldFileType, v))
}

// FileTypeLT applies the LT predicate on the "file_type" field.
func FileTypeLT(v string) predicate.Job {
	return predicate.Job(sql.FieldLT(FieldFileType, v))
}

// FileTypeLTE applies the LTE predicate on the "file_type" field.
func FileTypeLTE(v string) predicate.Job {
	return predicate.Job(sql.FieldLTE(FieldFileType, v))
}

// FileTypeContains applies the Contains predicate on the "file_type" field.
func FileTypeContains(v string) predicate.Job {
	return predicate.Job(sql.FieldContains(FieldFileType, v))
}

// FileTypeHasPrefix applies the HasPrefix predicate on the "file_type" field.
func FileTypeHasPrefix(v string) predicate.Job {
	return predicate.Job(sql.FieldHasPrefix(FieldFileType, v))
}

// FileTypeHasSuffix applies the HasSuffix predicate on the "file_type" field.
func FileTypeHasSuffix(v string) predicate.Job {
	return predicate.Job(sql.FieldHasSuffix(FieldFileType, v))
}

// FileTypeEqualFold applies the EqualFold predicate on the "file_type" field.
func FileTypeEqualFold(v string) predicate.Job {
	return predicate.Job(sql.FieldEqualFold(FieldFileType, v))
}

// FileTypeContainsFold applies the ContainsFold predicate on the "file_type" field.
func FileTypeContainsFold(v string) predicate.Job {
	return predicate.Job(sql.FieldContainsFold(FieldFileType, v))
}

// FileSizeEQ applies the EQ predicate on the "file_size" field.
func FileSizeEQ(v int64) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldFileSize, v))
}

// FileSizeNEQ applies the NEQ predicate on the "file_size" field.
func FileSizeNEQ(v int64) predicate.Job {
	return predicate.Job(sql.FieldNEQ(FieldFileSize, v))
}

// FileSizeIn applies the In predicate on the "file_size" field.
func FileSizeIn(vs ...int64) predicate.Job {
	return predicate.Job(sql.FieldIn(FieldFileSize, vs...))
}

// FileSizeNotIn applies the NotIn predicate on the "file_size" field.
func FileSizeNotIn(vs ...int64) predicate.Job {
	return predicate.Job(sql.FieldNotIn(FieldFileSize, vs...))
}

// FileSizeGT applies the GT predicate on the "file_size" field.
func FileSizeGT(v int64) predicate.Job {
	return predicate.Job(sql.FieldGT(FieldFileSize, v))
}

// FileSizeGTE applies the GTE predicate on the "file_size" field.
func FileSizeGTE(v int64) predicate.Job {
	return predicate.Job(sql.FieldGTE(FieldFileSize, v))
}

// FileSizeLT applies the LT predicate on the "file_size" field.
func FileSizeLT(v int64) predicate.Job {
	return predicate.Job(sql.FieldLT(FieldFileSize, v))
}

// FileSizeLTE applies the LTE predicate on the "file_size" field.
func FileSizeLTE(v int64) predicate.Job {
	return predicate.Job(sql.FieldLTE(FieldFileSize, v))
}

// FileContentEQ applies the EQ predicate on the "file_content" field.
func FileContentEQ(v []byte) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldFileContent, v))
}

// FileContentNEQ applies the NEQ predicate on the "file_content" field.
func FileContentNEQ(v []byte) predicate.Job {
	return predicate.Job(sql.FieldNEQ(FieldFileContent, v))
}

// FileContentIn applies the In predicate on the "file_content" field.
func FileContentIn(vs ...[]byte) predicate.Job {
	return predicate.Job(sql.FieldIn(FieldFileContent, vs...))
}

// FileContentNotIn applies the NotIn predicate on the "file_content" field.
func FileContentNotIn(vs ...[]byte) predicate.Job {
	return predicate.Job(sql.FieldNotIn(FieldFileContent, vs...))
}

// FileContentGT applies the GT predicate on the "file_content" field.
func FileContentGT(v []byte) predicate.Job {
	return predicate.Job(sql.FieldGT(FieldFileContent, v))
}

// FileContentGTE applies the GTE predicate on the "file_content" field.
func FileContentGTE(v []byte) predicate.Job {
	return predicate.Job(sql.FieldGTE(FieldFileContent, v))
}

// FileContentLT applies the LT predicate on the "file_content" field.
func FileContentLT(v []byte) predicate.Job {
	return predicate.Job(sql.FieldLT(FieldFileContent, v))
}

// FileContentLTE applies the LTE predicate on the "file_content" field.
func FileContentLTE(v []byte) predicate.Job {
	return predicate.Job(sql.FieldLTE(FieldFileContent, v))
}

// FileContentIsNil applies the IsNil predicate on the "file_content" field.
func FileContentIsNil() predicate.Job {
	return predicate.Job(sql.FieldIsNull(FieldFileContent))
}

// FileContentNotNil applies the NotNil predicate on the "file_content" field.
func FileContentNotNil() predicate.Job {
	return predicate.Job(sql.FieldNotNull(FieldFileContent))
}

// FileHashEQ applies the EQ predicate on the "file_hash" field.
func FileHashEQ(v string) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldFileHash, v))
}

// FileHashNEQ applies the NEQ predicate on the "file_hash" field.
func FileHashNEQ(v string) predicate.Job {
	return predicate.Job(sql.FieldNEQ(FieldFileHash, v))
}

// FileHashIn applies the In predicate on the "file_hash" field.
func FileHashIn(vs ...string) predicate.Job {
	return predicate.Job(sql.FieldIn(FieldFileHash, vs...))
}

// FileHashNotIn applies the NotIn predicate on the "file_hash" field.
func FileHashNotIn(vs ...string) predicate.Job {
	return predicate.Job(sql.FieldNotIn(FieldFileHash, vs...))
}

// FileHashGT applies the GT predicate on the "file_hash" field.
func FileHashGT(v string) predicate.Job {
	return predicate.Job(sql.FieldGT(FieldFileHash, v))
}

// FileHashGTE applies the GTE predicate on the "file_hash" field.
func FileHashGTE(v string) predicate.Job {
	return predicate.Job(sql.FieldGTE(FieldFileHash, v))
}

// FileHashLT applies the LT predicate on the "file_hash" field.
func FileHashLT(v string) predicate.Job {
	return predicate.Job(sql.FieldLT(FieldFileHash, v))
}

// FileHashLTE applies the LTE predicate on the "file_hash" field.
func FileHashLTE(v string) predicate.Job {
	return predicate.Job(sql.FieldLTE(FieldFileHash, v))
}

// FileHashContains applies the Contains predicate on the "file_hash" field.
func FileHashContains(v string) predicate.Job {
	return predicate.Job(sql.FieldContains(FieldFileHash, v))
}

// FileHashHasPrefix applies the HasPrefix predicate on the "file_hash" field.
func FileHashHasPrefix(v string) predicate.Job {
	return predicate.Job(sql.FieldHasPrefix(FieldFileHash, v))
}

// FileHashHasSuffix applies the HasSuffix predicate on the "file_hash" field.
func FileHashHasSuffix(v string) predicate.Job {
	return predicate.Job(sql.FieldHasSuffix(FieldFileHash, v))
}

// FileHashIsNil applies the IsNil predicate on the "file_hash" field.
func FileHashIsNil() predicate.Job {
	return predicate.Job(sql.FieldIsNull(FieldFileHash))
}

// FileHashNotNil applies the NotNil predicate on the "file_hash" field.
func FileHashNotNil() predicate.Job {
	return predicate.Job(sql.FieldNotNull(FieldFileHash))
}

// FileHashEqualFold applies the EqualFold predicate on the "file_hash" field.
func FileHashEqualFold(v string) predicate.Job {
	return predicate.Job(sql.FieldEqualFold(FieldFileHash, v))
}

// FileHashContainsFold applies the ContainsFold predicate on the "file_hash" field.
func FileHashContainsFold(v string) predicate.Job {
	return predicate.Job(sql.FieldContainsFold(FieldFileHash, v))
}

// PipelineConfigIsNil applies the IsNil predicate on the "pipeline_config" field.
func PipelineConfigIsNil() predicate.Job {
	return predicate.Job(sql.FieldIsNull(FieldPipelineConfig))
}

// PipelineConfigNotNil applies the NotNil predicate on the "pipeline_config" field.
func PipelineConfigNotNil() predicate.Job {
	return predicate.Job(sql.FieldNotNull(FieldPipelineConfig))
}

// OcrConfigIsNil applies the IsNil predicate on the "ocr_config" field.
func OcrConfigIsNil() predicate.Job {
	return predicate.Job(sql.FieldIsNull(FieldOcrConfig))
}

// OcrConfigNotNil applies the NotNil predicate on the "ocr_config" field.
func OcrConfigNotNil() predicate.Job {
	return predicate.Job(sql.FieldNotNull(FieldOcrConfig))
}

// TargetLanguageEQ applies the EQ predicate on the "target_language" field.
func TargetLanguageEQ(v string) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldTargetLanguage, v))
}

// TargetLanguageNEQ applies the NEQ predicate on the "target_language" field.
func TargetLanguageNEQ(v string) predicate.Job {
	return predicate.Job(sql.FieldNEQ(FieldTargetLanguage, v))
}

// TargetLanguageIn applies the In predicate on the "target_language" field.
func TargetLanguageIn(vs ...string) predicate.Job {
	return predicate.Job(sql.FieldIn(FieldTargetLanguage, vs...))
}

// TargetLanguageNotIn applies the NotIn predicate on the "target_language" field.
func TargetLanguageNotIn(vs ...string) predicate.Job {
	return predicate.Job(sql.FieldNotIn(FieldTargetLanguage, vs...))
}

// TargetLanguageGT applies the GT predicate on the "target_language" field.
func TargetLanguageGT(v string) predicate.Job {
	return predicate.Job(sql.FieldGT(FieldTargetLanguage, v))
}

// TargetLanguageGTE applies the GTE predicate on the "target_language" field.
func TargetLanguageGTE(v string) predicate.Job {
	return predicate.Job(sql.FieldGTE(FieldTargetLanguage, v))
}

// TargetLanguageLT applies the LT predicate on the "target_language" field.
func TargetLanguageLT(v string) predicate.Job {
	return predicate.Job(sql.FieldLT(FieldTargetLanguage, v))
}

// TargetLanguageLTE applies the LTE predicate on the "target_language" field.
func TargetLanguageLTE(v string) predicate.Job {
	return predicate.Job(sql.FieldLTE(FieldTargetLanguage, v))
}

// TargetLanguageContains applies the Contains predicate on the "target_language" field.
func TargetLanguageContains(v string) predicate.Job {
	return predicate.Job(sql.FieldContains(FieldTargetLanguage, v))
}

// TargetLanguageHasPrefix applies the HasPrefix predicate on the "target_language" field.
func TargetLanguageHasPrefix(v string) predicate.Job {
	return predicate.Job(sql.FieldHasPrefix(FieldTargetLanguage, v))
}

// TargetLanguageHasSuffix applies the HasSuffix predicate on the "target_language" field.
func TargetLanguageHasSuffix(v string) predicate.Job {
	return predicate.Job(sql.FieldHasSuffix(FieldTargetLanguage, v))
}

// TargetLanguageIsNil applies the IsNil predicate on the "target_language" field.
func TargetLanguageIsNil() predicate.Job {
	return predicate.Job(sql.FieldIsNull(FieldTargetLanguage))
}

// TargetLanguageNotNil applies the NotNil predicate on the "target_language" field.
func TargetLanguageNotNil() predicate.Job {
	return predicate.Job(sql.FieldNotNull(FieldTargetLanguage))
}

// TargetLanguageEqualFold applies the EqualFold predicate on the "target_language" field.
func TargetLanguageEqualFold(v string) predicate.Job {
	return predicate.Job(sql.FieldEqualFold(FieldTargetLanguage, v))
}

// TargetLanguageContainsFold applies the ContainsFold predicate on the "target_language" field.
func TargetLanguageContainsFold(v string) predicate.Job {
	return predicate.Job(sql.FieldContainsFold(FieldTargetLanguage, v))
}

// DocumentClassEQ applies the EQ predicate on the "document_class" field.
func DocumentClassEQ(v string) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldDocumentClass, v))
}

// DocumentClassNEQ applies the NEQ predicate on the "document_class" field.
func DocumentClassNEQ(v string) predicate.Job {
	return predicate.Job(sql.FieldNEQ(FieldDocumentClass, v))
}

// DocumentClassIn applies the In predicate on the "document_class" field.
func DocumentClassIn(vs ...string) predicate.Job {
	return predicate.Job(sql.FieldIn(FieldDocumentClass, vs...))
}

// DocumentClassNotIn applies the NotIn predicate on the "document_class" field.
func DocumentClassNotIn(vs ...string) predicate.Job {
	return predicate.Job(sql.FieldNotIn(FieldDocumentClass, vs...))
}

// DocumentClassGT applies the GT predicate on the "document_class" field.
func DocumentClassGT(v string) predicate.Job {
	return predicate.Job(sql.FieldGT(FieldDocumentClass, v))
}

// DocumentClassGTE applies the GTE predicate on the "document_class" field.
func DocumentClassGTE(v string) predicate.Job {
	return predicate.Job(sql.FieldGTE(FieldDocumentClass, v))
}

// DocumentClassLT applies the LT predicate on the "document_class" field.
func DocumentClassLT(v string) predicate.Job {
	return predicate.Job(sql.FieldLT(FieldDocumentClass, v))
}

// DocumentClassLTE applies the LTE predicate on the "document_class" field.
func DocumentClassLTE(v string) predicate.Job {
	return predicate.Job(sql.FieldLTE(FieldDocumentClass, v))
}

// DocumentClassContains applies the Contains predicate on the "document_class" field.
func DocumentClassContains(v string) predicate.Job {
	return predicate.Job(sql.FieldContains(FieldDocumentClass, v))
}

// DocumentClassHasPrefix applies the HasPrefix predicate on the "document_class" field.
func DocumentClassHasPrefix(v string) predicate.Job {
	return predicate.Job(sql.FieldHasPrefix(FieldDocumentClass, v))
}

// DocumentClassHasSuffix applies the HasSuffix predicate on the "document_class" field.
func DocumentClassHasSuffix(v string) predicate.Job {
	return predicate.Job(sql.FieldHasSuffix(FieldDocumentClass, v))
}

// DocumentClassIsNil applies the IsNil predicate on the "document_class" field.
func DocumentClassIsNil() predicate.Job {
	return predicate.Job(sql.FieldIsNull(FieldDocumentClass))
}

// DocumentClassNotNil applies the NotNil predicate on the "document_class" field.
func DocumentClassNotNil() predicate.Job {
	return predicate.Job(sql.FieldNotNull(FieldDocumentClass))
}

// DocumentClassEqualFold applies the EqualFold predicate on the "document_class" field.
func DocumentClassEqualFold(v string) predicate.Job {
	return predicate.Job(sql.FieldEqualFold(FieldDocumentClass, v))
}

// DocumentClassContainsFold applies the ContainsFold predicate on the "document_class" field.
func DocumentClassContainsFold(v string) predicate.Job {
	return predicate.Job(sql.FieldContainsFold(FieldDocumentClass, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.Job {
	return predicate.Job(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.Job {
	return predicate.Job(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.Job {
	return predicate.Job(sql.FieldNotIn(FieldStatus, vs...))
}

// QueueLaneEQ applies the EQ predicate on the "queue_lane" field.
func QueueLaneEQ(v string) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldQueueLane, v))
}

// QueueLaneNEQ applies the NEQ predicate on the "queue_lane" field.
func QueueLaneNEQ(v string) predicate.Job {
	return predicate.Job(sql.FieldNEQ(FieldQueueLane, v))
}

// QueueLaneIn applies the In predicate on the "queue_lane" field.
func QueueLaneIn(vs ...string) predicate.Job {
	return predicate.Job(sql.FieldIn(FieldQueueLane, vs...))
}

// QueueLaneNotIn applies the NotIn predicate on the "queue_lane" field.
func QueueLaneNotIn(vs ...string) predicate.Job {
	return predicate.Job(sql.FieldNotIn(FieldQueueLane, vs...))
}

// QueueLaneGT applies the GT predicate on the "queue_lane" field.
func QueueLaneGT(v string) predicate.Job {
	return predicate.Job(sql.FieldGT(FieldQueueLane, v))
}

// QueueLaneGTE applies the GTE predicate on the "queue_lane" field.
func QueueLaneGTE(v string) predicate.Job {
	return predicate.Job(sql.FieldGTE(FieldQueueLane, v))
}

// QueueLaneLT applies the LT predicate on the "queue_lane" field.
func QueueLaneLT(v string) predicate.Job {
	return predicate.Job(sql.FieldLT(FieldQueueLane, v))
}

// QueueLaneLTE applies the LTE predicate on the "queue_lane" field.
func QueueLaneLTE(v string) predicate.Job {
	return predicate.Job(sql.FieldLTE(FieldQueueLane, v))
}

// QueueLaneContains applies the Contains predicate on the "queue_lane" field.
func QueueLaneContains(v string) predicate.Job {
	return predicate.Job(sql.FieldContains(FieldQueueLane, v))
}

// QueueLaneHasPrefix applies the HasPrefix predicate on the "queue_lane" field.
func QueueLaneHasPrefix(v string) predicate.Job {
	return predicate.Job(sql.FieldHasPrefix(FieldQueueLane, v))
}

// QueueLaneHasSuffix applies the HasSuffix predicate on the "queue_lane" field.
func QueueLaneHasSuffix(v string) predicate.Job {
	return predicate.Job(sql.FieldHasSuffix(FieldQueueLane, v))
}

// QueueLaneEqualFold applies the EqualFold predicate on the "queue_lane" field.
func QueueLaneEqualFold(v string) predicate.Job {
	return predicate.Job(sql.FieldEqualFold(FieldQueueLane, v))
}

// QueueLaneContainsFold applies the ContainsFold predicate on the "queue_lane" field.
func QueueLaneContainsFold(v string) predicate.Job {
	return predicate.Job(sql.FieldContainsFold(FieldQueueLane, v))
}

// JobAttemptsEQ applies the EQ predicate on the "job_attempts" field.
func JobAttemptsEQ(v int) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldJobAttempts, v))
}

// JobAttemptsNEQ applies the NEQ predicate on the "job_attempts" field.
func JobAttemptsNEQ(v int) predicate.Job {
	return predicate.Job(sql.FieldNEQ(FieldJobAttempts, v))
}

// JobAttemptsIn applies the In predicate on the "job_attempts" field.
func JobAttemptsIn(vs ...int) predicate.Job {
	return predicate.Job(sql.FieldIn(FieldJobAttempts, vs...))
}

// JobAttemptsNotIn applies the NotIn predicate on the "job_attempts" field.
func JobAttemptsNotIn(vs ...int) predicate.Job {
	return predicate.Job(sql.FieldNotIn(FieldJobAttempts, vs...))
}

// JobAttemptsGT applies the GT predicate on the "job_attempts" field.
func JobAttemptsGT(v int) predicate.Job {
	return predicate.Job(sql.FieldGT(FieldJobAttempts, v))
}

// JobAttemptsGTE applies the GTE predicate on the "job_attempts" field.
func JobAttemptsGTE(v int) predicate.Job {
	return predicate.Job(sql.FieldGTE(FieldJobAttempts, v))
}

// JobAttemptsLT applies the LT predicate on the "job_attempts" field.
func JobAttemptsLT(v int) predicate.Job {
	return predicate.Job(sql.FieldLT(FieldJobAttempts, v))
}

// JobAttemptsLTE applies the LTE predicate on the "job_attempts" field.
func JobAttemptsLTE(v int) predicate.Job {
	return predicate.Job(sql.FieldLTE(FieldJobAttempts, v))
}

// ProgressPercentEQ applies the EQ predicate on the "progress_percent" field.
func ProgressPercentEQ(v int) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldProgressPercent, v))
}

// ProgressPercentNEQ applies the NEQ predicate on the "progress_percent" field.
func ProgressPercentNEQ(v int) predicate.Job {
	return predicate.Job(sql.FieldNEQ(FieldProgressPercent, v))
}

// ProgressPercentIn applies the In predicate on the "progress_percent" field.
func ProgressPercentIn(vs ...int) predicate.Job {
	return predicate.Job(sql.FieldIn(FieldProgressPercent, vs...))
}

// ProgressPercentNotIn applies the NotIn predicate on the "progress_percent" field.
func ProgressPercentNotIn(vs ...int) predicate.Job {
	return predicate.Job(sql.FieldNotIn(FieldProgressPercent, vs...))
}

// ProgressPercentGT applies the GT predicate on the "progress_percent" field.
func ProgressPercentGT(v int) predicate.Job {
	return predicate.Job(sql.FieldGT(FieldProgressPercent, v))
}

// ProgressPercentGTE applies the GTE predicate on the "progress_percent" field.
func ProgressPercentGTE(v int) predicate.Job {
	return predicate.Job(sql.FieldGTE(FieldProgressPercent, v))
}

// ProgressPercentLT applies the LT predicate on the "progress_percent" field.
func ProgressPercentLT(v int) predicate.Job {
	return predicate.Job(sql.FieldLT(FieldProgressPercent, v))
}

// ProgressPercentLTE applies the LTE predicate on the "progress_percent" field.
func ProgressPercentLTE(v int) predicate.Job {
	return predicate.Job(sql.FieldLTE(FieldProgressPercent, v))
}

// CurrentStepEQ applies the EQ predicate on the "current_step" field.
func CurrentStepEQ(v string) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldCurrentStep, v))
}

// CurrentStepNEQ applies the NEQ predicate on the "current_step" field.
func CurrentStepNEQ(v string) predicate.Job {
	return predicate.Job(sql.FieldNEQ(FieldCurrentStep, v))
}

// CurrentStepIn applies the In predicate on the "current_step" field.
func CurrentStepIn(vs ...string) predicate.Job {
	return predicate.Job(sql.FieldIn(FieldCurrentStep, vs...))
}

// CurrentStepNotIn applies the NotIn predicate on the "current_step" field.
func CurrentStepNotIn(vs ...string) predicate.Job {
	return predicate.Job(sql.FieldNotIn(FieldCurrentStep, vs...))
}

// CurrentStepGT applies the GT predicate on the "current_step" field.
func CurrentStepGT(v string) predicate.Job {
	return predicate.Job(sql.FieldGT(FieldCurrentStep, v))
}

// CurrentStepGTE applies the GTE predicate on the "current_step" field.
func CurrentStepGTE(v string) predicate.Job {
	return predicate.Job(sql.FieldGTE(FieldCurrentStep, v))
}

// CurrentStepLT applies the LT predicate on the "current_step" field.
func CurrentStepLT(v string) predicate.Job {
	return predicate.Job(sql.FieldLT(FieldCurrentStep, v))
}

// CurrentStepLTE applies the LTE predicate on the "current_step" field.
func CurrentStepLTE(v string) predicate.Job {
	return predicate.Job(sql.FieldLTE(FieldCurrentStep, v))
}

// CurrentStepContains applies the Contains predicate on the "current_step" field.
func CurrentStepContains(v string) predicate.Job {
	return predicate.Job(sql.FieldContains(FieldCurrentStep, v))
}

// CurrentStepHasPrefix applies the HasPrefix predicate on the "current_step" field.
func CurrentStepHasPrefix(v string) predicate.Job {
	return predicate.Job(sql.FieldHasPrefix(FieldCurrentStep, v))
}

// CurrentStepHasSuffix applies the HasSuffix predicate on the "current_step" field.
func CurrentStepHasSuffix(v string) predicate.Job {
	return predicate.Job(sql.FieldHasSuffix(FieldCurrentStep, v))
}

// CurrentStepIsNil applies the IsNil predicate on the "current_step" field.
func CurrentStepIsNil() predicate.Job {
	return predicate.Job(sql.FieldIsNull(FieldCurrentStep))
}

// CurrentStepNotNil applies the NotNil predicate on the "current_step" field.
func CurrentStepNotNil() predicate.Job {
	return predicate.Job(sql.FieldNotNull(FieldCurrentStep))
}

// CurrentStepEqualFold applies the EqualFold predicate on the "current_step" field.
func CurrentStepEqualFold(v string) predicate.Job {
	return predicate.Job(sql.FieldEqualFold(FieldCurrentStep, v))
}

// CurrentStepContainsFold applies the ContainsFold predicate on the "current_step" field.
func CurrentStepContainsFold(v string) predicate.Job {
	return predicate.Job(sql.FieldContainsFold(FieldCurrentStep, v))
}

// OriginalTextEQ applies the EQ predicate on the "original_text" field.
func OriginalTextEQ(v []byte) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldOriginalText, v))
}

// OriginalTextNEQ applies the NEQ predicate on the "original_text" field.
func OriginalTextNEQ(v []byte) predicate.Job {
	return predicate.Job(sql.FieldNEQ(FieldOriginalText, v))
}

// OriginalTextIn applies the In predicate on the "original_text" field.
func OriginalTextIn(vs ...[]byte) predicate.Job {
	return predicate.Job(sql.FieldIn(FieldOriginalText, vs...))
}

// OriginalTextNotIn applies the NotIn predicate on the "original_text" field.
func OriginalTextNotIn(vs ...[]byte) predicate.Job {
	return predicate.Job(sql.FieldNotIn(FieldOriginalText, vs...))
}

// OriginalTextGT applies the GT predicate on the "original_text" field.
func OriginalTextGT(v []byte) predicate.Job {
	return predicate.Job(sql.FieldGT(FieldOriginalText, v))
}

// OriginalTextGTE applies the GTE predicate on the "original_text" field.
func OriginalTextGTE(v []byte) predicate.Job {
	return predicate.Job(sql.FieldGTE(FieldOriginalText, v))
}

// OriginalTextLT applies the LT predicate on the "original_text" field.
func OriginalTextLT(v []byte) predicate.Job {
	return predicate.Job(sql.FieldLT(FieldOriginalText, v))
}

// OriginalTextLTE applies the LTE predicate on the "original_text" field.
func OriginalTextLTE(v []byte) predicate.Job {
	return predicate.Job(sql.FieldLTE(FieldOriginalText, v))
}

// OriginalTextIsNil applies the IsNil predicate on the "original_text" field.
func OriginalTextIsNil() predicate.Job {
	return predicate.Job(sql.FieldIsNull(FieldOriginalText))
}

// OriginalTextNotNil applies the NotNil predicate on the "original_text" field.
func OriginalTextNotNil() predicate.Job {
	return predicate.Job(sql.FieldNotNull(FieldOriginalText))
}

// SimplifiedTextEQ applies the EQ predicate on the "simplified_text" field.
func SimplifiedTextEQ(v []byte) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldSimplifiedText, v))
}

// SimplifiedTextNEQ applies the NEQ predicate on the "simplified_text" field.
func SimplifiedTextNEQ(v []byte) predicate.Job {
	return predicate.Job(sql.FieldNEQ(FieldSimplifiedText, v))
}

// SimplifiedTextIn applies the In predicate on the "simplified_text" field.
func SimplifiedTextIn(vs ...[]byte) predicate.Job {
	return predicate.Job(sql.FieldIn(FieldSimplifiedText, vs...))
}

// SimplifiedTextNotIn applies the NotIn predicate on the "simplified_text" field.
func SimplifiedTextNotIn(vs ...[]byte) predicate.Job {
	return predicate.Job(sql.FieldNotIn(FieldSimplifiedText, vs...))
}

// SimplifiedTextGT applies the GT predicate on the "simplified_text" field.
func SimplifiedTextGT(v []byte) predicate.Job {
	return predicate.Job(sql.FieldGT(FieldSimplifiedText, v))
}

// SimplifiedTextGTE applies the GTE predicate on the "simplified_text" field.
func SimplifiedTextGTE(v []byte) predicate.Job {
	return predicate.Job(sql.FieldGTE(FieldSimplifiedText, v))
}

// SimplifiedTextLT applies the LT predicate on the "simplified_text" field.
func SimplifiedTextLT(v []byte) predicate.Job {
	return predicate.Job(sql.FieldLT(FieldSimplifiedText, v))
}

// SimplifiedTextLTE applies the LTE predicate on the "simplified_text" field.
func SimplifiedTextLTE(v []byte) predicate.Job {
	return predicate.Job(sql.FieldLTE(FieldSimplifiedText, v))
}

// SimplifiedTextIsNil applies the IsNil predicate on the "simplified_text" field.
func SimplifiedTextIsNil() predicate.Job {
	return predicate.Job(sql.FieldIsNull(FieldSimplifiedText))
}

// SimplifiedTextNotNil applies the NotNil predicate on the "simplified_text" field.
func SimplifiedTextNotNil() predicate.Job {
	return predicate.Job(sql.FieldNotNull(FieldSimplifiedText))
}

// TranslatedTextEQ applies the EQ predicate on the "translated_text" field.
func TranslatedTextEQ(v []byte) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldTranslatedText, v))
}

// TranslatedTextNEQ applies the NEQ predicate on the "translated_text" field.
func TranslatedTextNEQ(v []byte) predicate.Job {
	return predicate.Job(sql.FieldNEQ(FieldTranslatedText, v))
}

// TranslatedTextIn applies the In predicate on the "translated_text" field.
func TranslatedTextIn(vs ...[]byte) predicate.Job {
	return predicate.Job(sql.FieldIn(FieldTranslatedText, vs...))
}

// TranslatedTextNotIn applies the NotIn predicate on the "translated_text" field.
func TranslatedTextNotIn(vs ...[]byte) predicate.Job {
	return predicate.Job(sql.FieldNotIn(FieldTranslatedText, vs...))
}

// TranslatedTextGT applies the GT predicate on the "translated_text" field.
func TranslatedTextGT(v []byte) predicate.Job {
	return predicate.Job(sql.FieldGT(FieldTranslatedText, v))
}

// TranslatedTextGTE applies the GTE predicate on the "translated_text" field.
func TranslatedTextGTE(v []byte) predicate.Job {
	return predicate.Job(sql.FieldGTE(FieldTranslatedText, v))
}

// TranslatedTextLT applies the LT predicate on the "translated_text" field.
func TranslatedTextLT(v []byte) predicate.Job {
	return predicate.Job(sql.FieldLT(FieldTranslatedText, v))
}

// TranslatedTextLTE applies the LTE predicate on the "translated_text" field.
func TranslatedTextLTE(v []byte) predicate.Job {
	return predicate.Job(sql.FieldLTE(FieldTranslatedText, v))
}

// TranslatedTextIsNil applies the IsNil predicate on the "translated_text" field.
func TranslatedTextIsNil() predicate.Job {
	return predicate.Job(sql.FieldIsNull(FieldTranslatedText))
}

// TranslatedTextNotNil applies the NotNil predicate on the "translated_text" field.
func TranslatedTextNotNil() predicate.Job {
	return predicate.Job(sql.FieldNotNull(FieldTranslatedText))
}

// ResultDataIsNil applies the IsNil predicate on the "result_data" field.
func ResultDataIsNil() predicate.Job {
	return predicate.Job(sql.FieldIsNull(FieldResultData))
}

// ResultDataNotNil applies the NotNil predicate on the "result_data" field.
func ResultDataNotNil() predicate.Job {
	return predicate.Job(sql.FieldNotNull(FieldResultData))
}

// ErrorMessageEQ applies the EQ predicate on the "error_message" field.
func ErrorMessageEQ(v string) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldErrorMessage, v))
}

// ErrorMessageNEQ applies the NEQ predicate on the "error_message" field.
func ErrorMessageNEQ(v string) predicate.Job {
	return predicate.Job(sql.FieldNEQ(FieldErrorMessage, v))
}

// ErrorMessageIn applies the In predicate on the "error_message" field.
func ErrorMessageIn(vs ...string) predicate.Job {
	return predicate.Job(sql.FieldIn(FieldErrorMessage, vs...))
}

// ErrorMessageNotIn applies the NotIn predicate on the "error_message" field.
func ErrorMessageNotIn(vs ...string) predicate.Job {
	return predicate.Job(sql.FieldNotIn(FieldErrorMessage, vs...))
}

// ErrorMessageGT applies the GT predicate on the "error_message" field.
func ErrorMessageGT(v string) predicate.Job {
	return predicate.Job(sql.FieldGT(FieldErrorMessage, v))
}

// ErrorMessageGTE applies the GTE predicate on the "error_message" field.
func ErrorMessageGTE(v string) predicate.Job {
	return predicate.Job(sql.FieldGTE(FieldErrorMessage, v))
}

// ErrorMessageLT applies the LT predicate on the "error_message" field.
func ErrorMessageLT(v string) predicate.Job {
	return predicate.Job(sql.FieldLT(FieldErrorMessage, v))
}

// ErrorMessageLTE applies the LTE predicate on the "error_message" field.
func ErrorMessageLTE(v string) predicate.Job {
	return predicate.Job(sql.FieldLTE(FieldErrorMessage, v))
}

// ErrorMessageContains applies the Contains predicate on the "error_message" field.
func ErrorMessageContains(v string) predicate.Job {
	return predicate.Job(sql.FieldContains(FieldErrorMessage, v))
}

// ErrorMessageHasPrefix applies the HasPrefix predicate on the "error_message" field.
func ErrorMessageHasPrefix(v string) predicate.Job {
	return predicate.Job(sql.FieldHasPrefix(FieldErrorMessage, v))
}

// ErrorMessageHasSuffix applies the HasSuffix predicate on the "error_message" field.
func ErrorMessageHasSuffix(v string) predicate.Job {
	return predicate.Job(sql.FieldHasSuffix(FieldErrorMessage, v))
}

// ErrorMessageIsNil applies the IsNil predicate on the "error_message" field.
func ErrorMessageIsNil() predicate.Job {
	return predicate.Job(sql.FieldIsNull(FieldErrorMessage))
}

// ErrorMessageNotNil applies the NotNil predicate on the "error_message" field.
func ErrorMessageNotNil() predicate.Job {
	return predicate.Job(sql.FieldNotNull(FieldErrorMessage))
}

// ErrorMessageEqualFold applies the EqualFold predicate on the "error_message" field.
func ErrorMessageEqualFold(v string) predicate.Job {
	return predicate.Job(sql.FieldEqualFold(FieldErrorMessage, v))
}

// ErrorMessageContainsFold applies the ContainsFold predicate on the "error_message" field.
func ErrorMessageContainsFold(v string) predicate.Job {
	return predicate.Job(sql.FieldContainsFold(FieldErrorMessage, v))
}

// TotalTokensEQ applies the EQ predicate on the "total_tokens" field.
func TotalTokensEQ(v int) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldTotalTokens, v))
}

// TotalTokensNEQ applies the NEQ predicate on the "total_tokens" field.
func TotalTokensNEQ(v int) predicate.Job {
	return predicate.Job(sql.FieldNEQ(FieldTotalTokens, v))
}

// TotalTokensIn applies the In predicate on the "total_tokens" field.
func TotalTokensIn(vs ...int) predicate.Job {
	return predicate.Job(sql.FieldIn(FieldTotalTokens, vs...))
}

// TotalTokensNotIn applies the NotIn predicate on the "total_tokens" field.
func TotalTokensNotIn(vs ...int) predicate.Job {
	return predicate.Job(sql.FieldNotIn(FieldTotalTokens, vs...))
}

// TotalTokensGT applies the GT predicate on the "total_tokens" field.
func TotalTokensGT(v int) predicate.Job {
	return predicate.Job(sql.FieldGT(FieldTotalTokens, v))
}

// TotalTokensGTE applies the GTE predicate on the "total_tokens" field.
func TotalTokensGTE(v int) predicate.Job {
	return predicate.Job(sql.FieldGTE(FieldTotalTokens, v))
}

// TotalTokensLT applies the LT predicate on the "total_tokens" field.
func TotalTokensLT(v int) predicate.Job {
	return predicate.Job(sql.FieldLT(FieldTotalTokens, v))
}

// TotalTokensLTE applies the LTE predicate on the "total_tokens" field.
func TotalTokensLTE(v int) predicate.Job {
	return predicate.Job(sql.FieldLTE(FieldTotalTokens, v))
}

// TotalCostEQ applies the EQ predicate on the "total_cost" field.
func TotalCostEQ(v float64) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldTotalCost, v))
}

// TotalCostNEQ applies the NEQ predicate on the "total_cost" field.
func TotalCostNEQ(v float64) predicate.Job {
	return predicate.Job(sql.FieldNEQ(FieldTotalCost, v))
}

// TotalCostIn applies the In predicate on the "total_cost" field.
func TotalCostIn(vs ...float64) predicate.Job {
	return predicate.Job(sql.FieldIn(FieldTotalCost, vs...))
}

// TotalCostNotIn applies the NotIn predicate on the "total_cost" field.
func TotalCostNotIn(vs ...float64) predicate.Job {
	return predicate.Job(sql.FieldNotIn(FieldTotalCost, vs...))
}

// TotalCostGT applies the GT predicate on the "total_cost" field.
func TotalCostGT(v float64) predicate.Job {
	return predicate.Job(sql.FieldGT(FieldTotalCost, v))
}

// TotalCostGTE applies the GTE predicate on the "total_cost" field.
func TotalCostGTE(v float64) predicate.Job {
	return predicate.Job(sql.FieldGTE(FieldTotalCost, v))
}

// TotalCostLT applies the LT predicate on the "total_cost" field.
func TotalCostLT(v float64) predicate.Job {
	return predicate.Job(sql.FieldLT(FieldTotalCost, v))
}

// TotalCostLTE applies the LTE predicate on the "total_cost" field.
func TotalCostLTE(v float64) predicate.Job {
	return predicate.Job(sql.FieldLTE(FieldTotalCost, v))
}

// PiiDegradedEQ applies the EQ predicate on the "pii_degraded" field.
func PiiDegradedEQ(v bool) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldPiiDegraded, v))
}

// PiiDegradedNEQ applies the NEQ predicate on the "pii_degraded" field.
func PiiDegradedNEQ(v bool) predicate.Job {
	return predicate.Job(sql.FieldNEQ(FieldPiiDegraded, v))
}

// TenantEQ applies the EQ predicate on the "tenant" field.
func TenantEQ(v string) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldTenant, v))
}

// TenantNEQ applies the NEQ predicate on the "tenant" field.
func TenantNEQ(v string) predicate.Job {
	return predicate.Job(sql.FieldNEQ(FieldTenant, v))
}

// TenantIn applies the In predicate on the "tenant" field.
func TenantIn(vs ...string) predicate.Job {
	return predicate.Job(sql.FieldIn(FieldTenant, vs...))
}

// TenantNotIn applies the NotIn predicate on the "tenant" field.
func TenantNotIn(vs ...string) predicate.Job {
	return predicate.Job(sql.FieldNotIn(FieldTenant, vs...))
}

// TenantGT applies the GT predicate on the "tenant" field.
func TenantGT(v string) predicate.Job {
	return predicate.Job(sql.FieldGT(FieldTenant, v))
}

// TenantGTE applies the GTE predicate on the "tenant" field.
func TenantGTE(v string) predicate.Job {
	return predicate.Job(sql.FieldGTE(FieldTenant, v))
}

// TenantLT applies the LT predicate on the "tenant" field.
func TenantLT(v string) predicate.Job {
	return predicate.Job(sql.FieldLT(FieldTenant, v))
}

// TenantLTE applies the LTE predicate on the "tenant" field.
func TenantLTE(v string) predicate.Job {
	return predicate.Job(sql.FieldLTE(FieldTenant, v))
}

// TenantContains applies the Contains predicate on the "tenant" field.
func TenantContains(v string) predicate.Job {
	return predicate.Job(sql.FieldContains(FieldTenant, v))
}

// TenantHasPrefix applies the HasPrefix predicate on the "tenant" field.
func TenantHasPrefix(v string) predicate.Job {
	return predicate.Job(sql.FieldHasPrefix(FieldTenant, v))
}

// TenantHasSuffix applies the HasSuffix predicate on the "tenant" field.
func TenantHasSuffix(v string) predicate.Job {
	return predicate.Job(sql.FieldHasSuffix(FieldTenant, v))
}

// TenantIsNil applies the IsNil predicate on the "tenant" field.
func TenantIsNil() predicate.Job {
	return predicate.Job(sql.FieldIsNull(FieldTenant))
}

// TenantNotNil applies the NotNil predicate on the "tenant" field.
func TenantNotNil() predicate.Job {
	return predicate.Job(sql.FieldNotNull(FieldTenant))
}

// TenantEqualFold applies the EqualFold predicate on the "tenant" field.
func TenantEqualFold(v string) predicate.Job {
	return predicate.Job(sql.FieldEqualFold(FieldTenant, v))
}

// TenantContainsFold applies the ContainsFold predicate on the "tenant" field.
func TenantContainsFold(v string) predicate.Job {
	return predicate.Job(sql.FieldContainsFold(FieldTenant, v))
}

// SubmittedByEQ applies the EQ predicate on the "submitted_by" field.
func SubmittedByEQ(v string) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldSubmittedBy, v))
}

// SubmittedByNEQ applies the NEQ predicate on the "submitted_by" field.
func SubmittedByNEQ(v string) predicate.Job {
	return predicate.Job(sql.FieldNEQ(FieldSubmittedBy, v))
}

// SubmittedByIn applies the In predicate on the "submitted_by" field.
func SubmittedByIn(vs ...string) predicate.Job {
	return predicate.Job(sql.FieldIn(FieldSubmittedBy, vs...))
}

// SubmittedByNotIn applies the NotIn predicate on the "submitted_by" field.
func SubmittedByNotIn(vs ...string) predicate.Job {
	return predicate.Job(sql.FieldNotIn(FieldSubmittedBy, vs...))
}

// SubmittedByGT applies the GT predicate on the "submitted_by" field.
func SubmittedByGT(v string) predicate.Job {
	return predicate.Job(sql.FieldGT(FieldSubmittedBy, v))
}

// SubmittedByGTE applies the GTE predicate on the "submitted_by" field.
func SubmittedByGTE(v string) predicate.Job {
	return predicate.Job(sql.FieldGTE(FieldSubmittedBy, v))
}

// SubmittedByLT applies the LT predicate on the "submitted_by" field.
func SubmittedByLT(v string) predicate.Job {
	return predicate.Job(sql.FieldLT(FieldSubmittedBy, v))
}

// SubmittedByLTE applies the LTE predicate on the "submitted_by" field.
func SubmittedByLTE(v string) predicate.Job {
	return predicate.Job(sql.FieldLTE(FieldSubmittedBy, v))
}

// SubmittedByContains applies the Contains predicate on the "submitted_by" field.
func SubmittedByContains(v string) predicate.Job {
	return predicate.Job(sql.FieldContains(FieldSubmittedBy, v))
}

// SubmittedByHasPrefix applies the HasPrefix predicate on the "submitted_by" field.
func SubmittedByHasPrefix(v string) predicate.Job {
	return predicate.Job(sql.FieldHasPrefix(FieldSubmittedBy, v))
}

// SubmittedByHasSuffix applies the HasSuffix predicate on the "submitted_by" field.
func SubmittedByHasSuffix(v string) predicate.Job {
	return predicate.Job(sql.FieldHasSuffix(FieldSubmittedBy, v))
}

// SubmittedByIsNil applies the IsNil predicate on the "submitted_by" field.
func SubmittedByIsNil() predicate.Job {
	return predicate.Job(sql.FieldIsNull(FieldSubmittedBy))
}

// SubmittedByNotNil applies the NotNil predicate on the "submitted_by" field.
func SubmittedByNotNil() predicate.Job {
	return predicate.Job(sql.FieldNotNull(FieldSubmittedBy))
}

// SubmittedByEqualFold applies the EqualFold predicate on the "submitted_by" field.
func SubmittedByEqualFold(v string) predicate.Job {
	return predicate.Job(sql.FieldEqualFold(FieldSubmittedBy, v))
}

// SubmittedByContainsFold applies the ContainsFold predicate on the "submitted_by" field.
func SubmittedByContainsFold(v string) predicate.Job {
	return predicate.Job(sql.FieldContainsFold(FieldSubmittedBy, v))
}

// WorkerIDEQ applies the EQ predicate on the "worker_id" field.
func WorkerIDEQ(v string) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldWorkerID, v))
}

// WorkerIDNEQ applies the NEQ predicate on the "worker_id" field.
func WorkerIDNEQ(v string) predicate.Job {
	return predicate.Job(sql.FieldNEQ(FieldWorkerID, v))
}

// WorkerIDIn applies the In predicate on the "worker_id" field.
func WorkerIDIn(vs ...string) predicate.Job {
	return predicate.Job(sql.FieldIn(FieldWorkerID, vs...))
}

// WorkerIDNotIn applies the NotIn predicate on the "worker_id" field.
func WorkerIDNotIn(vs ...string) predicate.Job {
	return predicate.Job(sql.FieldNotIn(FieldWorkerID, vs...))
}

// WorkerIDGT applies the GT predicate on the "worker_id" field.
func WorkerIDGT(v string) predicate.Job {
	return predicate.Job(sql.FieldGT(FieldWorkerID, v))
}

// WorkerIDGTE applies the GTE predicate on the "worker_id" field.
func WorkerIDGTE(v string) predicate.Job {
	return predicate.Job(sql.FieldGTE(FieldWorkerID, v))
}

// WorkerIDLT applies the LT predicate on the "worker_id" field.
func WorkerIDLT(v string) predicate.Job {
	return predicate.Job(sql.FieldLT(FieldWorkerID, v))
}

// WorkerIDLTE applies the LTE predicate on the "worker_id" field.
func WorkerIDLTE(v string) predicate.Job {
	return predicate.Job(sql.FieldLTE(FieldWorkerID, v))
}

// WorkerIDContains applies the Contains predicate on the "worker_id" field.
func WorkerIDContains(v string) predicate.Job {
	return predicate.Job(sql.FieldContains(FieldWorkerID, v))
}

// WorkerIDHasPrefix applies the HasPrefix predicate on the "worker_id" field.
func WorkerIDHasPrefix(v string) predicate.Job {
	return predicate.Job(sql.FieldHasPrefix(FieldWorkerID, v))
}

// WorkerIDHasSuffix applies the HasSuffix predicate on the "worker_id" field.
func WorkerIDHasSuffix(v string) predicate.Job {
	return predicate.Job(sql.FieldHasSuffix(FieldWorkerID, v))
}

// WorkerIDIsNil applies the IsNil predicate on the "worker_id" field.
func WorkerIDIsNil() predicate.Job {
	return predicate.Job(sql.FieldIsNull(FieldWorkerID))
}

// WorkerIDNotNil applies the NotNil predicate on the "worker_id" field.
func WorkerIDNotNil() predicate.Job {
	return predicate.Job(sql.FieldNotNull(FieldWorkerID))
}

// WorkerIDEqualFold applies the EqualFold predicate on the "worker_id" field.
func WorkerIDEqualFold(v string) predicate.Job {
	return predicate.Job(sql.FieldEqualFold(FieldWorkerID, v))
}

// WorkerIDContainsFold applies the ContainsFold predicate on the "worker_id" field.
func WorkerIDContainsFold(v string) predicate.Job {
	return predicate.Job(sql.FieldContainsFold(FieldWorkerID, v))
}

// LastHeartbeatAtEQ applies the EQ predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtEQ(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldLastHeartbeatAt, v))
}

// LastHeartbeatAtNEQ applies the NEQ predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtNEQ(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldNEQ(FieldLastHeartbeatAt, v))
}

// LastHeartbeatAtIn applies the In predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtIn(vs ...time.Time) predicate.Job {
	return predicate.Job(sql.FieldIn(FieldLastHeartbeatAt, vs...))
}

// LastHeartbeatAtNotIn applies the NotIn predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtNotIn(vs ...time.Time) predicate.Job {
	return predicate.Job(sql.FieldNotIn(FieldLastHeartbeatAt, vs...))
}

// LastHeartbeatAtGT applies the GT predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtGT(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldGT(FieldLastHeartbeatAt, v))
}

// LastHeartbeatAtGTE applies the GTE predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtGTE(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldGTE(FieldLastHeartbeatAt, v))
}

// LastHeartbeatAtLT applies the LT predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtLT(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldLT(FieldLastHeartbeatAt, v))
}

// LastHeartbeatAtLTE applies the LTE predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtLTE(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldLTE(FieldLastHeartbeatAt, v))
}

// LastHeartbeatAtIsNil applies the IsNil predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtIsNil() predicate.Job {
	return predicate.Job(sql.FieldIsNull(FieldLastHeartbeatAt))
}

// LastHeartbeatAtNotNil applies the NotNil predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtNotNil() predicate.Job {
	return predicate.Job(sql.FieldNotNull(FieldLastHeartbeatAt))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Job {
	return predicate.Job(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Job {
	return predicate.Job(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Job {
	return predicate.Job(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Job {
	return predicate.Job(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldLTE(FieldUpdatedAt, v))
}

// StartedAtEQ applies the EQ predicate on the "started_at" field.
func StartedAtEQ(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldStartedAt, v))
}

// StartedAtNEQ applies the NEQ predicate on the "started_at" field.
func StartedAtNEQ(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldNEQ(FieldStartedAt, v))
}

// StartedAtIn applies the In predicate on the "started_at" field.
func StartedAtIn(vs ...time.Time) predicate.Job {
	return predicate.Job(sql.FieldIn(FieldStartedAt, vs...))
}

// StartedAtNotIn applies the NotIn predicate on the "started_at" field.
func StartedAtNotIn(vs ...time.Time) predicate.Job {
	return predicate.Job(sql.FieldNotIn(FieldStartedAt, vs...))
}

// StartedAtGT applies the GT predicate on the "started_at" field.
func StartedAtGT(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldGT(FieldStartedAt, v))
}

// StartedAtGTE applies the GTE predicate on the "started_at" field.
func StartedAtGTE(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldGTE(FieldStartedAt, v))
}

// StartedAtLT applies the LT predicate on the "started_at" field.
func StartedAtLT(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldLT(FieldStartedAt, v))
}

// StartedAtLTE applies the LTE predicate on the "started_at" field.
func StartedAtLTE(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldLTE(FieldStartedAt, v))
}

// StartedAtIsNil applies the IsNil predicate on the "started_at" field.
func StartedAtIsNil() predicate.Job {
	return predicate.Job(sql.FieldIsNull(FieldStartedAt))
}

// StartedAtNotNil applies the NotNil predicate on the "started_at" field.
func StartedAtNotNil() predicate.Job {
	return predicate.Job(sql.FieldNotNull(FieldStartedAt))
}

// CompletedAtEQ applies the EQ predicate on the "completed_at" field.
func CompletedAtEQ(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldCompletedAt, v))
}

// CompletedAtNEQ applies the NEQ predicate on the "completed_at" field.
func CompletedAtNEQ(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldNEQ(FieldCompletedAt, v))
}

// CompletedAtIn applies the In predicate on the "completed_at" field.
func CompletedAtIn(vs ...time.Time) predicate.Job {
	return predicate.Job(sql.FieldIn(FieldCompletedAt, vs...))
}

// CompletedAtNotIn applies the NotIn predicate on the "completed_at" field.
func CompletedAtNotIn(vs ...time.Time) predicate.Job {
	return predicate.Job(sql.FieldNotIn(FieldCompletedAt, vs...))
}

// CompletedAtGT applies the GT predicate on the "completed_at" field.
func CompletedAtGT(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldGT(FieldCompletedAt, v))
}

// CompletedAtGTE applies the GTE predicate on the "completed_at" field.
func CompletedAtGTE(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldGTE(FieldCompletedAt, v))
}

// CompletedAtLT applies the LT predicate on the "completed_at" field.
func CompletedAtLT(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldLT(FieldCompletedAt, v))
}

// CompletedAtLTE applies the LTE predicate on the "completed_at" field.
func CompletedAtLTE(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldLTE(FieldCompletedAt, v))
}

// CompletedAtIsNil applies the IsNil predicate on the "completed_at" field.
func CompletedAtIsNil() predicate.Job {
	return predicate.Job(sql.FieldIsNull(FieldCompletedAt))
}

// CompletedAtNotNil applies the NotNil predicate on the "completed_at" field.
func CompletedAtNotNil() predicate.Job {
	return predicate.Job(sql.FieldNotNull(FieldCompletedAt))
}

// HasStepExecutions applies the HasEdge predicate on the "step_executions" edge.
func HasStepExecutions() predicate.Job {
	return predicate.Job(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, StepExecutionsTable, StepExecutionsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasStepExecutionsWith applies the HasEdge predicate on the "step_executions" edge with a given conditions (other predicates).
func HasStepExecutionsWith(preds ...predicate.StepExecution) predicate.Job {
	return predicate.Job(func(s *sql.Selector) {
		step := newStepExecutionsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasAiInteractions applies the HasEdge predicate on the "ai_interactions" edge.
func HasAiInteractions() predicate.Job {
	return predicate.Job(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, AiInteractionsTable, AiInteractionsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasAiInteractionsWith applies the HasEdge predicate on the "ai_interactions" edge with a given conditions (other predicates).
func HasAiInteractionsWith(preds ...predicate.AIInteractionLog) predicate.Job {
	return predicate.Job(func(s *sql.Selector) {
		step := newAiInteractionsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Job) predicate.Job {
	return predicate.Job(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Job) predicate.Job {
	return predicate.Job(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Job) predicate.Job {
	return predicate.Job(sql.NotPredicates(p))
}
