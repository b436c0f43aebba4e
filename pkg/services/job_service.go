package services

import (
	"context"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"
	"github.com/zeebo/blake3"

	"github.com/klartext-health/befund/ent"
	"github.com/klartext-health/befund/ent/job"
	"github.com/klartext-health/befund/pkg/crypto"
	"github.com/klartext-health/befund/pkg/pipeline"
)

// writeTimeout bounds critical writes that must survive request
// cancellation (terminal status updates, reservations).
const writeTimeout = 10 * time.Second

// TerminalStatuses are the job states no transition leaves.
var TerminalStatuses = []job.Status{
	job.StatusCompleted,
	job.StatusFailed,
	job.StatusCancelled,
	job.StatusTimeout,
	job.StatusTerminated,
}

// JobService manages the job lifecycle and owns the sealing of all
// sensitive payloads with the data key.
type JobService struct {
	client *ent.Client
	box    *crypto.Box
}

// NewJobService creates a new JobService. box is the data encryption key.
func NewJobService(client *ent.Client, box *crypto.Box) *JobService {
	return &JobService{client: client, box: box}
}

// CreateJobRequest is the upload payload.
type CreateJobRequest struct {
	Filename       string
	FileType       string
	Content        []byte
	TargetLanguage string
	Tenant         string
	SubmittedBy    string
}

// Create persists a new PENDING job with the upload sealed at rest. The
// returned entity carries the public processing_id the caller polls with.
func (s *JobService) Create(httpCtx context.Context, req CreateJobRequest) (*ent.Job, error) {
	if req.Filename == "" {
		return nil, NewValidationError("filename", "required")
	}
	if req.FileType == "" {
		return nil, NewValidationError("file_type", "required")
	}
	if len(req.Content) == 0 {
		return nil, NewValidationError("content", "empty upload")
	}

	sealed, err := s.box.Seal(req.Content)
	if err != nil {
		return nil, fmt.Errorf("failed to seal upload: %w", err)
	}
	digest := blake3.Sum256(req.Content)

	ctx, cancel := context.WithTimeout(context.Background(), writeTimeout)
	defer cancel()

	builder := s.client.Job.Create().
		SetID(uuid.New().String()).
		SetProcessingID(newProcessingID()).
		SetFilename(req.Filename).
		SetFileType(req.FileType).
		SetFileSize(int64(len(req.Content))).
		SetFileContent(sealed).
		SetFileHash(hex.EncodeToString(digest[:])).
		SetStatus(job.StatusPending)

	if req.TargetLanguage != "" {
		builder.SetTargetLanguage(req.TargetLanguage)
	}
	if req.Tenant != "" {
		builder.SetTenant(req.Tenant)
	}
	if req.SubmittedBy != "" {
		builder.SetSubmittedBy(req.SubmittedBy)
	}

	created, err := builder.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create job: %w", err)
	}
	return created, nil
}

// SetProcessingOptions records caller-chosen processing parameters on a
// job that has not been queued yet.
func (s *JobService) SetProcessingOptions(httpCtx context.Context, jobID, targetLanguage, documentClass string) error {
	ctx, cancel := context.WithTimeout(context.Background(), writeTimeout)
	defer cancel()

	builder := s.client.Job.Update().
		Where(job.ID(jobID), job.StatusEQ(job.StatusPending))
	if targetLanguage != "" {
		builder.SetTargetLanguage(targetLanguage)
	}
	if documentClass != "" {
		builder.SetDocumentClass(documentClass)
	}

	n, err := builder.Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to set processing options: %w", err)
	}
	if n == 0 {
		return ErrConcurrentModification
	}
	return nil
}

// SnapshotAndQueue freezes the pipeline snapshot onto the job and moves it
// PENDING to QUEUED. The caller enqueues the id on the broker afterwards;
// the DB poller picks up jobs whose push was lost.
func (s *JobService) SnapshotAndQueue(httpCtx context.Context, jobID string, snap *pipeline.Snapshot, ocrConfig map[string]interface{}, lane string) error {
	raw, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("failed to marshal pipeline snapshot: %w", err)
	}
	var snapJSON map[string]interface{}
	if err := json.Unmarshal(raw, &snapJSON); err != nil {
		return fmt.Errorf("failed to round-trip pipeline snapshot: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), writeTimeout)
	defer cancel()

	builder := s.client.Job.Update().
		Where(job.ID(jobID), job.StatusEQ(job.StatusPending)).
		SetStatus(job.StatusQueued).
		SetPipelineConfig(snapJSON).
		SetQueueLane(lane)
	if ocrConfig != nil {
		builder.SetOcrConfig(ocrConfig)
	}

	n, err := builder.Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to queue job: %w", err)
	}
	if n == 0 {
		return ErrConcurrentModification
	}
	return nil
}

// ReserveForRun claims a queued job for a worker. The compare-and-swap on
// status makes the reservation at-most-once across replicas.
func (s *JobService) ReserveForRun(ctx context.Context, jobID, workerID string) (*ent.Job, error) {
	now := time.Now()
	n, err := s.client.Job.Update().
		Where(job.ID(jobID), job.StatusEQ(job.StatusQueued)).
		SetStatus(job.StatusRunning).
		SetWorkerID(workerID).
		SetStartedAt(now).
		SetLastHeartbeatAt(now).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to reserve job: %w", err)
	}
	if n == 0 {
		return nil, ErrConcurrentModification
	}
	return s.Get(ctx, jobID)
}

// Heartbeat refreshes the liveness marker of a running job.
func (s *JobService) Heartbeat(ctx context.Context, jobID string) error {
	_, err := s.client.Job.Update().
		Where(job.ID(jobID), job.StatusEQ(job.StatusRunning)).
		SetLastHeartbeatAt(time.Now()).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to heartbeat job: %w", err)
	}
	return nil
}

// UpdateProgress records the percent and the step currently running.
// Progress never moves backwards even when the phase-2 estimate shifts.
func (s *JobService) UpdateProgress(ctx context.Context, jobID string, percent int, currentStep string) error {
	if percent < 0 {
		percent = 0
	}
	if percent > 100 {
		percent = 100
	}
	_, err := s.client.Job.Update().
		Where(job.ID(jobID), job.ProgressPercentLT(percent+1)).
		SetProgressPercent(percent).
		SetCurrentStep(currentStep).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to update progress: %w", err)
	}
	return nil
}

// AddUsage atomically increments the job's token and cost totals.
func (s *JobService) AddUsage(ctx context.Context, jobID string, tokens int, cost float64) error {
	_, err := s.client.Job.UpdateOneID(jobID).
		AddTotalTokens(tokens).
		AddTotalCost(cost).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to add usage: %w", err)
	}
	return nil
}

// SetOriginalText seals the PII-cleaned OCR text onto the job.
func (s *JobService) SetOriginalText(ctx context.Context, jobID, text string, degraded bool) error {
	sealed, err := s.box.SealString(text)
	if err != nil {
		return fmt.Errorf("failed to seal original text: %w", err)
	}
	_, err = s.client.Job.UpdateOneID(jobID).
		SetOriginalText(sealed).
		SetPiiDegraded(degraded).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to store original text: %w", err)
	}
	return nil
}

// CompleteResult carries everything a finished run writes back.
type CompleteResult struct {
	SimplifiedText string
	TranslatedText string
	ResultData     map[string]interface{}
}

// Complete moves a running job to COMPLETED with its outputs sealed.
func (s *JobService) Complete(ctx context.Context, jobID string, res CompleteResult) error {
	builder := s.terminal(jobID, job.StatusCompleted).
		SetProgressPercent(100).
		ClearCurrentStep()
	if res.SimplifiedText != "" {
		sealed, err := s.box.SealString(res.SimplifiedText)
		if err != nil {
			return fmt.Errorf("failed to seal simplified text: %w", err)
		}
		builder.SetSimplifiedText(sealed)
	}
	if res.TranslatedText != "" {
		sealed, err := s.box.SealString(res.TranslatedText)
		if err != nil {
			return fmt.Errorf("failed to seal translated text: %w", err)
		}
		builder.SetTranslatedText(sealed)
	}
	if res.ResultData != nil {
		builder.SetResultData(res.ResultData)
	}
	return s.saveTerminal(builder, "complete")
}

// Terminate finishes a job gracefully through a stop condition. The run
// counts as handled, not failed; the termination details land in
// result_data for the status endpoint.
func (s *JobService) Terminate(ctx context.Context, jobID string, resultData map[string]interface{}) error {
	builder := s.terminal(jobID, job.StatusTerminated).
		SetProgressPercent(100).
		ClearCurrentStep()
	if resultData != nil {
		builder.SetResultData(resultData)
	}
	return s.saveTerminal(builder, "terminate")
}

// Fail moves a running job to FAILED with the operator-facing message.
func (s *JobService) Fail(ctx context.Context, jobID, message string) error {
	return s.saveTerminal(s.terminal(jobID, job.StatusFailed).SetErrorMessage(message), "fail")
}

// Timeout marks a job that exceeded its execution deadline.
func (s *JobService) Timeout(ctx context.Context, jobID string) error {
	return s.saveTerminal(
		s.terminal(jobID, job.StatusTimeout).SetErrorMessage("job exceeded the execution deadline"),
		"time out")
}

// Cancel moves any non-terminal job to CANCELLED. The worker pool observes
// the transition and cancels the running execution context.
func (s *JobService) Cancel(httpCtx context.Context, processingID string) (*ent.Job, error) {
	ctx, cancel := context.WithTimeout(context.Background(), writeTimeout)
	defer cancel()

	jb, err := s.GetByProcessingID(ctx, processingID)
	if err != nil {
		return nil, err
	}
	n, err := s.client.Job.Update().
		Where(job.ID(jb.ID), job.StatusNotIn(TerminalStatuses...)).
		SetStatus(job.StatusCancelled).
		SetCompletedAt(time.Now()).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to cancel job: %w", err)
	}
	if n == 0 {
		return nil, ErrConcurrentModification
	}
	return s.Get(ctx, jb.ID)
}

// Requeue returns a transiently failed run to the queue on the low
// priority lane. At most one requeue per job; a second transient failure
// is final.
func (s *JobService) Requeue(ctx context.Context, jobID, lane string, maxAttempts int) (bool, error) {
	n, err := s.client.Job.Update().
		Where(
			job.ID(jobID),
			job.StatusEQ(job.StatusRunning),
			job.JobAttemptsLT(maxAttempts),
		).
		SetStatus(job.StatusQueued).
		AddJobAttempts(1).
		SetQueueLane(lane).
		ClearWorkerID().
		ClearStartedAt().
		ClearLastHeartbeatAt().
		Save(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to requeue job: %w", err)
	}
	return n > 0, nil
}

// Get fetches a job by its internal id.
func (s *JobService) Get(ctx context.Context, jobID string) (*ent.Job, error) {
	jb, err := s.client.Job.Get(ctx, jobID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get job: %w", err)
	}
	return jb, nil
}

// GetByProcessingID fetches a job by its public token.
func (s *JobService) GetByProcessingID(ctx context.Context, processingID string) (*ent.Job, error) {
	jb, err := s.client.Job.Query().
		Where(job.ProcessingID(processingID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get job by processing id: %w", err)
	}
	return jb, nil
}

// Texts is the decrypted view of a job's sealed payloads.
type Texts struct {
	OriginalText   string
	SimplifiedText string
	TranslatedText string
}

// OpenTexts decrypts the job's text fields. Absent fields stay empty.
func (s *JobService) OpenTexts(jb *ent.Job) (Texts, error) {
	var t Texts
	var err error
	if t.OriginalText, err = s.openString(jb.OriginalText); err != nil {
		return t, fmt.Errorf("failed to open original text: %w", err)
	}
	if t.SimplifiedText, err = s.openString(jb.SimplifiedText); err != nil {
		return t, fmt.Errorf("failed to open simplified text: %w", err)
	}
	if t.TranslatedText, err = s.openString(jb.TranslatedText); err != nil {
		return t, fmt.Errorf("failed to open translated text: %w", err)
	}
	return t, nil
}

// OpenContent decrypts the uploaded file payload.
func (s *JobService) OpenContent(jb *ent.Job) ([]byte, error) {
	return s.box.Open(jb.FileContent)
}

// Snapshot deserializes the job's frozen pipeline config.
func (s *JobService) Snapshot(jb *ent.Job) (*pipeline.Snapshot, error) {
	if jb.PipelineConfig == nil {
		return nil, fmt.Errorf("job %s has no pipeline snapshot", jb.ID)
	}
	raw, err := json.Marshal(jb.PipelineConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to re-marshal pipeline snapshot: %w", err)
	}
	var snap pipeline.Snapshot
	if err := json.Unmarshal(raw, &snap); err != nil {
		return nil, fmt.Errorf("failed to decode pipeline snapshot: %w", err)
	}
	return &snap, nil
}

func (s *JobService) openString(sealed []byte) (string, error) {
	if len(sealed) == 0 {
		return "", nil
	}
	return s.box.OpenString(sealed)
}

// terminal builds an update that only fires while the job is still
// running; terminal states never overwrite each other.
func (s *JobService) terminal(jobID string, to job.Status) *ent.JobUpdate {
	return s.client.Job.Update().
		Where(job.ID(jobID), job.StatusEQ(job.StatusRunning)).
		SetStatus(to).
		SetCompletedAt(time.Now())
}

func (s *JobService) saveTerminal(builder *ent.JobUpdate, verb string) error {
	ctx, cancel := context.WithTimeout(context.Background(), writeTimeout)
	defer cancel()

	n, err := builder.Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to %s job: %w", verb, err)
	}
	if n == 0 {
		return ErrConcurrentModification
	}
	return nil
}

func newProcessingID() string {
	return ulid.Make().String()
}
