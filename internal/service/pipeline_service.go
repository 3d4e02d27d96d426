package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jewelflow/workshop-service/internal/domain"
	"github.com/jewelflow/workshop-service/internal/events"
	"github.com/jewelflow/workshop-service/internal/repository"
	apperrors "github.com/jewelflow/workshop-service/pkg/util"
)

// PipelineService owns job creation and the photo-gated stage advancement.
type PipelineService struct {
	jobs       repository.JobRepository
	dispatcher events.Dispatcher
	now        func() time.Time
}

// PipelineDependencies bundles collaborators for the pipeline service.
type PipelineDependencies struct {
	JobRepo    repository.JobRepository
	Dispatcher events.Dispatcher
	Now        func() time.Time
}

// NewPipelineService constructs the service.
func NewPipelineService(deps PipelineDependencies) *PipelineService {
	now := deps.Now
	if now == nil {
		now = time.Now
	}
	return &PipelineService{
		jobs:       deps.JobRepo,
		dispatcher: deps.Dispatcher,
		now:        now,
	}
}

// JobCreateInput describes job creation payload.
type JobCreateInput struct {
	DesignImageURL string
	Priority       domain.Priority
}

// CreateJob registers a new job at the first pipeline stage with an empty
// history.
func (s *PipelineService) CreateJob(ctx context.Context, input JobCreateInput) (*domain.Job, error) {
	if input.DesignImageURL == "" {
		return nil, apperrors.NewValidationError("design image required", nil)
	}
	priority := input.Priority
	if priority == "" {
		priority = domain.PriorityNormal
	}
	switch priority {
	case domain.PriorityNormal, domain.PriorityHigh, domain.PriorityUrgent:
	default:
		return nil, apperrors.NewValidationError("unknown priority", map[string]any{"priority": priority})
	}

	job := &domain.Job{
		DesignImageURL: input.DesignImageURL,
		CurrentStage:   domain.Stages[0],
		Priority:       priority,
		History:        []domain.JobLog{},
	}
	if err := s.jobs.Create(ctx, job); err != nil {
		return nil, err
	}

	s.publishEvent(ctx, events.Event{
		Type: events.EventJobCreated,
		Payload: events.JobCreatedPayload{
			JobID:    job.ID,
			Priority: job.Priority,
			Stage:    job.CurrentStage,
		},
	})
	return job, nil
}

// AdvanceJob moves a job one stage forward, recording the proof photo against
// the stage being exited. Advancing a job already at the terminal stage is a
// no-op: the job is returned unchanged. An unknown job id yields NOT_FOUND
// rather than the silent skip the old tracker performed.
func (s *PipelineService) AdvanceJob(ctx context.Context, jobID, proofPhotoURL string, actor *domain.User) (*domain.Job, error) {
	if proofPhotoURL == "" {
		return nil, apperrors.NewValidationError("proof photo required", nil)
	}

	job, err := s.jobs.GetByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("job", map[string]any{"job_id": jobID})
		}
		return nil, err
	}

	nextStage, ok := domain.NextStage(job.CurrentStage)
	if !ok {
		return job, nil
	}

	log := domain.JobLog{
		ID:            uuid.NewString(),
		JobID:         job.ID,
		StageName:     job.CurrentStage,
		WorkerName:    actor.Name,
		ProofPhotoURL: proofPhotoURL,
		Timestamp:     s.now(),
	}
	if err := s.jobs.AppendLog(ctx, &log); err != nil {
		return nil, err
	}
	if err := s.jobs.UpdateStage(ctx, job.ID, nextStage); err != nil {
		return nil, err
	}

	fromStage := job.CurrentStage
	job.CurrentStage = nextStage
	job.History = append(job.History, log)

	s.publishEvent(ctx, events.Event{
		ActorID: actor.ID,
		Type:    events.EventJobAdvanced,
		Payload: events.JobAdvancedPayload{
			JobID:      job.ID,
			FromStage:  fromStage,
			ToStage:    nextStage,
			WorkerName: actor.Name,
		},
	})
	return job, nil
}

// GetJob fetches one job with its transition history.
func (s *PipelineService) GetJob(ctx context.Context, jobID string) (*domain.Job, error) {
	job, err := s.jobs.GetByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("job", map[string]any{"job_id": jobID})
		}
		return nil, err
	}
	return job, nil
}

// ListJobs returns all jobs with their histories.
func (s *PipelineService) ListJobs(ctx context.Context) ([]domain.Job, error) {
	return s.jobs.List(ctx)
}

func (s *PipelineService) publishEvent(ctx context.Context, event events.Event) {
	if s.dispatcher == nil {
		return
	}
	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = s.now()
	}
	_ = s.dispatcher.Publish(ctx, event)
}
