package service_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jewelflow/workshop-service/internal/domain"
	"github.com/jewelflow/workshop-service/internal/service"
	apperrors "github.com/jewelflow/workshop-service/pkg/util"
)

func newPipelineService(repo *fakeJobRepo) *service.PipelineService {
	return service.NewPipelineService(service.PipelineDependencies{
		JobRepo: repo,
		Now:     func() time.Time { return time.Date(2026, 3, 10, 12, 0, 0, 0, time.Local) },
	})
}

func testAdmin() *domain.User {
	return &domain.User{ID: "u-admin", Username: "rajesh", Name: "Rajesh", Role: domain.RoleAdmin}
}

func TestCreateJob_SequentialIDs(t *testing.T) {
	svc := newPipelineService(newFakeJobRepo())
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		job, err := svc.CreateJob(ctx, service.JobCreateInput{DesignImageURL: "https://img.example/d.png"})
		require.NoError(t, err)
		assert.Equal(t, fmt.Sprintf("J-%d", 1001+i), job.ID)
		assert.Equal(t, "Hand Designing", job.CurrentStage)
		assert.Equal(t, domain.PriorityNormal, job.Priority)
		assert.Empty(t, job.History)
	}
}

func TestCreateJob_Validation(t *testing.T) {
	svc := newPipelineService(newFakeJobRepo())
	ctx := context.Background()

	_, err := svc.CreateJob(ctx, service.JobCreateInput{})
	var domainErr *apperrors.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "VALIDATION_FAILED", domainErr.Code)

	_, err = svc.CreateJob(ctx, service.JobCreateInput{DesignImageURL: "https://img.example/d.png", Priority: "Rush"})
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "VALIDATION_FAILED", domainErr.Code)
}

func TestAdvanceJob_WalksWholePipeline(t *testing.T) {
	repo := newFakeJobRepo()
	svc := newPipelineService(repo)
	ctx := context.Background()
	actor := testAdmin()

	job, err := svc.CreateJob(ctx, service.JobCreateInput{DesignImageURL: "https://img.example/d.png", Priority: domain.PriorityHigh})
	require.NoError(t, err)

	for i := 0; i < len(domain.Stages)-1; i++ {
		expectedExit := domain.Stages[i]
		advanced, err := svc.AdvanceJob(ctx, job.ID, "https://img.example/proof.jpg", actor)
		require.NoError(t, err)
		assert.Equal(t, domain.Stages[i+1], advanced.CurrentStage)
		require.Len(t, advanced.History, i+1)
		// The log records the stage being exited, not the one entered.
		assert.Equal(t, expectedExit, advanced.History[i].StageName)
		assert.Equal(t, "Rajesh", advanced.History[i].WorkerName)
	}

	final, err := svc.GetJob(ctx, job.ID)
	require.NoError(t, err)
	assert.True(t, final.Completed())
	assert.Len(t, final.History, len(domain.Stages)-1)
}

func TestAdvanceJob_TerminalStageIsNoOp(t *testing.T) {
	repo := newFakeJobRepo()
	svc := newPipelineService(repo)
	ctx := context.Background()
	actor := testAdmin()

	job, err := svc.CreateJob(ctx, service.JobCreateInput{DesignImageURL: "https://img.example/d.png"})
	require.NoError(t, err)
	for i := 0; i < len(domain.Stages)-1; i++ {
		_, err = svc.AdvanceJob(ctx, job.ID, "https://img.example/proof.jpg", actor)
		require.NoError(t, err)
	}

	again, err := svc.AdvanceJob(ctx, job.ID, "https://img.example/proof.jpg", actor)
	require.NoError(t, err)
	assert.Equal(t, domain.StageCompleted, again.CurrentStage)
	assert.Len(t, again.History, len(domain.Stages)-1)
}

func TestAdvanceJob_UnknownJob(t *testing.T) {
	svc := newPipelineService(newFakeJobRepo())

	_, err := svc.AdvanceJob(context.Background(), "J-9999", "https://img.example/proof.jpg", testAdmin())
	var domainErr *apperrors.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "NOT_FOUND", domainErr.Code)
}

func TestAdvanceJob_RequiresProofPhoto(t *testing.T) {
	repo := newFakeJobRepo()
	svc := newPipelineService(repo)
	ctx := context.Background()

	job, err := svc.CreateJob(ctx, service.JobCreateInput{DesignImageURL: "https://img.example/d.png"})
	require.NoError(t, err)

	_, err = svc.AdvanceJob(ctx, job.ID, "", testAdmin())
	var domainErr *apperrors.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "VALIDATION_FAILED", domainErr.Code)

	unchanged, err := svc.GetJob(ctx, job.ID)
	require.NoError(t, err)
	assert.Equal(t, "Hand Designing", unchanged.CurrentStage)
	assert.Empty(t, unchanged.History)
}

func TestListJobs_ReturnsHistories(t *testing.T) {
	repo := newFakeJobRepo()
	svc := newPipelineService(repo)
	ctx := context.Background()
	actor := testAdmin()

	first, err := svc.CreateJob(ctx, service.JobCreateInput{DesignImageURL: "https://img.example/a.png"})
	require.NoError(t, err)
	_, err = svc.CreateJob(ctx, service.JobCreateInput{DesignImageURL: "https://img.example/b.png"})
	require.NoError(t, err)
	_, err = svc.AdvanceJob(ctx, first.ID, "https://img.example/proof.jpg", actor)
	require.NoError(t, err)

	jobs, err := svc.ListJobs(ctx)
	require.NoError(t, err)
	require.Len(t, jobs, 2)
	assert.Equal(t, first.ID, jobs[0].ID)
	assert.Len(t, jobs[0].History, 1)
	assert.Empty(t, jobs[1].History)
}
