package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/jewelflow/workshop-service/internal/api/dto"
	"github.com/jewelflow/workshop-service/internal/auth"
	"github.com/jewelflow/workshop-service/internal/domain"
	"github.com/jewelflow/workshop-service/internal/service"
	apperrors "github.com/jewelflow/workshop-service/pkg/util"
)

// JobsHandler manages the production pipeline endpoints.
type JobsHandler struct {
	service *service.PipelineService
}

// NewJobsHandler constructs handler.
func NewJobsHandler(pipelineService *service.PipelineService) *JobsHandler {
	return &JobsHandler{service: pipelineService}
}

// Create POST /jobs.
func (h *JobsHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateJobRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	job, err := h.service.CreateJob(c.Context(), service.JobCreateInput{
		DesignImageURL: req.DesignImageURL,
		Priority:       req.Priority,
	})
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": jobResponse(job)})
}

// List GET /jobs.
func (h *JobsHandler) List(c *fiber.Ctx) error {
	jobs, err := h.service.ListJobs(c.Context())
	if err != nil {
		return err
	}
	items := make([]dto.JobResponse, 0, len(jobs))
	for i := range jobs {
		items = append(items, jobResponse(&jobs[i]))
	}
	return c.JSON(fiber.Map{"data": items})
}

// Get GET /jobs/:id.
func (h *JobsHandler) Get(c *fiber.Ctx) error {
	job, err := h.service.GetJob(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": jobResponse(job)})
}

// Advance POST /jobs/:id/advance.
func (h *JobsHandler) Advance(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}
	var req dto.AdvanceJobRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	job, err := h.service.AdvanceJob(c.Context(), c.Params("id"), req.ProofPhotoURL, principal.User)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": jobResponse(job)})
}

func jobResponse(job *domain.Job) dto.JobResponse {
	history := make([]dto.JobLogResponse, 0, len(job.History))
	for _, log := range job.History {
		history = append(history, dto.JobLogResponse{
			ID:            log.ID,
			StageName:     log.StageName,
			WorkerName:    log.WorkerName,
			ProofPhotoURL: log.ProofPhotoURL,
			Timestamp:     log.Timestamp,
		})
	}
	return dto.JobResponse{
		ID:             job.ID,
		DesignImageURL: job.DesignImageURL,
		CurrentStage:   job.CurrentStage,
		Priority:       job.Priority,
		CreatedAt:      job.CreatedAt,
		History:        history,
	}
}
