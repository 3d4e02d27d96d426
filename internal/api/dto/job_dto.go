package dto

import (
	"time"

	"github.com/jewelflow/workshop-service/internal/domain"
)

// CreateJobRequest payload.
type CreateJobRequest struct {
	DesignImageURL string          `json:"design_image_url"`
	Priority       domain.Priority `json:"priority,omitempty"`
}

// AdvanceJobRequest payload; the proof photo gates the transition.
type AdvanceJobRequest struct {
	ProofPhotoURL string `json:"proof_photo_url"`
}

// JobResponse is the full view of a job including its transition history.
type JobResponse struct {
	ID             string           `json:"id"`
	DesignImageURL string           `json:"design_image_url"`
	CurrentStage   string           `json:"current_stage"`
	Priority       domain.Priority  `json:"priority"`
	CreatedAt      time.Time        `json:"created_at"`
	History        []JobLogResponse `json:"history"`
}

// JobLogResponse is one recorded stage transition.
type JobLogResponse struct {
	ID            string    `json:"id"`
	StageName     string    `json:"stage_name"`
	WorkerName    string    `json:"worker_name"`
	ProofPhotoURL string    `json:"proof_photo_url"`
	Timestamp     time.Time `json:"timestamp"`
}
