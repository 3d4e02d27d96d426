package dto

import (
	"time"

	"github.com/jewelflow/workshop-service/internal/domain"
)

// StageAttendanceResponse groups worker attendance rows under a stage.
type StageAttendanceResponse struct {
	Stage   string                     `json:"stage"`
	Workers []WorkerAttendanceResponse `json:"workers"`
}

// WorkerAttendanceResponse is one worker's shift for the requested day.
type WorkerAttendanceResponse struct {
	WorkerID   string                  `json:"worker_id"`
	WorkerName string                  `json:"worker_name"`
	Status     domain.AttendanceStatus `json:"status"`
	HasStarted bool                    `json:"has_started"`
	HasEnded   bool                    `json:"has_ended"`
	StartTime  *time.Time              `json:"start_time,omitempty"`
	EndTime    *time.Time              `json:"end_time,omitempty"`
	Duration   string                  `json:"duration"`
}

// WorkSessionResponse is one reconstructed session.
type WorkSessionResponse struct {
	ID            string               `json:"id"`
	WorkerName    string               `json:"worker_name"`
	WorkerStage   string               `json:"worker_stage"`
	StartedAt     time.Time            `json:"started_at"`
	StartPhotoURL string               `json:"start_photo_url,omitempty"`
	EndedAt       *time.Time           `json:"ended_at,omitempty"`
	EndPhotoURL   string               `json:"end_photo_url,omitempty"`
	Duration      string               `json:"duration"`
	Status        domain.SessionStatus `json:"status"`
}
