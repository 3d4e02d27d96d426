package dto

import (
	"time"

	"github.com/jewelflow/workshop-service/internal/domain"
)

// RecordDailyLogRequest payload for one attendance/work event.
type RecordDailyLogRequest struct {
	Type     domain.DailyLogType `json:"type"`
	PhotoURL string              `json:"photo_url"`
}

// DailyLogResponse is one feed entry.
type DailyLogResponse struct {
	ID         string              `json:"id"`
	WorkerName string              `json:"worker_name"`
	Type       domain.DailyLogType `json:"type"`
	PhotoURL   string              `json:"photo_url"`
	Timestamp  time.Time           `json:"timestamp"`
}
