package events

import (
	"time"

	"github.com/jewelflow/workshop-service/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventJobCreated       EventType = "job_created"
	EventJobAdvanced      EventType = "job_advanced"
	EventDailyLogRecorded EventType = "daily_log_recorded"
	EventUserCreated      EventType = "user_created"
	EventUserDeleted      EventType = "user_deleted"
)

// Event represents a domain event emitted by services.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	ActorID   string      `json:"actor_id,omitempty"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// JobCreatedPayload payload.
type JobCreatedPayload struct {
	JobID    string          `json:"job_id"`
	Priority domain.Priority `json:"priority"`
	Stage    string          `json:"stage"`
}

// JobAdvancedPayload payload.
type JobAdvancedPayload struct {
	JobID      string `json:"job_id"`
	FromStage  string `json:"from_stage"`
	ToStage    string `json:"to_stage"`
	WorkerName string `json:"worker_name"`
}

// DailyLogRecordedPayload payload.
type DailyLogRecordedPayload struct {
	LogID      string              `json:"log_id"`
	WorkerName string              `json:"worker_name"`
	LogType    domain.DailyLogType `json:"log_type"`
}

// UserChangedPayload payload for user lifecycle events.
type UserChangedPayload struct {
	UserID string      `json:"user_id"`
	Name   string      `json:"name"`
	Role   domain.Role `json:"role"`
}
