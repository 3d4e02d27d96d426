package domain

import "time"

// Priority enumerates job urgency.
type Priority string

const (
	PriorityNormal Priority = "Normal"
	PriorityHigh   Priority = "High"
	PriorityUrgent Priority = "Urgent"
)

// Job is a single design order tracked through the stage pipeline.
type Job struct {
	ID             string
	DesignImageURL string
	CurrentStage   string
	Priority       Priority
	CreatedAt      time.Time
	History        []JobLog
}

// Completed reports whether the job has reached the terminal stage.
func (j *Job) Completed() bool {
	return IsTerminalStage(j.CurrentStage)
}

// JobLog is an immutable record of one stage transition. StageName is the
// stage the job was in when the proof photo was taken, i.e. the stage being
// exited.
type JobLog struct {
	ID            string
	JobID         string
	StageName     string
	WorkerName    string
	ProofPhotoURL string
	Timestamp     time.Time
}
