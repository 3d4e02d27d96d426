package domain

import (
	"fmt"
	"time"
)

// AttendanceStatus describes a worker's shift state for one day.
type AttendanceStatus string

const (
	AttendanceAbsent     AttendanceStatus = "Absent"
	AttendanceOnDuty     AttendanceStatus = "On Duty"
	AttendanceShiftEnded AttendanceStatus = "Shift Ended"
)

// WorkerAttendance is one worker's reconstructed shift for a target day.
type WorkerAttendance struct {
	User       User
	HasStarted bool
	HasEnded   bool
	StartTime  *time.Time
	EndTime    *time.Time
	Duration   string
	Status     AttendanceStatus
}

// StageAttendance groups worker rows under their assigned stage.
type StageAttendance struct {
	Stage   string
	Workers []WorkerAttendance
}

// ComputeAttendance derives per-stage attendance for targetDate from the flat
// daily log. Only workers are listed, grouped by assigned stage in pipeline
// order. For each worker the first Start and first End of the target calendar
// day are used; duplicates are ignored.
//
// Duration rules: both events present -> elapsed between them; Start only and
// targetDate is today -> elapsed to now, marked active; otherwise "--". A past
// day with no End gets no duration: the shift was never closed out.
func ComputeAttendance(logs []DailyLog, users []User, targetDate, now time.Time) []StageAttendance {
	isCurrentDay := SameCalendarDay(targetDate, now)

	byStage := make(map[string][]User)
	stageOrder := append([]string{}, WorkableStages()...)
	seen := make(map[string]bool, len(stageOrder))
	for _, s := range stageOrder {
		seen[s] = true
	}
	for _, u := range users {
		if !u.IsWorker() || u.Stage() == "" {
			continue
		}
		stage := u.Stage()
		if !seen[stage] {
			seen[stage] = true
			stageOrder = append(stageOrder, stage)
		}
		byStage[stage] = append(byStage[stage], u)
	}

	result := make([]StageAttendance, 0, len(stageOrder))
	for _, stage := range stageOrder {
		workers := byStage[stage]
		rows := make([]WorkerAttendance, 0, len(workers))
		for _, w := range workers {
			rows = append(rows, workerDay(logs, w, targetDate, now, isCurrentDay))
		}
		result = append(result, StageAttendance{Stage: stage, Workers: rows})
	}
	return result
}

func workerDay(logs []DailyLog, worker User, targetDate, now time.Time, isCurrentDay bool) WorkerAttendance {
	var startLog, endLog *DailyLog
	for i := range logs {
		log := &logs[i]
		if log.WorkerName != worker.Name || !SameCalendarDay(log.Timestamp, targetDate) {
			continue
		}
		switch log.Type {
		case LogTypeStart:
			if startLog == nil {
				startLog = log
			}
		case LogTypeEnd:
			if endLog == nil {
				endLog = log
			}
		}
	}

	row := WorkerAttendance{
		User:     worker,
		Duration: "--",
		Status:   AttendanceAbsent,
	}
	if startLog == nil {
		return row
	}

	start := startLog.Timestamp
	row.HasStarted = true
	row.StartTime = &start
	row.Status = AttendanceOnDuty

	if endLog != nil {
		end := endLog.Timestamp
		row.HasEnded = true
		row.EndTime = &end
		row.Status = AttendanceShiftEnded
		row.Duration = FormatMinutes(minutesBetween(start, end))
	} else if isCurrentDay {
		row.Duration = FormatMinutes(minutesBetween(start, now)) + " (Active)"
	}
	return row
}

// FormatMinutes renders a minute count as "{h}h {m}m".
func FormatMinutes(minutes int) string {
	return fmt.Sprintf("%dh %dm", minutes/60, minutes%60)
}

func minutesBetween(start, end time.Time) int {
	return int(end.Sub(start) / time.Minute)
}
