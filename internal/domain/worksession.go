package domain

import (
	"sort"
	"time"
)

// SessionStatus tags a reconstructed work session.
type SessionStatus string

const (
	SessionCompleted  SessionStatus = "Completed"
	SessionInProgress SessionStatus = "In Progress"
	SessionAbandoned  SessionStatus = "Abandoned"
)

// WorkSession is a reconstructed StartWork/CompleteWork pairing, or an
// unmatched remainder of one. StartedAt is always set: an orphaned completion
// anchors the session at its own timestamp with no start photo.
type WorkSession struct {
	ID            string
	WorkerName    string
	WorkerStage   string
	StartedAt     time.Time
	StartPhotoURL string
	EndedAt       *time.Time
	EndPhotoURL   string
	Duration      string
	Status        SessionStatus
}

// ReconstructSessions pairs StartWork and CompleteWork events into discrete
// sessions, newest start first. The log carries no session identifier, so
// pairing is a single-pass state machine per worker holding one open start:
//
//   - StartWork while a start is already open closes the previous one as
//     Abandoned and opens the new one.
//   - CompleteWork with an open start emits a Completed session; without one
//     it emits a degenerate Completed session (orphan) with duration "--".
//   - A start still open after the last event becomes In Progress.
//
// Every event therefore produces or attaches to exactly one session.
func ReconstructSessions(logs []DailyLog, users []User) []WorkSession {
	stageFor := func(name string) string {
		for i := range users {
			if users[i].Name == name {
				if s := users[i].Stage(); s != "" {
					return s
				}
				return "Unknown"
			}
		}
		return "Unknown"
	}

	grouped := make(map[string][]DailyLog)
	var workerOrder []string
	for _, log := range logs {
		if log.Type != LogTypeStartWork && log.Type != LogTypeCompleteWork {
			continue
		}
		if _, ok := grouped[log.WorkerName]; !ok {
			workerOrder = append(workerOrder, log.WorkerName)
		}
		grouped[log.WorkerName] = append(grouped[log.WorkerName], log)
	}

	var sessions []WorkSession
	for _, workerName := range workerOrder {
		events := grouped[workerName]
		sort.SliceStable(events, func(i, j int) bool {
			return events[i].Timestamp.Before(events[j].Timestamp)
		})
		stage := stageFor(workerName)

		var open *DailyLog
		for i := range events {
			event := events[i]
			switch event.Type {
			case LogTypeStartWork:
				if open != nil {
					sessions = append(sessions, abandonedSession(*open, stage))
				}
				open = &events[i]
			case LogTypeCompleteWork:
				if open != nil {
					sessions = append(sessions, completedSession(*open, event, stage))
					open = nil
				} else {
					sessions = append(sessions, orphanSession(event, stage))
				}
			}
		}
		if open != nil {
			sessions = append(sessions, inProgressSession(*open, stage))
		}
	}

	sort.SliceStable(sessions, func(i, j int) bool {
		return sessions[i].StartedAt.After(sessions[j].StartedAt)
	})
	return sessions
}

// FilterSessionsByDay keeps sessions whose start falls on day's local
// calendar date.
func FilterSessionsByDay(sessions []WorkSession, day time.Time) []WorkSession {
	filtered := make([]WorkSession, 0, len(sessions))
	for _, s := range sessions {
		if SameCalendarDay(s.StartedAt, day) {
			filtered = append(filtered, s)
		}
	}
	return filtered
}

func completedSession(start, end DailyLog, stage string) WorkSession {
	endedAt := end.Timestamp
	return WorkSession{
		ID:            start.ID,
		WorkerName:    start.WorkerName,
		WorkerStage:   stage,
		StartedAt:     start.Timestamp,
		StartPhotoURL: start.PhotoURL,
		EndedAt:       &endedAt,
		EndPhotoURL:   end.PhotoURL,
		Duration:      FormatMinutes(minutesBetween(start.Timestamp, endedAt)),
		Status:        SessionCompleted,
	}
}

func orphanSession(end DailyLog, stage string) WorkSession {
	endedAt := end.Timestamp
	return WorkSession{
		ID:          end.ID,
		WorkerName:  end.WorkerName,
		WorkerStage: stage,
		StartedAt:   end.Timestamp,
		EndedAt:     &endedAt,
		EndPhotoURL: end.PhotoURL,
		Duration:    "--",
		Status:      SessionCompleted,
	}
}

func abandonedSession(start DailyLog, stage string) WorkSession {
	return WorkSession{
		ID:            start.ID,
		WorkerName:    start.WorkerName,
		WorkerStage:   stage,
		StartedAt:     start.Timestamp,
		StartPhotoURL: start.PhotoURL,
		Duration:      "Abandoned",
		Status:        SessionAbandoned,
	}
}

func inProgressSession(start DailyLog, stage string) WorkSession {
	return WorkSession{
		ID:            start.ID,
		WorkerName:    start.WorkerName,
		WorkerStage:   stage,
		StartedAt:     start.Timestamp,
		StartPhotoURL: start.PhotoURL,
		Duration:      "In Progress",
		Status:        SessionInProgress,
	}
}
