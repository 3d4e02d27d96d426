package domain

import "time"

// DailyLogType enumerates the four photo-backed events a worker can record
// during a day: shift boundaries and work-task boundaries.
type DailyLogType string

const (
	LogTypeStart        DailyLogType = "Start"
	LogTypeEnd          DailyLogType = "End"
	LogTypeStartWork    DailyLogType = "StartWork"
	LogTypeCompleteWork DailyLogType = "CompleteWork"
)

// ValidDailyLogType reports whether t is one of the four event kinds.
func ValidDailyLogType(t DailyLogType) bool {
	switch t {
	case LogTypeStart, LogTypeEnd, LogTypeStartWork, LogTypeCompleteWork:
		return true
	}
	return false
}

// DailyLog is one append-only attendance/work event. WorkerName is a plain
// name string rather than a user id; the reconstruction views match on it
// exactly, so renaming a user orphans their old logs.
type DailyLog struct {
	ID         string
	WorkerName string
	Type       DailyLogType
	PhotoURL   string
	Timestamp  time.Time
}

// SameCalendarDay compares two instants by their local Y-M-D triple. Day
// membership is decided in local time, not by a 24h window, so events near
// midnight land on the day the wall clock showed.
func SameCalendarDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
