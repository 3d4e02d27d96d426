package domain_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jewelflow/workshop-service/internal/domain"
)

func TestReconstructSessions_CompletedPair(t *testing.T) {
	start := time.Date(2026, 3, 10, 10, 0, 0, 0, time.Local)
	users := []domain.User{worker("Ravi", "Polish 1")}
	logs := []domain.DailyLog{
		dayLog("Ravi", domain.LogTypeStartWork, start),
		dayLog("Ravi", domain.LogTypeCompleteWork, start.Add(95*time.Minute)),
	}

	sessions := domain.ReconstructSessions(logs, users)
	require.Len(t, sessions, 1)
	s := sessions[0]
	assert.Equal(t, domain.SessionCompleted, s.Status)
	assert.Equal(t, "Ravi", s.WorkerName)
	assert.Equal(t, "Polish 1", s.WorkerStage)
	assert.Equal(t, start, s.StartedAt)
	require.NotNil(t, s.EndedAt)
	assert.Equal(t, start.Add(95*time.Minute), *s.EndedAt)
	assert.Equal(t, "1h 35m", s.Duration)
	assert.NotEmpty(t, s.StartPhotoURL)
	assert.NotEmpty(t, s.EndPhotoURL)
}

func TestReconstructSessions_DoubleStartAbandonsFirst(t *testing.T) {
	base := time.Date(2026, 3, 10, 10, 0, 0, 0, time.Local)
	users := []domain.User{worker("Ravi", "Polish 1")}
	logs := []domain.DailyLog{
		dayLog("Ravi", domain.LogTypeStartWork, base),
		dayLog("Ravi", domain.LogTypeStartWork, base.Add(time.Hour)),
		dayLog("Ravi", domain.LogTypeCompleteWork, base.Add(2*time.Hour)),
	}

	sessions := domain.ReconstructSessions(logs, users)
	require.Len(t, sessions, 2)

	// Newest start first: the completed second session leads.
	assert.Equal(t, domain.SessionCompleted, sessions[0].Status)
	assert.Equal(t, base.Add(time.Hour), sessions[0].StartedAt)
	assert.Equal(t, "1h 0m", sessions[0].Duration)

	assert.Equal(t, domain.SessionAbandoned, sessions[1].Status)
	assert.Equal(t, base, sessions[1].StartedAt)
	assert.Equal(t, "Abandoned", sessions[1].Duration)
	assert.Nil(t, sessions[1].EndedAt)
}

func TestReconstructSessions_OrphanCompletion(t *testing.T) {
	at := time.Date(2026, 3, 10, 15, 0, 0, 0, time.Local)
	users := []domain.User{worker("Meena", "CAD")}
	logs := []domain.DailyLog{dayLog("Meena", domain.LogTypeCompleteWork, at)}

	sessions := domain.ReconstructSessions(logs, users)
	require.Len(t, sessions, 1)
	s := sessions[0]
	assert.Equal(t, domain.SessionCompleted, s.Status)
	assert.Equal(t, at, s.StartedAt)
	require.NotNil(t, s.EndedAt)
	assert.Equal(t, at, *s.EndedAt)
	assert.Equal(t, "--", s.Duration)
	assert.Empty(t, s.StartPhotoURL)
}

func TestReconstructSessions_TrailingOpenStart(t *testing.T) {
	at := time.Date(2026, 3, 10, 9, 0, 0, 0, time.Local)
	users := []domain.User{worker("Meena", "CAD")}
	logs := []domain.DailyLog{dayLog("Meena", domain.LogTypeStartWork, at)}

	sessions := domain.ReconstructSessions(logs, users)
	require.Len(t, sessions, 1)
	assert.Equal(t, domain.SessionInProgress, sessions[0].Status)
	assert.Equal(t, "In Progress", sessions[0].Duration)
	assert.Nil(t, sessions[0].EndedAt)
}

func TestReconstructSessions_UnknownWorkerStage(t *testing.T) {
	at := time.Date(2026, 3, 10, 9, 0, 0, 0, time.Local)
	logs := []domain.DailyLog{dayLog("Ghost", domain.LogTypeStartWork, at)}

	sessions := domain.ReconstructSessions(logs, nil)
	require.Len(t, sessions, 1)
	assert.Equal(t, "Unknown", sessions[0].WorkerStage)
}

func TestReconstructSessions_IgnoresShiftEvents(t *testing.T) {
	at := time.Date(2026, 3, 10, 9, 0, 0, 0, time.Local)
	users := []domain.User{worker("Ravi", "Polish 1")}
	logs := []domain.DailyLog{
		dayLog("Ravi", domain.LogTypeStart, at),
		dayLog("Ravi", domain.LogTypeEnd, at.Add(8*time.Hour)),
	}

	assert.Empty(t, domain.ReconstructSessions(logs, users))
}

func TestReconstructSessions_GlobalOrderingAcrossWorkers(t *testing.T) {
	base := time.Date(2026, 3, 10, 8, 0, 0, 0, time.Local)
	users := []domain.User{worker("Ravi", "Polish 1"), worker("Meena", "CAD")}
	logs := []domain.DailyLog{
		dayLog("Ravi", domain.LogTypeStartWork, base),
		dayLog("Meena", domain.LogTypeStartWork, base.Add(time.Hour)),
		dayLog("Ravi", domain.LogTypeCompleteWork, base.Add(2*time.Hour)),
		dayLog("Meena", domain.LogTypeCompleteWork, base.Add(3*time.Hour)),
	}

	sessions := domain.ReconstructSessions(logs, users)
	require.Len(t, sessions, 2)
	assert.Equal(t, "Meena", sessions[0].WorkerName)
	assert.Equal(t, "Ravi", sessions[1].WorkerName)
}

func TestFilterSessionsByDay(t *testing.T) {
	day := time.Date(2026, 3, 10, 0, 0, 0, 0, time.Local)
	users := []domain.User{worker("Ravi", "Polish 1")}
	logs := []domain.DailyLog{
		dayLog("Ravi", domain.LogTypeStartWork, day.Add(9*time.Hour)),
		dayLog("Ravi", domain.LogTypeCompleteWork, day.Add(10*time.Hour)),
		dayLog("Ravi", domain.LogTypeStartWork, day.AddDate(0, 0, 1).Add(9*time.Hour)),
		dayLog("Ravi", domain.LogTypeCompleteWork, day.AddDate(0, 0, 1).Add(10*time.Hour)),
	}

	sessions := domain.ReconstructSessions(logs, users)
	require.Len(t, sessions, 2)

	filtered := domain.FilterSessionsByDay(sessions, day)
	require.Len(t, filtered, 1)
	assert.Equal(t, day.Add(9*time.Hour), filtered[0].StartedAt)
}
