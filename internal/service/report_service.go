package service

import (
	"context"
	"time"

	"github.com/jewelflow/workshop-service/internal/domain"
	"github.com/jewelflow/workshop-service/internal/repository"
)

// ReportService loads the full record set and recomputes the derived views.
// There is no caching: record counts are small and every read reflects the
// latest appends.
type ReportService struct {
	logs  repository.DailyLogRepository
	users repository.UserRepository
	now   func() time.Time
}

// NewReportService builds the service.
func NewReportService(logs repository.DailyLogRepository, users repository.UserRepository, now func() time.Time) *ReportService {
	if now == nil {
		now = time.Now
	}
	return &ReportService{logs: logs, users: users, now: now}
}

// Attendance reconstructs per-stage shift attendance for the target day.
func (s *ReportService) Attendance(ctx context.Context, targetDate time.Time) ([]domain.StageAttendance, error) {
	logs, err := s.logs.List(ctx)
	if err != nil {
		return nil, err
	}
	users, err := s.users.List(ctx)
	if err != nil {
		return nil, err
	}
	return domain.ComputeAttendance(logs, users, targetDate, s.now()), nil
}

// WorkSessions reconstructs work sessions across all workers, newest start
// first. A non-nil day restricts to sessions started on that calendar day.
func (s *ReportService) WorkSessions(ctx context.Context, day *time.Time) ([]domain.WorkSession, error) {
	logs, err := s.logs.List(ctx)
	if err != nil {
		return nil, err
	}
	users, err := s.users.List(ctx)
	if err != nil {
		return nil, err
	}
	sessions := domain.ReconstructSessions(logs, users)
	if day != nil {
		sessions = domain.FilterSessionsByDay(sessions, *day)
	}
	return sessions, nil
}
