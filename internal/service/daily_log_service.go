package service

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/jewelflow/workshop-service/internal/domain"
	"github.com/jewelflow/workshop-service/internal/events"
	"github.com/jewelflow/workshop-service/internal/repository"
	apperrors "github.com/jewelflow/workshop-service/pkg/util"
)

// DailyLogService appends attendance/work events and serves the photo feed.
type DailyLogService struct {
	logs       repository.DailyLogRepository
	dispatcher events.Dispatcher
	now        func() time.Time
}

// NewDailyLogService builds the service.
func NewDailyLogService(logs repository.DailyLogRepository, dispatcher events.Dispatcher, now func() time.Time) *DailyLogService {
	if now == nil {
		now = time.Now
	}
	return &DailyLogService{logs: logs, dispatcher: dispatcher, now: now}
}

// Record appends one photo-backed event for the acting worker. The entry
// carries the worker's display name, matching how the reconstruction views
// group events.
func (s *DailyLogService) Record(ctx context.Context, actor *domain.User, logType domain.DailyLogType, photoURL string) (*domain.DailyLog, error) {
	if !domain.ValidDailyLogType(logType) {
		return nil, apperrors.NewValidationError("unknown log type", map[string]any{"type": logType})
	}
	if photoURL == "" {
		return nil, apperrors.NewValidationError("photo required", nil)
	}

	log := &domain.DailyLog{
		ID:         uuid.NewString(),
		WorkerName: actor.Name,
		Type:       logType,
		PhotoURL:   photoURL,
		Timestamp:  s.now(),
	}
	if err := s.logs.Append(ctx, log); err != nil {
		return nil, err
	}

	if s.dispatcher != nil {
		_ = s.dispatcher.Publish(ctx, events.Event{
			ID:        uuid.NewString(),
			Type:      events.EventDailyLogRecorded,
			ActorID:   actor.ID,
			Timestamp: log.Timestamp,
			Payload: events.DailyLogRecordedPayload{
				LogID:      log.ID,
				WorkerName: log.WorkerName,
				LogType:    log.Type,
			},
		})
	}
	return log, nil
}

// Feed returns daily logs newest first, optionally restricted to one local
// calendar day.
func (s *DailyLogService) Feed(ctx context.Context, day *time.Time) ([]domain.DailyLog, error) {
	logs, err := s.logs.List(ctx)
	if err != nil {
		return nil, err
	}
	if day != nil {
		filtered := make([]domain.DailyLog, 0, len(logs))
		for _, log := range logs {
			if domain.SameCalendarDay(log.Timestamp, *day) {
				filtered = append(filtered, log)
			}
		}
		logs = filtered
	}
	sort.SliceStable(logs, func(i, j int) bool {
		return logs[i].Timestamp.After(logs[j].Timestamp)
	})
	return logs, nil
}
