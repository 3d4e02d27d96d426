package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jewelflow/workshop-service/internal/api/dto"
	"github.com/jewelflow/workshop-service/internal/domain"
	"github.com/jewelflow/workshop-service/internal/service"
)

// ReportsHandler serves the derived attendance and work-session views.
type ReportsHandler struct {
	service *service.ReportService
}

// NewReportsHandler constructs handler.
func NewReportsHandler(reportService *service.ReportService) *ReportsHandler {
	return &ReportsHandler{service: reportService}
}

// Attendance GET /reports/attendance?date=YYYY-MM-DD. Defaults to today.
func (h *ReportsHandler) Attendance(c *fiber.Ctx) error {
	day, err := parseDateQuery(c.Query("date"))
	if err != nil {
		return err
	}
	target := time.Now()
	if day != nil {
		target = *day
	}

	stages, err := h.service.Attendance(c.Context(), target)
	if err != nil {
		return err
	}
	items := make([]dto.StageAttendanceResponse, 0, len(stages))
	for _, stage := range stages {
		workers := make([]dto.WorkerAttendanceResponse, 0, len(stage.Workers))
		for _, w := range stage.Workers {
			workers = append(workers, dto.WorkerAttendanceResponse{
				WorkerID:   w.User.ID,
				WorkerName: w.User.Name,
				Status:     w.Status,
				HasStarted: w.HasStarted,
				HasEnded:   w.HasEnded,
				StartTime:  w.StartTime,
				EndTime:    w.EndTime,
				Duration:   w.Duration,
			})
		}
		items = append(items, dto.StageAttendanceResponse{Stage: stage.Stage, Workers: workers})
	}
	return c.JSON(fiber.Map{"data": items})
}

// WorkSessions GET /reports/work-sessions?date=YYYY-MM-DD. No date means all
// time.
func (h *ReportsHandler) WorkSessions(c *fiber.Ctx) error {
	day, err := parseDateQuery(c.Query("date"))
	if err != nil {
		return err
	}
	sessions, err := h.service.WorkSessions(c.Context(), day)
	if err != nil {
		return err
	}
	items := make([]dto.WorkSessionResponse, 0, len(sessions))
	for _, s := range sessions {
		items = append(items, workSessionResponse(s))
	}
	return c.JSON(fiber.Map{"data": items})
}

func workSessionResponse(s domain.WorkSession) dto.WorkSessionResponse {
	return dto.WorkSessionResponse{
		ID:            s.ID,
		WorkerName:    s.WorkerName,
		WorkerStage:   s.WorkerStage,
		StartedAt:     s.StartedAt,
		StartPhotoURL: s.StartPhotoURL,
		EndedAt:       s.EndedAt,
		EndPhotoURL:   s.EndPhotoURL,
		Duration:      s.Duration,
		Status:        s.Status,
	}
}
