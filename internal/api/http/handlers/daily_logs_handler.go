package handlers

import (
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jewelflow/workshop-service/internal/api/dto"
	"github.com/jewelflow/workshop-service/internal/auth"
	"github.com/jewelflow/workshop-service/internal/domain"
	"github.com/jewelflow/workshop-service/internal/service"
	apperrors "github.com/jewelflow/workshop-service/pkg/util"
)

// DailyLogsHandler records attendance/work events and serves the photo feed.
type DailyLogsHandler struct {
	service *service.DailyLogService
}

// NewDailyLogsHandler constructs handler.
func NewDailyLogsHandler(dailyLogService *service.DailyLogService) *DailyLogsHandler {
	return &DailyLogsHandler{service: dailyLogService}
}

// Record POST /daily-logs.
func (h *DailyLogsHandler) Record(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}
	var req dto.RecordDailyLogRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	log, err := h.service.Record(c.Context(), principal.User, req.Type, req.PhotoURL)
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": dailyLogResponse(log)})
}

// Feed GET /daily-logs?date=YYYY-MM-DD.
func (h *DailyLogsHandler) Feed(c *fiber.Ctx) error {
	day, err := parseDateQuery(c.Query("date"))
	if err != nil {
		return err
	}
	logs, err := h.service.Feed(c.Context(), day)
	if err != nil {
		return err
	}
	items := make([]dto.DailyLogResponse, 0, len(logs))
	for i := range logs {
		items = append(items, dailyLogResponse(&logs[i]))
	}
	return c.JSON(fiber.Map{"data": items})
}

// parseDateQuery interprets a YYYY-MM-DD value in local time, matching how
// the reconstruction views decide calendar-day membership.
func parseDateQuery(val string) (*time.Time, error) {
	if val == "" {
		return nil, nil
	}
	day, err := time.ParseInLocation("2006-01-02", val, time.Local)
	if err != nil {
		return nil, apperrors.NewValidationError("invalid date, expected YYYY-MM-DD", map[string]any{"date": val})
	}
	return &day, nil
}

func dailyLogResponse(log *domain.DailyLog) dto.DailyLogResponse {
	return dto.DailyLogResponse{
		ID:         log.ID,
		WorkerName: log.WorkerName,
		Type:       log.Type,
		PhotoURL:   log.PhotoURL,
		Timestamp:  log.Timestamp,
	}
}
