package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/jewelflow/workshop-service/internal/api/dto"
	"github.com/jewelflow/workshop-service/internal/domain"
	"github.com/jewelflow/workshop-service/internal/service"
	apperrors "github.com/jewelflow/workshop-service/pkg/util"
)

// StaffHandler manages the staff roster. All routes are admin-only.
type StaffHandler struct {
	service *service.StaffService
}

// NewStaffHandler constructs handler.
func NewStaffHandler(staffService *service.StaffService) *StaffHandler {
	return &StaffHandler{service: staffService}
}

// List GET /staff.
func (h *StaffHandler) List(c *fiber.Ctx) error {
	users, err := h.service.ListStaff(c.Context())
	if err != nil {
		return err
	}
	items := make([]dto.StaffResponse, 0, len(users))
	for i := range users {
		items = append(items, staffResponse(&users[i]))
	}
	return c.JSON(fiber.Map{"data": items})
}

// Create POST /staff.
func (h *StaffHandler) Create(c *fiber.Ctx) error {
	var req dto.StaffRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	user, err := h.service.CreateStaff(c.Context(), staffInput(req))
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": staffResponse(user)})
}

// Update PUT /staff/:id.
func (h *StaffHandler) Update(c *fiber.Ctx) error {
	var req dto.StaffRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	user, err := h.service.UpdateStaff(c.Context(), c.Params("id"), staffInput(req))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": staffResponse(user)})
}

// Delete DELETE /staff/:id.
func (h *StaffHandler) Delete(c *fiber.Ctx) error {
	if err := h.service.DeleteStaff(c.Context(), c.Params("id")); err != nil {
		return err
	}
	return c.SendStatus(http.StatusNoContent)
}

func staffInput(req dto.StaffRequest) service.StaffInput {
	return service.StaffInput{
		Username:      req.Username,
		Password:      req.Password,
		Name:          req.Name,
		Role:          req.Role,
		AssignedStage: req.AssignedStage,
	}
}

func staffResponse(user *domain.User) dto.StaffResponse {
	return dto.StaffResponse{
		ID:            user.ID,
		Username:      user.Username,
		Name:          user.Name,
		Role:          user.Role,
		AssignedStage: user.AssignedStage,
		CreatedAt:     user.CreatedAt,
	}
}
