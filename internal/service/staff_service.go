package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jewelflow/workshop-service/internal/auth"
	"github.com/jewelflow/workshop-service/internal/domain"
	"github.com/jewelflow/workshop-service/internal/events"
	"github.com/jewelflow/workshop-service/internal/repository"
	apperrors "github.com/jewelflow/workshop-service/pkg/util"
)

// StaffService manages workshop staff accounts. It enforces the structural
// rule that at least one administrator exists at all times.
type StaffService struct {
	users      repository.UserRepository
	dispatcher events.Dispatcher
	bcryptCost int
}

// NewStaffService builds the service.
func NewStaffService(users repository.UserRepository, dispatcher events.Dispatcher, bcryptCost int) *StaffService {
	return &StaffService{users: users, dispatcher: dispatcher, bcryptCost: bcryptCost}
}

// StaffInput describes create/update payloads. Password is optional on
// update; blank keeps the existing hash.
type StaffInput struct {
	Username      string
	Password      string
	Name          string
	Role          domain.Role
	AssignedStage *string
}

// ListStaff returns every account.
func (s *StaffService) ListStaff(ctx context.Context) ([]domain.User, error) {
	return s.users.List(ctx)
}

// CreateStaff registers a new account.
func (s *StaffService) CreateStaff(ctx context.Context, input StaffInput) (*domain.User, error) {
	if err := validateStaffInput(input, true); err != nil {
		return nil, err
	}
	if _, err := s.users.GetByUsername(ctx, input.Username); err == nil {
		return nil, apperrors.NewConflict("username already taken", map[string]any{"username": input.Username})
	} else if !errors.Is(err, pgx.ErrNoRows) {
		return nil, err
	}

	hash, err := auth.HashPassword(input.Password, s.bcryptCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		ID:            uuid.NewString(),
		Username:      strings.ToLower(strings.TrimSpace(input.Username)),
		PasswordHash:  hash,
		Name:          strings.TrimSpace(input.Name),
		Role:          input.Role,
		AssignedStage: normalizedStage(input),
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}
	s.publish(ctx, events.EventUserCreated, user)
	return user, nil
}

// UpdateStaff edits an account. Demoting the last remaining administrator is
// rejected and leaves the account untouched.
func (s *StaffService) UpdateStaff(ctx context.Context, id string, input StaffInput) (*domain.User, error) {
	if err := validateStaffInput(input, false); err != nil {
		return nil, err
	}

	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("user", map[string]any{"user_id": id})
		}
		return nil, err
	}

	if user.Role == domain.RoleAdmin && input.Role != domain.RoleAdmin {
		if err := s.ensureNotLastAdmin(ctx, "Cannot change the role of the last Administrator."); err != nil {
			return nil, err
		}
	}

	user.Username = strings.ToLower(strings.TrimSpace(input.Username))
	user.Name = strings.TrimSpace(input.Name)
	user.Role = input.Role
	user.AssignedStage = normalizedStage(input)
	if input.Password != "" {
		hash, err := auth.HashPassword(input.Password, s.bcryptCost)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = hash
	}

	if err := s.users.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// DeleteStaff removes an account, refusing to delete the last administrator.
func (s *StaffService) DeleteStaff(ctx context.Context, id string) error {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("user", map[string]any{"user_id": id})
		}
		return err
	}

	if user.Role == domain.RoleAdmin {
		if err := s.ensureNotLastAdmin(ctx, "Cannot delete the last Administrator."); err != nil {
			return err
		}
	}

	if err := s.users.Delete(ctx, id); err != nil {
		return err
	}
	s.publish(ctx, events.EventUserDeleted, user)
	return nil
}

func (s *StaffService) ensureNotLastAdmin(ctx context.Context, message string) error {
	admins, err := s.users.CountByRole(ctx, domain.RoleAdmin)
	if err != nil {
		return err
	}
	if admins <= 1 {
		return apperrors.NewInvariantViolation(message)
	}
	return nil
}

func validateStaffInput(input StaffInput, requirePassword bool) error {
	details := map[string]any{}
	if strings.TrimSpace(input.Username) == "" {
		details["username"] = "required"
	}
	if strings.TrimSpace(input.Name) == "" {
		details["name"] = "required"
	}
	if requirePassword && input.Password == "" {
		details["password"] = "required"
	}
	switch input.Role {
	case domain.RoleAdmin:
	case domain.RoleWorker:
		if input.AssignedStage == nil || *input.AssignedStage == "" {
			details["assigned_stage"] = "required for workers"
		} else if !domain.IsValidStage(*input.AssignedStage) || domain.IsTerminalStage(*input.AssignedStage) {
			details["assigned_stage"] = "not a workable stage"
		}
	default:
		details["role"] = "must be Admin or Worker"
	}
	if len(details) > 0 {
		return apperrors.NewValidationError("invalid staff payload", details)
	}
	return nil
}

func normalizedStage(input StaffInput) *string {
	if input.Role != domain.RoleWorker {
		return nil
	}
	return input.AssignedStage
}

func (s *StaffService) publish(ctx context.Context, eventType events.EventType, user *domain.User) {
	if s.dispatcher == nil {
		return
	}
	_ = s.dispatcher.Publish(ctx, events.Event{
		ID:        uuid.NewString(),
		Type:      eventType,
		Timestamp: time.Now(),
		Payload: events.UserChangedPayload{
			UserID: user.ID,
			Name:   user.Name,
			Role:   user.Role,
		},
	})
}
