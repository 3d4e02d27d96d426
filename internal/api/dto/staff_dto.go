package dto

import (
	"time"

	"github.com/jewelflow/workshop-service/internal/domain"
)

// StaffRequest payload for creating or editing an account.
type StaffRequest struct {
	Username      string      `json:"username"`
	Password      string      `json:"password,omitempty"`
	Name          string      `json:"name"`
	Role          domain.Role `json:"role"`
	AssignedStage *string     `json:"assigned_stage,omitempty"`
}

// StaffResponse is the public view of an account.
type StaffResponse struct {
	ID            string      `json:"id"`
	Username      string      `json:"username"`
	Name          string      `json:"name"`
	Role          domain.Role `json:"role"`
	AssignedStage *string     `json:"assigned_stage,omitempty"`
	CreatedAt     time.Time   `json:"created_at"`
}
