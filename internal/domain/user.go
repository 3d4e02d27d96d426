package domain

import "time"

// Role distinguishes administrators from stage-assigned workers.
type Role string

const (
	RoleAdmin  Role = "Admin"
	RoleWorker Role = "Worker"
)

// User is a workshop staff member. Workers carry the stage they operate;
// admins do not.
type User struct {
	ID            string
	Username      string
	PasswordHash  string
	Name          string
	Role          Role
	AssignedStage *string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// IsWorker reports whether the user is an assignable worker.
func (u *User) IsWorker() bool {
	return u.Role == RoleWorker
}

// Stage returns the worker's assigned stage, or "" for admins.
func (u *User) Stage() string {
	if u.AssignedStage == nil {
		return ""
	}
	return *u.AssignedStage
}
