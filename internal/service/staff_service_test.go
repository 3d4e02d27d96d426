package service_test

import (
	"context"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jewelflow/workshop-service/internal/domain"
	"github.com/jewelflow/workshop-service/internal/service"
	apperrors "github.com/jewelflow/workshop-service/pkg/util"
)

func stagePtr(s string) *string { return &s }

func seededAdmin(id, username string) *domain.User {
	return &domain.User{ID: id, Username: username, Name: username, Role: domain.RoleAdmin, PasswordHash: "x"}
}

func TestCreateStaff_Worker(t *testing.T) {
	users := newFakeUserRepo(seededAdmin("u-1", "rajesh"))
	svc := service.NewStaffService(users, nil, bcrypt.MinCost)

	created, err := svc.CreateStaff(context.Background(), service.StaffInput{
		Username:      "Suresh",
		Password:      "password",
		Name:          "Suresh Kumar",
		Role:          domain.RoleWorker,
		AssignedStage: stagePtr("Diamond Setting"),
	})
	require.NoError(t, err)
	assert.Equal(t, "suresh", created.Username)
	assert.Equal(t, "Diamond Setting", created.Stage())
	assert.NotEqual(t, "password", created.PasswordHash)
}

func TestCreateStaff_DuplicateUsername(t *testing.T) {
	users := newFakeUserRepo(seededAdmin("u-1", "rajesh"))
	svc := service.NewStaffService(users, nil, bcrypt.MinCost)

	_, err := svc.CreateStaff(context.Background(), service.StaffInput{
		Username: "RAJESH",
		Password: "secret",
		Name:     "Another Rajesh",
		Role:     domain.RoleAdmin,
	})
	var domainErr *apperrors.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "CONFLICT", domainErr.Code)
}

func TestCreateStaff_WorkerNeedsWorkableStage(t *testing.T) {
	users := newFakeUserRepo(seededAdmin("u-1", "rajesh"))
	svc := service.NewStaffService(users, nil, bcrypt.MinCost)

	cases := []*string{nil, stagePtr(""), stagePtr("Completed"), stagePtr("Engraving")}
	for _, stage := range cases {
		_, err := svc.CreateStaff(context.Background(), service.StaffInput{
			Username:      "worker1",
			Password:      "secret",
			Name:          "Worker One",
			Role:          domain.RoleWorker,
			AssignedStage: stage,
		})
		var domainErr *apperrors.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "VALIDATION_FAILED", domainErr.Code)
	}
}

func TestUpdateStaff_DemoteLastAdminRejected(t *testing.T) {
	users := newFakeUserRepo(seededAdmin("u-1", "rajesh"))
	svc := service.NewStaffService(users, nil, bcrypt.MinCost)

	_, err := svc.UpdateStaff(context.Background(), "u-1", service.StaffInput{
		Username:      "rajesh",
		Name:          "Rajesh",
		Role:          domain.RoleWorker,
		AssignedStage: stagePtr("CAD"),
	})
	var domainErr *apperrors.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "INVARIANT_VIOLATION", domainErr.Code)
	assert.Equal(t, "Cannot change the role of the last Administrator.", domainErr.Message)

	// The rejected update must leave the account untouched.
	unchanged, err := users.GetByID(context.Background(), "u-1")
	require.NoError(t, err)
	assert.Equal(t, domain.RoleAdmin, unchanged.Role)
}

func TestUpdateStaff_DemoteAllowedWithSecondAdmin(t *testing.T) {
	users := newFakeUserRepo(seededAdmin("u-1", "rajesh"), seededAdmin("u-2", "prem"))
	svc := service.NewStaffService(users, nil, bcrypt.MinCost)

	updated, err := svc.UpdateStaff(context.Background(), "u-1", service.StaffInput{
		Username:      "rajesh",
		Name:          "Rajesh",
		Role:          domain.RoleWorker,
		AssignedStage: stagePtr("CAD"),
	})
	require.NoError(t, err)
	assert.Equal(t, domain.RoleWorker, updated.Role)
	assert.Equal(t, "CAD", updated.Stage())
}

func TestDeleteStaff_LastAdminRejected(t *testing.T) {
	users := newFakeUserRepo(seededAdmin("u-1", "rajesh"))
	svc := service.NewStaffService(users, nil, bcrypt.MinCost)

	err := svc.DeleteStaff(context.Background(), "u-1")
	var domainErr *apperrors.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "INVARIANT_VIOLATION", domainErr.Code)
	assert.Equal(t, "Cannot delete the last Administrator.", domainErr.Message)

	remaining, err := users.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, remaining, 1)
}

func TestDeleteStaff_WorkerAlwaysAllowed(t *testing.T) {
	workerUser := &domain.User{
		ID: "u-2", Username: "suresh", Name: "Suresh", Role: domain.RoleWorker,
		AssignedStage: stagePtr("Ghat (Filing)"), PasswordHash: "x",
	}
	users := newFakeUserRepo(seededAdmin("u-1", "rajesh"), workerUser)
	svc := service.NewStaffService(users, nil, bcrypt.MinCost)

	require.NoError(t, svc.DeleteStaff(context.Background(), "u-2"))

	remaining, err := users.List(context.Background())
	require.NoError(t, err)
	require.Len(t, remaining, 1)
	assert.Equal(t, "u-1", remaining[0].ID)
}

func TestUpdateStaff_PromotionClearsStage(t *testing.T) {
	workerUser := &domain.User{
		ID: "u-2", Username: "suresh", Name: "Suresh", Role: domain.RoleWorker,
		AssignedStage: stagePtr("Ghat (Filing)"), PasswordHash: "x",
	}
	users := newFakeUserRepo(seededAdmin("u-1", "rajesh"), workerUser)
	svc := service.NewStaffService(users, nil, bcrypt.MinCost)

	updated, err := svc.UpdateStaff(context.Background(), "u-2", service.StaffInput{
		Username: "suresh",
		Name:     "Suresh",
		Role:     domain.RoleAdmin,
	})
	require.NoError(t, err)
	assert.Nil(t, updated.AssignedStage)
}
