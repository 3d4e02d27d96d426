package service_test

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/jewelflow/workshop-service/internal/domain"
)

// In-memory repository fakes. They mirror the Postgres implementations
// closely enough for service-level tests: copies in, copies out, and
// pgx.ErrNoRows on misses.

type fakeJobRepo struct {
	jobs       map[string]*domain.Job
	order      []string
	nextNumber int
}

func newFakeJobRepo() *fakeJobRepo {
	return &fakeJobRepo{jobs: make(map[string]*domain.Job), nextNumber: 1001}
}

func (r *fakeJobRepo) Create(_ context.Context, job *domain.Job) error {
	job.ID = fmt.Sprintf("J-%d", r.nextNumber)
	r.nextNumber++
	job.CreatedAt = time.Now()
	stored := copyJob(job)
	r.jobs[job.ID] = &stored
	r.order = append(r.order, job.ID)
	return nil
}

func (r *fakeJobRepo) UpdateStage(_ context.Context, jobID, stage string) error {
	job, ok := r.jobs[jobID]
	if !ok {
		return pgx.ErrNoRows
	}
	job.CurrentStage = stage
	return nil
}

func (r *fakeJobRepo) AppendLog(_ context.Context, log *domain.JobLog) error {
	job, ok := r.jobs[log.JobID]
	if !ok {
		return pgx.ErrNoRows
	}
	job.History = append(job.History, *log)
	return nil
}

func (r *fakeJobRepo) GetByID(_ context.Context, id string) (*domain.Job, error) {
	job, ok := r.jobs[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	copied := copyJob(job)
	return &copied, nil
}

func (r *fakeJobRepo) List(_ context.Context) ([]domain.Job, error) {
	result := make([]domain.Job, 0, len(r.order))
	for _, id := range r.order {
		result = append(result, copyJob(r.jobs[id]))
	}
	return result, nil
}

func copyJob(job *domain.Job) domain.Job {
	copied := *job
	copied.History = append([]domain.JobLog{}, job.History...)
	return copied
}

type fakeUserRepo struct {
	users map[string]*domain.User
	order []string
}

func newFakeUserRepo(users ...*domain.User) *fakeUserRepo {
	repo := &fakeUserRepo{users: make(map[string]*domain.User)}
	for _, u := range users {
		copied := *u
		repo.users[u.ID] = &copied
		repo.order = append(repo.order, u.ID)
	}
	return repo
}

func (r *fakeUserRepo) Create(_ context.Context, user *domain.User) error {
	user.CreatedAt = time.Now()
	user.UpdatedAt = user.CreatedAt
	copied := *user
	r.users[user.ID] = &copied
	r.order = append(r.order, user.ID)
	return nil
}

func (r *fakeUserRepo) Update(_ context.Context, user *domain.User) error {
	if _, ok := r.users[user.ID]; !ok {
		return pgx.ErrNoRows
	}
	copied := *user
	r.users[user.ID] = &copied
	return nil
}

func (r *fakeUserRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.users[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(r.users, id)
	for i, existing := range r.order {
		if existing == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id string) (*domain.User, error) {
	user, ok := r.users[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	copied := *user
	return &copied, nil
}

func (r *fakeUserRepo) GetByUsername(_ context.Context, username string) (*domain.User, error) {
	for _, id := range r.order {
		user := r.users[id]
		if strings.EqualFold(user.Username, username) {
			copied := *user
			return &copied, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (r *fakeUserRepo) List(_ context.Context) ([]domain.User, error) {
	result := make([]domain.User, 0, len(r.order))
	for _, id := range r.order {
		result = append(result, *r.users[id])
	}
	return result, nil
}

func (r *fakeUserRepo) CountByRole(_ context.Context, role domain.Role) (int, error) {
	count := 0
	for _, user := range r.users {
		if user.Role == role {
			count++
		}
	}
	return count, nil
}

type fakeDailyLogRepo struct {
	logs []domain.DailyLog
}

func (r *fakeDailyLogRepo) Append(_ context.Context, log *domain.DailyLog) error {
	r.logs = append(r.logs, *log)
	return nil
}

func (r *fakeDailyLogRepo) List(_ context.Context) ([]domain.DailyLog, error) {
	return append([]domain.DailyLog{}, r.logs...), nil
}

type fakeSessionStore struct {
	sessions map[string]string
}

func newFakeSessionStore() *fakeSessionStore {
	return &fakeSessionStore{sessions: make(map[string]string)}
}

func (s *fakeSessionStore) Save(_ context.Context, sessionID, userID string, _ time.Duration) error {
	s.sessions[sessionID] = userID
	return nil
}

func (s *fakeSessionStore) Load(_ context.Context, sessionID string) (string, error) {
	userID, ok := s.sessions[sessionID]
	if !ok {
		return "", fmt.Errorf("session not found")
	}
	return userID, nil
}

func (s *fakeSessionStore) Clear(_ context.Context, sessionID string) error {
	delete(s.sessions, sessionID)
	return nil
}
