package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jewelflow/workshop-service/internal/domain"
)

// JobRepository encapsulates job persistence. The repository owns id
// allocation: Create assigns the next J-<n> identifier from a dedicated
// sequence, so numbers are never reused even if rows are ever deleted.
type JobRepository interface {
	Create(ctx context.Context, job *domain.Job) error
	UpdateStage(ctx context.Context, jobID, stage string) error
	AppendLog(ctx context.Context, log *domain.JobLog) error
	GetByID(ctx context.Context, id string) (*domain.Job, error)
	List(ctx context.Context) ([]domain.Job, error)
}

type jobRepository struct {
	pool *pgxpool.Pool
}

// NewJobRepository instantiates repository.
func NewJobRepository(pool *pgxpool.Pool) JobRepository {
	return &jobRepository{pool: pool}
}

func (r *jobRepository) Create(ctx context.Context, job *domain.Job) error {
	const query = `
        INSERT INTO jobs (id, design_image_url, current_stage, priority)
        VALUES ('J-' || nextval('job_number_seq'), $1, $2, $3)
        RETURNING id, created_at`
	return r.pool.QueryRow(ctx, query,
		job.DesignImageURL,
		job.CurrentStage,
		job.Priority,
	).Scan(&job.ID, &job.CreatedAt)
}

func (r *jobRepository) UpdateStage(ctx context.Context, jobID, stage string) error {
	cmd, err := r.pool.Exec(ctx, `UPDATE jobs SET current_stage=$1 WHERE id=$2`, stage, jobID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *jobRepository) AppendLog(ctx context.Context, log *domain.JobLog) error {
	const query = `
        INSERT INTO job_logs (id, job_id, stage_name, worker_name, proof_photo_url, created_at)
        VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.pool.Exec(ctx, query,
		log.ID,
		log.JobID,
		log.StageName,
		log.WorkerName,
		log.ProofPhotoURL,
		log.Timestamp,
	)
	return err
}

func (r *jobRepository) GetByID(ctx context.Context, id string) (*domain.Job, error) {
	const query = `
        SELECT id, design_image_url, current_stage, priority, created_at
        FROM jobs WHERE id=$1`
	var job domain.Job
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&job.ID,
		&job.DesignImageURL,
		&job.CurrentStage,
		&job.Priority,
		&job.CreatedAt,
	); err != nil {
		return nil, err
	}

	history, err := r.logsForJobs(ctx, []string{job.ID})
	if err != nil {
		return nil, err
	}
	job.History = history[job.ID]
	return &job, nil
}

func (r *jobRepository) List(ctx context.Context) ([]domain.Job, error) {
	rows, err := r.pool.Query(ctx, `
        SELECT id, design_image_url, current_stage, priority, created_at
        FROM jobs ORDER BY created_at`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var jobs []domain.Job
	var ids []string
	for rows.Next() {
		var job domain.Job
		if err := rows.Scan(
			&job.ID,
			&job.DesignImageURL,
			&job.CurrentStage,
			&job.Priority,
			&job.CreatedAt,
		); err != nil {
			return nil, err
		}
		jobs = append(jobs, job)
		ids = append(ids, job.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(jobs) == 0 {
		return jobs, nil
	}

	history, err := r.logsForJobs(ctx, ids)
	if err != nil {
		return nil, err
	}
	for i := range jobs {
		jobs[i].History = history[jobs[i].ID]
	}
	return jobs, nil
}

func (r *jobRepository) logsForJobs(ctx context.Context, jobIDs []string) (map[string][]domain.JobLog, error) {
	const query = `
        SELECT id, job_id, stage_name, worker_name, proof_photo_url, created_at
        FROM job_logs WHERE job_id = ANY($1) ORDER BY created_at`
	rows, err := r.pool.Query(ctx, query, jobIDs)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := make(map[string][]domain.JobLog)
	for rows.Next() {
		var log domain.JobLog
		if err := rows.Scan(
			&log.ID,
			&log.JobID,
			&log.StageName,
			&log.WorkerName,
			&log.ProofPhotoURL,
			&log.Timestamp,
		); err != nil {
			return nil, err
		}
		result[log.JobID] = append(result[log.JobID], log)
	}
	return result, rows.Err()
}
