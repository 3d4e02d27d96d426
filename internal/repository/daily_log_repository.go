package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jewelflow/workshop-service/internal/domain"
)

// DailyLogRepository persists the append-only attendance/work event log.
// Entries are never edited or deleted; the derived views always load the
// whole log and recompute from scratch.
type DailyLogRepository interface {
	Append(ctx context.Context, log *domain.DailyLog) error
	List(ctx context.Context) ([]domain.DailyLog, error)
}

type dailyLogRepository struct {
	pool *pgxpool.Pool
}

// NewDailyLogRepository instantiates repository.
func NewDailyLogRepository(pool *pgxpool.Pool) DailyLogRepository {
	return &dailyLogRepository{pool: pool}
}

func (r *dailyLogRepository) Append(ctx context.Context, log *domain.DailyLog) error {
	const query = `
        INSERT INTO daily_logs (id, worker_name, type, photo_url, created_at)
        VALUES ($1, $2, $3, $4, $5)`
	_, err := r.pool.Exec(ctx, query,
		log.ID,
		log.WorkerName,
		log.Type,
		log.PhotoURL,
		log.Timestamp,
	)
	return err
}

func (r *dailyLogRepository) List(ctx context.Context) ([]domain.DailyLog, error) {
	rows, err := r.pool.Query(ctx, `
        SELECT id, worker_name, type, photo_url, created_at
        FROM daily_logs ORDER BY created_at`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.DailyLog
	for rows.Next() {
		var log domain.DailyLog
		if err := rows.Scan(
			&log.ID,
			&log.WorkerName,
			&log.Type,
			&log.PhotoURL,
			&log.Timestamp,
		); err != nil {
			return nil, err
		}
		result = append(result, log)
	}
	return result, rows.Err()
}
