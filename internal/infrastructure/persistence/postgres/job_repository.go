package postgres

import (
	"context"

	"job-assist/internal/database"
	"job-assist/internal/domain/job"
)

type JobRepository struct {
	db database.DB
}

func NewJobRepository(db database.DB) *JobRepository {
	return &JobRepository{db: db}
}

func (r *JobRepository) ListRecent(ctx context.Context, limit, offset int) ([]job.Job, error) {
	if limit <= 0 {
		limit = 10
	}
	if limit > 50 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}

	rows, err := r.db.Query(ctx,
		`SELECT id, job_id, title, company, location, job_description, source_url, created_at
		 FROM jobs
		 ORDER BY created_at DESC
		 LIMIT $1 OFFSET $2`,
		limit, offset,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]job.Job, 0)
	for rows.Next() {
		var j job.Job
		if err := rows.Scan(&j.ID, &j.JobID, &j.Title, &j.Company, &j.Location, &j.Description, &j.SourceURL, &j.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, j)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
