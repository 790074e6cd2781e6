package postgres

import (
	"context"

	"job-assist/internal/database"
	"job-assist/internal/domain/resume"

	"github.com/google/uuid"
)

type ResumeRepository struct {
	db database.DB
}

func NewResumeRepository(db database.DB) *ResumeRepository {
	return &ResumeRepository{db: db}
}

func (r *ResumeRepository) Create(ctx context.Context, rec resume.Resume) (resume.Resume, error) {
	row := r.db.QueryRow(ctx,
		`INSERT INTO resumes (id, user_id, file_url, parsed_json)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, user_id, file_url, parsed_json, created_at, updated_at`,
		rec.ID, rec.UserID, rec.FileURL, rec.ParsedJSON,
	)

	var out resume.Resume
	if err := row.Scan(&out.ID, &out.UserID, &out.FileURL, &out.ParsedJSON, &out.CreatedAt, &out.UpdatedAt); err != nil {
		return resume.Resume{}, err
	}
	return out, nil
}

func (r *ResumeRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]resume.Resume, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, user_id, file_url, parsed_json, created_at, updated_at
		 FROM resumes
		 WHERE user_id = $1
		 ORDER BY created_at DESC`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]resume.Resume, 0)
	for rows.Next() {
		var rec resume.Resume
		if err := rows.Scan(&rec.ID, &rec.UserID, &rec.FileURL, &rec.ParsedJSON, &rec.CreatedAt, &rec.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
