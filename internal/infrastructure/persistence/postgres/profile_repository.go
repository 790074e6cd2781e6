package postgres

import (
	"context"
	"database/sql"
	"errors"

	"job-assist/internal/database"
	"job-assist/internal/domain/profile"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const profileColumns = `id, email, name, role, experience_years, location, bio, skills,
	salary_min, salary_max, preferred_work_type, availability_date,
	profile_completed, created_at, updated_at`

type ProfileRepository struct {
	db database.DB
}

func NewProfileRepository(db database.DB) *ProfileRepository {
	return &ProfileRepository{db: db}
}

func (r *ProfileRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (profile.Profile, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+profileColumns+` FROM profiles WHERE id = $1`,
		userID,
	)
	return scanProfile(row)
}

func (r *ProfileRepository) Completed(ctx context.Context, userID uuid.UUID) (bool, error) {
	var completed bool
	row := r.db.QueryRow(ctx, `SELECT profile_completed FROM profiles WHERE id = $1`, userID)
	if err := row.Scan(&completed); err != nil {
		if errors.Is(err, sql.ErrNoRows) || errors.Is(err, pgx.ErrNoRows) {
			return false, profile.ErrNotFound
		}
		return false, err
	}
	return completed, nil
}

// Upsert is a single atomic statement: the insert and the fallback update
// cannot interleave with a concurrent writer the way a separate existence
// check could. Unsupplied optional fields keep their stored value on update.
func (r *ProfileRepository) Upsert(ctx context.Context, p profile.UpsertParams) (profile.Profile, error) {
	row := r.db.QueryRow(ctx,
		`INSERT INTO profiles (
			id, email, name, role, experience_years, location, bio, skills,
			salary_min, salary_max, preferred_work_type, availability_date, profile_completed
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, COALESCE($8::text[], '{}'),
			$9, $10, $11, $12, $13
		)
		ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name,
			role = EXCLUDED.role,
			experience_years = COALESCE($5::int, profiles.experience_years),
			location = COALESCE($6::text, profiles.location),
			bio = COALESCE($7::text, profiles.bio),
			skills = CASE WHEN $8::text[] IS NULL THEN profiles.skills ELSE EXCLUDED.skills END,
			salary_min = COALESCE($9::int, profiles.salary_min),
			salary_max = COALESCE($10::int, profiles.salary_max),
			preferred_work_type = COALESCE($11::text, profiles.preferred_work_type),
			availability_date = COALESCE($12::date, profiles.availability_date),
			profile_completed = EXCLUDED.profile_completed,
			updated_at = now()
		RETURNING `+profileColumns,
		p.ID, p.Email, p.Name, p.Role, p.ExperienceYears, p.Location, p.Bio, p.Skills,
		p.SalaryMin, p.SalaryMax, p.PreferredWorkType, p.AvailabilityDate, p.ProfileCompleted,
	)

	prof, err := scanProfile(row)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return profile.Profile{}, profile.ErrConflict
		}
		return profile.Profile{}, err
	}
	return prof, nil
}

func scanProfile(row database.Row) (profile.Profile, error) {
	var p profile.Profile
	err := row.Scan(
		&p.ID, &p.Email, &p.Name, &p.Role, &p.ExperienceYears, &p.Location, &p.Bio, &p.Skills,
		&p.SalaryMin, &p.SalaryMax, &p.PreferredWorkType, &p.AvailabilityDate,
		&p.ProfileCompleted, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) || errors.Is(err, pgx.ErrNoRows) {
			return profile.Profile{}, profile.ErrNotFound
		}
		return profile.Profile{}, err
	}
	return p, nil
}
