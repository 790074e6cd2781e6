package profile

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNotFound = errors.New("profile not found")
	ErrConflict = errors.New("profile write conflict")
)

// UpsertParams carries one wizard submission. Nil optional fields are "not
// supplied": kept as-is on update, stored as NULL (or the column default) on
// insert. Name and Role are always present; the usecase validates them before
// the repository is reached.
type UpsertParams struct {
	ID                uuid.UUID
	Email             string
	Name              string
	Role              string
	ExperienceYears   *int
	Location          *string
	Bio               *string
	Skills            []string
	SalaryMin         *int
	SalaryMax         *int
	PreferredWorkType *string
	AvailabilityDate  *time.Time
	ProfileCompleted  bool
}

type Repository interface {
	GetByUserID(ctx context.Context, userID uuid.UUID) (Profile, error)
	// Completed reports the profile_completed flag; ErrNotFound when no row exists.
	Completed(ctx context.Context, userID uuid.UUID) (bool, error)
	// Upsert inserts or updates the row keyed by ID atomically and returns the
	// resulting full row.
	Upsert(ctx context.Context, p UpsertParams) (Profile, error)
}
