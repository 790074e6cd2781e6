package profile

import (
	"time"

	"github.com/google/uuid"
)

// Profile is the single per-user record gating dashboard access. Its id is the
// owning user's id, so at most one row can exist per user.
type Profile struct {
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
	CreatedAt         time.Time
	UpdatedAt         time.Time
}
