package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"job-assist/internal/domain/profile"
	"job-assist/internal/gate"

	"github.com/google/uuid"
)

var (
	ErrProfileConflict  = errors.New("profile write conflict")
	ErrStoreUnavailable = errors.New("profile store unavailable")
)

// ValidationError names the fields a submission failed on. No write happens
// when it is returned.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return "invalid profile fields: " + strings.Join(e.Fields, ", ")
}

// CompletionCache is the gate-facing cache of the profile_completed flag.
// Implementations must degrade to misses rather than fail.
type CompletionCache interface {
	Get(ctx context.Context, userID uuid.UUID) (bool, bool)
	Set(ctx context.Context, userID uuid.UUID, completed bool)
	Invalidate(ctx context.Context, userID uuid.UUID)
}

// ProfileNotifier receives a ping after every successful profile write.
type ProfileNotifier interface {
	ProfileSaved(userID uuid.UUID, completed bool)
}

type UpsertProfileInput struct {
	Name              string
	Role              string
	ExperienceYears   *int
	Location          *string
	Bio               *string
	Skills            []string
	SalaryMin         *int
	SalaryMax         *int
	PreferredWorkType *string
	AvailabilityDate  *string // YYYY-MM-DD
	ProfileCompleted  *bool   // nil defaults to true
}

type ProfileUsecase struct {
	profiles profile.Repository
	cache    CompletionCache
	notifier ProfileNotifier
}

func NewProfileUsecase(profiles profile.Repository, cache CompletionCache, notifier ProfileNotifier) *ProfileUsecase {
	return &ProfileUsecase{profiles: profiles, cache: cache, notifier: notifier}
}

// Get returns the caller's profile, or nil when none exists yet. A missing row
// is not an error at this layer; the wizard has simply not been submitted.
func (u *ProfileUsecase) Get(ctx context.Context, userID uuid.UUID) (*profile.Profile, error) {
	p, err := u.profiles.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, profile.ErrNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	return &p, nil
}

// Upsert persists one wizard or profile-edit submission. Required fields are
// checked before anything touches the store; the write itself is a single
// atomic insert-or-update keyed by the user id.
func (u *ProfileUsecase) Upsert(ctx context.Context, userID uuid.UUID, email string, in UpsertProfileInput) (profile.Profile, error) {
	params, verr := buildUpsertParams(userID, email, in)
	if verr != nil {
		return profile.Profile{}, verr
	}

	p, err := u.profiles.Upsert(ctx, params)
	if err != nil {
		if errors.Is(err, profile.ErrConflict) {
			return profile.Profile{}, ErrProfileConflict
		}
		return profile.Profile{}, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}

	if u.cache != nil {
		u.cache.Set(ctx, userID, p.ProfileCompleted)
	}
	if u.notifier != nil {
		u.notifier.ProfileSaved(userID, p.ProfileCompleted)
	}

	return p, nil
}

// CompletionLookup builds the capability the route gate consumes: cache first,
// store on a miss, cache refreshed on the way out. Errors pass through so the
// gate can take its conservative branch.
func (u *ProfileUsecase) CompletionLookup() gate.CompletionLookup {
	return func(ctx context.Context, subjectID uuid.UUID) (bool, error) {
		if u.cache != nil {
			if completed, hit := u.cache.Get(ctx, subjectID); hit {
				return completed, nil
			}
		}

		completed, err := u.profiles.Completed(ctx, subjectID)
		if err != nil {
			return false, err
		}

		if u.cache != nil {
			u.cache.Set(ctx, subjectID, completed)
		}
		return completed, nil
	}
}

func buildUpsertParams(userID uuid.UUID, email string, in UpsertProfileInput) (profile.UpsertParams, *ValidationError) {
	var missing []string

	name := strings.TrimSpace(in.Name)
	if name == "" {
		missing = append(missing, "name")
	}
	role := strings.TrimSpace(in.Role)
	if role == "" {
		missing = append(missing, "role")
	}
	if len(missing) > 0 {
		return profile.UpsertParams{}, &ValidationError{Fields: missing}
	}

	var invalid []string
	if in.ExperienceYears != nil && *in.ExperienceYears < 0 {
		invalid = append(invalid, "experience_years")
	}
	if in.SalaryMin != nil && in.SalaryMax != nil && *in.SalaryMin > *in.SalaryMax {
		invalid = append(invalid, "salary_min", "salary_max")
	}

	var availability *time.Time
	if in.AvailabilityDate != nil && strings.TrimSpace(*in.AvailabilityDate) != "" {
		d, err := time.Parse("2006-01-02", strings.TrimSpace(*in.AvailabilityDate))
		if err != nil {
			invalid = append(invalid, "availability_date")
		} else {
			availability = &d
		}
	}
	if len(invalid) > 0 {
		return profile.UpsertParams{}, &ValidationError{Fields: invalid}
	}

	completed := true
	if in.ProfileCompleted != nil {
		completed = *in.ProfileCompleted
	}

	return profile.UpsertParams{
		ID:                userID,
		Email:             email,
		Name:              name,
		Role:              role,
		ExperienceYears:   in.ExperienceYears,
		Location:          in.Location,
		Bio:               in.Bio,
		Skills:            in.Skills,
		SalaryMin:         in.SalaryMin,
		SalaryMax:         in.SalaryMax,
		PreferredWorkType: in.PreferredWorkType,
		AvailabilityDate:  availability,
		ProfileCompleted:  completed,
	}, nil
}
