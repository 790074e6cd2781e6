package dto

import (
	"time"

	"job-assist/internal/domain/profile"

	"github.com/google/uuid"
)

type ProfileResponse struct {
	ID                uuid.UUID `json:"id"`
	Email             string    `json:"email"`
	Name              string    `json:"name"`
	Role              string    `json:"role"`
	ExperienceYears   *int      `json:"experience_years"`
	Location          *string   `json:"location"`
	Bio               *string   `json:"bio"`
	Skills            []string  `json:"skills"`
	SalaryMin         *int      `json:"salary_min"`
	SalaryMax         *int      `json:"salary_max"`
	PreferredWorkType *string   `json:"preferred_work_type"`
	AvailabilityDate  *string   `json:"availability_date"`
	ProfileCompleted  bool      `json:"profile_completed"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

func NewProfileResponse(p profile.Profile) ProfileResponse {
	var availability *string
	if p.AvailabilityDate != nil {
		d := p.AvailabilityDate.Format("2006-01-02")
		availability = &d
	}

	skills := p.Skills
	if skills == nil {
		skills = []string{}
	}

	return ProfileResponse{
		ID:                p.ID,
		Email:             p.Email,
		Name:              p.Name,
		Role:              p.Role,
		ExperienceYears:   p.ExperienceYears,
		Location:          p.Location,
		Bio:               p.Bio,
		Skills:            skills,
		SalaryMin:         p.SalaryMin,
		SalaryMax:         p.SalaryMax,
		PreferredWorkType: p.PreferredWorkType,
		AvailabilityDate:  availability,
		ProfileCompleted:  p.ProfileCompleted,
		CreatedAt:         p.CreatedAt,
		UpdatedAt:         p.UpdatedAt,
	}
}
