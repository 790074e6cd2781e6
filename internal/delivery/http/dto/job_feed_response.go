package dto

import (
	"time"

	"job-assist/internal/domain/job"

	"github.com/google/uuid"
)

type JobFeedResponse struct {
	ID          uuid.UUID `json:"id"`
	JobID       string    `json:"job_id"`
	Title       string    `json:"title"`
	Company     string    `json:"company"`
	Location    *string   `json:"location"`
	Description string    `json:"job_description"`
	SourceURL   string    `json:"source_url"`
	CreatedAt   time.Time `json:"created_at"`
}

func NewJobFeedResponse(j job.Job) JobFeedResponse {
	return JobFeedResponse{
		ID:          j.ID,
		JobID:       j.JobID,
		Title:       j.Title,
		Company:     j.Company,
		Location:    j.Location,
		Description: j.Description,
		SourceURL:   j.SourceURL,
		CreatedAt:   j.CreatedAt,
	}
}
