package dto

import (
	"encoding/json"
	"time"

	"job-assist/internal/domain/resume"

	"github.com/google/uuid"
)

type ResumeResponse struct {
	ID         uuid.UUID       `json:"id"`
	UserID     uuid.UUID       `json:"user_id"`
	FileURL    string          `json:"file_url"`
	ParsedJSON json.RawMessage `json:"parsed_json,omitempty"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}

func NewResumeResponse(r resume.Resume) ResumeResponse {
	return ResumeResponse{
		ID:         r.ID,
		UserID:     r.UserID,
		FileURL:    r.FileURL,
		ParsedJSON: json.RawMessage(r.ParsedJSON),
		CreatedAt:  r.CreatedAt,
		UpdatedAt:  r.UpdatedAt,
	}
}
