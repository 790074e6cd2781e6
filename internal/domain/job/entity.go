package job

import (
	"time"

	"github.com/google/uuid"
)

type Job struct {
	ID          uuid.UUID
	JobID       string
	Title       string
	Company     string
	Location    *string
	Description string
	SourceURL   string
	CreatedAt   time.Time
}
