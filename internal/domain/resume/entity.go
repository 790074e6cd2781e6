package resume

import (
	"time"

	"github.com/google/uuid"
)

// Resume is metadata only; the file itself lives in external storage and is
// referenced by FileURL.
type Resume struct {
	ID         uuid.UUID
	UserID     uuid.UUID
	FileURL    string
	ParsedJSON []byte
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
