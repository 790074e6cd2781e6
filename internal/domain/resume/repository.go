package resume

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("resume not found")

type Repository interface {
	Create(ctx context.Context, r Resume) (Resume, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]Resume, error)
}
