package job

import "context"

type Repository interface {
	// ListRecent returns the newest feed entries, newest first.
	ListRecent(ctx context.Context, limit, offset int) ([]Job, error)
}
