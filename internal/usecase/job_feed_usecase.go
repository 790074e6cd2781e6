package usecase

import (
	"context"
	"errors"
	"fmt"

	"job-assist/internal/domain/job"
)

var ErrInvalidInput = errors.New("invalid input")

type JobFeedParams struct {
	Limit  int
	Offset int
}

// JobFeedUsecase reads the externally populated jobs table for the dashboard.
type JobFeedUsecase struct {
	jobs job.Repository
}

func NewJobFeedUsecase(jobs job.Repository) *JobFeedUsecase {
	return &JobFeedUsecase{jobs: jobs}
}

func (u *JobFeedUsecase) ListRecent(ctx context.Context, params JobFeedParams) ([]job.Job, error) {
	if params.Limit < 0 || params.Offset < 0 {
		return nil, ErrInvalidInput
	}

	out, err := u.jobs.ListRecent(ctx, params.Limit, params.Offset)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	return out, nil
}
