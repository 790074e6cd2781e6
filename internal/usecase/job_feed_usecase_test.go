package usecase

import (
	"context"
	"errors"
	"testing"

	"job-assist/internal/domain/job"

	"github.com/google/uuid"
)

type mockJobRepo struct {
	jobs      []job.Job
	err       error
	gotLimit  int
	gotOffset int
}

func (m *mockJobRepo) ListRecent(_ context.Context, limit, offset int) ([]job.Job, error) {
	m.gotLimit = limit
	m.gotOffset = offset
	if m.err != nil {
		return nil, m.err
	}
	return m.jobs, nil
}

func TestJobFeed_ListRecent(t *testing.T) {
	repo := &mockJobRepo{jobs: []job.Job{
		{ID: uuid.New(), Title: "Backend Engineer", Company: "Acme"},
		{ID: uuid.New(), Title: "SRE", Company: "Globex"},
	}}
	uc := NewJobFeedUsecase(repo)

	out, err := uc.ListRecent(context.Background(), JobFeedParams{Limit: 10, Offset: 5})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(out) != 2 {
		t.Fatalf("expected 2 jobs, got %d", len(out))
	}
	if repo.gotLimit != 10 || repo.gotOffset != 5 {
		t.Fatalf("pagination not forwarded: limit=%d offset=%d", repo.gotLimit, repo.gotOffset)
	}
}

func TestJobFeed_NegativePaginationRejected(t *testing.T) {
	uc := NewJobFeedUsecase(&mockJobRepo{})

	if _, err := uc.ListRecent(context.Background(), JobFeedParams{Limit: -1}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("negative limit: expected ErrInvalidInput, got %v", err)
	}
	if _, err := uc.ListRecent(context.Background(), JobFeedParams{Offset: -1}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("negative offset: expected ErrInvalidInput, got %v", err)
	}
}

func TestJobFeed_StoreErrorWrapped(t *testing.T) {
	uc := NewJobFeedUsecase(&mockJobRepo{err: errors.New("connection refused")})

	_, err := uc.ListRecent(context.Background(), JobFeedParams{Limit: 10})
	if !errors.Is(err, ErrStoreUnavailable) {
		t.Fatalf("expected ErrStoreUnavailable, got %v", err)
	}
}
