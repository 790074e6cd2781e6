package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"job-assist/internal/domain/resume"

	"github.com/google/uuid"
)

type AttachResumeInput struct {
	FileURL    string
	ParsedJSON json.RawMessage
}

// ResumeUsecase manages resume metadata rows; the files themselves live in
// external storage.
type ResumeUsecase struct {
	resumes resume.Repository
}

func NewResumeUsecase(resumes resume.Repository) *ResumeUsecase {
	return &ResumeUsecase{resumes: resumes}
}

func (u *ResumeUsecase) Attach(ctx context.Context, userID uuid.UUID, in AttachResumeInput) (resume.Resume, error) {
	fileURL := strings.TrimSpace(in.FileURL)
	if fileURL == "" {
		return resume.Resume{}, &ValidationError{Fields: []string{"file_url"}}
	}

	rec, err := u.resumes.Create(ctx, resume.Resume{
		ID:         uuid.New(),
		UserID:     userID,
		FileURL:    fileURL,
		ParsedJSON: in.ParsedJSON,
	})
	if err != nil {
		return resume.Resume{}, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	return rec, nil
}

func (u *ResumeUsecase) List(ctx context.Context, userID uuid.UUID) ([]resume.Resume, error) {
	out, err := u.resumes.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	return out, nil
}
