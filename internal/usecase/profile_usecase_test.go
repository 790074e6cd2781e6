package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"job-assist/internal/domain/profile"
	"job-assist/internal/gate"

	"github.com/google/uuid"
)

// mockProfileRepo mirrors the store's upsert-by-primary-key semantics: one row
// per id, partial update of supplied fields, updated_at advancing per write.
type mockProfileRepo struct {
	rows map[uuid.UUID]profile.Profile
	tick int

	completedErr error
	upsertErr    error
}

func newMockProfileRepo() *mockProfileRepo {
	return &mockProfileRepo{rows: make(map[uuid.UUID]profile.Profile)}
}

func (m *mockProfileRepo) clock() time.Time {
	m.tick++
	return time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC).Add(time.Duration(m.tick) * time.Second)
}

func (m *mockProfileRepo) GetByUserID(_ context.Context, userID uuid.UUID) (profile.Profile, error) {
	p, ok := m.rows[userID]
	if !ok {
		return profile.Profile{}, profile.ErrNotFound
	}
	return p, nil
}

func (m *mockProfileRepo) Completed(_ context.Context, userID uuid.UUID) (bool, error) {
	if m.completedErr != nil {
		return false, m.completedErr
	}
	p, ok := m.rows[userID]
	if !ok {
		return false, profile.ErrNotFound
	}
	return p.ProfileCompleted, nil
}

func (m *mockProfileRepo) Upsert(_ context.Context, in profile.UpsertParams) (profile.Profile, error) {
	if m.upsertErr != nil {
		return profile.Profile{}, m.upsertErr
	}

	now := m.clock()
	p, ok := m.rows[in.ID]
	if !ok {
		p = profile.Profile{
			ID:        in.ID,
			Email:     in.Email,
			Skills:    []string{},
			CreatedAt: now,
		}
	}

	p.Name = in.Name
	p.Role = in.Role
	if in.ExperienceYears != nil {
		p.ExperienceYears = in.ExperienceYears
	}
	if in.Location != nil {
		p.Location = in.Location
	}
	if in.Bio != nil {
		p.Bio = in.Bio
	}
	if in.Skills != nil {
		p.Skills = in.Skills
	}
	if in.SalaryMin != nil {
		p.SalaryMin = in.SalaryMin
	}
	if in.SalaryMax != nil {
		p.SalaryMax = in.SalaryMax
	}
	if in.PreferredWorkType != nil {
		p.PreferredWorkType = in.PreferredWorkType
	}
	if in.AvailabilityDate != nil {
		p.AvailabilityDate = in.AvailabilityDate
	}
	p.ProfileCompleted = in.ProfileCompleted
	p.UpdatedAt = now

	m.rows[in.ID] = p
	return p, nil
}

type mockCompletionCache struct {
	values map[uuid.UUID]bool
	gets   int
	hits   int
}

func newMockCompletionCache() *mockCompletionCache {
	return &mockCompletionCache{values: make(map[uuid.UUID]bool)}
}

func (m *mockCompletionCache) Get(_ context.Context, userID uuid.UUID) (bool, bool) {
	m.gets++
	v, ok := m.values[userID]
	if ok {
		m.hits++
	}
	return v, ok
}

func (m *mockCompletionCache) Set(_ context.Context, userID uuid.UUID, completed bool) {
	m.values[userID] = completed
}

func (m *mockCompletionCache) Invalidate(_ context.Context, userID uuid.UUID) {
	delete(m.values, userID)
}

func strPtr(s string) *string { return &s }
func intPtr(n int) *int       { return &n }

func TestProfileUpsert_MissingRequiredFields(t *testing.T) {
	repo := newMockProfileRepo()
	uc := NewProfileUsecase(repo, nil, nil)
	userID := uuid.New()

	_, err := uc.Upsert(context.Background(), userID, "u@example.com", UpsertProfileInput{Role: "Engineer"})

	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if len(verr.Fields) != 1 || verr.Fields[0] != "name" {
		t.Fatalf("expected missing field [name], got %v", verr.Fields)
	}
	if len(repo.rows) != 0 {
		t.Fatal("validation failure must not write")
	}
}

func TestProfileUpsert_ValidationDoesNotTouchExistingRow(t *testing.T) {
	repo := newMockProfileRepo()
	uc := NewProfileUsecase(repo, nil, nil)
	userID := uuid.New()

	before, err := uc.Upsert(context.Background(), userID, "u@example.com", UpsertProfileInput{Name: "Ada", Role: "Engineer"})
	if err != nil {
		t.Fatalf("seed upsert failed: %v", err)
	}

	_, err = uc.Upsert(context.Background(), userID, "u@example.com", UpsertProfileInput{Name: "", Role: "Changed"})
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}

	after := repo.rows[userID]
	if after.Role != before.Role || !after.UpdatedAt.Equal(before.UpdatedAt) {
		t.Fatalf("row changed despite validation failure: before=%+v after=%+v", before, after)
	}
}

func TestProfileUpsert_Idempotent(t *testing.T) {
	repo := newMockProfileRepo()
	uc := NewProfileUsecase(repo, nil, nil)
	userID := uuid.New()
	in := UpsertProfileInput{Name: "A", Role: "B"}

	first, err := uc.Upsert(context.Background(), userID, "u@example.com", in)
	if err != nil {
		t.Fatalf("first upsert: %v", err)
	}
	second, err := uc.Upsert(context.Background(), userID, "u@example.com", in)
	if err != nil {
		t.Fatalf("second upsert: %v", err)
	}

	if first.ID != second.ID {
		t.Fatalf("id changed across upserts: %s vs %s", first.ID, second.ID)
	}
	if !first.CreatedAt.Equal(second.CreatedAt) {
		t.Fatalf("created_at changed across upserts: %v vs %v", first.CreatedAt, second.CreatedAt)
	}
	if !second.UpdatedAt.After(first.UpdatedAt) {
		t.Fatalf("updated_at did not advance: %v vs %v", first.UpdatedAt, second.UpdatedAt)
	}
}

func TestProfileUpsert_PartialUpdateKeepsUnsuppliedFields(t *testing.T) {
	repo := newMockProfileRepo()
	uc := NewProfileUsecase(repo, nil, nil)
	userID := uuid.New()

	_, err := uc.Upsert(context.Background(), userID, "u@example.com", UpsertProfileInput{
		Name:     "Ada",
		Role:     "Engineer",
		Location: strPtr("Berlin"),
		Skills:   []string{"go", "sql"},
	})
	if err != nil {
		t.Fatalf("seed upsert: %v", err)
	}

	updated, err := uc.Upsert(context.Background(), userID, "u@example.com", UpsertProfileInput{
		Name: "Ada",
		Role: "Staff Engineer",
	})
	if err != nil {
		t.Fatalf("partial upsert: %v", err)
	}

	if updated.Role != "Staff Engineer" {
		t.Fatalf("role not updated: %q", updated.Role)
	}
	if updated.Location == nil || *updated.Location != "Berlin" {
		t.Fatalf("unsupplied location lost: %v", updated.Location)
	}
	if len(updated.Skills) != 2 {
		t.Fatalf("unsupplied skills lost: %v", updated.Skills)
	}
}

func TestProfileUpsert_SalaryOrderValidated(t *testing.T) {
	uc := NewProfileUsecase(newMockProfileRepo(), nil, nil)

	_, err := uc.Upsert(context.Background(), uuid.New(), "u@example.com", UpsertProfileInput{
		Name:      "Ada",
		Role:      "Engineer",
		SalaryMin: intPtr(90000),
		SalaryMax: intPtr(60000),
	})

	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
}

func TestProfileUpsert_CompletedDefaultsTrue(t *testing.T) {
	repo := newMockProfileRepo()
	uc := NewProfileUsecase(repo, nil, nil)
	userID := uuid.New()

	p, err := uc.Upsert(context.Background(), userID, "u@example.com", UpsertProfileInput{Name: "A", Role: "B"})
	if err != nil {
		t.Fatalf("upsert: %v", err)
	}
	if !p.ProfileCompleted {
		t.Fatal("profile_completed should default to true")
	}

	completedFalse := false
	p, err = uc.Upsert(context.Background(), userID, "u@example.com", UpsertProfileInput{
		Name: "A", Role: "B", ProfileCompleted: &completedFalse,
	})
	if err != nil {
		t.Fatalf("upsert: %v", err)
	}
	if p.ProfileCompleted {
		t.Fatal("explicit profile_completed=false must be honored")
	}
}

func TestProfileUpsert_ConflictSurfaced(t *testing.T) {
	repo := newMockProfileRepo()
	repo.upsertErr = profile.ErrConflict
	uc := NewProfileUsecase(repo, nil, nil)

	_, err := uc.Upsert(context.Background(), uuid.New(), "u@example.com", UpsertProfileInput{Name: "A", Role: "B"})
	if !errors.Is(err, ErrProfileConflict) {
		t.Fatalf("expected ErrProfileConflict, got %v", err)
	}
}

func TestProfileUpsert_StoreErrorSurfaced(t *testing.T) {
	repo := newMockProfileRepo()
	repo.upsertErr = errors.New("connection refused")
	uc := NewProfileUsecase(repo, nil, nil)

	_, err := uc.Upsert(context.Background(), uuid.New(), "u@example.com", UpsertProfileInput{Name: "A", Role: "B"})
	if !errors.Is(err, ErrStoreUnavailable) {
		t.Fatalf("expected ErrStoreUnavailable, got %v", err)
	}
}

func TestProfileGet_NoRowIsNil(t *testing.T) {
	uc := NewProfileUsecase(newMockProfileRepo(), nil, nil)

	p, err := uc.Get(context.Background(), uuid.New())
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if p != nil {
		t.Fatalf("expected nil profile, got %+v", p)
	}
}

func TestCompletionLookup_CacheMissThenHit(t *testing.T) {
	repo := newMockProfileRepo()
	cache := newMockCompletionCache()
	uc := NewProfileUsecase(repo, cache, nil)
	userID := uuid.New()

	if _, err := uc.Upsert(context.Background(), userID, "u@example.com", UpsertProfileInput{Name: "A", Role: "B"}); err != nil {
		t.Fatalf("upsert: %v", err)
	}
	// The write-through set makes the first lookup a hit already; clear it to
	// force a store round trip.
	cache.Invalidate(context.Background(), userID)

	lookup := uc.CompletionLookup()

	completed, err := lookup(context.Background(), userID)
	if err != nil || !completed {
		t.Fatalf("first lookup: completed=%v err=%v", completed, err)
	}
	if cache.hits != 0 {
		t.Fatalf("first lookup should miss the cache, hits=%d", cache.hits)
	}

	completed, err = lookup(context.Background(), userID)
	if err != nil || !completed {
		t.Fatalf("second lookup: completed=%v err=%v", completed, err)
	}
	if cache.hits != 1 {
		t.Fatalf("second lookup should hit the cache, hits=%d", cache.hits)
	}
}

func TestCompletionLookup_StoreFailurePropagatesForGate(t *testing.T) {
	repo := newMockProfileRepo()
	repo.completedErr = errors.New("store down")
	uc := NewProfileUsecase(repo, newMockCompletionCache(), nil)

	_, err := uc.CompletionLookup()(context.Background(), uuid.New())
	if err == nil {
		t.Fatal("expected error so the gate can fail closed")
	}
}

// Fresh subject walking the whole flow: blocked from the dashboard, submits
// the wizard, then the gate flips.
func TestGateAndUpsert_EndToEnd(t *testing.T) {
	repo := newMockProfileRepo()
	uc := NewProfileUsecase(repo, newMockCompletionCache(), nil)
	userID := uuid.New()
	sess := &gate.Session{SubjectID: userID, Email: "u1@x.com"}
	lookup := uc.CompletionLookup()

	out := gate.Decide(context.Background(), gate.DashboardPath, sess, lookup)
	if out.Allow || out.Target != gate.ProfileSetupPath {
		t.Fatalf("fresh subject: expected redirect to setup, got %+v", out)
	}

	p, err := uc.Upsert(context.Background(), userID, "u1@x.com", UpsertProfileInput{Name: "Ada", Role: "Engineer"})
	if err != nil {
		t.Fatalf("wizard submission: %v", err)
	}
	if !p.ProfileCompleted {
		t.Fatal("wizard submission should mark the profile completed")
	}

	out = gate.Decide(context.Background(), gate.DashboardPath, sess, lookup)
	if !out.Allow {
		t.Fatalf("after submission: expected dashboard allow, got %+v", out)
	}

	out = gate.Decide(context.Background(), gate.ProfileSetupPath, sess, lookup)
	if out.Allow || out.Target != gate.DashboardPath {
		t.Fatalf("after submission: expected setup redirect to dashboard, got %+v", out)
	}
}
