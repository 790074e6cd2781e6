package gate

import (
	"context"
	"errors"
	"net/url"
	"testing"

	"github.com/google/uuid"
)

func staticLookup(completed bool, err error) CompletionLookup {
	return func(context.Context, uuid.UUID) (bool, error) {
		return completed, err
	}
}

func session() *Session {
	return &Session{SubjectID: uuid.New(), Email: "u@example.com"}
}

func TestDecide_ProtectedWithoutSession_RedirectsToLogin(t *testing.T) {
	for _, path := range []string{"/dashboard", "/profile-setup", "/dashboard/settings"} {
		out := Decide(context.Background(), path, nil, staticLookup(true, nil))
		if out.Allow {
			t.Fatalf("path %s: expected redirect, got allow", path)
		}
		want := "/login?redirectTo=" + url.QueryEscape(path)
		if out.Target != want {
			t.Fatalf("path %s: expected target %q, got %q", path, want, out.Target)
		}
	}
}

func TestDecide_AuthRoutesWithSession_RedirectToDashboard(t *testing.T) {
	for _, path := range []string{"/login", "/signup", "/login/reset"} {
		out := Decide(context.Background(), path, session(), staticLookup(false, nil))
		if out.Allow || out.Target != DashboardPath {
			t.Fatalf("path %s: expected redirect to dashboard, got %+v", path, out)
		}
	}
}

func TestDecide_DashboardCompleted_Allows(t *testing.T) {
	out := Decide(context.Background(), DashboardPath, session(), staticLookup(true, nil))
	if !out.Allow {
		t.Fatalf("expected allow, got redirect to %q", out.Target)
	}
}

func TestDecide_DashboardNotCompleted_RedirectsToSetup(t *testing.T) {
	out := Decide(context.Background(), DashboardPath, session(), staticLookup(false, nil))
	if out.Allow || out.Target != ProfileSetupPath {
		t.Fatalf("expected redirect to profile setup, got %+v", out)
	}
}

func TestDecide_DashboardLookupFailure_FailsClosed(t *testing.T) {
	out := Decide(context.Background(), DashboardPath, session(), staticLookup(true, errors.New("store down")))
	if out.Allow || out.Target != ProfileSetupPath {
		t.Fatalf("expected fail-closed redirect to profile setup, got %+v", out)
	}

	out = Decide(context.Background(), DashboardPath, session(), nil)
	if out.Allow || out.Target != ProfileSetupPath {
		t.Fatalf("nil lookup: expected redirect to profile setup, got %+v", out)
	}
}

func TestDecide_SetupCompleted_RedirectsToDashboard(t *testing.T) {
	out := Decide(context.Background(), ProfileSetupPath, session(), staticLookup(true, nil))
	if out.Allow || out.Target != DashboardPath {
		t.Fatalf("expected redirect to dashboard, got %+v", out)
	}
}

func TestDecide_SetupNotCompletedOrUnknown_Allows(t *testing.T) {
	out := Decide(context.Background(), ProfileSetupPath, session(), staticLookup(false, nil))
	if !out.Allow {
		t.Fatalf("not completed: expected allow, got %+v", out)
	}

	out = Decide(context.Background(), ProfileSetupPath, session(), staticLookup(false, errors.New("no row")))
	if !out.Allow {
		t.Fatalf("lookup failure: expected allow, got %+v", out)
	}
}

func TestDecide_PublicPaths_AlwaysAllow(t *testing.T) {
	paths := []string{"/", "/about", "/pricing", "/api/v1/jobs"}
	for _, path := range paths {
		if out := Decide(context.Background(), path, nil, nil); !out.Allow {
			t.Fatalf("anonymous %s: expected allow, got %+v", path, out)
		}
		if out := Decide(context.Background(), path, session(), staticLookup(false, nil)); !out.Allow {
			t.Fatalf("authenticated %s: expected allow, got %+v", path, out)
		}
	}
}

func TestDecide_AuthRoutesWithoutSession_Allow(t *testing.T) {
	for _, path := range []string{"/login", "/signup"} {
		if out := Decide(context.Background(), path, nil, nil); !out.Allow {
			t.Fatalf("path %s: expected allow, got %+v", path, out)
		}
	}
}

func TestDecide_LookupNotCalledForAnonymous(t *testing.T) {
	called := false
	lookup := func(context.Context, uuid.UUID) (bool, error) {
		called = true
		return true, nil
	}
	Decide(context.Background(), DashboardPath, nil, lookup)
	if called {
		t.Fatal("completion lookup must not run without a session")
	}
}
