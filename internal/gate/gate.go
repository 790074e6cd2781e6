// Package gate decides, per request, whether a routed path may render for the
// caller or must redirect. It is pure: session resolution and the profile
// completion lookup are injected by the hosting layer.
package gate

import (
	"context"
	"net/url"
	"strings"

	"github.com/google/uuid"
)

const (
	LoginPath        = "/login"
	SignupPath       = "/signup"
	DashboardPath    = "/dashboard"
	ProfileSetupPath = "/profile-setup"
)

var (
	protectedPrefixes = []string{DashboardPath, ProfileSetupPath}
	authOnlyPrefixes  = []string{LoginPath, SignupPath}
)

// Session is the proof of an authenticated caller, as resolved by the identity
// collaborator. The gate only reads it.
type Session struct {
	SubjectID uuid.UUID
	Email     string
}

// CompletionLookup reports whether the subject's profile_completed flag is set.
// Any error, including "no profile row", means completion is unknown; the gate
// never propagates it.
type CompletionLookup func(ctx context.Context, subjectID uuid.UUID) (bool, error)

type Outcome struct {
	Allow  bool
	Target string
}

func allow() Outcome {
	return Outcome{Allow: true}
}

func redirect(target string) Outcome {
	return Outcome{Target: target}
}

// Decide evaluates the routing rules in fixed priority order; the first match
// wins. Authentication is checked strictly before profile completeness, and an
// unknown completion state never allows the dashboard.
func Decide(ctx context.Context, path string, sess *Session, lookup CompletionLookup) Outcome {
	if isProtected(path) && sess == nil {
		return redirect(LoginPath + "?redirectTo=" + url.QueryEscape(path))
	}

	if isAuthOnly(path) && sess != nil {
		return redirect(DashboardPath)
	}

	if path == ProfileSetupPath && sess != nil {
		if confirmedCompleted(ctx, sess.SubjectID, lookup) {
			return redirect(DashboardPath)
		}
		return allow()
	}

	if path == DashboardPath && sess != nil {
		if confirmedCompleted(ctx, sess.SubjectID, lookup) {
			return allow()
		}
		return redirect(ProfileSetupPath)
	}

	return allow()
}

// confirmedCompleted is true only when the lookup positively confirms a
// completed profile. A missing row, a store failure or a nil lookup all count
// as "not completed".
func confirmedCompleted(ctx context.Context, subjectID uuid.UUID, lookup CompletionLookup) bool {
	if lookup == nil {
		return false
	}
	completed, err := lookup(ctx, subjectID)
	if err != nil {
		return false
	}
	return completed
}

func isProtected(path string) bool {
	return hasAnyPrefix(path, protectedPrefixes)
}

func isAuthOnly(path string) bool {
	return hasAnyPrefix(path, authOnlyPrefixes)
}

func hasAnyPrefix(path string, prefixes []string) bool {
	for _, p := range prefixes {
		if strings.HasPrefix(path, p) {
			return true
		}
	}
	return false
}
