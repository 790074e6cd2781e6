package middleware

import (
	"strings"

	"job-assist/internal/gate"
	"job-assist/internal/pkg/jwt"

	"github.com/gofiber/fiber/v3"
)

// RouteGuard runs the access gate in front of every page route: the request
// either reaches the page handler or leaves with a redirect, never both.
type RouteGuard struct {
	jwt           jwt.Service
	sessionCookie string
	lookup        gate.CompletionLookup
}

func NewRouteGuard(jwtSvc jwt.Service, sessionCookie string, lookup gate.CompletionLookup) *RouteGuard {
	return &RouteGuard{jwt: jwtSvc, sessionCookie: sessionCookie, lookup: lookup}
}

func (g *RouteGuard) Middleware() fiber.Handler {
	return func(c fiber.Ctx) error {
		outcome := gate.Decide(c.Context(), c.Path(), g.resolveSession(c), g.lookup)
		if outcome.Allow {
			return c.Next()
		}
		return c.Redirect().Status(fiber.StatusSeeOther).To(outcome.Target)
	}
}

// resolveSession asks the identity collaborator who the caller is. Any token
// problem means "nobody": the gate handles the consequences, not this layer.
func (g *RouteGuard) resolveSession(c fiber.Ctx) *gate.Session {
	token := strings.TrimSpace(c.Cookies(g.sessionCookie))
	if token == "" {
		if t, ok := bearerTokenFromHeader(c.Get("Authorization")); ok {
			token = t
		}
	}
	if token == "" {
		return nil
	}

	claims, err := g.jwt.ValidateToken(token)
	if err != nil {
		return nil
	}
	if claims.TokenType != jwt.TokenTypeAccess || g.jwt.IsRefreshToken(claims) {
		return nil
	}

	return &gate.Session{SubjectID: claims.UserID, Email: claims.Email}
}
