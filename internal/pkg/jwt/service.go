package jwt

import (
	"errors"
	"time"

	jwtlib "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	TokenTypeAccess  = "access"
	TokenTypeRefresh = "refresh"
)

var (
	ErrTokenExpired = errors.New("token expired")
	ErrTokenInvalid = errors.New("token invalid")
)

type Claims struct {
	UserID    uuid.UUID `json:"user_id"`
	Email     string    `json:"email,omitempty"`
	TokenType string    `json:"token_type"`

	IssuedAt  time.Time `json:"issued_at"`
	ExpiredAt time.Time `json:"expired_at"`

	jwtlib.RegisteredClaims
}

// Service is the identity collaborator: it answers "who, if anyone, is this?"
// for an opaque token. Callers never inspect tokens themselves.
type Service interface {
	GenerateAccessToken(userID uuid.UUID, email string) (string, error)
	GenerateRefreshToken(userID uuid.UUID) (string, error)
	ValidateToken(tokenString string) (Claims, error)
	IsRefreshToken(claims Claims) bool
}

// tokenSpec pairs a token type with its signing secret and lifetime. Access and
// refresh tokens are signed with independent secrets so one leaking does not
// compromise the other.
type tokenSpec struct {
	secret    []byte
	expiresIn time.Duration
}

type HMACService struct {
	specs map[string]tokenSpec
	now   func() time.Time
}

func NewHMACService(accessSecret, refreshSecret string, accessExpiresIn, refreshExpiresIn time.Duration) *HMACService {
	return &HMACService{
		specs: map[string]tokenSpec{
			TokenTypeAccess:  {secret: []byte(accessSecret), expiresIn: accessExpiresIn},
			TokenTypeRefresh: {secret: []byte(refreshSecret), expiresIn: refreshExpiresIn},
		},
		now: time.Now,
	}
}

func (s *HMACService) GenerateAccessToken(userID uuid.UUID, email string) (string, error) {
	return s.issue(TokenTypeAccess, userID, email)
}

func (s *HMACService) GenerateRefreshToken(userID uuid.UUID) (string, error) {
	return s.issue(TokenTypeRefresh, userID, "")
}

// ValidateToken tries each known secret; the embedded token_type claim is then
// checked against the spec table, so a refresh token verified with the access
// secret (or vice versa) still comes back invalid.
func (s *HMACService) ValidateToken(tokenString string) (Claims, error) {
	expired := false
	for _, tokenType := range []string{TokenTypeAccess, TokenTypeRefresh} {
		claims, err := s.parse(tokenString, s.specs[tokenType].secret)
		if err == nil {
			return claims, nil
		}
		if errors.Is(err, ErrTokenExpired) {
			expired = true
		}
	}
	if expired {
		return Claims{}, ErrTokenExpired
	}
	return Claims{}, ErrTokenInvalid
}

func (s *HMACService) IsRefreshToken(claims Claims) bool {
	return claims.TokenType == TokenTypeRefresh
}

func (s *HMACService) issue(tokenType string, userID uuid.UUID, email string) (string, error) {
	spec, ok := s.specs[tokenType]
	if !ok || len(spec.secret) == 0 || spec.expiresIn <= 0 {
		return "", ErrTokenInvalid
	}

	now := s.now().UTC()
	exp := now.Add(spec.expiresIn)

	c := Claims{
		UserID:    userID,
		Email:     email,
		TokenType: tokenType,
		IssuedAt:  now,
		ExpiredAt: exp,
		RegisteredClaims: jwtlib.RegisteredClaims{
			IssuedAt:  jwtlib.NewNumericDate(now),
			ExpiresAt: jwtlib.NewNumericDate(exp),
			Subject:   userID.String(),
		},
	}

	return jwtlib.NewWithClaims(jwtlib.SigningMethodHS256, c).SignedString(spec.secret)
}

func (s *HMACService) parse(tokenString string, secret []byte) (Claims, error) {
	p := jwtlib.NewParser(jwtlib.WithValidMethods([]string{jwtlib.SigningMethodHS256.Alg()}))

	var c Claims
	tok, err := p.ParseWithClaims(tokenString, &c, func(*jwtlib.Token) (any, error) {
		return secret, nil
	})
	if err != nil {
		if errors.Is(err, jwtlib.ErrTokenExpired) {
			return Claims{}, ErrTokenExpired
		}
		return Claims{}, ErrTokenInvalid
	}
	if tok == nil || !tok.Valid {
		return Claims{}, ErrTokenInvalid
	}

	if !c.ExpiredAt.IsZero() && s.now().UTC().After(c.ExpiredAt.UTC()) {
		return Claims{}, ErrTokenExpired
	}
	if _, ok := s.specs[c.TokenType]; !ok {
		return Claims{}, ErrTokenInvalid
	}

	return c, nil
}
