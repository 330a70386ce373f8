package auth

import (
	"errors"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"

	"github.com/spec-kit/hospital-portal/internal/domain"
	apperrors "github.com/spec-kit/hospital-portal/pkg/util"
)

// TokenManager issues and validates JWT tokens. The signing secret is injected
// at construction and read-only afterwards; rotation invalidates all
// outstanding tokens.
type TokenManager struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewTokenManager builds a new manager. ttlHours defaults to 24.
func NewTokenManager(secret string, ttlHours int) *TokenManager {
	if ttlHours <= 0 {
		ttlHours = 24
	}
	return &TokenManager{
		secret: []byte(secret),
		ttl:    time.Duration(ttlHours) * time.Hour,
		now:    time.Now,
	}
}

// Claims is the trusted payload of a bearer token: subject identity, tenant,
// role and expiry.
type Claims struct {
	HospitalID string      `json:"hospital_id"`
	Role       domain.Role `json:"role"`
	jwt.RegisteredClaims
}

// UserID returns the subject user id.
func (c *Claims) UserID() string {
	return c.Subject
}

// Issue builds and signs a token for a verified user. Expiry is always
// strictly in the future at issuance (now + TTL).
func (tm *TokenManager) Issue(user *domain.User) (string, time.Time, error) {
	now := tm.now()
	expiresAt := now.Add(tm.ttl)
	claims := &Claims{
		HospitalID: user.HospitalID,
		Role:       user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID,
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(tm.secret)
	if err != nil {
		return "", time.Time{}, apperrors.NewInternalError(err)
	}
	return tokenString, expiresAt, nil
}

// Validate verifies signature and expiry and returns the decoded claims. A
// token that is absent, malformed, badly signed or expired fails uniformly
// with UNAUTHORIZED; an expired-but-otherwise-valid token is never accepted.
func (tm *TokenManager) Validate(tokenStr string) (*Claims, error) {
	if tokenStr == "" {
		return nil, apperrors.NewUnauthorized("missing token")
	}

	parsed, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if token.Method != jwt.SigningMethodHS256 {
			return nil, errors.New("unexpected signing method")
		}
		return tm.secret, nil
	}, jwt.WithTimeFunc(tm.now))
	if err != nil {
		return nil, apperrors.NewUnauthorized("Invalid or expired token")
	}

	claims, ok := parsed.Claims.(*Claims)
	if !ok || !parsed.Valid {
		return nil, apperrors.NewUnauthorized("Invalid or expired token")
	}
	return claims, nil
}
