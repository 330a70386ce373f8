package auth

import (
	"testing"

	jwt "github.com/golang-jwt/jwt/v5"

	"github.com/spec-kit/hospital-portal/internal/domain"
	apperrors "github.com/spec-kit/hospital-portal/pkg/util"
)

func claimsFor(role domain.Role, hospitalID string) *Claims {
	return &Claims{
		HospitalID:       hospitalID,
		Role:             role,
		RegisteredClaims: jwt.RegisteredClaims{Subject: "user-1"},
	}
}

func TestAuthorize(t *testing.T) {
	const hospital = "hospital-1"

	cases := []struct {
		name    string
		claims  *Claims
		role    domain.Role
		target  string
		allowed bool
	}{
		{"role and tenant match", claimsFor(domain.RoleAdmin, hospital), domain.RoleAdmin, hospital, true},
		{"role mismatch, tenant match", claimsFor(domain.RolePatient, hospital), domain.RoleAdmin, hospital, false},
		{"role match, tenant mismatch", claimsFor(domain.RoleAdmin, "hospital-2"), domain.RoleAdmin, hospital, false},
		{"both mismatch", claimsFor(domain.RoleDoctor, "hospital-2"), domain.RoleAdmin, hospital, false},
		{"nil claims", nil, domain.RoleAdmin, hospital, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := Authorize(tc.claims, tc.role, tc.target)
			if tc.allowed {
				if err != nil {
					t.Fatalf("Authorize denied: %v", err)
				}
				return
			}
			if err == nil {
				t.Fatal("Authorize allowed, want deny")
			}
			if !apperrors.IsCode(err, "UNAUTHORIZED") {
				t.Fatalf("code = %s, want UNAUTHORIZED", apperrors.ToDomainError(err).Code)
			}
		})
	}
}
