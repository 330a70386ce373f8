package auth

import (
	"github.com/spec-kit/hospital-portal/internal/domain"
	apperrors "github.com/spec-kit/hospital-portal/pkg/util"
)

// Authorize decides whether claims permit an action scoped to a hospital.
// Allowed only when both the role and the tenant match. The deny reasons are
// distinguishable for logging, but both surface as UNAUTHORIZED to callers.
// The guard never mutates state; call it before any persistence side effect.
func Authorize(claims *Claims, requiredRole domain.Role, targetHospitalID string) error {
	if claims == nil {
		return apperrors.NewUnauthorized("missing claims")
	}
	if claims.Role != requiredRole {
		return apperrors.NewUnauthorized("insufficient role for this action")
	}
	if claims.HospitalID != targetHospitalID {
		return apperrors.NewUnauthorized("action targets a hospital you do not belong to")
	}
	return nil
}
