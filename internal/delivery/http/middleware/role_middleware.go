package middleware

import (
	"net/http"

	"vet-clinic-management/internal/domain/entity"
	"vet-clinic-management/pkg/response"
)

// RequireRole creates a middleware that checks if the user has any of the required roles
// Role is read from context (set by AuthMiddleware from JWT claims)
func RequireRole(allowedRoleIDs ...int) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// Get role ID from context (set by AuthMiddleware)
			roleID, ok := GetRoleIDFromContext(r.Context())
			if !ok {
				response.Unauthorized(w, "Role information not found")
				return
			}

			// Check if user's role is in allowed roles
			allowed := false
			for _, allowedRoleID := range allowedRoleIDs {
				if roleID == allowedRoleID {
					allowed = true
					break
				}
			}

			if !allowed {
				response.Forbidden(w, "You don't have permission to access this resource")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// RequireStaff is a convenience middleware for clinic-staff-only endpoints
func RequireStaff(next http.Handler) http.Handler {
	return RequireRole(entity.RoleIDStaff)(next)
}

// RequireVet is a convenience middleware for veterinarian-only endpoints
func RequireVet(next http.Handler) http.Handler {
	return RequireRole(entity.RoleIDVet)(next)
}

// RequireOwner is a convenience middleware for pet-owner-only endpoints
func RequireOwner(next http.Handler) http.Handler {
	return RequireRole(entity.RoleIDOwner)(next)
}

// RequireClinicStaff is a convenience middleware for staff or vet endpoints
func RequireClinicStaff(next http.Handler) http.Handler {
	return RequireRole(entity.RoleIDStaff, entity.RoleIDVet)(next)
}
