package middleware

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"
	"github.com/ingenious-hr/hr-portal-go/internal/domain/auth"
	"github.com/ingenious-hr/hr-portal-go/internal/domain/employee"
	"github.com/ingenious-hr/hr-portal-go/internal/handler/http/response"
)

func AdminOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, claims, err := jwtauth.FromContext(r.Context())
		if err != nil {
			response.HandleError(w, auth.ErrInvalidToken)
			return
		}

		role, ok := claims["role"].(string)
		if !ok || role != string(employee.RoleAdmin) {
			response.HandleError(w, auth.ErrAdminRequired)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// EmployeeID extracts the authenticated employee id from the JWT claims.
func EmployeeID(r *http.Request) (string, bool) {
	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		return "", false
	}
	id, ok := claims["employee_id"].(string)
	return id, ok && id != ""
}

// IsAdmin reports whether the authenticated caller holds the admin role.
func IsAdmin(r *http.Request) bool {
	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		return false
	}
	role, ok := claims["role"].(string)
	return ok && role == string(employee.RoleAdmin)
}
