package middleware

import (
	"net/http"
	"strings"

	"gym_admin/internal/common"
	"gym_admin/internal/domain/model"
)

// Rule maps a request path prefix to the role required to reach it.
type Rule struct {
	Prefix string
	Role   string
}

// Policy is the route-guard table evaluated on every authenticated request.
// First matching prefix wins; paths with no matching rule only require a
// valid session. Keep more specific prefixes first.
var Policy = []Rule{
	{Prefix: "/api/v1/memberships", Role: model.RoleAdmin},
	{Prefix: "/api/v1/members", Role: model.RoleAdmin},
	{Prefix: "/api/v1/users", Role: model.RoleAdmin},
	{Prefix: "/api/v1/stats", Role: model.RoleAdmin},
}

// RequiredRole returns the role needed for path, or "" when any
// authenticated role may pass.
func RequiredRole(rules []Rule, path string) string {
	for _, rule := range rules {
		if strings.HasPrefix(path, rule.Prefix) {
			return rule.Role
		}
	}
	return ""
}

// Guard enforces a rule table. It must run after Authenticator so the role
// is present in the request context.
func Guard(rules []Rule) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			required := RequiredRole(rules, r.URL.Path)
			if required == "" {
				next.ServeHTTP(w, r)
				return
			}
			role, ok := GetUserRoleFromContext(r.Context())
			if !ok || role != required {
				common.RespondWithError(w, http.StatusForbidden, "Insufficient role for this resource")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
