// AngelaMos | 2026
// gate.go

package user

import (
	"context"
	"errors"
	"net/http"

	"github.com/carterperez-dev/sports-academy/internal/core"
	"github.com/carterperez-dev/sports-academy/internal/middleware"
)

type RoleLookup interface {
	RoleOf(ctx context.Context, email string) (Role, error)
}

// RequireRole permits the request only when the stored role of the verified
// caller equals role. It must run after middleware.Authenticator.
func RequireRole(lookup RoleLookup, role Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			email := middleware.GetEmail(r.Context())
			if email == "" {
				core.Unauthorized(w, "")
				return
			}

			current, err := lookup.RoleOf(r.Context(), email)
			if err != nil {
				if errors.Is(err, core.ErrNotFound) {
					core.Forbidden(w, "")
					return
				}
				core.InternalServerError(w, err)
				return
			}

			if current != role {
				core.Forbidden(w, "")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
