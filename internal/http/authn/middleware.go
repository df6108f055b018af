package authn

import (
	"context"
	"net/http"
	"strings"

	"github.com/rhasan/estatedesk/internal/auth"
)

type contextKey string

const emailKey contextKey = "email"

// Email returns the authenticated admin email, or "" outside the auth
// middleware.
func Email(ctx context.Context) string {
	email, _ := ctx.Value(emailKey).(string)
	return email
}

// RequireAuth validates the bearer token and stores the session email on the
// request context.
func RequireAuth(mgr *auth.Manager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" {
				http.Error(w, auth.ErrMissingToken.Error(), http.StatusUnauthorized)
				return
			}

			parts := strings.SplitN(header, " ", 2)
			if len(parts) != 2 || parts[0] != "Bearer" {
				http.Error(w, auth.ErrInvalidToken.Error(), http.StatusUnauthorized)
				return
			}

			claims, err := mgr.Validate(parts[1])
			if err != nil {
				http.Error(w, auth.ErrInvalidToken.Error(), http.StatusUnauthorized)
				return
			}

			ctx := context.WithValue(r.Context(), emailKey, claims.Email)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
