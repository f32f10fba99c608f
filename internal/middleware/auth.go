package middleware

import (
	"context"
	"net/http"
	"strings"

	"ClientAdmin/internal/token"
)

type contextKey string

const (
	userIDKey   contextKey = "userid"
	usernameKey contextKey = "username"
)

// WithAuth parses the Authorization bearer token and, when valid, places the
// account identity into the request context. Requests without a valid token
// pass through anonymous; handlers decide whether that is acceptable.
func WithAuth(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			h := r.Header.Get("Authorization")
			if !strings.HasPrefix(h, "Bearer ") {
				next.ServeHTTP(w, r)
				return
			}
			claims, err := token.Parse(strings.TrimPrefix(h, "Bearer "), secret)
			if err != nil {
				next.ServeHTTP(w, r)
				return
			}
			ctx := context.WithValue(r.Context(), userIDKey, claims.UserID)
			ctx = context.WithValue(ctx, usernameKey, claims.Username)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetUserIDFromContext returns the authenticated account id, if any.
func GetUserIDFromContext(ctx context.Context) (string, bool) {
	v, ok := ctx.Value(userIDKey).(string)
	return v, ok && v != ""
}

// GetUsernameFromContext returns the authenticated username, if any.
func GetUsernameFromContext(ctx context.Context) (string, bool) {
	v, ok := ctx.Value(usernameKey).(string)
	return v, ok && v != ""
}
