package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/kindredhq/ledgerd/internal/domain"
	"github.com/kindredhq/ledgerd/internal/infrastructure/auth"
	"github.com/kindredhq/ledgerd/internal/infrastructure/metrics"
)

// ContextKey is the type for context keys
type ContextKey string

const (
	// PrincipalContextKey is the context key for the authenticated principal
	PrincipalContextKey ContextKey = "principal"
)

// AuthMiddleware creates an authentication middleware. Every request must
// carry a Bearer token; the verified claims become the request principal.
func AuthMiddleware(jwtManager *auth.JWTManager, m *metrics.Metrics) func(http.Handler) http.Handler {
	recordAttempt := func(status string) {
		if m != nil {
			m.AuthAttempts.WithLabelValues(status).Inc()
		}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				recordAttempt("failure")
				http.Error(w, "missing authorization header", http.StatusUnauthorized)
				return
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || parts[0] != "Bearer" {
				recordAttempt("failure")
				http.Error(w, "invalid authorization header format", http.StatusUnauthorized)
				return
			}

			claims, err := jwtManager.Verify(parts[1])
			if err != nil {
				recordAttempt("failure")
				http.Error(w, "invalid or expired token", http.StatusUnauthorized)
				return
			}

			recordAttempt("success")

			ctx := context.WithValue(r.Context(), PrincipalContextKey, claims.Principal())
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// StaticPrincipal injects a fixed principal into every request. Used when
// authentication is disabled.
func StaticPrincipal(principal domain.Principal) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := context.WithValue(r.Context(), PrincipalContextKey, principal)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetPrincipalFromContext extracts the authenticated principal from context
func GetPrincipalFromContext(ctx context.Context) (domain.Principal, bool) {
	principal, ok := ctx.Value(PrincipalContextKey).(domain.Principal)
	return principal, ok
}
