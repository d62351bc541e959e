package admin

import (
	"context"
	"net/http"
	"strings"

	"github.com/plumeria/retreat-api/internal/pkg/jwt"
	"github.com/plumeria/retreat-api/internal/pkg/response"
)

type contextKey string

const claimsKey contextKey = "admin_claims"

// AuthMiddleware validates the Bearer token and stores claims in context.
// The token may also arrive as ?token= for WebSocket clients that cannot
// set headers.
func AuthMiddleware(jwtSvc *jwt.Service) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := bearerToken(r)
			if token == "" {
				token = r.URL.Query().Get("token")
			}
			if token == "" {
				response.Unauthorized(w, "Missing authorization token")
				return
			}

			claims, err := jwtSvc.Validate(token)
			if err != nil {
				response.Unauthorized(w, "Invalid or expired token")
				return
			}

			ctx := context.WithValue(r.Context(), claimsKey, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// ClaimsFromContext returns the authenticated admin claims, if any
func ClaimsFromContext(ctx context.Context) (*jwt.Claims, bool) {
	claims, ok := ctx.Value(claimsKey).(*jwt.Claims)
	return claims, ok
}

func bearerToken(r *http.Request) string {
	h := r.Header.Get("Authorization")
	if h == "" {
		return ""
	}
	parts := strings.SplitN(h, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
