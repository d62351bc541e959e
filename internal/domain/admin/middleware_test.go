package admin

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/plumeria/retreat-api/internal/pkg/jwt"
)

func protectedHandler(t *testing.T, wantAdminID uuid.UUID) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, ok := ClaimsFromContext(r.Context())
		if !ok {
			t.Error("claims missing from request context")
		} else if claims.AdminID != wantAdminID {
			t.Errorf("AdminID = %v, want %v", claims.AdminID, wantAdminID)
		}
		w.WriteHeader(http.StatusOK)
	})
}

func TestAuthMiddlewareBearerToken(t *testing.T) {
	jwtSvc := jwt.NewService("test-secret", time.Hour)
	adminID := uuid.New()
	token, err := jwtSvc.Generate(adminID, "admin@example.com")
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	handler := AuthMiddleware(jwtSvc)(protectedHandler(t, adminID))

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
}

func TestAuthMiddlewareQueryToken(t *testing.T) {
	// WebSocket clients cannot set headers, so ?token= must also work.
	jwtSvc := jwt.NewService("test-secret", time.Hour)
	adminID := uuid.New()
	token, err := jwtSvc.Generate(adminID, "admin@example.com")
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	handler := AuthMiddleware(jwtSvc)(protectedHandler(t, adminID))

	req := httptest.NewRequest(http.MethodGet, "/ws/bookings?token="+token, nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
}

func TestAuthMiddlewareRejects(t *testing.T) {
	jwtSvc := jwt.NewService("test-secret", time.Hour)
	expired, err := jwt.NewService("test-secret", -time.Minute).Generate(uuid.New(), "a@b.c")
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	wrongKey, err := jwt.NewService("other-secret", time.Hour).Generate(uuid.New(), "a@b.c")
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	tests := []struct {
		name   string
		header string
	}{
		{"no token", ""},
		{"malformed header", "Token abc"},
		{"garbage token", "Bearer not.a.token"},
		{"expired token", "Bearer " + expired},
		{"wrong signing key", "Bearer " + wrongKey},
	}

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("handler reached without valid token")
	})
	handler := AuthMiddleware(jwtSvc)(next)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/me", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			if rec.Code != http.StatusUnauthorized {
				t.Fatalf("status = %d, want 401", rec.Code)
			}
		})
	}
}
