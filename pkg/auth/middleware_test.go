package auth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestAuthMiddleware(t *testing.T) {
	jwtService := &JWTService{}
	userID := uuid.New()

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := r.Context().Value(UserIDKey).(uuid.UUID)
		assert.True(t, ok)
		assert.Equal(t, userID, id)
		role, ok := r.Context().Value(RoleKey).(string)
		assert.True(t, ok)
		assert.Equal(t, "CLIENT", role)
		w.WriteHeader(http.StatusOK)
	})

	tests := []struct {
		name         string
		authHeader   func() string
		expectedCode int
	}{
		{
			name: "Valid bearer token",
			authHeader: func() string {
				token, _ := jwtService.GenerateJWT(userID, "CLIENT", time.Now().Add(time.Hour))
				return "Bearer " + token
			},
			expectedCode: http.StatusOK,
		},
		{
			name:         "Missing header",
			authHeader:   func() string { return "" },
			expectedCode: http.StatusUnauthorized,
		},
		{
			name: "Missing bearer prefix",
			authHeader: func() string {
				token, _ := jwtService.GenerateJWT(userID, "CLIENT", time.Now().Add(time.Hour))
				return token
			},
			expectedCode: http.StatusUnauthorized,
		},
		{
			name:         "Malformed token",
			authHeader:   func() string { return "Bearer not.a.token" },
			expectedCode: http.StatusUnauthorized,
		},
		{
			name: "Expired token",
			authHeader: func() string {
				token, _ := jwtService.GenerateJWT(userID, "CLIENT", time.Now().Add(-time.Hour))
				return "Bearer " + token
			},
			expectedCode: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
			if header := tt.authHeader(); header != "" {
				r.Header.Set("Authorization", header)
			}
			w := httptest.NewRecorder()
			AuthMiddleware(next).ServeHTTP(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
		})
	}
}

func TestRequireRole(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	tests := []struct {
		name         string
		allowed      []string
		role         any
		expectedCode int
	}{
		{
			name:         "Role allowed",
			allowed:      []string{"SERVICE_PROVIDER"},
			role:         "SERVICE_PROVIDER",
			expectedCode: http.StatusOK,
		},
		{
			name:         "Role not allowed",
			allowed:      []string{"SERVICE_PROVIDER"},
			role:         "CLIENT",
			expectedCode: http.StatusForbidden,
		},
		{
			name:         "Role missing from context",
			allowed:      []string{"CLIENT"},
			role:         nil,
			expectedCode: http.StatusForbidden,
		},
		{
			name:         "Multiple roles allowed",
			allowed:      []string{"CLIENT", "SERVICE_PROVIDER"},
			role:         "CLIENT",
			expectedCode: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodGet, "/api/services", nil)
			if tt.role != nil {
				r = r.WithContext(context.WithValue(r.Context(), RoleKey, tt.role))
			}
			w := httptest.NewRecorder()
			RequireRole(tt.allowed...)(next).ServeHTTP(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
		})
	}
}
