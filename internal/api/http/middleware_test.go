package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"mowerworks-backend/internal/domain"
	"mowerworks-backend/internal/security"
)

func okHandler(t *testing.T) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, ok := ClaimsFromContext(r.Context())
		assert.True(t, ok, "claims must be on the context")
		assert.NotZero(t, claims.UserID)
		w.WriteHeader(http.StatusOK)
	})
}

func TestAuthMiddleware(t *testing.T) {
	tokens := security.NewTokenManager("middleware-test-secret", 15, 10080)
	handler := AuthMiddleware(tokens)(okHandler(t))

	t.Run("Missing Token", func(t *testing.T) {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/jobs", nil))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("Valid Access Token", func(t *testing.T) {
		token, err := tokens.GenerateAccessToken(1, "staff@mowerworks.com.au", domain.UserRoleStaff)
		assert.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/jobs", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("Refresh Token Rejected", func(t *testing.T) {
		token, err := tokens.GenerateRefreshToken(1, "staff@mowerworks.com.au")
		assert.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/jobs", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestRequireAdmin(t *testing.T) {
	tokens := security.NewTokenManager("middleware-test-secret", 15, 10080)
	inner := func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusOK) }
	handler := AuthMiddleware(tokens)(RequireAdmin(inner))

	t.Run("Staff Blocked", func(t *testing.T) {
		token, _ := tokens.GenerateAccessToken(1, "staff@mowerworks.com.au", domain.UserRoleStaff)
		req := httptest.NewRequest(http.MethodPut, "/api/v1/transport-config", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("Admin Allowed", func(t *testing.T) {
		token, _ := tokens.GenerateAccessToken(2, "admin@mowerworks.com.au", domain.UserRoleAdmin)
		req := httptest.NewRequest(http.MethodPut, "/api/v1/transport-config", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}
