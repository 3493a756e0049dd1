package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signedToken(t *testing.T, secret string, method jwt.SigningMethod) string {
	t.Helper()
	claims := jwt.MapClaims{
		"user_id":  1,
		"username": "admin",
		"role":     "admin",
		"exp":      time.Now().Add(time.Hour).Unix(),
	}
	token, err := jwt.NewWithClaims(method, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return token
}

func protectedEcho(t *testing.T) http.Handler {
	t.Helper()
	return AdminAuthMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, ok := r.Context().Value(ClaimsKey).(jwt.MapClaims)
		require.True(t, ok, "claims must be set for downstream handlers")
		assert.Equal(t, "admin", claims["username"])
		w.WriteHeader(http.StatusOK)
	}))
}

func TestAdminAuthMiddlewareAcceptsValidToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/admin/stats", nil)
	req.Header.Set("Authorization", "Bearer "+signedToken(t, "test-secret", jwt.SigningMethodHS256))

	protectedEcho(t).ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAdminAuthMiddlewareRejections(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	cases := []struct {
		name  string
		setup func(r *http.Request)
	}{
		{"missing header", func(r *http.Request) {}},
		{"not bearer", func(r *http.Request) { r.Header.Set("Authorization", "Basic abc") }},
		{"garbage token", func(r *http.Request) { r.Header.Set("Authorization", "Bearer not.a.jwt") }},
		{"wrong secret", func(r *http.Request) {
			r.Header.Set("Authorization", "Bearer "+signedToken(t, "other-secret", jwt.SigningMethodHS256))
		}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/api/admin/stats", nil)
			tc.setup(req)

			protectedEcho(t).ServeHTTP(rec, req)
			assert.Equal(t, http.StatusUnauthorized, rec.Code)
		})
	}
}

func TestAdminAuthMiddlewareRejectsExpiredToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	claims := jwt.MapClaims{"user_id": 1, "exp": time.Now().Add(-time.Minute).Unix()}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/admin/stats", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	protectedEcho(t).ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAdminAuthMiddlewareRequiresConfiguredSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/admin/stats", nil)
	req.Header.Set("Authorization", "Bearer "+signedToken(t, "test-secret", jwt.SigningMethodHS256))

	protectedEcho(t).ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
