package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bargaoui/rideaux/pkg/auth"
)

func identityEcho(t *testing.T, wantID string, wantAdmin bool) http.Handler {
	t.Helper()
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, wantID, UserIDFromCtx(r.Context()))
		assert.Equal(t, wantAdmin, IsAdminFromCtx(r.Context()))
		w.WriteHeader(http.StatusOK)
	})
}

func TestAuthenticateNoCookie(t *testing.T) {
	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/cart", nil)

	Authenticate(identityEcho(t, "", false)).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.Contains(t, rr.Body.String(), "Not authorized, no token")
}

func TestAuthenticateBadToken(t *testing.T) {
	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/cart", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookie, Value: "garbage"})

	Authenticate(identityEcho(t, "", false)).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.Contains(t, rr.Body.String(), "token failed")
}

func TestAuthenticateValidCookie(t *testing.T) {
	token, err := auth.GenerateToken("64f1b2c3d4e5f60718293a4b", false)
	require.NoError(t, err)

	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/cart", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookie, Value: token})

	Authenticate(identityEcho(t, "64f1b2c3d4e5f60718293a4b", false)).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestAdminOnly(t *testing.T) {
	ok := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	userToken, err := auth.GenerateToken("user-id", false)
	require.NoError(t, err)
	adminToken, err := auth.GenerateToken("admin-id", true)
	require.NoError(t, err)

	chain := Authenticate(AdminOnly(ok))

	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/users", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookie, Value: userToken})
	chain.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusForbidden, rr.Code)
	assert.Contains(t, rr.Body.String(), "Not authorized as an admin")

	rr = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/api/users", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookie, Value: adminToken})
	chain.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusOK, rr.Code)
}
