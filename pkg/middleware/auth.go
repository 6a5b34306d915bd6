package middleware

import (
	"context"
	"net/http"

	"github.com/bargaoui/rideaux/pkg/auth"
	"github.com/bargaoui/rideaux/pkg/response"
)

// SessionCookie is the cookie that carries the session JWT.
const SessionCookie = "jwt"

type userIDKey struct{}
type isAdminKey struct{}

// Authenticate validates the session cookie and stores the caller's identity
// in the request context. Requests without a valid cookie get a 401.
func Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(SessionCookie)
		if err != nil || cookie.Value == "" {
			response.Error(w, http.StatusUnauthorized, "Not authorized, no token")
			return
		}

		claims, err := auth.ValidateToken(cookie.Value)
		if err != nil {
			response.Error(w, http.StatusUnauthorized, "Not authorized, token failed")
			return
		}

		ctx := context.WithValue(r.Context(), userIDKey{}, claims.UserID)
		ctx = context.WithValue(ctx, isAdminKey{}, claims.IsAdmin)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// AdminOnly rejects non-admin callers with a 403. Must run after Authenticate.
func AdminOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !IsAdminFromCtx(r.Context()) {
			response.Error(w, http.StatusForbidden, "Not authorized as an admin")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// UserIDFromCtx returns the authenticated user's ID, or "" when the request
// did not pass through Authenticate.
func UserIDFromCtx(ctx context.Context) string {
	if id, ok := ctx.Value(userIDKey{}).(string); ok {
		return id
	}
	return ""
}

// IsAdminFromCtx reports whether the authenticated user is an admin.
func IsAdminFromCtx(ctx context.Context) bool {
	if admin, ok := ctx.Value(isAdminKey{}).(bool); ok {
		return admin
	}
	return false
}

// WithIdentity stores an identity in ctx. Test helper for handlers that read
// UserIDFromCtx without going through the full middleware chain.
func WithIdentity(ctx context.Context, userID string, isAdmin bool) context.Context {
	ctx = context.WithValue(ctx, userIDKey{}, userID)
	return context.WithValue(ctx, isAdminKey{}, isAdmin)
}
