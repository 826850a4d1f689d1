package httpapi

import (
	"context"
	"errors"
	"net"
	"net/http"
	"strings"

	"github.com/daybookapp/daybook/internal/common"
	"github.com/daybookapp/daybook/internal/server/auth"
)

// contextKey is a custom type for context keys to avoid collisions.
type contextKey string

const contextKeyUserID contextKey = "user_id"

// requireAuth validates the Bearer access token and attaches the user id to
// the request context. Expired tokens get a distinct message so clients know
// to refresh rather than re-login.
func (s *Server) requireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			writeErrorMsg(w, http.StatusUnauthorized, "missing authorization header")
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			writeErrorMsg(w, http.StatusUnauthorized, "invalid authorization header format")
			return
		}

		userID, err := auth.GetUserIDFromToken(parts[1], []byte(s.cfg.SecretKey))
		if err != nil {
			if errors.Is(err, common.ErrTokenExpired) {
				writeErrorMsg(w, http.StatusUnauthorized, "token expired")
				return
			}
			writeErrorMsg(w, http.StatusUnauthorized, "invalid token")
			return
		}

		ctx := context.WithValue(r.Context(), contextKeyUserID, userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// rateLimit rejects clients that exceed the per-IP token bucket. RealIP runs
// earlier in the chain, so RemoteAddr already reflects X-Forwarded-For.
func (s *Server) rateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		key, _, err := net.SplitHostPort(r.RemoteAddr)
		if err != nil {
			key = r.RemoteAddr
		}
		if !s.limiter.Allow(key) {
			writeErrorMsg(w, http.StatusTooManyRequests, "too many requests")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// getUserID extracts the authenticated user id from request context.
func getUserID(ctx context.Context) string {
	if userID, ok := ctx.Value(contextKeyUserID).(string); ok {
		return userID
	}
	return ""
}
