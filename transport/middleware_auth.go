package transport

import (
	"context"
	"net/http"
	"strings"

	"github.com/gorilla/mux"
	authapp "github.com/sayhighz/nexark-platform/application/auth"
	"github.com/sayhighz/nexark-platform/constant"
	"github.com/sayhighz/nexark-platform/utils/errors"
)

// AuthMiddleware returns a middleware that validates JWT sessions using AuthApp.
// It allows public endpoints (shop browsing, server lists, login) without token.
func AuthMiddleware(authApp authapp.AuthApp) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// Public paths
			path := r.URL.Path
			if isPublicPath(path, r.Method) {
				next.ServeHTTP(w, r)
				return
			}

			// Check Authorization header
			auth := r.Header.Get("Authorization")
			if auth == "" || !strings.HasPrefix(auth, "Bearer ") {
				writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
				return
			}
			token := strings.TrimPrefix(auth, "Bearer ")

			// Validate token via AuthApp
			userID, err := authApp.ValidateToken(r.Context(), token)
			if err != nil {
				writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
				return
			}

			// Embed userID into context
			ctx := context.WithValue(r.Context(), constant.UserIDKey, userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// isPublicPath defines which endpoints are public (no auth required)
func isPublicPath(path, method string) bool {
	if strings.HasPrefix(path, "/swagger/") {
		return true
	}
	if path == "/api/v1/auth/steam/login" || path == "/api/v1/auth/steam/callback" {
		return true
	}
	if method != http.MethodGet {
		return false
	}
	if strings.HasPrefix(path, "/api/v1/shop/items") || path == "/api/v1/shop/categories" {
		return true
	}
	if strings.HasPrefix(path, "/api/v1/servers") || strings.HasPrefix(path, "/api/v1/content/") {
		return true
	}

	return false
}
