// Package middleware provides the HTTP cross-cutting layer: the auth gate,
// panic recovery and request logging.
package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/groupchat/internal/auth"
)

const unauthorizedBody = `{"message":"Authorization token is missing or invalid"}`

// JWTAuth verifies the Bearer token and puts the verified user id into the
// request context before any handler runs. Everything that can go wrong
// (missing header, malformed token, expired token) yields the same generic
// 401 body.
func JWTAuth(jwt *auth.JWTManager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			token, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || token == "" {
				unauthorized(w)
				return
			}
			userID, err := jwt.VerifyToken(token)
			if err != nil {
				unauthorized(w)
				return
			}
			ctx := context.WithValue(r.Context(), UserIDKey, userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func unauthorized(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(http.StatusUnauthorized)
	w.Write([]byte(unauthorizedBody))
}
