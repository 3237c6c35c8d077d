package server

import (
	"context"
	"net/http"
)

type ctxKey int

const userIDKey ctxKey = iota

// requireUserID scopes every history request to the caller-supplied opaque
// user identifier. No authentication happens here; the header is trusted.
func requireUserID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID := r.Header.Get("X-User-Id")
		if userID == "" {
			respondError(w, http.StatusUnauthorized, "missing X-User-Id header")
			return
		}
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), userIDKey, userID)))
	})
}

func userIDFrom(ctx context.Context) string {
	userID, _ := ctx.Value(userIDKey).(string)
	return userID
}
