package middleware

import (
	"context"
	"net/http"

	"p9e.in/jobcard/jobcard"
)

type contextKey string

const sessionKey contextKey = "session"

// Registry holds every live data-entry session. Each session owns one job
// card record; nothing is shared across sessions.
var Registry = jobcard.NewSessions()

// SessionMiddleware resolves the X-Session-ID header against the registry and
// injects the session into the request context. Requests without a valid
// session are rejected before any handler runs.
func SessionMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get("X-Session-ID")
		if id == "" {
			http.Error(w, "missing X-Session-ID header", http.StatusUnauthorized)
			return
		}
		sess, err := Registry.Get(id)
		if err != nil {
			http.Error(w, "unknown session", http.StatusUnauthorized)
			return
		}
		ctx := context.WithValue(r.Context(), sessionKey, sess)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetSession returns the session injected by SessionMiddleware.
func GetSession(r *http.Request) *jobcard.Session {
	sess, _ := r.Context().Value(sessionKey).(*jobcard.Session)
	return sess
}
