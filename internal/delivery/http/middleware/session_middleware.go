package middleware

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"

	"fruitmart-backend/internal/domain"
)

// Session issues an anonymous storefront session cookie and puts the
// session id on the request context. Carts and wishlists are keyed by this
// id; losing the cookie means starting with an empty cart.
func Session(cookieName string, ttl time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sessionID := ""
			if c, err := r.Cookie(cookieName); err == nil && c.Value != "" {
				sessionID = c.Value
			}
			if sessionID == "" {
				sessionID = uuid.New().String()
				http.SetCookie(w, &http.Cookie{
					Name:     cookieName,
					Value:    sessionID,
					Path:     "/",
					MaxAge:   int(ttl.Seconds()),
					HttpOnly: true,
					SameSite: http.SameSiteLaxMode,
				})
			}

			ctx := context.WithValue(r.Context(), domain.SessionContextKey, sessionID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// SessionID extracts the session id set by Session; empty when the
// middleware did not run.
func SessionID(r *http.Request) string {
	if id, ok := r.Context().Value(domain.SessionContextKey).(string); ok {
		return id
	}
	return ""
}
