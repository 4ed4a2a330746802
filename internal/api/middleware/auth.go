package middleware

import (
	"context"
	"net/http"

	"github.com/dom/securecart/internal/domain"
	"github.com/dom/securecart/internal/service"
	"github.com/rs/zerolog/log"
)

// SessionCookieName is the fixed cookie carrying the raw bearer token.
const SessionCookieName = "sc-auth-session"

type contextKey string

const sessionKey contextKey = "session"

// SessionToken extracts the raw bearer token from the request cookie, or
// "" when the cookie is absent.
func SessionToken(r *http.Request) string {
	cookie, err := r.Cookie(SessionCookieName)
	if err != nil {
		return ""
	}
	return cookie.Value
}

// RequireUser builds the per-request auth context: it resolves the session
// cookie once and threads the session into the request context. Requests
// without a valid, unexpired session are rejected.
func RequireUser(authService *service.AuthService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			session, err := authService.ValidateSession(r.Context(), SessionToken(r))
			if err != nil {
				rejectAuth(w, r, err)
				return
			}

			ctx := context.WithValue(r.Context(), sessionKey, session)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireAdmin additionally checks the session owner's admin flag. An
// invalid session and a valid non-admin session get the same response.
func RequireAdmin(authService *service.AuthService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			session, err := authService.RequireAdmin(r.Context(), SessionToken(r))
			if err != nil {
				rejectAuth(w, r, err)
				return
			}

			ctx := context.WithValue(r.Context(), sessionKey, session)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func rejectAuth(w http.ResponseWriter, r *http.Request, err error) {
	switch domain.KindOf(err) {
	case domain.KindAuthentication, domain.KindAuthorization:
		http.Error(w, domain.MsgUnauthenticated, http.StatusUnauthorized)
	default:
		log.Error().Err(err).Str("path", r.URL.Path).Msg("session validation failed")
		http.Error(w, "internal server error", http.StatusInternalServerError)
	}
}

// GetSession returns the session placed in the context by RequireUser or
// RequireAdmin.
func GetSession(ctx context.Context) (*domain.Session, bool) {
	session, ok := ctx.Value(sessionKey).(*domain.Session)
	return session, ok
}
