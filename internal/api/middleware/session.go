package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/Harshitk-cp/tenantdesk/internal/domain"
)

const sessionContextKey contextKey = "session"

// Authenticator resolves a bearer token to the current session.
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (*domain.Session, error)
}

// SessionFromContext returns the authenticated session, or nil.
func SessionFromContext(ctx context.Context) *domain.Session {
	s, _ := ctx.Value(sessionContextKey).(*domain.Session)
	return s
}

// WithSession returns a copy of ctx carrying sess.
func WithSession(ctx context.Context, sess *domain.Session) context.Context {
	return context.WithValue(ctx, sessionContextKey, sess)
}

// SessionAuth attaches the session named by the bearer token, if any. It never
// rejects a request; guards further down decide what an anonymous caller sees.
func SessionAuth(auth Authenticator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := BearerToken(r)
			if token == "" {
				next.ServeHTTP(w, r)
				return
			}

			sess, err := auth.Authenticate(r.Context(), token)
			if err != nil || sess == nil {
				next.ServeHTTP(w, r)
				return
			}
			if h := holderFromContext(r.Context()); h != nil {
				h.email = sess.Email
				h.role = string(sess.Role)
			}
			next.ServeHTTP(w, r.WithContext(WithSession(r.Context(), sess)))
		})
	}
}

// BearerToken extracts the token from an "Authorization: Bearer <token>" header.
func BearerToken(r *http.Request) string {
	parts := strings.SplitN(r.Header.Get("Authorization"), " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
