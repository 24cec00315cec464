package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/Dan9191/finplan-service/internal/utils"
)

type ctxKey int

const sessionIDKey ctxKey = 1

// TokenVerifier resolves a bearer token to a wizard session id
type TokenVerifier interface {
	Verify(token string) (string, error)
}

// SessionIDFromContext returns the session id set by SessionMiddleware
func SessionIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(sessionIDKey).(string)
	return id, ok && id != ""
}

// WithSessionID stores a session id in ctx
func WithSessionID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, sessionIDKey, id)
}

// SessionMiddleware rejects requests without a valid wizard session token
func SessionMiddleware(tokens TokenVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tok := bearerToken(r.Header.Get("Authorization"))
			if tok == "" {
				utils.WriteError(w, http.StatusUnauthorized, "missing bearer token")
				return
			}
			id, err := tokens.Verify(tok)
			if err != nil {
				utils.WriteError(w, http.StatusUnauthorized, "invalid token")
				return
			}
			next.ServeHTTP(w, r.WithContext(WithSessionID(r.Context(), id)))
		})
	}
}

func bearerToken(v string) string {
	parts := strings.SplitN(strings.TrimSpace(v), " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
