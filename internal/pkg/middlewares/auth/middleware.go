package auth

import (
	"context"
	"net/http"
	"strings"

	"dispatch/internal/entities"
	"dispatch/pkg/logger"
)

type contextKey struct{}

var identityKey contextKey

const bearerPrefix = "Bearer "

// Middleware верифицирует Bearer токен и кладет identity в контекст.
// Роль и actor_id дальше по стеку берутся только отсюда, никогда из тела.
func Middleware(log handlerLogger, verifier tokenVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if !strings.HasPrefix(header, bearerPrefix) {
				unauthorized(w)
				return
			}

			identity, err := verifier.Verify(strings.TrimPrefix(header, bearerPrefix))
			if err != nil {
				log.With(
					logger.NewField("method", r.Method),
					logger.NewField("path", r.URL.Path),
					logger.NewField("remote_addr", r.RemoteAddr),
				).Warn("rejected token")
				unauthorized(w)
				return
			}

			ctx := WithIdentity(r.Context(), identity)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func unauthorized(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_, _ = w.Write([]byte(`{"error":"Unauthorized"}`))
}

func WithIdentity(ctx context.Context, identity entities.Identity) context.Context {
	return context.WithValue(ctx, identityKey, identity)
}

// IdentityFromContext возвращает identity, положенную Middleware.
func IdentityFromContext(ctx context.Context) (entities.Identity, bool) {
	identity, ok := ctx.Value(identityKey).(entities.Identity)
	return identity, ok
}
