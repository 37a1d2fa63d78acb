package middleware

import (
	"context"
	"net/http"
	"strings"

	goRevoke "github.com/MrEthical07/goRevoke"
)

type payloadContextKey struct{}

// PayloadFromContext returns the verified token payload stored by [Guard].
func PayloadFromContext(ctx context.Context) (any, bool) {
	payload := ctx.Value(payloadContextKey{})
	return payload, payload != nil
}

// Guard returns middleware that extracts a Bearer token, runs it through
// [goRevoke.Engine.Verify], and rejects the request with 401 on any
// signature or revocation failure. The verified payload is placed on the
// request context for downstream handlers.
func Guard(engine *goRevoke.Engine, secret []byte) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if engine == nil {
				http.Error(w, "unauthorized", http.StatusUnauthorized)
				return
			}

			token, ok := bearerToken(r.Header.Get("Authorization"))
			if !ok {
				http.Error(w, "unauthorized", http.StatusUnauthorized)
				return
			}

			payload, err := engine.Verify(r.Context(), token, secret)
			if err != nil {
				http.Error(w, "unauthorized", http.StatusUnauthorized)
				return
			}

			ctx := context.WithValue(r.Context(), payloadContextKey{}, payload)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func bearerToken(value string) (string, bool) {
	const bearer = "Bearer "
	if !strings.HasPrefix(value, bearer) {
		return "", false
	}

	token := value[len(bearer):]
	if token == "" {
		return "", false
	}

	return token, true
}
