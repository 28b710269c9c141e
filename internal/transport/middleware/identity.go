package middleware

import (
	"net/http"
	"strings"

	"github.com/heartmarshall/material-tracker/internal/auth"
	"github.com/heartmarshall/material-tracker/pkg/ctxutil"
)

// tokenParser validates bearer tokens and extracts the viewer identity.
type tokenParser interface {
	Parse(token string) (auth.Identity, error)
}

// Identity returns middleware that resolves the viewer from a bearer token.
// Requests without a token pass through anonymously; a present but invalid
// token is rejected. A nil parser disables verification entirely, for
// deployments where the identity provider is not configured.
func Identity(parser tokenParser) Middleware {
	return func(next http.Handler) http.Handler {
		if parser == nil {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := extractBearerToken(r)
			if token == "" {
				next.ServeHTTP(w, r) // Anonymous
				return
			}
			id, err := parser.Parse(token)
			if err != nil {
				writeJSONError(w, http.StatusUnauthorized, "invalid token")
				return
			}
			ctx := ctxutil.WithViewerEmail(r.Context(), id.Email)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func extractBearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if !strings.HasPrefix(header, "Bearer ") {
		return ""
	}
	return strings.TrimPrefix(header, "Bearer ")
}
