package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/crucial707/folio-api/internal/token"
	"go.uber.org/zap"
)

type key string

const claimsKey key = "claims"

// TokenVerifier decodes a raw token or fails with errs.ErrInvalidToken.
type TokenVerifier interface {
	Verify(raw string) (*token.Claims, error)
}

// WithClaims attaches verified claims to ctx.
func WithClaims(ctx context.Context, c *token.Claims) context.Context {
	return context.WithValue(ctx, claimsKey, c)
}

// ClaimsFrom returns the claims set by Authenticate.
func ClaimsFrom(ctx context.Context) (*token.Claims, bool) {
	c, ok := ctx.Value(claimsKey).(*token.Claims)
	return c, ok && c != nil
}

// GetUserID returns the authenticated user's id.
func GetUserID(ctx context.Context) (string, bool) {
	c, ok := ClaimsFrom(ctx)
	if !ok {
		return "", false
	}
	return c.Subject, true
}

// Authenticate gates a route on a valid token in the Authorization header.
// The header holds the bare token; a "Bearer " prefix is tolerated.
//
// A missing header is 401. A token that fails verification is answered as
// 404 so that protected routes are indistinguishable from unknown ones.
// Requests that already carry claims pass straight through.
func Authenticate(v TokenVerifier, log *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if _, ok := ClaimsFrom(r.Context()); ok {
				next.ServeHTTP(w, r)
				return
			}

			authHeader := strings.TrimSpace(r.Header.Get("Authorization"))
			if authHeader == "" {
				writeJSONError(w, "missing authorization header", http.StatusUnauthorized)
				return
			}

			raw := authHeader
			if len(raw) > 7 && strings.EqualFold(raw[:7], "Bearer ") {
				raw = strings.TrimSpace(raw[7:])
			}

			claims, err := v.Verify(raw)
			if err != nil {
				log.Debug("token rejected",
					zap.String("method", r.Method),
					zap.String("path", r.URL.Path),
					zap.Error(err))
				writeJSONError(w, "not found", http.StatusNotFound)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithClaims(r.Context(), claims)))
		})
	}
}

func writeJSONError(w http.ResponseWriter, message string, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}
