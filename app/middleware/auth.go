package middleware

import (
	"context"
	"net/http"
	"strings"

	jwtutil "stockguard/app/jwt"
)

type ctxKey int

const ClaimsKey ctxKey = 1

// SessionChecker answers whether a token id has been revoked. Satisfied by
// session.Store.
type SessionChecker interface {
	IsRevoked(ctx context.Context, jti string) bool
}

type Auth struct {
	Signer   *jwtutil.Signer
	Sessions SessionChecker
}

// resolve extracts and validates the bearer token, checking the revocation
// list. Returns nil if the request carries no valid identity.
func (a *Auth) resolve(r *http.Request) *jwtutil.Claims {
	authz := r.Header.Get("Authorization")
	if !strings.HasPrefix(authz, "Bearer ") {
		return nil
	}
	claims, err := a.Signer.Parse(strings.TrimPrefix(authz, "Bearer "))
	if err != nil {
		return nil
	}
	if a.Sessions != nil && a.Sessions.IsRevoked(r.Context(), claims.ID) {
		return nil
	}
	return claims
}

func (a *Auth) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims := a.resolve(r)
		if claims == nil {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"error":"unauthorized"}`))
			return
		}
		ctx := context.WithValue(r.Context(), ClaimsKey, claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (a *Auth) RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims := a.resolve(r)
		if claims == nil {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"error":"unauthorized"}`))
			return
		}
		if claims.Role != "admin" {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusForbidden)
			_, _ = w.Write([]byte(`{"error":"forbidden"}`))
			return
		}
		ctx := context.WithValue(r.Context(), ClaimsKey, claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
