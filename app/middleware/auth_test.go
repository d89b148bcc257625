package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	jwtutil "stockguard/app/jwt"
	"stockguard/app/session"

	"github.com/stretchr/testify/require"
)

func testAuth() *Auth {
	return &Auth{
		Signer:   &jwtutil.Signer{Secret: []byte("test-secret"), Issuer: "test", ExpHours: 1},
		Sessions: session.NewStore(nil),
	}
}

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestRequireAuth(t *testing.T) {
	t.Parallel()

	a := testAuth()
	h := a.RequireAuth(okHandler())

	cases := []struct {
		name   string
		header string
		want   int
	}{
		{"missing token", "", http.StatusUnauthorized},
		{"malformed header", "Token abc", http.StatusUnauthorized},
		{"garbage token", "Bearer not.a.jwt", http.StatusUnauthorized},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodGet, "/", nil)
			if tc.header != "" {
				r.Header.Set("Authorization", tc.header)
			}
			w := httptest.NewRecorder()
			h.ServeHTTP(w, r)
			require.Equal(t, tc.want, w.Code)
		})
	}

	token, err := a.Signer.Sign(1, "jdoe", "staff")
	require.NoError(t, err)
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, r)
	require.Equal(t, http.StatusOK, w.Code)
}

func TestRequireAuth_Expired(t *testing.T) {
	t.Parallel()

	a := testAuth()
	a.Signer.ExpHours = -1
	token, err := a.Signer.Sign(1, "jdoe", "staff")
	require.NoError(t, err)

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	a.RequireAuth(okHandler()).ServeHTTP(w, r)
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireAdmin(t *testing.T) {
	t.Parallel()

	a := testAuth()
	h := a.RequireAdmin(okHandler())

	// Valid identity, wrong role: 403, not 401.
	staffToken, err := a.Signer.Sign(1, "jdoe", "staff")
	require.NoError(t, err)
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.Header.Set("Authorization", "Bearer "+staffToken)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, r)
	require.Equal(t, http.StatusForbidden, w.Code)

	adminToken, err := a.Signer.Sign(2, "root", "admin")
	require.NoError(t, err)
	r = httptest.NewRequest(http.MethodGet, "/", nil)
	r.Header.Set("Authorization", "Bearer "+adminToken)
	w = httptest.NewRecorder()
	h.ServeHTTP(w, r)
	require.Equal(t, http.StatusOK, w.Code)

	// No token at all: 401.
	r = httptest.NewRequest(http.MethodGet, "/", nil)
	w = httptest.NewRecorder()
	h.ServeHTTP(w, r)
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

// revokedSessions marks a single jti as revoked.
type revokedSessions struct{ jti string }

func (s *revokedSessions) IsRevoked(_ context.Context, jti string) bool { return jti == s.jti }

func TestRequireAuth_RevokedToken(t *testing.T) {
	t.Parallel()

	a := testAuth()
	token, err := a.Signer.Sign(1, "jdoe", "admin")
	require.NoError(t, err)
	claims, err := a.Signer.Parse(token)
	require.NoError(t, err)
	a.Sessions = &revokedSessions{jti: claims.ID}

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	a.RequireAuth(okHandler()).ServeHTTP(w, r)
	require.Equal(t, http.StatusUnauthorized, w.Code)

	// Same revoked token on an admin route: still 401, not 403.
	w = httptest.NewRecorder()
	a.RequireAdmin(okHandler()).ServeHTTP(w, r)
	require.Equal(t, http.StatusUnauthorized, w.Code)

	// A fresh token with a different jti passes.
	fresh, err := a.Signer.Sign(1, "jdoe", "staff")
	require.NoError(t, err)
	r = httptest.NewRequest(http.MethodGet, "/", nil)
	r.Header.Set("Authorization", "Bearer "+fresh)
	w = httptest.NewRecorder()
	a.RequireAuth(okHandler()).ServeHTTP(w, r)
	require.Equal(t, http.StatusOK, w.Code)
}

func TestClaimsAttachedToContext(t *testing.T) {
	t.Parallel()

	a := testAuth()
	var got string
	h := a.RequireAuth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if c := GetClaims(r.Context()); c != nil {
			got = c.StaffID
		}
	}))

	token, err := a.Signer.Sign(7, "jdoe", "staff")
	require.NoError(t, err)
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.Header.Set("Authorization", "Bearer "+token)
	h.ServeHTTP(httptest.NewRecorder(), r)
	require.Equal(t, "jdoe", got)
}
