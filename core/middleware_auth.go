package core

import (
	"context"
	"errors"
	"net/http"

	"github.com/canaryfilms/portal/auth"
)

type contextKey int

const principalContextKey contextKey = iota

// PrincipalFromContext returns the principal stored by WithSession.
func PrincipalFromContext(ctx context.Context) (*auth.Principal, bool) {
	p, ok := ctx.Value(principalContextKey).(*auth.Principal)
	return p, ok
}

// WithSession decodes the session cookie and threads the resulting
// principal through the request context. A cookie pointing at a deleted
// user is cleared so the client does not keep replaying it.
func (a *App) WithSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, err := a.sessionIDFromRequest(r)
		if err != nil {
			if errors.Is(err, errNoSessionCookie) {
				writeJsonError(w, errorNoSession)
				return
			}
			writeJsonError(w, errorSessionInvalid)
			return
		}

		principal, err := a.sessions.Decode(r.Context(), id)
		if err != nil {
			var f *auth.Failure
			if errors.As(err, &f) && f.Kind == auth.FailurePrincipalVanished {
				a.clearSession(w)
			}
			writeJsonError(w, responseForAuthError(err))
			return
		}

		ctx := context.WithValue(r.Context(), principalContextKey, principal)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// WithApproved rejects principals an admin has not approved. Runs after
// WithSession.
func (a *App) WithApproved(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		p, ok := PrincipalFromContext(r.Context())
		if !ok {
			writeJsonError(w, errorNoSession)
			return
		}
		if !p.IsApproved {
			writeJsonError(w, errorAccountNotApproved)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// WithAdmin rejects non-admin principals. Runs after WithSession.
func (a *App) WithAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		p, ok := PrincipalFromContext(r.Context())
		if !ok {
			writeJsonError(w, errorNoSession)
			return
		}
		if !p.IsAdmin() {
			writeJsonError(w, errorForbidden)
			return
		}
		next.ServeHTTP(w, r)
	})
}
