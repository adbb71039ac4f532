package core

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/canaryfilms/portal/auth"
)

// SessionCookieName carries the signed session token. The token payload is
// only the codec-encoded principal id; everything else is re-read from the
// database on each request so role and approval changes apply immediately.
const SessionCookieName = "portal_session"

var errNoSessionCookie = errors.New("no session cookie")

// issueSession signs a session token for the principal and sets the cookie.
func (a *App) issueSession(w http.ResponseWriter, p auth.Principal) error {
	cfg := a.Config()
	now := time.Now()
	claims := jwt.MapClaims{
		"sub": a.sessions.Encode(p),
		"iat": now.Unix(),
		"exp": now.Add(cfg.Session.Duration.Duration).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(cfg.Session.Secret))
	if err != nil {
		return fmt.Errorf("sign session token: %w", err)
	}
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    signed,
		Path:     "/",
		MaxAge:   int(cfg.Session.Duration.Duration.Seconds()),
		HttpOnly: true,
		Secure:   cfg.Session.Secure,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}

// sessionIDFromRequest extracts and verifies the session cookie, returning
// the encoded principal id stored in the token.
func (a *App) sessionIDFromRequest(r *http.Request) (string, error) {
	cookie, err := r.Cookie(SessionCookieName)
	if err != nil {
		return "", errNoSessionCookie
	}

	cfg := a.Config()
	token, err := jwt.Parse(cookie.Value,
		func(t *jwt.Token) (interface{}, error) {
			return []byte(cfg.Session.Secret), nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return "", fmt.Errorf("parse session token: %w", err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", errors.New("unexpected claims type")
	}
	sub, ok := claims["sub"].(string)
	if !ok || sub == "" {
		return "", errors.New("session token has no subject")
	}
	return sub, nil
}

// clearSession expires the cookie.
func (a *App) clearSession(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   a.Config().Session.Secure,
		SameSite: http.SameSiteLaxMode,
	})
}
