// Package session moves the signed token between server and browser through
// an HTTP-only cookie. All session truth lives in the token itself.
package session

import (
	"net/http"
	"time"
)

const CookieName = "auth_token"

// MaxAge matches the token TTL: 7 days.
const MaxAge = 7 * 24 * 60 * 60

// Transport stamps cookies with the deployment's security posture.
// Secure is off in local development so the cookie survives plain HTTP.
type Transport struct {
	Secure bool
}

func (t *Transport) Set(w http.ResponseWriter, value string) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    value,
		Path:     "/",
		MaxAge:   MaxAge,
		HttpOnly: true,
		Secure:   t.Secure,
		SameSite: http.SameSiteStrictMode,
	})
}

// Read returns the raw token, or "" when the cookie is absent.
func (t *Transport) Read(r *http.Request) string {
	c, err := r.Cookie(CookieName)
	if err != nil {
		return ""
	}
	return c.Value
}

// Clear deletes the cookie by expiring it at the epoch. Safe to call when no
// cookie was ever set.
func (t *Transport) Clear(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		Expires:  time.Unix(0, 0),
		HttpOnly: true,
		Secure:   t.Secure,
		SameSite: http.SameSiteStrictMode,
	})
}
