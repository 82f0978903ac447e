package middleware

import (
	"context"
	"net/http"

	"portfolio-admin/app/denylist"
	"portfolio-admin/app/dto"
	"portfolio-admin/app/session"
	"portfolio-admin/app/token"
)

type ctxKey int

const claimsKey ctxKey = 1

// authState is the per-request classification both enforcement points share.
type authState int

const (
	stateUnauthenticated authState = iota
	stateInvalidToken
	stateUser
	stateAdmin
)

// Auth is the request-intercepting layer. It never mutates anything: it
// classifies the caller from the session cookie and either continues the
// chain, rejects (API) or redirects (pages).
type Auth struct {
	Signer   *token.Signer
	Cookies  *session.Transport
	Denylist denylist.Denylist
}

// classify turns the incoming cookie into one of the four session states.
// Any verification failure, including a denylist lookup error, degrades to
// InvalidToken: the caller is treated as holding no usable session.
func (a *Auth) classify(r *http.Request) (authState, *token.Claims) {
	raw := a.Cookies.Read(r)
	if raw == "" {
		return stateUnauthenticated, nil
	}
	claims, err := a.Signer.Parse(raw)
	if err != nil {
		return stateInvalidToken, nil
	}
	revoked, err := a.Denylist.Revoked(r.Context(), claims.ID)
	if err != nil || revoked {
		return stateInvalidToken, nil
	}
	if claims.IsAdmin {
		return stateAdmin, claims
	}
	return stateUser, claims
}

// RequireAuth guards JSON endpoints that need any valid session.
func (a *Auth) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		state, claims := a.classify(r)
		if state != stateUser && state != stateAdmin {
			dto.Error(w, http.StatusUnauthorized, "not authenticated")
			return
		}
		next.ServeHTTP(w, r.WithContext(withClaims(r.Context(), claims)))
	})
}

// RequireAdmin guards admin-only JSON endpoints. A missing or invalid session
// is 401; a valid non-admin session is 403.
func (a *Auth) RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		state, claims := a.classify(r)
		switch state {
		case stateAdmin:
			next.ServeHTTP(w, r.WithContext(withClaims(r.Context(), claims)))
		case stateUser:
			dto.Error(w, http.StatusForbidden, "admin access required")
		default:
			dto.Error(w, http.StatusUnauthorized, "not authenticated")
		}
	})
}

func withClaims(ctx context.Context, claims *token.Claims) context.Context {
	return context.WithValue(ctx, claimsKey, claims)
}

// GetClaims returns the verified session claims placed in the context by one
// of the interceptors, or nil outside a session.
func GetClaims(ctx context.Context) *token.Claims {
	if c, ok := ctx.Value(claimsKey).(*token.Claims); ok {
		return c
	}
	return nil
}
