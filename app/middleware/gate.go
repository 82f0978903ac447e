package middleware

import (
	"net/http"
	"strings"
)

const (
	loginPath   = "/login"
	signupPath  = "/signup"
	profilePath = "/profile"
	adminPrefix = "/admin"
)

// Gate enforces the page navigation policy:
//
//	/admin/*         admin only; authenticated non-admins go to /profile,
//	                 everyone else goes to /login
//	/profile         any valid session; otherwise /login
//	/login, /signup  only without a valid session; holders go to /profile,
//	                 an invalid token falls through as unauthenticated
//	anything else    public
//
// It guards navigation, not an API contract, so failures redirect instead of
// erroring, and a broken token is simply treated as no session.
func (a *Auth) Gate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		state, claims := a.classify(r)
		path := r.URL.Path

		switch {
		case strings.HasPrefix(path, adminPrefix):
			switch state {
			case stateAdmin:
				// continue
			case stateUser:
				http.Redirect(w, r, profilePath, http.StatusSeeOther)
				return
			default:
				http.Redirect(w, r, loginPath, http.StatusSeeOther)
				return
			}
		case path == profilePath:
			if state != stateUser && state != stateAdmin {
				http.Redirect(w, r, loginPath, http.StatusSeeOther)
				return
			}
		case path == loginPath || path == signupPath:
			if state == stateUser || state == stateAdmin {
				http.Redirect(w, r, profilePath, http.StatusSeeOther)
				return
			}
		}

		if claims != nil {
			r = r.WithContext(withClaims(r.Context(), claims))
		}
		next.ServeHTTP(w, r)
	})
}
