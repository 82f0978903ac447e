package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"portfolio-admin/app/denylist"
	"portfolio-admin/app/models"
	"portfolio-admin/app/session"
	"portfolio-admin/app/token"
)

func testAuth() *Auth {
	return &Auth{
		Signer:   &token.Signer{Secret: []byte("test-secret"), Issuer: "test", TTL: time.Hour},
		Cookies:  &session.Transport{},
		Denylist: denylist.Noop{},
	}
}

func mintCookie(t *testing.T, a *Auth, admin bool) *http.Cookie {
	t.Helper()
	tok, err := a.Signer.Sign(&models.User{ID: "u1", Username: "ada", Email: "a@b.com", IsAdmin: admin})
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	return &http.Cookie{Name: session.CookieName, Value: tok}
}

// call runs the middleware-wrapped 200 handler with an optional cookie.
func call(t *testing.T, mw func(http.Handler) http.Handler, cookie *http.Cookie) *httptest.ResponseRecorder {
	t.Helper()
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if GetClaims(r.Context()) == nil {
			t.Error("expected claims in context")
		}
		w.WriteHeader(http.StatusOK)
	})
	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	if cookie != nil {
		req.AddCookie(cookie)
	}
	rec := httptest.NewRecorder()
	mw(inner).ServeHTTP(rec, req)
	return rec
}

func TestRequireAuth_MissingCookie(t *testing.T) {
	a := testAuth()
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	a.RequireAuth(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		t.Fatal("handler should not run")
	})).ServeHTTP(rec, req)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestRequireAuth_GarbageToken(t *testing.T) {
	a := testAuth()
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req.AddCookie(&http.Cookie{Name: session.CookieName, Value: "garbage"})
	a.RequireAuth(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		t.Fatal("handler should not run")
	})).ServeHTTP(rec, req)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestRequireAuth_ValidUser(t *testing.T) {
	a := testAuth()
	rec := call(t, a.RequireAuth, mintCookie(t, a, false))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestRequireAdmin_UserForbidden(t *testing.T) {
	a := testAuth()
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req.AddCookie(mintCookie(t, a, false))
	a.RequireAdmin(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		t.Fatal("handler should not run")
	})).ServeHTTP(rec, req)
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rec.Code)
	}
}

func TestRequireAdmin_NoSessionUnauthorized(t *testing.T) {
	a := testAuth()
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	a.RequireAdmin(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		t.Fatal("handler should not run")
	})).ServeHTTP(rec, req)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestRequireAdmin_Admin(t *testing.T) {
	a := testAuth()
	rec := call(t, a.RequireAdmin, mintCookie(t, a, true))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestRequireAuth_RevokedToken(t *testing.T) {
	a := testAuth()
	dl := denylist.NewMemory()
	a.Denylist = dl

	cookie := mintCookie(t, a, false)
	claims, err := a.Signer.Parse(cookie.Value)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if err := dl.Revoke(t.Context(), claims.ID, time.Hour); err != nil {
		t.Fatalf("revoke: %v", err)
	}

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req.AddCookie(cookie)
	a.RequireAuth(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		t.Fatal("handler should not run")
	})).ServeHTTP(rec, req)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for revoked token, got %d", rec.Code)
	}
}
