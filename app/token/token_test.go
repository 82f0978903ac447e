package token

import (
	"errors"
	"testing"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"

	"portfolio-admin/app/models"
)

func testSigner(ttl time.Duration) *Signer {
	return &Signer{Secret: []byte("test-secret"), Issuer: "test", TTL: ttl}
}

func testUser(admin bool) *models.User {
	return &models.User{
		ID:       "user-1",
		Name:     "Ada",
		Username: "ada",
		Email:    "ada@example.com",
		IsAdmin:  admin,
	}
}

func TestSignParse_RoundTrip(t *testing.T) {
	t.Parallel()

	s := testSigner(time.Hour)
	u := testUser(false)

	tok, err := s.Sign(u)
	if err != nil {
		t.Fatalf("Sign error: %v", err)
	}

	claims, err := s.Parse(tok)
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if claims.UserID != u.ID || claims.Email != u.Email || claims.Username != u.Username {
		t.Fatalf("claims mismatch: got %+v", claims)
	}
	if claims.IsAdmin {
		t.Fatal("IsAdmin should be false")
	}
	if claims.ID == "" {
		t.Fatal("expected a jti")
	}
	if claims.ExpiresAt == nil || claims.IssuedAt == nil {
		t.Fatal("expected iat and exp to be set")
	}
}

func TestSignParse_AdminClaim(t *testing.T) {
	t.Parallel()

	s := testSigner(time.Hour)
	tok, err := s.Sign(testUser(true))
	if err != nil {
		t.Fatalf("Sign error: %v", err)
	}
	claims, err := s.Parse(tok)
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if !claims.IsAdmin {
		t.Fatal("IsAdmin should survive the round trip")
	}
}

func TestParse_WrongSecret(t *testing.T) {
	t.Parallel()

	tok, err := testSigner(time.Hour).Sign(testUser(false))
	if err != nil {
		t.Fatalf("Sign error: %v", err)
	}

	other := &Signer{Secret: []byte("other-secret"), Issuer: "test", TTL: time.Hour}
	if _, err := other.Parse(tok); !errors.Is(err, jwt.ErrTokenSignatureInvalid) {
		t.Fatalf("expected signature error, got %v", err)
	}
}

func TestParse_Expired(t *testing.T) {
	t.Parallel()

	s := testSigner(-time.Minute)
	tok, err := s.Sign(testUser(false))
	if err != nil {
		t.Fatalf("Sign error: %v", err)
	}
	if _, err := s.Parse(tok); !errors.Is(err, jwt.ErrTokenExpired) {
		t.Fatalf("expected expiry error, got %v", err)
	}
}

func TestParse_Malformed(t *testing.T) {
	t.Parallel()

	s := testSigner(time.Hour)
	for _, tok := range []string{"", "not-a-token", "a.b.c"} {
		if _, err := s.Parse(tok); err == nil {
			t.Fatalf("expected error for %q", tok)
		}
	}
}

func TestParse_RejectsUnsignedAlg(t *testing.T) {
	t.Parallel()

	// alg=none token with otherwise valid-looking claims
	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, Claims{UserID: "user-1"})
	raw, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatalf("sign none: %v", err)
	}
	if _, err := testSigner(time.Hour).Parse(raw); err == nil {
		t.Fatal("expected alg=none to be rejected")
	}
}
