package denylist

import (
	"context"
	"testing"
	"time"
)

func TestNoop_NeverRevoked(t *testing.T) {
	t.Parallel()
	var d Noop
	ctx := context.Background()

	if err := d.Revoke(ctx, "jti-1", time.Hour); err != nil {
		t.Fatalf("Revoke: %v", err)
	}
	revoked, err := d.Revoked(ctx, "jti-1")
	if err != nil {
		t.Fatalf("Revoked: %v", err)
	}
	if revoked {
		t.Fatal("noop denylist must never report revoked")
	}
}

func TestMemory_RevokeAndExpire(t *testing.T) {
	t.Parallel()
	d := NewMemory()
	ctx := context.Background()

	if err := d.Revoke(ctx, "jti-1", 50*time.Millisecond); err != nil {
		t.Fatalf("Revoke: %v", err)
	}
	revoked, err := d.Revoked(ctx, "jti-1")
	if err != nil || !revoked {
		t.Fatalf("expected revoked, got %v %v", revoked, err)
	}

	revoked, err = d.Revoked(ctx, "other")
	if err != nil || revoked {
		t.Fatalf("unknown jti should not be revoked, got %v %v", revoked, err)
	}

	time.Sleep(80 * time.Millisecond)
	revoked, err = d.Revoked(ctx, "jti-1")
	if err != nil || revoked {
		t.Fatalf("entry should expire with the token, got %v %v", revoked, err)
	}
}

func TestMemory_NonPositiveTTLIgnored(t *testing.T) {
	t.Parallel()
	d := NewMemory()
	ctx := context.Background()

	if err := d.Revoke(ctx, "jti-1", -time.Second); err != nil {
		t.Fatalf("Revoke: %v", err)
	}
	revoked, _ := d.Revoked(ctx, "jti-1")
	if revoked {
		t.Fatal("expired-at-issue token needs no denylist entry")
	}
}
