package auth

import (
	"context"
	"testing"
	"time"
)

func TestMemoryBlacklistRevokeAndExists(t *testing.T) {
	bl := NewMemoryBlacklist()
	ctx := context.Background()

	exists, err := bl.Exists(ctx, "token-a")
	if err != nil {
		t.Fatalf("Exists: %v", err)
	}
	if exists {
		t.Fatal("token should not be revoked yet")
	}

	if err := bl.Revoke(ctx, "token-a", time.Hour); err != nil {
		t.Fatalf("Revoke: %v", err)
	}
	exists, err = bl.Exists(ctx, "token-a")
	if err != nil {
		t.Fatalf("Exists: %v", err)
	}
	if !exists {
		t.Fatal("token should be revoked")
	}
}

func TestMemoryBlacklistEntriesExpire(t *testing.T) {
	bl := NewMemoryBlacklist()
	ctx := context.Background()

	if err := bl.Revoke(ctx, "token-b", -time.Second); err != nil {
		t.Fatalf("Revoke: %v", err)
	}
	exists, err := bl.Exists(ctx, "token-b")
	if err != nil {
		t.Fatalf("Exists: %v", err)
	}
	if exists {
		t.Fatal("expired entry should not count as revoked")
	}
}

func TestMemoryBlacklistRevokeIsIdempotent(t *testing.T) {
	bl := NewMemoryBlacklist()
	ctx := context.Background()

	if err := bl.Revoke(ctx, "token-c", time.Hour); err != nil {
		t.Fatalf("first Revoke: %v", err)
	}
	if err := bl.Revoke(ctx, "token-c", time.Hour); err != nil {
		t.Fatalf("second Revoke: %v", err)
	}
	exists, err := bl.Exists(ctx, "token-c")
	if err != nil {
		t.Fatalf("Exists: %v", err)
	}
	if !exists {
		t.Fatal("token should remain revoked")
	}
}
