package auth

import (
	"context"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// TokenBlacklist records tokens that must be rejected before their natural
// expiry. Entries carry a TTL equal to the token's remaining lifetime and
// self-expire; there is no sweeper.
type TokenBlacklist interface {
	Exists(ctx context.Context, token string) (bool, error)
	Revoke(ctx context.Context, token string, ttl time.Duration) error
}

// RedisBlacklist stores revoked tokens as self-expiring Redis keys. The raw
// token string is the key; the value is irrelevant.
type RedisBlacklist struct {
	client *redis.Client
}

// NewRedisBlacklist wraps a connected client.
func NewRedisBlacklist(client *redis.Client) *RedisBlacklist {
	return &RedisBlacklist{client: client}
}

func (b *RedisBlacklist) Exists(ctx context.Context, token string) (bool, error) {
	n, err := b.client.Exists(ctx, token).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// Revoke is an unconditional write. Revoking the same token again overwrites
// the entry with a TTL recomputed from the same expiry, so repeats converge
// on the correct remaining lifetime.
func (b *RedisBlacklist) Revoke(ctx context.Context, token string, ttl time.Duration) error {
	return b.client.Set(ctx, token, "1", ttl).Err()
}

// MemoryBlacklist is an in-process TokenBlacklist for tests and local runs
// without Redis.
type MemoryBlacklist struct {
	mu      sync.Mutex
	entries map[string]time.Time
}

func NewMemoryBlacklist() *MemoryBlacklist {
	return &MemoryBlacklist{entries: make(map[string]time.Time)}
}

func (b *MemoryBlacklist) Exists(_ context.Context, token string) (bool, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	deadline, ok := b.entries[token]
	if !ok {
		return false, nil
	}
	if time.Now().After(deadline) {
		delete(b.entries, token)
		return false, nil
	}
	return true, nil
}

func (b *MemoryBlacklist) Revoke(_ context.Context, token string, ttl time.Duration) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.entries[token] = time.Now().Add(ttl)
	return nil
}
