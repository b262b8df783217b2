// ABOUTME: Ephemeral Redis mirror of session and state snapshots
// ABOUTME: TTL-bounded and never authoritative; the durable store always wins
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/decoyops/honeyledger/internal/config"
)

// SnapshotTTL is the fixed lifetime of every cached snapshot, reset on write
const SnapshotTTL = time.Hour

// Cache wraps the Redis client behind session/state snapshot operations
type Cache struct {
	rdb *redis.Client
	ttl time.Duration
}

// New connects to Redis per the config
func New(cfg *config.Config) *Cache {
	return NewWithClient(redis.NewClient(&redis.Options{
		Addr: cfg.CacheAddr(),
		DB:   cfg.CacheDB,
	}))
}

// NewWithClient wraps an existing client (for testing)
func NewWithClient(rdb *redis.Client) *Cache {
	return &Cache{rdb: rdb, ttl: SnapshotTTL}
}

func sessionKey(sessionID string) string {
	return "session:" + sessionID
}

func stateKey(sessionID string) string {
	return "state:" + sessionID
}

// CacheSession stores a session snapshot, resetting its TTL
func (c *Cache) CacheSession(ctx context.Context, sessionID string, snapshot any) error {
	return c.set(ctx, sessionKey(sessionID), snapshot)
}

// CachedSession returns the cached session snapshot, or nil when absent
func (c *Cache) CachedSession(ctx context.Context, sessionID string) (map[string]any, error) {
	return c.get(ctx, sessionKey(sessionID))
}

// CacheState stores a conversation-state snapshot, resetting its TTL
func (c *Cache) CacheState(ctx context.Context, sessionID string, snapshot any) error {
	return c.set(ctx, stateKey(sessionID), snapshot)
}

// CachedState returns the cached state snapshot, or nil when absent
func (c *Cache) CachedState(ctx context.Context, sessionID string) (map[string]any, error) {
	return c.get(ctx, stateKey(sessionID))
}

// Invalidate removes both snapshots for a session. Absent keys are a no-op.
func (c *Cache) Invalidate(ctx context.Context, sessionID string) error {
	return c.rdb.Del(ctx, sessionKey(sessionID), stateKey(sessionID)).Err()
}

// ExtendTTL refreshes both snapshot lifetimes without rewriting the values.
// It never creates a key; extending an expired or absent key is a no-op.
func (c *Cache) ExtendTTL(ctx context.Context, sessionID string) error {
	if err := c.rdb.Expire(ctx, sessionKey(sessionID), c.ttl).Err(); err != nil {
		return err
	}
	return c.rdb.Expire(ctx, stateKey(sessionID), c.ttl).Err()
}

// Close releases the Redis client
func (c *Cache) Close() error {
	return c.rdb.Close()
}

func (c *Cache) set(ctx context.Context, key string, snapshot any) error {
	b, err := json.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("failed to encode snapshot: %w", err)
	}
	return c.rdb.Set(ctx, key, b, c.ttl).Err()
}

func (c *Cache) get(ctx context.Context, key string) (map[string]any, error) {
	val, err := c.rdb.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var snapshot map[string]any
	if err := json.Unmarshal(val, &snapshot); err != nil {
		return nil, fmt.Errorf("failed to decode snapshot: %w", err)
	}
	return snapshot, nil
}
