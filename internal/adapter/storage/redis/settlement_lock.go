package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"
)

// SettlementLock implements ports.SettlementLock using Redis SET NX. The
// lock only sheds duplicate settlement work early; the event status CAS in
// the database is the correctness boundary, so a lost lock is harmless.
type SettlementLock struct {
	client *goredis.Client
	prefix string
	ttl    time.Duration
}

// NewSettlementLock creates a Redis-backed settlement lock. The TTL keeps a
// crashed holder from wedging an event forever.
func NewSettlementLock(client *goredis.Client, ttl time.Duration) *SettlementLock {
	if ttl <= 0 {
		ttl = time.Minute
	}
	return &SettlementLock{
		client: client,
		prefix: "settlement:",
		ttl:    ttl,
	}
}

// TryAcquire attempts to take the lock for an event. Returns false when
// another settlement already holds it.
func (l *SettlementLock) TryAcquire(ctx context.Context, eventID uuid.UUID) (bool, error) {
	ok, err := l.client.SetNX(ctx, l.prefix+eventID.String(), 1, l.ttl).Result()
	if err != nil {
		return false, fmt.Errorf("redis settlement lock: %w", err)
	}
	return ok, nil
}

// Release drops the lock for an event.
func (l *SettlementLock) Release(ctx context.Context, eventID uuid.UUID) error {
	if err := l.client.Del(ctx, l.prefix+eventID.String()).Err(); err != nil {
		return fmt.Errorf("redis settlement unlock: %w", err)
	}
	return nil
}
