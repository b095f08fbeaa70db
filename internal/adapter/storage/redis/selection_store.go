package redis

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"
)

// DefaultSelectionTTL bounds how long a pending slot selection survives
// before the user must pick again.
const DefaultSelectionTTL = 5 * time.Minute

// SelectionStore implements ports.SelectionStore on Redis. Each pending
// selection lives under its own key with an expiry, replacing the unscoped
// in-memory map this flow historically used.
type SelectionStore struct {
	client *goredis.Client
	prefix string
	ttl    time.Duration
}

// NewSelectionStore creates a Redis-backed selection session store. A zero
// ttl falls back to DefaultSelectionTTL.
func NewSelectionStore(client *goredis.Client, ttl time.Duration) *SelectionStore {
	if ttl <= 0 {
		ttl = DefaultSelectionTTL
	}
	return &SelectionStore{
		client: client,
		prefix: "selection:",
		ttl:    ttl,
	}
}

func (s *SelectionStore) key(eventID uuid.UUID, userID string) string {
	return s.prefix + eventID.String() + ":" + userID
}

// Put stores or replaces the user's pending slot choice.
func (s *SelectionStore) Put(ctx context.Context, eventID uuid.UUID, userID string, slot int) error {
	if err := s.client.Set(ctx, s.key(eventID, userID), slot, s.ttl).Err(); err != nil {
		return fmt.Errorf("redis selection put: %w", err)
	}
	return nil
}

// Get returns the pending slot choice and whether one exists.
func (s *SelectionStore) Get(ctx context.Context, eventID uuid.UUID, userID string) (int, bool, error) {
	val, err := s.client.Get(ctx, s.key(eventID, userID)).Result()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return 0, false, nil
		}
		return 0, false, fmt.Errorf("redis selection get: %w", err)
	}
	slot, err := strconv.Atoi(val)
	if err != nil {
		return 0, false, fmt.Errorf("redis selection decode: %w", err)
	}
	return slot, true, nil
}

// Delete clears the user's pending selection.
func (s *SelectionStore) Delete(ctx context.Context, eventID uuid.UUID, userID string) error {
	if err := s.client.Del(ctx, s.key(eventID, userID)).Err(); err != nil {
		return fmt.Errorf("redis selection delete: %w", err)
	}
	return nil
}
