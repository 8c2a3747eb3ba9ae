// Package cache adapts the Redis key-value cache to the backend adapter
// contract. Per-user entries live under "user:{id}:{field}" keys.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/redis/go-redis/v9"

	"custodian/internal/lifecycle/ports"
	id "custodian/pkg/domain"
)

const keyPrefix = "user:"

// scanPageSize bounds one SCAN round trip.
const scanPageSize = 200

type Store struct {
	client *redis.Client
}

// New constructs a Redis-backed cache adapter.
func New(client *redis.Client) *Store {
	return &Store{client: client}
}

func (s *Store) Name() string {
	return ports.ComponentCache
}

func userPattern(userID id.UserID) string {
	return keyPrefix + userID.String() + ":*"
}

// Export returns the user's cache entries as a JSON object keyed by cache
// key, or (nil, nil) when nothing is cached for them.
func (s *Store) Export(ctx context.Context, userID id.UserID) (json.RawMessage, error) {
	keys, err := s.scan(ctx, userPattern(userID))
	if err != nil {
		return nil, err
	}
	if len(keys) == 0 {
		return nil, nil
	}

	values, err := s.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, fmt.Errorf("mget cache entries: %w", err)
	}

	entries := make(map[string]string, len(keys))
	for i, key := range keys {
		if values[i] == nil {
			// Expired between scan and read; absence is not a failure.
			continue
		}
		if v, ok := values[i].(string); ok {
			entries[key] = v
		}
	}
	if len(entries) == 0 {
		return nil, nil
	}

	payload, err := json.Marshal(entries)
	if err != nil {
		return nil, fmt.Errorf("marshal cache entries: %w", err)
	}
	return payload, nil
}

// Delete removes every cache entry for the user. Idempotent: deleting
// nothing is success.
func (s *Store) Delete(ctx context.Context, userID id.UserID) error {
	keys, err := s.scan(ctx, userPattern(userID))
	if err != nil {
		return err
	}
	if len(keys) == 0 {
		return nil
	}
	if err := s.client.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("delete cache entries: %w", err)
	}
	return nil
}

// DeleteBatch removes N users' entries with one scan over the user keyspace
// and one multi-key delete, instead of N scans.
func (s *Store) DeleteBatch(ctx context.Context, userIDs []id.UserID) error {
	if len(userIDs) == 0 {
		return nil
	}
	wanted := make(map[string]bool, len(userIDs))
	for _, u := range userIDs {
		wanted[u.String()] = true
	}

	all, err := s.scan(ctx, keyPrefix+"*")
	if err != nil {
		return err
	}

	var doomed []string
	for _, key := range all {
		rest := strings.TrimPrefix(key, keyPrefix)
		userPart, _, ok := strings.Cut(rest, ":")
		if ok && wanted[userPart] {
			doomed = append(doomed, key)
		}
	}
	if len(doomed) == 0 {
		return nil
	}
	if err := s.client.Del(ctx, doomed...).Err(); err != nil {
		return fmt.Errorf("batch delete cache entries: %w", err)
	}
	return nil
}

func (s *Store) scan(ctx context.Context, pattern string) ([]string, error) {
	var keys []string
	var cursor uint64
	for {
		page, next, err := s.client.Scan(ctx, cursor, pattern, scanPageSize).Result()
		if err != nil {
			return nil, fmt.Errorf("scan cache keys: %w", err)
		}
		keys = append(keys, page...)
		cursor = next
		if cursor == 0 {
			return keys, nil
		}
	}
}
