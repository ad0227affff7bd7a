package store

import (
	"context"
	"sort"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/hanscan/hanscan"
)

// RedisStore keeps the translation mapping in a single Redis hash, for
// sharing a cache between machines or CI runs.
type RedisStore struct {
	client *redis.Client
	key    string
}

// RedisConfig holds configuration for the Redis store.
type RedisConfig struct {
	URL string // Redis connection URL (e.g., "redis://localhost:6379")
	Key string // Hash key holding the mapping (default: "hanscan:map")
}

// NewRedisStore creates a Redis store with the given configuration.
func NewRedisStore(cfg RedisConfig) (*RedisStore, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, err
	}

	client := redis.NewClient(opts)

	// Test connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return NewRedisStoreFromClient(client, cfg.Key), nil
}

// NewRedisStoreFromClient creates a RedisStore from an existing client.
func NewRedisStoreFromClient(client *redis.Client, key string) *RedisStore {
	if key == "" {
		key = "hanscan:map"
	}
	return &RedisStore{client: client, key: key}
}

// Load reads the whole hash. Errors degrade to an empty mapping.
func (s *RedisStore) Load() map[string]string {
	ctx := context.Background()
	m, err := s.client.HGetAll(ctx, s.key).Result()
	if err != nil {
		return map[string]string{}
	}
	return Filter(m)
}

// Save writes the mapping into the hash. Field order is sorted so writes are
// deterministic; existing fields absent from the mapping are left in place
// (last-writer-wins per key).
func (s *RedisStore) Save(mapping map[string]string) error {
	valid := Filter(mapping)
	if len(valid) == 0 {
		return nil
	}

	keys := make([]string, 0, len(valid))
	for k := range valid {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	pairs := make([]string, 0, len(valid)*2)
	for _, k := range keys {
		pairs = append(pairs, k, valid[k])
	}

	ctx := context.Background()
	if err := s.client.HSet(ctx, s.key, pairs).Err(); err != nil {
		return &hanscan.StoreError{Message: "writing mapping hash", Cause: err}
	}
	return nil
}

// Unmapped returns the words not present in the stored mapping.
func (s *RedisStore) Unmapped(words []string) []string {
	return Unmapped(s.Load(), words)
}

// Close closes the Redis connection.
func (s *RedisStore) Close() error {
	return s.client.Close()
}

// Ping tests the Redis connection.
func (s *RedisStore) Ping() error {
	ctx := context.Background()
	return s.client.Ping(ctx).Err()
}

// Verify RedisStore implements MappingStore
var _ MappingStore = (*RedisStore)(nil)
