// Package snapshot persists the shared ledger envelopes the reconciliation
// loop compares across sessions. Two logical records exist, one for orders
// and one for reviews; each is read and last-writer-wins overwritten whole.
package snapshot

import (
	"context"
	"sync"

	"github.com/redis/go-redis/v9"
)

const (
	OrdersKey  = "shared:orders"
	ReviewsKey = "shared:reviews"
)

// Store reads and overwrites raw snapshot envelopes. Load reports ok=false
// when the record has never been written.
type Store interface {
	Load(ctx context.Context, key string) (data []byte, ok bool, err error)
	Save(ctx context.Context, key string, data []byte) error
}

// RedisStore keeps snapshots in Redis so separate processes see each other's
// writes. No compare-and-swap: the last writer wins, as the ledgers expect.
type RedisStore struct {
	Client *redis.Client
}

func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{Client: client}
}

func (s *RedisStore) Load(ctx context.Context, key string) ([]byte, bool, error) {
	data, err := s.Client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return data, true, nil
}

func (s *RedisStore) Save(ctx context.Context, key string, data []byte) error {
	return s.Client.Set(ctx, key, data, 0).Err()
}

// MemStore is the in-process store used by tests and when Redis is absent.
type MemStore struct {
	mu      sync.RWMutex
	records map[string][]byte
}

func NewMemStore() *MemStore {
	return &MemStore{records: make(map[string][]byte)}
}

func (s *MemStore) Load(_ context.Context, key string) ([]byte, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	data, ok := s.records[key]
	if !ok {
		return nil, false, nil
	}
	cp := make([]byte, len(data))
	copy(cp, data)
	return cp, true, nil
}

func (s *MemStore) Save(_ context.Context, key string, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := make([]byte, len(data))
	copy(cp, data)
	s.records[key] = cp
	return nil
}
