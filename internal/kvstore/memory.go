package kvstore

import (
	"context"
	"strings"
	"sync"
)

const memoryShardCount = 32

type memoryShard struct {
	sync.RWMutex
	items map[string][]byte
}

// MemoryStore is a sharded in-process store. It satisfies the Store
// contract but does not survive a restart; it is the default for tests.
type MemoryStore struct {
	shards []*memoryShard
}

func NewMemoryStore() *MemoryStore {
	ms := &MemoryStore{shards: make([]*memoryShard, memoryShardCount)}
	for i := range ms.shards {
		ms.shards[i] = &memoryShard{items: make(map[string][]byte)}
	}
	return ms
}

func (ms *MemoryStore) shard(key string) *memoryShard {
	h := fnv32(key)
	return ms.shards[int(h)%len(ms.shards)]
}

func fnv32(key string) uint32 {
	const offset = 2166136261
	const prime = 16777619
	h := uint32(offset)
	for i := 0; i < len(key); i++ {
		h ^= uint32(key[i])
		h *= prime
	}
	return h
}

func (ms *MemoryStore) Get(_ context.Context, key string) ([]byte, error) {
	s := ms.shard(key)
	s.RLock()
	value, ok := s.items[key]
	s.RUnlock()
	if !ok {
		return nil, ErrKeyNotFound
	}
	// copy so callers cannot mutate stored bytes
	out := make([]byte, len(value))
	copy(out, value)
	return out, nil
}

func (ms *MemoryStore) Set(_ context.Context, key string, value []byte) error {
	stored := make([]byte, len(value))
	copy(stored, value)
	s := ms.shard(key)
	s.Lock()
	s.items[key] = stored
	s.Unlock()
	return nil
}

func (ms *MemoryStore) Delete(_ context.Context, key string) error {
	s := ms.shard(key)
	s.Lock()
	delete(s.items, key)
	s.Unlock()
	return nil
}

func (ms *MemoryStore) Keys(_ context.Context, prefix string) ([]string, error) {
	var keys []string
	for _, s := range ms.shards {
		s.RLock()
		for k := range s.items {
			if strings.HasPrefix(k, prefix) {
				keys = append(keys, k)
			}
		}
		s.RUnlock()
	}
	return keys, nil
}

func (ms *MemoryStore) Close() error {
	return nil
}
