package kvbackend

import (
	"context"
	"sync"

	"github.com/weft/weft/storage"
)

// Memory stores key-value pairs in memory, bucketed the same way the Bolt
// backend buckets them, so tests exercise the same key layout.
//
// Because data is not persisted anywhere, the Memory store should only be
// used in tests.
type Memory struct {
	mu      sync.RWMutex
	buckets map[string]map[string][]byte
}

// Put creates or updates a value.
func (m *Memory) Put(ctx context.Context, key string, value []byte) error {
	bucket, k, err := splitKey(key)
	if err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.buckets == nil {
		m.buckets = make(map[string]map[string][]byte)
	}
	b, ok := m.buckets[bucket]
	if !ok {
		b = make(map[string][]byte)
		m.buckets[bucket] = b
	}
	b[k] = value
	return nil
}

// Get returns a single value.
func (m *Memory) Get(ctx context.Context, key string) ([]byte, error) {
	bucket, k, err := splitKey(key)
	if err != nil {
		return nil, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.buckets[bucket][k]
	if !ok {
		return nil, storage.ErrNotFound
	}
	return v, nil
}

// Delete deletes a key.
func (m *Memory) Delete(ctx context.Context, key string) error {
	bucket, k, err := splitKey(key)
	if err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.buckets[bucket][k]; !ok {
		return storage.ErrNotFound
	}
	delete(m.buckets[bucket], k)
	return nil
}

// Scan returns all values in the bucket named by prefix.
func (m *Memory) Scan(ctx context.Context, prefix string) (map[string][]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make(map[string][]byte)
	for k, v := range m.buckets[prefix] {
		val := make([]byte, len(v))
		copy(val, v)
		out[prefix+"/"+k] = val
	}
	return out, nil
}
