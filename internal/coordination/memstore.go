package coordination

import (
	"context"
	"strings"
	"sync"
)

// MemStore is an in-memory Store with session semantics, standing in for
// etcd in tests. Disconnect simulates lease expiry by dropping every
// liveness-bound key at once.
type MemStore struct {
	mu   sync.Mutex
	data map[string]string
	live map[string]struct{}
	err  error
}

func NewMemStore() *MemStore {
	return &MemStore{
		data: make(map[string]string),
		live: make(map[string]struct{}),
	}
}

// Put seeds a durable (non-liveness-bound) key, e.g. the datacenter-id path.
func (m *MemStore) Put(key, value string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = value
}

// SetError makes every subsequent operation fail with err; nil restores
// normal behavior. Models a coordination-store outage.
func (m *MemStore) SetError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.err = err
}

// Disconnect drops all liveness-bound keys, as a real store would when this
// process's session expires.
func (m *MemStore) Disconnect() {
	m.mu.Lock()
	defer m.mu.Unlock()
	for key := range m.live {
		delete(m.data, key)
	}
	m.live = make(map[string]struct{})
}

func (m *MemStore) CreateLive(ctx context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	if _, exists := m.data[key]; exists {
		return ErrNodeExists
	}
	m.data[key] = value
	m.live[key] = struct{}{}
	return nil
}

func (m *MemStore) Get(ctx context.Context, key string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return "", m.err
	}
	value, ok := m.data[key]
	if !ok {
		return "", ErrNotFound
	}
	return value, nil
}

func (m *MemStore) ListChildren(ctx context.Context, prefix string) (map[string]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	prefix = strings.TrimSuffix(prefix, "/") + "/"
	children := make(map[string]string)
	for key, value := range m.data {
		if !strings.HasPrefix(key, prefix) {
			continue
		}
		name := strings.TrimPrefix(key, prefix)
		if name == "" || strings.Contains(name, "/") {
			continue
		}
		children[name] = value
	}
	return children, nil
}

func (m *MemStore) Close() error {
	m.Disconnect()
	return nil
}
