package storage

import "sync"

// MemoryTokenStore keeps the token in memory only. Used by tests and by
// ephemeral shells that should not leave a session on disk.
type MemoryTokenStore struct {
	mu    sync.Mutex
	token string
}

func NewMemoryTokenStore() *MemoryTokenStore {
	return &MemoryTokenStore{}
}

func (m *MemoryTokenStore) Get() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.token
}

func (m *MemoryTokenStore) Set(token string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.token = token
}

func (m *MemoryTokenStore) Remove() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.token = ""
}

var _ ITokenStore = (*MemoryTokenStore)(nil)
