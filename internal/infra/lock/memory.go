package lock

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

// MemoryLocker é o fallback em processo único (sem REDIS_URL) e o
// locker dos testes. TTL expira lazily na próxima tentativa de Acquire.
type MemoryLocker struct {
	mu    sync.Mutex
	locks map[string]memoryLock
}

type memoryLock struct {
	token     string
	expiresAt time.Time
}

func NewMemoryLocker() *MemoryLocker {
	return &MemoryLocker{locks: make(map[string]memoryLock)}
}

func (l *MemoryLocker) Acquire(_ context.Context, key string, ttl time.Duration) (string, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if held, ok := l.locks[key]; ok && time.Now().Before(held.expiresAt) {
		return "", ErrNotAcquired
	}

	token := uuid.NewString()
	l.locks[key] = memoryLock{
		token:     token,
		expiresAt: time.Now().Add(ttl),
	}
	return token, nil
}

func (l *MemoryLocker) Release(_ context.Context, key string, token string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if held, ok := l.locks[key]; ok && held.token == token {
		delete(l.locks, key)
	}
	return nil
}

var _ Locker = (*MemoryLocker)(nil)
