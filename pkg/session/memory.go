package session

import (
	"context"
	"sync"
	"time"
)

// MemoryBackend implements Backend using in-memory storage. Suitable for
// tests and single-process deployments.
type MemoryBackend struct {
	mu       sync.RWMutex
	sessions map[string]*memorySession
	ttl      time.Duration
	ticker   *time.Ticker
	done     chan struct{}
}

type memorySession struct {
	values    map[string]string
	expiresAt time.Time
}

// NewMemoryBackend creates an in-memory backend. Sessions idle longer than
// ttl are dropped by a background sweep; ttl <= 0 disables expiry.
func NewMemoryBackend(ttl time.Duration) *MemoryBackend {
	b := &MemoryBackend{
		sessions: make(map[string]*memorySession),
		ttl:      ttl,
		done:     make(chan struct{}),
	}

	if ttl > 0 {
		b.ticker = time.NewTicker(ttl)
		go b.sweepLoop()
	}

	return b
}

func (b *MemoryBackend) Get(ctx context.Context, sid, key string) (string, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	sess, ok := b.sessions[sid]
	if !ok || (b.ttl > 0 && time.Now().After(sess.expiresAt)) {
		return "", ErrKeyNotFound
	}

	value, ok := sess.values[key]
	if !ok {
		return "", ErrKeyNotFound
	}
	return value, nil
}

func (b *MemoryBackend) Set(ctx context.Context, sid, key, value string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	sess, ok := b.sessions[sid]
	if !ok {
		sess = &memorySession{values: make(map[string]string)}
		b.sessions[sid] = sess
	}

	sess.values[key] = value
	sess.expiresAt = time.Now().Add(b.ttl)
	return nil
}

func (b *MemoryBackend) Delete(ctx context.Context, sid, key string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if sess, ok := b.sessions[sid]; ok {
		delete(sess.values, key)
	}
	return nil
}

func (b *MemoryBackend) Destroy(ctx context.Context, sid string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	delete(b.sessions, sid)
	return nil
}

// Close stops the background sweep goroutine.
func (b *MemoryBackend) Close() error {
	if b.ticker != nil {
		b.ticker.Stop()
		close(b.done)
	}
	return nil
}

func (b *MemoryBackend) sweepLoop() {
	for {
		select {
		case <-b.ticker.C:
			b.sweep()
		case <-b.done:
			return
		}
	}
}

func (b *MemoryBackend) sweep() {
	now := time.Now()

	b.mu.Lock()
	defer b.mu.Unlock()

	for sid, sess := range b.sessions {
		if now.After(sess.expiresAt) {
			delete(b.sessions, sid)
		}
	}
}
