package lock

import (
	"context"
	"sync"
)

type localEntry struct {
	mu   sync.Mutex
	refs int
}

// localLocker is a per-key mutex for single-instance deployments.
type localLocker struct {
	mu      sync.Mutex
	entries map[string]*localEntry
}

func NewLocalLocker() Locker {
	return &localLocker{entries: map[string]*localEntry{}}
}

func (l *localLocker) WithSlotLock(ctx context.Context, key string, fn func(ctx context.Context) error) error {
	e := l.acquire(key)
	defer l.release(key, e)

	if err := ctx.Err(); err != nil {
		return err
	}
	return fn(ctx)
}

func (l *localLocker) acquire(key string) *localEntry {
	l.mu.Lock()
	e, ok := l.entries[key]
	if !ok {
		e = &localEntry{}
		l.entries[key] = e
	}
	e.refs++
	l.mu.Unlock()

	e.mu.Lock()
	return e
}

func (l *localLocker) release(key string, e *localEntry) {
	e.mu.Unlock()

	l.mu.Lock()
	e.refs--
	if e.refs == 0 {
		delete(l.entries, key)
	}
	l.mu.Unlock()
}
