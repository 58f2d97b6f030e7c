package repository

import (
	"context"
	"sync"
)

// KeyedLocker is an in-process Locker holding one mutex per webinar.
// Entries are reference counted and dropped once nobody waits on them.
// Waiting for the mutex ignores ctx; a caller whose ctx is done by the time
// it gets the lock returns ctx.Err() without running fn.
type KeyedLocker struct {
	mu    sync.Mutex
	locks map[string]*keyedEntry
}

type keyedEntry struct {
	mu   sync.Mutex
	refs int
}

// NewKeyedLocker constructs a KeyedLocker.
func NewKeyedLocker() *KeyedLocker {
	return &KeyedLocker{locks: make(map[string]*keyedEntry)}
}

// WithWebinarLock runs fn while holding the mutex for webinarID.
func (l *KeyedLocker) WithWebinarLock(ctx context.Context, webinarID string, fn func(ctx context.Context) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	l.mu.Lock()
	e, ok := l.locks[webinarID]
	if !ok {
		e = &keyedEntry{}
		l.locks[webinarID] = e
	}
	e.refs++
	l.mu.Unlock()

	e.mu.Lock()
	defer func() {
		e.mu.Unlock()
		l.mu.Lock()
		e.refs--
		if e.refs == 0 {
			delete(l.locks, webinarID)
		}
		l.mu.Unlock()
	}()

	if err := ctx.Err(); err != nil {
		return err
	}
	return fn(ctx)
}
