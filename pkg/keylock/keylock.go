// Package keylock provides per-key mutual exclusion with context-bounded waits.
package keylock

import (
	"context"
	"sync"
)

// Locker hands out one exclusive lock per key. Keys with no holder and no
// waiter are forgotten, so the map stays proportional to contention.
type Locker[K comparable] struct {
	mu    sync.Mutex
	slots map[K]*slot
}

type slot struct {
	sem  chan struct{}
	refs int
}

// New creates an empty Locker.
func New[K comparable]() *Locker[K] {
	return &Locker[K]{slots: make(map[K]*slot)}
}

// Lock blocks until the lock for key is held or ctx is done.
// The returned release function is safe to call more than once.
func (l *Locker[K]) Lock(ctx context.Context, key K) (func(), error) {
	s := l.acquireSlot(key)

	select {
	case s.sem <- struct{}{}:
	case <-ctx.Done():
		l.releaseSlot(key, s)
		return nil, ctx.Err()
	}

	var once sync.Once
	return func() {
		once.Do(func() {
			<-s.sem
			l.releaseSlot(key, s)
		})
	}, nil
}

// size reports how many keys are currently held or awaited.
func (l *Locker[K]) size() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.slots)
}

func (l *Locker[K]) acquireSlot(key K) *slot {
	l.mu.Lock()
	defer l.mu.Unlock()

	s, ok := l.slots[key]
	if !ok {
		s = &slot{sem: make(chan struct{}, 1)}
		l.slots[key] = s
	}
	s.refs++
	return s
}

func (l *Locker[K]) releaseSlot(key K, s *slot) {
	l.mu.Lock()
	defer l.mu.Unlock()

	s.refs--
	if s.refs == 0 {
		delete(l.slots, key)
	}
}
