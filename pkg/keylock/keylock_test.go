package keylock

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocker_Exclusive(t *testing.T) {
	l := New[int64]()
	ctx := context.Background()

	var inside int32
	var maxInside int32
	var wg sync.WaitGroup

	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			unlock, err := l.Lock(ctx, 42)
			if !assert.NoError(t, err) {
				return
			}
			defer unlock()

			n := atomic.AddInt32(&inside, 1)
			for {
				m := atomic.LoadInt32(&maxInside)
				if n <= m || atomic.CompareAndSwapInt32(&maxInside, m, n) {
					break
				}
			}
			time.Sleep(time.Millisecond)
			atomic.AddInt32(&inside, -1)
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), maxInside)
	assert.Equal(t, 0, l.size())
}

func TestLocker_DifferentKeysDoNotBlock(t *testing.T) {
	l := New[int64]()
	ctx := context.Background()

	unlock1, err := l.Lock(ctx, 1)
	require.NoError(t, err)
	defer unlock1()

	ctx2, cancel := context.WithTimeout(ctx, 50*time.Millisecond)
	defer cancel()
	unlock2, err := l.Lock(ctx2, 2)
	require.NoError(t, err)
	unlock2()
}

func TestLocker_ContextTimeout(t *testing.T) {
	l := New[string]()

	unlock, err := l.Lock(context.Background(), "player-1")
	require.NoError(t, err)
	defer unlock()

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	release, err := l.Lock(ctx, "player-1")
	assert.Nil(t, release)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Equal(t, 1, l.size())
}

func TestLocker_ReleaseIsIdempotent(t *testing.T) {
	l := New[int]()

	unlock, err := l.Lock(context.Background(), 7)
	require.NoError(t, err)
	unlock()
	unlock()

	assert.Equal(t, 0, l.size())

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	again, err := l.Lock(ctx, 7)
	require.NoError(t, err)
	again()
}
