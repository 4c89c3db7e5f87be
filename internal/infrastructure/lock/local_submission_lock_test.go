package lock

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalSubmissionLock(t *testing.T) {
	ctx := context.Background()

	t.Run("second acquire fails until release", func(t *testing.T) {
		l := NewLocalSubmissionLock(time.Minute)

		ok, err := l.Acquire(ctx, "wizard:submit:s-1")
		require.NoError(t, err)
		assert.True(t, ok)

		ok, _ = l.Acquire(ctx, "wizard:submit:s-1")
		assert.False(t, ok)

		ok, _ = l.Acquire(ctx, "wizard:submit:s-2")
		assert.True(t, ok)

		require.NoError(t, l.Release(ctx, "wizard:submit:s-1"))
		ok, _ = l.Acquire(ctx, "wizard:submit:s-1")
		assert.True(t, ok)
	})

	t.Run("expired entry can be taken", func(t *testing.T) {
		now := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)
		l := NewLocalSubmissionLock(time.Minute)
		l.now = func() time.Time { return now }

		ok, _ := l.Acquire(ctx, "k")
		require.True(t, ok)

		now = now.Add(2 * time.Minute)
		ok, _ = l.Acquire(ctx, "k")
		assert.True(t, ok)
	})

	t.Run("only one concurrent winner", func(t *testing.T) {
		l := NewLocalSubmissionLock(time.Minute)
		var wins int32
		var wg sync.WaitGroup
		for i := 0; i < 20; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				if ok, _ := l.Acquire(ctx, "k"); ok {
					atomic.AddInt32(&wins, 1)
				}
			}()
		}
		wg.Wait()
		assert.Equal(t, int32(1), wins)
	})

	t.Run("release of unknown key is a no-op", func(t *testing.T) {
		l := NewLocalSubmissionLock(time.Minute)
		assert.NoError(t, l.Release(ctx, "nope"))
	})
}
