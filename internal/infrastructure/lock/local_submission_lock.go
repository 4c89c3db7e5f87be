package lock

import (
	"context"
	"sync"
	"time"

	"vitrine/internal/usecase/interfaces"
)

// LocalSubmissionLock is the single-replica lock used when no redis address
// is configured. Entries expire after ttl like their redis counterpart.
type LocalSubmissionLock struct {
	mu   sync.Mutex
	held map[string]time.Time
	ttl  time.Duration
	now  func() time.Time
}

var _ interfaces.ISubmissionLock = (*LocalSubmissionLock)(nil)

func NewLocalSubmissionLock(ttl time.Duration) *LocalSubmissionLock {
	return &LocalSubmissionLock{
		held: make(map[string]time.Time),
		ttl:  ttl,
		now:  time.Now,
	}
}

func (l *LocalSubmissionLock) Acquire(_ context.Context, key string) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	if expires, ok := l.held[key]; ok && now.Before(expires) {
		return false, nil
	}
	l.held[key] = now.Add(l.ttl)
	return true, nil
}

func (l *LocalSubmissionLock) Release(_ context.Context, key string) error {
	l.mu.Lock()
	delete(l.held, key)
	l.mu.Unlock()
	return nil
}
