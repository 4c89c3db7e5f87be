package interfaces

import "context"

// ISubmissionLock guards a wizard session against a second submission while
// one is in flight. Acquire reports false when the key is already held.
type ISubmissionLock interface {
	Acquire(ctx context.Context, key string) (bool, error)
	Release(ctx context.Context, key string) error
}
