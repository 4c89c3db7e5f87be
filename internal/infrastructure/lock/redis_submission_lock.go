package lock

import (
	"context"
	"log"
	"sync"
	"time"

	"vitrine/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// releaseScript deletes the key only when it still holds our token, so an
// expired lock taken over by another replica is left alone.
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// RedisSubmissionLock keeps a single submission in flight per wizard session
// across every replica of the service.
type RedisSubmissionLock struct {
	client *redis.Client
	ttl    time.Duration

	mu     sync.Mutex
	tokens map[string]string
}

var _ interfaces.ISubmissionLock = (*RedisSubmissionLock)(nil)

func NewRedisSubmissionLock(addr, password string, ttl time.Duration) *RedisSubmissionLock {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
	})
	return &RedisSubmissionLock{client: client, ttl: ttl, tokens: make(map[string]string)}
}

func (l *RedisSubmissionLock) Acquire(ctx context.Context, key string) (bool, error) {
	token := uuid.NewString()
	ok, err := l.client.SetNX(ctx, key, token, l.ttl).Result()
	if err != nil {
		log.Printf("[lock][redis] setnx failed key=%s err=%v", key, err)
		return false, err
	}
	if !ok {
		return false, nil
	}

	l.mu.Lock()
	l.tokens[key] = token
	l.mu.Unlock()
	return true, nil
}

func (l *RedisSubmissionLock) Release(ctx context.Context, key string) error {
	l.mu.Lock()
	token, ok := l.tokens[key]
	delete(l.tokens, key)
	l.mu.Unlock()
	if !ok {
		return nil
	}

	if err := releaseScript.Run(ctx, l.client, []string{key}, token).Err(); err != nil && err != redis.Nil {
		log.Printf("[lock][redis] release failed key=%s err=%v", key, err)
		return err
	}
	return nil
}

// Ping checks the connection at startup.
func (l *RedisSubmissionLock) Ping(ctx context.Context) error {
	return l.client.Ping(ctx).Err()
}

func (l *RedisSubmissionLock) Close() error {
	return l.client.Close()
}
