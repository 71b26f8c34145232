package middleware

import (
	"context"
	"fmt"
	"log"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// Store counts hits per key inside a fixed window and reports whether the
// caller is still within its limit.
type Store interface {
	Allow(ctx context.Context, key string) (bool, error)
}

type visitor struct {
	count       int
	windowStart time.Time
}

// MemoryStore keeps counters in process. Idle visitors are swept every window.
type MemoryStore struct {
	mu       sync.Mutex
	visitors map[string]*visitor
	limit    int
	window   time.Duration
	now      func() time.Time
	stopChan chan struct{}
	stopOnce sync.Once
}

func NewMemoryStore(limit int, window time.Duration) *MemoryStore {
	s := &MemoryStore{
		visitors: make(map[string]*visitor),
		limit:    limit,
		window:   window,
		now:      time.Now,
		stopChan: make(chan struct{}),
	}

	// Cleanup goroutine
	go func() {
		ticker := time.NewTicker(window)
		defer ticker.Stop()
		for {
			select {
			case <-s.stopChan:
				return
			case <-ticker.C:
				s.sweep()
			}
		}
	}()

	return s
}

func (s *MemoryStore) Allow(ctx context.Context, key string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	v, exists := s.visitors[key]
	if !exists || now.Sub(v.windowStart) >= s.window {
		s.visitors[key] = &visitor{count: 1, windowStart: now}
		return s.limit > 0, nil
	}

	v.count++
	return v.count <= s.limit, nil
}

func (s *MemoryStore) sweep() {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	for key, v := range s.visitors {
		if now.Sub(v.windowStart) >= s.window {
			delete(s.visitors, key)
		}
	}
}

func (s *MemoryStore) Stop() {
	s.stopOnce.Do(func() { close(s.stopChan) })
}

// RedisStore shares counters between instances using INCR + EXPIRE.
type RedisStore struct {
	client *redis.Client
	limit  int
	window time.Duration
	prefix string
}

func NewRedisStore(client *redis.Client, limit int, window time.Duration) *RedisStore {
	return &RedisStore{
		client: client,
		limit:  limit,
		window: window,
		prefix: "ratelimit:",
	}
}

func (s *RedisStore) Allow(ctx context.Context, key string) (bool, error) {
	redisKey := s.prefix + key

	// EXPIRE NX only arms a TTL when the key has none, so a counter left
	// without one by an earlier failure is repaired on the next hit.
	var incr *redis.IntCmd
	_, err := s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		incr = pipe.Incr(ctx, redisKey)
		pipe.ExpireNX(ctx, redisKey, s.window)
		return nil
	})
	if err != nil {
		return false, fmt.Errorf("failed to update rate counter: %w", err)
	}

	return incr.Val() <= int64(s.limit), nil
}

type RateLimiter struct {
	store Store
}

func NewRateLimiter(store Store) *RateLimiter {
	return &RateLimiter{store: store}
}

func (rl *RateLimiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		allowed, err := rl.store.Allow(r.Context(), ClientKey(r))
		if err != nil {
			// Fail open on store errors.
			log.Printf("rate limiter: %v", err)
			next.ServeHTTP(w, r)
			return
		}

		if !allowed {
			writeJSON(w, TooManyRequests())
			return
		}

		next.ServeHTTP(w, r)
	})
}

// ClientKey identifies the caller by IP, dropping the source port.
func ClientKey(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
