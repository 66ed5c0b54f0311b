package idempotency

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"
)

const HeaderKey = "Idempotency-Key"

type Store struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewStore(rdb *redis.Client, ttl time.Duration) *Store {
	return &Store{rdb: rdb, ttl: ttl}
}

func (s *Store) Key(method, path, key string) string {
	return fmt.Sprintf("idem:%s:%s:%s", method, path, key)
}

// Seen marks the key and reports whether it had been seen before.
func (s *Store) Seen(ctx context.Context, key string) (bool, error) {
	ok, err := s.rdb.SetNX(ctx, key, "1", s.ttl).Result()
	if err != nil {
		return false, err
	}

	return !ok, nil
}

// Middleware rejects a repeated Idempotency-Key with 409. Requests
// without the header pass through untouched: deduplication is strictly
// opt-in at this outer surface, the placement core itself never
// deduplicates.
func Middleware(store *Store) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := r.Header.Get(HeaderKey)
			if key == "" || store == nil {
				next.ServeHTTP(w, r)
				return
			}

			seen, err := store.Seen(r.Context(), store.Key(r.Method, r.URL.Path, key))
			if err != nil {
				http.Error(w, "idempotency check failed", http.StatusServiceUnavailable)
				return
			}
			if seen {
				http.Error(w, "duplicate request", http.StatusConflict)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
