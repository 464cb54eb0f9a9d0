// Package cache provides a redis-backed read-through cache in front of the
// term store. The database stays the source of truth; admin mutations
// invalidate the cached entry for the affected key.
package cache

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/gofiber/storage/redis/v3"

	"whatis/internal/db"
	"whatis/internal/models"
	"whatis/internal/validation"
)

// DefaultTTL bounds staleness if an invalidation is ever missed.
const DefaultTTL = 10 * time.Minute

const keyPrefix = "term:"

// Store wraps the database term store with a redis cache. It satisfies
// resolver.TermStore: GetTerm is served through the cache, ListTerms always
// hits the database (the full listing feeds fuzzy matching and must not go
// stale as a unit).
type Store struct {
	db      *db.DB
	storage *redis.Storage
	ttl     time.Duration
}

// New connects to redis and returns a cached store over the database.
func New(database *db.DB, redisURL string) *Store {
	storage := redis.New(redis.Config{
		URL:   redisURL,
		Reset: false,
	})
	return &Store{db: database, storage: storage, ttl: DefaultTTL}
}

// GetTerm returns the cached term for the key, falling back to the database
// and caching the result. Cache failures degrade to plain database reads;
// they never fail a lookup.
func (s *Store) GetTerm(ctx context.Context, rawKey string) (*models.Term, error) {
	key := validation.NormalizeTerm(rawKey)

	if data, err := s.storage.Get(keyPrefix + key); err == nil && len(data) > 0 {
		var term models.Term
		if err := json.Unmarshal(data, &term); err == nil {
			return &term, nil
		}
		// Corrupt entry; drop it and fall through to the database.
		s.storage.Delete(keyPrefix + key)
	}

	term, err := s.db.GetTerm(ctx, key)
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(term); err == nil {
		if err := s.storage.Set(keyPrefix+key, data, s.ttl); err != nil {
			slog.Warn("failed to cache term", "key", key, "error", err)
		}
	}
	return term, nil
}

// ListTerms delegates to the database.
func (s *Store) ListTerms(ctx context.Context) ([]models.Term, error) {
	return s.db.ListTerms(ctx)
}

// Invalidate drops the cached entry for a key. Called after admin
// mutations so readers never see a deleted or outdated definition beyond
// the TTL.
func (s *Store) Invalidate(rawKey string) {
	key := validation.NormalizeTerm(rawKey)
	if err := s.storage.Delete(keyPrefix + key); err != nil {
		slog.Warn("failed to invalidate cached term", "key", key, "error", err)
	}
}

// Close releases the redis connection.
func (s *Store) Close() error {
	return s.storage.Close()
}
