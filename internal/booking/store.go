package booking

import (
	"context"
	"encoding/json"
	"fmt"

	"bitbucket.org/crgw/flight-hub/internal/schema"
	"github.com/redis/go-redis/v9"
)

// DocumentStore persists the whole booking document at a single remote key.
//
// Upserts are plain read-modify-write over that one object with no
// compare-and-swap, so two concurrent writers can silently drop each other's
// update. Known limitation.
type DocumentStore interface {
	Fetch(ctx context.Context) (schema.BookingDocument, error)
	Store(ctx context.Context, document schema.BookingDocument) error
}

type RedisStore struct {
	redis *redis.Client
	key   string
}

func NewRedisStore(client *redis.Client, key string) *RedisStore {
	return &RedisStore{
		redis: client,
		key:   key,
	}
}

// Fetch returns the current document. An absent or unreadable document comes
// back empty rather than as an error so the first booking can bootstrap it.
func (s *RedisStore) Fetch(ctx context.Context) (schema.BookingDocument, error) {
	payload, err := s.redis.Get(ctx, s.key).Bytes()
	if err != nil {
		return schema.BookingDocument{}, nil
	}

	var document schema.BookingDocument
	if err := json.Unmarshal(payload, &document); err != nil {
		return schema.BookingDocument{}, nil
	}

	return document, nil
}

// Store writes the entire document back verbatim. The document is kept as
// plain JSON; other consumers read the blob directly.
func (s *RedisStore) Store(ctx context.Context, document schema.BookingDocument) error {
	payload, err := json.Marshal(document)
	if err != nil {
		return fmt.Errorf("marshal booking document: %w", err)
	}

	if err := s.redis.Set(ctx, s.key, payload, 0).Err(); err != nil {
		return fmt.Errorf("store booking document: %w", err)
	}

	return nil
}
