package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/davidbz/sticker/internal/domain"
	"github.com/davidbz/sticker/internal/observability"
)

const (
	dataField      = "data"
	createdAtField = "created_at"
)

// QuoteStore implements domain.QuoteStore on Redis hashes.
type QuoteStore struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

// NewQuoteStore creates a new Redis quote store. A zero ttl keeps quotes forever.
func NewQuoteStore(client *redis.Client, prefix string, ttl time.Duration) *QuoteStore {
	return &QuoteStore{
		client: client,
		prefix: prefix,
		ttl:    ttl,
	}
}

// Save stores the quote as JSON under prefix+ID.
func (s *QuoteStore) Save(ctx context.Context, quote *domain.Quote) error {
	if quote == nil {
		return errors.New("quote cannot be nil")
	}

	if quote.ID == "" {
		return errors.New("quote ID cannot be empty")
	}

	logger := observability.FromContext(ctx)

	data, err := json.Marshal(quote)
	if err != nil {
		return fmt.Errorf("failed to marshal quote: %w", err)
	}

	key := s.key(quote.ID)

	pipe := s.client.TxPipeline()

	pipe.HSet(ctx, key,
		dataField, string(data),
		createdAtField, quote.CreatedAt.Unix(),
	)

	if s.ttl > 0 {
		pipe.Expire(ctx, key, s.ttl)
	}

	if _, execErr := pipe.Exec(ctx); execErr != nil {
		logger.Error("quote save failed",
			observability.String("key", key),
			observability.Error(execErr))
		return fmt.Errorf("failed to save quote: %w", execErr)
	}

	logger.Debug("quote saved",
		observability.String("key", key),
		observability.Int("data_size", len(data)),
		observability.Duration("ttl", s.ttl))
	return nil
}

// Get loads a quote by ID.
func (s *QuoteStore) Get(ctx context.Context, id string) (*domain.Quote, error) {
	key := s.key(id)

	data, err := s.client.HGet(ctx, key, dataField).Result()
	if errors.Is(err, redis.Nil) {
		return nil, fmt.Errorf("%w: %s", domain.ErrQuoteNotFound, id)
	}
	if err != nil {
		observability.FromContext(ctx).Error("quote load failed",
			observability.String("key", key),
			observability.Error(err))
		return nil, fmt.Errorf("failed to load quote: %w", err)
	}

	var quote domain.Quote
	if unmarshalErr := json.Unmarshal([]byte(data), &quote); unmarshalErr != nil {
		return nil, fmt.Errorf("failed to unmarshal quote: %w", unmarshalErr)
	}

	return &quote, nil
}

// Ping checks connectivity to Redis.
func (s *QuoteStore) Ping(ctx context.Context) error {
	if err := s.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis ping failed: %w", err)
	}
	return nil
}

// Close releases the underlying client connections.
func (s *QuoteStore) Close() error {
	return s.client.Close()
}

func (s *QuoteStore) key(id string) string {
	return s.prefix + id
}
