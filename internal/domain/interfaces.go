package domain

import "context"

// QuoteStore persists computed quotes.
type QuoteStore interface {
	// Save stores a quote under its ID.
	Save(ctx context.Context, quote *Quote) error

	// Get retrieves a quote by ID. It returns ErrQuoteNotFound when absent.
	Get(ctx context.Context, id string) (*Quote, error)
}

// EventPublisher publishes events for observability.
type EventPublisher interface {
	// Publish publishes an event with the given type and data.
	Publish(ctx context.Context, eventType string, data map[string]interface{})
}
