package domain

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/davidbz/sticker/internal/observability"
)

// EventQuoteComputed is published after a quote has been computed and stored.
const EventQuoteComputed = "quote.computed"

// QuoteService validates quote forms, prices them and keeps the results.
type QuoteService struct {
	store  QuoteStore
	events EventPublisher
}

// NewQuoteService creates a new quote service (DI constructor).
func NewQuoteService(store QuoteStore, events EventPublisher) *QuoteService {
	return &QuoteService{
		store:  store,
		events: events,
	}
}

// Quote prices a form and stores the outcome.
func (s *QuoteService) Quote(ctx context.Context, form *QuoteForm) (*Quote, error) {
	if form == nil {
		return nil, errors.New("form cannot be nil")
	}

	req, err := form.ToRequest()
	if err != nil {
		return nil, fmt.Errorf("invalid quote form: %w", err)
	}

	result, steps := Compute(req)
	if !Finite(result, steps) {
		return nil, fmt.Errorf("invalid quote form: %w", ErrPriceOverflow)
	}

	quote := &Quote{
		ID:        uuid.New().String(),
		CreatedAt: time.Now().UTC(),
		Request:   req,
		Result:    result,
		Steps:     steps,
		Display:   NewQuoteDisplay(result, steps),
	}

	ctx = observability.WithQuoteID(ctx, quote.ID)
	logger := observability.FromContext(ctx)
	logger.Info("quote computed",
		observability.Float64("standard_price", result.StandardPrice),
		observability.Float64("final_price", result.FinalPrice),
		observability.String("tax", string(req.Tax)),
		observability.String("discount", string(req.Discount.Kind)),
	)

	if saveErr := s.store.Save(ctx, quote); saveErr != nil {
		logger.Error("failed to store quote", observability.Error(saveErr))
		return nil, fmt.Errorf("failed to store quote: %w", saveErr)
	}

	if s.events != nil {
		s.events.Publish(ctx, EventQuoteComputed, map[string]interface{}{
			"quote_id":       quote.ID,
			"standard_price": result.StandardPrice,
			"final_price":    result.FinalPrice,
			"profit":         result.Profit,
		})
	}

	return quote, nil
}

// Get loads a previously computed quote.
func (s *QuoteService) Get(ctx context.Context, id string) (*Quote, error) {
	if id == "" {
		return nil, errors.New("quote ID cannot be empty")
	}

	quote, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load quote: %w", err)
	}

	return quote, nil
}
