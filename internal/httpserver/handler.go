package httpserver

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/davidbz/sticker/internal/domain"
	"github.com/davidbz/sticker/internal/observability"
)

// Handler handles HTTP requests.
type Handler struct {
	quotes *domain.QuoteService
}

// NewHandler creates a new HTTP handler (DI constructor).
func NewHandler(quotes *domain.QuoteService) *Handler {
	return &Handler{
		quotes: quotes,
	}
}

// HandleCreateQuote prices a quote form.
func (h *Handler) HandleCreateQuote(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	// Early validation.
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	// Parse request.
	var form domain.QuoteForm
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		http.Error(w, fmt.Sprintf("invalid request body: %v", err), http.StatusBadRequest)
		return
	}

	logger := observability.FromContext(ctx)
	logger.Info("quote request received",
		observability.Float64("cost", form.Cost),
		observability.Float64("profit_rate", form.ProfitRate),
		observability.Bool("has_tax", form.HasTax),
		observability.Bool("has_discount", form.HasDiscount),
	)

	quote, err := h.quotes.Quote(ctx, &form)
	if err != nil {
		if domain.IsValidationError(err) {
			logger.Info("quote rejected", observability.Error(err))
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		logger.Error("quote failed", observability.Error(err))
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Location", "/v1/quotes/"+quote.ID)
	h.writeJSON(w, r, http.StatusCreated, quote)
}

// HandleGetQuote returns a stored quote.
func (h *Handler) HandleGetQuote(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	ctx := observability.WithQuoteID(r.Context(), id)
	logger := observability.FromContext(ctx)

	quote, err := h.quotes.Get(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrQuoteNotFound) {
			http.Error(w, "quote not found", http.StatusNotFound)
			return
		}
		logger.Error("quote lookup failed", observability.Error(err))
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	h.writeJSON(w, r, http.StatusOK, quote)
}

// HandleHealth handles health check requests.
func (h *Handler) HandleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(map[string]string{
		"status": "healthy",
	}); err != nil {
		// Already written status, can't change it, just log.
		return
	}
}

func (h *Handler) writeJSON(w http.ResponseWriter, r *http.Request, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		// Status is already written.
		observability.FromContext(r.Context()).Error("failed to encode response", observability.Error(err))
	}
}
