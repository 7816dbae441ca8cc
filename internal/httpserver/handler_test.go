package httpserver_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/davidbz/sticker/internal/config"
	"github.com/davidbz/sticker/internal/domain"
	"github.com/davidbz/sticker/internal/httpserver"
	"github.com/davidbz/sticker/internal/httpserver/middleware"
	"github.com/davidbz/sticker/internal/mocks"
)

func newTestRoutes(t *testing.T, store domain.QuoteStore) http.Handler {
	t.Helper()

	service := domain.NewQuoteService(store, nil)
	handler := httpserver.NewHandler(service)
	server := httpserver.NewServer(
		&config.ServerConfig{Port: 0, ReadTimeout: 5, WriteTimeout: 5},
		handler,
		middleware.Trace(),
	)
	return server.Routes()
}

func postQuote(t *testing.T, routes http.Handler, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	reqBody, err := json.Marshal(body)
	require.NoError(t, err)

	httpReq := httptest.NewRequest(http.MethodPost, "/v1/quotes", bytes.NewReader(reqBody))
	w := httptest.NewRecorder()
	routes.ServeHTTP(w, httpReq)
	return w
}

func TestHandleCreateQuote_Success(t *testing.T) {
	routes := newTestRoutes(t, domain.NewInMemoryQuoteStore())

	w := postQuote(t, routes, domain.QuoteForm{
		Cost:               100,
		ProfitRate:         15,
		HasTax:             true,
		TaxType:            "low",
		HasDiscount:        true,
		DiscountType:       "percentage",
		DiscountPercentage: 85,
	})

	require.Equal(t, http.StatusCreated, w.Code)
	require.Equal(t, "application/json", w.Header().Get("Content-Type"))
	require.NotEmpty(t, w.Header().Get("X-Request-Id"))

	var quote domain.Quote
	require.NoError(t, json.NewDecoder(w.Body).Decode(&quote))
	require.NotEmpty(t, quote.ID)
	require.Equal(t, "/v1/quotes/"+quote.ID, w.Header().Get("Location"))
	require.InDelta(t, 147.61, quote.Result.StandardPrice, 1e-9)
	require.InDelta(t, 125.47, quote.Result.FinalPrice, 1e-9)
	require.InDelta(t, 15.0, quote.Result.Profit, 1e-9)
	require.InDelta(t, 15.0, quote.Result.ActualProfitRate, 1e-9)
	require.InDelta(t, 125.465, quote.Steps.AfterTax, 1e-9)
	require.Equal(t, "125.47", quote.Display.AfterTax)
}

func TestHandleCreateQuote_ValidationErrors(t *testing.T) {
	routes := newTestRoutes(t, domain.NewInMemoryQuoteStore())

	tests := []struct {
		name string
		body interface{}
	}{
		{name: "zero cost", body: domain.QuoteForm{Cost: 0, ProfitRate: 20}},
		{name: "negative profit rate", body: domain.QuoteForm{Cost: 100, ProfitRate: -5}},
		{name: "unknown tax type", body: domain.QuoteForm{Cost: 100, HasTax: true, TaxType: "luxury"}},
		{name: "unknown discount type", body: domain.QuoteForm{Cost: 100, HasDiscount: true, DiscountType: "coupon"}},
		{name: "malformed body", body: "not an object"},
		{name: "price overflows", body: domain.QuoteForm{Cost: 1e308, ProfitRate: 1000}},
		{name: "vanishing percentage", body: domain.QuoteForm{
			Cost: 100, ProfitRate: 20, HasDiscount: true, DiscountType: "percentage", DiscountPercentage: 1e-320,
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := postQuote(t, routes, tt.body)
			require.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

func TestHandleCreateQuote_StoreFailure(t *testing.T) {
	mockStore := mocks.NewMockQuoteStore(t)
	mockStore.EXPECT().
		Save(mock.Anything, mock.Anything).
		Return(errors.New("redis unavailable"))

	routes := newTestRoutes(t, mockStore)

	w := postQuote(t, routes, domain.QuoteForm{Cost: 100, ProfitRate: 20})
	require.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestHandleCreateQuote_MethodNotAllowed(t *testing.T) {
	handler := httpserver.NewHandler(domain.NewQuoteService(domain.NewInMemoryQuoteStore(), nil))

	w := httptest.NewRecorder()
	handler.HandleCreateQuote(w, httptest.NewRequest(http.MethodGet, "/v1/quotes", nil))

	require.Equal(t, http.StatusMethodNotAllowed, w.Code)
}

func TestHandleGetQuote(t *testing.T) {
	routes := newTestRoutes(t, domain.NewInMemoryQuoteStore())

	created := postQuote(t, routes, domain.QuoteForm{
		Cost:              100,
		ProfitRate:        100,
		HasDiscount:       true,
		DiscountType:      "amount",
		DiscountThreshold: 200,
		DiscountAmount:    30,
	})
	require.Equal(t, http.StatusCreated, created.Code)

	var quote domain.Quote
	require.NoError(t, json.NewDecoder(created.Body).Decode(&quote))

	t.Run("found", func(t *testing.T) {
		w := httptest.NewRecorder()
		routes.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/quotes/"+quote.ID, nil))

		require.Equal(t, http.StatusOK, w.Code)

		var loaded domain.Quote
		require.NoError(t, json.NewDecoder(w.Body).Decode(&loaded))
		require.Equal(t, quote.ID, loaded.ID)
		require.InDelta(t, 230.0, loaded.Result.StandardPrice, 1e-9)
		require.InDelta(t, 200.0, loaded.Result.FinalPrice, 1e-9)
	})

	t.Run("not found", func(t *testing.T) {
		w := httptest.NewRecorder()
		routes.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/quotes/missing", nil))

		require.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestHandleGetQuote_StoreFailure(t *testing.T) {
	mockStore := mocks.NewMockQuoteStore(t)
	mockStore.EXPECT().
		Get(mock.Anything, "q-1").
		Return(nil, errors.New("redis unavailable"))

	routes := newTestRoutes(t, mockStore)

	w := httptest.NewRecorder()
	routes.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/quotes/q-1", nil))

	require.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestHandleHealth(t *testing.T) {
	routes := newTestRoutes(t, domain.NewInMemoryQuoteStore())

	w := httptest.NewRecorder()
	routes.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]string
	require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
	require.Equal(t, "healthy", body["status"])
}
