package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"naira-rate-service/internal/domain/model"
	"naira-rate-service/pkg/logger"
)

func newTestRouter(svc *MockQuoteService) http.Handler {
	log := logger.NewLogger("debug")
	handler := NewHandler(svc, log, testMetrics)
	return NewRouter(handler, log, testMetrics).SetupRoutes()
}

func TestRouter_Health(t *testing.T) {
	routes := newTestRouter(&MockQuoteService{})

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()

	routes.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "OK", rec.Body.String())
}

func TestRouter_Metrics(t *testing.T) {
	routes := newTestRouter(&MockQuoteService{})

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rec := httptest.NewRecorder()

	routes.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRouter_RequestID(t *testing.T) {
	svc := &MockQuoteService{
		FetchRateFunc: func(ctx context.Context, from, to model.Currency, forceRefresh bool) (model.Quote, error) {
			return model.Quote{From: from, To: to, Rate: 1600}, nil
		},
	}
	routes := newTestRouter(svc)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/rate?from=USD&to=NGN", nil)
	rec := httptest.NewRecorder()

	routes.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
}

func TestRouter_PropagatesRequestID(t *testing.T) {
	routes := newTestRouter(&MockQuoteService{})

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("X-Request-ID", "req-123")
	rec := httptest.NewRecorder()

	routes.ServeHTTP(rec, req)

	assert.Equal(t, "req-123", rec.Header().Get("X-Request-ID"))
}
