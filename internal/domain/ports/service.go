package ports

import (
	"context"

	"naira-rate-service/internal/domain/model"
)

// RateResolver runs the tiered resolution for one directional pair: fresh
// store record, live oracle, stale store record, emergency table.
type RateResolver interface {
	Resolve(ctx context.Context, from, to model.Currency) (model.Quote, error)
}

// QuoteService is the consumer-facing surface: session-cached rate lookups
// with symmetric-pair derivation, and amount conversion on top of them.
type QuoteService interface {
	FetchRate(ctx context.Context, from, to model.Currency, forceRefresh bool) (model.Quote, error)
	Convert(ctx context.Context, request model.ConversionRequest) (model.ConversionResult, error)
}
