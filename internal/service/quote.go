package service

import (
	"context"
	"fmt"

	"naira-rate-service/internal/domain/model"
	"naira-rate-service/internal/domain/ports"
	"naira-rate-service/pkg/logger"
)

// QuoteService fronts the resolver with a session cache. Once a pair has
// been resolved in this process, repeat requests for it, or for its inverse,
// are answered without going back to the resolver.
type QuoteService struct {
	resolver ports.RateResolver
	session  ports.QuoteCache
	log      *logger.Logger
}

func NewQuoteService(resolver ports.RateResolver, session ports.QuoteCache, log *logger.Logger) *QuoteService {
	return &QuoteService{
		resolver: resolver,
		session:  session,
		log:      log,
	}
}

func (s *QuoteService) FetchRate(ctx context.Context, from, to model.Currency, forceRefresh bool) (model.Quote, error) {

	if !from.IsSupported() || !to.IsSupported() {
		return model.Quote{}, ErrInvalidCurrency
	}
	if from == to {
		return model.Quote{}, fmt.Errorf("%w: identical currencies", ErrInvalidCurrency)
	}

	pair := model.CurrencyPair{From: from, To: to}
	key := pair.String()

	if !forceRefresh {
		if quote, found := s.session.Get(key); found {
			return quote, nil
		}
		if quote, found := s.session.Get(pair.Inverse().String()); found && quote.Rate > 0 {
			s.log.Info("Deriving quote from inverse session entry", "pair", key)
			derived := quote.Inverted()
			s.session.Set(key, derived)
			return derived, nil
		}
	}

	quote, err := s.resolver.Resolve(ctx, from, to)
	if err != nil {
		return model.Quote{}, err
	}

	s.session.Set(key, quote)
	if quote.Rate > 0 {
		s.session.Set(pair.Inverse().String(), quote.Inverted())
	}

	return quote, nil
}

func (s *QuoteService) Convert(ctx context.Context, request model.ConversionRequest) (model.ConversionResult, error) {

	if !request.From.IsSupported() || !request.To.IsSupported() {
		return model.ConversionResult{}, ErrInvalidCurrency
	}
	if request.Amount <= 0 {
		return model.ConversionResult{}, ErrInvalidAmount
	}

	quote, err := s.FetchRate(ctx, request.From, request.To, false)
	if err != nil {
		return model.ConversionResult{}, err
	}

	result := model.ConversionResult{
		From:        request.From,
		To:          request.To,
		FromAmount:  request.Amount,
		ToAmount:    request.Amount * quote.Rate,
		Rate:        quote.Rate,
		LastUpdated: quote.LastUpdated,
	}

	return result, nil
}

var _ ports.QuoteService = (*QuoteService)(nil)
