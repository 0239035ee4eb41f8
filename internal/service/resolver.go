package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"naira-rate-service/internal/domain/model"
	"naira-rate-service/internal/domain/ports"
	"naira-rate-service/pkg/logger"
	"naira-rate-service/pkg/utils"
)

var (
	ErrInvalidCurrency = errors.New("invalid currency")
	ErrInvalidAmount   = errors.New("invalid amount")
	ErrNoData          = errors.New("no exchange rate data available")
)

const (
	cachedSuffix   = " (Cached)"
	offlineLabel   = "Offline Estimate"
	offlineSummary = "Live exchange rate data is currently unavailable. This figure is a static offline estimate and may not reflect the market."
)

type ResolverConfig struct {
	Domestic       model.Currency
	Freshness      time.Duration
	FallbackRates  map[string]float64
	PersistTimeout time.Duration
}

// Resolver produces a quote for a currency pair. It works on the canonical
// orientation of the pair, so USD-NGN and NGN-USD share one stored record,
// and inverts the result at the end when the caller asked for the flipped
// direction.
//
// Resolution order: fresh stored record, then the oracle, then a stale
// stored record, then the static offline table. Only when all four come up
// empty does a request fail.
type Resolver struct {
	source ports.RateSource
	store  ports.RateStore
	config ResolverConfig
	log    *logger.Logger
}

func NewResolver(source ports.RateSource, store ports.RateStore, config ResolverConfig, log *logger.Logger) *Resolver {
	return &Resolver{
		source: source,
		store:  store,
		config: config,
		log:    log,
	}
}

func (r *Resolver) Resolve(ctx context.Context, from, to model.Currency) (model.Quote, error) {

	pair := model.CurrencyPair{From: from, To: to}
	canonical, inverted := pair.Canonical(r.config.Domestic)
	key := canonical.String()

	record, haveRecord := r.readRecord(ctx, key)
	if haveRecord && record.Fresh(r.config.Freshness) {
		r.log.Info("Serving fresh rate record", "pair", key)
		quote := quoteFromRecord(canonical, record, utils.FormatClock(record.UpdatedAt))
		return orient(quote, inverted), nil
	}

	r.log.Info("Querying oracle for exchange rate", "pair", key)
	quote, err := r.source.FetchRate(ctx, canonical)
	if err == nil {
		quote.LastUpdated = utils.FormatClock(time.Now())
		r.persistAsync(ctx, key, quote)
		return orient(quote, inverted), nil
	}
	r.log.Error("Oracle query failed", "error", err, "pair", key)

	if haveRecord {
		r.log.Warn("Serving stale rate record", "pair", key, "age", time.Since(record.UpdatedAt).String())
		quote := quoteFromRecord(canonical, record, utils.FormatClock(record.UpdatedAt)+cachedSuffix)
		return orient(quote, inverted), nil
	}

	if rate, found := r.config.FallbackRates[key]; found {
		r.log.Warn("Serving offline estimate", "pair", key)
		quote := model.Quote{
			From:        canonical.From,
			To:          canonical.To,
			Rate:        rate,
			Summary:     offlineSummary,
			LastUpdated: offlineLabel,
		}
		return orient(quote, inverted), nil
	}

	return model.Quote{}, fmt.Errorf("%w: %v", ErrNoData, err)
}

// readRecord treats any store failure as a miss so that a broken store
// degrades to oracle-only operation instead of taking requests down.
func (r *Resolver) readRecord(ctx context.Context, key string) (model.RateRecord, bool) {
	record, err := r.store.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, ports.ErrRecordNotFound) {
			r.log.Error("Failed to read rate record", "error", err, "pair", key)
		}
		return model.RateRecord{}, false
	}
	return record, true
}

// persistAsync writes the record on a detached context so a slow store
// never delays the response and a cancelled request never aborts the write.
func (r *Resolver) persistAsync(ctx context.Context, key string, quote model.Quote) {
	record := model.RateRecord{
		Pair:         key,
		Rate:         quote.Rate,
		ParallelRate: quote.ParallelRate,
		Summary:      quote.Summary,
		Sources:      quote.Sources,
		UpdatedAt:    time.Now(),
	}

	go func() {
		persistCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), r.config.PersistTimeout)
		defer cancel()

		if err := r.store.Put(persistCtx, record); err != nil {
			r.log.Error("Failed to persist rate record", "error", err, "pair", key)
		}
	}()
}

func quoteFromRecord(pair model.CurrencyPair, record model.RateRecord, label string) model.Quote {
	return model.Quote{
		From:         pair.From,
		To:           pair.To,
		Rate:         record.Rate,
		ParallelRate: record.ParallelRate,
		Summary:      record.Summary,
		Sources:      record.Sources,
		LastUpdated:  label,
	}
}

func orient(quote model.Quote, inverted bool) model.Quote {
	if !inverted {
		return quote
	}
	return quote.Inverted()
}

var _ ports.RateResolver = (*Resolver)(nil)
