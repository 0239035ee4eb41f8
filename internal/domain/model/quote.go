package model

import (
	"fmt"
	"strings"
	"time"
)

type CurrencyPair struct {
	From Currency `json:"from"`
	To   Currency `json:"to"`
}

func (p CurrencyPair) String() string {
	return fmt.Sprintf("%s-%s", p.From, p.To)
}

func (p CurrencyPair) Inverse() CurrencyPair {
	return CurrencyPair{From: p.To, To: p.From}
}

func (p CurrencyPair) Contains(c Currency) bool {
	return p.From == c || p.To == c
}

// Canonical returns the orientation in which the pair is queried and stored.
// Pairs against the domestic currency are always kept foreign->domestic; the
// returned flag reports whether the result must be inverted before it is
// handed back to the caller.
func (p CurrencyPair) Canonical(domestic Currency) (CurrencyPair, bool) {
	if p.From == domestic && p.To != domestic {
		return p.Inverse(), true
	}
	return p, false
}

// ParsePair parses a pair key of the form "USD-NGN".
func ParsePair(key string) (CurrencyPair, error) {
	from, to, found := strings.Cut(key, "-")
	if !found {
		return CurrencyPair{}, fmt.Errorf("invalid pair key %q", key)
	}
	return CurrencyPair{From: ParseCurrency(from), To: ParseCurrency(to)}, nil
}

// Citation points at a web source the oracle grounded its answer on.
type Citation struct {
	Title string `json:"title"`
	URI   string `json:"uri"`
}

// Quote is a resolved exchange rate ready for display. LastUpdated is a
// display label: a clock time for live data, a clock time suffixed with
// " (Cached)" for stale data, or "Offline Estimate" for the static fallback.
type Quote struct {
	From         Currency   `json:"from"`
	To           Currency   `json:"to"`
	Rate         float64    `json:"rate"`
	ParallelRate *float64   `json:"parallel_rate,omitempty"`
	Summary      string     `json:"summary"`
	Sources      []Citation `json:"sources,omitempty"`
	LastUpdated  string     `json:"last_updated"`
}

func (q Quote) Pair() CurrencyPair {
	return CurrencyPair{From: q.From, To: q.To}
}

// Inverted returns the quote for the opposite direction: rate and parallel
// rate become reciprocals while summary, sources and the display label stay
// as they are. A zero or negative rate cannot be inverted; the quote is
// returned unchanged.
func (q Quote) Inverted() Quote {
	if q.Rate <= 0 {
		return q
	}

	inverted := q
	inverted.From = q.To
	inverted.To = q.From
	inverted.Rate = 1 / q.Rate

	if q.ParallelRate != nil && *q.ParallelRate > 0 {
		parallel := 1 / *q.ParallelRate
		inverted.ParallelRate = &parallel
	}

	return inverted
}

// RateRecord is the persisted form of a resolved rate: one record per
// canonical pair key, overwritten whenever the oracle produces a fresh rate.
type RateRecord struct {
	Pair         string     `json:"pair"`
	Rate         float64    `json:"rate"`
	ParallelRate *float64   `json:"parallel_rate,omitempty"`
	Summary      string     `json:"summary"`
	Sources      []Citation `json:"sources,omitempty"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// Fresh reports whether the record is younger than the freshness window.
func (r RateRecord) Fresh(window time.Duration) bool {
	return time.Since(r.UpdatedAt) < window
}

// OracleAnswer is the oracle's raw output before parsing.
type OracleAnswer struct {
	Text      string
	Citations []Citation
}

type ConversionRequest struct {
	From   Currency `json:"from"`
	To     Currency `json:"to"`
	Amount float64  `json:"amount"`
}

type ConversionResult struct {
	From        Currency `json:"from"`
	To          Currency `json:"to"`
	FromAmount  float64  `json:"from_amount"`
	ToAmount    float64  `json:"to_amount"`
	Rate        float64  `json:"rate"`
	LastUpdated string   `json:"last_updated"`
}
