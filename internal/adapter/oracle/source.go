package oracle

import (
	"context"
	"fmt"

	"naira-rate-service/internal/domain/model"
	"naira-rate-service/internal/domain/ports"
	"naira-rate-service/pkg/logger"
)

// Source turns a free-text oracle into a rate source. It builds the prompt
// for a currency pair, queries the oracle and extracts a structured quote
// from whatever text comes back.
type Source struct {
	oracle   ports.Oracle
	domestic model.Currency
	log      *logger.Logger
}

func NewSource(oracle ports.Oracle, domestic model.Currency, log *logger.Logger) *Source {
	return &Source{
		oracle:   oracle,
		domestic: domestic,
		log:      log,
	}
}

func (s *Source) FetchRate(ctx context.Context, pair model.CurrencyPair) (model.Quote, error) {
	prompt := BuildPrompt(pair, s.domestic)

	answer, err := s.oracle.Query(ctx, prompt)
	if err != nil {
		return model.Quote{}, err
	}

	parsed := ParseAnswer(answer)
	if parsed.Rate <= 0 {
		return model.Quote{}, fmt.Errorf("%w: %q", ports.ErrOracleMalformed, truncate(answer.Text, 120))
	}

	s.log.Debug("Parsed oracle quote",
		"pair", pair.String(),
		"rate", parsed.Rate,
		"sources", len(parsed.Sources),
	)

	return model.Quote{
		From:         pair.From,
		To:           pair.To,
		Rate:         parsed.Rate,
		ParallelRate: parsed.ParallelRate,
		Summary:      parsed.Summary,
		Sources:      parsed.Sources,
	}, nil
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}

var _ ports.RateSource = (*Source)(nil)
