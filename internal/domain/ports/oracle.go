package ports

import (
	"context"
	"errors"

	"naira-rate-service/internal/domain/model"
)

var (
	// ErrOracleRateLimited marks upstream throttling that survived the retry
	// budget.
	ErrOracleRateLimited = errors.New("oracle rate limited")
	// ErrOracleMalformed means the answer yielded no usable rate.
	ErrOracleMalformed = errors.New("oracle response contained no usable rate")
	// ErrOracleUnavailable covers transport and upstream failures that are not
	// throttling.
	ErrOracleUnavailable = errors.New("oracle unavailable")
)

// Oracle is the upstream natural-language capability: given a prompt it
// returns free text plus whatever web citations grounded the answer.
type Oracle interface {
	Query(ctx context.Context, prompt string) (model.OracleAnswer, error)
	Name() string
}

// RateSource produces a parsed quote for one pair, in the direction asked.
// The returned quote carries no display label; that is the resolver's job.
type RateSource interface {
	FetchRate(ctx context.Context, pair model.CurrencyPair) (model.Quote, error)
}
