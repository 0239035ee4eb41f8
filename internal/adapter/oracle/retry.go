package oracle

import (
	"context"
	"fmt"
	"time"

	"naira-rate-service/internal/domain/model"
	"naira-rate-service/internal/domain/ports"
	"naira-rate-service/pkg/logger"
)

// RetryOracle wraps another oracle and retries throttled queries a fixed
// number of times with a fixed pause. Any error that is not a rate limit
// fails immediately.
type RetryOracle struct {
	inner   ports.Oracle
	budget  int
	backoff time.Duration
	log     *logger.Logger
}

func NewRetryOracle(inner ports.Oracle, budget int, backoff time.Duration, log *logger.Logger) *RetryOracle {
	if budget < 0 {
		budget = 0
	}
	return &RetryOracle{
		inner:   inner,
		budget:  budget,
		backoff: backoff,
		log:     log,
	}
}

func (r *RetryOracle) Query(ctx context.Context, prompt string) (model.OracleAnswer, error) {
	var lastErr error
	for attempt := 0; attempt <= r.budget; attempt++ {
		answer, err := r.inner.Query(ctx, prompt)
		if err == nil {
			return answer, nil
		}
		if !IsRateLimited(err) {
			return model.OracleAnswer{}, err
		}
		lastErr = err
		if attempt == r.budget {
			break
		}

		r.log.Warn("Oracle throttled, retrying",
			"oracle", r.inner.Name(),
			"attempt", attempt+1,
			"backoff", r.backoff.String(),
		)
		select {
		case <-time.After(r.backoff):
		case <-ctx.Done():
			return model.OracleAnswer{}, ctx.Err()
		}
	}
	return model.OracleAnswer{}, fmt.Errorf("%w: %v", ports.ErrOracleRateLimited, lastErr)
}

func (r *RetryOracle) Name() string {
	return r.inner.Name()
}

var _ ports.Oracle = (*RetryOracle)(nil)
