package oracle

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"naira-rate-service/internal/domain/model"
	"naira-rate-service/internal/domain/ports"
	"naira-rate-service/pkg/logger"
)

type staticOracle struct {
	answer model.OracleAnswer
	err    error
	prompt string
}

func (s *staticOracle) Query(ctx context.Context, prompt string) (model.OracleAnswer, error) {
	s.prompt = prompt
	if s.err != nil {
		return model.OracleAnswer{}, s.err
	}
	return s.answer, nil
}

func (s *staticOracle) Name() string {
	return "static"
}

func TestBuildPrompt(t *testing.T) {
	domesticPair := BuildPrompt(model.CurrencyPair{From: model.USD, To: model.NGN}, model.NGN)
	assert.Contains(t, domesticPair, "from USD to NGN")
	assert.Contains(t, domesticPair, "parallel (informal market) rate")
	assert.Contains(t, domesticPair, `"rate"`)

	foreignPair := BuildPrompt(model.CurrencyPair{From: model.EUR, To: model.GBP}, model.NGN)
	assert.Contains(t, foreignPair, "from EUR to GBP")
	assert.NotContains(t, foreignPair, "parallel (informal market) rate")
}

func TestSource_FetchRate(t *testing.T) {
	log := logger.NewLogger("debug")

	oracle := &staticOracle{
		answer: model.OracleAnswer{
			Text: "The naira held steady.\n```json\n{\"rate\": 1550.25, \"parallelRate\": 1600.0, \"summary\": \"Stable.\"}\n```",
			Citations: []model.Citation{
				{Title: "Central Bank Bulletin", URI: "https://example.com/cbn"},
			},
		},
	}
	source := NewSource(oracle, model.NGN, log)

	quote, err := source.FetchRate(context.Background(), model.CurrencyPair{From: model.USD, To: model.NGN})

	require.NoError(t, err)
	assert.Equal(t, model.USD, quote.From)
	assert.Equal(t, model.NGN, quote.To)
	assert.Equal(t, 1550.25, quote.Rate)
	require.NotNil(t, quote.ParallelRate)
	assert.Equal(t, 1600.0, *quote.ParallelRate)
	assert.Equal(t, "Stable.", quote.Summary)
	assert.Len(t, quote.Sources, 1)
	assert.Contains(t, oracle.prompt, "USD")
}

func TestSource_FetchRateMalformed(t *testing.T) {
	log := logger.NewLogger("debug")

	oracle := &staticOracle{
		answer: model.OracleAnswer{Text: "I cannot determine the current exchange rate."},
	}
	source := NewSource(oracle, model.NGN, log)

	_, err := source.FetchRate(context.Background(), model.CurrencyPair{From: model.USD, To: model.NGN})

	assert.ErrorIs(t, err, ports.ErrOracleMalformed)
}

func TestSource_FetchRatePropagatesOracleError(t *testing.T) {
	log := logger.NewLogger("debug")

	oracle := &staticOracle{err: ports.ErrOracleUnavailable}
	source := NewSource(oracle, model.NGN, log)

	_, err := source.FetchRate(context.Background(), model.CurrencyPair{From: model.USD, To: model.NGN})

	assert.ErrorIs(t, err, ports.ErrOracleUnavailable)
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))

	long := strings.Repeat("x", 200)
	assert.Equal(t, 123, len(truncate(long, 120)))
	assert.True(t, strings.HasSuffix(truncate(long, 120), "..."))
}
