package oracle

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"naira-rate-service/internal/domain/model"
)

func TestParseAnswer_FencedBlock(t *testing.T) {
	answer := model.OracleAnswer{
		Text: "The naira held steady against the dollar this week.\n\n" +
			"```json\n{\"rate\": 1550.25, \"parallelRate\": 1600.0, \"summary\": \"Stable.\"}\n```\n",
		Citations: []model.Citation{
			{Title: "Central Bank Bulletin", URI: "https://example.com/cbn"},
			{Title: "Market Watch", URI: "https://example.com/market"},
		},
	}

	parsed := ParseAnswer(answer)

	assert.Equal(t, 1550.25, parsed.Rate)
	require.NotNil(t, parsed.ParallelRate)
	assert.Equal(t, 1600.0, *parsed.ParallelRate)
	assert.Equal(t, "Stable.", parsed.Summary)
	assert.Len(t, parsed.Sources, 2)
}

func TestParseAnswer_Priority(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		wantRate float64
	}{
		{
			name: "fenced block beats decoy numbers in prose",
			text: "The naira traded at 1,540.10 earlier today.\n" +
				"```json\n{\"rate\": 1550.25, \"summary\": \"Stable.\"}\n```",
			wantRate: 1550.25,
		},
		{
			name:     "fenced block without language tag",
			text:     "Here you go:\n```\n{\"rate\": 1555.75, \"summary\": \"Flat.\"}\n```",
			wantRate: 1555.75,
		},
		{
			name:     "loose JSON substring when no fence",
			text:     `Latest data: {"rate": 1480.5, "summary": "Drifting."} as reported.`,
			wantRate: 1480.5,
		},
		{
			name: "zero JSON rate falls through to the numeric scan",
			text: "```json\n{\"rate\": 0, \"summary\": \"No data.\"}\n```\n" +
				"Dealers quoted around 1,520.75 per dollar.",
			wantRate: 1520.75,
		},
		{
			name:     "broken JSON falls through to the numeric scan",
			text:     "```json\n{\"rate\": oops}\n```\nThe street price is about 1,610.40 naira.",
			wantRate: 1610.4,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parsed := ParseAnswer(model.OracleAnswer{Text: tt.text})
			assert.Equal(t, tt.wantRate, parsed.Rate)
		})
	}
}

func TestScanRate(t *testing.T) {
	tests := []struct {
		name string
		text string
		want float64
	}{
		{
			name: "year tokens are stripped before scanning",
			text: "As of June 2025, the dollar trades around 1,560.50 naira.",
			want: 1560.5,
		},
		{
			name: "integers and large figures are skipped",
			text: "Volume was 25 billion across 12,500 trades at about 1,575.25 naira.",
			want: 1575.25,
		},
		{
			name: "first qualifying candidate wins",
			text: "The official rate is 1,550.25 while the parallel market quotes 1,600.50.",
			want: 1550.25,
		},
		{
			name: "no qualifying number",
			text: "I cannot determine the current exchange rate.",
			want: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, scanRate(tt.text))
		})
	}
}

func TestParseAnswer_SummaryFallback(t *testing.T) {
	answer := model.OracleAnswer{
		Text: "The naira weakened slightly on Tuesday.\n" +
			"```json\n{\"rate\": 1550.25}\n```",
	}

	parsed := ParseAnswer(answer)

	assert.Equal(t, 1550.25, parsed.Rate)
	assert.Equal(t, "The naira weakened slightly on Tuesday.", parsed.Summary)
	assert.NotContains(t, parsed.Summary, "```")
}

func TestParseAnswer_NoRate(t *testing.T) {
	answer := model.OracleAnswer{
		Text: "I cannot determine the current exchange rate.",
	}

	parsed := ParseAnswer(answer)

	assert.Zero(t, parsed.Rate)
	assert.Nil(t, parsed.ParallelRate)
	assert.Equal(t, "I cannot determine the current exchange rate.", parsed.Summary)
}

func TestParseAnswer_FiltersUnusableCitations(t *testing.T) {
	answer := model.OracleAnswer{
		Text: "```json\n{\"rate\": 1550.25, \"summary\": \"Stable.\"}\n```",
		Citations: []model.Citation{
			{Title: "Central Bank Bulletin", URI: "https://example.com/cbn"},
			{Title: "", URI: "https://example.com/untitled"},
			{Title: "Dead Link", URI: ""},
		},
	}

	parsed := ParseAnswer(answer)

	require.Len(t, parsed.Sources, 1)
	assert.Equal(t, "Central Bank Bulletin", parsed.Sources[0].Title)
}
