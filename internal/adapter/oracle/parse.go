package oracle

import (
	"encoding/json"
	"math"
	"regexp"
	"strconv"
	"strings"

	"naira-rate-service/internal/domain/model"
)

var (
	fencedBlockRe = regexp.MustCompile("(?s)```(?:json)?\\s*(\\{.*?\\})\\s*```")
	looseJSONRe   = regexp.MustCompile(`\{[^{}]*"rate"[^{}]*\}`)
	yearRe        = regexp.MustCompile(`\b202[0-9]\b`)
	decimalRe     = regexp.MustCompile(`\b\d{1,3}(?:,\d{3})*(?:\.\d+)?\b`)
)

// ParsedQuote is what could be extracted from one oracle answer. A zero Rate
// means no usable rate was found; the caller decides what that implies.
type ParsedQuote struct {
	Rate         float64
	ParallelRate *float64
	Summary      string
	Sources      []model.Citation
}

// ParseAnswer extracts a structured quote from the oracle's loosely
// structured answer. The JSON the oracle was asked for is tried first: a
// fenced block, then any JSON-looking substring carrying a "rate" key. Only
// when neither yields a nonzero rate does the numeric scan of the prose run.
// ParseAnswer never fails; a missing rate surfaces as Rate == 0.
func ParseAnswer(answer model.OracleAnswer) ParsedQuote {
	parsed := ParsedQuote{Sources: filterCitations(answer.Citations)}

	blob := ""
	if m := fencedBlockRe.FindStringSubmatch(answer.Text); m != nil {
		blob = m[1]
	} else if m := looseJSONRe.FindString(answer.Text); m != "" {
		blob = m
	}

	if blob != "" {
		var body struct {
			Rate         float64  `json:"rate"`
			ParallelRate *float64 `json:"parallelRate"`
			Summary      string   `json:"summary"`
		}
		if err := json.Unmarshal([]byte(blob), &body); err == nil {
			if body.Rate != 0 {
				parsed.Rate = body.Rate
			}
			if body.ParallelRate != nil {
				parsed.ParallelRate = body.ParallelRate
			}
			parsed.Summary = body.Summary
		}
	}

	if parsed.Rate == 0 {
		parsed.Rate = scanRate(answer.Text)
	}

	if parsed.Summary == "" {
		parsed.Summary = stripBlock(answer.Text)
	}

	return parsed
}

// scanRate is the last-ditch extraction: drop year-like tokens so dates do
// not masquerade as rates, then take the first thousands-grouped decimal that
// is positive, below 10000, not an integer, and not literally 2024 or 2025.
func scanRate(text string) float64 {
	cleaned := yearRe.ReplaceAllString(text, "")

	for _, token := range decimalRe.FindAllString(cleaned, -1) {
		value, err := strconv.ParseFloat(strings.ReplaceAll(token, ",", ""), 64)
		if err != nil {
			continue
		}
		if value > 0 && value < 10000 && value != math.Trunc(value) && value != 2024 && value != 2025 {
			return value
		}
	}

	return 0
}

// stripBlock removes the fenced JSON block from the oracle's text so it never
// leaks into the human-readable summary.
func stripBlock(text string) string {
	return strings.TrimSpace(fencedBlockRe.ReplaceAllString(text, ""))
}

func filterCitations(citations []model.Citation) []model.Citation {
	kept := make([]model.Citation, 0, len(citations))
	for _, citation := range citations {
		if citation.Title == "" || citation.URI == "" {
			continue
		}
		kept = append(kept, citation)
	}
	return kept
}
