package oracle

import (
	"fmt"
	"strings"

	"naira-rate-service/internal/domain/model"
)

// BuildPrompt writes the natural-language request sent to the oracle for one
// pair. Pairs touching the domestic currency additionally ask for the
// parallel (informal market) rate alongside the official one. The oracle is
// told to end its answer with a fenced JSON block so parsing has something
// structured to find.
func BuildPrompt(pair model.CurrencyPair, domestic model.Currency) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Find the current real-world exchange rate from %s to %s using the latest available market data.\n", pair.From, pair.To)

	if pair.Contains(domestic) {
		fmt.Fprintf(&b, "Because this involves %s, report both the official rate and the parallel (informal market) rate if one exists.\n", domestic)
	}

	b.WriteString("Summarize the current market situation in one or two sentences.\n")
	b.WriteString("End your answer with a fenced code block containing only a JSON object of this exact shape:\n")
	b.WriteString("```json\n")
	b.WriteString(`{"rate": <number>, "parallelRate": <number, omit when not applicable>, "summary": "<one sentence>"}`)
	b.WriteString("\n```\n")

	return b.String()
}
