package ports

import (
	"naira-rate-service/internal/domain/model"
)

// QuoteCache holds resolved quotes keyed by directional pair string for the
// lifetime of the process. It is process-local; entries are replaced, never
// expired.
type QuoteCache interface {
	Get(key string) (model.Quote, bool)
	Set(key string, quote model.Quote)
}
