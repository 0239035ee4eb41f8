package ports

import (
	"context"
	"errors"

	"naira-rate-service/internal/domain/model"
)

// ErrRecordNotFound is returned by RateStore.Get when no record exists for
// the pair key.
var ErrRecordNotFound = errors.New("rate record not found")

// RateStore persists one record per canonical pair key with upsert semantics.
// The store never expires records on its own; staleness is judged by the
// reader.
type RateStore interface {
	Get(ctx context.Context, pairKey string) (model.RateRecord, error)
	Put(ctx context.Context, record model.RateRecord) error
}
