package store

import (
	"context"
	"sync"

	"naira-rate-service/internal/domain/model"
	"naira-rate-service/internal/domain/ports"
)

// MemoryStore keeps rate records in a process-local map. It is the default
// driver for development and tests, where persistence across restarts does
// not matter.
type MemoryStore struct {
	mutex   sync.RWMutex
	records map[string]model.RateRecord
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		records: make(map[string]model.RateRecord),
	}
}

func (m *MemoryStore) Get(ctx context.Context, pairKey string) (model.RateRecord, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	record, found := m.records[pairKey]
	if !found {
		return model.RateRecord{}, ports.ErrRecordNotFound
	}
	return record, nil
}

func (m *MemoryStore) Put(ctx context.Context, record model.RateRecord) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	m.records[record.Pair] = record
	return nil
}

var _ ports.RateStore = (*MemoryStore)(nil)
