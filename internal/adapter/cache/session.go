package cache

import (
	"sync"

	"naira-rate-service/internal/domain/model"
	"naira-rate-service/internal/domain/ports"
	"naira-rate-service/pkg/logger"
)

// SessionCache keeps resolved quotes for the lifetime of the process,
// keyed by the requested pair. Entries never expire here; staleness is
// handled by the resolver before a quote ever lands in this cache.
type SessionCache struct {
	mutex  sync.RWMutex
	quotes map[string]model.Quote
	log    *logger.Logger
}

func NewSessionCache(log *logger.Logger) *SessionCache {
	return &SessionCache{
		quotes: make(map[string]model.Quote),
		log:    log,
	}
}

func (c *SessionCache) Get(key string) (model.Quote, bool) {
	c.mutex.RLock()
	defer c.mutex.RUnlock()

	quote, found := c.quotes[key]
	if found {
		c.log.Debug("Session cache hit", "key", key)
		return quote, true
	}

	c.log.Debug("Session cache miss", "key", key)
	return model.Quote{}, false
}

func (c *SessionCache) Set(key string, quote model.Quote) {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	c.quotes[key] = quote
	c.log.Debug("Session cache set", "key", key)
}

var _ ports.QuoteCache = (*SessionCache)(nil)
