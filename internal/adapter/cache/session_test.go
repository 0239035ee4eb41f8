package cache

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"naira-rate-service/internal/domain/model"
	"naira-rate-service/pkg/logger"
)

func TestSessionCache(t *testing.T) {
	cache := NewSessionCache(logger.NewLogger("debug"))

	_, found := cache.Get("USD-NGN")
	assert.False(t, found)

	quote := model.Quote{From: model.USD, To: model.NGN, Rate: 1600, LastUpdated: "2:05 PM"}
	cache.Set("USD-NGN", quote)

	got, found := cache.Get("USD-NGN")
	require.True(t, found)
	assert.Equal(t, quote, got)
}

func TestSessionCache_Overwrite(t *testing.T) {
	cache := NewSessionCache(logger.NewLogger("debug"))

	cache.Set("USD-NGN", model.Quote{From: model.USD, To: model.NGN, Rate: 1500})
	cache.Set("USD-NGN", model.Quote{From: model.USD, To: model.NGN, Rate: 1600})

	got, found := cache.Get("USD-NGN")
	require.True(t, found)
	assert.Equal(t, 1600.0, got.Rate)
}
