package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRedisStore(t *testing.T) {
	store, err := NewRedisStore("redis://localhost:6379/0")

	require.NoError(t, err)
	assert.NotNil(t, store)
}

func TestNewRedisStore_InvalidURL(t *testing.T) {
	_, err := NewRedisStore("not-a-redis-url")

	assert.Error(t, err)
}
