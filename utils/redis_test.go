package utils

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateQueryCacheKeyIsOrderIndependent(t *testing.T) {
	a := GenerateQueryCacheKey("properties", map[string]string{"city": "Kathmandu", "page": "1"})
	b := GenerateQueryCacheKey("properties", map[string]string{"page": "1", "city": "Kathmandu", "type": ""})

	assert.Equal(t, a, b)
	assert.Contains(t, a, "properties:")
	assert.NotEqual(t, a, GenerateQueryCacheKey("properties", map[string]string{"city": "Lalitpur", "page": "1"}))
}

func TestNilCacheIsDisabled(t *testing.T) {
	var c *Cache
	var out []string

	hit, err := c.GetJSON(context.Background(), "k", &out)
	require.NoError(t, err)
	assert.False(t, hit)
	assert.NoError(t, c.SetJSON(context.Background(), "k", out))
	assert.NoError(t, c.DeletePrefix(context.Background(), "k"))
}
