package cache_test

import (
	"context"
	"fmt"
	"testing"

	"frontdesk/shared/cache"

	"github.com/stretchr/testify/assert"
)

func TestNew_WithoutClientAlwaysMisses(t *testing.T) {
	c := cache.New(nil, nil)
	ctx := context.Background()

	assert.NoError(t, c.Save(ctx, "hotels", []string{"hotel1"}, 60))

	var hotels []string
	err := c.Get(ctx, "hotels", &hotels)

	assert.True(t, cache.IsMiss(err))
	assert.Empty(t, hotels)
	assert.NoError(t, c.Delete(ctx, "hotels"))
	assert.NoError(t, c.Clear(ctx, "rooms"))
}

func TestIsMiss(t *testing.T) {
	assert.True(t, cache.IsMiss(cache.Nil))
	assert.True(t, cache.IsMiss(fmt.Errorf("failed to get cache value: %w", cache.Nil)))
	assert.False(t, cache.IsMiss(fmt.Errorf("connection refused")))
}

func TestBuildCacheKey(t *testing.T) {
	assert.Equal(t, "frontdesk:rooms:available:hotel1", cache.BuildCacheKey("frontdesk", "rooms", "available", "hotel1"))
}
