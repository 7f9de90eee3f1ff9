package utils

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCheckHealthWithoutCache(t *testing.T) {
	h := CheckHealth(context.Background(), nil)
	assert.False(t, h.CacheEnabled)
	assert.False(t, h.Redis)
	assert.False(t, h.CheckedAt.IsZero())
	assert.Equal(t, h, GetHealthStatus())
}
