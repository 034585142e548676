package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInMemorySummaryCache(t *testing.T) {
	ctx := context.Background()

	t.Run("miss returns nil without error", func(t *testing.T) {
		c := NewInMemorySummaryCache()

		payload, err := c.Get(ctx, "report:missing")
		require.NoError(t, err)
		assert.Nil(t, payload)
	})

	t.Run("round trip", func(t *testing.T) {
		c := NewInMemorySummaryCache()

		err := c.Set(ctx, "report:april", []byte(`{"total_revenue":1500000}`), time.Hour)
		require.NoError(t, err)

		payload, err := c.Get(ctx, "report:april")
		require.NoError(t, err)
		assert.Equal(t, []byte(`{"total_revenue":1500000}`), payload)
		assert.Equal(t, 1, c.Len())
	})

	t.Run("expired entry is a miss", func(t *testing.T) {
		c := NewInMemorySummaryCache()

		err := c.Set(ctx, "report:old", []byte("stale"), 10*time.Millisecond)
		require.NoError(t, err)

		time.Sleep(20 * time.Millisecond)

		payload, err := c.Get(ctx, "report:old")
		require.NoError(t, err)
		assert.Nil(t, payload)
		assert.Equal(t, 0, c.Len())
	})

	t.Run("overwrite replaces payload", func(t *testing.T) {
		c := NewInMemorySummaryCache()

		require.NoError(t, c.Set(ctx, "report:k", []byte("v1"), time.Hour))
		require.NoError(t, c.Set(ctx, "report:k", []byte("v2"), time.Hour))

		payload, err := c.Get(ctx, "report:k")
		require.NoError(t, err)
		assert.Equal(t, []byte("v2"), payload)
	})
}
