package resource

import (
	"bytes"
	"context"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTryAcquireMemory(t *testing.T) {
	c := NewController(Config{MemoryLimitBytes: 100})

	require.NoError(t, c.TryAcquireMemory(60))
	assert.Equal(t, int64(60), c.MemoryUsage())

	err := c.TryAcquireMemory(50)
	assert.ErrorIs(t, err, ErrExhausted)
	assert.Equal(t, int64(60), c.MemoryUsage())

	c.ReleaseMemory(60)
	assert.Equal(t, int64(0), c.MemoryUsage())

	require.NoError(t, c.TryAcquireMemory(100))
	c.ReleaseMemory(100)
}

func TestAcquireMemoryUnlimited(t *testing.T) {
	c := NewController(Config{})

	require.NoError(t, c.TryAcquireMemory(1<<40))
	assert.Equal(t, int64(1<<40), c.MemoryUsage())
	c.ReleaseMemory(1 << 40)
}

func TestNilController(t *testing.T) {
	var c *Controller

	require.NoError(t, c.TryAcquireMemory(10))
	require.NoError(t, c.AcquireMemory(context.Background(), 10))
	c.ReleaseMemory(10)
	assert.Equal(t, int64(0), c.MemoryUsage())
	require.NoError(t, c.AcquireIO(context.Background(), 10))
}

func TestAcquireMemoryCanceled(t *testing.T) {
	c := NewController(Config{MemoryLimitBytes: 10})
	require.NoError(t, c.TryAcquireMemory(10))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := c.AcquireMemory(ctx, 5)
	assert.ErrorIs(t, err, context.Canceled)

	c.ReleaseMemory(10)
}

func TestRateLimitedReader(t *testing.T) {
	// Generous limit so the test does not actually stall.
	c := NewController(Config{IOLimitBytesPerSec: 1 << 20})

	src := bytes.Repeat([]byte("x"), 4096)
	r := NewRateLimitedReader(context.Background(), bytes.NewReader(src), c)

	got, err := io.ReadAll(r)
	require.NoError(t, err)
	assert.Equal(t, src, got)
}
