package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCacheSetGet(t *testing.T) {
	c := New(true)

	etag := c.Set("k", []byte(`{"a":1}`), time.Minute)
	require.NotEmpty(t, etag)

	data, gotETag, ok := c.Get("k")
	require.True(t, ok)
	assert.Equal(t, []byte(`{"a":1}`), data)
	assert.Equal(t, etag, gotETag)
}

func TestCacheExpiry(t *testing.T) {
	c := New(true)
	c.Set("k", []byte("v"), -time.Second)

	_, _, ok := c.Get("k")
	assert.False(t, ok)
}

func TestCacheDisabled(t *testing.T) {
	c := New(false)

	// A disabled cache still produces ETags so 304 handling keeps working.
	etag := c.Set("k", []byte("v"), time.Minute)
	assert.NotEmpty(t, etag)

	_, _, ok := c.Get("k")
	assert.False(t, ok)
}

func TestCacheEvict(t *testing.T) {
	c := New(true)
	c.Set("stale", []byte("v"), -time.Second)
	c.Set("fresh", []byte("v"), time.Minute)

	c.evict()

	stats := c.Stats()
	assert.Equal(t, 1, stats["total_keys"])
	assert.Equal(t, 1, stats["active_keys"])
}

func TestComputeETagStable(t *testing.T) {
	a := ComputeETag([]byte("payload"))
	b := ComputeETag([]byte("payload"))
	assert.Equal(t, a, b)
	assert.NotEqual(t, a, ComputeETag([]byte("other")))
}

func TestCheckETagMatch(t *testing.T) {
	etag := ComputeETag([]byte("x"))
	assert.True(t, CheckETagMatch(etag, etag))
	assert.True(t, CheckETagMatch("*", etag))
	assert.False(t, CheckETagMatch("", etag))
	assert.False(t, CheckETagMatch(`W/"nope"`, etag))
}
