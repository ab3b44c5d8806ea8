package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCache_SetGet(t *testing.T) {
	c := New(time.Minute)

	_, ok := c.Get("missing")
	assert.False(t, ok)

	c.Set("k", 42)
	v, ok := GetAs[int](c, "k")
	require.True(t, ok)
	assert.Equal(t, 42, v)

	_, ok = GetAs[string](c, "k")
	assert.False(t, ok, "wrong type is a miss")
}

func TestCache_Expires(t *testing.T) {
	c := New(50 * time.Millisecond)
	c.Set("k", "v")

	_, ok := c.Get("k")
	require.True(t, ok)

	time.Sleep(80 * time.Millisecond)
	_, ok = c.Get("k")
	assert.False(t, ok)
}

func TestCache_ZeroTTLNeverExpires(t *testing.T) {
	c := New(0)
	c.Set("k", "v")

	time.Sleep(20 * time.Millisecond)
	v, ok := GetAs[string](c, "k")
	require.True(t, ok)
	assert.Equal(t, "v", v)
	assert.Equal(t, 1, c.Len())
}

func TestKey(t *testing.T) {
	type params struct {
		State string `json:"state"`
		Page  int    `json:"page"`
	}

	a, err := Key("news_", params{State: "Ohio", Page: 1})
	require.NoError(t, err)
	b, err := Key("news_", params{State: "Ohio", Page: 1})
	require.NoError(t, err)
	c, err := Key("news_", params{State: "Ohio", Page: 2})
	require.NoError(t, err)

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
	assert.Equal(t, `news_{"state":"Ohio","page":1}`, a)
}
