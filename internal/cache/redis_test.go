package cache

import (
	"context"
	"strings"
	"testing"
	"time"

	"chatsearch/internal/model"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCache(t *testing.T) (*RedisCache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)

	c, err := NewRedisCache(context.Background(), RedisConfig{Addr: mr.Addr(), TTL: time.Minute})
	require.NoError(t, err)
	t.Cleanup(func() { c.Close() })
	return c, mr
}

func TestRedisCache_RoundTrip(t *testing.T) {
	c, _ := newTestCache(t)
	ctx := context.Background()

	_, err := c.Get(ctx, "v1", "3BHK in Pune", 20)
	assert.ErrorIs(t, err, ErrCacheMiss)

	city := "Pune"
	resp := &model.SearchResponse{
		SearchID: "abc",
		Parsed:   &model.StructuredFilter{City: &city},
		Summary:  "Found 1 property listings in Pune matching your filters.",
		Cards:    []model.ResultCard{{Title: "Godrej Woods", CTA: "/project/godrej-woods"}},
		Total:    1,
	}
	require.NoError(t, c.Set(ctx, "v1", "3BHK in Pune", 20, resp))

	got, err := c.Get(ctx, "v1", "  3BHK in Pune ", 20)
	require.NoError(t, err)
	assert.Equal(t, resp, got)

	_, err = c.Get(ctx, "v1", "3bhk in pune", 20)
	assert.ErrorIs(t, err, ErrCacheMiss, "case is part of the key")

	_, err = c.Get(ctx, "v1", "3BHK in Pune", 5)
	assert.ErrorIs(t, err, ErrCacheMiss, "result limit is part of the key")
}

func TestRedisCache_DatasetVersionIsolation(t *testing.T) {
	c, mr := newTestCache(t)
	ctx := context.Background()

	old := &model.SearchResponse{Cards: []model.ResultCard{{Title: "Old Tower"}}, Total: 1}
	require.NoError(t, c.Set(ctx, "old", "in Pune", 20, old))

	_, err := c.Get(ctx, "new", "in Pune", 20)
	assert.ErrorIs(t, err, ErrCacheMiss)

	got, err := c.Get(ctx, "old", "in Pune", 20)
	require.NoError(t, err)
	assert.Equal(t, "Old Tower", got.Cards[0].Title)

	keys := mr.Keys()
	require.Len(t, keys, 1)
	assert.True(t, strings.HasPrefix(keys[0], "chatsearch:old:search:"), keys[0])
}

func TestRedisCache_Expires(t *testing.T) {
	c, mr := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "v1", "q", 1, &model.SearchResponse{Cards: []model.ResultCard{}}))
	mr.FastForward(2 * time.Minute)

	_, err := c.Get(ctx, "v1", "q", 1)
	assert.ErrorIs(t, err, ErrCacheMiss)
}

func TestNewRedisCache_Unreachable(t *testing.T) {
	mr := miniredis.RunT(t)
	addr := mr.Addr()
	mr.Close()

	_, err := NewRedisCache(context.Background(), RedisConfig{Addr: addr})
	assert.Error(t, err)
}
