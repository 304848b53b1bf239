// Package cache stores rendered search responses in Redis.
package cache

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"chatsearch/internal/model"

	"github.com/redis/go-redis/v9"
)

// ErrCacheMiss indicates a cache miss.
var ErrCacheMiss = errors.New("cache miss")

// ResponseCache stores search responses by dataset version and query. The
// version keeps answers from one dataset from being served by another.
type ResponseCache interface {
	Get(ctx context.Context, version, query string, maxResults int) (*model.SearchResponse, error)
	Set(ctx context.Context, version, query string, maxResults int, resp *model.SearchResponse) error
	Close() error
}

// RedisConfig holds Redis connection configuration.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
	Prefix   string
	TTL      time.Duration
}

// RedisCache implements ResponseCache using Redis.
type RedisCache struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

// NewRedisCache connects to Redis and verifies the connection.
func NewRedisCache(ctx context.Context, cfg RedisConfig) (*RedisCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         cfg.Addr,
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping failed: %w", err)
	}

	prefix := cfg.Prefix
	if prefix == "" {
		prefix = "chatsearch:"
	}
	ttl := cfg.TTL
	if ttl <= 0 {
		ttl = 10 * time.Minute
	}

	return &RedisCache{client: client, prefix: prefix, ttl: ttl}, nil
}

// Get returns a previously stored response or ErrCacheMiss.
func (c *RedisCache) Get(ctx context.Context, version, query string, maxResults int) (*model.SearchResponse, error) {
	val, err := c.client.Get(ctx, c.key(version, query, maxResults)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrCacheMiss
	}
	if err != nil {
		return nil, fmt.Errorf("redis get: %w", err)
	}

	var resp model.SearchResponse
	if err := json.Unmarshal(val, &resp); err != nil {
		return nil, fmt.Errorf("decode cached response: %w", err)
	}
	return &resp, nil
}

// Set stores a response with the configured TTL.
func (c *RedisCache) Set(ctx context.Context, version, query string, maxResults int, resp *model.SearchResponse) error {
	data, err := json.Marshal(resp)
	if err != nil {
		return fmt.Errorf("encode response: %w", err)
	}
	if err := c.client.Set(ctx, c.key(version, query, maxResults), data, c.ttl).Err(); err != nil {
		return fmt.Errorf("redis set: %w", err)
	}
	return nil
}

// Close closes the Redis connection.
func (c *RedisCache) Close() error {
	return c.client.Close()
}

// key ignores surrounding whitespace only; case is kept because the parsed
// filter echoes the query's spelling
func (c *RedisCache) key(version, query string, maxResults int) string {
	normalized := strings.TrimSpace(query)
	sum := sha1.Sum([]byte(normalized + "|" + strconv.Itoa(maxResults)))
	return c.prefix + version + ":search:" + hex.EncodeToString(sum[:])
}
