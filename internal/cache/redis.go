package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Domenick1991/flightbooking/config"
	"github.com/Domenick1991/flightbooking/internal/domain"
	"github.com/redis/go-redis/v9"
)

type RedisCache struct {
	client    *redis.Client
	searchTTL time.Duration
	tokenTTL  time.Duration
}

func NewRedisCache(cfg config.RedisConfig, searchTTL, tokenTTL time.Duration) *RedisCache {
	return &RedisCache{
		client:    redis.NewClient(&redis.Options{Addr: cfg.Addr, Password: cfg.Password, DB: cfg.DB}),
		searchTTL: searchTTL,
		tokenTTL:  tokenTTL,
	}
}

// GetSearch returns the cached result for a departure-time search, or nil
// on a miss.
func (c *RedisCache) GetSearch(ctx context.Context, departureTime string) ([]domain.Flight, error) {
	data, err := c.client.Get(ctx, searchKey(departureTime)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, err
	}

	var flights []domain.Flight
	if err := json.Unmarshal(data, &flights); err != nil {
		return nil, err
	}
	return flights, nil
}

func (c *RedisCache) SetSearch(ctx context.Context, departureTime string, flights []domain.Flight) error {
	payload, err := json.Marshal(flights)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, searchKey(departureTime), payload, c.searchTTL).Err()
}

// InvalidateSearch drops every cached search result. Called when flights
// are added, removed or booked; per-key invalidation is not worth the
// bookkeeping at this catalog size.
func (c *RedisCache) InvalidateSearch(ctx context.Context) error {
	iter := c.client.Scan(ctx, 0, "cache:search:*", 0).Iterator()
	for iter.Next(ctx) {
		if err := c.client.Del(ctx, iter.Val()).Err(); err != nil {
			return err
		}
	}
	return iter.Err()
}

// StoreAdminToken records an issued admin token with its TTL.
func (c *RedisCache) StoreAdminToken(ctx context.Context, token string, adminID int64) error {
	return c.client.Set(ctx, tokenKey(token), adminID, c.tokenTTL).Err()
}

// LookupAdminToken returns the admin id a token was issued to, or false
// when the token is unknown or expired.
func (c *RedisCache) LookupAdminToken(ctx context.Context, token string) (int64, bool, error) {
	id, err := c.client.Get(ctx, tokenKey(token)).Int64()
	if err != nil {
		if err == redis.Nil {
			return 0, false, nil
		}
		return 0, false, err
	}
	return id, true, nil
}

func searchKey(departureTime string) string {
	return fmt.Sprintf("cache:search:%s", departureTime)
}

func tokenKey(token string) string {
	return fmt.Sprintf("auth:admin:%s", token)
}
