package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Domenick1991/skyreserve/config"
	"github.com/Domenick1991/skyreserve/internal/domain"
	"github.com/redis/go-redis/v9"
)

// RedisCache stores flight search results keyed by the (origin, destination)
// filter pair. Every cached key is tracked in an index set so booking
// mutations can drop all searches at once.
type RedisCache struct {
	client    *redis.Client
	searchTTL time.Duration
}

func NewRedisCache(cfg config.RedisConfig, searchTTL time.Duration) *RedisCache {
	return &RedisCache{
		client:    redis.NewClient(&redis.Options{Addr: cfg.Addr, Password: cfg.Password, DB: cfg.DB}),
		searchTTL: searchTTL,
	}
}

func (c *RedisCache) GetSearch(ctx context.Context, origin, destination string) ([]domain.Flight, error) {
	data, err := c.client.Get(ctx, searchKey(origin, destination)).Bytes()
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

func (c *RedisCache) SetSearch(ctx context.Context, origin, destination string, flights []domain.Flight) error {
	payload, err := json.Marshal(flights)
	if err != nil {
		return err
	}

	key := searchKey(origin, destination)
	pipe := c.client.TxPipeline()
	pipe.Set(ctx, key, payload, c.searchTTL)
	pipe.SAdd(ctx, searchIndexKey(), key)
	_, err = pipe.Exec(ctx)
	return err
}

func (c *RedisCache) InvalidateSearches(ctx context.Context) error {
	keys, err := c.client.SMembers(ctx, searchIndexKey()).Result()
	if err != nil {
		return err
	}
	keys = append(keys, searchIndexKey())
	return c.client.Del(ctx, keys...).Err()
}

func searchKey(origin, destination string) string {
	return fmt.Sprintf("cache:flights:search:%s|%s", origin, destination)
}

func searchIndexKey() string {
	return "cache:flights:searches"
}
