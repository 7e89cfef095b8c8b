// Package cache contém o cache de preços calculados em Redis.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"github.com/vfg2006/menu-pricing-api/internal/domain"
)

const priceKeyPrefix = "pricing:breakdown:"

// NewRedis cria e valida uma conexão go-redis
func NewRedis(ctx context.Context, redisURL string) (*redis.Client, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao interpretar a URL do Redis")
	}

	rdb := redis.NewClient(opts)

	// Valida a conectividade na inicialização
	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, errors.Wrap(err, "erro ao conectar ao Redis")
	}

	return rdb, nil
}

type PriceCache interface {
	GetBreakdown(ctx context.Context, dishID string) (*domain.PriceBreakdown, error)
	SetBreakdown(ctx context.Context, breakdown *domain.PriceBreakdown) error
	InvalidateDish(ctx context.Context, dishID string) error
}

type redisPriceCache struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewPriceCache(rdb *redis.Client, ttl time.Duration) PriceCache {
	return &redisPriceCache{
		rdb: rdb,
		ttl: ttl,
	}
}

// GetBreakdown retorna o breakdown em cache ou (nil, nil) quando ausente
func (c *redisPriceCache) GetBreakdown(ctx context.Context, dishID string) (*domain.PriceBreakdown, error) {
	payload, err := c.rdb.Get(ctx, priceKey(dishID)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, errors.Wrap(err, "erro ao ler breakdown do cache")
	}

	breakdown := &domain.PriceBreakdown{}
	if err := json.Unmarshal(payload, breakdown); err != nil {
		return nil, errors.Wrap(err, "erro ao decodificar breakdown do cache")
	}

	return breakdown, nil
}

func (c *redisPriceCache) SetBreakdown(ctx context.Context, breakdown *domain.PriceBreakdown) error {
	payload, err := json.Marshal(breakdown)
	if err != nil {
		return errors.Wrap(err, "erro ao codificar breakdown para o cache")
	}

	if err := c.rdb.Set(ctx, priceKey(breakdown.DishID), payload, c.ttl).Err(); err != nil {
		return errors.Wrap(err, "erro ao gravar breakdown no cache")
	}

	return nil
}

func (c *redisPriceCache) InvalidateDish(ctx context.Context, dishID string) error {
	if err := c.rdb.Del(ctx, priceKey(dishID)).Err(); err != nil {
		return errors.Wrap(err, "erro ao invalidar breakdown no cache")
	}

	return nil
}

func priceKey(dishID string) string {
	return fmt.Sprintf("%s%s", priceKeyPrefix, dishID)
}
