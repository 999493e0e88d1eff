package repository

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"golang-trade-pilot/pkg/common"

	"github.com/redis/go-redis/v9"
)

// LastPriceRepository is a cross process cache of latest prices keyed by stock code.
type LastPriceRepository interface {
	Get(ctx context.Context, stockCode string) (price float64, at time.Time, found bool, err error)
	Set(ctx context.Context, stockCode string, price float64, at time.Time, ttl time.Duration) error
}

type lastPriceRepository struct {
	redisClient *redis.Client
}

func NewLastPriceRepository(redisClient *redis.Client) LastPriceRepository {
	return &lastPriceRepository{redisClient: redisClient}
}

func (r *lastPriceRepository) Get(ctx context.Context, stockCode string) (float64, time.Time, bool, error) {
	values, err := r.redisClient.HGetAll(ctx, fmt.Sprintf(common.RedisKeyLastPrice, stockCode)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, time.Time{}, false, nil
		}
		return 0, time.Time{}, false, err
	}
	if len(values) == 0 {
		return 0, time.Time{}, false, nil
	}

	price, err := strconv.ParseFloat(values["price"], 64)
	if err != nil {
		return 0, time.Time{}, false, fmt.Errorf("invalid cached price for %s: %w", stockCode, err)
	}
	ts, err := strconv.ParseInt(values["timestamp"], 10, 64)
	if err != nil {
		return 0, time.Time{}, false, fmt.Errorf("invalid cached timestamp for %s: %w", stockCode, err)
	}
	return price, time.Unix(ts, 0), true, nil
}

func (r *lastPriceRepository) Set(ctx context.Context, stockCode string, price float64, at time.Time, ttl time.Duration) error {
	key := fmt.Sprintf(common.RedisKeyLastPrice, stockCode)
	pipe := r.redisClient.Pipeline()
	pipe.HSet(ctx, key, map[string]interface{}{
		"price":     price,
		"timestamp": at.Unix(),
	})
	pipe.Expire(ctx, key, ttl)
	_, err := pipe.Exec(ctx)
	return err
}
