package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"golang-trade-pilot/pkg/common"

	"github.com/redis/go-redis/v9"
)

// PlanAlertEvent is published to the alert stream when a plan branch triggers.
type PlanAlertEvent struct {
	PlanID       uint      `json:"plan_id"`
	StockCode    string    `json:"stock_code"`
	Branch       string    `json:"branch"`
	CurrentPrice float64   `json:"current_price"`
	PnLPct       float64   `json:"pnl_pct"`
	TriggeredAt  time.Time `json:"triggered_at"`
}

// AlertStateRepository remembers the last alerted price per plan and branch and publishes events.
type AlertStateRepository interface {
	GetLastAlertPrice(ctx context.Context, branch string, planID uint) (float64, bool, error)
	SetLastAlertPrice(ctx context.Context, branch string, planID uint, price float64, ttl time.Duration) error
	Publish(ctx context.Context, event PlanAlertEvent) error
}

type alertStateRepository struct {
	redisClient  *redis.Client
	streamMaxLen int64
}

func NewAlertStateRepository(redisClient *redis.Client, streamMaxLen int64) AlertStateRepository {
	if streamMaxLen <= 0 {
		streamMaxLen = common.RedisStreamAlertMaxLen
	}
	return &alertStateRepository{redisClient: redisClient, streamMaxLen: streamMaxLen}
}

func (r *alertStateRepository) GetLastAlertPrice(ctx context.Context, branch string, planID uint) (float64, bool, error) {
	value, err := r.redisClient.Get(ctx, fmt.Sprintf(common.RedisKeyPlanAlert, branch, planID)).Result()
	if errors.Is(err, redis.Nil) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}
	price, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, false, err
	}
	return price, true, nil
}

func (r *alertStateRepository) SetLastAlertPrice(ctx context.Context, branch string, planID uint, price float64, ttl time.Duration) error {
	return r.redisClient.Set(ctx, fmt.Sprintf(common.RedisKeyPlanAlert, branch, planID), price, ttl).Err()
}

func (r *alertStateRepository) Publish(ctx context.Context, event PlanAlertEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}
	return r.redisClient.XAdd(ctx, &redis.XAddArgs{
		Stream: common.RedisStreamPlanAlert,
		Values: map[string]interface{}{"payload": payload},
		MaxLen: r.streamMaxLen,
		Approx: true,
	}).Err()
}
