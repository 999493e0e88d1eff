package repository

import (
	"context"

	"golang-trade-pilot/internal/dto"
	"golang-trade-pilot/internal/entity"

	"gorm.io/gorm"
)

// TradeRepository is a read view over the append-only trade log.
type TradeRepository interface {
	Get(ctx context.Context, param dto.GetTradesParam) ([]entity.Trade, error)
}

type tradeRepository struct {
	db *gorm.DB
}

func NewTradeRepository(db *gorm.DB) TradeRepository {
	return &tradeRepository{db: db}
}

func (r *tradeRepository) Get(ctx context.Context, param dto.GetTradesParam) ([]entity.Trade, error) {
	var trades []entity.Trade

	q := r.db.WithContext(ctx).Model(&entity.Trade{})
	if param.StockCode != "" {
		q = q.Where("stock_code = ?", param.StockCode)
	}
	if param.PositionID != nil {
		q = q.Where("position_id = ?", *param.PositionID)
	}

	if err := q.Order("date DESC, id DESC").Find(&trades).Error; err != nil {
		return nil, err
	}
	return trades, nil
}
