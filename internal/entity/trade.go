package entity

import "time"

type TradeDirection string

const (
	TradeDirectionBuy  TradeDirection = "buy"
	TradeDirectionSell TradeDirection = "sell"
)

// Trade is an executed buy or sell. Rows are only ever inserted.
type Trade struct {
	ID         uint           `gorm:"primaryKey" json:"id"`
	PositionID uint           `gorm:"not null;index" json:"position_id"`
	Date       time.Time      `gorm:"not null" json:"date"`
	StockCode  string         `gorm:"type:varchar(20);not null;index" json:"stock_code"`
	StockName  string         `gorm:"type:varchar(100)" json:"stock_name"`
	Direction  TradeDirection `gorm:"type:varchar(4);not null" json:"direction"`
	Price      float64        `gorm:"not null" json:"price"`
	Quantity   int64          `gorm:"not null" json:"quantity"`
	Reason     string         `gorm:"type:text" json:"reason"`
	CreatedAt  time.Time      `gorm:"autoCreateTime" json:"created_at"`
}

func (Trade) TableName() string {
	return "trades"
}
