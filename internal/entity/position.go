package entity

import "time"

type PositionStatus string

const (
	PositionStatusOpen   PositionStatus = "open"
	PositionStatusClosed PositionStatus = "closed"
)

// Position is a single equity holding. Quantity is the bought quantity, RemainingQuantity
// what is still held after partial sales.
type Position struct {
	ID                uint           `gorm:"primaryKey" json:"id"`
	StockCode         string         `gorm:"type:varchar(20);not null;index" json:"stock_code"`
	StockName         string         `gorm:"type:varchar(100)" json:"stock_name"`
	BuyPrice          float64        `gorm:"not null" json:"buy_price"`
	Quantity          int64          `gorm:"not null" json:"quantity"`
	RemainingQuantity int64          `gorm:"not null" json:"remaining_quantity"`
	BuyDate           time.Time      `gorm:"not null" json:"buy_date"`
	Status            PositionStatus `gorm:"type:varchar(10);not null;default:open;index" json:"status"`
	ClosedAt          *time.Time     `json:"closed_at,omitempty"`
	CreatedAt         time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt         time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Position) TableName() string {
	return "positions"
}

func (p Position) IsOpen() bool {
	return p.Status == PositionStatusOpen
}
