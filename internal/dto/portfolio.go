package dto

import (
	"golang-trade-pilot/internal/entity"
)

// CreatePositionRequest is the DTO for adding a position.
type CreatePositionRequest struct {
	StockCode string  `json:"stock_code"`
	StockName string  `json:"stock_name"`
	BuyPrice  float64 `json:"buy_price"`
	Quantity  int64   `json:"quantity"`
	BuyDate   string  `json:"buy_date" example:"2025-03-14"`
}

// RecordSaleRequest is the DTO for selling (part of) a position.
type RecordSaleRequest struct {
	Price    float64 `json:"price"`
	Quantity int64   `json:"quantity"`
	Date     string  `json:"date" example:"2025-04-02"`
	Reason   string  `json:"reason"`
}

// GetPositionsParam filters positions. A nil Status returns every position.
type GetPositionsParam struct {
	IDs        []uint
	StockCodes []string
	Status     *entity.PositionStatus
}

// GetTradesParam filters the trade log.
type GetTradesParam struct {
	StockCode  string
	PositionID *uint
}

// PnL is a computed profit or loss. Nil pointers in responses mean the price is unknown.
type PnL struct {
	Amount  float64 `json:"amount"`
	Percent float64 `json:"percent"`
}

const (
	PnLStatusKnown   = "ok"
	PnLStatusUnknown = "unknown"
)

// PositionPnL is a position together with its unrealized P&L at CurrentPrice.
type PositionPnL struct {
	Position     entity.Position `json:"position"`
	CurrentPrice *float64        `json:"current_price"`
	MarketValue  *float64        `json:"market_value"`
	PnL          *PnL            `json:"pnl"`
	Status       string          `json:"status"`
	Error        string          `json:"error,omitempty"`
}

// AggregatePnL sums P&L over open positions with a known price. Stale lists the rest.
type AggregatePnL struct {
	TotalCost        float64       `json:"total_cost"`
	TotalMarketValue float64       `json:"total_market_value"`
	TotalPnL         float64       `json:"total_pnl"`
	TotalPnLPercent  *float64      `json:"total_pnl_percent"`
	Priced           []PositionPnL `json:"priced"`
	Stale            []PositionPnL `json:"stale"`
}

// RealizedPnL is the realized result of sells for one stock.
type RealizedPnL struct {
	StockCode string  `json:"stock_code"`
	StockName string  `json:"stock_name"`
	Quantity  int64   `json:"quantity"`
	Amount    float64 `json:"amount"`
}

// PortfolioSummary is the response of the portfolio summary endpoint.
type PortfolioSummary struct {
	Unrealized    AggregatePnL  `json:"unrealized"`
	Realized      []RealizedPnL `json:"realized"`
	TotalRealized float64       `json:"total_realized"`
}

// SaleResult is returned after recording a sale.
type SaleResult struct {
	Position    entity.Position `json:"position"`
	Trade       entity.Trade    `json:"trade"`
	RealizedPnL PnL             `json:"realized_pnl"`
}

// CreatePositionResult is returned after adding a position.
type CreatePositionResult struct {
	Position entity.Position `json:"position"`
	Trade    entity.Trade    `json:"trade"`
}
