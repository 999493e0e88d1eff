package service

import (
	"golang-trade-pilot/internal/dto"
	"golang-trade-pilot/internal/entity"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

func round2(d decimal.Decimal) float64 {
	return d.Round(2).InexactFloat64()
}

// pctChange returns (to - from) / from * 100 rounded to 2dp. from must be positive.
func pctChange(from, to float64) float64 {
	f := decimal.NewFromFloat(from)
	return round2(decimal.NewFromFloat(to).Sub(f).Div(f).Mul(hundred))
}

// priceAtPct returns base * (1 + pct/100) rounded to 2dp.
func priceAtPct(base, pct float64) float64 {
	factor := decimal.NewFromInt(1).Add(decimal.NewFromFloat(pct).Div(hundred))
	return round2(decimal.NewFromFloat(base).Mul(factor))
}

// UnrealizedPnL values the remaining quantity of position at currentPrice.
// ok is false when the price is unknown or not positive; a zero P&L is never substituted.
func UnrealizedPnL(position entity.Position, currentPrice *float64) (pnl dto.PnL, ok bool) {
	if currentPrice == nil || *currentPrice <= 0 || position.BuyPrice <= 0 {
		return dto.PnL{}, false
	}
	buy := decimal.NewFromFloat(position.BuyPrice)
	diff := decimal.NewFromFloat(*currentPrice).Sub(buy)
	return dto.PnL{
		Amount:  round2(diff.Mul(decimal.NewFromInt(position.RemainingQuantity))),
		Percent: round2(diff.Div(buy).Mul(hundred)),
	}, true
}

// RealizedPnL is the result of selling quantity at sellPrice out of a lot bought at buyPrice.
func RealizedPnL(buyPrice, sellPrice float64, quantity int64) dto.PnL {
	buy := decimal.NewFromFloat(buyPrice)
	diff := decimal.NewFromFloat(sellPrice).Sub(buy)
	pnl := dto.PnL{Amount: round2(diff.Mul(decimal.NewFromInt(quantity)))}
	if buy.IsPositive() {
		pnl.Percent = round2(diff.Div(buy).Mul(hundred))
	}
	return pnl
}

// NewPositionPnL builds the API view of a position at currentPrice.
func NewPositionPnL(position entity.Position, currentPrice *float64) dto.PositionPnL {
	out := dto.PositionPnL{Position: position, Status: dto.PnLStatusUnknown}
	pnl, ok := UnrealizedPnL(position, currentPrice)
	if !ok {
		return out
	}
	price := *currentPrice
	marketValue := round2(decimal.NewFromFloat(price).Mul(decimal.NewFromInt(position.RemainingQuantity)))
	out.CurrentPrice = &price
	out.MarketValue = &marketValue
	out.PnL = &pnl
	out.Status = dto.PnLStatusKnown
	return out
}

// AggregatePnL totals the open positions that have a price in prices.
// Open positions without a price are listed as stale and left out of every total.
func AggregatePnL(positions []entity.Position, prices map[string]float64) dto.AggregatePnL {
	out := dto.AggregatePnL{
		Priced: []dto.PositionPnL{},
		Stale:  []dto.PositionPnL{},
	}

	totalCost := decimal.Zero
	totalValue := decimal.Zero
	for _, position := range positions {
		if !position.IsOpen() {
			continue
		}

		var current *float64
		if price, ok := prices[position.StockCode]; ok {
			current = &price
		}
		view := NewPositionPnL(position, current)
		if view.Status != dto.PnLStatusKnown {
			out.Stale = append(out.Stale, view)
			continue
		}

		qty := decimal.NewFromInt(position.RemainingQuantity)
		totalCost = totalCost.Add(decimal.NewFromFloat(position.BuyPrice).Mul(qty))
		totalValue = totalValue.Add(decimal.NewFromFloat(*current).Mul(qty))
		out.Priced = append(out.Priced, view)
	}

	totalPnL := totalValue.Sub(totalCost)
	out.TotalCost = round2(totalCost)
	out.TotalMarketValue = round2(totalValue)
	out.TotalPnL = round2(totalPnL)
	if totalCost.IsPositive() {
		pct := round2(totalPnL.Div(totalCost).Mul(hundred))
		out.TotalPnLPercent = &pct
	}
	return out
}
