package dto

import "time"

// Quote is the latest price of a symbol returned by the market data service.
type Quote struct {
	Symbol    string    `json:"symbol"`
	Price     float64   `json:"price"`
	Timestamp time.Time `json:"timestamp"`
}

// PriceBar is one daily close.
type PriceBar struct {
	Date   string  `json:"date"`
	Close  float64 `json:"close"`
	Volume int64   `json:"volume"`
}

// GetPriceHistoryParam filters the history request.
type GetPriceHistoryParam struct {
	StockCode string
	Start     time.Time
	End       time.Time
}

// SectorSnapshot is the per sector aggregate used by rotation analysis.
type SectorSnapshot struct {
	Sector    string  `json:"sector"`
	Change5D  float64 `json:"change_5d"`
	Change20D float64 `json:"change_20d"`
	Change60D float64 `json:"change_60d"`
	AvgPB     float64 `json:"avg_pb"`
	AvgPE     float64 `json:"avg_pe"`
	// IndexCode is the sector index symbol, used to derive a return the feed left out.
	IndexCode string `json:"index_code,omitempty"`
}

type SentimentScore struct {
	Label string  `json:"label"`
	Score float64 `json:"score"`
}

type NorthboundFlow struct {
	Net5D float64 `json:"net_5d"`
}

type MarginFlow struct {
	DailyChange float64 `json:"daily_change"`
}

type ETFFlow struct {
	Net5D float64 `json:"net_5d"`
}

// MarketSentiment is the sentiment and fund flow snapshot supplied upstream.
type MarketSentiment struct {
	Sentiment  SentimentScore     `json:"sentiment"`
	Northbound NorthboundFlow     `json:"northbound"`
	Margin     MarginFlow         `json:"margin"`
	ETF        map[string]ETFFlow `json:"etf"`
}
