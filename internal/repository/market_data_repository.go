package repository

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang-trade-pilot/internal/dto"
	"golang-trade-pilot/pkg/apperror"
	"golang-trade-pilot/pkg/config"
	"golang-trade-pilot/pkg/logger"
	"golang-trade-pilot/pkg/utils"

	"github.com/patrickmn/go-cache"
)

// MarketDataRepository is the price feed: latest quotes, daily history, sector snapshots and sentiment.
// Missing data is reported as a DataUnavailable error, never as a zero price.
type MarketDataRepository interface {
	GetLatestPrice(ctx context.Context, stockCode string) (*dto.Quote, error)
	GetPriceHistory(ctx context.Context, param dto.GetPriceHistoryParam) ([]dto.PriceBar, error)
	GetSectorSnapshots(ctx context.Context) ([]dto.SectorSnapshot, error)
	GetMarketSentiment(ctx context.Context) (*dto.MarketSentiment, error)
}

type marketDataRepository struct {
	cfg        config.MarketData
	log        *logger.Logger
	client     *jsonClient
	priceCache *cache.Cache
	lastPrice  LastPriceRepository
}

// NewMarketDataRepository builds the adapter. lastPrice may be nil when Redis is not configured.
func NewMarketDataRepository(cfg config.MarketData, lastPrice LastPriceRepository, log *logger.Logger) MarketDataRepository {
	ttl := cfg.PriceCacheTTL
	if ttl <= 0 {
		ttl = 30 * time.Second
	}
	cfg.PriceCacheTTL = ttl
	return &marketDataRepository{
		cfg:        cfg,
		log:        log,
		client:     newJSONClient("market_data", strings.TrimRight(cfg.BaseURL, "/"), cfg.MaxRequestPerMinute, cfg.Timeout, log),
		priceCache: cache.New(ttl, 2*ttl),
		lastPrice:  lastPrice,
	}
}

func (r *marketDataRepository) GetLatestPrice(ctx context.Context, stockCode string) (*dto.Quote, error) {
	stockCode = strings.ToUpper(strings.TrimSpace(stockCode))
	if stockCode == "" {
		return nil, apperror.Validation("stock code is required")
	}

	if cached, ok := r.priceCache.Get(stockCode); ok {
		quote := cached.(dto.Quote)
		return &quote, nil
	}

	if r.lastPrice != nil {
		price, at, found, err := r.lastPrice.Get(ctx, stockCode)
		if err != nil {
			r.log.WarnContext(ctx, "Failed to read last price cache",
				logger.StringField("stock_code", stockCode), logger.ErrorField(err))
		}
		if found && price > 0 {
			quote := dto.Quote{Symbol: stockCode, Price: price, Timestamp: at}
			r.priceCache.SetDefault(stockCode, quote)
			return &quote, nil
		}
	}

	var quote dto.Quote
	if err := r.client.do(ctx, http.MethodGet, "/quote/"+url.PathEscape(stockCode), nil, &quote); err != nil {
		return nil, unavailable(ctx, err, "price for %s", stockCode)
	}
	if quote.Price <= 0 {
		return nil, apperror.DataUnavailable("price for %s is unavailable", stockCode)
	}
	if quote.Symbol == "" {
		quote.Symbol = stockCode
	}
	if quote.Timestamp.IsZero() {
		quote.Timestamp = utils.TimeNowCST()
	}

	r.priceCache.SetDefault(stockCode, quote)
	if r.lastPrice != nil {
		if err := r.lastPrice.Set(ctx, stockCode, quote.Price, quote.Timestamp, r.cfg.PriceCacheTTL); err != nil {
			r.log.WarnContext(ctx, "Failed to write last price cache",
				logger.StringField("stock_code", stockCode), logger.ErrorField(err))
		}
	}
	return &quote, nil
}

func (r *marketDataRepository) GetPriceHistory(ctx context.Context, param dto.GetPriceHistoryParam) ([]dto.PriceBar, error) {
	stockCode := strings.ToUpper(strings.TrimSpace(param.StockCode))
	if stockCode == "" {
		return nil, apperror.Validation("stock code is required")
	}

	end := param.End
	if end.IsZero() {
		end = utils.TimeNowCST()
	}
	start := param.Start
	if start.IsZero() {
		lookback := r.cfg.HistoryLookbackDays
		if lookback <= 0 {
			lookback = 120
		}
		start = end.AddDate(0, 0, -lookback)
	}
	if start.After(end) {
		return nil, apperror.Validation("start %s is after end %s", start.Format(utils.DateLayout), end.Format(utils.DateLayout))
	}

	query := url.Values{}
	query.Set("start", start.Format(utils.DateLayout))
	query.Set("end", end.Format(utils.DateLayout))

	var bars []dto.PriceBar
	if err := r.client.do(ctx, http.MethodGet, "/history/"+url.PathEscape(stockCode)+"?"+query.Encode(), nil, &bars); err != nil {
		return nil, unavailable(ctx, err, "price history for %s", stockCode)
	}
	if len(bars) == 0 {
		return nil, apperror.DataUnavailable("price history for %s is unavailable", stockCode)
	}
	return bars, nil
}

func (r *marketDataRepository) GetSectorSnapshots(ctx context.Context) ([]dto.SectorSnapshot, error) {
	var sectors []dto.SectorSnapshot
	if err := r.client.do(ctx, http.MethodGet, "/sectors", nil, &sectors); err != nil {
		return nil, unavailable(ctx, err, "sector snapshots")
	}
	return sectors, nil
}

func (r *marketDataRepository) GetMarketSentiment(ctx context.Context) (*dto.MarketSentiment, error) {
	var sentiment dto.MarketSentiment
	if err := r.client.do(ctx, http.MethodGet, "/sentiment", nil, &sentiment); err != nil {
		return nil, unavailable(ctx, err, "market sentiment")
	}
	return &sentiment, nil
}

// unavailable turns an upstream failure into a DataUnavailable error. Only a done caller context
// passes through as is; a client timeout against a slow upstream is still missing data.
func unavailable(ctx context.Context, err error, format string, args ...interface{}) error {
	if ctxErr := ctx.Err(); ctxErr != nil {
		return ctxErr
	}
	var se *statusError
	if errors.As(err, &se) && se.StatusCode == http.StatusNotFound {
		return apperror.DataUnavailable(format+" not found upstream", args...)
	}
	return apperror.DataUnavailable(format+" is unavailable: %v", append(args, err)...)
}
