package repository

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"golang-trade-pilot/internal/dto"
	"golang-trade-pilot/pkg/apperror"
	"golang-trade-pilot/pkg/config"
	"golang-trade-pilot/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memoryLastPrice struct {
	mu     sync.Mutex
	prices map[string]float64
}

func (m *memoryLastPrice) Get(_ context.Context, code string) (float64, time.Time, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.prices[code]
	return p, time.Now(), ok, nil
}

func (m *memoryLastPrice) Set(_ context.Context, code string, price float64, _ time.Time, _ time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.prices[code] = price
	return nil
}

func newMarketServer(t *testing.T, quoteHits *int32) *httptest.Server {
	mux := http.NewServeMux()
	mux.HandleFunc("/quote/600519", func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(quoteHits, 1)
		_ = json.NewEncoder(w).Encode(dto.Quote{Symbol: "600519", Price: 1500.5})
	})
	mux.HandleFunc("/quote/000000", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(dto.Quote{Symbol: "000000", Price: 0})
	})
	mux.HandleFunc("/history/600519", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "2024-01-01", r.URL.Query().Get("start"))
		assert.Equal(t, "2024-01-31", r.URL.Query().Get("end"))
		_ = json.NewEncoder(w).Encode([]dto.PriceBar{{Date: "2024-01-02", Close: 10}, {Date: "2024-01-03", Close: 11}})
	})
	mux.HandleFunc("/sectors", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode([]dto.SectorSnapshot{{Sector: "Coal", Change60D: -15}})
	})
	mux.HandleFunc("/sentiment", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})
	return httptest.NewServer(mux)
}

func TestMarketDataRepository_GetLatestPrice(t *testing.T) {
	var hits int32
	server := newMarketServer(t, &hits)
	defer server.Close()

	lastPrice := &memoryLastPrice{prices: map[string]float64{"000002": 8.8}}
	repo := NewMarketDataRepository(config.MarketData{BaseURL: server.URL, PriceCacheTTL: time.Minute}, lastPrice, logger.NewNop())
	ctx := context.Background()

	t.Run("fetches once then serves from cache", func(t *testing.T) {
		quote, err := repo.GetLatestPrice(ctx, "600519")
		require.NoError(t, err)
		assert.Equal(t, 1500.5, quote.Price)

		_, err = repo.GetLatestPrice(ctx, "600519")
		require.NoError(t, err)
		assert.Equal(t, int32(1), atomic.LoadInt32(&hits))
		assert.Equal(t, 1500.5, lastPrice.prices["600519"])
	})

	t.Run("shared cache hit skips upstream", func(t *testing.T) {
		quote, err := repo.GetLatestPrice(ctx, "000002")
		require.NoError(t, err)
		assert.Equal(t, 8.8, quote.Price)
	})

	t.Run("zero price is unavailable", func(t *testing.T) {
		_, err := repo.GetLatestPrice(ctx, "000000")
		assert.ErrorIs(t, err, apperror.ErrDataUnavailable)
	})

	t.Run("unknown symbol is unavailable", func(t *testing.T) {
		_, err := repo.GetLatestPrice(ctx, "999999")
		assert.ErrorIs(t, err, apperror.ErrDataUnavailable)
	})

	t.Run("blank symbol is a validation error", func(t *testing.T) {
		_, err := repo.GetLatestPrice(ctx, " ")
		assert.ErrorIs(t, err, apperror.ErrValidation)
	})
}

func TestMarketDataRepository_Upstreams(t *testing.T) {
	var hits int32
	server := newMarketServer(t, &hits)
	defer server.Close()

	repo := NewMarketDataRepository(config.MarketData{BaseURL: server.URL + "/"}, nil, logger.NewNop())
	ctx := context.Background()

	bars, err := repo.GetPriceHistory(ctx, dto.GetPriceHistoryParam{
		StockCode: "600519",
		Start:     time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		End:       time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	assert.Len(t, bars, 2)

	_, err = repo.GetPriceHistory(ctx, dto.GetPriceHistoryParam{
		StockCode: "600519",
		Start:     time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
		End:       time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	})
	assert.ErrorIs(t, err, apperror.ErrValidation)

	sectors, err := repo.GetSectorSnapshots(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Coal", sectors[0].Sector)

	_, err = repo.GetMarketSentiment(ctx)
	assert.ErrorIs(t, err, apperror.ErrDataUnavailable)
}

func TestEvaluatorRepository(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/evaluate/600519", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(dto.EvaluationResult{StockCode: "600519", SupportPrice: 50, StopLossConditions: []string{"break_ma20"}})
	})
	mux.HandleFunc("/conditions", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		var req dto.ConditionEvaluationRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, []string{"break_ma20"}, req.StopLoss)
		_, _ = w.Write([]byte(`{"stop_loss":{"break_ma20":true}}`))
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	repo := NewEvaluatorRepository(config.Evaluator{BaseURL: server.URL, MaxRequestPerMinute: 6000}, logger.NewNop())
	ctx := context.Background()

	result, err := repo.Evaluate(ctx, "600519")
	require.NoError(t, err)
	assert.Equal(t, 50.0, result.SupportPrice)

	verdicts, err := repo.EvaluateConditions(ctx, dto.ConditionEvaluationRequest{StockCode: "600519", StopLoss: []string{"break_ma20"}})
	require.NoError(t, err)
	assert.True(t, verdicts.StopLoss["break_ma20"])
	assert.NotNil(t, verdicts.TakeProfit)

	_, err = repo.Evaluate(ctx, "000000")
	assert.ErrorIs(t, err, apperror.ErrDataUnavailable)
}

func TestMarketDataRepository_SlowUpstream(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-time.After(300 * time.Millisecond):
		case <-r.Context().Done():
			return
		}
		_ = json.NewEncoder(w).Encode(dto.Quote{Symbol: "AAA", Price: 10})
	}))
	defer server.Close()

	repo := NewMarketDataRepository(config.MarketData{BaseURL: server.URL, Timeout: 50 * time.Millisecond}, nil, logger.NewNop())

	t.Run("client timeout is data unavailable", func(t *testing.T) {
		_, err := repo.GetLatestPrice(context.Background(), "AAA")
		require.Error(t, err)
		assert.ErrorIs(t, err, apperror.ErrDataUnavailable)
		assert.Equal(t, "data_unavailable", apperror.Code(err))
	})

	t.Run("cancelled caller passes through", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := repo.GetLatestPrice(ctx, "AAA")
		assert.ErrorIs(t, err, context.Canceled)
		assert.NotErrorIs(t, err, apperror.ErrDataUnavailable)
	})

	t.Run("evaluator timeout is data unavailable", func(t *testing.T) {
		evaluator := NewEvaluatorRepository(config.Evaluator{BaseURL: server.URL, Timeout: 50 * time.Millisecond}, logger.NewNop())
		_, err := evaluator.Evaluate(context.Background(), "AAA")
		assert.ErrorIs(t, err, apperror.ErrDataUnavailable)
	})
}
