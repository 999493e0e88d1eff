package service

import (
	"context"

	"golang-trade-pilot/internal/dto"

	"github.com/stretchr/testify/mock"
)

type mockMarketData struct {
	mock.Mock
}

func (m *mockMarketData) GetLatestPrice(ctx context.Context, stockCode string) (*dto.Quote, error) {
	args := m.Called(ctx, stockCode)
	if q, ok := args.Get(0).(*dto.Quote); ok {
		return q, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockMarketData) GetPriceHistory(ctx context.Context, param dto.GetPriceHistoryParam) ([]dto.PriceBar, error) {
	args := m.Called(ctx, param)
	bars, _ := args.Get(0).([]dto.PriceBar)
	return bars, args.Error(1)
}

func (m *mockMarketData) GetSectorSnapshots(ctx context.Context) ([]dto.SectorSnapshot, error) {
	args := m.Called(ctx)
	sectors, _ := args.Get(0).([]dto.SectorSnapshot)
	return sectors, args.Error(1)
}

func (m *mockMarketData) GetMarketSentiment(ctx context.Context) (*dto.MarketSentiment, error) {
	args := m.Called(ctx)
	s, _ := args.Get(0).(*dto.MarketSentiment)
	return s, args.Error(1)
}

type mockEvaluator struct {
	mock.Mock
}

func (m *mockEvaluator) Evaluate(ctx context.Context, stockCode string) (*dto.EvaluationResult, error) {
	args := m.Called(ctx, stockCode)
	r, _ := args.Get(0).(*dto.EvaluationResult)
	return r, args.Error(1)
}

func (m *mockEvaluator) EvaluateConditions(ctx context.Context, req dto.ConditionEvaluationRequest) (*dto.ConditionEvaluationResult, error) {
	args := m.Called(ctx, req)
	r, _ := args.Get(0).(*dto.ConditionEvaluationResult)
	return r, args.Error(1)
}

func quote(code string, price float64) *dto.Quote {
	return &dto.Quote{Symbol: code, Price: price}
}
