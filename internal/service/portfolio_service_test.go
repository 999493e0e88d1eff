package service

import (
	"context"
	"testing"

	"golang-trade-pilot/internal/dto"
	"golang-trade-pilot/internal/entity"
	"golang-trade-pilot/internal/repository"
	"golang-trade-pilot/internal/testutil"
	"golang-trade-pilot/pkg/apperror"
	"golang-trade-pilot/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newPortfolioService(t *testing.T) (PortfolioService, *mockMarketData) {
	db := testutil.NewSQLiteDB(t)
	market := &mockMarketData{}
	svc := NewPortfolioService(logger.NewNop(),
		repository.NewPositionRepository(db),
		repository.NewTradeRepository(db),
		market)
	return svc, market
}

func TestPortfolioService_AddPosition(t *testing.T) {
	svc, _ := newPortfolioService(t)
	ctx := context.Background()

	t.Run("valid position records a buy", func(t *testing.T) {
		res, err := svc.AddPosition(ctx, dto.CreatePositionRequest{
			StockCode: " 600519 ", StockName: "Moutai", BuyPrice: 10, Quantity: 100, BuyDate: "2024-01-02",
		})
		require.NoError(t, err)
		assert.Equal(t, "600519", res.Position.StockCode)
		assert.Equal(t, entity.PositionStatusOpen, res.Position.Status)
		assert.Equal(t, entity.TradeDirectionBuy, res.Trade.Direction)
		assert.Equal(t, res.Position.ID, res.Trade.PositionID)

		trades, err := svc.ListTrades(ctx, "600519")
		require.NoError(t, err)
		assert.Len(t, trades, 1)
	})

	invalid := []struct {
		name string
		req  dto.CreatePositionRequest
	}{
		{name: "zero price", req: dto.CreatePositionRequest{StockCode: "1", BuyPrice: 0, Quantity: 1}},
		{name: "negative quantity", req: dto.CreatePositionRequest{StockCode: "1", BuyPrice: 1, Quantity: -1}},
		{name: "blank code", req: dto.CreatePositionRequest{BuyPrice: 1, Quantity: 1}},
		{name: "bad date", req: dto.CreatePositionRequest{StockCode: "1", BuyPrice: 1, Quantity: 1, BuyDate: "yesterday"}},
	}
	for _, tt := range invalid {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.AddPosition(ctx, tt.req)
			assert.ErrorIs(t, err, apperror.ErrValidation)
		})
	}
}

func TestPortfolioService_RecordSale(t *testing.T) {
	svc, _ := newPortfolioService(t)
	ctx := context.Background()

	res, err := svc.AddPosition(ctx, dto.CreatePositionRequest{StockCode: "600519", BuyPrice: 10, Quantity: 100})
	require.NoError(t, err)
	id := res.Position.ID

	_, err = svc.RecordSale(ctx, id, dto.RecordSaleRequest{Price: 12, Quantity: 101})
	assert.ErrorIs(t, err, apperror.ErrValidation)

	_, err = svc.RecordSale(ctx, id, dto.RecordSaleRequest{Price: 0, Quantity: 1})
	assert.ErrorIs(t, err, apperror.ErrValidation)

	_, err = svc.RecordSale(ctx, 999, dto.RecordSaleRequest{Price: 12, Quantity: 1})
	assert.ErrorIs(t, err, apperror.ErrNotFound)

	sale, err := svc.RecordSale(ctx, id, dto.RecordSaleRequest{Price: 12, Quantity: 40, Reason: "trim"})
	require.NoError(t, err)
	assert.Equal(t, int64(60), sale.Position.RemainingQuantity)
	assert.Equal(t, entity.PositionStatusOpen, sale.Position.Status)
	assert.Equal(t, dto.PnL{Amount: 80, Percent: 20}, sale.RealizedPnL)

	sale, err = svc.RecordSale(ctx, id, dto.RecordSaleRequest{Price: 9, Quantity: 60})
	require.NoError(t, err)
	assert.Equal(t, entity.PositionStatusClosed, sale.Position.Status)
	assert.NotNil(t, sale.Position.ClosedAt)

	_, err = svc.RecordSale(ctx, id, dto.RecordSaleRequest{Price: 9, Quantity: 1})
	assert.ErrorIs(t, err, apperror.ErrNotFound)

	trades, err := svc.ListTrades(ctx, "")
	require.NoError(t, err)
	var net int64
	for _, tr := range trades {
		if tr.Direction == entity.TradeDirectionBuy {
			net += tr.Quantity
		} else {
			net -= tr.Quantity
		}
	}
	assert.Zero(t, net)
}

func TestPortfolioService_PositionPnL(t *testing.T) {
	svc, market := newPortfolioService(t)
	ctx := context.Background()

	res, err := svc.AddPosition(ctx, dto.CreatePositionRequest{StockCode: "600519", BuyPrice: 10, Quantity: 100})
	require.NoError(t, err)
	other, err := svc.AddPosition(ctx, dto.CreatePositionRequest{StockCode: "000001", BuyPrice: 10, Quantity: 100})
	require.NoError(t, err)

	market.On("GetLatestPrice", mock.Anything, "600519").Return(quote("600519", 12), nil)
	market.On("GetLatestPrice", mock.Anything, "000001").Return(nil, apperror.DataUnavailable("price for 000001 is unavailable"))

	view, err := svc.PositionPnL(ctx, res.Position.ID)
	require.NoError(t, err)
	require.NotNil(t, view.PnL)
	assert.Equal(t, dto.PnL{Amount: 200, Percent: 20}, *view.PnL)
	assert.Equal(t, dto.PnLStatusKnown, view.Status)
	assert.Equal(t, 1200.0, *view.MarketValue)

	view, err = svc.PositionPnL(ctx, other.Position.ID)
	require.NoError(t, err)
	assert.Nil(t, view.PnL)
	assert.Nil(t, view.CurrentPrice)
	assert.Equal(t, dto.PnLStatusUnknown, view.Status)
	assert.NotEmpty(t, view.Error)
}

func TestPortfolioService_Summary(t *testing.T) {
	svc, market := newPortfolioService(t)
	ctx := context.Background()

	a, err := svc.AddPosition(ctx, dto.CreatePositionRequest{StockCode: "000001", StockName: "A", BuyPrice: 10, Quantity: 100})
	require.NoError(t, err)
	_, err = svc.AddPosition(ctx, dto.CreatePositionRequest{StockCode: "000002", BuyPrice: 20, Quantity: 10})
	require.NoError(t, err)
	_, err = svc.RecordSale(ctx, a.Position.ID, dto.RecordSaleRequest{Price: 13, Quantity: 50})
	require.NoError(t, err)

	market.On("GetLatestPrice", mock.Anything, "000001").Return(quote("000001", 12), nil)
	market.On("GetLatestPrice", mock.Anything, "000002").Return(nil, apperror.DataUnavailable("down"))

	summary, err := svc.Summary(ctx)
	require.NoError(t, err)

	assert.Equal(t, 100.0, summary.Unrealized.TotalPnL)
	require.Len(t, summary.Unrealized.Stale, 1)
	assert.Equal(t, "000002", summary.Unrealized.Stale[0].Position.StockCode)

	require.Len(t, summary.Realized, 1)
	assert.Equal(t, dto.RealizedPnL{StockCode: "000001", StockName: "A", Quantity: 50, Amount: 150}, summary.Realized[0])
	assert.Equal(t, 150.0, summary.TotalRealized)
	market.AssertExpectations(t)
}

func TestPortfolioService_ListPositions(t *testing.T) {
	svc, _ := newPortfolioService(t)
	ctx := context.Background()

	_, err := svc.AddPosition(ctx, dto.CreatePositionRequest{StockCode: "000001", BuyPrice: 10, Quantity: 1})
	require.NoError(t, err)

	open := entity.PositionStatusOpen
	positions, err := svc.ListPositions(ctx, &open)
	require.NoError(t, err)
	assert.Len(t, positions, 1)

	bogus := entity.PositionStatus("pending")
	_, err = svc.ListPositions(ctx, &bogus)
	assert.ErrorIs(t, err, apperror.ErrValidation)
}

// racingPositionRepo loses the conditional update a fixed number of times before delegating.
type racingPositionRepo struct {
	repository.PositionRepository
	losses int
	calls  int
}

func (r *racingPositionRepo) ApplySale(ctx context.Context, position *entity.Position, trade *entity.Trade) error {
	r.calls++
	if r.calls <= r.losses {
		return repository.ErrConcurrentUpdate
	}
	return r.PositionRepository.ApplySale(ctx, position, trade)
}

func TestPortfolioService_RecordSaleRetries(t *testing.T) {
	tests := []struct {
		name      string
		losses    int
		wantCalls int
		wantErr   error
	}{
		{name: "succeeds after lost updates", losses: maxSaleAttempts - 1, wantCalls: maxSaleAttempts},
		{name: "gives up with a conflict", losses: maxSaleAttempts, wantCalls: maxSaleAttempts, wantErr: apperror.ErrInvalidState},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db := testutil.NewSQLiteDB(t)
			positions := &racingPositionRepo{PositionRepository: repository.NewPositionRepository(db), losses: tt.losses}
			svc := NewPortfolioService(logger.NewNop(), positions, repository.NewTradeRepository(db), &mockMarketData{})
			ctx := context.Background()

			res, err := svc.AddPosition(ctx, dto.CreatePositionRequest{StockCode: "600519", BuyPrice: 10, Quantity: 100})
			require.NoError(t, err)

			sale, err := svc.RecordSale(ctx, res.Position.ID, dto.RecordSaleRequest{Price: 12, Quantity: 30})
			assert.Equal(t, tt.wantCalls, positions.calls)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Equal(t, "invalid_state", apperror.Code(err))

				stored, getErr := svc.GetPosition(ctx, res.Position.ID)
				require.NoError(t, getErr)
				assert.Equal(t, int64(100), stored.RemainingQuantity)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, int64(70), sale.Position.RemainingQuantity)
		})
	}
}

func TestPortfolioService_PositionPnLSlowFeed(t *testing.T) {
	svc, market := newPortfolioService(t)
	ctx := context.Background()

	res, err := svc.AddPosition(ctx, dto.CreatePositionRequest{StockCode: "AAA", BuyPrice: 10, Quantity: 100})
	require.NoError(t, err)
	market.On("GetLatestPrice", mock.Anything, "AAA").
		Return(nil, apperror.DataUnavailable("price for AAA is unavailable: context deadline exceeded"))

	view, err := svc.PositionPnL(ctx, res.Position.ID)
	require.NoError(t, err)
	assert.Equal(t, dto.PnLStatusUnknown, view.Status)
	assert.Nil(t, view.PnL)
}
