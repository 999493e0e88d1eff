package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"golang-trade-pilot/internal/dto"
	"golang-trade-pilot/internal/entity"
	"golang-trade-pilot/internal/repository"
	"golang-trade-pilot/pkg/apperror"
	"golang-trade-pilot/pkg/logger"
	"golang-trade-pilot/pkg/utils"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

const maxSaleAttempts = 3

// PortfolioService is the position ledger.
type PortfolioService interface {
	AddPosition(ctx context.Context, req dto.CreatePositionRequest) (*dto.CreatePositionResult, error)
	RecordSale(ctx context.Context, positionID uint, req dto.RecordSaleRequest) (*dto.SaleResult, error)
	ListPositions(ctx context.Context, status *entity.PositionStatus) ([]entity.Position, error)
	GetPosition(ctx context.Context, id uint) (*entity.Position, error)
	PositionPnL(ctx context.Context, id uint) (*dto.PositionPnL, error)
	ListTrades(ctx context.Context, stockCode string) ([]entity.Trade, error)
	Summary(ctx context.Context) (*dto.PortfolioSummary, error)
}

type portfolioService struct {
	log          *logger.Logger
	positionRepo repository.PositionRepository
	tradeRepo    repository.TradeRepository
	marketData   repository.MarketDataRepository
}

func NewPortfolioService(log *logger.Logger,
	positionRepo repository.PositionRepository,
	tradeRepo repository.TradeRepository,
	marketData repository.MarketDataRepository) PortfolioService {
	return &portfolioService{
		log:          log,
		positionRepo: positionRepo,
		tradeRepo:    tradeRepo,
		marketData:   marketData,
	}
}

func normalizeStockCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

func parseDateOrNow(value string) (time.Time, error) {
	if strings.TrimSpace(value) == "" {
		return utils.TimeNowCST(), nil
	}
	t, err := utils.ParseDate(value)
	if err != nil {
		return time.Time{}, apperror.Validation("invalid date %q", value)
	}
	return t, nil
}

// AddPosition opens a position and records the matching buy trade atomically.
func (s *portfolioService) AddPosition(ctx context.Context, req dto.CreatePositionRequest) (*dto.CreatePositionResult, error) {
	code := normalizeStockCode(req.StockCode)
	if code == "" {
		return nil, apperror.Validation("stock_code is required")
	}
	if req.BuyPrice <= 0 {
		return nil, apperror.Validation("buy_price must be positive, got %v", req.BuyPrice)
	}
	if req.Quantity <= 0 {
		return nil, apperror.Validation("quantity must be positive, got %d", req.Quantity)
	}
	buyDate, err := parseDateOrNow(req.BuyDate)
	if err != nil {
		return nil, err
	}

	position := &entity.Position{
		StockCode:         code,
		StockName:         req.StockName,
		BuyPrice:          req.BuyPrice,
		Quantity:          req.Quantity,
		RemainingQuantity: req.Quantity,
		BuyDate:           buyDate,
		Status:            entity.PositionStatusOpen,
	}
	trade := &entity.Trade{
		Date:      buyDate,
		StockCode: code,
		StockName: req.StockName,
		Direction: entity.TradeDirectionBuy,
		Price:     req.BuyPrice,
		Quantity:  req.Quantity,
		Reason:    "open position",
	}

	if err := s.positionRepo.CreateWithTrade(ctx, position, trade); err != nil {
		s.log.ErrorContext(ctx, "Failed to create position", logger.StringField("stock_code", code), logger.ErrorField(err))
		return nil, fmt.Errorf("create position: %w", err)
	}

	s.log.InfoContext(ctx, "Position opened",
		logger.StringField("stock_code", code),
		logger.Field("position_id", position.ID),
		logger.Field("quantity", position.Quantity))

	return &dto.CreatePositionResult{Position: *position, Trade: *trade}, nil
}

// RecordSale sells part or all of an open position. A concurrent sale on the same position
// is detected by the repository and the sale is re-validated against the fresh row.
func (s *portfolioService) RecordSale(ctx context.Context, positionID uint, req dto.RecordSaleRequest) (*dto.SaleResult, error) {
	if req.Price <= 0 {
		return nil, apperror.Validation("price must be positive, got %v", req.Price)
	}
	if req.Quantity <= 0 {
		return nil, apperror.Validation("quantity must be positive, got %d", req.Quantity)
	}
	date, err := parseDateOrNow(req.Date)
	if err != nil {
		return nil, err
	}

	for attempt := 1; ; attempt++ {
		position, err := s.openPosition(ctx, positionID)
		if err != nil {
			return nil, err
		}
		if req.Quantity > position.RemainingQuantity {
			return nil, apperror.Validation("quantity %d exceeds remaining %d of position %d",
				req.Quantity, position.RemainingQuantity, positionID)
		}

		position.RemainingQuantity -= req.Quantity
		if position.RemainingQuantity == 0 {
			closedAt := date
			position.Status = entity.PositionStatusClosed
			position.ClosedAt = &closedAt
		}
		trade := &entity.Trade{
			Date:      date,
			StockCode: position.StockCode,
			StockName: position.StockName,
			Direction: entity.TradeDirectionSell,
			Price:     req.Price,
			Quantity:  req.Quantity,
			Reason:    req.Reason,
		}

		err = s.positionRepo.ApplySale(ctx, position, trade)
		if errors.Is(err, repository.ErrConcurrentUpdate) && attempt < maxSaleAttempts {
			s.log.WarnContext(ctx, "Position changed during sale, retrying",
				logger.Field("position_id", positionID), logger.IntField("attempt", attempt))
			continue
		}
		if errors.Is(err, repository.ErrConcurrentUpdate) {
			s.log.WarnContext(ctx, "Position kept changing during sale, giving up",
				logger.Field("position_id", positionID), logger.IntField("attempts", attempt))
			return nil, apperror.InvalidState("position %d changed concurrently, retry the sale", positionID)
		}
		if err != nil {
			s.log.ErrorContext(ctx, "Failed to record sale", logger.Field("position_id", positionID), logger.ErrorField(err))
			return nil, fmt.Errorf("record sale: %w", err)
		}

		return &dto.SaleResult{
			Position:    *position,
			Trade:       *trade,
			RealizedPnL: RealizedPnL(position.BuyPrice, req.Price, req.Quantity),
		}, nil
	}
}

func (s *portfolioService) openPosition(ctx context.Context, id uint) (*entity.Position, error) {
	position, err := s.GetPosition(ctx, id)
	if err != nil {
		return nil, err
	}
	if !position.IsOpen() {
		return nil, apperror.NotFound("open position %d not found", id)
	}
	return position, nil
}

func (s *portfolioService) ListPositions(ctx context.Context, status *entity.PositionStatus) ([]entity.Position, error) {
	if status != nil && *status != entity.PositionStatusOpen && *status != entity.PositionStatusClosed {
		return nil, apperror.Validation("unknown position status %q", *status)
	}
	positions, err := s.positionRepo.Get(ctx, dto.GetPositionsParam{Status: status})
	if err != nil {
		return nil, fmt.Errorf("list positions: %w", err)
	}
	return positions, nil
}

func (s *portfolioService) GetPosition(ctx context.Context, id uint) (*entity.Position, error) {
	position, err := s.positionRepo.FindByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperror.NotFound("position %d not found", id)
	}
	if err != nil {
		return nil, fmt.Errorf("get position %d: %w", id, err)
	}
	return position, nil
}

// PositionPnL values one open position at the latest price. A missing price yields an
// unknown P&L with the reason, not an error.
func (s *portfolioService) PositionPnL(ctx context.Context, id uint) (*dto.PositionPnL, error) {
	position, err := s.openPosition(ctx, id)
	if err != nil {
		return nil, err
	}

	quote, err := s.marketData.GetLatestPrice(ctx, position.StockCode)
	if err != nil {
		if !errors.Is(err, apperror.ErrDataUnavailable) {
			return nil, err
		}
		view := NewPositionPnL(*position, nil)
		view.Error = err.Error()
		return &view, nil
	}

	view := NewPositionPnL(*position, &quote.Price)
	return &view, nil
}

func (s *portfolioService) ListTrades(ctx context.Context, stockCode string) ([]entity.Trade, error) {
	trades, err := s.tradeRepo.Get(ctx, dto.GetTradesParam{StockCode: normalizeStockCode(stockCode)})
	if err != nil {
		return nil, fmt.Errorf("list trades: %w", err)
	}
	return trades, nil
}

// Summary values every open position concurrently and adds realized P&L from the trade log.
func (s *portfolioService) Summary(ctx context.Context) (*dto.PortfolioSummary, error) {
	positions, err := s.positionRepo.Get(ctx, dto.GetPositionsParam{})
	if err != nil {
		return nil, fmt.Errorf("load positions: %w", err)
	}

	var codes []string
	seen := make(map[string]bool)
	for _, p := range positions {
		if p.IsOpen() && !seen[p.StockCode] {
			seen[p.StockCode] = true
			codes = append(codes, p.StockCode)
		}
	}

	prices, err := s.fetchPrices(ctx, codes)
	if err != nil {
		return nil, err
	}

	trades, err := s.tradeRepo.Get(ctx, dto.GetTradesParam{})
	if err != nil {
		return nil, fmt.Errorf("load trades: %w", err)
	}
	realized, total := realizedByStock(positions, trades)

	return &dto.PortfolioSummary{
		Unrealized:    AggregatePnL(positions, prices),
		Realized:      realized,
		TotalRealized: total,
	}, nil
}

// fetchPrices fans out latest price lookups. Unavailable symbols are left out of the map.
func (s *portfolioService) fetchPrices(ctx context.Context, codes []string) (map[string]float64, error) {
	results := make([]*float64, len(codes))
	g, gctx := errgroup.WithContext(ctx)
	for i, code := range codes {
		i, code := i, code
		g.Go(func() error {
			quote, err := s.marketData.GetLatestPrice(gctx, code)
			if err != nil {
				if errors.Is(err, context.Canceled) {
					return err
				}
				s.log.WarnContext(gctx, "Price unavailable", logger.StringField("stock_code", code), logger.ErrorField(err))
				return nil
			}
			results[i] = &quote.Price
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	prices := make(map[string]float64, len(codes))
	for i, code := range codes {
		if results[i] != nil {
			prices[code] = *results[i]
		}
	}
	return prices, nil
}

// realizedByStock sums sell proceeds minus the cost of the lot sold, per stock.
func realizedByStock(positions []entity.Position, trades []entity.Trade) ([]dto.RealizedPnL, float64) {
	buyPrice := make(map[uint]float64, len(positions))
	for _, p := range positions {
		buyPrice[p.ID] = p.BuyPrice
	}

	byCode := make(map[string]*dto.RealizedPnL)
	amounts := make(map[string]decimal.Decimal)
	total := decimal.Zero
	for _, t := range trades {
		if t.Direction != entity.TradeDirectionSell {
			continue
		}
		cost, ok := buyPrice[t.PositionID]
		if !ok {
			continue
		}
		amount := decimal.NewFromFloat(t.Price).Sub(decimal.NewFromFloat(cost)).Mul(decimal.NewFromInt(t.Quantity))
		r, ok := byCode[t.StockCode]
		if !ok {
			r = &dto.RealizedPnL{StockCode: t.StockCode, StockName: t.StockName}
			byCode[t.StockCode] = r
		}
		r.Quantity += t.Quantity
		amounts[t.StockCode] = amounts[t.StockCode].Add(amount)
		total = total.Add(amount)
	}

	out := make([]dto.RealizedPnL, 0, len(byCode))
	for code, r := range byCode {
		r.Amount = round2(amounts[code])
		out = append(out, *r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].StockCode < out[j].StockCode })
	return out, round2(total)
}
