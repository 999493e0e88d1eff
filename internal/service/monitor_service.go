package service

import (
	"context"
	"errors"

	"golang-trade-pilot/internal/dto"
	"golang-trade-pilot/internal/entity"
	"golang-trade-pilot/internal/repository"
	"golang-trade-pilot/pkg/apperror"
	"golang-trade-pilot/pkg/logger"

	"golang.org/x/sync/errgroup"
)

// MonitorService runs EvaluatePlan against live data. It never writes.
type MonitorService interface {
	Monitor(ctx context.Context, planID uint) (*dto.MonitorResult, error)
	MonitorPlan(ctx context.Context, plan entity.TradePlan) (*dto.MonitorResult, error)
	MonitorActive(ctx context.Context) ([]dto.MonitorBatchItem, error)
}

type monitorService struct {
	log           *logger.Logger
	tradePlans    TradePlanService
	marketData    repository.MarketDataRepository
	evaluatorRepo repository.EvaluatorRepository
}

func NewMonitorService(log *logger.Logger,
	tradePlans TradePlanService,
	marketData repository.MarketDataRepository,
	evaluatorRepo repository.EvaluatorRepository) MonitorService {
	return &monitorService{
		log:           log,
		tradePlans:    tradePlans,
		marketData:    marketData,
		evaluatorRepo: evaluatorRepo,
	}
}

func (s *monitorService) Monitor(ctx context.Context, planID uint) (*dto.MonitorResult, error) {
	plan, err := s.tradePlans.GetPlan(ctx, planID)
	if err != nil {
		return nil, err
	}
	return s.MonitorPlan(ctx, *plan)
}

func (s *monitorService) MonitorPlan(ctx context.Context, plan entity.TradePlan) (*dto.MonitorResult, error) {
	if plan.Status != entity.PlanStatusActive {
		return nil, apperror.InvalidState("trade plan %d is %s, only active plans can be monitored", plan.ID, plan.Status)
	}

	quote, err := s.marketData.GetLatestPrice(ctx, plan.StockCode)
	if err != nil {
		return nil, err
	}

	in := MonitorInput{Plan: plan, CurrentPrice: quote.Price}

	stopNames := plan.StopLossConditionNames()
	profitNames := plan.TakeProfitConditionNames()
	if len(stopNames)+len(profitNames) == 0 {
		in.Verdicts = &dto.ConditionEvaluationResult{StopLoss: map[string]bool{}, TakeProfit: map[string]bool{}}
	} else {
		verdicts, err := s.evaluatorRepo.EvaluateConditions(ctx, dto.ConditionEvaluationRequest{
			StockCode:  plan.StockCode,
			StopLoss:   stopNames,
			TakeProfit: profitNames,
		})
		if err != nil {
			if errors.Is(err, context.Canceled) {
				return nil, err
			}
			s.log.WarnContext(ctx, "Condition verdicts unavailable, falling back to price rules",
				logger.Field("plan_id", plan.ID), logger.StringField("stock_code", plan.StockCode), logger.ErrorField(err))
		} else {
			in.Verdicts = verdicts
		}
	}

	return EvaluatePlan(in)
}

// MonitorActive monitors every active plan concurrently. A failing plan is reported in its own
// item and does not stop the others.
func (s *monitorService) MonitorActive(ctx context.Context) ([]dto.MonitorBatchItem, error) {
	active := entity.PlanStatusActive
	plans, err := s.tradePlans.ListPlans(ctx, &active)
	if err != nil {
		return nil, err
	}

	items := make([]dto.MonitorBatchItem, len(plans))
	g, gctx := errgroup.WithContext(ctx)
	for i := range plans {
		i := i
		g.Go(func() error {
			plan := plans[i]
			items[i] = dto.MonitorBatchItem{PlanID: plan.ID, StockCode: plan.StockCode}
			result, err := s.MonitorPlan(gctx, plan)
			if err != nil {
				if errors.Is(err, context.Canceled) {
					return err
				}
				items[i].Error = err.Error()
				items[i].ErrorCode = apperror.Code(err)
				return nil
			}
			items[i].Result = result
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return items, nil
}
