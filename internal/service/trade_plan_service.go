package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"golang-trade-pilot/internal/dto"
	"golang-trade-pilot/internal/entity"
	"golang-trade-pilot/internal/repository"
	"golang-trade-pilot/pkg/apperror"
	"golang-trade-pilot/pkg/config"
	"golang-trade-pilot/pkg/logger"
	"golang-trade-pilot/pkg/utils"

	"gorm.io/gorm"
)

// TradePlanService owns the plan lifecycle: planning -> active -> completed, with cancellation
// allowed from planning and active.
type TradePlanService interface {
	EvaluateStock(ctx context.Context, stockCode string) (*dto.EvaluationResult, error)
	CreatePlan(ctx context.Context, req dto.CreatePlanRequest) (*entity.TradePlan, *dto.EvaluationResult, error)
	Activate(ctx context.Context, id uint, req dto.ActivatePlanRequest) (*entity.TradePlan, error)
	Close(ctx context.Context, id uint, outcome string) (*entity.TradePlan, error)
	Delete(ctx context.Context, id uint) error
	GetPlan(ctx context.Context, id uint) (*entity.TradePlan, error)
	ListPlans(ctx context.Context, status *entity.PlanStatus) ([]entity.TradePlan, error)
}

type tradePlanService struct {
	cfg           config.TradePlan
	log           *logger.Logger
	tradePlanRepo repository.TradePlanRepository
	evaluatorRepo repository.EvaluatorRepository
}

func NewTradePlanService(cfg config.TradePlan, log *logger.Logger,
	tradePlanRepo repository.TradePlanRepository,
	evaluatorRepo repository.EvaluatorRepository) TradePlanService {
	return &tradePlanService{
		cfg:           cfg,
		log:           log,
		tradePlanRepo: tradePlanRepo,
		evaluatorRepo: evaluatorRepo,
	}
}

func (s *tradePlanService) EvaluateStock(ctx context.Context, stockCode string) (*dto.EvaluationResult, error) {
	code := normalizeStockCode(stockCode)
	if code == "" {
		return nil, apperror.Validation("stock_code is required")
	}
	result, err := s.evaluatorRepo.Evaluate(ctx, code)
	if err != nil {
		s.log.ErrorContext(ctx, "Failed to evaluate stock", logger.StringField("stock_code", code), logger.ErrorField(err))
		return nil, err
	}
	return result, nil
}

// CreatePlan evaluates the stock and stores a new plan in planning built from the evaluation
// and the request overrides.
func (s *tradePlanService) CreatePlan(ctx context.Context, req dto.CreatePlanRequest) (*entity.TradePlan, *dto.EvaluationResult, error) {
	evaluation, err := s.EvaluateStock(ctx, req.StockCode)
	if err != nil {
		return nil, nil, err
	}

	plan, err := BuildPlan(*evaluation, req, s.cfg)
	if err != nil {
		return nil, nil, err
	}

	if err := s.tradePlanRepo.Create(ctx, plan); err != nil {
		s.log.ErrorContext(ctx, "Failed to create trade plan", logger.StringField("stock_code", plan.StockCode), logger.ErrorField(err))
		return nil, nil, fmt.Errorf("create trade plan: %w", err)
	}

	s.log.InfoContext(ctx, "Trade plan created",
		logger.Field("plan_id", plan.ID),
		logger.StringField("stock_code", plan.StockCode),
		logger.FloatField("entry_target_price", plan.EntryTargetPrice))
	return plan, evaluation, nil
}

// BuildPlan merges overrides over an evaluation and derives the exit prices.
// Evaluation fields are copied as is.
func BuildPlan(evaluation dto.EvaluationResult, req dto.CreatePlanRequest, defaults config.TradePlan) (*entity.TradePlan, error) {
	code := normalizeStockCode(req.StockCode)
	if code == "" {
		code = normalizeStockCode(evaluation.StockCode)
	}
	if code == "" {
		return nil, apperror.Validation("stock_code is required")
	}

	target := evaluation.SupportPrice
	if req.EntryTargetPrice != nil {
		target = *req.EntryTargetPrice
	}
	stopLossPct := defaults.DefaultStopLossPct
	if req.StopLossPct != nil {
		stopLossPct = *req.StopLossPct
	}
	takeProfitPct := defaults.DefaultTakeProfitPct
	if req.TakeProfitPct != nil {
		takeProfitPct = *req.TakeProfitPct
	}

	switch {
	case target <= 0:
		return nil, apperror.Validation("entry_target_price must be positive, got %v", target)
	case stopLossPct >= 0 || stopLossPct <= -100:
		return nil, apperror.Validation("stop_loss_pct must be between -100 and 0, got %v", stopLossPct)
	case takeProfitPct <= 0:
		return nil, apperror.Validation("take_profit_pct must be positive, got %v", takeProfitPct)
	case req.EntryQuantity < 0:
		return nil, apperror.Validation("entry_quantity must not be negative, got %d", req.EntryQuantity)
	}

	stopLossPrice := priceAtPct(target, stopLossPct)
	takeProfitPrice := priceAtPct(target, takeProfitPct)
	if !(stopLossPrice < target && target < takeProfitPrice) {
		return nil, apperror.Validation("entry_target_price %v is too small for the given percentages", target)
	}

	stopLossConditions := req.StopLossConditions
	if stopLossConditions == nil {
		stopLossConditions = evaluation.StopLossConditions
	}
	takeProfitConditions := req.TakeProfitConditions
	if takeProfitConditions == nil {
		takeProfitConditions = evaluation.TakeProfitConditions
	}

	entryConditions := make([]entity.NamedCondition, 0, len(evaluation.EntryConditions))
	for _, c := range evaluation.EntryConditions {
		entryConditions = append(entryConditions, entity.NamedCondition{Name: c.Name, Satisfied: c.Satisfied})
	}

	entryReason := req.EntryReason
	if entryReason == "" && len(evaluation.Reasons) > 0 {
		entryReason = strings.Join(evaluation.Reasons, "; ")
	}

	return &entity.TradePlan{
		StockCode:            code,
		StockName:            req.StockName,
		Status:               entity.PlanStatusPlanning,
		EntryTargetPrice:     target,
		EntryQuantity:        req.EntryQuantity,
		EntryReason:          entryReason,
		EntryConditions:      entity.ToJSON(entryConditions),
		StopLossPct:          stopLossPct,
		StopLossPrice:        stopLossPrice,
		StopLossConditions:   entity.ToJSON(stopLossConditions),
		TakeProfitPct:        takeProfitPct,
		TakeProfitPrice:      takeProfitPrice,
		TakeProfitConditions: entity.ToJSON(takeProfitConditions),
		CompositeScore:       evaluation.CompositeScore,
		ScoreLabel:           evaluation.ScoreLabel,
		RiskRewardRatio:      evaluation.RiskRewardRatio,
		SignalSummary:        entity.ToJSON(evaluation.Reasons),
	}, nil
}

// Activate records the actual entry fill. Only a plan in planning can be activated.
func (s *tradePlanService) Activate(ctx context.Context, id uint, req dto.ActivatePlanRequest) (*entity.TradePlan, error) {
	if req.EntryActualPrice <= 0 {
		return nil, apperror.Validation("entry_actual_price must be positive, got %v", req.EntryActualPrice)
	}
	triggeredAt := utils.TimeNowCST()
	if strings.TrimSpace(req.EntryTriggeredAt) != "" {
		t, err := utils.ParseDate(req.EntryTriggeredAt)
		if err != nil {
			return nil, apperror.Validation("invalid entry_triggered_at %q", req.EntryTriggeredAt)
		}
		triggeredAt = t
	}

	return s.transition(ctx, id, entity.PlanStatusActive, map[string]interface{}{
		"entry_actual_price": req.EntryActualPrice,
		"entry_triggered_at": triggeredAt,
	})
}

// Close ends a plan. outcome is completed or cancelled.
func (s *tradePlanService) Close(ctx context.Context, id uint, outcome string) (*entity.TradePlan, error) {
	to := entity.PlanStatus(strings.ToLower(strings.TrimSpace(outcome)))
	if !to.IsTerminal() {
		return nil, apperror.Validation("outcome must be completed or cancelled, got %q", outcome)
	}
	return s.transition(ctx, id, to, map[string]interface{}{
		"closed_at": time.Now(),
	})
}

func (s *tradePlanService) transition(ctx context.Context, id uint, to entity.PlanStatus, fields map[string]interface{}) (*entity.TradePlan, error) {
	plan, err := s.GetPlan(ctx, id)
	if err != nil {
		return nil, err
	}
	if !plan.Status.CanTransitionTo(to) {
		return nil, transitionError(plan, to)
	}

	err = s.tradePlanRepo.UpdateStatus(ctx, id, plan.Status, to, fields)
	if errors.Is(err, repository.ErrConcurrentUpdate) {
		// lost the race: report against whatever state won
		current, getErr := s.GetPlan(ctx, id)
		if getErr != nil {
			return nil, getErr
		}
		return nil, transitionError(current, to)
	}
	if err != nil {
		s.log.ErrorContext(ctx, "Failed to update trade plan status",
			logger.Field("plan_id", id), logger.StringField("to", string(to)), logger.ErrorField(err))
		return nil, fmt.Errorf("update trade plan %d: %w", id, err)
	}

	s.log.InfoContext(ctx, "Trade plan status changed",
		logger.Field("plan_id", id),
		logger.StringField("from", string(plan.Status)),
		logger.StringField("to", string(to)))
	return s.GetPlan(ctx, id)
}

func transitionError(plan *entity.TradePlan, to entity.PlanStatus) error {
	return &apperror.TransitionError{
		Entity:   "trade plan",
		ID:       plan.ID,
		From:     string(plan.Status),
		To:       string(to),
		Terminal: plan.Status.IsTerminal(),
	}
}

// Delete removes a plan in any state. Positions and trades are untouched.
func (s *tradePlanService) Delete(ctx context.Context, id uint) error {
	err := s.tradePlanRepo.Delete(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperror.NotFound("trade plan %d not found", id)
	}
	if err != nil {
		return fmt.Errorf("delete trade plan %d: %w", id, err)
	}
	s.log.InfoContext(ctx, "Trade plan deleted", logger.Field("plan_id", id))
	return nil
}

func (s *tradePlanService) GetPlan(ctx context.Context, id uint) (*entity.TradePlan, error) {
	plan, err := s.tradePlanRepo.FindByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperror.NotFound("trade plan %d not found", id)
	}
	if err != nil {
		return nil, fmt.Errorf("get trade plan %d: %w", id, err)
	}
	return plan, nil
}

func (s *tradePlanService) ListPlans(ctx context.Context, status *entity.PlanStatus) ([]entity.TradePlan, error) {
	if status != nil && !status.IsValid() {
		return nil, apperror.Validation("unknown plan status %q", *status)
	}
	plans, err := s.tradePlanRepo.Get(ctx, dto.GetTradePlansParam{Status: status})
	if err != nil {
		return nil, fmt.Errorf("list trade plans: %w", err)
	}
	return plans, nil
}
