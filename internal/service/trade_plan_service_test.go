package service

import (
	"context"
	"testing"

	"golang-trade-pilot/internal/dto"
	"golang-trade-pilot/internal/entity"
	"golang-trade-pilot/internal/repository"
	"golang-trade-pilot/internal/testutil"
	"golang-trade-pilot/pkg/apperror"
	"golang-trade-pilot/pkg/config"
	"golang-trade-pilot/pkg/logger"
	"golang-trade-pilot/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var planDefaults = config.TradePlan{DefaultStopLossPct: -10, DefaultTakeProfitPct: 30}

func evaluation(code string, support float64) *dto.EvaluationResult {
	return &dto.EvaluationResult{
		StockCode:            code,
		CurrentPrice:         support + 2,
		SupportPrice:         support,
		CompositeScore:       72.5,
		ScoreLabel:           "buy",
		RiskRewardRatio:      utils.ToPointer(3.0),
		EntryConditions:      []dto.EntryCondition{{Name: "pe_below_30pct", Satisfied: true}, {Name: "rsi_oversold", Satisfied: false}},
		StopLossConditions:   []string{"break_ma60"},
		TakeProfitConditions: []string{"pe_above_80pct"},
		Reasons:              []string{"valuation low", "northbound inflow"},
	}
}

func newTradePlanService(t *testing.T) (TradePlanService, *mockEvaluator) {
	db := testutil.NewSQLiteDB(t)
	evaluator := &mockEvaluator{}
	return NewTradePlanService(planDefaults, logger.NewNop(), repository.NewTradePlanRepository(db), evaluator), evaluator
}

func TestBuildPlan_DerivesExitPrices(t *testing.T) {
	plan, err := BuildPlan(*evaluation("600519", 50), dto.CreatePlanRequest{StockCode: "600519"}, planDefaults)
	require.NoError(t, err)

	assert.Equal(t, entity.PlanStatusPlanning, plan.Status)
	assert.Equal(t, 50.0, plan.EntryTargetPrice)
	assert.Equal(t, 45.0, plan.StopLossPrice)
	assert.Equal(t, 65.0, plan.TakeProfitPrice)
	assert.Equal(t, []string{"break_ma60"}, plan.StopLossConditionNames())
	assert.Equal(t, []string{"valuation low", "northbound inflow"}, plan.SignalSummaryList())
	assert.Equal(t, "buy", plan.ScoreLabel)
	assert.Len(t, plan.EntryConditionList(), 2)
	assert.Nil(t, plan.EntryActualPrice)
}

func TestBuildPlan_Overrides(t *testing.T) {
	plan, err := BuildPlan(*evaluation("600519", 50), dto.CreatePlanRequest{
		StockCode:          "600519",
		EntryTargetPrice:   utils.ToPointer(33.33),
		StopLossPct:        utils.ToPointer(-7.5),
		TakeProfitPct:      utils.ToPointer(12.0),
		StopLossConditions: []string{},
		EntryQuantity:      300,
		EntryReason:        "manual",
	}, planDefaults)
	require.NoError(t, err)

	assert.Equal(t, 30.83, plan.StopLossPrice)
	assert.Equal(t, 37.33, plan.TakeProfitPrice)
	assert.Empty(t, plan.StopLossConditionNames())
	assert.Equal(t, "manual", plan.EntryReason)
	assert.Less(t, plan.StopLossPrice, plan.EntryTargetPrice)
	assert.Less(t, plan.EntryTargetPrice, plan.TakeProfitPrice)
}

func TestBuildPlan_Validation(t *testing.T) {
	tests := []struct {
		name string
		req  dto.CreatePlanRequest
	}{
		{name: "zero target", req: dto.CreatePlanRequest{EntryTargetPrice: utils.ToPointer(0.0)}},
		{name: "positive stop loss", req: dto.CreatePlanRequest{StopLossPct: utils.ToPointer(5.0)}},
		{name: "zero stop loss", req: dto.CreatePlanRequest{StopLossPct: utils.ToPointer(0.0)}},
		{name: "stop loss below -100", req: dto.CreatePlanRequest{StopLossPct: utils.ToPointer(-100.0)}},
		{name: "negative take profit", req: dto.CreatePlanRequest{TakeProfitPct: utils.ToPointer(-1.0)}},
		{name: "negative quantity", req: dto.CreatePlanRequest{EntryQuantity: -1}},
		{name: "target too small to separate exits", req: dto.CreatePlanRequest{EntryTargetPrice: utils.ToPointer(0.01), StopLossPct: utils.ToPointer(-1.0)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.req.StockCode = "600519"
			_, err := BuildPlan(*evaluation("600519", 50), tt.req, planDefaults)
			assert.ErrorIs(t, err, apperror.ErrValidation)
		})
	}
}

func TestBuildPlan_ExitPricesBracketTarget(t *testing.T) {
	for _, target := range []float64{0.5, 1, 3.17, 12.34, 50, 999.99} {
		for _, sl := range []float64{-0.5, -10, -50, -99} {
			for _, tp := range []float64{0.5, 30, 200} {
				plan, err := BuildPlan(dto.EvaluationResult{StockCode: "X"}, dto.CreatePlanRequest{
					EntryTargetPrice: utils.ToPointer(target),
					StopLossPct:      utils.ToPointer(sl),
					TakeProfitPct:    utils.ToPointer(tp),
				}, planDefaults)
				if err != nil {
					assert.ErrorIs(t, err, apperror.ErrValidation)
					continue
				}
				assert.Less(t, plan.StopLossPrice, plan.EntryTargetPrice)
				assert.Less(t, plan.EntryTargetPrice, plan.TakeProfitPrice)
			}
		}
	}
}

func TestTradePlanService_Lifecycle(t *testing.T) {
	svc, evaluator := newTradePlanService(t)
	ctx := context.Background()
	evaluator.On("Evaluate", mock.Anything, "600519").Return(evaluation("600519", 50), nil)

	plan, eval, err := svc.CreatePlan(ctx, dto.CreatePlanRequest{StockCode: "600519", StockName: "Moutai"})
	require.NoError(t, err)
	assert.Equal(t, 50.0, eval.SupportPrice)
	assert.Equal(t, entity.PlanStatusPlanning, plan.Status)

	_, err = svc.Close(ctx, plan.ID, "completed")
	assert.ErrorIs(t, err, apperror.ErrInvalidTransition)
	assert.NotErrorIs(t, err, apperror.ErrInvalidState)

	_, err = svc.Activate(ctx, plan.ID, dto.ActivatePlanRequest{EntryActualPrice: 0})
	assert.ErrorIs(t, err, apperror.ErrValidation)

	active, err := svc.Activate(ctx, plan.ID, dto.ActivatePlanRequest{EntryActualPrice: 50.5, EntryTriggeredAt: "2024-03-01T09:35:00+08:00"})
	require.NoError(t, err)
	assert.Equal(t, entity.PlanStatusActive, active.Status)
	require.NotNil(t, active.EntryActualPrice)
	assert.Equal(t, 50.5, *active.EntryActualPrice)
	assert.NotNil(t, active.EntryTriggeredAt)

	_, err = svc.Activate(ctx, plan.ID, dto.ActivatePlanRequest{EntryActualPrice: 51})
	assert.ErrorIs(t, err, apperror.ErrInvalidTransition)

	_, err = svc.Close(ctx, plan.ID, "won")
	assert.ErrorIs(t, err, apperror.ErrValidation)

	closed, err := svc.Close(ctx, plan.ID, "completed")
	require.NoError(t, err)
	assert.Equal(t, entity.PlanStatusCompleted, closed.Status)
	assert.NotNil(t, closed.ClosedAt)

	_, err = svc.Close(ctx, plan.ID, "cancelled")
	assert.ErrorIs(t, err, apperror.ErrInvalidState)
	assert.ErrorIs(t, err, apperror.ErrInvalidTransition)

	_, err = svc.Activate(ctx, plan.ID, dto.ActivatePlanRequest{EntryActualPrice: 51})
	assert.ErrorIs(t, err, apperror.ErrInvalidState)

	stored, err := svc.GetPlan(ctx, plan.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.PlanStatusCompleted, stored.Status)

	require.NoError(t, svc.Delete(ctx, plan.ID))
	assert.ErrorIs(t, svc.Delete(ctx, plan.ID), apperror.ErrNotFound)
	_, err = svc.GetPlan(ctx, plan.ID)
	assert.ErrorIs(t, err, apperror.ErrNotFound)
}

func TestTradePlanService_CancelFromPlanning(t *testing.T) {
	svc, evaluator := newTradePlanService(t)
	ctx := context.Background()
	evaluator.On("Evaluate", mock.Anything, "000001").Return(evaluation("000001", 10), nil)

	plan, _, err := svc.CreatePlan(ctx, dto.CreatePlanRequest{StockCode: "000001"})
	require.NoError(t, err)

	cancelled, err := svc.Close(ctx, plan.ID, "cancelled")
	require.NoError(t, err)
	assert.Equal(t, entity.PlanStatusCancelled, cancelled.Status)

	active := entity.PlanStatusActive
	plans, err := svc.ListPlans(ctx, &active)
	require.NoError(t, err)
	assert.Empty(t, plans)

	bogus := entity.PlanStatus("paused")
	_, err = svc.ListPlans(ctx, &bogus)
	assert.ErrorIs(t, err, apperror.ErrValidation)
}

func TestTradePlanService_EvaluatorDown(t *testing.T) {
	svc, evaluator := newTradePlanService(t)
	evaluator.On("Evaluate", mock.Anything, "000001").Return(nil, apperror.DataUnavailable("evaluator down"))

	_, _, err := svc.CreatePlan(context.Background(), dto.CreatePlanRequest{StockCode: "000001"})
	assert.ErrorIs(t, err, apperror.ErrDataUnavailable)

	plans, err := svc.ListPlans(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, plans)
}
