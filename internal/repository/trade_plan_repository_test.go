package repository

import (
	"context"
	"testing"

	"golang-trade-pilot/internal/dto"
	"golang-trade-pilot/internal/entity"
	"golang-trade-pilot/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newPlan(code string) *entity.TradePlan {
	return &entity.TradePlan{
		StockCode:            code,
		Status:               entity.PlanStatusPlanning,
		EntryTargetPrice:     50,
		StopLossPct:          -10,
		StopLossPrice:        45,
		StopLossConditions:   entity.ToJSON([]string{"break_ma20"}),
		TakeProfitPct:        30,
		TakeProfitPrice:      65,
		TakeProfitConditions: entity.ToJSON([]string{}),
		EntryConditions:      entity.ToJSON([]entity.NamedCondition{{Name: "pe_low", Satisfied: true}}),
		SignalSummary:        entity.ToJSON([]string{"cheap"}),
	}
}

func TestTradePlanRepository_CreateAndFind(t *testing.T) {
	db := testutil.NewSQLiteDB(t)
	repo := NewTradePlanRepository(db)
	ctx := context.Background()

	plan := newPlan("600519")
	require.NoError(t, repo.Create(ctx, plan))

	found, err := repo.FindByID(ctx, plan.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.PlanStatusPlanning, found.Status)
	assert.Equal(t, []string{"break_ma20"}, found.StopLossConditionNames())
	assert.Equal(t, []entity.NamedCondition{{Name: "pe_low", Satisfied: true}}, found.EntryConditionList())
	assert.Nil(t, found.EntryActualPrice)
}

func TestTradePlanRepository_UpdateStatus(t *testing.T) {
	db := testutil.NewSQLiteDB(t)
	repo := NewTradePlanRepository(db)
	ctx := context.Background()

	plan := newPlan("600519")
	require.NoError(t, repo.Create(ctx, plan))

	price := 50.5
	err := repo.UpdateStatus(ctx, plan.ID, entity.PlanStatusPlanning, entity.PlanStatusActive, map[string]interface{}{
		"entry_actual_price": price,
	})
	require.NoError(t, err)

	found, err := repo.FindByID(ctx, plan.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.PlanStatusActive, found.Status)
	require.NotNil(t, found.EntryActualPrice)
	assert.Equal(t, 50.5, *found.EntryActualPrice)

	err = repo.UpdateStatus(ctx, plan.ID, entity.PlanStatusPlanning, entity.PlanStatusCancelled, nil)
	assert.ErrorIs(t, err, ErrConcurrentUpdate)

	found, err = repo.FindByID(ctx, plan.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.PlanStatusActive, found.Status)
}

func TestTradePlanRepository_GetAndDelete(t *testing.T) {
	db := testutil.NewSQLiteDB(t)
	repo := NewTradePlanRepository(db)
	ctx := context.Background()

	first := newPlan("000001")
	second := newPlan("000002")
	require.NoError(t, repo.Create(ctx, first))
	require.NoError(t, repo.Create(ctx, second))
	require.NoError(t, repo.UpdateStatus(ctx, second.ID, entity.PlanStatusPlanning, entity.PlanStatusActive, nil))

	active := entity.PlanStatusActive
	plans, err := repo.Get(ctx, dto.GetTradePlansParam{Status: &active})
	require.NoError(t, err)
	require.Len(t, plans, 1)
	assert.Equal(t, second.ID, plans[0].ID)

	require.NoError(t, repo.Delete(ctx, first.ID))
	assert.ErrorIs(t, repo.Delete(ctx, first.ID), gorm.ErrRecordNotFound)

	all, err := repo.Get(ctx, dto.GetTradePlansParam{})
	require.NoError(t, err)
	assert.Len(t, all, 1)
}
