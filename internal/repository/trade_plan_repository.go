package repository

import (
	"context"

	"golang-trade-pilot/internal/dto"
	"golang-trade-pilot/internal/entity"

	"gorm.io/gorm"
)

// TradePlanRepository defines the persistence of trade plans.
type TradePlanRepository interface {
	Create(ctx context.Context, plan *entity.TradePlan) error
	FindByID(ctx context.Context, id uint) (*entity.TradePlan, error)
	Get(ctx context.Context, param dto.GetTradePlansParam) ([]entity.TradePlan, error)
	UpdateStatus(ctx context.Context, id uint, from, to entity.PlanStatus, fields map[string]interface{}) error
	Delete(ctx context.Context, id uint) error
}

type tradePlanRepository struct {
	db *gorm.DB
}

// NewTradePlanRepository creates a new GORM-based trade plan repository.
func NewTradePlanRepository(db *gorm.DB) TradePlanRepository {
	return &tradePlanRepository{db: db}
}

func (r *tradePlanRepository) Create(ctx context.Context, plan *entity.TradePlan) error {
	return r.db.WithContext(ctx).Create(plan).Error
}

// FindByID returns gorm.ErrRecordNotFound when the id is unknown.
func (r *tradePlanRepository) FindByID(ctx context.Context, id uint) (*entity.TradePlan, error) {
	var plan entity.TradePlan
	if err := r.db.WithContext(ctx).First(&plan, id).Error; err != nil {
		return nil, err
	}
	return &plan, nil
}

func (r *tradePlanRepository) Get(ctx context.Context, param dto.GetTradePlansParam) ([]entity.TradePlan, error) {
	var plans []entity.TradePlan

	q := r.db.WithContext(ctx).Model(&entity.TradePlan{})
	if len(param.IDs) > 0 {
		q = q.Where("id IN (?)", param.IDs)
	}
	if param.Status != nil {
		q = q.Where("status = ?", *param.Status)
	}

	if err := q.Order("created_at DESC, id DESC").Find(&plans).Error; err != nil {
		return nil, err
	}
	return plans, nil
}

// UpdateStatus moves a plan from one status to another together with fields, only if the
// stored status still equals from. ErrConcurrentUpdate means nothing matched.
func (r *tradePlanRepository) UpdateStatus(ctx context.Context, id uint, from, to entity.PlanStatus, fields map[string]interface{}) error {
	updates := map[string]interface{}{"status": to}
	for k, v := range fields {
		updates[k] = v
	}

	res := r.db.WithContext(ctx).Model(&entity.TradePlan{}).
		Where("id = ? AND status = ?", id, from).
		Updates(updates)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrConcurrentUpdate
	}
	return nil
}

// Delete removes the plan. gorm.ErrRecordNotFound is returned when nothing was deleted.
func (r *tradePlanRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&entity.TradePlan{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
