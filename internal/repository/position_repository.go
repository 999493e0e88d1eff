package repository

import (
	"context"
	"errors"
	"time"

	"golang-trade-pilot/internal/dto"
	"golang-trade-pilot/internal/entity"

	"gorm.io/gorm"
)

// ErrConcurrentUpdate is returned when a conditional update matched no row because the
// row changed between read and write.
var ErrConcurrentUpdate = errors.New("row was modified concurrently")

// PositionRepository defines the ledger persistence. Trades are written only together with
// the position change they record.
type PositionRepository interface {
	CreateWithTrade(ctx context.Context, position *entity.Position, trade *entity.Trade) error
	FindByID(ctx context.Context, id uint) (*entity.Position, error)
	Get(ctx context.Context, param dto.GetPositionsParam) ([]entity.Position, error)
	ApplySale(ctx context.Context, position *entity.Position, trade *entity.Trade) error
}

type positionRepository struct {
	db *gorm.DB
}

// NewPositionRepository creates a new GORM-based position repository.
func NewPositionRepository(db *gorm.DB) PositionRepository {
	return &positionRepository{db: db}
}

func (r *positionRepository) CreateWithTrade(ctx context.Context, position *entity.Position, trade *entity.Trade) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(position).Error; err != nil {
			return err
		}
		trade.PositionID = position.ID
		return tx.Create(trade).Error
	})
}

// FindByID returns gorm.ErrRecordNotFound when the id is unknown.
func (r *positionRepository) FindByID(ctx context.Context, id uint) (*entity.Position, error) {
	var position entity.Position
	if err := r.db.WithContext(ctx).First(&position, id).Error; err != nil {
		return nil, err
	}
	return &position, nil
}

func (r *positionRepository) Get(ctx context.Context, param dto.GetPositionsParam) ([]entity.Position, error) {
	var positions []entity.Position

	q := r.db.WithContext(ctx).Model(&entity.Position{})
	if len(param.IDs) > 0 {
		q = q.Where("id IN (?)", param.IDs)
	}
	if len(param.StockCodes) > 0 {
		q = q.Where("stock_code IN (?)", param.StockCodes)
	}
	if param.Status != nil {
		q = q.Where("status = ?", *param.Status)
	}

	if err := q.Order("buy_date DESC, id DESC").Find(&positions).Error; err != nil {
		return nil, err
	}
	return positions, nil
}

// ApplySale persists the already computed remaining quantity and status of position and
// appends trade. The update only matches while the row still holds the quantity that was read,
// otherwise ErrConcurrentUpdate is returned and nothing is written.
func (r *positionRepository) ApplySale(ctx context.Context, position *entity.Position, trade *entity.Trade) error {
	sold := trade.Quantity
	readRemaining := position.RemainingQuantity + sold

	updates := map[string]interface{}{
		"remaining_quantity": position.RemainingQuantity,
		"status":             position.Status,
		"closed_at":          position.ClosedAt,
		"updated_at":         time.Now(),
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&entity.Position{}).
			Where("id = ? AND status = ? AND remaining_quantity = ?", position.ID, entity.PositionStatusOpen, readRemaining).
			Updates(updates)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrConcurrentUpdate
		}
		trade.PositionID = position.ID
		return tx.Create(trade).Error
	})
}
