package repository

import (
	"context"
	"time"

	"maintdesk/internal/domain"

	"gorm.io/gorm"
)

type CostEntryRepository struct {
	db *gorm.DB
}

func NewCostEntryRepository(db *gorm.DB) *CostEntryRepository {
	return &CostEntryRepository{db: db}
}

type costEntryModel struct {
	ID            string    `gorm:"column:id;primaryKey"`
	WorkOrderID   string    `gorm:"column:work_order_id;index"`
	Description   string    `gorm:"column:description"`
	CostType      string    `gorm:"column:cost_type"`
	Amount        float64   `gorm:"column:amount"`
	CreatedByID   string    `gorm:"column:created_by_id"`
	CreatedByName string    `gorm:"column:created_by_name"`
	CreatedAt     time.Time `gorm:"column:created_at"`
}

func (costEntryModel) TableName() string { return "cost_entries" }

func toDomainCostEntry(m costEntryModel) *domain.CostEntry {
	return &domain.CostEntry{
		ID:            m.ID,
		WorkOrderID:   m.WorkOrderID,
		Description:   m.Description,
		CostType:      m.CostType,
		Amount:        m.Amount,
		CreatedByID:   m.CreatedByID,
		CreatedByName: m.CreatedByName,
		CreatedAt:     m.CreatedAt,
	}
}

// CreateAndRecompute inserts the entry and refreshes the parent's
// total_cost from the full entry set in one transaction, so the stored
// total always reflects a consistent snapshot. Returns the new total.
func (r *CostEntryRepository) CreateAndRecompute(ctx context.Context, e *domain.CostEntry) (float64, error) {
	var total float64

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		m := costEntryModel{
			ID:            e.ID,
			WorkOrderID:   e.WorkOrderID,
			Description:   e.Description,
			CostType:      e.CostType,
			Amount:        e.Amount,
			CreatedByID:   e.CreatedByID,
			CreatedByName: e.CreatedByName,
			CreatedAt:     e.CreatedAt,
		}
		if err := tx.Create(&m).Error; err != nil {
			return err
		}

		if err := tx.Model(&costEntryModel{}).
			Where("work_order_id = ?", e.WorkOrderID).
			Select("COALESCE(SUM(amount), 0)").
			Scan(&total).Error; err != nil {
			return err
		}

		return tx.Model(&workOrderModel{}).Where("id = ?", e.WorkOrderID).Updates(map[string]any{
			"total_cost": total,
			"updated_at": time.Now().UTC(),
		}).Error
	})
	if err != nil {
		return 0, err
	}
	return total, nil
}

func (r *CostEntryRepository) ListByWorkOrder(ctx context.Context, workOrderID string) ([]domain.CostEntry, error) {
	var models []costEntryModel
	tx := r.db.WithContext(ctx).
		Where("work_order_id = ?", workOrderID).
		Order("created_at DESC").
		Limit(100).
		Find(&models)
	if tx.Error != nil {
		return nil, tx.Error
	}

	out := make([]domain.CostEntry, 0, len(models))
	for _, m := range models {
		out = append(out, *toDomainCostEntry(m))
	}
	return out, nil
}
