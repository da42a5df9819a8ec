package repository

import (
	"context"
	"fmt"
	"time"

	"maintdesk/internal/access"
	"maintdesk/internal/domain"

	"gorm.io/gorm"
)

const workOrderSequence = "work_orders"

type WorkOrderRepository struct {
	db *gorm.DB
}

func NewWorkOrderRepository(db *gorm.DB) *WorkOrderRepository {
	return &WorkOrderRepository{db: db}
}

type workOrderModel struct {
	ID             string     `gorm:"column:id;primaryKey"`
	RequestID      string     `gorm:"column:request_id;uniqueIndex"`
	Title          string     `gorm:"column:title"`
	Description    string     `gorm:"column:description"`
	Status         string     `gorm:"column:status;index"`
	RequestType    string     `gorm:"column:request_type"`
	SLAType        string     `gorm:"column:sla_type"`
	Location       string     `gorm:"column:location"`
	Department     *string    `gorm:"column:department"`
	ClientID       string     `gorm:"column:client_id;index"`
	ClientName     string     `gorm:"column:client_name"`
	AssignedToID   *string    `gorm:"column:assigned_to_id;index"`
	AssignedToName *string    `gorm:"column:assigned_to_name"`
	StartDate      *time.Time `gorm:"column:start_date"`
	DueDate        *time.Time `gorm:"column:due_date"`
	CompletedAt    *time.Time `gorm:"column:completed_at"`
	DurationDays   *int       `gorm:"column:duration_days"`
	IsDelayed      bool       `gorm:"column:is_delayed"`
	TotalCost      float64    `gorm:"column:total_cost"`
	CreatedByID    string     `gorm:"column:created_by_id"`
	CreatedByName  string     `gorm:"column:created_by_name"`
	CreatedAt      time.Time  `gorm:"column:created_at"`
	UpdatedAt      time.Time  `gorm:"column:updated_at"`
}

func (workOrderModel) TableName() string { return "work_orders" }

func toDomainWorkOrder(m workOrderModel) *domain.WorkOrder {
	var department, assignedID, assignedName string
	if m.Department != nil {
		department = *m.Department
	}
	if m.AssignedToID != nil {
		assignedID = *m.AssignedToID
	}
	if m.AssignedToName != nil {
		assignedName = *m.AssignedToName
	}

	return &domain.WorkOrder{
		ID:             m.ID,
		RequestID:      m.RequestID,
		Title:          m.Title,
		Description:    m.Description,
		Status:         domain.WorkOrderStatus(m.Status),
		RequestType:    domain.RequestType(m.RequestType),
		SLAType:        domain.SLAType(m.SLAType),
		Location:       m.Location,
		Department:     department,
		ClientID:       m.ClientID,
		ClientName:     m.ClientName,
		AssignedToID:   assignedID,
		AssignedToName: assignedName,
		StartDate:      m.StartDate,
		DueDate:        m.DueDate,
		CompletedAt:    m.CompletedAt,
		DurationDays:   m.DurationDays,
		IsDelayed:      m.IsDelayed,
		TotalCost:      m.TotalCost,
		CreatedByID:    m.CreatedByID,
		CreatedByName:  m.CreatedByName,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
}

func toWorkOrderModel(wo *domain.WorkOrder) workOrderModel {
	var department, assignedID, assignedName *string
	if wo.Department != "" {
		v := wo.Department
		department = &v
	}
	if wo.AssignedToID != "" {
		v := wo.AssignedToID
		assignedID = &v
	}
	if wo.AssignedToName != "" {
		v := wo.AssignedToName
		assignedName = &v
	}

	return workOrderModel{
		ID:             wo.ID,
		RequestID:      wo.RequestID,
		Title:          wo.Title,
		Description:    wo.Description,
		Status:         string(wo.Status),
		RequestType:    string(wo.RequestType),
		SLAType:        string(wo.SLAType),
		Location:       wo.Location,
		Department:     department,
		ClientID:       wo.ClientID,
		ClientName:     wo.ClientName,
		AssignedToID:   assignedID,
		AssignedToName: assignedName,
		StartDate:      wo.StartDate,
		DueDate:        wo.DueDate,
		CompletedAt:    wo.CompletedAt,
		DurationDays:   wo.DurationDays,
		IsDelayed:      wo.IsDelayed,
		TotalCost:      wo.TotalCost,
		CreatedByID:    wo.CreatedByID,
		CreatedByName:  wo.CreatedByName,
		CreatedAt:      wo.CreatedAt,
		UpdatedAt:      wo.UpdatedAt,
	}
}

// Create assigns the next sequential request id and inserts the order
// in one transaction, so concurrent creates cannot collide on the id.
func (r *WorkOrderRepository) Create(ctx context.Context, wo *domain.WorkOrder) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		seq, err := nextSequence(tx, workOrderSequence)
		if err != nil {
			return err
		}
		wo.RequestID = fmt.Sprintf("WO-%05d", seq)

		m := toWorkOrderModel(wo)
		if err := tx.Create(&m).Error; err != nil {
			return err
		}
		*wo = *toDomainWorkOrder(m)
		return nil
	})
}

func (r *WorkOrderRepository) GetByID(ctx context.Context, id string) (*domain.WorkOrder, error) {
	var m workOrderModel
	tx := r.db.WithContext(ctx).Where("id = ?", id).First(&m)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainWorkOrder(m), nil
}

func scopedQuery(q *gorm.DB, scope access.Scope) *gorm.DB {
	if scope.ClientID != "" {
		q = q.Where("client_id = ?", scope.ClientID)
	}
	if scope.AssignedToID != "" {
		q = q.Where("assigned_to_id = ?", scope.AssignedToID)
	}
	return q
}

func (r *WorkOrderRepository) List(ctx context.Context, scope access.Scope) ([]domain.WorkOrder, error) {
	var models []workOrderModel
	q := scopedQuery(r.db.WithContext(ctx), scope).Order("created_at DESC")
	if err := q.Find(&models).Error; err != nil {
		return nil, err
	}

	out := make([]domain.WorkOrder, 0, len(models))
	for _, m := range models {
		out = append(out, *toDomainWorkOrder(m))
	}
	return out, nil
}

// UpdateFields applies a partial update. Returns gorm.ErrRecordNotFound
// when the id does not exist.
func (r *WorkOrderRepository) UpdateFields(ctx context.Context, id string, fields map[string]any) error {
	tx := r.db.WithContext(ctx).Model(&workOrderModel{}).Where("id = ?", id).Updates(fields)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *WorkOrderRepository) Delete(ctx context.Context, id string) error {
	tx := r.db.WithContext(ctx).Where("id = ?", id).Delete(&workOrderModel{})
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// WorkOrderStats are the raw aggregates behind the dashboard.
type WorkOrderStats struct {
	Total      int64
	Pending    int64
	InProgress int64
	Completed  int64
	Approved   int64
	TotalCost  float64
}

func (r *WorkOrderRepository) Stats(ctx context.Context, scope access.Scope) (*WorkOrderStats, error) {
	stats := &WorkOrderStats{}

	type statusCount struct {
		Status string
		Count  int64
	}
	var rows []statusCount
	q := scopedQuery(r.db.WithContext(ctx).Model(&workOrderModel{}), scope)
	if err := q.Select("status, COUNT(*) AS count").Group("status").Scan(&rows).Error; err != nil {
		return nil, err
	}

	for _, row := range rows {
		stats.Total += row.Count
		switch domain.WorkOrderStatus(row.Status) {
		case domain.StatusPending:
			stats.Pending = row.Count
		case domain.StatusInProgress:
			stats.InProgress = row.Count
		case domain.StatusCompleted:
			stats.Completed = row.Count
		case domain.StatusApproved:
			stats.Approved = row.Count
		}
	}

	q = scopedQuery(r.db.WithContext(ctx).Model(&workOrderModel{}), scope)
	if err := q.Select("COALESCE(SUM(total_cost), 0)").Scan(&stats.TotalCost).Error; err != nil {
		return nil, err
	}

	return stats, nil
}
