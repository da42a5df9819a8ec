package repository

import (
	"context"
	"time"

	"maintdesk/internal/domain"

	"gorm.io/gorm"
)

type MaintenanceRepository struct {
	db *gorm.DB
}

func NewMaintenanceRepository(db *gorm.DB) *MaintenanceRepository {
	return &MaintenanceRepository{db: db}
}

type maintenanceModel struct {
	ID             string    `gorm:"column:id;primaryKey"`
	Title          string    `gorm:"column:title"`
	Description    string    `gorm:"column:description"`
	Location       string    `gorm:"column:location"`
	Frequency      string    `gorm:"column:frequency"`
	NextDueDate    string    `gorm:"column:next_due_date;index"`
	AssignedToID   *string   `gorm:"column:assigned_to_id"`
	AssignedToName *string   `gorm:"column:assigned_to_name"`
	IsActive       bool      `gorm:"column:is_active"`
	CreatedAt      time.Time `gorm:"column:created_at"`
}

func (maintenanceModel) TableName() string { return "preventive_maintenance" }

func toDomainMaintenance(m maintenanceModel) *domain.PreventiveMaintenance {
	var assignedID, assignedName string
	if m.AssignedToID != nil {
		assignedID = *m.AssignedToID
	}
	if m.AssignedToName != nil {
		assignedName = *m.AssignedToName
	}

	return &domain.PreventiveMaintenance{
		ID:             m.ID,
		Title:          m.Title,
		Description:    m.Description,
		Location:       m.Location,
		Frequency:      m.Frequency,
		NextDueDate:    m.NextDueDate,
		AssignedToID:   assignedID,
		AssignedToName: assignedName,
		IsActive:       m.IsActive,
		CreatedAt:      m.CreatedAt,
	}
}

func (r *MaintenanceRepository) Create(ctx context.Context, pm *domain.PreventiveMaintenance) error {
	var assignedID, assignedName *string
	if pm.AssignedToID != "" {
		v := pm.AssignedToID
		assignedID = &v
	}
	if pm.AssignedToName != "" {
		v := pm.AssignedToName
		assignedName = &v
	}

	m := maintenanceModel{
		ID:             pm.ID,
		Title:          pm.Title,
		Description:    pm.Description,
		Location:       pm.Location,
		Frequency:      pm.Frequency,
		NextDueDate:    pm.NextDueDate,
		AssignedToID:   assignedID,
		AssignedToName: assignedName,
		IsActive:       pm.IsActive,
		CreatedAt:      pm.CreatedAt,
	}
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*pm = *toDomainMaintenance(m)
	return nil
}

// List returns tasks sorted by due date, soonest first.
func (r *MaintenanceRepository) List(ctx context.Context) ([]domain.PreventiveMaintenance, error) {
	var models []maintenanceModel
	tx := r.db.WithContext(ctx).Order("next_due_date ASC").Find(&models)
	if tx.Error != nil {
		return nil, tx.Error
	}

	out := make([]domain.PreventiveMaintenance, 0, len(models))
	for _, m := range models {
		out = append(out, *toDomainMaintenance(m))
	}
	return out, nil
}
