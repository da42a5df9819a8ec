package repository

import (
	"context"
	"time"

	"maintdesk/internal/domain"

	"gorm.io/gorm"
)

type CommentRepository struct {
	db *gorm.DB
}

func NewCommentRepository(db *gorm.DB) *CommentRepository {
	return &CommentRepository{db: db}
}

type commentModel struct {
	ID          string    `gorm:"column:id;primaryKey"`
	WorkOrderID string    `gorm:"column:work_order_id;index"`
	UserID      string    `gorm:"column:user_id"`
	UserName    string    `gorm:"column:user_name"`
	UserRole    string    `gorm:"column:user_role"`
	Content     string    `gorm:"column:content"`
	CreatedAt   time.Time `gorm:"column:created_at"`
}

func (commentModel) TableName() string { return "comments" }

func toDomainComment(m commentModel) *domain.Comment {
	return &domain.Comment{
		ID:          m.ID,
		WorkOrderID: m.WorkOrderID,
		UserID:      m.UserID,
		UserName:    m.UserName,
		UserRole:    domain.Role(m.UserRole),
		Content:     m.Content,
		CreatedAt:   m.CreatedAt,
	}
}

func (r *CommentRepository) Create(ctx context.Context, c *domain.Comment) error {
	m := commentModel{
		ID:          c.ID,
		WorkOrderID: c.WorkOrderID,
		UserID:      c.UserID,
		UserName:    c.UserName,
		UserRole:    string(c.UserRole),
		Content:     c.Content,
		CreatedAt:   c.CreatedAt,
	}
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*c = *toDomainComment(m)
	return nil
}

func (r *CommentRepository) ListByWorkOrder(ctx context.Context, workOrderID string) ([]domain.Comment, error) {
	var models []commentModel
	tx := r.db.WithContext(ctx).
		Where("work_order_id = ?", workOrderID).
		Order("created_at DESC").
		Limit(100).
		Find(&models)
	if tx.Error != nil {
		return nil, tx.Error
	}

	out := make([]domain.Comment, 0, len(models))
	for _, m := range models {
		out = append(out, *toDomainComment(m))
	}
	return out, nil
}
