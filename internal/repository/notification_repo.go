package repository

import (
	"context"
	"time"

	"maintdesk/internal/domain"

	"gorm.io/gorm"
)

type NotificationRepository struct {
	db *gorm.DB
}

func NewNotificationRepository(db *gorm.DB) *NotificationRepository {
	return &NotificationRepository{db: db}
}

type notificationModel struct {
	ID        string    `gorm:"column:id;primaryKey"`
	UserID    string    `gorm:"column:user_id;index"`
	Title     string    `gorm:"column:title"`
	Message   string    `gorm:"column:message"`
	Link      *string   `gorm:"column:link"`
	IsRead    bool      `gorm:"column:is_read"`
	CreatedAt time.Time `gorm:"column:created_at"`
}

func (notificationModel) TableName() string { return "notifications" }

func toDomainNotification(m notificationModel) *domain.Notification {
	var link string
	if m.Link != nil {
		link = *m.Link
	}
	return &domain.Notification{
		ID:        m.ID,
		UserID:    m.UserID,
		Title:     m.Title,
		Message:   m.Message,
		Link:      link,
		IsRead:    m.IsRead,
		CreatedAt: m.CreatedAt,
	}
}

func (r *NotificationRepository) Create(ctx context.Context, n *domain.Notification) error {
	var link *string
	if n.Link != "" {
		v := n.Link
		link = &v
	}
	m := notificationModel{
		ID:        n.ID,
		UserID:    n.UserID,
		Title:     n.Title,
		Message:   n.Message,
		Link:      link,
		IsRead:    n.IsRead,
		CreatedAt: n.CreatedAt,
	}
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*n = *toDomainNotification(m)
	return nil
}

func (r *NotificationRepository) ListByUser(ctx context.Context, userID string, limit int) ([]domain.Notification, error) {
	var models []notificationModel
	q := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	if err := q.Find(&models).Error; err != nil {
		return nil, err
	}

	out := make([]domain.Notification, 0, len(models))
	for _, m := range models {
		out = append(out, *toDomainNotification(m))
	}
	return out, nil
}

// MarkRead is scoped by id and owner so users cannot touch each
// other's inbox items. Returns gorm.ErrRecordNotFound when no row
// matches.
func (r *NotificationRepository) MarkRead(ctx context.Context, id, userID string) error {
	tx := r.db.WithContext(ctx).Model(&notificationModel{}).
		Where("id = ? AND user_id = ?", id, userID).
		Update("is_read", true)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *NotificationRepository) MarkAllRead(ctx context.Context, userID string) error {
	return r.db.WithContext(ctx).Model(&notificationModel{}).
		Where("user_id = ?", userID).
		Update("is_read", true).Error
}

func (r *NotificationRepository) CountUnread(ctx context.Context, userID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&notificationModel{}).
		Where("user_id = ? AND is_read = ?", userID, false).
		Count(&count).Error
	return count, err
}
