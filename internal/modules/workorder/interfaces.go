package workorder

import (
	"context"

	"maintdesk/internal/access"
	"maintdesk/internal/domain"
	"maintdesk/internal/repository"
)

// WorkOrderRepositoryInterface — only the methods the service uses.
type WorkOrderRepositoryInterface interface {
	Create(ctx context.Context, wo *domain.WorkOrder) error
	GetByID(ctx context.Context, id string) (*domain.WorkOrder, error)
	List(ctx context.Context, scope access.Scope) ([]domain.WorkOrder, error)
	UpdateFields(ctx context.Context, id string, fields map[string]any) error
	Delete(ctx context.Context, id string) error
	Stats(ctx context.Context, scope access.Scope) (*repository.WorkOrderStats, error)
}

type CommentRepositoryInterface interface {
	Create(ctx context.Context, c *domain.Comment) error
	ListByWorkOrder(ctx context.Context, workOrderID string) ([]domain.Comment, error)
}

type CostRepositoryInterface interface {
	CreateAndRecompute(ctx context.Context, e *domain.CostEntry) (float64, error)
	ListByWorkOrder(ctx context.Context, workOrderID string) ([]domain.CostEntry, error)
}

type UserReader interface {
	GetByID(ctx context.Context, id string) (*domain.User, error)
}

// NotificationSender decouples the lifecycle from notification
// delivery; the notification module implements it.
type NotificationSender interface {
	Notify(ctx context.Context, userID, title, message, link string) error
}
