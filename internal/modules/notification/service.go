package notification

import (
	"context"
	"errors"
	"time"

	"maintdesk/internal/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const inboxLimit = 50

type RepositoryInterface interface {
	Create(ctx context.Context, n *domain.Notification) error
	ListByUser(ctx context.Context, userID string, limit int) ([]domain.Notification, error)
	MarkRead(ctx context.Context, id, userID string) error
	MarkAllRead(ctx context.Context, userID string) error
	CountUnread(ctx context.Context, userID string) (int64, error)
}

type Service struct {
	repo RepositoryInterface
	hub  *Hub
}

func NewService(repo RepositoryInterface, hub *Hub) *Service {
	return &Service{repo: repo, hub: hub}
}

// Notify persists an inbox item and pushes it to the user's live
// connection when one exists. The push is best effort; the row is the
// source of truth.
func (s *Service) Notify(ctx context.Context, userID, title, message, link string) error {
	n := &domain.Notification{
		ID:        uuid.NewString(),
		UserID:    userID,
		Title:     title,
		Message:   message,
		Link:      link,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.repo.Create(ctx, n); err != nil {
		return err
	}

	s.hub.SendToUser(userID, n)
	return nil
}

func (s *Service) List(ctx context.Context, userID string) ([]domain.Notification, error) {
	return s.repo.ListByUser(ctx, userID, inboxLimit)
}

func (s *Service) MarkRead(ctx context.Context, id, userID string) error {
	if err := s.repo.MarkRead(ctx, id, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

func (s *Service) MarkAllRead(ctx context.Context, userID string) error {
	return s.repo.MarkAllRead(ctx, userID)
}

func (s *Service) CountUnread(ctx context.Context, userID string) (int64, error) {
	return s.repo.CountUnread(ctx, userID)
}

func (s *Service) Hub() *Hub {
	return s.hub
}
