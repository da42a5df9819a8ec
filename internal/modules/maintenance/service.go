package maintenance

import (
	"context"
	"fmt"
	"time"

	"maintdesk/internal/access"
	"maintdesk/internal/domain"

	"github.com/google/uuid"
)

type RepositoryInterface interface {
	Create(ctx context.Context, pm *domain.PreventiveMaintenance) error
	List(ctx context.Context) ([]domain.PreventiveMaintenance, error)
}

type UserReader interface {
	GetByID(ctx context.Context, id string) (*domain.User, error)
}

type NotificationSender interface {
	Notify(ctx context.Context, userID, title, message, link string) error
}

// Service handles preventive-maintenance tasks. There is no recurrence
// engine: next_due_date is stored as given and never advanced.
type Service struct {
	repo     RepositoryInterface
	users    UserReader
	notifier NotificationSender
}

func NewService(repo RepositoryInterface, users UserReader, notifier NotificationSender) *Service {
	return &Service{repo: repo, users: users, notifier: notifier}
}

func (s *Service) List(ctx context.Context, actor *domain.User) ([]domain.PreventiveMaintenance, error) {
	if !access.Can(actor.Role, access.MaintenanceRead) {
		return nil, ErrForbidden
	}
	return s.repo.List(ctx)
}

func (s *Service) Create(ctx context.Context, actor *domain.User, req CreateMaintenanceRequest) (*domain.PreventiveMaintenance, error) {
	if !access.Can(actor.Role, access.MaintenanceCreate) {
		return nil, ErrForbidden
	}

	assignedToName := ""
	if req.AssignedToID != "" {
		if assignee, err := s.users.GetByID(ctx, req.AssignedToID); err == nil {
			assignedToName = assignee.Name
		}
	}

	pm := &domain.PreventiveMaintenance{
		ID:             uuid.NewString(),
		Title:          req.Title,
		Description:    req.Description,
		Location:       req.Location,
		Frequency:      req.Frequency,
		NextDueDate:    req.NextDueDate,
		AssignedToID:   req.AssignedToID,
		AssignedToName: assignedToName,
		IsActive:       true,
		CreatedAt:      time.Now().UTC(),
	}
	if err := s.repo.Create(ctx, pm); err != nil {
		return nil, err
	}

	if pm.AssignedToID != "" {
		if err := s.notifier.Notify(ctx, pm.AssignedToID, "New Preventive Maintenance Task",
			fmt.Sprintf("You have been assigned to: %s", pm.Title), "/preventive-maintenance"); err != nil {
			return nil, err
		}
	}

	return pm, nil
}
