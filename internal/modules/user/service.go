package user

import (
	"context"
	"errors"

	"maintdesk/internal/access"
	"maintdesk/internal/domain"

	"gorm.io/gorm"
)

type RepositoryInterface interface {
	List(ctx context.Context) ([]domain.User, error)
	UpdateFields(ctx context.Context, id string, fields map[string]any) error
	Deactivate(ctx context.Context, id string) error
}

// Service covers admin-side user management. Accounts are deactivated,
// never hard-deleted, so history referencing them stays intact.
type Service struct {
	repo RepositoryInterface
}

func NewService(repo RepositoryInterface) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(ctx context.Context, actor *domain.User) ([]domain.User, error) {
	if !access.Can(actor.Role, access.UserList) {
		return nil, ErrForbidden
	}
	return s.repo.List(ctx)
}

// Update applies a partial patch. Password material must go through the
// auth flow, never this endpoint; role values are validated.
func (s *Service) Update(ctx context.Context, actor *domain.User, id string, updates map[string]any) error {
	if !access.Can(actor.Role, access.UserMutate) {
		return ErrForbidden
	}

	if _, ok := updates["password"]; ok {
		return ErrFieldNotAllowed
	}
	if _, ok := updates["password_hash"]; ok {
		return ErrFieldNotAllowed
	}

	fields := map[string]any{}
	for key, value := range updates {
		switch key {
		case "name", "email", "picture", "is_active":
			fields[key] = value
		case "role":
			role, _ := value.(string)
			if !domain.Role(role).Valid() {
				return ErrFieldNotAllowed
			}
			fields[key] = role
		default:
			return ErrFieldNotAllowed
		}
	}
	if len(fields) == 0 {
		return nil
	}

	if err := s.repo.UpdateFields(ctx, id, fields); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

func (s *Service) Deactivate(ctx context.Context, actor *domain.User, id string) error {
	if !access.Can(actor.Role, access.UserMutate) {
		return ErrForbidden
	}

	if err := s.repo.Deactivate(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}
