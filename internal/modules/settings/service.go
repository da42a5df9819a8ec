package settings

import (
	"context"
	"errors"
	"time"

	"maintdesk/internal/access"
	"maintdesk/internal/domain"

	"gorm.io/gorm"
)

type RepositoryInterface interface {
	Get(ctx context.Context) (*domain.CompanySettings, error)
	Create(ctx context.Context, s *domain.CompanySettings) error
	UpdateFields(ctx context.Context, fields map[string]any) error
}

type Service struct {
	repo RepositoryInterface
}

func NewService(repo RepositoryInterface) *Service {
	return &Service{repo: repo}
}

// Get lazily creates the singleton with defaults on first read, so
// every later read sees the same persisted row.
func (s *Service) Get(ctx context.Context, actor *domain.User) (*domain.CompanySettings, error) {
	if !access.Can(actor.Role, access.SettingsRead) {
		return nil, ErrForbidden
	}

	current, err := s.repo.Get(ctx)
	if err == nil {
		return current, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	defaults := domain.DefaultCompanySettings()
	defaults.UpdatedAt = time.Now().UTC()
	if err := s.repo.Create(ctx, defaults); err != nil {
		return nil, err
	}
	return defaults, nil
}

func (s *Service) Update(ctx context.Context, actor *domain.User, req UpdateSettingsRequest) (*domain.CompanySettings, error) {
	if !access.Can(actor.Role, access.SettingsUpdate) {
		return nil, ErrForbidden
	}

	// Make sure the row exists before patching it.
	if _, err := s.Get(ctx, actor); err != nil {
		return nil, err
	}

	fields := map[string]any{}
	if req.CompanyName != nil {
		fields["company_name"] = *req.CompanyName
	}
	if req.LogoURL != nil {
		fields["logo_url"] = *req.LogoURL
	}
	if req.PrimaryColor != nil {
		fields["primary_color"] = *req.PrimaryColor
	}
	if req.SecondaryColor != nil {
		fields["secondary_color"] = *req.SecondaryColor
	}
	if req.Timezone != nil {
		fields["timezone"] = *req.Timezone
	}
	fields["updated_at"] = time.Now().UTC()

	if err := s.repo.UpdateFields(ctx, fields); err != nil {
		return nil, err
	}
	return s.repo.Get(ctx)
}
