package auth

import (
	"context"

	"maintdesk/internal/domain"
)

// UserRepositoryInterface — only the methods the auth service uses.
type UserRepositoryInterface interface {
	Create(ctx context.Context, u *domain.User) error
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByID(ctx context.Context, id string) (*domain.User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}

type SessionRepositoryInterface interface {
	Create(ctx context.Context, s *domain.Session) error
	GetByToken(ctx context.Context, token string) (*domain.Session, error)
	DeleteByToken(ctx context.Context, token string) error
}
