package auth

import (
	"context"
	"errors"
	"strings"
	"time"

	"maintdesk/internal/domain"
	"maintdesk/internal/pkg/identity"
	jwtsvc "maintdesk/internal/pkg/jwt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type jwtService interface {
	GenerateToken(userID, email string) (string, error)
	ValidateToken(token string) (*jwtsvc.Claims, error)
}

// Service contains all business logic for authentication.
type Service struct {
	users      UserRepositoryInterface
	sessions   SessionRepositoryInterface
	jwt        jwtService
	exchanger  identity.Exchanger
	sessionTTL time.Duration
}

func NewService(
	users UserRepositoryInterface,
	sessions SessionRepositoryInterface,
	jwt jwtService,
	exchanger identity.Exchanger,
	sessionTTL time.Duration,
) *Service {
	return &Service{
		users:      users,
		sessions:   sessions,
		jwt:        jwt,
		exchanger:  exchanger,
		sessionTTL: sessionTTL,
	}
}

func (s *Service) Register(ctx context.Context, req RegisterRequest) (*domain.User, string, error) {
	role := domain.Role(req.Role)
	if req.Role == "" {
		role = domain.RoleClient
	}
	if !role.Valid() {
		return nil, "", ErrInvalidRole
	}

	exists, err := s.users.ExistsByEmail(ctx, req.Email)
	if err != nil {
		return nil, "", err
	}
	if exists {
		return nil, "", ErrEmailAlreadyExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", err
	}

	user := &domain.User{
		ID:           uuid.NewString(),
		Email:        strings.ToLower(strings.TrimSpace(req.Email)),
		Name:         req.Name,
		Role:         role,
		PasswordHash: string(hash),
		IsActive:     true,
		CreatedAt:    time.Now().UTC(),
	}

	if err := s.users.Create(ctx, user); err != nil {
		// The pre-check races with concurrent registers; the unique
		// index on email is the real guard.
		if isUniqueViolation(err) {
			return nil, "", ErrEmailAlreadyExists
		}
		return nil, "", err
	}

	token, err := s.jwt.GenerateToken(user.ID, user.Email)
	if err != nil {
		return nil, "", err
	}

	user.PasswordHash = ""
	return user, token, nil
}

func (s *Service) Login(ctx context.Context, req LoginRequest) (*domain.User, string, error) {
	user, err := s.users.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", err
	}
	if user.PasswordHash == "" {
		// Identity-provider account without a local password.
		return nil, "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	if !user.IsActive {
		return nil, "", ErrAccountInactive
	}

	token, err := s.jwt.GenerateToken(user.ID, user.Email)
	if err != nil {
		return nil, "", err
	}

	user.PasswordHash = ""
	return user, token, nil
}

// ExchangeSession validates an identity-provider session id, creating
// the user on first sight with the client role, and persists a session
// keyed by the provider-issued token.
func (s *Service) ExchangeSession(ctx context.Context, sessionID string) (*domain.User, *domain.Session, error) {
	profile, err := s.exchanger.Exchange(ctx, sessionID)
	if err != nil {
		return nil, nil, ErrSessionExchange
	}

	user, err := s.users.GetByEmail(ctx, profile.Email)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, err
		}
		user = &domain.User{
			ID:        uuid.NewString(),
			Email:     strings.ToLower(strings.TrimSpace(profile.Email)),
			Name:      profile.Name,
			Role:      domain.RoleClient,
			Picture:   profile.Picture,
			IsActive:  true,
			CreatedAt: time.Now().UTC(),
		}
		if err := s.users.Create(ctx, user); err != nil {
			return nil, nil, err
		}
	}

	session := &domain.Session{
		ID:           uuid.NewString(),
		UserID:       user.ID,
		SessionToken: profile.SessionToken,
		ExpiresAt:    time.Now().UTC().Add(s.sessionTTL),
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.sessions.Create(ctx, session); err != nil {
		return nil, nil, err
	}

	user.PasswordHash = ""
	return user, session, nil
}

// ResolveUser checks the cookie session first and falls back to the
// bearer token. The ordering is deliberate: the cookie wins when both
// are present.
func (s *Service) ResolveUser(ctx context.Context, cookieToken, bearerToken string) (*domain.User, error) {
	if cookieToken != "" {
		session, err := s.sessions.GetByToken(ctx, cookieToken)
		if err == nil && session.ExpiresAt.After(time.Now().UTC()) {
			if user := s.activeUser(ctx, session.UserID); user != nil {
				return user, nil
			}
		}
	}

	if bearerToken != "" {
		claims, err := s.jwt.ValidateToken(bearerToken)
		if err == nil {
			if user := s.activeUser(ctx, claims.UserID); user != nil {
				return user, nil
			}
		}
	}

	return nil, ErrUnauthenticated
}

// Logout deletes every session carrying the token; deleting a token
// with no sessions is not an error.
func (s *Service) Logout(ctx context.Context, cookieToken string) error {
	if cookieToken == "" {
		return nil
	}
	return s.sessions.DeleteByToken(ctx, cookieToken)
}

func (s *Service) activeUser(ctx context.Context, userID string) *domain.User {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil || !user.IsActive {
		return nil
	}
	user.PasswordHash = ""
	return user
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
