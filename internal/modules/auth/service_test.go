package auth

import (
	"context"
	"testing"
	"time"

	"maintdesk/internal/domain"
	"maintdesk/internal/pkg/identity"
	jwtsvc "maintdesk/internal/pkg/jwt"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Mock user repository implementing the interface
type mockUserRepo struct {
	mock.Mock
}

func (m *mockUserRepo) Create(ctx context.Context, u *domain.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func (m *mockUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *mockUserRepo) GetByID(ctx context.Context, id string) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *mockUserRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

// Mock session repository
type mockSessionRepo struct {
	mock.Mock
}

func (m *mockSessionRepo) Create(ctx context.Context, s *domain.Session) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *mockSessionRepo) GetByToken(ctx context.Context, token string) (*domain.Session, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Session), args.Error(1)
}

func (m *mockSessionRepo) DeleteByToken(ctx context.Context, token string) error {
	args := m.Called(ctx, token)
	return args.Error(0)
}

// Fake identity exchanger
type fakeExchanger struct {
	profile *identity.Profile
	err     error
}

func (f *fakeExchanger) Exchange(ctx context.Context, sessionID string) (*identity.Profile, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.profile, nil
}

func newTestService(users *mockUserRepo, sessions *mockSessionRepo, exchanger identity.Exchanger) *Service {
	return NewService(users, sessions, jwtsvc.New("test-secret", time.Hour), exchanger, 7*24*time.Hour)
}

func TestService_Register_Success(t *testing.T) {
	users := new(mockUserRepo)
	sessions := new(mockSessionRepo)

	users.On("ExistsByEmail", mock.Anything, "new@example.com").Return(false, nil)
	users.On("Create", mock.Anything, mock.Anything).Return(nil)

	service := newTestService(users, sessions, &fakeExchanger{})

	user, token, err := service.Register(context.Background(), RegisterRequest{
		Email:    "new@example.com",
		Name:     "New User",
		Password: "securepass123",
	})

	assert.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, domain.RoleClient, user.Role)
	assert.True(t, user.IsActive)
	assert.Empty(t, user.PasswordHash)

	users.AssertExpectations(t)
}

func TestService_Register_EmailExists(t *testing.T) {
	users := new(mockUserRepo)
	sessions := new(mockSessionRepo)

	users.On("ExistsByEmail", mock.Anything, "exists@example.com").Return(true, nil)

	service := newTestService(users, sessions, &fakeExchanger{})

	_, _, err := service.Register(context.Background(), RegisterRequest{
		Email:    "exists@example.com",
		Name:     "Dup",
		Password: "securepass123",
	})

	assert.ErrorIs(t, err, ErrEmailAlreadyExists)
}

func TestService_Register_InvalidRole(t *testing.T) {
	users := new(mockUserRepo)
	sessions := new(mockSessionRepo)

	service := newTestService(users, sessions, &fakeExchanger{})

	_, _, err := service.Register(context.Background(), RegisterRequest{
		Email:    "new@example.com",
		Name:     "New User",
		Password: "securepass123",
		Role:     "superuser",
	})

	assert.ErrorIs(t, err, ErrInvalidRole)
	users.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestService_Login_Success(t *testing.T) {
	users := new(mockUserRepo)
	sessions := new(mockSessionRepo)

	hashed, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	users.On("GetByEmail", mock.Anything, "user@example.com").Return(&domain.User{
		ID:           "user-1",
		Email:        "user@example.com",
		Role:         domain.RoleTechnician,
		PasswordHash: string(hashed),
		IsActive:     true,
	}, nil)

	service := newTestService(users, sessions, &fakeExchanger{})

	user, token, err := service.Login(context.Background(), LoginRequest{
		Email:    "user@example.com",
		Password: "password123",
	})

	assert.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, "user-1", user.ID)
	assert.Empty(t, user.PasswordHash)
}

func TestService_Login_WrongPassword(t *testing.T) {
	users := new(mockUserRepo)
	sessions := new(mockSessionRepo)

	hashed, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	users.On("GetByEmail", mock.Anything, "user@example.com").Return(&domain.User{
		ID:           "user-1",
		PasswordHash: string(hashed),
		IsActive:     true,
	}, nil)

	service := newTestService(users, sessions, &fakeExchanger{})

	_, _, err := service.Login(context.Background(), LoginRequest{
		Email:    "user@example.com",
		Password: "wrong",
	})

	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestService_Login_UnknownEmail(t *testing.T) {
	users := new(mockUserRepo)
	sessions := new(mockSessionRepo)

	users.On("GetByEmail", mock.Anything, "ghost@example.com").Return(nil, gorm.ErrRecordNotFound)

	service := newTestService(users, sessions, &fakeExchanger{})

	_, _, err := service.Login(context.Background(), LoginRequest{
		Email:    "ghost@example.com",
		Password: "whatever",
	})

	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestService_Login_ProviderOnlyAccount(t *testing.T) {
	users := new(mockUserRepo)
	sessions := new(mockSessionRepo)

	// No local password: the account was created through the identity
	// provider, so password login must not leak its existence.
	users.On("GetByEmail", mock.Anything, "sso@example.com").Return(&domain.User{
		ID:       "user-2",
		IsActive: true,
	}, nil)

	service := newTestService(users, sessions, &fakeExchanger{})

	_, _, err := service.Login(context.Background(), LoginRequest{
		Email:    "sso@example.com",
		Password: "password123",
	})

	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestService_Login_InactiveAccount(t *testing.T) {
	users := new(mockUserRepo)
	sessions := new(mockSessionRepo)

	hashed, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	users.On("GetByEmail", mock.Anything, "off@example.com").Return(&domain.User{
		ID:           "user-3",
		PasswordHash: string(hashed),
		IsActive:     false,
	}, nil)

	service := newTestService(users, sessions, &fakeExchanger{})

	_, _, err := service.Login(context.Background(), LoginRequest{
		Email:    "off@example.com",
		Password: "password123",
	})

	assert.ErrorIs(t, err, ErrAccountInactive)
}

func TestService_ExchangeSession_CreatesClientOnFirstSight(t *testing.T) {
	users := new(mockUserRepo)
	sessions := new(mockSessionRepo)

	users.On("GetByEmail", mock.Anything, "g@example.com").Return(nil, gorm.ErrRecordNotFound)
	users.On("Create", mock.Anything, mock.Anything).Return(nil)
	sessions.On("Create", mock.Anything, mock.Anything).Return(nil)

	service := newTestService(users, sessions, &fakeExchanger{profile: &identity.Profile{
		Email:        "g@example.com",
		Name:         "Google User",
		Picture:      "https://example.com/pic.png",
		SessionToken: "provider-token",
	}})

	user, session, err := service.ExchangeSession(context.Background(), "session-id")

	assert.NoError(t, err)
	assert.Equal(t, domain.RoleClient, user.Role)
	assert.Equal(t, "provider-token", session.SessionToken)
	assert.Equal(t, user.ID, session.UserID)
	assert.True(t, session.ExpiresAt.After(time.Now()))

	users.AssertExpectations(t)
	sessions.AssertExpectations(t)
}

func TestService_ExchangeSession_ExistingUserKeepsRole(t *testing.T) {
	users := new(mockUserRepo)
	sessions := new(mockSessionRepo)

	users.On("GetByEmail", mock.Anything, "sup@example.com").Return(&domain.User{
		ID:       "sup-1",
		Email:    "sup@example.com",
		Role:     domain.RoleSupervisor,
		IsActive: true,
	}, nil)
	sessions.On("Create", mock.Anything, mock.Anything).Return(nil)

	service := newTestService(users, sessions, &fakeExchanger{profile: &identity.Profile{
		Email:        "sup@example.com",
		Name:         "Sam",
		SessionToken: "provider-token-2",
	}})

	user, _, err := service.ExchangeSession(context.Background(), "session-id")

	assert.NoError(t, err)
	assert.Equal(t, domain.RoleSupervisor, user.Role)
	users.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestService_ExchangeSession_ProviderError(t *testing.T) {
	users := new(mockUserRepo)
	sessions := new(mockSessionRepo)

	service := newTestService(users, sessions, &fakeExchanger{err: assert.AnError})

	_, _, err := service.ExchangeSession(context.Background(), "bad-session")

	assert.ErrorIs(t, err, ErrSessionExchange)
}

func TestService_ResolveUser_CookieSession(t *testing.T) {
	users := new(mockUserRepo)
	sessions := new(mockSessionRepo)

	sessions.On("GetByToken", mock.Anything, "cookie-token").Return(&domain.Session{
		ID:           "sess-1",
		UserID:       "user-1",
		SessionToken: "cookie-token",
		ExpiresAt:    time.Now().UTC().Add(time.Hour),
	}, nil)
	users.On("GetByID", mock.Anything, "user-1").Return(&domain.User{
		ID:       "user-1",
		IsActive: true,
	}, nil)

	service := newTestService(users, sessions, &fakeExchanger{})

	user, err := service.ResolveUser(context.Background(), "cookie-token", "")

	assert.NoError(t, err)
	assert.Equal(t, "user-1", user.ID)
}

func TestService_ResolveUser_ExpiredSessionRejected(t *testing.T) {
	users := new(mockUserRepo)
	sessions := new(mockSessionRepo)

	sessions.On("GetByToken", mock.Anything, "stale-token").Return(&domain.Session{
		ID:           "sess-2",
		UserID:       "user-1",
		SessionToken: "stale-token",
		ExpiresAt:    time.Now().UTC().Add(-time.Minute),
	}, nil)

	service := newTestService(users, sessions, &fakeExchanger{})

	_, err := service.ResolveUser(context.Background(), "stale-token", "")

	assert.ErrorIs(t, err, ErrUnauthenticated)
	users.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
}

func TestService_ResolveUser_BearerFallback(t *testing.T) {
	users := new(mockUserRepo)
	sessions := new(mockSessionRepo)

	j := jwtsvc.New("test-secret", time.Hour)
	token, err := j.GenerateToken("user-9", "t@example.com")
	assert.NoError(t, err)

	users.On("GetByID", mock.Anything, "user-9").Return(&domain.User{
		ID:       "user-9",
		IsActive: true,
	}, nil)

	service := NewService(users, sessions, j, &fakeExchanger{}, 7*24*time.Hour)

	user, err := service.ResolveUser(context.Background(), "", token)

	assert.NoError(t, err)
	assert.Equal(t, "user-9", user.ID)
}

func TestService_ResolveUser_InactiveUserRejected(t *testing.T) {
	users := new(mockUserRepo)
	sessions := new(mockSessionRepo)

	sessions.On("GetByToken", mock.Anything, "cookie-token").Return(&domain.Session{
		UserID:    "user-1",
		ExpiresAt: time.Now().UTC().Add(time.Hour),
	}, nil)
	users.On("GetByID", mock.Anything, "user-1").Return(&domain.User{
		ID:       "user-1",
		IsActive: false,
	}, nil)

	service := newTestService(users, sessions, &fakeExchanger{})

	_, err := service.ResolveUser(context.Background(), "cookie-token", "")

	assert.ErrorIs(t, err, ErrUnauthenticated)
}

func TestService_Logout_Idempotent(t *testing.T) {
	users := new(mockUserRepo)
	sessions := new(mockSessionRepo)

	service := newTestService(users, sessions, &fakeExchanger{})

	// No cookie means nothing to delete and no error.
	assert.NoError(t, service.Logout(context.Background(), ""))
	sessions.AssertNotCalled(t, "DeleteByToken", mock.Anything, mock.Anything)

	sessions.On("DeleteByToken", mock.Anything, "cookie-token").Return(nil)
	assert.NoError(t, service.Logout(context.Background(), "cookie-token"))
	sessions.AssertExpectations(t)
}
