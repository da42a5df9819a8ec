package maintenance

import (
	"context"
	"testing"

	"maintdesk/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type mockMaintenanceRepo struct {
	mock.Mock
}

func (m *mockMaintenanceRepo) Create(ctx context.Context, pm *domain.PreventiveMaintenance) error {
	args := m.Called(ctx, pm)
	return args.Error(0)
}

func (m *mockMaintenanceRepo) List(ctx context.Context) ([]domain.PreventiveMaintenance, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PreventiveMaintenance), args.Error(1)
}

type mockUserReader struct {
	mock.Mock
}

func (m *mockUserReader) GetByID(ctx context.Context, id string) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

type mockNotifier struct {
	mock.Mock
}

func (m *mockNotifier) Notify(ctx context.Context, userID, title, message, link string) error {
	args := m.Called(ctx, userID, title, message, link)
	return args.Error(0)
}

func TestService_Create_NotifiesAssignee(t *testing.T) {
	repo := new(mockMaintenanceRepo)
	users := new(mockUserReader)
	notifier := new(mockNotifier)

	users.On("GetByID", mock.Anything, "tech-1").Return(&domain.User{
		ID: "tech-1", Name: "Terry", Role: domain.RoleTechnician,
	}, nil)
	repo.On("Create", mock.Anything, mock.Anything).Return(nil)
	notifier.On("Notify", mock.Anything, "tech-1", "New Preventive Maintenance Task",
		"You have been assigned to: HVAC filter change", "/preventive-maintenance").Return(nil)

	service := NewService(repo, users, notifier)

	pm, err := service.Create(context.Background(), &domain.User{ID: "s1", Role: domain.RoleSupervisor},
		CreateMaintenanceRequest{
			Title:        "HVAC filter change",
			Description:  "Replace filters on all units",
			Location:     "Building A",
			Frequency:    "monthly",
			NextDueDate:  "2026-09-01",
			AssignedToID: "tech-1",
		})

	assert.NoError(t, err)
	assert.Equal(t, "Terry", pm.AssignedToName)
	assert.True(t, pm.IsActive)
	assert.Equal(t, "2026-09-01", pm.NextDueDate)

	notifier.AssertExpectations(t)
}

func TestService_Create_UnassignedSkipsNotification(t *testing.T) {
	repo := new(mockMaintenanceRepo)
	users := new(mockUserReader)
	notifier := new(mockNotifier)

	repo.On("Create", mock.Anything, mock.Anything).Return(nil)

	service := NewService(repo, users, notifier)

	pm, err := service.Create(context.Background(), &domain.User{ID: "a1", Role: domain.RoleAdmin},
		CreateMaintenanceRequest{
			Title:       "Roof inspection",
			Description: "Quarterly check",
			Location:    "Building B",
			Frequency:   "quarterly",
			NextDueDate: "2026-10-01",
		})

	assert.NoError(t, err)
	assert.Empty(t, pm.AssignedToName)
	notifier.AssertNotCalled(t, "Notify", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestService_Create_ForbiddenForTechnician(t *testing.T) {
	service := NewService(new(mockMaintenanceRepo), new(mockUserReader), new(mockNotifier))

	_, err := service.Create(context.Background(), &domain.User{ID: "t1", Role: domain.RoleTechnician},
		CreateMaintenanceRequest{Title: "X"})

	assert.ErrorIs(t, err, ErrForbidden)
}

func TestService_List_ForbiddenForClient(t *testing.T) {
	service := NewService(new(mockMaintenanceRepo), new(mockUserReader), new(mockNotifier))

	_, err := service.List(context.Background(), &domain.User{ID: "c1", Role: domain.RoleClient})

	assert.ErrorIs(t, err, ErrForbidden)
}

func TestService_List_SortedByRepo(t *testing.T) {
	repo := new(mockMaintenanceRepo)
	repo.On("List", mock.Anything).Return([]domain.PreventiveMaintenance{
		{ID: "pm-1", NextDueDate: "2026-09-01"},
		{ID: "pm-2", NextDueDate: "2026-10-01"},
	}, nil)

	service := NewService(repo, new(mockUserReader), new(mockNotifier))

	items, err := service.List(context.Background(), &domain.User{ID: "s1", Role: domain.RoleSupervisor})

	assert.NoError(t, err)
	assert.Len(t, items, 2)
}
