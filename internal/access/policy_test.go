package access

import (
	"testing"

	"maintdesk/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestCan_RoleMatrix(t *testing.T) {
	cases := []struct {
		name string
		role domain.Role
		op   Operation
		want bool
	}{
		{"admin creates work orders", domain.RoleAdmin, WorkOrderCreate, true},
		{"supervisor creates work orders", domain.RoleSupervisor, WorkOrderCreate, true},
		{"technician cannot create work orders", domain.RoleTechnician, WorkOrderCreate, false},
		{"client cannot create work orders", domain.RoleClient, WorkOrderCreate, false},
		{"client cannot delete work orders", domain.RoleClient, WorkOrderDelete, false},
		{"technician cannot delete work orders", domain.RoleTechnician, WorkOrderDelete, false},
		{"technician adds costs", domain.RoleTechnician, CostCreate, true},
		{"client cannot add costs", domain.RoleClient, CostCreate, false},
		{"supervisor reads maintenance", domain.RoleSupervisor, MaintenanceRead, true},
		{"technician cannot read maintenance", domain.RoleTechnician, MaintenanceRead, false},
		{"supervisor lists users", domain.RoleSupervisor, UserList, true},
		{"supervisor cannot mutate users", domain.RoleSupervisor, UserMutate, false},
		{"admin mutates users", domain.RoleAdmin, UserMutate, true},
		{"client reads settings", domain.RoleClient, SettingsRead, true},
		{"supervisor cannot update settings", domain.RoleSupervisor, SettingsUpdate, false},
		{"admin updates settings", domain.RoleAdmin, SettingsUpdate, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Can(tc.role, tc.op))
		})
	}
}

func TestCanWorkOrder_Ownership(t *testing.T) {
	client := &domain.User{ID: "client-1", Role: domain.RoleClient}
	tech := &domain.User{ID: "tech-1", Role: domain.RoleTechnician}
	supervisor := &domain.User{ID: "sup-1", Role: domain.RoleSupervisor}

	own := &domain.WorkOrder{ClientID: "client-1", AssignedToID: "tech-1"}
	other := &domain.WorkOrder{ClientID: "client-2", AssignedToID: "tech-2"}
	unassigned := &domain.WorkOrder{ClientID: "client-2"}

	assert.True(t, CanWorkOrder(client, WorkOrderRead, own))
	assert.False(t, CanWorkOrder(client, WorkOrderRead, other))
	// Clients never update, even their own orders.
	assert.False(t, CanWorkOrder(client, WorkOrderUpdate, own))

	assert.True(t, CanWorkOrder(tech, WorkOrderUpdate, own))
	assert.False(t, CanWorkOrder(tech, WorkOrderUpdate, other))
	assert.False(t, CanWorkOrder(tech, WorkOrderRead, unassigned))

	assert.True(t, CanWorkOrder(supervisor, WorkOrderUpdate, other))
	assert.True(t, CanWorkOrder(supervisor, WorkOrderRead, unassigned))
}

func TestWorkOrderScope(t *testing.T) {
	assert.Equal(t, Scope{ClientID: "c1"},
		WorkOrderScope(&domain.User{ID: "c1", Role: domain.RoleClient}))
	assert.Equal(t, Scope{AssignedToID: "t1"},
		WorkOrderScope(&domain.User{ID: "t1", Role: domain.RoleTechnician}))
	assert.Equal(t, Scope{},
		WorkOrderScope(&domain.User{ID: "a1", Role: domain.RoleAdmin}))
	assert.Equal(t, Scope{},
		WorkOrderScope(&domain.User{ID: "s1", Role: domain.RoleSupervisor}))
}
