// Package access holds the role/ownership policy for every gated
// operation. Handlers and services consult this one table instead of
// repeating role conditionals per endpoint.
package access

import "maintdesk/internal/domain"

type Operation string

const (
	WorkOrderList   Operation = "workorder.list"
	WorkOrderRead   Operation = "workorder.read"
	WorkOrderCreate Operation = "workorder.create"
	WorkOrderUpdate Operation = "workorder.update"
	WorkOrderDelete Operation = "workorder.delete"

	CostCreate Operation = "cost.create"

	MaintenanceRead   Operation = "maintenance.read"
	MaintenanceCreate Operation = "maintenance.create"

	UserList   Operation = "user.list"
	UserMutate Operation = "user.mutate"

	SettingsRead   Operation = "settings.read"
	SettingsUpdate Operation = "settings.update"
)

type decision int

const (
	deny decision = iota
	allow
	// allowOwn grants access only when the ownership predicate for the
	// role holds (client: order's client, technician: order's assignee).
	allowOwn
)

var policy = map[Operation]map[domain.Role]decision{
	WorkOrderList: {
		domain.RoleAdmin:      allow,
		domain.RoleSupervisor: allow,
		domain.RoleTechnician: allowOwn,
		domain.RoleClient:     allowOwn,
	},
	WorkOrderRead: {
		domain.RoleAdmin:      allow,
		domain.RoleSupervisor: allow,
		domain.RoleTechnician: allowOwn,
		domain.RoleClient:     allowOwn,
	},
	WorkOrderCreate: {
		domain.RoleAdmin:      allow,
		domain.RoleSupervisor: allow,
	},
	WorkOrderUpdate: {
		domain.RoleAdmin:      allow,
		domain.RoleSupervisor: allow,
		domain.RoleTechnician: allowOwn,
	},
	WorkOrderDelete: {
		domain.RoleAdmin:      allow,
		domain.RoleSupervisor: allow,
	},
	CostCreate: {
		domain.RoleAdmin:      allow,
		domain.RoleSupervisor: allow,
		domain.RoleTechnician: allow,
	},
	MaintenanceRead: {
		domain.RoleAdmin:      allow,
		domain.RoleSupervisor: allow,
	},
	MaintenanceCreate: {
		domain.RoleAdmin:      allow,
		domain.RoleSupervisor: allow,
	},
	UserList: {
		domain.RoleAdmin:      allow,
		domain.RoleSupervisor: allow,
	},
	UserMutate: {
		domain.RoleAdmin: allow,
	},
	SettingsRead: {
		domain.RoleAdmin:      allow,
		domain.RoleSupervisor: allow,
		domain.RoleTechnician: allow,
		domain.RoleClient:     allow,
	},
	SettingsUpdate: {
		domain.RoleAdmin: allow,
	},
}

// Can reports whether the role may perform op at all, ignoring
// ownership. Use CanWorkOrder for per-record checks.
func Can(role domain.Role, op Operation) bool {
	return policy[op][role] != deny
}

// CanWorkOrder reports whether the user may perform op on the given
// work order, applying the role's ownership predicate where required.
func CanWorkOrder(u *domain.User, op Operation, wo *domain.WorkOrder) bool {
	switch policy[op][u.Role] {
	case allow:
		return true
	case allowOwn:
		return ownsWorkOrder(u, wo)
	default:
		return false
	}
}

func ownsWorkOrder(u *domain.User, wo *domain.WorkOrder) bool {
	switch u.Role {
	case domain.RoleClient:
		return wo.ClientID == u.ID
	case domain.RoleTechnician:
		return wo.AssignedToID != "" && wo.AssignedToID == u.ID
	default:
		return false
	}
}

// Scope restricts work-order listings and dashboard aggregates. Zero
// value means unrestricted.
type Scope struct {
	ClientID     string
	AssignedToID string
}

// WorkOrderScope returns the listing filter for the user's role:
// clients see their own orders, technicians their assignments,
// admins and supervisors everything.
func WorkOrderScope(u *domain.User) Scope {
	switch u.Role {
	case domain.RoleClient:
		return Scope{ClientID: u.ID}
	case domain.RoleTechnician:
		return Scope{AssignedToID: u.ID}
	default:
		return Scope{}
	}
}
