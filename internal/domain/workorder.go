package domain

import "time"

type WorkOrderStatus string

const (
	StatusPending    WorkOrderStatus = "pending"
	StatusInProgress WorkOrderStatus = "in_progress"
	StatusCompleted  WorkOrderStatus = "completed"
	StatusApproved   WorkOrderStatus = "approved"
	StatusCancelled  WorkOrderStatus = "cancelled"
)

func (s WorkOrderStatus) Valid() bool {
	switch s {
	case StatusPending, StatusInProgress, StatusCompleted, StatusApproved, StatusCancelled:
		return true
	}
	return false
}

type SLAType string

const (
	SLANormal   SLAType = "normal"
	SLAUrgent   SLAType = "urgent"
	SLACritical SLAType = "critical"
)

func (s SLAType) Valid() bool {
	switch s {
	case SLANormal, SLAUrgent, SLACritical:
		return true
	}
	return false
}

type RequestType string

const (
	RequestMEP        RequestType = "MEP"
	RequestCivil      RequestType = "Civil"
	RequestPlumbing   RequestType = "Plumbing"
	RequestElectrical RequestType = "Electrical"
	RequestHVAC       RequestType = "HVAC"
	RequestOther      RequestType = "Other"
)

func (t RequestType) Valid() bool {
	switch t {
	case RequestMEP, RequestCivil, RequestPlumbing, RequestElectrical, RequestHVAC, RequestOther:
		return true
	}
	return false
}

// WorkOrder is the central entity. ClientName and AssignedToName are
// denormalized from users at create/assignment time; AssignedToName must
// be refreshed whenever AssignedToID changes. TotalCost always equals
// the sum of the order's cost entries.
type WorkOrder struct {
	ID             string          `json:"id"`
	RequestID      string          `json:"request_id"`
	Title          string          `json:"title"`
	Description    string          `json:"description"`
	Status         WorkOrderStatus `json:"status"`
	RequestType    RequestType     `json:"request_type"`
	SLAType        SLAType         `json:"sla_type"`
	Location       string          `json:"location"`
	Department     string          `json:"department,omitempty"`
	ClientID       string          `json:"client_id"`
	ClientName     string          `json:"client_name"`
	AssignedToID   string          `json:"assigned_to_id,omitempty"`
	AssignedToName string          `json:"assigned_to_name,omitempty"`
	StartDate      *time.Time      `json:"start_date,omitempty"`
	DueDate        *time.Time      `json:"due_date,omitempty"`
	CompletedAt    *time.Time      `json:"completed_at,omitempty"`
	DurationDays   *int            `json:"duration_days,omitempty"`
	IsDelayed      bool            `json:"is_delayed"`
	TotalCost      float64         `json:"total_cost"`
	CreatedByID    string          `json:"created_by_id"`
	CreatedByName  string          `json:"created_by_name"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// Comment is an append-only child of a work order.
type Comment struct {
	ID          string    `json:"id"`
	WorkOrderID string    `json:"work_order_id"`
	UserID      string    `json:"user_id"`
	UserName    string    `json:"user_name"`
	UserRole    Role      `json:"user_role"`
	Content     string    `json:"content"`
	CreatedAt   time.Time `json:"created_at"`
}

// CostEntry is an append-only child of a work order. CostType is a
// free-form string; observed values are "material" and "labor".
type CostEntry struct {
	ID            string    `json:"id"`
	WorkOrderID   string    `json:"work_order_id"`
	Description   string    `json:"description"`
	CostType      string    `json:"cost_type"`
	Amount        float64   `json:"amount"`
	CreatedByID   string    `json:"created_by_id"`
	CreatedByName string    `json:"created_by_name"`
	CreatedAt     time.Time `json:"created_at"`
}
