package workorder

import "time"

type CreateWorkOrderRequest struct {
	Title        string     `json:"title" binding:"required"`
	Description  string     `json:"description" binding:"required"`
	RequestType  string     `json:"request_type" binding:"required"`
	SLAType      string     `json:"sla_type"`
	Location     string     `json:"location" binding:"required"`
	Department   string     `json:"department"`
	ClientID     string     `json:"client_id" binding:"required"`
	AssignedToID string     `json:"assigned_to_id"`
	StartDate    *time.Time `json:"start_date"`
	DueDate      *time.Time `json:"due_date"`
	DurationDays *int       `json:"duration_days"`
}

// UpdateWorkOrderRequest merges only the fields the caller provided;
// nil pointers leave the stored value untouched.
type UpdateWorkOrderRequest struct {
	Title        *string    `json:"title"`
	Description  *string    `json:"description"`
	Status       *string    `json:"status"`
	RequestType  *string    `json:"request_type"`
	SLAType      *string    `json:"sla_type"`
	Location     *string    `json:"location"`
	Department   *string    `json:"department"`
	AssignedToID *string    `json:"assigned_to_id"`
	StartDate    *time.Time `json:"start_date"`
	DueDate      *time.Time `json:"due_date"`
	CompletedAt  *time.Time `json:"completed_at"`
	DurationDays *int       `json:"duration_days"`
	IsDelayed    *bool      `json:"is_delayed"`
}

type CreateCommentRequest struct {
	Content string `json:"content" binding:"required"`
}

type CreateCostEntryRequest struct {
	Description string  `json:"description" binding:"required"`
	CostType    string  `json:"cost_type" binding:"required"`
	Amount      float64 `json:"amount" binding:"required,gt=0"`
}

// DashboardStats mirrors the dashboard payload field for field.
type DashboardStats struct {
	TotalOrders    int64   `json:"total_orders"`
	Pending        int64   `json:"pending"`
	InProgress     int64   `json:"in_progress"`
	Completed      int64   `json:"completed"`
	Approved       int64   `json:"approved"`
	TotalCost      float64 `json:"total_cost"`
	CompletionRate float64 `json:"completion_rate"`
}
