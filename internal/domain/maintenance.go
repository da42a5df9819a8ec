package domain

import "time"

// PreventiveMaintenance is a scheduled task independent of reactive
// work orders. NextDueDate is stored as given; nothing advances it
// automatically.
type PreventiveMaintenance struct {
	ID             string    `json:"id"`
	Title          string    `json:"title"`
	Description    string    `json:"description"`
	Location       string    `json:"location"`
	Frequency      string    `json:"frequency"`
	NextDueDate    string    `json:"next_due_date"`
	AssignedToID   string    `json:"assigned_to_id,omitempty"`
	AssignedToName string    `json:"assigned_to_name,omitempty"`
	IsActive       bool      `json:"is_active"`
	CreatedAt      time.Time `json:"created_at"`
}
