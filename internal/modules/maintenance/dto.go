package maintenance

type CreateMaintenanceRequest struct {
	Title        string `json:"title" binding:"required"`
	Description  string `json:"description" binding:"required"`
	Location     string `json:"location" binding:"required"`
	Frequency    string `json:"frequency" binding:"required"`
	NextDueDate  string `json:"next_due_date" binding:"required"`
	AssignedToID string `json:"assigned_to_id"`
}
