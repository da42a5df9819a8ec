package workorder

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"maintdesk/internal/access"
	"maintdesk/internal/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Service implements the work-order lifecycle: role-scoped visibility,
// per-mutation permission checks, denormalized-field refresh and
// notification side effects.
type Service struct {
	workOrders WorkOrderRepositoryInterface
	comments   CommentRepositoryInterface
	costs      CostRepositoryInterface
	users      UserReader
	notifier   NotificationSender
}

func NewService(
	workOrders WorkOrderRepositoryInterface,
	comments CommentRepositoryInterface,
	costs CostRepositoryInterface,
	users UserReader,
	notifier NotificationSender,
) *Service {
	return &Service{
		workOrders: workOrders,
		comments:   comments,
		costs:      costs,
		users:      users,
		notifier:   notifier,
	}
}

func (s *Service) List(ctx context.Context, actor *domain.User) ([]domain.WorkOrder, error) {
	return s.workOrders.List(ctx, access.WorkOrderScope(actor))
}

func (s *Service) Get(ctx context.Context, actor *domain.User, id string) (*domain.WorkOrder, error) {
	wo, err := s.workOrders.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if !access.CanWorkOrder(actor, access.WorkOrderRead, wo) {
		return nil, ErrForbidden
	}
	return wo, nil
}

func (s *Service) Create(ctx context.Context, actor *domain.User, req CreateWorkOrderRequest) (*domain.WorkOrder, error) {
	if !access.Can(actor.Role, access.WorkOrderCreate) {
		return nil, ErrForbidden
	}

	requestType := domain.RequestType(req.RequestType)
	if !requestType.Valid() {
		return nil, ErrInvalidValue
	}
	slaType := domain.SLAType(req.SLAType)
	if req.SLAType == "" {
		slaType = domain.SLANormal
	}
	if !slaType.Valid() {
		return nil, ErrInvalidValue
	}

	client, err := s.users.GetByID(ctx, req.ClientID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrClientNotFound
		}
		return nil, err
	}

	assignedToName := ""
	if req.AssignedToID != "" {
		if assignee, err := s.users.GetByID(ctx, req.AssignedToID); err == nil {
			assignedToName = assignee.Name
		}
	}

	now := time.Now().UTC()
	wo := &domain.WorkOrder{
		ID:             uuid.NewString(),
		Title:          req.Title,
		Description:    req.Description,
		Status:         domain.StatusPending,
		RequestType:    requestType,
		SLAType:        slaType,
		Location:       req.Location,
		Department:     req.Department,
		ClientID:       req.ClientID,
		ClientName:     client.Name,
		AssignedToID:   req.AssignedToID,
		AssignedToName: assignedToName,
		StartDate:      req.StartDate,
		DueDate:        req.DueDate,
		DurationDays:   req.DurationDays,
		CreatedByID:    actor.ID,
		CreatedByName:  actor.Name,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := s.workOrders.Create(ctx, wo); err != nil {
		return nil, err
	}

	link := "/work-orders/" + wo.ID
	if err := s.notifier.Notify(ctx, wo.ClientID, "New Work Order",
		fmt.Sprintf("Work order %s has been created", wo.RequestID), link); err != nil {
		return nil, err
	}
	if wo.AssignedToID != "" {
		if err := s.notifier.Notify(ctx, wo.AssignedToID, "New Assignment",
			fmt.Sprintf("You have been assigned to work order %s", wo.RequestID), link); err != nil {
			return nil, err
		}
	}

	return wo, nil
}

// Update merges the provided fields. Status values are validated but no
// transition graph is enforced: any authorized caller may move an order
// to any status, matching the historical behavior.
func (s *Service) Update(ctx context.Context, actor *domain.User, id string, req UpdateWorkOrderRequest) (*domain.WorkOrder, error) {
	wo, err := s.workOrders.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if !access.CanWorkOrder(actor, access.WorkOrderUpdate, wo) {
		return nil, ErrForbidden
	}

	fields := map[string]any{}
	if req.Title != nil {
		fields["title"] = *req.Title
	}
	if req.Description != nil {
		fields["description"] = *req.Description
	}
	if req.Status != nil {
		if !domain.WorkOrderStatus(*req.Status).Valid() {
			return nil, ErrInvalidValue
		}
		fields["status"] = *req.Status
	}
	if req.RequestType != nil {
		if !domain.RequestType(*req.RequestType).Valid() {
			return nil, ErrInvalidValue
		}
		fields["request_type"] = *req.RequestType
	}
	if req.SLAType != nil {
		if !domain.SLAType(*req.SLAType).Valid() {
			return nil, ErrInvalidValue
		}
		fields["sla_type"] = *req.SLAType
	}
	if req.Location != nil {
		fields["location"] = *req.Location
	}
	if req.Department != nil {
		fields["department"] = *req.Department
	}
	if req.StartDate != nil {
		fields["start_date"] = *req.StartDate
	}
	if req.DueDate != nil {
		fields["due_date"] = *req.DueDate
	}
	if req.CompletedAt != nil {
		fields["completed_at"] = *req.CompletedAt
	}
	if req.DurationDays != nil {
		fields["duration_days"] = *req.DurationDays
	}
	if req.IsDelayed != nil {
		fields["is_delayed"] = *req.IsDelayed
	}

	notifyAssignee := ""
	if req.AssignedToID != nil {
		fields["assigned_to_id"] = *req.AssignedToID
		// Refresh the denormalized name whenever the assignee changes.
		if *req.AssignedToID != "" {
			if assignee, err := s.users.GetByID(ctx, *req.AssignedToID); err == nil {
				fields["assigned_to_name"] = assignee.Name
				notifyAssignee = *req.AssignedToID
			}
		}
	}

	fields["updated_at"] = time.Now().UTC()

	if err := s.workOrders.UpdateFields(ctx, id, fields); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	link := "/work-orders/" + id
	if notifyAssignee != "" {
		if err := s.notifier.Notify(ctx, notifyAssignee, "New Assignment",
			fmt.Sprintf("You have been assigned to work order %s", wo.RequestID), link); err != nil {
			return nil, err
		}
	}
	if req.Status != nil {
		if err := s.notifier.Notify(ctx, wo.ClientID, "Work Order Updated",
			fmt.Sprintf("Work order %s status changed to %s", wo.RequestID, *req.Status), link); err != nil {
			return nil, err
		}
	}

	return s.workOrders.GetByID(ctx, id)
}

func (s *Service) Delete(ctx context.Context, actor *domain.User, id string) error {
	if !access.Can(actor.Role, access.WorkOrderDelete) {
		return ErrForbidden
	}

	if err := s.workOrders.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

func (s *Service) ListComments(ctx context.Context, workOrderID string) ([]domain.Comment, error) {
	return s.comments.ListByWorkOrder(ctx, workOrderID)
}

func (s *Service) AddComment(ctx context.Context, actor *domain.User, workOrderID string, req CreateCommentRequest) (*domain.Comment, error) {
	if _, err := s.workOrders.GetByID(ctx, workOrderID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	comment := &domain.Comment{
		ID:          uuid.NewString(),
		WorkOrderID: workOrderID,
		UserID:      actor.ID,
		UserName:    actor.Name,
		UserRole:    actor.Role,
		Content:     req.Content,
		CreatedAt:   time.Now().UTC(),
	}
	if err := s.comments.Create(ctx, comment); err != nil {
		return nil, err
	}
	return comment, nil
}

func (s *Service) ListCosts(ctx context.Context, workOrderID string) ([]domain.CostEntry, error) {
	return s.costs.ListByWorkOrder(ctx, workOrderID)
}

// AddCost inserts the entry and refreshes the parent's total from the
// full entry set inside one transaction.
func (s *Service) AddCost(ctx context.Context, actor *domain.User, workOrderID string, req CreateCostEntryRequest) (*domain.CostEntry, error) {
	if !access.Can(actor.Role, access.CostCreate) {
		return nil, ErrForbidden
	}

	if _, err := s.workOrders.GetByID(ctx, workOrderID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	entry := &domain.CostEntry{
		ID:            uuid.NewString(),
		WorkOrderID:   workOrderID,
		Description:   req.Description,
		CostType:      req.CostType,
		Amount:        req.Amount,
		CreatedByID:   actor.ID,
		CreatedByName: actor.Name,
		CreatedAt:     time.Now().UTC(),
	}
	if _, err := s.costs.CreateAndRecompute(ctx, entry); err != nil {
		return nil, err
	}
	return entry, nil
}

// Stats aggregates over the same role scope as List, so every role sees
// numbers for exactly the orders it can list.
func (s *Service) Stats(ctx context.Context, actor *domain.User) (*DashboardStats, error) {
	raw, err := s.workOrders.Stats(ctx, access.WorkOrderScope(actor))
	if err != nil {
		return nil, err
	}

	stats := &DashboardStats{
		TotalOrders: raw.Total,
		Pending:     raw.Pending,
		InProgress:  raw.InProgress,
		Completed:   raw.Completed,
		Approved:    raw.Approved,
		TotalCost:   raw.TotalCost,
	}
	if raw.Total > 0 {
		rate := float64(raw.Completed+raw.Approved) / float64(raw.Total) * 100
		stats.CompletionRate = math.Round(rate*100) / 100
	}
	return stats, nil
}
