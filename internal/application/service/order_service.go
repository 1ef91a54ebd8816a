package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sofazi/backoffice-api/internal/domain/entity"
	"github.com/sofazi/backoffice-api/internal/domain/repository"
	"github.com/sofazi/backoffice-api/pkg/apperror"
	"github.com/sofazi/backoffice-api/pkg/pagination"
)

// OrderService handles customer orders and their payment tracking. Order
// payments clamp to the total instead of rejecting overshoot; customers
// rounding up a final cash payment is normal.
type OrderService struct {
	orderRepo   repository.OrderRepository
	historyRepo repository.OrderHistoryRepository
	statusRepo  repository.StatusRepository
	workerRepo  repository.WorkerRepository
}

// NewOrderService creates a new order service
func NewOrderService(
	orderRepo repository.OrderRepository,
	historyRepo repository.OrderHistoryRepository,
	statusRepo repository.StatusRepository,
	workerRepo repository.WorkerRepository,
) *OrderService {
	return &OrderService{
		orderRepo:   orderRepo,
		historyRepo: historyRepo,
		statusRepo:  statusRepo,
		workerRepo:  workerRepo,
	}
}

// CreateOrderInput represents the input for creating an order
type CreateOrderInput struct {
	Name                 string
	Wilaya               string
	Product              string
	Paid                 float64
	Total                float64
	Note                 string
	StatusID             *uuid.UUID
	Phones               []string
	AssignedWorkerID     *uuid.UUID
	ProductionDetails    string
	ExpectedDeliveryDate *time.Time
	IsTravelAssignment   bool
	TravelWorkerID       *uuid.UUID
}

// CreateOrder records a new customer order with its phone numbers.
func (s *OrderService) CreateOrder(ctx context.Context, input *CreateOrderInput) (*entity.Order, error) {
	if input.Total < 0 || input.Paid < 0 {
		return nil, apperror.NewBadRequestError("Amounts cannot be negative")
	}
	if input.Paid > input.Total {
		input.Paid = input.Total
	}

	if input.StatusID != nil {
		status, err := s.statusRepo.GetByID(ctx, *input.StatusID)
		if err != nil {
			return nil, err
		}
		if status == nil {
			return nil, apperror.NewNotFoundError("Status")
		}
	}
	if input.AssignedWorkerID != nil {
		worker, err := s.workerRepo.GetByID(ctx, *input.AssignedWorkerID)
		if err != nil {
			return nil, err
		}
		if worker == nil {
			return nil, apperror.NewNotFoundError("Worker")
		}
	}

	order := &entity.Order{
		Name:                 input.Name,
		Wilaya:               input.Wilaya,
		Product:              input.Product,
		Paid:                 input.Paid,
		Total:                input.Total,
		Note:                 input.Note,
		StatusID:             input.StatusID,
		IsPaid:               input.Total > 0 && input.Paid >= input.Total,
		AssignedWorkerID:     input.AssignedWorkerID,
		ProductionDetails:    input.ProductionDetails,
		ExpectedDeliveryDate: input.ExpectedDeliveryDate,
		IsTravelAssignment:   input.IsTravelAssignment,
		TravelWorkerID:       input.TravelWorkerID,
	}

	for _, number := range input.Phones {
		if number == "" {
			continue
		}
		order.Phones = append(order.Phones, entity.PhoneNumber{
			Number:    number,
			IsPrimary: len(order.Phones) == 0,
		})
	}

	if err := s.orderRepo.Create(ctx, order); err != nil {
		return nil, err
	}

	s.appendHistory(ctx, order.ID, "Created", fmt.Sprintf("Order created, total %.2f, paid %.2f", order.Total, order.Paid))

	return order, nil
}

// GetOrder returns an order with status, workers, phones and history
func (s *OrderService) GetOrder(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	order, err := s.orderRepo.GetWithDetails(ctx, id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, apperror.NewNotFoundError("Order")
	}
	return order, nil
}

// ListOrders returns a filtered page of orders
func (s *OrderService) ListOrders(ctx context.Context, params *repository.OrderFilterParams) (*pagination.PaginatedResult[entity.Order], error) {
	if params.Pagination == nil {
		params.Pagination = pagination.DefaultPagination()
	}

	orders, total, err := s.orderRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	p := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(orders, p), nil
}

// AddPayment records a payment on an order. The paid figure clamps at the
// total and the order flips to paid once covered.
func (s *OrderService) AddPayment(ctx context.Context, id uuid.UUID, amount float64) (*entity.Order, error) {
	if amount <= 0 {
		return nil, apperror.ErrInvalidAmount
	}

	order, err := s.orderRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, apperror.NewNotFoundError("Order")
	}

	order.Paid += amount
	if order.Paid > order.Total {
		order.Paid = order.Total
	}
	order.IsPaid = order.Total > 0 && order.Paid >= order.Total

	if err := s.orderRepo.Update(ctx, order); err != nil {
		return nil, err
	}

	s.appendHistory(ctx, order.ID, "Payment",
		fmt.Sprintf("Payment of %.2f received, %.2f remaining", amount, order.Remaining()))

	return order, nil
}

// UpdateOrderInput represents the editable fields of an order
type UpdateOrderInput struct {
	Name                 *string
	Wilaya               *string
	Product              *string
	Total                *float64
	Note                 *string
	StatusID             *uuid.UUID
	Phones               []string
	AssignedWorkerID     *uuid.UUID
	ProductionDetails    *string
	ExpectedDeliveryDate *time.Time
	ActualDeliveryDate   *time.Time
	IsTravelAssignment   *bool
	TravelWorkerID       *uuid.UUID
}

// UpdateOrder edits an order. Status changes are logged to the order's
// history with the old and new labels.
func (s *OrderService) UpdateOrder(ctx context.Context, id uuid.UUID, input *UpdateOrderInput) (*entity.Order, error) {
	order, err := s.orderRepo.GetWithDetails(ctx, id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, apperror.NewNotFoundError("Order")
	}

	if input.Name != nil {
		order.Name = *input.Name
	}
	if input.Wilaya != nil {
		order.Wilaya = *input.Wilaya
	}
	if input.Product != nil {
		order.Product = *input.Product
	}
	if input.Total != nil {
		if *input.Total < 0 {
			return nil, apperror.NewBadRequestError("Total cannot be negative")
		}
		order.Total = *input.Total
		order.IsPaid = order.Total > 0 && order.Paid >= order.Total
	}
	if input.Note != nil {
		order.Note = *input.Note
	}
	if input.StatusID != nil && (order.StatusID == nil || *input.StatusID != *order.StatusID) {
		newStatus, err := s.statusRepo.GetByID(ctx, *input.StatusID)
		if err != nil {
			return nil, err
		}
		if newStatus == nil {
			return nil, apperror.NewNotFoundError("Status")
		}

		oldName := "none"
		if order.Status != nil {
			oldName = order.Status.Name
		}
		s.appendHistory(ctx, order.ID, "Status change",
			fmt.Sprintf("Status changed from %s to %s", oldName, newStatus.Name))

		order.StatusID = input.StatusID
		order.Status = newStatus
	}
	if input.AssignedWorkerID != nil {
		order.AssignedWorkerID = input.AssignedWorkerID
	}
	if input.ProductionDetails != nil {
		order.ProductionDetails = *input.ProductionDetails
	}
	if input.ExpectedDeliveryDate != nil {
		order.ExpectedDeliveryDate = input.ExpectedDeliveryDate
	}
	if input.ActualDeliveryDate != nil {
		order.ActualDeliveryDate = input.ActualDeliveryDate
	}
	if input.IsTravelAssignment != nil {
		order.IsTravelAssignment = *input.IsTravelAssignment
	}
	if input.TravelWorkerID != nil {
		order.TravelWorkerID = input.TravelWorkerID
	}

	// Detach associations so Save does not re-insert them
	phones := order.Phones
	order.Phones = nil
	order.History = nil

	if err := s.orderRepo.Update(ctx, order); err != nil {
		return nil, err
	}

	if input.Phones != nil {
		newPhones := make([]entity.PhoneNumber, 0, len(input.Phones))
		for _, number := range input.Phones {
			if number == "" {
				continue
			}
			newPhones = append(newPhones, entity.PhoneNumber{
				Number:    number,
				IsPrimary: len(newPhones) == 0,
			})
		}
		if err := s.orderRepo.ReplacePhones(ctx, order.ID, newPhones); err != nil {
			return nil, err
		}
		order.Phones = newPhones
	} else {
		order.Phones = phones
	}

	return order, nil
}

// DeleteOrder removes an order
func (s *OrderService) DeleteOrder(ctx context.Context, id uuid.UUID) error {
	order, err := s.orderRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if order == nil {
		return apperror.NewNotFoundError("Order")
	}
	return s.orderRepo.Delete(ctx, id)
}

// OrderHistory returns the order's audit log, newest first
func (s *OrderService) OrderHistory(ctx context.Context, id uuid.UUID) ([]entity.OrderHistory, error) {
	order, err := s.orderRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, apperror.NewNotFoundError("Order")
	}
	return s.historyRepo.ListByOrder(ctx, id)
}

// ListStatuses returns all order status labels
func (s *OrderService) ListStatuses(ctx context.Context) ([]entity.Status, error) {
	return s.statusRepo.List(ctx)
}

// CreateStatus adds an order status label
func (s *OrderService) CreateStatus(ctx context.Context, status *entity.Status) error {
	return s.statusRepo.Create(ctx, status)
}

// DeleteStatus removes an order status label
func (s *OrderService) DeleteStatus(ctx context.Context, id uuid.UUID) error {
	return s.statusRepo.Delete(ctx, id)
}

func (s *OrderService) appendHistory(ctx context.Context, orderID uuid.UUID, changeType, details string) {
	entry := &entity.OrderHistory{
		OrderID:    orderID,
		ChangeType: changeType,
		Details:    details,
	}
	_ = s.historyRepo.Append(ctx, entry)
}
