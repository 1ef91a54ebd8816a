package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/sofazi/backoffice-api/internal/application/service"
	"github.com/sofazi/backoffice-api/internal/domain/entity"
	"github.com/sofazi/backoffice-api/internal/domain/repository"
	"github.com/sofazi/backoffice-api/internal/presentation/http/dto/request"
	"github.com/sofazi/backoffice-api/internal/presentation/http/dto/response"
	"github.com/sofazi/backoffice-api/pkg/pagination"
)

// OrderHandler handles order-related HTTP requests
type OrderHandler struct {
	orderService *service.OrderService
}

// NewOrderHandler creates a new order handler
func NewOrderHandler(orderService *service.OrderService) *OrderHandler {
	return &OrderHandler{orderService: orderService}
}

// List handles listing orders
func (h *OrderHandler) List(c *gin.Context) {
	var filter request.OrderFilterRequest
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	params := &repository.OrderFilterParams{
		Pagination: &pagination.PaginationParams{
			Page:    filter.Page,
			PerPage: filter.PerPage,
		},
		Search:   filter.Search,
		StatusID: parseOptionalUUID(filter.StatusID),
		IsPaid:   filter.IsPaid,
	}

	result, err := h.orderService.ListOrders(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Orders retrieved successfully", result)
}

// Get handles retrieving an order with its details
func (h *OrderHandler) Get(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid order ID")
		return
	}

	order, err := h.orderService.GetOrder(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Order retrieved successfully", order)
}

// Create handles creating an order
func (h *OrderHandler) Create(c *gin.Context) {
	var req request.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	order, err := h.orderService.CreateOrder(c.Request.Context(), &service.CreateOrderInput{
		Name:                 req.Name,
		Wilaya:               req.Wilaya,
		Product:              req.Product,
		Paid:                 req.Paid,
		Total:                req.Total,
		Note:                 req.Note,
		StatusID:             req.StatusID,
		Phones:               req.Phones,
		AssignedWorkerID:     req.AssignedWorkerID,
		ProductionDetails:    req.ProductionDetails,
		ExpectedDeliveryDate: req.ExpectedDeliveryDate,
		IsTravelAssignment:   req.IsTravelAssignment,
		TravelWorkerID:       req.TravelWorkerID,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Order created successfully", order)
}

// Update handles editing an order
func (h *OrderHandler) Update(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid order ID")
		return
	}

	var req request.UpdateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	order, err := h.orderService.UpdateOrder(c.Request.Context(), id, &service.UpdateOrderInput{
		Name:                 req.Name,
		Wilaya:               req.Wilaya,
		Product:              req.Product,
		Total:                req.Total,
		Note:                 req.Note,
		StatusID:             req.StatusID,
		Phones:               req.Phones,
		AssignedWorkerID:     req.AssignedWorkerID,
		ProductionDetails:    req.ProductionDetails,
		ExpectedDeliveryDate: req.ExpectedDeliveryDate,
		ActualDeliveryDate:   req.ActualDeliveryDate,
		IsTravelAssignment:   req.IsTravelAssignment,
		TravelWorkerID:       req.TravelWorkerID,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Order updated successfully", order)
}

// AddPayment handles recording a payment on an order
func (h *OrderHandler) AddPayment(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid order ID")
		return
	}

	var req request.OrderPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	order, err := h.orderService.AddPayment(c.Request.Context(), id, req.Amount)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Payment recorded successfully", order)
}

// Delete handles removing an order
func (h *OrderHandler) Delete(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid order ID")
		return
	}

	if err := h.orderService.DeleteOrder(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}

// History handles listing an order's audit log
func (h *OrderHandler) History(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid order ID")
		return
	}

	entries, err := h.orderService.OrderHistory(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Order history retrieved successfully", entries)
}

// ListStatuses handles listing order status labels
func (h *OrderHandler) ListStatuses(c *gin.Context) {
	statuses, err := h.orderService.ListStatuses(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Statuses retrieved successfully", statuses)
}

// CreateStatus handles creating an order status label
func (h *OrderHandler) CreateStatus(c *gin.Context) {
	var req request.CreateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	status := &entity.Status{Name: req.Name}
	if req.Color != "" {
		status.Color = req.Color
	}

	if err := h.orderService.CreateStatus(c.Request.Context(), status); err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Status created successfully", status)
}

// DeleteStatus handles removing an order status label
func (h *OrderHandler) DeleteStatus(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid status ID")
		return
	}

	if err := h.orderService.DeleteStatus(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}
