package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sofazi/backoffice-api/internal/application/service"
	"github.com/sofazi/backoffice-api/internal/domain/enum"
	"github.com/sofazi/backoffice-api/internal/domain/repository"
	"github.com/sofazi/backoffice-api/internal/presentation/http/dto/request"
	"github.com/sofazi/backoffice-api/internal/presentation/http/dto/response"
	"github.com/sofazi/backoffice-api/pkg/pagination"
)

// DebtHandler handles debt-related HTTP requests
type DebtHandler struct {
	debtService *service.DebtService
}

// NewDebtHandler creates a new debt handler
func NewDebtHandler(debtService *service.DebtService) *DebtHandler {
	return &DebtHandler{debtService: debtService}
}

// List handles listing debts. Missing derived debts are back-filled before
// the page is answered.
func (h *DebtHandler) List(c *gin.Context) {
	var filter request.DebtFilterRequest
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	params := &repository.DebtFilterParams{
		Pagination: &pagination.PaginationParams{
			Page:    filter.Page,
			PerPage: filter.PerPage,
		},
	}
	if filter.Status != "" {
		status := enum.DebtStatus(filter.Status)
		params.Status = &status
	}
	if filter.SourceType != "" {
		sourceType := enum.SourceType(filter.SourceType)
		params.SourceType = &sourceType
	}

	result, err := h.debtService.ListDebts(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Debts retrieved successfully", result)
}

// Get handles retrieving a single debt
func (h *DebtHandler) Get(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid debt ID")
		return
	}

	debt, err := h.debtService.GetDebt(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Debt retrieved successfully", debt)
}

// Create handles creating a manual debt
func (h *DebtHandler) Create(c *gin.Context) {
	var req request.CreateDebtRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	input := &service.CreateManualDebtInput{
		Name:        req.Name,
		Phone:       req.Phone,
		Address:     req.Address,
		DebtAmount:  req.DebtAmount,
		PaidAmount:  req.PaidAmount,
		Description: req.Description,
	}
	if req.StartDate != nil {
		input.StartDate = *req.StartDate
	}

	debt, err := h.debtService.CreateManual(c.Request.Context(), input, GetUsername(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Debt created successfully", debt)
}

// Update handles editing a debt's contact fields
func (h *DebtHandler) Update(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid debt ID")
		return
	}

	var req request.UpdateDebtRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	debt, err := h.debtService.UpdateDebt(c.Request.Context(), id, &service.UpdateDebtInput{
		Name:        req.Name,
		Phone:       req.Phone,
		Address:     req.Address,
		Description: req.Description,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Debt updated successfully", debt)
}

// Pay handles a partial or full payment against a debt
func (h *DebtHandler) Pay(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid debt ID")
		return
	}

	var req request.PayDebtRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	var date time.Time
	if req.Date != nil {
		date = *req.Date
	}

	debt, err := h.debtService.ApplyPayment(c.Request.Context(), id, req.Amount, date)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Payment recorded successfully", debt)
}

// PayFull handles settling a debt in one step
func (h *DebtHandler) PayFull(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid debt ID")
		return
	}

	debt, err := h.debtService.PayInFull(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Debt settled successfully", debt)
}

// Delete handles removing a debt
func (h *DebtHandler) Delete(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid debt ID")
		return
	}

	if err := h.debtService.DeleteDebt(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}
