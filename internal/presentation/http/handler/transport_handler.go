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

// TransportHandler handles transport-related HTTP requests
type TransportHandler struct {
	transportService *service.TransportService
}

// NewTransportHandler creates a new transport handler
func NewTransportHandler(transportService *service.TransportService) *TransportHandler {
	return &TransportHandler{transportService: transportService}
}

// List handles listing transport records
func (h *TransportHandler) List(c *gin.Context) {
	var filter request.TransportFilterRequest
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	params := &repository.TransportFilterParams{
		Pagination: &pagination.PaginationParams{
			Page:    filter.Page,
			PerPage: filter.PerPage,
		},
		Search:     filter.Search,
		Type:       filter.Type,
		CategoryID: parseOptionalUUID(filter.CategoryID),
	}

	result, err := h.transportService.ListTransports(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Transports retrieved successfully", result)
}

// Get handles retrieving a single transport record
func (h *TransportHandler) Get(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid transport ID")
		return
	}

	transport, err := h.transportService.GetTransport(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Transport retrieved successfully", transport)
}

// Create handles recording a transport cost
func (h *TransportHandler) Create(c *gin.Context) {
	var req request.CreateTransportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	input := &service.CreateTransportInput{
		Name:            req.Name,
		Phone:           req.Phone,
		Address:         req.Address,
		TransportAmount: req.TransportAmount,
		PaidAmount:      req.PaidAmount,
		Destination:     req.Destination,
		Type:            req.Type,
		CategoryID:      req.CategoryID,
		SubTypeID:       req.SubTypeID,
		TransportMethod: req.TransportMethod,
		Purpose:         req.Purpose,
		Distance:        req.Distance,
		Notes:           req.Notes,
		IsQuick:         req.IsQuick,
	}
	if req.TransportDate != nil {
		input.TransportDate = *req.TransportDate
	}

	transport, err := h.transportService.CreateTransport(c.Request.Context(), input, GetUsername(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Transport created successfully", transport)
}

// Update handles editing a transport record
func (h *TransportHandler) Update(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid transport ID")
		return
	}

	var req request.UpdateTransportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	transport, err := h.transportService.UpdateTransport(c.Request.Context(), id, &service.UpdateTransportInput{
		Name:            req.Name,
		Phone:           req.Phone,
		Address:         req.Address,
		Destination:     req.Destination,
		TransportMethod: req.TransportMethod,
		Purpose:         req.Purpose,
		Distance:        req.Distance,
		Notes:           req.Notes,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Transport updated successfully", transport)
}

// Delete handles removing a transport record
func (h *TransportHandler) Delete(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid transport ID")
		return
	}

	if err := h.transportService.DeleteTransport(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}

// ListCategories handles listing transport categories with sub-types
func (h *TransportHandler) ListCategories(c *gin.Context) {
	categories, err := h.transportService.ListCategories(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Transport categories retrieved successfully", categories)
}

// CreateCategory handles creating a transport category
func (h *TransportHandler) CreateCategory(c *gin.Context) {
	var req request.CreateTransportCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	category := &entity.TransportCategory{Name: req.Name, Icon: req.Icon}
	if req.Color != "" {
		category.Color = req.Color
	}

	if err := h.transportService.CreateCategory(c.Request.Context(), category); err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Transport category created successfully", category)
}

// CreateSubType handles creating a transport sub-type
func (h *TransportHandler) CreateSubType(c *gin.Context) {
	var req request.CreateTransportSubTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	subType := &entity.TransportSubType{Name: req.Name, CategoryID: req.CategoryID}
	if err := h.transportService.CreateSubType(c.Request.Context(), subType); err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Transport sub-type created successfully", subType)
}

// ListSubTypes handles listing transport sub-types
func (h *TransportHandler) ListSubTypes(c *gin.Context) {
	categoryID := parseOptionalUUID(c.Query("category_id"))

	subTypes, err := h.transportService.ListSubTypes(c.Request.Context(), categoryID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Transport sub-types retrieved successfully", subTypes)
}
