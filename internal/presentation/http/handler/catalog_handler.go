package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/sofazi/backoffice-api/internal/application/service"
	"github.com/sofazi/backoffice-api/internal/presentation/http/dto/request"
	"github.com/sofazi/backoffice-api/internal/presentation/http/dto/response"
)

// CatalogHandler handles expense category, product and price history
// HTTP requests
type CatalogHandler struct {
	catalogService *service.CatalogService
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(catalogService *service.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalogService: catalogService}
}

// ListCategories handles listing expense categories
func (h *CatalogHandler) ListCategories(c *gin.Context) {
	categories, err := h.catalogService.ListCategories(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Categories retrieved successfully", categories)
}

// CreateCategory handles creating an expense category
func (h *CatalogHandler) CreateCategory(c *gin.Context) {
	var req request.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	category, err := h.catalogService.CreateCategory(c.Request.Context(), req.Name, req.Color, req.Icon)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Category created successfully", category)
}

// DeleteCategory handles removing an expense category
func (h *CatalogHandler) DeleteCategory(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid category ID")
		return
	}

	if err := h.catalogService.DeleteCategory(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}

// ListProducts handles listing catalog products
func (h *CatalogHandler) ListProducts(c *gin.Context) {
	categoryID := parseOptionalUUID(c.Query("category_id"))

	products, err := h.catalogService.ListProducts(c.Request.Context(), categoryID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Products retrieved successfully", products)
}

// CreateProduct handles creating a catalog product
func (h *CatalogHandler) CreateProduct(c *gin.Context) {
	var req request.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	product, err := h.catalogService.CreateProduct(c.Request.Context(), req.Name, req.CategoryID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Product created successfully", product)
}

// DeleteProduct handles removing a catalog product
func (h *CatalogHandler) DeleteProduct(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid product ID")
		return
	}

	if err := h.catalogService.DeleteProduct(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}

// PriceHistory handles listing a product's historical prices
func (h *CatalogHandler) PriceHistory(c *gin.Context) {
	entries, err := h.catalogService.PriceHistory(c.Request.Context(), c.Query("product_name"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Price history retrieved successfully", entries)
}
