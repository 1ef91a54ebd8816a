package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/sofazi/backoffice-api/internal/application/service"
	"github.com/sofazi/backoffice-api/internal/presentation/http/dto/request"
	"github.com/sofazi/backoffice-api/internal/presentation/http/dto/response"
)

// SettingsHandler handles system settings HTTP requests
type SettingsHandler struct {
	settingsService *service.SettingsService
}

// NewSettingsHandler creates a new settings handler
func NewSettingsHandler(settingsService *service.SettingsService) *SettingsHandler {
	return &SettingsHandler{settingsService: settingsService}
}

// Get handles retrieving the settings row
func (h *SettingsHandler) Get(c *gin.Context) {
	settings, err := h.settingsService.GetSettings(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Settings retrieved successfully", settings)
}

// Update handles partial updates to the settings row
func (h *SettingsHandler) Update(c *gin.Context) {
	var req request.UpdateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	settings, err := h.settingsService.UpdateSettings(c.Request.Context(), &service.UpdateSettingsInput{
		CompanyName:            req.CompanyName,
		Logo:                   req.Logo,
		Currency:               req.Currency,
		Language:               req.Language,
		Theme:                  req.Theme,
		PrimaryColor:           req.PrimaryColor,
		RowsPerPage:            req.RowsPerPage,
		CompactMode:            req.CompactMode,
		ActivityLogging:        req.ActivityLogging,
		SessionTimeout:         req.SessionTimeout,
		EmailNotifications:     req.EmailNotifications,
		PaymentNotifications:   req.PaymentNotifications,
		InventoryNotifications: req.InventoryNotifications,
		NotificationTime:       req.NotificationTime,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Settings updated successfully", settings)
}
