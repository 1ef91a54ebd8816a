package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/sofazi/backoffice-api/internal/application/service"
	"github.com/sofazi/backoffice-api/internal/domain/entity"
	"github.com/sofazi/backoffice-api/internal/domain/enum"
	"github.com/sofazi/backoffice-api/internal/presentation/http/dto/request"
	"github.com/sofazi/backoffice-api/internal/presentation/http/dto/response"
)

// WorkerHandler handles worker-related HTTP requests
type WorkerHandler struct {
	workerService *service.WorkerService
}

// NewWorkerHandler creates a new worker handler
func NewWorkerHandler(workerService *service.WorkerService) *WorkerHandler {
	return &WorkerHandler{workerService: workerService}
}

// workerView is a worker plus the salary owed for the current period
type workerView struct {
	*entity.Worker
	TotalSalary float64 `json:"total_salary"`
}

func (h *WorkerHandler) view(w *entity.Worker) workerView {
	return workerView{Worker: w, TotalSalary: h.workerService.TotalSalary(w)}
}

// List handles listing workers with their computed salaries
func (h *WorkerHandler) List(c *gin.Context) {
	activeOnly := c.Query("active_only") == "true"

	workers, err := h.workerService.ListWorkers(c.Request.Context(), activeOnly)
	if err != nil {
		response.Error(c, err)
		return
	}

	views := make([]workerView, len(workers))
	for i := range workers {
		views[i] = h.view(&workers[i])
	}

	response.OK(c, "Workers retrieved successfully", views)
}

// Get handles retrieving a single worker
func (h *WorkerHandler) Get(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid worker ID")
		return
	}

	worker, err := h.workerService.GetWorker(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Worker retrieved successfully", h.view(worker))
}

// Create handles registering a worker
func (h *WorkerHandler) Create(c *gin.Context) {
	var req request.CreateWorkerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	input := &service.CreateWorkerInput{
		Name:          req.Name,
		Phone:         req.Phone,
		Address:       req.Address,
		IDCard:        req.IDCard,
		MonthlySalary: req.MonthlySalary,
	}
	if req.StartDate != nil {
		input.StartDate = *req.StartDate
	}

	worker, err := h.workerService.CreateWorker(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Worker created successfully", h.view(worker))
}

// Update handles editing a worker's profile
func (h *WorkerHandler) Update(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid worker ID")
		return
	}

	var req request.UpdateWorkerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	worker, err := h.workerService.UpdateWorker(c.Request.Context(), id, &service.UpdateWorkerInput{
		Name:          req.Name,
		Phone:         req.Phone,
		Address:       req.Address,
		IDCard:        req.IDCard,
		MonthlySalary: req.MonthlySalary,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Worker updated successfully", h.view(worker))
}

// Delete handles removing a worker
func (h *WorkerHandler) Delete(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid worker ID")
		return
	}

	if err := h.workerService.DeleteWorker(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}

// ToggleActive handles flipping a worker's active flag
func (h *WorkerHandler) ToggleActive(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid worker ID")
		return
	}

	worker, err := h.workerService.ToggleActive(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Worker status updated successfully", h.view(worker))
}

// RecordAbsence handles recording a full or half day absence
func (h *WorkerHandler) RecordAbsence(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid worker ID")
		return
	}

	var req request.RecordAbsenceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	worker, err := h.workerService.RecordAbsence(c.Request.Context(), id, enum.AbsenceKind(req.Kind), req.Notes)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Absence recorded successfully", h.view(worker))
}

// RecordAdvance handles recording a salary advance
func (h *WorkerHandler) RecordAdvance(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid worker ID")
		return
	}

	var req request.RecordAmountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	worker, err := h.workerService.RecordAdvance(c.Request.Context(), id, req.Amount, req.Reason)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Advance recorded successfully", h.view(worker))
}

// RecordIncentive handles recording a bonus
func (h *WorkerHandler) RecordIncentive(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid worker ID")
		return
	}

	var req request.RecordAmountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	worker, err := h.workerService.RecordIncentive(c.Request.Context(), id, req.Amount, req.Reason)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Incentive recorded successfully", h.view(worker))
}

// RecordOutsideWork handles recording outside work days and bonus
func (h *WorkerHandler) RecordOutsideWork(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid worker ID")
		return
	}

	var req request.RecordOutsideWorkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	worker, err := h.workerService.RecordOutsideWork(c.Request.Context(), id, req.Days, req.Bonus)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Outside work recorded successfully", h.view(worker))
}

// RecordLateHours handles recording late hours
func (h *WorkerHandler) RecordLateHours(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid worker ID")
		return
	}

	var req request.RecordLateHoursRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	worker, err := h.workerService.RecordLateHours(c.Request.Context(), id, req.Hours)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Late hours recorded successfully", h.view(worker))
}

// PaySalary handles a salary payout and period reset
func (h *WorkerHandler) PaySalary(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid worker ID")
		return
	}

	var req request.PaySalaryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	payout, err := h.workerService.PaySalary(c.Request.Context(), id, req.Amount, req.Method, req.Notes)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Salary paid successfully", payout)
}

// History handles listing a worker's audit log
func (h *WorkerHandler) History(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid worker ID")
		return
	}

	entries, err := h.workerService.History(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Worker history retrieved successfully", entries)
}
