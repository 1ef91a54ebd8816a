package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sofazi/backoffice-api/internal/domain/entity"
	"github.com/sofazi/backoffice-api/internal/domain/enum"
	"github.com/sofazi/backoffice-api/internal/domain/repository"
	"github.com/sofazi/backoffice-api/pkg/apperror"
)

// WorkerService handles worker accounts and the salary accrual period.
// Every counter mutation writes a WorkerHistory entry so the period can be
// reconstructed after a payout resets it.
type WorkerService struct {
	workerRepo  repository.WorkerRepository
	historyRepo repository.WorkerHistoryRepository
	// lateHourRate is the flat deduction per recorded late hour
	lateHourRate float64
}

// NewWorkerService creates a new worker service
func NewWorkerService(
	workerRepo repository.WorkerRepository,
	historyRepo repository.WorkerHistoryRepository,
	lateHourRate float64,
) *WorkerService {
	if lateHourRate <= 0 {
		lateHourRate = entity.DefaultLateHourRate
	}
	return &WorkerService{
		workerRepo:   workerRepo,
		historyRepo:  historyRepo,
		lateHourRate: lateHourRate,
	}
}

// TotalSalary returns the salary owed to the worker for the current
// accrual period, as of now.
func (s *WorkerService) TotalSalary(w *entity.Worker) float64 {
	return w.TotalSalaryAt(time.Now().UTC(), s.lateHourRate)
}

// CreateWorkerInput represents the input for creating a worker
type CreateWorkerInput struct {
	Name          string
	Phone         string
	Address       string
	IDCard        string
	StartDate     time.Time
	MonthlySalary float64
}

// CreateWorker registers a new worker and opens their first accrual period.
func (s *WorkerService) CreateWorker(ctx context.Context, input *CreateWorkerInput) (*entity.Worker, error) {
	if input.MonthlySalary < 0 {
		return nil, apperror.NewBadRequestError("Monthly salary cannot be negative")
	}

	startDate := input.StartDate
	if startDate.IsZero() {
		startDate = time.Now().UTC()
	}

	worker := &entity.Worker{
		Name:          input.Name,
		Phone:         input.Phone,
		Address:       input.Address,
		IDCard:        input.IDCard,
		StartDate:     startDate,
		MonthlySalary: input.MonthlySalary,
		IsActive:      true,
	}

	if err := s.workerRepo.Create(ctx, worker); err != nil {
		return nil, err
	}
	return worker, nil
}

// GetWorker returns a worker by ID
func (s *WorkerService) GetWorker(ctx context.Context, id uuid.UUID) (*entity.Worker, error) {
	worker, err := s.workerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if worker == nil {
		return nil, apperror.NewNotFoundError("Worker")
	}
	return worker, nil
}

// ListWorkers returns all workers, optionally only the active ones.
func (s *WorkerService) ListWorkers(ctx context.Context, activeOnly bool) ([]entity.Worker, error) {
	return s.workerRepo.List(ctx, activeOnly)
}

// UpdateWorkerInput represents the editable fields of a worker
type UpdateWorkerInput struct {
	Name          *string
	Phone         *string
	Address       *string
	IDCard        *string
	MonthlySalary *float64
}

// UpdateWorker edits a worker's profile. The salary change applies to the
// whole current period; past payouts are not recomputed.
func (s *WorkerService) UpdateWorker(ctx context.Context, id uuid.UUID, input *UpdateWorkerInput) (*entity.Worker, error) {
	worker, err := s.GetWorker(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		worker.Name = *input.Name
	}
	if input.Phone != nil {
		worker.Phone = *input.Phone
	}
	if input.Address != nil {
		worker.Address = *input.Address
	}
	if input.IDCard != nil {
		worker.IDCard = *input.IDCard
	}
	if input.MonthlySalary != nil {
		if *input.MonthlySalary < 0 {
			return nil, apperror.NewBadRequestError("Monthly salary cannot be negative")
		}
		worker.MonthlySalary = *input.MonthlySalary
	}

	if err := s.workerRepo.Update(ctx, worker); err != nil {
		return nil, err
	}
	return worker, nil
}

// DeleteWorker removes a worker. History entries stay for auditing.
func (s *WorkerService) DeleteWorker(ctx context.Context, id uuid.UUID) error {
	worker, err := s.workerRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if worker == nil {
		return apperror.NewNotFoundError("Worker")
	}
	return s.workerRepo.Delete(ctx, id)
}

// ToggleActive flips the worker's active flag. Inactive workers keep
// accruing nothing new but their period counters are preserved.
func (s *WorkerService) ToggleActive(ctx context.Context, id uuid.UUID) (*entity.Worker, error) {
	worker, err := s.GetWorker(ctx, id)
	if err != nil {
		return nil, err
	}

	worker.IsActive = !worker.IsActive
	if err := s.workerRepo.Update(ctx, worker); err != nil {
		return nil, err
	}

	state := "deactivated"
	if worker.IsActive {
		state = "activated"
	}
	s.appendHistory(ctx, worker.ID, "Status change", fmt.Sprintf("Worker %s", state), 0)

	return worker, nil
}

// RecordAbsence adds a full or half missed day to the current period.
func (s *WorkerService) RecordAbsence(ctx context.Context, id uuid.UUID, kind enum.AbsenceKind, notes string) (*entity.Worker, error) {
	worker, err := s.GetWorker(ctx, id)
	if err != nil {
		return nil, err
	}

	days := kind.Days()
	worker.Absences += days
	if err := s.workerRepo.Update(ctx, worker); err != nil {
		return nil, err
	}

	details := fmt.Sprintf("%s day absence recorded", kind)
	if notes != "" {
		details = fmt.Sprintf("%s: %s", details, notes)
	}
	s.appendHistory(ctx, worker.ID, "Absence", details, -days*worker.DailySalary())

	return worker, nil
}

// RecordAdvance hands out salary money before payday. Advances may exceed
// the salary earned so far; the period total just floors at zero.
func (s *WorkerService) RecordAdvance(ctx context.Context, id uuid.UUID, amount float64, notes string) (*entity.Worker, error) {
	if amount <= 0 {
		return nil, apperror.ErrInvalidAmount
	}

	worker, err := s.GetWorker(ctx, id)
	if err != nil {
		return nil, err
	}

	worker.Advances += amount
	if err := s.workerRepo.Update(ctx, worker); err != nil {
		return nil, err
	}

	details := fmt.Sprintf("Advance of %.2f paid out", amount)
	if notes != "" {
		details = fmt.Sprintf("%s: %s", details, notes)
	}
	s.appendHistory(ctx, worker.ID, "Advance", details, -amount)

	return worker, nil
}

// RecordIncentive adds a one-off bonus to the current period.
func (s *WorkerService) RecordIncentive(ctx context.Context, id uuid.UUID, amount float64, reason string) (*entity.Worker, error) {
	if amount <= 0 {
		return nil, apperror.ErrInvalidAmount
	}

	worker, err := s.GetWorker(ctx, id)
	if err != nil {
		return nil, err
	}

	worker.Incentives += amount
	if err := s.workerRepo.Update(ctx, worker); err != nil {
		return nil, err
	}

	details := fmt.Sprintf("Incentive of %.2f", amount)
	if reason != "" {
		details = fmt.Sprintf("%s: %s", details, reason)
	}
	s.appendHistory(ctx, worker.ID, "Incentive", details, amount)

	return worker, nil
}

// RecordOutsideWork logs days worked away from the shop plus the agreed
// bonus for them.
func (s *WorkerService) RecordOutsideWork(ctx context.Context, id uuid.UUID, days int, bonus float64) (*entity.Worker, error) {
	if days <= 0 {
		return nil, apperror.NewBadRequestError("Days must be greater than zero")
	}
	if bonus < 0 {
		return nil, apperror.NewBadRequestError("Bonus cannot be negative")
	}

	worker, err := s.GetWorker(ctx, id)
	if err != nil {
		return nil, err
	}

	worker.OutsideWorkDays += days
	worker.OutsideWorkBonus += bonus
	if err := s.workerRepo.Update(ctx, worker); err != nil {
		return nil, err
	}

	s.appendHistory(ctx, worker.ID, "Outside work",
		fmt.Sprintf("%d day(s) of outside work, bonus %.2f", days, bonus), bonus)

	return worker, nil
}

// RecordLateHours adds late hours to the current period. Each hour deducts
// a flat rate from the period's salary.
func (s *WorkerService) RecordLateHours(ctx context.Context, id uuid.UUID, hours float64) (*entity.Worker, error) {
	if hours <= 0 {
		return nil, apperror.NewBadRequestError("Hours must be greater than zero")
	}

	worker, err := s.GetWorker(ctx, id)
	if err != nil {
		return nil, err
	}

	worker.LateHours += hours
	if err := s.workerRepo.Update(ctx, worker); err != nil {
		return nil, err
	}

	s.appendHistory(ctx, worker.ID, "Late hours",
		fmt.Sprintf("%.2f late hour(s) recorded", hours), -(hours * s.lateHourRate))

	return worker, nil
}

// SalaryPayout is the snapshot written when a salary is paid
type SalaryPayout struct {
	Worker     *entity.Worker `json:"worker"`
	AmountPaid float64        `json:"amount_paid"`
	TotalOwed  float64        `json:"total_owed"`
	Method     string         `json:"method"`
	PaidAt     time.Time      `json:"paid_at"`
}

// PaySalary pays out up to the salary owed for the current period and
// starts a fresh one. The period resets fully even when the payout is
// partial; the difference is recorded in the history entry, not carried
// forward.
func (s *WorkerService) PaySalary(ctx context.Context, id uuid.UUID, amount float64, method, notes string) (*SalaryPayout, error) {
	if amount <= 0 {
		return nil, apperror.ErrInvalidAmount
	}
	if method == "" {
		method = "cash"
	}

	worker, err := s.GetWorker(ctx, id)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	owed := worker.TotalSalaryAt(now, s.lateHourRate)
	if amount > owed {
		return nil, apperror.NewBalanceExceededError(
			fmt.Sprintf("Payout of %.2f exceeds salary owed of %.2f", amount, owed))
	}

	counters := fmt.Sprintf(
		"days worked: %.0f, absences: %.1f, advances: %.2f, incentives: %.2f, outside bonus: %.2f, late hours: %.2f",
		worker.DaysWorked(now), worker.Absences, worker.Advances,
		worker.Incentives, worker.OutsideWorkBonus, worker.LateHours)

	worker.ResetPeriod(now)
	if err := s.workerRepo.Update(ctx, worker); err != nil {
		return nil, err
	}

	details := fmt.Sprintf(
		"Salary payout of %.2f against %.2f owed via %s (%s); new period from %s",
		amount, owed, method, counters, worker.StartDate.Format("2006-01-02"))
	if notes != "" {
		details = fmt.Sprintf("%s; notes: %s", details, notes)
	}
	s.appendHistory(ctx, worker.ID, "Salary payout", details, -amount)

	return &SalaryPayout{
		Worker:     worker,
		AmountPaid: amount,
		TotalOwed:  owed,
		Method:     method,
		PaidAt:     now,
	}, nil
}

// History returns the worker's audit log, newest first.
func (s *WorkerService) History(ctx context.Context, id uuid.UUID) ([]entity.WorkerHistory, error) {
	worker, err := s.workerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if worker == nil {
		return nil, apperror.NewNotFoundError("Worker")
	}
	return s.historyRepo.ListByWorker(ctx, id)
}

// appendHistory writes an audit entry. History is best-effort: a failed
// write is logged by the repository layer, never fails the operation.
func (s *WorkerService) appendHistory(ctx context.Context, workerID uuid.UUID, changeType, details string, amount float64) {
	entry := &entity.WorkerHistory{
		WorkerID:   workerID,
		ChangeType: changeType,
		Details:    details,
		Amount:     amount,
	}
	_ = s.historyRepo.Append(ctx, entry)
}
