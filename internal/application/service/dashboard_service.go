package service

import (
	"context"
	"time"

	"github.com/sofazi/backoffice-api/internal/domain/enum"
	"github.com/sofazi/backoffice-api/internal/domain/repository"
)

// DashboardService aggregates the numbers shown on the landing page
type DashboardService struct {
	debtRepo      repository.DebtRepository
	expenseRepo   repository.ExpenseRepository
	orderRepo     repository.OrderRepository
	workerRepo    repository.WorkerRepository
	workerService *WorkerService
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(
	debtRepo repository.DebtRepository,
	expenseRepo repository.ExpenseRepository,
	orderRepo repository.OrderRepository,
	workerRepo repository.WorkerRepository,
	workerService *WorkerService,
) *DashboardService {
	return &DashboardService{
		debtRepo:      debtRepo,
		expenseRepo:   expenseRepo,
		orderRepo:     orderRepo,
		workerRepo:    workerRepo,
		workerService: workerService,
	}
}

// DashboardStats is the aggregate snapshot for the dashboard
type DashboardStats struct {
	TotalDebtOwed     float64                   `json:"total_debt_owed"`
	TotalDebtPaid     float64                   `json:"total_debt_paid"`
	UnpaidDebtCount   int64                     `json:"unpaid_debt_count"`
	PaidDebtCount     int64                     `json:"paid_debt_count"`
	DebtsBySource     map[enum.SourceType]int64 `json:"debts_by_source"`
	TotalExpenses     float64                   `json:"total_expenses"`
	TotalOrderRevenue float64                   `json:"total_order_revenue"`
	PaidOrders        int64                     `json:"paid_orders"`
	PendingOrders     int64                     `json:"pending_orders"`
	ActiveWorkers     int                       `json:"active_workers"`
	SalariesOwed      float64                   `json:"salaries_owed"`
	GeneratedAt       time.Time                 `json:"generated_at"`
}

// Stats gathers the dashboard snapshot. Each aggregate is one query; the
// salaries figure is computed in memory from the active workers.
func (s *DashboardService) Stats(ctx context.Context) (*DashboardStats, error) {
	totals, err := s.debtRepo.SumAmounts(ctx)
	if err != nil {
		return nil, err
	}

	bySource, err := s.debtRepo.CountBySource(ctx, enum.DebtStatusUnpaid)
	if err != nil {
		return nil, err
	}

	totalExpenses, err := s.expenseRepo.TotalAmount(ctx)
	if err != nil {
		return nil, err
	}

	paidOrders, pendingOrders, err := s.orderRepo.CountByPaid(ctx)
	if err != nil {
		return nil, err
	}

	orderRevenue, err := s.orderRepo.TotalAmount(ctx)
	if err != nil {
		return nil, err
	}

	workers, err := s.workerRepo.List(ctx, true)
	if err != nil {
		return nil, err
	}

	var salariesOwed float64
	for i := range workers {
		salariesOwed += s.workerService.TotalSalary(&workers[i])
	}

	return &DashboardStats{
		TotalDebtOwed:     totals.TotalOwed,
		TotalDebtPaid:     totals.TotalPaid,
		UnpaidDebtCount:   totals.UnpaidCount,
		PaidDebtCount:     totals.PaidCount,
		DebtsBySource:     bySource,
		TotalExpenses:     totalExpenses,
		TotalOrderRevenue: orderRevenue,
		PaidOrders:        paidOrders,
		PendingOrders:     pendingOrders,
		ActiveWorkers:     len(workers),
		SalariesOwed:      salariesOwed,
		GeneratedAt:       time.Now().UTC(),
	}, nil
}
