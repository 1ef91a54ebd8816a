package service_test

import (
	"context"

	"github.com/google/uuid"
	"github.com/sofazi/backoffice-api/internal/domain/entity"
	"github.com/sofazi/backoffice-api/internal/domain/enum"
	"github.com/sofazi/backoffice-api/internal/domain/repository"
)

// In-memory repository fakes. They keep copies of the stored entities so
// tests observe exactly what was persisted, not shared pointers.

type fakeDebtRepo struct {
	debts map[uuid.UUID]entity.Debt
	err   error
}

func newFakeDebtRepo() *fakeDebtRepo {
	return &fakeDebtRepo{debts: make(map[uuid.UUID]entity.Debt)}
}

func (f *fakeDebtRepo) Create(_ context.Context, debt *entity.Debt) error {
	if f.err != nil {
		return f.err
	}
	if debt.ID == uuid.Nil {
		debt.ID = uuid.New()
	}
	f.debts[debt.ID] = *debt
	return nil
}

func (f *fakeDebtRepo) GetByID(_ context.Context, id uuid.UUID) (*entity.Debt, error) {
	if f.err != nil {
		return nil, f.err
	}
	debt, ok := f.debts[id]
	if !ok {
		return nil, nil
	}
	return &debt, nil
}

func (f *fakeDebtRepo) GetBySource(_ context.Context, sourceType enum.SourceType, sourceID uuid.UUID) (*entity.Debt, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, debt := range f.debts {
		if debt.SourceType == sourceType && debt.SourceID != nil && *debt.SourceID == sourceID {
			d := debt
			return &d, nil
		}
	}
	return nil, nil
}

func (f *fakeDebtRepo) Update(_ context.Context, debt *entity.Debt) error {
	if f.err != nil {
		return f.err
	}
	f.debts[debt.ID] = *debt
	return nil
}

func (f *fakeDebtRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(f.debts, id)
	return nil
}

func (f *fakeDebtRepo) List(_ context.Context, params *repository.DebtFilterParams) ([]entity.Debt, int64, error) {
	var out []entity.Debt
	for _, debt := range f.debts {
		if params.Status != nil && debt.Status != *params.Status {
			continue
		}
		if params.SourceType != nil && debt.SourceType != *params.SourceType {
			continue
		}
		out = append(out, debt)
	}
	return out, int64(len(out)), nil
}

func (f *fakeDebtRepo) CountBySource(_ context.Context, status enum.DebtStatus) (map[enum.SourceType]int64, error) {
	counts := make(map[enum.SourceType]int64)
	for _, debt := range f.debts {
		if debt.Status == status {
			counts[debt.SourceType]++
		}
	}
	return counts, nil
}

func (f *fakeDebtRepo) SumAmounts(_ context.Context) (*repository.DebtTotals, error) {
	totals := &repository.DebtTotals{}
	for _, debt := range f.debts {
		totals.TotalAmount += debt.DebtAmount
		totals.TotalPaid += debt.PaidAmount
		if debt.Status == enum.DebtStatusUnpaid {
			totals.TotalOwed += debt.DebtAmount - debt.PaidAmount
			totals.UnpaidCount++
		} else {
			totals.PaidCount++
		}
	}
	return totals, nil
}

type fakeExpenseRepo struct {
	expenses map[uuid.UUID]entity.Expense
}

func newFakeExpenseRepo() *fakeExpenseRepo {
	return &fakeExpenseRepo{expenses: make(map[uuid.UUID]entity.Expense)}
}

func (f *fakeExpenseRepo) Create(_ context.Context, expense *entity.Expense) error {
	if expense.ID == uuid.Nil {
		expense.ID = uuid.New()
	}
	f.expenses[expense.ID] = *expense
	return nil
}

func (f *fakeExpenseRepo) GetByID(_ context.Context, id uuid.UUID) (*entity.Expense, error) {
	expense, ok := f.expenses[id]
	if !ok {
		return nil, nil
	}
	return &expense, nil
}

func (f *fakeExpenseRepo) Update(_ context.Context, expense *entity.Expense) error {
	f.expenses[expense.ID] = *expense
	return nil
}

func (f *fakeExpenseRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(f.expenses, id)
	return nil
}

func (f *fakeExpenseRepo) List(_ context.Context, _ *repository.ExpenseFilterParams) ([]entity.Expense, int64, error) {
	var out []entity.Expense
	for _, e := range f.expenses {
		out = append(out, e)
	}
	return out, int64(len(out)), nil
}

func (f *fakeExpenseRepo) ListUnsettled(_ context.Context) ([]entity.Expense, error) {
	var out []entity.Expense
	for _, e := range f.expenses {
		if !e.PaymentStatus.Settled() {
			out = append(out, e)
		}
	}
	return out, nil
}

func (f *fakeExpenseRepo) TotalAmount(_ context.Context) (float64, error) {
	var total float64
	for _, e := range f.expenses {
		total += e.TotalAmount
	}
	return total, nil
}

type fakeTransportRepo struct {
	transports map[uuid.UUID]entity.Transport
}

func newFakeTransportRepo() *fakeTransportRepo {
	return &fakeTransportRepo{transports: make(map[uuid.UUID]entity.Transport)}
}

func (f *fakeTransportRepo) Create(_ context.Context, transport *entity.Transport) error {
	if transport.ID == uuid.Nil {
		transport.ID = uuid.New()
	}
	f.transports[transport.ID] = *transport
	return nil
}

func (f *fakeTransportRepo) GetByID(_ context.Context, id uuid.UUID) (*entity.Transport, error) {
	transport, ok := f.transports[id]
	if !ok {
		return nil, nil
	}
	return &transport, nil
}

func (f *fakeTransportRepo) Update(_ context.Context, transport *entity.Transport) error {
	f.transports[transport.ID] = *transport
	return nil
}

func (f *fakeTransportRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(f.transports, id)
	return nil
}

func (f *fakeTransportRepo) List(_ context.Context, _ *repository.TransportFilterParams) ([]entity.Transport, int64, error) {
	var out []entity.Transport
	for _, t := range f.transports {
		out = append(out, t)
	}
	return out, int64(len(out)), nil
}

func (f *fakeTransportRepo) ListUnsettled(_ context.Context) ([]entity.Transport, error) {
	var out []entity.Transport
	for _, t := range f.transports {
		if t.PaidAmount < t.TransportAmount {
			out = append(out, t)
		}
	}
	return out, nil
}

type fakePurchaseRepo struct {
	purchases map[uuid.UUID]entity.Purchase
}

func newFakePurchaseRepo() *fakePurchaseRepo {
	return &fakePurchaseRepo{purchases: make(map[uuid.UUID]entity.Purchase)}
}

func (f *fakePurchaseRepo) Create(_ context.Context, purchase *entity.Purchase) error {
	if purchase.ID == uuid.Nil {
		purchase.ID = uuid.New()
	}
	f.purchases[purchase.ID] = *purchase
	return nil
}

func (f *fakePurchaseRepo) GetByID(_ context.Context, id uuid.UUID) (*entity.Purchase, error) {
	purchase, ok := f.purchases[id]
	if !ok {
		return nil, nil
	}
	return &purchase, nil
}

func (f *fakePurchaseRepo) Update(_ context.Context, purchase *entity.Purchase) error {
	f.purchases[purchase.ID] = *purchase
	return nil
}

func (f *fakePurchaseRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(f.purchases, id)
	return nil
}

func (f *fakePurchaseRepo) List(_ context.Context, _ *repository.PurchaseFilterParams) ([]entity.Purchase, int64, error) {
	var out []entity.Purchase
	for _, p := range f.purchases {
		out = append(out, p)
	}
	return out, int64(len(out)), nil
}

func (f *fakePurchaseRepo) ListUnsettled(_ context.Context) ([]entity.Purchase, error) {
	var out []entity.Purchase
	for _, p := range f.purchases {
		if !p.Status.Settled() {
			out = append(out, p)
		}
	}
	return out, nil
}

type fakeWorkerRepo struct {
	workers map[uuid.UUID]entity.Worker
}

func newFakeWorkerRepo() *fakeWorkerRepo {
	return &fakeWorkerRepo{workers: make(map[uuid.UUID]entity.Worker)}
}

func (f *fakeWorkerRepo) Create(_ context.Context, worker *entity.Worker) error {
	if worker.ID == uuid.Nil {
		worker.ID = uuid.New()
	}
	f.workers[worker.ID] = *worker
	return nil
}

func (f *fakeWorkerRepo) GetByID(_ context.Context, id uuid.UUID) (*entity.Worker, error) {
	worker, ok := f.workers[id]
	if !ok {
		return nil, nil
	}
	return &worker, nil
}

func (f *fakeWorkerRepo) Update(_ context.Context, worker *entity.Worker) error {
	f.workers[worker.ID] = *worker
	return nil
}

func (f *fakeWorkerRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(f.workers, id)
	return nil
}

func (f *fakeWorkerRepo) List(_ context.Context, activeOnly bool) ([]entity.Worker, error) {
	var out []entity.Worker
	for _, w := range f.workers {
		if activeOnly && !w.IsActive {
			continue
		}
		out = append(out, w)
	}
	return out, nil
}

type fakeWorkerHistoryRepo struct {
	entries []entity.WorkerHistory
}

func newFakeWorkerHistoryRepo() *fakeWorkerHistoryRepo {
	return &fakeWorkerHistoryRepo{}
}

func (f *fakeWorkerHistoryRepo) Append(_ context.Context, entry *entity.WorkerHistory) error {
	f.entries = append(f.entries, *entry)
	return nil
}

func (f *fakeWorkerHistoryRepo) ListByWorker(_ context.Context, workerID uuid.UUID) ([]entity.WorkerHistory, error) {
	var out []entity.WorkerHistory
	for _, e := range f.entries {
		if e.WorkerID == workerID {
			out = append(out, e)
		}
	}
	return out, nil
}

// compile-time interface checks
var (
	_ repository.DebtRepository          = (*fakeDebtRepo)(nil)
	_ repository.ExpenseRepository       = (*fakeExpenseRepo)(nil)
	_ repository.TransportRepository     = (*fakeTransportRepo)(nil)
	_ repository.PurchaseRepository      = (*fakePurchaseRepo)(nil)
	_ repository.WorkerRepository        = (*fakeWorkerRepo)(nil)
	_ repository.WorkerHistoryRepository = (*fakeWorkerHistoryRepo)(nil)
)
