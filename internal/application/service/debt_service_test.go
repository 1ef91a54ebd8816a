package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sofazi/backoffice-api/internal/application/service"
	"github.com/sofazi/backoffice-api/internal/domain/entity"
	"github.com/sofazi/backoffice-api/internal/domain/enum"
	"github.com/sofazi/backoffice-api/internal/domain/repository"
	"github.com/sofazi/backoffice-api/pkg/apperror"
)

type debtServiceFixture struct {
	svc        *service.DebtService
	debts      *fakeDebtRepo
	expenses   *fakeExpenseRepo
	transports *fakeTransportRepo
	purchases  *fakePurchaseRepo
}

func newDebtServiceFixture() *debtServiceFixture {
	f := &debtServiceFixture{
		debts:      newFakeDebtRepo(),
		expenses:   newFakeExpenseRepo(),
		transports: newFakeTransportRepo(),
		purchases:  newFakePurchaseRepo(),
	}
	f.svc = service.NewDebtService(f.debts, f.expenses, f.transports, f.purchases)
	return f
}

func unpaidExpense(total, paid float64) *entity.Expense {
	return &entity.Expense{
		ID:            uuid.New(),
		Description:   "Timber",
		TotalAmount:   total,
		PaidAmount:    paid,
		RecordedBy:    "owner",
		PurchaseDate:  time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
		PaymentStatus: enum.PaymentStatusFor(paid, total),
		Supplier:      &entity.Supplier{Name: "Wood Co", Phone: "555-0100"},
	}
}

func unpaidTransport(total, paid float64) *entity.Transport {
	return &entity.Transport{
		ID:              uuid.New(),
		Name:            "Haulage Ltd",
		Phone:           "555-0200",
		TransportAmount: total,
		PaidAmount:      paid,
		Destination:     "Warehouse",
		Purpose:         "Delivery",
		RecordedBy:      "owner",
		TransportDate:   time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC),
	}
}

func unpaidPurchase(total, paid float64, supplier *entity.Supplier) *entity.Purchase {
	return &entity.Purchase{
		ID:           uuid.New(),
		TotalPrice:   total,
		PaidAmount:   paid,
		Quantity:     2,
		PurchaseDate: time.Date(2026, 3, 3, 0, 0, 0, 0, time.UTC),
		Status:       enum.PaymentStatusFor(paid, total),
		Supplier:     supplier,
	}
}

func TestDeriveFromSource(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name       string
		source     func() entity.SourceTransaction
		wantNil    bool
		wantAmount float64
		wantPaid   float64
		wantType   enum.SourceType
	}{
		{
			name:       "unpaid expense opens debt over full total",
			source:     func() entity.SourceTransaction { return unpaidExpense(1000, 0) },
			wantAmount: 1000,
			wantPaid:   0,
			wantType:   enum.SourceTypeExpense,
		},
		{
			name:       "partially paid expense carries paid amount across",
			source:     func() entity.SourceTransaction { return unpaidExpense(1000, 400) },
			wantAmount: 1000,
			wantPaid:   400,
			wantType:   enum.SourceTypeExpense,
		},
		{
			name:    "fully paid expense derives nothing",
			source:  func() entity.SourceTransaction { return unpaidExpense(1000, 1000) },
			wantNil: true,
		},
		{
			name:       "transport opens debt over remaining with zero paid",
			source:     func() entity.SourceTransaction { return unpaidTransport(800, 300) },
			wantAmount: 500,
			wantPaid:   0,
			wantType:   enum.SourceTypeTransport,
		},
		{
			name: "purchase with supplier opens debt over full price",
			source: func() entity.SourceTransaction {
				return unpaidPurchase(600, 100, &entity.Supplier{Name: "Parts Inc"})
			},
			wantAmount: 600,
			wantPaid:   100,
			wantType:   enum.SourceTypePurchase,
		},
		{
			name: "purchase without supplier is skipped",
			source: func() entity.SourceTransaction {
				return unpaidPurchase(600, 0, nil)
			},
			wantNil: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			f := newDebtServiceFixture()

			debt, err := f.svc.DeriveFromSource(ctx, tc.source())
			require.NoError(t, err)

			if tc.wantNil {
				assert.Nil(t, debt)
				assert.Empty(t, f.debts.debts)
				return
			}

			require.NotNil(t, debt)
			assert.Equal(t, tc.wantAmount, debt.DebtAmount)
			assert.Equal(t, tc.wantPaid, debt.PaidAmount)
			assert.Equal(t, tc.wantType, debt.SourceType)
			assert.Equal(t, enum.DebtStatusUnpaid, debt.Status)
			require.NotNil(t, debt.SourceID)
		})
	}
}

func TestDeriveFromSourceIsIdempotent(t *testing.T) {
	ctx := context.Background()
	f := newDebtServiceFixture()
	expense := unpaidExpense(1000, 0)

	first, err := f.svc.DeriveFromSource(ctx, expense)
	require.NoError(t, err)
	require.NotNil(t, first)

	second, err := f.svc.DeriveFromSource(ctx, expense)
	require.NoError(t, err)
	require.NotNil(t, second)

	assert.Equal(t, first.ID, second.ID)
	assert.Len(t, f.debts.debts, 1)
}

func TestDeriveFromSourceCopiesContact(t *testing.T) {
	ctx := context.Background()
	f := newDebtServiceFixture()

	debt, err := f.svc.DeriveFromSource(ctx, unpaidTransport(800, 0))
	require.NoError(t, err)
	require.NotNil(t, debt)

	assert.Equal(t, "Haulage Ltd", debt.Name)
	assert.Equal(t, "555-0200", debt.Phone)
	assert.Equal(t, "Delivery - Warehouse", debt.Description)
	assert.Equal(t, "owner", debt.RecordedBy)
}

func TestApplyPayment(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name            string
		debtAmount      float64
		paidAmount      float64
		payment         float64
		wantErr         bool
		wantBalanceErr  bool
		wantInvalidErr  bool
		wantPaid        float64
		wantStatus      enum.DebtStatus
		wantPaymentDate bool
	}{
		{
			name:       "partial payment stays unpaid",
			debtAmount: 1000,
			payment:    400,
			wantPaid:   400,
			wantStatus: enum.DebtStatusUnpaid,
		},
		{
			name:            "payment covering the balance settles the debt",
			debtAmount:      1000,
			paidAmount:      400,
			payment:         600,
			wantPaid:        1000,
			wantStatus:      enum.DebtStatusPaid,
			wantPaymentDate: true,
		},
		{
			name:           "payment above the remaining balance is rejected whole",
			debtAmount:     1000,
			paidAmount:     800,
			payment:        300,
			wantErr:        true,
			wantBalanceErr: true,
		},
		{
			name:           "zero payment is rejected",
			debtAmount:     1000,
			payment:        0,
			wantErr:        true,
			wantInvalidErr: true,
		},
		{
			name:           "negative payment is rejected",
			debtAmount:     1000,
			payment:        -50,
			wantErr:        true,
			wantInvalidErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			f := newDebtServiceFixture()
			debt := &entity.Debt{
				ID:         uuid.New(),
				Name:       "Creditor",
				DebtAmount: tc.debtAmount,
				PaidAmount: tc.paidAmount,
				Status:     enum.DebtStatusUnpaid,
				SourceType: enum.SourceTypeManual,
				StartDate:  time.Now().UTC(),
			}
			require.NoError(t, f.debts.Create(ctx, debt))

			updated, err := f.svc.ApplyPayment(ctx, debt.ID, tc.payment, time.Time{})

			if tc.wantErr {
				require.Error(t, err)
				if tc.wantBalanceErr {
					assert.True(t, apperror.IsBalanceExceeded(err))
				}
				if tc.wantInvalidErr {
					assert.ErrorIs(t, err, apperror.ErrInvalidAmount)
				}
				stored, _ := f.debts.GetByID(ctx, debt.ID)
				assert.Equal(t, tc.paidAmount, stored.PaidAmount, "rejected payment must not move the balance")
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.wantPaid, updated.PaidAmount)
			assert.Equal(t, tc.wantStatus, updated.Status)
			if tc.wantPaymentDate {
				assert.NotNil(t, updated.PaymentDate)
			} else {
				assert.Nil(t, updated.PaymentDate)
			}
		})
	}
}

func TestApplyPaymentNotFound(t *testing.T) {
	f := newDebtServiceFixture()

	_, err := f.svc.ApplyPayment(context.Background(), uuid.New(), 100, time.Time{})
	require.Error(t, err)
	assert.Equal(t, "Debt not found", err.Error())
}

func TestApplyPaymentStampsGivenDate(t *testing.T) {
	ctx := context.Background()
	f := newDebtServiceFixture()
	debt := &entity.Debt{
		ID:         uuid.New(),
		Name:       "Creditor",
		DebtAmount: 500,
		Status:     enum.DebtStatusUnpaid,
		SourceType: enum.SourceTypeManual,
		StartDate:  time.Now().UTC(),
	}
	require.NoError(t, f.debts.Create(ctx, debt))

	paidOn := time.Date(2026, 4, 10, 0, 0, 0, 0, time.UTC)
	updated, err := f.svc.ApplyPayment(ctx, debt.ID, 500, paidOn)
	require.NoError(t, err)

	require.NotNil(t, updated.PaymentDate)
	assert.Equal(t, paidOn, *updated.PaymentDate)
}

func TestApplyPaymentRoundsSubCentAmounts(t *testing.T) {
	ctx := context.Background()
	f := newDebtServiceFixture()
	debt := &entity.Debt{
		ID:         uuid.New(),
		Name:       "Creditor",
		DebtAmount: 500,
		Status:     enum.DebtStatusUnpaid,
		SourceType: enum.SourceTypeManual,
		StartDate:  time.Now().UTC(),
	}
	require.NoError(t, f.debts.Create(ctx, debt))

	// 500.004 rounds to 500.00 before the balance check, so the payment
	// settles exactly instead of nudging paid above the face value.
	updated, err := f.svc.ApplyPayment(ctx, debt.ID, 500.004, time.Time{})
	require.NoError(t, err)
	assert.Equal(t, 500.0, updated.PaidAmount)
	assert.Equal(t, enum.DebtStatusPaid, updated.Status)

	t.Run("fraction rounding to zero is invalid", func(t *testing.T) {
		f := newDebtServiceFixture()
		d := &entity.Debt{
			ID:         uuid.New(),
			Name:       "Creditor",
			DebtAmount: 500,
			Status:     enum.DebtStatusUnpaid,
			SourceType: enum.SourceTypeManual,
			StartDate:  time.Now().UTC(),
		}
		require.NoError(t, f.debts.Create(ctx, d))

		_, err := f.svc.ApplyPayment(ctx, d.ID, 0.004, time.Time{})
		assert.ErrorIs(t, err, apperror.ErrInvalidAmount)
	})
}

func TestApplyPaymentSurvivesMissingSource(t *testing.T) {
	ctx := context.Background()
	f := newDebtServiceFixture()

	expense := unpaidExpense(1000, 0)
	require.NoError(t, f.expenses.Create(ctx, expense))

	debt, err := f.svc.DeriveFromSource(ctx, expense)
	require.NoError(t, err)

	// The source row disappears before the payment lands; the debt stays
	// authoritative and the payment must still go through.
	require.NoError(t, f.expenses.Delete(ctx, expense.ID))

	updated, err := f.svc.ApplyPayment(ctx, debt.ID, 400, time.Time{})
	require.NoError(t, err)
	assert.Equal(t, 400.0, updated.PaidAmount)
}

func TestApplyPaymentSyncsExpenseSource(t *testing.T) {
	ctx := context.Background()
	f := newDebtServiceFixture()

	expense := unpaidExpense(1000, 200)
	require.NoError(t, f.expenses.Create(ctx, expense))

	debt, err := f.svc.DeriveFromSource(ctx, expense)
	require.NoError(t, err)
	require.NotNil(t, debt)
	assert.Equal(t, 200.0, debt.PaidAmount)

	_, err = f.svc.ApplyPayment(ctx, debt.ID, 300, time.Time{})
	require.NoError(t, err)

	// The source carries the debt's cumulative figure, not an increment.
	stored, err := f.expenses.GetByID(ctx, expense.ID)
	require.NoError(t, err)
	assert.Equal(t, 500.0, stored.PaidAmount)
	assert.Equal(t, enum.PaymentStatusPartial, stored.PaymentStatus)

	_, err = f.svc.ApplyPayment(ctx, debt.ID, 500, time.Time{})
	require.NoError(t, err)

	stored, err = f.expenses.GetByID(ctx, expense.ID)
	require.NoError(t, err)
	assert.Equal(t, 1000.0, stored.PaidAmount)
	assert.Equal(t, enum.PaymentStatusPaid, stored.PaymentStatus)
}

func TestApplyPaymentSyncsTransportSource(t *testing.T) {
	ctx := context.Background()
	f := newDebtServiceFixture()

	transport := unpaidTransport(800, 300)
	require.NoError(t, f.transports.Create(ctx, transport))

	debt, err := f.svc.DeriveFromSource(ctx, transport)
	require.NoError(t, err)
	require.NotNil(t, debt)
	assert.Equal(t, 500.0, debt.DebtAmount)

	_, err = f.svc.ApplyPayment(ctx, debt.ID, 500, time.Time{})
	require.NoError(t, err)

	// The transport debt tracks only the remainder, so the sync overwrite
	// reflects the debt's cumulative paid figure.
	stored, err := f.transports.GetByID(ctx, transport.ID)
	require.NoError(t, err)
	assert.Equal(t, 500.0, stored.PaidAmount)
}

func TestApplyPaymentDoesNotSyncPurchaseSource(t *testing.T) {
	ctx := context.Background()
	f := newDebtServiceFixture()

	purchase := unpaidPurchase(600, 0, &entity.Supplier{Name: "Parts Inc"})
	require.NoError(t, f.purchases.Create(ctx, purchase))

	debt, err := f.svc.DeriveFromSource(ctx, purchase)
	require.NoError(t, err)
	require.NotNil(t, debt)

	_, err = f.svc.ApplyPayment(ctx, debt.ID, 200, time.Time{})
	require.NoError(t, err)

	stored, err := f.purchases.GetByID(ctx, purchase.ID)
	require.NoError(t, err)
	assert.Equal(t, 0.0, stored.PaidAmount, "purchases settle only through pay-in-full")
	assert.Equal(t, enum.PaymentStatusUnpaid, stored.Status)
}

func TestPayInFull(t *testing.T) {
	ctx := context.Background()

	t.Run("settles expense source", func(t *testing.T) {
		f := newDebtServiceFixture()
		expense := unpaidExpense(1000, 250)
		require.NoError(t, f.expenses.Create(ctx, expense))

		debt, err := f.svc.DeriveFromSource(ctx, expense)
		require.NoError(t, err)

		settled, err := f.svc.PayInFull(ctx, debt.ID)
		require.NoError(t, err)
		assert.Equal(t, enum.DebtStatusPaid, settled.Status)
		assert.Equal(t, settled.DebtAmount, settled.PaidAmount)
		assert.NotNil(t, settled.PaymentDate)

		stored, err := f.expenses.GetByID(ctx, expense.ID)
		require.NoError(t, err)
		assert.Equal(t, stored.TotalAmount, stored.PaidAmount)
		assert.Equal(t, enum.PaymentStatusPaid, stored.PaymentStatus)
	})

	t.Run("settles purchase source", func(t *testing.T) {
		f := newDebtServiceFixture()
		purchase := unpaidPurchase(600, 0, &entity.Supplier{Name: "Parts Inc"})
		require.NoError(t, f.purchases.Create(ctx, purchase))

		debt, err := f.svc.DeriveFromSource(ctx, purchase)
		require.NoError(t, err)

		_, err = f.svc.PayInFull(ctx, debt.ID)
		require.NoError(t, err)

		stored, err := f.purchases.GetByID(ctx, purchase.ID)
		require.NoError(t, err)
		assert.Equal(t, stored.TotalPrice, stored.PaidAmount)
		assert.Equal(t, enum.PaymentStatusPaid, stored.Status)
	})

	t.Run("leaves transport source untouched", func(t *testing.T) {
		f := newDebtServiceFixture()
		transport := unpaidTransport(800, 300)
		require.NoError(t, f.transports.Create(ctx, transport))

		debt, err := f.svc.DeriveFromSource(ctx, transport)
		require.NoError(t, err)

		_, err = f.svc.PayInFull(ctx, debt.ID)
		require.NoError(t, err)

		stored, err := f.transports.GetByID(ctx, transport.ID)
		require.NoError(t, err)
		assert.Equal(t, 300.0, stored.PaidAmount)
	})

	t.Run("unknown debt", func(t *testing.T) {
		f := newDebtServiceFixture()
		_, err := f.svc.PayInFull(ctx, uuid.New())
		require.Error(t, err)
	})
}

func TestBackfill(t *testing.T) {
	ctx := context.Background()
	f := newDebtServiceFixture()

	require.NoError(t, f.expenses.Create(ctx, unpaidExpense(1000, 0)))
	require.NoError(t, f.expenses.Create(ctx, unpaidExpense(500, 500))) // settled, skipped
	require.NoError(t, f.transports.Create(ctx, unpaidTransport(800, 300)))
	require.NoError(t, f.purchases.Create(ctx, unpaidPurchase(600, 0, &entity.Supplier{Name: "Parts Inc"})))
	require.NoError(t, f.purchases.Create(ctx, unpaidPurchase(400, 0, nil))) // no supplier, skipped

	require.NoError(t, f.svc.Backfill(ctx))
	assert.Len(t, f.debts.debts, 3)

	// Running again must not duplicate.
	require.NoError(t, f.svc.Backfill(ctx))
	assert.Len(t, f.debts.debts, 3)
}

func TestCreateManual(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name           string
		input          *service.CreateManualDebtInput
		wantErr        bool
		wantBalanceErr bool
		wantStatus     enum.DebtStatus
	}{
		{
			name: "open manual debt",
			input: &service.CreateManualDebtInput{
				Name:       "Neighbour",
				DebtAmount: 300,
			},
			wantStatus: enum.DebtStatusUnpaid,
		},
		{
			name: "prepaid manual debt is created settled",
			input: &service.CreateManualDebtInput{
				Name:       "Neighbour",
				DebtAmount: 300,
				PaidAmount: 300,
			},
			wantStatus: enum.DebtStatusPaid,
		},
		{
			name: "zero amount rejected",
			input: &service.CreateManualDebtInput{
				Name: "Neighbour",
			},
			wantErr: true,
		},
		{
			name: "paid above amount rejected",
			input: &service.CreateManualDebtInput{
				Name:       "Neighbour",
				DebtAmount: 300,
				PaidAmount: 400,
			},
			wantErr:        true,
			wantBalanceErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			f := newDebtServiceFixture()

			debt, err := f.svc.CreateManual(ctx, tc.input, "owner")

			if tc.wantErr {
				require.Error(t, err)
				if tc.wantBalanceErr {
					assert.True(t, apperror.IsBalanceExceeded(err))
				}
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.wantStatus, debt.Status)
			assert.Equal(t, enum.SourceTypeManual, debt.SourceType)
			assert.Nil(t, debt.SourceID)
			assert.Equal(t, "owner", debt.RecordedBy)
			assert.False(t, debt.StartDate.IsZero())
		})
	}
}

func TestListDebtsBackfillsFirst(t *testing.T) {
	ctx := context.Background()
	f := newDebtServiceFixture()

	require.NoError(t, f.expenses.Create(ctx, unpaidExpense(1000, 0)))

	result, err := f.svc.ListDebts(ctx, &repository.DebtFilterParams{})
	require.NoError(t, err)
	assert.Equal(t, int64(1), result.Pagination.Total)
	assert.Len(t, result.Items, 1)
}

func TestUpdateDebtEditsContactOnly(t *testing.T) {
	ctx := context.Background()
	f := newDebtServiceFixture()

	debt, err := f.svc.CreateManual(ctx, &service.CreateManualDebtInput{
		Name:       "Old Name",
		DebtAmount: 300,
	}, "owner")
	require.NoError(t, err)

	newName := "New Name"
	newPhone := "555-0300"
	updated, err := f.svc.UpdateDebt(ctx, debt.ID, &service.UpdateDebtInput{
		Name:  &newName,
		Phone: &newPhone,
	})
	require.NoError(t, err)

	assert.Equal(t, "New Name", updated.Name)
	assert.Equal(t, "555-0300", updated.Phone)
	assert.Equal(t, 300.0, updated.DebtAmount)
	assert.Equal(t, 0.0, updated.PaidAmount)
}

func TestDeleteDebt(t *testing.T) {
	ctx := context.Background()
	f := newDebtServiceFixture()

	debt, err := f.svc.CreateManual(ctx, &service.CreateManualDebtInput{
		Name:       "Neighbour",
		DebtAmount: 300,
	}, "owner")
	require.NoError(t, err)

	require.NoError(t, f.svc.DeleteDebt(ctx, debt.ID))
	assert.Empty(t, f.debts.debts)

	err = f.svc.DeleteDebt(ctx, debt.ID)
	require.Error(t, err)
}
