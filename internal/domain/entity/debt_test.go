package entity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sofazi/backoffice-api/internal/domain/entity"
	"github.com/sofazi/backoffice-api/internal/domain/enum"
)

func TestDebtRemainingAmount(t *testing.T) {
	testCases := []struct {
		name string
		debt entity.Debt
		want float64
	}{
		{
			name: "untouched debt",
			debt: entity.Debt{DebtAmount: 1000},
			want: 1000,
		},
		{
			name: "partially paid",
			debt: entity.Debt{DebtAmount: 1000, PaidAmount: 399.99},
			want: 600.01,
		},
		{
			name: "overpaid never goes negative",
			debt: entity.Debt{DebtAmount: 1000, PaidAmount: 1200},
			want: 0,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.debt.RemainingAmount())
		})
	}
}

func TestDebtSettled(t *testing.T) {
	assert.False(t, (&entity.Debt{DebtAmount: 100, PaidAmount: 99.99}).Settled())
	assert.True(t, (&entity.Debt{DebtAmount: 100, PaidAmount: 100}).Settled())
	assert.True(t, (&entity.Debt{DebtAmount: 100, PaidAmount: 150}).Settled())
	assert.True(t, (&entity.Debt{}).Settled(), "zero-amount debt owes nothing")
}

func TestDebtSourceInfo(t *testing.T) {
	testCases := []struct {
		name       string
		sourceType enum.SourceType
		want       string
	}{
		{"expense", enum.SourceTypeExpense, "Expense - Timber"},
		{"purchase", enum.SourceTypePurchase, "Purchase - Timber"},
		{"transport", enum.SourceTypeTransport, "Transport - Timber"},
		{"manual", enum.SourceTypeManual, "Manual debt - Timber"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			d := &entity.Debt{SourceType: tc.sourceType, Description: "Timber"}
			assert.Equal(t, tc.want, d.SourceInfo())
		})
	}
}

func TestExpenseSourceBehaviour(t *testing.T) {
	e := &entity.Expense{
		TotalAmount: 1000,
		PaidAmount:  250,
		Supplier:    &entity.Supplier{Name: "Wood Co", Phone: "555-0100"},
	}

	assert.Equal(t, enum.SourceTypeExpense, e.SourceType())
	assert.Equal(t, 1000.0, e.DebtBasis())
	assert.Equal(t, 750.0, e.OutstandingAmount())
	assert.Equal(t, "Wood Co", e.DebtorContact().Name)

	e.SyncPaidAmount(600)
	assert.Equal(t, 600.0, e.PaidAmount)
	assert.Equal(t, enum.PaymentStatusPartial, e.PaymentStatus)

	e.MarkSettled()
	assert.Equal(t, 1000.0, e.PaidAmount)
	assert.Equal(t, enum.PaymentStatusPaid, e.PaymentStatus)
}

func TestExpenseContactFallback(t *testing.T) {
	e := &entity.Expense{TotalAmount: 100}
	assert.Equal(t, "Supplier", e.DebtorContact().Name)
}

func TestTransportSourceBehaviour(t *testing.T) {
	tr := &entity.Transport{
		Name:            "Haulage Ltd",
		TransportAmount: 800,
		PaidAmount:      300,
	}

	assert.Equal(t, enum.SourceTypeTransport, tr.SourceType())
	assert.Equal(t, 500.0, tr.DebtBasis(), "debt opens over the remainder, not the full cost")
	assert.Equal(t, 500.0, tr.OutstandingAmount())

	tr.MarkSettled()
	assert.Equal(t, 800.0, tr.PaidAmount)
	assert.Equal(t, 0.0, tr.RemainingAmount())
}

func TestPurchaseSourceBehaviour(t *testing.T) {
	p := &entity.Purchase{
		TotalPrice: 600,
		Quantity:   2,
	}

	assert.Equal(t, enum.SourceTypePurchase, p.SourceType())
	assert.Equal(t, 600.0, p.DebtBasis())
	assert.Empty(t, p.DebtorContact().Name, "no supplier means no debtor")
	assert.Equal(t, "system", p.Recorder())

	p.Supplier = &entity.Supplier{Name: "Parts Inc"}
	assert.Equal(t, "Parts Inc", p.DebtorContact().Name)

	p.SyncPaidAmount(600)
	assert.Equal(t, enum.PaymentStatusPaid, p.Status)
}
