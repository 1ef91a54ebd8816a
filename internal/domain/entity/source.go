package entity

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sofazi/backoffice-api/internal/domain/enum"
)

// Contact is the debtor contact block copied onto derived debts.
type Contact struct {
	Name    string
	Phone   string
	Address string
}

// SourceTransaction unifies the ledger records a debt can be derived from
// (expense, purchase, transport), so the derivation and reconciliation
// engines are written once against one interface instead of per type.
type SourceTransaction interface {
	SourceType() enum.SourceType
	SourceID() uuid.UUID
	// DebtBasis is the amount a freshly derived debt is opened over.
	DebtBasis() float64
	// PaidToDate is the amount already paid on the source itself.
	PaidToDate() float64
	OutstandingAmount() float64
	// SyncPaidAmount overwrites the source's paid total with the debt's
	// cumulative figure and recomputes its payment status. Full-value
	// assignment, not an increment, so re-running it never drifts.
	SyncPaidAmount(total float64)
	// MarkSettled is the legacy full-settlement path.
	MarkSettled()
	DebtorContact() Contact
	DebtDescription() string
	TransactionDate() time.Time
	Recorder() string
}

// compile-time interface checks
var (
	_ SourceTransaction = (*Expense)(nil)
	_ SourceTransaction = (*Purchase)(nil)
	_ SourceTransaction = (*Transport)(nil)
)

// SourceType implements SourceTransaction
func (e *Expense) SourceType() enum.SourceType { return enum.SourceTypeExpense }

// SourceID implements SourceTransaction
func (e *Expense) SourceID() uuid.UUID { return e.ID }

// DebtBasis opens the debt over the full expense total.
func (e *Expense) DebtBasis() float64 { return e.TotalAmount }

// PaidToDate implements SourceTransaction
func (e *Expense) PaidToDate() float64 { return e.PaidAmount }

// OutstandingAmount implements SourceTransaction
func (e *Expense) OutstandingAmount() float64 {
	return round2(e.TotalAmount - e.PaidAmount)
}

// SyncPaidAmount implements SourceTransaction
func (e *Expense) SyncPaidAmount(total float64) {
	e.PaidAmount = total
	e.PaymentStatus = enum.PaymentStatusFor(e.PaidAmount, e.TotalAmount)
}

// MarkSettled implements SourceTransaction
func (e *Expense) MarkSettled() {
	e.PaidAmount = e.TotalAmount
	e.PaymentStatus = enum.PaymentStatusPaid
}

// DebtorContact falls back to a generic supplier name when the expense has
// no linked supplier.
func (e *Expense) DebtorContact() Contact {
	if e.Supplier == nil {
		return Contact{Name: "Supplier"}
	}
	return Contact{Name: e.Supplier.Name, Phone: e.Supplier.Phone, Address: e.Supplier.Address}
}

// DebtDescription implements SourceTransaction
func (e *Expense) DebtDescription() string {
	category := "General"
	if e.Category != nil {
		category = e.Category.Name
	}
	return fmt.Sprintf("%s - %s", e.Description, category)
}

// TransactionDate implements SourceTransaction
func (e *Expense) TransactionDate() time.Time { return e.PurchaseDate }

// Recorder implements SourceTransaction
func (e *Expense) Recorder() string { return e.RecordedBy }

// SourceType implements SourceTransaction
func (p *Purchase) SourceType() enum.SourceType { return enum.SourceTypePurchase }

// SourceID implements SourceTransaction
func (p *Purchase) SourceID() uuid.UUID { return p.ID }

// DebtBasis opens the debt over the full purchase price.
func (p *Purchase) DebtBasis() float64 { return p.TotalPrice }

// PaidToDate implements SourceTransaction
func (p *Purchase) PaidToDate() float64 { return p.PaidAmount }

// OutstandingAmount implements SourceTransaction
func (p *Purchase) OutstandingAmount() float64 {
	return round2(p.TotalPrice - p.PaidAmount)
}

// SyncPaidAmount implements SourceTransaction
func (p *Purchase) SyncPaidAmount(total float64) {
	p.PaidAmount = total
	p.Status = enum.PaymentStatusFor(p.PaidAmount, p.TotalPrice)
}

// MarkSettled implements SourceTransaction
func (p *Purchase) MarkSettled() {
	p.PaidAmount = p.TotalPrice
	p.Status = enum.PaymentStatusPaid
}

// DebtorContact implements SourceTransaction. Purchases without a supplier
// never reach derivation; the engine skips them.
func (p *Purchase) DebtorContact() Contact {
	if p.Supplier == nil {
		return Contact{}
	}
	return Contact{Name: p.Supplier.Name, Phone: p.Supplier.Phone, Address: p.Supplier.Address}
}

// DebtDescription implements SourceTransaction
func (p *Purchase) DebtDescription() string {
	product := "Product"
	if p.Product != nil {
		product = p.Product.Name
	}
	return fmt.Sprintf("%s - %d units", product, p.Quantity)
}

// TransactionDate implements SourceTransaction
func (p *Purchase) TransactionDate() time.Time { return p.PurchaseDate }

// Recorder returns "system" because legacy purchases carry no recorder of
// their own; their debts are back-filled.
func (p *Purchase) Recorder() string { return "system" }

// SourceType implements SourceTransaction
func (t *Transport) SourceType() enum.SourceType { return enum.SourceTypeTransport }

// SourceID implements SourceTransaction
func (t *Transport) SourceID() uuid.UUID { return t.ID }

// DebtBasis opens the debt over the amount still owed at derivation time,
// not the full transport cost.
func (t *Transport) DebtBasis() float64 { return t.RemainingAmount() }

// PaidToDate implements SourceTransaction
func (t *Transport) PaidToDate() float64 { return t.PaidAmount }

// OutstandingAmount implements SourceTransaction
func (t *Transport) OutstandingAmount() float64 { return t.RemainingAmount() }

// SyncPaidAmount implements SourceTransaction. Transports track no status
// column; paid vs owed is derived from the amounts.
func (t *Transport) SyncPaidAmount(total float64) {
	t.PaidAmount = total
}

// MarkSettled implements SourceTransaction
func (t *Transport) MarkSettled() {
	t.PaidAmount = t.TransportAmount
}

// DebtorContact implements SourceTransaction
func (t *Transport) DebtorContact() Contact {
	return Contact{Name: t.Name, Phone: t.Phone, Address: t.Address}
}

// DebtDescription implements SourceTransaction
func (t *Transport) DebtDescription() string {
	return fmt.Sprintf("%s - %s", t.Purpose, t.Destination)
}

// TransactionDate implements SourceTransaction
func (t *Transport) TransactionDate() time.Time { return t.TransportDate }

// Recorder implements SourceTransaction
func (t *Transport) Recorder() string { return t.RecordedBy }
