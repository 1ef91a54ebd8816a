package entity

import (
	"math"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DefaultLateHourRate is the flat deduction per late hour, in currency units.
const DefaultLateHourRate = 500.0

// monthDivisor is the fixed 30-day month used for daily salary. Not
// calendar-accurate on purpose.
const monthDivisor = 30.0

// Worker holds salary owed since the last payout, not a lifetime ledger.
// StartDate marks the beginning of the current accrual period and all
// period counters reset to zero when a salary payout happens. Payout
// history lives in WorkerHistory.
type Worker struct {
	ID               uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	Name             string         `gorm:"size:100;not null" json:"name"`
	Phone            string         `gorm:"size:40;not null" json:"phone"`
	Address          string         `gorm:"size:200" json:"address"`
	IDCard           string         `gorm:"size:50;column:id_card" json:"id_card"`
	StartDate        time.Time      `gorm:"type:date;not null" json:"start_date"`
	MonthlySalary    float64        `gorm:"type:decimal(15,2);default:0" json:"monthly_salary"`
	Absences         float64        `gorm:"type:decimal(10,2);default:0" json:"absences"`
	OutsideWorkDays  int            `gorm:"default:0" json:"outside_work_days"`
	OutsideWorkBonus float64        `gorm:"type:decimal(15,2);default:0" json:"outside_work_bonus"`
	Advances         float64        `gorm:"type:decimal(15,2);default:0" json:"advances"`
	Incentives       float64        `gorm:"type:decimal(15,2);default:0" json:"incentives"`
	LateHours        float64        `gorm:"type:decimal(10,2);default:0" json:"late_hours"`
	IsActive         bool           `gorm:"default:true" json:"is_active"`
	CreatedAt        time.Time      `json:"created_at"`
	UpdatedAt        time.Time      `json:"updated_at"`
	DeletedAt        gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	History []WorkerHistory `gorm:"foreignKey:WorkerID" json:"history,omitempty"`
}

// BeforeCreate generates a UUID before creating a new worker
func (w *Worker) BeforeCreate(tx *gorm.DB) error {
	if w.ID == uuid.Nil {
		w.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Worker model
func (Worker) TableName() string {
	return "workers"
}

// DailySalary returns the monthly salary spread over a fixed 30-day month.
func (w *Worker) DailySalary() float64 {
	return w.MonthlySalary / monthDivisor
}

// DaysWorked counts whole days between the period start and asOf, floored
// at zero so a future-dated start never accrues negative time.
func (w *Worker) DaysWorked(asOf time.Time) float64 {
	start := truncateToDay(w.StartDate)
	today := truncateToDay(asOf)
	days := today.Sub(start).Hours() / 24
	return math.Max(0, math.Floor(days))
}

// TotalSalary computes the salary owed for the current accrual period with
// the default late-hour rate. It never fails: any non-finite intermediate
// degrades to a reported value of 0.
func (w *Worker) TotalSalary(asOf time.Time) float64 {
	return w.TotalSalaryAt(asOf, DefaultLateHourRate)
}

// TotalSalaryAt is TotalSalary with an explicit late-hour deduction rate.
// The result is floored at 0 and rounded to 2 decimal places.
func (w *Worker) TotalSalaryAt(asOf time.Time, lateHourRate float64) float64 {
	daily := w.DailySalary()
	base := w.DaysWorked(asOf) * daily

	absenceDeduction := w.Absences * daily
	lateDeduction := w.LateHours * lateHourRate

	total := base + w.OutsideWorkBonus + w.Incentives - w.Advances - absenceDeduction - lateDeduction
	if math.IsNaN(total) || math.IsInf(total, 0) {
		return 0
	}
	return math.Max(0, round2(total))
}

// ResetPeriod starts a fresh accrual period and zeroes all period counters.
func (w *Worker) ResetPeriod(now time.Time) {
	w.StartDate = truncateToDay(now)
	w.Absences = 0
	w.OutsideWorkDays = 0
	w.OutsideWorkBonus = 0
	w.Advances = 0
	w.Incentives = 0
	w.LateHours = 0
}

func truncateToDay(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// WorkerHistory is an append-only audit entry for a worker. Amounts are
// negative for deductions (absences, advances, payouts) and positive for
// bonuses. Entries are immutable once written.
type WorkerHistory struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	WorkerID   uuid.UUID `gorm:"type:uuid;not null;index" json:"worker_id"`
	ChangeType string    `gorm:"size:120" json:"change_type"`
	Details    string    `gorm:"type:text" json:"details"`
	Amount     float64   `gorm:"type:decimal(15,2);default:0" json:"amount"`
	Timestamp  time.Time `json:"timestamp"`
}

// BeforeCreate generates a UUID before creating a new worker history entry
func (h *WorkerHistory) BeforeCreate(tx *gorm.DB) error {
	if h.ID == uuid.Nil {
		h.ID = uuid.New()
	}
	if h.Timestamp.IsZero() {
		h.Timestamp = time.Now().UTC()
	}
	return nil
}

// TableName returns the table name for the WorkerHistory model
func (WorkerHistory) TableName() string {
	return "worker_history"
}
