package request

import "time"

// CreateWorkerRequest represents a worker creation request
type CreateWorkerRequest struct {
	Name          string     `json:"name" binding:"required,max=100"`
	Phone         string     `json:"phone" binding:"required,max=40"`
	Address       string     `json:"address" binding:"omitempty,max=200"`
	IDCard        string     `json:"id_card" binding:"omitempty,max=50"`
	StartDate     *time.Time `json:"start_date"`
	MonthlySalary float64    `json:"monthly_salary" binding:"omitempty,min=0"`
}

// UpdateWorkerRequest represents a worker update request
type UpdateWorkerRequest struct {
	Name          *string  `json:"name" binding:"omitempty,max=100"`
	Phone         *string  `json:"phone" binding:"omitempty,max=40"`
	Address       *string  `json:"address" binding:"omitempty,max=200"`
	IDCard        *string  `json:"id_card" binding:"omitempty,max=50"`
	MonthlySalary *float64 `json:"monthly_salary" binding:"omitempty,min=0"`
}

// RecordAbsenceRequest represents an absence record request
type RecordAbsenceRequest struct {
	Kind  string `json:"kind" binding:"required,oneof=full half"`
	Notes string `json:"notes"`
}

// RecordAmountRequest represents a request carrying a single amount, used
// for advances and incentives
type RecordAmountRequest struct {
	Amount float64 `json:"amount" binding:"required,gt=0"`
	Reason string  `json:"reason"`
}

// RecordOutsideWorkRequest represents an outside work record request
type RecordOutsideWorkRequest struct {
	Days  int     `json:"days" binding:"required,min=1"`
	Bonus float64 `json:"bonus" binding:"omitempty,min=0"`
}

// RecordLateHoursRequest represents a late hours record request
type RecordLateHoursRequest struct {
	Hours float64 `json:"hours" binding:"required,gt=0"`
}

// PaySalaryRequest represents a salary payout request
type PaySalaryRequest struct {
	Amount float64 `json:"amount" binding:"required,gt=0"`
	Method string  `json:"method" binding:"omitempty,max=50"`
	Notes  string  `json:"notes"`
}
