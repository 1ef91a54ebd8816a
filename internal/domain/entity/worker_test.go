package entity_test

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/sofazi/backoffice-api/internal/domain/entity"
)

func TestDaysWorked(t *testing.T) {
	asOf := time.Date(2026, 3, 15, 14, 30, 0, 0, time.UTC)

	testCases := []struct {
		name      string
		startDate time.Time
		want      float64
	}{
		{
			name:      "whole days since period start",
			startDate: time.Date(2026, 3, 5, 0, 0, 0, 0, time.UTC),
			want:      10,
		},
		{
			name:      "time of day is ignored",
			startDate: time.Date(2026, 3, 5, 23, 59, 0, 0, time.UTC),
			want:      10,
		},
		{
			name:      "same day counts as zero",
			startDate: time.Date(2026, 3, 15, 1, 0, 0, 0, time.UTC),
			want:      0,
		},
		{
			name:      "future start floors at zero",
			startDate: time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC),
			want:      0,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			w := &entity.Worker{StartDate: tc.startDate}
			assert.Equal(t, tc.want, w.DaysWorked(asOf))
		})
	}
}

func TestTotalSalaryAt(t *testing.T) {
	asOf := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)
	start := time.Date(2026, 3, 5, 0, 0, 0, 0, time.UTC) // 10 days worked

	testCases := []struct {
		name   string
		worker entity.Worker
		rate   float64
		want   float64
	}{
		{
			name:   "base accrual",
			worker: entity.Worker{StartDate: start, MonthlySalary: 30000},
			rate:   500,
			want:   10000,
		},
		{
			name: "all adjustments applied",
			worker: entity.Worker{
				StartDate:        start,
				MonthlySalary:    30000,
				Absences:         2,
				Advances:         1000,
				Incentives:       500,
				OutsideWorkBonus: 1500,
				LateHours:        3,
			},
			rate: 500,
			// 10000 - 2000 - 1000 + 500 + 1500 - 1500
			want: 7500,
		},
		{
			name: "floored at zero",
			worker: entity.Worker{
				StartDate:     start,
				MonthlySalary: 30000,
				Advances:      20000,
			},
			rate: 500,
			want: 0,
		},
		{
			name:   "zero salary accrues nothing",
			worker: entity.Worker{StartDate: start},
			rate:   500,
			want:   0,
		},
		{
			name: "non-finite input degrades to zero",
			worker: entity.Worker{
				StartDate:     start,
				MonthlySalary: math.Inf(1),
			},
			rate: 500,
			want: 0,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.worker.TotalSalaryAt(asOf, tc.rate))
		})
	}
}

func TestTotalSalaryRounds(t *testing.T) {
	w := &entity.Worker{
		StartDate:     time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC),
		MonthlySalary: 1000, // daily 33.333...
	}
	asOf := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, 33.33, w.TotalSalaryAt(asOf, 500))
}

func TestResetPeriod(t *testing.T) {
	w := &entity.Worker{
		StartDate:        time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC),
		MonthlySalary:    30000,
		Absences:         2,
		OutsideWorkDays:  3,
		OutsideWorkBonus: 1500,
		Advances:         1000,
		Incentives:       500,
		LateHours:        4,
	}

	now := time.Date(2026, 3, 15, 18, 45, 0, 0, time.UTC)
	w.ResetPeriod(now)

	assert.Equal(t, time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC), w.StartDate)
	assert.Zero(t, w.Absences)
	assert.Zero(t, w.OutsideWorkDays)
	assert.Zero(t, w.OutsideWorkBonus)
	assert.Zero(t, w.Advances)
	assert.Zero(t, w.Incentives)
	assert.Zero(t, w.LateHours)
	assert.Equal(t, 30000.0, w.MonthlySalary, "salary survives the reset")
}
