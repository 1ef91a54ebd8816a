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
	"github.com/sofazi/backoffice-api/pkg/apperror"
)

type workerServiceFixture struct {
	svc     *service.WorkerService
	workers *fakeWorkerRepo
	history *fakeWorkerHistoryRepo
}

func newWorkerServiceFixture(lateHourRate float64) *workerServiceFixture {
	f := &workerServiceFixture{
		workers: newFakeWorkerRepo(),
		history: newFakeWorkerHistoryRepo(),
	}
	f.svc = service.NewWorkerService(f.workers, f.history, lateHourRate)
	return f
}

// seedWorker stores a worker whose accrual period started daysAgo whole
// days before now, so TotalSalary is deterministic in the test.
func (f *workerServiceFixture) seedWorker(t *testing.T, monthlySalary float64, daysAgo int) *entity.Worker {
	t.Helper()
	worker := &entity.Worker{
		ID:            uuid.New(),
		Name:          "Ali",
		Phone:         "555-0400",
		StartDate:     time.Now().UTC().AddDate(0, 0, -daysAgo),
		MonthlySalary: monthlySalary,
		IsActive:      true,
	}
	require.NoError(t, f.workers.Create(context.Background(), worker))
	return worker
}

func TestCreateWorker(t *testing.T) {
	ctx := context.Background()

	t.Run("defaults start date and active flag", func(t *testing.T) {
		f := newWorkerServiceFixture(0)

		worker, err := f.svc.CreateWorker(ctx, &service.CreateWorkerInput{
			Name:          "Ali",
			MonthlySalary: 30000,
		})
		require.NoError(t, err)
		assert.True(t, worker.IsActive)
		assert.False(t, worker.StartDate.IsZero())
	})

	t.Run("negative salary rejected", func(t *testing.T) {
		f := newWorkerServiceFixture(0)

		_, err := f.svc.CreateWorker(ctx, &service.CreateWorkerInput{
			Name:          "Ali",
			MonthlySalary: -1,
		})
		require.Error(t, err)
	})
}

func TestTotalSalary(t *testing.T) {
	testCases := []struct {
		name         string
		lateHourRate float64
		daysAgo      int
		mutate       func(w *entity.Worker)
		want         float64
	}{
		{
			name:    "base accrual over ten days",
			daysAgo: 10,
			want:    10000, // 30000/30 * 10
		},
		{
			name:    "absences deduct daily salary",
			daysAgo: 10,
			mutate:  func(w *entity.Worker) { w.Absences = 1.5 },
			want:    8500,
		},
		{
			name:    "advances and incentives net out",
			daysAgo: 10,
			mutate: func(w *entity.Worker) {
				w.Advances = 3000
				w.Incentives = 500
				w.OutsideWorkBonus = 1000
			},
			want: 8500,
		},
		{
			name:         "late hours deduct at the configured rate",
			lateHourRate: 250,
			daysAgo:      10,
			mutate:       func(w *entity.Worker) { w.LateHours = 4 },
			want:         9000,
		},
		{
			name:    "late hours fall back to the default rate",
			daysAgo: 10,
			mutate:  func(w *entity.Worker) { w.LateHours = 2 },
			want:    9000, // 10000 - 2*500
		},
		{
			name:    "salary never goes negative",
			daysAgo: 1,
			mutate:  func(w *entity.Worker) { w.Advances = 50000 },
			want:    0,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			f := newWorkerServiceFixture(tc.lateHourRate)
			worker := f.seedWorker(t, 30000, tc.daysAgo)
			if tc.mutate != nil {
				tc.mutate(worker)
			}

			assert.InDelta(t, tc.want, f.svc.TotalSalary(worker), 0.01)
		})
	}
}

func TestRecordAbsence(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name          string
		kind          enum.AbsenceKind
		wantAbsences  float64
		wantDeduction float64
	}{
		{
			name:          "full day",
			kind:          enum.AbsenceKindFull,
			wantAbsences:  1,
			wantDeduction: -1000,
		},
		{
			name:          "half day",
			kind:          enum.AbsenceKindHalf,
			wantAbsences:  0.5,
			wantDeduction: -500,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			f := newWorkerServiceFixture(0)
			worker := f.seedWorker(t, 30000, 10)

			updated, err := f.svc.RecordAbsence(ctx, worker.ID, tc.kind, "")
			require.NoError(t, err)
			assert.Equal(t, tc.wantAbsences, updated.Absences)

			require.Len(t, f.history.entries, 1)
			assert.Equal(t, "Absence", f.history.entries[0].ChangeType)
			assert.InDelta(t, tc.wantDeduction, f.history.entries[0].Amount, 0.01)
		})
	}

	t.Run("notes land in the history entry", func(t *testing.T) {
		f := newWorkerServiceFixture(0)
		worker := f.seedWorker(t, 30000, 10)

		_, err := f.svc.RecordAbsence(ctx, worker.ID, enum.AbsenceKindFull, "family emergency")
		require.NoError(t, err)

		require.Len(t, f.history.entries, 1)
		assert.Contains(t, f.history.entries[0].Details, "family emergency")
	})
}

func TestRecordAdvance(t *testing.T) {
	ctx := context.Background()

	t.Run("records the advance and a deduction entry", func(t *testing.T) {
		f := newWorkerServiceFixture(0)
		worker := f.seedWorker(t, 30000, 10)

		updated, err := f.svc.RecordAdvance(ctx, worker.ID, 4000, "school fees")
		require.NoError(t, err)
		assert.Equal(t, 4000.0, updated.Advances)

		require.Len(t, f.history.entries, 1)
		assert.Equal(t, "Advance", f.history.entries[0].ChangeType)
		assert.Equal(t, -4000.0, f.history.entries[0].Amount)
		assert.Contains(t, f.history.entries[0].Details, "school fees")
	})

	t.Run("advance above earned salary is accepted", func(t *testing.T) {
		f := newWorkerServiceFixture(0)
		worker := f.seedWorker(t, 30000, 1) // earned 1000 so far

		updated, err := f.svc.RecordAdvance(ctx, worker.ID, 5000, "")
		require.NoError(t, err)
		assert.Equal(t, 5000.0, updated.Advances)

		// The period total just floors at zero; nothing is owed back.
		assert.Equal(t, 0.0, f.svc.TotalSalary(updated))
	})

	t.Run("zero amount rejected", func(t *testing.T) {
		f := newWorkerServiceFixture(0)
		worker := f.seedWorker(t, 30000, 10)

		_, err := f.svc.RecordAdvance(ctx, worker.ID, 0, "")
		assert.ErrorIs(t, err, apperror.ErrInvalidAmount)
	})
}

func TestRecordIncentive(t *testing.T) {
	ctx := context.Background()
	f := newWorkerServiceFixture(0)
	worker := f.seedWorker(t, 30000, 10)

	updated, err := f.svc.RecordIncentive(ctx, worker.ID, 750, "finished the big order")
	require.NoError(t, err)
	assert.Equal(t, 750.0, updated.Incentives)

	require.Len(t, f.history.entries, 1)
	assert.Equal(t, 750.0, f.history.entries[0].Amount)
	assert.Contains(t, f.history.entries[0].Details, "finished the big order")
}

func TestRecordOutsideWork(t *testing.T) {
	ctx := context.Background()
	f := newWorkerServiceFixture(0)
	worker := f.seedWorker(t, 30000, 10)

	updated, err := f.svc.RecordOutsideWork(ctx, worker.ID, 2, 1500)
	require.NoError(t, err)
	assert.Equal(t, 2, updated.OutsideWorkDays)
	assert.Equal(t, 1500.0, updated.OutsideWorkBonus)

	_, err = f.svc.RecordOutsideWork(ctx, worker.ID, 0, 100)
	require.Error(t, err)

	_, err = f.svc.RecordOutsideWork(ctx, worker.ID, 1, -100)
	require.Error(t, err)
}

func TestRecordLateHours(t *testing.T) {
	ctx := context.Background()
	f := newWorkerServiceFixture(250)
	worker := f.seedWorker(t, 30000, 10)

	updated, err := f.svc.RecordLateHours(ctx, worker.ID, 3)
	require.NoError(t, err)
	assert.Equal(t, 3.0, updated.LateHours)

	require.Len(t, f.history.entries, 1)
	assert.Equal(t, -750.0, f.history.entries[0].Amount)
}

func TestPaySalary(t *testing.T) {
	ctx := context.Background()

	t.Run("full payout resets the period", func(t *testing.T) {
		f := newWorkerServiceFixture(0)
		worker := f.seedWorker(t, 30000, 10)
		worker.Absences = 1
		worker.Advances = 2000
		require.NoError(t, f.workers.Update(ctx, worker))

		owed := f.svc.TotalSalary(worker) // 10000 - 1000 - 2000 = 7000

		payout, err := f.svc.PaySalary(ctx, worker.ID, owed, "bank", "march payroll")
		require.NoError(t, err)
		assert.InDelta(t, owed, payout.AmountPaid, 0.01)
		assert.InDelta(t, owed, payout.TotalOwed, 0.01)
		assert.Equal(t, "bank", payout.Method)

		stored, _ := f.workers.GetByID(ctx, worker.ID)
		assert.Zero(t, stored.Absences)
		assert.Zero(t, stored.Advances)
		assert.Zero(t, stored.Incentives)
		assert.Zero(t, stored.OutsideWorkDays)
		assert.Zero(t, stored.OutsideWorkBonus)
		assert.Zero(t, stored.LateHours)
		assert.InDelta(t, 0, f.svc.TotalSalary(stored), 0.01)

		require.Len(t, f.history.entries, 1)
		assert.Equal(t, "Salary payout", f.history.entries[0].ChangeType)
		assert.InDelta(t, -owed, f.history.entries[0].Amount, 0.01)
		assert.Contains(t, f.history.entries[0].Details, "via bank")
		assert.Contains(t, f.history.entries[0].Details, "march payroll")
		assert.Contains(t, f.history.entries[0].Details,
			"new period from "+stored.StartDate.Format("2006-01-02"))
	})

	t.Run("partial payout still resets the period", func(t *testing.T) {
		f := newWorkerServiceFixture(0)
		worker := f.seedWorker(t, 30000, 10) // earned 10000

		payout, err := f.svc.PaySalary(ctx, worker.ID, 6000, "", "")
		require.NoError(t, err)
		assert.Equal(t, 6000.0, payout.AmountPaid)
		assert.InDelta(t, 10000, payout.TotalOwed, 0.01)
		assert.Equal(t, "cash", payout.Method, "method defaults to cash")

		// The unpaid difference is not carried forward; it only survives
		// in the history entry's details.
		stored, _ := f.workers.GetByID(ctx, worker.ID)
		assert.InDelta(t, 0, f.svc.TotalSalary(stored), 0.01)
	})

	t.Run("payout above salary owed is rejected", func(t *testing.T) {
		f := newWorkerServiceFixture(0)
		worker := f.seedWorker(t, 30000, 10)

		_, err := f.svc.PaySalary(ctx, worker.ID, 10001, "cash", "")
		require.Error(t, err)
		assert.True(t, apperror.IsBalanceExceeded(err))

		stored, _ := f.workers.GetByID(ctx, worker.ID)
		assert.InDelta(t, 10000, f.svc.TotalSalary(stored), 0.01, "rejected payout must not reset the period")
	})

	t.Run("zero payout rejected", func(t *testing.T) {
		f := newWorkerServiceFixture(0)
		worker := f.seedWorker(t, 30000, 10)

		_, err := f.svc.PaySalary(ctx, worker.ID, 0, "cash", "")
		assert.ErrorIs(t, err, apperror.ErrInvalidAmount)
	})
}

func TestToggleActive(t *testing.T) {
	ctx := context.Background()
	f := newWorkerServiceFixture(0)
	worker := f.seedWorker(t, 30000, 10)

	updated, err := f.svc.ToggleActive(ctx, worker.ID)
	require.NoError(t, err)
	assert.False(t, updated.IsActive)

	updated, err = f.svc.ToggleActive(ctx, worker.ID)
	require.NoError(t, err)
	assert.True(t, updated.IsActive)

	assert.Len(t, f.history.entries, 2)
}

func TestWorkerHistory(t *testing.T) {
	ctx := context.Background()
	f := newWorkerServiceFixture(0)
	worker := f.seedWorker(t, 30000, 10)
	other := f.seedWorker(t, 20000, 5)

	_, err := f.svc.RecordIncentive(ctx, worker.ID, 500, "")
	require.NoError(t, err)
	_, err = f.svc.RecordIncentive(ctx, other.ID, 200, "")
	require.NoError(t, err)

	entries, err := f.svc.History(ctx, worker.ID)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, worker.ID, entries[0].WorkerID)

	_, err = f.svc.History(ctx, uuid.New())
	require.Error(t, err)
}
