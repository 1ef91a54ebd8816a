package enum_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sofazi/backoffice-api/internal/domain/enum"
)

func TestPaymentStatusFor(t *testing.T) {
	testCases := []struct {
		name  string
		paid  float64
		total float64
		want  enum.PaymentStatus
	}{
		{"nothing paid", 0, 100, enum.PaymentStatusUnpaid},
		{"partially paid", 50, 100, enum.PaymentStatusPartial},
		{"fully paid", 100, 100, enum.PaymentStatusPaid},
		{"overpaid", 150, 100, enum.PaymentStatusPaid},
		{"zero total", 0, 0, enum.PaymentStatusPaid},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, enum.PaymentStatusFor(tc.paid, tc.total))
		})
	}
}

func TestAbsenceKindDays(t *testing.T) {
	assert.Equal(t, 1.0, enum.AbsenceKindFull.Days())
	assert.Equal(t, 0.5, enum.AbsenceKindHalf.Days())
	assert.Equal(t, 1.0, enum.AbsenceKind("anything else").Days())
}
