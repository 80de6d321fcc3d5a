package payroll_test

import (
	"testing"
	"time"

	"github.com/ShivaniDebbadwar/Nexografix-Srv/internal/payroll"

	"github.com/stretchr/testify/assert"
)

func TestMonthRange(t *testing.T) {
	start, end := payroll.MonthRange(2024, 2)

	assert.Equal(t, time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2024, 2, 29, 23, 59, 59, 999000000, time.UTC), end)
}

func TestMonthRangeDecember(t *testing.T) {
	start, end := payroll.MonthRange(2025, 12)

	assert.Equal(t, time.Date(2025, 12, 1, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, 31, end.Day())
	assert.Equal(t, time.December, end.Month())
}

func TestCountWorkingDays(t *testing.T) {
	tests := []struct {
		name  string
		year  int
		month int
		want  int
	}{
		{"february 2024 leap", 2024, 2, 21},
		{"january 2024", 2024, 1, 23},
		{"september 2025", 2025, 9, 22},
		{"june 2025", 2025, 6, 21},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end := payroll.MonthRange(tt.year, tt.month)
			assert.Equal(t, tt.want, payroll.CountWorkingDays(start, end))
		})
	}
}

func TestCountWorkingDaysStartAfterEnd(t *testing.T) {
	start := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, 0, payroll.CountWorkingDays(start, end))
}

func TestCountWorkingDaysSingleWeekend(t *testing.T) {
	// 2024-03-02 is a Saturday.
	day := time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, 0, payroll.CountWorkingDays(day, day))
}
