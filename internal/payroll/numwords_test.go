package payroll_test

import (
	"testing"

	"github.com/ShivaniDebbadwar/Nexografix-Srv/internal/payroll"

	"github.com/stretchr/testify/assert"
)

func TestAmountInWords(t *testing.T) {
	tests := []struct {
		amount int64
		want   string
	}{
		{0, "Zero"},
		{-1, "Minus One"},
		{-2260, "Minus Two Thousand Two Hundred and Sixty"},
		{7, "Seven"},
		{19, "Nineteen"},
		{20, "Twenty"},
		{42, "Forty Two"},
		{100, "One Hundred"},
		{105, "One Hundred and Five"},
		{999, "Nine Hundred and Ninety Nine"},
		{1000, "One Thousand"},
		{15000, "Fifteen Thousand"},
		{19510, "Nineteen Thousand Five Hundred and Ten"},
		{100000, "One Lakh"},
		{250330, "Two Lakh Fifty Thousand Three Hundred and Thirty"},
		{10000000, "One Crore"},
		{12345678, "One Crore Twenty Three Lakh Forty Five Thousand Six Hundred and Seventy Eight"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, payroll.AmountInWords(tt.amount))
		})
	}
}
