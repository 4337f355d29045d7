package interest

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestMonthlyRate(t *testing.T) {
	tests := []struct {
		name     string
		apr      float64
		expected string
	}{
		{
			name:     "24 percent APR",
			apr:      24.0,
			expected: "0.02",
		},
		{
			name:     "18 percent APR",
			apr:      18.0,
			expected: "0.015",
		},
		{
			name:     "zero APR",
			apr:      0,
			expected: "0",
		},
		{
			name:     "non-terminating division stays precise",
			apr:      20.0,
			expected: "0.0166666666666667",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MonthlyRate(tt.apr)
			want := decimal.RequireFromString(tt.expected)
			if !got.Equal(want) {
				t.Errorf("MonthlyRate(%v) = %s, expected %s", tt.apr, got, want)
			}
		})
	}
}

func TestCharge(t *testing.T) {
	tests := []struct {
		name     string
		balance  string
		rate     string
		expected string
	}{
		{
			name:     "exact product",
			balance:  "1000.00",
			rate:     "0.015",
			expected: "15.00",
		},
		{
			name:     "zero balance accrues nothing",
			balance:  "0",
			rate:     "0.015",
			expected: "0",
		},
		{
			name:     "zero rate charges nothing",
			balance:  "1000.00",
			rate:     "0",
			expected: "0",
		},
		{
			name:     "rounds half up at the cent",
			balance:  "1.50",
			rate:     "0.01",
			expected: "0.02",
		},
		{
			name:     "rounds down below the half cent",
			balance:  "1.40",
			rate:     "0.01",
			expected: "0.01",
		},
		{
			name:     "small balance",
			balance:  "0.10",
			rate:     "0.02",
			expected: "0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			balance := decimal.RequireFromString(tt.balance)
			rate := decimal.RequireFromString(tt.rate)
			got := Charge(balance, rate)
			want := decimal.RequireFromString(tt.expected)
			if !got.Equal(want) {
				t.Errorf("Charge(%s, %s) = %s, expected %s", balance, rate, got, want)
			}
		})
	}
}

// Charge is a pure function; repeated calls with the same inputs must agree
// so that a 1000-month simulation is deterministic.
func TestChargeDeterministic(t *testing.T) {
	balance := decimal.RequireFromString("1234.56")
	rate := MonthlyRate(19.99)
	first := Charge(balance, rate)
	for i := 0; i < 100; i++ {
		if got := Charge(balance, rate); !got.Equal(first) {
			t.Fatalf("Charge diverged on call %d: %s != %s", i, got, first)
		}
	}
}
