// Package interest provides the monthly interest model for revolving credit
// card balances.
package interest

import (
	"github.com/shopspring/decimal"

	"github.com/paydown/cc-paydown-planner/pkg/constants"
)

// MonthlyRate converts an annual percentage rate to a periodic monthly rate.
// The rate is kept at full decimal precision; rounding happens only when a
// charge is computed.
func MonthlyRate(apr float64) decimal.Decimal {
	return decimal.NewFromFloat(apr).
		Div(decimal.NewFromInt(constants.PercentageMultiplier * constants.MonthsPerYear))
}

// Charge calculates the interest accrued on a balance for one month,
// rounded half-up to cents. A zero balance accrues nothing regardless of
// the rate; a zero rate charges nothing regardless of the balance.
func Charge(balance, monthlyRate decimal.Decimal) decimal.Decimal {
	if balance.IsZero() || monthlyRate.IsZero() {
		return decimal.Zero
	}
	return balance.Mul(monthlyRate).Round(2)
}
