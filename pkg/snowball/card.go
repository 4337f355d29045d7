package snowball

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/paydown/cc-paydown-planner/pkg/interest"
)

// Card describes one revolving credit card account. Balance, MinimumPayment,
// and CreditLimit are cent-quantized decimals; APR is the annual percentage
// rate as a percent (e.g. 24.0 for 24%).
type Card struct {
	Name           string
	Balance        decimal.Decimal
	MinimumPayment decimal.Decimal
	APR            float64
	DueDate        string
	CreditLimit    decimal.Decimal
	Notes          string
}

// MonthlyRate derives the periodic monthly rate from the card's APR. The
// rate is computed on demand and never stored alongside the card.
func (c Card) MonthlyRate() decimal.Decimal {
	return interest.MonthlyRate(c.APR)
}

// AvailableCredit returns the remaining credit when a limit is known, or
// zero when no limit was provided or the balance exceeds it.
func (c Card) AvailableCredit() decimal.Decimal {
	if c.CreditLimit.IsZero() {
		return decimal.Zero
	}
	available := c.CreditLimit.Sub(c.Balance)
	if available.IsNegative() {
		return decimal.Zero
	}
	return available
}

// Validate checks the card fields that the scheduler depends on.
func (c Card) Validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return fmt.Errorf("%w: card name must not be empty", ErrInvalidCard)
	}
	if c.Balance.IsNegative() {
		return fmt.Errorf("%w: card %s has negative balance %s", ErrInvalidCard, c.Name, c.Balance.StringFixed(2))
	}
	if c.MinimumPayment.IsNegative() {
		return fmt.Errorf("%w: card %s has negative minimum payment %s", ErrInvalidCard, c.Name, c.MinimumPayment.StringFixed(2))
	}
	if c.APR < 0 {
		return fmt.Errorf("%w: card %s has negative APR %.2f", ErrInvalidCard, c.Name, c.APR)
	}
	return nil
}
