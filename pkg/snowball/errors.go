package snowball

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// ErrInvalidCard indicates card data that fails validation before any
// scheduling takes place.
var ErrInvalidCard = errors.New("invalid card")

// InfeasibleBudgetError indicates that the monthly budget cannot cover the
// combined minimum payments of the cards carrying a balance.
type InfeasibleBudgetError struct {
	Budget          decimal.Decimal
	RequiredMinimum decimal.Decimal
}

func (e *InfeasibleBudgetError) Error() string {
	return fmt.Sprintf("monthly budget %s does not cover the %s in combined minimum payments (short %s)",
		e.Budget.StringFixed(2), e.RequiredMinimum.StringFixed(2), e.Shortfall().StringFixed(2))
}

// Shortfall returns how much the budget would need to grow to become
// feasible.
func (e *InfeasibleBudgetError) Shortfall() decimal.Decimal {
	return e.RequiredMinimum.Sub(e.Budget)
}
