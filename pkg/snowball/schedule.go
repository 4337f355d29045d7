// Package snowball implements the debt-snowball payment scheduler: minimum
// payments on every card, all remaining budget against the smallest balance,
// and each freed minimum rolled into the attack on the next card.
package snowball

import (
	"sort"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/paydown/cc-paydown-planner/pkg/constants"
	"github.com/paydown/cc-paydown-planner/pkg/interest"
	"github.com/paydown/cc-paydown-planner/pkg/money"
)

// CardPayment records a single card's activity within one month. Principal
// is Payment minus Interest and goes negative in months where a minimum does
// not cover the accrued interest.
type CardPayment struct {
	Card          string
	Payment       decimal.Decimal
	Interest      decimal.Decimal
	Principal     decimal.Decimal
	BalanceBefore decimal.Decimal
	BalanceAfter  decimal.Decimal
}

// MonthRecord aggregates all card activity for one month of the schedule.
type MonthRecord struct {
	Month        int
	Payments     []CardPayment
	TotalPaid    decimal.Decimal
	InterestPaid decimal.Decimal
}

// Result is the complete outcome of a snowball simulation. PayoffOrder lists
// card names in the order their balances reached zero; AlreadyPaidOff lists
// cards that entered with a zero balance and never joined the schedule. When
// NonTerminating is set the Months slice holds the partial schedule that was
// simulated before the month bound was hit.
type Result struct {
	Months         []MonthRecord
	TotalMonths    int
	TotalPaid      decimal.Decimal
	TotalInterest  decimal.Decimal
	PayoffOrder    []string
	AlreadyPaidOff []string
	NonTerminating bool
}

// CreateSchedule simulates paying down cards with the given monthly budget
// using the debt-snowball strategy. The input slice is never modified. A
// budget below the combined minimum payments of the cards carrying a balance
// returns an *InfeasibleBudgetError; card data that fails validation returns
// an error wrapping ErrInvalidCard.
func CreateSchedule(logger *zap.Logger, cards []Card, monthlyBudget decimal.Decimal) (*Result, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	for _, card := range cards {
		if err := card.Validate(); err != nil {
			return nil, err
		}
	}

	result := &Result{}

	// Work on copies so the caller's slice stays untouched.
	active := make([]Card, 0, len(cards))
	for _, card := range cards {
		if card.Balance.IsZero() {
			result.AlreadyPaidOff = append(result.AlreadyPaidOff, card.Name)
			continue
		}
		active = append(active, card)
	}

	if len(active) == 0 {
		logger.Info("no balances to schedule",
			zap.String("op", "snowball.CreateSchedule"),
			zap.Int("cardsAlreadyPaidOff", len(result.AlreadyPaidOff)),
		)
		return result, nil
	}

	required := MinimumPaymentTotal(active)
	if monthlyBudget.LessThan(required) {
		return nil, &InfeasibleBudgetError{
			Budget:          monthlyBudget,
			RequiredMinimum: required,
		}
	}

	logger.Debug("starting snowball simulation",
		zap.String("op", "snowball.CreateSchedule"),
		zap.Int("cards", len(active)),
		zap.String("monthlyBudget", monthlyBudget.StringFixed(2)),
	)

	for month := 1; month <= constants.MaxScheduleMonths && len(active) > 0; month++ {
		// Stable sort keeps input order for equal balances, so ties go to
		// the card listed first.
		sort.SliceStable(active, func(i, j int) bool {
			return active[i].Balance.LessThan(active[j].Balance)
		})

		// The extra is the budget beyond the nominal minimums of this
		// month's active set. It never goes negative: the active set only
		// shrinks, so its minimum total stays within the validated budget.
		extra := monthlyBudget.Sub(MinimumPaymentTotal(active))

		record := MonthRecord{Month: month}
		for i := range active {
			card := &active[i]

			before := card.Balance
			charge := interest.Charge(before, card.MonthlyRate())
			card.Balance = before.Add(charge)

			// Every card pays its minimum, capped at what it owes. The
			// smallest balance additionally absorbs the extra. A minimum
			// left uncollected by the cap is not redirected this month.
			payment := money.Min(card.MinimumPayment, card.Balance)
			if i == 0 {
				payment = money.Min(card.MinimumPayment.Add(extra), card.Balance)
			}
			card.Balance = card.Balance.Sub(payment)

			record.Payments = append(record.Payments, CardPayment{
				Card:          card.Name,
				Payment:       payment,
				Interest:      charge,
				Principal:     payment.Sub(charge),
				BalanceBefore: before,
				BalanceAfter:  card.Balance,
			})
			record.TotalPaid = record.TotalPaid.Add(payment)
			record.InterestPaid = record.InterestPaid.Add(charge)
		}

		remaining := active[:0]
		for _, card := range active {
			if card.Balance.IsZero() {
				result.PayoffOrder = append(result.PayoffOrder, card.Name)
				logger.Debug("card paid off",
					zap.String("op", "snowball.CreateSchedule"),
					zap.String("card", card.Name),
					zap.Int("month", month),
				)
				continue
			}
			remaining = append(remaining, card)
		}
		active = remaining

		result.Months = append(result.Months, record)
		result.TotalPaid = result.TotalPaid.Add(record.TotalPaid)
		result.TotalInterest = result.TotalInterest.Add(record.InterestPaid)
	}

	result.TotalMonths = len(result.Months)

	if len(active) > 0 {
		result.NonTerminating = true
		logger.Warn("balances not retired within the month bound",
			zap.String("op", "snowball.CreateSchedule"),
			zap.Int("monthsSimulated", result.TotalMonths),
			zap.Int("cardsRemaining", len(active)),
		)
		return result, nil
	}

	logger.Info("snowball simulation complete",
		zap.String("op", "snowball.CreateSchedule"),
		zap.Int("months", result.TotalMonths),
		zap.String("totalInterest", result.TotalInterest.StringFixed(2)),
		zap.String("totalPaid", result.TotalPaid.StringFixed(2)),
	)
	return result, nil
}

// MinimumPaymentTotal sums the minimum payments of the cards carrying a
// balance. Zero-balance cards owe nothing regardless of their stored
// minimum.
func MinimumPaymentTotal(cards []Card) decimal.Decimal {
	total := decimal.Zero
	for _, card := range cards {
		if card.Balance.IsZero() {
			continue
		}
		total = total.Add(card.MinimumPayment)
	}
	return total
}
