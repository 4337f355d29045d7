package snowball

import (
	"fmt"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/paydown/cc-paydown-planner/pkg/constants"
	"github.com/paydown/cc-paydown-planner/pkg/interest"
)

// BudgetOptimization is the outcome of a budget search. When Converged is
// false no budget retires the debt within TargetMonths; Budget and Months
// then describe the fastest schedule found instead.
type BudgetOptimization struct {
	TargetMonths  int
	Budget        decimal.Decimal
	Months        int
	TotalInterest decimal.Decimal
	Iterations    int
	Converged     bool
}

// OptimizeBudget finds the smallest monthly budget, to the cent, whose
// snowball schedule retires every card within targetMonths. It bisects
// between the combined minimum payments and an upper budget grown until its
// schedule meets the target, rerunning the simulation at each candidate.
func OptimizeBudget(logger *zap.Logger, cards []Card, targetMonths int) (*BudgetOptimization, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if targetMonths < 1 {
		return nil, fmt.Errorf("target months must be at least 1, got %d", targetMonths)
	}

	// Intermediate candidates run silently; callers rerun the winning budget
	// through CreateSchedule with their own logger.
	evalLogger := zap.NewNop()

	lower := MinimumPaymentTotal(cards)
	two := decimal.NewFromInt(2)
	iterations := 0

	// Seed the upper bound with every balance plus its first interest charge.
	upper := decimal.Zero
	for _, card := range cards {
		if card.Balance.IsZero() {
			continue
		}
		upper = upper.Add(card.Balance.Add(interest.Charge(card.Balance, card.MonthlyRate())))
	}
	if upper.LessThan(lower) {
		upper = lower
	}

	lowerResult, err := CreateSchedule(evalLogger, cards, lower)
	if err != nil {
		return nil, err
	}
	if meetsTarget(lowerResult, targetMonths) {
		logger.Info("minimum payments already meet the target",
			zap.String("op", "snowball.OptimizeBudget"),
			zap.Int("targetMonths", targetMonths),
			zap.String("budget", lower.StringFixed(2)),
			zap.Int("months", lowerResult.TotalMonths),
		)
		return &BudgetOptimization{
			TargetMonths:  targetMonths,
			Budget:        lower,
			Months:        lowerResult.TotalMonths,
			TotalInterest: lowerResult.TotalInterest,
			Converged:     true,
		}, nil
	}

	upperResult, err := CreateSchedule(evalLogger, cards, upper)
	if err != nil {
		return nil, err
	}

	// The seed can undershoot when a low-minimum card keeps compounding while
	// it waits its turn as the target, so grow it until a schedule fits.
	for !meetsTarget(upperResult, targetMonths) && iterations < constants.MaxOptimizerIterations {
		upper = upper.Mul(two)
		upperResult, err = CreateSchedule(evalLogger, cards, upper)
		if err != nil {
			return nil, err
		}
		iterations++
	}
	if !meetsTarget(upperResult, targetMonths) {
		logger.Warn("no budget meets the target",
			zap.String("op", "snowball.OptimizeBudget"),
			zap.Int("targetMonths", targetMonths),
			zap.Int("fastestMonths", upperResult.TotalMonths),
		)
		return &BudgetOptimization{
			TargetMonths:  targetMonths,
			Budget:        upper,
			Months:        upperResult.TotalMonths,
			TotalInterest: upperResult.TotalInterest,
			Iterations:    iterations,
			Converged:     false,
		}, nil
	}

	cent := decimal.New(1, -2)
	best := upper
	bestResult := upperResult

	for iterations < constants.MaxOptimizerIterations && upper.Sub(lower).GreaterThan(cent) {
		mid := lower.Add(upper).Div(two).Round(2)
		if mid.Equal(lower) || mid.Equal(upper) {
			break
		}

		midResult, err := CreateSchedule(evalLogger, cards, mid)
		if err != nil {
			return nil, err
		}
		iterations++

		if meetsTarget(midResult, targetMonths) {
			upper = mid
			best = mid
			bestResult = midResult
		} else {
			lower = mid
		}
	}

	logger.Info("optimized monthly budget",
		zap.String("op", "snowball.OptimizeBudget"),
		zap.Int("targetMonths", targetMonths),
		zap.String("budget", best.StringFixed(2)),
		zap.Int("months", bestResult.TotalMonths),
		zap.Int("iterations", iterations),
	)

	return &BudgetOptimization{
		TargetMonths:  targetMonths,
		Budget:        best,
		Months:        bestResult.TotalMonths,
		TotalInterest: bestResult.TotalInterest,
		Iterations:    iterations,
		Converged:     true,
	}, nil
}

func meetsTarget(result *Result, targetMonths int) bool {
	return !result.NonTerminating && result.TotalMonths <= targetMonths
}
