// Package output provides utilities for formatting and displaying payment
// schedules and card summaries.
package output

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/paydown/cc-paydown-planner/pkg/constants"
	"github.com/paydown/cc-paydown-planner/pkg/format"
	"github.com/paydown/cc-paydown-planner/pkg/snowball"
)

// Summary prints the numbered card overview, smallest balance first, with
// portfolio totals. Zero-balance cards count toward total debt but not
// toward the minimum payment total.
func Summary(w io.Writer, cards []snowball.Card) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, strings.Repeat("=", 50))
	fmt.Fprintln(w, "📊 CREDIT CARD SUMMARY")
	fmt.Fprintln(w, strings.Repeat("=", 50))

	sorted := make([]snowball.Card, len(cards))
	copy(sorted, cards)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Balance.LessThan(sorted[j].Balance)
	})

	totalDebt := decimal.Zero
	for i, card := range sorted {
		fmt.Fprintf(w, "%d. %s:\n", i+1, card.Name)
		fmt.Fprintf(w, "   Balance: %s\n", format.Currency(card.Balance))
		fmt.Fprintf(w, "   Minimum Payment: %s\n", format.Currency(card.MinimumPayment))
		fmt.Fprintf(w, "   APR: %.2f%%\n", card.APR)
		if !card.CreditLimit.IsZero() {
			fmt.Fprintf(w, "   Credit Limit: %s\n", format.Currency(card.CreditLimit))
			fmt.Fprintf(w, "   Available Credit: %s\n", format.Currency(card.AvailableCredit()))
		}
		totalDebt = totalDebt.Add(card.Balance)
	}

	fmt.Fprintf(w, "\nTotal Debt: %s\n", format.Currency(totalDebt))
	fmt.Fprintf(w, "Total Minimum Payments: %s\n", format.Currency(snowball.MinimumPaymentTotal(cards)))
}

// PlanOverview prints the headline numbers for a computed schedule: payoff
// time, interest, and amount paid. Zero-month and non-terminating results
// get their own renderings.
func PlanOverview(w io.Writer, result *snowball.Result, monthlyBudget decimal.Decimal) {
	p := message.NewPrinter(language.English)

	fmt.Fprintln(w)
	fmt.Fprintln(w, strings.Repeat("=", 80))
	fmt.Fprintln(w, "📅 DEBT PAYOFF SCHEDULE (Debt Snowball Method)")
	fmt.Fprintln(w, strings.Repeat("=", 80))

	if result.TotalMonths == 0 {
		fmt.Fprintln(w, "🎉 All credit cards have a $0 balance! No payment schedule needed.")
		return
	}

	fmt.Fprintln(w, "🎯 Strategy: Pay minimums on all cards, extra payment goes to smallest balance")
	p.Fprintf(w, "💵 Monthly Budget: $%.2f\n", monthlyBudget.InexactFloat64())

	if result.NonTerminating {
		fmt.Fprintf(w, "⚠️  Debt is NOT paid off within %d months; interest is outpacing payments.\n", result.TotalMonths)
		p.Fprintf(w, "💸 Interest Paid So Far: $%.2f\n", result.TotalInterest.InexactFloat64())
		p.Fprintf(w, "💰 Amount Paid So Far: $%.2f\n", result.TotalPaid.InexactFloat64())
		fmt.Fprintln(w, "The schedule is a partial projection, not a payoff plan. Increase the budget to make progress.")
		return
	}

	years := result.TotalMonths / constants.MonthsPerYear
	months := result.TotalMonths % constants.MonthsPerYear
	fmt.Fprintf(w, "📆 Payoff Time: %d months (%d years, %d months)\n", result.TotalMonths, years, months)
	p.Fprintf(w, "💸 Total Interest Paid: $%.2f\n", result.TotalInterest.InexactFloat64())
	p.Fprintf(w, "💰 Total Amount Paid: $%.2f\n", result.TotalPaid.InexactFloat64())
	if len(result.PayoffOrder) > 1 {
		fmt.Fprintf(w, "🏁 Payoff Order: %s\n", strings.Join(result.PayoffOrder, ", "))
	}
}

// PrettyFormat outputs the human-readable month-by-month schedule. The card
// list supplies credit limits for the remaining-balance lines.
func PrettyFormat(w io.Writer, result *snowball.Result, cards []snowball.Card) {
	p := message.NewPrinter(language.English)

	limits := make(map[string]decimal.Decimal, len(cards))
	for _, card := range cards {
		if !card.CreditLimit.IsZero() {
			limits[card.Name] = card.CreditLimit
		}
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, strings.Repeat("=", 100))
	fmt.Fprintln(w, "DETAILED PAYMENT SCHEDULE")
	fmt.Fprintln(w, strings.Repeat("=", 100))

	for _, record := range result.Months {
		fmt.Fprintf(w, "\n📅 Month %d:\n", record.Month)
		p.Fprintf(w, "   Total Paid: $%.2f | Interest: $%.2f\n",
			record.TotalPaid.InexactFloat64(), record.InterestPaid.InexactFloat64())

		for _, payment := range record.Payments {
			if payment.Payment.IsZero() {
				continue
			}
			p.Fprintf(w, "   • %s: $%.2f (Interest: $%.2f, Principal: $%.2f) → Balance: $%.2f\n",
				payment.Card,
				payment.Payment.InexactFloat64(),
				payment.Interest.InexactFloat64(),
				payment.Principal.InexactFloat64(),
				payment.BalanceAfter.InexactFloat64())
		}

		var remaining []snowball.CardPayment
		for _, payment := range record.Payments {
			if payment.BalanceAfter.GreaterThan(decimal.Zero) {
				remaining = append(remaining, payment)
			}
		}
		if len(remaining) == 0 {
			fmt.Fprintln(w, "   🎉 All cards paid off!")
			continue
		}
		fmt.Fprintln(w, "   Remaining balances:")
		for _, payment := range remaining {
			if limit, ok := limits[payment.Card]; ok {
				p.Fprintf(w, "     - %s: $%.2f (Available Credit: $%.2f)\n",
					payment.Card,
					payment.BalanceAfter.InexactFloat64(),
					limit.Sub(payment.BalanceAfter).InexactFloat64())
				continue
			}
			p.Fprintf(w, "     - %s: $%.2f\n", payment.Card, payment.BalanceAfter.InexactFloat64())
		}
	}
}

// CsvFormat outputs the schedule in comma-separated value format, one row
// per card per month, with a trailing totals row. Status flags stay
// out-of-band; callers branch on the Result before choosing this format.
func CsvFormat(w io.Writer, result *snowball.Result) {
	fmt.Fprintf(w, "\"month\",\"card\",\"payment\",\"interest\",\"principal\",\"balance\"\n")
	for _, record := range result.Months {
		for _, payment := range record.Payments {
			fmt.Fprintf(w, "\"%d\",\"%s\",\"%s\",\"%s\",\"%s\",\"%s\"\n",
				record.Month,
				payment.Card,
				payment.Payment.StringFixed(2),
				payment.Interest.StringFixed(2),
				payment.Principal.StringFixed(2),
				payment.BalanceAfter.StringFixed(2))
		}
	}
	fmt.Fprintf(w, "\"totals\",\"\",\"%s\",\"%s\",\"%s\",\"\"\n",
		result.TotalPaid.StringFixed(2),
		result.TotalInterest.StringFixed(2),
		result.TotalPaid.Sub(result.TotalInterest).StringFixed(2))
}
