package validation

import (
	"fmt"

	"github.com/paydown/cc-paydown-planner/pkg/snowball"
)

// UnusuallyHighAPR is the annual rate above which a card's APR is probably
// a data-entry mistake (a monthly rate or basis points).
const UnusuallyHighAPR = 40.0

// ValidateCards returns advisory warnings for card data that will schedule
// fine but probably does not say what the user meant. Hard failures are the
// scheduler's job; these are logged and the run continues.
func ValidateCards(cards []snowball.Card) []string {
	var warnings []string

	counts := make(map[string]int, len(cards))
	for _, card := range cards {
		counts[card.Name]++
	}

	warned := make(map[string]bool)
	for _, card := range cards {
		if counts[card.Name] > 1 && !warned[card.Name] {
			warnings = append(warnings, fmt.Sprintf("card '%s' is listed %d times; schedule rows for it will be ambiguous",
				card.Name, counts[card.Name]))
			warned[card.Name] = true
		}

		if card.APR > UnusuallyHighAPR {
			warnings = append(warnings, fmt.Sprintf("card '%s' has an unusually high APR of %.2f%%; confirm it is an annual rate",
				card.Name, card.APR))
		}

		if !card.Balance.IsZero() && card.MinimumPayment.GreaterThan(card.Balance) {
			warnings = append(warnings, fmt.Sprintf("card '%s' has a minimum payment above its balance; only the balance will be collected",
				card.Name))
		}

		if !card.CreditLimit.IsZero() && card.Balance.GreaterThan(card.CreditLimit) {
			warnings = append(warnings, fmt.Sprintf("card '%s' carries a balance above its credit limit",
				card.Name))
		}
	}

	return warnings
}
