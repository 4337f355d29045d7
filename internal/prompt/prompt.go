// Package prompt implements the interactive card and budget entry flow. A
// Prompter reads answers line by line and re-asks until it gets a usable
// value, so callers only ever see valid data or a closed-input error.
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/paydown/cc-paydown-planner/internal/config"
	"github.com/paydown/cc-paydown-planner/pkg/format"
	"github.com/paydown/cc-paydown-planner/pkg/money"
	"github.com/paydown/cc-paydown-planner/pkg/snowball"
)

// ErrInputClosed indicates the input stream ended while an answer was still
// needed.
var ErrInputClosed = errors.New("input closed")

// Prompter asks questions on out and reads answers from in.
type Prompter struct {
	scanner  *bufio.Scanner
	out      io.Writer
	defaults config.Defaults
}

// New returns a Prompter using the configured defaults for optional card
// fields.
func New(in io.Reader, out io.Writer, defaults config.Defaults) *Prompter {
	return &Prompter{
		scanner:  bufio.NewScanner(in),
		out:      out,
		defaults: defaults,
	}
}

func (p *Prompter) readLine() (string, error) {
	if !p.scanner.Scan() {
		if err := p.scanner.Err(); err != nil {
			return "", err
		}
		return "", ErrInputClosed
	}
	return strings.TrimSpace(p.scanner.Text()), nil
}

// promptString asks for a line of text. An empty answer takes the default
// when one is given, and re-asks otherwise.
func (p *Prompter) promptString(label, def string) (string, error) {
	for {
		if def != "" {
			fmt.Fprintf(p.out, "%s [%s]: ", label, def)
		} else {
			fmt.Fprintf(p.out, "%s: ", label)
		}
		answer, err := p.readLine()
		if err != nil {
			return "", err
		}
		if answer != "" {
			return answer, nil
		}
		if def != "" {
			return def, nil
		}
	}
}

// promptOptional asks for a line of text where an empty answer is fine.
func (p *Prompter) promptOptional(label string) (string, error) {
	fmt.Fprintf(p.out, "%s: ", label)
	return p.readLine()
}

// promptAmount asks for a monetary amount, re-asking on anything that does
// not parse as a number.
func (p *Prompter) promptAmount(label string, def *decimal.Decimal) (decimal.Decimal, error) {
	for {
		if def != nil {
			fmt.Fprintf(p.out, "%s [%s]: ", label, def.StringFixed(2))
		} else {
			fmt.Fprintf(p.out, "%s: ", label)
		}
		answer, err := p.readLine()
		if err != nil {
			return decimal.Zero, err
		}
		if answer == "" && def != nil {
			return *def, nil
		}
		amount, err := money.Parse(answer)
		if err != nil {
			fmt.Fprintln(p.out, "Please enter a valid number.")
			continue
		}
		return amount, nil
	}
}

// promptFloat asks for a plain number such as an APR.
func (p *Prompter) promptFloat(label string, def float64) (float64, error) {
	for {
		fmt.Fprintf(p.out, "%s [%g]: ", label, def)
		answer, err := p.readLine()
		if err != nil {
			return 0, err
		}
		if answer == "" {
			return def, nil
		}
		value, err := strconv.ParseFloat(answer, 64)
		if err != nil {
			fmt.Fprintln(p.out, "Please enter a valid number.")
			continue
		}
		return value, nil
	}
}

// Confirm asks a yes/no question that defaults to no.
func (p *Prompter) Confirm(label string) (bool, error) {
	fmt.Fprintf(p.out, "%s [y/N]: ", label)
	answer, err := p.readLine()
	if err != nil {
		return false, err
	}
	switch strings.ToLower(answer) {
	case "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}

// Filename asks for a file name, offering a default.
func (p *Prompter) Filename(label, def string) (string, error) {
	return p.promptString(label, def)
}

// Cards walks the interactive card entry loop and returns every card the
// user added.
func (p *Prompter) Cards() ([]snowball.Card, error) {
	var cards []snowball.Card
	zero := decimal.Zero

	for {
		fmt.Fprintf(p.out, "\n📝 Enter details for credit card #%d:\n", len(cards)+1)

		name, err := p.promptString("Card name", "")
		if err != nil {
			return nil, err
		}

		creditLimit, err := p.promptAmount("Credit limit", &zero)
		if err != nil {
			return nil, err
		}

		var balance decimal.Decimal
		for {
			balance, err = p.promptAmount("Current balance", nil)
			if err != nil {
				return nil, err
			}
			if balance.IsNegative() {
				fmt.Fprintln(p.out, "Balance must be greater than or equal to 0.")
				continue
			}
			if creditLimit.IsPositive() && balance.GreaterThan(creditLimit) {
				fmt.Fprintln(p.out, "Current balance cannot exceed credit limit.")
				continue
			}
			break
		}

		var minPayment decimal.Decimal
		for {
			minPayment, err = p.promptAmount("Minimum payment", nil)
			if err != nil {
				return nil, err
			}
			if minPayment.IsNegative() {
				fmt.Fprintln(p.out, "Minimum payment must be greater than or equal to 0.")
				continue
			}
			if balance.IsPositive() && minPayment.GreaterThan(balance) {
				fmt.Fprintln(p.out, "Minimum payment cannot be greater than balance.")
				continue
			}
			break
		}

		dueDate, err := p.promptString("Payment due date (e.g., 15th of month)", p.defaults.DueDate)
		if err != nil {
			return nil, err
		}

		var apr float64
		for {
			apr, err = p.promptFloat("Annual Percentage Rate (APR)", p.defaults.APR)
			if err != nil {
				return nil, err
			}
			if apr < 0 {
				fmt.Fprintln(p.out, "APR must be greater than or equal to 0.")
				continue
			}
			break
		}

		notes, err := p.promptOptional("Notes (optional)")
		if err != nil {
			return nil, err
		}

		card := snowball.Card{
			Name:           name,
			Balance:        balance,
			MinimumPayment: minPayment,
			APR:            apr,
			DueDate:        dueDate,
			CreditLimit:    creditLimit,
			Notes:          notes,
		}
		cards = append(cards, card)

		fmt.Fprintf(p.out, "\n✅ Added: %s - Balance: %s, Min Payment: %s, APR: %g%%\n",
			card.Name, format.Currency(card.Balance), format.Currency(card.MinimumPayment), card.APR)
		if card.CreditLimit.IsPositive() {
			fmt.Fprintf(p.out, "   Credit Limit: %s, Available Credit: %s\n",
				format.Currency(card.CreditLimit), format.Currency(card.AvailableCredit()))
		}
		if card.Notes != "" {
			fmt.Fprintf(p.out, "   Notes: %s\n", card.Notes)
		}

		again, err := p.Confirm("\nAdd another credit card?")
		if err != nil {
			return nil, err
		}
		if !again {
			break
		}
	}

	return cards, nil
}

// Budget asks for the monthly payment amount and re-asks until it covers
// the combined minimum payments.
func (p *Prompter) Budget(minimumRequired decimal.Decimal) (decimal.Decimal, error) {
	label := fmt.Sprintf("How much can you pay toward credit cards each month?\n(Minimum required: %s)",
		format.Currency(minimumRequired))
	for {
		amount, err := p.promptAmount(label, nil)
		if err != nil {
			return decimal.Zero, err
		}
		if amount.LessThan(minimumRequired) {
			fmt.Fprintf(p.out, "Amount must be at least %s to cover minimum payments.\n",
				format.Currency(minimumRequired))
			continue
		}
		return amount, nil
	}
}
