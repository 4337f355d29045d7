// Package calendar builds a month view of payment due dates and renders it
// either as plain text or with ANSI colors when writing to a terminal.
package calendar

import (
	"errors"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/paydown/cc-paydown-planner/pkg/constants"
	"github.com/paydown/cc-paydown-planner/pkg/datetime"
	"github.com/paydown/cc-paydown-planner/pkg/snowball"
)

var (
	ErrInvalidMonth = errors.New("invalid month, must be between 1 and 12")
	ErrInvalidYear  = errors.New("invalid year, must be between 1900 and 2100")
)

// DueCard is one card's payment obligation placed on the calendar.
type DueCard struct {
	Name    string
	Day     int
	Payment decimal.Decimal
	Balance decimal.Decimal
}

// Month is a payment calendar for a single month. Cards holds only cards
// that still carry a balance, in their original order.
type Month struct {
	Year  int
	Month time.Month
	Cards []DueCard
}

// NewMonth places every card with a balance on the calendar by its due day.
func NewMonth(year int, month time.Month, cards []snowball.Card) (*Month, error) {
	if month < time.January || month > time.December {
		return nil, ErrInvalidMonth
	}
	if year < constants.MinCalendarYear || year > constants.MaxCalendarYear {
		return nil, ErrInvalidYear
	}

	m := &Month{Year: year, Month: month}
	for _, card := range cards {
		if !card.Balance.IsPositive() {
			continue
		}
		m.Cards = append(m.Cards, DueCard{
			Name:    card.Name,
			Day:     datetime.DueDay(card.DueDate),
			Payment: card.MinimumPayment,
			Balance: card.Balance,
		})
	}
	return m, nil
}

// dueByDay groups cards by due day, preserving card order within a day.
func (m *Month) dueByDay() map[int][]DueCard {
	byDay := make(map[int][]DueCard)
	for _, card := range m.Cards {
		byDay[card.Day] = append(byDay[card.Day], card)
	}
	return byDay
}

// dueDays returns the days that have payments due, in ascending order.
func (m *Month) dueDays() []int {
	byDay := m.dueByDay()
	days := make([]int, 0, len(byDay))
	for day := range byDay {
		days = append(days, day)
	}
	sort.Ints(days)
	return days
}
