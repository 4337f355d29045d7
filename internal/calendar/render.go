package calendar

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/shopspring/decimal"

	"github.com/paydown/cc-paydown-planner/pkg/datetime"
	"github.com/paydown/cc-paydown-planner/pkg/format"
)

// Renderer turns a Month into displayable text.
type Renderer interface {
	Render(m *Month) string
}

// NewRenderer picks a color renderer when w is a terminal and the NO_COLOR
// convention is not in effect, and falls back to plain text otherwise.
func NewRenderer(w io.Writer) Renderer {
	if os.Getenv("NO_COLOR") != "" {
		return &PlainRenderer{}
	}
	if f, ok := w.(*os.File); ok && (isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())) {
		return &ColorRenderer{}
	}
	return &PlainRenderer{}
}

// PlainRenderer draws the calendar as plain text, marking due days with '*'.
type PlainRenderer struct{}

func (r *PlainRenderer) Render(m *Month) string {
	var b strings.Builder
	title := fmt.Sprintf("%s %d", m.Month, m.Year)

	fmt.Fprintf(&b, "\n🗓️  PAYMENT CALENDAR - %s\n", title)
	b.WriteString(strings.Repeat("═", 50) + "\n")

	byDay := m.dueByDay()
	if len(byDay) == 0 {
		b.WriteString("No payment due dates found for cards with balances.\n")
		return b.String()
	}

	fmt.Fprintf(&b, "      %s\n", title)
	b.WriteString("Mo Tu We Th Fr Sa Su\n")
	for _, week := range datetime.MonthGrid(m.Year, m.Month) {
		var line strings.Builder
		for _, day := range week {
			switch {
			case day == 0:
				line.WriteString("   ")
			case len(byDay[day]) > 0:
				fmt.Fprintf(&line, "%2d*", day)
			default:
				fmt.Fprintf(&line, "%2d ", day)
			}
		}
		b.WriteString(strings.TrimRight(line.String(), " ") + "\n")
	}

	b.WriteString("\nPayment Due Dates:\n")
	b.WriteString(strings.Repeat("─", 20) + "\n")
	for _, day := range m.dueDays() {
		fmt.Fprintf(&b, "• %d%s:\n", day, datetime.DaySuffix(day))
		totalDue := decimal.Zero
		for _, card := range byDay[day] {
			fmt.Fprintf(&b, "  - %s: $%s (Balance: %s)\n",
				card.Name, card.Payment.StringFixed(2), format.Currency(card.Balance))
			totalDue = totalDue.Add(card.Payment)
		}
		if len(byDay[day]) > 1 {
			fmt.Fprintf(&b, "  Total due: $%s\n", totalDue.StringFixed(2))
		}
		b.WriteString("\n")
	}
	return b.String()
}

const (
	ansiReset       = "\x1b[0m"
	ansiBold        = "\x1b[1m"
	ansiBoldMagenta = "\x1b[1;35m"
	ansiBoldCyan    = "\x1b[1;36m"
)

// cardColor pairs a foreground code for inline card names with a
// white-on-background code for highlighted calendar cells.
type cardColor struct {
	fg        string
	highlight string
}

// palette lists colors that keep white text readable on dark terminals,
// mirroring the primary and bright ANSI backgrounds.
var palette = []cardColor{
	{fg: "\x1b[31m", highlight: "\x1b[97;41m"},
	{fg: "\x1b[32m", highlight: "\x1b[97;42m"},
	{fg: "\x1b[34m", highlight: "\x1b[97;44m"},
	{fg: "\x1b[35m", highlight: "\x1b[97;45m"},
	{fg: "\x1b[36m", highlight: "\x1b[97;46m"},
	{fg: "\x1b[91m", highlight: "\x1b[97;101m"},
	{fg: "\x1b[92m", highlight: "\x1b[97;102m"},
	{fg: "\x1b[94m", highlight: "\x1b[97;104m"},
	{fg: "\x1b[95m", highlight: "\x1b[97;105m"},
	{fg: "\x1b[96m", highlight: "\x1b[97;106m"},
}

// assignColors gives each card a palette color in input order, cycling when
// there are more cards than colors.
func assignColors(cards []DueCard) map[string]cardColor {
	colors := make(map[string]cardColor, len(cards))
	for i, card := range cards {
		colors[card.Name] = palette[i%len(palette)]
	}
	return colors
}

// ColorRenderer draws the calendar with ANSI colors, one color per card.
// Days where a single card is due show on that card's color; days shared by
// several cards add a '*' marker.
type ColorRenderer struct{}

func (r *ColorRenderer) Render(m *Month) string {
	var b strings.Builder
	title := fmt.Sprintf("%s %d", m.Month, m.Year)

	fmt.Fprintf(&b, "\n🗓️  %sPAYMENT CALENDAR - %s%s\n", ansiBoldMagenta, title, ansiReset)
	b.WriteString(strings.Repeat("═", 50) + "\n")

	byDay := m.dueByDay()
	if len(byDay) == 0 {
		b.WriteString("No payment due dates found for cards with balances.\n")
		return b.String()
	}
	colors := assignColors(m.Cards)

	fmt.Fprintf(&b, "       %s\n", title)
	for _, name := range []string{"Mo", "Tu", "We", "Th", "Fr", "Sa", "Su"} {
		fmt.Fprintf(&b, "%s %s %s", ansiBoldCyan, name, ansiReset)
	}
	b.WriteString("\n")
	for _, week := range datetime.MonthGrid(m.Year, m.Month) {
		for _, day := range week {
			due := byDay[day]
			switch {
			case day == 0:
				b.WriteString("    ")
			case len(due) == 1:
				fmt.Fprintf(&b, "%s %2d %s", colors[due[0].Name].highlight, day, ansiReset)
			case len(due) > 1:
				fmt.Fprintf(&b, "%s %2d*%s", colors[due[0].Name].highlight, day, ansiReset)
			default:
				fmt.Fprintf(&b, " %2d ", day)
			}
		}
		b.WriteString("\n")
	}

	fmt.Fprintf(&b, "\n%sColor Legend:%s\n", ansiBoldCyan, ansiReset)
	b.WriteString(strings.Repeat("─", 20) + "\n")
	seen := make(map[string]bool, len(m.Cards))
	for _, card := range m.Cards {
		if seen[card.Name] {
			continue
		}
		seen[card.Name] = true
		fmt.Fprintf(&b, "%s %s %s\n", colors[card.Name].highlight, card.Name, ansiReset)
	}

	fmt.Fprintf(&b, "\n%sPayment Due Dates:%s\n", ansiBoldCyan, ansiReset)
	b.WriteString(strings.Repeat("─", 20) + "\n")
	for _, day := range m.dueDays() {
		fmt.Fprintf(&b, "%s• %d%s:%s\n", ansiBold, day, datetime.DaySuffix(day), ansiReset)
		totalDue := decimal.Zero
		for _, card := range byDay[day] {
			fmt.Fprintf(&b, "  - %s%s%s: $%s (Balance: %s)\n",
				colors[card.Name].fg, card.Name, ansiReset,
				card.Payment.StringFixed(2), format.Currency(card.Balance))
			totalDue = totalDue.Add(card.Payment)
		}
		if len(byDay[day]) > 1 {
			fmt.Fprintf(&b, "  %sTotal due: $%s%s\n", ansiBold, totalDue.StringFixed(2), ansiReset)
		}
		b.WriteString("\n")
	}
	return b.String()
}
