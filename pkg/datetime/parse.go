// Package datetime provides date parsing utilities for due dates and
// calendar month selections.
package datetime

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/paydown/cc-paydown-planner/pkg/constants"
)

var dayPattern = regexp.MustCompile(`\d+`)

// DueDay extracts the day of month from a free-text due date such as "15th",
// "the 3rd", or "21". Text with no number, or a number outside 1-31, falls
// back to the default day of 15 rather than failing; due dates are
// presentation data and should never block a schedule.
func DueDay(raw string) int {
	match := dayPattern.FindString(raw)
	if match == "" {
		return constants.DefaultDueDay
	}
	day, err := strconv.Atoi(match)
	if err != nil || day < constants.MinDueDay || day > constants.MaxDueDay {
		return constants.DefaultDueDay
	}
	return day
}

// DaySuffix returns the English ordinal suffix for a day of month.
func DaySuffix(day int) string {
	if day >= 11 && day <= 13 {
		return "th"
	}
	switch day % 10 {
	case 1:
		return "st"
	case 2:
		return "nd"
	case 3:
		return "rd"
	default:
		return "th"
	}
}

// ParseYearMonth parses a calendar month selection in YYYY-MM form and
// bounds the year to a sane range.
func ParseYearMonth(s string) (int, time.Month, error) {
	t, err := time.Parse(constants.YearMonthLayout, strings.TrimSpace(s))
	if err != nil {
		return 0, 0, fmt.Errorf("invalid month %q, expected YYYY-MM: %w", s, err)
	}
	if t.Year() < constants.MinCalendarYear || t.Year() > constants.MaxCalendarYear {
		return 0, 0, fmt.Errorf("year %d out of range %d-%d", t.Year(), constants.MinCalendarYear, constants.MaxCalendarYear)
	}
	return t.Year(), t.Month(), nil
}

// MonthGrid lays out a month as Monday-first weeks. Cells outside the month
// are zero, matching the shape calendar renderers expect.
func MonthGrid(year int, month time.Month) [][]int {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	daysInMonth := first.AddDate(0, 1, -1).Day()
	offset := (int(first.Weekday()) + 6) % 7

	var weeks [][]int
	week := make([]int, 7)
	col := offset
	for day := 1; day <= daysInMonth; day++ {
		week[col] = day
		col++
		if col == 7 {
			weeks = append(weeks, week)
			week = make([]int, 7)
			col = 0
		}
	}
	if col > 0 {
		weeks = append(weeks, week)
	}
	return weeks
}
