// Package constants provides shared constants for the cc-paydown-planner application.
package constants

// YearMonthLayout is the format expected for calendar month selections and is
// also the layout used when labeling schedule months with dates.
const YearMonthLayout = "2006-01"

// Financial constants
const (
	// MonthsPerYear is the number of months in a year
	MonthsPerYear = 12

	// PercentageMultiplier is used for percentage conversions
	PercentageMultiplier = 100

	// DefaultAPR is the annual percentage rate assumed when a card does not
	// specify one
	DefaultAPR = 18.0

	// MaxScheduleMonths bounds the snowball simulation; budgets that cannot
	// retire the debt inside this window produce a partial schedule
	MaxScheduleMonths = 1000

	// MaxOptimizerIterations bounds the budget bisection search
	MaxOptimizerIterations = 64
)

// Due date constants
const (
	// DefaultDueDate is the payment due date assumed when a card does not
	// specify one
	DefaultDueDate = "15th"

	// DefaultDueDay is the numeric day corresponding to DefaultDueDate
	DefaultDueDay = 15

	// MinDueDay is the smallest acceptable day of month for a due date
	MinDueDay = 1

	// MaxDueDay is the largest acceptable day of month for a due date
	MaxDueDay = 31
)

// Calendar constants
const (
	// MinCalendarYear is the earliest year accepted for calendar views
	MinCalendarYear = 1900

	// MaxCalendarYear is the latest year accepted for calendar views
	MaxCalendarYear = 2100
)

// Output format constants
const (
	// OutputFormatPretty is the human-readable output format
	OutputFormatPretty = "pretty"

	// OutputFormatCSV is the CSV output format
	OutputFormatCSV = "csv"
)

// Configuration file constants
const (
	// DefaultConfigFile is the default configuration file name
	DefaultConfigFile = "config.yaml"

	// ExampleConfigFile is the example configuration file name
	ExampleConfigFile = "config.yaml.example"
)
