package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/paydown/cc-paydown-planner/internal/calendar"
	"github.com/paydown/cc-paydown-planner/internal/cardfile"
	"github.com/paydown/cc-paydown-planner/internal/config"
	"github.com/paydown/cc-paydown-planner/internal/prompt"
	"github.com/paydown/cc-paydown-planner/pkg/constants"
	"github.com/paydown/cc-paydown-planner/pkg/datetime"
	"github.com/paydown/cc-paydown-planner/pkg/money"
	"github.com/paydown/cc-paydown-planner/pkg/output"
	"github.com/paydown/cc-paydown-planner/pkg/snowball"
	"github.com/paydown/cc-paydown-planner/pkg/validation"
)

// initializeLogger creates a zap logger based on configuration and CLI override
func initializeLogger(loggingConfig config.LoggingConfig, logLevelOverride string) (*zap.Logger, error) {
	// Determine log level (CLI override takes precedence)
	level := loggingConfig.Level
	if logLevelOverride != "" {
		level = logLevelOverride
	}
	if level == "" {
		level = "info" // Default to info level
	}

	// Parse log level
	var zapLevel zapcore.Level
	switch level {
	case "debug":
		zapLevel = zapcore.DebugLevel
	case "info":
		zapLevel = zapcore.InfoLevel
	case "warn", "warning":
		zapLevel = zapcore.WarnLevel
	case "error":
		zapLevel = zapcore.ErrorLevel
	default:
		return nil, fmt.Errorf("invalid log level: %s", level)
	}

	// Determine output format
	format := loggingConfig.Format
	if format == "" {
		format = "console" // Default to console for an interactive tool
	}

	// Configure encoder
	var zapConfig zap.Config
	switch format {
	case "console":
		zapConfig = zap.NewDevelopmentConfig()
		zapConfig.Level = zap.NewAtomicLevelAt(zapLevel)
	case "json":
		zapConfig = zap.NewProductionConfig()
		zapConfig.Level = zap.NewAtomicLevelAt(zapLevel)
	default:
		return nil, fmt.Errorf("invalid log format: %s", format)
	}

	// Configure output file if specified
	if loggingConfig.OutputFile != "" {
		// Ensure the directory exists
		if dir := filepath.Dir(loggingConfig.OutputFile); dir != "." {
			if err := os.MkdirAll(dir, 0755); err != nil {
				return nil, fmt.Errorf("failed to create log directory %s: %v", dir, err)
			}
		}

		// Test if we can create/write to the file
		if file, err := os.OpenFile(loggingConfig.OutputFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644); err != nil {
			return nil, fmt.Errorf("failed to open log file %s: %v", loggingConfig.OutputFile, err)
		} else {
			_ = file.Close()
		}

		zapConfig.OutputPaths = []string{loggingConfig.OutputFile}
		zapConfig.ErrorOutputPaths = []string{loggingConfig.OutputFile}
	}

	return zapConfig.Build()
}

func main() {
	// Process command line flags first to get config location
	configLocation := flag.String("config", constants.DefaultConfigFile, "path to configuration file")
	cardFileFlag := flag.String("file", "", "CSV or JSON file containing credit card details")
	budgetFlag := flag.Float64("budget", 0, "monthly budget for credit card payments")
	targetMonthsFlag := flag.Int("target-months", 0, "find the smallest budget that pays off within this many months")
	saveToFile := flag.String("save-to-file", "", "save entered card data to JSON file (e.g., card-balances.json)")
	calendarFlag := flag.Bool("calendar", false, "show calendar view with payment due dates for current month")
	calendarMonth := flag.String("calendar-month", "", "show calendar view for specific month (YYYY-MM format)")
	outputFormatFlag := flag.String("output-format", "", "type of output override: pretty, csv")
	logLevel := flag.String("log-level", "", "log level override (debug, info, warn, error)")
	flag.Parse()

	configProvided := false
	budgetProvided := false
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "config":
			configProvided = true
		case "budget":
			budgetProvided = true
		}
	})

	// Pick up environment overrides from a local .env before viper reads them
	_ = godotenv.Load()

	// Load the config file to get logging configuration. The default config
	// file is optional; an explicitly flagged one is not.
	conf, err := config.LoadConfiguration(*configLocation)
	if err != nil {
		if configProvided {
			fmt.Printf("{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to load configuration at %s\", \"error\": \"%v\"}\n", *configLocation, err)
			os.Exit(1)
		}
		conf = config.Default()
	}

	// Initialize logging based on config and CLI override
	logger, err := initializeLogger(conf.Logging, *logLevel)
	if err != nil {
		fmt.Printf("{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to initialize logger\", \"error\": \"%v\"}\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = logger.Sync()
	}()

	// Determine output format (CLI override takes precedence over config)
	outputFormat := conf.Output.Format
	if *outputFormatFlag != "" {
		outputFormat = *outputFormatFlag
	}
	if outputFormat == "" {
		outputFormat = constants.OutputFormatPretty
	}

	err = validation.ValidateOutputFormat(outputFormat)
	if err != nil {
		logger.Fatal(err.Error(),
			zap.String("op", "main"),
		)
	}

	// Validate configuration and display any warnings
	warnings := conf.ValidateConfiguration()
	for _, warning := range warnings {
		logger.Warn("Configuration warning: "+warning,
			zap.String("op", "main"),
		)
	}

	cardFile := conf.CardFile
	if *cardFileFlag != "" {
		cardFile = *cardFileFlag
	}

	fmt.Println("🏦 Credit Card Debt Paydown Planner")
	fmt.Println(strings.Repeat("=", 40))
	fmt.Println("This tool helps you create a payment plan using the debt snowball method.")
	fmt.Println("(Paying off smallest balances first)")
	if cardFile == "" {
		fmt.Println("💡 You can also use the -file option to load data from CSV or JSON files")
	}
	fmt.Println()

	prompter := prompt.New(os.Stdin, os.Stdout, conf.Defaults)

	// Handle file input or interactive input
	var cards []snowball.Card
	if cardFile != "" {
		fmt.Printf("📁 Reading credit card data from: %s\n", cardFile)
		cards, err = cardfile.Load(logger, cardFile, conf.Defaults)
		if err != nil {
			fmt.Printf("❌ Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("✅ Successfully loaded %d credit cards from file\n", len(cards))
	} else {
		cards, err = prompter.Cards()
		if err != nil {
			logger.Fatal("failed to read card details",
				zap.String("op", "main"),
				zap.Error(err),
			)
		}
	}

	if len(cards) == 0 {
		fmt.Println("No credit cards entered. Exiting.")
		os.Exit(1)
	}

	// Calendar-only mode: render the requested month and exit
	if *calendarFlag || *calendarMonth != "" {
		now := time.Now()
		year, month := now.Year(), now.Month()
		if *calendarMonth != "" {
			year, month, err = datetime.ParseYearMonth(*calendarMonth)
			if err != nil {
				fmt.Printf("❌ Calendar error: %v\n", err)
				os.Exit(1)
			}
		}
		view, err := calendar.NewMonth(year, month, cards)
		if err != nil {
			fmt.Printf("❌ Calendar error: %v\n", err)
			os.Exit(1)
		}
		fmt.Print(calendar.NewRenderer(os.Stdout).Render(view))
		return
	}

	for _, warning := range validation.ValidateCards(cards) {
		logger.Warn("Card warning: "+warning,
			zap.String("op", "main"),
		)
	}

	hasBalance := false
	for _, card := range cards {
		if card.Balance.IsPositive() {
			hasBalance = true
			break
		}
	}
	if !hasBalance {
		fmt.Println("\n🎉 All credit cards have a $0 balance! No payment schedule needed.")
		return
	}

	output.Summary(os.Stdout, cards)

	fmt.Println()
	fmt.Println(strings.Repeat("=", 50))
	fmt.Println("💰 PAYMENT PLANNING")
	fmt.Println(strings.Repeat("=", 50))

	minimumTotal := snowball.MinimumPaymentTotal(cards)

	if budgetProvided && *targetMonthsFlag > 0 {
		fmt.Println("❌ Error: Use either -budget or -target-months, not both")
		os.Exit(1)
	}

	var monthlyBudget decimal.Decimal
	switch {
	case *targetMonthsFlag > 0:
		opt, err := snowball.OptimizeBudget(logger, cards, *targetMonthsFlag)
		if err != nil {
			fmt.Printf("❌ Error: %v\n", err)
			os.Exit(1)
		}
		if !opt.Converged {
			fmt.Printf("❌ Error: No budget pays the debt off within %d months; the fastest possible payoff is %d months\n",
				opt.TargetMonths, opt.Months)
			os.Exit(1)
		}
		monthlyBudget = opt.Budget
		fmt.Printf("🎯 Target: debt-free within %d months\n", opt.TargetMonths)
		fmt.Printf("💵 Required budget: $%s/month (pays off in %d months)\n",
			opt.Budget.StringFixed(2), opt.Months)
	case budgetProvided:
		monthlyBudget = money.FromFloat(*budgetFlag)
		if monthlyBudget.LessThan(minimumTotal) {
			fmt.Printf("❌ Error: Budget ($%s) is less than minimum payments required ($%s)\n",
				monthlyBudget.StringFixed(2), minimumTotal.StringFixed(2))
			os.Exit(1)
		}
		fmt.Printf("💵 Using provided budget: $%s\n", monthlyBudget.StringFixed(2))
	case conf.Budget > 0 && !money.FromFloat(conf.Budget).LessThan(minimumTotal):
		monthlyBudget = money.FromFloat(conf.Budget)
		fmt.Printf("💵 Using configured budget: $%s\n", monthlyBudget.StringFixed(2))
	default:
		if conf.Budget > 0 {
			logger.Warn("configured budget does not cover minimum payments, asking instead",
				zap.String("op", "main"),
				zap.Float64("budget", conf.Budget),
			)
		}
		monthlyBudget, err = prompter.Budget(minimumTotal)
		if err != nil {
			logger.Fatal("failed to read monthly budget",
				zap.String("op", "main"),
				zap.Error(err),
			)
		}
	}

	fmt.Println("\n🔄 Calculating payment schedule...")
	result, err := snowball.CreateSchedule(logger, cards, monthlyBudget)
	if err != nil {
		fmt.Printf("❌ Error: %v\n", err)
		os.Exit(1)
	}

	output.PlanOverview(os.Stdout, result, monthlyBudget)

	// Handle output. CSV is for piping, so it skips the interactive confirm.
	switch outputFormat {
	case constants.OutputFormatCSV:
		output.CsvFormat(os.Stdout, result)
	case constants.OutputFormatPretty:
		showDetail, err := prompter.Confirm("\nShow detailed month-by-month schedule?")
		if err != nil && !errors.Is(err, prompt.ErrInputClosed) {
			logger.Fatal("failed to read confirmation",
				zap.String("op", "main"),
				zap.Error(err),
			)
		}
		if showDetail {
			output.PrettyFormat(os.Stdout, result, cards)
		}
	}

	if result.NonTerminating {
		os.Exit(1)
	}

	fmt.Printf("\n🎉 Congratulations! You'll be debt-free in %d months!\n", result.TotalMonths)
	fmt.Println("💡 Pro tip: Consider putting the money you were paying toward debt into savings once you're done!")

	// Save card data when it was entered by hand, either to the flagged
	// file or after offering.
	if cardFile != "" {
		return
	}
	if *saveToFile != "" {
		saveCards(logger, cards, *saveToFile)
		return
	}
	wantsSave, err := prompter.Confirm("\n💾 Would you like to save this card data to a JSON file for future use?")
	if err != nil || !wantsSave {
		return
	}
	filename, err := prompter.Filename("Enter filename (e.g., card-balances.json)", "card-balances.json")
	if err != nil {
		return
	}
	saveCards(logger, cards, filename)
}

func saveCards(logger *zap.Logger, cards []snowball.Card, filename string) {
	saved, err := cardfile.Save(cards, filename)
	if err != nil {
		fmt.Printf("❌ Error saving file: %v\n", err)
		logger.Error("failed to save card data",
			zap.String("op", "main"),
			zap.String("filename", filename),
			zap.Error(err),
		)
		return
	}
	fmt.Printf("✅ Credit card data saved to: %s\n", saved)
	fmt.Printf("💡 You can use this file with: cc-paydown-planner -file %s\n", saved)
}
