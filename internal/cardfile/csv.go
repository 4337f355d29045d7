package cardfile

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/paydown/cc-paydown-planner/internal/config"
	"github.com/paydown/cc-paydown-planner/pkg/money"
	"github.com/paydown/cc-paydown-planner/pkg/snowball"
)

var leadingRowNumber = regexp.MustCompile(`^\d+\s*`)

var requiredCSVHeaders = []string{
	"Card Name",
	"Current Balance",
	"Credit Limit",
	"Minimum Payment",
	"Payment Due Date",
}

// normalizeHeader strips leading row numbers and surrounding whitespace from
// a CSV header, so exports that number their columns ("1   Current Balance")
// still match.
func normalizeHeader(header string) string {
	return leadingRowNumber.ReplaceAllString(strings.TrimSpace(header), "")
}

// LoadCSV reads cards from a CSV file. Every card takes the configured
// default APR; the format carries no APR column.
func LoadCSV(logger *zap.Logger, path string, defaults config.Defaults) ([]snowball.Card, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("reading CSV headers: %w", err)
	}

	columns := make(map[string]int, len(header))
	for i, h := range header {
		columns[normalizeHeader(h)] = i
	}
	logger.Debug("found CSV headers",
		zap.String("op", "cardfile.LoadCSV"),
		zap.Strings("headers", header),
	)

	var missingHeaders []string
	for _, h := range requiredCSVHeaders {
		if _, ok := columns[h]; !ok {
			missingHeaders = append(missingHeaders, h)
		}
	}
	if len(missingHeaders) > 0 {
		return nil, fmt.Errorf("missing required CSV headers: %s", strings.Join(missingHeaders, ", "))
	}

	var cards []snowball.Card
	for rowNum := 2; ; rowNum++ {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			logger.Warn("skipping CSV row",
				zap.String("op", "cardfile.LoadCSV"),
				zap.Int("row", rowNum),
				zap.Error(err),
			)
			continue
		}

		card, err := csvRowToCard(row, columns, defaults)
		if err != nil {
			logger.Warn("skipping CSV row",
				zap.String("op", "cardfile.LoadCSV"),
				zap.Int("row", rowNum),
				zap.Error(err),
			)
			continue
		}
		cards = append(cards, card)
	}

	if len(cards) == 0 {
		return nil, errors.New("no valid credit card data found in CSV file")
	}
	return cards, nil
}

func csvRowToCard(row []string, columns map[string]int, defaults config.Defaults) (snowball.Card, error) {
	name := strings.TrimSpace(row[columns["Card Name"]])
	if name == "" {
		return snowball.Card{}, errors.New("Card Name cannot be empty")
	}

	balance, err := money.Parse(row[columns["Current Balance"]])
	if err != nil {
		return snowball.Card{}, fmt.Errorf("Current Balance: %w", err)
	}
	if balance.IsNegative() {
		return snowball.Card{}, errors.New("Current Balance must be greater than or equal to 0")
	}

	creditLimit := decimal.Zero
	if raw := strings.TrimSpace(row[columns["Credit Limit"]]); raw != "" {
		creditLimit, err = money.Parse(raw)
		if err != nil {
			return snowball.Card{}, fmt.Errorf("Credit Limit: %w", err)
		}
	}

	minPayment, err := money.Parse(row[columns["Minimum Payment"]])
	if err != nil {
		return snowball.Card{}, fmt.Errorf("Minimum Payment: %w", err)
	}
	if minPayment.IsNegative() {
		return snowball.Card{}, errors.New("Minimum Payment must be greater than or equal to 0")
	}
	if balance.IsPositive() && minPayment.GreaterThan(balance) {
		return snowball.Card{}, errors.New("Minimum Payment cannot be greater than Current Balance")
	}

	dueDate := strings.TrimSpace(row[columns["Payment Due Date"]])
	if dueDate == "" {
		dueDate = defaults.DueDate
	}

	notes := ""
	if idx, ok := columns["Notes"]; ok && idx < len(row) {
		notes = strings.TrimSpace(row[idx])
	}

	return snowball.Card{
		Name:           name,
		Balance:        balance,
		MinimumPayment: minPayment,
		APR:            defaults.APR,
		DueDate:        dueDate,
		CreditLimit:    creditLimit,
		Notes:          notes,
	}, nil
}
