package cardfile

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/paydown/cc-paydown-planner/internal/config"
	"github.com/paydown/cc-paydown-planner/pkg/snowball"
)

// jsonCard mirrors one card object on disk. Required fields are pointers so
// a missing key can be told apart from a zero value.
type jsonCard struct {
	CardName       *string          `json:"card_name"`
	CurrentBalance *decimal.Decimal `json:"current_balance"`
	MinimumPayment *decimal.Decimal `json:"minimum_payment"`
	PaymentDueDate string           `json:"payment_due_date"`
	APR            *float64         `json:"apr"`
	CreditLimit    decimal.Decimal  `json:"credit_limit"`
	Notes          string           `json:"notes"`
}

// jsonFile is the object layout: a cards array plus an optional file-wide
// default APR.
type jsonFile struct {
	DefaultAPR *float64   `json:"default_apr"`
	Cards      []jsonCard `json:"cards"`
}

// LoadJSON reads cards from a JSON file. Two layouts are accepted: a bare
// array of card objects, or an object with a "cards" array and an optional
// "default_apr" that overrides the configured default.
func LoadJSON(logger *zap.Logger, path string, defaults config.Defaults) ([]snowball.Card, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	fileAPR := defaults.APR
	var cardsData []jsonCard

	var arr []jsonCard
	if err := json.Unmarshal(data, &arr); err == nil {
		cardsData = arr
	} else {
		var file jsonFile
		if err := json.Unmarshal(data, &file); err != nil {
			return nil, fmt.Errorf("invalid JSON format: %w", err)
		}
		if file.Cards == nil {
			return nil, errors.New("JSON must be either an array of cards or an object with a 'cards' array")
		}
		cardsData = file.Cards
		if file.DefaultAPR != nil {
			fileAPR = *file.DefaultAPR
			logger.Info("using default APR from file",
				zap.String("op", "cardfile.LoadJSON"),
				zap.Float64("apr", fileAPR),
			)
		}
	}

	if len(cardsData) == 0 {
		return nil, errors.New("no credit card data found in JSON file")
	}

	logger.Debug("found cards in JSON file",
		zap.String("op", "cardfile.LoadJSON"),
		zap.Int("cards", len(cardsData)),
	)

	var cards []snowball.Card
	for i, raw := range cardsData {
		card, err := raw.toCard(fileAPR, defaults.DueDate)
		if err != nil {
			name := "Unknown"
			if raw.CardName != nil {
				name = *raw.CardName
			}
			logger.Warn("skipping card",
				zap.String("op", "cardfile.LoadJSON"),
				zap.Int("cardNumber", i+1),
				zap.String("cardName", name),
				zap.Error(err),
			)
			continue
		}
		cards = append(cards, card)
	}

	if len(cards) == 0 {
		return nil, errors.New("no valid credit card data found in JSON file")
	}
	return cards, nil
}

func (j jsonCard) toCard(defaultAPR float64, defaultDueDate string) (snowball.Card, error) {
	var missing []string
	if j.CardName == nil {
		missing = append(missing, "card_name")
	}
	if j.CurrentBalance == nil {
		missing = append(missing, "current_balance")
	}
	if j.MinimumPayment == nil {
		missing = append(missing, "minimum_payment")
	}
	if len(missing) > 0 {
		return snowball.Card{}, fmt.Errorf("missing required fields: %s", strings.Join(missing, ", "))
	}

	name := strings.TrimSpace(*j.CardName)
	if name == "" {
		return snowball.Card{}, errors.New("card_name cannot be empty")
	}

	balance := j.CurrentBalance.Round(2)
	if balance.IsNegative() {
		return snowball.Card{}, errors.New("current_balance must be greater than or equal to 0")
	}

	minPayment := j.MinimumPayment.Round(2)
	if minPayment.IsNegative() {
		return snowball.Card{}, errors.New("minimum_payment must be greater than or equal to 0")
	}
	if balance.IsPositive() && minPayment.GreaterThan(balance) {
		return snowball.Card{}, errors.New("minimum_payment cannot be greater than current_balance")
	}

	dueDate := strings.TrimSpace(j.PaymentDueDate)
	if dueDate == "" {
		dueDate = defaultDueDate
	}

	apr := defaultAPR
	if j.APR != nil {
		apr = *j.APR
	}
	if apr < 0 {
		return snowball.Card{}, errors.New("apr must be greater than or equal to 0")
	}

	return snowball.Card{
		Name:           name,
		Balance:        balance,
		MinimumPayment: minPayment,
		APR:            apr,
		DueDate:        dueDate,
		CreditLimit:    j.CreditLimit.Round(2),
		Notes:          strings.TrimSpace(j.Notes),
	}, nil
}

// savedCard is the on-disk shape Save writes: the bare-array layout with
// every field present.
type savedCard struct {
	CardName       string  `json:"card_name"`
	CurrentBalance float64 `json:"current_balance"`
	MinimumPayment float64 `json:"minimum_payment"`
	PaymentDueDate string  `json:"payment_due_date"`
	APR            float64 `json:"apr"`
	CreditLimit    float64 `json:"credit_limit"`
	Notes          string  `json:"notes"`
}

// Save writes cards to filename as a JSON array, appending a .json extension
// when one is missing. It returns the filename actually written.
func Save(cards []snowball.Card, filename string) (string, error) {
	saved := make([]savedCard, 0, len(cards))
	for _, card := range cards {
		saved = append(saved, savedCard{
			CardName:       card.Name,
			CurrentBalance: card.Balance.InexactFloat64(),
			MinimumPayment: card.MinimumPayment.InexactFloat64(),
			PaymentDueDate: card.DueDate,
			APR:            card.APR,
			CreditLimit:    card.CreditLimit.InexactFloat64(),
			Notes:          card.Notes,
		})
	}

	if !strings.HasSuffix(strings.ToLower(filename), ".json") {
		filename += ".json"
	}

	data, err := json.MarshalIndent(saved, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encoding cards: %w", err)
	}
	if err := os.WriteFile(filename, data, 0o644); err != nil {
		return "", fmt.Errorf("writing %s: %w", filename, err)
	}
	return filename, nil
}
