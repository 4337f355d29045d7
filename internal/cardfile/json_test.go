package cardfile

import (
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"

	"github.com/paydown/cc-paydown-planner/internal/config"
	"github.com/paydown/cc-paydown-planner/pkg/money"
)

var testDefaults = config.Defaults{APR: 18.0, DueDate: "15th"}

func TestLoadJSONArrayLayout(t *testing.T) {
	cards, err := LoadJSON(zap.NewNop(), filepath.Join("testdata", "cards.json"), testDefaults)
	if err != nil {
		t.Fatalf("LoadJSON() error = %v", err)
	}

	if len(cards) != 2 {
		t.Fatalf("len(cards) = %d, expected 2", len(cards))
	}

	chase := cards[0]
	if chase.Name != "Chase Freedom" {
		t.Errorf("Name = %q, expected Chase Freedom", chase.Name)
	}
	if !chase.Balance.Equal(money.MustParse("3500.00")) {
		t.Errorf("Balance = %s, expected 3500.00", chase.Balance)
	}
	if !chase.MinimumPayment.Equal(money.MustParse("75.00")) {
		t.Errorf("MinimumPayment = %s, expected 75.00", chase.MinimumPayment)
	}
	if chase.APR != 19.99 {
		t.Errorf("APR = %v, expected 19.99", chase.APR)
	}
	if chase.DueDate != "15th" {
		t.Errorf("DueDate = %q, expected 15th", chase.DueDate)
	}
	if !chase.CreditLimit.Equal(money.MustParse("5000.00")) {
		t.Errorf("CreditLimit = %s, expected 5000.00", chase.CreditLimit)
	}
	if chase.Notes != "Main rewards card" {
		t.Errorf("Notes = %q", chase.Notes)
	}

	// No apr key on the second card, so the configured default applies.
	capital := cards[1]
	if capital.APR != testDefaults.APR {
		t.Errorf("APR = %v, expected default %v", capital.APR, testDefaults.APR)
	}
}

func TestLoadJSONObjectLayoutWithFileAPR(t *testing.T) {
	cards, err := LoadJSON(zap.NewNop(), filepath.Join("testdata", "cards_with_default_apr.json"), testDefaults)
	if err != nil {
		t.Fatalf("LoadJSON() error = %v", err)
	}

	if len(cards) != 2 {
		t.Fatalf("len(cards) = %d, expected 2", len(cards))
	}

	// The file-wide default_apr beats the configured default.
	if cards[0].APR != 21.5 {
		t.Errorf("Discover APR = %v, expected file default 21.5", cards[0].APR)
	}
	// A per-card apr beats them both.
	if cards[1].APR != 26.99 {
		t.Errorf("Apple Card APR = %v, expected 26.99", cards[1].APR)
	}
	// Missing due date falls back to the configured default.
	if cards[1].DueDate != "15th" {
		t.Errorf("Apple Card DueDate = %q, expected 15th", cards[1].DueDate)
	}
	if !cards[1].CreditLimit.IsZero() {
		t.Errorf("Apple Card CreditLimit = %s, expected 0", cards[1].CreditLimit)
	}
}

func TestLoadJSONSkipsInvalidCards(t *testing.T) {
	cards, err := LoadJSON(zap.NewNop(), filepath.Join("testdata", "cards_mixed_validity.json"), testDefaults)
	if err != nil {
		t.Fatalf("LoadJSON() error = %v", err)
	}

	if len(cards) != 1 {
		t.Fatalf("len(cards) = %d, expected only the valid card", len(cards))
	}
	if cards[0].Name != "Good Card" {
		t.Errorf("Name = %q, expected Good Card", cards[0].Name)
	}
}

// A negative file-wide default_apr disqualifies the cards that inherit it,
// record by record; cards carrying their own valid rate still load.
func TestLoadJSONRejectsNegativeDefaultAPR(t *testing.T) {
	cards, err := LoadJSON(zap.NewNop(), filepath.Join("testdata", "cards_negative_default_apr.json"), testDefaults)
	if err != nil {
		t.Fatalf("LoadJSON() error = %v", err)
	}

	if len(cards) != 1 {
		t.Fatalf("len(cards) = %d, expected 1", len(cards))
	}
	if cards[0].Name != "Own Rate" {
		t.Errorf("Name = %q, expected Own Rate", cards[0].Name)
	}
	if cards[0].APR != 19.99 {
		t.Errorf("APR = %v, expected 19.99", cards[0].APR)
	}
}

func TestLoadJSONErrors(t *testing.T) {
	tests := []struct {
		name     string
		file     string
		fragment string
	}{
		{
			name:     "missing file",
			file:     "does_not_exist.json",
			fragment: "reading",
		},
		{
			name:     "invalid JSON",
			file:     "not_json.json",
			fragment: "invalid JSON format",
		},
		{
			name:     "object without cards",
			file:     "object_without_cards.json",
			fragment: "'cards' array",
		},
		{
			name:     "empty array",
			file:     "cards_empty_array.json",
			fragment: "no credit card data",
		},
		{
			name:     "all cards invalid",
			file:     "cards_all_invalid.json",
			fragment: "no valid credit card data",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadJSON(zap.NewNop(), filepath.Join("testdata", tt.file), testDefaults)
			if err == nil {
				t.Fatal("LoadJSON() expected error")
			}
			if !strings.Contains(err.Error(), tt.fragment) {
				t.Errorf("error = %q, expected to contain %q", err, tt.fragment)
			}
		})
	}
}

func TestSaveRoundTrip(t *testing.T) {
	original, err := LoadJSON(zap.NewNop(), filepath.Join("testdata", "cards.json"), testDefaults)
	if err != nil {
		t.Fatalf("LoadJSON() error = %v", err)
	}

	// No extension on the requested name; Save should add one.
	target := filepath.Join(t.TempDir(), "saved-cards")
	written, err := Save(original, target)
	if err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if !strings.HasSuffix(written, ".json") {
		t.Errorf("Save() wrote %q, expected a .json name", written)
	}

	reloaded, err := LoadJSON(zap.NewNop(), written, testDefaults)
	if err != nil {
		t.Fatalf("LoadJSON() after Save error = %v", err)
	}
	if len(reloaded) != len(original) {
		t.Fatalf("reloaded %d cards, expected %d", len(reloaded), len(original))
	}
	for i := range original {
		if reloaded[i].Name != original[i].Name {
			t.Errorf("card %d Name = %q, expected %q", i, reloaded[i].Name, original[i].Name)
		}
		if !reloaded[i].Balance.Equal(original[i].Balance) {
			t.Errorf("card %d Balance = %s, expected %s", i, reloaded[i].Balance, original[i].Balance)
		}
		if !reloaded[i].MinimumPayment.Equal(original[i].MinimumPayment) {
			t.Errorf("card %d MinimumPayment = %s, expected %s", i, reloaded[i].MinimumPayment, original[i].MinimumPayment)
		}
		if reloaded[i].APR != original[i].APR {
			t.Errorf("card %d APR = %v, expected %v", i, reloaded[i].APR, original[i].APR)
		}
		if reloaded[i].DueDate != original[i].DueDate {
			t.Errorf("card %d DueDate = %q, expected %q", i, reloaded[i].DueDate, original[i].DueDate)
		}
	}
}

func TestSaveKeepsExistingExtension(t *testing.T) {
	cards, err := LoadJSON(zap.NewNop(), filepath.Join("testdata", "cards.json"), testDefaults)
	if err != nil {
		t.Fatalf("LoadJSON() error = %v", err)
	}

	target := filepath.Join(t.TempDir(), "cards.JSON")
	written, err := Save(cards, target)
	if err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if written != target {
		t.Errorf("Save() wrote %q, expected %q unchanged", written, target)
	}
}
