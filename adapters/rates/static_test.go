package rates

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/ghostbank/ghostbank-go/domain/models"
)

func TestNew(t *testing.T) {
	t.Run("Parses Entries", func(t *testing.T) {
		source, err := New(map[string]string{
			"BRL-USD": "0.1824",
			"usd-brl": "5.4820", // case-insensitive keys
		})
		if err != nil {
			t.Fatalf("New() unexpected error: %v", err)
		}

		rates := source.Rates()
		brlUsd := rates[models.CurrencyPair{From: models.CurrencyBRL, To: models.CurrencyUSD}]
		if !brlUsd.Equal(decimal.RequireFromString("0.1824")) {
			t.Errorf("Expected BRL-USD 0.1824, got %s", brlUsd)
		}
		usdBrl := rates[models.CurrencyPair{From: models.CurrencyUSD, To: models.CurrencyBRL}]
		if !usdBrl.Equal(decimal.RequireFromString("5.4820")) {
			t.Errorf("Expected USD-BRL 5.4820, got %s", usdBrl)
		}
	})

	tests := []struct {
		name    string
		entries map[string]string
	}{
		{"Malformed Key", map[string]string{"BRLUSD": "0.18"}},
		{"Unknown Currency", map[string]string{"EUR-USD": "1.1"}},
		{"Unparseable Rate", map[string]string{"BRL-USD": "cheap"}},
		{"Zero Rate", map[string]string{"BRL-USD": "0"}},
		{"Negative Rate", map[string]string{"BRL-USD": "-0.18"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := New(tt.entries); err == nil {
				t.Errorf("New(%v) expected error, got nil", tt.entries)
			}
		})
	}
}

func TestStatic_RatesReturnsCopy(t *testing.T) {
	source, err := New(map[string]string{"BRL-USD": "0.1824"})
	if err != nil {
		t.Fatal(err)
	}

	pair := models.CurrencyPair{From: models.CurrencyBRL, To: models.CurrencyUSD}
	rates := source.Rates()
	rates[pair] = decimal.Zero

	if !source.Rates()[pair].Equal(decimal.RequireFromString("0.1824")) {
		t.Error("Mutating the returned map changed the source")
	}
}
