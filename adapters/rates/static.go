// Package rates provides the static rate source used by the demo
// wallet. Entries come from configuration; a live feed would be a
// different RateSource implementation behind the same interface.
package rates

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/ghostbank/ghostbank-go/domain/models"
	"github.com/ghostbank/ghostbank-go/exchange"
)

// Static is an immutable RateSource built from "FROM-TO" -> rate
// configuration entries.
type Static struct {
	rates map[models.CurrencyPair]decimal.Decimal
}

var _ exchange.RateSource = (*Static)(nil)

// New parses configuration entries like "BRL-USD": "0.1824" into a
// static source. Malformed pairs, unknown currencies and non-positive
// rates are rejected.
func New(entries map[string]string) (*Static, error) {
	parsed := make(map[models.CurrencyPair]decimal.Decimal, len(entries))

	for key, value := range entries {
		pair, err := parsePair(key)
		if err != nil {
			return nil, err
		}

		rate, err := decimal.NewFromString(value)
		if err != nil {
			return nil, fmt.Errorf("rate %s: %w", key, err)
		}
		if !rate.IsPositive() {
			return nil, fmt.Errorf("rate %s must be positive, got %s", key, rate)
		}

		parsed[pair] = rate
	}

	return &Static{rates: parsed}, nil
}

// Rates returns a copy of the configured entries
func (s *Static) Rates() map[models.CurrencyPair]decimal.Decimal {
	out := make(map[models.CurrencyPair]decimal.Decimal, len(s.rates))
	for pair, rate := range s.rates {
		out[pair] = rate
	}
	return out
}

func parsePair(key string) (models.CurrencyPair, error) {
	parts := strings.Split(strings.ToUpper(strings.TrimSpace(key)), "-")
	if len(parts) != 2 {
		return models.CurrencyPair{}, fmt.Errorf("rate key %q: want FROM-TO", key)
	}

	pair := models.CurrencyPair{
		From: models.CurrencyCode(parts[0]),
		To:   models.CurrencyCode(parts[1]),
	}
	if err := pair.Validate(); err != nil {
		return models.CurrencyPair{}, fmt.Errorf("rate key %q: %w", key, err)
	}

	return pair, nil
}
