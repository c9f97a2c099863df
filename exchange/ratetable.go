// Package exchange provides exchange-rate lookup for ordered currency
// pairs. Rates are static configuration supplied by an injected source;
// refreshing them from a live feed is the source's concern, not ours.
package exchange

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/ghostbank/ghostbank-go/domain/models"
)

// RateSource supplies the configured pair -> rate entries.
// Implementations must be safe for concurrent reads.
type RateSource interface {
	Rates() map[models.CurrencyPair]decimal.Decimal
}

// RateTable answers rate lookups over a RateSource. A lookup never
// returns a non-positive rate: a pair with no usable rate fails with
// ErrUnknownCurrencyPair so callers can reject the conversion instead
// of silently mispricing it.
type RateTable struct {
	source RateSource
}

// NewRateTable constructs a RateTable over the given source
func NewRateTable(source RateSource) *RateTable {
	return &RateTable{source: source}
}

// Lookup returns the rate for the ordered (from, to) pair such that
// amountTo = amountFrom * rate. Identity pairs always rate 1.
func (t *RateTable) Lookup(from, to models.CurrencyCode) (decimal.Decimal, error) {
	pair := models.CurrencyPair{From: from, To: to}
	if err := pair.Validate(); err != nil {
		return decimal.Zero, err
	}

	if from == to {
		return decimal.NewFromInt(1), nil
	}

	rate, ok := t.source.Rates()[pair]
	if !ok || !rate.IsPositive() {
		return decimal.Zero, fmt.Errorf("%s->%s: %w", from, to, models.ErrUnknownCurrencyPair)
	}

	return rate, nil
}
