// Package ledger holds the authoritative per-currency balances for a
// wallet session. All mutation goes through Apply and ApplyConversion;
// a failed call never leaves a partial mutation behind.
package ledger

import (
	"sync"

	"github.com/shopspring/decimal"

	"github.com/ghostbank/ghostbank-go/domain/models"
)

// Ledger is the single source of truth for balances. It is safe for
// concurrent use; readers see either the state before or after a
// mutation, never an intermediate state.
type Ledger struct {
	mu       sync.RWMutex
	balances map[models.CurrencyCode]decimal.Decimal
}

// New creates a ledger seeded from the initial snapshot. Every supported
// currency gets exactly one entry; currencies missing from the snapshot
// start at zero. Unknown codes and negative amounts are rejected.
func New(initial map[models.CurrencyCode]decimal.Decimal) (*Ledger, error) {
	balances := make(map[models.CurrencyCode]decimal.Decimal, len(models.Currencies()))
	for _, code := range models.Currencies() {
		balances[code] = decimal.Zero
	}

	for code, amount := range initial {
		if !code.IsValid() {
			return nil, models.ErrInvalidCurrency
		}
		if amount.IsNegative() {
			return nil, models.ErrInvalidAmount
		}
		balances[code] = amount
	}

	return &Ledger{balances: balances}, nil
}

// Balance returns the current balance for a currency. Pure read.
func (l *Ledger) Balance(code models.CurrencyCode) (decimal.Decimal, error) {
	if !code.IsValid() {
		return decimal.Zero, models.ErrInvalidCurrency
	}

	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.balances[code], nil
}

// Apply adds the signed delta to the stored balance. If the result would
// go negative the call fails with ErrInsufficientBalance and the balance
// is left unchanged.
func (l *Ledger) Apply(code models.CurrencyCode, delta decimal.Decimal) error {
	if !code.IsValid() {
		return models.ErrInvalidCurrency
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	next := l.balances[code].Add(delta)
	if next.IsNegative() {
		return models.ErrInsufficientBalance
	}
	l.balances[code] = next
	return nil
}

// ApplyConversion moves value between two currencies as one atomic
// operation. If either resulting balance would go negative, neither
// balance changes. A reader can never observe one leg without the other.
func (l *Ledger) ApplyConversion(from, to models.CurrencyCode, fromDelta, toDelta decimal.Decimal) error {
	if !from.IsValid() || !to.IsValid() {
		return models.ErrInvalidCurrency
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if from == to {
		next := l.balances[from].Add(fromDelta).Add(toDelta)
		if next.IsNegative() {
			return models.ErrInsufficientBalance
		}
		l.balances[from] = next
		return nil
	}

	nextFrom := l.balances[from].Add(fromDelta)
	nextTo := l.balances[to].Add(toDelta)
	if nextFrom.IsNegative() || nextTo.IsNegative() {
		return models.ErrInsufficientBalance
	}

	l.balances[from] = nextFrom
	l.balances[to] = nextTo
	return nil
}

// Snapshot returns a read-only copy of all balances
func (l *Ledger) Snapshot() map[models.CurrencyCode]decimal.Decimal {
	l.mu.RLock()
	defer l.mu.RUnlock()

	out := make(map[models.CurrencyCode]decimal.Decimal, len(l.balances))
	for code, amount := range l.balances {
		out[code] = amount
	}
	return out
}
