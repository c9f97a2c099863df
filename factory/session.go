// Package factory wires wallet sessions from configuration and from
// exported session state.
package factory

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/ghostbank/ghostbank-go/adapters/memory"
	"github.com/ghostbank/ghostbank-go/adapters/rates"
	"github.com/ghostbank/ghostbank-go/adapters/signing"
	"github.com/ghostbank/ghostbank-go/domain/models"
	"github.com/ghostbank/ghostbank-go/domain/usecases"
	"github.com/ghostbank/ghostbank-go/exchange"
	"github.com/ghostbank/ghostbank-go/internal"
	"github.com/ghostbank/ghostbank-go/ledger"
)

// NewSession builds a fresh wallet session from configuration: seeded
// ledger, empty log, static rate table and the demo signer.
func NewSession(cfg *internal.Config, logger *internal.Logger, opts ...usecases.Option) (*usecases.Session, error) {
	initial, err := parseBalances(cfg.InitialBalances)
	if err != nil {
		return nil, err
	}

	led, err := ledger.New(initial)
	if err != nil {
		return nil, fmt.Errorf("seed ledger: %w", err)
	}

	source, err := rates.New(cfg.Rates)
	if err != nil {
		return nil, fmt.Errorf("rate table: %w", err)
	}

	log := memory.NewTransactionLog()
	proc := newProcessor(cfg, led, log, source, logger, opts)

	logger.Info(internal.ComponentSession, "session ready, %d currencies seeded", len(initial))
	return usecases.NewSession(led, log, proc, logger), nil
}

// RestoreSession rebuilds a session from previously exported state.
// History is replayed into a fresh log in submission order.
func RestoreSession(state *usecases.State, cfg *internal.Config, logger *internal.Logger, opts ...usecases.Option) (*usecases.Session, error) {
	led, err := ledger.New(state.Balances)
	if err != nil {
		return nil, fmt.Errorf("restore ledger: %w", err)
	}

	log := memory.NewTransactionLog()
	for _, tx := range state.Transactions {
		if err := log.Append(tx); err != nil {
			return nil, fmt.Errorf("restore transaction %s: %w", tx.ID, err)
		}
	}

	source, err := rates.New(cfg.Rates)
	if err != nil {
		return nil, fmt.Errorf("rate table: %w", err)
	}

	proc := newProcessor(cfg, led, log, source, logger, opts)

	logger.Info(internal.ComponentSession, "session restored with %d transactions", log.Len())
	return usecases.NewSession(led, log, proc, logger), nil
}

func newProcessor(cfg *internal.Config, led *ledger.Ledger, log *memory.TransactionLog, source exchange.RateSource, logger *internal.Logger, extra []usecases.Option) *usecases.Processor {
	delay := cfg.StageDelayDuration()
	opts := append([]usecases.Option{
		usecases.WithStages(usecases.SendStages(delay), usecases.ConvertStages(delay)),
	}, extra...)

	return usecases.NewProcessor(led, log, exchange.NewRateTable(source), signing.NewGhostSigner(), logger, opts...)
}

func parseBalances(entries map[string]string) (map[models.CurrencyCode]decimal.Decimal, error) {
	out := make(map[models.CurrencyCode]decimal.Decimal, len(entries))
	for key, value := range entries {
		code := models.CurrencyCode(key)
		if !code.IsValid() {
			return nil, fmt.Errorf("initial balance %q: %w", key, models.ErrInvalidCurrency)
		}
		amount, err := decimal.NewFromString(value)
		if err != nil {
			return nil, fmt.Errorf("initial balance %s: %w", key, err)
		}
		out[code] = amount
	}
	return out, nil
}
