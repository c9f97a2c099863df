package usecases

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/shopspring/decimal"

	"github.com/ghostbank/ghostbank-go/domain/models"
	"github.com/ghostbank/ghostbank-go/domain/repositories"
	"github.com/ghostbank/ghostbank-go/internal"
	"github.com/ghostbank/ghostbank-go/ledger"
)

// Session ties one ledger, one transaction log and one processor
// together as the unit of ownership for a wallet session. The
// presentation layer reads balances and history from here and submits
// intents through the processor; nothing else writes wallet state.
type Session struct {
	Ledger    *ledger.Ledger
	Log       repositories.TransactionLog
	Processor *Processor

	logger *internal.Logger
}

// NewSession wraps already-wired components
func NewSession(led *ledger.Ledger, log repositories.TransactionLog, proc *Processor, logger *internal.Logger) *Session {
	return &Session{
		Ledger:    led,
		Log:       log,
		Processor: proc,
		logger:    logger,
	}
}

// State is the serialized form of a session: the balance snapshot plus
// the transaction history in submission order. Transaction records
// follow the persisted-state contract exactly.
type State struct {
	Balances     map[models.CurrencyCode]decimal.Decimal `json:"balances"`
	Transactions []*models.Transaction                   `json:"transactions"`
}

// Export writes the session state as JSON. Pending transactions are not
// part of persisted state; they have not affected any balance yet.
func (s *Session) Export(w io.Writer) error {
	state := State{
		Balances:     s.Ledger.Snapshot(),
		Transactions: s.Log.InOrder(),
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(state); err != nil {
		return fmt.Errorf("export session: %w", err)
	}

	s.logger.Info(internal.ComponentSession, "exported %d transactions", len(state.Transactions))
	return nil
}

// DecodeState parses and validates exported session state. Unknown
// currencies, non-positive amounts, contract-foreign statuses and
// duplicate ids are rejected.
func DecodeState(r io.Reader) (*State, error) {
	var state State
	dec := json.NewDecoder(r)
	if err := dec.Decode(&state); err != nil {
		return nil, fmt.Errorf("decode session state: %w", err)
	}

	for code, amount := range state.Balances {
		if !code.IsValid() {
			return nil, fmt.Errorf("balance %s: %w", code, models.ErrInvalidCurrency)
		}
		if amount.IsNegative() {
			return nil, fmt.Errorf("balance %s: %w", code, models.ErrInvalidAmount)
		}
	}

	seen := make(map[string]struct{}, len(state.Transactions))
	for _, tx := range state.Transactions {
		if err := tx.Validate(); err != nil {
			return nil, fmt.Errorf("transaction %s: %w", tx.ID, err)
		}
		if tx.Status == models.TransactionStatusFailed {
			return nil, fmt.Errorf("transaction %s: %w", tx.ID, models.ErrInvalidTransition)
		}
		if _, dup := seen[tx.ID]; dup {
			return nil, fmt.Errorf("transaction %s: %w", tx.ID, models.ErrDuplicateTransactionID)
		}
		seen[tx.ID] = struct{}{}
	}

	return &state, nil
}
