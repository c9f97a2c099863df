package models

import (
	"time"

	"github.com/shopspring/decimal"
)

func init() {
	// The persisted-state contract serializes amounts as plain JSON numbers
	decimal.MarshalJSONWithoutQuotes = true
}

// TransactionType defines the type of transaction
type TransactionType string

const (
	// TransactionTypeSend represents an outbound payment
	TransactionTypeSend TransactionType = "send"

	// TransactionTypeReceive represents an inbound credit
	TransactionTypeReceive TransactionType = "receive"

	// TransactionTypeConvert represents an exchange between two currencies
	TransactionTypeConvert TransactionType = "convert"
)

// TransactionStatus defines the lifecycle status of a transaction.
// The lifecycle is forward-only: obfuscated -> mixing -> confirmed.
// A transaction that is cancelled or whose lifecycle fails before
// confirmation ends in the terminal failed status instead.
type TransactionStatus string

const (
	// TransactionStatusObfuscated is the entry status, set at creation
	TransactionStatusObfuscated TransactionStatus = "obfuscated"

	// TransactionStatusMixing is the intermediate routing status
	TransactionStatusMixing TransactionStatus = "mixing"

	// TransactionStatusConfirmed is the terminal success status. The ledger
	// mutation has been applied exactly once by the time this is observable.
	TransactionStatusConfirmed TransactionStatus = "confirmed"

	// TransactionStatusFailed is the terminal failure status. No ledger
	// mutation has occurred for a failed transaction.
	TransactionStatusFailed TransactionStatus = "failed"
)

// statusRank orders the forward-only lifecycle. Terminal statuses have no successor.
var statusRank = map[TransactionStatus]int{
	TransactionStatusObfuscated: 0,
	TransactionStatusMixing:     1,
	TransactionStatusConfirmed:  2,
}

// Terminal reports whether the status admits no further transitions
func (s TransactionStatus) Terminal() bool {
	return s == TransactionStatusConfirmed || s == TransactionStatusFailed
}

// Transaction represents a single wallet operation and its audit record
type Transaction struct {
	ID        string            `json:"id"`
	Type      TransactionType   `json:"type"`
	Amount    decimal.Decimal   `json:"amount"`
	Currency  CurrencyCode      `json:"currency"`
	Timestamp int64             `json:"timestamp"`
	Status    TransactionStatus `json:"status"`
	To        string            `json:"to,omitempty"`
	Signature string            `json:"signature,omitempty"`
}

// NewTransaction creates a transaction in the obfuscated entry status,
// stamped with the current instant in epoch milliseconds.
func NewTransaction(id string, txType TransactionType, amount decimal.Decimal, currency CurrencyCode) *Transaction {
	return &Transaction{
		ID:        id,
		Type:      txType,
		Amount:    amount,
		Currency:  currency,
		Timestamp: time.Now().UnixMilli(),
		Status:    TransactionStatusObfuscated,
	}
}

// Validate checks the transaction invariants
func (t *Transaction) Validate() error {
	if t.ID == "" {
		return ErrTransactionNotFound
	}
	if !t.Amount.IsPositive() {
		return ErrInvalidAmount
	}
	if !t.Currency.IsValid() {
		return ErrInvalidCurrency
	}
	switch t.Type {
	case TransactionTypeSend, TransactionTypeReceive, TransactionTypeConvert:
	default:
		return ErrInvalidTransition
	}
	switch t.Status {
	case TransactionStatusObfuscated, TransactionStatusMixing, TransactionStatusConfirmed, TransactionStatusFailed:
	default:
		return ErrInvalidTransition
	}
	return nil
}

// Advance moves the transaction one or more steps forward in its lifecycle.
// Backward moves and moves out of a terminal status are rejected.
func (t *Transaction) Advance(next TransactionStatus) error {
	if t.Status.Terminal() {
		return ErrInvalidTransition
	}
	nextRank, ok := statusRank[next]
	if !ok {
		return ErrInvalidTransition
	}
	if nextRank <= statusRank[t.Status] {
		return ErrInvalidTransition
	}
	t.Status = next
	return nil
}

// MarkFailed moves a pending transaction to the terminal failed status
func (t *Transaction) MarkFailed() error {
	if t.Status.Terminal() {
		return ErrInvalidTransition
	}
	t.Status = TransactionStatusFailed
	return nil
}

// Clone returns an independent copy for handing out in snapshots
func (t *Transaction) Clone() *Transaction {
	cp := *t
	return &cp
}
