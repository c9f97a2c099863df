// Package memory provides the in-memory adapters backing a single
// wallet session. State lives for the process lifetime only.
package memory

import (
	"sync"

	"github.com/ghostbank/ghostbank-go/domain/models"
	"github.com/ghostbank/ghostbank-go/domain/repositories"
)

// TransactionLog is an append-only in-memory transaction history.
// Internally records are kept in submission order; All reverses that
// for the most-recent-first display convention.
type TransactionLog struct {
	mu      sync.RWMutex
	entries []*models.Transaction
	byID    map[string]*models.Transaction
}

var _ repositories.TransactionLog = (*TransactionLog)(nil)

// NewTransactionLog creates an empty log
func NewTransactionLog() *TransactionLog {
	return &TransactionLog{
		byID: make(map[string]*models.Transaction),
	}
}

// Append stores a copy of the transaction. Duplicate ids are rejected
// without touching existing history.
func (l *TransactionLog) Append(tx *models.Transaction) error {
	if err := tx.Validate(); err != nil {
		return err
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if _, exists := l.byID[tx.ID]; exists {
		return models.ErrDuplicateTransactionID
	}

	record := tx.Clone()
	l.entries = append(l.entries, record)
	l.byID[record.ID] = record
	return nil
}

// ByID returns a copy of the transaction with the given id
func (l *TransactionLog) ByID(id string) (*models.Transaction, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	record, ok := l.byID[id]
	if !ok {
		return nil, models.ErrTransactionNotFound
	}
	return record.Clone(), nil
}

// All returns a most-recent-first snapshot of the history
func (l *TransactionLog) All() []*models.Transaction {
	l.mu.RLock()
	defer l.mu.RUnlock()

	out := make([]*models.Transaction, 0, len(l.entries))
	for i := len(l.entries) - 1; i >= 0; i-- {
		out = append(out, l.entries[i].Clone())
	}
	return out
}

// InOrder returns the history in true submission order
func (l *TransactionLog) InOrder() []*models.Transaction {
	l.mu.RLock()
	defer l.mu.RUnlock()

	out := make([]*models.Transaction, 0, len(l.entries))
	for _, record := range l.entries {
		out = append(out, record.Clone())
	}
	return out
}

// Len reports the number of logged transactions
func (l *TransactionLog) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.entries)
}
