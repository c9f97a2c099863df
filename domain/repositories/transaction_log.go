package repositories

import (
	"github.com/ghostbank/ghostbank-go/domain/models"
)

// TransactionLog is the append-only, session-durable transaction history.
// Records are never deleted or rewritten once appended. Implementations
// must hand out copies; callers cannot mutate logged records.
type TransactionLog interface {
	// Append inserts a transaction at the head of the visible sequence.
	// Appending an id that is already present fails with
	// models.ErrDuplicateTransactionID and leaves the log untouched.
	Append(tx *models.Transaction) error

	// ByID looks a transaction up by id, models.ErrTransactionNotFound
	// when absent.
	ByID(id string) (*models.Transaction, error)

	// All returns a most-recent-first snapshot for display.
	All() []*models.Transaction

	// InOrder returns the true submission-order sequence for audit.
	InOrder() []*models.Transaction

	// Len reports the number of logged transactions.
	Len() int
}
