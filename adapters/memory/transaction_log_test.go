package memory

import (
	"errors"
	"fmt"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/ghostbank/ghostbank-go/domain/models"
)

func confirmedTx(t *testing.T, id string) *models.Transaction {
	t.Helper()

	tx := models.NewTransaction(id, models.TransactionTypeSend, decimal.NewFromInt(10), models.CurrencyBRL)
	if err := tx.Advance(models.TransactionStatusConfirmed); err != nil {
		t.Fatal(err)
	}
	return tx
}

func TestTransactionLog_Append(t *testing.T) {
	t.Run("Stores Copy", func(t *testing.T) {
		log := NewTransactionLog()
		tx := confirmedTx(t, "GHOST-TX-1")

		if err := log.Append(tx); err != nil {
			t.Fatalf("Append() unexpected error: %v", err)
		}

		tx.To = "mutated after append"
		stored, err := log.ByID("GHOST-TX-1")
		if err != nil {
			t.Fatal(err)
		}
		if stored.To != "" {
			t.Errorf("Caller mutation leaked into the log: %q", stored.To)
		}
	})

	t.Run("Duplicate Id Rejected", func(t *testing.T) {
		log := NewTransactionLog()
		if err := log.Append(confirmedTx(t, "GHOST-TX-DUP")); err != nil {
			t.Fatal(err)
		}

		err := log.Append(confirmedTx(t, "GHOST-TX-DUP"))
		if !errors.Is(err, models.ErrDuplicateTransactionID) {
			t.Fatalf("Expected ErrDuplicateTransactionID, got %v", err)
		}
		if log.Len() != 1 {
			t.Errorf("Expected log untouched at 1 entry, got %d", log.Len())
		}
	})

	t.Run("Invalid Record Rejected", func(t *testing.T) {
		log := NewTransactionLog()
		tx := confirmedTx(t, "GHOST-TX-BAD")
		tx.Amount = decimal.Zero

		if err := log.Append(tx); !errors.Is(err, models.ErrInvalidAmount) {
			t.Errorf("Expected ErrInvalidAmount, got %v", err)
		}
	})
}

func TestTransactionLog_ByID(t *testing.T) {
	log := NewTransactionLog()
	if _, err := log.ByID("missing"); !errors.Is(err, models.ErrTransactionNotFound) {
		t.Errorf("Expected ErrTransactionNotFound, got %v", err)
	}
}

func TestTransactionLog_Ordering(t *testing.T) {
	log := NewTransactionLog()

	ids := []string{"GHOST-TX-A", "GHOST-TX-B", "GHOST-TX-C"}
	for _, id := range ids {
		if err := log.Append(confirmedTx(t, id)); err != nil {
			t.Fatal(err)
		}
	}

	all := log.All()
	if len(all) != 3 {
		t.Fatalf("Expected 3 entries, got %d", len(all))
	}
	for i, want := range []string{"GHOST-TX-C", "GHOST-TX-B", "GHOST-TX-A"} {
		if all[i].ID != want {
			t.Errorf("All()[%d] = %s, want %s (most-recent-first)", i, all[i].ID, want)
		}
	}

	inOrder := log.InOrder()
	for i, want := range ids {
		if inOrder[i].ID != want {
			t.Errorf("InOrder()[%d] = %s, want %s (submission order)", i, inOrder[i].ID, want)
		}
	}
}

func TestTransactionLog_UniqueIdsUnderLoad(t *testing.T) {
	log := NewTransactionLog()

	const n = 1000
	for i := 0; i < n; i++ {
		if err := log.Append(confirmedTx(t, fmt.Sprintf("GHOST-TX-%04d", i))); err != nil {
			t.Fatal(err)
		}
	}

	seen := make(map[string]bool, n)
	for _, tx := range log.InOrder() {
		if seen[tx.ID] {
			t.Fatalf("Duplicate id in log: %s", tx.ID)
		}
		seen[tx.ID] = true
	}
	if len(seen) != n {
		t.Errorf("Expected %d unique ids, got %d", n, len(seen))
	}
}
