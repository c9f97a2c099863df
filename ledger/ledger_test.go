package ledger

import (
	"sync"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/ghostbank/ghostbank-go/domain/models"
)

func seed(t *testing.T, amounts map[models.CurrencyCode]string) *Ledger {
	t.Helper()

	initial := make(map[models.CurrencyCode]decimal.Decimal, len(amounts))
	for code, value := range amounts {
		initial[code] = decimal.RequireFromString(value)
	}

	led, err := New(initial)
	if err != nil {
		t.Fatalf("New() unexpected error: %v", err)
	}
	return led
}

func TestNew(t *testing.T) {
	t.Run("Every Currency Seeded", func(t *testing.T) {
		led := seed(t, map[models.CurrencyCode]string{models.CurrencyBRL: "1000.00"})

		for _, code := range models.Currencies() {
			balance, err := led.Balance(code)
			if err != nil {
				t.Fatalf("Balance(%s) unexpected error: %v", code, err)
			}
			if code != models.CurrencyBRL && !balance.IsZero() {
				t.Errorf("Expected %s to start at zero, got %s", code, balance)
			}
		}
	})

	t.Run("Unknown Currency Rejected", func(t *testing.T) {
		_, err := New(map[models.CurrencyCode]decimal.Decimal{"EUR": decimal.NewFromInt(1)})
		if err != models.ErrInvalidCurrency {
			t.Errorf("Expected ErrInvalidCurrency, got %v", err)
		}
	})

	t.Run("Negative Seed Rejected", func(t *testing.T) {
		_, err := New(map[models.CurrencyCode]decimal.Decimal{models.CurrencyBRL: decimal.NewFromInt(-1)})
		if err != models.ErrInvalidAmount {
			t.Errorf("Expected ErrInvalidAmount, got %v", err)
		}
	})
}

func TestLedger_Apply(t *testing.T) {
	t.Run("Credit And Debit", func(t *testing.T) {
		led := seed(t, map[models.CurrencyCode]string{models.CurrencyBRL: "1000.00"})

		if err := led.Apply(models.CurrencyBRL, decimal.RequireFromString("-100.00")); err != nil {
			t.Fatalf("Apply() unexpected error: %v", err)
		}

		balance, _ := led.Balance(models.CurrencyBRL)
		if !balance.Equal(decimal.RequireFromString("900.00")) {
			t.Errorf("Expected 900.00, got %s", balance)
		}
	})

	t.Run("Underflow Rejected Without Mutation", func(t *testing.T) {
		led := seed(t, map[models.CurrencyCode]string{models.CurrencyBRL: "1000.00"})

		err := led.Apply(models.CurrencyBRL, decimal.RequireFromString("-2000.00"))
		if err != models.ErrInsufficientBalance {
			t.Fatalf("Expected ErrInsufficientBalance, got %v", err)
		}

		balance, _ := led.Balance(models.CurrencyBRL)
		if !balance.Equal(decimal.RequireFromString("1000.00")) {
			t.Errorf("Expected balance unchanged at 1000.00, got %s", balance)
		}
	})

	t.Run("Exact Drain Allowed", func(t *testing.T) {
		led := seed(t, map[models.CurrencyCode]string{models.CurrencyUSD: "50.00"})

		if err := led.Apply(models.CurrencyUSD, decimal.RequireFromString("-50.00")); err != nil {
			t.Fatalf("Apply() unexpected error: %v", err)
		}

		balance, _ := led.Balance(models.CurrencyUSD)
		if !balance.IsZero() {
			t.Errorf("Expected zero, got %s", balance)
		}
	})

	t.Run("Unknown Currency", func(t *testing.T) {
		led := seed(t, nil)
		if err := led.Apply("EUR", decimal.NewFromInt(1)); err != models.ErrInvalidCurrency {
			t.Errorf("Expected ErrInvalidCurrency, got %v", err)
		}
	})
}

func TestLedger_ApplyConversion(t *testing.T) {
	t.Run("Both Legs Move Together", func(t *testing.T) {
		led := seed(t, map[models.CurrencyCode]string{models.CurrencyBRL: "1000.00"})

		err := led.ApplyConversion(
			models.CurrencyBRL, models.CurrencyUSD,
			decimal.RequireFromString("-100.00"),
			decimal.RequireFromString("18.24"),
		)
		if err != nil {
			t.Fatalf("ApplyConversion() unexpected error: %v", err)
		}

		brl, _ := led.Balance(models.CurrencyBRL)
		usd, _ := led.Balance(models.CurrencyUSD)
		if !brl.Equal(decimal.RequireFromString("900.00")) {
			t.Errorf("Expected BRL 900.00, got %s", brl)
		}
		if !usd.Equal(decimal.RequireFromString("18.24")) {
			t.Errorf("Expected USD 18.24, got %s", usd)
		}
	})

	t.Run("Underflow Leaves Both Legs Unchanged", func(t *testing.T) {
		led := seed(t, map[models.CurrencyCode]string{
			models.CurrencyBRL: "50.00",
			models.CurrencyUSD: "10.00",
		})

		err := led.ApplyConversion(
			models.CurrencyBRL, models.CurrencyUSD,
			decimal.RequireFromString("-100.00"),
			decimal.RequireFromString("18.24"),
		)
		if err != models.ErrInsufficientBalance {
			t.Fatalf("Expected ErrInsufficientBalance, got %v", err)
		}

		brl, _ := led.Balance(models.CurrencyBRL)
		usd, _ := led.Balance(models.CurrencyUSD)
		if !brl.Equal(decimal.RequireFromString("50.00")) {
			t.Errorf("Expected BRL unchanged at 50.00, got %s", brl)
		}
		if !usd.Equal(decimal.RequireFromString("10.00")) {
			t.Errorf("Expected USD unchanged at 10.00, got %s", usd)
		}
	})

	t.Run("Identity Currency Uses Net Delta", func(t *testing.T) {
		led := seed(t, map[models.CurrencyCode]string{models.CurrencyBRL: "100.00"})

		err := led.ApplyConversion(
			models.CurrencyBRL, models.CurrencyBRL,
			decimal.RequireFromString("-100.00"),
			decimal.RequireFromString("100.00"),
		)
		if err != nil {
			t.Fatalf("ApplyConversion() unexpected error: %v", err)
		}

		brl, _ := led.Balance(models.CurrencyBRL)
		if !brl.Equal(decimal.RequireFromString("100.00")) {
			t.Errorf("Expected BRL unchanged at 100.00, got %s", brl)
		}
	})
}

func TestLedger_Snapshot(t *testing.T) {
	led := seed(t, map[models.CurrencyCode]string{models.CurrencyGHOST: "50000.00"})

	snapshot := led.Snapshot()
	snapshot[models.CurrencyGHOST] = decimal.Zero

	balance, _ := led.Balance(models.CurrencyGHOST)
	if !balance.Equal(decimal.RequireFromString("50000.00")) {
		t.Errorf("Mutating a snapshot changed the ledger: %s", balance)
	}
}

func TestLedger_ConcurrentApplies(t *testing.T) {
	led := seed(t, map[models.CurrencyCode]string{models.CurrencyBRL: "1000"})

	const workers = 100
	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			_ = led.Apply(models.CurrencyBRL, decimal.NewFromInt(-1))
		}()
	}
	wg.Wait()

	balance, _ := led.Balance(models.CurrencyBRL)
	if !balance.Equal(decimal.NewFromInt(900)) {
		t.Errorf("Expected 900 after %d debits, got %s", workers, balance)
	}
}
