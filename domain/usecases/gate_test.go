package usecases

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ghostbank/ghostbank-go/domain/models"
)

func TestCurrencyGate_FIFOHandoff(t *testing.T) {
	gate := newCurrencyGate()
	gate.acquire(models.CurrencyBRL)

	const waiters = 10

	var mu sync.Mutex
	var order []int
	var wg sync.WaitGroup
	started := make(chan struct{}, waiters)

	for i := 0; i < waiters; i++ {
		wg.Add(1)
		go func(rank int) {
			defer wg.Done()
			started <- struct{}{}
			gate.acquire(models.CurrencyBRL)
			mu.Lock()
			order = append(order, rank)
			mu.Unlock()
			gate.release(models.CurrencyBRL)
		}(i)
		// Let each goroutine enqueue before the next starts
		<-started
		time.Sleep(5 * time.Millisecond)
	}

	gate.release(models.CurrencyBRL)
	wg.Wait()

	require.Len(t, order, waiters)
	for i, rank := range order {
		assert.Equal(t, i, rank, "waiter served out of turn")
	}
}

func TestCurrencyGate_IndependentCurrencies(t *testing.T) {
	gate := newCurrencyGate()
	gate.acquire(models.CurrencyBRL)

	done := make(chan struct{})
	go func() {
		gate.acquire(models.CurrencyUSD)
		gate.release(models.CurrencyUSD)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("holding BRL must not block USD")
	}

	gate.release(models.CurrencyBRL)
}

func TestCurrencyGate_MultiAcquireCollapsesDuplicates(t *testing.T) {
	gate := newCurrencyGate()

	// Acquiring the same code twice in one call must not self-deadlock
	done := make(chan struct{})
	go func() {
		gate.acquire(models.CurrencyBRL, models.CurrencyBRL)
		gate.release(models.CurrencyBRL, models.CurrencyBRL)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("duplicate codes in one acquire deadlocked")
	}
}

func TestCurrencyGate_OpposedPairsDoNotDeadlock(t *testing.T) {
	gate := newCurrencyGate()

	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			gate.acquire(models.CurrencyBRL, models.CurrencyUSD)
			gate.release(models.CurrencyBRL, models.CurrencyUSD)
		}()
		go func() {
			defer wg.Done()
			gate.acquire(models.CurrencyUSD, models.CurrencyBRL)
			gate.release(models.CurrencyUSD, models.CurrencyBRL)
		}()
	}

	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(10 * time.Second):
		t.Fatal("opposed pair acquisition deadlocked")
	}
}

func TestCanonical(t *testing.T) {
	got := canonical([]models.CurrencyCode{
		models.CurrencyUSD, models.CurrencyBRL, models.CurrencyUSD,
	})
	assert.Equal(t, []models.CurrencyCode{models.CurrencyBRL, models.CurrencyUSD}, got)
}
