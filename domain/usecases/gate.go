package usecases

import (
	"sort"
	"sync"

	"github.com/ghostbank/ghostbank-go/domain/models"
)

// currencyGate serializes operations per currency in FIFO order: the
// final balance always equals the sequential application of operations
// in submission order, regardless of how long their lifecycles take.
// Multi-currency operations acquire their currencies in canonical order
// so two conversions can never deadlock against each other.
type currencyGate struct {
	mu      sync.Mutex
	busy    map[models.CurrencyCode]bool
	waiters map[models.CurrencyCode][]chan struct{}
}

func newCurrencyGate() *currencyGate {
	return &currencyGate{
		busy:    make(map[models.CurrencyCode]bool),
		waiters: make(map[models.CurrencyCode][]chan struct{}),
	}
}

// acquire blocks until every given currency is held by the caller.
// Duplicate codes are collapsed.
func (g *currencyGate) acquire(codes ...models.CurrencyCode) {
	for _, code := range canonical(codes) {
		g.acquireOne(code)
	}
}

// release hands each currency to its oldest waiter, or frees it
func (g *currencyGate) release(codes ...models.CurrencyCode) {
	for _, code := range canonical(codes) {
		g.releaseOne(code)
	}
}

func (g *currencyGate) acquireOne(code models.CurrencyCode) {
	g.mu.Lock()
	if !g.busy[code] {
		g.busy[code] = true
		g.mu.Unlock()
		return
	}

	turn := make(chan struct{})
	g.waiters[code] = append(g.waiters[code], turn)
	g.mu.Unlock()

	<-turn
}

func (g *currencyGate) releaseOne(code models.CurrencyCode) {
	g.mu.Lock()
	defer g.mu.Unlock()

	queue := g.waiters[code]
	if len(queue) == 0 {
		g.busy[code] = false
		return
	}

	// The currency stays busy; ownership passes to the oldest waiter.
	g.waiters[code] = queue[1:]
	close(queue[0])
}

func canonical(codes []models.CurrencyCode) []models.CurrencyCode {
	seen := make(map[models.CurrencyCode]bool, len(codes))
	out := make([]models.CurrencyCode, 0, len(codes))
	for _, code := range codes {
		if !seen[code] {
			seen[code] = true
			out = append(out, code)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
