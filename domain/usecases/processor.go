package usecases

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ghostbank/ghostbank-go/domain/models"
	"github.com/ghostbank/ghostbank-go/domain/repositories"
	"github.com/ghostbank/ghostbank-go/exchange"
	"github.com/ghostbank/ghostbank-go/interfaces"
	"github.com/ghostbank/ghostbank-go/internal"
	"github.com/ghostbank/ghostbank-go/ledger"
)

// Transaction id prefixes by operation type
const (
	sendIDPrefix    = "GHOST-TX-"
	convertIDPrefix = "BRIDGE-"
	receiveIDPrefix = "GHOST-RX-"
)

// Processor validates wallet intents, drives transactions through their
// lifecycle and is the sole writer of ledger state. The ledger mutation
// and the log append happen together at the transition into confirmed,
// never earlier: a transaction observable in obfuscated or mixing has
// not yet moved any balance.
type Processor struct {
	ledger *ledger.Ledger
	log    repositories.TransactionLog
	rates  *exchange.RateTable
	signer interfaces.Signer
	logger *internal.Logger

	gate *currencyGate

	mu      sync.Mutex
	pending map[string]*models.Transaction
	issued  map[string]struct{}

	sendStages    []Stage
	convertStages []Stage
}

// Option configures a Processor
type Option func(*Processor)

// WithStages overrides the default lifecycle plans. Tests pass
// zero-delay plans so lifecycles run instantly.
func WithStages(send, convert []Stage) Option {
	return func(p *Processor) {
		p.sendStages = send
		p.convertStages = convert
	}
}

// NewProcessor wires a processor over the session's ledger, log, rate
// table and signer capability.
func NewProcessor(led *ledger.Ledger, log repositories.TransactionLog, rates *exchange.RateTable, signer interfaces.Signer, logger *internal.Logger, opts ...Option) *Processor {
	p := &Processor{
		ledger:        led,
		log:           log,
		rates:         rates,
		signer:        signer,
		logger:        logger,
		gate:          newCurrencyGate(),
		pending:       make(map[string]*models.Transaction),
		issued:        make(map[string]struct{}),
		sendStages:    SendStages(DefaultStageDelay),
		convertStages: ConvertStages(DefaultStageDelay),
	}

	for _, opt := range opts {
		opt(p)
	}

	return p
}

// CreateSend validates and executes an outbound payment. It blocks
// through the simulated routing lifecycle; cancel ctx to abort before
// confirmation. On success the returned transaction is confirmed and
// carries the signer's proof token.
func (p *Processor) CreateSend(ctx context.Context, destination string, currency models.CurrencyCode, amount decimal.Decimal) (*models.Transaction, error) {
	if !currency.IsValid() {
		return nil, models.ErrInvalidCurrency
	}
	if !amount.IsPositive() {
		return nil, models.ErrInvalidAmount
	}

	p.gate.acquire(currency)
	defer p.gate.release(currency)

	balance, err := p.ledger.Balance(currency)
	if err != nil {
		return nil, err
	}
	if balance.LessThan(amount) {
		p.logger.Warn(internal.ComponentTransaction, "send %s %s rejected: balance %s", amount, currency, balance)
		return nil, models.ErrInsufficientBalance
	}

	tx, err := p.admit(models.TransactionTypeSend, amount, currency)
	if err != nil {
		return nil, err
	}
	tx.To = destination

	signature, err := p.signer.Sign(tx.ID, signPayload(tx))
	if err != nil {
		return nil, p.abort(tx, fmt.Errorf("%w: signer: %w", models.ErrLifecycleAborted, err))
	}
	p.setSignature(tx, signature)

	if err := p.run(ctx, tx, p.sendStages); err != nil {
		return nil, p.abort(tx, err)
	}

	return p.confirm(tx, func() error {
		return p.ledger.Apply(currency, amount.Neg())
	})
}

// CreateConvert validates and executes an atomic currency conversion at
// the looked-up rate. The recorded transaction carries the from leg.
func (p *Processor) CreateConvert(ctx context.Context, from, to models.CurrencyCode, amount decimal.Decimal) (*models.Transaction, error) {
	if !amount.IsPositive() {
		return nil, models.ErrInvalidAmount
	}

	rate, err := p.rates.Lookup(from, to)
	if err != nil {
		return nil, err
	}
	amountTo := amount.Mul(rate)

	p.gate.acquire(from, to)
	defer p.gate.release(from, to)

	balance, err := p.ledger.Balance(from)
	if err != nil {
		return nil, err
	}
	if balance.LessThan(amount) {
		p.logger.Warn(internal.ComponentTransaction, "convert %s %s->%s rejected: balance %s", amount, from, to, balance)
		return nil, models.ErrInsufficientBalance
	}

	tx, err := p.admit(models.TransactionTypeConvert, amount, from)
	if err != nil {
		return nil, err
	}

	if err := p.run(ctx, tx, p.convertStages); err != nil {
		return nil, p.abort(tx, err)
	}

	return p.confirm(tx, func() error {
		return p.ledger.ApplyConversion(from, to, amount.Neg(), amountTo)
	})
}

// RecordReceive credits an inbound amount. There is no outbound risk,
// so the transaction confirms immediately with no intermediate statuses
// observable.
func (p *Processor) RecordReceive(currency models.CurrencyCode, amount decimal.Decimal) (*models.Transaction, error) {
	if !currency.IsValid() {
		return nil, models.ErrInvalidCurrency
	}
	if !amount.IsPositive() {
		return nil, models.ErrInvalidAmount
	}

	p.gate.acquire(currency)
	defer p.gate.release(currency)

	tx, err := p.admit(models.TransactionTypeReceive, amount, currency)
	if err != nil {
		return nil, err
	}

	return p.confirm(tx, func() error {
		return p.ledger.Apply(currency, amount)
	})
}

// Pending returns copies of the transactions currently in flight
func (p *Processor) Pending() []*models.Transaction {
	p.mu.Lock()
	defer p.mu.Unlock()

	out := make([]*models.Transaction, 0, len(p.pending))
	for _, tx := range p.pending {
		out = append(out, tx.Clone())
	}
	return out
}

// admit mints a unique id, creates the transaction and registers it as
// pending. An id collision is a broken invariant: the operation aborts
// hard rather than retrying over user data.
func (p *Processor) admit(txType models.TransactionType, amount decimal.Decimal, currency models.CurrencyCode) (*models.Transaction, error) {
	id := newTransactionID(txType)

	p.mu.Lock()
	defer p.mu.Unlock()

	if _, taken := p.issued[id]; taken {
		p.logger.Error(internal.ComponentTransaction, "id collision on %s", id)
		return nil, models.ErrDuplicateTransactionID
	}
	if _, err := p.log.ByID(id); err == nil {
		p.logger.Error(internal.ComponentTransaction, "id collision with logged history on %s", id)
		return nil, models.ErrDuplicateTransactionID
	}

	tx := models.NewTransaction(id, txType, amount, currency)
	p.issued[id] = struct{}{}
	p.pending[id] = tx

	p.logger.Debug(internal.ComponentTransaction, "admitted %s %s %s %s", tx.Type, tx.ID, amount, currency)
	return tx, nil
}

// run drives the transaction through the staged lifecycle
func (p *Processor) run(ctx context.Context, tx *models.Transaction, stages []Stage) error {
	for _, stage := range stages {
		if err := stage.wait(ctx); err != nil {
			return err
		}
		if stage.Promote != "" {
			p.mu.Lock()
			err := tx.Advance(stage.Promote)
			p.mu.Unlock()
			if err != nil {
				return fmt.Errorf("stage %s: %w", stage.Name, err)
			}
			p.logger.Debug(internal.ComponentTransaction, "%s entered %s after %s", tx.ID, stage.Promote, stage.Name)
		}
	}
	return nil
}

// confirm applies the ledger mutation, promotes the transaction to
// confirmed and appends it to the log. The caller still holds the
// currency gate, so readers see the mutation and the confirmed record
// as one step.
func (p *Processor) confirm(tx *models.Transaction, apply func() error) (*models.Transaction, error) {
	if err := apply(); err != nil {
		return nil, p.abort(tx, fmt.Errorf("%w: %w", models.ErrLifecycleAborted, err))
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if err := tx.Advance(models.TransactionStatusConfirmed); err != nil {
		return nil, err
	}
	if err := p.log.Append(tx); err != nil {
		return nil, err
	}
	delete(p.pending, tx.ID)

	p.logger.Info(internal.ComponentTransaction, "confirmed %s %s %s %s", tx.Type, tx.ID, tx.Amount, tx.Currency)
	return tx.Clone(), nil
}

// abort moves a pending transaction to the terminal failed status.
// No ledger mutation has occurred for an aborted transaction.
func (p *Processor) abort(tx *models.Transaction, cause error) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if err := tx.MarkFailed(); err == nil {
		delete(p.pending, tx.ID)
	}

	p.logger.Warn(internal.ComponentTransaction, "%s %s failed: %v", tx.Type, tx.ID, cause)
	return cause
}

func (p *Processor) setSignature(tx *models.Transaction, signature string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	tx.Signature = signature
}

func newTransactionID(txType models.TransactionType) string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.New().String(), "-", ""))[:12]
	switch txType {
	case models.TransactionTypeConvert:
		return convertIDPrefix + suffix
	case models.TransactionTypeReceive:
		return receiveIDPrefix + suffix
	default:
		return sendIDPrefix + suffix
	}
}

func signPayload(tx *models.Transaction) string {
	return fmt.Sprintf("%s|%s|%s|%s|%d", tx.ID, tx.Type, tx.Currency, tx.Amount, tx.Timestamp)
}
