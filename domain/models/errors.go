package models

import (
	"errors"
)

// Domain error types
var (
	// ErrInvalidAmount is returned when a transaction amount is zero, negative or not finite
	ErrInvalidAmount = errors.New("transaction amount must be greater than 0")

	// ErrInvalidCurrency is returned when a currency code is outside the supported set
	ErrInvalidCurrency = errors.New("invalid currency code")

	// ErrInsufficientBalance is returned when a debit would take a balance below zero
	ErrInsufficientBalance = errors.New("insufficient balance for this transaction")

	// ErrUnknownCurrencyPair is returned when no usable rate exists for a conversion pair
	ErrUnknownCurrencyPair = errors.New("no exchange rate configured for currency pair")

	// ErrDuplicateTransactionID is returned when the id generator produced a collision.
	// This is a broken invariant and is never recovered within a session.
	ErrDuplicateTransactionID = errors.New("duplicate transaction id")

	// ErrLifecycleAborted is returned when a transaction was cancelled or a stage
	// failed before the transaction reached confirmation
	ErrLifecycleAborted = errors.New("transaction lifecycle aborted before confirmation")

	// ErrInvalidTransition is returned on an attempt to move a transaction status
	// backward or past its terminal state
	ErrInvalidTransition = errors.New("invalid transaction status transition")

	// ErrTransactionNotFound is returned when a transaction id is not in the log
	ErrTransactionNotFound = errors.New("transaction not found")
)
