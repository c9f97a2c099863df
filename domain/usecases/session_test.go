package usecases

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ghostbank/ghostbank-go/domain/models"
	"github.com/ghostbank/ghostbank-go/internal"
)

func TestSession_ExportRoundTrip(t *testing.T) {
	f := newFixture(t, map[models.CurrencyCode]string{
		models.CurrencyBRL: "1000.00",
		models.CurrencyUSD: "50.00",
	})
	sess := NewSession(f.ledger, f.log, f.proc, internal.NewNopLogger())

	sent, err := f.proc.CreateSend(context.Background(), "dest", models.CurrencyBRL, dec("100.00"))
	require.NoError(t, err)
	received, err := f.proc.RecordReceive(models.CurrencyUSD, dec("25.00"))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, sess.Export(&buf))

	// Amounts serialize as plain JSON numbers
	assert.Contains(t, buf.String(), `"amount": 100`)
	assert.NotContains(t, buf.String(), `"amount": "100"`)

	state, err := DecodeState(&buf)
	require.NoError(t, err)

	assert.True(t, state.Balances[models.CurrencyBRL].Equal(dec("900.00")))
	assert.True(t, state.Balances[models.CurrencyUSD].Equal(dec("75.00")))

	require.Len(t, state.Transactions, 2)
	assert.Equal(t, sent.ID, state.Transactions[0].ID)
	assert.Equal(t, sent.Signature, state.Transactions[0].Signature)
	assert.Equal(t, received.ID, state.Transactions[1].ID)
}

func TestSession_ExportExcludesPending(t *testing.T) {
	f := newFixture(t, map[models.CurrencyCode]string{models.CurrencyBRL: "1000.00"})
	sess := NewSession(f.ledger, f.log, f.proc, internal.NewNopLogger())

	var buf bytes.Buffer
	require.NoError(t, sess.Export(&buf))

	state, err := DecodeState(&buf)
	require.NoError(t, err)
	assert.Empty(t, state.Transactions)
	assert.True(t, state.Balances[models.CurrencyBRL].Equal(dec("1000.00")))
}

func TestDecodeState_Rejections(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr error
	}{
		{
			"Unknown Currency",
			`{"balances":{"EUR":10},"transactions":[]}`,
			models.ErrInvalidCurrency,
		},
		{
			"Negative Balance",
			`{"balances":{"BRL":-1},"transactions":[]}`,
			models.ErrInvalidAmount,
		},
		{
			"Failed Status",
			`{"balances":{},"transactions":[
				{"id":"GHOST-TX-1","type":"send","amount":5,"currency":"BRL","timestamp":1,"status":"failed"}
			]}`,
			models.ErrInvalidTransition,
		},
		{
			"Duplicate IDs",
			`{"balances":{},"transactions":[
				{"id":"GHOST-TX-1","type":"send","amount":5,"currency":"BRL","timestamp":1,"status":"confirmed"},
				{"id":"GHOST-TX-1","type":"send","amount":5,"currency":"BRL","timestamp":2,"status":"confirmed"}
			]}`,
			models.ErrDuplicateTransactionID,
		},
		{
			"Invalid Amount",
			`{"balances":{},"transactions":[
				{"id":"GHOST-TX-1","type":"send","amount":0,"currency":"BRL","timestamp":1,"status":"confirmed"}
			]}`,
			models.ErrInvalidAmount,
		},
		{
			"Unknown Transaction Currency",
			`{"balances":{},"transactions":[
				{"id":"GHOST-TX-1","type":"send","amount":5,"currency":"EUR","timestamp":1,"status":"confirmed"}
			]}`,
			models.ErrInvalidCurrency,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeState(strings.NewReader(tt.input))
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestDecodeState_MalformedJSON(t *testing.T) {
	_, err := DecodeState(strings.NewReader(`{"balances":`))
	assert.Error(t, err)
}
