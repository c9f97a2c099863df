package models

import "github.com/shopspring/decimal"

// CurrencyCode identifies one of the supported wallet currencies
type CurrencyCode string

const (
	// CurrencyBRL represents the Brazilian real
	CurrencyBRL CurrencyCode = "BRL"

	// CurrencyUSD represents the US dollar
	CurrencyUSD CurrencyCode = "USD"

	// CurrencyBTC represents Bitcoin
	CurrencyBTC CurrencyCode = "BTC"

	// CurrencyXMR represents Monero
	CurrencyXMR CurrencyCode = "XMR"

	// CurrencyGHOST represents the native GHOST token
	CurrencyGHOST CurrencyCode = "GHOST"

	// CurrencyUSDT represents Tether
	CurrencyUSDT CurrencyCode = "USDT"
)

// Currencies returns the closed set of supported currency codes.
// The set is fixed at compile time; there are no dynamic currencies.
func Currencies() []CurrencyCode {
	return []CurrencyCode{
		CurrencyBRL,
		CurrencyUSD,
		CurrencyBTC,
		CurrencyXMR,
		CurrencyGHOST,
		CurrencyUSDT,
	}
}

// IsValid reports whether the code belongs to the supported set
func (c CurrencyCode) IsValid() bool {
	switch c {
	case CurrencyBRL, CurrencyUSD, CurrencyBTC, CurrencyXMR, CurrencyGHOST, CurrencyUSDT:
		return true
	}
	return false
}

// String implements fmt.Stringer
func (c CurrencyCode) String() string {
	return string(c)
}

// Rate is an exchange rate for an ordered currency pair. A usable rate
// is always strictly positive.
type Rate = decimal.Decimal

// CurrencyPair is an ordered (from, to) pair used as a rate table key
type CurrencyPair struct {
	From CurrencyCode
	To   CurrencyCode
}

// Validate checks both legs of the pair
func (p CurrencyPair) Validate() error {
	if !p.From.IsValid() {
		return ErrInvalidCurrency
	}
	if !p.To.IsValid() {
		return ErrInvalidCurrency
	}
	return nil
}
