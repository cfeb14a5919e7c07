package models

import "github.com/shopspring/decimal"

// ExchangeRate is a row of the exchange_rates table joined with both of its currencies.
type ExchangeRate struct {
	ID               int64           `db:"id"`
	BaseCurrencyID   int64           `db:"base_currency_id"`
	TargetCurrencyID int64           `db:"target_currency_id"`
	Rate             decimal.Decimal `db:"rate"` // NUMERIC(18,6)
	BaseCurrency     Currency
	TargetCurrency   Currency
}
