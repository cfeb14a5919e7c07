package domain

import "github.com/shopspring/decimal"

// ExchangeRate is the number of target currency units one base currency unit buys.
// Rates are directional: USD->EUR and EUR->USD are independent entities.
type ExchangeRate struct {
	ID             int64           `json:"id"`
	BaseCurrency   Currency        `json:"baseCurrency"`
	TargetCurrency Currency        `json:"targetCurrency"`
	Rate           decimal.Decimal `json:"rate"`
}

// Pair returns the ordered currency pair the rate belongs to.
func (r ExchangeRate) Pair() CurrencyPair {
	return CurrencyPair{Base: r.BaseCurrency.Code, Target: r.TargetCurrency.Code}
}
