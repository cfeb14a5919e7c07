package mapping

import (
	"github.com/SscSPs/currency_exchange/internal/core/domain"
	"github.com/SscSPs/currency_exchange/internal/models"
)

// ToDomainExchangeRate converts a joined model ExchangeRate to a domain ExchangeRate
func ToDomainExchangeRate(m models.ExchangeRate) domain.ExchangeRate {
	return domain.ExchangeRate{
		ID:             m.ID,
		BaseCurrency:   ToDomainCurrency(m.BaseCurrency),
		TargetCurrency: ToDomainCurrency(m.TargetCurrency),
		Rate:           m.Rate,
	}
}

// ToDomainExchangeRateSlice converts joined model rows to domain ExchangeRates
func ToDomainExchangeRateSlice(ms []models.ExchangeRate) []domain.ExchangeRate {
	ds := make([]domain.ExchangeRate, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainExchangeRate(m)
	}
	return ds
}
