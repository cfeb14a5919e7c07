package dto

import (
	"encoding/json"

	"github.com/SscSPs/currency_exchange/internal/core/domain"
)

// CreateExchangeRateRequest defines the structure for creating a new exchange rate.
// Rate is kept as the literal the client sent and parsed into a decimal by the service.
type CreateExchangeRateRequest struct {
	BaseCurrencyCode   string      `json:"baseCurrencyCode" form:"baseCurrencyCode" binding:"required,len=3,alpha"`
	TargetCurrencyCode string      `json:"targetCurrencyCode" form:"targetCurrencyCode" binding:"required,len=3,alpha"`
	Rate               json.Number `json:"rate" form:"rate" binding:"required"`
}

// UpdateExchangeRateRequest carries the new rate for an existing pair.
type UpdateExchangeRateRequest struct {
	Rate json.Number `json:"rate" form:"rate" binding:"required"`
}

// ExchangeRateResponse defines the structure for API responses containing exchange rate details.
type ExchangeRateResponse struct {
	ID             int64            `json:"id"`
	BaseCurrency   CurrencyResponse `json:"baseCurrency"`
	TargetCurrency CurrencyResponse `json:"targetCurrency"`
	Rate           float64          `json:"rate"`
}

// ToExchangeRateResponse converts a domain.ExchangeRate to ExchangeRateResponse DTO
func ToExchangeRateResponse(rate *domain.ExchangeRate) ExchangeRateResponse {
	return ExchangeRateResponse{
		ID:             rate.ID,
		BaseCurrency:   ToCurrencyResponse(&rate.BaseCurrency),
		TargetCurrency: ToCurrencyResponse(&rate.TargetCurrency),
		Rate:           rate.Rate.InexactFloat64(),
	}
}

// ToListExchangeRateResponse converts a slice of domain.ExchangeRate to a slice of ExchangeRateResponse DTOs.
func ToListExchangeRateResponse(rates []domain.ExchangeRate) []ExchangeRateResponse {
	responses := make([]ExchangeRateResponse, len(rates))
	for i := range rates {
		responses[i] = ToExchangeRateResponse(&rates[i])
	}
	return responses
}
