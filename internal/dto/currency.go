package dto

import (
	"github.com/SscSPs/currency_exchange/internal/core/domain"
)

// CreateCurrencyRequest defines the data needed to create a new currency.
// It binds from a JSON body or from form values.
type CreateCurrencyRequest struct {
	Code string `json:"code" form:"code" binding:"required,len=3,alpha"`
	Name string `json:"name" form:"name" binding:"required"`
	Sign string `json:"sign" form:"sign" binding:"required"`
}

// UpdateCurrencyRequest replaces every mutable field of a currency.
type UpdateCurrencyRequest struct {
	Code string `json:"code" form:"code" binding:"required,len=3,alpha"`
	Name string `json:"name" form:"name" binding:"required"`
	Sign string `json:"sign" form:"sign" binding:"required"`
}

// CurrencyResponse defines the data returned for a currency.
type CurrencyResponse struct {
	ID       int64  `json:"id"`
	Code     string `json:"code"`
	FullName string `json:"fullName"`
	Sign     string `json:"sign"`
}

// ToCurrencyResponse converts a domain.Currency to CurrencyResponse DTO
func ToCurrencyResponse(curr *domain.Currency) CurrencyResponse {
	return CurrencyResponse{
		ID:       curr.ID,
		Code:     curr.Code,
		FullName: curr.FullName,
		Sign:     curr.Sign,
	}
}

// ToListCurrencyResponse converts a slice of domain.Currency to a slice of CurrencyResponse DTOs
func ToListCurrencyResponse(currencies []domain.Currency) []CurrencyResponse {
	res := make([]CurrencyResponse, len(currencies))
	for i := range currencies {
		res[i] = ToCurrencyResponse(&currencies[i])
	}
	return res
}
