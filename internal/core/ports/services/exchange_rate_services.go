package services

import (
	"context"

	"github.com/SscSPs/currency_exchange/internal/core/domain"
	"github.com/SscSPs/currency_exchange/internal/dto"
)

// ExchangeRateReaderSvc defines read operations for exchange rate data
type ExchangeRateReaderSvc interface {
	// ListExchangeRates retrieves every stored rate.
	ListExchangeRates(ctx context.Context) ([]domain.ExchangeRate, error)

	// GetExchangeRate retrieves the rate addressed by a six-letter pair code such as "USDEUR".
	GetExchangeRate(ctx context.Context, pairCode string) (*domain.ExchangeRate, error)
}

// ExchangeRateWriterSvc defines write operations for exchange rate data
type ExchangeRateWriterSvc interface {
	// CreateExchangeRate persists a new rate between two existing currencies.
	CreateExchangeRate(ctx context.Context, req dto.CreateExchangeRateRequest) (*domain.ExchangeRate, error)

	// UpdateExchangeRate changes the rate of an existing pair.
	UpdateExchangeRate(ctx context.Context, pairCode string, req dto.UpdateExchangeRateRequest) (*domain.ExchangeRate, error)
}

// ExchangeRateSvcFacade combines all exchange rate-related service interfaces
type ExchangeRateSvcFacade interface {
	ExchangeRateReaderSvc
	ExchangeRateWriterSvc
}
