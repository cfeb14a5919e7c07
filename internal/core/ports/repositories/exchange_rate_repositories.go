package repositories

import (
	"context"

	"github.com/SscSPs/currency_exchange/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ExchangeRateReader defines read operations for exchange rate data
type ExchangeRateReader interface {
	// ListExchangeRates retrieves all rates with both currencies resolved.
	ListExchangeRates(ctx context.Context) ([]domain.ExchangeRate, error)

	// FindExchangeRateByPair retrieves the rate for an ordered pair, or (nil, nil) if none exists.
	FindExchangeRateByPair(ctx context.Context, pair domain.CurrencyPair) (*domain.ExchangeRate, error)
}

// ExchangeRateWriter defines write operations for exchange rate data
type ExchangeRateWriter interface {
	// SaveExchangeRate persists a new rate between two existing currencies.
	// Unknown codes yield apperrors.ErrCurrencyNotFound, an existing pair apperrors.ErrDuplicate.
	SaveExchangeRate(ctx context.Context, baseCode, targetCode string, rate decimal.Decimal) error

	// UpdateExchangeRate replaces the rate of an existing pair and returns the number of rows changed.
	UpdateExchangeRate(ctx context.Context, pair domain.CurrencyPair, rate decimal.Decimal) (int64, error)
}

// ExchangeRateRepositoryFacade combines all exchange rate-related repository interfaces
// This is a facade for clients that need access to all operations
type ExchangeRateRepositoryFacade interface {
	ExchangeRateReader
	ExchangeRateWriter
}
