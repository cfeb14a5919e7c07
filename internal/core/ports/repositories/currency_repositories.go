package repositories

import (
	"context"

	"github.com/SscSPs/currency_exchange/internal/core/domain"
)

// CurrencyReader defines read operations for currency data.
// Lookups return (nil, nil) when nothing matches; errors are reserved for storage faults.
type CurrencyReader interface {
	// FindCurrencyByCode retrieves a currency by its code, compared case-insensitively.
	FindCurrencyByCode(ctx context.Context, currencyCode string) (*domain.Currency, error)

	// FindCurrencyByID retrieves a currency by its generated id.
	FindCurrencyByID(ctx context.Context, id int64) (*domain.Currency, error)

	// ListCurrencies retrieves all available currencies.
	ListCurrencies(ctx context.Context) ([]domain.Currency, error)
}

// CurrencyWriter defines write operations for currency data
type CurrencyWriter interface {
	// SaveCurrency persists a new currency. A code collision yields apperrors.ErrDuplicate.
	SaveCurrency(ctx context.Context, currency domain.Currency) error

	// UpdateCurrency replaces code, name and sign of the currency with the given id.
	// It reports whether exactly one row was changed.
	UpdateCurrency(ctx context.Context, id int64, currency domain.Currency) (bool, error)

	// DeleteCurrency removes the currency with the given id.
	// It reports whether exactly one row was removed.
	DeleteCurrency(ctx context.Context, id int64) (bool, error)
}

// CurrencyRepositoryFacade combines all currency-related repository interfaces
// This is a facade for clients that need access to all operations
type CurrencyRepositoryFacade interface {
	CurrencyReader
	CurrencyWriter
}
