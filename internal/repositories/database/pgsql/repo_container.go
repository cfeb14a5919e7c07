package pgsql

import (
	"time"

	portsrepo "github.com/SscSPs/currency_exchange/internal/core/ports/repositories"
	"github.com/SscSPs/currency_exchange/internal/repositories/cache"
)

// CacheOptions configures the in-memory currency lookup cache. A zero Size disables it.
type CacheOptions struct {
	Size int
	TTL  time.Duration
}

func NewRepositoryProvider(db portsrepo.DBTX, cacheOpts CacheOptions) portsrepo.RepositoryProvider {
	var currencyRepo portsrepo.CurrencyRepositoryFacade = newPgxCurrencyRepository(db)
	if cacheOpts.Size > 0 {
		currencyRepo = cache.NewCachedCurrencyRepository(currencyRepo, cacheOpts.Size, cacheOpts.TTL)
	}
	exchangeRateRepo := newPgxExchangeRateRepository(db, currencyRepo)

	return portsrepo.RepositoryProvider{
		CurrencyRepo:     currencyRepo,
		ExchangeRateRepo: exchangeRateRepo,
	}
}
