package cache

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/SscSPs/currency_exchange/internal/core/domain"
	portsrepo "github.com/SscSPs/currency_exchange/internal/core/ports/repositories"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/sync/singleflight"
)

// CachedCurrencyRepository keeps recently resolved currencies in memory, keyed by code.
// Any write purges the whole cache because an update may change a currency's code.
type CachedCurrencyRepository struct {
	next   portsrepo.CurrencyRepositoryFacade
	byCode *expirable.LRU[string, domain.Currency]
	group  singleflight.Group

	// generation counts purges. A lookup only stores its result if no purge
	// happened while it was reading, so rows read before a write never outlive it.
	mu         sync.Mutex
	generation uint64
}

var _ portsrepo.CurrencyRepositoryFacade = (*CachedCurrencyRepository)(nil)

// NewCachedCurrencyRepository wraps next with an LRU of the given size whose entries expire after ttl.
func NewCachedCurrencyRepository(next portsrepo.CurrencyRepositoryFacade, size int, ttl time.Duration) *CachedCurrencyRepository {
	return &CachedCurrencyRepository{
		next:   next,
		byCode: expirable.NewLRU[string, domain.Currency](size, nil, ttl),
	}
}

// FindCurrencyByCode serves from cache, collapsing concurrent misses for the same code into one query.
// Misses are not cached so a currency created later becomes visible immediately.
// The shared query does not inherit the first caller's cancellation; each caller stops waiting on its own ctx.
func (c *CachedCurrencyRepository) FindCurrencyByCode(ctx context.Context, currencyCode string) (*domain.Currency, error) {
	code := domain.NormalizeCurrencyCode(currencyCode)
	if cur, ok := c.byCode.Get(code); ok {
		return &cur, nil
	}

	gen := c.currentGeneration()
	queryCtx := context.WithoutCancel(ctx)
	ch := c.group.DoChan(fmt.Sprintf("%d/%s", gen, code), func() (interface{}, error) {
		found, err := c.next.FindCurrencyByCode(queryCtx, code)
		if err != nil || found == nil {
			return found, err
		}
		c.addIfCurrent(gen, code, *found)
		return found, nil
	})

	var res singleflight.Result
	select {
	case res = <-ch:
	case <-ctx.Done():
		return nil, ctx.Err()
	}
	if res.Err != nil {
		return nil, res.Err
	}
	found, _ := res.Val.(*domain.Currency)
	if found == nil {
		return nil, nil
	}
	cur := *found
	return &cur, nil
}

func (c *CachedCurrencyRepository) currentGeneration() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.generation
}

func (c *CachedCurrencyRepository) addIfCurrent(gen uint64, code string, cur domain.Currency) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if gen == c.generation {
		c.byCode.Add(code, cur)
	}
}

func (c *CachedCurrencyRepository) purge() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.generation++
	c.byCode.Purge()
}

func (c *CachedCurrencyRepository) FindCurrencyByID(ctx context.Context, id int64) (*domain.Currency, error) {
	return c.next.FindCurrencyByID(ctx, id)
}

func (c *CachedCurrencyRepository) ListCurrencies(ctx context.Context) ([]domain.Currency, error) {
	return c.next.ListCurrencies(ctx)
}

func (c *CachedCurrencyRepository) SaveCurrency(ctx context.Context, currency domain.Currency) error {
	defer c.purge()
	return c.next.SaveCurrency(ctx, currency)
}

func (c *CachedCurrencyRepository) UpdateCurrency(ctx context.Context, id int64, currency domain.Currency) (bool, error) {
	defer c.purge()
	return c.next.UpdateCurrency(ctx, id, currency)
}

func (c *CachedCurrencyRepository) DeleteCurrency(ctx context.Context, id int64) (bool, error) {
	defer c.purge()
	return c.next.DeleteCurrency(ctx, id)
}

// Len reports the number of cached currencies.
func (c *CachedCurrencyRepository) Len() int {
	return c.byCode.Len()
}
