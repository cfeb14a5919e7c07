package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/SscSPs/currency_exchange/internal/apperrors"
	"github.com/SscSPs/currency_exchange/internal/core/domain"
	portsrepo "github.com/SscSPs/currency_exchange/internal/core/ports/repositories"
	"github.com/SscSPs/currency_exchange/internal/models"
	"github.com/SscSPs/currency_exchange/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// selectExchangeRate reads a rate together with both of its currencies.
const selectExchangeRate = `
	SELECT
		er.id, er.base_currency_id, er.target_currency_id, er.rate,
		bc.id, bc.code, bc.full_name, bc.sign,
		tc.id, tc.code, tc.full_name, tc.sign
	FROM exchange_rates er
	JOIN currencies bc ON er.base_currency_id = bc.id
	JOIN currencies tc ON er.target_currency_id = tc.id`

// PgxExchangeRateRepository implements the ExchangeRateRepositoryFacade interface using pgx.
type PgxExchangeRateRepository struct {
	BaseRepository
	currencyRepo portsrepo.CurrencyReader
}

// newPgxExchangeRateRepository creates a new PgxExchangeRateRepository.
// currencyRepo resolves currency codes to ids when a rate is saved.
func newPgxExchangeRateRepository(db portsrepo.DBTX, currencyRepo portsrepo.CurrencyReader) *PgxExchangeRateRepository {
	return &PgxExchangeRateRepository{
		BaseRepository: BaseRepository{DB: db},
		currencyRepo:   currencyRepo,
	}
}

var _ portsrepo.ExchangeRateRepositoryFacade = (*PgxExchangeRateRepository)(nil)

// ListExchangeRates retrieves all exchange rates in insertion order.
func (r *PgxExchangeRateRepository) ListExchangeRates(ctx context.Context) ([]domain.ExchangeRate, error) {
	rows, err := r.DB.Query(ctx, selectExchangeRate+` ORDER BY er.id;`)
	if err != nil {
		return nil, apperrors.NewStorageError("failed to query exchange rates", err)
	}
	defer rows.Close()

	modelRates, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.ExchangeRate, error) {
		var rate models.ExchangeRate
		err := row.Scan(scanTargets(&rate)...)
		return rate, err
	})
	if err != nil {
		return nil, apperrors.NewStorageError("failed to scan exchange rates", err)
	}

	return mapping.ToDomainExchangeRateSlice(modelRates), nil
}

// FindExchangeRateByPair retrieves the rate converting pair.Base into pair.Target.
func (r *PgxExchangeRateRepository) FindExchangeRateByPair(ctx context.Context, pair domain.CurrencyPair) (*domain.ExchangeRate, error) {
	query := selectExchangeRate + `
	WHERE er.base_currency_id = (SELECT id FROM currencies WHERE code = $1)
	  AND er.target_currency_id = (SELECT id FROM currencies WHERE code = $2);`

	var modelRate models.ExchangeRate
	err := r.DB.QueryRow(ctx, query, pair.Base, pair.Target).Scan(scanTargets(&modelRate)...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, apperrors.NewStorageError(fmt.Sprintf("failed to find exchange rate %s", pair), err)
	}

	domainRate := mapping.ToDomainExchangeRate(modelRate)
	return &domainRate, nil
}

// SaveExchangeRate inserts a new rate after resolving both currency codes.
func (r *PgxExchangeRateRepository) SaveExchangeRate(ctx context.Context, baseCode, targetCode string, rate decimal.Decimal) error {
	base, err := r.currencyRepo.FindCurrencyByCode(ctx, baseCode)
	if err != nil {
		return err
	}
	if base == nil {
		return fmt.Errorf("%w: %s", apperrors.ErrCurrencyNotFound, domain.NormalizeCurrencyCode(baseCode))
	}
	target, err := r.currencyRepo.FindCurrencyByCode(ctx, targetCode)
	if err != nil {
		return err
	}
	if target == nil {
		return fmt.Errorf("%w: %s", apperrors.ErrCurrencyNotFound, domain.NormalizeCurrencyCode(targetCode))
	}

	query := `
		INSERT INTO exchange_rates (base_currency_id, target_currency_id, rate)
		VALUES ($1, $2, $3);
	`
	_, err = r.DB.Exec(ctx, query, base.ID, target.ID, rate)
	if err != nil {
		pair := domain.CurrencyPair{Base: base.Code, Target: target.Code}
		switch pgErrorCode(err) {
		case pgUniqueViolation:
			return fmt.Errorf("%w: exchange rate %s", apperrors.ErrDuplicate, pair)
		case pgForeignKeyViolation:
			// a currency was removed between the lookup and the insert
			return fmt.Errorf("%w: %s", apperrors.ErrCurrencyNotFound, pair)
		case pgCheckViolation:
			return fmt.Errorf("%w: exchange rate %s violates a constraint", apperrors.ErrValidation, pair)
		}
		return apperrors.NewStorageError(fmt.Sprintf("failed to save exchange rate %s", pair), err)
	}
	return nil
}

// UpdateExchangeRate sets a new rate for an existing pair. Zero rows changed means the pair is unknown.
func (r *PgxExchangeRateRepository) UpdateExchangeRate(ctx context.Context, pair domain.CurrencyPair, rate decimal.Decimal) (int64, error) {
	query := `
		UPDATE exchange_rates
		SET rate = $1
		WHERE base_currency_id = (SELECT id FROM currencies WHERE code = $2)
		  AND target_currency_id = (SELECT id FROM currencies WHERE code = $3);
	`
	tag, err := r.DB.Exec(ctx, query, rate, pair.Base, pair.Target)
	if err != nil {
		if pgErrorCode(err) == pgCheckViolation {
			return 0, fmt.Errorf("%w: exchange rate %s violates a constraint", apperrors.ErrValidation, pair)
		}
		return 0, apperrors.NewStorageError(fmt.Sprintf("failed to update exchange rate %s", pair), err)
	}
	return tag.RowsAffected(), nil
}

func scanTargets(m *models.ExchangeRate) []any {
	return []any{
		&m.ID, &m.BaseCurrencyID, &m.TargetCurrencyID, &m.Rate,
		&m.BaseCurrency.ID, &m.BaseCurrency.Code, &m.BaseCurrency.FullName, &m.BaseCurrency.Sign,
		&m.TargetCurrency.ID, &m.TargetCurrency.Code, &m.TargetCurrency.FullName, &m.TargetCurrency.Sign,
	}
}
