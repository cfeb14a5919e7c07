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
)

type PgxCurrencyRepository struct {
	BaseRepository
}

// newPgxCurrencyRepository creates a new repository for currency data.
func newPgxCurrencyRepository(db portsrepo.DBTX) *PgxCurrencyRepository {
	return &PgxCurrencyRepository{
		BaseRepository: BaseRepository{DB: db},
	}
}

// Ensure implementation matches interface
var _ portsrepo.CurrencyRepositoryFacade = (*PgxCurrencyRepository)(nil)

// SaveCurrency inserts a new currency; the id is assigned by the database.
func (r *PgxCurrencyRepository) SaveCurrency(ctx context.Context, currency domain.Currency) error {
	modelCurr := mapping.ToModelCurrency(currency)

	query := `
		INSERT INTO currencies (code, full_name, sign)
		VALUES ($1, $2, $3);
	`

	_, err := r.DB.Exec(ctx, query, modelCurr.Code, modelCurr.FullName, modelCurr.Sign)
	if err != nil {
		if pgErrorCode(err) == pgUniqueViolation {
			return fmt.Errorf("%w: currency %s", apperrors.ErrDuplicate, modelCurr.Code)
		}
		return apperrors.NewStorageError(fmt.Sprintf("failed to save currency %s", modelCurr.Code), err)
	}
	return nil
}

// UpdateCurrency overwrites code, full name and sign of the currency with the given id.
func (r *PgxCurrencyRepository) UpdateCurrency(ctx context.Context, id int64, currency domain.Currency) (bool, error) {
	modelCurr := mapping.ToModelCurrency(currency)

	query := `
		UPDATE currencies
		SET code = $1, full_name = $2, sign = $3
		WHERE id = $4;
	`

	tag, err := r.DB.Exec(ctx, query, modelCurr.Code, modelCurr.FullName, modelCurr.Sign, id)
	if err != nil {
		if pgErrorCode(err) == pgUniqueViolation {
			return false, fmt.Errorf("%w: currency %s", apperrors.ErrDuplicate, modelCurr.Code)
		}
		return false, apperrors.NewStorageError(fmt.Sprintf("failed to update currency %d", id), err)
	}
	return tag.RowsAffected() == 1, nil
}

// DeleteCurrency removes a currency. Currencies still used by an exchange rate cannot be removed.
func (r *PgxCurrencyRepository) DeleteCurrency(ctx context.Context, id int64) (bool, error) {
	tag, err := r.DB.Exec(ctx, `DELETE FROM currencies WHERE id = $1;`, id)
	if err != nil {
		if pgErrorCode(err) == pgForeignKeyViolation {
			return false, fmt.Errorf("%w: currency %d is used by exchange rates", apperrors.ErrReferenced, id)
		}
		return false, apperrors.NewStorageError(fmt.Sprintf("failed to delete currency %d", id), err)
	}
	return tag.RowsAffected() == 1, nil
}

// FindCurrencyByCode retrieves a currency by its 3-letter code.
func (r *PgxCurrencyRepository) FindCurrencyByCode(ctx context.Context, currencyCode string) (*domain.Currency, error) {
	code := domain.NormalizeCurrencyCode(currencyCode)
	query := `
		SELECT id, code, full_name, sign
		FROM currencies
		WHERE code = $1;
	`
	return r.findOne(ctx, query, code)
}

// FindCurrencyByID retrieves a currency by its generated id.
func (r *PgxCurrencyRepository) FindCurrencyByID(ctx context.Context, id int64) (*domain.Currency, error) {
	query := `
		SELECT id, code, full_name, sign
		FROM currencies
		WHERE id = $1;
	`
	return r.findOne(ctx, query, id)
}

func (r *PgxCurrencyRepository) findOne(ctx context.Context, query string, arg any) (*domain.Currency, error) {
	var modelCurr models.Currency
	err := r.DB.QueryRow(ctx, query, arg).Scan(
		&modelCurr.ID,
		&modelCurr.Code,
		&modelCurr.FullName,
		&modelCurr.Sign,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, apperrors.NewStorageError(fmt.Sprintf("failed to find currency %v", arg), err)
	}

	domainCurr := mapping.ToDomainCurrency(modelCurr)
	return &domainCurr, nil
}

// ListCurrencies retrieves all currencies.
func (r *PgxCurrencyRepository) ListCurrencies(ctx context.Context) ([]domain.Currency, error) {
	query := `
		SELECT id, code, full_name, sign
		FROM currencies
		ORDER BY code;
	`
	rows, err := r.DB.Query(ctx, query)
	if err != nil {
		return nil, apperrors.NewStorageError("failed to query currencies", err)
	}
	defer rows.Close()

	modelCurrencies, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Currency, error) {
		var currency models.Currency
		err := row.Scan(
			&currency.ID,
			&currency.Code,
			&currency.FullName,
			&currency.Sign,
		)
		return currency, err
	})

	if err != nil {
		return nil, apperrors.NewStorageError("failed to scan currencies", err)
	}

	return mapping.ToDomainCurrencySlice(modelCurrencies), nil
}
