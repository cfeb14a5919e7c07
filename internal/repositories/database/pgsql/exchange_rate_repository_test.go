package pgsql_test

import (
	"context"
	"errors"
	"testing"

	"github.com/SscSPs/currency_exchange/internal/apperrors"
	"github.com/SscSPs/currency_exchange/internal/core/domain"
	portsrepo "github.com/SscSPs/currency_exchange/internal/core/ports/repositories"
	"github.com/SscSPs/currency_exchange/internal/repositories/database/pgsql"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

var exchangeRateColumns = []string{
	"id", "base_currency_id", "target_currency_id", "rate",
	"id", "code", "full_name", "sign",
	"id", "code", "full_name", "sign",
}

type ExchangeRateRepositoryTestSuite struct {
	suite.Suite
	db   pgxmock.PgxPoolIface
	repo portsrepo.ExchangeRateRepositoryFacade
	ctx  context.Context
	rate decimal.Decimal
}

func (suite *ExchangeRateRepositoryTestSuite) SetupTest() {
	db, err := pgxmock.NewPool()
	suite.Require().NoError(err)
	suite.db = db
	suite.repo = pgsql.NewRepositoryProvider(db, pgsql.CacheOptions{}).ExchangeRateRepo
	suite.ctx = context.Background()
	suite.rate = decimal.RequireFromString("0.92")
}

func (suite *ExchangeRateRepositoryTestSuite) TearDownTest() {
	suite.NoError(suite.db.ExpectationsWereMet())
	suite.db.Close()
}

func (suite *ExchangeRateRepositoryTestSuite) expectCurrencyLookup(code string, id int64) {
	rows := pgxmock.NewRows(currencyColumns)
	if id > 0 {
		rows.AddRow(id, code, code+" name", "")
	}
	suite.db.ExpectQuery("FROM currencies WHERE code").WithArgs(code).WillReturnRows(rows)
}

func (suite *ExchangeRateRepositoryTestSuite) TestListExchangeRates() {
	rows := pgxmock.NewRows(exchangeRateColumns).
		AddRow(int64(1), int64(1), int64(2), suite.rate,
			int64(1), "USD", "US Dollar", "$",
			int64(2), "EUR", "Euro", "€")
	suite.db.ExpectQuery("FROM exchange_rates er JOIN currencies bc").WillReturnRows(rows)

	list, err := suite.repo.ListExchangeRates(suite.ctx)

	suite.Require().NoError(err)
	suite.Require().Len(list, 1)
	suite.Equal(int64(1), list[0].ID)
	suite.Equal(domain.Currency{ID: 1, Code: "USD", FullName: "US Dollar", Sign: "$"}, list[0].BaseCurrency)
	suite.Equal(domain.Currency{ID: 2, Code: "EUR", FullName: "Euro", Sign: "€"}, list[0].TargetCurrency)
	suite.True(suite.rate.Equal(list[0].Rate))
}

func (suite *ExchangeRateRepositoryTestSuite) TestListExchangeRates_StorageError() {
	suite.db.ExpectQuery("FROM exchange_rates").WillReturnError(errors.New("connection refused"))

	list, err := suite.repo.ListExchangeRates(suite.ctx)

	suite.Nil(list)
	suite.ErrorIs(err, apperrors.ErrStorageUnavailable)
}

func (suite *ExchangeRateRepositoryTestSuite) TestFindExchangeRateByPair() {
	rows := pgxmock.NewRows(exchangeRateColumns).
		AddRow(int64(4), int64(2), int64(1), suite.rate,
			int64(2), "EUR", "Euro", "€",
			int64(1), "USD", "US Dollar", "$")
	suite.db.ExpectQuery("WHERE er.base_currency_id").WithArgs("EUR", "USD").WillReturnRows(rows)

	rate, err := suite.repo.FindExchangeRateByPair(suite.ctx, domain.CurrencyPair{Base: "EUR", Target: "USD"})

	suite.Require().NoError(err)
	suite.Require().NotNil(rate)
	suite.Equal("EUR", rate.BaseCurrency.Code)
	suite.Equal("USD", rate.TargetCurrency.Code)
	suite.Equal(domain.CurrencyPair{Base: "EUR", Target: "USD"}, rate.Pair())
}

func (suite *ExchangeRateRepositoryTestSuite) TestFindExchangeRateByPair_Absent() {
	suite.db.ExpectQuery("WHERE er.base_currency_id").WithArgs("USD", "GBP").WillReturnRows(pgxmock.NewRows(exchangeRateColumns))

	rate, err := suite.repo.FindExchangeRateByPair(suite.ctx, domain.CurrencyPair{Base: "USD", Target: "GBP"})

	suite.NoError(err)
	suite.Nil(rate)
}

func (suite *ExchangeRateRepositoryTestSuite) TestSaveExchangeRate() {
	suite.expectCurrencyLookup("USD", 1)
	suite.expectCurrencyLookup("EUR", 2)
	suite.db.ExpectExec("INSERT INTO exchange_rates").
		WithArgs(int64(1), int64(2), suite.rate).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	err := suite.repo.SaveExchangeRate(suite.ctx, "usd", "eur", suite.rate)

	suite.NoError(err)
}

func (suite *ExchangeRateRepositoryTestSuite) TestSaveExchangeRate_UnknownBase() {
	suite.expectCurrencyLookup("XYZ", 0)

	err := suite.repo.SaveExchangeRate(suite.ctx, "XYZ", "EUR", suite.rate)

	suite.ErrorIs(err, apperrors.ErrCurrencyNotFound)
	suite.Contains(err.Error(), "XYZ")
}

func (suite *ExchangeRateRepositoryTestSuite) TestSaveExchangeRate_UnknownTarget() {
	suite.expectCurrencyLookup("USD", 1)
	suite.expectCurrencyLookup("XYZ", 0)

	err := suite.repo.SaveExchangeRate(suite.ctx, "USD", "XYZ", suite.rate)

	suite.ErrorIs(err, apperrors.ErrCurrencyNotFound)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *ExchangeRateRepositoryTestSuite) TestSaveExchangeRate_DuplicatePair() {
	suite.expectCurrencyLookup("USD", 1)
	suite.expectCurrencyLookup("EUR", 2)
	suite.db.ExpectExec("INSERT INTO exchange_rates").WillReturnError(&pgconn.PgError{Code: "23505"})

	err := suite.repo.SaveExchangeRate(suite.ctx, "USD", "EUR", suite.rate)

	suite.ErrorIs(err, apperrors.ErrDuplicate)
}

func (suite *ExchangeRateRepositoryTestSuite) TestSaveExchangeRate_CurrencyRemovedConcurrently() {
	suite.expectCurrencyLookup("USD", 1)
	suite.expectCurrencyLookup("EUR", 2)
	suite.db.ExpectExec("INSERT INTO exchange_rates").WillReturnError(&pgconn.PgError{Code: "23503"})

	err := suite.repo.SaveExchangeRate(suite.ctx, "USD", "EUR", suite.rate)

	suite.ErrorIs(err, apperrors.ErrCurrencyNotFound)
}

func (suite *ExchangeRateRepositoryTestSuite) TestSaveExchangeRate_LookupFails() {
	suite.db.ExpectQuery("FROM currencies WHERE code").WithArgs("USD").WillReturnError(errors.New("timeout"))

	err := suite.repo.SaveExchangeRate(suite.ctx, "USD", "EUR", suite.rate)

	suite.ErrorIs(err, apperrors.ErrStorageUnavailable)
}

func (suite *ExchangeRateRepositoryTestSuite) TestUpdateExchangeRate() {
	suite.db.ExpectExec("UPDATE exchange_rates").
		WithArgs(suite.rate, "USD", "EUR").
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	n, err := suite.repo.UpdateExchangeRate(suite.ctx, domain.CurrencyPair{Base: "USD", Target: "EUR"}, suite.rate)

	suite.NoError(err)
	suite.Equal(int64(1), n)
}

func (suite *ExchangeRateRepositoryTestSuite) TestUpdateExchangeRate_UnknownPair() {
	suite.db.ExpectExec("UPDATE exchange_rates").
		WithArgs(suite.rate, "USD", "GBP").
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	n, err := suite.repo.UpdateExchangeRate(suite.ctx, domain.CurrencyPair{Base: "USD", Target: "GBP"}, suite.rate)

	suite.NoError(err)
	suite.Zero(n)
}

func (suite *ExchangeRateRepositoryTestSuite) TestUpdateExchangeRate_StorageError() {
	suite.db.ExpectExec("UPDATE exchange_rates").WillReturnError(errors.New("broken pipe"))

	n, err := suite.repo.UpdateExchangeRate(suite.ctx, domain.CurrencyPair{Base: "USD", Target: "EUR"}, suite.rate)

	suite.Zero(n)
	suite.ErrorIs(err, apperrors.ErrStorageUnavailable)
}

func TestExchangeRateRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(ExchangeRateRepositoryTestSuite))
}
