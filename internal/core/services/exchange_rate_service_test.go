package services_test

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/SscSPs/currency_exchange/internal/apperrors"
	"github.com/SscSPs/currency_exchange/internal/core/domain"
	portssvc "github.com/SscSPs/currency_exchange/internal/core/ports/services"
	"github.com/SscSPs/currency_exchange/internal/core/services"
	"github.com/SscSPs/currency_exchange/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type ExchangeRateServiceTestSuite struct {
	suite.Suite
	mockRepo *MockExchangeRateRepository
	service  portssvc.ExchangeRateSvcFacade
	ctx      context.Context
	usdEur   domain.CurrencyPair
	stored   *domain.ExchangeRate
}

func (suite *ExchangeRateServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockExchangeRateRepository)
	suite.service = services.NewExchangeRateService(suite.mockRepo)
	suite.ctx = context.Background()
	suite.usdEur = domain.CurrencyPair{Base: "USD", Target: "EUR"}
	suite.stored = &domain.ExchangeRate{
		ID:             1,
		BaseCurrency:   domain.Currency{ID: 1, Code: "USD", FullName: "US Dollar", Sign: "$"},
		TargetCurrency: domain.Currency{ID: 2, Code: "EUR", FullName: "Euro", Sign: "€"},
		Rate:           decimal.RequireFromString("0.92"),
	}
}

func (suite *ExchangeRateServiceTestSuite) TestCreateExchangeRate_Success() {
	req := dto.CreateExchangeRateRequest{BaseCurrencyCode: "usd", TargetCurrencyCode: "eur", Rate: json.Number("0.92")}

	suite.mockRepo.On("FindExchangeRateByPair", suite.ctx, suite.usdEur).Return(nil, nil).Once()
	suite.mockRepo.On("SaveExchangeRate", suite.ctx, "USD", "EUR", decimalEq("0.92")).Return(nil).Once()
	suite.mockRepo.On("FindExchangeRateByPair", suite.ctx, suite.usdEur).Return(suite.stored, nil).Once()

	rate, err := suite.service.CreateExchangeRate(suite.ctx, req)

	suite.Require().NoError(err)
	suite.Equal(suite.stored, rate)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ExchangeRateServiceTestSuite) TestCreateExchangeRate_ValidationErrors() {
	tests := []struct {
		name string
		req  dto.CreateExchangeRateRequest
		msg  string
	}{
		{"missing base", dto.CreateExchangeRateRequest{TargetCurrencyCode: "EUR", Rate: "1"}, "base currency code is required"},
		{"bad target", dto.CreateExchangeRateRequest{BaseCurrencyCode: "USD", TargetCurrencyCode: "EURO", Rate: "1"}, "target currency code must be 3 letters"},
		{"missing rate", dto.CreateExchangeRateRequest{BaseCurrencyCode: "USD", TargetCurrencyCode: "EUR"}, "rate is required"},
		{"non-numeric rate", dto.CreateExchangeRateRequest{BaseCurrencyCode: "USD", TargetCurrencyCode: "EUR", Rate: "abc"}, "rate must be a number"},
		{"zero rate", dto.CreateExchangeRateRequest{BaseCurrencyCode: "USD", TargetCurrencyCode: "EUR", Rate: "0"}, "rate must be positive"},
		{"negative rate", dto.CreateExchangeRateRequest{BaseCurrencyCode: "USD", TargetCurrencyCode: "EUR", Rate: "-1.5"}, "rate must be positive"},
		{"rounds to zero", dto.CreateExchangeRateRequest{BaseCurrencyCode: "USD", TargetCurrencyCode: "EUR", Rate: "0.0000001"}, "rate must be positive"},
		{"too large", dto.CreateExchangeRateRequest{BaseCurrencyCode: "USD", TargetCurrencyCode: "EUR", Rate: "1000000000000"}, "rate must be less than"},
		{"same currency", dto.CreateExchangeRateRequest{BaseCurrencyCode: "USD", TargetCurrencyCode: "usd", Rate: "1"}, "must differ"},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			rate, err := suite.service.CreateExchangeRate(suite.ctx, tt.req)

			suite.Nil(rate)
			suite.ErrorIs(err, apperrors.ErrValidation)
			suite.Contains(err.Error(), tt.msg)
		})
	}
	suite.mockRepo.AssertNotCalled(suite.T(), "FindExchangeRateByPair", mock.Anything, mock.Anything)
}

func (suite *ExchangeRateServiceTestSuite) TestCreateExchangeRate_PairExists() {
	suite.mockRepo.On("FindExchangeRateByPair", suite.ctx, suite.usdEur).Return(suite.stored, nil).Once()

	rate, err := suite.service.CreateExchangeRate(suite.ctx, dto.CreateExchangeRateRequest{
		BaseCurrencyCode: "USD", TargetCurrencyCode: "EUR", Rate: "0.95",
	})

	suite.Nil(rate)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveExchangeRate", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *ExchangeRateServiceTestSuite) TestCreateExchangeRate_CurrencyMissing() {
	pair := domain.CurrencyPair{Base: "USD", Target: "XYZ"}
	suite.mockRepo.On("FindExchangeRateByPair", suite.ctx, pair).Return(nil, nil).Once()
	suite.mockRepo.On("SaveExchangeRate", suite.ctx, "USD", "XYZ", mock.Anything).
		Return(fmt.Errorf("%w: XYZ", apperrors.ErrCurrencyNotFound)).Once()

	rate, err := suite.service.CreateExchangeRate(suite.ctx, dto.CreateExchangeRateRequest{
		BaseCurrencyCode: "USD", TargetCurrencyCode: "XYZ", Rate: "1.1",
	})

	suite.Nil(rate)
	suite.ErrorIs(err, apperrors.ErrCurrencyNotFound)
	suite.Equal(404, apperrors.StatusCode(err))
}

func (suite *ExchangeRateServiceTestSuite) TestCreateExchangeRate_LostRaceIsConflict() {
	suite.mockRepo.On("FindExchangeRateByPair", suite.ctx, suite.usdEur).Return(nil, nil).Once()
	suite.mockRepo.On("SaveExchangeRate", suite.ctx, "USD", "EUR", mock.Anything).
		Return(fmt.Errorf("%w: exchange rate USD/EUR", apperrors.ErrDuplicate)).Once()

	rate, err := suite.service.CreateExchangeRate(suite.ctx, dto.CreateExchangeRateRequest{
		BaseCurrencyCode: "USD", TargetCurrencyCode: "EUR", Rate: "0.92",
	})

	suite.Nil(rate)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
	suite.Equal(409, apperrors.StatusCode(err))
}

func (suite *ExchangeRateServiceTestSuite) TestCreateExchangeRate_StorageError() {
	suite.mockRepo.On("FindExchangeRateByPair", suite.ctx, suite.usdEur).
		Return(nil, apperrors.NewStorageError("query failed", assert.AnError)).Once()

	rate, err := suite.service.CreateExchangeRate(suite.ctx, dto.CreateExchangeRateRequest{
		BaseCurrencyCode: "USD", TargetCurrencyCode: "EUR", Rate: "0.92",
	})

	suite.Nil(rate)
	suite.ErrorIs(err, apperrors.ErrStorageUnavailable)
	suite.Equal(500, apperrors.StatusCode(err))
}

func (suite *ExchangeRateServiceTestSuite) TestGetExchangeRate_Success() {
	suite.mockRepo.On("FindExchangeRateByPair", suite.ctx, suite.usdEur).Return(suite.stored, nil).Once()

	rate, err := suite.service.GetExchangeRate(suite.ctx, "usdeur")

	suite.Require().NoError(err)
	suite.Equal(suite.stored, rate)
}

func (suite *ExchangeRateServiceTestSuite) TestGetExchangeRate_ReversePairNotFound() {
	eurUsd := domain.CurrencyPair{Base: "EUR", Target: "USD"}
	suite.mockRepo.On("FindExchangeRateByPair", suite.ctx, eurUsd).Return(nil, nil).Once()

	rate, err := suite.service.GetExchangeRate(suite.ctx, "EURUSD")

	suite.Nil(rate)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *ExchangeRateServiceTestSuite) TestGetExchangeRate_BadPairCode() {
	for _, code := range []string{"", "USD", "USDEURO", "US1EUR"} {
		rate, err := suite.service.GetExchangeRate(suite.ctx, code)
		suite.Nil(rate)
		suite.ErrorIs(err, apperrors.ErrValidation, code)
	}

	_, err := suite.service.GetExchangeRate(suite.ctx, "")
	suite.ErrorIs(err, domain.ErrEmptyPairCode)
	suite.mockRepo.AssertNotCalled(suite.T(), "FindExchangeRateByPair", mock.Anything, mock.Anything)
}

func (suite *ExchangeRateServiceTestSuite) TestListExchangeRates() {
	suite.mockRepo.On("ListExchangeRates", suite.ctx).Return([]domain.ExchangeRate{*suite.stored}, nil).Once()

	rates, err := suite.service.ListExchangeRates(suite.ctx)

	suite.Require().NoError(err)
	suite.Len(rates, 1)
}

func (suite *ExchangeRateServiceTestSuite) TestListExchangeRates_Empty() {
	suite.mockRepo.On("ListExchangeRates", suite.ctx).Return(nil, nil).Once()

	rates, err := suite.service.ListExchangeRates(suite.ctx)

	suite.Require().NoError(err)
	suite.NotNil(rates)
	suite.Empty(rates)
}

func (suite *ExchangeRateServiceTestSuite) TestUpdateExchangeRate_Success() {
	updated := *suite.stored
	updated.Rate = decimal.RequireFromString("0.95")

	suite.mockRepo.On("UpdateExchangeRate", suite.ctx, suite.usdEur, decimalEq("0.95")).Return(int64(1), nil).Once()
	suite.mockRepo.On("FindExchangeRateByPair", suite.ctx, suite.usdEur).Return(&updated, nil).Once()

	rate, err := suite.service.UpdateExchangeRate(suite.ctx, "USDEUR", dto.UpdateExchangeRateRequest{Rate: "0.95"})

	suite.Require().NoError(err)
	suite.Equal(suite.stored.ID, rate.ID)
	suite.Equal(suite.stored.BaseCurrency, rate.BaseCurrency)
	suite.Equal(suite.stored.TargetCurrency, rate.TargetCurrency)
	suite.True(decimal.RequireFromString("0.95").Equal(rate.Rate))
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ExchangeRateServiceTestSuite) TestUpdateExchangeRate_UnknownPair() {
	pair := domain.CurrencyPair{Base: "USD", Target: "GBP"}
	suite.mockRepo.On("UpdateExchangeRate", suite.ctx, pair, mock.Anything).Return(int64(0), nil).Once()

	rate, err := suite.service.UpdateExchangeRate(suite.ctx, "USDGBP", dto.UpdateExchangeRateRequest{Rate: "0.8"})

	suite.Nil(rate)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockRepo.AssertNotCalled(suite.T(), "FindExchangeRateByPair", mock.Anything, mock.Anything)
}

func (suite *ExchangeRateServiceTestSuite) TestUpdateExchangeRate_Invalid() {
	_, err := suite.service.UpdateExchangeRate(suite.ctx, "", dto.UpdateExchangeRateRequest{Rate: "1"})
	suite.ErrorIs(err, apperrors.ErrValidation)

	_, err = suite.service.UpdateExchangeRate(suite.ctx, "USDEUR", dto.UpdateExchangeRateRequest{})
	suite.ErrorIs(err, apperrors.ErrValidation)

	_, err = suite.service.UpdateExchangeRate(suite.ctx, "USDEUR", dto.UpdateExchangeRateRequest{Rate: "-2"})
	suite.ErrorIs(err, apperrors.ErrValidation)

	suite.mockRepo.AssertNotCalled(suite.T(), "UpdateExchangeRate", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *ExchangeRateServiceTestSuite) TestUpdateExchangeRate_RejectsOversizedLiterals() {
	tests := []struct {
		name string
		rate string
		msg  string
	}{
		{"huge exponent", "1e999999999", "out of range"},
		{"huge negative exponent", "1e-999999999", "out of range"},
		{"exponent just above limit", "1e13", "out of range"},
		{"too many digits", "0." + strings.Repeat("1", 40), "at most 32 characters"},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			done := make(chan error, 1)
			go func() {
				_, err := suite.service.UpdateExchangeRate(suite.ctx, "USDEUR", dto.UpdateExchangeRateRequest{Rate: json.Number(tt.rate)})
				done <- err
			}()

			select {
			case err := <-done:
				suite.ErrorIs(err, apperrors.ErrValidation)
				suite.Contains(err.Error(), tt.msg)
			case <-time.After(time.Second):
				suite.Fail("rate validation did not return in time", tt.rate)
			}
		})
	}
	suite.mockRepo.AssertNotCalled(suite.T(), "UpdateExchangeRate", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *ExchangeRateServiceTestSuite) TestCreateExchangeRate_AcceptsExponentNotation() {
	req := dto.CreateExchangeRateRequest{BaseCurrencyCode: "USD", TargetCurrencyCode: "EUR", Rate: json.Number("9.2e-1")}
	suite.mockRepo.On("FindExchangeRateByPair", suite.ctx, suite.usdEur).Return(nil, nil).Once()
	suite.mockRepo.On("SaveExchangeRate", suite.ctx, "USD", "EUR", decimalEq("0.92")).Return(nil).Once()
	suite.mockRepo.On("FindExchangeRateByPair", suite.ctx, suite.usdEur).Return(suite.stored, nil).Once()

	rate, err := suite.service.CreateExchangeRate(suite.ctx, req)

	suite.Require().NoError(err)
	suite.Equal(suite.stored, rate)
	suite.mockRepo.AssertExpectations(suite.T())
}

func TestExchangeRateServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ExchangeRateServiceTestSuite))
}
