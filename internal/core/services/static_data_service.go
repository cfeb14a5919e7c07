package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/SscSPs/currency_exchange/internal/apperrors"
	portssvc "github.com/SscSPs/currency_exchange/internal/core/ports/services"
	"github.com/SscSPs/currency_exchange/internal/dto"
)

var seedCurrencies = []dto.CreateCurrencyRequest{
	{Code: "USD", Name: "US Dollar", Sign: "$"},
	{Code: "EUR", Name: "Euro", Sign: "€"},
	{Code: "RUB", Name: "Russian Ruble", Sign: "₽"},
	{Code: "GBP", Name: "British Pound", Sign: "£"},
}

var seedExchangeRates = []dto.CreateExchangeRateRequest{
	{BaseCurrencyCode: "USD", TargetCurrencyCode: "EUR", Rate: json.Number("0.92")},
	{BaseCurrencyCode: "USD", TargetCurrencyCode: "RUB", Rate: json.Number("81.66")},
	{BaseCurrencyCode: "EUR", TargetCurrencyCode: "RUB", Rate: json.Number("89.14")},
}

// StaticDataService seeds the reference currencies and rates through the regular services,
// so seeded data obeys the same rules as client input.
type StaticDataService struct {
	BaseService
	currencies    portssvc.CurrencyWriterSvc
	exchangeRates portssvc.ExchangeRateWriterSvc
}

func NewStaticDataService(currencies portssvc.CurrencyWriterSvc, exchangeRates portssvc.ExchangeRateWriterSvc) *StaticDataService {
	return &StaticDataService{currencies: currencies, exchangeRates: exchangeRates}
}

// InitializeStaticData creates whatever seed entries are missing. Entries that already exist are skipped,
// so running it against a populated database is harmless.
func (s *StaticDataService) InitializeStaticData(ctx context.Context) error {
	created := 0
	for _, req := range seedCurrencies {
		_, err := s.currencies.CreateCurrency(ctx, req)
		switch {
		case err == nil:
			created++
		case errors.Is(err, apperrors.ErrDuplicate):
			s.LogDebug(ctx, "Seed currency already present", slog.String("currency_code", req.Code))
		default:
			return fmt.Errorf("failed to seed currency %s: %w", req.Code, err)
		}
	}

	for _, req := range seedExchangeRates {
		_, err := s.exchangeRates.CreateExchangeRate(ctx, req)
		switch {
		case err == nil:
			created++
		case errors.Is(err, apperrors.ErrDuplicate):
			s.LogDebug(ctx, "Seed exchange rate already present",
				slog.String("base", req.BaseCurrencyCode), slog.String("target", req.TargetCurrencyCode))
		default:
			return fmt.Errorf("failed to seed exchange rate %s%s: %w", req.BaseCurrencyCode, req.TargetCurrencyCode, err)
		}
	}

	s.LogInfo(ctx, "Static data initialized", slog.Int("created", created))
	return nil
}
