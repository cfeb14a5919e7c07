package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/SscSPs/currency_exchange/internal/apperrors"
	"github.com/SscSPs/currency_exchange/internal/core/domain"
	portsrepo "github.com/SscSPs/currency_exchange/internal/core/ports/repositories"
	"github.com/SscSPs/currency_exchange/internal/dto"
	"github.com/shopspring/decimal"
)

// Rates are stored as NUMERIC(18,6).
const rateScale = 6

// Limits on a rate literal, checked before rounding.
const (
	maxRateLiteralLen = 32
	minRateExponent   = -30
	maxRateExponent   = 12
)

var maxRate = decimal.New(1, 18-rateScale)

// ExchangeRateService provides business logic for exchange rates.
type ExchangeRateService struct {
	BaseService
	rateRepo portsrepo.ExchangeRateRepositoryFacade
}

// NewExchangeRateService creates a new ExchangeRateService.
func NewExchangeRateService(rateRepo portsrepo.ExchangeRateRepositoryFacade) *ExchangeRateService {
	return &ExchangeRateService{rateRepo: rateRepo}
}

// CreateExchangeRate handles the creation of a new exchange rate.
func (s *ExchangeRateService) CreateExchangeRate(ctx context.Context, req dto.CreateExchangeRateRequest) (*domain.ExchangeRate, error) {
	pair := domain.CurrencyPair{
		Base:   domain.NormalizeCurrencyCode(req.BaseCurrencyCode),
		Target: domain.NormalizeCurrencyCode(req.TargetCurrencyCode),
	}
	if err := validateCurrencyCode("base currency code", pair.Base); err != nil {
		return nil, err
	}
	if err := validateCurrencyCode("target currency code", pair.Target); err != nil {
		return nil, err
	}
	rate, err := parseRate(string(req.Rate))
	if err != nil {
		return nil, err
	}
	if pair.Base == pair.Target {
		return nil, fmt.Errorf("%w: base and target currencies must differ", apperrors.ErrValidation)
	}

	existing, err := s.rateRepo.FindExchangeRateByPair(ctx, pair)
	if err != nil {
		s.LogError(ctx, err, "Failed to check exchange rate existence", slog.String("pair", pair.Code()))
		return nil, fmt.Errorf("failed to check exchange rate %s: %w", pair, err)
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: exchange rate %s", apperrors.ErrDuplicate, pair)
	}

	if err := s.rateRepo.SaveExchangeRate(ctx, pair.Base, pair.Target, rate); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) && !errors.Is(err, apperrors.ErrDuplicate) {
			s.LogError(ctx, err, "Failed to save exchange rate", slog.String("pair", pair.Code()))
		}
		return nil, fmt.Errorf("failed to create exchange rate %s: %w", pair, err)
	}

	created, err := s.rateRepo.FindExchangeRateByPair(ctx, pair)
	if err != nil {
		return nil, fmt.Errorf("failed to read back exchange rate %s: %w", pair, err)
	}
	if created == nil {
		return nil, fmt.Errorf("%w: exchange rate %s missing after create", apperrors.ErrStorageUnavailable, pair)
	}

	s.LogInfo(ctx, "Exchange rate created", slog.String("pair", pair.Code()), slog.String("rate", rate.String()))
	return created, nil
}

// GetExchangeRate retrieves the exchange rate addressed by a pair code.
func (s *ExchangeRateService) GetExchangeRate(ctx context.Context, pairCode string) (*domain.ExchangeRate, error) {
	pair, err := parsePair(pairCode)
	if err != nil {
		return nil, err
	}

	rate, err := s.rateRepo.FindExchangeRateByPair(ctx, pair)
	if err != nil {
		s.LogError(ctx, err, "Failed to find exchange rate", slog.String("pair", pair.Code()))
		return nil, fmt.Errorf("failed to get exchange rate in service: %w", err)
	}
	if rate == nil {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("exchange rate %s not found", pair))
	}
	return rate, nil
}

func (s *ExchangeRateService) ListExchangeRates(ctx context.Context) ([]domain.ExchangeRate, error) {
	rates, err := s.rateRepo.ListExchangeRates(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list exchange rates")
		return nil, fmt.Errorf("failed to list exchange rates in service: %w", err)
	}
	if rates == nil {
		return []domain.ExchangeRate{}, nil
	}
	return rates, nil
}

// UpdateExchangeRate sets a new rate on an existing pair. Id, base and target never change.
func (s *ExchangeRateService) UpdateExchangeRate(ctx context.Context, pairCode string, req dto.UpdateExchangeRateRequest) (*domain.ExchangeRate, error) {
	pair, err := parsePair(pairCode)
	if err != nil {
		return nil, err
	}
	rate, err := parseRate(string(req.Rate))
	if err != nil {
		return nil, err
	}

	affected, err := s.rateRepo.UpdateExchangeRate(ctx, pair, rate)
	if err != nil {
		s.LogError(ctx, err, "Failed to update exchange rate", slog.String("pair", pair.Code()))
		return nil, fmt.Errorf("failed to update exchange rate %s: %w", pair, err)
	}
	if affected == 0 {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("exchange rate %s not found", pair))
	}

	updated, err := s.rateRepo.FindExchangeRateByPair(ctx, pair)
	if err != nil {
		return nil, fmt.Errorf("failed to read back exchange rate %s: %w", pair, err)
	}
	if updated == nil {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("exchange rate %s not found", pair))
	}

	s.LogInfo(ctx, "Exchange rate updated", slog.String("pair", pair.Code()), slog.String("rate", rate.String()))
	return updated, nil
}

func parsePair(pairCode string) (domain.CurrencyPair, error) {
	pair, err := domain.ParsePairCode(strings.TrimSpace(pairCode))
	if err != nil {
		return domain.CurrencyPair{}, fmt.Errorf("%w: %w", apperrors.ErrValidation, err)
	}
	return pair, nil
}

// parseRate accepts a positive decimal literal that fits the rate column.
func parseRate(raw string) (decimal.Decimal, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return decimal.Decimal{}, fmt.Errorf("%w: rate is required", apperrors.ErrValidation)
	}
	if len(raw) > maxRateLiteralLen {
		return decimal.Decimal{}, fmt.Errorf("%w: rate must be at most %d characters", apperrors.ErrValidation, maxRateLiteralLen)
	}
	rate, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("%w: rate must be a number, got %q", apperrors.ErrValidation, raw)
	}
	if exp := rate.Exponent(); exp < minRateExponent || exp > maxRateExponent {
		return decimal.Decimal{}, fmt.Errorf("%w: rate %q is out of range", apperrors.ErrValidation, raw)
	}
	rate = rate.Round(rateScale)
	if !rate.IsPositive() {
		return decimal.Decimal{}, fmt.Errorf("%w: rate must be positive", apperrors.ErrValidation)
	}
	if rate.GreaterThanOrEqual(maxRate) {
		return decimal.Decimal{}, fmt.Errorf("%w: rate must be less than %s", apperrors.ErrValidation, maxRate)
	}
	return rate, nil
}
