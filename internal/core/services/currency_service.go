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
)

type CurrencyService struct {
	BaseService
	currencyRepo portsrepo.CurrencyRepositoryFacade
}

func NewCurrencyService(currencyRepo portsrepo.CurrencyRepositoryFacade) *CurrencyService {
	return &CurrencyService{currencyRepo: currencyRepo}
}

// CreateCurrency validates the request, rejects a code that is already taken and
// returns the currency as stored, including its generated id.
func (s *CurrencyService) CreateCurrency(ctx context.Context, req dto.CreateCurrencyRequest) (*domain.Currency, error) {
	currency, err := newCurrency(req.Code, req.Name, req.Sign)
	if err != nil {
		return nil, err
	}

	existing, err := s.currencyRepo.FindCurrencyByCode(ctx, currency.Code)
	if err != nil {
		s.LogError(ctx, err, "Failed to check currency existence", slog.String("currency_code", currency.Code))
		return nil, fmt.Errorf("failed to check currency %s: %w", currency.Code, err)
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: currency %s", apperrors.ErrDuplicate, currency.Code)
	}

	// The pre-check can lose a race; the unique constraint still reports ErrDuplicate then.
	if err := s.currencyRepo.SaveCurrency(ctx, currency); err != nil {
		if !errors.Is(err, apperrors.ErrDuplicate) {
			s.LogError(ctx, err, "Failed to save currency", slog.String("currency_code", currency.Code))
		}
		return nil, fmt.Errorf("failed to create currency %s: %w", currency.Code, err)
	}

	created, err := s.currencyRepo.FindCurrencyByCode(ctx, currency.Code)
	if err != nil {
		return nil, fmt.Errorf("failed to read back currency %s: %w", currency.Code, err)
	}
	if created == nil {
		return nil, fmt.Errorf("%w: currency %s missing after create", apperrors.ErrStorageUnavailable, currency.Code)
	}

	s.LogInfo(ctx, "Currency created", slog.String("currency_code", created.Code), slog.Int64("currency_id", created.ID))
	return created, nil
}

// GetCurrencyByCode looks a currency up by code, ignoring case.
func (s *CurrencyService) GetCurrencyByCode(ctx context.Context, currencyCode string) (*domain.Currency, error) {
	code := domain.NormalizeCurrencyCode(currencyCode)
	if err := validateCurrencyCode("currency code", code); err != nil {
		return nil, err
	}

	currency, err := s.currencyRepo.FindCurrencyByCode(ctx, code)
	if err != nil {
		s.LogError(ctx, err, "Failed to find currency", slog.String("currency_code", code))
		return nil, fmt.Errorf("failed to get currency by code: %w", err)
	}
	if currency == nil {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("currency %s not found", code))
	}
	return currency, nil
}

func (s *CurrencyService) ListCurrencies(ctx context.Context) ([]domain.Currency, error) {
	currencies, err := s.currencyRepo.ListCurrencies(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list currencies")
		return nil, fmt.Errorf("failed to list currencies in service: %w", err)
	}
	// Return empty slice if no currencies found, not nil
	if currencies == nil {
		return []domain.Currency{}, nil
	}
	return currencies, nil
}

// UpdateCurrency replaces all mutable fields of the currency with the given id.
func (s *CurrencyService) UpdateCurrency(ctx context.Context, id int64, req dto.UpdateCurrencyRequest) (*domain.Currency, error) {
	currency, err := newCurrency(req.Code, req.Name, req.Sign)
	if err != nil {
		return nil, err
	}

	updated, err := s.currencyRepo.UpdateCurrency(ctx, id, currency)
	if err != nil {
		if !errors.Is(err, apperrors.ErrDuplicate) {
			s.LogError(ctx, err, "Failed to update currency", slog.Int64("currency_id", id))
		}
		return nil, fmt.Errorf("failed to update currency %d: %w", id, err)
	}
	if !updated {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("currency with id %d not found", id))
	}

	result, err := s.currencyRepo.FindCurrencyByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to read back currency %d: %w", id, err)
	}
	if result == nil {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("currency with id %d not found", id))
	}

	s.LogInfo(ctx, "Currency updated", slog.Int64("currency_id", id), slog.String("currency_code", result.Code))
	return result, nil
}

// DeleteCurrency removes the currency with the given id unless an exchange rate uses it.
func (s *CurrencyService) DeleteCurrency(ctx context.Context, id int64) error {
	deleted, err := s.currencyRepo.DeleteCurrency(ctx, id)
	if err != nil {
		if !errors.Is(err, apperrors.ErrReferenced) {
			s.LogError(ctx, err, "Failed to delete currency", slog.Int64("currency_id", id))
		}
		return fmt.Errorf("failed to delete currency %d: %w", id, err)
	}
	if !deleted {
		return apperrors.NewNotFoundError(fmt.Sprintf("currency with id %d not found", id))
	}
	s.LogInfo(ctx, "Currency deleted", slog.Int64("currency_id", id))
	return nil
}

// newCurrency normalizes raw input and checks every field is present and well formed.
func newCurrency(code, name, sign string) (domain.Currency, error) {
	c := domain.Currency{
		Code:     domain.NormalizeCurrencyCode(code),
		FullName: strings.TrimSpace(name),
		Sign:     strings.TrimSpace(sign),
	}
	if err := validateCurrencyCode("currency code", c.Code); err != nil {
		return domain.Currency{}, err
	}
	if err := validateRequired("currency name", c.FullName); err != nil {
		return domain.Currency{}, err
	}
	if err := validateRequired("currency sign", c.Sign); err != nil {
		return domain.Currency{}, err
	}
	return c, nil
}
