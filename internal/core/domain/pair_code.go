package domain

import (
	"errors"
	"fmt"
)

// PairCodeLength is the length of a pair code: base code followed by target code.
const PairCodeLength = 2 * CurrencyCodeLength

var (
	// ErrEmptyPairCode is returned when no pair code was supplied.
	ErrEmptyPairCode = errors.New("currency pair code is required")
	// ErrMalformedPairCode is returned when the pair code is not six letters.
	ErrMalformedPairCode = errors.New("currency pair code must be exactly 6 letters, e.g. USDEUR")
)

// CurrencyPair is an ordered (base, target) pair of currency codes.
// It is an addressing key only and is never persisted.
type CurrencyPair struct {
	Base   string
	Target string
}

// ParsePairCode splits a pair code such as "usdeur" into {USD, EUR}.
func ParsePairCode(code string) (CurrencyPair, error) {
	if code == "" {
		return CurrencyPair{}, ErrEmptyPairCode
	}
	if len(code) != PairCodeLength || !isLetters(code) {
		return CurrencyPair{}, fmt.Errorf("%w: got %q", ErrMalformedPairCode, code)
	}
	return CurrencyPair{
		Base:   NormalizeCurrencyCode(code[:CurrencyCodeLength]),
		Target: NormalizeCurrencyCode(code[CurrencyCodeLength:]),
	}, nil
}

// Code returns the six-letter external form of the pair.
func (p CurrencyPair) Code() string {
	return p.Base + p.Target
}

func (p CurrencyPair) String() string {
	return p.Base + "/" + p.Target
}

func isLetters(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if (c < 'A' || c > 'Z') && (c < 'a' || c > 'z') {
			return false
		}
	}
	return true
}
