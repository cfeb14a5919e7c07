package domain

import "strings"

// CurrencyCodeLength is the number of letters in a currency code (e.g. "USD").
const CurrencyCodeLength = 3

// Currency represents a supported currency in the domain.
type Currency struct {
	ID       int64  `json:"id"`
	Code     string `json:"code"`     // Unique, uppercase (e.g., "USD")
	FullName string `json:"fullName"` // e.g., "US Dollar"
	Sign     string `json:"sign"`     // e.g., "$"
}

// NormalizeCurrencyCode returns the canonical form used for lookups and uniqueness checks.
func NormalizeCurrencyCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}
