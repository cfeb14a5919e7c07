package services

import (
	"context"
)

// ServiceContainer holds instances of all the application services.
// This is the main entry point for accessing service functionality and
// is used throughout the application, particularly in the handlers.
type ServiceContainer struct {
	Currency     CurrencySvcFacade
	ExchangeRate ExchangeRateSvcFacade
	StaticData   StaticDataService
}

// StaticDataService seeds reference currencies and rates into an empty store.
type StaticDataService interface {
	InitializeStaticData(ctx context.Context) error
}
