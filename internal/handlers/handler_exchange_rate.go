package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/SscSPs/currency_exchange/internal/apperrors"
	portssvc "github.com/SscSPs/currency_exchange/internal/core/ports/services"
	"github.com/SscSPs/currency_exchange/internal/dto"
	"github.com/SscSPs/currency_exchange/internal/middleware"
	"github.com/gin-gonic/gin"
)

// exchangeRateHandler handles HTTP requests related to exchange rates.
type exchangeRateHandler struct {
	exchangeRateService portssvc.ExchangeRateSvcFacade
}

// newExchangeRateHandler creates a new exchangeRateHandler.
func newExchangeRateHandler(ers portssvc.ExchangeRateSvcFacade) *exchangeRateHandler {
	return &exchangeRateHandler{
		exchangeRateService: ers,
	}
}

// registerExchangeRateRoutes registers routes related to exchange rates.
func registerExchangeRateRoutes(rg *gin.RouterGroup, exchangeRateService portssvc.ExchangeRateSvcFacade, writeGuard gin.HandlerFunc) {
	h := newExchangeRateHandler(exchangeRateService)

	exchangeRates := rg.Group("/exchangeRates")
	{
		exchangeRates.GET("", h.listExchangeRates)
		exchangeRates.GET("/:pairCode", h.getExchangeRate)
		exchangeRates.POST("", writeGuard, h.createExchangeRate)
		exchangeRates.PATCH("", writeGuard, h.updateExchangeRate)
		exchangeRates.PATCH("/", writeGuard, h.updateExchangeRate)
		exchangeRates.PATCH("/:pairCode", writeGuard, h.updateExchangeRate)
	}

	exchangeRate := rg.Group("/exchangeRate")
	{
		exchangeRate.GET("", h.getExchangeRate)
		exchangeRate.GET("/", h.getExchangeRate)
		exchangeRate.GET("/:pairCode", h.getExchangeRate)
	}
}

// listExchangeRates godoc
// @Summary List all exchange rates
// @Description Retrieves every exchange rate with both currencies expanded
// @Tags exchange rates
// @Produce  json
// @Success 200 {array} dto.ExchangeRateResponse
// @Failure 500 {object} map[string]string "Failed to list exchange rates"
// @Router /exchangeRates [get]
func (h *exchangeRateHandler) listExchangeRates(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	rates, err := h.exchangeRateService.ListExchangeRates(c.Request.Context())
	if err != nil {
		respondWithError(c, logger, err, "Failed to list exchange rates")
		return
	}

	logger.Debug("Exchange rates listed", slog.Int("count", len(rates)))
	c.JSON(http.StatusOK, dto.ToListExchangeRateResponse(rates))
}

// getExchangeRate godoc
// @Summary Get an exchange rate
// @Description Retrieves the rate for a pair code such as USDEUR (base followed by target)
// @Tags exchange rates
// @Produce  json
// @Param   pairCode path string true "Pair code (6 letters)" MinLength(6) MaxLength(6)
// @Success 200 {object} dto.ExchangeRateResponse
// @Failure 400 {object} map[string]string "Missing or malformed pair code"
// @Failure 404 {object} map[string]string "Exchange rate not found"
// @Failure 500 {object} map[string]string "Failed to retrieve exchange rate"
// @Router /exchangeRates/{pairCode} [get]
// @Router /exchangeRate/{pairCode} [get]
func (h *exchangeRateHandler) getExchangeRate(c *gin.Context) {
	pairCode := c.Param("pairCode")
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("pair_code", pairCode))

	rate, err := h.exchangeRateService.GetExchangeRate(c.Request.Context(), pairCode)
	if err != nil {
		respondWithError(c, logger, err, "Failed to retrieve exchange rate")
		return
	}

	c.JSON(http.StatusOK, dto.ToExchangeRateResponse(rate))
}

// createExchangeRate godoc
// @Summary Create a new exchange rate
// @Description Adds the rate between two existing currencies. Accepts a JSON body or form values.
// @Tags exchange rates
// @Accept  json
// @Accept  x-www-form-urlencoded
// @Produce  json
// @Param   rate body dto.CreateExchangeRateRequest true "Exchange Rate details"
// @Success 201 {object} dto.ExchangeRateResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 404 {object} map[string]string "Currency not found"
// @Failure 409 {object} map[string]string "Exchange rate already exists"
// @Failure 429 {object} map[string]string "Too many requests"
// @Failure 500 {object} map[string]string "Failed to create exchange rate"
// @Router /exchangeRates [post]
func (h *exchangeRateHandler) createExchangeRate(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateExchangeRateRequest
	if err := c.ShouldBind(&req); err != nil {
		logger.Warn("Failed to bind request for CreateExchangeRate", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": bindingErrorMessage(err)})
		return
	}

	logger = logger.With(
		slog.String("base", req.BaseCurrencyCode),
		slog.String("target", req.TargetCurrencyCode),
	)
	logger.Info("Received request to create exchange rate", slog.String("rate", req.Rate.String()))

	createdRate, err := h.exchangeRateService.CreateExchangeRate(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrCurrencyNotFound):
			logger.Warn("Exchange rate refers to an unknown currency", slog.String("error", err.Error()))
			c.JSON(http.StatusNotFound, gin.H{"error": "One or both currencies do not exist"})
		case errors.Is(err, apperrors.ErrDuplicate):
			logger.Warn("Exchange rate already exists")
			c.JSON(http.StatusConflict, gin.H{"error": "Exchange rate for this currency pair already exists"})
		default:
			respondWithError(c, logger, err, "Failed to create exchange rate")
		}
		return
	}

	logger.Info("Exchange rate created successfully", slog.Int64("rate_id", createdRate.ID))
	c.JSON(http.StatusCreated, dto.ToExchangeRateResponse(createdRate))
}

// updateExchangeRate godoc
// @Summary Update an exchange rate
// @Description Sets a new rate for an existing pair; id, base and target stay unchanged
// @Tags exchange rates
// @Accept  json
// @Accept  x-www-form-urlencoded
// @Produce  json
// @Param   pairCode path string true "Pair code (6 letters)" MinLength(6) MaxLength(6)
// @Param   rate body dto.UpdateExchangeRateRequest true "New rate"
// @Success 200 {object} dto.ExchangeRateResponse
// @Failure 400 {object} map[string]string "Missing pair code or invalid rate"
// @Failure 404 {object} map[string]string "Exchange rate not found"
// @Failure 500 {object} map[string]string "Failed to update exchange rate"
// @Router /exchangeRates/{pairCode} [patch]
func (h *exchangeRateHandler) updateExchangeRate(c *gin.Context) {
	pairCode := c.Param("pairCode")
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("pair_code", pairCode))
	if pairCode == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Currency pair code is required in the path, e.g. /exchangeRates/USDEUR"})
		return
	}

	var req dto.UpdateExchangeRateRequest
	if err := c.ShouldBind(&req); err != nil {
		logger.Warn("Failed to bind request for UpdateExchangeRate", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": bindingErrorMessage(err)})
		return
	}

	updated, err := h.exchangeRateService.UpdateExchangeRate(c.Request.Context(), pairCode, req)
	if err != nil {
		respondWithError(c, logger, err, "Failed to update exchange rate")
		return
	}

	logger.Info("Exchange rate updated successfully", slog.Int64("rate_id", updated.ID))
	c.JSON(http.StatusOK, dto.ToExchangeRateResponse(updated))
}
