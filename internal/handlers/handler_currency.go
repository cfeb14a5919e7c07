package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/SscSPs/currency_exchange/internal/apperrors"
	"github.com/SscSPs/currency_exchange/internal/core/domain"
	portssvc "github.com/SscSPs/currency_exchange/internal/core/ports/services"
	"github.com/SscSPs/currency_exchange/internal/dto"
	"github.com/SscSPs/currency_exchange/internal/middleware"
	"github.com/gin-gonic/gin"
)

// currencyHandler handles HTTP requests related to currencies.
type currencyHandler struct {
	currencyService portssvc.CurrencySvcFacade
}

// newCurrencyHandler creates a new currencyHandler.
func newCurrencyHandler(cs portssvc.CurrencySvcFacade) *currencyHandler {
	return &currencyHandler{
		currencyService: cs,
	}
}

// registerCurrencyRoutes registers routes related to currencies.
// writeGuard runs in front of every route that changes data.
func registerCurrencyRoutes(rg *gin.RouterGroup, currencyService portssvc.CurrencySvcFacade, writeGuard gin.HandlerFunc) {
	h := newCurrencyHandler(currencyService)

	currencies := rg.Group("/currencies")
	{
		currencies.GET("", h.listCurrencies)
		currencies.GET("/:code", h.getCurrency)
		currencies.POST("", writeGuard, h.createCurrency)
		currencies.PATCH("/:id", writeGuard, h.updateCurrency)
		currencies.PUT("/:id", writeGuard, h.updateCurrency)
		currencies.DELETE("/:id", writeGuard, h.deleteCurrency)
	}

	// Singular alias. The bare forms answer 400 instead of 404.
	currency := rg.Group("/currency")
	{
		currency.GET("", h.getCurrency)
		currency.GET("/", h.getCurrency)
		currency.GET("/:code", h.getCurrency)
	}
}

// listCurrencies godoc
// @Summary List all currencies
// @Description Retrieves every known currency ordered by code
// @Tags currencies
// @Produce  json
// @Success 200 {array} dto.CurrencyResponse
// @Failure 500 {object} map[string]string "Failed to list currencies"
// @Router /currencies [get]
func (h *currencyHandler) listCurrencies(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	currencies, err := h.currencyService.ListCurrencies(c.Request.Context())
	if err != nil {
		respondWithError(c, logger, err, "Failed to list currencies")
		return
	}

	logger.Debug("Currencies listed", slog.Int("count", len(currencies)))
	c.JSON(http.StatusOK, dto.ToListCurrencyResponse(currencies))
}

// getCurrency godoc
// @Summary Get a currency by code
// @Description Retrieves details for a specific currency by its 3-letter code, ignoring case
// @Tags currencies
// @Produce  json
// @Param   code path string true "Currency Code (3 letters)" MinLength(3) MaxLength(3)
// @Success 200 {object} dto.CurrencyResponse
// @Failure 400 {object} map[string]string "Missing or malformed currency code"
// @Failure 404 {object} map[string]string "Currency not found"
// @Failure 500 {object} map[string]string "Failed to retrieve currency"
// @Router /currencies/{code} [get]
// @Router /currency/{code} [get]
func (h *currencyHandler) getCurrency(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	code := c.Param("code")

	currency, err := h.currencyService.GetCurrencyByCode(c.Request.Context(), code)
	if err != nil {
		respondWithError(c, logger.With(slog.String("currency_code", code)), err, "Failed to retrieve currency")
		return
	}

	c.JSON(http.StatusOK, dto.ToCurrencyResponse(currency))
}

// createCurrency godoc
// @Summary Create a new currency
// @Description Adds a new currency. Accepts a JSON body or form values.
// @Tags currencies
// @Accept  json
// @Accept  x-www-form-urlencoded
// @Produce  json
// @Param   currency body dto.CreateCurrencyRequest true "Currency details"
// @Success 201 {object} dto.CurrencyResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 409 {object} map[string]string "Currency code already exists"
// @Failure 429 {object} map[string]string "Too many requests"
// @Failure 500 {object} map[string]string "Failed to create currency"
// @Router /currencies [post]
func (h *currencyHandler) createCurrency(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateCurrencyRequest
	if err := c.ShouldBind(&req); err != nil {
		logger.Warn("Failed to bind request for CreateCurrency", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": bindingErrorMessage(err)})
		return
	}

	logger = logger.With(slog.String("currency_code", req.Code))
	logger.Info("Received request to create currency")

	currency, err := h.currencyService.CreateCurrency(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			logger.Warn("Currency already exists")
			c.JSON(http.StatusConflict, gin.H{"error": "Currency with code '" + domain.NormalizeCurrencyCode(req.Code) + "' already exists"})
			return
		}
		respondWithError(c, logger, err, "Failed to create currency")
		return
	}

	logger.Info("Currency created successfully", slog.Int64("currency_id", currency.ID))
	c.JSON(http.StatusCreated, dto.ToCurrencyResponse(currency))
}

// updateCurrency godoc
// @Summary Replace a currency
// @Description Replaces code, name and sign of the currency with the given id
// @Tags currencies
// @Accept  json
// @Accept  x-www-form-urlencoded
// @Produce  json
// @Param   id path int true "Currency ID"
// @Param   currency body dto.UpdateCurrencyRequest true "New currency details"
// @Success 200 {object} dto.CurrencyResponse
// @Failure 400 {object} map[string]string "Invalid id or validation error"
// @Failure 404 {object} map[string]string "Currency not found"
// @Failure 409 {object} map[string]string "Currency code already taken"
// @Failure 500 {object} map[string]string "Failed to update currency"
// @Router /currencies/{id} [patch]
// @Router /currencies/{id} [put]
func (h *currencyHandler) updateCurrency(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	id, ok := currencyIDParam(c)
	if !ok {
		return
	}

	var req dto.UpdateCurrencyRequest
	if err := c.ShouldBind(&req); err != nil {
		logger.Warn("Failed to bind request for UpdateCurrency", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": bindingErrorMessage(err)})
		return
	}

	logger = logger.With(slog.Int64("currency_id", id))
	currency, err := h.currencyService.UpdateCurrency(c.Request.Context(), id, req)
	if err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			logger.Warn("Currency code already taken", slog.String("currency_code", req.Code))
			c.JSON(http.StatusConflict, gin.H{"error": "Currency with code '" + domain.NormalizeCurrencyCode(req.Code) + "' already exists"})
			return
		}
		respondWithError(c, logger, err, "Failed to update currency")
		return
	}

	logger.Info("Currency updated successfully")
	c.JSON(http.StatusOK, dto.ToCurrencyResponse(currency))
}

// deleteCurrency godoc
// @Summary Delete a currency
// @Description Removes a currency that no exchange rate refers to
// @Tags currencies
// @Param   id path int true "Currency ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string "Invalid id"
// @Failure 404 {object} map[string]string "Currency not found"
// @Failure 409 {object} map[string]string "Currency is used by an exchange rate"
// @Failure 500 {object} map[string]string "Failed to delete currency"
// @Router /currencies/{id} [delete]
func (h *currencyHandler) deleteCurrency(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	id, ok := currencyIDParam(c)
	if !ok {
		return
	}

	logger = logger.With(slog.Int64("currency_id", id))
	if err := h.currencyService.DeleteCurrency(c.Request.Context(), id); err != nil {
		if errors.Is(err, apperrors.ErrReferenced) {
			logger.Warn("Currency still referenced by exchange rates")
			c.JSON(http.StatusConflict, gin.H{"error": "Currency is used by an exchange rate and cannot be deleted"})
			return
		}
		respondWithError(c, logger, err, "Failed to delete currency")
		return
	}

	logger.Info("Currency deleted successfully")
	c.Status(http.StatusNoContent)
}

func currencyIDParam(c *gin.Context) (int64, bool) {
	raw := c.Param("id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Currency id must be an integer, got '" + raw + "'"})
		return 0, false
	}
	return id, true
}
