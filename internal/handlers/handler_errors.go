package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"unicode"

	"github.com/SscSPs/currency_exchange/internal/apperrors"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// respondWithError writes err as {"error": ...} using the status its sentinel maps to.
// Server errors are logged and reported with the generic fallback message only.
func respondWithError(c *gin.Context, logger *slog.Logger, err error, fallback string) {
	status := apperrors.StatusCode(err)
	if status >= 500 {
		logger.Error(fallback, slog.String("error", err.Error()))
		c.JSON(status, gin.H{"error": fallback})
		return
	}
	logger.Warn("Request rejected", slog.Int("status", status), slog.String("error", err.Error()))
	c.JSON(status, gin.H{"error": clientMessage(err)})
}

// clientMessage strips the wrapping added on the way up and keeps the part meant for the caller.
func clientMessage(err error) string {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) && appErr.Message != "" {
		return appErr.Message
	}
	msg := err.Error()
	if i := strings.Index(msg, apperrors.ErrValidation.Error()+": "); i >= 0 {
		return msg[i+len(apperrors.ErrValidation.Error())+2:]
	}
	return msg
}

// bindingErrorMessage turns a ShouldBind failure into a message naming the offending field.
func bindingErrorMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return "Invalid request format: " + err.Error()
	}
	fe := verrs[0]
	field := lowerFirst(fe.Field())
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("Missing required field '%s'", field)
	case "len":
		return fmt.Sprintf("Field '%s' must be exactly %s characters", field, fe.Param())
	case "alpha":
		return fmt.Sprintf("Field '%s' must contain only letters", field)
	default:
		return fmt.Sprintf("Field '%s' is invalid", field)
	}
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	r[0] = unicode.ToLower(r[0])
	return string(r)
}
