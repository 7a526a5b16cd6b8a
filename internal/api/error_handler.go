package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/kcimports/inventory-api/internal/api/metrics"
	"github.com/kcimports/inventory-api/internal/core/domain"
)

// errorResponse is the canonical error envelope for all API errors.
type errorResponse struct {
	Error string `json:"error"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps known domain errors to their appropriate HTTP status codes.
//   - Logs unexpected errors internally without leaking details to the client.
//   - Renders a consistent JSON envelope: {"error": "<message>"}.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, msg := resolveError(err, log, c)
		_ = c.JSON(code, errorResponse{Error: msg})
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, string) {
	// Echo's own errors (bind failures, 404 from router, middleware rejections).
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, fmt.Sprintf("%v", he.Message)
	}

	if reason := conflictReason(err); reason != "" {
		metrics.ConflictsTotal.WithLabelValues(reason).Inc()
	}

	// Known domain errors map to deterministic HTTP codes. The message is the
	// error text itself, which carries detail for wrapped conflicts (e.g. the
	// colliding sku list).
	switch {
	case errors.Is(err, domain.ErrUnauthenticated),
		errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusUnauthorized, err.Error()
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden, err.Error()
	case errors.Is(err, domain.ErrInvalidInput),
		errors.Is(err, domain.ErrInvalidContainer),
		errors.Is(err, domain.ErrContainerHasProducts):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, domain.ErrContainerNotFound),
		errors.Is(err, domain.ErrProductNotFound):
		return http.StatusNotFound, err.Error()
	case errors.Is(err, domain.ErrContainerCodeExists),
		errors.Is(err, domain.ErrSKUExists),
		errors.Is(err, domain.ErrEmailExists),
		errors.Is(err, domain.ErrDuplicateImport):
		return http.StatusConflict, err.Error()
	case errors.Is(err, domain.ErrNameGenerationExhausted):
		// Surfaced verbatim: the exhausted attempt budget must be visible.
		return http.StatusInternalServerError, domain.ErrNameGenerationExhausted.Error()
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, "internal server error"
}

// conflictReason labels uniqueness and referential-state rejections for the
// conflicts counter.
func conflictReason(err error) string {
	switch {
	case errors.Is(err, domain.ErrContainerCodeExists):
		return "container_code"
	case errors.Is(err, domain.ErrSKUExists):
		return "sku"
	case errors.Is(err, domain.ErrEmailExists):
		return "email"
	case errors.Is(err, domain.ErrContainerHasProducts):
		return "container_has_products"
	case errors.Is(err, domain.ErrDuplicateImport):
		return "duplicate_import"
	}
	return ""
}
