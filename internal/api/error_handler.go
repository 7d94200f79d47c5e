package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/anvaya/crm-backend/internal/api/handler"
	"github.com/anvaya/crm-backend/internal/core/domain"
)

// errorResponse is the canonical error envelope for all API errors.
type errorResponse struct {
	Error string `json:"error"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps domain error kinds to their HTTP status codes.
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
	// Echo's own errors (bind failures, 404 from router, etc.)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, fmt.Sprintf("%v", he.Message)
	}

	// Domain errors carry their own caller-facing message.
	if code, msg, ok := domainStatus(err); ok {
		return code, msg
	}

	// Unexpected error: log the real cause, return the route's generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	var fe *handler.FailureError
	if errors.As(err, &fe) {
		return http.StatusInternalServerError, fe.Message
	}
	return http.StatusInternalServerError, "internal server error"
}

// domainStatus maps a *domain.Error to its status code and message.
func domainStatus(err error) (int, string, bool) {
	var de *domain.Error
	if !errors.As(err, &de) {
		return 0, "", false
	}
	switch {
	case errors.Is(de, domain.ErrInvalidInput), errors.Is(de, domain.ErrAlreadyExists):
		return http.StatusBadRequest, de.Msg, true
	case errors.Is(de, domain.ErrNotFound):
		return http.StatusNotFound, de.Msg, true
	case errors.Is(de, domain.ErrConflict):
		return http.StatusConflict, de.Msg, true
	}
	return 0, "", false
}

// statusCode resolves the status a handler error will be rendered with.
// The prometheus middleware sees errors before the error handler runs.
func statusCode(_ echo.Context, err error) int {
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code
	}
	if code, _, ok := domainStatus(err); ok {
		return code
	}
	return http.StatusInternalServerError
}
