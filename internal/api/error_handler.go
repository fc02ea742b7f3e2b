package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/nyayasetu/nyayasetu/internal/core/domain"
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
	// Echo's own errors (bind failures, validation, 404 from router, etc.)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, fmt.Sprintf("%v", he.Message)
	}

	if errors.Is(err, domain.ErrInvalidCredentials) {
		return http.StatusUnauthorized, "invalid credentials"
	}
	if errors.Is(err, domain.ErrPersistence) {
		log.Error().
			Err(err).
			Str("method", c.Request().Method).
			Str("path", c.Path()).
			Msg("session persistence failed")
		return http.StatusServiceUnavailable, "could not save session, please retry"
	}

	// Known domain errors → deterministic HTTP codes, sentinel text as message.
	for _, m := range domainStatus {
		if errors.Is(err, m.err) {
			return m.code, m.err.Error()
		}
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, "internal server error"
}

var domainStatus = []struct {
	err  error
	code int
}{
	{domain.ErrUnknownModule, http.StatusBadRequest},
	{domain.ErrUnsupportedLocale, http.StatusBadRequest},
	{domain.ErrUnknownApplicationStatus, http.StatusBadRequest},
	{domain.ErrApplicationNotFound, http.StatusNotFound},
	{domain.ErrAccountNotFound, http.StatusNotFound},
	{domain.ErrApplicationFinalized, http.StatusConflict},
	{domain.ErrApplicationNotApproved, http.StatusConflict},
	{domain.ErrRoleImmutable, http.StatusConflict},
	{domain.ErrAccountExists, http.StatusConflict},
	{domain.ErrSubmissionInFlight, http.StatusConflict},
	{domain.ErrDirectoryUnavailable, http.StatusNotImplemented},
}
