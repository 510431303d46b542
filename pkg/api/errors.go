package api

import (
	"errors"
	"log/slog"
	"net/http"

	echo "github.com/labstack/echo/v5"

	"github.com/squadflow/squadflow/pkg/routing"
	"github.com/squadflow/squadflow/pkg/services"
)

// mapServiceError maps service-layer errors to HTTP error responses.
func mapServiceError(err error) *echo.HTTPError {
	var validErr *services.ValidationError
	if errors.As(err, &validErr) {
		return echo.NewHTTPError(http.StatusBadRequest, validErr.Error())
	}
	var permErr *services.PermissionError
	if errors.As(err, &permErr) {
		return echo.NewHTTPError(http.StatusForbidden, permErr.Error())
	}
	if errors.Is(err, services.ErrInvalidInput) {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if errors.Is(err, services.ErrNotFound) {
		return echo.NewHTTPError(http.StatusNotFound, "resource not found")
	}
	if errors.Is(err, services.ErrAlreadyExists) {
		return echo.NewHTTPError(http.StatusConflict, "resource already exists")
	}
	if errors.Is(err, services.ErrIllegalTransition) {
		return echo.NewHTTPError(http.StatusConflict, "conversation state does not permit this operation")
	}
	if errors.Is(err, services.ErrConcurrentModification) {
		return echo.NewHTTPError(http.StatusConflict, "concurrent modification, retry the request")
	}
	if errors.Is(err, routing.ErrNoResponder) {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, "no routing rule matches the question")
	}
	if errors.Is(err, services.ErrBackpressure) {
		return echo.NewHTTPError(http.StatusServiceUnavailable, "recipient queue is full, retry later")
	}

	// Unexpected error
	slog.Error("Unexpected service error", "error", err)
	return echo.NewHTTPError(http.StatusInternalServerError, "internal server error")
}
