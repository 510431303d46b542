package api

import (
	"fmt"
	"net/http"
	"testing"

	echo "github.com/labstack/echo/v5"
	"github.com/stretchr/testify/assert"

	"github.com/squadflow/squadflow/pkg/routing"
	"github.com/squadflow/squadflow/pkg/services"
)

func TestMapServiceError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		expectCode int
		expectMsg  string
	}{
		{
			name:       "validation error maps to 400",
			err:        services.NewValidationError("name", "missing field"),
			expectCode: http.StatusBadRequest,
			expectMsg:  "missing field",
		},
		{
			name:       "permission error maps to 403",
			err:        &services.PermissionError{AgentID: "a1", Tool: "shell"},
			expectCode: http.StatusForbidden,
			expectMsg:  "shell",
		},
		{
			name:       "invalid input maps to 400",
			err:        fmt.Errorf("template roster: unknown role %q: %w", "wizard", services.ErrInvalidInput),
			expectCode: http.StatusBadRequest,
			expectMsg:  "wizard",
		},
		{
			name:       "not found maps to 404",
			err:        fmt.Errorf("wrapped: %w", services.ErrNotFound),
			expectCode: http.StatusNotFound,
			expectMsg:  "resource not found",
		},
		{
			name:       "already exists maps to 409",
			err:        fmt.Errorf("wrapped: %w", services.ErrAlreadyExists),
			expectCode: http.StatusConflict,
			expectMsg:  "resource already exists",
		},
		{
			name:       "illegal transition maps to 409",
			err:        fmt.Errorf("answer in state acknowledged: %w", services.ErrIllegalTransition),
			expectCode: http.StatusConflict,
			expectMsg:  "state does not permit",
		},
		{
			name:       "concurrent modification maps to 409",
			err:        fmt.Errorf("wrapped: %w", services.ErrConcurrentModification),
			expectCode: http.StatusConflict,
			expectMsg:  "concurrent modification",
		},
		{
			name:       "no responder maps to 422",
			err:        fmt.Errorf("wrapped: %w", routing.ErrNoResponder),
			expectCode: http.StatusUnprocessableEntity,
			expectMsg:  "no routing rule",
		},
		{
			name:       "backpressure maps to 503",
			err:        fmt.Errorf("wrapped: %w", services.ErrBackpressure),
			expectCode: http.StatusServiceUnavailable,
			expectMsg:  "queue is full",
		},
		{
			name:       "unknown error maps to 500",
			err:        fmt.Errorf("something unexpected happened"),
			expectCode: http.StatusInternalServerError,
			expectMsg:  "internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			he := mapServiceError(tt.err)
			assert.IsType(t, &echo.HTTPError{}, he)
			assert.Equal(t, tt.expectCode, he.Code)
			assert.Contains(t, he.Error(), tt.expectMsg)
		})
	}
}
