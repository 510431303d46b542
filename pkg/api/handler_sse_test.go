package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	echo "github.com/labstack/echo/v5"
	"github.com/stretchr/testify/assert"
)

func TestLastEventID(t *testing.T) {
	tests := []struct {
		name     string
		header   string
		expected int64
	}{
		{name: "absent header means fresh stream", header: "", expected: 0},
		{name: "numeric id is parsed", header: "42", expected: 42},
		{name: "garbage falls back to zero", header: "not-a-number", expected: 0},
		{name: "negative falls back to zero", header: "-7", expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set("Last-Event-ID", tt.header)
			}
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			assert.Equal(t, tt.expected, lastEventID(c))
		})
	}
}
