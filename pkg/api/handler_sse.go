package api

import (
	"net/http"
	"strconv"

	echo "github.com/labstack/echo/v5"

	"github.com/squadflow/squadflow/pkg/events"
)

// squadStreamHandler handles GET /api/v1/streams/squads/:id.
// Streams every frame of the squad over SSE. A reconnecting client sends
// Last-Event-ID and catches up from the outbox before going live.
func (s *Server) squadStreamHandler(c *echo.Context) error {
	squadID := c.Param("id")
	if squadID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "squad id is required")
	}

	// 404 before committing the SSE response.
	if _, err := s.squadService.GetSquad(c.Request().Context(), squadID); err != nil {
		return mapServiceError(err)
	}

	return s.streams.Stream(
		c.Request().Context(),
		c.Response(),
		events.SquadChannel(squadID),
		lastEventID(c),
	)
}

// executionStreamHandler handles GET /api/v1/streams/executions/:id.
// Streams frames of every conversation tagged with the task execution id.
// The id is an external correlation tag, so no existence check applies.
func (s *Server) executionStreamHandler(c *echo.Context) error {
	executionID := c.Param("id")
	if executionID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "execution id is required")
	}

	return s.streams.Stream(
		c.Request().Context(),
		c.Response(),
		events.ExecutionChannel(executionID),
		lastEventID(c),
	)
}

// lastEventID parses the SSE resume header. Zero means a fresh stream.
func lastEventID(c *echo.Context) int64 {
	v := c.Request().Header.Get("Last-Event-ID")
	if v == "" {
		return 0
	}
	id, err := strconv.ParseInt(v, 10, 64)
	if err != nil || id < 0 {
		return 0
	}
	return id
}
