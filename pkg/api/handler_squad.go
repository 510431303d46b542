package api

import (
	"net/http"
	"strconv"

	echo "github.com/labstack/echo/v5"

	"github.com/squadflow/squadflow/pkg/models"
)

// createSquadHandler handles POST /api/v1/squads.
func (s *Server) createSquadHandler(c *echo.Context) error {
	var req models.CreateSquadRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if req.OwnerID == "" {
		req.OwnerID = requestOwner(c)
	}

	sq, err := s.squadService.CreateSquad(c.Request().Context(), req)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusCreated, sq)
}

// listSquadsHandler handles GET /api/v1/squads.
func (s *Server) listSquadsHandler(c *echo.Context) error {
	owner := c.QueryParam("owner_id")
	if owner == "" {
		owner = requestOwner(c)
	}
	limit := queryInt(c, "limit", 20)
	offset := queryInt(c, "offset", 0)

	result, err := s.squadService.ListSquads(c.Request().Context(), owner, limit, offset)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, result)
}

// getSquadHandler handles GET /api/v1/squads/:id.
func (s *Server) getSquadHandler(c *echo.Context) error {
	squadID := c.Param("id")
	if squadID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "squad id is required")
	}

	detail, err := s.squadService.GetSquad(c.Request().Context(), squadID)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, detail)
}

// deactivateSquadHandler handles DELETE /api/v1/squads/:id. The squad is
// soft-deleted; its runtimes are stopped and its log stays readable.
func (s *Server) deactivateSquadHandler(c *echo.Context) error {
	squadID := c.Param("id")
	if squadID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "squad id is required")
	}

	if err := s.squadService.DeactivateSquad(c.Request().Context(), squadID); err != nil {
		return mapServiceError(err)
	}
	if s.supervisor != nil {
		s.supervisor.StopSquad(squadID)
	}
	return c.NoContent(http.StatusNoContent)
}

// createAgentHandler handles POST /api/v1/squads/:id/agents.
func (s *Server) createAgentHandler(c *echo.Context) error {
	squadID := c.Param("id")
	if squadID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "squad id is required")
	}
	var req models.CreateAgentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	ag, err := s.squadService.CreateAgent(c.Request().Context(), squadID, req)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusCreated, ag)
}

// listAgentsHandler handles GET /api/v1/squads/:id/agents.
func (s *Server) listAgentsHandler(c *echo.Context) error {
	squadID := c.Param("id")
	if squadID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "squad id is required")
	}

	agents, err := s.squadService.ListAgents(c.Request().Context(), squadID)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, agents)
}

// createRoutingRuleHandler handles POST /api/v1/squads/:id/routing-rules.
func (s *Server) createRoutingRuleHandler(c *echo.Context) error {
	squadID := c.Param("id")
	if squadID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "squad id is required")
	}
	var req models.CreateRoutingRuleRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	rule, err := s.squadService.CreateRoutingRule(c.Request().Context(), squadID, req)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusCreated, rule)
}

// listRoutingRulesHandler handles GET /api/v1/squads/:id/routing-rules.
func (s *Server) listRoutingRulesHandler(c *echo.Context) error {
	squadID := c.Param("id")
	if squadID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "squad id is required")
	}

	rules, err := s.squadService.ListRoutingRules(c.Request().Context(), squadID)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, rules)
}

// startSquadHandler handles POST /api/v1/squads/:id/start.
func (s *Server) startSquadHandler(c *echo.Context) error {
	squadID := c.Param("id")
	if squadID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "squad id is required")
	}
	if s.supervisor == nil {
		return echo.NewHTTPError(http.StatusServiceUnavailable, "agent runtimes not configured")
	}

	if err := s.supervisor.StartSquad(c.Request().Context(), squadID); err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, &SquadLifecycleResponse{SquadID: squadID, Running: true})
}

// stopSquadHandler handles POST /api/v1/squads/:id/stop.
func (s *Server) stopSquadHandler(c *echo.Context) error {
	squadID := c.Param("id")
	if squadID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "squad id is required")
	}
	if s.supervisor == nil {
		return echo.NewHTTPError(http.StatusServiceUnavailable, "agent runtimes not configured")
	}

	s.supervisor.StopSquad(squadID)
	return c.JSON(http.StatusOK, &SquadLifecycleResponse{SquadID: squadID, Running: false})
}

// broadcastHandler handles POST /api/v1/squads/:id/broadcast.
func (s *Server) broadcastHandler(c *echo.Context) error {
	squadID := c.Param("id")
	if squadID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "squad id is required")
	}
	var req models.BroadcastRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	msg, err := s.bus.Broadcast(c.Request().Context(), squadID, req)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusCreated, msg)
}

// queryInt parses an integer query parameter, falling back on absence or
// garbage. Range clamping happens in the service layer.
func queryInt(c *echo.Context, name string, fallback int) int {
	v := c.QueryParam(name)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}
