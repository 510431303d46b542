package api

import (
	"net/http"

	echo "github.com/labstack/echo/v5"

	"github.com/squadflow/squadflow/ent"
	"github.com/squadflow/squadflow/pkg/models"
)

// MessageResponse pairs an appended message with the conversation state it
// produced.
type MessageResponse struct {
	Message      *ent.Message      `json:"message,omitempty"`
	Conversation *ent.Conversation `json:"conversation"`
}

// openConversationHandler handles POST /api/v1/squads/:id/conversations.
func (s *Server) openConversationHandler(c *echo.Context) error {
	squadID := c.Param("id")
	if squadID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "squad id is required")
	}
	var req models.OpenConversationRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	req.SquadID = squadID

	detail, err := s.machine.Open(c.Request().Context(), req)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusCreated, detail)
}

// listConversationsHandler handles GET /api/v1/squads/:id/conversations.
func (s *Server) listConversationsHandler(c *echo.Context) error {
	squadID := c.Param("id")
	if squadID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "squad id is required")
	}

	params := models.ConversationListParams{
		SquadID:         squadID,
		State:           c.QueryParam("state"),
		TaskExecutionID: c.QueryParam("task_execution_id"),
		Limit:           queryInt(c, "limit", 20),
		Offset:          queryInt(c, "offset", 0),
	}

	result, err := s.conversationService.ListConversations(c.Request().Context(), params)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, result)
}

// getConversationHandler handles GET /api/v1/conversations/:id.
func (s *Server) getConversationHandler(c *echo.Context) error {
	conversationID := c.Param("id")
	if conversationID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "conversation id is required")
	}

	detail, err := s.conversationService.GetConversation(c.Request().Context(), conversationID)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, detail)
}

// postMessageHandler handles POST /api/v1/conversations/:id/messages.
// The message type decides the transition: answer, acknowledgment, or
// follow-up question.
func (s *Server) postMessageHandler(c *echo.Context) error {
	conversationID := c.Param("id")
	if conversationID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "conversation id is required")
	}
	var req models.PostMessageRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if req.Type == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "message type is required")
	}

	msg, conv, err := s.machine.HandleMessage(c.Request().Context(), conversationID, req)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusCreated, &MessageResponse{Message: msg, Conversation: conv})
}

// getMessagesHandler handles GET /api/v1/conversations/:id/messages.
func (s *Server) getMessagesHandler(c *echo.Context) error {
	conversationID := c.Param("id")
	if conversationID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "conversation id is required")
	}

	msgs, err := s.conversationService.GetMessages(c.Request().Context(), conversationID)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, msgs)
}

// escalateHandler handles POST /api/v1/conversations/:id/escalate.
// Returns the child conversation opened at the next escalation level.
func (s *Server) escalateHandler(c *echo.Context) error {
	conversationID := c.Param("id")
	if conversationID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "conversation id is required")
	}

	child, err := s.machine.Escalate(c.Request().Context(), conversationID)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, child)
}

// getTimelineHandler handles GET /api/v1/conversations/:id/timeline.
// Supports incremental reads via from_sequence.
func (s *Server) getTimelineHandler(c *echo.Context) error {
	conversationID := c.Param("id")
	if conversationID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "conversation id is required")
	}
	fromSequence := queryInt(c, "from_sequence", 0)
	limit := queryInt(c, "limit", 0)

	timeline, err := s.eventLog.ReadTimeline(c.Request().Context(), conversationID, fromSequence, limit)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, timeline)
}
