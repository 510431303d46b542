// Package api exposes the HTTP surface: squad and template management,
// conversation operations, and SSE live streams.
package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	echo "github.com/labstack/echo/v5"

	"github.com/squadflow/squadflow/pkg/agent"
	"github.com/squadflow/squadflow/pkg/bus"
	"github.com/squadflow/squadflow/pkg/config"
	"github.com/squadflow/squadflow/pkg/conversation"
	"github.com/squadflow/squadflow/pkg/database"
	"github.com/squadflow/squadflow/pkg/events"
	"github.com/squadflow/squadflow/pkg/services"
)

// Server wires the service layer to the HTTP routes.
type Server struct {
	cfg      *config.Config
	dbClient *database.Client

	squadService        *services.SquadService
	templateService     *services.TemplateService
	conversationService *services.ConversationService
	eventLog            *services.EventLogService

	machine    *conversation.Machine
	bus        *bus.Bus
	streams    *events.StreamManager
	listener   *events.NotifyListener
	supervisor *agent.Supervisor

	echo       *echo.Echo
	httpServer *http.Server
}

// Deps carries everything the server needs. All fields are required except
// Listener, which may be nil in tests.
type Deps struct {
	Config              *config.Config
	DB                  *database.Client
	SquadService        *services.SquadService
	TemplateService     *services.TemplateService
	ConversationService *services.ConversationService
	EventLog            *services.EventLogService
	Machine             *conversation.Machine
	Bus                 *bus.Bus
	Streams             *events.StreamManager
	Listener            *events.NotifyListener
	Supervisor          *agent.Supervisor
}

// NewServer creates the API server and registers its routes.
func NewServer(deps Deps) *Server {
	s := &Server{
		cfg:                 deps.Config,
		dbClient:            deps.DB,
		squadService:        deps.SquadService,
		templateService:     deps.TemplateService,
		conversationService: deps.ConversationService,
		eventLog:            deps.EventLog,
		machine:             deps.Machine,
		bus:                 deps.Bus,
		streams:             deps.Streams,
		listener:            deps.Listener,
		supervisor:          deps.Supervisor,
	}

	e := echo.New()
	e.Use(securityHeaders())
	s.registerRoutes(e)
	s.echo = e
	return s
}

func (s *Server) registerRoutes(e *echo.Echo) {
	e.GET("/health", s.healthHandler)

	v1 := e.Group("/api/v1")

	v1.POST("/squads", s.createSquadHandler)
	v1.GET("/squads", s.listSquadsHandler)
	v1.GET("/squads/:id", s.getSquadHandler)
	v1.DELETE("/squads/:id", s.deactivateSquadHandler)
	v1.POST("/squads/:id/agents", s.createAgentHandler)
	v1.GET("/squads/:id/agents", s.listAgentsHandler)
	v1.POST("/squads/:id/routing-rules", s.createRoutingRuleHandler)
	v1.GET("/squads/:id/routing-rules", s.listRoutingRulesHandler)
	v1.POST("/squads/:id/start", s.startSquadHandler)
	v1.POST("/squads/:id/stop", s.stopSquadHandler)
	v1.POST("/squads/:id/broadcast", s.broadcastHandler)

	v1.POST("/squads/:id/conversations", s.openConversationHandler)
	v1.GET("/squads/:id/conversations", s.listConversationsHandler)
	v1.GET("/conversations/:id", s.getConversationHandler)
	v1.POST("/conversations/:id/messages", s.postMessageHandler)
	v1.GET("/conversations/:id/messages", s.getMessagesHandler)
	v1.POST("/conversations/:id/escalate", s.escalateHandler)
	v1.GET("/conversations/:id/timeline", s.getTimelineHandler)

	v1.GET("/templates", s.listTemplatesHandler)
	v1.GET("/templates/:slug", s.getTemplateHandler)
	v1.PUT("/templates/:slug", s.upsertTemplateHandler)
	v1.POST("/templates/:slug/apply", s.applyTemplateHandler)

	v1.GET("/streams/squads/:id", s.squadStreamHandler)
	v1.GET("/streams/executions/:id", s.executionStreamHandler)
}

// Start runs the HTTP server until Shutdown is called.
func (s *Server) Start(addr string) error {
	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           s.echo,
		ReadHeaderTimeout: 10 * time.Second,
	}
	slog.Info("API server listening", "addr", addr)
	err := s.httpServer.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown drains in-flight requests and stops the listener.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer == nil {
		return nil
	}
	return s.httpServer.Shutdown(ctx)
}
