// Squadflow server — HTTP API, conversation state machine, agent runtimes,
// and SSE live streams for role-based agent squads.
package main

import (
	"context"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/squadflow/squadflow/pkg/agent"
	"github.com/squadflow/squadflow/pkg/api"
	"github.com/squadflow/squadflow/pkg/bus"
	"github.com/squadflow/squadflow/pkg/cleanup"
	"github.com/squadflow/squadflow/pkg/config"
	"github.com/squadflow/squadflow/pkg/conversation"
	"github.com/squadflow/squadflow/pkg/database"
	"github.com/squadflow/squadflow/pkg/events"
	"github.com/squadflow/squadflow/pkg/routing"
	"github.com/squadflow/squadflow/pkg/services"
)

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func main() {
	configDir := flag.String("config-dir",
		getEnv("CONFIG_DIR", "./deploy/config"),
		"Path to configuration directory")
	flag.Parse()

	// Load .env file from config directory
	envPath := filepath.Join(*configDir, ".env")
	if err := godotenv.Load(envPath); err != nil {
		slog.Warn("Could not load .env file, continuing with existing environment",
			"path", envPath, "error", err)
	} else {
		slog.Info("Loaded environment", "path", envPath)
	}

	ctx := context.Background()

	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}
	slog.Info("Starting squadflow", "http_addr", cfg.HTTPAddr, "bus", cfg.BusKind)

	// 2. Initialize database
	dbConfig, err := database.LoadConfigFromEnv()
	if err != nil {
		slog.Error("Failed to load database config", "error", err)
		os.Exit(1)
	}

	dbClient, err := database.NewClient(ctx, dbConfig)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			slog.Error("Error closing database client", "error", err)
		}
	}()
	slog.Info("Connected to PostgreSQL database")

	// 3. Domain services
	squadService := services.NewSquadService(dbClient.Client)
	templateService := services.NewTemplateService(dbClient.Client)
	conversationService := services.NewConversationService(dbClient.Client)
	eventLog := services.NewEventLogService(dbClient.Client)
	eventService := services.NewEventService(dbClient.Client)
	watermarkService := services.NewWatermarkService(dbClient.Client)
	slog.Info("Services initialized")

	// 4. Routing cache, invalidated on rule writes
	routes := routing.NewCache(squadService.LoadRoutingSnapshot)
	squadService.SetRuleChangeHook(routes.Invalidate)

	// 5. State machine and message bus
	machine := conversation.NewMachine(dbClient.Client, eventLog, routes, conversation.Timeouts{
		Answer: cfg.AnswerTimeout,
		Ack:    cfg.AckTimeout,
	})
	messageBus := bus.New(dbClient.Client, eventLog, watermarkService, bus.Config{
		QueueSize:  cfg.BusQueueSize,
		MaxRetries: uint64(cfg.BusMaxRetries),
	})
	machine.SetDeliverer(messageBus)

	// 6. Streaming infrastructure
	streams := events.NewStreamManager(nil, eventService, events.StreamConfig{
		ClientBufferSize:  cfg.SSEClientBuffer,
		HeartbeatInterval: cfg.SSEHeartbeat,
	})
	notifyListener := events.NewNotifyListener(dbConfig.DSN(), streams)
	if err := notifyListener.Start(ctx); err != nil {
		slog.Error("Failed to start NotifyListener", "error", err)
		os.Exit(1)
	}
	defer notifyListener.Stop(ctx)
	streams.SetListener(notifyListener)
	slog.Info("Streaming infrastructure initialized")

	// 7. Agent runtimes
	publisher := events.NewPublisher(dbClient.DB())
	invoker := agent.NewFuncInvoker()
	supervisor := agent.NewSupervisor(dbClient.Client, messageBus, machine, watermarkService, publisher, invoker, agent.Limits{
		StepBudget:    cfg.AgentStepBudget,
		HistoryWindow: cfg.AgentHistoryWindow,
	})
	defer supervisor.StopAll()

	// 8. Squad templates from disk
	if count, err := templateService.LoadFromDir(ctx, cfg.TemplateDir); err != nil {
		slog.Error("Failed to load squad templates", "dir", cfg.TemplateDir, "error", err)
		os.Exit(1)
	} else if count > 0 {
		slog.Info("Squad templates loaded", "dir", cfg.TemplateDir, "count", count)
	}

	// 9. Conversation timers and outbox retention
	timers := conversation.NewTimerService(dbClient.Client, machine)
	timers.Start(ctx)
	defer timers.Stop()

	retention := cleanup.NewService(eventService, cfg.EventTTL, cfg.CleanupInterval)
	retention.Start(ctx)
	defer retention.Stop()

	// 10. HTTP server
	httpServer := api.NewServer(api.Deps{
		Config:              cfg,
		DB:                  dbClient,
		SquadService:        squadService,
		TemplateService:     templateService,
		ConversationService: conversationService,
		EventLog:            eventLog,
		Machine:             machine,
		Bus:                 messageBus,
		Streams:             streams,
		Listener:            notifyListener,
		Supervisor:          supervisor,
	})

	errCh := make(chan error, 1)
	go func() {
		if err := httpServer.Start(cfg.HTTPAddr); err != nil && err != http.ErrServerClosed {
			slog.Error("HTTP server error", "error", err)
			errCh <- err
		}
	}()

	slog.Info("Squadflow started successfully")

	// 11. Wait for shutdown signal or server error
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)

	select {
	case sig := <-sigCh:
		slog.Info("Shutdown signal received", "signal", sig)
	case err := <-errCh:
		slog.Error("Server error triggered shutdown", "error", err)
	}

	// 12. Graceful shutdown. Timers stop first so no new transitions fire,
	// then runtimes drain, then the HTTP server closes. The deferred stops
	// handle the listener and retention loop.
	timers.Stop()
	supervisor.StopAll()

	httpShutdownCtx, httpCancel := context.WithTimeout(ctx, 5*time.Second)
	defer httpCancel()
	if err := httpServer.Shutdown(httpShutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	}

	slog.Info("Shutdown complete")
}
