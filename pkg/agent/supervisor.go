package agent

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/squadflow/squadflow/ent"
	entagent "github.com/squadflow/squadflow/ent/agent"
	"github.com/squadflow/squadflow/pkg/bus"
	"github.com/squadflow/squadflow/pkg/conversation"
	"github.com/squadflow/squadflow/pkg/events"
	"github.com/squadflow/squadflow/pkg/services"
)

// Supervisor runs one Runtime per active agent of each started squad and
// tears them down together.
type Supervisor struct {
	client     *ent.Client
	bus        *bus.Bus
	machine    *conversation.Machine
	watermarks *services.WatermarkService
	publisher  *events.Publisher
	invoker    ToolInvoker
	limits     Limits

	mu     sync.Mutex
	squads map[string]*squadRuntimes
}

type squadRuntimes struct {
	cancel     context.CancelFunc
	group      *errgroup.Group
	generators []TextGenerator
}

// NewSupervisor creates a supervisor. invoker is the shared backing tool
// invoker; each runtime wraps it with its agent's ACL.
func NewSupervisor(client *ent.Client, b *bus.Bus, machine *conversation.Machine, watermarks *services.WatermarkService, publisher *events.Publisher, invoker ToolInvoker, limits Limits) *Supervisor {
	return &Supervisor{
		client:     client,
		bus:        b,
		machine:    machine,
		watermarks: watermarks,
		publisher:  publisher,
		invoker:    invoker,
		limits:     limits,
		squads:     make(map[string]*squadRuntimes),
	}
}

// StartSquad launches runtimes for every active agent of the squad.
// Idempotent: an already started squad is a no-op.
func (s *Supervisor) StartSquad(ctx context.Context, squadID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.squads[squadID]; ok {
		return nil
	}

	agents, err := s.client.Agent.Query().
		Where(
			entagent.SquadIDEQ(squadID),
			entagent.ActiveEQ(true),
		).
		All(ctx)
	if err != nil {
		return fmt.Errorf("failed to list squad agents: %w", err)
	}
	if len(agents) == 0 {
		return fmt.Errorf("squad %s has no active agents: %w", squadID, services.ErrNotFound)
	}

	runCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))
	group, runCtx := errgroup.WithContext(runCtx)
	sr := &squadRuntimes{cancel: cancel, group: group}

	for _, ag := range agents {
		cfg, err := DecodeGeneratorRef(ag.GeneratorRef)
		if err != nil {
			cancel()
			closeGenerators(sr.generators)
			return fmt.Errorf("agent %s: %w", ag.ID, err)
		}
		generator, err := NewGenerator(cfg)
		if err != nil {
			cancel()
			closeGenerators(sr.generators)
			return fmt.Errorf("agent %s: %w", ag.ID, err)
		}
		sr.generators = append(sr.generators, generator)

		rt := NewRuntime(ag, s.client, s.bus, s.machine, s.watermarks, s.publisher, generator, s.invoker, s.limits)
		group.Go(func() error {
			return rt.Run(runCtx)
		})
	}

	s.squads[squadID] = sr
	slog.Info("Squad runtimes started", "squad_id", squadID, "agents", len(agents))
	return nil
}

// StopSquad cancels the squad's runtimes and waits for them to exit.
func (s *Supervisor) StopSquad(squadID string) {
	s.mu.Lock()
	sr, ok := s.squads[squadID]
	if ok {
		delete(s.squads, squadID)
	}
	s.mu.Unlock()
	if !ok {
		return
	}

	sr.cancel()
	if err := sr.group.Wait(); err != nil {
		slog.Error("Squad runtime exited with error", "squad_id", squadID, "error", err)
	}
	closeGenerators(sr.generators)
	slog.Info("Squad runtimes stopped", "squad_id", squadID)
}

// StopAll stops every started squad.
func (s *Supervisor) StopAll() {
	s.mu.Lock()
	ids := make([]string, 0, len(s.squads))
	for id := range s.squads {
		ids = append(ids, id)
	}
	s.mu.Unlock()

	for _, id := range ids {
		s.StopSquad(id)
	}
}

// Running reports whether the squad's runtimes are up.
func (s *Supervisor) Running(squadID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.squads[squadID]
	return ok
}

func closeGenerators(gens []TextGenerator) {
	for _, g := range gens {
		if err := g.Close(); err != nil {
			slog.Warn("Generator close failed", "error", err)
		}
	}
}
