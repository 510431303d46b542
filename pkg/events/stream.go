package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"sync/atomic"
	"time"
)

// Frame is one SSE frame ready for the wire. ID is zero for transient
// frames, which are delivered without an "id:" field so they do not
// advance the client's resume position.
type Frame struct {
	ID    int64
	Event string
	Data  []byte
}

// ChannelListener is the subset of NotifyListener the stream manager uses
// to manage LISTEN subscriptions as clients come and go.
type ChannelListener interface {
	Subscribe(ctx context.Context, channel string) error
	Unsubscribe(ctx context.Context, channel string) error
}

// catchupPageSize bounds one outbox read during Last-Event-ID replay.
const catchupPageSize = 1000

// subscriber is one connected SSE client.
type subscriber struct {
	id     uint64
	frames chan Frame
}

// StreamManager fans NOTIFY payloads out to connected SSE clients. Each
// client gets a bounded buffer; a client that cannot keep up is dropped
// and reconnects with Last-Event-ID to catch up from the outbox.
type StreamManager struct {
	listener ChannelListener
	catchup  CatchupQuerier

	bufferSize        int
	heartbeatInterval time.Duration

	mu          sync.RWMutex
	subscribers map[string]map[uint64]*subscriber // channel -> subscriber id -> subscriber
	nextID      uint64
}

// StreamConfig holds tunables for SSE delivery.
type StreamConfig struct {
	ClientBufferSize  int
	HeartbeatInterval time.Duration
}

// NewStreamManager creates a stream manager. The listener may be nil in
// tests that dispatch frames directly.
func NewStreamManager(listener ChannelListener, catchup CatchupQuerier, cfg StreamConfig) *StreamManager {
	if cfg.ClientBufferSize <= 0 {
		cfg.ClientBufferSize = 64
	}
	if cfg.HeartbeatInterval <= 0 {
		cfg.HeartbeatInterval = 30 * time.Second
	}
	return &StreamManager{
		listener:          listener,
		catchup:           catchup,
		bufferSize:        cfg.ClientBufferSize,
		heartbeatInterval: cfg.HeartbeatInterval,
		subscribers:       make(map[string]map[uint64]*subscriber),
	}
}

// SetListener wires the LISTEN connection after construction. The manager
// and the listener reference each other, so one side is set late.
func (m *StreamManager) SetListener(listener ChannelListener) {
	m.listener = listener
}

// Dispatch routes a NOTIFY payload to every subscriber of the channel.
// Called by the NotifyListener receive loop.
func (m *StreamManager) Dispatch(channel string, payload []byte) {
	frame, err := decodeFrame(payload)
	if err != nil {
		slog.Warn("Dropping undecodable notify payload", "channel", channel, "error", err)
		return
	}

	m.mu.RLock()
	subs := m.subscribers[channel]
	var dropped []uint64
	for id, sub := range subs {
		select {
		case sub.frames <- frame:
		default:
			dropped = append(dropped, id)
		}
	}
	m.mu.RUnlock()

	for _, id := range dropped {
		slog.Warn("Dropping slow SSE subscriber", "channel", channel, "subscriber_id", id)
		m.unregister(channel, id)
	}
}

// Stream serves one SSE connection: registers the subscriber, replays
// outbox events newer than lastEventID, then streams live frames until the
// client disconnects. Registration happens before catchup so no frame is
// missed; frames already covered by catchup are deduplicated by id.
func (m *StreamManager) Stream(ctx context.Context, w http.ResponseWriter, channel string, lastEventID int64) error {
	flusher, ok := w.(http.Flusher)
	if !ok {
		return fmt.Errorf("response writer does not support flushing")
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("X-Accel-Buffering", "no")
	w.WriteHeader(http.StatusOK)
	flusher.Flush()

	sub := m.register(channel)
	defer m.unregister(channel, sub.id)

	if m.listener != nil {
		if err := m.listener.Subscribe(ctx, channel); err != nil {
			return fmt.Errorf("failed to LISTEN on %s: %w", channel, err)
		}
	}

	var lastSent int64
	if m.catchup != nil && lastEventID > 0 {
		// The outbox backlog can exceed one page, so keep reading from the
		// last delivered id until a short page signals the end.
		sinceID := lastEventID
		for {
			events, err := m.catchup.GetCatchupEvents(ctx, channel, sinceID, catchupPageSize)
			if err != nil {
				return fmt.Errorf("catchup query failed: %w", err)
			}
			for _, ev := range events {
				sinceID = ev.ID
				frame, err := catchupFrame(ev)
				if err != nil {
					slog.Warn("Skipping undecodable catchup event", "event_id", ev.ID, "error", err)
					continue
				}
				if err := writeFrame(w, flusher, frame); err != nil {
					return err
				}
				lastSent = ev.ID
			}
			if len(events) < catchupPageSize {
				break
			}
		}
	}

	heartbeat := time.NewTicker(m.heartbeatInterval)
	defer heartbeat.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-heartbeat.C:
			if err := writeFrame(w, flusher, Frame{Event: FrameHeartbeat, Data: []byte("{}")}); err != nil {
				return err
			}
		case frame, ok := <-sub.frames:
			if !ok {
				// Dropped as a slow consumer; the client reconnects with
				// Last-Event-ID and catches up.
				return nil
			}
			if frame.ID != 0 && frame.ID <= lastSent {
				continue // Already delivered during catchup
			}
			if err := writeFrame(w, flusher, frame); err != nil {
				return err
			}
			if frame.ID != 0 {
				lastSent = frame.ID
			}
		}
	}
}

// SubscriberCount returns the number of active subscribers on a channel.
func (m *StreamManager) SubscriberCount(channel string) int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.subscribers[channel])
}

func (m *StreamManager) register(channel string) *subscriber {
	m.mu.Lock()
	defer m.mu.Unlock()

	sub := &subscriber{
		id:     atomic.AddUint64(&m.nextID, 1),
		frames: make(chan Frame, m.bufferSize),
	}
	if m.subscribers[channel] == nil {
		m.subscribers[channel] = make(map[uint64]*subscriber)
	}
	m.subscribers[channel][sub.id] = sub
	return sub
}

func (m *StreamManager) unregister(channel string, id uint64) {
	m.mu.Lock()
	sub, ok := m.subscribers[channel][id]
	if ok {
		delete(m.subscribers[channel], id)
		close(sub.frames)
	}
	empty := len(m.subscribers[channel]) == 0
	if empty {
		delete(m.subscribers, channel)
	}
	m.mu.Unlock()

	if empty && m.listener != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := m.listener.Unsubscribe(ctx, channel); err != nil {
			slog.Warn("UNLISTEN failed", "channel", channel, "error", err)
		}
	}
}

// decodeFrame extracts the frame id and event type from a notify payload.
func decodeFrame(payload []byte) (Frame, error) {
	var env Envelope
	if err := json.Unmarshal(payload, &env); err != nil {
		return Frame{}, fmt.Errorf("failed to decode frame envelope: %w", err)
	}
	if env.Type == "" {
		return Frame{}, fmt.Errorf("frame missing type field")
	}
	return Frame{ID: env.FrameID, Event: env.Type, Data: payload}, nil
}

// catchupFrame converts an outbox row to a wire frame, injecting the
// frame id the same way the in-transaction publisher does for NOTIFY.
func catchupFrame(ev CatchupEvent) (Frame, error) {
	kind, _ := ev.Payload["type"].(string)
	if kind == "" {
		return Frame{}, fmt.Errorf("outbox payload missing type field")
	}
	ev.Payload["frame_id"] = ev.ID
	data, err := json.Marshal(ev.Payload)
	if err != nil {
		return Frame{}, fmt.Errorf("failed to marshal catchup payload: %w", err)
	}
	return Frame{ID: ev.ID, Event: kind, Data: data}, nil
}

// writeFrame writes one SSE frame and flushes it.
func writeFrame(w http.ResponseWriter, flusher http.Flusher, frame Frame) error {
	if frame.ID != 0 {
		if _, err := fmt.Fprintf(w, "id: %d\n", frame.ID); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintf(w, "event: %s\ndata: %s\n\n", frame.Event, frame.Data); err != nil {
		return err
	}
	flusher.Flush()
	return nil
}
