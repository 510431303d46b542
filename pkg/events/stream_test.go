package events

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubCatchup returns canned outbox rows for resume tests. When pages is
// set, each call serves the next page; otherwise events is served on every
// call.
type stubCatchup struct {
	events []CatchupEvent
	pages  [][]CatchupEvent
	err    error

	mu       sync.Mutex
	sinceIDs []int64
}

func (s *stubCatchup) GetCatchupEvents(_ context.Context, _ string, sinceID int64, _ int) ([]CatchupEvent, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sinceIDs = append(s.sinceIDs, sinceID)
	if s.err != nil {
		return nil, s.err
	}
	if s.pages != nil {
		if len(s.pages) == 0 {
			return nil, nil
		}
		page := s.pages[0]
		s.pages = s.pages[1:]
		return page, nil
	}
	return s.events, nil
}

// safeRecorder serializes writes so tests can read the body while the
// stream goroutine is still writing.
type safeRecorder struct {
	mu  sync.Mutex
	rec *httptest.ResponseRecorder
}

func newSafeRecorder() *safeRecorder {
	return &safeRecorder{rec: httptest.NewRecorder()}
}

func (s *safeRecorder) Header() http.Header {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rec.Header()
}

func (s *safeRecorder) Write(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rec.Write(p)
}

func (s *safeRecorder) WriteHeader(code int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rec.WriteHeader(code)
}

func (s *safeRecorder) Flush() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rec.Flush()
}

func (s *safeRecorder) BodyString() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rec.Body.String()
}

func (s *safeRecorder) ContentType() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rec.Header().Get("Content-Type")
}

func notifyPayload(t *testing.T, frameID int64, kind string, extra map[string]any) []byte {
	t.Helper()
	m := map[string]any{"type": kind}
	if frameID != 0 {
		m["frame_id"] = frameID
	}
	for k, v := range extra {
		m[k] = v
	}
	data, err := json.Marshal(m)
	require.NoError(t, err)
	return data
}

func TestDecodeFrame(t *testing.T) {
	frame, err := decodeFrame([]byte(`{"frame_id":7,"type":"state_changed","from":"waiting","to":"answered"}`))
	require.NoError(t, err)
	assert.Equal(t, int64(7), frame.ID)
	assert.Equal(t, FrameStateChanged, frame.Event)

	// Transient frames have no frame_id.
	frame, err = decodeFrame([]byte(`{"type":"answer_streaming","delta":"hel"}`))
	require.NoError(t, err)
	assert.Equal(t, int64(0), frame.ID)
	assert.Equal(t, FrameAnswerStreaming, frame.Event)

	_, err = decodeFrame([]byte(`{"frame_id":1}`))
	assert.Error(t, err, "missing type must be rejected")

	_, err = decodeFrame([]byte(`not-json`))
	assert.Error(t, err)
}

func TestStream_LiveFrames(t *testing.T) {
	m := NewStreamManager(nil, nil, StreamConfig{ClientBufferSize: 8, HeartbeatInterval: time.Minute})

	ctx, cancel := context.WithCancel(context.Background())
	rec := newSafeRecorder()

	done := make(chan error, 1)
	go func() {
		done <- m.Stream(ctx, rec, "squad:s1", 0)
	}()

	// Wait for registration, then dispatch.
	require.Eventually(t, func() bool {
		return m.SubscriberCount("squad:s1") == 1
	}, time.Second, 5*time.Millisecond)

	m.Dispatch("squad:s1", notifyPayload(t, 3, FrameStateChanged, map[string]any{"to": "answered"}))
	m.Dispatch("squad:s1", notifyPayload(t, 0, FrameAnswerStreaming, map[string]any{"delta": "hi"}))

	require.Eventually(t, func() bool {
		return strings.Contains(rec.BodyString(), "event: answer_streaming")
	}, time.Second, 5*time.Millisecond)

	cancel()
	require.NoError(t, <-done)

	body := rec.BodyString()
	assert.Contains(t, body, "id: 3\n")
	assert.Contains(t, body, "event: state_changed")
	// Transient frame carries no id field.
	assert.NotContains(t, body, "id: 0")
	assert.Equal(t, "text/event-stream", rec.ContentType())
	assert.Equal(t, 0, m.SubscriberCount("squad:s1"))
}

func TestStream_CatchupThenDedup(t *testing.T) {
	catchup := &stubCatchup{events: []CatchupEvent{
		{ID: 5, Payload: map[string]any{"type": FrameStateChanged, "to": "waiting"}},
		{ID: 6, Payload: map[string]any{"type": FrameMessage, "content": "q"}},
	}}
	m := NewStreamManager(nil, catchup, StreamConfig{ClientBufferSize: 8, HeartbeatInterval: time.Minute})

	ctx, cancel := context.WithCancel(context.Background())
	rec := newSafeRecorder()

	done := make(chan error, 1)
	go func() {
		done <- m.Stream(ctx, rec, "squad:s1", 4)
	}()

	require.Eventually(t, func() bool {
		return m.SubscriberCount("squad:s1") == 1
	}, time.Second, 5*time.Millisecond)

	// Frame 6 arrived during catchup too; it must not be sent twice.
	m.Dispatch("squad:s1", notifyPayload(t, 6, FrameMessage, map[string]any{"content": "q"}))
	m.Dispatch("squad:s1", notifyPayload(t, 7, FrameStateChanged, map[string]any{"to": "answered"}))

	require.Eventually(t, func() bool {
		return strings.Contains(rec.BodyString(), "id: 7\n")
	}, time.Second, 5*time.Millisecond)

	cancel()
	require.NoError(t, <-done)

	catchup.mu.Lock()
	assert.Equal(t, []int64{4}, catchup.sinceIDs)
	catchup.mu.Unlock()

	body := rec.BodyString()
	assert.Contains(t, body, "id: 5\n")
	assert.Equal(t, 1, strings.Count(body, "id: 6\n"), "catchup frame must not repeat")
}

func TestStream_CatchupPagesThroughLargeBacklog(t *testing.T) {
	first := make([]CatchupEvent, catchupPageSize)
	for i := range first {
		first[i] = CatchupEvent{ID: int64(3 + i), Payload: map[string]any{"type": FrameMessage, "content": "m"}}
	}
	second := []CatchupEvent{
		{ID: int64(3 + catchupPageSize), Payload: map[string]any{"type": FrameStateChanged, "to": "answered"}},
	}
	catchup := &stubCatchup{pages: [][]CatchupEvent{first, second}}
	m := NewStreamManager(nil, catchup, StreamConfig{ClientBufferSize: 8, HeartbeatInterval: time.Minute})

	ctx, cancel := context.WithCancel(context.Background())
	rec := newSafeRecorder()

	done := make(chan error, 1)
	go func() {
		done <- m.Stream(ctx, rec, "squad:s1", 2)
	}()

	// The row past the first page boundary must still arrive.
	require.Eventually(t, func() bool {
		return strings.Contains(rec.BodyString(), fmt.Sprintf("id: %d\n", 3+catchupPageSize))
	}, 5*time.Second, 5*time.Millisecond)

	cancel()
	require.NoError(t, <-done)

	catchup.mu.Lock()
	assert.Equal(t, []int64{2, int64(2 + catchupPageSize)}, catchup.sinceIDs,
		"second read must resume from the last delivered id")
	catchup.mu.Unlock()

	body := rec.BodyString()
	assert.Contains(t, body, "id: 3\n")
	assert.Equal(t, catchupPageSize+1, strings.Count(body, "id: "))
}

func TestDispatch_DropsSlowSubscriber(t *testing.T) {
	m := NewStreamManager(nil, nil, StreamConfig{ClientBufferSize: 1, HeartbeatInterval: time.Minute})

	// Register without a draining reader.
	sub := m.register("squad:s1")
	require.Equal(t, 1, m.SubscriberCount("squad:s1"))

	m.Dispatch("squad:s1", notifyPayload(t, 1, FrameMessage, nil))
	m.Dispatch("squad:s1", notifyPayload(t, 2, FrameMessage, nil))

	assert.Equal(t, 0, m.SubscriberCount("squad:s1"))
	// The channel is closed so a reader sees the drop.
	frame, ok := <-sub.frames
	assert.True(t, ok)
	assert.Equal(t, int64(1), frame.ID)
	_, ok = <-sub.frames
	assert.False(t, ok)
}

func TestCatchupFrame_InjectsFrameID(t *testing.T) {
	frame, err := catchupFrame(CatchupEvent{ID: 9, Payload: map[string]any{"type": FrameMessage, "content": "x"}})
	require.NoError(t, err)
	assert.Equal(t, int64(9), frame.ID)
	assert.Equal(t, FrameMessage, frame.Event)
	assert.Contains(t, string(frame.Data), `"frame_id":9`)

	_, err = catchupFrame(CatchupEvent{ID: 9, Payload: map[string]any{"content": "x"}})
	assert.Error(t, err, "payload without type must be rejected")
}

func TestWithFrameID(t *testing.T) {
	out, err := WithFrameID([]byte(`{"type":"message","content":"hi"}`), 12)
	require.NoError(t, err)

	var m map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &m))
	assert.Equal(t, float64(12), m["frame_id"])
	assert.Equal(t, "hi", m["content"])
}

func TestTruncateIfNeeded(t *testing.T) {
	small := `{"type":"message","content":"hi"}`
	out, err := TruncateIfNeeded(small)
	require.NoError(t, err)
	assert.Equal(t, small, out)

	big := fmt.Sprintf(`{"type":"message","frame_id":4,"conversation_id":"c1","content":"%s"}`,
		strings.Repeat("x", notifyLimit))
	out, err = TruncateIfNeeded(big)
	require.NoError(t, err)
	assert.Less(t, len(out), notifyLimit)

	var m map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &m))
	assert.Equal(t, "message", m["type"])
	assert.Equal(t, true, m["truncated"])
	assert.Equal(t, float64(4), m["frame_id"])
	assert.Equal(t, "c1", m["conversation_id"])
	assert.Nil(t, m["content"], "body is re-read from catchup")
}
