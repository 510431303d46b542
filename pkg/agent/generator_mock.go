package agent

import (
	"context"
	"fmt"
	"sync"
)

// MockGenerator is a scripted TextGenerator for tests and local demos.
// Replies are consumed in order; when the script runs out it echoes the
// last user message.
type MockGenerator struct {
	mu       sync.Mutex
	replies  []string
	calls    int
	failWith error
}

// NewMockGenerator creates a mock with an optional reply script.
func NewMockGenerator(replies ...string) *MockGenerator {
	return &MockGenerator{replies: replies}
}

// FailWith makes every subsequent Generate emit an ErrorChunk.
func (m *MockGenerator) FailWith(err error) {
	m.mu.Lock()
	m.failWith = err
	m.mu.Unlock()
}

// Calls returns the number of Generate invocations.
func (m *MockGenerator) Calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}

// Generate emits the next scripted reply as a single text chunk.
func (m *MockGenerator) Generate(ctx context.Context, input *GenerateInput) (<-chan Chunk, error) {
	m.mu.Lock()
	m.calls++
	fail := m.failWith
	var reply string
	if len(m.replies) > 0 {
		reply = m.replies[0]
		if len(m.replies) > 1 {
			m.replies = m.replies[1:]
		}
	} else {
		reply = fmt.Sprintf("ack: %s", lastUserContent(input.Messages))
	}
	m.mu.Unlock()

	ch := make(chan Chunk, 2)
	go func() {
		defer close(ch)
		if fail != nil {
			ch <- &ErrorChunk{Message: fail.Error(), Retryable: false}
			return
		}
		select {
		case ch <- &TextChunk{Content: reply}:
		case <-ctx.Done():
		}
	}()
	return ch, nil
}

// Close is a no-op.
func (m *MockGenerator) Close() error {
	return nil
}

func lastUserContent(msgs []ConversationMessage) string {
	for i := len(msgs) - 1; i >= 0; i-- {
		if msgs[i].Role == "user" {
			return msgs[i].Content
		}
	}
	return ""
}
