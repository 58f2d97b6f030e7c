package notify

import (
	"context"
	"sync"
)

// InMemoryMailer records messages instead of sending them.
type InMemoryMailer struct {
	mu   sync.Mutex
	sent []Message
}

// NewInMemoryMailer constructs an empty InMemoryMailer.
func NewInMemoryMailer() *InMemoryMailer {
	return &InMemoryMailer{}
}

// Send records the message.
func (m *InMemoryMailer) Send(_ context.Context, msg Message) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sent = append(m.sent, msg)
	return nil
}

// Sent returns a copy of every recorded message, oldest first.
func (m *InMemoryMailer) Sent() []Message {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]Message{}, m.sent...)
}
