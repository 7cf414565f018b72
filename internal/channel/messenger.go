package channel

import (
	"context"
	"sync"
)

// MessageHandler answers an encoded message. An empty reply means "not implemented".
type MessageHandler func(ctx context.Context, message []byte) []byte

// Messenger routes encoded messages to handlers registered by channel name
type Messenger struct {
	mu       sync.RWMutex
	handlers map[string]MessageHandler
}

// NewMessenger creates an empty messenger
func NewMessenger() *Messenger {
	return &Messenger{handlers: make(map[string]MessageHandler)}
}

// SetMessageHandler registers h for channel, replacing any previous handler.
// A nil handler unregisters the channel.
func (m *Messenger) SetMessageHandler(channel string, h MessageHandler) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if h == nil {
		delete(m.handlers, channel)
		return
	}
	m.handlers[channel] = h
}

// HasHandler reports whether channel has a registered handler
func (m *Messenger) HasHandler(channel string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.handlers[channel]
	return ok
}

// Send delivers message to the handler of channel and returns its reply
func (m *Messenger) Send(ctx context.Context, channel string, message []byte) []byte {
	m.mu.RLock()
	h, ok := m.handlers[channel]
	m.mu.RUnlock()

	if !ok {
		return nil
	}
	return h(ctx, message)
}
