package events

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Header keys attached to every published event.
const (
	HeaderEventID   = "event-id"
	HeaderEventType = "event-type"
	HeaderSource    = "source"
	HeaderTimestamp = "timestamp"
)

// Event is a serialized domain change handed to the persistence boundary.
type Event struct {
	Key       string
	Type      string
	Value     []byte
	Headers   map[string]string
	Timestamp time.Time
}

// NewEvent JSON-encodes the payload and stamps identity headers.
func NewEvent(eventType, key string, payload any) (Event, error) {
	value, err := json.Marshal(payload)
	if err != nil {
		return Event{}, err
	}
	now := time.Now()
	return Event{
		Key:       key,
		Type:      eventType,
		Value:     value,
		Timestamp: now,
		Headers: map[string]string{
			HeaderEventID:   uuid.New().String(),
			HeaderEventType: eventType,
			HeaderTimestamp: now.Format(time.RFC3339),
		},
	}, nil
}

// Publisher is the fire-and-forget persistence collaborator: it accepts a
// serialized change and may fail, but never feeds state back into the
// domain stores.
type Publisher interface {
	Publish(ctx context.Context, topic string, event Event) error
	Close() error
}

// MemoryPublisher records published events in memory. It backs local runs
// without a broker and lets tests assert on the handed-off payloads.
type MemoryPublisher struct {
	mu     sync.Mutex
	events map[string][]Event
}

func NewMemoryPublisher() *MemoryPublisher {
	return &MemoryPublisher{events: make(map[string][]Event)}
}

func (p *MemoryPublisher) Publish(_ context.Context, topic string, event Event) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events[topic] = append(p.events[topic], event)
	return nil
}

func (p *MemoryPublisher) Close() error {
	return nil
}

// Published returns a copy of the events recorded for a topic.
func (p *MemoryPublisher) Published(topic string) []Event {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]Event, len(p.events[topic]))
	copy(out, p.events[topic])
	return out
}
