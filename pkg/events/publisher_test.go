package events

import (
	"context"
	"encoding/json"
	"testing"
)

func TestNewEventEncodesPayloadAndStampsHeaders(t *testing.T) {
	type payload struct {
		Name string `json:"name"`
	}

	event, err := NewEvent("thing.changed", "key-1", payload{Name: "test"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if event.Key != "key-1" {
		t.Errorf("expected key key-1, got %s", event.Key)
	}
	if event.Type != "thing.changed" {
		t.Errorf("expected type thing.changed, got %s", event.Type)
	}

	var decoded payload
	if err := json.Unmarshal(event.Value, &decoded); err != nil {
		t.Fatalf("failed to decode value: %v", err)
	}
	if decoded.Name != "test" {
		t.Errorf("expected payload round trip, got %+v", decoded)
	}

	if event.Headers[HeaderEventID] == "" {
		t.Error("expected a generated event id header")
	}
	if event.Headers[HeaderEventType] != "thing.changed" {
		t.Errorf("unexpected event type header: %s", event.Headers[HeaderEventType])
	}
	if event.Headers[HeaderTimestamp] == "" {
		t.Error("expected a timestamp header")
	}
}

func TestNewEventRejectsUnencodablePayload(t *testing.T) {
	if _, err := NewEvent("thing.changed", "key-1", make(chan int)); err == nil {
		t.Error("expected error for unencodable payload")
	}
}

func TestMemoryPublisherRecordsPerTopic(t *testing.T) {
	publisher := NewMemoryPublisher()
	ctx := context.Background()

	event1, _ := NewEvent("a", "1", map[string]string{"v": "1"})
	event2, _ := NewEvent("b", "2", map[string]string{"v": "2"})

	if err := publisher.Publish(ctx, "topic-a", event1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := publisher.Publish(ctx, "topic-b", event2); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := publisher.Published("topic-a"); len(got) != 1 || got[0].Type != "a" {
		t.Errorf("unexpected topic-a events: %v", got)
	}
	if got := publisher.Published("topic-b"); len(got) != 1 || got[0].Type != "b" {
		t.Errorf("unexpected topic-b events: %v", got)
	}
	if got := publisher.Published("topic-c"); len(got) != 0 {
		t.Errorf("expected no events for unused topic, got %d", len(got))
	}
}
