package events

import (
	"context"
	"sync"
	"time"
)

type Type string

const (
	OrderStatusChanged Type = "order.status_changed"
	PaymentCompleted   Type = "payment.completed"
	VipRequestDecided  Type = "vip_request.decided"
)

type Event struct {
	Type       Type           `json:"type"`
	EntityID   uint           `json:"entity_id"`
	OccurredAt time.Time      `json:"occurred_at"`
	Data       map[string]any `json:"data,omitempty"`
}

func New(typ Type, entityID uint, data map[string]any) Event {
	return Event{Type: typ, EntityID: entityID, OccurredAt: time.Now().UTC(), Data: data}
}

// Publisher delivers domain events after the originating transaction commits.
type Publisher interface {
	Publish(ctx context.Context, event Event) error
	Close() error
}

type Nop struct{}

func (Nop) Publish(context.Context, Event) error { return nil }
func (Nop) Close() error                         { return nil }

// Recorder keeps published events in memory.
type Recorder struct {
	mu     sync.Mutex
	events []Event
}

func (r *Recorder) Publish(_ context.Context, event Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, event)
	return nil
}

func (r *Recorder) Close() error { return nil }

func (r *Recorder) Events() []Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Event(nil), r.events...)
}
