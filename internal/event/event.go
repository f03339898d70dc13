package event

import (
	"context"
	"fmt"
	"sync"

	"github.com/osse101/GielinorRush_Go/internal/domain"
)

// Type represents the type of an event
type Type string

// Metadata defines the type for event metadata
type Metadata map[string]interface{}

// Event represents a generic event in the system
type Event struct {
	Version  string      `json:"version"` // Event schema version (e.g., "1.0")
	Type     Type        `json:"type"`
	Payload  interface{} `json:"payload"`
	Metadata Metadata    `json:"metadata,omitempty"`
}

// GetMetadataValue extracts a value from the event metadata safely
func (e Event) GetMetadataValue(key string) interface{} {
	if e.Metadata == nil {
		return nil
	}
	return e.Metadata[key]
}

// Treasure event types
const (
	MapGenerated    Type = domain.EventTypeMapGenerated
	NodeCompleted   Type = domain.EventTypeNodeCompleted
	NodeUncompleted Type = domain.EventTypeNodeUncompleted
	BuffApplied     Type = domain.EventTypeBuffApplied
	InnPurchase     Type = domain.EventTypeInnPurchase
	TeamAdjusted    Type = domain.EventTypeTeamAdjusted
	EventClosed     Type = domain.EventTypeEventClosed
)

// AllTypes lists every treasure event type, for subscribers that want them all.
var AllTypes = []Type{MapGenerated, NodeCompleted, NodeUncompleted, BuffApplied, InnPurchase, TeamAdjusted, EventClosed}

// Metadata keys
const (
	MetaEventID = "event_id"
	MetaTeamID  = "team_id"
)

// Type-safe event constructors

// NewMapGeneratedEvent creates a map generated event
func NewMapGeneratedEvent(p domain.MapGeneratedPayload) Event {
	return Event{
		Version:  EventSchemaVersion,
		Type:     MapGenerated,
		Payload:  p,
		Metadata: Metadata{MetaEventID: p.EventID},
	}
}

// NewNodeProgressEvent creates a node completed or uncompleted event
func NewNodeProgressEvent(t Type, p domain.NodeProgressPayload) Event {
	return Event{
		Version:  EventSchemaVersion,
		Type:     t,
		Payload:  p,
		Metadata: Metadata{MetaEventID: p.EventID, MetaTeamID: p.TeamID},
	}
}

// NewBuffAppliedEvent creates a buff applied event
func NewBuffAppliedEvent(p domain.BuffAppliedPayload) Event {
	return Event{
		Version:  EventSchemaVersion,
		Type:     BuffApplied,
		Payload:  p,
		Metadata: Metadata{MetaEventID: p.EventID, MetaTeamID: p.TeamID},
	}
}

// NewInnPurchaseEvent creates an inn purchase event
func NewInnPurchaseEvent(p domain.InnPurchasePayload) Event {
	return Event{
		Version:  EventSchemaVersion,
		Type:     InnPurchase,
		Payload:  p,
		Metadata: Metadata{MetaEventID: p.EventID, MetaTeamID: p.TeamID},
	}
}

// NewTeamAdjustedEvent creates an admin override event
func NewTeamAdjustedEvent(p domain.TeamAdjustedPayload) Event {
	return Event{
		Version:  EventSchemaVersion,
		Type:     TeamAdjusted,
		Payload:  p,
		Metadata: Metadata{MetaEventID: p.EventID, MetaTeamID: p.TeamID},
	}
}

// NewEventClosedEvent creates an event closed event
func NewEventClosedEvent(p domain.EventClosedPayload) Event {
	return Event{
		Version:  EventSchemaVersion,
		Type:     EventClosed,
		Payload:  p,
		Metadata: Metadata{MetaEventID: p.EventID},
	}
}

// Handler is a function that handles an event
type Handler func(ctx context.Context, event Event) error

// Bus defines the interface for an event bus
type Bus interface {
	Publish(ctx context.Context, event Event) error
	Subscribe(eventType Type, handler Handler)
}

// MemoryBus is an in-memory implementation of the Event Bus
type MemoryBus struct {
	handlers map[Type][]Handler
	mu       sync.RWMutex
}

// NewMemoryBus creates a new MemoryBus
func NewMemoryBus() *MemoryBus {
	return &MemoryBus{
		handlers: make(map[Type][]Handler),
	}
}

// Publish publishes an event to all subscribers.
// Handlers run synchronously in subscription order.
func (b *MemoryBus) Publish(ctx context.Context, event Event) error {
	b.mu.RLock()
	handlers := b.handlers[event.Type]
	b.mu.RUnlock()

	var errs []error
	for _, handler := range handlers {
		if err := handler(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf(LogMsgHandlerErrorFormat, len(errs), event.Type, errs)
	}

	return nil
}

// Subscribe subscribes a handler to an event type
func (b *MemoryBus) Subscribe(eventType Type, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[eventType] = append(b.handlers[eventType], handler)
}
