package metrics

import (
	"context"

	"github.com/osse101/GielinorRush_Go/internal/domain"
	"github.com/osse101/GielinorRush_Go/internal/event"
	"github.com/osse101/GielinorRush_Go/internal/logger"
)

// EventMetricsCollector subscribes to events and records metrics
type EventMetricsCollector struct{}

// NewEventMetricsCollector creates a new event metrics collector
func NewEventMetricsCollector() *EventMetricsCollector {
	return &EventMetricsCollector{}
}

// Register subscribes to all treasure events
func (e *EventMetricsCollector) Register(bus event.Bus) error {
	for _, eventType := range event.AllTypes {
		bus.Subscribe(eventType, e.HandleEvent)
	}
	return nil
}

// HandleEvent processes events and updates metrics. A payload that fails to
// decode is logged and skipped; metrics never fail the publisher.
func (e *EventMetricsCollector) HandleEvent(ctx context.Context, evt event.Event) error {
	log := logger.FromContext(ctx)

	EventsPublished.WithLabelValues(string(evt.Type)).Inc()

	var err error
	switch evt.Type {
	case event.MapGenerated:
		if _, err = event.DecodePayload[domain.MapGeneratedPayload](evt.Payload); err == nil {
			MapsGenerated.Inc()
		}

	case event.NodeCompleted:
		var p domain.NodeProgressPayload
		if p, err = event.DecodePayload[domain.NodeProgressPayload](evt.Payload); err == nil {
			NodesCompleted.WithLabelValues(string(p.NodeType)).Inc()
			if p.GP.Sign() > 0 {
				GPAwarded.WithLabelValues(SourceNode).Add(p.GP.Float64())
			}
		}

	case event.NodeUncompleted:
		var p domain.NodeProgressPayload
		if p, err = event.DecodePayload[domain.NodeProgressPayload](evt.Payload); err == nil {
			NodesUncompleted.WithLabelValues(string(p.NodeType)).Inc()
		}

	case event.BuffApplied:
		var p domain.BuffAppliedPayload
		if p, err = event.DecodePayload[domain.BuffAppliedPayload](evt.Payload); err == nil {
			BuffsApplied.WithLabelValues(string(p.BuffType)).Inc()
		}

	case event.InnPurchase:
		var p domain.InnPurchasePayload
		if p, err = event.DecodePayload[domain.InnPurchasePayload](evt.Payload); err == nil {
			InnPurchases.Inc()
			if p.Payout.Sign() > 0 {
				GPAwarded.WithLabelValues(SourceInn).Add(p.Payout.Float64())
			}
		}

	case event.EventClosed:
		var p domain.EventClosedPayload
		if p, err = event.DecodePayload[domain.EventClosedPayload](evt.Payload); err == nil {
			EventsClosed.WithLabelValues(p.Reason).Inc()
		}
	}

	if err != nil {
		log.Debug(LogMsgEventPayloadUnexpected, "type", evt.Type, "error", err)
		return nil
	}

	log.Debug(LogMsgMetricsRecorded, "type", evt.Type)
	return nil
}
