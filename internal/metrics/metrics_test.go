package metrics

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/GielinorRush_Go/internal/domain"
	"github.com/osse101/GielinorRush_Go/internal/event"
)

func TestEventMetricsCollector_NodeCompleted(t *testing.T) {
	bus := event.NewMemoryBus()
	require.NoError(t, NewEventMetricsCollector().Register(bus))

	nodeType := string(domain.NodeTypeStandard)
	completedBefore := testutil.ToFloat64(NodesCompleted.WithLabelValues(nodeType))
	gpBefore := testutil.ToFloat64(GPAwarded.WithLabelValues(SourceNode))

	err := bus.Publish(context.Background(), event.NewNodeProgressEvent(event.NodeCompleted, domain.NodeProgressPayload{
		EventID:  "ev-1",
		TeamID:   "team-1",
		NodeID:   "n1",
		NodeType: domain.NodeTypeStandard,
		GP:       domain.NewGP(250000),
	}))
	require.NoError(t, err)

	assert.Equal(t, completedBefore+1, testutil.ToFloat64(NodesCompleted.WithLabelValues(nodeType)))
	assert.Equal(t, gpBefore+250000, testutil.ToFloat64(GPAwarded.WithLabelValues(SourceNode)))
}

func TestEventMetricsCollector_InnPurchaseFromMap(t *testing.T) {
	c := NewEventMetricsCollector()
	before := testutil.ToFloat64(InnPurchases)
	gpBefore := testutil.ToFloat64(GPAwarded.WithLabelValues(SourceInn))

	// Payloads that crossed a serialization boundary arrive as maps
	evt := event.Event{
		Type: event.InnPurchase,
		Payload: map[string]interface{}{
			"event_id": "ev-1",
			"team_id":  "team-1",
			"payout":   "1500",
		},
	}
	require.NoError(t, c.HandleEvent(context.Background(), evt))

	assert.Equal(t, before+1, testutil.ToFloat64(InnPurchases))
	assert.Equal(t, gpBefore+1500, testutil.ToFloat64(GPAwarded.WithLabelValues(SourceInn)))
}

func TestEventMetricsCollector_BadPayloadIsIgnored(t *testing.T) {
	c := NewEventMetricsCollector()
	label := string(domain.BuffLuckyCharm)
	before := testutil.ToFloat64(BuffsApplied.WithLabelValues(label))

	evt := event.Event{Type: event.BuffApplied, Payload: map[string]interface{}{"original_quantity": "not a number"}}
	assert.NoError(t, c.HandleEvent(context.Background(), evt))
	assert.Equal(t, before, testutil.ToFloat64(BuffsApplied.WithLabelValues(label)))
}

func TestEventMetricsCollector_MapGenerated(t *testing.T) {
	c := NewEventMetricsCollector()
	before := testutil.ToFloat64(MapsGenerated)

	require.NoError(t, c.HandleEvent(context.Background(), event.NewMapGeneratedEvent(domain.MapGeneratedPayload{EventID: "ev-1", TotalNodes: 90})))
	assert.Equal(t, before+1, testutil.ToFloat64(MapsGenerated))
}

func TestEventMetricsCollector_EventClosed(t *testing.T) {
	c := NewEventMetricsCollector()
	before := testutil.ToFloat64(EventsClosed.WithLabelValues(domain.CloseReasonExpired))

	evt := event.NewEventClosedEvent(domain.EventClosedPayload{EventID: "ev-1", Reason: domain.CloseReasonExpired})
	require.NoError(t, c.HandleEvent(context.Background(), evt))
	assert.Equal(t, before+1, testutil.ToFloat64(EventsClosed.WithLabelValues(domain.CloseReasonExpired)))
}

func TestMiddleware_UsesRoutePattern(t *testing.T) {
	r := chi.NewRouter()
	r.Use(Middleware)
	r.Get("/events/{eventID}", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})

	pattern := "/events/{eventID}"
	before := testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues(http.MethodGet, pattern, "418"))

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/events/abc-123", nil))

	assert.Equal(t, http.StatusTeapot, rec.Code)
	assert.Equal(t, before+1, testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues(http.MethodGet, pattern, "418")))
	assert.Equal(t, float64(0), testutil.ToFloat64(HTTPRequestsInFlight))
}

func TestMiddleware_Unmatched(t *testing.T) {
	before := testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues(http.MethodGet, PathUnmatched, "200"))

	h := Middleware(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {}))
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/anything", nil))

	assert.Equal(t, before+1, testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues(http.MethodGet, PathUnmatched, "200")))
}
