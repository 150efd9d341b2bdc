package audit

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/estore-labs/electrostore/internal/domain/catalog"
	"github.com/estore-labs/electrostore/internal/domain/event"
)

// recordingSubscriber captures subscriptions so handlers can be invoked
// directly, without a running bus.
type recordingSubscriber struct {
	handlers map[string]event.Handler
}

func (r *recordingSubscriber) Subscribe(eventName string, h event.Handler) {
	if r.handlers == nil {
		r.handlers = make(map[string]event.Handler)
	}
	r.handlers[eventName] = h
}

func TestStartSubscribesToBothMovementDirections(t *testing.T) {
	sub := &recordingSubscriber{}
	New(sub, nil).Start()

	assert.Contains(t, sub.handlers, "stock.decremented")
	assert.Contains(t, sub.handlers, "stock.incremented")
}

func TestHandleAcceptsMovementEvents(t *testing.T) {
	sub := &recordingSubscriber{}
	New(sub, nil).Start()
	ctx := context.Background()

	h := sub.handlers["stock.decremented"]
	require.NoError(t, h(ctx, catalog.NewStockDecrementedEvent("laptop-pro-x1", 2, 8)))
	require.NoError(t, h(ctx, catalog.NewStockIncrementedEvent("laptop-pro-x1", 2, 10)))
}

func TestHandleIgnoresForeignEvents(t *testing.T) {
	sub := &recordingSubscriber{}
	New(sub, nil).Start()

	h := sub.handlers["stock.decremented"]
	assert.NoError(t, h(context.Background(), unrelatedEvent{}))
}

func TestStartWithoutSubscriberIsNoop(t *testing.T) {
	assert.NotPanics(t, func() { New(nil, nil).Start() })
}

type unrelatedEvent struct{}

func (unrelatedEvent) EventName() string { return "something.else" }
