package events

import (
	"bytes"
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"phone_input_backend/platform/logger"
)

type testEvent struct {
	BaseEvent
	name string
}

func (e testEvent) EventName() string { return e.name }

func TestPublishSyncRunsHandlersInOrder(t *testing.T) {
	bus := NewInMemoryBus(nil)

	var order []int
	bus.Subscribe("a", HandlerFunc(func(context.Context, Event) error {
		order = append(order, 1)
		return nil
	}))
	bus.Subscribe("a", HandlerFunc(func(context.Context, Event) error {
		order = append(order, 2)
		return errors.New("second failed")
	}))
	bus.Subscribe("b", HandlerFunc(func(context.Context, Event) error {
		order = append(order, 3)
		return nil
	}))

	err := bus.PublishSync(context.Background(), testEvent{BaseEvent: NewBaseEvent(), name: "a"})
	if err == nil {
		t.Fatal("expected handler error")
	}
	if len(order) != 2 || order[0] != 1 || order[1] != 2 {
		t.Fatalf("unexpected handler order %v", order)
	}
}

func TestPublishRunsDetachedFromCancellation(t *testing.T) {
	var buf bytes.Buffer
	bus := NewInMemoryBus(logger.NewWithWriter("production", &buf))

	var calls atomic.Int32
	bus.Subscribe("a", HandlerFunc(func(ctx context.Context, _ Event) error {
		if ctx.Err() != nil {
			t.Errorf("handler context cancelled: %v", ctx.Err())
		}
		calls.Add(1)
		return errors.New("logged")
	}))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	bus.Publish(ctx, testEvent{BaseEvent: NewBaseEvent(), name: "a"})
	bus.Wait()

	if calls.Load() != 1 {
		t.Fatalf("expected one call, got %d", calls.Load())
	}
	if !bytes.Contains(buf.Bytes(), []byte("event handler failed")) {
		t.Fatalf("expected failure to be logged, got %q", buf.String())
	}
}

func TestPublishWithoutSubscribers(t *testing.T) {
	bus := NewInMemoryBus(nil)
	bus.Publish(context.Background(), testEvent{name: "none"})
	bus.Wait()
	if err := bus.PublishSync(context.Background(), testEvent{name: "none"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
