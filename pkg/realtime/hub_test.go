package realtime

import (
	"io"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
)

func newTestHub(buffer int) *Hub {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return NewHub(logger, buffer)
}

func TestPublishReachesOnlyOwner(t *testing.T) {
	hub := newTestHub(4)

	ana := hub.Subscribe("ana")
	defer ana.Close()
	bia := hub.Subscribe("bia")
	defer bia.Close()

	hub.Publish("ana", NewEvent("goal", ActionCreated, "g1"))

	select {
	case ev := <-ana.Events():
		if ev.Entity != "goal" || ev.Action != ActionCreated || ev.ID != "g1" {
			t.Errorf("event = %+v", ev)
		}
	case <-time.After(time.Second):
		t.Fatal("owner did not receive the event")
	}

	select {
	case ev := <-bia.Events():
		t.Errorf("other user received %+v", ev)
	default:
	}
}

func TestPublishDoesNotBlockOnFullBuffer(t *testing.T) {
	hub := newTestHub(1)
	sub := hub.Subscribe("ana")
	defer sub.Close()

	done := make(chan struct{})
	go func() {
		for i := 0; i < 10; i++ {
			hub.Publish("ana", NewEvent("transaction", ActionUpdated, "t1"))
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Publish blocked on a slow subscriber")
	}

	if got := len(sub.Events()); got != 1 {
		t.Errorf("buffered events = %d, want 1", got)
	}
}

func TestCloseUnsubscribes(t *testing.T) {
	hub := newTestHub(1)
	sub := hub.Subscribe("ana")

	if hub.SubscriberCount("ana") != 1 {
		t.Fatalf("SubscriberCount() = %d, want 1", hub.SubscriberCount("ana"))
	}

	sub.Close()
	sub.Close()

	if hub.SubscriberCount("ana") != 0 {
		t.Errorf("SubscriberCount() after close = %d, want 0", hub.SubscriberCount("ana"))
	}

	if _, ok := <-sub.Events(); ok {
		t.Error("events channel still open after Close")
	}

	hub.Publish("ana", NewEvent("goal", ActionDeleted, "g1"))
}
