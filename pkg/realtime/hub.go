// Package realtime fans record change events out to the websocket
// connections of the user who owns the records.
package realtime

import (
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

type Action string

const (
	ActionCreated Action = "created"
	ActionUpdated Action = "updated"
	ActionDeleted Action = "deleted"
)

type Event struct {
	Entity string    `json:"entity"`
	Action Action    `json:"action"`
	ID     string    `json:"id"`
	At     time.Time `json:"at"`
}

func NewEvent(entity string, action Action, id string) Event {
	return Event{Entity: entity, Action: action, ID: id, At: time.Now().UTC()}
}

type Publisher interface {
	Publish(userID string, event Event)
}

type Hub struct {
	mu          sync.RWMutex
	subscribers map[string]map[*Subscription]struct{}
	buffer      int
	log         *logrus.Logger
}

type Subscription struct {
	userID string
	events chan Event
	hub    *Hub
	once   sync.Once
}

func NewHub(log *logrus.Logger, buffer int) *Hub {
	if buffer <= 0 {
		buffer = 16
	}
	return &Hub{
		subscribers: make(map[string]map[*Subscription]struct{}),
		buffer:      buffer,
		log:         log,
	}
}

func (h *Hub) Subscribe(userID string) *Subscription {
	sub := &Subscription{
		userID: userID,
		events: make(chan Event, h.buffer),
		hub:    h,
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	if h.subscribers[userID] == nil {
		h.subscribers[userID] = make(map[*Subscription]struct{})
	}
	h.subscribers[userID][sub] = struct{}{}

	return sub
}

// Publish never blocks; a subscriber whose buffer is full misses the event.
func (h *Hub) Publish(userID string, event Event) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for sub := range h.subscribers[userID] {
		select {
		case sub.events <- event:
		default:
			h.log.WithFields(logrus.Fields{
				"user_id": userID,
				"entity":  event.Entity,
				"action":  event.Action,
			}).Warn("Dropping realtime event for slow subscriber")
		}
	}
}

func (h *Hub) SubscriberCount(userID string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subscribers[userID])
}

func (s *Subscription) Events() <-chan Event {
	return s.events
}

func (s *Subscription) Close() {
	s.once.Do(func() {
		h := s.hub
		h.mu.Lock()
		delete(h.subscribers[s.userID], s)
		if len(h.subscribers[s.userID]) == 0 {
			delete(h.subscribers, s.userID)
		}
		h.mu.Unlock()

		close(s.events)
	})
}
