package events

import (
	"sync"

	"github.com/voidbrain/webcli/pkg/logging"
	"github.com/voidbrain/webcli/pkg/settings"
)

// CommandEventBus carries notifications between the settings store and the
// hosts that render them. Handlers run asynchronously, one goroutine each.
type CommandEventBus struct {
	subscribers map[string][]subscriberInfo
	mu          sync.RWMutex
	nextID      int
}

type subscriberInfo struct {
	id      int
	handler func(interface{})
}

// NewCommandEventBus creates an empty bus.
func NewCommandEventBus() *CommandEventBus {
	return &CommandEventBus{
		subscribers: make(map[string][]subscriberInfo),
		nextID:      1,
	}
}

// Subscribe registers a handler for eventType and returns its unsubscribe function.
func (bus *CommandEventBus) Subscribe(eventType string, handler func(interface{})) func() {
	bus.mu.Lock()
	defer bus.mu.Unlock()

	id := bus.nextID
	bus.nextID++
	bus.subscribers[eventType] = append(bus.subscribers[eventType], subscriberInfo{
		id:      id,
		handler: handler,
	})

	return func() {
		bus.mu.Lock()
		defer bus.mu.Unlock()
		bus.removeSubscriber(eventType, id)
	}
}

// SubscribeSettings registers a handler for settings.changed events. Payloads
// that are not a settings snapshot are ignored.
func (bus *CommandEventBus) SubscribeSettings(handler func(settings.Settings)) func() {
	return bus.Subscribe(settings.ChangedEvent, func(event interface{}) {
		if snapshot, ok := event.(settings.Settings); ok {
			handler(snapshot)
		}
	})
}

// Emit delivers event to every subscriber of eventType without waiting for
// the handlers.
func (bus *CommandEventBus) Emit(eventType string, event interface{}) {
	bus.mu.RLock()
	subscribers := make([]subscriberInfo, len(bus.subscribers[eventType]))
	copy(subscribers, bus.subscribers[eventType])
	bus.mu.RUnlock()

	for _, sub := range subscribers {
		go bus.deliver(eventType, sub.handler, event)
	}
}

func (bus *CommandEventBus) deliver(eventType string, handler func(interface{}), event interface{}) {
	defer func() {
		if r := recover(); r != nil {
			// The host may have replaced the global logger since the bus was built.
			logging.NewComponentLogger("events").Error("event handler panicked", "event", eventType, "panic", r)
		}
	}()
	handler(event)
}

// Count returns the number of subscribers for eventType.
func (bus *CommandEventBus) Count(eventType string) int {
	bus.mu.RLock()
	defer bus.mu.RUnlock()
	return len(bus.subscribers[eventType])
}

// Clear removes all subscribers
func (bus *CommandEventBus) Clear() {
	bus.mu.Lock()
	defer bus.mu.Unlock()
	bus.subscribers = make(map[string][]subscriberInfo)
}

// removeSubscriber must be called with the lock held.
func (bus *CommandEventBus) removeSubscriber(eventType string, id int) {
	subscribers := bus.subscribers[eventType]
	for i, sub := range subscribers {
		if sub.id != id {
			continue
		}
		bus.subscribers[eventType] = append(subscribers[:i:i], subscribers[i+1:]...)
		if len(bus.subscribers[eventType]) == 0 {
			delete(bus.subscribers, eventType)
		}
		return
	}
}
