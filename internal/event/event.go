// internal/event/event.go
package event

import "sync"

// EventType is the kind of an engine event.
type EventType string

// Event is one engine notification. Data holds one of the payload structs in types.go.
type Event struct {
	Type EventType
	Data any
}

// Listener receives dispatched events.
type Listener interface {
	OnEvent(event Event)
}

// ListenerFunc adapts a function to Listener.
type ListenerFunc func(event Event)

func (f ListenerFunc) OnEvent(event Event) { f(event) }

// Dispatcher fans events out to subscribers. It is safe for concurrent use; listeners are
// called synchronously on the dispatching goroutine.
type Dispatcher struct {
	mu        sync.RWMutex
	listeners map[EventType][]Listener
	all       []Listener
}

func NewDispatcher() *Dispatcher {
	return &Dispatcher{
		listeners: make(map[EventType][]Listener),
	}
}

// Subscribe registers listener for one event type.
func (d *Dispatcher) Subscribe(eventType EventType, listener Listener) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.listeners[eventType] = append(d.listeners[eventType], listener)
}

// SubscribeAll registers listener for every event type.
func (d *Dispatcher) SubscribeAll(listener Listener) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.all = append(d.all, listener)
}

// Unsubscribe removes listener from eventType. Listeners must be comparable.
func (d *Dispatcher) Unsubscribe(eventType EventType, listener Listener) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.listeners[eventType] = remove(d.listeners[eventType], listener)
}

// UnsubscribeAll removes a listener added with SubscribeAll.
func (d *Dispatcher) UnsubscribeAll(listener Listener) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.all = remove(d.all, listener)
}

func remove(listeners []Listener, listener Listener) []Listener {
	for i, l := range listeners {
		if l == listener {
			out := make([]Listener, 0, len(listeners)-1)
			out = append(out, listeners[:i]...)
			return append(out, listeners[i+1:]...)
		}
	}
	return listeners
}

// Dispatch sends event to its subscribers, then to the catch-all subscribers.
// A nil Dispatcher drops the event.
func (d *Dispatcher) Dispatch(event Event) {
	if d == nil {
		return
	}
	d.mu.RLock()
	targets := make([]Listener, 0, len(d.listeners[event.Type])+len(d.all))
	targets = append(targets, d.listeners[event.Type]...)
	targets = append(targets, d.all...)
	d.mu.RUnlock()

	for _, l := range targets {
		l.OnEvent(event)
	}
}
