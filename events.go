package sandwich

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/WelcomerTeam/Sandwich-Interactions/discord"
)

// ProducedPayload is the payload published by a Sandwich daemon.
type ProducedPayload struct {
	discord.GatewayPayload

	Extra    map[string]json.RawMessage `json:"__extra"`
	Metadata ProducedMetadata           `json:"__metadata"`
	Trace    Trace                      `json:"__trace"`
}

type ProducedMetadata struct {
	Identifier    string            `json:"i"`
	Application   string            `json:"a"`
	ApplicationID discord.Snowflake `json:"id"`
	Shard         [3]int32          `json:"s"`
}

type Trace map[string]any

func (t *Trace) Set(key string, value any) *Trace {
	if *t == nil {
		*t = make(Trace)
	}

	(*t)[key] = value

	return t
}

// Listener handles a published event.
type Listener[T any] func(ctx context.Context, value T)

// Event delivers values to its listeners synchronously, in the order they subscribed.
type Event[T any] struct {
	listenersMu sync.RWMutex
	listeners   []Listener[T]
}

// Subscribe adds a listener. Listeners cannot be removed.
func (e *Event[T]) Subscribe(listener Listener[T]) {
	if listener == nil {
		return
	}

	e.listenersMu.Lock()
	e.listeners = append(e.listeners, listener)
	e.listenersMu.Unlock()
}

// Publish calls every listener with value and returns once all have returned.
func (e *Event[T]) Publish(ctx context.Context, value T) {
	e.listenersMu.RLock()
	listeners := e.listeners
	e.listenersMu.RUnlock()

	for _, listener := range listeners {
		listener(ctx, value)
	}
}

// Len returns the number of listeners.
func (e *Event[T]) Len() int {
	e.listenersMu.RLock()
	defer e.listenersMu.RUnlock()

	return len(e.listeners)
}

// DebugEvent describes an event that was dropped or failed to be handled.
type DebugEvent struct {
	Err       error
	Message   string
	EventType string
}
