package chisel

import (
	"github.com/akmonengine/chisel/block"
	"github.com/akmonengine/chisel/region"
)

const (
	EVENT_VERTEX_ADDED EventType = iota
	EVENT_VERTEX_DEFERRED
	EVENT_SELECTION_REPLACED
	EVENT_SELECTION_SHIFTED
	EVENT_SELECTION_CLEARED
)

type EventType uint8

// Event interface - all events implement this
type Event interface {
	Type() EventType
}

// VertexAddedEvent fires when a vertex becomes part of the selection hull.
type VertexAddedEvent struct {
	Vertex block.Vector3
}

func (e VertexAddedEvent) Type() EventType { return EVENT_VERTEX_ADDED }

// VertexDeferredEvent fires when a vertex was coplanar with the selection
// hull and joined its backlog instead of the mesh.
type VertexDeferredEvent struct {
	Vertex block.Vector3
}

func (e VertexDeferredEvent) Type() EventType { return EVENT_VERTEX_DEFERRED }

// SelectionReplacedEvent fires when a whole region replaces the selection.
type SelectionReplacedEvent struct {
	Region region.Region
}

func (e SelectionReplacedEvent) Type() EventType { return EVENT_SELECTION_REPLACED }

// SelectionShiftedEvent fires when the selection is translated.
type SelectionShiftedEvent struct {
	Change block.Vector3
}

func (e SelectionShiftedEvent) Type() EventType { return EVENT_SELECTION_SHIFTED }

// SelectionClearedEvent fires when the selection is dropped.
type SelectionClearedEvent struct{}

func (e SelectionClearedEvent) Type() EventType { return EVENT_SELECTION_CLEARED }

// EventListener - callback for events
type EventListener func(event Event)

// Events buffers selection events between flushes, so that listeners only
// ever observe the session in a settled state.
type Events struct {
	// Listeners by event type
	listeners map[EventType][]EventListener

	// Event buffer to send at flush
	buffer []Event
}

func NewEvents() Events {
	return Events{
		listeners: make(map[EventType][]EventListener),
		buffer:    make([]Event, 0, 32),
	}
}

// Subscribe adds a listener for an event type
func (e *Events) Subscribe(eventType EventType, listener EventListener) {
	e.listeners[eventType] = append(e.listeners[eventType], listener)
}

// emit queues an event for the next flush.
func (e *Events) emit(event Event) {
	e.buffer = append(e.buffer, event)
}

// Flush sends all buffered events in emission order and clears the buffer.
func (e *Events) Flush() {
	for _, event := range e.buffer {
		if listeners, ok := e.listeners[event.Type()]; ok {
			for _, listener := range listeners {
				listener(event)
			}
		}
	}
	e.buffer = e.buffer[:0]
}
