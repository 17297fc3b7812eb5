// Package chisel ties the region shapes to the editing workflow: a Session
// owns the active selection, publishes selection events, and buckets region
// points by chunk for the world backends that commit edits.
package chisel

import (
	"errors"

	"github.com/akmonengine/chisel/block"
	"github.com/akmonengine/chisel/region"
)

// ErrIncompleteSelection is returned while the selection cannot answer
// geometric queries yet: nothing selected, or a convex selection still
// waiting for enough vertices to span a volume.
var ErrIncompleteSelection = errors.New("the selection is not complete yet")

// Session holds the active selection and the event stream around it.
type Session struct {
	selection region.Region
	// Workers bounds the goroutines used by parallel selection walks.
	Workers int

	Events Events
}

func NewSession() *Session {
	return &Session{
		Workers: DEFAULT_WORKERS,
		Events:  NewEvents(),
	}
}

// SelectVertex grows the convex selection with one vertex, starting a new
// one when the current selection is not convex (or absent). It reports
// whether the selection changed, and queues a VertexAddedEvent or a
// VertexDeferredEvent accordingly.
func (s *Session) SelectVertex(vertex block.Vector3) bool {
	convex, ok := s.selection.(*region.ConvexRegion)
	if !ok {
		convex = region.NewConvexRegion()
		s.selection = convex
	}

	pendingBefore := len(convex.Pending())
	if !convex.AddVertex(vertex) {
		return false
	}

	if len(convex.Pending()) > pendingBefore {
		s.Events.emit(VertexDeferredEvent{Vertex: vertex})
	} else {
		s.Events.emit(VertexAddedEvent{Vertex: vertex})
	}
	return true
}

// SetRegion replaces the selection.
func (s *Session) SetRegion(r region.Region) {
	s.selection = r
	s.Events.emit(SelectionReplacedEvent{Region: r})
}

// Selection returns the active region, or ErrIncompleteSelection while
// there is nothing a geometric query could run against.
func (s *Session) Selection() (region.Region, error) {
	if s.selection == nil {
		return nil, ErrIncompleteSelection
	}
	if convex, ok := s.selection.(*region.ConvexRegion); ok && !convex.IsDefined() {
		return nil, ErrIncompleteSelection
	}
	return s.selection, nil
}

// ClearSelection drops the selection.
func (s *Session) ClearSelection() {
	s.selection = nil
	s.Events.emit(SelectionClearedEvent{})
}

// ShiftSelection translates the selection by change.
func (s *Session) ShiftSelection(change block.Vector3) error {
	selection, err := s.Selection()
	if err != nil {
		return err
	}
	if err := selection.Shift(change); err != nil {
		return err
	}
	s.Events.emit(SelectionShiftedEvent{Change: change})
	return nil
}

// IndexSelection buckets the selection's points by chunk column.
func (s *Session) IndexSelection() (*ChunkIndex, error) {
	selection, err := s.Selection()
	if err != nil {
		return nil, err
	}
	return IndexRegion(selection), nil
}
