package state

import (
	"sync"

	"github.com/google/uuid"

	"LocalSketch/internal/logging"
)

// History owns the drawing: the ordered strokes on the surface and the redo
// buffer of strokes taken off it by Undo. Its methods are the only way to
// change either sequence.
type History struct {
	mu      sync.RWMutex
	strokes []Stroke
	redo    []Stroke
	clock   Clock
}

// NewHistory returns an empty history.
func NewHistory() *History {
	return &History{
		strokes: make([]Stroke, 0),
		redo:    make([]Stroke, 0),
	}
}

// Begin opens a new stroke containing only p and appends it. Any redo
// history is discarded.
func (h *History) Begin(p Point) Stroke {
	h.mu.Lock()
	defer h.mu.Unlock()

	s := Stroke{ID: uuid.NewString(), Points: []Point{p}}
	h.strokes = append(h.strokes, s)
	h.redo = h.redo[:0]
	rev := h.clock.Tick()

	logging.Logger().Debug("[HISTORY] stroke opened", "id", s.ID, "rev", rev)
	return s.Clone()
}

// Append adds p to the last stroke. It does nothing on an empty history.
func (h *History) Append(p Point) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if len(h.strokes) == 0 {
		return
	}
	last := &h.strokes[len(h.strokes)-1]
	last.Points = append(last.Points, p)
	h.clock.Tick()
}

// Last returns a copy of the most recent stroke.
func (h *History) Last() (Stroke, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	if len(h.strokes) == 0 {
		return Stroke{}, false
	}
	return h.strokes[len(h.strokes)-1].Clone(), true
}

// ReplaceLast overwrites the points of the most recent stroke, keeping its
// ID. Empty replacements are ignored so a stroke never loses all its points.
func (h *History) ReplaceLast(points []Point) bool {
	h.mu.Lock()
	defer h.mu.Unlock()

	if len(h.strokes) == 0 || len(points) == 0 {
		return false
	}
	pts := make([]Point, len(points))
	copy(pts, points)
	h.strokes[len(h.strokes)-1].Points = pts
	h.clock.Tick()
	return true
}

// Undo moves the last stroke onto the redo buffer. It reports false when
// there was nothing to undo.
func (h *History) Undo() bool {
	h.mu.Lock()
	defer h.mu.Unlock()

	if len(h.strokes) == 0 {
		return false
	}
	last := h.strokes[len(h.strokes)-1]
	h.strokes = h.strokes[:len(h.strokes)-1]
	h.redo = append(h.redo, last)
	rev := h.clock.Tick()

	logging.Logger().Info("[HISTORY] undo", "id", last.ID, "strokes", len(h.strokes), "rev", rev)
	return true
}

// Redo restores the most recently undone stroke. It reports false when the
// redo buffer is empty.
func (h *History) Redo() bool {
	h.mu.Lock()
	defer h.mu.Unlock()

	if len(h.redo) == 0 {
		return false
	}
	last := h.redo[len(h.redo)-1]
	h.redo = h.redo[:len(h.redo)-1]
	h.strokes = append(h.strokes, last)
	rev := h.clock.Tick()

	logging.Logger().Info("[HISTORY] redo", "id", last.ID, "strokes", len(h.strokes), "rev", rev)
	return true
}

// Clear empties both the drawing and the redo buffer.
func (h *History) Clear() {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.strokes = h.strokes[:0]
	h.redo = h.redo[:0]
	rev := h.clock.Tick()

	logging.Logger().Info("[HISTORY] cleared", "rev", rev)
}

// Load replaces the drawing with strokes and discards redo history. Strokes
// without points are skipped; strokes without an ID get a fresh one.
func (h *History) Load(strokes []Stroke) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.strokes = make([]Stroke, 0, len(strokes))
	for _, s := range strokes {
		if len(s.Points) == 0 {
			continue
		}
		c := s.Clone()
		if c.ID == "" {
			c.ID = uuid.NewString()
		}
		h.strokes = append(h.strokes, c)
	}
	h.redo = h.redo[:0]
	rev := h.clock.Tick()

	logging.Logger().Info("[HISTORY] loaded", "strokes", len(h.strokes), "rev", rev)
}

// Strokes returns a deep copy of the drawing in insertion order.
func (h *History) Strokes() []Stroke {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return cloneAll(h.strokes)
}

// RedoStrokes returns a deep copy of the redo buffer, oldest first.
func (h *History) RedoStrokes() []Stroke {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return cloneAll(h.redo)
}

// Len returns the number of strokes on the surface.
func (h *History) Len() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.strokes)
}

// RedoLen returns the number of strokes available to Redo.
func (h *History) RedoLen() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.redo)
}

// Revision returns the mutation counter.
func (h *History) Revision() uint64 {
	return h.clock.Now()
}

func cloneAll(strokes []Stroke) []Stroke {
	out := make([]Stroke, len(strokes))
	for i, s := range strokes {
		out[i] = s.Clone()
	}
	return out
}
