package ui

import (
	"image/color"
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"

	"LocalSketch/internal/render"
)

// LineSurface is a render.Painter that keeps painted segments as fyne line
// objects. Clear drops them all.
type LineSurface struct {
	mu        sync.RWMutex
	lines     []fyne.CanvasObject
	color     color.Color
	lineWidth float32
	cursor    fyne.Position
	inPath    bool
	pending   []fyne.CanvasObject
	batching  bool
	dirty     bool

	// OnChange is called after Clear and Stroke, and once at the end of a
	// batch that changed anything.
	OnChange func()
}

var (
	_ render.Painter = (*LineSurface)(nil)
	_ render.Batcher = (*LineSurface)(nil)
)

// NewLineSurface returns an empty surface painting in black.
func NewLineSurface() *LineSurface {
	return &LineSurface{color: color.Black, lineWidth: 1}
}

func (s *LineSurface) Clear() {
	s.mu.Lock()
	s.lines = nil
	s.pending = nil
	s.inPath = false
	s.mu.Unlock()
	s.changed()
}

func (s *LineSurface) SetLineWidth(w float64) {
	s.lineWidth = float32(w)
}

func (s *LineSurface) BeginPath() {
	s.pending = s.pending[:0]
	s.inPath = false
}

func (s *LineSurface) MoveTo(x, y float64) {
	s.cursor = fyne.NewPos(float32(x), float32(y))
	s.inPath = true
}

func (s *LineSurface) LineTo(x, y float64) {
	to := fyne.NewPos(float32(x), float32(y))
	if !s.inPath {
		s.MoveTo(x, y)
		return
	}
	if to != s.cursor {
		line := canvas.NewLine(s.color)
		line.StrokeWidth = s.lineWidth
		line.Position1 = s.cursor
		line.Position2 = to
		s.pending = append(s.pending, line)
	}
	s.cursor = to
}

// Stroke commits the current path's segments to the surface.
func (s *LineSurface) Stroke() {
	s.mu.Lock()
	s.lines = append(s.lines, s.pending...)
	s.pending = nil
	s.inPath = false
	s.mu.Unlock()
	s.changed()
}

// Objects returns a copy of the painted segments.
func (s *LineSurface) Objects() []fyne.CanvasObject {
	s.mu.RLock()
	defer s.mu.RUnlock()
	objs := make([]fyne.CanvasObject, len(s.lines))
	copy(objs, s.lines)
	return objs
}

// BeginBatch holds back OnChange until EndBatch.
func (s *LineSurface) BeginBatch() {
	s.batching = true
}

func (s *LineSurface) EndBatch() {
	s.batching = false
	if s.dirty {
		s.dirty = false
		s.changed()
	}
}

func (s *LineSurface) changed() {
	if s.batching {
		s.dirty = true
		return
	}
	if s.OnChange != nil {
		s.OnChange()
	}
}
