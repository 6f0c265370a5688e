// Package render replays strokes onto a raster surface. The surface is a
// cache derived from the history: anything other than a plain append is
// reflected by clearing it and drawing every stroke again.
package render

import "LocalSketch/internal/state"

// Painter is a minimal immediate-mode raster surface.
type Painter interface {
	Clear()
	SetLineWidth(w float64)
	BeginPath()
	MoveTo(x, y float64)
	LineTo(x, y float64)
	Stroke()
}

// Batcher is implemented by painters that present their content somewhere
// else, such as a widget. RedrawAll brackets a full redraw with BeginBatch and
// EndBatch so the result is presented once.
type Batcher interface {
	BeginBatch()
	EndBatch()
}

// DrawSegment paints a single line from one sample to the next. It is the
// incremental path taken while a stroke grows.
func DrawSegment(p Painter, from, to state.Point, lineWidth float64) {
	p.SetLineWidth(lineWidth)
	p.BeginPath()
	p.MoveTo(from.X, from.Y)
	p.LineTo(to.X, to.Y)
	p.Stroke()
}

// RedrawAll clears the surface and paints every stroke in order, each as
// its own path so consecutive strokes are never joined.
func RedrawAll(p Painter, strokes []state.Stroke, lineWidth float64) {
	if b, ok := p.(Batcher); ok {
		b.BeginBatch()
		defer b.EndBatch()
	}
	p.Clear()
	for _, s := range strokes {
		if len(s.Points) == 0 {
			continue
		}
		p.SetLineWidth(lineWidth)
		p.BeginPath()
		first := s.First()
		p.MoveTo(first.X, first.Y)
		for _, pt := range s.Points {
			p.LineTo(pt.X, pt.Y)
		}
		p.Stroke()
	}
}
