// Package export turns a drawing into documents: an auto-fitted, centred SVG
// preview, a fixed-size SVG for saving, and a PDF page.
package export

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"LocalSketch/internal/state"
)

const (
	svgNS   = "http://www.w3.org/2000/svg"
	xlinkNS = "http://www.w3.org/1999/xlink"

	// FixedWidth and FixedHeight size the saved document.
	FixedWidth  = 800
	FixedHeight = 400
	// FixedStrokeWidth is the width of saved line elements.
	FixedStrokeWidth = 2

	paddingRatio = 0.1
)

// Options tune serialization. The zero value writes coordinates exactly.
type Options struct {
	// Precision rounds coordinates to this many decimals when positive.
	Precision int
}

func (o Options) points(pts []state.Point) []state.Point {
	if o.Precision > 0 {
		return state.RoundPoints(pts, o.Precision)
	}
	return pts
}

// Centered is a drawing translated so its bounding box is centred on the
// origin. Strokes keeps one entry per input stroke.
type Centered struct {
	Strokes [][]state.Point
	Width   float64
	Height  float64
}

// Padding is the margin added on every side of the view box.
func (c Centered) Padding() float64 {
	return paddingRatio * math.Max(c.Width, c.Height)
}

// ViewBox returns minX, minY, width and height of the padded view window.
func (c Centered) ViewBox() (x, y, w, h float64) {
	pad := c.Padding()
	return -c.Width/2 - pad, -c.Height/2 - pad, c.Width + 2*pad, c.Height + 2*pad
}

// Center translates every point by the negated centre of the drawing's
// bounding box. ok is false for an empty drawing.
func Center(strokes []state.Stroke) (c Centered, ok bool) {
	b, ok := state.Bounds(strokes)
	if !ok {
		return Centered{}, false
	}
	mid := b.Center()
	c = Centered{
		Strokes: make([][]state.Point, len(strokes)),
		Width:   b.Width(),
		Height:  b.Height(),
	}
	for i, s := range strokes {
		pts := make([]state.Point, len(s.Points))
		for j, p := range s.Points {
			pts[j] = state.Point{X: p.X - mid.X, Y: p.Y - mid.Y}
		}
		c.Strokes[i] = pts
	}
	return c, true
}

// RenderCentered returns the preview document for strokes: a view box fitted
// around the drawing with ten percent padding, scaled to fill its container,
// and one path per stroke. An empty drawing yields an empty string.
func RenderCentered(strokes []state.Stroke, opts Options) string {
	c, ok := Center(strokes)
	if !ok {
		return ""
	}
	x, y, w, h := c.ViewBox()

	var sb strings.Builder
	fmt.Fprintf(&sb, `<svg xmlns="%s" width="100%%" height="100%%" viewBox="%s %s %s %s">`,
		svgNS, num(x), num(y), num(w), num(h))
	for _, pts := range c.Strokes {
		pts = opts.points(pts)
		sb.WriteString(`<path d="M `)
		for i, p := range pts {
			if i > 0 {
				sb.WriteString(" L ")
			}
			sb.WriteString(num(p.X))
			sb.WriteByte(' ')
			sb.WriteString(num(p.Y))
		}
		sb.WriteString(`" stroke="black" fill="none"/>`)
	}
	sb.WriteString(`</svg>`)
	return sb.String()
}

// RenderFixed returns the document written on save: a fixed canvas-sized
// SVG holding one line element per pair of consecutive points.
func RenderFixed(strokes []state.Stroke, opts Options) string {
	var sb strings.Builder
	sb.WriteString(`<?xml version="1.0" encoding="UTF-8"?>` + "\n")
	fmt.Fprintf(&sb, `<svg xmlns="%s" xmlns:xlink="%s" width="%d" height="%d">`+"\n",
		svgNS, xlinkNS, FixedWidth, FixedHeight)
	for _, s := range strokes {
		pts := opts.points(s.Points)
		for i := 1; i < len(pts); i++ {
			a, b := pts[i-1], pts[i]
			fmt.Fprintf(&sb, `<line x1="%s" y1="%s" x2="%s" y2="%s" stroke="black" stroke-width="%d"/>`+"\n",
				num(a.X), num(a.Y), num(b.X), num(b.Y), FixedStrokeWidth)
		}
	}
	sb.WriteString(`</svg>`)
	return sb.String()
}

// num formats v in its shortest decimal form. Negative zero prints as 0.
func num(v float64) string {
	if v == 0 {
		v = 0
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
