// Package sketch drives a drawing surface. A Controller turns pointer
// events and control-surface commands into changes to a state.History,
// keeps the raster surface in step with it, and pushes a centred vector
// preview to every display target.
package sketch

import (
	"errors"
	"fmt"

	"LocalSketch/internal/export"
	"LocalSketch/internal/logging"
	"LocalSketch/internal/render"
	"LocalSketch/internal/state"
)

// DefaultSaveKey is the key saved drawings are stored under.
const DefaultSaveKey = "drawing"

// ErrNoStore is returned by Save and Load when no store is configured.
var ErrNoStore = errors.New("sketch: no store configured")

// DisplayTarget presents a preview document, replacing whatever it showed
// before.
type DisplayTarget interface {
	Present(doc string)
}

// DisplayFunc adapts a function to DisplayTarget.
type DisplayFunc func(doc string)

func (f DisplayFunc) Present(doc string) { f(doc) }

// Store persists saved documents as opaque strings.
type Store interface {
	Put(key, value string) error
	Get(key string) (string, bool, error)
}

// Options configure a Controller.
type Options struct {
	LineWidth        float64
	Smoothing        SmoothingMode
	SmoothingEnabled bool
	// LivePreview refreshes display targets on every pointer move.
	LivePreview bool
	SaveKey     string
	Precision   int
}

// DefaultOptions mirror config.Default.
var DefaultOptions = Options{
	LineWidth: 2,
	Smoothing: SmoothPostHoc,
	SaveKey:   DefaultSaveKey,
}

// Controller owns one drawing surface. It is not safe for concurrent use:
// every event and command must come from the same goroutine.
type Controller struct {
	history *state.History
	painter render.Painter
	store   Store
	targets []DisplayTarget
	opts    Options

	smoothing bool
	drawing   bool
	// last raw pointer position, the start of the next incremental segment.
	last state.Point
}

// NewController wires a controller to its collaborators. A nil painter
// discards raster output; a nil store makes Save and Load fail.
func NewController(h *state.History, p render.Painter, s Store, opts Options, targets ...DisplayTarget) *Controller {
	if h == nil {
		h = state.NewHistory()
	}
	if p == nil {
		p = nopPainter{}
	}
	if opts.LineWidth <= 0 {
		opts.LineWidth = DefaultOptions.LineWidth
	}
	if opts.SaveKey == "" {
		opts.SaveKey = DefaultSaveKey
	}
	return &Controller{
		history:   h,
		painter:   p,
		store:     s,
		targets:   targets,
		opts:      opts,
		smoothing: opts.SmoothingEnabled,
	}
}

// AddTarget registers another display target and brings it up to date.
func (c *Controller) AddTarget(t DisplayTarget) {
	c.targets = append(c.targets, t)
	t.Present(c.Preview())
}

// History returns the drawing the controller mutates. Callers must only read
// from it.
func (c *Controller) History() *state.History { return c.history }

// Drawing reports whether a stroke is open.
func (c *Controller) Drawing() bool { return c.drawing }

// SmoothingEnabled reports the toggle state.
func (c *Controller) SmoothingEnabled() bool { return c.smoothing }

// Options returns the controller's options.
func (c *Controller) Options() Options { return c.opts }

// PointerDown opens a new stroke at p. A stroke left open by a missing
// pointer-up is closed first.
func (c *Controller) PointerDown(p state.Point) {
	if c.drawing {
		c.PointerUp()
	}
	c.drawing = true
	c.last = p
	c.history.Begin(p)
}

// PointerMove extends the open stroke to p and paints the new segment. It
// does nothing when no stroke is open.
func (c *Controller) PointerMove(p state.Point) {
	if !c.drawing {
		return
	}
	render.DrawSegment(c.painter, c.last, p, c.opts.LineWidth)

	recorded := p
	if c.smoothing && c.opts.Smoothing.realtime() {
		if last, ok := c.history.Last(); ok {
			recorded = state.Damp(last.Points, p)
		}
	}
	c.history.Append(recorded)
	c.last = p

	logging.Logger().Debug("[RECORDER] sample", "x", p.X, "y", p.Y, "recorded_x", recorded.X, "recorded_y", recorded.Y)
	if c.opts.LivePreview {
		c.Refresh()
	}
}

// PointerUp closes the open stroke, smooths it if post-hoc smoothing is on,
// and refreshes the preview. It does nothing when no stroke is open.
func (c *Controller) PointerUp() {
	if !c.drawing {
		return
	}
	c.drawing = false
	if c.smoothing && c.opts.Smoothing.postHoc() {
		c.smoothLast()
	}
	c.Refresh()
}

func (c *Controller) smoothLast() {
	last, ok := c.history.Last()
	if !ok {
		return
	}
	if c.history.ReplaceLast(state.Smooth(last.Points)) {
		c.Redraw()
	}
}

// Undo removes the most recent stroke.
func (c *Controller) Undo() {
	if c.drawing {
		c.PointerUp()
	}
	if c.history.Undo() {
		c.Redraw()
	}
	c.Refresh()
}

// Redo restores the most recently undone stroke.
func (c *Controller) Redo() {
	if c.drawing {
		c.PointerUp()
	}
	if c.history.Redo() {
		c.Redraw()
	}
	c.Refresh()
}

// Clear erases the drawing and its redo history.
func (c *Controller) Clear() {
	c.drawing = false
	c.history.Clear()
	c.painter.Clear()
	c.Refresh()
}

// SetSmoothing switches smoothing on or off for strokes drawn afterwards.
func (c *Controller) SetSmoothing(on bool) {
	c.smoothing = on
	logging.Logger().Info("[RECORDER] smoothing", "on", on, "mode", c.opts.Smoothing.String())
}

// Restore replaces the drawing with strokes, for example from a file.
func (c *Controller) Restore(strokes []state.Stroke) {
	c.drawing = false
	c.history.Load(strokes)
	c.Redraw()
	c.Refresh()
}

// Save stores the fixed-size document under the configured key. Store
// errors are returned unchanged in meaning.
func (c *Controller) Save() error {
	if c.store == nil {
		return ErrNoStore
	}
	doc := export.RenderFixed(c.history.Strokes(), c.exportOptions())
	if err := c.store.Put(c.opts.SaveKey, doc); err != nil {
		return fmt.Errorf("save %s: %w", c.opts.SaveKey, err)
	}
	logging.Logger().Info("[STORE] saved", "key", c.opts.SaveKey, "bytes", len(doc))
	return nil
}

// Load returns the saved document exactly as stored.
func (c *Controller) Load() (string, bool, error) {
	if c.store == nil {
		return "", false, ErrNoStore
	}
	return c.store.Get(c.opts.SaveKey)
}

// Dispatch runs a control-surface command. on is only read by
// CmdToggleSmoothing.
func (c *Controller) Dispatch(cmd Command, on bool) error {
	switch cmd {
	case CmdUndo:
		c.Undo()
	case CmdRedo:
		c.Redo()
	case CmdClear:
		c.Clear()
	case CmdToggleSmoothing:
		c.SetSmoothing(on)
	case CmdSave:
		return c.Save()
	default:
		return fmt.Errorf("dispatch: %v", cmd)
	}
	return nil
}

// Redraw repaints the raster surface from the history.
func (c *Controller) Redraw() {
	strokes := c.history.Strokes()
	render.RedrawAll(c.painter, strokes, c.opts.LineWidth)
	logging.Logger().Debug("[RENDER] redraw", "strokes", len(strokes))
}

// Preview renders the centred preview document for the current drawing.
func (c *Controller) Preview() string {
	return export.RenderCentered(c.history.Strokes(), c.exportOptions())
}

// Refresh renders the preview once and presents the same document to every
// display target.
func (c *Controller) Refresh() {
	doc := c.Preview()
	for _, t := range c.targets {
		t.Present(doc)
	}
}

func (c *Controller) exportOptions() export.Options {
	return export.Options{Precision: c.opts.Precision}
}

type nopPainter struct{}

func (nopPainter) Clear()                  {}
func (nopPainter) SetLineWidth(float64)    {}
func (nopPainter) BeginPath()              {}
func (nopPainter) MoveTo(float64, float64) {}
func (nopPainter) LineTo(float64, float64) {}
func (nopPainter) Stroke()                 {}
