package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"

	"LocalSketch/internal/sketch"
	"LocalSketch/internal/state"
)

// BoardWidget is the drawing surface. It forwards pointer input to a
// sketch.Controller and shows the controller's LineSurface.
type BoardWidget struct {
	widget.BaseWidget
	ctrl    *sketch.Controller
	surface *LineSurface
	minSize fyne.Size
}

var _ fyne.Widget = (*BoardWidget)(nil)
var _ fyne.Draggable = (*BoardWidget)(nil)
var _ desktop.Mouseable = (*BoardWidget)(nil)

// NewBoardWidget creates a board for ctrl, which must paint onto surface.
func NewBoardWidget(ctrl *sketch.Controller, surface *LineSurface, minSize fyne.Size) *BoardWidget {
	b := &BoardWidget{ctrl: ctrl, surface: surface, minSize: minSize}
	b.ExtendBaseWidget(b)
	surface.OnChange = b.Refresh
	return b
}

// Controller returns the controller the board feeds.
func (b *BoardWidget) Controller() *sketch.Controller { return b.ctrl }

func sample(pos fyne.Position) state.Point {
	return sketch.Sample(pos.X, pos.Y, state.Point{})
}

func (b *BoardWidget) MouseDown(e *desktop.MouseEvent) {
	if e.Button != desktop.MouseButtonPrimary {
		return
	}
	b.ctrl.PointerDown(sample(e.Position))
}

func (b *BoardWidget) MouseUp(e *desktop.MouseEvent) {
	if e.Button != desktop.MouseButtonPrimary {
		return
	}
	b.ctrl.PointerUp()
}

func (b *BoardWidget) Dragged(e *fyne.DragEvent) {
	b.ctrl.PointerMove(sample(e.Position))
}

// DragEnd fires even when the pointer is released outside the board, so a
// stroke is never left open.
func (b *BoardWidget) DragEnd() {
	b.ctrl.PointerUp()
}

func (b *BoardWidget) CreateRenderer() fyne.WidgetRenderer {
	r := &boardWidgetRenderer{board: b}
	r.background = canvas.NewRectangle(color.White)
	return r
}

type boardWidgetRenderer struct {
	board      *BoardWidget
	background *canvas.Rectangle
}

func (r *boardWidgetRenderer) Objects() []fyne.CanvasObject {
	return append([]fyne.CanvasObject{r.background}, r.board.surface.Objects()...)
}

func (r *boardWidgetRenderer) Refresh() {
	canvas.Refresh(r.board)
}

func (r *boardWidgetRenderer) Layout(size fyne.Size) {
	r.background.Resize(size)
}

func (r *boardWidgetRenderer) MinSize() fyne.Size {
	return r.board.minSize
}

func (r *boardWidgetRenderer) Destroy() {}
