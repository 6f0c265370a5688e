package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"LocalSketch/internal/sketch"
	"LocalSketch/internal/state"
)

// AppID identifies the application's preferences.
const AppID = "com.localsketch.app"

// Session is one drawing surface with its controller and previews.
type Session struct {
	Ctrl     *sketch.Controller
	Board    *BoardWidget
	Surface  *LineSurface
	Previews [2]*PreviewImage
	Status   *widget.Label
}

// NewSession builds a board of the given size. Both previews are always
// registered; extra targets such as a network hub can be added.
func NewSession(h *state.History, store sketch.Store, opts sketch.Options, size fyne.Size, targets ...sketch.DisplayTarget) *Session {
	s := &Session{
		Surface: NewLineSurface(),
		Previews: [2]*PreviewImage{
			NewPreviewImage("preview", fyne.NewSize(240, 180)),
			NewPreviewImage("thumbnail", fyne.NewSize(48, 36)),
		},
		Status: widget.NewLabel("Ready"),
	}
	all := append([]sketch.DisplayTarget{s.Previews[0], s.Previews[1]}, targets...)
	s.Ctrl = sketch.NewController(h, s.Surface, store, opts, all...)
	s.Board = NewBoardWidget(s.Ctrl, s.Surface, size)
	s.Ctrl.Refresh()
	return s
}

// SetStatus shows text in the status bar.
func (s *Session) SetStatus(text string) {
	s.Status.SetText(text)
}

// Content lays the session out for win.
func (s *Session) Content(win fyne.Window) fyne.CanvasObject {
	side := container.NewBorder(widget.NewLabel("Preview"), nil, nil, nil, s.Previews[0].Image)
	split := container.NewHSplit(s.Board, side)
	split.Offset = 0.75
	return container.NewBorder(NewToolbar(s, win), s.Status, nil, nil, split)
}

// RunApp opens the main window and blocks until it is closed. A nil store
// saves into the application's preferences.
func RunApp(store sketch.Store, opts sketch.Options, size fyne.Size, targets ...sketch.DisplayTarget) {
	myApp := app.NewWithID(AppID)
	myWindow := myApp.NewWindow("LocalSketch")
	myWindow.Resize(fyne.NewSize(size.Width+320, size.Height+120))

	if store == nil {
		store = NewPrefsStore(myApp.Preferences())
	}
	s := NewSession(state.NewHistory(), store, opts, size, targets...)

	myWindow.SetContent(s.Content(myWindow))
	myWindow.ShowAndRun()
}
